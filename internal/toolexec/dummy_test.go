package toolexec

import (
	"context"
	"testing"
)

func TestDummyRegistry_CoversAllNineBuiltinTools(t *testing.T) {
	registry := NewDummyRegistry(NewDataStores())
	names := []string{
		"play_sound_effect", "create_calendar_event", "read_calendar_events",
		"create_todo_task", "read_todo_tasks", "get_weather", "get_news",
		"read_database_record", "write_database_record",
	}
	for _, name := range names {
		if _, ok := registry.Get(name); !ok {
			t.Fatalf("expected %s to be registered", name)
		}
	}
}

func TestDummyRegistry_CalendarCreateThenRead(t *testing.T) {
	stores := NewDataStores()
	registry := NewDummyRegistry(stores)
	ctx := context.Background()

	_, err := registry.Execute(ctx, "create_calendar_event", map[string]any{
		"title": "Sync", "start_datetime": "2026-08-01T09:00", "end_datetime": "2026-08-01T09:30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := registry.Execute(ctx, "read_calendar_events", map[string]any{
		"start_date": "2026-08-01", "end_date": "2026-08-07",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	events, ok := result["events"].([]map[string]any)
	if !ok || len(events) != 1 {
		t.Fatalf("expected one event, got %+v", result["events"])
	}
	if events[0]["title"] != "Sync" {
		t.Fatalf("unexpected event: %+v", events[0])
	}
}

func TestDummyRegistry_TodoStatusAndFilterText(t *testing.T) {
	stores := NewDataStores()
	registry := NewDummyRegistry(stores)
	ctx := context.Background()

	_, _ = registry.Execute(ctx, "create_todo_task", map[string]any{"task_title": "Renew passport", "priority": "high"})
	_, _ = registry.Execute(ctx, "create_todo_task", map[string]any{"task_title": "Buy milk", "priority": "low"})

	result, err := registry.Execute(ctx, "read_todo_tasks", map[string]any{"status": "open", "filter_text": "passport"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tasks, ok := result["tasks"].([]map[string]any)
	if !ok || len(tasks) != 1 {
		t.Fatalf("expected one filtered task, got %+v", result["tasks"])
	}
	if tasks[0]["task_title"] != "Renew passport" {
		t.Fatalf("unexpected task: %+v", tasks[0])
	}
}

func TestDummyRegistry_ReadTodoTasksAllStatusIgnoresStatusFilter(t *testing.T) {
	stores := NewDataStores()
	registry := NewDummyRegistry(stores)
	ctx := context.Background()

	_, _ = registry.Execute(ctx, "create_todo_task", map[string]any{"task_title": "A", "priority": "low"})

	result, err := registry.Execute(ctx, "read_todo_tasks", map[string]any{"status": "all"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tasks, _ := result["tasks"].([]map[string]any)
	if len(tasks) != 1 {
		t.Fatalf("expected the one created task regardless of status, got %+v", tasks)
	}
}

func TestDummyRegistry_DatabaseWriteThenRead(t *testing.T) {
	stores := NewDataStores()
	registry := NewDummyRegistry(stores)
	ctx := context.Background()

	_, err := registry.Execute(ctx, "write_database_record", map[string]any{
		"table_name": "users", "key": "alice", "payload": map[string]any{"role": "admin"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := registry.Execute(ctx, "read_database_record", map[string]any{"table_name": "users", "key": "alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["status"] != "ok" {
		t.Fatalf("expected ok status, got %+v", result)
	}
	payload, ok := result["payload"].(map[string]any)
	if !ok || payload["role"] != "admin" {
		t.Fatalf("unexpected payload: %+v", result["payload"])
	}
}

func TestDummyRegistry_ReadDatabaseRecordNotFound(t *testing.T) {
	registry := NewDummyRegistry(NewDataStores())
	result, err := registry.Execute(context.Background(), "read_database_record", map[string]any{
		"table_name": "users", "key": "missing",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["status"] != "not_found" {
		t.Fatalf("expected not_found status, got %+v", result)
	}
}
