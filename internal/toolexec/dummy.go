package toolexec

import (
	"context"
	"fmt"
	"strings"
)

// NewDummyRegistry builds the executor map for the nine built-in dummy
// tools, backed by the given DataStores. Payload shapes match
// original_source/.../tools.py unchanged.
func NewDummyRegistry(stores *DataStores) *Registry {
	r := NewRegistry()
	r.Register("play_sound_effect", ExecutorFunc(executePlaySoundEffect))
	r.Register("create_calendar_event", ExecutorFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return executeCreateCalendarEvent(args, stores)
	}))
	r.Register("read_calendar_events", ExecutorFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return executeReadCalendarEvents(args, stores)
	}))
	r.Register("create_todo_task", ExecutorFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return executeCreateTodoTask(args, stores)
	}))
	r.Register("read_todo_tasks", ExecutorFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return executeReadTodoTasks(args, stores)
	}))
	r.Register("get_weather", ExecutorFunc(executeGetWeather))
	r.Register("get_news", ExecutorFunc(executeGetNews))
	r.Register("read_database_record", ExecutorFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return executeReadDatabaseRecord(args, stores)
	}))
	r.Register("write_database_record", ExecutorFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return executeWriteDatabaseRecord(args, stores)
	}))
	return r
}

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

func executePlaySoundEffect(ctx context.Context, args map[string]any) (map[string]any, error) {
	return map[string]any{
		"status":        "ok",
		"event_name":    stringArg(args, "event_name"),
		"intensity":     stringArg(args, "intensity"),
		"playback_mode": "event_only",
	}, nil
}

func executeCreateCalendarEvent(args map[string]any, stores *DataStores) (map[string]any, error) {
	event := map[string]any{
		"title":          stringArg(args, "title"),
		"start_datetime": stringArg(args, "start_datetime"),
		"end_datetime":   stringArg(args, "end_datetime"),
		"location":       stringArg(args, "location"),
	}
	stores.appendCalendarEvent(event)
	return map[string]any{"status": "ok", "created_event": event}, nil
}

func executeReadCalendarEvents(args map[string]any, stores *DataStores) (map[string]any, error) {
	return map[string]any{
		"status":     "ok",
		"start_date": stringArg(args, "start_date"),
		"end_date":   stringArg(args, "end_date"),
		"events":     stores.listCalendarEvents(),
	}, nil
}

func executeCreateTodoTask(args map[string]any, stores *DataStores) (map[string]any, error) {
	task := map[string]any{
		"task_title": stringArg(args, "task_title"),
		"priority":   stringArg(args, "priority"),
		"due_date":   stringArg(args, "due_date"),
		"status":     "open",
	}
	stores.appendTodoTask(task)
	return map[string]any{"status": "ok", "created_task": task}, nil
}

func executeReadTodoTasks(args map[string]any, stores *DataStores) (map[string]any, error) {
	status := stringArg(args, "status")
	filterText := strings.ToLower(strings.TrimSpace(stringArg(args, "filter_text")))

	var candidates []map[string]any
	if status == "all" {
		candidates = stores.listTodoTasks()
	} else {
		for _, task := range stores.listTodoTasks() {
			if task["status"] == status {
				candidates = append(candidates, task)
			}
		}
	}

	if filterText == "" {
		return map[string]any{"status": "ok", "tasks": candidates}, nil
	}

	filtered := make([]map[string]any, 0, len(candidates))
	for _, task := range candidates {
		title, _ := task["task_title"].(string)
		if strings.Contains(strings.ToLower(title), filterText) {
			filtered = append(filtered, task)
		}
	}
	return map[string]any{"status": "ok", "tasks": filtered}, nil
}

func executeGetWeather(ctx context.Context, args map[string]any) (map[string]any, error) {
	return map[string]any{
		"status":             "ok",
		"location":           stringArg(args, "location"),
		"date":               stringArg(args, "date"),
		"forecast":           "sunny",
		"temperature_celsius": 22,
	}, nil
}

func executeGetNews(ctx context.Context, args map[string]any) (map[string]any, error) {
	topic := stringArg(args, "topic")
	return map[string]any{
		"status":    "ok",
		"topic":     topic,
		"timeframe": stringArg(args, "timeframe"),
		"headlines": []string{
			fmt.Sprintf("Dummy headline about %s (1)", topic),
			fmt.Sprintf("Dummy headline about %s (2)", topic),
		},
	}, nil
}

func executeReadDatabaseRecord(args map[string]any, stores *DataStores) (map[string]any, error) {
	table := stringArg(args, "table_name")
	key := stringArg(args, "key")
	payload, ok := stores.readDatabaseRecord(table, key)
	if !ok {
		return map[string]any{"status": "not_found", "table_name": table, "key": key, "payload": nil}, nil
	}
	return map[string]any{"status": "ok", "table_name": table, "key": key, "payload": payload}, nil
}

func executeWriteDatabaseRecord(args map[string]any, stores *DataStores) (map[string]any, error) {
	table := stringArg(args, "table_name")
	key := stringArg(args, "key")
	payload := args["payload"]
	stores.writeDatabaseRecord(table, key, payload)
	return map[string]any{"status": "ok", "table_name": table, "key": key}, nil
}
