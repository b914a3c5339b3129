package toolexec

import (
	"context"
	"testing"
)

func TestRegistry_RegisterAndExecute(t *testing.T) {
	r := NewRegistry()
	r.Register("echo", ExecutorFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return map[string]any{"status": "ok", "echoed": args["value"]}, nil
	}))

	result, err := r.Execute(context.Background(), "echo", map[string]any{"value": "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["echoed"] != "hi" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestRegistry_ExecuteUnregisteredToolFallback(t *testing.T) {
	r := NewRegistry()
	result, err := r.Execute(context.Background(), "nonexistent_tool", map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["status"] != "error" {
		t.Fatalf("expected error status, got %+v", result)
	}
	if result["message"] != "Unknown tool: nonexistent_tool" {
		t.Fatalf("unexpected message: %+v", result["message"])
	}
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Get("missing"); ok {
		t.Fatalf("expected missing lookup to fail")
	}
	r.Register("present", ExecutorFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return nil, nil
	}))
	if _, ok := r.Get("present"); !ok {
		t.Fatalf("expected present lookup to succeed")
	}
}
