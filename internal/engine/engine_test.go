package engine

import (
	"context"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/toolcallbench/internal/rtconfig"
	"github.com/hyperifyio/toolcallbench/internal/toolcall"
	"github.com/hyperifyio/toolcallbench/internal/toolcatalog"
	"github.com/hyperifyio/toolcallbench/internal/toolexec"
)

// scriptedChatClient replays one response per call, in order, standing in
// for a mocking framework the way the teacher's tests substitute scripted
// fakes for its own *openai.Client-shaped dependencies.
type scriptedChatClient struct {
	responses []openai.ChatCompletionResponse
	calls     int
}

func (c *scriptedChatClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if c.calls >= len(c.responses) {
		return openai.ChatCompletionResponse{}, nil
	}
	resp := c.responses[c.calls]
	c.calls++
	return resp, nil
}

func assistantResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: "assistant", Content: content},
		}},
	}
}

func assistantToolCallResponse(name, argumentsJSON string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{
				Role: "assistant",
				ToolCalls: []openai.ToolCall{{
					ID:   "call-1",
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{Name: name, Arguments: argumentsJSON},
				}},
			},
		}},
	}
}

func newTestEngine(client *scriptedChatClient) *Engine {
	return &Engine{
		Client:   client,
		Catalog:  toolcatalog.New(toolcatalog.BuiltinSchemas()...),
		Registry: toolexec.NewDummyRegistry(toolexec.NewDataStores()),
		Config:   rtconfig.Default(),
	}
}

func TestRunToolCallRound_NativeToolCallSucceeds(t *testing.T) {
	client := &scriptedChatClient{responses: []openai.ChatCompletionResponse{
		assistantToolCallResponse("get_weather", `{"location":"Tokyo","date":"tomorrow"}`),
		assistantResponse("Sunny tomorrow."),
	}}
	result, err := newTestEngine(client).RunToolCallRound(context.Background(), "weather?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsSuccess || result.ToolName != "get_weather" || result.Source != toolcall.SourceMessageToolCalls {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.AssistantContent != "Sunny tomorrow." {
		t.Fatalf("unexpected final content: %q", result.AssistantContent)
	}
}

func TestRunToolCallRound_XMLTaggedContentSucceeds(t *testing.T) {
	client := &scriptedChatClient{responses: []openai.ChatCompletionResponse{
		assistantResponse(`<tool_call>{"name":"get_news","arguments":{"topic":"ai","timeframe":"today"}}</tool_call>`),
		assistantResponse("Here's the news."),
	}}
	result, err := newTestEngine(client).RunToolCallRound(context.Background(), "news?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsSuccess || result.ToolName != "get_news" || result.Source != toolcall.SourceContentToolCallXML {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestRunToolCallRound_PythonStyleContentSucceeds(t *testing.T) {
	client := &scriptedChatClient{responses: []openai.ChatCompletionResponse{
		assistantResponse(`play_sound_effect(event_name="success", intensity="high")`),
		assistantResponse("Played it."),
	}}
	result, err := newTestEngine(client).RunToolCallRound(context.Background(), "play a sound")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsSuccess || result.ToolName != "play_sound_effect" || result.Source != toolcall.SourceContentPythonStyle {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestRunToolCallRound_MissingRequiredArgumentFailsImmediately(t *testing.T) {
	client := &scriptedChatClient{responses: []openai.ChatCompletionResponse{
		assistantToolCallResponse("get_weather", `{"location":"Tokyo"}`),
	}}
	result, err := newTestEngine(client).RunToolCallRound(context.Background(), "weather?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsSuccess || result.FailureReason != toolcall.FailureMissingRequired {
		t.Fatalf("expected missing_required failure, got %+v", result)
	}
	if client.calls != 1 {
		t.Fatalf("expected the round to stop after one request, got %d calls", client.calls)
	}
}

func TestRunToolCallRound_HallucinatedToolFailsImmediately(t *testing.T) {
	client := &scriptedChatClient{responses: []openai.ChatCompletionResponse{
		assistantToolCallResponse("launch_missiles", `{}`),
	}}
	result, err := newTestEngine(client).RunToolCallRound(context.Background(), "do something")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsSuccess || result.FailureReason != toolcall.FailureHallucinatedTool {
		t.Fatalf("expected hallucinated_tool failure, got %+v", result)
	}
}

func TestRunToolCallRound_RepairLoopRecoversFromOneParseFailure(t *testing.T) {
	client := &scriptedChatClient{responses: []openai.ChatCompletionResponse{
		assistantResponse("I'm not sure what you mean."),
		assistantToolCallResponse("get_weather", `{"location":"Oslo","date":"today"}`),
		assistantResponse("Sunny."),
	}}
	result, err := newTestEngine(client).RunToolCallRound(context.Background(), "weather?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsSuccess || result.ToolName != "get_weather" {
		t.Fatalf("expected repair loop to recover, got %+v", result)
	}
}

func TestRunToolCallRound_RoundLimitReachedDuringRepairFails(t *testing.T) {
	cfg := rtconfig.Default()
	cfg.MaxRepairAttempts = 1
	cfg.MaxToolCallRoundsPerRequest = 1
	client := &scriptedChatClient{responses: []openai.ChatCompletionResponse{
		assistantResponse("still no tool call"),
	}}
	e := &Engine{
		Client:   client,
		Catalog:  toolcatalog.New(toolcatalog.BuiltinSchemas()...),
		Registry: toolexec.NewDummyRegistry(toolexec.NewDataStores()),
		Config:   cfg,
	}
	result, err := e.RunToolCallRound(context.Background(), "weather?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsSuccess || result.FailureReason != toolcall.FailureMaxToolRoundExceeded {
		t.Fatalf("expected max_tool_round_exceeded, got %+v", result)
	}
}

func TestRunToolCallRound_NoToolNeededReturnsFailureWithoutRepair(t *testing.T) {
	cfg := rtconfig.Default()
	cfg.MaxRepairAttempts = 0
	client := &scriptedChatClient{responses: []openai.ChatCompletionResponse{
		assistantResponse("Hello, how can I help?"),
	}}
	e := &Engine{
		Client:   client,
		Catalog:  toolcatalog.New(toolcatalog.BuiltinSchemas()...),
		Registry: toolexec.NewDummyRegistry(toolexec.NewDataStores()),
		Config:   cfg,
	}
	result, err := e.RunToolCallRound(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsSuccess || result.FailureReason != toolcall.FailureParseFailure {
		t.Fatalf("expected parse_failure, got %+v", result)
	}
}
