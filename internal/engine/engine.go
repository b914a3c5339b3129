// Package engine implements the round orchestrator: it owns a conversation
// transcript, calls the chat endpoint, parses and validates the result,
// executes tool calls via the executor registry, and loops up to a bounded
// number of rounds with bounded repair retries on parse failure.
package engine

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/toolcallbench/internal/llmclient"
	"github.com/hyperifyio/toolcallbench/internal/rtconfig"
	"github.com/hyperifyio/toolcallbench/internal/toolcatalog"
	"github.com/hyperifyio/toolcallbench/internal/toolcall"
	"github.com/hyperifyio/toolcallbench/internal/toolexec"
)

// EngineResult is the tagged-union outcome of one RunToolCallRound call.
type EngineResult struct {
	IsSuccess        bool
	FailureReason    toolcall.FailureReason
	Source           toolcall.DialectSource
	ToolName         string
	Arguments        map[string]any
	AssistantContent string
	ExecutedCalls    []toolcall.ParsedToolCall
}

// Engine drives the bounded tool-calling conversation loop. A single Engine
// value holds only immutable, shared dependencies (catalog, registry, chat
// client, config); each RunToolCallRound call constructs and owns its own
// transcript, so concurrent calls on the same *Engine are safe.
type Engine struct {
	Client   llmclient.ChatClient
	Catalog  *toolcatalog.Catalog
	Registry *toolexec.Registry
	Config   rtconfig.Config
}

// RunToolCallRound drives one bounded multi-round tool-calling conversation
// for a single user prompt, per spec.md §4.4.
func (e *Engine) RunToolCallRound(ctx context.Context, userPrompt string) (EngineResult, error) {
	systemPrompt := DefaultSystemPrompt()
	if e.Config.StrictSystemPrompt {
		systemPrompt = StrictJSONOnlySystemPrompt()
	}

	transcript := Transcript{}.appendSystem(systemPrompt).appendUser(userPrompt)

	repairAttempts := 0
	var executedCalls []toolcall.ParsedToolCall

	maxRounds := e.Config.MaxToolCallRoundsPerRequest
	if maxRounds <= 0 {
		maxRounds = 1
	}

	for roundIndex := 0; roundIndex < maxRounds; roundIndex++ {
		resp, err := e.createChatCompletion(ctx, transcript, toOpenAITools(e.Catalog), "auto")
		if err != nil {
			return EngineResult{}, err
		}
		if len(resp.Choices) == 0 {
			return EngineResult{}, fmt.Errorf("engine: empty choices from chat endpoint")
		}
		assistantMessage := resp.Choices[0].Message

		parsedCalls := toolcall.Parse(toParserMessage(assistantMessage))

		log.Debug().
			Int("round", roundIndex+1).
			Int("repair_attempts", repairAttempts).
			Bool("parse_failure", len(parsedCalls) == 0).
			Msg("tool call round")

		if len(parsedCalls) == 0 {
			if repairAttempts >= e.Config.MaxRepairAttempts {
				return EngineResult{
					IsSuccess:        false,
					FailureReason:    toolcall.FailureParseFailure,
					Source:           toolcall.SourceNone,
					AssistantContent: assistantMessage.Content,
				}, nil
			}
			transcript = transcript.appendUser(RepairPromptForParseFailure())
			repairAttempts++
			continue
		}

		roundResult, ok := e.executeParsedToolCallsSequentially(ctx, parsedCalls, roundIndex, &transcript)
		if !ok {
			return roundResult, nil
		}
		executedCalls = append(executedCalls, roundResult.ExecutedCalls...)

		finalResp, err := e.createChatCompletion(ctx, transcript, nil, "none")
		if err != nil {
			return EngineResult{}, err
		}
		if len(executedCalls) == 0 {
			continue
		}

		lastCall := executedCalls[len(executedCalls)-1]
		var finalContent string
		if len(finalResp.Choices) > 0 {
			finalContent = finalResp.Choices[0].Message.Content
		}
		return EngineResult{
			IsSuccess:        true,
			Source:           lastCall.Source,
			ToolName:         lastCall.ToolName,
			Arguments:        lastCall.Arguments,
			AssistantContent: finalContent,
			ExecutedCalls:    executedCalls,
		}, nil
	}

	return EngineResult{
		IsSuccess:     false,
		FailureReason: toolcall.FailureMaxToolRoundExceeded,
		Source:        toolcall.SourceNone,
	}, nil
}

// executeParsedToolCallsSequentially validates and executes each call in
// document order, appending assistant/tool message pairs to transcript. It
// returns (a result carrying only ExecutedCalls, true) on success, or
// (terminal failure result, false)
// on the first validation failure — the spec requires the engine to stop
// immediately and append no message for the rejected call.
func (e *Engine) executeParsedToolCallsSequentially(ctx context.Context, calls []toolcall.ParsedToolCall, roundIndex int, transcript *Transcript) (EngineResult, bool) {
	executed := make([]toolcall.ParsedToolCall, 0, len(calls))
	for callIndex, call := range calls {
		validation := toolcall.ValidateToolCallAgainstSchema(call.ToolName, call.Arguments, e.Catalog)
		if !validation.IsSuccess {
			return EngineResult{
				IsSuccess:     false,
				FailureReason: validation.FailureReason,
				Source:        call.Source,
				ToolName:      call.ToolName,
				Arguments:     call.Arguments,
				ExecutedCalls: executed,
			}, false
		}

		resultPayload, err := e.Registry.Execute(ctx, call.ToolName, call.Arguments)
		if err != nil {
			resultPayload = map[string]any{"status": "error", "message": err.Error()}
		}

		toolCallID := fmt.Sprintf("local-tool-call-%d-%d", roundIndex+1, callIndex+1)
		argumentsJSON, _ := json.Marshal(call.Arguments)
		resultJSON, _ := json.Marshal(resultPayload)

		*transcript = transcript.appendAssistantToolCall(ToolCallDescriptor{
			ID:            toolCallID,
			ToolName:      call.ToolName,
			ArgumentsJSON: string(argumentsJSON),
		})
		*transcript = transcript.appendTool(toolCallID, string(resultJSON))

		log.Debug().
			Str("tool", call.ToolName).
			Str("tool_call_id", toolCallID).
			Int("args_bytes", len(argumentsJSON)).
			Int("result_bytes", len(resultJSON)).
			Msg("executed tool call")

		executed = append(executed, call)
	}
	return EngineResult{ExecutedCalls: executed}, true
}

func (e *Engine) createChatCompletion(ctx context.Context, transcript Transcript, tools []openai.Tool, toolChoice any) (openai.ChatCompletionResponse, error) {
	req := openai.ChatCompletionRequest{
		Model:       e.Config.ModelName,
		Messages:    toOpenAIMessages(transcript),
		Tools:       tools,
		ToolChoice:  toolChoice,
		Temperature: e.Config.ResponseTemperature,
		MaxTokens:   e.Config.MaxGenerationTokens,
	}
	return e.Client.CreateChatCompletion(ctx, req)
}
