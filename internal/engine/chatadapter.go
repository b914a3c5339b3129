package engine

import (
	"encoding/json"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/toolcallbench/internal/toolcatalog"
	"github.com/hyperifyio/toolcallbench/internal/toolcall"
)

// toOpenAIMessages converts a Transcript into the wire message slice the
// go-openai client expects.
func toOpenAIMessages(transcript Transcript) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(transcript))
	for _, m := range transcript {
		msg := openai.ChatCompletionMessage{Role: string(m.Role), Content: m.Content}
		for _, tc := range m.ToolCalls {
			msg.ToolCalls = append(msg.ToolCalls, openai.ToolCall{
				ID:   tc.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      tc.ToolName,
					Arguments: tc.ArgumentsJSON,
				},
			})
		}
		if m.Role == RoleTool {
			msg.ToolCallID = m.ToolCallID
		}
		out = append(out, msg)
	}
	return out
}

// toOpenAITools projects the catalog's wire shape into []openai.Tool.
func toOpenAITools(catalog *toolcatalog.Catalog) []openai.Tool {
	wire := catalog.Wire()
	out := make([]openai.Tool, 0, len(wire))
	for _, w := range wire {
		params, _ := json.Marshal(w.Function.Parameters)
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        w.Function.Name,
				Description: w.Function.Description,
				Parameters:  json.RawMessage(params),
			},
		})
	}
	return out
}

// toParserMessage extracts the parser's minimal ChatMessage view from a
// go-openai response message.
func toParserMessage(msg openai.ChatCompletionMessage) toolcall.ChatMessage {
	out := toolcall.ChatMessage{Content: msg.Content}
	for _, tc := range msg.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, toolcall.ChatToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return out
}
