// Command toolstub is a tiny local HTTP server that answers
// /v1/chat/completions with scripted tool-call payloads across every
// supported dialect, cycling through them on each request. It lets
// cmd/toolcallbench and manual testing exercise the real llmclient/go-openai
// wire path without a live model.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Tools []json.RawMessage `json:"tools"`
}

// dialectScripts cycles through one scripted response per supported dialect,
// then a tool-free closing reply, so a single run of toolcallbench against
// this stub exercises message_tool_calls, XML, LFM-token, generic-JSON, and
// Python-style candidates in turn.
var dialectScripts = []func() map[string]any{
	func() map[string]any {
		return map[string]any{
			"choices": []map[string]any{{
				"message": map[string]any{
					"role": "assistant",
					"tool_calls": []map[string]any{{
						"id":   "stub-call-1",
						"type": "function",
						"function": map[string]any{
							"name":      "get_weather",
							"arguments": `{"location":"Tokyo","date":"tomorrow"}`,
						},
					}},
				},
			}},
		}
	},
	func() map[string]any {
		return textResponse(`<tool_call>{"name":"get_news","arguments":{"topic":"ai","timeframe":"today"}}</tool_call>`)
	},
	func() map[string]any {
		return textResponse(`<|tool_call_start|>{"name":"play_sound_effect","arguments":{"event_name":"success","intensity":"high"}}<|tool_call_end|>`)
	},
	func() map[string]any {
		return textResponse(`Sure thing: {"name":"read_todo_tasks","arguments":{"status":"open"}}`)
	},
	func() map[string]any {
		return textResponse(`play_sound_effect(event_name="success", intensity="high")`)
	},
}

func textResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{{
			"message": map[string]any{"role": "assistant", "content": content},
		}},
	}
}

func main() {
	model := os.Getenv("MODEL_ID")
	if strings.TrimSpace(model) == "" {
		model = "toolstub-model"
	}
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":8089"
	}

	var callCount int64

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": model, "object": "model"}},
		})
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		w.Header().Set("Content-Type", "application/json")

		// The engine's final call passes no tools and tool_choice=none; reply
		// with plain prose so the round terminates.
		if len(req.Tools) == 0 {
			_ = json.NewEncoder(w).Encode(textResponse("Done."))
			return
		}

		index := atomic.AddInt64(&callCount, 1) - 1
		script := dialectScripts[int(index)%len(dialectScripts)]
		_ = json.NewEncoder(w).Encode(script())
	})

	log.Printf("toolstub listening on %s (model=%s)", addr, model)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
