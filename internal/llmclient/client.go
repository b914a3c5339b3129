// Package llmclient wraps the OpenAI-compatible Chat Completions endpoint
// used by a locally-hosted LLM, the way the teacher's internal/llm package
// adapts *openai.Client behind a minimal interface the core depends on.
package llmclient

import (
	"context"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/toolcallbench/internal/rtconfig"
)

// ChatClient is the minimal interface the engine needs to call a chat
// model. Any OpenAI-compatible or local backend satisfies it, and tests
// substitute a scripted fake instead of a mocking framework.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client adapts *openai.Client to ChatClient, configured for a
// locally-hosted endpoint (LM Studio, llama.cpp server, vLLM, etc.).
type Client struct {
	inner *openai.Client
	model string
}

// New builds a Client from runtime configuration.
func New(cfg rtconfig.Config) *Client {
	transportCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		transportCfg.BaseURL = cfg.BaseURL
	}
	transportCfg.HTTPClient = &http.Client{Timeout: cfg.RequestTimeout}
	return &Client{inner: openai.NewClientWithConfig(transportCfg), model: cfg.ModelName}
}

// CreateChatCompletion satisfies ChatClient by delegating to the wrapped
// openai.Client.
func (c *Client) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return c.inner.CreateChatCompletion(ctx, request)
}

// Model returns the configured model name, for callers building requests.
func (c *Client) Model() string {
	return c.model
}
