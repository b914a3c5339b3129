// Package rtconfig centralizes runtime constants and user-tunable
// configuration values, the way the teacher's internal/app.Config does for
// its own pipeline.
package rtconfig

import "time"

// Config holds the engine- and endpoint-facing settings consumed by
// internal/llmclient and internal/engine.
type Config struct {
	BaseURL     string
	APIKey      string
	ModelName   string

	RequestTimeout       time.Duration
	ResponseTemperature  float32
	MaxGenerationTokens  int

	MaxToolCallRoundsPerRequest int
	MaxRepairAttempts           int

	// SequentialExecutionOnly is always true in this core; reserved for a
	// future relaxation that this repo does not implement. It is read by
	// nothing — set it and it has no effect, matching spec.md §6.
	SequentialExecutionOnly bool

	// StrictSystemPrompt selects the strict-JSON-only system prompt variant
	// (§6.3) over the default one.
	StrictSystemPrompt bool
}

// Default returns the configuration defaults carried over unchanged from
// original_source/.../config.py's RuntimeConfiguration.
func Default() Config {
	return Config{
		BaseURL:                     "http://127.0.0.1:1234/v1",
		APIKey:                      "lm-studio",
		ModelName:                   "lfm2-2.6b-exp",
		RequestTimeout:              12 * time.Second,
		ResponseTemperature:         0.1,
		MaxGenerationTokens:         256,
		MaxToolCallRoundsPerRequest: 3,
		MaxRepairAttempts:           2,
		SequentialExecutionOnly:     true,
		StrictSystemPrompt:          false,
	}
}
