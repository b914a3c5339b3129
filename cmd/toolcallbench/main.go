// Command toolcallbench runs the tool-calling evaluation harness against a
// locally-hosted, OpenAI-compatible chat endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/toolcallbench/internal/engine"
	"github.com/hyperifyio/toolcallbench/internal/evalharness"
	"github.com/hyperifyio/toolcallbench/internal/llmclient"
	"github.com/hyperifyio/toolcallbench/internal/rtconfig"
	"github.com/hyperifyio/toolcallbench/internal/toolcatalog"
	"github.com/hyperifyio/toolcallbench/internal/toolexec"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configFile          string
		llmBaseURL          string
		llmModel            string
		llmKey              string
		requestTimeout      time.Duration
		temperature         float64
		maxTokens           int
		maxRounds           int
		maxRepairAttempts   int
		strictPrompt        bool
		caseFile            string
		maxCases            int
		delayBetweenCases   time.Duration
		maxConsecutiveFails int
		resultDir           string
		verbose             bool
	)

	flag.StringVar(&configFile, "config", "", "Optional YAML config file overlaying the defaults below")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("TOOLCALL_LLM_BASE_URL"), "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("TOOLCALL_LLM_MODEL"), "Model name")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("TOOLCALL_LLM_API_KEY"), "API key for the OpenAI-compatible server")
	flag.DurationVar(&requestTimeout, "request.timeout", 0, "Per-chat-request timeout (0 uses the default)")
	flag.Float64Var(&temperature, "response.temperature", -1, "Sampling temperature (negative uses the default)")
	flag.IntVar(&maxTokens, "response.maxTokens", 0, "Max generation tokens (0 uses the default)")
	flag.IntVar(&maxRounds, "max.toolCallRounds", 0, "Max tool-call rounds per request (0 uses the default)")
	flag.IntVar(&maxRepairAttempts, "max.repairAttempts", -1, "Max parse-failure repair attempts (-1 uses the default)")
	flag.BoolVar(&strictPrompt, "strict-json-prompt", false, "Use the strict JSON-only system prompt variant")
	flag.StringVar(&caseFile, "cases", "", "Path to the evaluation case JSON file (overrides config/default)")
	flag.IntVar(&maxCases, "max.cases", 0, "Maximum number of cases to run (0 = all)")
	flag.DurationVar(&delayBetweenCases, "delay", 0, "Delay between evaluation cases (0 uses the default)")
	flag.IntVar(&maxConsecutiveFails, "max.consecutiveRequestErrors", 0, "Consecutive request-error circuit breaker (0 uses the default)")
	flag.StringVar(&resultDir, "results.dir", "", "Directory to write evaluation result JSON artifacts")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := rtconfig.Default()
	if configFile != "" {
		loaded, err := rtconfig.LoadFile(configFile, cfg)
		if err != nil {
			log.Fatal().Err(err).Str("path", configFile).Msg("failed to load config file")
		}
		cfg = loaded
	}

	if llmBaseURL != "" {
		cfg.BaseURL = llmBaseURL
	}
	if llmModel != "" {
		cfg.ModelName = llmModel
	}
	if llmKey != "" {
		cfg.APIKey = llmKey
	}
	if requestTimeout > 0 {
		cfg.RequestTimeout = requestTimeout
	}
	if temperature >= 0 {
		cfg.ResponseTemperature = float32(temperature)
	}
	if maxTokens > 0 {
		cfg.MaxGenerationTokens = maxTokens
	}
	if maxRounds > 0 {
		cfg.MaxToolCallRoundsPerRequest = maxRounds
	}
	if maxRepairAttempts >= 0 {
		cfg.MaxRepairAttempts = maxRepairAttempts
	}
	cfg.StrictSystemPrompt = cfg.StrictSystemPrompt || strictPrompt

	evalCfg := evalharness.DefaultConfig()
	if caseFile != "" {
		evalCfg.CaseFilePath = caseFile
	}
	if delayBetweenCases > 0 {
		evalCfg.DelayBetweenCases = delayBetweenCases
	}
	if maxConsecutiveFails > 0 {
		evalCfg.MaxConsecutiveRequestErrors = maxConsecutiveFails
	}
	if resultDir != "" {
		evalCfg.ResultDirectoryPath = resultDir
	}

	if err := run(cfg, evalCfg, maxCases); err != nil {
		log.Error().Err(err).Msg("evaluation run failed")
		os.Exit(1)
	}
}

func run(cfg rtconfig.Config, evalCfg evalharness.Config, maxCases int) error {
	ctx := context.Background()

	catalog := toolcatalog.New(toolcatalog.BuiltinSchemas()...)
	registry := toolexec.NewDummyRegistry(toolexec.NewDataStores())
	client := llmclient.New(cfg)

	e := &engine.Engine{
		Client:   client,
		Catalog:  catalog,
		Registry: registry,
		Config:   cfg,
	}

	runner := &evalharness.Runner{Config: evalCfg, Engine: e}
	summary, _, resultPath, err := runner.RunEvaluation(ctx, "", maxCases)
	if err != nil {
		return fmt.Errorf("run evaluation: %w", err)
	}

	log.Info().
		Int("total_cases", summary.TotalCases).
		Int("successful_cases", summary.SuccessfulCases).
		Float64("strict_success_rate", summary.StrictSuccessRate).
		Str("result_path", resultPath).
		Msg("evaluation complete")

	return nil
}
