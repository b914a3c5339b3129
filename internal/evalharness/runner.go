package evalharness

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/toolcallbench/internal/engine"
	"github.com/hyperifyio/toolcallbench/internal/toolcall"
)

// Config holds the evaluation-only settings layered on top of the engine's
// own rtconfig.Config, mirroring the distilled source's evaluation-specific
// RuntimeConfiguration fields.
type Config struct {
	CaseFilePath                string
	MaxCases                    int
	DelayBetweenCases           time.Duration
	MaxConsecutiveRequestErrors int
	ResultDirectoryPath         string
}

// DefaultConfig returns the evaluation harness defaults carried over from
// original_source/.../config.py.
func DefaultConfig() Config {
	return Config{
		CaseFilePath:                "testdata/tool_call_cases.json",
		MaxCases:                    0,
		DelayBetweenCases:           2 * time.Second,
		MaxConsecutiveRequestErrors: 2,
		ResultDirectoryPath:         "logs/evaluations",
	}
}

// Runner runs a fixed evaluation case set against an Engine and computes the
// strict success rate.
type Runner struct {
	Config Config
	Engine *engine.Engine

	// Sleep is called between cases; defaults to time.Sleep. Tests override
	// it to avoid real delays.
	Sleep func(time.Duration)
}

// RunEvaluation loads cases from the configured (or overridden) path, runs
// each sequentially against the engine, and writes a JSON result artifact.
// It returns the aggregate summary, the per-case results, and the path the
// artifact was written to.
func (r *Runner) RunEvaluation(ctx context.Context, caseFilePathOverride string, maxCasesOverride int) (Summary, []CaseResult, string, error) {
	casePath := r.Config.CaseFilePath
	if caseFilePathOverride != "" {
		casePath = caseFilePathOverride
	}

	cases, err := LoadCases(casePath)
	if err != nil {
		return Summary{}, nil, "", err
	}

	maxCases := r.Config.MaxCases
	if maxCasesOverride > 0 {
		maxCases = maxCasesOverride
	}
	if maxCases > 0 && maxCases < len(cases) {
		cases = cases[:maxCases]
	}

	sleep := r.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var results []CaseResult
	consecutiveRequestErrors := 0
	for _, c := range cases {
		result := r.runSingleCase(ctx, c)
		results = append(results, result)

		if result.FailureReason == toolcall.FailureRequestError {
			consecutiveRequestErrors++
		} else {
			consecutiveRequestErrors = 0
		}

		if consecutiveRequestErrors >= r.Config.MaxConsecutiveRequestErrors {
			log.Warn().
				Int("consecutive_request_errors", consecutiveRequestErrors).
				Msg("stopping evaluation early: repeated request errors")
			break
		}

		sleep(r.Config.DelayBetweenCases)
	}

	summary := Summarize(results)
	resultPath, err := r.writeResultFile(summary, results)
	if err != nil {
		return summary, results, "", err
	}
	return summary, results, resultPath, nil
}

func (r *Runner) runSingleCase(ctx context.Context, c Case) CaseResult {
	engineResult, err := r.Engine.RunToolCallRound(ctx, c.UserPrompt)
	if err != nil {
		log.Error().Err(err).Str("case", c.CaseIdentifier).Msg("chat request failed")
		return CaseResult{
			CaseIdentifier:   c.CaseIdentifier,
			IsSuccess:        false,
			FailureReason:    toolcall.FailureRequestError,
			Source:           toolcall.SourceNone,
			ExpectedToolName: c.ExpectedToolName,
		}
	}

	if !engineResult.IsSuccess {
		return CaseResult{
			CaseIdentifier:   c.CaseIdentifier,
			IsSuccess:        false,
			FailureReason:    engineResult.FailureReason,
			Source:           engineResult.Source,
			ExpectedToolName: c.ExpectedToolName,
			ActualToolName:   engineResult.ToolName,
		}
	}

	expectedValidation := toolcall.ValidateExpectedTool(c.ExpectedToolName, engineResult.ToolName)
	if !expectedValidation.IsSuccess {
		return CaseResult{
			CaseIdentifier:   c.CaseIdentifier,
			IsSuccess:        false,
			FailureReason:    expectedValidation.FailureReason,
			Source:           engineResult.Source,
			ExpectedToolName: c.ExpectedToolName,
			ActualToolName:   engineResult.ToolName,
		}
	}

	for _, requiredKey := range c.RequiredArgumentKeys {
		if _, present := engineResult.Arguments[requiredKey]; !present {
			return CaseResult{
				CaseIdentifier:   c.CaseIdentifier,
				IsSuccess:        false,
				FailureReason:    toolcall.FailureMissingRequired,
				Source:           engineResult.Source,
				ExpectedToolName: c.ExpectedToolName,
				ActualToolName:   engineResult.ToolName,
			}
		}
	}

	return CaseResult{
		CaseIdentifier:   c.CaseIdentifier,
		IsSuccess:        true,
		Source:           engineResult.Source,
		ExpectedToolName: c.ExpectedToolName,
		ActualToolName:   engineResult.ToolName,
	}
}

func (r *Runner) writeResultFile(summary Summary, results []CaseResult) (string, error) {
	runID := uuid.NewString()
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	path := r.Config.ResultDirectoryPath + "/evaluation_" + timestamp + "_" + runID[:8] + ".json"
	err := WriteJSONFile(path, map[string]any{
		"summary": summary,
		"results": results,
	})
	return path, err
}
