// Package evalharness replays a fixed set of evaluation cases through the
// engine and aggregates a strict-success rate, the Go counterpart of the
// distilled evaluation_runner.py / evaluation_metrics.py pair.
package evalharness

import "github.com/hyperifyio/toolcallbench/internal/toolcall"

// Case is a single evaluation scenario and its expected tool-calling
// behavior.
type Case struct {
	CaseIdentifier       string   `json:"case_identifier"`
	UserPrompt           string   `json:"user_prompt"`
	ExpectedToolName     string   `json:"expected_tool_name"`
	RequiredArgumentKeys []string `json:"required_argument_keys"`
	OptionalArgumentKeys []string `json:"optional_argument_keys,omitempty"`
	ShouldCallTool       bool     `json:"should_call_tool"`
	Tags                 []string `json:"tags,omitempty"`
}

// CaseResult is the evaluation result of one case.
type CaseResult struct {
	CaseIdentifier   string                 `json:"case_identifier"`
	IsSuccess        bool                   `json:"is_success"`
	FailureReason    toolcall.FailureReason `json:"failure_reason,omitempty"`
	Source           toolcall.DialectSource `json:"source"`
	ExpectedToolName string                 `json:"expected_tool_name"`
	ActualToolName   string                 `json:"actual_tool_name,omitempty"`
}

// Summary aggregates strict-success metrics and reason-level failure
// statistics across a run.
type Summary struct {
	TotalCases            int                            `json:"total_cases"`
	SuccessfulCases        int                            `json:"successful_cases"`
	StrictSuccessRate      float64                        `json:"strict_success_rate"`
	FailureCountsByReason  map[toolcall.FailureReason]int `json:"failure_counts_by_reason"`
}

// Summarize computes a Summary from a list of CaseResults.
func Summarize(results []CaseResult) Summary {
	summary := Summary{
		TotalCases:            len(results),
		FailureCountsByReason: make(map[toolcall.FailureReason]int),
	}
	for _, r := range results {
		if r.IsSuccess {
			summary.SuccessfulCases++
			continue
		}
		reason := r.FailureReason
		if reason == "" {
			reason = "unknown_failure"
		}
		summary.FailureCountsByReason[reason]++
	}
	if summary.TotalCases > 0 {
		summary.StrictSuccessRate = float64(summary.SuccessfulCases) / float64(summary.TotalCases)
	}
	return summary
}
