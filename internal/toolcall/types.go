// Package toolcall defines the canonical tool-call record, the multi-dialect
// parser that normalizes assistant output into that record, and the schema
// validator that checks a parsed call against a tool catalog.
package toolcall

// DialectSource identifies which dialect handler produced a ParsedToolCall.
type DialectSource string

const (
	SourceNone                    DialectSource = "none"
	SourceMessageToolCalls        DialectSource = "message_tool_calls"
	SourceContentToolCallXML      DialectSource = "content_tool_call_xml"
	SourceContentLFMSpecialTokens DialectSource = "content_lfm_special_tokens"
	SourceContentGenericJSON      DialectSource = "content_generic_json"
	SourceContentPythonStyle      DialectSource = "content_python_style"
)

// FailureReason tags why validation, parsing, or a round failed.
type FailureReason string

const (
	FailureNone                FailureReason = ""
	FailureHallucinatedTool    FailureReason = "hallucinated_tool"
	FailureMissingRequired     FailureReason = "missing_required"
	FailureSchemaMismatch      FailureReason = "schema_mismatch"
	FailureWrongToolSelected   FailureReason = "wrong_tool_selected"
	FailureParseFailure        FailureReason = "parse_failure"
	FailureMaxToolRoundExceeded FailureReason = "max_tool_round_exceeded"
	FailureRequestError        FailureReason = "request_error"
)

// ParsedToolCall is one normalized tool-call candidate surfaced by the parser.
// It is immutable once constructed and consumed by the engine within a single
// round.
type ParsedToolCall struct {
	ToolName   string
	Arguments  map[string]any
	Source     DialectSource
	RawPayload string
}

// ValidationResult is the outcome of validating a ParsedToolCall (or an
// expected-vs-actual tool name comparison) against a catalog.
type ValidationResult struct {
	IsSuccess       bool
	FailureReason   FailureReason
	MatchedToolName string
}

// ChatMessage is the minimal surface of an assistant chat message the parser
// needs: the endpoint-native structured tool_calls list and the free-form
// content string. Both may be present or absent independently.
type ChatMessage struct {
	ToolCalls []ChatToolCall
	Content   string
}

// ChatToolCall mirrors the OpenAI-compatible structured tool-call entry:
// a function name plus a JSON-string-encoded arguments object.
type ChatToolCall struct {
	ID        string
	Name      string
	Arguments string
}
