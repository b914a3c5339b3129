package engine

// Requirement: spec.md §6 — fixed system prompt templates, no interpolation.
// Carried over unchanged in meaning from
// original_source/.../prompt_templates.py.

// DefaultSystemPrompt instructs the model to emit tool calls as JSON,
// restrict itself to the advertised tool list, supply all required
// arguments, invent no tools, emit tool calls without surrounding prose, and
// answer normally when no tool is needed.
func DefaultSystemPrompt() string {
	return "You are a reliable tool-calling assistant.\n" +
		"Output function calls as JSON.\n" +
		"Rules:\n" +
		"1) Call only tools from the provided tools list.\n" +
		"2) Include all required arguments and use correct argument names.\n" +
		"3) Do not invent unknown tools.\n" +
		"4) If a tool call is needed, return only the tool call, without extra prose.\n" +
		"5) If no tool is needed, answer normally.\n"
}

// StrictJSONOnlySystemPrompt additionally fixes the exact shape
// {"name":"...","arguments":{...}} and forbids markdown, XML tags, or
// explanations.
func StrictJSONOnlySystemPrompt() string {
	return "You are a deterministic function router.\n" +
		"Output function calls as JSON.\n" +
		"If a tool call is needed, return exactly this shape and nothing else:\n" +
		`{"name":"tool_name","arguments":{"required_key":"value"}}` + "\n" +
		"Do not include markdown, XML tags, or explanatory text.\n" +
		"Use only available tools and include all required arguments.\n"
}

// RepairPromptForParseFailure is the single user-role repair message
// appended after a parse failure, asking for exactly one valid JSON
// function call with only required arguments.
func RepairPromptForParseFailure() string {
	return "Your previous tool call format was invalid.\n" +
		"Retry and output a single valid JSON function call with required arguments only."
}
