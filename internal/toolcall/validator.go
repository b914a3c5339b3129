package toolcall

import "github.com/hyperifyio/toolcallbench/internal/toolcatalog"

// ValidateToolCallAgainstSchema checks a tool_name/arguments pair against the
// catalog. Checks are ordered and the first failure wins:
//  1. tool_name not in the catalog -> hallucinated_tool
//  2. arguments is not a mapping -> schema_mismatch (structurally unreachable
//     through Parse, since ParsedToolCall.Arguments is always a map; kept for
//     direct callers that bypass the parser)
//  3. a required key absent -> missing_required
//  4. an unknown key when additionalProperties is false -> schema_mismatch
//  5. a declared-type mismatch on any known key -> schema_mismatch
func ValidateToolCallAgainstSchema(toolName string, arguments map[string]any, catalog *toolcatalog.Catalog) ValidationResult {
	schema, ok := catalog.SchemaFor(toolName)
	if !ok {
		return ValidationResult{IsSuccess: false, FailureReason: FailureHallucinatedTool}
	}

	if arguments == nil {
		return ValidationResult{IsSuccess: false, FailureReason: FailureSchemaMismatch, MatchedToolName: toolName}
	}

	for _, required := range schema.Required {
		if _, present := arguments[required]; !present {
			return ValidationResult{IsSuccess: false, FailureReason: FailureMissingRequired, MatchedToolName: toolName}
		}
	}

	if !schema.AdditionalPropertiesAllowed {
		for key := range arguments {
			if _, declared := schema.Properties[key]; !declared {
				return ValidationResult{IsSuccess: false, FailureReason: FailureSchemaMismatch, MatchedToolName: toolName}
			}
		}
	}

	for key, value := range arguments {
		prop, declared := schema.Properties[key]
		if !declared {
			continue
		}
		if !isArgumentTypeValid(value, prop.Type) {
			return ValidationResult{IsSuccess: false, FailureReason: FailureSchemaMismatch, MatchedToolName: toolName}
		}
	}

	return ValidationResult{IsSuccess: true, MatchedToolName: toolName}
}

// ValidateExpectedTool is used by the evaluation collaborator only, to
// compare the tool the engine actually selected against the tool the case
// expected.
func ValidateExpectedTool(expectedName, actualName string) ValidationResult {
	if expectedName != actualName {
		return ValidationResult{IsSuccess: false, FailureReason: FailureWrongToolSelected, MatchedToolName: actualName}
	}
	return ValidationResult{IsSuccess: true, MatchedToolName: actualName}
}

// isArgumentTypeValid checks a runtime value against a declared type tag.
// Booleans are excluded from integer/number matches even though Go's
// json-decoded bool is not an int64/float64, this guard documents the
// exclusion explicitly per spec.md §9 rather than relying on it falling out
// of the type switch by accident.
func isArgumentTypeValid(value any, declaredType toolcatalog.PropertyType) bool {
	switch declaredType {
	case toolcatalog.TypeUnspecified:
		return true
	case toolcatalog.TypeString:
		_, ok := value.(string)
		return ok
	case toolcatalog.TypeObject:
		_, ok := value.(map[string]any)
		return ok
	case toolcatalog.TypeBoolean:
		_, ok := value.(bool)
		return ok
	case toolcatalog.TypeInteger:
		if _, isBool := value.(bool); isBool {
			return false
		}
		switch n := value.(type) {
		case int, int64:
			return true
		case float64:
			return n == float64(int64(n))
		default:
			return false
		}
	case toolcatalog.TypeNumber:
		if _, isBool := value.(bool); isBool {
			return false
		}
		switch value.(type) {
		case int, int64, float64:
			return true
		default:
			return false
		}
	default:
		return true
	}
}
