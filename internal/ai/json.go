package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CleanJSON removes markdown code fences if present (e.g. ```json ... ```).
// Models frequently wrap structured output this way even when asked not to.
func CleanJSON(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

// DecodeJSON parses a model response into target, tolerating fenced JSON
// and JSON embedded in surrounding prose. Returns an error when no valid
// object can be recovered; callers decide whether that is fatal.
func DecodeJSON(input string, target interface{}) error {
	cleaned := CleanJSON(input)
	if cleaned == "" {
		return fmt.Errorf("empty model response")
	}

	if err := json.Unmarshal([]byte(cleaned), target); err == nil {
		return nil
	}

	// The model sometimes prefixes the object with commentary. Recover the
	// first balanced JSON object and try again.
	if extracted := extractBalancedObject(cleaned); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), target); err == nil {
			return nil
		}
	}

	return fmt.Errorf("failed to parse JSON from model response: %s", truncate(cleaned, 120))
}

// extractBalancedObject returns the first top-level {...} span in input,
// respecting string literals and escapes.
func extractBalancedObject(input string) string {
	depth := 0
	inString := false
	escape := false
	start := -1

	for i, ch := range input {
		if escape {
			escape = false
			continue
		}
		switch {
		case ch == '\\':
			escape = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			if depth == 0 {
				start = i
			}
			depth++
		case ch == '}':
			depth--
			if depth == 0 && start >= 0 {
				return input[start : i+1]
			}
		}
	}
	return ""
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
