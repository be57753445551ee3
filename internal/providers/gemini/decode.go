package gemini

import (
	"encoding/json"
	"errors"
	"strings"

	"promptstudio/internal/domain"
)

// ParseError reports a completion that could not be decoded into the
// requested shape.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return "JSON Parsing Error: The AI returned a response that was not valid JSON."
}

func (e *ParseError) Unwrap() []error {
	return []error{domain.ErrMalformedResponse, e.Err}
}

// DecodeJSON unmarshals a model answer, tolerating code fences and prose
// around the JSON value.
func DecodeJSON[T any](raw string) (T, error) {
	var zero T
	cleaned := extractJSONFragment(raw)
	if cleaned == "" {
		return zero, &ParseError{Raw: raw, Err: errors.New("empty payload")}
	}
	var decoded T
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return zero, &ParseError{Raw: raw, Err: err}
	}
	return decoded, nil
}

func extractJSONFragment(raw string) string {
	text := trimCodeFence(raw)
	if text == "" {
		return ""
	}
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
