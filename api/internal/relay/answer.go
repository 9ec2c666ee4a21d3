package relay

import (
	"bytes"
	"encoding/json"
	"strings"
)

// StripCodeFences removes a Markdown fence (```json or ```) wrapped around
// the model's answer.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "```json"); ok {
		s = rest
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseAnswer decodes the model's text into a Result.
func ParseAnswer(text string) (Result, error) {
	cleaned := StripCodeFences(text)
	if cleaned == "" {
		return Result{}, parseError(nil, "Gemini response is empty")
	}

	var v any
	if err := json.Unmarshal([]byte(cleaned), &v); err != nil {
		return Result{}, parseError(err, "Gemini response is not valid JSON: %v", err)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(cleaned)); err != nil {
		return Result{}, parseError(err, "Gemini response is not valid JSON: %v", err)
	}

	res := Result{Raw: buf.Bytes()}
	if obj, ok := v.(map[string]any); ok {
		if fb, ok := obj["feedback"].(string); ok {
			res.Feedback = fb
		}
	}
	return res, nil
}
