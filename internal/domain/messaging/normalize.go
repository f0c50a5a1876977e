package messaging

import (
	"encoding/json"
	"strings"
)

// MaxMessageLength is the hard cap on a delivered message, in characters.
const MaxMessageLength = 200

const ellipsis = "..."

// Normalize cleans a raw model response into a deliverable message.
//
// The fallback chain is fixed: strip code fences, then try a structured
// {"message": "..."} parse, then strip surrounding quotes, then truncate.
// Whatever survives the chain is accepted as-is; an empty result means the
// response was unusable.
func Normalize(raw string) string {
	text := strings.TrimSpace(raw)
	text = stripCodeFence(text)

	if msg, ok := extractJSONEnvelope(text); ok {
		text = strings.TrimSpace(msg)
	} else {
		text = stripSurroundingQuotes(text)
	}

	return Truncate(text)
}

// stripCodeFence removes a wrapping markdown fence, including a language tag
// on the opening line.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	trimmed := strings.TrimPrefix(s, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// Drop the language tag line (e.g. "json").
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// extractJSONEnvelope unwraps a {"message": "..."} response.
func extractJSONEnvelope(s string) (string, bool) {
	if !strings.HasPrefix(s, "{") {
		return "", false
	}
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(s), &envelope); err != nil || envelope.Message == "" {
		return "", false
	}
	return envelope.Message, true
}

func stripSurroundingQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

// Truncate caps text at MaxMessageLength characters, appending an ellipsis
// marker when the raw text was longer. The marker counts toward the cap.
func Truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxMessageLength {
		return s
	}
	return string(runes[:MaxMessageLength-len(ellipsis)]) + ellipsis
}
