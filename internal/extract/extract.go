// Package extract pulls a JSON document out of raw model output. Model
// replies are untrusted: the document may arrive bare, inside a fenced code
// block, or buried in surrounding prose.
package extract

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var ErrMalformedDocument = errors.New("no valid JSON found in response")

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// JSON extracts the first parseable JSON object from text. Strategies are
// tried in order: the whole text, a fenced code block, the first balanced
// brace span. A malformed document at every stage is a hard failure, never a
// best-effort guess.
func JSON(text string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(text)

	if json.Valid([]byte(trimmed)) && strings.HasPrefix(trimmed, "{") {
		return json.RawMessage(trimmed), nil
	}

	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		if json.Valid([]byte(m[1])) {
			return json.RawMessage(m[1]), nil
		}
	}

	if span := balancedObject(text); span != "" && json.Valid([]byte(span)) {
		return json.RawMessage(span), nil
	}

	return nil, ErrMalformedDocument
}

// Into extracts and unmarshals in one step.
func Into(text string, v interface{}) error {
	raw, err := JSON(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return ErrMalformedDocument
	}
	return nil
}

// balancedObject returns the first balanced {...} span in text, tracking
// string literals so braces inside quoted values don't skew the depth.
func balancedObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
