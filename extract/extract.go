// Package extract pulls structured output fields out of raw model
// completions.
//
// Model responses rarely arrive as clean JSON: the object is wrapped in
// prose, fenced in markdown, or slightly malformed. Object locates the first
// complete JSON object in the input, optionally repairs common syntax damage
// (trailing commas, single quotes, unquoted keys, unbalanced braces) and
// decodes it into a map keyed by field name.
//
// Strict mode disables repair so that only well-formed JSON is accepted; use
// it when masking malformed output would hide a bug.
package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultMaxInputSize caps the raw input accepted by Object (1MB).
const DefaultMaxInputSize = 1 << 20

// ErrNoObject is returned when the input contains no complete JSON object.
var ErrNoObject = errors.New("no JSON object found in input")

// Options configures extraction.
type Options struct {
	// MaxInputSize limits the raw input in bytes. 0 means no limit.
	MaxInputSize int

	// Repair enables fixing of common JSON syntax damage before decoding.
	Repair bool
}

// DefaultOptions enables repair with the default size cap.
func DefaultOptions() Options {
	return Options{MaxInputSize: DefaultMaxInputSize, Repair: true}
}

// StrictOptions disables repair; only well-formed JSON passes.
func StrictOptions() Options {
	return Options{MaxInputSize: DefaultMaxInputSize, Repair: false}
}

// Object extracts the first JSON object from raw into a field map, repairing
// malformed input where possible.
func Object(raw []byte) (map[string]any, error) {
	return ObjectWithOptions(raw, DefaultOptions())
}

// ObjectStrict extracts the first JSON object from raw, accepting only
// well-formed JSON.
func ObjectStrict(raw []byte) (map[string]any, error) {
	return ObjectWithOptions(raw, StrictOptions())
}

// ObjectWithOptions extracts the first JSON object from raw with explicit
// options.
func ObjectWithOptions(raw []byte, opts Options) (map[string]any, error) {
	if opts.MaxInputSize > 0 && len(raw) > opts.MaxInputSize {
		return nil, fmt.Errorf("input size %d exceeds maximum allowed size %d", len(raw), opts.MaxInputSize)
	}

	candidate := firstObject(stripFences(raw))
	if candidate == nil {
		return nil, ErrNoObject
	}

	var fields map[string]any
	if err := json.Unmarshal(candidate, &fields); err == nil {
		return fields, nil
	} else if !opts.Repair {
		return nil, fmt.Errorf("failed to parse JSON object: %w", err)
	}

	repaired := repair(string(candidate))
	if err := json.Unmarshal([]byte(repaired), &fields); err != nil {
		return nil, fmt.Errorf("failed to parse JSON object after repair: %w", err)
	}
	return fields, nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if !bytes.HasPrefix(trimmed, []byte("```")) {
		return trimmed
	}
	trimmed = bytes.TrimPrefix(trimmed, []byte("```json"))
	trimmed = bytes.TrimPrefix(trimmed, []byte("```"))
	trimmed = bytes.TrimSuffix(bytes.TrimSpace(trimmed), []byte("```"))
	return bytes.TrimSpace(trimmed)
}

// firstObject returns the first balanced {...} span in data, or the whole
// prefix from the first '{' when braces never balance (repair may still
// close them). Returns nil when no '{' appears at all.
func firstObject(data []byte) []byte {
	start := bytes.IndexByte(data, '{')
	if start < 0 {
		return nil
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(data); i++ {
		c := data[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return data[start : i+1]
			}
		}
	}
	return data[start:]
}
