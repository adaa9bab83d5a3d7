// Package signature compiles signature expressions into validated metadata
// and a fixed introspection API.
//
// A signature expression declares the named, typed inputs and outputs of a
// model-invocation contract:
//
//	question: string -> answer: string
//	context: string, question: string -> answer: string, confidence: float
//
// Compile parses the expression, validates every field type against the
// typespec grammar and returns a Compiled value exposing the generated
// entry points: Signature, InputFields, OutputFields, ValidateInputs,
// ValidateOutputs, ToJSONSchema and Describe.
//
// Compilation is an all-or-nothing, build-time step. A malformed signature
// is a programmer error: use MustCompile at package init when failure should
// stop the program.
package signature

import (
	"regexp"
	"strings"

	"github.com/mhpenta/sigdef/typespec"
)

// Signature is the compiled metadata record: ordered input and output field
// lists plus the identifier of the defining unit. It is created once and
// immutable thereafter; a new definition produces a new Signature.
//
// Field-name uniqueness within inputs or outputs is not enforced.
type Signature struct {
	Inputs  []typespec.Field
	Outputs []typespec.Field
	Owner   string
}

// Describe renders the signature as
// "<input descriptions> -> <output descriptions>".
func (s *Signature) Describe() string {
	return typespec.DescribeFields(s.Inputs) + " -> " + typespec.DescribeFields(s.Outputs)
}

var identifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// parseExpression splits an arrow expression into input and output fields.
// Field constraints start empty at parse time; call sites attach them via
// WithConstraints after parsing.
func parseExpression(expr string) (inputs, outputs []typespec.Field, reason string) {
	switch strings.Count(expr, "->") {
	case 1:
	case 0:
		return nil, nil, `missing "->" between inputs and outputs`
	default:
		return nil, nil, `expected exactly one "->" between inputs and outputs`
	}

	sides := strings.SplitN(expr, "->", 2)

	inputs, reason = parseFields(sides[0])
	if reason != "" {
		return nil, nil, "in inputs: " + reason
	}
	outputs, reason = parseFields(sides[1])
	if reason != "" {
		return nil, nil, "in outputs: " + reason
	}
	if len(inputs) == 0 {
		return nil, nil, "at least one input field is required"
	}
	if len(outputs) == 0 {
		return nil, nil, "at least one output field is required"
	}
	return inputs, outputs, ""
}

func parseFields(side string) ([]typespec.Field, string) {
	side = strings.TrimSpace(side)
	if side == "" {
		return nil, ""
	}

	var fields []typespec.Field
	for _, raw := range splitFields(side) {
		name, typeExpr, ok := strings.Cut(raw, ":")
		if !ok {
			return nil, `invalid field ` + quote(raw) + ` (expected "name: type")`
		}
		name = strings.TrimSpace(name)
		typeExpr = strings.TrimSpace(typeExpr)
		if !identifierRe.MatchString(name) {
			return nil, "invalid field name " + quote(name)
		}
		if typeExpr == "" {
			return nil, "field " + quote(name) + " is missing a type annotation"
		}
		typ, err := typespec.Parse(typeExpr)
		if err != nil {
			return nil, "field " + quote(name) + ": " + err.Error()
		}
		fields = append(fields, typespec.Field{Name: name, Type: typ})
	}
	return fields, ""
}

// splitFields splits a field list on commas outside composite type brackets,
// so "a: string, b: dict[string, integer]" yields two fields.
func splitFields(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

func quote(s string) string {
	return `"` + s + `"`
}
