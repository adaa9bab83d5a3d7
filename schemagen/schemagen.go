// Package schemagen projects compiled signature fields onto external
// JSON-Schema-shaped dialects.
//
// Three dialects are supported: DialectOpenAI (a flat function-calling
// payload schema over inputs and outputs), DialectAnthropic (a tool
// definition describing only the call arguments, wrapped in an input_schema
// envelope) and DialectGeneric (a standard JSON Schema document with $schema
// and title). Key names in the emitted maps match the wire formats of the
// downstream consumers verbatim.
//
// All functions are pure; schemas are plain map[string]any values ready for
// json.Marshal.
package schemagen

import (
	"fmt"
	"strings"

	"github.com/mhpenta/sigdef/typespec"
)

// Dialect selects the target schema format.
type Dialect string

const (
	DialectOpenAI    Dialect = "openai"
	DialectAnthropic Dialect = "anthropic"
	DialectGeneric   Dialect = "generic"
)

// GenericSchemaURI is the $schema value emitted by the generic dialect.
const GenericSchemaURI = "http://json-schema.org/draft-07/schema#"

// Generate projects a compiled signature's fields onto the given dialect.
//
// The openai and generic dialects combine inputs and outputs into one flat
// field set; anthropic describes only the inputs, since its tool schema
// covers call arguments and not results. Generate panics on an unknown
// dialect: a bad dialect tag is caller misconfiguration, not a runtime
// condition.
func Generate(owner string, inputs, outputs []typespec.Field, dialect Dialect) map[string]any {
	description := typespec.DescribeFields(inputs) + " -> " + typespec.DescribeFields(outputs)

	switch dialect {
	case DialectOpenAI:
		fields := append(append([]typespec.Field{}, inputs...), outputs...)
		schema := ObjectSchema(fields)
		schema["description"] = description
		return schema

	case DialectAnthropic:
		return map[string]any{
			"input_schema": ObjectSchema(inputs),
			"description":  description,
		}

	case DialectGeneric:
		fields := append(append([]typespec.Field{}, inputs...), outputs...)
		schema := ObjectSchema(fields)
		schema["$schema"] = GenericSchemaURI
		schema["title"] = normalizeTitle(owner)
		schema["description"] = description
		return schema

	default:
		panic(fmt.Sprintf("unsupported schema dialect: %q (supported: openai, anthropic, generic)", dialect))
	}
}

// ObjectSchema builds the shared object body: per-field property schemas,
// the required list (every field without optional=true, in declaration
// order) and a closed additionalProperties.
func ObjectSchema(fields []typespec.Field) map[string]any {
	properties := make(map[string]any, len(fields))
	required := []string{}
	for _, f := range fields {
		properties[f.Name] = TypeToJSONSchema(f.Type, f.Constraints)
		if !f.Optional() {
			required = append(required, f.Name)
		}
	}
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
}

// normalizeTitle converts an owner identifier into a schema title: runs of
// non-alphanumeric characters become single underscores.
func normalizeTitle(owner string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range owner {
		alnum := r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
		if alnum {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore && b.Len() > 0 {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
