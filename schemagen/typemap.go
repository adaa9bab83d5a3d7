package schemagen

import (
	"fmt"

	"github.com/mhpenta/sigdef/typespec"
)

// Constraint tables: internal constraint key -> external JSON Schema key,
// applied as an ordered fold so that later constraints override earlier
// values (and fixed base values, for the bounded numeric types).
var (
	stringConstraints = [][2]string{
		{typespec.ConstraintMinLength, "minLength"},
		{typespec.ConstraintMaxLength, "maxLength"},
		{typespec.ConstraintPattern, "pattern"},
		{typespec.ConstraintFormat, "format"},
	}
	numericConstraints = [][2]string{
		{typespec.ConstraintMinimum, "minimum"},
		{typespec.ConstraintMaximum, "maximum"},
		{typespec.ConstraintMultipleOf, "multipleOf"},
	}
	arrayConstraints = [][2]string{
		{typespec.ConstraintMinItems, "minItems"},
		{typespec.ConstraintMaxItems, "maxItems"},
		{typespec.ConstraintUniqueItems, "uniqueItems"},
	}
	objectConstraints = [][2]string{
		{typespec.ConstraintMinProperties, "minProperties"},
		{typespec.ConstraintMaxProperties, "maxProperties"},
	}
)

// TypeToJSONSchema maps one field type to its JSON Schema fragment, then
// folds the applicable constraints over it. Nested composite types are
// mapped with empty constraint lists; constraints attach to the field, not
// to inner types.
//
// Unrecognized types degrade to a descriptive placeholder instead of
// failing, matching the non-failing contract of the diagnostic helpers.
func TypeToJSONSchema(t typespec.Type, constraints []typespec.Constraint) map[string]any {
	schema, table := baseSchema(t, constraints)
	return applyConstraints(schema, constraints, table)
}

func baseSchema(t typespec.Type, constraints []typespec.Constraint) (map[string]any, [][2]string) {
	switch v := t.(type) {
	case typespec.Primitive:
		return primitiveSchema(v, constraints)

	case typespec.List:
		return map[string]any{
			"type":  "array",
			"items": TypeToJSONSchema(v.Elem, nil),
		}, arrayConstraints

	case typespec.Dict:
		return map[string]any{
			"type": "object",
			"description": fmt.Sprintf("Dictionary with %s keys and %s values",
				typespec.Describe(v.Key), typespec.Describe(v.Value)),
			"additionalProperties": TypeToJSONSchema(v.Value, nil),
		}, objectConstraints

	case typespec.Union:
		oneOf := make([]any, len(v.Members))
		for i, m := range v.Members {
			oneOf[i] = TypeToJSONSchema(m, nil)
		}
		return map[string]any{
			"oneOf":       oneOf,
			"description": fmt.Sprintf("Union of %d possible types", len(v.Members)),
		}, nil

	default:
		return map[string]any{
			"description": fmt.Sprintf("Unknown type: %v", t),
		}, nil
	}
}

func primitiveSchema(p typespec.Primitive, constraints []typespec.Constraint) (map[string]any, [][2]string) {
	switch p.Name {
	case typespec.NameString:
		return map[string]any{"type": "string"}, stringConstraints

	case typespec.NameInteger:
		return map[string]any{"type": "integer"}, numericConstraints

	case typespec.NameFloat:
		return map[string]any{"type": "number"}, numericConstraints

	case typespec.NameBoolean:
		return map[string]any{"type": "boolean"}, nil

	case typespec.NameSymbol:
		if values, ok := enumValues(constraints); ok {
			return map[string]any{"type": "string", "enum": values}, nil
		}
		return map[string]any{"type": "string", "description": "Atom value"}, nil

	case typespec.NameAny:
		return map[string]any{"description": "Any value type"}, nil

	case typespec.NameMap:
		return map[string]any{"type": "object", "additionalProperties": true}, nil

	case typespec.NameEmbedding:
		return map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "number"},
			"description": "Vector embedding",
		}, arrayConstraints

	case typespec.NameProbability:
		return map[string]any{
			"type":        "number",
			"minimum":     0.0,
			"maximum":     1.0,
			"description": "Probability value between 0.0 and 1.0",
		}, numericConstraints

	case typespec.NameConfidenceScore:
		return map[string]any{
			"type":        "number",
			"minimum":     0.0,
			"maximum":     1.0,
			"description": "Confidence score between 0.0 and 1.0",
		}, numericConstraints

	case typespec.NameReasoningChain:
		return map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Step-by-step reasoning chain",
		}, arrayConstraints

	default:
		return map[string]any{
			"description": fmt.Sprintf("Unknown type: %s", p.Name),
		}, nil
	}
}

func applyConstraints(schema map[string]any, constraints []typespec.Constraint, table [][2]string) map[string]any {
	for _, c := range constraints {
		for _, pair := range table {
			if c.Key == pair[0] {
				schema[pair[1]] = c.Value
			}
		}
	}
	return schema
}

// enumValues extracts and stringifies an enum constraint, accepting any
// slice shape a caller might plausibly attach.
func enumValues(constraints []typespec.Constraint) ([]string, bool) {
	for _, c := range constraints {
		if c.Key != typespec.ConstraintEnum {
			continue
		}
		switch vs := c.Value.(type) {
		case []string:
			return vs, true
		case []any:
			out := make([]string, len(vs))
			for i, v := range vs {
				out[i] = fmt.Sprintf("%v", v)
			}
			return out, true
		}
	}
	return nil, false
}
