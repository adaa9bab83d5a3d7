package schemagen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhpenta/sigdef/typespec"
)

func TestTypeToJSONSchema_BaseFragments(t *testing.T) {
	tests := []struct {
		name string
		typ  typespec.Type
		want map[string]any
	}{
		{"string", typespec.String, map[string]any{"type": "string"}},
		{"integer", typespec.Integer, map[string]any{"type": "integer"}},
		{"float", typespec.Float, map[string]any{"type": "number"}},
		{"boolean", typespec.Boolean, map[string]any{"type": "boolean"}},
		{"symbol", typespec.Symbol, map[string]any{"type": "string", "description": "Atom value"}},
		{"any", typespec.Any, map[string]any{"description": "Any value type"}},
		{"map", typespec.Map, map[string]any{"type": "object", "additionalProperties": true}},
		{"embedding", typespec.Embedding, map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "number"},
			"description": "Vector embedding",
		}},
		{"probability", typespec.Probability, map[string]any{
			"type":        "number",
			"minimum":     0.0,
			"maximum":     1.0,
			"description": "Probability value between 0.0 and 1.0",
		}},
		{"confidence_score", typespec.ConfidenceScore, map[string]any{
			"type":        "number",
			"minimum":     0.0,
			"maximum":     1.0,
			"description": "Confidence score between 0.0 and 1.0",
		}},
		{"reasoning_chain", typespec.ReasoningChain, map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Step-by-step reasoning chain",
		}},
		{"list", typespec.List{Elem: typespec.Integer}, map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "integer"},
		}},
		{"dict", typespec.Dict{Key: typespec.String, Value: typespec.Float}, map[string]any{
			"type":                 "object",
			"description":          "Dictionary with string keys and float values",
			"additionalProperties": map[string]any{"type": "number"},
		}},
		{"union", typespec.Union{Members: []typespec.Type{typespec.String, typespec.Integer}}, map[string]any{
			"oneOf": []any{
				map[string]any{"type": "string"},
				map[string]any{"type": "integer"},
			},
			"description": "Union of 2 possible types",
		}},
		{"unknown", typespec.Primitive{Name: "mystery"}, map[string]any{
			"description": "Unknown type: mystery",
		}},
		{"nil", nil, map[string]any{
			"description": "Unknown type: <nil>",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeToJSONSchema(tt.typ, nil))
		})
	}
}

func TestTypeToJSONSchema_StringConstraints(t *testing.T) {
	constraints := []typespec.Constraint{
		{Key: typespec.ConstraintMinLength, Value: 1},
		{Key: typespec.ConstraintMaxLength, Value: 80},
		{Key: typespec.ConstraintPattern, Value: "^[a-z]+$"},
		{Key: typespec.ConstraintFormat, Value: "email"},
		{Key: typespec.ConstraintMinItems, Value: 3}, // not applicable to strings
	}
	schema := TypeToJSONSchema(typespec.String, constraints)

	assert.Equal(t, map[string]any{
		"type":      "string",
		"minLength": 1,
		"maxLength": 80,
		"pattern":   "^[a-z]+$",
		"format":    "email",
	}, schema, "inapplicable constraints are no-ops")
}

func TestTypeToJSONSchema_NumericConstraints(t *testing.T) {
	constraints := []typespec.Constraint{
		{Key: typespec.ConstraintMinimum, Value: 0},
		{Key: typespec.ConstraintMaximum, Value: 100},
		{Key: typespec.ConstraintMultipleOf, Value: 5},
	}
	schema := TypeToJSONSchema(typespec.Integer, constraints)

	assert.Equal(t, map[string]any{
		"type":       "integer",
		"minimum":    0,
		"maximum":    100,
		"multipleOf": 5,
	}, schema)
}

func TestTypeToJSONSchema_ProbabilityBounds(t *testing.T) {
	schema := TypeToJSONSchema(typespec.Probability, nil)
	assert.Equal(t, 0.0, schema["minimum"])
	assert.Equal(t, 1.0, schema["maximum"])

	// An applied minimum narrows the range; the fixed maximum stays put.
	narrowed := TypeToJSONSchema(typespec.Probability, []typespec.Constraint{
		{Key: typespec.ConstraintMinimum, Value: 0.1},
	})
	assert.Equal(t, 0.1, narrowed["minimum"])
	assert.Equal(t, 1.0, narrowed["maximum"])
}

func TestTypeToJSONSchema_SymbolEnum(t *testing.T) {
	schema := TypeToJSONSchema(typespec.Symbol, []typespec.Constraint{
		{Key: typespec.ConstraintEnum, Value: []any{"low", "medium", "high"}},
	})
	assert.Equal(t, map[string]any{
		"type": "string",
		"enum": []string{"low", "medium", "high"},
	}, schema)
}

func TestTypeToJSONSchema_ArrayAndObjectConstraints(t *testing.T) {
	listSchema := TypeToJSONSchema(typespec.List{Elem: typespec.String}, []typespec.Constraint{
		{Key: typespec.ConstraintMinItems, Value: 1},
		{Key: typespec.ConstraintMaxItems, Value: 10},
		{Key: typespec.ConstraintUniqueItems, Value: true},
	})
	assert.Equal(t, 1, listSchema["minItems"])
	assert.Equal(t, 10, listSchema["maxItems"])
	assert.Equal(t, true, listSchema["uniqueItems"])

	dictSchema := TypeToJSONSchema(typespec.Dict{Key: typespec.String, Value: typespec.Any}, []typespec.Constraint{
		{Key: typespec.ConstraintMinProperties, Value: 1},
		{Key: typespec.ConstraintMaxProperties, Value: 5},
	})
	assert.Equal(t, 1, dictSchema["minProperties"])
	assert.Equal(t, 5, dictSchema["maxProperties"])
}

func TestTypeToJSONSchema_ConstraintsDoNotReachNestedTypes(t *testing.T) {
	schema := TypeToJSONSchema(typespec.List{Elem: typespec.String}, []typespec.Constraint{
		{Key: typespec.ConstraintMaxLength, Value: 10},
	})
	items := schema["items"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string"}, items,
		"field constraints apply at the field level, not to inner types")
}
