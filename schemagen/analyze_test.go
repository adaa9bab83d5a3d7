package schemagen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhpenta/sigdef/typespec"
)

func TestEstimateComplexity_FlatSchema(t *testing.T) {
	inputs := []typespec.Field{{Name: "question", Type: typespec.String}}
	outputs := []typespec.Field{{Name: "answer", Type: typespec.String}}
	schema := Generate("QA", inputs, outputs, DialectOpenAI)

	// 2 properties, depth 1 (root -> property), types {object, string}.
	assert.Equal(t, 2+2*1+2, EstimateComplexity(schema))
}

func TestEstimateComplexity_ListWrappingIncreases(t *testing.T) {
	outputs := []typespec.Field{{Name: "summary", Type: typespec.String}}

	flat := Generate("S", []typespec.Field{{Name: "docs", Type: typespec.String}}, outputs, DialectOpenAI)
	wrapped := Generate("S", []typespec.Field{{Name: "docs", Type: typespec.List{Elem: typespec.String}}}, outputs, DialectOpenAI)

	assert.Greater(t, EstimateComplexity(wrapped), EstimateComplexity(flat),
		"one extra list layer must strictly increase complexity")
}

func TestEstimateComplexity_UnionDepth(t *testing.T) {
	union := typespec.Union{Members: []typespec.Type{
		typespec.String,
		typespec.List{Elem: typespec.Integer},
	}}
	schema := Generate("U", []typespec.Field{{Name: "value", Type: union}}, nil, DialectOpenAI)

	// Deepest path: root -> value -> oneOf member -> items.
	// 1 property, depth 3, types {object, string, array, integer}.
	assert.Equal(t, 1+2*3+4, EstimateComplexity(schema))
}

func TestEstimateComplexity_NonObjectSchema(t *testing.T) {
	inputs := []typespec.Field{{Name: "question", Type: typespec.String}}
	envelope := Generate("QA", inputs, nil, DialectAnthropic)
	assert.Equal(t, 1, EstimateComplexity(envelope), "the anthropic envelope has no top-level properties")

	assert.Equal(t, 1, EstimateComplexity(map[string]any{"type": "string"}))
	assert.Equal(t, 1, EstimateComplexity(map[string]any{}))
}

func TestValidateSchema(t *testing.T) {
	inputs := []typespec.Field{{Name: "question", Type: typespec.String}}
	outputs := []typespec.Field{{Name: "answer", Type: typespec.String}}

	assert.NoError(t, ValidateSchema(Generate("QA", inputs, outputs, DialectOpenAI)))
	assert.NoError(t, ValidateSchema(Generate("QA", inputs, outputs, DialectGeneric)))
	assert.NoError(t, ValidateSchema(Generate("QA", inputs, outputs, DialectAnthropic)))

	err := ValidateSchema(map[string]any{"type": "string"})
	assert.ErrorContains(t, err, "invalid schema structure")

	err = ValidateSchema(map[string]any{"properties": "not a map", "required": []string{}})
	assert.Error(t, err)
}
