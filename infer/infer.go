// Package infer derives signature fields from Go types.
//
// Callers who prefer Go structs over the textual signature DSL can build a
// Signature directly from their request/response types:
//
//	type Question struct {
//	    Question string `json:"question"`
//	    Hint     string `json:"hint,omitempty"`
//	}
//
//	type Answer struct {
//	    Answer string `json:"answer"`
//	}
//
//	sig, err := infer.SignatureOf[Question, Answer]("QA")
//
// The Go type is reflected into a JSON schema via
// github.com/google/jsonschema-go, and the schema is mapped back onto
// typespec types. Because JSON schema properties are unordered, inferred
// fields come out sorted by name.
package infer

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/mhpenta/sigdef/signature"
	"github.com/mhpenta/sigdef/typespec"
)

// FieldsOf reflects T into a field list. T must reflect to an object schema,
// which in practice means a struct type. Properties the schema does not mark
// required carry an optional=true constraint.
func FieldsOf[T any]() ([]typespec.Field, error) {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, fmt.Errorf("generating schema: %w", err)
	}

	m, err := schemaToMap(schema)
	if err != nil {
		return nil, err
	}

	properties, ok := m["properties"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("type %T does not reflect to an object schema", *new(T))
	}

	required := map[string]bool{}
	if names, ok := m["required"].([]any); ok {
		for _, name := range names {
			if s, ok := name.(string); ok {
				required[s] = true
			}
		}
	}

	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]typespec.Field, 0, len(names))
	for _, name := range names {
		prop, _ := properties[name].(map[string]any)
		f := typespec.Field{Name: name, Type: typeFromSchema(prop)}
		if !required[name] {
			f.Constraints = []typespec.Constraint{{Key: typespec.ConstraintOptional, Value: true}}
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// SignatureOf reflects In and Out into a complete signature for the given
// owning unit.
func SignatureOf[In, Out any](owner string) (*signature.Signature, error) {
	inputs, err := FieldsOf[In]()
	if err != nil {
		return nil, fmt.Errorf("inferring input fields: %w", err)
	}
	outputs, err := FieldsOf[Out]()
	if err != nil {
		return nil, fmt.Errorf("inferring output fields: %w", err)
	}
	return &signature.Signature{Inputs: inputs, Outputs: outputs, Owner: owner}, nil
}

// CompiledOf reflects In and Out and compiles the result, so the generated
// entry points are available immediately.
func CompiledOf[In, Out any](owner string, opts ...signature.Option) (*signature.Compiled, error) {
	sig, err := SignatureOf[In, Out](owner)
	if err != nil {
		return nil, err
	}
	return signature.New(sig, opts...)
}

// schemaToMap round-trips a schema through its JSON form. The jsonschema
// package uses custom marshalling, so this is the faithful way to get a
// plain map view.
func schemaToMap(s *jsonschema.Schema) (map[string]any, error) {
	data, err := s.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshalling schema: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshalling schema: %w", err)
	}
	return m, nil
}

// typeFromSchema maps a JSON schema fragment onto the nearest typespec type.
// Shapes with no better mapping degrade to "any" rather than failing, since
// every Go value is at least representable there.
func typeFromSchema(m map[string]any) typespec.Type {
	if m == nil {
		return typespec.Any
	}

	switch m["type"] {
	case "string":
		return typespec.String
	case "integer":
		return typespec.Integer
	case "number":
		return typespec.Float
	case "boolean":
		return typespec.Boolean
	case "array":
		if items, ok := m["items"].(map[string]any); ok {
			return typespec.List{Elem: typeFromSchema(items)}
		}
		return typespec.List{Elem: typespec.Any}
	case "object":
		if ap, ok := m["additionalProperties"].(map[string]any); ok {
			return typespec.Dict{Key: typespec.String, Value: typeFromSchema(ap)}
		}
		return typespec.Map
	}

	for _, key := range []string{"oneOf", "anyOf"} {
		members, ok := m[key].([]any)
		if !ok || len(members) == 0 {
			continue
		}
		union := typespec.Union{Members: make([]typespec.Type, 0, len(members))}
		for _, member := range members {
			fragment, _ := member.(map[string]any)
			union.Members = append(union.Members, typeFromSchema(fragment))
		}
		return union
	}

	return typespec.Any
}
