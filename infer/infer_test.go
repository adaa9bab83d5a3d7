package infer

import (
	"testing"

	"github.com/mhpenta/sigdef/schemagen"
	"github.com/mhpenta/sigdef/typespec"
)

type question struct {
	Question string   `json:"question"`
	Hints    []string `json:"hints,omitempty"`
}

type answer struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}

func TestFieldsOf(t *testing.T) {
	fields, err := FieldsOf[question]()
	if err != nil {
		t.Fatalf("FieldsOf returned error: %v", err)
	}
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %v", fields)
	}

	// Sorted by name: hints, question.
	if fields[0].Name != "hints" || fields[1].Name != "question" {
		t.Fatalf("unexpected field order: %v", fields)
	}
	if _, ok := fields[0].Type.(typespec.List); !ok {
		t.Errorf("hints should infer as a list, got %#v", fields[0].Type)
	}
	if fields[1].Type != typespec.Type(typespec.String) {
		t.Errorf("question should infer as string, got %#v", fields[1].Type)
	}

	if !fields[0].Optional() {
		t.Error("omitempty field should be optional")
	}
	if fields[1].Optional() {
		t.Error("required field should not be optional")
	}
}

func TestFieldsOf_NonStruct(t *testing.T) {
	if _, err := FieldsOf[int](); err == nil {
		t.Error("expected error for non-object type")
	}
}

func TestSignatureOf(t *testing.T) {
	sig, err := SignatureOf[question, answer]("QA")
	if err != nil {
		t.Fatalf("SignatureOf returned error: %v", err)
	}
	if sig.Owner != "QA" {
		t.Errorf("Owner = %q", sig.Owner)
	}
	if len(sig.Inputs) != 2 || len(sig.Outputs) != 2 {
		t.Fatalf("Inputs = %v, Outputs = %v", sig.Inputs, sig.Outputs)
	}
	if sig.Outputs[1].Name != "score" || sig.Outputs[1].Type != typespec.Type(typespec.Float) {
		t.Errorf("score should infer as float, got %#v", sig.Outputs[1])
	}
}

func TestCompiledOf(t *testing.T) {
	c, err := CompiledOf[question, answer]("QA")
	if err != nil {
		t.Fatalf("CompiledOf returned error: %v", err)
	}

	schema := c.ToJSONSchema(schemagen.DialectOpenAI)
	properties := schema["properties"].(map[string]any)
	for _, name := range []string{"question", "hints", "answer", "score"} {
		if _, ok := properties[name]; !ok {
			t.Errorf("property %q missing from schema", name)
		}
	}

	if _, err := c.ValidateInputs(map[string]any{"question": "what is go?"}); err != nil {
		t.Errorf("ValidateInputs returned error: %v", err)
	}
}

func TestTypeFromSchema_Composites(t *testing.T) {
	dict := typeFromSchema(map[string]any{
		"type":                 "object",
		"additionalProperties": map[string]any{"type": "integer"},
	})
	if dict != typespec.Type(typespec.Dict{Key: typespec.String, Value: typespec.Integer}) {
		t.Errorf("expected dict[string, integer], got %#v", dict)
	}

	union := typeFromSchema(map[string]any{
		"anyOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
	})
	u, ok := union.(typespec.Union)
	if !ok || len(u.Members) != 2 {
		t.Errorf("expected union of two members, got %#v", union)
	}

	if typeFromSchema(nil) != typespec.Type(typespec.Any) {
		t.Error("nil fragment should map to any")
	}
}
