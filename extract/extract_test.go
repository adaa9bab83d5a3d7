package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestObject_CleanJSON(t *testing.T) {
	got, err := Object([]byte(`{"answer": "go is a language", "confidence": 0.9}`))
	if err != nil {
		t.Fatalf("Object returned error: %v", err)
	}
	if got["answer"] != "go is a language" {
		t.Errorf("answer = %v", got["answer"])
	}
	if got["confidence"] != 0.9 {
		t.Errorf("confidence = %v", got["confidence"])
	}
}

func TestObject_ProseWrapped(t *testing.T) {
	raw := []byte(`Sure! Here is the result you asked for: {"answer": "42"} Hope that helps.`)
	got, err := Object(raw)
	if err != nil {
		t.Fatalf("Object returned error: %v", err)
	}
	if got["answer"] != "42" {
		t.Errorf("answer = %v", got["answer"])
	}
}

func TestObject_CodeFence(t *testing.T) {
	raw := []byte("```json\n{\"answer\": \"fenced\"}\n```")
	got, err := Object(raw)
	if err != nil {
		t.Fatalf("Object returned error: %v", err)
	}
	if got["answer"] != "fenced" {
		t.Errorf("answer = %v", got["answer"])
	}
}

func TestObject_NestedObject(t *testing.T) {
	raw := []byte(`prefix {"outer": {"inner": [1, 2]}} suffix`)
	got, err := Object(raw)
	if err != nil {
		t.Fatalf("Object returned error: %v", err)
	}
	outer, ok := got["outer"].(map[string]any)
	if !ok {
		t.Fatalf("outer = %T", got["outer"])
	}
	if _, ok := outer["inner"]; !ok {
		t.Error("nested object lost")
	}
}

func TestObject_BraceInString(t *testing.T) {
	raw := []byte(`{"answer": "use } carefully", "ok": true}`)
	got, err := Object(raw)
	if err != nil {
		t.Fatalf("Object returned error: %v", err)
	}
	if got["answer"] != "use } carefully" {
		t.Errorf("answer = %v", got["answer"])
	}
}

func TestObject_Repairs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		key  string
		want any
	}{
		{"trailing comma", `{"answer": "yes",}`, "answer", "yes"},
		{"single quotes", `{'answer': 'maybe'}`, "answer", "maybe"},
		{"unquoted keys", `{answer: "sure"}`, "answer", "sure"},
		{"unclosed brace", `{"answer": "partial"`, "answer", "partial"},
		{"unclosed nested", `{"scores": [0.1, 0.2`, "scores", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Object([]byte(tt.raw))
			if err != nil {
				t.Fatalf("Object returned error: %v", err)
			}
			if _, ok := got[tt.key]; !ok {
				t.Fatalf("key %q missing from %v", tt.key, got)
			}
			if tt.want != nil && got[tt.key] != tt.want {
				t.Errorf("%s = %v, want %v", tt.key, got[tt.key], tt.want)
			}
		})
	}
}

func TestObjectStrict_RejectsMalformed(t *testing.T) {
	if _, err := ObjectStrict([]byte(`{"answer": "yes",}`)); err == nil {
		t.Error("strict mode should reject trailing commas")
	}
	if _, err := ObjectStrict([]byte(`{"answer": "yes"}`)); err != nil {
		t.Errorf("strict mode should accept clean JSON, got %v", err)
	}
}

func TestObject_NoObject(t *testing.T) {
	_, err := Object([]byte("there is no JSON here"))
	if !errors.Is(err, ErrNoObject) {
		t.Fatalf("expected ErrNoObject, got %v", err)
	}

	_, err = Object(nil)
	if !errors.Is(err, ErrNoObject) {
		t.Fatalf("expected ErrNoObject for empty input, got %v", err)
	}
}

func TestObject_SizeLimit(t *testing.T) {
	huge := `{"answer": "` + strings.Repeat("x", 100) + `"}`
	_, err := ObjectWithOptions([]byte(huge), Options{MaxInputSize: 10, Repair: true})
	if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
		t.Fatalf("expected size error, got %v", err)
	}
}
