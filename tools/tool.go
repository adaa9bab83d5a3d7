// Package tools projects compiled signatures into callable tools.
//
// A tool pairs a signature with a handler. Its spec carries the signature's
// input schema as the parameter schema and the output schema alongside, so
// the same definition can be handed to any function-calling API. Execute
// closes the loop at runtime: raw parameters are extracted from model
// output, validated against the input fields, handed to the handler, and
// the handler's result is validated against the output fields.
//
// # Basic Usage
//
//	sig := signature.MustCompile("QA", "question: string -> answer: string")
//
//	tool := tools.NewTool("answer_question", "Answers a question", sig,
//	    func(ctx context.Context, in map[string]any) (map[string]any, error) {
//	        return map[string]any{"answer": lookup(in["question"].(string))}, nil
//	    },
//	)
//
// NewTool panics on an invalid definition (fail-fast at initialization).
// Use NewToolWithError for explicit error handling.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mhpenta/sigdef/extract"
	"github.com/mhpenta/sigdef/schemagen"
	"github.com/mhpenta/sigdef/signature"
)

// Tool defines the interface that all tools must implement.
type Tool interface {
	// Spec returns the tool's specification: name, description and schemas.
	Spec() *ToolSpec

	// Execute runs the tool with the given raw parameters.
	Execute(ctx context.Context, params json.RawMessage) (*ToolResult, error)
}

// ToolSpec describes a tool to a function-calling API.
type ToolSpec struct {
	// Name is the tool's identifier.
	Name string `json:"name,omitempty"`

	// Description tells the model when to call the tool.
	Description string `json:"description,omitempty"`

	// Parameters is the JSON schema of the tool's call arguments, derived
	// from the signature's input fields.
	Parameters map[string]any `json:"parameters,omitempty"`

	// Output is the JSON schema of the tool's result, derived from the
	// signature's output fields.
	Output map[string]any `json:"output,omitempty"`
}

// ToolResult is a successful execution's validated output field map.
type ToolResult struct {
	Output map[string]any `json:"output,omitempty"`
}

// Handler implements a tool's behavior over validated input fields. The
// returned map must satisfy the signature's output fields.
type Handler func(ctx context.Context, inputs map[string]any) (map[string]any, error)

const maxToolNameLength = 64

// Validate checks a tool's spec for API acceptability: a non-empty name of
// at most 64 alphanumeric/underscore/hyphen characters, a description and a
// parameter schema.
func Validate(t Tool) error {
	if t == nil {
		return fmt.Errorf("tool cannot be nil")
	}
	spec := t.Spec()
	if spec.Name == "" {
		return fmt.Errorf("tool spec must include a non-empty name")
	}
	if len(spec.Name) > maxToolNameLength {
		return fmt.Errorf("tool name must not exceed %d characters", maxToolNameLength)
	}
	for _, char := range spec.Name {
		if (char >= 'a' && char <= 'z') ||
			(char >= 'A' && char <= 'Z') ||
			(char >= '0' && char <= '9') ||
			char == '_' || char == '-' {
			continue
		}
		return fmt.Errorf("tool name must contain only alphanumeric characters, underscores, or hyphens")
	}
	if spec.Description == "" {
		return fmt.Errorf("tool spec description cannot be empty")
	}
	if spec.Parameters == nil {
		return fmt.Errorf("tool spec parameters cannot be nil")
	}
	return nil
}

// SignatureTool is a Tool backed by a compiled signature and a handler.
type SignatureTool struct {
	spec    *ToolSpec
	sig     *signature.Compiled
	handler Handler
}

// Spec returns the tool's specification.
func (t *SignatureTool) Spec() *ToolSpec {
	return t.spec
}

// Execute extracts a field map from params, validates it against the
// signature's input fields, runs the handler and validates its result
// against the output fields.
func (t *SignatureTool) Execute(ctx context.Context, params json.RawMessage) (*ToolResult, error) {
	inputs := map[string]any{}
	if len(params) > 0 {
		extracted, err := extract.Object(params)
		if err != nil {
			return nil, NewInvalidParamsError(fmt.Sprintf("failed to parse parameters: %v", err))
		}
		inputs = extracted
	}

	validated, err := t.sig.ValidateInputs(inputs)
	if err != nil {
		return nil, NewInvalidParamsError(err.Error())
	}

	outputs, err := t.handler(ctx, validated)
	if err != nil {
		return nil, err
	}

	outputs, err = t.sig.ValidateOutputs(outputs)
	if err != nil {
		return nil, NewErrorWithCause(CodeInternalError, "handler output failed validation", err)
	}

	return &ToolResult{Output: outputs}, nil
}

// ToolOption for functional configuration.
type ToolOption func(*ToolSpec)

// WithCustomParameters replaces the parameter schema derived from the
// signature.
func WithCustomParameters(schema map[string]any) ToolOption {
	return func(spec *ToolSpec) {
		spec.Parameters = schema
	}
}

// NewTool creates a tool from a compiled signature and a handler. It panics
// on an invalid definition, following the principle of failing fast at
// initialization time. For more control over error handling, use
// NewToolWithError.
func NewTool(name, description string, sig *signature.Compiled, handler Handler, opts ...ToolOption) Tool {
	tool, err := NewToolWithError(name, description, sig, handler, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create tool %q: %v", name, err))
	}
	return tool
}

// NewToolWithError creates a tool from a compiled signature and a handler,
// returning an error instead of panicking on failure.
func NewToolWithError(name, description string, sig *signature.Compiled, handler Handler, opts ...ToolOption) (Tool, error) {
	if sig == nil {
		return nil, fmt.Errorf("signature cannot be nil")
	}
	if handler == nil {
		return nil, fmt.Errorf("handler cannot be nil")
	}

	spec := &ToolSpec{
		Name:        name,
		Description: description,
		Parameters:  schemagen.ObjectSchema(sig.InputFields()),
		Output:      schemagen.ObjectSchema(sig.OutputFields()),
	}
	for _, opt := range opts {
		opt(spec)
	}

	tool := &SignatureTool{spec: spec, sig: sig, handler: handler}
	if err := Validate(tool); err != nil {
		return nil, err
	}
	return tool, nil
}
