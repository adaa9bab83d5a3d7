package signature

import (
	"fmt"
	"strings"

	"github.com/mhpenta/sigdef/schemagen"
	"github.com/mhpenta/sigdef/typespec"
	"github.com/mhpenta/sigdef/validate"
)

// FieldValidator checks a value map against a compiled field list. The
// compiler delegates value-level validation entirely to this collaborator
// and propagates its result unchanged.
type FieldValidator interface {
	ValidateFields(data map[string]any, fields []typespec.Field) (map[string]any, error)
}

// Compiled is a compiled signature: the immutable metadata plus the
// generated entry points derived from it. All methods are pure reads over
// the metadata and safe for concurrent use.
type Compiled struct {
	sig       *Signature
	validator FieldValidator
}

// Option configures compilation.
type Option func(*Compiled) error

// WithValidator replaces the value validator used by ValidateInputs and
// ValidateOutputs. The default is validate.New().
func WithValidator(v FieldValidator) Option {
	return func(c *Compiled) error {
		c.validator = v
		return nil
	}
}

// WithConstraints attaches constraints to the named field after parsing.
// The core grammar carries no constraint syntax; call sites add constraints
// here. When inputs and outputs share the field name, both get the
// constraints.
func WithConstraints(field string, constraints ...typespec.Constraint) Option {
	return func(c *Compiled) error {
		found := false
		for _, fields := range [][]typespec.Field{c.sig.Inputs, c.sig.Outputs} {
			for i := range fields {
				if fields[i].Name == field {
					fields[i].Constraints = append(fields[i].Constraints, constraints...)
					found = true
				}
			}
		}
		if !found {
			return fmt.Errorf("constraints reference unknown field %q", field)
		}
		return nil
	}
}

// Compile parses and validates a signature expression for the named owning
// unit. An empty expression means the owner declared the capability without
// defining a signature; that and every malformed expression fail with a
// self-contained *Error.
func Compile(owner, expr string, opts ...Option) (*Compiled, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, missingError(owner)
	}

	inputs, outputs, reason := parseExpression(expr)
	if reason != "" {
		return nil, invalidError(owner, expr, reason)
	}

	c, err := New(&Signature{Inputs: inputs, Outputs: outputs, Owner: owner}, opts...)
	if err != nil {
		if cerr, ok := err.(*Error); ok {
			cerr.Expression = expr
		}
		return nil, err
	}
	return c, nil
}

// MustCompile is Compile that panics on failure, for package-level signature
// definitions where a malformed signature should stop the program at load
// time.
func MustCompile(owner, expr string, opts ...Option) *Compiled {
	c, err := Compile(owner, expr, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to compile signature for %q: %v", owner, err))
	}
	return c
}

// New compiles pre-built signature metadata, validating every field's type
// across inputs and outputs. The first invalid field aborts with an error
// naming the field and the reason.
func New(sig *Signature, opts ...Option) (*Compiled, error) {
	sides := []struct {
		name   string
		fields []typespec.Field
	}{
		{"input", sig.Inputs},
		{"output", sig.Outputs},
	}
	for _, side := range sides {
		for _, f := range side.fields {
			if err := typespec.Validate(f.Type); err != nil {
				return nil, invalidError(sig.Owner, sig.Describe(),
					fmt.Sprintf("%s field %q: %v", side.name, f.Name, err))
			}
		}
	}

	c := &Compiled{sig: sig, validator: validate.New()}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, invalidError(sig.Owner, sig.Describe(), err.Error())
		}
	}
	return c, nil
}

// Signature returns the compiled metadata.
func (c *Compiled) Signature() *Signature {
	return c.sig
}

// InputFields returns the ordered input field list.
func (c *Compiled) InputFields() []typespec.Field {
	return c.sig.Inputs
}

// OutputFields returns the ordered output field list.
func (c *Compiled) OutputFields() []typespec.Field {
	return c.sig.Outputs
}

// ValidateInputs checks a value map against the input fields, delegating to
// the configured FieldValidator and propagating its result unchanged.
func (c *Compiled) ValidateInputs(data map[string]any) (map[string]any, error) {
	return c.validator.ValidateFields(data, c.sig.Inputs)
}

// ValidateOutputs checks a value map against the output fields.
func (c *Compiled) ValidateOutputs(data map[string]any) (map[string]any, error) {
	return c.validator.ValidateFields(data, c.sig.Outputs)
}

// ToJSONSchema projects the signature onto the given dialect. An empty
// dialect defaults to openai. Unknown dialects panic, as in
// schemagen.Generate.
func (c *Compiled) ToJSONSchema(dialect schemagen.Dialect) map[string]any {
	if dialect == "" {
		dialect = schemagen.DialectOpenAI
	}
	return schemagen.Generate(c.sig.Owner, c.sig.Inputs, c.sig.Outputs, dialect)
}

// Describe renders the signature as
// "<input descriptions> -> <output descriptions>".
func (c *Compiled) Describe() string {
	return c.sig.Describe()
}
