// Package sigfile loads signature definitions from YAML files.
//
// A definition file declares one or more signatures with their owning unit,
// arrow expression and optional per-field constraints:
//
//	signatures:
//	  - owner: QA
//	    expression: "question: string -> answer: string"
//	    constraints:
//	      - field: answer
//	        key: max_length
//	        value: 500
//
// Loading is all-or-nothing: the first definition that fails to compile
// aborts with an error naming its position and owner, matching the
// build-time failure semantics of the compiler itself.
package sigfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mhpenta/sigdef/signature"
	"github.com/mhpenta/sigdef/typespec"
)

// File is a parsed definition file.
type File struct {
	Signatures []Definition `yaml:"signatures"`
}

// Definition declares one signature.
type Definition struct {
	Owner       string          `yaml:"owner"`
	Expression  string          `yaml:"expression"`
	Constraints []ConstraintDef `yaml:"constraints"`
}

// ConstraintDef attaches one constraint to one field.
type ConstraintDef struct {
	Field string `yaml:"field"`
	Key   string `yaml:"key"`
	Value any    `yaml:"value"`
}

// Load reads and parses a definition file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading signature file: %w", err)
	}
	return Parse(data)
}

// Parse parses definition file content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing signature file: %w", err)
	}
	if len(f.Signatures) == 0 {
		return nil, fmt.Errorf("signature file declares no signatures")
	}
	return &f, nil
}

// Compile compiles every definition in the file, in order. The first
// failure aborts.
func (f *File) Compile() ([]*signature.Compiled, error) {
	compiled := make([]*signature.Compiled, 0, len(f.Signatures))
	for i, def := range f.Signatures {
		if def.Owner == "" {
			return nil, fmt.Errorf("signatures[%d]: owner is required", i)
		}

		var opts []signature.Option
		for _, c := range def.Constraints {
			opts = append(opts, signature.WithConstraints(c.Field,
				typespec.Constraint{Key: c.Key, Value: c.Value}))
		}

		sig, err := signature.Compile(def.Owner, def.Expression, opts...)
		if err != nil {
			return nil, fmt.Errorf("signatures[%d] (%s): %w", i, def.Owner, err)
		}
		compiled = append(compiled, sig)
	}
	return compiled, nil
}
