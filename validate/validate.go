// Package validate checks sample data maps against compiled field lists.
//
// It is the value-level collaborator behind a compiled signature's
// ValidateInputs and ValidateOutputs: the signature compiler hands it the
// field list and a value map, and propagates its verdict unchanged. The check
// itself is delegated to gojsonschema, run against the object schema the
// generator would emit for those fields.
package validate

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mhpenta/sigdef/schemagen"
	"github.com/mhpenta/sigdef/typespec"
)

// Validator validates field values against their declared types and
// constraints. The zero value is ready to use.
type Validator struct{}

// New returns a ready-to-use Validator.
func New() *Validator {
	return &Validator{}
}

// ValidateFields checks data against the field list: every required field
// must be present, every value must satisfy its field's type and
// constraints, and unknown keys are rejected. On success the data map is
// returned unchanged.
func (v *Validator) ValidateFields(data map[string]any, fields []typespec.Field) (map[string]any, error) {
	schemaLoader := gojsonschema.NewGoLoader(schemagen.ObjectSchema(fields))
	documentLoader := gojsonschema.NewGoLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, verr := range result.Errors() {
			msgs[i] = verr.String()
		}
		return nil, fmt.Errorf("field validation failed: %s", strings.Join(msgs, "; "))
	}

	return data, nil
}
