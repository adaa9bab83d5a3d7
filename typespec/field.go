package typespec

import "strings"

// Constraint is one key/value pair attached to a field. Constraints are kept
// as an ordered list, not a map: application order matters when the schema
// generator folds them over a base fragment.
type Constraint struct {
	Key   string
	Value any
}

// Recognized constraint keys. The "optional" key is consumed by required-field
// inference; the rest are dialect-facing and consumed only by the schema
// generator.
const (
	ConstraintOptional      = "optional"
	ConstraintMinLength     = "min_length"
	ConstraintMaxLength     = "max_length"
	ConstraintPattern       = "pattern"
	ConstraintFormat        = "format"
	ConstraintMinimum       = "minimum"
	ConstraintMaximum       = "maximum"
	ConstraintMultipleOf    = "multiple_of"
	ConstraintMinItems      = "min_items"
	ConstraintMaxItems      = "max_items"
	ConstraintUniqueItems   = "unique_items"
	ConstraintMinProperties = "min_properties"
	ConstraintMaxProperties = "max_properties"
	ConstraintEnum          = "enum"
)

// Field is one named, typed entry within a signature's input or output list.
type Field struct {
	Name        string
	Type        Type
	Constraints []Constraint
}

// Constraint returns the value of the first constraint with the given key.
func (f Field) Constraint(key string) (any, bool) {
	for _, c := range f.Constraints {
		if c.Key == key {
			return c.Value, true
		}
	}
	return nil, false
}

// Optional reports whether the field carries an optional=true constraint.
// Every other field is required.
func (f Field) Optional() bool {
	v, ok := f.Constraint(ConstraintOptional)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// Describe renders the field as "name: <type description>".
func (f Field) Describe() string {
	return f.Name + ": " + Describe(f.Type)
}

// DescribeFields comma-joins the descriptions of a field list.
func DescribeFields(fields []Field) string {
	descs := make([]string, len(fields))
	for i, f := range fields {
		descs[i] = f.Describe()
	}
	return strings.Join(descs, ", ")
}
