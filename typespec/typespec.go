// Package typespec defines the type system used by signature definitions.
//
// A signature field's type is a recursive Type value: either a primitive
// drawn from a closed set of basic and ML-specific names, or a composite
// built from other types (list, dict, union).
//
// # Basic Usage
//
// Construct types directly:
//
//	t := typespec.List{Elem: typespec.String}
//
// or parse them from their textual form:
//
//	t, err := typespec.Parse("dict[string, list[float]]")
//
// Validate, Describe and ReferencedTypes walk a Type structurally. Validate
// is the gatekeeper used by the signature compiler; Describe and
// ReferencedTypes are diagnostic helpers and never fail.
package typespec

import (
	"errors"
	"fmt"
	"sort"
)

// Basic type names. Each is a valid Primitive on its own.
const (
	NameString  = "string"
	NameInteger = "integer"
	NameFloat   = "float"
	NameBoolean = "boolean"
	NameSymbol  = "symbol"
	NameAny     = "any"
	NameMap     = "map"
)

// ML-specific type names. Each carries an implicit semantic contract that the
// schema generator realizes as constraints (e.g. probability is a number in
// [0.0, 1.0]).
const (
	NameEmbedding       = "embedding"
	NameProbability     = "probability"
	NameConfidenceScore = "confidence_score"
	NameReasoningChain  = "reasoning_chain"
)

var basicNames = map[string]bool{
	NameString:  true,
	NameInteger: true,
	NameFloat:   true,
	NameBoolean: true,
	NameSymbol:  true,
	NameAny:     true,
	NameMap:     true,
}

var mlNames = map[string]bool{
	NameEmbedding:       true,
	NameProbability:     true,
	NameConfidenceScore: true,
	NameReasoningChain:  true,
}

// BasicTypeNames returns the closed set of basic type names, sorted.
func BasicTypeNames() []string {
	return sortedKeys(basicNames)
}

// MLTypeNames returns the closed set of ML-specific type names, sorted.
func MLTypeNames() []string {
	return sortedKeys(mlNames)
}

func sortedKeys(m map[string]bool) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Type is the recursive sum type for field types. Implementations are
// Primitive, List, Dict and Union; the interface is sealed so that Validate,
// Describe and the schema generator can switch exhaustively.
type Type interface {
	isType()
}

// Primitive is a leaf type identified by one of the basic or ML names.
// A Primitive with an unknown name is structurally representable but fails
// Validate.
type Primitive struct {
	Name string
}

// List is an ordered collection with a single element type.
type List struct {
	Elem Type
}

// Dict maps keys of one type to values of another.
type Dict struct {
	Key   Type
	Value Type
}

// Union is an ordered, non-empty set of alternative types.
type Union struct {
	Members []Type
}

func (Primitive) isType() {}
func (List) isType()      {}
func (Dict) isType()      {}
func (Union) isType()     {}

// Shorthands for the primitive types.
var (
	String          = Primitive{Name: NameString}
	Integer         = Primitive{Name: NameInteger}
	Float           = Primitive{Name: NameFloat}
	Boolean         = Primitive{Name: NameBoolean}
	Symbol          = Primitive{Name: NameSymbol}
	Any             = Primitive{Name: NameAny}
	Map             = Primitive{Name: NameMap}
	Embedding       = Primitive{Name: NameEmbedding}
	Probability     = Primitive{Name: NameProbability}
	ConfidenceScore = Primitive{Name: NameConfidenceScore}
	ReasoningChain  = Primitive{Name: NameReasoningChain}
)

// ErrEmptyUnion is returned when a union has no member types.
var ErrEmptyUnion = errors.New("union type must have at least one member")

// MaxNestingDepth bounds composite type nesting. Validation fails beyond it
// rather than recursing without limit on a pathological expression.
const MaxNestingDepth = 32

// Validate checks that t is a well-formed type: a primitive from the closed
// basic/ML sets, or a composite whose nested types are themselves valid.
// The first invalid nested type aborts with an error naming where it was
// found.
func Validate(t Type) error {
	return validate(t, 0)
}

func validate(t Type, depth int) error {
	if depth > MaxNestingDepth {
		return fmt.Errorf("type nesting exceeds %d levels", MaxNestingDepth)
	}
	switch v := t.(type) {
	case Primitive:
		if !basicNames[v.Name] && !mlNames[v.Name] {
			return fmt.Errorf("unsupported type: %s", v.Name)
		}
		return nil
	case List:
		if err := validate(v.Elem, depth+1); err != nil {
			return fmt.Errorf("invalid inner type in list: %w", err)
		}
		return nil
	case Dict:
		if err := validate(v.Key, depth+1); err != nil {
			return fmt.Errorf("invalid key type in dict: %w", err)
		}
		if err := validate(v.Value, depth+1); err != nil {
			return fmt.Errorf("invalid value type in dict: %w", err)
		}
		return nil
	case Union:
		if len(v.Members) == 0 {
			return ErrEmptyUnion
		}
		for _, m := range v.Members {
			if err := validate(m, depth+1); err != nil {
				return fmt.Errorf("invalid member type in union: %w", err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported type: %v", t)
	}
}

// IsValid reports whether Validate accepts t.
func IsValid(t Type) bool {
	return Validate(t) == nil
}

// Describe renders a human-readable description of t. Unlike Validate it
// never fails: unrecognized input renders as "unknown type <value>".
func Describe(t Type) string {
	switch v := t.(type) {
	case Primitive:
		if basicNames[v.Name] || mlNames[v.Name] {
			return v.Name
		}
		return fmt.Sprintf("unknown type %v", v.Name)
	case List:
		return fmt.Sprintf("list of %s", Describe(v.Elem))
	case Dict:
		return fmt.Sprintf("dict with %s keys and %s values", Describe(v.Key), Describe(v.Value))
	case Union:
		desc := "union of "
		for i, m := range v.Members {
			if i > 0 {
				desc += " | "
			}
			desc += Describe(m)
		}
		return desc
	default:
		return fmt.Sprintf("unknown type %v", t)
	}
}

// ReferencedTypes collects the distinct basic/ML type names reachable from t,
// sorted. Unrecognized shapes contribute nothing rather than failing.
func ReferencedTypes(t Type) []string {
	seen := map[string]bool{}
	collect(t, seen)
	return sortedKeys(seen)
}

func collect(t Type, seen map[string]bool) {
	switch v := t.(type) {
	case Primitive:
		if basicNames[v.Name] || mlNames[v.Name] {
			seen[v.Name] = true
		}
	case List:
		collect(v.Elem, seen)
	case Dict:
		collect(v.Key, seen)
		collect(v.Value, seen)
	case Union:
		for _, m := range v.Members {
			collect(m, seen)
		}
	}
}
