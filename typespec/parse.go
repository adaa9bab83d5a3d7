package typespec

import (
	"fmt"
	"strings"
)

// Parse converts the textual form of a type into a Type value. The grammar
// accepts the basic and ML names plus the composite forms list[T], dict[K,V]
// and union[T1,T2,...], nested arbitrarily up to MaxNestingDepth.
//
// The returned Type always passes Validate.
func Parse(expr string) (Type, error) {
	return parse(strings.TrimSpace(expr), 0)
}

func parse(s string, depth int) (Type, error) {
	if depth > MaxNestingDepth {
		return nil, fmt.Errorf("type nesting exceeds %d levels", MaxNestingDepth)
	}
	if s == "" {
		return nil, fmt.Errorf("unsupported type: (empty)")
	}

	switch {
	case strings.HasPrefix(s, "list[") && strings.HasSuffix(s, "]"):
		inner, err := parse(strings.TrimSpace(s[len("list["):len(s)-1]), depth+1)
		if err != nil {
			return nil, fmt.Errorf("invalid inner type in list: %w", err)
		}
		return List{Elem: inner}, nil

	case strings.HasPrefix(s, "dict[") && strings.HasSuffix(s, "]"):
		args := splitTopLevel(s[len("dict[") : len(s)-1])
		if len(args) != 2 {
			return nil, fmt.Errorf("dict type must have exactly two type arguments, got %d in %q", len(args), s)
		}
		key, err := parse(args[0], depth+1)
		if err != nil {
			return nil, fmt.Errorf("invalid key type in dict: %w", err)
		}
		value, err := parse(args[1], depth+1)
		if err != nil {
			return nil, fmt.Errorf("invalid value type in dict: %w", err)
		}
		return Dict{Key: key, Value: value}, nil

	case strings.HasPrefix(s, "union[") && strings.HasSuffix(s, "]"):
		args := splitTopLevel(s[len("union[") : len(s)-1])
		if len(args) == 0 {
			return nil, ErrEmptyUnion
		}
		members := make([]Type, 0, len(args))
		for _, arg := range args {
			m, err := parse(arg, depth+1)
			if err != nil {
				return nil, fmt.Errorf("invalid member type in union: %w", err)
			}
			members = append(members, m)
		}
		return Union{Members: members}, nil
	}

	if basicNames[s] || mlNames[s] {
		return Primitive{Name: s}, nil
	}
	return nil, fmt.Errorf("unsupported type: %s", s)
}

// splitTopLevel splits on commas that are not nested inside brackets, so
// "string, dict[string, integer]" yields two arguments, not three. Empty
// input yields no arguments.
func splitTopLevel(s string) []string {
	var args []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	last := strings.TrimSpace(s[start:])
	if last != "" || len(args) > 0 {
		args = append(args, last)
	}
	return args
}
