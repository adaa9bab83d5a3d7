package schemagen

import "fmt"

// EstimateComplexity scores a generated schema as
// property_count + 2*max_depth + type_diversity, where max_depth follows
// properties, items and oneOf edges from the root and type_diversity counts
// distinct "type" tags anywhere in the tree. Schemas that are not shaped as
// an object with properties (the anthropic envelope, for one) score 1.
func EstimateComplexity(schema map[string]any) int {
	properties, ok := schema["properties"].(map[string]any)
	if !ok {
		return 1
	}

	types := map[string]bool{}
	collectTypes(schema, types)

	return len(properties) + 2*maxDepth(schema) + len(types)
}

func maxDepth(schema map[string]any) int {
	deepest := 0

	if properties, ok := schema["properties"].(map[string]any); ok {
		for _, prop := range properties {
			if child, ok := prop.(map[string]any); ok {
				if d := 1 + maxDepth(child); d > deepest {
					deepest = d
				}
			}
		}
	}

	if items, ok := schema["items"].(map[string]any); ok {
		if d := 1 + maxDepth(items); d > deepest {
			deepest = d
		}
	}

	if oneOf, ok := schema["oneOf"].([]any); ok {
		for _, member := range oneOf {
			if child, ok := member.(map[string]any); ok {
				if d := 1 + maxDepth(child); d > deepest {
					deepest = d
				}
			}
		}
	}

	return deepest
}

func collectTypes(node any, types map[string]bool) {
	switch v := node.(type) {
	case map[string]any:
		if tag, ok := v["type"].(string); ok {
			types[tag] = true
		}
		for _, child := range v {
			collectTypes(child, types)
		}
	case []any:
		for _, child := range v {
			collectTypes(child, types)
		}
	}
}

// ValidateSchema sanity-checks that a schema is structurally shaped like this
// generator's output: an object schema carrying a properties map and a
// required list, or an envelope carrying input_schema of that shape. It is a
// debugging aid and plays no part in generation.
func ValidateSchema(schema map[string]any) error {
	if isObjectSchema(schema) {
		return nil
	}
	if inner, ok := schema["input_schema"].(map[string]any); ok && isObjectSchema(inner) {
		return nil
	}
	return fmt.Errorf("invalid schema structure: %v", schema)
}

func isObjectSchema(schema map[string]any) bool {
	if _, ok := schema["properties"].(map[string]any); !ok {
		return false
	}
	switch schema["required"].(type) {
	case []string, []any:
		return true
	}
	return false
}
