package schema

import "reflect"

// getString returns a string member from a schema node.
func getString(node map[string]any, key string) string {
	s, _ := node[key].(string)
	return s
}

// getBool returns a boolean member, false when absent or mistyped.
func getBool(node map[string]any, key string) bool {
	b, _ := node[key].(bool)
	return b
}

// getFloat returns a numeric member as float64. YAML documents produce
// int for whole numbers while JSON produces float64; both are accepted.
func getFloat(node map[string]any, key string) (float64, bool) {
	v, ok := node[key]
	if !ok {
		return 0, false
	}
	return toFloat64(v)
}

// getInt returns a numeric member as int.
func getInt(node map[string]any, key string) (int, bool) {
	f, ok := getFloat(node, key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// getMap returns a map member of a schema node.
func getMap(node map[string]any, key string) map[string]any {
	if node == nil {
		return nil
	}
	m, _ := node[key].(map[string]any)
	return m
}

// getSlice returns a slice member of a schema node.
func getSlice(node map[string]any, key string) []any {
	s, _ := node[key].([]any)
	return s
}

// getSchemaSlice returns a member as a slice of schema nodes, skipping
// entries that are not objects.
func getSchemaSlice(node map[string]any, key string) []map[string]any {
	raw := getSlice(node, key)
	if len(raw) == 0 {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// getStringSlice returns a member as a slice of strings.
func getStringSlice(node map[string]any, key string) []string {
	raw := getSlice(node, key)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// schemaTypes returns the declared type(s) of a schema node. The "type"
// keyword may be a single string or a list of strings.
func schemaTypes(node map[string]any) []string {
	switch t := node["type"].(type) {
	case string:
		return []string{t}
	case []any:
		types := make([]string, 0, len(t))
		for _, entry := range t {
			if s, ok := entry.(string); ok {
				types = append(types, s)
			}
		}
		return types
	case []string:
		return t
	}
	return nil
}

// isNullable reports whether a schema node allows null values, either
// via "nullable: true" or a type list containing "null".
func isNullable(node map[string]any) bool {
	if getBool(node, "nullable") {
		return true
	}
	for _, t := range schemaTypes(node) {
		if t == "null" {
			return true
		}
	}
	return false
}

// dataType returns the JSON Schema type name of a Go value.
func dataType(value any) string {
	if value == nil {
		return "null"
	}

	switch value.(type) {
	case string:
		return "string"
	case float64, float32:
		return "number"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map:
		return "object"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	default:
		return "unknown"
	}
}

// typeMatches checks if a value type satisfies a schema type.
func typeMatches(valueType, schemaType string) bool {
	if valueType == schemaType {
		return true
	}
	// integer is a subset of number
	if schemaType == "number" && valueType == "integer" {
		return true
	}
	// JSON has a single number type; whole numbers may satisfy integer
	// (fractional parts are rejected separately)
	if schemaType == "integer" && valueType == "number" {
		return true
	}
	return false
}

// toFloat64 converts any numeric Go value to float64.
func toFloat64(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// joinPath appends a property name to a value path.
func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
