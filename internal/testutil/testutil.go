// Package testutil provides small helpers shared by unit tests.
package testutil

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Ptr returns a pointer to the given value. Useful for optional fields
// in test fixtures.
func Ptr[T any](v T) *T {
	return &v
}

// MustDocument parses a YAML (or JSON) document into a generic map.
// Panics on parse failure; intended for inline test fixtures only.
func MustDocument(src string) map[string]any {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		panic(fmt.Sprintf("testutil: bad fixture: %v", err))
	}
	return doc
}
