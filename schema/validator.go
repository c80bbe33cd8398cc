package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/bguiz/schwag/internal/issues"
)

// ErrNotASchema indicates a reference resolved to a node that is not a
// schema object.
var ErrNotASchema = errors.New("referenced node is not a schema")

// Validator is the validate-by-reference capability. Implementations
// must be safe for concurrent use once construction completes.
type Validator interface {
	// Validate checks value against the schema located by ref and
	// returns the issues found. An empty slice means the value is
	// valid. Implementations never panic for data-shape problems.
	Validate(ref string, value any) []issues.Issue
}

// Resolver locates a schema node from a validation reference. The
// registry package provides the standard implementation.
type Resolver interface {
	Resolve(ref string) (any, error)
}

// maxRefDepth bounds nested $ref resolution to protect against
// circular references inside schema documents.
const maxRefDepth = 32

// Option configures a DefaultValidator.
type Option func(*DefaultValidator)

// WithRedactedValues omits actual values from issue messages. Use when
// validating potentially sensitive data such as authorization headers.
func WithRedactedValues() Option {
	return func(v *DefaultValidator) {
		v.redactValues = true
	}
}

// WithTypeCheck registers an additional capability type check, keyed by
// the schema "type" value it handles. Checks are decided once at
// construction; registering after validation begins is not supported.
func WithTypeCheck(name string, check TypeCheck) Option {
	return func(v *DefaultValidator) {
		v.typeChecks[name] = check
	}
}

// DefaultValidator validates values against schema nodes resolved from
// a Resolver. Create one with New.
type DefaultValidator struct {
	resolver Resolver

	// patternCache caches compiled regex patterns (sync.Map[string, *regexp.Regexp])
	patternCache sync.Map

	// typeChecks holds capability checks for non-JSON types such as
	// "buffer" and "readableStream".
	typeChecks map[string]TypeCheck

	redactValues bool
}

// New creates a DefaultValidator backed by the given resolver.
func New(resolver Resolver, opts ...Option) *DefaultValidator {
	v := &DefaultValidator{
		resolver:   resolver,
		typeChecks: defaultTypeChecks(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Ensure DefaultValidator implements Validator at compile time.
var _ Validator = (*DefaultValidator)(nil)

// Validate implements Validator.
func (v *DefaultValidator) Validate(ref string, value any) []issues.Issue {
	node, err := v.resolver.Resolve(ref)
	if err != nil {
		return []issues.Issue{{
			Path:      "",
			Message:   fmt.Sprintf("unable to resolve schema reference: %v", err),
			Severity:  issues.SeverityError,
			SchemaRef: ref,
		}}
	}

	schemaNode, ok := node.(map[string]any)
	if !ok {
		return []issues.Issue{{
			Path:      "",
			Message:   fmt.Sprintf("%v: got %T", ErrNotASchema, node),
			Severity:  issues.SeverityError,
			SchemaRef: ref,
		}}
	}

	schemaName, _, _ := strings.Cut(ref, "#")
	found := v.validateNode(value, schemaNode, "", schemaName, 0)
	for i := range found {
		found[i].SchemaRef = ref
	}
	return found
}

// validateNode validates a value against one schema node. path is the
// location of the value relative to the validation root; schemaName is
// the document the node came from, used to resolve local $refs.
func (v *DefaultValidator) validateNode(value any, node map[string]any, path, schemaName string, depth int) []issues.Issue {
	if depth > maxRefDepth {
		return []issues.Issue{{
			Path:     path,
			Message:  "schema reference nesting too deep",
			Severity: issues.SeverityError,
		}}
	}

	// Follow local $ref before applying any other keywords.
	if ref := getString(node, "$ref"); ref != "" {
		resolved, err := v.resolveLocalRef(ref, schemaName)
		if err != nil {
			return []issues.Issue{{
				Path:     path,
				Message:  fmt.Sprintf("unable to resolve %q: %v", ref, err),
				Severity: issues.SeverityError,
			}}
		}
		return v.validateNode(value, resolved, path, schemaName, depth+1)
	}

	var found []issues.Issue

	if value == nil {
		if isNullable(node) {
			return nil
		}
		return []issues.Issue{{
			Path:     path,
			Message:  "value cannot be null",
			Severity: issues.SeverityError,
		}}
	}

	typeIssues := v.validateType(value, node, path)
	found = append(found, typeIssues...)

	// Constraint checks assume the base type holds.
	if len(typeIssues) > 0 {
		return found
	}

	switch d := value.(type) {
	case string:
		found = append(found, v.validateString(d, node, path)...)
	case bool:
		// No additional constraints for boolean.
	case []any:
		found = append(found, v.validateArray(d, node, path, schemaName, depth)...)
	case map[string]any:
		found = append(found, v.validateObject(d, node, path, schemaName, depth)...)
	default:
		if num, ok := toFloat64(value); ok {
			found = append(found, v.validateNumber(num, node, path)...)
		}
	}

	if enum := getSlice(node, "enum"); len(enum) > 0 {
		found = append(found, v.validateEnum(value, enum, path)...)
	}

	found = append(found, v.validateComposition(value, node, path, schemaName, depth)...)

	return found
}

// resolveLocalRef resolves a document-local "#/..." reference against
// the named schema document.
func (v *DefaultValidator) resolveLocalRef(ref, schemaName string) (map[string]any, error) {
	if !strings.HasPrefix(ref, "#") {
		return nil, fmt.Errorf("only document-local references are supported")
	}
	node, err := v.resolver.Resolve(schemaName + ref)
	if err != nil {
		return nil, err
	}
	m, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotASchema, node)
	}
	return m, nil
}

// validateType validates that the value matches the schema type(s),
// including registered capability types.
func (v *DefaultValidator) validateType(value any, node map[string]any, path string) []issues.Issue {
	types := schemaTypes(node)
	if len(types) == 0 {
		return nil
	}

	valueType := dataType(value)

	for _, schemaType := range types {
		if check, ok := v.typeChecks[schemaType]; ok {
			if check(value) {
				return nil
			}
			continue
		}

		if typeMatches(valueType, schemaType) {
			// JSON has a single number type; enforce wholeness for integer.
			if schemaType == "integer" && valueType == "number" {
				if f, ok := toFloat64(value); ok && f != float64(int64(f)) {
					msg := "value must be an integer"
					if !v.redactValues {
						msg = fmt.Sprintf("value must be an integer, got %v", f)
					}
					return []issues.Issue{{
						Path:     path,
						Message:  msg,
						Severity: issues.SeverityError,
					}}
				}
			}
			return nil
		}
	}

	return []issues.Issue{{
		Path:     path,
		Message:  fmt.Sprintf("expected type %s but got %s", strings.Join(types, " or "), valueType),
		Severity: issues.SeverityError,
	}}
}

// validateEnum validates that the value is one of the allowed values.
func (v *DefaultValidator) validateEnum(value any, allowed []any, path string) []issues.Issue {
	for _, candidate := range allowed {
		if looseEqual(value, candidate) {
			return nil
		}
	}

	msg := "value is not one of the allowed values"
	if !v.redactValues {
		msg = fmt.Sprintf("value %v is not one of the allowed values", value)
	}
	return []issues.Issue{{
		Path:     path,
		Message:  msg,
		Severity: issues.SeverityError,
	}}
}

// validateComposition validates allOf, anyOf and oneOf.
func (v *DefaultValidator) validateComposition(value any, node map[string]any, path, schemaName string, depth int) []issues.Issue {
	var found []issues.Issue

	if allOf := getSchemaSlice(node, "allOf"); len(allOf) > 0 {
		for i, sub := range allOf {
			subIssues := v.validateNode(value, sub, path, schemaName, depth+1)
			if len(subIssues) > 0 {
				found = append(found, issues.Issue{
					Path:     path,
					Message:  fmt.Sprintf("allOf[%d] validation failed", i),
					Severity: issues.SeverityError,
				})
				found = append(found, subIssues...)
			}
		}
	}

	if anyOf := getSchemaSlice(node, "anyOf"); len(anyOf) > 0 {
		matched := false
		for _, sub := range anyOf {
			if len(v.validateNode(value, sub, path, schemaName, depth+1)) == 0 {
				matched = true
				break
			}
		}
		if !matched {
			found = append(found, issues.Issue{
				Path:     path,
				Message:  "value does not match any of the anyOf schemas",
				Severity: issues.SeverityError,
			})
		}
	}

	if oneOf := getSchemaSlice(node, "oneOf"); len(oneOf) > 0 {
		matchCount := 0
		for _, sub := range oneOf {
			if len(v.validateNode(value, sub, path, schemaName, depth+1)) == 0 {
				matchCount++
			}
		}
		switch {
		case matchCount == 0:
			found = append(found, issues.Issue{
				Path:     path,
				Message:  "value does not match any of the oneOf schemas",
				Severity: issues.SeverityError,
			})
		case matchCount > 1:
			found = append(found, issues.Issue{
				Path:     path,
				Message:  fmt.Sprintf("value matches %d oneOf schemas, expected exactly 1", matchCount),
				Severity: issues.SeverityError,
			})
		}
	}

	return found
}

// looseEqual compares a value against an enum candidate, treating
// numerically equal numbers as equal regardless of Go type (YAML
// documents produce int, JSON bodies produce float64).
func looseEqual(a, b any) bool {
	if fa, ok := toFloat64(a); ok {
		if fb, ok := toFloat64(b); ok {
			return fa == fb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}
