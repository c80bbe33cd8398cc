package schema

import (
	"fmt"
	"regexp"

	"github.com/bguiz/schwag/internal/issues"
)

// validateString validates string-specific constraints.
func (v *DefaultValidator) validateString(s string, node map[string]any, path string) []issues.Issue {
	var found []issues.Issue

	if minLen, ok := getInt(node, "minLength"); ok && len(s) < minLen {
		found = append(found, issues.Issue{
			Path:     path,
			Message:  fmt.Sprintf("string length %d is less than minimum %d", len(s), minLen),
			Severity: issues.SeverityError,
		})
	}

	if maxLen, ok := getInt(node, "maxLength"); ok && len(s) > maxLen {
		found = append(found, issues.Issue{
			Path:     path,
			Message:  fmt.Sprintf("string length %d exceeds maximum %d", len(s), maxLen),
			Severity: issues.SeverityError,
		})
	}

	if pattern := getString(node, "pattern"); pattern != "" {
		matched, err := v.matchPattern(pattern, s)
		if err != nil {
			found = append(found, issues.Issue{
				Path:     path,
				Message:  fmt.Sprintf("invalid pattern %q: %v", pattern, err),
				Severity: issues.SeverityError,
			})
		} else if !matched {
			found = append(found, issues.Issue{
				Path:     path,
				Message:  fmt.Sprintf("string does not match pattern %q", pattern),
				Severity: issues.SeverityError,
			})
		}
	}

	if format := getString(node, "format"); format != "" {
		found = append(found, v.validateStringFormat(s, format, path)...)
	}

	return found
}

// validateNumber validates numeric constraints.
func (v *DefaultValidator) validateNumber(n float64, node map[string]any, path string) []issues.Issue {
	var found []issues.Issue

	if minimum, ok := getFloat(node, "minimum"); ok {
		if getBool(node, "exclusiveMinimum") {
			if n <= minimum {
				found = append(found, issues.Issue{
					Path:     path,
					Message:  fmt.Sprintf("value %v must be greater than %v", n, minimum),
					Severity: issues.SeverityError,
				})
			}
		} else if n < minimum {
			found = append(found, issues.Issue{
				Path:     path,
				Message:  fmt.Sprintf("value %v is less than minimum %v", n, minimum),
				Severity: issues.SeverityError,
			})
		}
	}

	if maximum, ok := getFloat(node, "maximum"); ok {
		if getBool(node, "exclusiveMaximum") {
			if n >= maximum {
				found = append(found, issues.Issue{
					Path:     path,
					Message:  fmt.Sprintf("value %v must be less than %v", n, maximum),
					Severity: issues.SeverityError,
				})
			}
		} else if n > maximum {
			found = append(found, issues.Issue{
				Path:     path,
				Message:  fmt.Sprintf("value %v exceeds maximum %v", n, maximum),
				Severity: issues.SeverityError,
			})
		}
	}

	if multipleOf, ok := getFloat(node, "multipleOf"); ok && multipleOf != 0 {
		quotient := n / multipleOf
		if quotient != float64(int64(quotient)) {
			found = append(found, issues.Issue{
				Path:     path,
				Message:  fmt.Sprintf("value %v is not a multiple of %v", n, multipleOf),
				Severity: issues.SeverityError,
			})
		}
	}

	if format := getString(node, "format"); format != "" {
		found = append(found, v.validateNumberFormat(n, format, path)...)
	}

	return found
}

// validateArray validates array-specific constraints.
func (v *DefaultValidator) validateArray(arr []any, node map[string]any, path, schemaName string, depth int) []issues.Issue {
	var found []issues.Issue

	if minItems, ok := getInt(node, "minItems"); ok && len(arr) < minItems {
		found = append(found, issues.Issue{
			Path:     path,
			Message:  fmt.Sprintf("array has %d items, minimum is %d", len(arr), minItems),
			Severity: issues.SeverityError,
		})
	}

	if maxItems, ok := getInt(node, "maxItems"); ok && len(arr) > maxItems {
		found = append(found, issues.Issue{
			Path:     path,
			Message:  fmt.Sprintf("array has %d items, maximum is %d", len(arr), maxItems),
			Severity: issues.SeverityError,
		})
	}

	if getBool(node, "uniqueItems") && hasDuplicates(arr) {
		found = append(found, issues.Issue{
			Path:     path,
			Message:  "array items must be unique",
			Severity: issues.SeverityError,
		})
	}

	if items := getMap(node, "items"); items != nil {
		for i, item := range arr {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			found = append(found, v.validateNode(item, items, itemPath, schemaName, depth+1)...)
		}
	}

	return found
}

// validateObject validates object-specific constraints.
func (v *DefaultValidator) validateObject(obj map[string]any, node map[string]any, path, schemaName string, depth int) []issues.Issue {
	var found []issues.Issue

	for _, req := range getStringSlice(node, "required") {
		if _, exists := obj[req]; !exists {
			found = append(found, issues.Issue{
				Path:     joinPath(path, req),
				Message:  fmt.Sprintf("required property %q is missing", req),
				Severity: issues.SeverityError,
			})
		}
	}

	if minProps, ok := getInt(node, "minProperties"); ok && len(obj) < minProps {
		found = append(found, issues.Issue{
			Path:     path,
			Message:  fmt.Sprintf("object has %d properties, minimum is %d", len(obj), minProps),
			Severity: issues.SeverityError,
		})
	}

	if maxProps, ok := getInt(node, "maxProperties"); ok && len(obj) > maxProps {
		found = append(found, issues.Issue{
			Path:     path,
			Message:  fmt.Sprintf("object has %d properties, maximum is %d", len(obj), maxProps),
			Severity: issues.SeverityError,
		})
	}

	properties := getMap(node, "properties")
	for name, value := range obj {
		propSchema := getMap(properties, name)
		if propSchema == nil {
			continue
		}
		found = append(found, v.validateNode(value, propSchema, joinPath(path, name), schemaName, depth+1)...)
	}

	if allowed, ok := node["additionalProperties"].(bool); ok && !allowed {
		for name := range obj {
			if getMap(properties, name) == nil {
				found = append(found, issues.Issue{
					Path:     joinPath(path, name),
					Message:  fmt.Sprintf("additional property %q is not allowed", name),
					Severity: issues.SeverityError,
				})
			}
		}
	}

	return found
}

// matchPattern compiles (with caching) and matches a regex pattern.
func (v *DefaultValidator) matchPattern(pattern, s string) (bool, error) {
	if cached, ok := v.patternCache.Load(pattern); ok {
		return cached.(*regexp.Regexp).MatchString(s), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, err
	}

	v.patternCache.Store(pattern, re)
	return re.MatchString(s), nil
}

// hasDuplicates checks if an array has duplicate values.
func hasDuplicates(arr []any) bool {
	seen := make(map[string]bool, len(arr))
	for _, item := range arr {
		key := fmt.Sprintf("%T:%v", item, item)
		if seen[key] {
			return true
		}
		seen[key] = true
	}
	return false
}
