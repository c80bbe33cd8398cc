// Package issues provides the shared issue record type used to report
// validation problems across the schema, validate, and middleware packages.
package issues

import "fmt"

// Severity indicates the severity level of a reported issue.
type Severity int

const (
	// SeverityError indicates a violation that makes the request or
	// response invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a best-practice violation or a lossy
	// check that does not invalidate the payload.
	SeverityWarning

	// SeverityInfo indicates an informational notice.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so severities serialize
// as their names in JSON error envelopes.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Issue represents a single problem found while validating a parameter,
// body, or response against a schema.
type Issue struct {
	// Path locates the problematic value (e.g. "query.limit",
	// "body.items[2].name", or a schema reference).
	Path string `json:"path"`
	// Message is a human-readable description of the problem.
	Message string `json:"message"`
	// Severity indicates how serious the problem is.
	Severity Severity `json:"severity"`
	// SchemaRef is the validation reference the value was checked
	// against, when known.
	SchemaRef string `json:"schemaRef,omitempty"`
	// Value is the offending value, when it is safe to echo back.
	Value any `json:"value,omitempty"`
}

// String returns a formatted representation of the issue.
func (i Issue) String() string {
	if i.Path == "" {
		return fmt.Sprintf("[%s] %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Path, i.Message)
}

// Errors filters the given issues down to those with SeverityError.
func Errors(all []Issue) []Issue {
	var out []Issue
	for _, i := range all {
		if i.Severity == SeverityError {
			out = append(out, i)
		}
	}
	return out
}

// HasErrors reports whether any issue in the list has SeverityError.
func HasErrors(all []Issue) bool {
	for _, i := range all {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
