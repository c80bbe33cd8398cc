package schema

import (
	"fmt"
	"math"
	"net/mail"
	"regexp"

	"github.com/bguiz/schwag/internal/issues"
)

// Numeric format names with built-in checks.
const (
	// FormatInteger requires a whole, non-NaN number.
	FormatInteger = "integer"
	// FormatDouble requires any non-NaN number. Once the base number
	// type check holds this is a pass-through for finite values.
	FormatDouble = "double"
)

// validateNumberFormat checks the built-in numeric formats. Unknown
// formats are ignored per JSON Schema convention.
func (v *DefaultValidator) validateNumberFormat(n float64, format, path string) []issues.Issue {
	switch format {
	case FormatInteger:
		if math.IsNaN(n) || n != math.Trunc(n) {
			msg := "value is not an integer"
			if !v.redactValues {
				msg = fmt.Sprintf("value %v is not an integer", n)
			}
			return []issues.Issue{{
				Path:     path,
				Message:  msg,
				Severity: issues.SeverityError,
			}}
		}
	case FormatDouble:
		if math.IsNaN(n) {
			return []issues.Issue{{
				Path:     path,
				Message:  "value is not a valid double",
				Severity: issues.SeverityError,
			}}
		}
	}
	return nil
}

var (
	uuidRegex     = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	dateRegex     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimeRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)
)

// validateStringFormat checks common string formats. Failures are
// reported as warnings; format checks are advisory. Unknown formats
// are ignored.
func (v *DefaultValidator) validateStringFormat(s, format, path string) []issues.Issue {
	var ok bool
	var what string

	switch format {
	case "email":
		_, err := mail.ParseAddress(s)
		ok, what = err == nil, "email address"
	case "uuid":
		ok, what = uuidRegex.MatchString(s), "UUID"
	case "date":
		ok, what = dateRegex.MatchString(s), "date (expected YYYY-MM-DD)"
	case "date-time":
		ok, what = dateTimeRegex.MatchString(s), "date-time (expected RFC 3339)"
	default:
		return nil
	}

	if ok {
		return nil
	}

	msg := fmt.Sprintf("value is not a valid %s", what)
	if !v.redactValues {
		msg = fmt.Sprintf("%q is not a valid %s", s, what)
	}
	return []issues.Issue{{
		Path:     path,
		Message:  msg,
		Severity: issues.SeverityWarning,
	}}
}
