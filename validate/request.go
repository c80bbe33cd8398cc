package validate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/bguiz/schwag/internal/issues"
)

// ValidateRequest checks every declared parameter of the route against
// the input bundle, coercing primitive query/path/header values to
// their declared types first. Errors accumulate in in.Errors in
// declaration order; validation never short-circuits, so all
// parameters are checked even after one fails. Coerced values are
// written back into Params/Headers so they propagate to downstream
// consumers; the body is never written back.
//
// The caller decides how to reject a bundle with a non-empty error
// list; the engine itself produces no HTTP response.
func (e *Engine) ValidateRequest(rc *RouteConfig, in *Bundle) {
	for i := range rc.Params {
		e.validateParam(&rc.Params[i], in)
	}
}

// validateParam runs the locate/resolve/coerce/validate/write-back
// protocol for a single declared parameter.
func (e *Engine) validateParam(p *Param, in *Bundle) {
	raw, present, ok := locate(p, in)
	if !ok {
		in.Errors = append(in.Errors, issues.Issue{
			Path:     p.Name,
			Message:  fmt.Sprintf("Unrecognised location for parameter: %s", p.In),
			Severity: issues.SeverityError,
		})
		return
	}

	if !present {
		// A declared default is trusted verbatim; the schema author
		// supplies a valid one. It is written back but never validated.
		if p.Default != nil {
			writeBack(p, in, raw, p.Default)
			return
		}
		// Absent and optional: no coercion, no validation, no error.
		if !p.required() {
			return
		}
		// Absent but required: fall through with the undefined value,
		// which fails standard type validation downstream.
	}

	effective := e.coerce(p, raw)

	found := e.validator.Validate(p.Ref, effective)
	for _, issue := range found {
		issue.Path = issuePath(p, issue.Path)
		in.Errors = append(in.Errors, issue)
	}

	writeBack(p, in, raw, effective)
}

// locate reads the raw value for a parameter from its declared
// location. The third return value is false for unrecognised locations.
func locate(p *Param, in *Bundle) (raw any, present, ok bool) {
	switch p.In {
	case LocationQuery, LocationPath:
		raw, present = in.Params[p.Name]
		return raw, present, true
	case LocationHeader:
		raw, present = in.Headers[strings.ToLower(p.Name)]
		return raw, present, true
	case LocationBody:
		return in.Body, in.Body != nil, true
	default:
		return nil, false, false
	}
}

// coerce converts a raw transport value to the declared primitive type.
// Values that already match the declared type, and parameters carrying
// an inline schema, pass through untouched. When conversion is not
// possible the original value is retained so schema validation rejects
// it, rather than silently dropping or defaulting it.
func (e *Engine) coerce(p *Param, raw any) any {
	if matchesPrimitive(raw, p.Type) {
		return raw
	}
	if p.HasSchema {
		return raw
	}

	switch p.Type {
	case TypeNumber:
		if s, ok := raw.(string); ok {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f
			}
		}
	case TypeBoolean:
		switch raw {
		case "true":
			return true
		case "false":
			return false
		}
	case TypeString:
		if raw != nil {
			return stringify(raw)
		}
	}

	return raw
}

// matchesPrimitive reports whether the value already has the declared
// primitive type.
func matchesPrimitive(value any, primitiveType string) bool {
	switch primitiveType {
	case TypeNumber:
		switch value.(type) {
		case float64, float32, int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64:
			return true
		}
	case TypeBoolean:
		_, ok := value.(bool)
		return ok
	case TypeString:
		_, ok := value.(string)
		return ok
	}
	return false
}

// stringify renders a defined value as a string.
func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// writeBack stores the effective value into the bundle when it differs
// from the raw value that was read. Bodies are never written back.
func writeBack(p *Param, in *Bundle, raw, effective any) {
	if p.In == LocationBody {
		return
	}
	if reflect.DeepEqual(raw, effective) {
		return
	}
	switch p.In {
	case LocationQuery, LocationPath:
		in.Params[p.Name] = effective
	case LocationHeader:
		in.Headers[strings.ToLower(p.Name)] = effective
	}
}

// issuePath prefixes a validator issue path with the parameter's
// location and name (e.g. "query.limit" or "body.items[2]").
func issuePath(p *Param, nested string) string {
	base := string(p.In)
	if p.In != LocationBody {
		base += "." + p.Name
	}
	if nested == "" {
		return base
	}
	if strings.HasPrefix(nested, "[") {
		return base + nested
	}
	return base + "." + nested
}
