package validate

import "github.com/bguiz/schwag/internal/issues"

// ValidateResponse checks the outgoing body against the route's
// response schema for the output's status code, and reports the issues
// found.
//
// In production mode the check is skipped entirely for latency; this is
// an explicit trust boundary — response-shape bugs are caught
// pre-release, not re-verified per request. Outside production, a body
// that violates its schema unconditionally replaces the output's Status
// with 500 and its Body with a FailureEnvelope carrying the error list
// and the original body; Headers are never touched.
func (e *Engine) ValidateResponse(rc *RouteConfig, out *Output) []issues.Issue {
	if e.production {
		return nil
	}

	found := e.validator.Validate(rc.ResponseRef(out.Status), out.Body)
	if !issues.HasErrors(found) {
		return found
	}

	out.Body = FailureEnvelope{
		Code:     ResponseFailureCode,
		Message:  "response body does not match its declared schema",
		Errors:   found,
		Original: out.Body,
	}
	out.Status = 500

	return found
}
