package validate

import "github.com/bguiz/schwag/internal/issues"

// Bundle is the mutable per-request input state consumed by the engine.
// A fresh Bundle is created per incoming request by the request
// adapter, annotated by the engine, and read by the response adapter or
// rejected before reaching business logic.
type Bundle struct {
	// Params maps parameter name to value, merged from query then path
	// values; path values overwrite query values on name collision.
	Params map[string]any

	// Headers maps lowercased header name to value.
	Headers map[string]any

	// Body is the already-parsed request body. It is validated as-is
	// and never coerced.
	Body any

	// Errors accumulates validation errors in declaration order. It is
	// append-only; a non-empty list means the request is invalid.
	Errors []issues.Issue
}

// NewBundle creates an empty Bundle with initialized maps.
func NewBundle() *Bundle {
	return &Bundle{
		Params:  make(map[string]any),
		Headers: make(map[string]any),
	}
}

// Valid reports whether no validation errors have accumulated.
func (b *Bundle) Valid() bool {
	return len(b.Errors) == 0
}

// Output is the outgoing response state produced by the business
// handler. Response validation may replace Status and Body (never
// Headers) when the body violates the response schema.
type Output struct {
	// Status is the HTTP status code.
	Status int

	// Headers maps header name to value. Never mutated by the engine.
	Headers map[string]string

	// Body is the structured response payload.
	Body any
}

// ResponseFailureCode is the fixed internal error code carried by the
// failure envelope when a response violates its schema.
const ResponseFailureCode = "response-validation-failed"

// FailureEnvelope replaces the body of a response that failed schema
// validation. It carries the full diagnosis, including the original
// offending body.
type FailureEnvelope struct {
	// Code is always ResponseFailureCode.
	Code string `json:"code"`

	// Message is a human-readable summary.
	Message string `json:"message"`

	// Errors lists the schema violations found.
	Errors []issues.Issue `json:"errors"`

	// Original is the invalid body that was replaced, kept for
	// diagnosis.
	Original any `json:"original"`
}
