package validate

import (
	"github.com/bguiz/schwag/schema"
)

// Option configures an Engine.
type Option func(*Engine)

// WithProductionMode controls the deployment-mode gate for response
// validation. In production mode ValidateResponse is a no-op: response
// shape bugs are caught pre-release, not re-verified per request.
func WithProductionMode(production bool) Option {
	return func(e *Engine) {
		e.production = production
	}
}

// Engine validates request and response payloads against their route
// configuration. It is stateless per request and safe for concurrent
// use: all mutable state lives in the per-request Bundle and Output.
type Engine struct {
	validator  schema.Validator
	production bool
}

// New creates an Engine backed by the given schema validator.
func New(validator schema.Validator, opts ...Option) *Engine {
	e := &Engine{validator: validator}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Production reports whether the engine runs in production mode.
func (e *Engine) Production() bool {
	return e.production
}
