// Package middleware adapts the validation engine to net/http. It
// reads incoming requests into bundles, rejects invalid requests with
// a 400 and the accumulated error list, and (outside production)
// buffers responses so they can be checked against their declared
// schema before reaching the client.
package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bguiz/schwag/internal/issues"
	"github.com/bguiz/schwag/validate"
)

type contextKey struct{ name string }

var bundleKey = &contextKey{"schwag.bundle"}

// BundleFromContext returns the validated bundle stored by the
// middleware, with coerced parameter values written back. The second
// return value is false when the request did not pass through the
// middleware.
func BundleFromContext(ctx context.Context) (*validate.Bundle, bool) {
	b, ok := ctx.Value(bundleKey).(*validate.Bundle)
	return b, ok
}

// Option configures a Middleware.
type Option func(*Middleware)

// WithLogger sets the structured logger. The default is NopLogger.
func WithLogger(logger Logger) Option {
	return func(m *Middleware) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Middleware wraps HTTP handlers with request and response validation
// for a configured route. It is safe for concurrent use.
type Middleware struct {
	engine *validate.Engine
	logger Logger
}

// New creates a Middleware backed by the given engine.
func New(engine *validate.Engine, opts ...Option) *Middleware {
	m := &Middleware{
		engine: engine,
		logger: NopLogger{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Validate returns standard net/http middleware enforcing the given
// route configuration. Requests that fail validation are rejected with
// a 400 and never reach the wrapped handler. Outside production mode
// the response is buffered and checked against its declared schema
// before being written.
func (m *Middleware) Validate(rc *validate.RouteConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bundle := bundleFromRequest(r)
			m.engine.ValidateRequest(rc, bundle)

			if !bundle.Valid() {
				m.logger.Warn("request rejected",
					"method", r.Method,
					"path", rc.Path,
					"errors", len(bundle.Errors))
				writeJSON(w, http.StatusBadRequest, map[string]any{
					"errors": bundle.Errors,
				})
				return
			}

			r = r.WithContext(context.WithValue(r.Context(), bundleKey, bundle))

			if m.engine.Production() {
				next.ServeHTTP(w, r)
				return
			}

			rec := newRecorder()
			next.ServeHTTP(rec, r)

			out := rec.output()
			if found := m.engine.ValidateResponse(rc, out); issues.HasErrors(found) {
				m.logger.Error("response replaced",
					"method", r.Method,
					"path", rc.Path,
					"status", rec.status,
					"errors", len(found))
			}
			rec.flush(w, out)
		})
	}
}

// Mount registers a handler for the route on a chi router, wrapped
// with validation. chi shares the brace-delimited template syntax, so
// the route path is used as-is.
func (m *Middleware) Mount(r chi.Router, rc *validate.RouteConfig, h http.Handler) {
	r.Method(strings.ToUpper(rc.Verb), rc.Path, m.Validate(rc)(h))
}

// bundleFromRequest reads the request into a fresh bundle: first query
// values, overwritten by path values on name collision, lowercased
// header first-values, and the JSON-decoded body when one is present.
func bundleFromRequest(r *http.Request) *validate.Bundle {
	bundle := validate.NewBundle()

	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			bundle.Params[name] = values[0]
		}
	}

	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		for i, name := range routeCtx.URLParams.Keys {
			bundle.Params[name] = routeCtx.URLParams.Values[i]
		}
	}

	for name, values := range r.Header {
		if len(values) > 0 {
			bundle.Headers[strings.ToLower(name)] = values[0]
		}
	}

	if r.Body != nil && r.Body != http.NoBody {
		var body any
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&body); err == nil {
			bundle.Body = normalizeNumbers(body)
		} else if !errors.Is(err, io.EOF) {
			bundle.Errors = append(bundle.Errors, issues.Issue{
				Path:     "body",
				Message:  "request body is not valid JSON",
				Severity: issues.SeverityError,
			})
		}
	}

	return bundle
}

// normalizeNumbers converts json.Number values to float64 throughout a
// decoded document, so body values compare like any other JSON number.
func normalizeNumbers(value any) any {
	switch v := value.(type) {
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]any:
		for key, elem := range v {
			v[key] = normalizeNumbers(elem)
		}
		return v
	case []any:
		for i, elem := range v {
			v[i] = normalizeNumbers(elem)
		}
		return v
	default:
		return value
	}
}

// recorder buffers a handler's response so it can be validated before
// anything reaches the client.
type recorder struct {
	status int
	header http.Header
	body   bytes.Buffer
}

func newRecorder() *recorder {
	return &recorder{
		status: http.StatusOK,
		header: make(http.Header),
	}
}

// Header implements http.ResponseWriter.
func (rec *recorder) Header() http.Header { return rec.header }

// Write implements http.ResponseWriter.
func (rec *recorder) Write(p []byte) (int, error) { return rec.body.Write(p) }

// WriteHeader implements http.ResponseWriter.
func (rec *recorder) WriteHeader(status int) { rec.status = status }

// output converts the buffered response into the engine's output
// shape. Non-JSON bodies are carried as raw strings.
func (rec *recorder) output() *validate.Output {
	out := &validate.Output{
		Status:  rec.status,
		Headers: make(map[string]string, len(rec.header)),
	}
	for name := range rec.header {
		out.Headers[name] = rec.header.Get(name)
	}

	raw := rec.body.Bytes()
	if len(raw) > 0 {
		var body any
		if err := json.Unmarshal(raw, &body); err == nil {
			out.Body = body
		} else {
			out.Body = string(raw)
		}
	}

	return out
}

// flush writes the (possibly replaced) output to the real writer. The
// recorded headers are preserved even when the body was replaced.
func (rec *recorder) flush(w http.ResponseWriter, out *validate.Output) {
	for name, value := range out.Headers {
		w.Header().Set(name, value)
	}

	if _, replaced := out.Body.(validate.FailureEnvelope); replaced {
		writeJSON(w, out.Status, out.Body)
		return
	}

	w.WriteHeader(out.Status)
	if out.Body != nil {
		w.Write(rec.body.Bytes())
	}
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
