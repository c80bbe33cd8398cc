// Package validate implements the parameter coercion and validation
// engine for one HTTP route: given the route's declared parameters and
// a raw input bundle (query/path/header values plus a parsed body), it
// produces a validated, type-coerced bundle and an accumulated list of
// validation errors.
//
// Route-specific state lives in an immutable RouteConfig constructed
// once at route-registration time; the Engine itself is stateless per
// request and safe for concurrent use.
//
// # Coercion protocol
//
// Raw query, path and header values arrive as strings. Before
// validation each is coerced to its declared primitive type:
//
//   - number: parsed with strconv.ParseFloat; an unparseable value
//     passes through unchanged so schema validation rejects it
//     (fail-closed, not fail-silent)
//   - boolean: only the literals "true" and "false" convert; anything
//     else passes through and fails validation downstream
//   - string: any defined value is stringified
//   - any other declared type: the value passes through unchanged
//
// Values that already have the declared type are used as-is, and
// parameters carrying an inline schema skip primitive coercion
// entirely. Bodies are never coerced, only validated. Absent optional
// parameters are skipped; absent parameters with a declared default
// take the default verbatim without re-validation.
package validate
