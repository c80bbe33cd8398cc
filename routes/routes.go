// Package routes provides pure string transforms for wiring Swagger path
// templates into HTTP routers and for building JSON Pointer validation
// references into registered schema documents.
package routes

import (
	"fmt"
	"strings"
)

// ToColonPath rewrites a Swagger path template using brace-delimited
// parameters into the colon-prefixed syntax used by common Go routers.
//
// Every "/{name}" segment becomes "/:name":
//
//	ToColonPath("/widgets/{widgetId}/parts/{partId}")
//	// "/widgets/:widgetId/parts/:partId"
func ToColonPath(template string) string {
	var b strings.Builder
	b.Grow(len(template))

	i := 0
	for i < len(template) {
		if template[i] == '/' && i+1 < len(template) && template[i+1] == '{' {
			end := strings.IndexByte(template[i+2:], '}')
			if end >= 0 {
				b.WriteByte('/')
				b.WriteByte(':')
				b.WriteString(template[i+2 : i+2+end])
				i += end + 3
				continue
			}
		}
		b.WriteByte(template[i])
		i++
	}

	return b.String()
}

// ParamNames returns the brace-delimited parameter names in a path
// template, in order of appearance.
func ParamNames(template string) []string {
	var names []string
	rest := template
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			return names
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return names
		}
		names = append(names, rest[start+1:start+end])
		rest = rest[start+end+1:]
	}
}

// EscapePointerToken escapes a single reference token for embedding in a
// JSON Pointer, per RFC 6901: "~" becomes "~0" and "/" becomes "~1".
// The "~" replacement must run first so that literal "/" characters do
// not produce "~01".
func EscapePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

// UnescapePointerToken reverses EscapePointerToken: "~1" becomes "/" and
// "~0" becomes "~", in that order per RFC 6901.
func UnescapePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

// ParamRef builds the validation reference for one declared parameter of
// a route:
//
//	<schemaName>#/paths/<escapedPath>/<verb>/parameters/<index>
//
// When the parameter declaration carries an inline schema, "/schema" is
// appended so validation targets the subschema rather than the
// declaration object itself.
func ParamRef(schemaName, pathTemplate, verb string, index int, hasSchema bool) string {
	ref := fmt.Sprintf("%s#/paths/%s/%s/parameters/%d",
		schemaName, EscapePointerToken(pathTemplate), strings.ToLower(verb), index)
	if hasSchema {
		ref += "/schema"
	}
	return ref
}

// ResponseRef builds the validation reference for a route response by
// status code:
//
//	<schemaName>#/paths/<escapedPath>/<verb>/responses/<statusCode>
func ResponseRef(schemaName, pathTemplate, verb string, statusCode int) string {
	return fmt.Sprintf("%s#/paths/%s/%s/responses/%d",
		schemaName, EscapePointerToken(pathTemplate), strings.ToLower(verb), statusCode)
}
