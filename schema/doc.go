// Package schema provides the validate-by-reference capability used by
// the request/response validation engine.
//
// The Validator interface takes a validation reference of the form
// "<schemaName>#/<pointer>" plus a value, and returns the list of issues
// found (empty means valid). The default implementation resolves the
// reference through a registry and validates the value against the
// resolved schema node, implementing a subset of JSON Schema suitable
// for HTTP parameter and body validation:
//
//   - type checking (string, number, integer, boolean, array, object,
//     null and nullable)
//   - string constraints (minLength, maxLength, pattern, enum, format)
//   - number constraints (minimum, maximum, exclusive bounds, multipleOf)
//   - array constraints (items, minItems, maxItems, uniqueItems)
//   - object constraints (required, properties, additionalProperties,
//     minProperties, maxProperties)
//   - composition (allOf, anyOf, oneOf)
//   - local $ref resolution within the same document
//
// Two numeric formats are built in: "integer" (a whole, non-NaN number)
// and "double" (any non-NaN number). Binary and streaming payloads can
// be described with the capability types "buffer", "readableStream" and
// "writeableStream", which are checked structurally against Go values
// ([]byte and *bytes.Buffer, io.Reader, io.Writer).
package schema
