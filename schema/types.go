package schema

import (
	"bytes"
	"io"
)

// TypeCheck is a structural capability check for a non-JSON schema
// type. It reports whether the Go value satisfies the capability.
type TypeCheck func(value any) bool

// Capability type names with built-in checks.
const (
	// TypeBuffer matches binary byte-buffer values.
	TypeBuffer = "buffer"
	// TypeReadableStream matches values exposing a read capability.
	TypeReadableStream = "readableStream"
	// TypeWriteableStream matches values exposing a write capability.
	TypeWriteableStream = "writeableStream"
)

// defaultTypeChecks returns the built-in capability checks. The set is
// decided once at validator construction; see WithTypeCheck to extend it.
func defaultTypeChecks() map[string]TypeCheck {
	return map[string]TypeCheck{
		TypeBuffer:          IsBuffer,
		TypeReadableStream:  IsReadableStream,
		TypeWriteableStream: IsWriteableStream,
	}
}

// IsBuffer reports whether the value is a binary byte-buffer: a byte
// slice or a *bytes.Buffer.
func IsBuffer(value any) bool {
	switch value.(type) {
	case []byte, *bytes.Buffer:
		return true
	}
	return false
}

// IsReadableStream reports whether the value exposes the standard read
// capability (io.Reader).
func IsReadableStream(value any) bool {
	_, ok := value.(io.Reader)
	return ok
}

// IsWriteableStream reports whether the value exposes the standard
// write capability (io.Writer).
func IsWriteableStream(value any) bool {
	_, ok := value.(io.Writer)
	return ok
}
