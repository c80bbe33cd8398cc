package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bguiz/schwag/internal/issues"
	"github.com/bguiz/schwag/internal/testutil"
	"github.com/bguiz/schwag/registry"
	"github.com/bguiz/schwag/schema"
)

func TestValidateResponsePassing(t *testing.T) {
	e, rc := newTestEngine(t, "get")

	out := &Output{
		Status:  200,
		Headers: map[string]string{"content-type": "application/json"},
		Body:    map[string]any{"name": "sprocket"},
	}

	found := e.ValidateResponse(rc, out)

	assert.Empty(t, found)
	assert.Equal(t, 200, out.Status)
	assert.Equal(t, map[string]any{"name": "sprocket"}, out.Body)
}

func TestValidateResponseReplacesBodyAndStatus(t *testing.T) {
	e, rc := newTestEngine(t, "get")

	out := &Output{
		Status:  200,
		Headers: map[string]string{"x-trace-id": "abc123"},
		Body:    map[string]any{"count": 3},
	}

	found := e.ValidateResponse(rc, out)

	require.NotEmpty(t, found)
	assert.Equal(t, 500, out.Status)

	envelope, ok := out.Body.(FailureEnvelope)
	require.True(t, ok)
	assert.Equal(t, ResponseFailureCode, envelope.Code)
	assert.Equal(t, found, envelope.Errors)
	// The offending body travels with the envelope for diagnosis.
	assert.Equal(t, map[string]any{"count": 3}, envelope.Original)
	// Headers survive the replacement untouched.
	assert.Equal(t, map[string]string{"x-trace-id": "abc123"}, out.Headers)
}

func TestValidateResponseProductionSkips(t *testing.T) {
	e, rc := newTestEngine(t, "get", WithProductionMode(true))
	require.True(t, e.Production())

	out := &Output{Status: 200, Body: map[string]any{"count": 3}}

	found := e.ValidateResponse(rc, out)

	assert.Nil(t, found)
	assert.Equal(t, 200, out.Status)
	assert.Equal(t, map[string]any{"count": 3}, out.Body)
}

func TestValidateResponseUndeclaredStatus(t *testing.T) {
	// A status code with no declared response schema is reported as an
	// unresolvable reference rather than silently passing.
	e, rc := newTestEngine(t, "get")

	out := &Output{Status: 404, Body: map[string]any{"error": "gone"}}

	found := e.ValidateResponse(rc, out)

	require.NotEmpty(t, found)
	assert.Equal(t, 500, out.Status)
}

func TestValidateResponseWarningsDoNotReplace(t *testing.T) {
	// Format mismatches are warnings; they are reported but do not
	// trigger the failure envelope.
	reg := registry.New()
	require.NoError(t, reg.Add(testutil.MustDocument(`
title: MailAPI
paths:
  /contacts:
    get:
      responses:
        "200":
          type: string
          format: email
`)))
	reg.Freeze()

	rc, err := NewRouteConfig(reg, "MailAPI", "/contacts", "get")
	require.NoError(t, err)

	e := New(schema.New(reg))
	out := &Output{Status: 200, Body: "not-an-address"}

	found := e.ValidateResponse(rc, out)

	require.Len(t, found, 1)
	assert.Equal(t, issues.SeverityWarning, found[0].Severity)
	assert.Equal(t, 200, out.Status)
	assert.Equal(t, "not-an-address", out.Body)
}
