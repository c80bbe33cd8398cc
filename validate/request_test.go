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

const widgetDoc = `
title: WidgetAPI
paths:
  /widgets/{widgetId}:
    get:
      parameters:
        - name: widgetId
          in: path
          type: number
        - name: limit
          in: query
          type: number
          required: false
          default: 10
        - name: verbose
          in: query
          type: boolean
          required: false
        - name: x-request-source
          in: header
          type: string
          required: false
      responses:
        "200":
          type: object
          required: [name]
          properties:
            name:
              type: string
    post:
      parameters:
        - name: payload
          in: body
          schema:
            type: object
            required: [name]
            properties:
              name:
                type: string
      responses:
        "201":
          type: object
`

// newTestEngine registers widgetDoc and builds an engine plus the
// route config for the given verb.
func newTestEngine(t *testing.T, verb string, opts ...Option) (*Engine, *RouteConfig) {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.Add(testutil.MustDocument(widgetDoc)))
	reg.Freeze()

	rc, err := NewRouteConfig(reg, "WidgetAPI", "/widgets/{widgetId}", verb)
	require.NoError(t, err)

	return New(schema.New(reg), opts...), rc
}

func TestValidateRequestCoercesNumber(t *testing.T) {
	e, rc := newTestEngine(t, "get")

	in := NewBundle()
	in.Params["widgetId"] = "42"

	e.ValidateRequest(rc, in)

	assert.Empty(t, in.Errors)
	assert.Equal(t, 42.0, in.Params["widgetId"])
}

func TestValidateRequestFailClosedNumber(t *testing.T) {
	e, rc := newTestEngine(t, "get")

	in := NewBundle()
	in.Params["widgetId"] = "abc"

	e.ValidateRequest(rc, in)

	require.Len(t, in.Errors, 1)
	assert.Equal(t, "path.widgetId", in.Errors[0].Path)
	assert.Contains(t, in.Errors[0].Message, "expected type number but got string")
	// The unparseable value is retained, not dropped.
	assert.Equal(t, "abc", in.Params["widgetId"])
}

func TestValidateRequestCoercesBoolean(t *testing.T) {
	e, rc := newTestEngine(t, "get")

	in := NewBundle()
	in.Params["widgetId"] = "1"
	in.Params["verbose"] = "true"

	e.ValidateRequest(rc, in)

	assert.Empty(t, in.Errors)
	assert.Equal(t, true, in.Params["verbose"])
}

func TestValidateRequestBooleanFailClosed(t *testing.T) {
	e, rc := newTestEngine(t, "get")

	in := NewBundle()
	in.Params["widgetId"] = "1"
	in.Params["verbose"] = "yes"

	e.ValidateRequest(rc, in)

	require.Len(t, in.Errors, 1)
	assert.Equal(t, "query.verbose", in.Errors[0].Path)
	assert.Equal(t, "yes", in.Params["verbose"])
}

func TestValidateRequestOptionalAbsentSkipped(t *testing.T) {
	e, rc := newTestEngine(t, "get")

	in := NewBundle()
	in.Params["widgetId"] = "1"

	e.ValidateRequest(rc, in)

	assert.Empty(t, in.Errors)
	_, present := in.Params["verbose"]
	assert.False(t, present)
	_, present = in.Headers["x-request-source"]
	assert.False(t, present)
}

func TestValidateRequestDefaultAppliedVerbatim(t *testing.T) {
	e, rc := newTestEngine(t, "get")

	in := NewBundle()
	in.Params["widgetId"] = "1"

	e.ValidateRequest(rc, in)

	assert.Empty(t, in.Errors)
	assert.Equal(t, 10, in.Params["limit"])
}

func TestDefaultIsNeverValidated(t *testing.T) {
	// A default the schema would reject must still pass through
	// untouched: schema authors are trusted to supply valid defaults.
	reg := registry.New()
	require.NoError(t, reg.Add(testutil.MustDocument(`
title: TrustAPI
paths:
  /things:
    get:
      parameters:
        - name: mode
          in: query
          type: number
          required: false
          default: not-a-number
`)))
	reg.Freeze()

	rc, err := NewRouteConfig(reg, "TrustAPI", "/things", "get")
	require.NoError(t, err)

	e := New(schema.New(reg))
	in := NewBundle()
	e.ValidateRequest(rc, in)

	assert.Empty(t, in.Errors)
	assert.Equal(t, "not-a-number", in.Params["mode"])
}

func TestValidateRequestPresentOptionalStillValidated(t *testing.T) {
	// Only absent optional values are skipped; a present invalid value
	// is validated and fails.
	e, rc := newTestEngine(t, "get")

	in := NewBundle()
	in.Params["widgetId"] = "1"
	in.Params["limit"] = "plenty"

	e.ValidateRequest(rc, in)

	require.Len(t, in.Errors, 1)
	assert.Equal(t, "query.limit", in.Errors[0].Path)
}

func TestValidateRequestRequiredMissingFails(t *testing.T) {
	e, rc := newTestEngine(t, "get")

	in := NewBundle()

	e.ValidateRequest(rc, in)

	require.Len(t, in.Errors, 1)
	assert.Equal(t, "path.widgetId", in.Errors[0].Path)
	assert.Contains(t, in.Errors[0].Message, "null")
}

func TestValidateRequestHeaderCoercionWritesBack(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Add(testutil.MustDocument(`
title: HeaderAPI
paths:
  /items:
    get:
      parameters:
        - name: X-Page-Size
          in: header
          type: number
`)))
	reg.Freeze()

	rc, err := NewRouteConfig(reg, "HeaderAPI", "/items", "get")
	require.NoError(t, err)

	e := New(schema.New(reg))
	in := NewBundle()
	in.Headers["x-page-size"] = "25"

	e.ValidateRequest(rc, in)

	assert.Empty(t, in.Errors)
	assert.Equal(t, 25.0, in.Headers["x-page-size"])
}

func TestValidateRequestBodyValidatedNotCoerced(t *testing.T) {
	e, rc := newTestEngine(t, "post")

	in := NewBundle()
	in.Body = map[string]any{"name": "widgeteer"}

	e.ValidateRequest(rc, in)
	assert.Empty(t, in.Errors)

	// Body failing its schema accumulates an error; the body value
	// itself is left untouched.
	bad := NewBundle()
	badBody := map[string]any{"count": 3}
	bad.Body = badBody

	e.ValidateRequest(rc, bad)

	require.Len(t, bad.Errors, 1)
	assert.Equal(t, "body.name", bad.Errors[0].Path)
	assert.Equal(t, map[string]any{"count": 3}, bad.Body)
}

func TestValidateRequestBodyNeverWrittenToParams(t *testing.T) {
	e, rc := newTestEngine(t, "post")

	in := NewBundle()
	in.Params["stray"] = "kept"
	in.Body = map[string]any{"name": "ok"}

	e.ValidateRequest(rc, in)

	assert.Equal(t, map[string]any{"stray": "kept"}, in.Params)
	assert.Equal(t, map[string]any{"name": "ok"}, in.Body)
}

func TestValidateRequestUnrecognisedLocation(t *testing.T) {
	e, _ := newTestEngine(t, "get")

	rc := &RouteConfig{
		SchemaName: "WidgetAPI",
		Path:       "/widgets/{widgetId}",
		Verb:       "get",
		Params: []Param{
			{Name: "weird", In: Location("formData"), Type: TypeString},
		},
	}

	in := NewBundle()
	e.ValidateRequest(rc, in)

	require.Len(t, in.Errors, 1)
	assert.Equal(t, "Unrecognised location for parameter: formData", in.Errors[0].Message)
}

func TestValidateRequestAccumulatesAllErrors(t *testing.T) {
	e, rc := newTestEngine(t, "get")

	in := NewBundle()
	in.Params["widgetId"] = "abc"
	in.Params["verbose"] = "maybe"

	e.ValidateRequest(rc, in)

	require.Len(t, in.Errors, 2)
	// Declaration order: widgetId before verbose.
	assert.Equal(t, "path.widgetId", in.Errors[0].Path)
	assert.Equal(t, "query.verbose", in.Errors[1].Path)
	assert.False(t, in.Valid())
}

func TestValidateRequestInlineSchemaSkipsCoercion(t *testing.T) {
	// A declaration carrying an inline schema passes the raw value
	// through to the validator unchanged, even when a primitive type
	// is also declared.
	reg := registry.New()
	require.NoError(t, reg.Add(testutil.MustDocument(`
title: MixedAPI
paths:
  /items:
    get:
      parameters:
        - name: count
          in: query
          type: number
          schema:
            type: number
`)))
	reg.Freeze()

	rc, err := NewRouteConfig(reg, "MixedAPI", "/items", "get")
	require.NoError(t, err)
	require.True(t, rc.Params[0].HasSchema)
	assert.Equal(t, "MixedAPI#/paths/~1items/get/parameters/0/schema", rc.Params[0].Ref)

	e := New(schema.New(reg))
	in := NewBundle()
	in.Params["count"] = "5"

	e.ValidateRequest(rc, in)

	// "5" was not coerced, so the number schema rejects it.
	require.Len(t, in.Errors, 1)
	assert.Equal(t, "5", in.Params["count"])
}

func TestStringParameterStringified(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Add(testutil.MustDocument(`
title: StrAPI
paths:
  /items:
    get:
      parameters:
        - name: tag
          in: query
          type: string
`)))
	reg.Freeze()

	rc, err := NewRouteConfig(reg, "StrAPI", "/items", "get")
	require.NoError(t, err)

	e := New(schema.New(reg))
	in := NewBundle()
	in.Params["tag"] = 7

	e.ValidateRequest(rc, in)

	assert.Empty(t, in.Errors)
	assert.Equal(t, "7", in.Params["tag"])
}

func TestRouteConfigFromUnknownOperation(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Add(testutil.MustDocument(widgetDoc)))
	reg.Freeze()

	_, err := NewRouteConfig(reg, "WidgetAPI", "/widgets/{widgetId}", "delete")
	assert.Error(t, err)
}

func TestAllRouteConfigs(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Add(testutil.MustDocument(widgetDoc)))
	reg.Freeze()

	configs, err := AllRouteConfigs(reg, "WidgetAPI")
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, "get", configs[0].Verb)
	assert.Equal(t, "post", configs[1].Verb)
	assert.Equal(t, "/widgets/{widgetId}", configs[0].Path)
	require.Len(t, configs[0].Params, 4)
	assert.Equal(t,
		"WidgetAPI#/paths/~1widgets~1{widgetId}/get/parameters/0",
		configs[0].Params[0].Ref)
}

// fakeValidator records calls and returns canned issues per reference.
type fakeValidator struct {
	calls  []fakeCall
	canned map[string][]issues.Issue
}

type fakeCall struct {
	ref   string
	value any
}

func (f *fakeValidator) Validate(ref string, value any) []issues.Issue {
	f.calls = append(f.calls, fakeCall{ref: ref, value: value})
	return f.canned[ref]
}

func TestValidatorNotCalledForAbsentOptionalOrDefault(t *testing.T) {
	fake := &fakeValidator{}
	e := New(fake)

	truthy := false
	rc := &RouteConfig{
		SchemaName: "API",
		Path:       "/x",
		Verb:       "get",
		Params: []Param{
			{Name: "opt", In: LocationQuery, Type: TypeNumber, Required: &truthy},
			{Name: "dflt", In: LocationQuery, Type: TypeNumber, Required: &truthy, Default: 3},
		},
	}

	in := NewBundle()
	e.ValidateRequest(rc, in)

	assert.Empty(t, fake.calls)
	assert.Empty(t, in.Errors)
	assert.Equal(t, 3, in.Params["dflt"])
}
