package validate

// Location identifies where a declared parameter is carried in an HTTP
// request.
type Location string

// Parameter locations.
const (
	LocationQuery  Location = "query"
	LocationPath   Location = "path"
	LocationHeader Location = "header"
	LocationBody   Location = "body"
)

// Primitive coercion targets. Declarations with any other type pass
// their raw value through unchanged and rely on schema validation.
const (
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeString  = "string"
)

// Param is one declared parameter of a route. Params are built from a
// registered schema document by NewRouteConfig; construct them directly
// only in tests or when bypassing document-driven registration.
type Param struct {
	// Name identifies the parameter.
	Name string

	// In is the parameter location.
	In Location

	// Required defaults to true when nil; only an explicit false makes
	// the parameter optional.
	Required *bool

	// Default is used verbatim when no value is supplied and the
	// parameter is optional. Defaults are trusted and never validated.
	Default any

	// Type is the declared primitive coercion target (number, boolean
	// or string). Other values disable coercion.
	Type string

	// HasSchema records whether the declaration carries an inline
	// schema. When true, primitive coercion is skipped and validation
	// targets the declaration's schema subobject.
	HasSchema bool

	// Ref is the validation reference for this parameter, precomputed
	// at route-registration time.
	Ref string
}

// required resolves the default-true semantics.
func (p *Param) required() bool {
	return p.Required == nil || *p.Required
}
