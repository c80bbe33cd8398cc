package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bguiz/schwag/routes"
)

// Resolver locates nodes in registered schema documents by validation
// reference. The registry package provides the standard implementation.
type Resolver interface {
	Resolve(ref string) (any, error)
}

// RouteConfig is the immutable per-route configuration consumed by the
// Engine: the declared parameter list with precomputed validation
// references. Construct one per path+verb at route-registration time
// and share it across requests.
type RouteConfig struct {
	// SchemaName is the registry key of the schema document describing
	// this route.
	SchemaName string

	// Path is the brace-delimited path template (e.g. "/pets/{petId}").
	Path string

	// Verb is the lowercase HTTP method.
	Verb string

	// Params are the declared parameters in declaration order.
	Params []Param
}

// NewRouteConfig builds the configuration for one route from its
// registered schema document. It fails if the operation cannot be found
// in the document; a route with no declared parameters is valid.
func NewRouteConfig(resolver Resolver, schemaName, pathTemplate, verb string) (*RouteConfig, error) {
	verb = strings.ToLower(verb)

	opRef := fmt.Sprintf("%s#/paths/%s/%s", schemaName, routes.EscapePointerToken(pathTemplate), verb)
	node, err := resolver.Resolve(opRef)
	if err != nil {
		return nil, fmt.Errorf("validate: no operation for %s %s: %w", verb, pathTemplate, err)
	}
	operation, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("validate: operation for %s %s is not an object", verb, pathTemplate)
	}

	rc := &RouteConfig{
		SchemaName: schemaName,
		Path:       pathTemplate,
		Verb:       verb,
	}

	rawParams, _ := operation["parameters"].([]any)
	for i, raw := range rawParams {
		decl, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("validate: parameter %d of %s %s is not an object", i, verb, pathTemplate)
		}
		param, err := paramFromDeclaration(decl)
		if err != nil {
			return nil, fmt.Errorf("validate: parameter %d of %s %s: %w", i, verb, pathTemplate, err)
		}
		param.Ref = routes.ParamRef(schemaName, pathTemplate, verb, i, param.HasSchema)
		rc.Params = append(rc.Params, param)
	}

	return rc, nil
}

// AllRouteConfigs builds configurations for every path+verb operation
// in a registered schema document, sorted by path then verb for
// deterministic registration order.
func AllRouteConfigs(resolver Resolver, schemaName string) ([]*RouteConfig, error) {
	node, err := resolver.Resolve(schemaName + "#/paths")
	if err != nil {
		return nil, fmt.Errorf("validate: schema %q has no paths: %w", schemaName, err)
	}
	paths, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("validate: schema %q paths is not an object", schemaName)
	}

	templates := make([]string, 0, len(paths))
	for template := range paths {
		templates = append(templates, template)
	}
	sort.Strings(templates)

	var configs []*RouteConfig
	for _, template := range templates {
		pathItem, ok := paths[template].(map[string]any)
		if !ok {
			continue
		}
		for _, verb := range httpVerbs {
			if _, exists := pathItem[verb]; !exists {
				continue
			}
			rc, err := NewRouteConfig(resolver, schemaName, template, verb)
			if err != nil {
				return nil, err
			}
			configs = append(configs, rc)
		}
	}

	return configs, nil
}

// httpVerbs lists the operation keys recognised in a path item, in
// registration order.
var httpVerbs = []string{"get", "put", "post", "delete", "patch", "head", "options"}

// ResponseRef returns the validation reference for this route's
// response with the given status code.
func (rc *RouteConfig) ResponseRef(statusCode int) string {
	return routes.ResponseRef(rc.SchemaName, rc.Path, rc.Verb, statusCode)
}

// paramFromDeclaration converts one raw parameter declaration object
// into a Param.
func paramFromDeclaration(decl map[string]any) (Param, error) {
	name, _ := decl["name"].(string)
	if name == "" {
		return Param{}, fmt.Errorf("declaration has no name")
	}

	in, _ := decl["in"].(string)
	if in == "" {
		return Param{}, fmt.Errorf("declaration %q has no location", name)
	}

	param := Param{
		Name:    name,
		In:      Location(in),
		Default: decl["default"],
	}

	if req, ok := decl["required"].(bool); ok {
		param.Required = &req
	}
	if t, ok := decl["type"].(string); ok {
		param.Type = t
	}
	if _, ok := decl["schema"]; ok {
		param.HasSchema = true
	}

	return param, nil
}
