package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bguiz/schwag/routes"
	"github.com/bguiz/schwag/validate"
)

type listRoutesInput struct {
	Schema string `json:"schema" jsonschema:"Name of a registered schema document"`
}

type routeParam struct {
	Name     string `json:"name"`
	In       string `json:"in"`
	Type     string `json:"type,omitempty"`
	Required bool   `json:"required"`
	Ref      string `json:"ref"`
}

type routeSummary struct {
	Path      string       `json:"path"`
	ColonPath string       `json:"colon_path"`
	Verb      string       `json:"verb"`
	Params    []routeParam `json:"params,omitempty"`
}

type listRoutesOutput struct {
	Routes []routeSummary `json:"routes"`
}

func handleListRoutes(_ context.Context, _ *mcp.CallToolRequest, input listRoutesInput) (*mcp.CallToolResult, listRoutesOutput, error) {
	configs, err := validate.AllRouteConfigs(live.reg(), input.Schema)
	if err != nil {
		return errResult(err), listRoutesOutput{}, nil
	}

	var output listRoutesOutput
	for _, rc := range configs {
		summary := routeSummary{
			Path:      rc.Path,
			ColonPath: routes.ToColonPath(rc.Path),
			Verb:      rc.Verb,
		}
		for _, p := range rc.Params {
			required := p.Required == nil || *p.Required
			summary.Params = append(summary.Params, routeParam{
				Name:     p.Name,
				In:       string(p.In),
				Type:     p.Type,
				Required: required,
				Ref:      p.Ref,
			})
		}
		output.Routes = append(output.Routes, summary)
	}

	return nil, output, nil
}

type rewritePathInput struct {
	Path string `json:"path" jsonschema:"Brace-delimited path template, e.g. /pets/{petId}"`
}

type rewritePathOutput struct {
	ColonPath string   `json:"colon_path"`
	Params    []string `json:"params,omitempty"`
}

func handleRewritePath(_ context.Context, _ *mcp.CallToolRequest, input rewritePathInput) (*mcp.CallToolResult, rewritePathOutput, error) {
	return nil, rewritePathOutput{
		ColonPath: routes.ToColonPath(input.Path),
		Params:    routes.ParamNames(input.Path),
	}, nil
}
