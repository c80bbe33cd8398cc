package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"
)

type registerSchemaInput struct {
	Document string `json:"document"       jsonschema:"The schema document as YAML or JSON text"`
	Name     string `json:"name,omitempty" jsonschema:"Registry name override; default is derived from the document title"`
}

type registerSchemaOutput struct {
	Name       string   `json:"name"`
	Registered []string `json:"registered"`
}

func handleRegisterSchema(_ context.Context, _ *mcp.CallToolRequest, input registerSchemaInput) (*mcp.CallToolResult, registerSchemaOutput, error) {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(input.Document), &doc); err != nil {
		return errResult(err), registerSchemaOutput{}, nil
	}
	if input.Name != "" {
		doc["title"] = input.Name
	}

	reg := live.reg()
	if err := reg.Add(doc); err != nil {
		return errResult(err), registerSchemaOutput{}, nil
	}

	name, err := reg.DeriveName(doc)
	if err != nil {
		return errResult(err), registerSchemaOutput{}, nil
	}

	return nil, registerSchemaOutput{
		Name:       name,
		Registered: reg.Names(),
	}, nil
}
