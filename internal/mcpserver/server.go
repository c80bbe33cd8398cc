// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes schwag capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bguiz/schwag"
	"github.com/bguiz/schwag/registry"
	"github.com/bguiz/schwag/schema"
)

const serverInstructions = `schwag MCP server — registers Swagger-style schema documents and validates values and routes against them.

Schemas registered with register_schema live for the session. Use list_routes to discover the operations a schema declares, validate_value to check a payload against any node of a registered schema, and rewrite_path to convert brace path templates to colon form.`

// session holds the per-session schema registry shared by all tools.
// Tools may run concurrently, so access goes through the mutex.
type session struct {
	mu       sync.Mutex
	registry *registry.Registry
}

func (s *session) reg() *registry.Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.registry == nil {
		s.registry = registry.New(registry.WithNormalizedNames())
	}
	return s.registry
}

func (s *session) validator() schema.Validator {
	return schema.New(s.reg())
}

var live session

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "schwag", Version: schwag.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "register_schema",
		Description: "Register a Swagger-style schema document for the session. The document is YAML or JSON; its name is derived from the top-level title (or info.title) unless name is given. Registration fails on duplicate names without altering the existing entry.",
	}, handleRegisterSchema)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_value",
		Description: "Validate a value against a node of a registered schema document. The reference has the form '<schemaName>#/<json-pointer>' (e.g. 'PetStore#/paths/~1pets/get/responses/200'). Returns the full list of validation issues; an empty list means the value conforms.",
	}, handleValidateValue)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_routes",
		Description: "List the route operations a registered schema document declares: path template, verb, parameter declarations, and their validation references.",
	}, handleListRoutes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rewrite_path",
		Description: "Rewrite a brace-delimited path template (e.g. /pets/{petId}) to colon form (/pets/:petId) and list its parameter names.",
	}, handleRewritePath)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
