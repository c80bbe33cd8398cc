package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bguiz/schwag/internal/issues"
)

type validateValueInput struct {
	Ref   string `json:"ref"   jsonschema:"Validation reference of the form '<schemaName>#/<json-pointer>'"`
	Value string `json:"value" jsonschema:"The value to validate, as JSON text"`
}

type validateIssue struct {
	Path     string `json:"path"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type validateValueOutput struct {
	Valid      bool            `json:"valid"`
	ErrorCount int             `json:"error_count"`
	Issues     []validateIssue `json:"issues,omitempty"`
}

func handleValidateValue(_ context.Context, _ *mcp.CallToolRequest, input validateValueInput) (*mcp.CallToolResult, validateValueOutput, error) {
	var value any
	if err := json.Unmarshal([]byte(input.Value), &value); err != nil {
		return errResult(fmt.Errorf("value is not valid JSON: %w", err)), validateValueOutput{}, nil
	}

	found := live.validator().Validate(input.Ref, value)

	output := validateValueOutput{
		Valid:      !issues.HasErrors(found),
		ErrorCount: len(issues.Errors(found)),
	}
	for _, issue := range found {
		output.Issues = append(output.Issues, validateIssue{
			Path:     issue.Path,
			Message:  issue.Message,
			Severity: issue.Severity.String(),
		})
	}

	return nil, output, nil
}
