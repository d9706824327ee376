package mcpadapter

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/diagram"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/models"
)

const ToolName = "generate_er_diagram"

// DiagramGenerator is implemented by *diagram.Generator.
type DiagramGenerator interface {
	Generate(ctx context.Context, description string) (models.DiagramResponse, error)
}

// NewGenerateHandler returns a tool handler that uses the given generator.
// Pass the returned function to mcp.AddTool.
func NewGenerateHandler(generator DiagramGenerator) func(context.Context, *mcp.CallToolRequest, models.DiagramRequest) (*mcp.CallToolResult, models.DiagramResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input models.DiagramRequest) (*mcp.CallToolResult, models.DiagramResponse, error) {
		return GenerateDiagram(ctx, generator, input)
	}
}

// GenerateDiagram runs one generation. Failures carry the same detail text as
// the HTTP API and are reported to the client as tool errors.
func GenerateDiagram(
	ctx context.Context,
	generator DiagramGenerator,
	input models.DiagramRequest,
) (*mcp.CallToolResult, models.DiagramResponse, error) {
	result, err := generator.Generate(ctx, input.Prompt)
	if err != nil {
		return nil, models.DiagramResponse{}, errors.New(diagram.Detail(err))
	}

	return nil, result, nil
}

// NewServer creates an MCP server exposing the diagram tool.
func NewServer(generator DiagramGenerator, version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "er-diagram-agent",
			Version: version,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolName,
		Description: "Convert a natural language database description into Mermaid.js ER diagram code",
	}, NewGenerateHandler(generator))

	return server
}
