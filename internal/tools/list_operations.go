package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/calcforge/calc-repl/internal/calculation"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListOperationsTool reports the registered operation names
type ListOperationsTool struct {
	factory *calculation.Factory
}

// NewListOperationsTool creates a new list-operations tool
func NewListOperationsTool(factory *calculation.Factory) *ListOperationsTool {
	return &ListOperationsTool{
		factory: factory,
	}
}

// GetTool returns the MCP tool definition
func (t *ListOperationsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolListOperations,
		mcp.WithDescription("List the supported calculation operations"),
	)
}

// Handle processes the tool request
func (t *ListOperationsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operations := t.factory.Operations()

	return mcp.NewToolResultText(fmt.Sprintf("Supported operations: %s", strings.Join(operations, ", "))), nil
}
