package tools

import (
	"context"

	"github.com/calcforge/calc-repl/internal/calculation"
	"github.com/calcforge/calc-repl/internal/repl"

	"github.com/mark3labs/mcp-go/mcp"
)

// CalculateTool performs one calculation and records it in the session history
type CalculateTool struct {
	factory *calculation.Factory
	history *repl.History
}

// NewCalculateTool creates a new calculate tool
func NewCalculateTool(factory *calculation.Factory, history *repl.History) *CalculateTool {
	return &CalculateTool{
		factory: factory,
		history: history,
	}
}

// GetTool returns the MCP tool definition
func (t *CalculateTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolCalculate,
		mcp.WithDescription("Perform a calculation with the specified operation and two numbers"),
		mcp.WithString("operation", mcp.Required(), mcp.Description("Operation name (add, subtract, multiply, divide, power)")),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("First operand")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Second operand")),
	)
}

// Handle processes the tool request
func (t *CalculateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operation := mcp.ParseString(req, "operation", "")
	if operation == "" {
		return mcp.NewToolResultError("operation parameter is required"), nil
	}

	a := mcp.ParseFloat64(req, "a", 0)
	b := mcp.ParseFloat64(req, "b", 0)

	c, err := t.factory.Create(operation, a, b)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, err := c.Execute(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entry := c.String()
	t.history.Add(entry)

	return mcp.NewToolResultText(entry), nil
}
