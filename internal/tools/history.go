package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/calcforge/calc-repl/internal/repl"

	"github.com/mark3labs/mcp-go/mcp"
)

// HistoryTool reports the calculations performed in this session
type HistoryTool struct {
	history *repl.History
}

// NewHistoryTool creates a new history tool
func NewHistoryTool(history *repl.History) *HistoryTool {
	return &HistoryTool{
		history: history,
	}
}

// GetTool returns the MCP tool definition
func (t *HistoryTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolHistory,
		mcp.WithDescription("Show the history of calculations for this session"),
	)
}

// Handle processes the tool request
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := t.history.Entries()
	if len(entries) == 0 {
		return mcp.NewToolResultText("No calculations performed yet."), nil
	}

	var lines []string
	for i, entry := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, entry))
	}

	return mcp.NewToolResultText(fmt.Sprintf("Calculation History:\n%s", strings.Join(lines, "\n"))), nil
}
