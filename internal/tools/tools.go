// Package tools implements the MCP tools exposed by the calc server.
package tools

// Tool name prefix for all MCP tools
const ToolPrefix = "calc."

// Tool names
const (
	ToolCalculate      = ToolPrefix + "calculate"
	ToolListOperations = ToolPrefix + "list_operations"
	ToolHistory        = ToolPrefix + "history"
)
