package project

// Project metadata, reported by the MCP server
const (
	Name    = "calc-repl"
	Version = "0.1.0"
)
