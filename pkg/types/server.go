package types

import "context"

// Server defines the MCP server interface
type Server interface {
	// Serve blocks until the client disconnects or serving fails
	Serve(ctx context.Context) error
}
