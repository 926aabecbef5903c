package server

import (
	"context"
	"fmt"
	"log"

	"github.com/calcforge/calc-repl/internal/calculation"
	"github.com/calcforge/calc-repl/internal/repl"
	"github.com/calcforge/calc-repl/internal/tools"
	"github.com/calcforge/calc-repl/pkg/project"
	"github.com/calcforge/calc-repl/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalcServer{}

// CalcServer exposes the calculation factory and session history as an
// MCP server over stdio.
type CalcServer struct {
	mcpServer *server.MCPServer
	factory   *calculation.Factory
	history   *repl.History
	config    *types.Config
}

// NewCalcServer creates a new calc MCP server
func NewCalcServer(config *types.Config) *CalcServer {
	return &CalcServer{
		mcpServer: server.NewMCPServer(project.Name, project.Version),
		factory:   calculation.NewDefaultFactory(),
		history:   repl.NewHistory(),
		config:    config,
	}
}

// Serve registers the tools and serves MCP over stdio until the client
// disconnects
func (s *CalcServer) Serve(ctx context.Context) error {
	log.Printf("Starting calc MCP server with config: %+v", s.config)

	s.registerTools()

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *CalcServer) registerTools() {
	calculateTool := tools.NewCalculateTool(s.factory, s.history)
	s.mcpServer.AddTool(calculateTool.GetTool(), calculateTool.Handle)

	listOperationsTool := tools.NewListOperationsTool(s.factory)
	s.mcpServer.AddTool(listOperationsTool.GetTool(), listOperationsTool.Handle)

	historyTool := tools.NewHistoryTool(s.history)
	s.mcpServer.AddTool(historyTool.GetTool(), historyTool.Handle)
}
