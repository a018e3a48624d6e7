// ABOUTME: MCP server exposing the habit repository to AI assistants.
// ABOUTME: Stdio transport, tools and resources registered at startup.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/habits/internal/storage"
)

// Server exposes habit tracking over the Model Context Protocol.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
}

// NewServer builds a server backed by the given repository, with all
// tools and resources registered.
func NewServer(repo storage.Repository) *Server {
	s := &Server{
		mcpServer: mcp.NewServer(&mcp.Implementation{Name: "habits", Version: "1.0.0"}, nil),
		repo:      repo,
	}
	s.registerTools()
	s.registerResources()
	return s
}

// Serve runs the server over stdio until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
