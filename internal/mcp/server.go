// ABOUTME: MCP server setup for the fitness data store.
// ABOUTME: Wraps the MCP server with a storage backend connection.
package mcp

import (
	"context"

	"github.com/harperreed/fittrack/internal/storage"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access. Every tool call loads the
// store from the backend and writes it back on mutation, so concurrent CLI
// edits are picked up between calls.
type Server struct {
	mcpServer *mcp.Server
	backend   storage.Backend
}

// NewServer creates a new MCP server over the given backend.
func NewServer(backend storage.Backend) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fittrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		backend:   backend,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) load() (*store.Store, error) {
	return store.Load(s.backend)
}
