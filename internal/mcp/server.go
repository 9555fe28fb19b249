// ABOUTME: MCP server for didi integration with AI agents.
// ABOUTME: Provides tools, resources, and prompts for diary entries.

package mcp

import (
	"context"
	"database/sql"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

type Server struct {
	server *mcp.Server
	db     *sql.DB
	logger *zap.Logger
}

func NewServer(db *sql.DB, logger *zap.Logger, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{db: db, logger: logger}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "didi",
			Version: version,
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	s.logger.Debug("serving MCP on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
