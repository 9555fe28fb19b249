// ABOUTME: MCP resources exposing diary entries as readable documents.
// ABOUTME: Allows AI agents to read an entry via the diary://entry/{id} URI.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/didi/internal/db"
	"github.com/harper/didi/internal/models"
	"github.com/harper/didi/internal/ui"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: "diary://entry/{id}",
			Name:        "Entry",
			Description: "Access individual diary entries by ID",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var id int64
	if _, err := fmt.Sscanf(req.Params.URI, "diary://entry/%d", &id); err != nil {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	entry, err := db.GetEntryByID(s.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     entryMarkdown(entry),
			},
		},
	}, nil
}

func entryMarkdown(e *models.Entry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", e.Title))
	sb.WriteString(fmt.Sprintf("**Date:** %s\n\n", ui.FormatDate(e.Date)))
	if len(e.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf("**Keywords:** %s\n\n", strings.Join(e.Keywords, ", ")))
	}
	if e.Hidden {
		sb.WriteString("_This entry is hidden._\n\n")
	}
	sb.WriteString(e.Content)
	return sb.String()
}
