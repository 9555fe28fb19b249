// ABOUTME: MCP tools for diary entry operations.
// ABOUTME: Maps CLI functionality to the MCP tool interface.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/harper/didi/internal/db"
	"github.com/harper/didi/internal/export"
	"github.com/harper/didi/internal/models"
	"github.com/harper/didi/internal/ui"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

func (s *Server) registerTools() {
	// add_entry
	s.server.AddTool(&mcp.Tool{
		Name:        "add_entry",
		Description: "Add a new diary entry",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Entry title"},
				"content": {"type": "string", "description": "Entry content"},
				"keywords": {"type": "array", "items": {"type": "string"}, "description": "Keywords for searching"}
			},
			"required": ["title", "content"]
		}`),
	}, s.handleAddEntry)

	// list_entries
	s.server.AddTool(&mcp.Tool{
		Name:        "list_entries",
		Description: "List diary entries in the order they were written",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"include_hidden": {"type": "boolean", "description": "Include hidden entries", "default": false}
			}
		}`),
	}, s.handleListEntries)

	// search_entries
	s.server.AddTool(&mcp.Tool{
		Name:        "search_entries",
		Description: "Find entries whose title contains a term or whose keywords include a term",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"terms": {"type": "array", "items": {"type": "string"}, "description": "Search terms"},
				"include_hidden": {"type": "boolean", "description": "Include hidden entries", "default": false}
			},
			"required": ["terms"]
		}`),
	}, s.handleSearchEntries)

	// get_entry
	s.server.AddTool(&mcp.Tool{
		Name:        "get_entry",
		Description: "Get a diary entry by ID",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "integer", "description": "Entry ID"}
			},
			"required": ["id"]
		}`),
	}, s.handleGetEntry)

	// hide_entries
	s.server.AddTool(&mcp.Tool{
		Name:        "hide_entries",
		Description: "Hide entries from default listings",
		InputSchema: idsSchema,
	}, s.handleHideEntries)

	// unhide_entries
	s.server.AddTool(&mcp.Tool{
		Name:        "unhide_entries",
		Description: "Make hidden entries visible again",
		InputSchema: idsSchema,
	}, s.handleUnhideEntries)
}

var idsSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"ids": {"type": "array", "items": {"type": "integer", "minimum": 1}, "description": "Entry IDs"}
	},
	"required": ["ids"]
}`)

// Tool handlers.
func (s *Server) handleAddEntry(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Title    string   `json:"title"`
		Content  string   `json:"content"`
		Keywords []string `json:"keywords"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(params.Title)
	if title == "" {
		return errorResult("entry title cannot be empty"), nil
	}

	entry, err := db.AddEntry(s.db, params.Keywords, title, strings.TrimSpace(params.Content))
	if err != nil {
		s.logger.Error("add entry failed", zap.Error(err))
		return errorResult(fmt.Sprintf("failed to add entry: %v", err)), nil
	}

	return textResult(fmt.Sprintf("Added entry %d", entry.ID)), nil
}

func (s *Server) handleListEntries(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		IncludeHidden bool `json:"include_hidden"`
	}
	if err := unmarshalOptional(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	entries, err := db.ListEntries(s.db)
	if err != nil {
		return errorResult(fmt.Sprintf("failed to list entries: %v", err)), nil
	}

	return entriesResult(ui.FilterVisible(entries, params.IncludeHidden))
}

func (s *Server) handleSearchEntries(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Terms         []string `json:"terms"`
		IncludeHidden bool     `json:"include_hidden"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}
	if len(params.Terms) == 0 {
		return errorResult("at least one search term is required"), nil
	}

	entries, err := db.SearchEntries(s.db, params.Terms)
	if err != nil {
		return errorResult(fmt.Sprintf("search failed: %v", err)), nil
	}

	return entriesResult(ui.FilterVisible(entries, params.IncludeHidden))
}

func (s *Server) handleGetEntry(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	entry, err := db.GetEntryByID(s.db, params.ID)
	if err != nil {
		return errorResult(fmt.Sprintf("failed to get entry: %v", err)), nil
	}

	data, _ := json.MarshalIndent(export.FromEntry(entry), "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleHideEntries(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.setHidden(req, true)
}

func (s *Server) handleUnhideEntries(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.setHidden(req, false)
}

func (s *Server) setHidden(req *mcp.CallToolRequest, hidden bool) (*mcp.CallToolResult, error) {
	var params struct {
		IDs []int64 `json:"ids"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	ids, err := normalizeIDs(params.IDs)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	n, err := db.SetHidden(s.db, ids, hidden)
	if err != nil {
		s.logger.Error("set hidden failed", zap.Error(err), zap.Int64s("ids", ids))
		return errorResult(fmt.Sprintf("failed to update entries: %v", err)), nil
	}

	return textResult(changedText(n)), nil
}

// changedText is ui.FormatChanged without terminal styling.
func changedText(n int64) string {
	if n == 1 {
		return "Changed 1 entry."
	}
	return fmt.Sprintf("Changed %d entries.", n)
}

// normalizeIDs rejects non-positive ids and returns the rest sorted and
// deduplicated.
func normalizeIDs(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one id is required")
	}

	out := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("invalid id %d: ids must be positive", id)
		}
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func entriesResult(entries []*models.Entry) (*mcp.CallToolResult, error) {
	out := make([]export.ExportEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, export.FromEntry(e))
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return textResult(string(data)), nil
}

func unmarshalOptional(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, v)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
		IsError: true,
	}
}
