// ABOUTME: MCP prompts for common journaling workflows.
// ABOUTME: Provides pre-configured prompts for AI agent interactions.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "daily-journal",
		Description: "Write today's diary entry with prompts for reflection",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "date",
				Description: "Date for the entry (YYYY-MM-DD)",
				Required:    false,
			},
		},
	}, s.getDailyJournalPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "weekly-review",
		Description: "Review recent entries and summarize the week",
	}, s.getWeeklyReviewPrompt)
}

func (s *Server) getDailyJournalPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	date, ok := req.Params.Arguments["date"]
	if !ok || date == "" {
		date = "today"
	}

	template := fmt.Sprintf(`Help me write a diary entry for %s.

Ask me about:

- What happened today?
- What went well, and what was difficult?
- What am I grateful for?
- What do I want to remember from today?

Then use the add_entry tool with a short title, the entry text as content,
and a few lowercase keywords (for example "work", "family", "health").`, date)

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}

func (s *Server) getWeeklyReviewPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	template := `Help me review my week:

1. Use the list_entries tool to read my diary entries
2. Focus on the entries dated within the last seven days
3. Summarize recurring themes, moods, and events
4. Point out keywords I use often and entries that could use better keywords
5. Suggest one or two things to pay attention to next week

Do not hide or add entries unless I ask you to.`

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}
