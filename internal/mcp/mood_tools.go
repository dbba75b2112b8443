// ABOUTME: MCP tool implementations for mood journal operations.
// ABOUTME: Registers add_mood and list_moods.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/developer-ongar/daytrack/internal/models"
)

func (s *Server) registerMoodTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "add_mood",
		Description: "Record a mood in the journal. Entries are append-only and cannot be edited or removed afterwards.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"mood": {"type": "string", "description": "The mood being recorded, e.g. Happy, Tired, Focused"},
				"comment": {"type": "string", "description": "Optional free-text note about the mood"}
			},
			"required": ["mood"]
		}`),
	}, s.handleAddMood)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "list_moods",
		Description: "List recorded moods in the order they were added, optionally filtered by substring.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"search": {"type": "string", "description": "Substring to match against mood or comment"},
				"limit": {"type": "number", "description": "Maximum number of entries, newest kept (default: all)"}
			}
		}`),
	}, s.handleListMoods)
}

func (s *Server) handleAddMood(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Mood    string `json:"mood"`
		Comment string `json:"comment"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if strings.TrimSpace(args.Mood) == "" {
		return toolError("mood is required"), nil
	}

	entry := models.NewMoodEntry(strings.TrimSpace(args.Mood), strings.TrimSpace(args.Comment), nil)
	s.moods.Add(entry)

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{
			Text: fmt.Sprintf("Mood recorded: %s (%d entries total)", entry.Mood, s.moods.Len()),
		}},
	}, nil
}

func (s *Server) handleListMoods(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Search string `json:"search"`
		Limit  int    `json:"limit"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	entries := s.moods.List()

	if args.Search != "" {
		query := strings.ToLower(args.Search)
		var filtered []models.MoodEntry
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.Mood), query) ||
				strings.Contains(strings.ToLower(e.Comment), query) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if args.Limit > 0 && len(entries) > args.Limit {
		entries = entries[len(entries)-args.Limit:]
	}

	if len(entries) == 0 {
		return &gomcp.CallToolResult{
			Content: []gomcp.Content{&gomcp.TextContent{Text: "No mood entries found."}},
		}, nil
	}

	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("[%s] %s", e.CreatedAt.Format("2006-01-02 15:04"), e.Mood))
		if e.Comment != "" {
			sb.WriteString(" - " + e.Comment)
		}
		if len(e.Photo) > 0 {
			sb.WriteString(" (photo attached)")
		}
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: sb.String()}},
	}, nil
}

// toolError creates an error result for MCP tool responses.
func toolError(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}
