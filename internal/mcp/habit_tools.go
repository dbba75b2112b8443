// ABOUTME: MCP tool implementations for habit tracking operations.
// ABOUTME: Registers add_habit, list_habits, set_habit_progress, delete_habit.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/developer-ongar/daytrack/internal/models"
)

func (s *Server) registerHabitTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "add_habit",
		Description: "Create a habit with a goal to track progress against.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Short habit name, e.g. Run"},
				"description": {"type": "string", "description": "Optional longer description"},
				"goal": {"type": "number", "description": "Target count, an integer >= 1"}
			},
			"required": ["title", "goal"]
		}`),
	}, s.handleAddHabit)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "list_habits",
		Description: "List habits with their progress, in the order they were created.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {}
		}`),
	}, s.handleListHabits)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "set_habit_progress",
		Description: "Set a habit's progress by id. Values outside [0, goal] are clamped. Unknown ids are reported but are not an error.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Habit id from list_habits"},
				"progress": {"type": "number", "description": "New progress count"}
			},
			"required": ["id", "progress"]
		}`),
	}, s.handleSetHabitProgress)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "delete_habit",
		Description: "Delete a habit by id. Deleting an unknown id is a no-op.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Habit id from list_habits"}
			},
			"required": ["id"]
		}`),
	}, s.handleDeleteHabit)
}

func (s *Server) handleAddHabit(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Goal        int    `json:"goal"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if strings.TrimSpace(args.Title) == "" {
		return toolError("title is required"), nil
	}
	if args.Goal < 1 {
		return toolError("goal must be an integer >= 1"), nil
	}

	habit := models.NewHabit(strings.TrimSpace(args.Title), strings.TrimSpace(args.Description), args.Goal)
	s.habits.Add(habit)

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{
			Text: fmt.Sprintf("Habit created: %s (ID: %s)", habit.Title, habit.ID),
		}},
	}, nil
}

func (s *Server) handleListHabits(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	habits := s.habits.List()
	if len(habits) == 0 {
		return &gomcp.CallToolResult{
			Content: []gomcp.Content{&gomcp.TextContent{Text: "No habits found."}},
		}, nil
	}

	var sb strings.Builder
	for i, h := range habits {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s: %s [%d/%d]", h.ID, h.Title, h.Progress, h.Goal))
		if h.Description != "" {
			sb.WriteString(" - " + h.Description)
		}
		if h.IconRef != "" {
			icon := "missing"
			if s.icons != nil {
				if _, ok := s.icons.Read(h.IconRef); ok {
					icon = "present"
				}
			}
			sb.WriteString(fmt.Sprintf(" (icon %s)", icon))
		}
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: sb.String()}},
	}, nil
}

func (s *Server) handleSetHabitProgress(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		ID       string `json:"id"`
		Progress int    `json:"progress"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.ID == "" {
		return toolError("id is required"), nil
	}

	habit, ok := s.habits.Get(args.ID)
	if !ok {
		// Unknown ids are informational, matching the store's no-op policy.
		return &gomcp.CallToolResult{
			Content: []gomcp.Content{&gomcp.TextContent{
				Text: fmt.Sprintf("No habit with id %s; nothing changed.", args.ID),
			}},
		}, nil
	}

	habit.Progress = models.ClampProgress(args.Progress, habit.Goal)
	s.habits.Update(habit)

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{
			Text: fmt.Sprintf("Progress for %s set to %d/%d", habit.Title, habit.Progress, habit.Goal),
		}},
	}, nil
}

func (s *Server) handleDeleteHabit(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.ID == "" {
		return toolError("id is required"), nil
	}

	if s.habits.DeleteID(args.ID) {
		return &gomcp.CallToolResult{
			Content: []gomcp.Content{&gomcp.TextContent{Text: "Habit deleted."}},
		}, nil
	}
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{
			Text: fmt.Sprintf("No habit with id %s; nothing changed.", args.ID),
		}},
	}, nil
}
