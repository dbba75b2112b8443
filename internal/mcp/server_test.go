// ABOUTME: Tests for MCP server construction and shared tool-test helpers.
// ABOUTME: Builds servers over in-memory stores and calls handlers directly.
package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"strings"
	"testing"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/developer-ongar/daytrack/internal/kv"
	"github.com/developer-ongar/daytrack/internal/models"
	"github.com/developer-ongar/daytrack/internal/store"
)

func makeServer(t *testing.T) *Server {
	t.Helper()
	quiet := store.WithLogger(log.New(io.Discard, "", 0))
	moods := store.New[models.MoodEntry](kv.NewMemKV(), "MoodEntries", quiet)
	habits := store.NewKeyed[models.Habit](kv.NewMemKV(), "Habits", quiet)
	icons := store.NewBlobStore(t.TempDir())

	server, err := NewServer(moods, habits, WithIconStore(icons))
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	return server
}

func callTool(t *testing.T, s *Server, name string, args interface{}) *gomcp.CallToolResult {
	t.Helper()
	argsJSON, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("failed to marshal args: %v", err)
	}

	req := &gomcp.CallToolRequest{
		Params: &gomcp.CallToolParamsRaw{
			Name:      name,
			Arguments: argsJSON,
		},
	}

	ctx := context.Background()
	var result *gomcp.CallToolResult

	switch name {
	case "add_mood":
		result, err = s.handleAddMood(ctx, req)
	case "list_moods":
		result, err = s.handleListMoods(ctx, req)
	case "add_habit":
		result, err = s.handleAddHabit(ctx, req)
	case "list_habits":
		result, err = s.handleListHabits(ctx, req)
	case "set_habit_progress":
		result, err = s.handleSetHabitProgress(ctx, req)
	case "delete_habit":
		result, err = s.handleDeleteHabit(ctx, req)
	default:
		t.Fatalf("unknown tool %q", name)
	}
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return result
}

func resultText(t *testing.T, result *gomcp.CallToolResult) string {
	t.Helper()
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*gomcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func TestNewServerRequiresStores(t *testing.T) {
	quiet := store.WithLogger(log.New(io.Discard, "", 0))
	moods := store.New[models.MoodEntry](kv.NewMemKV(), "MoodEntries", quiet)
	habits := store.NewKeyed[models.Habit](kv.NewMemKV(), "Habits", quiet)

	if _, err := NewServer(nil, habits); err == nil {
		t.Error("expected error for nil mood store")
	}
	if _, err := NewServer(moods, nil); err == nil {
		t.Error("expected error for nil habit store")
	}
	if _, err := NewServer(moods, habits); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
