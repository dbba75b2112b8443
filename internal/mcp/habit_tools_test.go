// ABOUTME: Tests for habit MCP tool handlers.
// ABOUTME: Covers add, list, progress clamping, and no-op deletes of unknown ids.
package mcp

import (
	"strings"
	"testing"
)

func TestAddHabitAndList(t *testing.T) {
	s := makeServer(t)

	result := callTool(t, s, "add_habit", map[string]interface{}{
		"title": "Run",
		"goal":  10,
	})
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	result = callTool(t, s, "list_habits", map[string]interface{}{})
	text := resultText(t, result)
	if !strings.Contains(text, "Run") || !strings.Contains(text, "[0/10]") {
		t.Errorf("expected habit with zero progress, got %q", text)
	}
}

func TestAddHabitValidation(t *testing.T) {
	s := makeServer(t)

	result := callTool(t, s, "add_habit", map[string]interface{}{"goal": 10})
	if !result.IsError {
		t.Error("expected tool error for missing title")
	}

	result = callTool(t, s, "add_habit", map[string]interface{}{"title": "Run", "goal": 0})
	if !result.IsError {
		t.Error("expected tool error for goal below 1")
	}
}

func TestSetHabitProgressClamps(t *testing.T) {
	s := makeServer(t)

	callTool(t, s, "add_habit", map[string]interface{}{"title": "Run", "goal": 10})
	habits := s.habits.List()
	if len(habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(habits))
	}
	id := habits[0].Identity()

	result := callTool(t, s, "set_habit_progress", map[string]interface{}{
		"id":       id,
		"progress": 25,
	})
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}
	if !strings.Contains(resultText(t, result), "10/10") {
		t.Errorf("expected clamped progress 10/10, got %q", resultText(t, result))
	}

	got, _ := s.habits.Get(id)
	if got.Progress != 10 {
		t.Errorf("expected stored progress 10, got %d", got.Progress)
	}
}

func TestSetHabitProgressUnknownIDIsInformational(t *testing.T) {
	s := makeServer(t)

	result := callTool(t, s, "set_habit_progress", map[string]interface{}{
		"id":       "b2c3d4e5-0000-0000-0000-000000000000",
		"progress": 5,
	})
	if result.IsError {
		t.Error("expected unknown id to be informational, not a tool error")
	}
	if !strings.Contains(resultText(t, result), "nothing changed") {
		t.Errorf("expected no-op message, got %q", resultText(t, result))
	}
}

func TestDeleteHabit(t *testing.T) {
	s := makeServer(t)

	callTool(t, s, "add_habit", map[string]interface{}{"title": "Run", "goal": 10})
	id := s.habits.List()[0].Identity()

	result := callTool(t, s, "delete_habit", map[string]interface{}{"id": id})
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}
	if s.habits.Len() != 0 {
		t.Error("expected habit removed")
	}

	// Deleting again is a no-op, not an error.
	result = callTool(t, s, "delete_habit", map[string]interface{}{"id": id})
	if result.IsError {
		t.Error("expected repeat delete to be informational")
	}
}

func TestSetHabitProgressScenario(t *testing.T) {
	s := makeServer(t)

	callTool(t, s, "add_habit", map[string]interface{}{"title": "Run", "goal": 10})
	id := s.habits.List()[0].Identity()

	callTool(t, s, "set_habit_progress", map[string]interface{}{"id": id, "progress": 5})

	habits := s.habits.List()
	if len(habits) != 1 || habits[0].Progress != 5 {
		t.Fatalf("expected progress 5 at position 0, got %+v", habits)
	}
}
