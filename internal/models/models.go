// ABOUTME: Core data models for mood entries and habits.
// ABOUTME: Provides constructor functions and the identity contract for keyed records.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MoodEntry represents one journaled mood. Entries are append-only: they
// carry no identity field and are never edited or deleted individually.
type MoodEntry struct {
	Mood      string    `json:"mood"`
	Comment   string    `json:"comment,omitempty"`
	Photo     []byte    `json:"photo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMoodEntry creates a mood entry stamped with the current time.
func NewMoodEntry(mood, comment string, photo []byte) MoodEntry {
	return MoodEntry{
		Mood:      mood,
		Comment:   comment,
		Photo:     photo,
		CreatedAt: time.Now(),
	}
}

// Habit represents a tracked habit with a progress counter.
// Icons live in the blob store; IconRef names the stored blob and may be
// empty when no icon was set.
type Habit struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Goal        int       `json:"goal"`
	Progress    int       `json:"progress"`
	IconRef     string    `json:"icon_ref,omitempty"`
}

// NewHabit creates a habit with a generated UUID and zero progress.
func NewHabit(title, description string, goal int) Habit {
	return Habit{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Goal:        goal,
	}
}

// Identity returns the habit's stable identifier for update/delete matching.
func (h Habit) Identity() string {
	return h.ID.String()
}

// ClampProgress bounds a progress value to [0, goal]. The stores accept
// records as given; editing surfaces clamp before writing.
func ClampProgress(progress, goal int) int {
	if progress < 0 {
		return 0
	}
	if progress > goal {
		return goal
	}
	return progress
}
