// ABOUTME: Tests for data model constructors and helpers.
// ABOUTME: Covers habit identity, progress clamping, and JSON field omission.
package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewHabitGeneratesIdentity(t *testing.T) {
	a := NewHabit("Run", "morning loop", 10)
	b := NewHabit("Run", "morning loop", 10)

	if a.Identity() == "" {
		t.Fatal("expected a non-empty identity")
	}
	if a.Identity() == b.Identity() {
		t.Error("expected distinct identities for distinct habits")
	}
	if a.Progress != 0 {
		t.Errorf("expected zero initial progress, got %d", a.Progress)
	}
}

func TestClampProgress(t *testing.T) {
	if got := ClampProgress(-3, 10); got != 0 {
		t.Errorf("ClampProgress(-3, 10) = %d, want 0", got)
	}
	if got := ClampProgress(15, 10); got != 10 {
		t.Errorf("ClampProgress(15, 10) = %d, want 10", got)
	}
	if got := ClampProgress(7, 10); got != 7 {
		t.Errorf("ClampProgress(7, 10) = %d, want 7", got)
	}
	if got := ClampProgress(0, 0); got != 0 {
		t.Errorf("ClampProgress(0, 0) = %d, want 0", got)
	}
}

func TestMoodEntryOmitsAbsentPhoto(t *testing.T) {
	entry := NewMoodEntry("Happy", "ok", nil)

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if strings.Contains(string(data), "photo") {
		t.Errorf("expected absent photo to be omitted, got %s", data)
	}

	withPhoto := NewMoodEntry("Happy", "ok", []byte{1, 2, 3})
	data, err = json.Marshal(withPhoto)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if !strings.Contains(string(data), "photo") {
		t.Errorf("expected photo field when set, got %s", data)
	}
}

func TestHabitOmitsEmptyIconRef(t *testing.T) {
	h := NewHabit("Run", "", 10)

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if strings.Contains(string(data), "icon_ref") {
		t.Errorf("expected empty icon_ref to be omitted, got %s", data)
	}
}
