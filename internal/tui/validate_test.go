// ABOUTME: Tests for the habit form input parsers.
// ABOUTME: Covers goal bounds and numeric parsing edge cases.
package tui

import "testing"

func TestParseGoal(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"10", 10, false},
		{" 7 ", 7, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"ten", 0, true},
		{"", 0, true},
		{"3.5", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseGoal(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseGoal(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseGoal(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGoal(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseCount(t *testing.T) {
	if got, err := ParseCount("-5"); err != nil || got != -5 {
		t.Errorf("ParseCount(-5) = %d, %v; negative values parse and clamp later", got, err)
	}
	if _, err := ParseCount("many"); err == nil {
		t.Error("ParseCount(many): expected error")
	}
}
