// ABOUTME: Input validation helpers for the habit edit form.
// ABOUTME: Parses goal and progress values entered as text.
package tui

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseGoal parses a goal value. Goals must be integers >= 1.
func ParseGoal(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("goal must be a whole number")
	}
	if n < 1 {
		return 0, fmt.Errorf("goal must be at least 1")
	}
	return n, nil
}

// ParseCount parses a progress value. Any integer is accepted here;
// clamping against the goal happens when the form commits.
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("progress must be a whole number")
	}
	return n, nil
}
