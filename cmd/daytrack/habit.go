// ABOUTME: CLI commands for habit tracking operations.
// ABOUTME: Provides add, list, set, edit, and delete subcommands for habits.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/developer-ongar/daytrack/internal/models"
	"github.com/developer-ongar/daytrack/internal/tui"
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage habits",
	Long:  "Create, list, update, and delete tracked habits.",
}

var habitAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a habit",
	Long:  "Create a habit with a goal and an optional icon image.",
	RunE:  runHabitAdd,
}

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits",
	Long:  "List habits with their progress, in creation order.",
	RunE:  runHabitList,
}

var habitSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Set a habit's progress",
	Long:  "Set the progress counter of a habit. Values outside [0, goal] are clamped.",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitSet,
}

var habitEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a habit interactively",
	Long:  "Open an interactive form to edit a habit's title, description, goal, and progress.",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitEdit,
}

var habitDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a habit",
	Long:  "Delete a habit by id. Deleting an unknown id is a no-op.",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitDelete,
}

// Flags
var (
	habitTitle       string
	habitDescription string
	habitGoal        int
	habitIconPath    string
	habitProgress    int
)

var habitTitleStyle = lipgloss.NewStyle().Bold(true)
var habitIDStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
var habitBarDoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
var habitBarRestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

func init() {
	rootCmd.AddCommand(habitCmd)
	habitCmd.AddCommand(habitAddCmd)
	habitCmd.AddCommand(habitListCmd)
	habitCmd.AddCommand(habitSetCmd)
	habitCmd.AddCommand(habitEditCmd)
	habitCmd.AddCommand(habitDeleteCmd)

	habitAddCmd.Flags().StringVar(&habitTitle, "title", "", "Habit title (required)")
	habitAddCmd.Flags().StringVar(&habitDescription, "description", "", "Optional description")
	habitAddCmd.Flags().IntVar(&habitGoal, "goal", 0, "Target count, an integer >= 1 (required)")
	habitAddCmd.Flags().StringVar(&habitIconPath, "icon", "", "Path to an icon image")
	_ = habitAddCmd.MarkFlagRequired("title")
	_ = habitAddCmd.MarkFlagRequired("goal")

	habitSetCmd.Flags().IntVar(&habitProgress, "progress", 0, "New progress count (required)")
	_ = habitSetCmd.MarkFlagRequired("progress")
}

func runHabitAdd(cmd *cobra.Command, args []string) error {
	if habitGoal < 1 {
		return fmt.Errorf("goal must be an integer >= 1")
	}

	habit := models.NewHabit(strings.TrimSpace(habitTitle), strings.TrimSpace(habitDescription), habitGoal)

	if habitIconPath != "" {
		data, err := os.ReadFile(habitIconPath)
		if err != nil {
			return fmt.Errorf("failed to read icon: %w", err)
		}
		ref, err := globalIconStore.Write(habit.Identity(), data)
		if err != nil {
			// The habit is still created; only the icon reference is dropped.
			fmt.Fprintf(os.Stderr, "Warning: icon not saved: %v\n", err)
		} else {
			habit.IconRef = ref
		}
	}

	globalHabitStore.Add(habit)

	fmt.Printf("Habit created: %s (ID: %s)\n", habit.Title, habit.ID)
	return nil
}

func runHabitList(cmd *cobra.Command, args []string) error {
	habits := globalHabitStore.List()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, h := range habits {
		fmt.Printf("%s  %s %s [%d/%d]",
			habitIDStyle.Render(h.ID.String()[:8]),
			habitTitleStyle.Render(h.Title),
			progressBar(h.Progress, h.Goal),
			h.Progress, h.Goal)
		if h.Description != "" {
			fmt.Printf("  %s", h.Description)
		}
		if h.IconRef != "" {
			if _, ok := globalIconStore.Read(h.IconRef); ok {
				fmt.Print("  [icon]")
			} else {
				// Missing blobs resolve to a placeholder, never an error.
				fmt.Print("  [no icon]")
			}
		}
		fmt.Println()
	}
	return nil
}

func runHabitSet(cmd *cobra.Command, args []string) error {
	habit, ok := findHabit(args[0])
	if !ok {
		fmt.Printf("No habit with id %s; nothing changed.\n", args[0])
		return nil
	}

	habit.Progress = models.ClampProgress(habitProgress, habit.Goal)
	globalHabitStore.Update(habit)

	fmt.Printf("Progress for %s set to %d/%d\n", habit.Title, habit.Progress, habit.Goal)
	return nil
}

func runHabitEdit(cmd *cobra.Command, args []string) error {
	habit, ok := findHabit(args[0])
	if !ok {
		fmt.Printf("No habit with id %s.\n", args[0])
		return nil
	}

	p := tea.NewProgram(tui.NewEditorModel(habit))
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tui.EditorModel)
	if !final.ShouldSave() {
		fmt.Println("Edit cancelled.")
		return nil
	}

	globalHabitStore.Update(final.Result())
	fmt.Println("Habit updated.")
	return nil
}

func runHabitDelete(cmd *cobra.Command, args []string) error {
	habit, ok := findHabit(args[0])
	if !ok {
		fmt.Printf("No habit with id %s; nothing changed.\n", args[0])
		return nil
	}

	globalHabitStore.Delete(habit)
	fmt.Printf("Habit deleted: %s\n", habit.Title)
	return nil
}

// findHabit resolves a full or 8-character short id to a habit.
func findHabit(id string) (models.Habit, bool) {
	if habit, ok := globalHabitStore.Get(id); ok {
		return habit, true
	}
	for _, h := range globalHabitStore.List() {
		if strings.HasPrefix(h.ID.String(), id) {
			return h, true
		}
	}
	return models.Habit{}, false
}

// progressBar renders a fixed-width progress bar.
func progressBar(progress, goal int) string {
	const width = 10
	if goal < 1 {
		goal = 1
	}
	done := progress * width / goal
	if done > width {
		done = width
	}
	if done < 0 {
		done = 0
	}
	return habitBarDoneStyle.Render(strings.Repeat("█", done)) +
		habitBarRestStyle.Render(strings.Repeat("░", width-done))
}
