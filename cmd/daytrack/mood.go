// ABOUTME: CLI commands for mood journal operations.
// ABOUTME: Provides add and list subcommands for mood entries.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/developer-ongar/daytrack/internal/models"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Manage mood entries",
	Long:  "Record and list mood journal entries. Entries are append-only.",
}

var moodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a mood",
	Long:  "Append a mood entry with an optional comment and photo.",
	RunE:  runMoodAdd,
}

var moodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mood entries",
	Long:  "List mood entries in the order they were recorded.",
	RunE:  runMoodList,
}

// Flags
var (
	moodName      string
	moodComment   string
	moodPhotoPath string
	moodLimit     int
	moodSearch    string
)

var moodStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
var moodDateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func init() {
	rootCmd.AddCommand(moodCmd)
	moodCmd.AddCommand(moodAddCmd)
	moodCmd.AddCommand(moodListCmd)

	moodAddCmd.Flags().StringVar(&moodName, "mood", "", "Mood to record (required)")
	moodAddCmd.Flags().StringVar(&moodComment, "comment", "", "Optional comment")
	moodAddCmd.Flags().StringVar(&moodPhotoPath, "photo", "", "Path to a photo to embed")
	_ = moodAddCmd.MarkFlagRequired("mood")

	moodListCmd.Flags().IntVar(&moodLimit, "limit", 0, "Maximum number of entries to show, newest kept (0 = all)")
	moodListCmd.Flags().StringVar(&moodSearch, "search", "", "Substring filter on mood or comment")
}

func runMoodAdd(cmd *cobra.Command, args []string) error {
	var photo []byte
	if moodPhotoPath != "" {
		data, err := os.ReadFile(moodPhotoPath)
		if err != nil {
			return fmt.Errorf("failed to read photo: %w", err)
		}
		photo = data
	}

	entry := models.NewMoodEntry(strings.TrimSpace(moodName), strings.TrimSpace(moodComment), photo)
	globalMoodStore.Add(entry)

	fmt.Printf("Mood recorded: %s\n", entry.Mood)
	return nil
}

func runMoodList(cmd *cobra.Command, args []string) error {
	entries := globalMoodStore.List()

	if moodSearch != "" {
		query := strings.ToLower(moodSearch)
		var filtered []models.MoodEntry
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.Mood), query) ||
				strings.Contains(strings.ToLower(e.Comment), query) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if moodLimit > 0 && len(entries) > moodLimit {
		entries = entries[len(entries)-moodLimit:]
	}

	if len(entries) == 0 {
		fmt.Println("No mood entries found.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s %s", moodDateStyle.Render(e.CreatedAt.Format("2006-01-02 15:04")), moodStyle.Render(e.Mood))
		if e.Comment != "" {
			fmt.Printf("  %s", e.Comment)
		}
		if len(e.Photo) > 0 {
			fmt.Printf("  (photo, %d bytes)", len(e.Photo))
		}
		fmt.Println()
	}
	return nil
}
