// ABOUTME: Root Cobra command and global flags for the daytrack CLI.
// ABOUTME: Sets up lifecycle hooks for config loading and store initialization.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/developer-ongar/daytrack/internal/config"
	"github.com/developer-ongar/daytrack/internal/kv"
	"github.com/developer-ongar/daytrack/internal/models"
	"github.com/developer-ongar/daytrack/internal/store"
)

var globalConfig *config.Config
var globalMoodStore *store.RecordStore[models.MoodEntry]
var globalHabitStore *store.KeyedStore[models.Habit]
var globalIconStore *store.BlobStore

var rootCmd = &cobra.Command{
	Use:   "daytrack",
	Short: "Mood journal + habit tracker",
	Long: `Track moods and habits from the command line.

Everything lives in local files under your data directory. Mood entries
are an append-only journal; habits carry a goal and a progress counter
and can be edited or deleted. No accounts, no network.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		globalConfig = cfg

		recordsPath, err := cfg.GetRecordsPath()
		if err != nil {
			return fmt.Errorf("failed to resolve records path: %w", err)
		}
		slots := kv.NewFileKV(recordsPath)
		globalMoodStore = store.New[models.MoodEntry](slots, "MoodEntries")
		globalHabitStore = store.NewKeyed[models.Habit](slots, "Habits")

		iconsPath, err := cfg.GetIconsPath()
		if err != nil {
			return fmt.Errorf("failed to resolve icons path: %w", err)
		}
		globalIconStore = store.NewBlobStore(iconsPath)

		return nil
	},
}
