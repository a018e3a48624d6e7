// ABOUTME: Root Cobra command for habits CLI.
// ABOUTME: Opens the storage repository via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/config"
	"github.com/harperreed/habits/internal/storage"
)

var (
	store      storage.Repository
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "habits",
	Short: "Habit progress tracker",
	Long: `Habits is a CLI tool for tracking periodic habits and analyzing streaks.

HABITS:

  A habit is a recurring task with a period (daily, weekly, monthly, or any
  number of days), a goal per period, and an optional unit of progress.
  A habit without a unit is a simple check-off task.

QUICK START:

  $ habits samples                          # Try it with predefined habits
  $ habits create reading "read a chapter"  # Daily check-off habit
  $ habits create sports "90 minutes of sports" -p week -g 90 -u minutes
  $ habits progress reading                 # Check off today's task
  $ habits progress sports -a 30            # Add 30 minutes
  $ habits list                             # Habits with progress and streaks

TIMED SESSIONS:

  Habits measured in minutes can be timed instead of logged manually.

  $ habits progress sports --start    # Start counting
  $ habits progress sports --end      # Log the elapsed minutes

ANALYTICS:

  $ habits analyze current-streak sports
  $ habits analyze past-streaks sports
  $ habits analyze max-streak
  $ habits analyze completion-rate --last-month

MCP INTEGRATION:

  Run 'habits mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "habits": { "command": "habits", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Habits are stored in SQLite at ~/.local/share/habits/habits.db.
  Set data_dir in ~/.config/habits/config.json to move it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage for commands that don't touch data. config must
		// work even while the configured data dir is broken.
		switch cmd.Name() {
		case "version", "help", "install-skill", "config", "set-data-dir":
			return nil
		}
		if store != nil {
			// already provided (tests)
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		store, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			err := store.Close()
			store = nil
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "return result as json")
}
