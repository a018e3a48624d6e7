// ABOUTME: CLI command for viewing and changing configuration.
// ABOUTME: Currently a single setting: the data directory.
package main

import (
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long: `Show the configuration and where data is stored.

Settings live in ~/.config/habits/config.json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return printRows(
			[]string{"setting", "value"},
			[][]string{
				{"config file", config.GetConfigPath()},
				{"data directory", cfg.GetDataDir()},
			},
		)
	},
}

var configSetDataDirCmd = &cobra.Command{
	Use:   "set-data-dir <path>",
	Short: "Move data storage to a different directory",
	Long: `Set the directory where habits.db is stored. Supports ~ expansion.
Existing data is not moved; copy habits.db yourself or re-import a backup.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.DataDir = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		return success("data directory set to %s", config.ExpandPath(args[0]))
	},
}

func init() {
	configCmd.AddCommand(configSetDataDirCmd)
	rootCmd.AddCommand(configCmd)
}
