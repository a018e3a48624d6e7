// ABOUTME: CLI commands for exporting and importing habit data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export habit data",
	Long: `Export habit data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for documentation/sharing)

EXAMPLES:

  habits export json                 # Export all data as JSON
  habits export json -o backup.json  # Save to file
  habits export yaml                 # Export as YAML
  habits export markdown             # Export as Markdown tables`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = store.ExportJSON()
		case "yaml":
			data, err = store.ExportYAML()
		case "markdown":
			var md string
			md, err = store.ExportMarkdown()
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			return success("exported to %s", exportOutput)
		}
		fmt.Fprintln(resultWriter, string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import habit data from JSON",
	Long: `Import habit data from a JSON backup file.

Habit ids are reassigned on import; names must not collide with
existing habits.

EXAMPLES:

  habits import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := store.ImportJSON(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		return success("imported from %s", filename)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
