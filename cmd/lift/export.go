// ABOUTME: CLI commands for exporting and restoring progression data.
// ABOUTME: Supports JSON and YAML export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export progression data",
	Long: `Export progression data in various formats.

FORMATS:

  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export (human-readable, stable key order)

The export contains exercises, the day schedule, progression state,
pending changes, and history. Applied changes travel as history
entries, not as changes.

EXAMPLES:

  lift export json                  # Export all data as JSON
  lift export json -o backup.json   # Save to file
  lift export yaml                  # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error
		switch format {
		case "json":
			data, err = storage.ExportJSON(repo)
		case "yaml":
			data, err = storage.ExportYAML(repo)
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore progression data from JSON",
	Long: `Restore progression data from a JSON backup file.

This imports exercises, schedule, state, pending changes, and history
from a previously exported JSON file. Duplicate entries (same ID) will
cause an error; restore into an empty backend.

EXAMPLES:

  lift restore backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := storage.ImportJSON(repo, data); err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}

		color.Green("✓ Restored from %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(restoreCmd)
}
