// ABOUTME: CLI command for migrating data between storage backends.
// ABOUTME: Copies all progression data from Charm KV to SQLite or back.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/charm"
	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateTo     string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate data between storage backends",
	Long: `Migrate progression data between the Charm KV and SQLite backends.

The direction is named by --to: migrating to sqlite reads from Charm
KV, migrating to charm reads from SQLite. All exercises, the schedule,
progression state, pending changes, and history are copied.

IMPORTANT:

  - The destination should be empty; duplicate IDs cause errors
  - The source is never modified
  - Run with --dry-run first to see what would be migrated
  - After migrating, set "backend" in ~/.config/lift/config.json to
    the new backend

USAGE:

  lift migrate --to sqlite --dry-run   # Preview Charm KV -> SQLite
  lift migrate --to sqlite             # Perform the migration
  lift migrate --to charm              # SQLite -> Charm KV`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateTo != "sqlite" && migrateTo != "charm" {
			return fmt.Errorf("unknown backend: %s (use sqlite or charm)", migrateTo)
		}

		var src, dst storage.Repository
		var err error
		if migrateTo == "sqlite" {
			src, err = charm.GetClient()
			if err != nil {
				return fmt.Errorf("failed to open charm source: %w", err)
			}
			dst, err = storage.Open(filepath.Join(cfg.GetDataDir(), "lift.db"))
			if err != nil {
				return fmt.Errorf("failed to open sqlite destination: %w", err)
			}
		} else {
			src, err = storage.Open(filepath.Join(cfg.GetDataDir(), "lift.db"))
			if err != nil {
				return fmt.Errorf("failed to open sqlite source: %w", err)
			}
			dst, err = charm.GetClient()
			if err != nil {
				return fmt.Errorf("failed to open charm destination: %w", err)
			}
		}
		// The charm client is a process-wide singleton the root command may
		// already hold open; only close handles opened here.
		closeOwned := func(r storage.Repository) {
			if r != repo {
				_ = r.Close()
			}
		}
		defer closeOwned(src)
		defer closeOwned(dst)

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			data, err := src.GetAllData()
			if err != nil {
				return fmt.Errorf("failed to read source: %w", err)
			}
			entries := 0
			for _, h := range data.History {
				entries += len(h.Entries)
			}
			fmt.Printf("Would migrate to %s:\n", migrateTo)
			fmt.Printf("  %d exercise(s)\n", len(data.Exercises))
			fmt.Printf("  %d progression state(s)\n", len(data.States))
			fmt.Printf("  %d pending change(s)\n", len(data.Changes))
			fmt.Printf("  %d history entr(ies)\n", entries)
			return nil
		}

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated to %s", migrateTo)
		fmt.Printf("  %d exercise(s)\n", summary.Exercises)
		fmt.Printf("  %d progression state(s)\n", summary.States)
		fmt.Printf("  %d pending change(s)\n", summary.PendingChanges)
		fmt.Printf("  %d history entr(ies)\n", summary.HistoryEntries)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "sqlite", "destination backend (sqlite or charm)")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
