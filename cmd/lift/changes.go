// ABOUTME: CLI commands for the pending-change review workflow.
// ABOUTME: Lists, applies, and discards queued progression changes.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/engine"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
)

var (
	changesStatus string
	changesLatest bool
)

var changesCmd = &cobra.Command{
	Use:     "changes",
	Aliases: []string{"ch"},
	Short:   "List progression changes",
	Long: `List queued progression changes, pending by default.

OUTPUT FORMAT:

  Each line shows: ID  DATE  KEY  TYPE  OLD -> NEW  (REASON)

  The ID is an 8-character prefix you can use with apply and discard.

FILTERING:

  --status pending     Changes awaiting review (default)
  --status applied     Changes already applied to state
  --status discarded   Changes you rejected
  --status all         Everything
  --latest             Only the newest change per lift

EXAMPLES:

  lift changes                    # What's waiting for review
  lift changes --latest           # One line per lift
  lift changes --status applied   # Audit what landed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var status *models.ChangeStatus
		if changesStatus != "all" {
			if !models.IsValidChangeStatus(changesStatus) {
				return fmt.Errorf("unknown status: %s (use pending, applied, discarded, or all)", changesStatus)
			}
			st := models.ChangeStatus(changesStatus)
			status = &st
		}

		changes, err := repo.ListPendingChanges(status)
		if err != nil {
			return fmt.Errorf("failed to list changes: %w", err)
		}

		if changesLatest {
			changes = engine.DeduplicatePendingChanges(changes)
		}

		if len(changes) == 0 {
			fmt.Println("No changes found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, c := range changes {
			reason := ""
			if c.Reason != "" {
				reason = faint.Sprintf(" (%s)", truncate(c.Reason, 40))
			}
			record := ""
			if c.NewRecord {
				record = color.GreenString(" PR")
			}
			fmt.Printf("%s %s %s %s %.1f -> %.1f%s%s\n",
				faint.Sprint(c.ID.String()[:8]),
				faint.Sprint(c.WorkoutDate.Format("2006-01-02")),
				padRight(string(c.Key), 14),
				padRight(string(c.Type), 12),
				c.OldWeight, c.NewWeight,
				record, reason)
		}

		return nil
	},
}

var applyAll bool

var applyCmd = &cobra.Command{
	Use:   "apply [id]",
	Short: "Apply pending changes",
	Long: `Apply a pending change to progression state.

Applying a change updates the lift's current weight and stage, records
a history entry, and marks the change applied. A change can only be
applied once.

EXAMPLES:

  lift apply abc12345    # Apply one change by ID prefix
  lift apply --all       # Apply everything, oldest workout first`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if applyAll {
			applied, err := storage.ApplyAllPending(repo)
			if err != nil {
				return fmt.Errorf("failed to apply changes: %w", err)
			}
			if applied == 0 {
				fmt.Println("Nothing pending.")
				return nil
			}
			color.Green("✓ Applied %d change(s)", applied)
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("provide a change ID or use --all")
		}

		c, err := repo.GetPendingChange(args[0])
		if err != nil {
			return fmt.Errorf("change not found: %s", args[0])
		}
		if err := storage.ApplyPendingChange(repo, c); err != nil {
			return fmt.Errorf("failed to apply change: %w", err)
		}

		color.Green("✓ Applied %s", c.Key)
		fmt.Printf("  %s %s %.1f -> %.1f\n",
			color.New(color.Faint).Sprint(c.ID.String()[:8]),
			c.Type, c.OldWeight, c.NewWeight)
		return nil
	},
}

var discardCmd = &cobra.Command{
	Use:   "discard <id>",
	Short: "Discard a pending change",
	Long: `Discard a pending change without touching progression state.

Use this when a proposed change doesn't reflect reality: a deload
queued from a session cut short, or a progress suggestion for a
workout logged twice.

EXAMPLES:

  lift discard abc12345    # Discard by 8-char prefix`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := repo.GetPendingChange(args[0])
		if err != nil {
			return fmt.Errorf("change not found: %s", args[0])
		}
		if err := storage.DiscardPendingChange(repo, args[0]); err != nil {
			return fmt.Errorf("failed to discard change: %w", err)
		}

		color.Yellow("✗ Discarded %s", c.Key)
		fmt.Printf("  %s %s %.1f -> %.1f\n",
			color.New(color.Faint).Sprint(c.ID.String()[:8]),
			c.Type, c.OldWeight, c.NewWeight)
		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	changesCmd.Flags().StringVarP(&changesStatus, "status", "s", "pending", "filter by status (pending, applied, discarded, all)")
	changesCmd.Flags().BoolVar(&changesLatest, "latest", false, "show only the newest change per lift")
	applyCmd.Flags().BoolVar(&applyAll, "all", false, "apply every pending change, oldest first")

	rootCmd.AddCommand(changesCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(discardCmd)
}
