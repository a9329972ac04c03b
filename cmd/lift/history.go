// ABOUTME: CLI command for showing applied-change history.
// ABOUTME: Prints the per-key log of weights, stages, and outcomes.
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:     "history [key]",
	Aliases: []string{"hist", "log"},
	Short:   "Show progression history",
	Long: `Show the applied-change log for one lift or all lifts.

Each entry records the workout that produced it: the date, the weight
that was lifted, the stage, whether the prescription was hit, and the
AMRAP rep count where the scheme has one. History only grows when a
change is applied; discarded changes leave no trace.

EXAMPLES:

  lift history             # All lifts
  lift history squat-T1    # One lift`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			h, err := repo.GetHistory(models.ProgressionKey(args[0]))
			if err != nil {
				return fmt.Errorf("history not found: %s", args[0])
			}
			printHistory(models.ProgressionKey(args[0]), h)
			return nil
		}

		histories, err := repo.LoadHistory()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if len(histories) == 0 {
			fmt.Println("No history yet. Apply some changes first.")
			return nil
		}

		keys := make([]string, 0, len(histories))
		for k := range histories {
			keys = append(keys, string(k))
		}
		sort.Strings(keys)
		for i, k := range keys {
			if i > 0 {
				fmt.Println()
			}
			printHistory(models.ProgressionKey(k), histories[models.ProgressionKey(k)])
		}
		return nil
	},
}

func printHistory(key models.ProgressionKey, h *models.ExerciseHistory) {
	faint := color.New(color.Faint)

	fmt.Printf("%s %s\n", color.New(color.Bold).Sprint(h.ExerciseName), faint.Sprintf("(%s, %s)", key, h.Tier))
	for _, e := range h.Entries {
		mark := color.GreenString("✓")
		if !e.Success {
			mark = color.RedString("✗")
		}
		amrap := ""
		if e.AMRAPReps != nil {
			amrap = faint.Sprintf(" amrap %d", *e.AMRAPReps)
		}
		fmt.Printf("  %s %s %7.1f stage %d %s%s\n",
			faint.Sprint(e.Date.Format("2006-01-02")),
			mark,
			e.Weight,
			e.Stage,
			padRight(string(e.Type), 12),
			amrap)
	}
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
