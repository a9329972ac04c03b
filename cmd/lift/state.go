// ABOUTME: CLI command for showing current progression state.
// ABOUTME: Prints weight, stage, and scheme per progression key.
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/engine"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:     "state [key]",
	Aliases: []string{"st"},
	Short:   "Show current progression state",
	Long: `Show the current weight and stage for each lift.

Main lifts are keyed by role and tier (squat-T1, bench-T2, ...) so the
two tiers of a lift progress independently. Accessories are keyed by
their exercise ID.

OUTPUT FORMAT:

  KEY  WEIGHT  SCHEME  BASE  BEST-AMRAP  LAST-WORKOUT

  BASE is the weight where the current stage ladder began; a deload
  resets to 85% of it.

EXAMPLES:

  lift state             # Everything
  lift state squat-T1    # One key`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			s, err := repo.GetState(models.ProgressionKey(args[0]))
			if err != nil {
				return fmt.Errorf("state not found: %s", args[0])
			}
			printState(s)
			return nil
		}

		states, err := repo.LoadStates()
		if err != nil {
			return fmt.Errorf("failed to load states: %w", err)
		}
		if len(states) == 0 {
			fmt.Println("No progression state yet. Run 'lift import' or 'lift exercise add' to get started.")
			return nil
		}

		keys := make([]string, 0, len(states))
		for k := range states {
			keys = append(keys, string(k))
		}
		sort.Strings(keys)
		for _, k := range keys {
			printState(states[models.ProgressionKey(k)])
		}
		return nil
	},
}

func printState(s *models.ProgressionState) {
	faint := color.New(color.Faint)

	scheme := "-"
	if sc, ok := engine.SchemeFor(tierForKey(s.Key), s.Stage); ok {
		scheme = sc.Label()
	}

	best := ""
	if s.BestAMRAP > 0 {
		best = fmt.Sprintf("best %d", s.BestAMRAP)
	}
	last := ""
	if !s.LastWorkoutAt.IsZero() {
		last = s.LastWorkoutAt.Format("2006-01-02")
	}

	fmt.Printf("%s %7.1f %s %s %s %s\n",
		padRight(string(s.Key), 14),
		s.Weight,
		padRight(scheme, 6),
		faint.Sprintf("base %.1f", s.BaseWeight),
		faint.Sprint(padRight(best, 8)),
		faint.Sprint(last))
}

// tierForKey recovers the tier from a progression key. Accessory keys
// are bare exercise IDs and always run the T3 scheme.
func tierForKey(key models.ProgressionKey) models.Tier {
	k := string(key)
	switch {
	case strings.HasSuffix(k, "-T1"):
		return models.Tier1
	case strings.HasSuffix(k, "-T2"):
		return models.Tier2
	default:
		return models.Tier3
	}
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
