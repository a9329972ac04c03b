// ABOUTME: Root Cobra command for lift CLI.
// ABOUTME: Opens the configured storage backend via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/lift/internal/config"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
)

var (
	repo storage.Repository
	cfg  *config.Config
	unit models.Unit
)

var rootCmd = &cobra.Command{
	Use:   "lift",
	Short: "Linear progression tracker for a four-day strength program",
	Long: `Lift tracks linear progression across a four-day strength rotation.

HOW IT WORKS:

  Each program day pairs one T1 main lift with one T2 main lift, plus
  any number of T3 accessories. Every lift progresses independently:

  T1   5x3+ -> 6x2+ -> 10x1+   heavy, last set AMRAP
  T2   3x10 -> 3x8  -> 3x6     volume, fixed reps
  T3   3x15+                   accessories, last set AMRAP

  Hitting the prescribed reps adds weight. Missing them moves the lift
  down its stage ladder; failing the final stage triggers a deload to
  85% of the weight where the current ladder began.

QUICK START:

  $ lift exercise add sq-tmpl "Back Squat" --role squat
  $ lift state                             # Current weight per lift
  $ lift analyze workout.json              # Queue changes from a logged workout
  $ lift changes                           # Review what the engine proposes
  $ lift apply --all                       # Accept everything

REVIEW WORKFLOW:

  Analysis never mutates progression state directly. Every proposed
  weight or stage change is queued as pending; nothing moves until you
  apply it. Discarded changes leave state untouched.

IMPORT:

  Already running the program? Import your authored routines to seed
  starting weights and stages:

  $ lift import A1 routine.json            # Preview detection
  $ lift import A1 routine.json --finish   # Create exercises and state

MCP INTEGRATION:

  Run 'lift mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "lift": { "command": "lift", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Progression data lives in SQLite at ~/.local/share/lift/lift.db by
  default. Set "backend": "charm" in ~/.config/lift/config.json to use
  Charm KV with E2E-encrypted cloud sync instead.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		unit = cfg.GetUnit()

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
