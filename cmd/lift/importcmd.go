// ABOUTME: CLI command for importing authored routines.
// ABOUTME: Previews stage/weight detection and materializes starting state.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/engine"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var (
	importFinish  bool
	importStages  []string
	importWeights []string
)

var importCmd = &cobra.Command{
	Use:   "import <day> <file>",
	Short: "Import an authored routine into a program day",
	Long: `Import a previously authored routine to seed starting weights and
stages for a program day.

The first exercise of the routine fills the day's T1 slot, the second
its T2 slot, and the rest import as T3 accessories. Stage is detected
from the set/rep pattern (5x3 -> T1 stage 0, 3x8 -> T2 stage 1, ...);
weight is the most common working-set weight.

Detection that fails produces a warning, not a guess. Supply the
missing pieces with --stage and --weight, then re-run with --finish to
create the exercises and their starting progression state.

EXAMPLES:

  lift import A1 routine.json                          # Preview detection
  lift import A1 routine.json --finish                 # Create state
  lift import A1 routine.json --stage "Leg Press=0" --finish
  lift import B1 routine.json --weight "Arm Curl=20" --finish`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, filename := args[0], args[1]

		if !models.IsValidProgramDay(day) {
			return fmt.Errorf("unknown program day: %s (use A1, B1, A2, or B2)", day)
		}

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		var routine models.Routine
		if err := json.Unmarshal(data, &routine); err != nil {
			return fmt.Errorf("invalid routine JSON: %w", err)
		}

		schedule, err := repo.GetSchedule()
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}

		result := engine.ImportRoutine(routine, schedule[models.ProgramDay(day)])
		if err := applyOverrides(result.Exercises, importStages, importWeights); err != nil {
			return err
		}

		faint := color.New(color.Faint)
		for _, ie := range result.Exercises {
			stage := faint.Sprint("stage ?")
			if s, ok := ie.EffectiveStage(); ok {
				stage = fmt.Sprintf("stage %d", s)
			}
			fmt.Printf("%s %s %s %7.1f %s\n",
				padRight(string(ie.Tier), 3),
				padRight(ie.Name, 24),
				padRight(ie.RepScheme, 6),
				ie.EffectiveWeight(),
				stage)
		}
		for _, w := range result.Warnings {
			color.Yellow("⚠ %s", w.Message)
		}

		if !importFinish {
			fmt.Println()
			fmt.Println("Preview only. Re-run with --finish to create exercises and state.")
			return nil
		}

		created, skipped := 0, 0
		for _, ie := range result.Exercises {
			ex, state, ok := engine.Materialize(ie)
			if !ok {
				color.Yellow("⚠ Skipped %s: no stage (use --stage %q)", ie.Name, ie.Name+"=0")
				skipped++
				continue
			}
			if err := repo.CreateExercise(ex); err != nil {
				return fmt.Errorf("failed to create %s: %w", ie.Name, err)
			}
			if err := repo.SaveState(state); err != nil {
				return fmt.Errorf("failed to save state for %s: %w", ie.Name, err)
			}
			fmt.Printf("  %s %s starts at %.1f %s\n",
				faint.Sprint(ex.ID.String()[:8]),
				state.Key, state.Weight, unit)
			created++
		}

		color.Green("✓ Imported %d exercise(s), skipped %d", created, skipped)
		return nil
	},
}

// applyOverrides attaches --stage and --weight values to matching
// exercises by name.
func applyOverrides(exercises []models.ImportedExercise, stages, weights []string) error {
	for _, s := range stages {
		name, value, err := splitOverride(s)
		if err != nil {
			return fmt.Errorf("invalid --stage %q: %w", s, err)
		}
		stage, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid stage in %q: %s", s, value)
		}
		if !overrideByName(exercises, name, func(ie *models.ImportedExercise) {
			ie.OverrideStage = &stage
			ie.StageConfidence = models.ConfidenceManual
		}) {
			return fmt.Errorf("no exercise named %q in routine", name)
		}
	}

	for _, w := range weights {
		name, value, err := splitOverride(w)
		if err != nil {
			return fmt.Errorf("invalid --weight %q: %w", w, err)
		}
		weight, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid weight in %q: %s", w, value)
		}
		if !overrideByName(exercises, name, func(ie *models.ImportedExercise) {
			ie.OverrideWeight = &weight
		}) {
			return fmt.Errorf("no exercise named %q in routine", name)
		}
	}

	return nil
}

func splitOverride(s string) (name, value string, err error) {
	idx := strings.LastIndex(s, "=")
	if idx <= 0 || idx == len(s)-1 {
		return "", "", fmt.Errorf("expected name=value")
	}
	return s[:idx], s[idx+1:], nil
}

func overrideByName(exercises []models.ImportedExercise, name string, apply func(*models.ImportedExercise)) bool {
	for i := range exercises {
		if exercises[i].Name == name {
			apply(&exercises[i])
			return true
		}
	}
	return false
}

func init() {
	importCmd.Flags().BoolVar(&importFinish, "finish", false, "create exercises and starting state")
	importCmd.Flags().StringArrayVar(&importStages, "stage", nil, "stage override, name=stage (repeatable)")
	importCmd.Flags().StringArrayVar(&importWeights, "weight", nil, "weight override, name=weight (repeatable)")
	rootCmd.AddCommand(importCmd)
}
