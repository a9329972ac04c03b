// ABOUTME: CLI commands for managing configured exercises.
// ABOUTME: Supports add, list, and delete with ID-prefix resolution.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var (
	exerciseRole   string
	exerciseMuscle string
	exerciseWeight string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage configured exercises",
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <template-id> <name>",
	Short: "Add an exercise",
	Long: `Add an exercise to the program.

The template ID is the identifier your workout log uses for the
exercise; analysis matches logged exercises to configs by it.

Main-lift roles (squat, bench, deadlift, ohp) fill the day schedule's
T1 and T2 slots. Everything else is an accessory and progresses as T3
under its own key.

With --weight, a starting progression entry is created immediately.
Main lifts get one per tier; accessories get a single T3 entry.

EXAMPLES:

  lift exercise add sq-tmpl "Back Squat" --role squat --weight 100
  lift exercise add curl-tmpl "Arm Curl" --muscle upper --weight 20`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		templateID, name := args[0], args[1]

		role := models.RoleAccessory
		if exerciseRole != "" {
			if !models.IsValidRole(exerciseRole) {
				return fmt.Errorf("unknown role: %s (use squat, bench, deadlift, ohp, or accessory)", exerciseRole)
			}
			role = models.Role(exerciseRole)
		}

		ex := models.NewExerciseConfig(templateID, name, role)
		if exerciseMuscle != "" {
			switch exerciseMuscle {
			case string(models.LowerBody), string(models.UpperBody):
				ex.WithMuscleGroup(models.MuscleGroup(exerciseMuscle))
			default:
				return fmt.Errorf("unknown muscle group: %s (use lower or upper)", exerciseMuscle)
			}
		}

		if err := repo.CreateExercise(ex); err != nil {
			return fmt.Errorf("failed to create exercise: %w", err)
		}

		color.Green("✓ Added %s", name)
		fmt.Printf("  %s %s %s\n",
			color.New(color.Faint).Sprint(ex.ID.String()[:8]),
			ex.Role, ex.MuscleGroup)

		if exerciseWeight != "" {
			weight, err := strconv.ParseFloat(exerciseWeight, 64)
			if err != nil {
				return fmt.Errorf("invalid weight: %s", exerciseWeight)
			}
			keys := []models.ProgressionKey{ex.KeyFor(models.Tier3)}
			if role.IsMain() {
				keys = []models.ProgressionKey{ex.KeyFor(models.Tier1), ex.KeyFor(models.Tier2)}
			}
			for _, key := range keys {
				if err := repo.SaveState(models.NewProgressionState(key, ex.ID, weight)); err != nil {
					return fmt.Errorf("failed to save state: %w", err)
				}
				fmt.Printf("  %s starts at %.1f %s\n", key, weight, unit)
			}
		}

		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List configured exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := repo.ListExercises()
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		if len(exercises) == 0 {
			fmt.Println("No exercises configured.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(e.ID.String()[:8]),
				padRight(e.Name, 24),
				padRight(string(e.Role), 10),
				faint.Sprint(e.TemplateID))
		}
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an exercise",
	Long: `Delete an exercise by its ID or ID prefix.

Progression state and history keyed to the exercise are left in place;
delete the state separately if the lift is truly gone.

CAUTION:

  This permanently deletes the config. There is no undo.
  If the prefix matches multiple exercises, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := repo.GetExercise(args[0])
		if err != nil {
			return fmt.Errorf("exercise not found: %s", args[0])
		}

		if err := repo.DeleteExercise(args[0]); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}

		color.Yellow("✗ Deleted %s", e.Name)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(e.ID.String()[:8]),
			e.Role)
		return nil
	},
}

func init() {
	exerciseAddCmd.Flags().StringVar(&exerciseRole, "role", "", "program role (squat, bench, deadlift, ohp, accessory)")
	exerciseAddCmd.Flags().StringVar(&exerciseMuscle, "muscle", "", "muscle group for accessories (lower, upper)")
	exerciseAddCmd.Flags().StringVar(&exerciseWeight, "weight", "", "starting weight; creates progression state")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
