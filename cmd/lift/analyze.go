// ABOUTME: CLI command for analyzing logged workouts.
// ABOUTME: Queues progression changes as pending; never mutates state directly.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze logged workouts and queue changes",
	Long: `Analyze one or more logged workouts and queue progression changes
for review.

The file contains either a single workout object or an array of
workouts. Each workout names the program day it was performed as:

  {
    "id": "w-2024-01-10",
    "day": "A1",
    "started_at": "2024-01-10T09:00:00Z",
    "exercises": [
      {
        "template_id": "sq-tmpl",
        "name": "Back Squat",
        "sets": [
          {"type": "normal", "weight": 100, "reps": 3},
          ...
        ]
      }
    ]
  }

Batches are processed oldest first so later analysis sees the weight
that was current at the time. Re-analyzing a workout that already
queued a change for a lift is a no-op for that lift.

Analysis never touches progression state. Review the queue with
'lift changes', then 'lift apply' or 'lift discard'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := readWorkouts(args[0])
		if err != nil {
			return err
		}

		schedule, err := repo.GetSchedule()
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}

		faint := color.New(color.Faint)
		total := 0
		for _, w := range models.SortWorkoutsByDate(workouts) {
			if !models.IsValidProgramDay(w.Day) {
				return fmt.Errorf("workout %s: unknown program day: %q", w.ID, w.Day)
			}

			changes, discrepancies, err := storage.AnalyzeAndQueue(repo, w, schedule[models.ProgramDay(w.Day)], unit, time.Now())
			if err != nil {
				return fmt.Errorf("failed to analyze %s: %w", w.ID, err)
			}

			for _, d := range discrepancies {
				color.Yellow("⚠ %s: logged %.1f but tracking %.1f", d.ExerciseName, d.LoggedWeight, d.StoredWeight)
			}
			for _, c := range changes {
				fmt.Printf("%s %s %s %s %.1f -> %.1f\n",
					faint.Sprint(c.ID.String()[:8]),
					faint.Sprint(c.WorkoutDate.Format("2006-01-02")),
					padRight(string(c.Key), 14),
					padRight(string(c.Type), 12),
					c.OldWeight, c.NewWeight)
			}
			total += len(changes)
		}

		if total == 0 {
			fmt.Println("Nothing new to queue.")
			return nil
		}
		color.Green("✓ Queued %d change(s) for review", total)
		return nil
	},
}

// readWorkouts accepts either a single workout object or an array.
func readWorkouts(filename string) ([]models.LoggedWorkout, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return parseWorkouts(data)
}

func parseWorkouts(data []byte) ([]models.LoggedWorkout, error) {
	var workouts []models.LoggedWorkout
	if err := json.Unmarshal(data, &workouts); err == nil {
		return workouts, nil
	}

	var single models.LoggedWorkout
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("invalid workout JSON: %w", err)
	}
	return []models.LoggedWorkout{single}, nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
