// ABOUTME: CLI commands for the four-day program schedule.
// ABOUTME: Shows and overrides per-day T1/T2 role assignments.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:     "schedule",
	Aliases: []string{"sched"},
	Short:   "Show the program schedule",
	Long: `Show which role lifts T1 and which lifts T2 on each program day.

The default rotation puts every main lift through both tiers once per
cycle:

  A1  squat T1     bench T2
  B1  ohp T1       deadlift T2
  A2  bench T1     squat T2
  B2  deadlift T1  ohp T2

Use 'lift schedule set' to override a day.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schedule, err := repo.GetSchedule()
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}

		faint := color.New(color.Faint)
		for _, day := range models.ProgramDays {
			a := schedule[day]
			fmt.Printf("%s  %s %s  %s %s\n",
				color.New(color.Bold).Sprint(day),
				padRight(string(a.T1Role), 10), faint.Sprint("T1"),
				padRight(string(a.T2Role), 10), faint.Sprint("T2"))
		}
		return nil
	},
}

var scheduleSetCmd = &cobra.Command{
	Use:   "set <day> <t1-role> <t2-role>",
	Short: "Override a day's tier assignments",
	Long: `Override which role lifts T1 and T2 on a program day.

EXAMPLES:

  lift schedule set A1 squat bench
  lift schedule set B2 deadlift ohp`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, t1, t2 := args[0], args[1], args[2]

		if !models.IsValidProgramDay(day) {
			return fmt.Errorf("unknown program day: %s (use A1, B1, A2, or B2)", day)
		}
		for _, r := range []string{t1, t2} {
			if !models.IsValidRole(r) || !models.Role(r).IsMain() {
				return fmt.Errorf("not a main-lift role: %s (use squat, bench, deadlift, or ohp)", r)
			}
		}
		if t1 == t2 {
			return fmt.Errorf("T1 and T2 must be different roles")
		}

		a := models.DayAssignment{
			Day:    models.ProgramDay(day),
			T1Role: models.Role(t1),
			T2Role: models.Role(t2),
		}
		if err := repo.SaveDayAssignment(a); err != nil {
			return fmt.Errorf("failed to save schedule: %w", err)
		}

		color.Green("✓ %s: %s T1, %s T2", day, t1, t2)
		return nil
	},
}

func init() {
	scheduleCmd.AddCommand(scheduleSetCmd)
	rootCmd.AddCommand(scheduleCmd)
}
