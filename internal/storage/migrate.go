// ABOUTME: Data migration between progression storage backends.
// ABOUTME: Copies exercises, schedule, states, changes, and history.

package storage

import (
	"fmt"
	"os"

	"github.com/harperreed/lift/internal/models"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Exercises      int
	States         int
	PendingChanges int
	HistoryEntries int
}

// MigrateData copies all data from src to dst storage. The destination
// should be empty before calling this function.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	exercises, err := src.ListExercises()
	if err != nil {
		return nil, fmt.Errorf("list source exercises: %w", err)
	}
	for _, e := range exercises {
		if err := dst.CreateExercise(e); err != nil {
			return nil, fmt.Errorf("create exercise %s: %w", e.ID, err)
		}
		summary.Exercises++
	}

	schedule, err := src.GetSchedule()
	if err != nil {
		return nil, fmt.Errorf("load source schedule: %w", err)
	}
	for _, day := range models.ProgramDays {
		if err := dst.SaveDayAssignment(schedule[day]); err != nil {
			return nil, fmt.Errorf("save day %s: %w", day, err)
		}
	}

	states, err := src.LoadStates()
	if err != nil {
		return nil, fmt.Errorf("load source states: %w", err)
	}
	for _, s := range states {
		if err := dst.SaveState(s); err != nil {
			return nil, fmt.Errorf("save state %s: %w", s.Key, err)
		}
		summary.States++
	}

	pending := models.StatusPending
	changes, err := src.ListPendingChanges(&pending)
	if err != nil {
		return nil, fmt.Errorf("list source changes: %w", err)
	}
	for _, c := range changes {
		if err := dst.CreatePendingChange(c); err != nil {
			return nil, fmt.Errorf("create change %s: %w", c.ID, err)
		}
		summary.PendingChanges++
	}

	history, err := src.LoadHistory()
	if err != nil {
		return nil, fmt.Errorf("load source history: %w", err)
	}
	for key, h := range history {
		for _, e := range h.Entries {
			if err := dst.AppendHistory(key, h, e); err != nil {
				return nil, fmt.Errorf("append history for %s: %w", key, err)
			}
			summary.HistoryEntries++
		}
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
