// ABOUTME: Export and import for the Charm KV backend.
// ABOUTME: Shares the storage package's ExportData wire format.
package charm

import (
	"fmt"
	"time"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
)

// GetAllData retrieves all data for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	exercises, err := c.ListExercises()
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	schedule, err := c.GetSchedule()
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	days := make([]models.DayAssignment, 0, len(models.ProgramDays))
	for _, day := range models.ProgramDays {
		days = append(days, schedule[day])
	}

	states, err := c.LoadStates()
	if err != nil {
		return nil, fmt.Errorf("load states: %w", err)
	}

	pending := models.StatusPending
	changes, err := c.ListPendingChanges(&pending)
	if err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}

	history, err := c.LoadHistory()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	return &storage.ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "lift",
		Exercises:  exercises,
		Schedule:   days,
		States:     states,
		Changes:    changes,
		History:    history,
	}, nil
}

// ImportData imports data from an export file.
func (c *Client) ImportData(data *storage.ExportData) error {
	for _, e := range data.Exercises {
		if err := c.CreateExercise(e); err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
	}

	for _, a := range data.Schedule {
		if err := c.SaveDayAssignment(a); err != nil {
			return fmt.Errorf("import schedule: %w", err)
		}
	}

	for _, s := range data.States {
		if err := c.SaveState(s); err != nil {
			return fmt.Errorf("import state: %w", err)
		}
	}

	for _, ch := range data.Changes {
		if err := c.CreatePendingChange(ch); err != nil {
			return fmt.Errorf("import change: %w", err)
		}
	}

	for key, h := range data.History {
		for _, e := range h.Entries {
			if err := c.AppendHistory(key, h, e); err != nil {
				return fmt.Errorf("import history: %w", err)
			}
		}
	}

	return nil
}
