// ABOUTME: Program day schedule persistence for Charm KV storage.
// ABOUTME: One key per program day; unsaved days fall back to defaults.
package charm

import (
	"fmt"

	"github.com/harperreed/lift/internal/models"
)

// SaveDayAssignment upserts the role assignment for one program day.
func (c *Client) SaveDayAssignment(a models.DayAssignment) error {
	key := SchedulePrefix + string(a.Day)
	data, err := marshalJSON(a)
	if err != nil {
		return fmt.Errorf("marshal day assignment: %w", err)
	}
	return c.set(key, data)
}

// GetSchedule loads all stored day assignments. Days never saved fall
// back to the default rotation.
func (c *Client) GetSchedule() (models.Schedule, error) {
	allData, err := c.listByPrefix(SchedulePrefix)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}

	schedule := models.Schedule{}
	for _, data := range allData {
		a, err := unmarshalJSON[models.DayAssignment](data)
		if err != nil {
			continue // Skip invalid entries
		}
		schedule[a.Day] = *a
	}

	for day, a := range models.DefaultSchedule() {
		if _, ok := schedule[day]; !ok {
			schedule[day] = a
		}
	}
	return schedule, nil
}
