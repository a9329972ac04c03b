// ABOUTME: Program day schedule persistence for SQLite storage.
// ABOUTME: Stores which roles fill the T1 and T2 slots of each day.
package storage

import (
	"fmt"

	"github.com/harperreed/lift/internal/models"
)

// SaveDayAssignment upserts the role assignment for one program day.
func (d *DB) SaveDayAssignment(a models.DayAssignment) error {
	query := `
		INSERT INTO schedule (day, t1_role, t2_role)
		VALUES (?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET t1_role = excluded.t1_role, t2_role = excluded.t2_role
	`
	_, err := d.db.Exec(query, string(a.Day), string(a.T1Role), string(a.T2Role))
	if err != nil {
		return fmt.Errorf("save day assignment: %w", err)
	}
	return nil
}

// GetSchedule loads all stored day assignments. Days never saved fall
// back to the default rotation.
func (d *DB) GetSchedule() (models.Schedule, error) {
	rows, err := d.db.Query(`SELECT day, t1_role, t2_role FROM schedule`)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	defer rows.Close()

	schedule := models.Schedule{}
	for rows.Next() {
		var day, t1, t2 string
		if err := rows.Scan(&day, &t1, &t2); err != nil {
			return nil, fmt.Errorf("scan day assignment: %w", err)
		}
		schedule[models.ProgramDay(day)] = models.DayAssignment{
			Day:    models.ProgramDay(day),
			T1Role: models.Role(t1),
			T2Role: models.Role(t2),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for day, a := range models.DefaultSchedule() {
		if _, ok := schedule[day]; !ok {
			schedule[day] = a
		}
	}
	return schedule, nil
}
