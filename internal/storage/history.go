// ABOUTME: Progression history persistence for SQLite storage.
// ABOUTME: Append-only; one row per (key, workout), replays are no-ops.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lift/internal/models"
)

// AppendHistory records one applied change in a key's log. The unique
// (progression_key, workout_id) constraint makes replaying the same
// workout a no-op.
func (d *DB) AppendHistory(key models.ProgressionKey, h *models.ExerciseHistory, e models.HistoryEntry) error {
	query := `
		INSERT OR IGNORE INTO history
			(id, progression_key, exercise_name, tier, role, date, workout_id,
			 weight, stage, success, amrap_reps, change_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	var amrap interface{}
	if e.AMRAPReps != nil {
		amrap = *e.AMRAPReps
	}
	_, err := d.db.Exec(query,
		uuid.New().String(),
		string(key),
		h.ExerciseName,
		string(h.Tier),
		string(h.Role),
		e.Date.Format(time.RFC3339),
		e.WorkoutID,
		e.Weight,
		e.Stage,
		e.Success,
		amrap,
		string(e.Type),
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// GetHistory loads one key's log, sorted by date ascending.
func (d *DB) GetHistory(key models.ProgressionKey) (*models.ExerciseHistory, error) {
	query := historyColumns + ` WHERE progression_key = ? ORDER BY date`
	rows, err := d.db.Query(query, string(key))
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	defer rows.Close()

	histories, err := scanHistories(rows)
	if err != nil {
		return nil, err
	}
	h, ok := histories[key]
	if !ok {
		return nil, fmt.Errorf("no history for key %s", key)
	}
	return h, nil
}

// LoadHistory loads all logs keyed by progression key.
func (d *DB) LoadHistory() (models.HistoryMap, error) {
	query := historyColumns + ` ORDER BY progression_key, date`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	return scanHistories(rows)
}

const historyColumns = `
	SELECT progression_key, exercise_name, tier, role, date, workout_id,
	       weight, stage, success, amrap_reps, change_type
	FROM history`

// scanHistories groups history rows into per-key logs.
func scanHistories(rows *sql.Rows) (models.HistoryMap, error) {
	histories := models.HistoryMap{}

	for rows.Next() {
		var keyStr, name, tier, role, date, changeType string
		var e models.HistoryEntry
		var amrap sql.NullInt64

		err := rows.Scan(&keyStr, &name, &tier, &role, &date, &e.WorkoutID,
			&e.Weight, &e.Stage, &e.Success, &amrap, &changeType)
		if err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}

		e.Date, _ = time.Parse(time.RFC3339, date)
		e.Type = models.ChangeType(changeType)
		if amrap.Valid {
			reps := int(amrap.Int64)
			e.AMRAPReps = &reps
		}

		key := models.ProgressionKey(keyStr)
		h, ok := histories[key]
		if !ok {
			h = &models.ExerciseHistory{
				ExerciseName: name,
				Tier:         models.Tier(tier),
				Role:         models.Role(role),
			}
			histories[key] = h
		}
		h.Entries = append(h.Entries, e)
	}

	return histories, rows.Err()
}
