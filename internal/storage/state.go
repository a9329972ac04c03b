// ABOUTME: Progression state persistence for SQLite storage.
// ABOUTME: One row per progression key, upserted on every applied change.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lift/internal/models"
)

// SaveState upserts one progression key's state row.
func (d *DB) SaveState(s *models.ProgressionState) error {
	query := `
		INSERT INTO progression_state
			(key, exercise_id, weight, stage, base_weight, last_workout_id, last_workout_at, best_amrap, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			exercise_id = excluded.exercise_id,
			weight = excluded.weight,
			stage = excluded.stage,
			base_weight = excluded.base_weight,
			last_workout_id = excluded.last_workout_id,
			last_workout_at = excluded.last_workout_at,
			best_amrap = excluded.best_amrap,
			updated_at = excluded.updated_at
	`
	var lastAt interface{}
	if !s.LastWorkoutAt.IsZero() {
		lastAt = s.LastWorkoutAt.Format(time.RFC3339)
	}
	_, err := d.db.Exec(query,
		string(s.Key),
		s.ExerciseID.String(),
		s.Weight,
		s.Stage,
		s.BaseWeight,
		s.LastWorkoutID,
		lastAt,
		s.BestAMRAP,
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// GetState retrieves one progression key's state.
func (d *DB) GetState(key models.ProgressionKey) (*models.ProgressionState, error) {
	query := `
		SELECT key, exercise_id, weight, stage, base_weight, last_workout_id, last_workout_at, best_amrap
		FROM progression_state
		WHERE key = ?
	`
	row := d.db.QueryRow(query, string(key))
	s, err := scanState(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no state for key %s", key)
		}
		return nil, fmt.Errorf("get state: %w", err)
	}
	return s, nil
}

// LoadStates loads the full progression map.
func (d *DB) LoadStates() (models.StateMap, error) {
	query := `
		SELECT key, exercise_id, weight, stage, base_weight, last_workout_id, last_workout_at, best_amrap
		FROM progression_state
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("load states: %w", err)
	}
	defer rows.Close()

	states := models.StateMap{}
	for rows.Next() {
		s, err := scanState(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan state: %w", err)
		}
		states[s.Key] = s
	}
	return states, rows.Err()
}

// DeleteState removes one progression key's state.
func (d *DB) DeleteState(key models.ProgressionKey) error {
	result, err := d.db.Exec("DELETE FROM progression_state WHERE key = ?", string(key))
	if err != nil {
		return fmt.Errorf("delete state: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete state: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no state for key %s", key)
	}
	return nil
}

// scanState reads one state row via the given scan function, shared
// between QueryRow and Query paths.
func scanState(scan func(...interface{}) error) (*models.ProgressionState, error) {
	var s models.ProgressionState
	var keyStr, exIDStr string
	var lastWorkoutID, lastWorkoutAt sql.NullString

	err := scan(&keyStr, &exIDStr, &s.Weight, &s.Stage, &s.BaseWeight, &lastWorkoutID, &lastWorkoutAt, &s.BestAMRAP)
	if err != nil {
		return nil, err
	}

	s.Key = models.ProgressionKey(keyStr)
	s.ExerciseID, _ = uuid.Parse(exIDStr)
	if lastWorkoutID.Valid {
		s.LastWorkoutID = lastWorkoutID.String
	}
	if lastWorkoutAt.Valid {
		s.LastWorkoutAt, _ = time.Parse(time.RFC3339, lastWorkoutAt.String)
	}
	return &s, nil
}
