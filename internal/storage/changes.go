// ABOUTME: Pending change CRUD and lifecycle for SQLite storage.
// ABOUTME: Changes move pending -> applied or pending -> discarded, never back.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lift/internal/models"
)

// CreatePendingChange stores a new pending change awaiting review.
func (d *DB) CreatePendingChange(c *models.PendingChange) error {
	query := `
		INSERT INTO pending_changes
			(id, key, exercise_id, exercise_name, tier, change_type,
			 old_weight, new_weight, old_stage, new_stage, reason,
			 workout_id, workout_date, created_at, success, amrap_reps, new_record, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	var amrap interface{}
	if c.AMRAPReps != nil {
		amrap = *c.AMRAPReps
	}
	_, err := d.db.Exec(query,
		c.ID.String(),
		string(c.Key),
		c.ExerciseID.String(),
		c.ExerciseName,
		string(c.Tier),
		string(c.Type),
		c.OldWeight,
		c.NewWeight,
		c.OldStage,
		c.NewStage,
		c.Reason,
		c.WorkoutID,
		c.WorkoutDate.Format(time.RFC3339),
		c.CreatedAt.Format(time.RFC3339),
		c.Success,
		amrap,
		c.NewRecord,
		string(models.StatusPending),
	)
	if err != nil {
		return fmt.Errorf("create pending change: %w", err)
	}
	return nil
}

// GetPendingChange retrieves a change by ID or ID prefix, any status.
func (d *DB) GetPendingChange(idOrPrefix string) (*models.PendingChange, error) {
	id, err := d.resolveChangeID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := changeColumns + ` WHERE id = ?`
	rows, err := d.db.Query(query, id)
	if err != nil {
		return nil, fmt.Errorf("get pending change: %w", err)
	}
	defer rows.Close()

	changes, err := scanChanges(rows)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return nil, fmt.Errorf("not found: %s", idOrPrefix)
	}
	return changes[0], nil
}

// ListPendingChanges retrieves changes with optional status filtering,
// oldest workout first so review follows training order.
func (d *DB) ListPendingChanges(status *models.ChangeStatus) ([]*models.PendingChange, error) {
	var query string
	var args []interface{}

	if status != nil {
		query = changeColumns + ` WHERE status = ? ORDER BY workout_date, created_at`
		args = append(args, string(*status))
	} else {
		query = changeColumns + ` ORDER BY workout_date, created_at`
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pending changes: %w", err)
	}
	defer rows.Close()

	return scanChanges(rows)
}

// ResolvePendingChange marks a pending change applied or discarded.
// Already-resolved changes cannot be resolved again.
func (d *DB) ResolvePendingChange(idOrPrefix string, status models.ChangeStatus) error {
	if status != models.StatusApplied && status != models.StatusDiscarded {
		return fmt.Errorf("invalid resolution %q", status)
	}

	id, err := d.resolveChangeID(idOrPrefix)
	if err != nil {
		return fmt.Errorf("resolve change: %w", err)
	}

	result, err := d.db.Exec(
		`UPDATE pending_changes SET status = ? WHERE id = ? AND status = ?`,
		string(status), id, string(models.StatusPending),
	)
	if err != nil {
		return fmt.Errorf("resolve change: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve change: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("change %s is not pending", idOrPrefix)
	}
	return nil
}

const changeColumns = `
	SELECT id, key, exercise_id, exercise_name, tier, change_type,
	       old_weight, new_weight, old_stage, new_stage, reason,
	       workout_id, workout_date, created_at, success, amrap_reps, new_record
	FROM pending_changes`

// resolveChangeID finds the full ID from a prefix.
func (d *DB) resolveChangeID(idOrPrefix string) (string, error) {
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	query := `SELECT id FROM pending_changes WHERE id LIKE ? || '%'`
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve change ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan change ID: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}

// scanChanges scans rows into pending changes.
func scanChanges(rows *sql.Rows) ([]*models.PendingChange, error) {
	var changes []*models.PendingChange

	for rows.Next() {
		var c models.PendingChange
		var idStr, keyStr, exIDStr, tier, changeType, workoutDate, createdAt string
		var amrap sql.NullInt64

		err := rows.Scan(&idStr, &keyStr, &exIDStr, &c.ExerciseName, &tier, &changeType,
			&c.OldWeight, &c.NewWeight, &c.OldStage, &c.NewStage, &c.Reason,
			&c.WorkoutID, &workoutDate, &createdAt, &c.Success, &amrap, &c.NewRecord)
		if err != nil {
			return nil, fmt.Errorf("scan change: %w", err)
		}

		c.ID, _ = uuid.Parse(idStr)
		c.Key = models.ProgressionKey(keyStr)
		c.ExerciseID, _ = uuid.Parse(exIDStr)
		c.Tier = models.Tier(tier)
		c.Type = models.ChangeType(changeType)
		c.WorkoutDate, _ = time.Parse(time.RFC3339, workoutDate)
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if amrap.Valid {
			reps := int(amrap.Int64)
			c.AMRAPReps = &reps
		}

		changes = append(changes, &c)
	}

	return changes, rows.Err()
}
