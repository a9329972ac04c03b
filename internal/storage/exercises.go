// ABOUTME: Exercise config CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for exercises.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/lift/internal/models"
)

// CreateExercise stores a new exercise config in the database.
func (d *DB) CreateExercise(e *models.ExerciseConfig) error {
	query := `
		INSERT INTO exercises (id, template_id, name, role, muscle_group)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		e.ID.String(),
		e.TemplateID,
		e.Name,
		string(e.Role),
		string(e.MuscleGroup),
	)
	if err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	return nil
}

// GetExercise retrieves an exercise config by ID or ID prefix.
func (d *DB) GetExercise(idOrPrefix string) (*models.ExerciseConfig, error) {
	id, err := d.resolveExerciseID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, template_id, name, role, muscle_group
		FROM exercises
		WHERE id = ?
	`
	return scanExercise(d.db.QueryRow(query, id))
}

// GetExerciseByTemplateID retrieves an exercise config by its external
// template identifier.
func (d *DB) GetExerciseByTemplateID(templateID string) (*models.ExerciseConfig, error) {
	query := `
		SELECT id, template_id, name, role, muscle_group
		FROM exercises
		WHERE template_id = ?
	`
	e, err := scanExercise(d.db.QueryRow(query, templateID))
	if err != nil {
		return nil, fmt.Errorf("exercise for template %s: %w", templateID, err)
	}
	return e, nil
}

// ListExercises retrieves all exercise configs, main lifts first.
func (d *DB) ListExercises() ([]*models.ExerciseConfig, error) {
	query := `
		SELECT id, template_id, name, role, muscle_group
		FROM exercises
		ORDER BY CASE WHEN role = 'accessory' THEN 1 ELSE 0 END, name
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*models.ExerciseConfig
	for rows.Next() {
		var e models.ExerciseConfig
		var idStr, role, mg string
		if err := rows.Scan(&idStr, &e.TemplateID, &e.Name, &role, &mg); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		e.ID, _ = uuid.Parse(idStr)
		e.Role = models.Role(role)
		e.MuscleGroup = models.MuscleGroup(mg)
		exercises = append(exercises, &e)
	}
	return exercises, rows.Err()
}

// DeleteExercise removes an exercise config by ID or prefix.
func (d *DB) DeleteExercise(idOrPrefix string) error {
	id, err := d.resolveExerciseID(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM exercises WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}

	return nil
}

// resolveExerciseID finds the full ID from a prefix.
func (d *DB) resolveExerciseID(idOrPrefix string) (string, error) {
	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	// Search by prefix
	query := `SELECT id FROM exercises WHERE id LIKE ? || '%'`
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve exercise ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan exercise ID: %w", err)
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

// scanExercise scans a single row into an ExerciseConfig struct.
func scanExercise(row *sql.Row) (*models.ExerciseConfig, error) {
	var e models.ExerciseConfig
	var idStr, role, mg string

	err := row.Scan(&idStr, &e.TemplateID, &e.Name, &role, &mg)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("not found")
		}
		return nil, fmt.Errorf("scan exercise: %w", err)
	}

	e.ID, _ = uuid.Parse(idStr)
	e.Role = models.Role(role)
	e.MuscleGroup = models.MuscleGroup(mg)
	return &e, nil
}
