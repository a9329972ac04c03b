// ABOUTME: Exercise config CRUD operations for Charm KV storage.
// ABOUTME: Uses type-prefixed keys and client-side filtering.
package charm

import (
	"fmt"
	"sort"

	"github.com/harperreed/lift/internal/models"
)

// CreateExercise stores a new exercise config in the KV store.
func (c *Client) CreateExercise(e *models.ExerciseConfig) error {
	key := ExercisePrefix + e.ID.String()
	data, err := marshalJSON(e)
	if err != nil {
		return fmt.Errorf("marshal exercise: %w", err)
	}
	return c.set(key, data)
}

// GetExercise retrieves an exercise config by ID or ID prefix.
func (c *Client) GetExercise(idOrPrefix string) (*models.ExerciseConfig, error) {
	data, err := c.getByIDPrefix(ExercisePrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	exercise, err := unmarshalJSON[models.ExerciseConfig](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal exercise: %w", err)
	}

	return exercise, nil
}

// GetExerciseByTemplateID retrieves an exercise config by its external
// template identifier.
func (c *Client) GetExerciseByTemplateID(templateID string) (*models.ExerciseConfig, error) {
	exercises, err := c.ListExercises()
	if err != nil {
		return nil, err
	}
	for _, e := range exercises {
		if e.TemplateID == templateID {
			return e, nil
		}
	}
	return nil, fmt.Errorf("exercise for template %s: not found", templateID)
}

// ListExercises retrieves all exercise configs, main lifts first.
func (c *Client) ListExercises() ([]*models.ExerciseConfig, error) {
	allData, err := c.listByPrefix(ExercisePrefix)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	var exercises []*models.ExerciseConfig
	for _, data := range allData {
		e, err := unmarshalJSON[models.ExerciseConfig](data)
		if err != nil {
			continue // Skip invalid entries
		}
		exercises = append(exercises, e)
	}

	sort.Slice(exercises, func(i, j int) bool {
		im, jm := exercises[i].Role.IsMain(), exercises[j].Role.IsMain()
		if im != jm {
			return im
		}
		return exercises[i].Name < exercises[j].Name
	})

	return exercises, nil
}

// DeleteExercise removes an exercise config by ID or prefix.
func (c *Client) DeleteExercise(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(ExercisePrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}
