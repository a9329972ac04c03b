// ABOUTME: Matching of logged exercise entries to configured exercises.
// ABOUTME: Matches by external template id; unmatched entries are dropped.
package engine

import (
	"github.com/google/uuid"
	"github.com/harperreed/lift/internal/models"
)

// MatchedExercise pairs a logged entry with its configuration.
type MatchedExercise struct {
	Config *models.ExerciseConfig
	Logged models.LoggedExercise
}

// MatchExercises maps logged entries onto configured exercises by
// external template id, preserving logged order. Entries with no
// matching config are dropped silently; they represent accessory or
// other work outside the program.
func MatchExercises(logged []models.LoggedExercise, configs map[uuid.UUID]*models.ExerciseConfig) []MatchedExercise {
	byTemplate := make(map[string]*models.ExerciseConfig, len(configs))
	for _, c := range configs {
		byTemplate[c.TemplateID] = c
	}

	matched := make([]MatchedExercise, 0, len(logged))
	for _, entry := range logged {
		cfg, ok := byTemplate[entry.TemplateID]
		if !ok {
			continue
		}
		matched = append(matched, MatchedExercise{Config: cfg, Logged: entry})
	}
	return matched
}
