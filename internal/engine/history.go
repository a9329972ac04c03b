// ABOUTME: History recording: change-to-entry mapping and idempotent append.
// ABOUTME: Entries are unique per (progression key, workout id) and date-sorted.
package engine

import (
	"sort"

	"github.com/google/uuid"
	"github.com/harperreed/lift/internal/models"
)

// HistoryEntryFromChange maps a pending change to a history entry. The
// entry is dated by the source workout, not the change's creation time.
func HistoryEntryFromChange(c *models.PendingChange) models.HistoryEntry {
	return models.HistoryEntry{
		Date:      c.WorkoutDate,
		WorkoutID: c.WorkoutID,
		Weight:    c.NewWeight,
		Stage:     c.NewStage,
		Success:   c.Success,
		AMRAPReps: c.AMRAPReps,
		Type:      c.Type,
	}
}

// RecordHistory appends a change's entry to its key's history and
// returns the updated map. Re-recording the same workout id for a key
// is idempotent: the existing entry stays and nothing is duplicated.
// Histories for other keys pass through without shared mutation. The
// config map supplies name and role when a brand-new key's history has
// to be created.
func RecordHistory(histories models.HistoryMap, c *models.PendingChange, configs map[uuid.UUID]*models.ExerciseConfig) models.HistoryMap {
	out := histories.Clone()

	h, ok := out[c.Key]
	if !ok {
		h = &models.ExerciseHistory{
			ExerciseName: c.ExerciseName,
			Tier:         c.Tier,
		}
		if cfg, found := configs[c.ExerciseID]; found {
			h.ExerciseName = cfg.Name
			h.Role = cfg.Role
		}
		out[c.Key] = h
	}

	for _, e := range h.Entries {
		if e.WorkoutID == c.WorkoutID {
			return out
		}
	}

	h.Entries = append(h.Entries, HistoryEntryFromChange(c))
	sort.SliceStable(h.Entries, func(i, j int) bool {
		return h.Entries[i].Date.Before(h.Entries[j].Date)
	})

	return out
}
