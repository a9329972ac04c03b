// ABOUTME: Progression state, pending change, history, and discrepancy models.
// ABOUTME: State is a flat map keyed by ProgressionKey to keep tiers independent.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ProgressionState tracks one progression key's current position.
type ProgressionState struct {
	Key           ProgressionKey `json:"key" yaml:"key"`
	ExerciseID    uuid.UUID      `json:"exercise_id" yaml:"exercise_id"`
	Weight        float64        `json:"weight" yaml:"weight"`
	Stage         int            `json:"stage" yaml:"stage"`
	BaseWeight    float64        `json:"base_weight" yaml:"base_weight"` // stage-0 anchor, rewritten only on deload
	LastWorkoutID string         `json:"last_workout_id,omitempty" yaml:"last_workout_id,omitempty"`
	LastWorkoutAt time.Time      `json:"last_workout_at,omitempty" yaml:"last_workout_at,omitempty"`
	BestAMRAP     int            `json:"best_amrap" yaml:"best_amrap"`
}

// NewProgressionState creates a stage-0 state anchored at the given weight.
func NewProgressionState(key ProgressionKey, exerciseID uuid.UUID, weight float64) *ProgressionState {
	return &ProgressionState{
		Key:        key,
		ExerciseID: exerciseID,
		Weight:     weight,
		BaseWeight: weight,
	}
}

// StateMap is the stored progression mapping, one entry per key.
type StateMap map[ProgressionKey]*ProgressionState

// Clone returns a deep copy. Appliers work on copies so callers never
// observe partially applied batches.
func (m StateMap) Clone() StateMap {
	out := make(StateMap, len(m))
	for k, s := range m {
		c := *s
		out[k] = &c
	}
	return out
}

// ChangeType names the progression rule that fired.
type ChangeType string

const (
	ChangeProgress    ChangeType = "progress"
	ChangeStageChange ChangeType = "stage_change"
	ChangeDeload      ChangeType = "deload"
)

// PendingChange is a proposed, not-yet-applied progression mutation.
// Immutable once created; it is either applied or discarded.
type PendingChange struct {
	ID           uuid.UUID      `json:"id" yaml:"id"`
	Key          ProgressionKey `json:"key" yaml:"key"`
	ExerciseID   uuid.UUID      `json:"exercise_id" yaml:"exercise_id"`
	ExerciseName string         `json:"exercise_name" yaml:"exercise_name"`
	Tier         Tier           `json:"tier" yaml:"tier"`
	Type         ChangeType     `json:"type" yaml:"type"`
	OldWeight    float64        `json:"old_weight" yaml:"old_weight"`
	NewWeight    float64        `json:"new_weight" yaml:"new_weight"`
	OldStage     int            `json:"old_stage" yaml:"old_stage"`
	NewStage     int            `json:"new_stage" yaml:"new_stage"`
	Reason       string         `json:"reason" yaml:"reason"`
	WorkoutID    string         `json:"workout_id" yaml:"workout_id"`
	WorkoutDate  time.Time      `json:"workout_date" yaml:"workout_date"`
	CreatedAt    time.Time      `json:"created_at" yaml:"created_at"`
	Success      bool           `json:"success" yaml:"success"`
	AMRAPReps    *int           `json:"amrap_reps,omitempty" yaml:"amrap_reps,omitempty"`
	NewRecord    bool           `json:"new_record,omitempty" yaml:"new_record,omitempty"`
}

// ChangeStatus is a pending change's review lifecycle position.
type ChangeStatus string

const (
	StatusPending   ChangeStatus = "pending"
	StatusApplied   ChangeStatus = "applied"
	StatusDiscarded ChangeStatus = "discarded"
)

// IsValidChangeStatus checks if a string is a valid change status.
func IsValidChangeStatus(s string) bool {
	return s == string(StatusPending) || s == string(StatusApplied) || s == string(StatusDiscarded)
}

// HistoryEntry is one applied change in a progression key's log.
type HistoryEntry struct {
	Date      time.Time  `json:"date" yaml:"date"` // source workout date, not creation date
	WorkoutID string     `json:"workout_id" yaml:"workout_id"`
	Weight    float64    `json:"weight" yaml:"weight"`
	Stage     int        `json:"stage" yaml:"stage"`
	Success   bool       `json:"success" yaml:"success"`
	AMRAPReps *int       `json:"amrap_reps,omitempty" yaml:"amrap_reps,omitempty"`
	Type      ChangeType `json:"type" yaml:"type"`
}

// ExerciseHistory is the append-only log for one progression key.
// Entries are unique per workout id and kept sorted by date ascending.
type ExerciseHistory struct {
	ExerciseName string         `json:"exercise_name" yaml:"exercise_name"`
	Tier         Tier           `json:"tier" yaml:"tier"`
	Role         Role           `json:"role" yaml:"role"`
	Entries      []HistoryEntry `json:"entries" yaml:"entries"`
}

// HistoryMap holds histories keyed by progression key.
type HistoryMap map[ProgressionKey]*ExerciseHistory

// Clone returns a deep copy with no aliasing of entry slices.
func (m HistoryMap) Clone() HistoryMap {
	out := make(HistoryMap, len(m))
	for k, h := range m {
		c := *h
		c.Entries = append([]HistoryEntry(nil), h.Entries...)
		out[k] = &c
	}
	return out
}

// DiscrepancyInfo reports a mismatch between the stored weight and the
// weight actually logged. Advisory only; never blocks analysis.
type DiscrepancyInfo struct {
	ExerciseID   uuid.UUID `json:"exercise_id"`
	ExerciseName string    `json:"exercise_name"`
	Tier         Tier      `json:"tier"`
	StoredWeight float64   `json:"stored_weight"`
	LoggedWeight float64   `json:"logged_weight"`
	WorkoutID    string    `json:"workout_id"`
	WorkoutDate  time.Time `json:"workout_date"`
}
