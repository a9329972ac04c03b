// ABOUTME: Pending change construction from analysis records.
// ABOUTME: One immutable change per analyzed exercise; tiers never cross-influence.
package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lift/internal/models"
)

// BuildPendingChange applies the tier rules to one analysis record and
// the stored state for its key, producing a reviewable change proposal.
// When no state exists yet for the key, the logged weight seeds a
// stage-0 state so fresh programs can be analyzed before setup.
func BuildPendingChange(a Analysis, states models.StateMap, unit models.Unit, now time.Time) *models.PendingChange {
	weight := a.LoggedWeight
	stage := 0
	best := 0
	if state, ok := states[a.Key]; ok {
		weight = state.Weight
		stage = state.Stage
		best = state.BestAMRAP
	}

	out := Advance(a.Tier, stage, weight, a.Reps, a.Config.MuscleGroup, unit)

	return &models.PendingChange{
		ID:           uuid.New(),
		Key:          a.Key,
		ExerciseID:   a.Config.ID,
		ExerciseName: a.Config.Name,
		Tier:         a.Tier,
		Type:         out.Type,
		OldWeight:    weight,
		NewWeight:    out.NewWeight,
		OldStage:     stage,
		NewStage:     out.NewStage,
		Reason:       out.Reason,
		WorkoutID:    a.WorkoutID,
		WorkoutDate:  a.WorkoutDate,
		CreatedAt:    now,
		Success:      out.Success,
		AMRAPReps:    out.AMRAPReps,
		NewRecord:    IsNewRecord(out.AMRAPReps, best),
	}
}

// BuildPendingChanges converts a batch of analyses into change
// proposals. Each exercise yields an independent change computed from
// the same input state; applying is the caller's separate, ordered step.
func BuildPendingChanges(analyses []Analysis, states models.StateMap, unit models.Unit, now time.Time) []*models.PendingChange {
	changes := make([]*models.PendingChange, 0, len(analyses))
	for _, a := range analyses {
		changes = append(changes, BuildPendingChange(a, states, unit, now))
	}
	return changes
}
