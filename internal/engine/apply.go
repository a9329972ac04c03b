// ABOUTME: Application of approved pending changes to the progression map.
// ABOUTME: Fold semantics: later changes in a batch build on earlier ones.
package engine

import "github.com/harperreed/lift/internal/models"

// ApplyChange merges one approved change into a copy of the state map.
// A change whose key no longer exists is a silent no-op; the key may
// have been removed by a config edit between review and approval.
func ApplyChange(states models.StateMap, c *models.PendingChange) models.StateMap {
	if _, ok := states[c.Key]; !ok {
		return states
	}

	out := states.Clone()
	s := out[c.Key]
	s.Weight = c.NewWeight
	s.Stage = c.NewStage
	s.LastWorkoutID = c.WorkoutID
	s.LastWorkoutAt = c.WorkoutDate
	if c.Type == models.ChangeDeload {
		s.BaseWeight = c.NewWeight
	}
	if c.AMRAPReps != nil && *c.AMRAPReps > s.BestAMRAP {
		s.BestAMRAP = *c.AMRAPReps
	}
	return out
}

// ApplyChanges folds an ordered sequence of approved changes into the
// state map, oldest first as provided by the caller.
func ApplyChanges(states models.StateMap, changes []*models.PendingChange) models.StateMap {
	out := states
	for _, c := range changes {
		out = ApplyChange(out, c)
	}
	return out
}
