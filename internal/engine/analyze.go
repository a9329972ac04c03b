// ABOUTME: Workout analysis: composes rep extraction, matching, and stored state.
// ABOUTME: Produces per-exercise analysis records with advisory discrepancies.
package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lift/internal/models"
)

// weightEpsilon absorbs float drift when comparing logged vs stored weight.
const weightEpsilon = 0.01

// Analysis is the structured result for one logged exercise.
type Analysis struct {
	Config       *models.ExerciseConfig
	Tier         models.Tier
	Key          models.ProgressionKey
	Reps         []int
	LoggedWeight float64
	WorkoutID    string
	WorkoutDate  time.Time
	Discrepancy  *models.DiscrepancyInfo // nil when logged weight matches stored state
}

// AnalyzeWorkout analyzes one logged workout against the configured
// exercises and stored progression state. The day assignment decides
// which tier each main lift holds; main lifts not assigned that day are
// skipped, accessories are always T3. A weight discrepancy never blocks
// analysis; it is attached for user acknowledgment.
func AnalyzeWorkout(w models.LoggedWorkout, day models.DayAssignment, configs map[uuid.UUID]*models.ExerciseConfig, states models.StateMap) []Analysis {
	matched := MatchExercises(w.Exercises, configs)

	results := make([]Analysis, 0, len(matched))
	for _, m := range matched {
		tier := models.Tier3
		if m.Config.Role.IsMain() {
			t, ok := day.TierFor(m.Config.Role)
			if !ok {
				continue
			}
			tier = t
		}

		a := Analysis{
			Config:       m.Config,
			Tier:         tier,
			Key:          m.Config.KeyFor(tier),
			Reps:         ExtractReps(m.Logged.Sets),
			LoggedWeight: WorkingWeight(m.Logged.Sets),
			WorkoutID:    w.ID,
			WorkoutDate:  w.StartedAt,
		}

		if state, ok := states[a.Key]; ok && diff(state.Weight, a.LoggedWeight) > weightEpsilon {
			a.Discrepancy = &models.DiscrepancyInfo{
				ExerciseID:   m.Config.ID,
				ExerciseName: m.Config.Name,
				Tier:         tier,
				StoredWeight: state.Weight,
				LoggedWeight: a.LoggedWeight,
				WorkoutID:    w.ID,
				WorkoutDate:  w.StartedAt,
			}
		}

		results = append(results, a)
	}
	return results
}

// Discrepancies collects the discrepancy reports from a set of analyses.
func Discrepancies(analyses []Analysis) []models.DiscrepancyInfo {
	var out []models.DiscrepancyInfo
	for _, a := range analyses {
		if a.Discrepancy != nil {
			out = append(out, *a.Discrepancy)
		}
	}
	return out
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
