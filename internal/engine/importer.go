// ABOUTME: Routine import: stage detection, weight extraction, and warnings.
// ABOUTME: Seeds starting progression state from an existing program's structure.
package engine

import (
	"fmt"

	"github.com/harperreed/lift/internal/models"
)

// stagePatterns maps a (sets, reps) pair to a stage per tier. An exact
// match is a high-confidence detection; anything else is unknown and
// must be resolved by the user, never silently defaulted.
var stagePatterns = map[models.Tier]map[[2]int]int{
	models.Tier1: {
		{5, 3}:  0,
		{6, 2}:  1,
		{10, 1}: 2,
	},
	models.Tier2: {
		{3, 10}: 0,
		{3, 8}:  1,
		{3, 6}:  2,
	},
}

// DetectStage classifies a set/rep pattern against the tier's fixed
// table. T3 accessories are always stage 0. The second return is false
// when the pattern matches nothing.
func DetectStage(tier models.Tier, setCount, repCount int) (int, bool) {
	if tier == models.Tier3 {
		return 0, true
	}
	patterns, ok := stagePatterns[tier]
	if !ok {
		return 0, false
	}
	stage, ok := patterns[[2]int{setCount, repCount}]
	return stage, ok
}

// ImportResult is the importer's output for one program day.
type ImportResult struct {
	Day       models.ProgramDay
	RoutineID string
	Exercises []models.ImportedExercise
	Warnings  []models.ImportWarning
}

// ImportRoutine infers starting stage and weight for each exercise of an
// authored routine assigned to a program day. The first exercise fills
// the day's T1 slot, the second its T2 slot, and the remainder import as
// T3 accessories. Warnings are advisory; they never block completion.
func ImportRoutine(r models.Routine, day models.DayAssignment) ImportResult {
	result := ImportResult{Day: day.Day, RoutineID: r.ID}

	for i, ex := range r.Exercises {
		tier := models.Tier3
		role := models.RoleAccessory
		switch i {
		case 0:
			tier = models.Tier1
			role = day.T1Role
		case 1:
			tier = models.Tier2
			role = day.T2Role
		}

		imported := importExercise(ex, tier, role)

		if imported.Stage == nil {
			result.Warnings = append(result.Warnings, models.ImportWarning{
				Kind:     models.WarnUnknownStage,
				Exercise: ex.Name,
				Day:      day.Day,
				Message:  fmt.Sprintf("%s: %s does not match any %s stage, pick a starting stage", ex.Name, imported.RepScheme, tier),
			})
		}
		if imported.Weight == 0 {
			result.Warnings = append(result.Warnings, models.ImportWarning{
				Kind:     models.WarnMissingWeight,
				Exercise: ex.Name,
				Day:      day.Day,
				Message:  fmt.Sprintf("%s has no working weight, set one before finishing", ex.Name),
			})
		}

		result.Exercises = append(result.Exercises, imported)
	}

	if len(r.Exercises) < 2 {
		result.Warnings = append(result.Warnings, models.ImportWarning{
			Kind:    models.WarnNoT2Exercise,
			Day:     day.Day,
			Message: fmt.Sprintf("day %s has no T2 exercise assigned", day.Day),
		})
	}

	return result
}

// ImportProgram imports one routine per program day and flags routines
// reused across days.
func ImportProgram(routines map[models.ProgramDay]models.Routine, schedule models.Schedule) []ImportResult {
	seen := map[string]models.ProgramDay{}
	results := make([]ImportResult, 0, len(models.ProgramDays))

	for _, day := range models.ProgramDays {
		r, ok := routines[day]
		if !ok {
			continue
		}
		assignment := schedule[day]
		result := ImportRoutine(r, assignment)

		if firstDay, dup := seen[r.ID]; dup {
			result.Warnings = append(result.Warnings, models.ImportWarning{
				Kind:    models.WarnRoutineReused,
				Day:     day,
				Message: fmt.Sprintf("routine %q is assigned to both %s and %s", r.Name, firstDay, day),
			})
		} else {
			seen[r.ID] = day
		}

		results = append(results, result)
	}
	return results
}

// Materialize converts a reviewed import into its terminal state: an
// exercise config plus a starting progression entry. Returns false when
// the exercise still lacks a stage (detection failed and the user has
// not supplied one).
func Materialize(ie models.ImportedExercise) (*models.ExerciseConfig, *models.ProgressionState, bool) {
	stage, ok := ie.EffectiveStage()
	if !ok {
		return nil, nil, false
	}

	role := ie.Role
	if ie.Tier == models.Tier3 {
		role = models.RoleAccessory
	}
	cfg := models.NewExerciseConfig(ie.TemplateID, ie.Name, role)

	state := models.NewProgressionState(cfg.KeyFor(ie.Tier), cfg.ID, ie.EffectiveWeight())
	state.Stage = stage
	return cfg, state, true
}

// importExercise runs the two independent detectors for one exercise.
func importExercise(ex models.RoutineExercise, tier models.Tier, role models.Role) models.ImportedExercise {
	working := workingRoutineSets(ex.Sets)

	setCount := len(working)
	repCount := 0
	if setCount > 0 {
		repCount = working[0].Reps
	}

	imported := models.ImportedExercise{
		Tier:       tier,
		Role:       role,
		TemplateID: ex.TemplateID,
		Name:       ex.Name,
		Weight:     modalRoutineWeight(working),
		SetCount:   setCount,
		RepScheme:  fmt.Sprintf("%dx%d", setCount, repCount),
	}

	if stage, ok := DetectStage(tier, setCount, repCount); ok {
		imported.Stage = &stage
		imported.StageConfidence = models.ConfidenceHigh
	}

	return imported
}

// workingRoutineSets filters a routine's sets down to normal working sets.
func workingRoutineSets(sets []models.RoutineSet) []models.RoutineSet {
	out := make([]models.RoutineSet, 0, len(sets))
	for _, s := range sets {
		if s.Type == models.SetNormal {
			out = append(out, s)
		}
	}
	return out
}

// modalRoutineWeight returns the most frequent working-set weight,
// earliest-seen winning ties, or 0 when no set carries one.
func modalRoutineWeight(sets []models.RoutineSet) float64 {
	counts := map[float64]int{}
	order := []float64{}
	for _, s := range sets {
		if s.Weight == 0 {
			continue
		}
		if counts[s.Weight] == 0 {
			order = append(order, s.Weight)
		}
		counts[s.Weight]++
	}

	best := 0.0
	bestCount := 0
	for _, w := range order {
		if counts[w] > bestCount {
			best = w
			bestCount = counts[w]
		}
	}
	return best
}
