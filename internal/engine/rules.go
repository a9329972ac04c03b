// ABOUTME: The tier progression state machine: success evaluation and transitions.
// ABOUTME: One rule set serves all three tiers, parameterized by scheme table row.
package engine

import (
	"strconv"

	"github.com/harperreed/lift/internal/models"
)

// deloadFactor is applied to the working weight when the final stage fails.
const deloadFactor = 0.85

// Outcome is the result of advancing a progression key by one attempt.
type Outcome struct {
	Type      models.ChangeType
	Success   bool
	NewWeight float64
	NewStage  int
	AMRAPReps *int // rep count of the attempt's final prescribed set, AMRAP schemes only
	Reason    string
}

// EvaluateSuccess checks an achieved-reps sequence against a scheme.
// Exactly the first Sets entries are considered; fewer entries than
// prescribed is a failure. Every considered entry must meet or exceed
// the target; the final one may exceed it via AMRAP. Extra entries
// beyond the prescription are ignored.
func EvaluateSuccess(reps []int, scheme StageScheme) bool {
	if len(reps) < scheme.Sets {
		return false
	}
	for i := 0; i < scheme.Sets; i++ {
		if reps[i] < scheme.Reps {
			return false
		}
	}
	return true
}

// Advance runs one attempt through the state machine. Stage is clamped
// to the tier's ladder before evaluation so replayed or imported state
// with a stale stage cannot panic the engine.
func Advance(tier models.Tier, stage int, weight float64, reps []int, mg models.MuscleGroup, unit models.Unit) Outcome {
	if stage < 0 {
		stage = 0
	}
	if final := FinalStage(tier); stage > final {
		stage = final
	}
	scheme, _ := SchemeFor(tier, stage)

	out := Outcome{NewWeight: weight, NewStage: stage}
	out.Success = EvaluateSuccess(reps, scheme)

	if scheme.AMRAP && len(reps) >= scheme.Sets {
		amrap := reps[scheme.Sets-1]
		out.AMRAPReps = &amrap
	}

	switch {
	case out.Success:
		out.Type = models.ChangeProgress
		out.NewWeight = weight + unit.Increment(mg)
		out.Reason = "all sets hit target, weight increased by " + formatWeight(unit.Increment(mg)) + " " + string(unit)

	case stage < FinalStage(tier):
		out.Type = models.ChangeStageChange
		out.NewStage = stage + 1
		next, _ := SchemeFor(tier, out.NewStage)
		out.Reason = "missed " + scheme.Label() + ", moving to " + next.Label() + " at the same weight"

	default:
		// Final stage failed: deload to 85% rounded to the unit's plate
		// step and restart the ladder. The deloaded weight becomes the
		// new base weight when applied.
		out.Type = models.ChangeDeload
		out.NewWeight = unit.Round(weight * deloadFactor)
		out.NewStage = 0
		out.Reason = "failed " + scheme.Label() + ", deloading to 85% and restarting at stage 0"
	}

	return out
}

// IsNewRecord reports whether an AMRAP result beats the stored best.
// The stored value is only displaced by a strictly greater count.
func IsNewRecord(amrap *int, best int) bool {
	return amrap != nil && *amrap > best
}

// formatWeight renders a weight without trailing zeros ("2.5", "5").
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
