// ABOUTME: Routine import models: source routines, detected exercises, warnings.
// ABOUTME: ImportedExercise is transient; it materializes into config plus state.
package models

// RoutineSet is one configured set within an authored routine.
type RoutineSet struct {
	Type   SetType `json:"type"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// RoutineExercise is one exercise of a previously authored routine.
type RoutineExercise struct {
	TemplateID string       `json:"template_id"`
	Name       string       `json:"name"`
	Sets       []RoutineSet `json:"sets"`
}

// Routine is a previously authored program definition used to seed
// progression state during guided setup.
type Routine struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Exercises []RoutineExercise `json:"exercises"`
}

// StageConfidence tags how a starting stage was determined.
type StageConfidence string

const (
	// ConfidenceHigh marks an exact set/rep pattern match.
	ConfidenceHigh StageConfidence = "high"
	// ConfidenceManual marks a stage supplied by the user after detection failed.
	ConfidenceManual StageConfidence = "manual"
)

// ImportedExercise is the importer's per-exercise result. Stage is nil
// when the set/rep pattern matched no known scheme; the caller must ask
// the user rather than default to stage 0.
type ImportedExercise struct {
	Tier            Tier            `json:"tier"`
	Role            Role            `json:"role"`
	TemplateID      string          `json:"template_id"`
	Name            string          `json:"name"`
	Weight          float64         `json:"weight"`
	Stage           *int            `json:"stage,omitempty"`
	StageConfidence StageConfidence `json:"stage_confidence,omitempty"`
	SetCount        int             `json:"set_count"`
	RepScheme       string          `json:"rep_scheme"` // e.g. "5x3"
	OverrideWeight  *float64        `json:"override_weight,omitempty"`
	OverrideStage   *int            `json:"override_stage,omitempty"`
}

// EffectiveWeight returns the user override when present.
func (ie *ImportedExercise) EffectiveWeight() float64 {
	if ie.OverrideWeight != nil {
		return *ie.OverrideWeight
	}
	return ie.Weight
}

// EffectiveStage returns the stage to materialize, or false when neither
// detection nor the user produced one.
func (ie *ImportedExercise) EffectiveStage() (int, bool) {
	if ie.OverrideStage != nil {
		return *ie.OverrideStage, true
	}
	if ie.Stage != nil {
		return *ie.Stage, true
	}
	return 0, false
}

// ImportWarningKind classifies importer warnings.
type ImportWarningKind string

const (
	WarnNoT2Exercise  ImportWarningKind = "no_t2_exercise"
	WarnUnknownStage  ImportWarningKind = "unknown_stage"
	WarnRoutineReused ImportWarningKind = "routine_reused"
	WarnMissingWeight ImportWarningKind = "missing_weight"
)

// ImportWarning is an advisory annotation attached to an import result.
// Warnings never block import completion.
type ImportWarning struct {
	Kind     ImportWarningKind `json:"kind"`
	Exercise string            `json:"exercise,omitempty"`
	Day      ProgramDay        `json:"day,omitempty"`
	Message  string            `json:"message"`
}
