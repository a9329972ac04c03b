// ABOUTME: ExerciseConfig model plus Role, Tier, and MuscleGroup enums.
// ABOUTME: Defines progression keys: role-tier for main lifts, exercise id for accessories.
package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Role classifies an exercise within the program.
type Role string

const (
	RoleSquat    Role = "squat"
	RoleBench    Role = "bench"
	RoleDeadlift Role = "deadlift"
	RoleOHP      Role = "ohp"

	// RoleAccessory marks a T3 accessory lift outside the four main slots.
	RoleAccessory Role = "accessory"
)

// MainRoles lists the four main-lift roles.
var MainRoles = []Role{RoleSquat, RoleBench, RoleDeadlift, RoleOHP}

// IsValidRole checks if a string is a valid role.
func IsValidRole(s string) bool {
	if s == string(RoleAccessory) {
		return true
	}
	for _, r := range MainRoles {
		if string(r) == s {
			return true
		}
	}
	return false
}

// IsMain reports whether the role is one of the four main lifts.
func (r Role) IsMain() bool {
	return r != RoleAccessory && r != ""
}

// Tier is a lift's role-for-the-day classification. It determines the
// rep scheme and stage ladder applied to the lift.
type Tier string

const (
	Tier1 Tier = "T1"
	Tier2 Tier = "T2"
	Tier3 Tier = "T3"
)

// IsValidTier checks if a string is a valid tier.
func IsValidTier(s string) bool {
	return s == string(Tier1) || s == string(Tier2) || s == string(Tier3)
}

// MuscleGroup selects the weight increment applied on a successful lift.
type MuscleGroup string

const (
	LowerBody MuscleGroup = "lower"
	UpperBody MuscleGroup = "upper"
)

// MuscleGroupForRole returns the increment classification for a main-lift
// role. Accessories carry their own classification on the config.
func MuscleGroupForRole(r Role) MuscleGroup {
	switch r {
	case RoleSquat, RoleDeadlift:
		return LowerBody
	default:
		return UpperBody
	}
}

// ProgressionKey is the identity under which progression and history
// state is stored. Main lifts use role-tier composites ("squat-T1") so
// the two tiers of a role stay structurally independent; accessories
// use their exercise id directly.
type ProgressionKey string

// KeyForRole builds the progression key for a main lift at a tier.
func KeyForRole(role Role, tier Tier) ProgressionKey {
	return ProgressionKey(fmt.Sprintf("%s-%s", role, tier))
}

// KeyForExercise builds the progression key for a T3 accessory.
func KeyForExercise(exerciseID uuid.UUID) ProgressionKey {
	return ProgressionKey(exerciseID.String())
}

// ExerciseConfig identifies a configured exercise within the program.
type ExerciseConfig struct {
	ID          uuid.UUID   `json:"id" yaml:"id"`
	TemplateID  string      `json:"template_id" yaml:"template_id"` // external template identifier in logged data
	Name        string      `json:"name" yaml:"name"`
	Role        Role        `json:"role" yaml:"role"`
	MuscleGroup MuscleGroup `json:"muscle_group" yaml:"muscle_group"`
}

// NewExerciseConfig creates an ExerciseConfig with a generated UUID.
// Main-lift roles derive their muscle group from the role.
func NewExerciseConfig(templateID, name string, role Role) *ExerciseConfig {
	mg := MuscleGroupForRole(role)
	return &ExerciseConfig{
		ID:          uuid.New(),
		TemplateID:  templateID,
		Name:        name,
		Role:        role,
		MuscleGroup: mg,
	}
}

// WithMuscleGroup overrides the muscle-group classification. Intended
// for accessories, where the role carries no classification.
func (e *ExerciseConfig) WithMuscleGroup(mg MuscleGroup) *ExerciseConfig {
	e.MuscleGroup = mg
	return e
}

// KeyFor returns the progression key for this exercise at the given tier.
func (e *ExerciseConfig) KeyFor(tier Tier) ProgressionKey {
	if e.Role.IsMain() && tier != Tier3 {
		return KeyForRole(e.Role, tier)
	}
	return KeyForExercise(e.ID)
}
