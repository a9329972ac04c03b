// ABOUTME: Tests for exercise config, roles, and progression keys.
// ABOUTME: Validates key construction for main lifts versus accessories.
package models

import (
	"testing"
)

func TestNewExerciseConfig(t *testing.T) {
	e := NewExerciseConfig("tmpl-123", "Back Squat", RoleSquat)

	if e.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if e.TemplateID != "tmpl-123" {
		t.Errorf("TemplateID = %s, want tmpl-123", e.TemplateID)
	}
	if e.MuscleGroup != LowerBody {
		t.Errorf("MuscleGroup = %s, want lower", e.MuscleGroup)
	}
}

func TestMuscleGroupForRole(t *testing.T) {
	tests := []struct {
		role Role
		want MuscleGroup
	}{
		{RoleSquat, LowerBody},
		{RoleDeadlift, LowerBody},
		{RoleBench, UpperBody},
		{RoleOHP, UpperBody},
	}
	for _, tt := range tests {
		if got := MuscleGroupForRole(tt.role); got != tt.want {
			t.Errorf("MuscleGroupForRole(%s) = %s, want %s", tt.role, got, tt.want)
		}
	}
}

func TestKeyForRole(t *testing.T) {
	key := KeyForRole(RoleSquat, Tier1)
	if key != "squat-T1" {
		t.Errorf("key = %s, want squat-T1", key)
	}
}

func TestKeyForMainVsAccessory(t *testing.T) {
	main := NewExerciseConfig("t1", "Bench Press", RoleBench)
	if main.KeyFor(Tier2) != "bench-T2" {
		t.Errorf("main key = %s, want bench-T2", main.KeyFor(Tier2))
	}

	acc := NewExerciseConfig("t2", "Lat Pulldown", RoleAccessory).WithMuscleGroup(UpperBody)
	if acc.KeyFor(Tier3) != ProgressionKey(acc.ID.String()) {
		t.Errorf("accessory key = %s, want exercise id", acc.KeyFor(Tier3))
	}
}

func TestRoleIsMain(t *testing.T) {
	if !RoleSquat.IsMain() {
		t.Error("squat should be a main role")
	}
	if RoleAccessory.IsMain() {
		t.Error("accessory should not be a main role")
	}
}
