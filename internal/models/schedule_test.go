// ABOUTME: Tests for the day schedule and tier assignments.
// ABOUTME: Validates the default rotation covers every main role twice.
package models

import "testing"

func TestDefaultScheduleCoversAllRoles(t *testing.T) {
	s := DefaultSchedule()
	t1Seen := map[Role]bool{}
	t2Seen := map[Role]bool{}

	for _, day := range ProgramDays {
		a, ok := s[day]
		if !ok {
			t.Fatalf("missing assignment for day %s", day)
		}
		t1Seen[a.T1Role] = true
		t2Seen[a.T2Role] = true
	}

	for _, r := range MainRoles {
		if !t1Seen[r] {
			t.Errorf("role %s never assigned T1", r)
		}
		if !t2Seen[r] {
			t.Errorf("role %s never assigned T2", r)
		}
	}
}

func TestTierFor(t *testing.T) {
	a := DayAssignment{Day: DayA1, T1Role: RoleSquat, T2Role: RoleBench}

	tier, ok := a.TierFor(RoleSquat)
	if !ok || tier != Tier1 {
		t.Errorf("squat tier = %s, ok = %v, want T1", tier, ok)
	}

	tier, ok = a.TierFor(RoleBench)
	if !ok || tier != Tier2 {
		t.Errorf("bench tier = %s, ok = %v, want T2", tier, ok)
	}

	if _, ok := a.TierFor(RoleDeadlift); ok {
		t.Error("deadlift should be unassigned on A1")
	}
}
