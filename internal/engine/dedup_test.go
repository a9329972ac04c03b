// ABOUTME: Tests for keep-latest-by-date deduplication.
// ABOUTME: Verifies order independence under input permutations.
package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lift/internal/models"
)

func TestDeduplicateDiscrepancies(t *testing.T) {
	exID := uuid.New()
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	jan15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	reports := []models.DiscrepancyInfo{
		{ExerciseID: exID, Tier: models.Tier1, LoggedWeight: 100, WorkoutDate: jan10},
		{ExerciseID: exID, Tier: models.Tier1, LoggedWeight: 102.5, WorkoutDate: jan15},
	}

	got := DeduplicateDiscrepancies(reports)
	if len(got) != 1 {
		t.Fatalf("got %d reports, want 1", len(got))
	}
	if !got[0].WorkoutDate.Equal(jan15) {
		t.Errorf("kept %v, want the Jan 15 entry", got[0].WorkoutDate)
	}
}

func TestDeduplicateDiscrepanciesKeysByTier(t *testing.T) {
	exID := uuid.New()
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	reports := []models.DiscrepancyInfo{
		{ExerciseID: exID, Tier: models.Tier1, WorkoutDate: date},
		{ExerciseID: exID, Tier: models.Tier2, WorkoutDate: date},
	}
	if got := DeduplicateDiscrepancies(reports); len(got) != 2 {
		t.Errorf("same exercise at different tiers must both survive, got %d", len(got))
	}
}

func TestDeduplicatePendingChangesOrderIndependent(t *testing.T) {
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	jan15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	a := &models.PendingChange{Key: "squat-T1", NewWeight: 105, WorkoutDate: jan10}
	b := &models.PendingChange{Key: "squat-T1", NewWeight: 110, WorkoutDate: jan15}
	c := &models.PendingChange{Key: "bench-T2", NewWeight: 62.5, WorkoutDate: jan10}

	permutations := [][]*models.PendingChange{
		{a, b, c},
		{c, b, a},
		{b, c, a},
		{c, a, b},
	}

	var first []*models.PendingChange
	for i, perm := range permutations {
		got := DeduplicatePendingChanges(perm)
		if len(got) != 2 {
			t.Fatalf("perm %d: got %d changes, want 2", i, len(got))
		}
		if first == nil {
			first = got
			continue
		}
		for j := range got {
			if got[j].Key != first[j].Key || got[j].NewWeight != first[j].NewWeight {
				t.Errorf("perm %d: result differs at %d: %s/%v vs %s/%v",
					i, j, got[j].Key, got[j].NewWeight, first[j].Key, first[j].NewWeight)
			}
		}
	}

	for _, got := range [][]*models.PendingChange{DeduplicatePendingChanges([]*models.PendingChange{a, b, c})} {
		for _, ch := range got {
			if ch.Key == "squat-T1" && ch.NewWeight != 110 {
				t.Errorf("squat-T1 kept %v, want the Jan 15 proposal (110)", ch.NewWeight)
			}
		}
	}
}

func TestDedupExactDateTieKeepsFirst(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	a := &models.PendingChange{Key: "squat-T1", NewWeight: 105, WorkoutDate: date}
	b := &models.PendingChange{Key: "squat-T1", NewWeight: 999, WorkoutDate: date}

	got := DeduplicatePendingChanges([]*models.PendingChange{a, b})
	if len(got) != 1 || got[0].NewWeight != 105 {
		t.Errorf("tie must keep the first-encountered entry, got %v", got[0].NewWeight)
	}
}
