// ABOUTME: Tests for rep extraction and working-weight resolution.
// ABOUTME: Covers warm-up exclusion, absent rep counts, and modal weights.
package engine

import (
	"reflect"
	"testing"

	"github.com/harperreed/lift/internal/models"
)

func intPtr(n int) *int { return &n }

func TestExtractReps(t *testing.T) {
	sets := []models.LoggedSet{
		{Type: models.SetWarmup, Weight: 60, Reps: intPtr(5)},
		{Type: models.SetWarmup, Weight: 80, Reps: intPtr(3)},
		{Type: models.SetNormal, Weight: 100, Reps: intPtr(3)},
		{Type: models.SetNormal, Weight: 100, Reps: nil},
		{Type: models.SetFailure, Weight: 100, Reps: intPtr(1)},
		{Type: models.SetDropset, Weight: 80, Reps: intPtr(8)},
	}

	got := ExtractReps(sets)
	want := []int{3, 0, 1, 8}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractReps = %v, want %v", got, want)
	}
}

func TestExtractRepsEmpty(t *testing.T) {
	got := ExtractReps(nil)
	if len(got) != 0 {
		t.Errorf("expected empty output, got %v", got)
	}
}

func TestExtractRepsAllWarmups(t *testing.T) {
	sets := []models.LoggedSet{
		{Type: models.SetWarmup, Reps: intPtr(5)},
		{Type: models.SetWarmup, Reps: intPtr(3)},
	}
	if got := ExtractReps(sets); len(got) != 0 {
		t.Errorf("expected empty output, got %v", got)
	}
}

func TestWorkingWeight(t *testing.T) {
	sets := []models.LoggedSet{
		{Type: models.SetWarmup, Weight: 60, Reps: intPtr(5)},
		{Type: models.SetNormal, Weight: 100, Reps: intPtr(3)},
		{Type: models.SetNormal, Weight: 100, Reps: intPtr(3)},
		{Type: models.SetNormal, Weight: 102.5, Reps: intPtr(3)},
	}
	if got := WorkingWeight(sets); got != 100 {
		t.Errorf("WorkingWeight = %v, want 100", got)
	}
}

func TestWorkingWeightTieKeepsEarliest(t *testing.T) {
	sets := []models.LoggedSet{
		{Type: models.SetNormal, Weight: 100, Reps: intPtr(3)},
		{Type: models.SetNormal, Weight: 102.5, Reps: intPtr(3)},
	}
	if got := WorkingWeight(sets); got != 100 {
		t.Errorf("WorkingWeight = %v, want 100", got)
	}
}

func TestWorkingWeightNone(t *testing.T) {
	if got := WorkingWeight(nil); got != 0 {
		t.Errorf("WorkingWeight = %v, want 0", got)
	}
}
