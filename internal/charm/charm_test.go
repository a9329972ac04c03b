// ABOUTME: Unit tests for Charm-based progression storage.
// ABOUTME: Tests key formats for type-prefixed records.
package charm

import (
	"testing"

	"github.com/harperreed/lift/internal/models"
)

func TestExerciseKeyFormat(t *testing.T) {
	e := models.NewExerciseConfig("tmpl-squat", "Back Squat", models.RoleSquat)
	key := ExercisePrefix + e.ID.String()

	if key[:9] != "exercise:" {
		t.Errorf("Expected key to start with 'exercise:', got: %s", key[:9])
	}
}

func TestRecordPrefixes(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		expected string
	}{
		{"Exercise", ExercisePrefix, "exercise:"},
		{"Schedule", SchedulePrefix, "schedule:"},
		{"State", StatePrefix, "state:"},
		{"Change", ChangePrefix, "change:"},
		{"History", HistoryPrefix, "history:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prefix != tt.expected {
				t.Errorf("Expected %s = %q, got %q", tt.name, tt.expected, tt.prefix)
			}
		})
	}
}

func TestStateKeyUsesProgressionKey(t *testing.T) {
	key := StatePrefix + string(models.KeyForRole(models.RoleSquat, models.Tier1))
	if key != "state:squat-T1" {
		t.Errorf("Expected state:squat-T1, got %s", key)
	}
}

func TestExtractID(t *testing.T) {
	got := extractID("history:squat-T1", HistoryPrefix)
	if got != "squat-T1" {
		t.Errorf("extractID = %q, want squat-T1", got)
	}
}
