// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Covers workout parsing, import overrides, and formatting helpers.
package main

import (
	"testing"

	"github.com/harperreed/lift/internal/models"
)

func TestParseWorkoutsSingle(t *testing.T) {
	data := []byte(`{
		"id": "w-1",
		"day": "A1",
		"started_at": "2024-01-10T09:00:00Z",
		"exercises": [
			{"template_id": "sq", "name": "Back Squat", "sets": [{"type": "normal", "weight": 100, "reps": 3}]}
		]
	}`)

	workouts, err := parseWorkouts(data)
	if err != nil {
		t.Fatalf("parseWorkouts failed: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("Expected 1 workout, got %d", len(workouts))
	}
	if workouts[0].ID != "w-1" || workouts[0].Day != "A1" {
		t.Errorf("workout = %+v, want w-1 on A1", workouts[0])
	}
	if len(workouts[0].Exercises) != 1 || len(workouts[0].Exercises[0].Sets) != 1 {
		t.Errorf("exercises not parsed: %+v", workouts[0].Exercises)
	}
}

func TestParseWorkoutsArray(t *testing.T) {
	data := []byte(`[
		{"id": "w-2", "day": "B1", "exercises": []},
		{"id": "w-1", "day": "A1", "exercises": []}
	]`)

	workouts, err := parseWorkouts(data)
	if err != nil {
		t.Fatalf("parseWorkouts failed: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("Expected 2 workouts, got %d", len(workouts))
	}
}

func TestParseWorkoutsInvalid(t *testing.T) {
	if _, err := parseWorkouts([]byte(`not json`)); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestSplitOverride(t *testing.T) {
	tests := []struct {
		input   string
		name    string
		value   string
		wantErr bool
	}{
		{input: "Back Squat=0", name: "Back Squat", value: "0"},
		{input: "Leg Press=2", name: "Leg Press", value: "2"},
		{input: "a=b=c", name: "a=b", value: "c"},
		{input: "noequals", wantErr: true},
		{input: "=5", wantErr: true},
		{input: "name=", wantErr: true},
	}

	for _, tt := range tests {
		name, value, err := splitOverride(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("splitOverride(%q) expected error, got nil", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("splitOverride(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if name != tt.name || value != tt.value {
			t.Errorf("splitOverride(%q) = (%q, %q), want (%q, %q)", tt.input, name, value, tt.name, tt.value)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	exercises := []models.ImportedExercise{
		{Name: "Back Squat", Tier: models.Tier1, Weight: 100},
		{Name: "Leg Press", Tier: models.Tier3, Weight: 80},
	}

	err := applyOverrides(exercises, []string{"Leg Press=0"}, []string{"Back Squat=102.5"})
	if err != nil {
		t.Fatalf("applyOverrides failed: %v", err)
	}

	if exercises[1].OverrideStage == nil || *exercises[1].OverrideStage != 0 {
		t.Errorf("Leg Press stage override not applied: %+v", exercises[1])
	}
	if exercises[1].StageConfidence != models.ConfidenceManual {
		t.Errorf("StageConfidence = %v, want manual", exercises[1].StageConfidence)
	}
	if exercises[0].OverrideWeight == nil || *exercises[0].OverrideWeight != 102.5 {
		t.Errorf("Back Squat weight override not applied: %+v", exercises[0])
	}
}

func TestApplyOverridesUnknownName(t *testing.T) {
	exercises := []models.ImportedExercise{{Name: "Back Squat"}}

	if err := applyOverrides(exercises, []string{"Front Squat=0"}, nil); err == nil {
		t.Error("Expected error for unknown exercise name")
	}
	if err := applyOverrides(exercises, nil, []string{"Back Squat=abc"}); err == nil {
		t.Error("Expected error for non-numeric weight")
	}
}

func TestTierForKey(t *testing.T) {
	tests := []struct {
		key  models.ProgressionKey
		want models.Tier
	}{
		{key: "squat-T1", want: models.Tier1},
		{key: "bench-T2", want: models.Tier2},
		{key: "deadlift-T1", want: models.Tier1},
		{key: "1b4e28ba-2fa1-11d2-883f-0016d3cca427", want: models.Tier3},
	}

	for _, tt := range tests {
		if got := tierForKey(tt.key); got != tt.want {
			t.Errorf("tierForKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{input: "hello", maxLen: 10, want: "hello"},
		{input: "hello", maxLen: 5, want: "hello"},
		{input: "hello world this is long", maxLen: 10, want: "hello w..."},
		{input: "", maxLen: 10, want: ""},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("abc", 6); got != "abc   " {
		t.Errorf("padRight = %q, want %q", got, "abc   ")
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight = %q, want %q", got, "abcdef")
	}
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"analyze", "changes", "apply", "discard", "state", "history", "import", "exercise", "schedule", "export", "restore", "migrate", "mcp"} {
		if !names[want] {
			t.Errorf("command %q not registered", want)
		}
	}
}
