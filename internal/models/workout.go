// ABOUTME: Logged workout models: workouts, exercise entries, and sets.
// ABOUTME: These mirror already-parsed log records delivered by external retrieval.
package models

import (
	"sort"
	"time"
)

// SetType classifies a logged set.
type SetType string

const (
	SetWarmup  SetType = "warmup"
	SetNormal  SetType = "normal"
	SetFailure SetType = "failure"
	SetDropset SetType = "dropset"
)

// LoggedSet is a single set from an external exercise log. Reps is nil
// when the log recorded the set without a repetition count.
type LoggedSet struct {
	Type   SetType `json:"type"`
	Weight float64 `json:"weight"`
	Reps   *int    `json:"reps,omitempty"`
}

// LoggedExercise is one exercise entry within a logged workout, carrying
// the external template identifier used for matching.
type LoggedExercise struct {
	TemplateID string      `json:"template_id"`
	Name       string      `json:"name,omitempty"`
	Sets       []LoggedSet `json:"sets"`
}

// LoggedWorkout is a complete logged session. Day optionally names the
// program day ("A1".."B2") the session was performed as.
type LoggedWorkout struct {
	ID        string           `json:"id"`
	StartedAt time.Time        `json:"started_at"`
	Day       string           `json:"day,omitempty"`
	Exercises []LoggedExercise `json:"exercises"`
}

// SortWorkoutsByDate returns workouts ordered oldest first. Batches must
// be processed chronologically so later analysis sees prior weight.
func SortWorkoutsByDate(workouts []LoggedWorkout) []LoggedWorkout {
	out := make([]LoggedWorkout, len(workouts))
	copy(out, workouts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}
