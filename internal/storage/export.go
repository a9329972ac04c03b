// ABOUTME: Export and import functionality for progression data.
// ABOUTME: Supports JSON and YAML export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/lift/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for progression data.
// Only pending changes travel; applied changes already live in history.
type ExportData struct {
	Version    string                   `json:"version" yaml:"version"`
	ExportedAt time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool       string                   `json:"tool" yaml:"tool"`
	Exercises  []*models.ExerciseConfig `json:"exercises" yaml:"exercises"`
	Schedule   []models.DayAssignment   `json:"schedule" yaml:"schedule"`
	States     models.StateMap          `json:"states" yaml:"states"`
	Changes    []*models.PendingChange  `json:"changes" yaml:"changes"`
	History    models.HistoryMap        `json:"history" yaml:"history"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	exercises, err := d.ListExercises()
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	schedule, err := d.GetSchedule()
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	days := make([]models.DayAssignment, 0, len(models.ProgramDays))
	for _, day := range models.ProgramDays {
		days = append(days, schedule[day])
	}

	states, err := d.LoadStates()
	if err != nil {
		return nil, fmt.Errorf("load states: %w", err)
	}

	pending := models.StatusPending
	changes, err := d.ListPendingChanges(&pending)
	if err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}

	history, err := d.LoadHistory()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "lift",
		Exercises:  exercises,
		Schedule:   days,
		States:     states,
		Changes:    changes,
		History:    history,
	}, nil
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	for _, e := range data.Exercises {
		if err := d.CreateExercise(e); err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
	}

	for _, a := range data.Schedule {
		if err := d.SaveDayAssignment(a); err != nil {
			return fmt.Errorf("import schedule: %w", err)
		}
	}

	for _, s := range data.States {
		if err := d.SaveState(s); err != nil {
			return fmt.Errorf("import state: %w", err)
		}
	}

	for _, c := range data.Changes {
		if err := d.CreatePendingChange(c); err != nil {
			return fmt.Errorf("import change: %w", err)
		}
	}

	for key, h := range data.History {
		for _, e := range h.Entries {
			if err := d.AppendHistory(key, h, e); err != nil {
				return fmt.Errorf("import history: %w", err)
			}
		}
	}

	return nil
}

// ExportJSON exports all data as JSON.
func ExportJSON(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML with states and history flattened
// into key-sorted lists for stable, readable diffs.
func ExportYAML(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string                   `yaml:"version"`
		ExportedAt string                   `yaml:"exported_at"`
		Tool       string                   `yaml:"tool"`
		Exercises  []*models.ExerciseConfig `yaml:"exercises"`
		Schedule   []models.DayAssignment   `yaml:"schedule"`
		States     []yamlState              `yaml:"states"`
		Changes    []*models.PendingChange  `yaml:"changes,omitempty"`
		History    []yamlHistory            `yaml:"history"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Exercises:  data.Exercises,
		Schedule:   data.Schedule,
		Changes:    data.Changes,
	}

	for _, key := range sortedKeys(data.States) {
		s := data.States[key]
		ys := yamlState{
			Key:        string(key),
			Weight:     s.Weight,
			Stage:      s.Stage,
			BaseWeight: s.BaseWeight,
			BestAMRAP:  s.BestAMRAP,
		}
		if !s.LastWorkoutAt.IsZero() {
			ys.LastWorkout = s.LastWorkoutAt.Format("2006-01-02")
		}
		yamlData.States = append(yamlData.States, ys)
	}

	for _, key := range sortedKeys(data.History) {
		h := data.History[key]
		yh := yamlHistory{
			Key:      string(key),
			Exercise: h.ExerciseName,
			Tier:     string(h.Tier),
		}
		for _, e := range h.Entries {
			ye := yamlHistoryEntry{
				Date:    e.Date.Format("2006-01-02"),
				Weight:  e.Weight,
				Stage:   e.Stage,
				Success: e.Success,
				Type:    string(e.Type),
			}
			if e.AMRAPReps != nil {
				ye.AMRAPReps = *e.AMRAPReps
			}
			yh.Entries = append(yh.Entries, ye)
		}
		yamlData.History = append(yamlData.History, yh)
	}

	return yaml.Marshal(yamlData)
}

type yamlState struct {
	Key         string  `yaml:"key"`
	Weight      float64 `yaml:"weight"`
	Stage       int     `yaml:"stage"`
	BaseWeight  float64 `yaml:"base_weight"`
	BestAMRAP   int     `yaml:"best_amrap,omitempty"`
	LastWorkout string  `yaml:"last_workout,omitempty"`
}

type yamlHistory struct {
	Key      string             `yaml:"key"`
	Exercise string             `yaml:"exercise"`
	Tier     string             `yaml:"tier"`
	Entries  []yamlHistoryEntry `yaml:"entries"`
}

type yamlHistoryEntry struct {
	Date      string  `yaml:"date"`
	Weight    float64 `yaml:"weight"`
	Stage     int     `yaml:"stage"`
	Success   bool    `yaml:"success"`
	AMRAPReps int     `yaml:"amrap_reps,omitempty"`
	Type      string  `yaml:"type"`
}

// ImportJSON imports data from JSON bytes.
func ImportJSON(repo Repository, data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return repo.ImportData(&exportData)
}

func sortedKeys[V any](m map[models.ProgressionKey]V) []models.ProgressionKey {
	keys := make([]models.ProgressionKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
