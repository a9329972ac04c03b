// ABOUTME: Review workflow: persists the outcome of applying or discarding changes.
// ABOUTME: Shared by the CLI and MCP surfaces so both resolve changes identically.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lift/internal/engine"
	"github.com/harperreed/lift/internal/models"
)

// AnalyzeAndQueue runs the progression engine over one logged workout and
// persists the resulting changes as pending. A (key, workout) pair already
// queued is skipped, so re-analyzing a workout is a no-op for keys it
// already produced changes for. Returns the newly queued changes and any
// weight discrepancies the analysis surfaced.
func AnalyzeAndQueue(repo Repository, w models.LoggedWorkout, day models.DayAssignment, unit models.Unit, now time.Time) ([]*models.PendingChange, []models.DiscrepancyInfo, error) {
	exercises, err := repo.ListExercises()
	if err != nil {
		return nil, nil, fmt.Errorf("list exercises: %w", err)
	}
	configs := make(map[uuid.UUID]*models.ExerciseConfig, len(exercises))
	for _, e := range exercises {
		configs[e.ID] = e
	}

	states, err := repo.LoadStates()
	if err != nil {
		return nil, nil, fmt.Errorf("load states: %w", err)
	}

	analyses := engine.AnalyzeWorkout(w, day, configs, states)
	changes := engine.BuildPendingChanges(analyses, states, unit, now)

	pending := models.StatusPending
	existing, err := repo.ListPendingChanges(&pending)
	if err != nil {
		return nil, nil, fmt.Errorf("list pending: %w", err)
	}
	queued := map[string]bool{}
	for _, c := range existing {
		queued[string(c.Key)+"|"+c.WorkoutID] = true
	}

	// A workout that already landed in a key's history must not queue
	// again either; otherwise replaying it after apply would propose a
	// second progression computed from the advanced state.
	history, err := repo.LoadHistory()
	if err != nil {
		return nil, nil, fmt.Errorf("load history: %w", err)
	}
	for key, h := range history {
		for _, e := range h.Entries {
			queued[string(key)+"|"+e.WorkoutID] = true
		}
	}

	var created []*models.PendingChange
	for _, c := range changes {
		if queued[string(c.Key)+"|"+c.WorkoutID] {
			continue
		}
		if err := repo.CreatePendingChange(c); err != nil {
			return nil, nil, fmt.Errorf("queue change: %w", err)
		}
		created = append(created, c)
	}

	return created, engine.DeduplicateDiscrepancies(engine.Discrepancies(analyses)), nil
}

// ApplyPendingChange applies one reviewed change: marks the change
// applied, updates the key's progression state, and records the history
// entry. A key with no stored state is seeded from the change's old
// weight first, so changes proposed for brand-new exercises land.
func ApplyPendingChange(repo Repository, c *models.PendingChange) error {
	// Claim the change before touching state. Both backends only
	// resolve changes still pending, so an already-applied or
	// discarded change is rejected here with state untouched.
	if err := repo.ResolvePendingChange(c.ID.String(), models.StatusApplied); err != nil {
		return fmt.Errorf("mark applied: %w", err)
	}

	states, err := repo.LoadStates()
	if err != nil {
		return fmt.Errorf("load states: %w", err)
	}

	if _, ok := states[c.Key]; !ok {
		seed := models.NewProgressionState(c.Key, c.ExerciseID, c.OldWeight)
		seed.Stage = c.OldStage
		states[c.Key] = seed
	}

	updated := engine.ApplyChange(states, c)
	if err := repo.SaveState(updated[c.Key]); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	h := &models.ExerciseHistory{
		ExerciseName: c.ExerciseName,
		Tier:         c.Tier,
	}
	if cfg, err := repo.GetExercise(c.ExerciseID.String()); err == nil {
		h.ExerciseName = cfg.Name
		h.Role = cfg.Role
	}
	if err := repo.AppendHistory(c.Key, h, engine.HistoryEntryFromChange(c)); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// DiscardPendingChange marks one reviewed change discarded without
// touching progression state.
func DiscardPendingChange(repo Repository, idOrPrefix string) error {
	return repo.ResolvePendingChange(idOrPrefix, models.StatusDiscarded)
}

// ApplyAllPending applies every pending change oldest workout first and
// returns how many were applied.
func ApplyAllPending(repo Repository) (int, error) {
	pending := models.StatusPending
	changes, err := repo.ListPendingChanges(&pending)
	if err != nil {
		return 0, fmt.Errorf("list pending: %w", err)
	}

	applied := 0
	for _, c := range changes {
		if err := ApplyPendingChange(repo, c); err != nil {
			return applied, err
		}
		applied++
	}
	return applied, nil
}
