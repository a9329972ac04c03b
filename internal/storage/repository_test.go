// ABOUTME: Tests for Repository interface implementations.
// ABOUTME: Verifies CRUD operations for progression data using SQLite.
package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lift/internal/models"
)

func TestCreateAndGetExercise(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := models.NewExerciseConfig("tmpl-squat", "Back Squat", models.RoleSquat)
	if err := db.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	// Retrieve by full ID
	got, err := db.GetExercise(e.ID.String())
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}

	if got.ID != e.ID {
		t.Errorf("ID mismatch: got %v, want %v", got.ID, e.ID)
	}
	if got.Role != models.RoleSquat {
		t.Errorf("Role mismatch: got %v, want squat", got.Role)
	}
	if got.MuscleGroup != models.LowerBody {
		t.Errorf("MuscleGroup mismatch: got %v, want lower", got.MuscleGroup)
	}
}

func TestGetExerciseByPrefix(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := models.NewExerciseConfig("tmpl-bench", "Bench Press", models.RoleBench)
	if err := db.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	// Retrieve by 8-char prefix
	prefix := e.ID.String()[:8]
	got, err := db.GetExercise(prefix)
	if err != nil {
		t.Fatalf("GetExercise by prefix failed: %v", err)
	}

	if got.ID != e.ID {
		t.Errorf("ID mismatch: got %v, want %v", got.ID, e.ID)
	}
}

func TestGetExerciseByTemplateID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := models.NewExerciseConfig("tmpl-dead", "Deadlift", models.RoleDeadlift)
	if err := db.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	got, err := db.GetExerciseByTemplateID("tmpl-dead")
	if err != nil {
		t.Fatalf("GetExerciseByTemplateID failed: %v", err)
	}
	if got.ID != e.ID {
		t.Errorf("ID mismatch: got %v, want %v", got.ID, e.ID)
	}

	if _, err := db.GetExerciseByTemplateID("tmpl-missing"); err == nil {
		t.Error("Expected error for unknown template ID")
	}
}

func TestListExercisesMainLiftsFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	curl := models.NewExerciseConfig("tmpl-curl", "Arm Curl", models.RoleAccessory).WithMuscleGroup(models.UpperBody)
	squat := models.NewExerciseConfig("tmpl-squat", "Back Squat", models.RoleSquat)
	for _, e := range []*models.ExerciseConfig{curl, squat} {
		if err := db.CreateExercise(e); err != nil {
			t.Fatalf("CreateExercise failed: %v", err)
		}
	}

	all, err := db.ListExercises()
	if err != nil {
		t.Fatalf("ListExercises failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 exercises, got %d", len(all))
	}
	if all[0].Role != models.RoleSquat {
		t.Errorf("Expected main lift first, got %v", all[0].Role)
	}
}

func TestDeleteExercise(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := models.NewExerciseConfig("tmpl-ohp", "Overhead Press", models.RoleOHP)
	if err := db.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	if err := db.DeleteExercise(e.ID.String()[:8]); err != nil {
		t.Fatalf("DeleteExercise failed: %v", err)
	}
	if _, err := db.GetExercise(e.ID.String()); err == nil {
		t.Error("Expected error for deleted exercise")
	}
	if err := db.DeleteExercise(e.ID.String()); err == nil {
		t.Error("Expected error deleting nonexistent exercise")
	}
}

func TestScheduleDefaultsAndOverrides(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	// Unsaved schedule falls back to the default rotation
	schedule, err := db.GetSchedule()
	if err != nil {
		t.Fatalf("GetSchedule failed: %v", err)
	}
	if schedule[models.DayA1].T1Role != models.RoleSquat {
		t.Errorf("A1 T1 = %v, want squat", schedule[models.DayA1].T1Role)
	}

	// Override one day
	err = db.SaveDayAssignment(models.DayAssignment{
		Day: models.DayA1, T1Role: models.RoleDeadlift, T2Role: models.RoleOHP,
	})
	if err != nil {
		t.Fatalf("SaveDayAssignment failed: %v", err)
	}

	schedule, err = db.GetSchedule()
	if err != nil {
		t.Fatalf("GetSchedule failed: %v", err)
	}
	if schedule[models.DayA1].T1Role != models.RoleDeadlift {
		t.Errorf("A1 T1 = %v, want deadlift after override", schedule[models.DayA1].T1Role)
	}
	if schedule[models.DayB1].T1Role != models.RoleOHP {
		t.Errorf("B1 must keep its default, got %v", schedule[models.DayB1].T1Role)
	}
}

func TestSaveAndLoadStates(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	exID := uuid.New()
	s := models.NewProgressionState("squat-T1", exID, 100)
	s.Stage = 1
	s.LastWorkoutID = "w-1"
	s.LastWorkoutAt = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	s.BestAMRAP = 5

	if err := db.SaveState(s); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	got, err := db.GetState("squat-T1")
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if got.Weight != 100 || got.Stage != 1 || got.BaseWeight != 100 {
		t.Errorf("state = %+v, want weight 100, stage 1, base 100", got)
	}
	if got.LastWorkoutID != "w-1" || !got.LastWorkoutAt.Equal(s.LastWorkoutAt) {
		t.Errorf("workout identity not round-tripped: %+v", got)
	}
	if got.BestAMRAP != 5 {
		t.Errorf("BestAMRAP = %d, want 5", got.BestAMRAP)
	}

	// Upsert replaces the row
	s.Weight = 105
	if err := db.SaveState(s); err != nil {
		t.Fatalf("SaveState upsert failed: %v", err)
	}
	states, err := db.LoadStates()
	if err != nil {
		t.Fatalf("LoadStates failed: %v", err)
	}
	if len(states) != 1 {
		t.Fatalf("Expected 1 state, got %d", len(states))
	}
	if states["squat-T1"].Weight != 105 {
		t.Errorf("Weight = %v, want 105 after upsert", states["squat-T1"].Weight)
	}
}

func TestDeleteState(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	s := models.NewProgressionState("bench-T2", uuid.New(), 60)
	if err := db.SaveState(s); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	if err := db.DeleteState("bench-T2"); err != nil {
		t.Fatalf("DeleteState failed: %v", err)
	}
	if err := db.DeleteState("bench-T2"); err == nil {
		t.Error("Expected error deleting missing state")
	}
}

func TestPendingChangeLifecycle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	reps := 5
	c := &models.PendingChange{
		ID: uuid.New(), Key: "squat-T1", ExerciseID: uuid.New(),
		ExerciseName: "Back Squat", Tier: models.Tier1,
		Type: models.ChangeProgress, OldWeight: 100, NewWeight: 105,
		Reason:    "all sets hit",
		WorkoutID: "w-1", WorkoutDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Success:   true, AMRAPReps: &reps, NewRecord: true,
	}
	if err := db.CreatePendingChange(c); err != nil {
		t.Fatalf("CreatePendingChange failed: %v", err)
	}

	pending := models.StatusPending
	list, err := db.ListPendingChanges(&pending)
	if err != nil {
		t.Fatalf("ListPendingChanges failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("Expected 1 pending change, got %d", len(list))
	}
	got := list[0]
	if got.NewWeight != 105 || got.Type != models.ChangeProgress {
		t.Errorf("change = %+v, want progress to 105", got)
	}
	if got.AMRAPReps == nil || *got.AMRAPReps != 5 {
		t.Errorf("AMRAPReps = %v, want 5", got.AMRAPReps)
	}
	if !got.NewRecord {
		t.Error("NewRecord flag lost in round trip")
	}

	// Apply by prefix
	if err := db.ResolvePendingChange(c.ID.String()[:8], models.StatusApplied); err != nil {
		t.Fatalf("ResolvePendingChange failed: %v", err)
	}

	list, err = db.ListPendingChanges(&pending)
	if err != nil {
		t.Fatalf("ListPendingChanges failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Expected 0 pending after apply, got %d", len(list))
	}

	// A resolved change cannot be resolved again
	if err := db.ResolvePendingChange(c.ID.String(), models.StatusDiscarded); err == nil {
		t.Error("Expected error resolving an applied change")
	}
}

func TestListPendingChangesOrder(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	newer := &models.PendingChange{
		ID: uuid.New(), Key: "squat-T1", ExerciseID: uuid.New(),
		ExerciseName: "Back Squat", Tier: models.Tier1, Type: models.ChangeProgress,
		WorkoutID: "w-2", WorkoutDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}
	older := &models.PendingChange{
		ID: uuid.New(), Key: "bench-T2", ExerciseID: uuid.New(),
		ExerciseName: "Bench Press", Tier: models.Tier2, Type: models.ChangeDeload,
		WorkoutID: "w-1", WorkoutDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}
	for _, c := range []*models.PendingChange{newer, older} {
		if err := db.CreatePendingChange(c); err != nil {
			t.Fatalf("CreatePendingChange failed: %v", err)
		}
	}

	list, err := db.ListPendingChanges(nil)
	if err != nil {
		t.Fatalf("ListPendingChanges failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 changes, got %d", len(list))
	}
	if list[0].WorkoutID != "w-1" {
		t.Errorf("Expected oldest workout first, got %s", list[0].WorkoutID)
	}
}

func TestAppendHistoryIdempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	h := &models.ExerciseHistory{ExerciseName: "Back Squat", Tier: models.Tier1, Role: models.RoleSquat}
	e := models.HistoryEntry{
		Date:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		WorkoutID: "w-1",
		Weight:    105,
		Success:   true,
		Type:      models.ChangeProgress,
	}

	if err := db.AppendHistory("squat-T1", h, e); err != nil {
		t.Fatalf("AppendHistory failed: %v", err)
	}
	// Replaying the same workout is a no-op
	if err := db.AppendHistory("squat-T1", h, e); err != nil {
		t.Fatalf("AppendHistory replay failed: %v", err)
	}

	got, err := db.GetHistory("squat-T1")
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(got.Entries) != 1 {
		t.Errorf("Expected 1 entry after replay, got %d", len(got.Entries))
	}
	if got.ExerciseName != "Back Squat" || got.Role != models.RoleSquat {
		t.Errorf("history metadata lost: %+v", got)
	}
}

func TestLoadHistorySortedByDate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	h := &models.ExerciseHistory{ExerciseName: "Back Squat", Tier: models.Tier1, Role: models.RoleSquat}
	later := models.HistoryEntry{
		Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), WorkoutID: "w-2",
		Weight: 110, Success: true, Type: models.ChangeProgress,
	}
	earlier := models.HistoryEntry{
		Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), WorkoutID: "w-1",
		Weight: 105, Success: true, Type: models.ChangeProgress,
	}
	for _, e := range []models.HistoryEntry{later, earlier} {
		if err := db.AppendHistory("squat-T1", h, e); err != nil {
			t.Fatalf("AppendHistory failed: %v", err)
		}
	}

	histories, err := db.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}
	entries := histories["squat-T1"].Entries
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if !entries[0].Date.Before(entries[1].Date) {
		t.Errorf("Entries not sorted ascending: %v, %v", entries[0].Date, entries[1].Date)
	}
}

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "lift-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "lift.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	return db
}
