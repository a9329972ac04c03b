// ABOUTME: MCP tool implementations for the progression engine.
// ABOUTME: Exposes analyze, review, state, history, and import operations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/lift/internal/engine"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// analyze_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "analyze_workout",
		Description: "Analyze a logged workout and queue progression changes for review",
	}, s.handleAnalyzeWorkout)

	// list_pending_changes
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_pending_changes",
		Description: "List progression changes, optionally filtered by status",
	}, s.handleListChanges)

	// apply_change
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "apply_change",
		Description: "Apply one pending change by ID or ID prefix",
	}, s.handleApplyChange)

	// apply_all_changes
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "apply_all_changes",
		Description: "Apply every pending change, oldest workout first",
	}, s.handleApplyAll)

	// discard_change
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "discard_change",
		Description: "Discard one pending change by ID or ID prefix",
	}, s.handleDiscardChange)

	// get_progression_state
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progression_state",
		Description: "Get current weight and stage for one key or all keys",
	}, s.handleGetState)

	// get_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_history",
		Description: "Get the applied-change log for one key or all keys",
	}, s.handleGetHistory)

	// import_routine
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "import_routine",
		Description: "Preview importing an authored routine into a program day",
	}, s.handleImportRoutine)

	// complete_import
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_import",
		Description: "Materialize reviewed import results into exercises and starting state",
	}, s.handleCompleteImport)
}

// Tool input/output types

type loggedSetInput struct {
	Type   string  `json:"type,omitempty" jsonschema:"Set type (warmup, normal, failure, dropset), defaults to normal"`
	Weight float64 `json:"weight" jsonschema:"Set weight"`
	Reps   *int    `json:"reps,omitempty" jsonschema:"Completed reps, null if not recorded"`
}

type loggedExerciseInput struct {
	TemplateID string           `json:"template_id" jsonschema:"External exercise template ID"`
	Name       string           `json:"name,omitempty" jsonschema:"Exercise name"`
	Sets       []loggedSetInput `json:"sets" jsonschema:"Logged sets in order"`
}

type analyzeInput struct {
	Day       string                `json:"day" jsonschema:"Program day (A1, B1, A2, B2)"`
	WorkoutID string                `json:"workout_id" jsonschema:"Unique workout identifier"`
	StartedAt string                `json:"started_at,omitempty" jsonschema:"Workout start time (ISO 8601), defaults to now"`
	Exercises []loggedExerciseInput `json:"exercises" jsonschema:"Logged exercises in order"`
}

type analyzeOutput struct {
	Changes       []*models.PendingChange  `json:"changes"`
	Discrepancies []models.DiscrepancyInfo `json:"discrepancies,omitempty"`
	Message       string                   `json:"message"`
}

type listChangesInput struct {
	Status string `json:"status,omitempty" jsonschema:"Filter by status (pending, applied, discarded)"`
}

type changeIDInput struct {
	ID string `json:"id" jsonschema:"Change ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type keyInput struct {
	Key string `json:"key,omitempty" jsonschema:"Progression key (e.g. squat-T1), empty for all"`
}

type importRoutineInput struct {
	Day     string         `json:"day" jsonschema:"Program day to assign the routine to (A1, B1, A2, B2)"`
	Routine models.Routine `json:"routine" jsonschema:"Authored routine with exercises and sets"`
}

type completeImportInput struct {
	Exercises []models.ImportedExercise `json:"exercises" jsonschema:"Reviewed import results, with overrides where detection failed"`
}

type completeImportOutput struct {
	Created []string `json:"created"`
	Skipped []string `json:"skipped,omitempty"`
	Message string   `json:"message"`
}

// Tool handlers

func (s *Server) handleAnalyzeWorkout(ctx context.Context, req *mcp.CallToolRequest, input analyzeInput) (*mcp.CallToolResult, analyzeOutput, error) {
	if !models.IsValidProgramDay(input.Day) {
		return nil, analyzeOutput{}, fmt.Errorf("unknown program day: %s", input.Day)
	}

	schedule, err := s.repo.GetSchedule()
	if err != nil {
		return nil, analyzeOutput{}, fmt.Errorf("load schedule: %w", err)
	}
	day := schedule[models.ProgramDay(input.Day)]

	w := models.LoggedWorkout{
		ID:        input.WorkoutID,
		StartedAt: time.Now(),
		Day:       input.Day,
	}
	if input.StartedAt != "" {
		if t, err := time.Parse(time.RFC3339, input.StartedAt); err == nil {
			w.StartedAt = t
		}
	}
	for _, ex := range input.Exercises {
		logged := models.LoggedExercise{TemplateID: ex.TemplateID, Name: ex.Name}
		for _, set := range ex.Sets {
			st := models.SetType(set.Type)
			if set.Type == "" {
				st = models.SetNormal
			}
			logged.Sets = append(logged.Sets, models.LoggedSet{Type: st, Weight: set.Weight, Reps: set.Reps})
		}
		w.Exercises = append(w.Exercises, logged)
	}

	changes, discrepancies, err := storage.AnalyzeAndQueue(s.repo, w, day, s.unit, time.Now())
	if err != nil {
		return nil, analyzeOutput{}, err
	}

	return nil, analyzeOutput{
		Changes:       changes,
		Discrepancies: discrepancies,
		Message:       fmt.Sprintf("Queued %d change(s) for review", len(changes)),
	}, nil
}

func (s *Server) handleListChanges(ctx context.Context, req *mcp.CallToolRequest, input listChangesInput) (*mcp.CallToolResult, any, error) {
	var status *models.ChangeStatus
	if input.Status != "" {
		if !models.IsValidChangeStatus(input.Status) {
			return nil, nil, fmt.Errorf("unknown status: %s", input.Status)
		}
		st := models.ChangeStatus(input.Status)
		status = &st
	}

	changes, err := s.repo.ListPendingChanges(status)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list changes: %w", err)
	}

	if len(changes) == 0 {
		return nil, map[string]interface{}{"message": "No changes found."}, nil
	}

	return nil, changes, nil
}

func (s *Server) handleApplyChange(ctx context.Context, req *mcp.CallToolRequest, input changeIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	c, err := s.repo.GetPendingChange(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("change not found: %s", input.ID)
	}

	if err := storage.ApplyPendingChange(s.repo, c); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to apply change: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Applied %s: %s -> %v", c.Key, c.Type, c.NewWeight),
	}, nil
}

func (s *Server) handleApplyAll(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, simpleOutput, error) {
	applied, err := storage.ApplyAllPending(s.repo)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to apply changes: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Applied %d change(s)", applied),
	}, nil
}

func (s *Server) handleDiscardChange(ctx context.Context, req *mcp.CallToolRequest, input changeIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := storage.DiscardPendingChange(s.repo, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to discard change: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Discarded change: %s", input.ID),
	}, nil
}

func (s *Server) handleGetState(ctx context.Context, req *mcp.CallToolRequest, input keyInput) (*mcp.CallToolResult, any, error) {
	if input.Key != "" {
		state, err := s.repo.GetState(models.ProgressionKey(input.Key))
		if err != nil {
			return nil, nil, fmt.Errorf("state not found: %s", input.Key)
		}
		return nil, state, nil
	}

	states, err := s.repo.LoadStates()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load states: %w", err)
	}
	if len(states) == 0 {
		return nil, map[string]interface{}{"message": "No progression state yet."}, nil
	}
	return nil, states, nil
}

func (s *Server) handleGetHistory(ctx context.Context, req *mcp.CallToolRequest, input keyInput) (*mcp.CallToolResult, any, error) {
	if input.Key != "" {
		h, err := s.repo.GetHistory(models.ProgressionKey(input.Key))
		if err != nil {
			return nil, nil, fmt.Errorf("history not found: %s", input.Key)
		}
		return nil, h, nil
	}

	histories, err := s.repo.LoadHistory()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history: %w", err)
	}
	if len(histories) == 0 {
		return nil, map[string]interface{}{"message": "No history yet."}, nil
	}
	return nil, histories, nil
}

func (s *Server) handleImportRoutine(ctx context.Context, req *mcp.CallToolRequest, input importRoutineInput) (*mcp.CallToolResult, any, error) {
	if !models.IsValidProgramDay(input.Day) {
		return nil, nil, fmt.Errorf("unknown program day: %s", input.Day)
	}

	schedule, err := s.repo.GetSchedule()
	if err != nil {
		return nil, nil, fmt.Errorf("load schedule: %w", err)
	}

	result := engine.ImportRoutine(input.Routine, schedule[models.ProgramDay(input.Day)])
	return nil, result, nil
}

func (s *Server) handleCompleteImport(ctx context.Context, req *mcp.CallToolRequest, input completeImportInput) (*mcp.CallToolResult, completeImportOutput, error) {
	out := completeImportOutput{}

	for _, ie := range input.Exercises {
		cfg, state, ok := engine.Materialize(ie)
		if !ok {
			out.Skipped = append(out.Skipped, fmt.Sprintf("%s (no stage)", ie.Name))
			continue
		}
		if err := s.repo.CreateExercise(cfg); err != nil {
			return nil, completeImportOutput{}, fmt.Errorf("create exercise %s: %w", ie.Name, err)
		}
		if err := s.repo.SaveState(state); err != nil {
			return nil, completeImportOutput{}, fmt.Errorf("save state for %s: %w", ie.Name, err)
		}
		out.Created = append(out.Created, fmt.Sprintf("%s (%s)", cfg.Name, state.Key))
	}

	out.Message = fmt.Sprintf("Imported %d exercise(s), skipped %d", len(out.Created), len(out.Skipped))
	return nil, out, nil
}
