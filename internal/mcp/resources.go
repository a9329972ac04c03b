// ABOUTME: MCP resource implementations for the progression store.
// ABOUTME: Provides lift://state, lift://changes, and lift://history resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/lift/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// lift://state - Current weight and stage for every progression key
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lift://state",
		Name:        "Progression State",
		Description: "Current weight, stage, and best AMRAP for every progression key",
		MIMEType:    "application/json",
	}, s.handleStateResource)

	// lift://changes - Changes awaiting review
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lift://changes",
		Name:        "Pending Changes",
		Description: "Progression changes awaiting review",
		MIMEType:    "application/json",
	}, s.handleChangesResource)

	// lift://history - Applied-change log per progression key
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lift://history",
		Name:        "Progression History",
		Description: "Applied-change log per progression key",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// Resource handlers

func (s *Server) handleStateResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	states, err := s.repo.LoadStates()
	if err != nil {
		return nil, fmt.Errorf("failed to load states: %w", err)
	}

	schedule, err := s.repo.GetSchedule()
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	days := make([]models.DayAssignment, 0, len(models.ProgramDays))
	for _, day := range models.ProgramDays {
		days = append(days, schedule[day])
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"unit":         s.unit,
		"states":       states,
		"schedule":     days,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "lift://state",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleChangesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	pending := models.StatusPending
	changes, err := s.repo.ListPendingChanges(&pending)
	if err != nil {
		return nil, fmt.Errorf("failed to list changes: %w", err)
	}

	result := map[string]interface{}{
		"count":   len(changes),
		"changes": changes,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "lift://changes",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	histories, err := s.repo.LoadHistory()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	data, err := json.MarshalIndent(histories, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "lift://history",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
