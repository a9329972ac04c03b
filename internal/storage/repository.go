// ABOUTME: Repository interface for progression data storage.
// ABOUTME: Defines the contract shared by the SQLite and Charm KV backends.
package storage

import (
	"github.com/harperreed/lift/internal/models"
)

// Repository defines the storage interface for progression data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Exercise operations
	CreateExercise(e *models.ExerciseConfig) error
	GetExercise(idOrPrefix string) (*models.ExerciseConfig, error)
	GetExerciseByTemplateID(templateID string) (*models.ExerciseConfig, error)
	ListExercises() ([]*models.ExerciseConfig, error)
	DeleteExercise(idOrPrefix string) error

	// Schedule operations
	SaveDayAssignment(a models.DayAssignment) error
	GetSchedule() (models.Schedule, error)

	// Progression state operations
	SaveState(s *models.ProgressionState) error
	GetState(key models.ProgressionKey) (*models.ProgressionState, error)
	LoadStates() (models.StateMap, error)
	DeleteState(key models.ProgressionKey) error

	// Pending change operations
	CreatePendingChange(c *models.PendingChange) error
	GetPendingChange(idOrPrefix string) (*models.PendingChange, error)
	ListPendingChanges(status *models.ChangeStatus) ([]*models.PendingChange, error)
	ResolvePendingChange(idOrPrefix string, status models.ChangeStatus) error

	// History operations
	AppendHistory(key models.ProgressionKey, h *models.ExerciseHistory, e models.HistoryEntry) error
	GetHistory(key models.ProgressionKey) (*models.ExerciseHistory, error)
	LoadHistory() (models.HistoryMap, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
