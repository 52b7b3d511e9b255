// ABOUTME: Repository interface for training progress storage.
// ABOUTME: Defines the contract the HTTP, MCP, and CLI layers depend on.
package storage

import (
	"time"

	"github.com/harperreed/peekaboo/internal/models"
)

// Repository defines the storage interface for training data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Progress operations
	UpsertProgress(p *models.ProgressRecord) error
	GetProgress(week, day int) (*models.ProgressRecord, error)
	ListProgress() ([]*models.ProgressRecord, error)
	RecentProgress(limit int) ([]*models.ProgressRecord, error)
	DeleteAllProgress() error

	// Completion log
	LogCompletion(week, day, durationMinutes int, completedAt time.Time) error
	ListCompletions() ([]*models.SessionCompletion, error)

	// Statistics
	Stats() (*models.Stats, error)
	WeeklyStats() (map[int]*models.Stats, error)
	CurrentWeekProgress() (int, error)

	// Lifecycle
	Path() string
	Close() error
}
