// ABOUTME: Repository interface for habit data storage.
// ABOUTME: Defines contract for habit CRUD, progress, and analytics input.
package storage

import "github.com/harperreed/habits/internal/models"

// Repository defines the storage interface for habit data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Habit operations
	CreateHabit(h *models.Habit) error
	GetHabit(idOrName string) (*models.Habit, error)
	UpdateHabit(h *models.Habit) error
	DeleteHabit(idOrName string) error
	ListHabits(periodDays int) ([]*models.Habit, error)
	IsEmpty() (bool, error)

	// Progress operations
	AddProgress(p *models.Progress) error
	ResetProgress(habitID int64) error
	StartSession(habitID int64) error
	EndSession(habitID int64) (int, error)

	// Period provider
	Periods(filter PeriodFilter, desc bool) ([]models.Period, error)
	PeriodsDesc(h *models.Habit) (*PeriodCursor, error)
	ProgressEntries(h *models.Habit, filter PeriodFilter) ([]models.ProgressEntry, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ExportMarkdown() (string, error)
	ImportJSON(data []byte) error

	// Sample data
	InsertSamples() error

	// Lifecycle
	Close() error
}
