// ABOUTME: Progress event model for habit tracking.
// ABOUTME: An amount of zero marks an open timed session.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Progress is a single timestamped progress event for one habit.
// Multiple events may fall into the same period; their amounts sum.
type Progress struct {
	ID         uuid.UUID `json:"id" yaml:"id"`
	HabitID    int64     `json:"habit_id" yaml:"habit_id"`
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
	Amount     int       `json:"amount" yaml:"amount"`
}

// NewProgress creates a progress event with generated UUID and current
// timestamp.
func NewProgress(habitID int64, amount int) *Progress {
	return &Progress{
		ID:         uuid.New(),
		HabitID:    habitID,
		RecordedAt: time.Now(),
		Amount:     amount,
	}
}

// WithRecordedAt sets a custom recorded_at timestamp (backdated progress).
func (p *Progress) WithRecordedAt(t time.Time) *Progress {
	p.RecordedAt = t
	return p
}

// Open reports whether the event is the sentinel for a running timed
// session.
func (p *Progress) Open() bool {
	return p.Amount == 0
}

// ProgressEntry is a progress event joined to the period it falls into,
// as produced by the storage layer for the progress-log formatter.
type ProgressEntry struct {
	PeriodNr    int
	PeriodStart time.Time
	PeriodEnd   time.Time
	Goal        int
	RecordedAt  time.Time
	Amount      int
}
