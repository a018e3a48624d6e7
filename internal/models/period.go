// ABOUTME: Derived analytics views: Period, Run, Tally, TaskStatus.
// ABOUTME: All are recomputed per query and never persisted.
package models

import (
	"fmt"
	"time"
)

// Period is one calendar-aligned interval in a habit's timeline with its
// summed progress. Start and End are inclusive dates (local midnight).
// Nr counts from 1 at the habit's first period.
type Period struct {
	PeriodDays int       `json:"period_days"`
	Nr         int       `json:"nr"`
	HabitID    int64     `json:"habit_id"`
	HabitName  string    `json:"habit_name"`
	Goal       int       `json:"goal"`
	Start      time.Time `json:"start_date"`
	End        time.Time `json:"end_date"`
	Progress   int       `json:"progress"`
}

// IsComplete reports whether the period's summed progress meets its goal.
// A period with a non-positive goal can never be complete.
func (p Period) IsComplete() bool {
	return p.Goal > 0 && p.Progress >= p.Goal
}

// Label renders the period's date range, e.g. "2025-01-06 to 2025-01-12".
func (p Period) Label() string {
	return fmt.Sprintf("%s to %s", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}

// Run is a maximal run of consecutive complete (streak) or incomplete
// (break) periods for one habit.
type Run struct {
	Streak    bool      `json:"streak"`
	HabitID   int64     `json:"habit_id"`
	HabitName string    `json:"habit_name"`
	Length    int       `json:"length"`
	Start     time.Time `json:"start_date"`
	End       time.Time `json:"end_date"`
}

// Kind returns "streak" or "break".
func (r Run) Kind() string {
	if r.Streak {
		return "streak"
	}
	return "break"
}

// Tally is a per-habit completion count over a set of periods.
type Tally struct {
	HabitID   int64  `json:"habit_id"`
	HabitName string `json:"habit_name"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// Rate formats the completion rate as a percentage with two decimals.
func (t Tally) Rate() string {
	return fmt.Sprintf("%.2f %%", float64(t.Completed)*100/float64(t.Total))
}

// TaskStatus is the cumulative state of a period's task after an event.
type TaskStatus int

const (
	StatusIncomplete TaskStatus = iota
	StatusCompleted
	StatusExceeded
)

// String returns the lowercase status name used in listings.
func (s TaskStatus) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusExceeded:
		return "exceeded"
	default:
		return "incomplete"
	}
}
