// ABOUTME: Habit model and display helpers.
// ABOUTME: A habit is a periodic task with a goal and a progress unit.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Habit is a recurring task tracked over fixed-length periods.
//
// PeriodDays selects the calendar alignment: 1 is daily, 7 is weekly
// starting on Monday, 30 is monthly starting on the first, any other
// positive value repeats every N days from the habit's creation date.
type Habit struct {
	ID         int64     `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Task       string    `json:"task" yaml:"task"`
	PeriodDays int       `json:"period_days" yaml:"period_days"`
	Goal       int       `json:"goal" yaml:"goal"`
	Unit       string    `json:"unit,omitempty" yaml:"unit,omitempty"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// NewHabit creates a habit with the current timestamp. Zero period or goal
// fall back to 1, matching the habit invariants.
func NewHabit(name, task string, periodDays, goal int, unit string) *Habit {
	if periodDays < 1 {
		periodDays = 1
	}
	if goal < 1 {
		goal = 1
	}
	return &Habit{
		Name:       name,
		Task:       task,
		PeriodDays: periodDays,
		Goal:       goal,
		Unit:       unit,
		CreatedAt:  time.Now(),
	}
}

// IsCheckOff reports whether the habit is a binary check-off task.
func (h *Habit) IsCheckOff() bool {
	return h.Unit == ""
}

// PeriodLabel renders the period length for display.
func (h *Habit) PeriodLabel() string {
	switch h.PeriodDays {
	case 1:
		return "day"
	case 7:
		return "week"
	case 30:
		return "month"
	default:
		return fmt.Sprintf("%d days", h.PeriodDays)
	}
}

// GoalLabel renders the goal with its unit, e.g. "90 minutes".
func (h *Habit) GoalLabel() string {
	return strings.TrimRight(fmt.Sprintf("%d %s", h.Goal, h.Unit), " ")
}

// String is the human readable representation used in listings.
func (h *Habit) String() string {
	return fmt.Sprintf("%s - %s", h.Name, h.Task)
}
