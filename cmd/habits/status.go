// ABOUTME: Human readable status lines for current progress and streaks.
// ABOUTME: Shared by the progress, list, and analyze commands.
package main

import (
	"fmt"
	"strings"

	"github.com/harperreed/habits/internal/analytics"
	"github.com/harperreed/habits/internal/models"
)

// currentPeriod pulls the habit's newest period from storage.
func currentPeriod(h *models.Habit) (models.Period, bool, error) {
	cursor, err := store.PeriodsDesc(h)
	if err != nil {
		return models.Period{}, false, err
	}
	defer func() { _ = cursor.Close() }()
	return analytics.CurrentProgress(cursor)
}

// currentStreak evaluates the habit's streak ending at the newest period.
func currentStreak(h *models.Habit) (models.Run, error) {
	cursor, err := store.PeriodsDesc(h)
	if err != nil {
		return models.Run{}, err
	}
	defer func() { _ = cursor.Close() }()
	return analytics.CurrentStreak(cursor)
}

// progressLabel renders the progress of a period: the task status for
// check-off style goals, otherwise "N of G unit".
func progressLabel(h *models.Habit, p models.Period) string {
	if h.Goal == 1 {
		if p.Progress == 0 {
			return models.StatusIncomplete.String()
		}
		return models.StatusCompleted.String()
	}
	return strings.TrimRight(fmt.Sprintf("%d of %d %s", p.Progress, h.Goal, h.Unit), " ")
}

// streakLabel renders a current streak, or "not on a streak" for 0.
func streakLabel(run models.Run) string {
	if run.Length == 0 {
		return "not on a streak"
	}
	return fmt.Sprintf("streak of %d from %s to %s",
		run.Length, run.Start.Format("2006-01-02"), run.End.Format("2006-01-02"))
}
