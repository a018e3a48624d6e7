// ABOUTME: Sample data generator: five predefined habits with randomized
// ABOUTME: progress over the past 100 days, for trying out the tracker.
package storage

import (
	"math/rand"
	"time"

	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/period"
)

const sampleDays = 100

// InsertSamples creates five predefined habits with randomized progress
// history covering the last 100 days. Intended for an empty database.
func (d *DB) InsertSamples() error {
	type sample struct {
		habit       *models.Habit
		minProgress int
		maxProgress int
		successRate int // percent of days with any progress
	}
	samples := []sample{
		{models.NewHabit("morning stretching", "stretch before breakfast", 1, 1, ""), 1, 1, 75},
		{models.NewHabit("veggy day", "survive a whole day without meat", 7, 1, ""), 1, 1, 8},
		{models.NewHabit("sports", "90 minutes of sports per week", 7, 90, "minutes"), 15, 90, 30},
		{models.NewHabit("study", "read a minimum of pages every other week", 14, 100, "pages"), 10, 50, 15},
		{models.NewHabit("side hustle", "earn some extra money", 30, 250, "€"), 25, 250, 12},
	}

	start := period.DateOf(time.Now()).AddDate(0, 0, -sampleDays)
	for i, s := range samples {
		if err := d.CreateHabit(s.habit); err != nil {
			return err
		}
		for day := 0; day < sampleDays; day++ {
			if rand.Intn(100) >= s.successRate {
				continue
			}
			at := start.AddDate(0, 0, day).
				Add(time.Duration(1+rand.Intn(21)) * time.Hour).
				Add(time.Duration(1+rand.Intn(57)) * time.Minute)
			amount := s.minProgress + rand.Intn(s.maxProgress-s.minProgress+1)
			p := models.NewProgress(s.habit.ID, amount).WithRecordedAt(at)
			if err := d.AddProgress(p); err != nil {
				return err
			}
		}
		// the first habit always has progress today
		if i == 0 {
			if err := d.AddProgress(models.NewProgress(s.habit.ID, 1)); err != nil {
				return err
			}
		}
	}
	return nil
}
