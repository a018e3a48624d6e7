// ABOUTME: Streak/break folder over classified periods.
// ABOUTME: Single-pass accumulator producing maximal runs per habit.
package analytics

import "github.com/harperreed/habits/internal/models"

// Runs folds periods into maximal streak/break runs. The input must be
// ordered by (habit, start date descending), the order the period provider
// uses, so each habit's first run is its most recent one.
func Runs(periods []models.Period) []models.Run {
	var runs []models.Run
	var cur *models.Run

	for _, p := range periods {
		complete := p.IsComplete()
		if cur != nil && cur.HabitID == p.HabitID && cur.Streak == complete {
			// consecutive period of the same kind: extend backwards in time
			cur.Length++
			cur.Start = p.Start
			continue
		}
		if cur != nil {
			runs = append(runs, *cur)
		}
		cur = &models.Run{
			Streak:    complete,
			HabitID:   p.HabitID,
			HabitName: p.HabitName,
			Length:    1,
			Start:     p.Start,
			End:       p.End,
		}
	}
	if cur != nil {
		runs = append(runs, *cur)
	}
	return runs
}

// TrimLeadingBreaks drops each habit's oldest run when it is a break: the
// time between habit creation and the first completed task does not count
// as a break. Runs must be in Runs output order (newest first per habit).
func TrimLeadingBreaks(runs []models.Run) []models.Run {
	var out []models.Run
	for i, r := range runs {
		oldest := i == len(runs)-1 || runs[i+1].HabitID != r.HabitID
		if oldest && !r.Streak {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SkipCurrent drops each habit's most recent period, leaving only past
// periods. Input order is (habit, start descending).
func SkipCurrent(periods []models.Period) []models.Period {
	var out []models.Period
	var lastHabit int64 = -1
	for _, p := range periods {
		if p.HabitID != lastHabit {
			lastHabit = p.HabitID
			continue
		}
		out = append(out, p)
	}
	return out
}

// MaxStreak returns the longest streak among the runs, if any.
func MaxStreak(runs []models.Run) (models.Run, bool) {
	return longest(runs, true)
}

// MaxBreak returns the longest break among the runs, if any.
func MaxBreak(runs []models.Run) (models.Run, bool) {
	return longest(runs, false)
}

func longest(runs []models.Run, streak bool) (models.Run, bool) {
	var best models.Run
	found := false
	for _, r := range runs {
		if r.Streak != streak {
			continue
		}
		if !found || r.Length > best.Length {
			best = r
			found = true
		}
	}
	return best, found
}
