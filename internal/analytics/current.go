// ABOUTME: Current-state evaluator: progress and streak of the latest periods.
// ABOUTME: Walks newest-first with an early exit; never loads full history.
package analytics

import "github.com/harperreed/habits/internal/models"

// PeriodSource yields a habit's periods newest-first. Implementations may
// generate periods lazily; callers stop pulling at the first break.
type PeriodSource interface {
	// Next returns the next period, or ok=false when the sequence is
	// exhausted.
	Next() (p models.Period, ok bool, err error)
}

// CurrentProgress returns the habit's most recent period. ok is false for
// a habit with no periods yet.
func CurrentProgress(src PeriodSource) (models.Period, bool, error) {
	return src.Next()
}

// CurrentStreak counts consecutive complete periods ending at the most
// recent one. The result is 0 when the most recent period is incomplete.
// The returned run covers the counted periods; it is meaningless when the
// length is 0.
//
// The walk is an explicit loop so streaks thousands of periods long cannot
// grow the stack, and it stops at the first incomplete period without
// draining the source.
func CurrentStreak(src PeriodSource) (models.Run, error) {
	p, ok, err := src.Next()
	if err != nil || !ok || !p.IsComplete() {
		return models.Run{Streak: true}, err
	}

	run := models.Run{
		Streak:    true,
		HabitID:   p.HabitID,
		HabitName: p.HabitName,
		Length:    1,
		Start:     p.Start,
		End:       p.End,
	}
	for {
		p, ok, err = src.Next()
		if err != nil {
			return run, err
		}
		if !ok || !p.IsComplete() {
			return run, nil
		}
		run.Length++
		run.Start = p.Start
	}
}

// SliceSource adapts an in-memory newest-first period slice to a
// PeriodSource. Used by folds over already-materialized data and in tests.
type SliceSource struct {
	Periods []models.Period
	next    int
}

// Next implements PeriodSource.
func (s *SliceSource) Next() (models.Period, bool, error) {
	if s.next >= len(s.Periods) {
		return models.Period{}, false, nil
	}
	p := s.Periods[s.next]
	s.next++
	return p, true, nil
}
