// ABOUTME: Tests for the current-state evaluator.
// ABOUTME: Uses SliceSource; a counting source verifies the early exit.
package analytics

import (
	"testing"

	"github.com/harperreed/habits/internal/models"
)

func TestCurrentProgress(t *testing.T) {
	periods := descPeriods(1, "reading", false, true)

	p, ok, err := CurrentProgress(&SliceSource{Periods: periods})
	if err != nil || !ok {
		t.Fatalf("CurrentProgress: ok=%v err=%v", ok, err)
	}
	if p.Nr != 2 || p.Progress != 0 {
		t.Errorf("expected the newest period, got %+v", p)
	}

	if _, ok, err := CurrentProgress(&SliceSource{}); ok || err != nil {
		t.Errorf("empty source: ok=%v err=%v, want no period", ok, err)
	}
}

func TestCurrentStreakZeroWhenNewestIncomplete(t *testing.T) {
	// an unbroken history behind an incomplete current period counts 0
	periods := descPeriods(1, "reading", false, true, true, true)

	run, err := CurrentStreak(&SliceSource{Periods: periods})
	if err != nil {
		t.Fatalf("CurrentStreak failed: %v", err)
	}
	if run.Length != 0 {
		t.Errorf("expected streak 0, got %d", run.Length)
	}
}

func TestCurrentStreakCountsConsecutive(t *testing.T) {
	periods := descPeriods(1, "reading", true, true, true, false, true)

	run, err := CurrentStreak(&SliceSource{Periods: periods})
	if err != nil {
		t.Fatalf("CurrentStreak failed: %v", err)
	}
	if run.Length != 3 {
		t.Errorf("expected streak 3, got %d", run.Length)
	}
	if !run.Start.Equal(periods[2].Start) || !run.End.Equal(periods[0].End) {
		t.Errorf("streak bounds wrong: %v..%v", run.Start, run.End)
	}
}

func TestCurrentStreakGrowsByOneWithNextCompletePeriod(t *testing.T) {
	history := []bool{true, true, false, true}
	before, err := CurrentStreak(&SliceSource{Periods: descPeriods(1, "r", history...)})
	if err != nil {
		t.Fatalf("CurrentStreak failed: %v", err)
	}
	after, err := CurrentStreak(&SliceSource{Periods: descPeriods(1, "r", append([]bool{true}, history...)...)})
	if err != nil {
		t.Fatalf("CurrentStreak failed: %v", err)
	}
	if after.Length != before.Length+1 {
		t.Errorf("completing the next period: streak %d -> %d, want +1", before.Length, after.Length)
	}
}

// countingSource tracks how many periods the walk pulled.
type countingSource struct {
	SliceSource
	pulls int
}

func (c *countingSource) Next() (models.Period, bool, error) {
	c.pulls++
	return c.SliceSource.Next()
}

func TestCurrentStreakStopsAtFirstBreak(t *testing.T) {
	periods := descPeriods(1, "reading", true, true, false, true, true, true, true)

	src := &countingSource{SliceSource: SliceSource{Periods: periods}}
	run, err := CurrentStreak(src)
	if err != nil {
		t.Fatalf("CurrentStreak failed: %v", err)
	}
	if run.Length != 2 {
		t.Errorf("expected streak 2, got %d", run.Length)
	}
	if src.pulls != 3 {
		t.Errorf("walk pulled %d periods, want 3 (streak + first break)", src.pulls)
	}
}

func TestCurrentStreakLongHistory(t *testing.T) {
	complete := make([]bool, 5000)
	for i := range complete {
		complete[i] = true
	}
	run, err := CurrentStreak(&SliceSource{Periods: descPeriods(1, "reading", complete...)})
	if err != nil {
		t.Fatalf("CurrentStreak failed: %v", err)
	}
	if run.Length != 5000 {
		t.Errorf("expected streak 5000, got %d", run.Length)
	}
}
