// ABOUTME: Calendar alignment rules for habit periods.
// ABOUTME: Pure date arithmetic, independent of storage.
package period

import "time"

// Span is one aligned period boundary pair. End is inclusive: the day
// before the next span's start.
type Span struct {
	Nr    int
	Start time.Time
	End   time.Time
}

// DateOf truncates a timestamp to its local calendar date (midnight).
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Anchor returns the start of the first period for a habit whose timeline
// begins at base. Weekly periods (7) align back to Monday, monthly periods
// (30) to the first of the calendar month, everything else starts on the
// base date itself.
func Anchor(base time.Time, days int) time.Time {
	d := DateOf(base)
	switch days {
	case 7:
		offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
		return d.AddDate(0, 0, -offset)
	case 30:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	default:
		return d
	}
}

// NextStart returns the start of the period following the one starting at
// start. Monthly periods advance one calendar month, not a fixed 30 days.
func NextStart(start time.Time, days int) time.Time {
	if days == 30 {
		return start.AddDate(0, 1, 0)
	}
	return start.AddDate(0, 0, days)
}

// PrevStart returns the start of the period preceding the one starting at
// start. It is the inverse of NextStart.
func PrevStart(start time.Time, days int) time.Time {
	if days == 30 {
		return start.AddDate(0, -1, 0)
	}
	return start.AddDate(0, 0, -days)
}

// Spans generates the contiguous ascending spans covering base through the
// given day, numbered from 1. The result is empty when through precedes
// the anchor.
func Spans(base, through time.Time, days int) []Span {
	through = DateOf(through)
	start := Anchor(base, days)
	if through.Before(start) {
		return nil
	}

	var spans []Span
	for nr := 1; !start.After(through); nr++ {
		next := NextStart(start, days)
		spans = append(spans, Span{Nr: nr, Start: start, End: next.AddDate(0, 0, -1)})
		start = next
	}
	return spans
}

// Containing returns the span holding the given timestamp, or false when
// it falls before the anchor.
func Containing(base time.Time, days int, t time.Time) (Span, bool) {
	d := DateOf(t)
	start := Anchor(base, days)
	if d.Before(start) {
		return Span{}, false
	}
	for nr := 1; ; nr++ {
		next := NextStart(start, days)
		if d.Before(next) {
			return Span{Nr: nr, Start: start, End: next.AddDate(0, 0, -1)}, true
		}
		start = next
	}
}
