// ABOUTME: Period Provider: derives calendar-aligned periods with summed
// ABOUTME: progress from the events table. Periods are never persisted.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/period"
)

// PeriodFilter narrows a Periods query. Zero values mean "no filter".
// A non-zero Start/End pair keeps only periods lying fully inside the
// window.
type PeriodFilter struct {
	HabitID    int64
	PeriodDays int
	Start      time.Time
	End        time.Time
}

// anchorBase returns the date a habit's timeline starts from: the earlier
// of its creation date and its first progress event, so backdated progress
// still lands in a period.
func (d *DB) anchorBase(h *models.Habit) (time.Time, error) {
	// Select the row directly instead of MIN(recorded_at): the sqlite
	// driver only maps DATETIME columns to time.Time when the declared
	// column type survives, which an aggregate expression discards.
	var earliest sql.NullTime
	err := d.db.QueryRow(`
		SELECT recorded_at FROM progress WHERE habit_id = ?
		ORDER BY recorded_at LIMIT 1`, h.ID).Scan(&earliest)
	if err != nil && err != sql.ErrNoRows {
		return time.Time{}, fmt.Errorf("earliest progress: %w", err)
	}
	base := h.CreatedAt
	if earliest.Valid && earliest.Time.Before(base) {
		base = earliest.Time
	}
	return base, nil
}

// Periods materializes the periods of all matching habits, each habit's
// run covering its anchor through today. Output is ordered by habit name,
// then by start date ascending, or descending when desc is set (the order
// the streak folds expect).
func (d *DB) Periods(filter PeriodFilter, desc bool) ([]models.Period, error) {
	habits, err := d.ListHabits(filter.PeriodDays)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	var out []models.Period
	for _, h := range habits {
		if filter.HabitID != 0 && h.ID != filter.HabitID {
			continue
		}
		periods, err := d.habitPeriods(h, today)
		if err != nil {
			return nil, err
		}
		periods = applyWindow(periods, filter)
		if desc {
			for i := len(periods) - 1; i >= 0; i-- {
				out = append(out, periods[i])
			}
		} else {
			out = append(out, periods...)
		}
	}
	return out, nil
}

// habitPeriods builds one habit's periods ascending, summing each event
// into the span its date falls in.
func (d *DB) habitPeriods(h *models.Habit, through time.Time) ([]models.Period, error) {
	base, err := d.anchorBase(h)
	if err != nil {
		return nil, err
	}
	spans := period.Spans(base, through, h.PeriodDays)
	if len(spans) == 0 {
		return nil, nil
	}

	rows, err := d.db.Query(`
		SELECT recorded_at, amount FROM progress
		WHERE habit_id = ? ORDER BY recorded_at`, h.ID)
	if err != nil {
		return nil, fmt.Errorf("progress events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	periods := make([]models.Period, len(spans))
	for i, s := range spans {
		periods[i] = models.Period{
			PeriodDays: h.PeriodDays,
			Nr:         s.Nr,
			HabitID:    h.ID,
			HabitName:  h.Name,
			Goal:       h.Goal,
			Start:      s.Start,
			End:        s.End,
		}
	}

	i := 0
	for rows.Next() {
		var at time.Time
		var amount int
		if err := rows.Scan(&at, &amount); err != nil {
			return nil, fmt.Errorf("progress events: %w", err)
		}
		date := period.DateOf(at)
		for i < len(periods) && date.After(periods[i].End) {
			i++
		}
		if i == len(periods) {
			break
		}
		periods[i].Progress += amount
	}
	return periods, rows.Err()
}

func applyWindow(periods []models.Period, f PeriodFilter) []models.Period {
	if f.Start.IsZero() && f.End.IsZero() {
		return periods
	}
	var out []models.Period
	for _, p := range periods {
		if !f.Start.IsZero() && p.Start.Before(f.Start) {
			continue
		}
		if !f.End.IsZero() && p.End.After(f.End) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// PeriodCursor walks one habit's periods newest-first without building
// the full history, reading progress events from a single descending
// cursor. Close must be called when done.
type PeriodCursor struct {
	habit  *models.Habit
	anchor time.Time
	span   period.Span
	done   bool

	rows       *sql.Rows
	pendingAt  time.Time
	pendingAmt int
	pending    bool
}

// PeriodsDesc opens a cursor over the habit's periods, newest first. The
// current-streak walk stops pulling at the first incomplete period, so
// only the events it actually needs are read.
func (d *DB) PeriodsDesc(h *models.Habit) (*PeriodCursor, error) {
	base, err := d.anchorBase(h)
	if err != nil {
		return nil, err
	}
	span, ok := period.Containing(base, h.PeriodDays, time.Now())
	if !ok {
		return &PeriodCursor{habit: h, done: true}, nil
	}

	rows, err := d.db.Query(`
		SELECT recorded_at, amount FROM progress
		WHERE habit_id = ? ORDER BY recorded_at DESC`, h.ID)
	if err != nil {
		return nil, fmt.Errorf("progress events: %w", err)
	}
	return &PeriodCursor{
		habit:  h,
		anchor: period.Anchor(base, h.PeriodDays),
		span:   span,
		rows:   rows,
	}, nil
}

// Next implements analytics.PeriodSource.
func (c *PeriodCursor) Next() (models.Period, bool, error) {
	if c.done {
		return models.Period{}, false, nil
	}

	p := models.Period{
		PeriodDays: c.habit.PeriodDays,
		Nr:         c.span.Nr,
		HabitID:    c.habit.ID,
		HabitName:  c.habit.Name,
		Goal:       c.habit.Goal,
		Start:      c.span.Start,
		End:        c.span.End,
	}

	for {
		at, amount, ok, err := c.nextEvent()
		if err != nil {
			return models.Period{}, false, err
		}
		if !ok {
			break
		}
		if period.DateOf(at).Before(c.span.Start) {
			// belongs to an earlier period: hold it for the next call
			c.pendingAt, c.pendingAmt, c.pending = at, amount, true
			break
		}
		p.Progress += amount
	}

	if c.span.Start.Equal(c.anchor) {
		c.done = true
	} else {
		start := period.PrevStart(c.span.Start, c.habit.PeriodDays)
		c.span = period.Span{
			Nr:    c.span.Nr - 1,
			Start: start,
			End:   c.span.Start.AddDate(0, 0, -1),
		}
	}
	return p, true, nil
}

func (c *PeriodCursor) nextEvent() (time.Time, int, bool, error) {
	if c.pending {
		c.pending = false
		return c.pendingAt, c.pendingAmt, true, nil
	}
	if c.rows == nil || !c.rows.Next() {
		if c.rows != nil {
			if err := c.rows.Err(); err != nil {
				return time.Time{}, 0, false, fmt.Errorf("progress events: %w", err)
			}
		}
		return time.Time{}, 0, false, nil
	}
	var at time.Time
	var amount int
	if err := c.rows.Scan(&at, &amount); err != nil {
		return time.Time{}, 0, false, fmt.Errorf("progress events: %w", err)
	}
	return at, amount, true, nil
}

// Close releases the cursor's underlying rows.
func (c *PeriodCursor) Close() error {
	if c.rows == nil {
		return nil
	}
	return c.rows.Close()
}

// ProgressEntries returns the habit's progress events joined to the
// periods they fall in, oldest first, optionally keeping only periods
// fully inside the filter window. Input for the progress-log formatter.
func (d *DB) ProgressEntries(h *models.Habit, filter PeriodFilter) ([]models.ProgressEntry, error) {
	base, err := d.anchorBase(h)
	if err != nil {
		return nil, err
	}
	spans := period.Spans(base, time.Now(), h.PeriodDays)

	rows, err := d.db.Query(`
		SELECT recorded_at, amount FROM progress
		WHERE habit_id = ? ORDER BY recorded_at`, h.ID)
	if err != nil {
		return nil, fmt.Errorf("progress events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []models.ProgressEntry
	i := 0
	for rows.Next() {
		var at time.Time
		var amount int
		if err := rows.Scan(&at, &amount); err != nil {
			return nil, fmt.Errorf("progress events: %w", err)
		}
		date := period.DateOf(at)
		for i < len(spans) && date.After(spans[i].End) {
			i++
		}
		if i == len(spans) {
			break
		}
		s := spans[i]
		if !filter.Start.IsZero() && s.Start.Before(filter.Start) {
			continue
		}
		if !filter.End.IsZero() && s.End.After(filter.End) {
			continue
		}
		entries = append(entries, models.ProgressEntry{
			PeriodNr:    s.Nr,
			PeriodStart: s.Start,
			PeriodEnd:   s.End,
			Goal:        h.Goal,
			RecordedAt:  at,
			Amount:      amount,
		})
	}
	return entries, rows.Err()
}
