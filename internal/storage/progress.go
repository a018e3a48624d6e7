// ABOUTME: Progress event writes and the timed-session state machine.
// ABOUTME: An amount of zero is the sentinel row for a running session.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/habits/internal/models"
)

// AddProgress records a progress event for the habit.
func (d *DB) AddProgress(p *models.Progress) error {
	_, err := d.db.Exec(`
		INSERT INTO progress (id, habit_id, recorded_at, amount)
		VALUES (?, ?, ?, ?)`,
		p.ID.String(), p.HabitID, p.RecordedAt, p.Amount,
	)
	if err != nil {
		return fmt.Errorf("add progress: %w", err)
	}
	return nil
}

// ResetProgress deletes all progress events for the habit, keeping the
// habit itself.
func (d *DB) ResetProgress(habitID int64) error {
	if _, err := d.db.Exec(`DELETE FROM progress WHERE habit_id = ?`, habitID); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

// openSession returns the id and start time of the habit's running timed
// session, if any.
func (d *DB) openSession(habitID int64) (uuid.UUID, time.Time, bool, error) {
	var id string
	var startedAt time.Time
	err := d.db.QueryRow(`
		SELECT id, recorded_at FROM progress
		WHERE habit_id = ? AND amount = 0`, habitID).Scan(&id, &startedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, time.Time{}, false, nil
	}
	if err != nil {
		return uuid.Nil, time.Time{}, false, fmt.Errorf("find open session: %w", err)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, time.Time{}, false, fmt.Errorf("find open session: %w", err)
	}
	return parsed, startedAt, true, nil
}

// StartSession begins a timed session by writing the zero-amount sentinel
// event. A habit can hold at most one open session.
func (d *DB) StartSession(habitID int64) error {
	_, _, open, err := d.openSession(habitID)
	if err != nil {
		return err
	}
	if open {
		return models.ErrSessionRunning
	}
	return d.AddProgress(models.NewProgress(habitID, 0))
}

// EndSession closes the habit's open session, converting the sentinel row
// into a progress event whose amount is the elapsed whole minutes (floor).
// The event's timestamp moves to the end of the session.
func (d *DB) EndSession(habitID int64) (int, error) {
	id, startedAt, open, err := d.openSession(habitID)
	if err != nil {
		return 0, err
	}
	if !open {
		return 0, models.ErrSessionNotRunning
	}

	now := time.Now()
	minutes := int(now.Sub(startedAt).Minutes())
	_, err = d.db.Exec(`UPDATE progress SET recorded_at = ?, amount = ? WHERE id = ?`,
		now, minutes, id.String())
	if err != nil {
		return 0, fmt.Errorf("end session: %w", err)
	}
	return minutes, nil
}
