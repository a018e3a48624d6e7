// ABOUTME: Habit CRUD operations against SQLite.
// ABOUTME: Habits are addressed by numeric id or by unique name.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/habits/internal/models"
)

// CreateHabit inserts a new habit and fills in its assigned id.
func (d *DB) CreateHabit(h *models.Habit) error {
	res, err := d.db.Exec(`
		INSERT INTO habits (name, task, period_days, goal, unit, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		h.Name, h.Task, h.PeriodDays, h.Goal, h.Unit, h.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateName
		}
		return fmt.Errorf("create habit: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create habit: %w", err)
	}
	h.ID = id
	return nil
}

// GetHabit looks up a habit by numeric id or by name.
func (d *DB) GetHabit(idOrName string) (*models.Habit, error) {
	var row *sql.Row
	if isDigits(idOrName) {
		row = d.db.QueryRow(`
			SELECT id, name, task, period_days, goal, unit, created_at
			FROM habits WHERE id = ?`, idOrName)
	} else {
		row = d.db.QueryRow(`
			SELECT id, name, task, period_days, goal, unit, created_at
			FROM habits WHERE name = ?`, idOrName)
	}
	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrHabitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get habit: %w", err)
	}
	return h, nil
}

// UpdateHabit persists changed habit fields. The id must already exist.
func (d *DB) UpdateHabit(h *models.Habit) error {
	res, err := d.db.Exec(`
		UPDATE habits SET name = ?, task = ?, period_days = ?, goal = ?, unit = ?
		WHERE id = ?`,
		h.Name, h.Task, h.PeriodDays, h.Goal, h.Unit, h.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateName
		}
		return fmt.Errorf("update habit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update habit: %w", err)
	}
	if n == 0 {
		return models.ErrHabitNotFound
	}
	return nil
}

// DeleteHabit removes a habit; its progress events cascade away.
func (d *DB) DeleteHabit(idOrName string) error {
	h, err := d.GetHabit(idOrName)
	if err != nil {
		return err
	}
	if _, err := d.db.Exec(`DELETE FROM habits WHERE id = ?`, h.ID); err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}
	return nil
}

// ListHabits returns habits ordered by name. A positive periodDays
// restricts the result to habits with that period length.
func (d *DB) ListHabits(periodDays int) ([]*models.Habit, error) {
	query := `
		SELECT id, name, task, period_days, goal, unit, created_at
		FROM habits`
	args := []any{}
	if periodDays > 0 {
		query += ` WHERE period_days = ?`
		args = append(args, periodDays)
	}
	query += ` ORDER BY name`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var habits []*models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("list habits: %w", err)
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// IsEmpty reports whether the database holds no habits yet.
func (d *DB) IsEmpty() (bool, error) {
	var n int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM habits`).Scan(&n); err != nil {
		return false, fmt.Errorf("count habits: %w", err)
	}
	return n == 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHabit(s scanner) (*models.Habit, error) {
	var h models.Habit
	err := s.Scan(&h.ID, &h.Name, &h.Task, &h.PeriodDays, &h.Goal, &h.Unit, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
