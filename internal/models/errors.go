// ABOUTME: Sentinel errors for the habit tracker domain.
// ABOUTME: NotFound and Conflict conditions surfaced as user messages.
package models

import "errors"

var (
	// ErrHabitNotFound means the referenced habit id or name does not exist.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrDuplicateName means a habit with this name already exists.
	ErrDuplicateName = errors.New("a habit with this name already exists")

	// ErrSessionRunning means a timed session was already started.
	ErrSessionRunning = errors.New("progress for this habit already started")

	// ErrSessionNotRunning means end was called without a prior start.
	ErrSessionNotRunning = errors.New("progress for this habit not started")
)
