// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for habits and progress events.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS habits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		task TEXT NOT NULL,
		period_days INTEGER NOT NULL CHECK (period_days >= 1),
		goal INTEGER NOT NULL CHECK (goal >= 1),
		unit TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS progress (
		id TEXT PRIMARY KEY,
		habit_id INTEGER NOT NULL,
		recorded_at DATETIME NOT NULL,
		amount INTEGER NOT NULL,
		FOREIGN KEY (habit_id) REFERENCES habits(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_progress_habit_date ON progress(habit_id, recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_habits_period ON habits(period_days);
	`

	_, err := d.db.Exec(schema)
	return err
}
