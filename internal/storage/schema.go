// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the progress and sessions tables.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS progress (
		week INTEGER NOT NULL,
		day INTEGER NOT NULL,
		fluidity INTEGER NOT NULL,
		endurance INTEGER NOT NULL,
		power INTEGER NOT NULL,
		date TEXT NOT NULL,
		notes TEXT,
		PRIMARY KEY (week, day)
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		week INTEGER NOT NULL,
		day INTEGER NOT NULL,
		completed_date TEXT NOT NULL,
		duration INTEGER,
		UNIQUE (week, day)
	);

	CREATE INDEX IF NOT EXISTS idx_progress_date ON progress(date DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
