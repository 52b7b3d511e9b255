// ABOUTME: SessionCompletion log operations for SQLite storage.
// ABOUTME: One row per (week, day); re-completing replaces the entry.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/peekaboo/internal/models"
)

// LogCompletion records that a session was completed. A second completion
// of the same (week, day) replaces the earlier entry.
func (d *DB) LogCompletion(week, day, durationMinutes int, completedAt time.Time) error {
	query := `
		INSERT OR REPLACE INTO sessions (week, day, completed_date, duration)
		VALUES (?, ?, ?, ?)
	`
	_, err := d.db.Exec(query, week, day, completedAt.Format(time.RFC3339), durationMinutes)
	if err != nil {
		return fmt.Errorf("log completion: %w", err)
	}
	return nil
}

// ListCompletions retrieves all completion log entries sorted by (week, day).
func (d *DB) ListCompletions() ([]*models.SessionCompletion, error) {
	query := `
		SELECT id, week, day, completed_date, duration
		FROM sessions
		ORDER BY week, day
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	defer rows.Close()

	var completions []*models.SessionCompletion
	for rows.Next() {
		var c models.SessionCompletion
		var completedDate string
		var duration sql.NullInt64

		if err := rows.Scan(&c.ID, &c.Week, &c.Day, &completedDate, &duration); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}

		c.CompletedDate, _ = time.Parse(time.RFC3339, completedDate)
		if duration.Valid {
			c.DurationMinutes = int(duration.Int64)
		}

		completions = append(completions, &c)
	}

	return completions, rows.Err()
}
