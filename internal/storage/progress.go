// ABOUTME: ProgressRecord CRUD operations for SQLite storage.
// ABOUTME: Insert-or-replace keyed by (week, day), last write wins.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/peekaboo/internal/models"
)

// UpsertProgress stores a progress record, replacing any existing record
// for the same (week, day). The record's Date is written as given; use
// models.NewProgressRecord to stamp the current time.
func (d *DB) UpsertProgress(p *models.ProgressRecord) error {
	query := `
		INSERT OR REPLACE INTO progress (week, day, fluidity, endurance, power, date, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		p.Week,
		p.Day,
		p.Fluidity,
		p.Endurance,
		p.Power,
		p.Date.Format(time.RFC3339),
		p.Notes,
	)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

// GetProgress retrieves the progress record for a (week, day).
// Returns ErrNotFound when nothing has been saved for that session.
func (d *DB) GetProgress(week, day int) (*models.ProgressRecord, error) {
	query := `
		SELECT week, day, fluidity, endurance, power, date, notes
		FROM progress
		WHERE week = ? AND day = ?
	`
	return scanProgress(d.db.QueryRow(query, week, day))
}

// ListProgress retrieves all progress records sorted by (week, day) ascending.
func (d *DB) ListProgress() ([]*models.ProgressRecord, error) {
	query := `
		SELECT week, day, fluidity, endurance, power, date, notes
		FROM progress
		ORDER BY week, day
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	return scanProgressRows(rows)
}

// RecentProgress retrieves the most recently saved records, newest first.
func (d *DB) RecentProgress(limit int) ([]*models.ProgressRecord, error) {
	query := `
		SELECT week, day, fluidity, endurance, power, date, notes
		FROM progress
		ORDER BY date DESC
		LIMIT ?
	`
	rows, err := d.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent progress: %w", err)
	}
	defer rows.Close()

	return scanProgressRows(rows)
}

// DeleteAllProgress removes every progress record and completion log entry.
// Used by reset; callers snapshot the database first.
func (d *DB) DeleteAllProgress() error {
	if _, err := d.db.Exec("DELETE FROM progress"); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	return nil
}

// scanProgress scans a single row into a ProgressRecord.
func scanProgress(row *sql.Row) (*models.ProgressRecord, error) {
	var p models.ProgressRecord
	var date string
	var notes sql.NullString

	err := row.Scan(&p.Week, &p.Day, &p.Fluidity, &p.Endurance, &p.Power, &date, &notes)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan progress: %w", err)
	}

	p.Date, _ = time.Parse(time.RFC3339, date)
	if notes.Valid {
		p.Notes = notes.String
	}

	return &p, nil
}

// scanProgressRows scans multiple rows into a slice of ProgressRecords.
func scanProgressRows(rows *sql.Rows) ([]*models.ProgressRecord, error) {
	var records []*models.ProgressRecord

	for rows.Next() {
		var p models.ProgressRecord
		var date string
		var notes sql.NullString

		err := rows.Scan(&p.Week, &p.Day, &p.Fluidity, &p.Endurance, &p.Power, &date, &notes)
		if err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}

		p.Date, _ = time.Parse(time.RFC3339, date)
		if notes.Valid {
			p.Notes = notes.String
		}

		records = append(records, &p)
	}

	return records, rows.Err()
}
