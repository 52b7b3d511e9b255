// ABOUTME: ProgressRecord and SessionCompletion models for training tracking.
// ABOUTME: Records are keyed by (week, day) within the six-week program.
package models

import "time"

// ProgressRecord is a self-rating for one completed training session.
// (Week, Day) is the primary key; re-saving replaces the whole record.
type ProgressRecord struct {
	Week      int       `json:"week"`
	Day       int       `json:"day"`
	Fluidity  int       `json:"fluidity"`
	Endurance int       `json:"endurance"`
	Power     int       `json:"power"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes"`
}

// NewProgressRecord creates a ProgressRecord stamped with the current time.
func NewProgressRecord(week, day, fluidity, endurance, power int) *ProgressRecord {
	return &ProgressRecord{
		Week:      week,
		Day:       day,
		Fluidity:  fluidity,
		Endurance: endurance,
		Power:     power,
		Date:      time.Now(),
	}
}

// WithNotes sets notes on the record.
func (p *ProgressRecord) WithNotes(notes string) *ProgressRecord {
	p.Notes = notes
	return p
}

// SessionCompletion logs that a session was completed, with its duration.
// UNIQUE(week, day); re-completing a session replaces the log entry.
type SessionCompletion struct {
	ID              int64     `json:"id"`
	Week            int       `json:"week"`
	Day             int       `json:"day"`
	CompletedDate   time.Time `json:"completed_date"`
	DurationMinutes int       `json:"duration"`
}

// Stats holds aggregate means over a set of progress records.
// Means are rounded to two decimals; zero records yields all zeros.
type Stats struct {
	Count     int     `json:"count"`
	Fluidity  float64 `json:"fluidity"`
	Endurance float64 `json:"endurance"`
	Power     float64 `json:"power"`
}
