// ABOUTME: Aggregate statistics over stored progress records.
// ABOUTME: Overall and per-week means, rounded to two decimals.
package storage

import (
	"database/sql"
	"fmt"
	"math"
	"sort"

	"github.com/harperreed/peekaboo/internal/models"
)

// Stats computes count and mean ratings over all records.
// Zero records yields all-zero means, not an error.
func (d *DB) Stats() (*models.Stats, error) {
	query := `
		SELECT COUNT(*), AVG(fluidity), AVG(endurance), AVG(power)
		FROM progress
	`
	var count int
	var fluidity, endurance, power sql.NullFloat64
	if err := d.db.QueryRow(query).Scan(&count, &fluidity, &endurance, &power); err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	return &models.Stats{
		Count:     count,
		Fluidity:  round2(fluidity.Float64),
		Endurance: round2(endurance.Float64),
		Power:     round2(power.Float64),
	}, nil
}

// WeeklyStats computes per-week mean ratings, keyed by week number.
func (d *DB) WeeklyStats() (map[int]*models.Stats, error) {
	query := `
		SELECT week, COUNT(*), AVG(fluidity), AVG(endurance), AVG(power)
		FROM progress
		GROUP BY week
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("weekly stats: %w", err)
	}
	defer rows.Close()

	weekly := make(map[int]*models.Stats)
	for rows.Next() {
		var week, count int
		var fluidity, endurance, power float64
		if err := rows.Scan(&week, &count, &fluidity, &endurance, &power); err != nil {
			return nil, fmt.Errorf("scan weekly stats: %w", err)
		}
		weekly[week] = &models.Stats{
			Count:     count,
			Fluidity:  round2(fluidity),
			Endurance: round2(endurance),
			Power:     round2(power),
		}
	}

	return weekly, rows.Err()
}

// CurrentWeekProgress returns how many sessions of the latest recorded
// week have a saved rating. Zero when nothing is recorded yet.
func (d *DB) CurrentWeekProgress() (int, error) {
	query := `
		SELECT COUNT(*) FROM progress
		WHERE week = (SELECT MAX(week) FROM progress)
	`
	var count int
	if err := d.db.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("current week progress: %w", err)
	}
	return count, nil
}

// Weeks returns the recorded week numbers in ascending order.
func Weeks(weekly map[int]*models.Stats) []int {
	weeks := make([]int, 0, len(weekly))
	for w := range weekly {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)
	return weeks
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
