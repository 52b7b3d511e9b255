// ABOUTME: Tests for aggregate statistics over progress records.
// ABOUTME: Covers empty stores, rounding, and per-week grouping.
package storage

import (
	"testing"

	"github.com/harperreed/peekaboo/internal/models"
)

func TestStatsEmpty(t *testing.T) {
	db := setupTestDB(t)

	stats, err := db.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if stats.Count != 0 {
		t.Errorf("expected count 0, got %d", stats.Count)
	}
	if stats.Fluidity != 0 || stats.Endurance != 0 || stats.Power != 0 {
		t.Errorf("expected all-zero means, got %.2f/%.2f/%.2f",
			stats.Fluidity, stats.Endurance, stats.Power)
	}
}

func TestStatsMeansRounded(t *testing.T) {
	db := setupTestDB(t)

	// Fluidity 7,7,8 averages 7.333...; should round to 7.33
	ratings := [][3]int{{7, 8, 6}, {7, 9, 7}, {8, 10, 8}}
	for i, r := range ratings {
		p := models.NewProgressRecord(1, i+1, r[0], r[1], r[2])
		if err := db.UpsertProgress(p); err != nil {
			t.Fatalf("UpsertProgress failed: %v", err)
		}
	}

	stats, err := db.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if stats.Count != 3 {
		t.Errorf("expected count 3, got %d", stats.Count)
	}
	if stats.Fluidity != 7.33 {
		t.Errorf("expected fluidity mean 7.33, got %v", stats.Fluidity)
	}
	if stats.Endurance != 9.0 {
		t.Errorf("expected endurance mean 9.0, got %v", stats.Endurance)
	}
	if stats.Power != 7.0 {
		t.Errorf("expected power mean 7.0, got %v", stats.Power)
	}
}

func TestWeeklyStats(t *testing.T) {
	db := setupTestDB(t)

	for day := 1; day <= 2; day++ {
		if err := db.UpsertProgress(models.NewProgressRecord(1, day, 6, 6, 6)); err != nil {
			t.Fatalf("UpsertProgress failed: %v", err)
		}
	}
	if err := db.UpsertProgress(models.NewProgressRecord(2, 1, 9, 8, 7)); err != nil {
		t.Fatalf("UpsertProgress failed: %v", err)
	}

	weekly, err := db.WeeklyStats()
	if err != nil {
		t.Fatalf("WeeklyStats failed: %v", err)
	}

	if len(weekly) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(weekly))
	}
	if weekly[1].Count != 2 || weekly[1].Fluidity != 6.0 {
		t.Errorf("week 1: expected count 2 mean 6.0, got count %d mean %v",
			weekly[1].Count, weekly[1].Fluidity)
	}
	if weekly[2].Count != 1 || weekly[2].Power != 7.0 {
		t.Errorf("week 2: expected count 1 power 7.0, got count %d power %v",
			weekly[2].Count, weekly[2].Power)
	}

	weeks := Weeks(weekly)
	if len(weeks) != 2 || weeks[0] != 1 || weeks[1] != 2 {
		t.Errorf("expected sorted weeks [1 2], got %v", weeks)
	}
}

func TestCurrentWeekProgress(t *testing.T) {
	db := setupTestDB(t)

	count, err := db.CurrentWeekProgress()
	if err != nil {
		t.Fatalf("CurrentWeekProgress failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 with no records, got %d", count)
	}

	for day := 1; day <= 3; day++ {
		if err := db.UpsertProgress(models.NewProgressRecord(2, day, 5, 5, 5)); err != nil {
			t.Fatalf("UpsertProgress failed: %v", err)
		}
	}
	if err := db.UpsertProgress(models.NewProgressRecord(1, 1, 5, 5, 5)); err != nil {
		t.Fatalf("UpsertProgress failed: %v", err)
	}

	count, err = db.CurrentWeekProgress()
	if err != nil {
		t.Fatalf("CurrentWeekProgress failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 sessions in latest week, got %d", count)
	}
}
