// ABOUTME: Tests for progress record CRUD operations.
// ABOUTME: Covers upsert semantics, lookup, ordering, and reset.
package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/peekaboo/internal/models"
)

// setupTestDB creates a test database in a temporary directory.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return db
}

func TestUpsertAndGetProgress(t *testing.T) {
	db := setupTestDB(t)

	p := models.NewProgressRecord(1, 1, 7, 8, 6)
	p.WithNotes("jab felt sharp")

	if err := db.UpsertProgress(p); err != nil {
		t.Fatalf("UpsertProgress failed: %v", err)
	}

	got, err := db.GetProgress(1, 1)
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}

	if got.Week != 1 || got.Day != 1 {
		t.Errorf("expected W1D1, got W%dD%d", got.Week, got.Day)
	}
	if got.Fluidity != 7 || got.Endurance != 8 || got.Power != 6 {
		t.Errorf("ratings mismatch: got %d/%d/%d", got.Fluidity, got.Endurance, got.Power)
	}
	if got.Notes != "jab felt sharp" {
		t.Errorf("expected notes preserved, got %q", got.Notes)
	}
	if got.Date.IsZero() {
		t.Error("expected non-zero date")
	}
}

func TestUpsertReplacesExisting(t *testing.T) {
	db := setupTestDB(t)

	first := &models.ProgressRecord{
		Week: 2, Day: 3,
		Fluidity: 4, Endurance: 5, Power: 6,
		Date:  time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
		Notes: "first attempt",
	}
	if err := db.UpsertProgress(first); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	second := &models.ProgressRecord{
		Week: 2, Day: 3,
		Fluidity: 8, Endurance: 9, Power: 7,
		Date: time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC),
	}
	if err := db.UpsertProgress(second); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	got, err := db.GetProgress(2, 3)
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}

	if got.Fluidity != 8 || got.Endurance != 9 || got.Power != 7 {
		t.Errorf("expected replaced ratings, got %d/%d/%d", got.Fluidity, got.Endurance, got.Power)
	}
	if !got.Date.Equal(second.Date) {
		t.Errorf("expected refreshed date %v, got %v", second.Date, got.Date)
	}
	if got.Notes != "" {
		t.Errorf("expected notes replaced with empty, got %q", got.Notes)
	}

	records, err := db.ListProgress()
	if err != nil {
		t.Fatalf("ListProgress failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record after replace, got %d", len(records))
	}
}

func TestGetProgressNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetProgress(5, 5)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListProgressOrder(t *testing.T) {
	db := setupTestDB(t)

	// Insert out of order
	for _, key := range [][2]int{{3, 1}, {1, 2}, {1, 1}, {2, 5}} {
		p := models.NewProgressRecord(key[0], key[1], 5, 5, 5)
		if err := db.UpsertProgress(p); err != nil {
			t.Fatalf("UpsertProgress failed: %v", err)
		}
	}

	records, err := db.ListProgress()
	if err != nil {
		t.Fatalf("ListProgress failed: %v", err)
	}

	want := [][2]int{{1, 1}, {1, 2}, {2, 5}, {3, 1}}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, p := range records {
		if p.Week != want[i][0] || p.Day != want[i][1] {
			t.Errorf("record %d: expected W%dD%d, got W%dD%d",
				i, want[i][0], want[i][1], p.Week, p.Day)
		}
	}
}

func TestRecentProgress(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		p := &models.ProgressRecord{
			Week: 1, Day: i + 1,
			Fluidity: 5, Endurance: 5, Power: 5,
			Date: base.AddDate(0, 0, i),
		}
		if err := db.UpsertProgress(p); err != nil {
			t.Fatalf("UpsertProgress failed: %v", err)
		}
	}

	recent, err := db.RecentProgress(2)
	if err != nil {
		t.Fatalf("RecentProgress failed: %v", err)
	}

	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
	if recent[0].Day != 4 || recent[1].Day != 3 {
		t.Errorf("expected newest first (days 4, 3), got days %d, %d",
			recent[0].Day, recent[1].Day)
	}
}

func TestDeleteAllProgress(t *testing.T) {
	db := setupTestDB(t)

	if err := db.UpsertProgress(models.NewProgressRecord(1, 1, 7, 7, 7)); err != nil {
		t.Fatalf("UpsertProgress failed: %v", err)
	}
	if err := db.LogCompletion(1, 1, 60, time.Now()); err != nil {
		t.Fatalf("LogCompletion failed: %v", err)
	}

	if err := db.DeleteAllProgress(); err != nil {
		t.Fatalf("DeleteAllProgress failed: %v", err)
	}

	records, err := db.ListProgress()
	if err != nil {
		t.Fatalf("ListProgress failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records after reset, got %d", len(records))
	}

	completions, err := db.ListCompletions()
	if err != nil {
		t.Fatalf("ListCompletions failed: %v", err)
	}
	if len(completions) != 0 {
		t.Errorf("expected no completions after reset, got %d", len(completions))
	}
}
