// ABOUTME: Tests for the session completion log.
// ABOUTME: Covers replace-on-recomplete and ordering.
package storage

import (
	"testing"
	"time"
)

func TestLogCompletionAndList(t *testing.T) {
	db := setupTestDB(t)

	when := time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC)
	if err := db.LogCompletion(1, 2, 60, when); err != nil {
		t.Fatalf("LogCompletion failed: %v", err)
	}
	if err := db.LogCompletion(1, 1, 75, when.AddDate(0, 0, -1)); err != nil {
		t.Fatalf("LogCompletion failed: %v", err)
	}

	completions, err := db.ListCompletions()
	if err != nil {
		t.Fatalf("ListCompletions failed: %v", err)
	}

	if len(completions) != 2 {
		t.Fatalf("expected 2 completions, got %d", len(completions))
	}
	if completions[0].Day != 1 || completions[1].Day != 2 {
		t.Errorf("expected (week, day) order, got days %d, %d",
			completions[0].Day, completions[1].Day)
	}
	if completions[1].DurationMinutes != 60 {
		t.Errorf("expected duration 60, got %d", completions[1].DurationMinutes)
	}
	if !completions[1].CompletedDate.Equal(when) {
		t.Errorf("expected completed date %v, got %v", when, completions[1].CompletedDate)
	}
}

func TestLogCompletionReplaces(t *testing.T) {
	db := setupTestDB(t)

	first := time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC)
	if err := db.LogCompletion(3, 4, 60, first); err != nil {
		t.Fatalf("LogCompletion failed: %v", err)
	}
	if err := db.LogCompletion(3, 4, 90, first.AddDate(0, 0, 2)); err != nil {
		t.Fatalf("LogCompletion failed: %v", err)
	}

	completions, err := db.ListCompletions()
	if err != nil {
		t.Fatalf("ListCompletions failed: %v", err)
	}

	if len(completions) != 1 {
		t.Fatalf("expected 1 completion after re-complete, got %d", len(completions))
	}
	if completions[0].DurationMinutes != 90 {
		t.Errorf("expected replaced duration 90, got %d", completions[0].DurationMinutes)
	}
}
