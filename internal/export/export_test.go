// ABOUTME: Tests for CSV and text export rendering.
// ABOUTME: Covers row counts, schedule math, and section formatting.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/peekaboo/internal/catalog"
	"github.com/harperreed/peekaboo/internal/models"
)

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	return rows
}

func TestProgressCSV(t *testing.T) {
	records := []*models.ProgressRecord{
		{
			Week: 1, Day: 1,
			Fluidity: 7, Endurance: 8, Power: 6,
			Date:  time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			Notes: "solid session",
		},
		{
			Week: 1, Day: 2,
			Fluidity: 6, Endurance: 7, Power: 7,
			Date: time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC),
		},
	}

	data, err := ProgressCSV(records)
	if err != nil {
		t.Fatalf("ProgressCSV failed: %v", err)
	}

	rows := parseCSV(t, data)
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	wantHeader := []string{"Week", "Day", "Fluidity", "Endurance", "Power", "Date", "Notes"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header column %d: expected %q, got %q", i, col, rows[0][i])
		}
	}

	if rows[1][0] != "1" || rows[1][2] != "7" || rows[1][6] != "solid session" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][6] != "" {
		t.Errorf("expected empty notes column, got %q", rows[2][6])
	}
	if rows[1][5] != "2026-03-02T09:00:00Z" {
		t.Errorf("expected RFC3339 date, got %q", rows[1][5])
	}
}

func TestProgressCSVEmpty(t *testing.T) {
	data, err := ProgressCSV(nil)
	if err != nil {
		t.Fatalf("ProgressCSV failed: %v", err)
	}

	rows := parseCSV(t, data)
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}

func TestCalendarCSV(t *testing.T) {
	settings := models.DefaultSettings()
	anchor := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	data, err := CalendarCSV(settings, anchor)
	if err != nil {
		t.Fatalf("CalendarCSV failed: %v", err)
	}

	rows := parseCSV(t, data)
	if len(rows) != 1+catalog.Weeks*catalog.DaysPerWeek {
		t.Fatalf("expected header + 30 rows, got %d", len(rows))
	}

	// First session lands on the anchor itself.
	if rows[1][1] != "01/05/2026" {
		t.Errorf("expected W1D1 on anchor date, got %q", rows[1][1])
	}
	if !strings.HasPrefix(rows[1][0], "Peek-a-Boo Boxing W1D1:") {
		t.Errorf("unexpected subject: %q", rows[1][0])
	}
	if rows[1][2] != "09:00" {
		t.Errorf("expected default start time, got %q", rows[1][2])
	}

	// W2D1 is row 6: anchor + 7 days.
	if rows[6][1] != "01/12/2026" {
		t.Errorf("expected W2D1 one week after anchor, got %q", rows[6][1])
	}

	// Last row is W6D5: anchor + 39 days.
	last := rows[len(rows)-1]
	if !strings.HasPrefix(last[0], "Peek-a-Boo Boxing W6D5:") {
		t.Errorf("expected last row W6D5, got %q", last[0])
	}
	if last[1] != "02/13/2026" {
		t.Errorf("expected W6D5 39 days after anchor, got %q", last[1])
	}
}

func TestCalendarCSVCustomTime(t *testing.T) {
	settings := models.DefaultSettings()
	settings.TrainingTime = "18:30"
	anchor := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	data, err := CalendarCSV(settings, anchor)
	if err != nil {
		t.Fatalf("CalendarCSV failed: %v", err)
	}

	rows := parseCSV(t, data)
	if rows[1][2] != "18:30" {
		t.Errorf("expected configured start time, got %q", rows[1][2])
	}

	// End time is start plus the session's nominal length.
	entry, _ := catalog.Get(1, 1)
	start, _ := time.Parse("15:04", "18:30")
	wantEnd := start.Add(time.Duration(catalog.NominalMinutes(entry.Duration)) * time.Minute).Format("15:04")
	if rows[1][4] != wantEnd {
		t.Errorf("expected end time %q, got %q", wantEnd, rows[1][4])
	}
}

func TestCalendarCSVInvalidTimeFallsBack(t *testing.T) {
	settings := models.DefaultSettings()
	settings.TrainingTime = "not a time"

	data, err := CalendarCSV(settings, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("CalendarCSV failed: %v", err)
	}

	rows := parseCSV(t, data)
	if rows[1][2] != models.DefaultTrainingTime {
		t.Errorf("expected fallback start time, got %q", rows[1][2])
	}
}

func TestFullProgramText(t *testing.T) {
	text := string(FullProgramText())

	if !strings.HasPrefix(text, "PEEK-A-BOO BOXING TRAINING PROGRAM") {
		t.Error("expected program title header")
	}
	for week := 1; week <= catalog.Weeks; week++ {
		if !strings.Contains(text, fmt.Sprintf("WEEK %d", week)) {
			t.Errorf("expected WEEK %d header", week)
		}
	}

	entry, _ := catalog.Get(1, 1)
	if !strings.Contains(text, "DAY 1: "+entry.Focus) {
		t.Error("expected W1D1 focus in day header")
	}
	if !strings.Contains(text, "Duration: "+entry.Duration) {
		t.Error("expected duration line")
	}
	if len(entry.Warmup) > 0 && !strings.Contains(text, "  - "+entry.Warmup[0]) {
		t.Error("expected warm-up items as list entries")
	}
}
