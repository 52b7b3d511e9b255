// ABOUTME: Export engine rendering progress and the program catalog.
// ABOUTME: Pure transforms: progress CSV, calendar CSV, program text.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/peekaboo/internal/catalog"
	"github.com/harperreed/peekaboo/internal/models"
)

// ProgressCSV renders one row per progress record.
// Notes defaults to the empty string when absent.
func ProgressCSV(records []*models.ProgressRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Week", "Day", "Fluidity", "Endurance", "Power", "Date", "Notes"}); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Week),
			strconv.Itoa(r.Day),
			strconv.Itoa(r.Fluidity),
			strconv.Itoa(r.Endurance),
			strconv.Itoa(r.Power),
			r.Date.Format(time.RFC3339),
			r.Notes,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// CalendarCSV renders the full program as calendar rows, one per catalog
// session in fixed (week, day) order: 30 rows. The anchor is the export
// invocation time; session (w, d) lands on anchor + (w-1) weeks + (d-1)
// days. End time is start time plus the session's nominal duration.
func CalendarCSV(settings *models.Settings, anchor time.Time) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Subject", "Start Date", "Start Time", "End Date", "End Time", "Description", "Location"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	trainingTime := settings.TrainingTime
	start, err := time.Parse("15:04", trainingTime)
	if err != nil {
		trainingTime = models.DefaultTrainingTime
		start, _ = time.Parse("15:04", trainingTime)
	}

	for _, key := range catalog.Keys() {
		entry, ok := catalog.Get(key.Week, key.Day)
		if !ok {
			continue
		}

		sessionDate := anchor.AddDate(0, 0, (key.Week-1)*7+(key.Day-1))
		dateStr := sessionDate.Format("01/02/2006")
		endTime := start.Add(time.Duration(catalog.NominalMinutes(entry.Duration)) * time.Minute).Format("15:04")

		row := []string{
			fmt.Sprintf("Peek-a-Boo Boxing W%dD%d: %s", key.Week, key.Day, entry.Focus),
			dateStr,
			trainingTime,
			dateStr,
			endTime,
			fmt.Sprintf("%s\n\nFocus: %s", entry.Description, entry.Focus),
			"Training Location",
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// FullProgramText renders the entire catalog as a flat plain-text
// document in week/day order. Empty sections are skipped.
func FullProgramText() []byte {
	var sb strings.Builder
	rule := strings.Repeat("=", 80)

	sb.WriteString("PEEK-A-BOO BOXING TRAINING PROGRAM\n")
	sb.WriteString(rule + "\n\n")

	for week := 1; week <= catalog.Weeks; week++ {
		sb.WriteString("\n" + rule + "\n")
		fmt.Fprintf(&sb, "WEEK %d\n", week)
		sb.WriteString(rule + "\n\n")

		for day := 1; day <= catalog.DaysPerWeek; day++ {
			entry, ok := catalog.Get(week, day)
			if !ok {
				continue
			}

			fmt.Fprintf(&sb, "\nDAY %d: %s\n", day, entry.Focus)
			sb.WriteString(strings.Repeat("-", 80) + "\n")
			fmt.Fprintf(&sb, "Duration: %s\n", entry.Duration)
			fmt.Fprintf(&sb, "Description: %s\n\n", entry.Description)

			for _, section := range entry.Sections() {
				if len(section.Items) == 0 {
					continue
				}
				fmt.Fprintf(&sb, "\n%s:\n", section.Label)
				for _, item := range section.Items {
					fmt.Fprintf(&sb, "  - %s\n", item)
				}
			}

			sb.WriteString("\n" + rule + "\n")
		}
	}

	return []byte(sb.String())
}
