// ABOUTME: Route handlers translating HTTP requests into internal calls.
// ABOUTME: 404 for unknown sessions/backups, 500 + failure body for store errors.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/harperreed/peekaboo/internal/backup"
	"github.com/harperreed/peekaboo/internal/catalog"
	"github.com/harperreed/peekaboo/internal/config"
	"github.com/harperreed/peekaboo/internal/export"
	"github.com/harperreed/peekaboo/internal/models"
	"github.com/harperreed/peekaboo/internal/storage"
)

// sessionVars pulls the (week, day) pair out of the route.
func sessionVars(r *http.Request) (int, int, error) {
	vars := mux.Vars(r)
	week, err := strconv.Atoi(vars["week"])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid week: %q", vars["week"])
	}
	day, err := strconv.Atoi(vars["day"])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid day: %q", vars["day"])
	}
	return week, day, nil
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	week, day, err := sessionVars(r)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	entry, ok := catalog.Get(week, day)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	body := map[string]any{
		"week":    week,
		"day":     day,
		"session": entry,
	}

	record, err := s.repo.GetProgress(week, day)
	switch {
	case err == nil:
		body["progress"] = record
	case errors.Is(err, storage.ErrNotFound):
		// No rating saved yet; the plan alone is the answer.
	default:
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, body)
}

type saveProgressRequest struct {
	Week      int    `json:"week"`
	Day       int    `json:"day"`
	Fluidity  int    `json:"fluidity"`
	Endurance int    `json:"endurance"`
	Power     int    `json:"power"`
	Notes     string `json:"notes"`
}

func (s *Server) handleSaveProgress(w http.ResponseWriter, r *http.Request) {
	var req saveProgressRequest
	if err := parseJSON(r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, err)
		return
	}

	entry, ok := catalog.Get(req.Week, req.Day)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	record := models.NewProgressRecord(req.Week, req.Day, req.Fluidity, req.Endurance, req.Power).
		WithNotes(req.Notes)
	if err := s.repo.UpsertProgress(record); err != nil {
		log.Errorf("save progress W%dD%d: %s", req.Week, req.Day, err)
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	if err := s.repo.LogCompletion(req.Week, req.Day, catalog.NominalMinutes(entry.Duration), record.Date); err != nil {
		log.Errorf("log completion W%dD%d: %s", req.Week, req.Day, err)
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	// Automatic snapshot after every save; not transactional with the
	// write, a miss here is non-critical.
	if _, err := s.backups.Snapshot(); err != nil {
		log.Warnf("auto snapshot failed: %s", err)
	}

	writeSuccess(w, nil)
}

func (s *Server) handleListProgress(w http.ResponseWriter, r *http.Request) {
	records, err := s.repo.ListProgress()
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	stats, err := s.repo.Stats()
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	weekly, err := s.repo.WeeklyStats()
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"records": records,
		"totals":  stats,
		"weekly":  weekly,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.repo.Stats()
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	currentWeek, err := s.repo.CurrentWeekProgress()
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	recent, err := s.repo.RecentProgress(5)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total_sessions":        stats.Count,
		"current_week_progress": currentWeek,
		"recent_sessions":       recent,
		"averages": map[string]float64{
			"fluidity":  stats.Fluidity,
			"endurance": stats.Endurance,
			"power":     stats.Power,
		},
	})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	records, err := s.repo.ListProgress()
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	labels := make([]string, 0, len(records))
	fluidity := make([]int, 0, len(records))
	endurance := make([]int, 0, len(records))
	power := make([]int, 0, len(records))
	for _, rec := range records {
		labels = append(labels, fmt.Sprintf("W%dD%d", rec.Week, rec.Day))
		fluidity = append(fluidity, rec.Fluidity)
		endurance = append(endurance, rec.Endurance)
		power = append(power, rec.Power)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"labels":    labels,
		"fluidity":  fluidity,
		"endurance": endurance,
		"power":     power,
	})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, config.Load(s.settingsPath))
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeFailure(w, http.StatusBadRequest, err)
		return
	}

	settings := config.Load(s.settingsPath)
	if v := r.Form.Get("training_time"); v != "" {
		settings.TrainingTime = v
	}
	if v := r.Form.Get("timezone"); v != "" {
		settings.Timezone = v
	}
	settings.ReminderEnabled = r.Form.Get("reminder_enabled") == "on"
	settings.SoundEnabled = r.Form.Get("sound_enabled") == "on"
	if v := r.Form.Get("theme"); v != "" {
		settings.Theme = v
	}

	if err := config.Save(s.settingsPath, settings); err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	// Backup before wiping anything
	snapshot, err := s.backups.Snapshot()
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	if err := s.repo.DeleteAllProgress(); err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	log.Infof("progress data reset, pre-reset snapshot: %s", snapshot)
	writeSuccess(w, map[string]any{"backup": snapshot})
}

func (s *Server) handleCreateBackup(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.backups.Snapshot()
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}
	writeSuccess(w, map[string]any{"backup": snapshot})
}

func (s *Server) handleListBackups(w http.ResponseWriter, r *http.Request) {
	infos, err := s.backups.List(backup.MaxSnapshots)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"backups": infos})
}

func (s *Server) handleRestoreBackup(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	err := s.backups.Restore(name)
	switch {
	case err == nil:
		writeSuccess(w, nil)
	case errors.Is(err, backup.ErrNotFound):
		writeFailure(w, http.StatusNotFound, err)
	default:
		log.Errorf("restore %s: %s", name, err)
		writeFailure(w, http.StatusInternalServerError, err)
	}
}

func (s *Server) handleDownloadBackup(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	path, err := s.backups.Path(name)
	if err != nil {
		http.Error(w, "backup not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Type", "application/octet-stream")
	http.ServeFile(w, r, path)
}

func (s *Server) handleExportProgressCSV(w http.ResponseWriter, r *http.Request) {
	records, err := s.repo.ListProgress()
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	data, err := export.ProgressCSV(records)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	serveDownload(w, data, "text/csv", fmt.Sprintf("peekaboo_progress_%s.csv", time.Now().Format("20060102")))
}

func (s *Server) handleExportCalendarCSV(w http.ResponseWriter, r *http.Request) {
	data, err := export.CalendarCSV(config.Load(s.settingsPath), time.Now())
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	serveDownload(w, data, "text/csv", fmt.Sprintf("peekaboo_schedule_%s.csv", time.Now().Format("20060102")))
}

func (s *Server) handleExportProgram(w http.ResponseWriter, r *http.Request) {
	data := export.FullProgramText()
	serveDownload(w, data, "text/plain", fmt.Sprintf("peekaboo_complete_program_%s.txt", time.Now().Format("20060102")))
}

func serveDownload(w http.ResponseWriter, data []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}
