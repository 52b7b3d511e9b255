// ABOUTME: HTTP server wiring routes onto storage, backups, and exports.
// ABOUTME: Thin request layer; all real work happens in the internal packages.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/harperreed/peekaboo/internal/backup"
	"github.com/harperreed/peekaboo/internal/storage"
)

// Server is the HTTP front for the training tracker.
type Server struct {
	repo         storage.Repository
	backups      *backup.Manager
	settingsPath string

	httpServer *http.Server
}

// New creates a Server over the given store, backup manager, and
// settings file.
func New(repo storage.Repository, backups *backup.Manager, settingsPath string) *Server {
	return &Server{
		repo:         repo,
		backups:      backups,
		settingsPath: settingsPath,
	}
}

// Handler builds the root http.Handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/sessions/{week}/{day}", s.handleGetSession).Methods(http.MethodGet)
	api.HandleFunc("/progress", s.handleSaveProgress).Methods(http.MethodPost)
	api.HandleFunc("/progress", s.handleListProgress).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	api.HandleFunc("/stats/chart", s.handleChart).Methods(http.MethodGet)
	api.HandleFunc("/settings", s.handleGetSettings).Methods(http.MethodGet)
	api.HandleFunc("/settings", s.handleUpdateSettings).Methods(http.MethodPost, http.MethodPut)
	api.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)
	api.HandleFunc("/backups", s.handleCreateBackup).Methods(http.MethodPost)
	api.HandleFunc("/backups", s.handleListBackups).Methods(http.MethodGet)
	api.HandleFunc("/backups/{name}/restore", s.handleRestoreBackup).Methods(http.MethodPost)
	api.HandleFunc("/backups/{name}/download", s.handleDownloadBackup).Methods(http.MethodGet)

	r.HandleFunc("/export/progress.csv", s.handleExportProgressCSV).Methods(http.MethodGet)
	r.HandleFunc("/export/calendar.csv", s.handleExportCalendarCSV).Methods(http.MethodGet)
	r.HandleFunc("/export/program.txt", s.handleExportProgram).Methods(http.MethodGet)

	r.Use(panicRecovery())
	r.Use(logRequest())

	return r
}

// ListenAndServe runs the HTTP server until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
