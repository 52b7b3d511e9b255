// ABOUTME: HTTP middleware: request logging with IDs and panic recovery.
// ABOUTME: A panicking handler answers 500 instead of killing the process.
package server

import (
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func logRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := uuid.New().String()[:8]
			log.WithFields(log.Fields{
				"req":    reqID,
				"method": r.Method,
				"path":   r.URL.Path,
			}).Trace("request")
			w.Header().Set("X-Request-Id", reqID)
			next.ServeHTTP(w, r)
		})
	}
}

func panicRecovery() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Errorf("http: panic serving %s: %v\n%s", r.URL.Path, rec, debug.Stack())
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
