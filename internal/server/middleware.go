// internal/server/middleware.go
package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"activity-service/internal/common/metrics"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.logger.Info("request handled", map[string]interface{}{
			"method":    r.Method,
			"path":      r.URL.Path,
			"status":    rec.status,
			"requestId": w.Header().Get("X-Request-ID"),
			"elapsedMs": time.Since(start).Milliseconds(),
		})
	})
}

func (s *Server) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		route := routeLabel(r)
		start := time.Now()
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		metrics.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
		if s.obs != nil {
			s.obs.RecordRequest(r.Context(), route, rec.status)
			s.obs.RecordDuration(r.Context(), elapsed, route)
		}
	})
}

// routeLabel collapses path parameters so metric cardinality stays bounded.
func routeLabel(r *http.Request) string {
	path := r.URL.Path
	if strings.HasPrefix(path, "/activities/") {
		switch {
		case strings.HasSuffix(path, "/signup"):
			path = "/activities/{activity}/signup"
		case strings.HasSuffix(path, "/unregister"):
			path = "/activities/{activity}/unregister"
		}
	}
	return r.Method + " " + path
}
