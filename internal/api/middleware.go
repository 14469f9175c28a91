// internal/api/middleware.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	commonerrors "hoopmatch/internal/common/errors"
)

type contextKey string

const requestIDKey contextKey = "requestID"

// requestID returns the ID the middleware attached to the request.
func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// withRequestID accepts a caller-provided X-Request-ID or mints one.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusWriter records the response status while keeping the streaming
// handlers' access to http.Flusher.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// withLogging logs every request and feeds the otel request metrics.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		duration := time.Since(start)

		status := sw.status
		if status == 0 {
			status = http.StatusOK
		}
		s.logger.Info("request completed", map[string]interface{}{
			"requestId": requestID(r),
			"method":    r.Method,
			"path":      r.URL.Path,
			"status":    status,
			"duration":  duration.String(),
		})
		if s.obs != nil {
			s.obs.RecordRequest(r.Context(), r.URL.Path, http.StatusText(status))
			s.obs.RecordRequestDuration(r.Context(), duration, r.URL.Path)
		}
	})
}

// withRecovery turns panics into the standard 500 envelope instead of
// killing the connection.
func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("handler panicked", map[string]interface{}{
					"requestId": requestID(r),
					"path":      r.URL.Path,
					"panic":     rec,
				})
				s.errors.Respond(w, requestID(r), commonerrors.NewInternalError(fmt.Errorf("%v", rec)))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
