// Package middleware holds the cross-cutting HTTP middleware chain.
package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/logging"
)

// responseWriter wrapper to capture status code and response size.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode == 0 {
		rw.statusCode = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// RequestTracing tags every request with an id, propagates it through the
// context and writes one access log line per request.
func RequestTracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}

		ctx := logging.WithRequestID(r.Context(), requestID)
		w.Header().Set("X-Request-ID", requestID)

		wrapped := &responseWriter{ResponseWriter: w}
		start := time.Now()

		next.ServeHTTP(wrapped, r.WithContext(ctx))

		if wrapped.statusCode == 0 {
			wrapped.statusCode = http.StatusOK
		}

		logging.Info(ctx, "HTTP request completed", logging.Fields{
			"http_method":      r.Method,
			"http_path":        r.URL.Path,
			"status_code":      wrapped.statusCode,
			"remote_ip":        remoteIP(r),
			"response_size":    wrapped.written,
			"response_time_ms": float64(time.Since(start).Nanoseconds()) / 1e6,
		})
	})
}

// remoteIP extracts the real client IP from the request. X-Forwarded-For
// accumulates one entry per hop; the first is the originating client.
func remoteIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
