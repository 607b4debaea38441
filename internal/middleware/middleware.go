// Package middleware provides the HTTP middleware chain of the API routes.
package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/FCHDev/co2tripcalculator/internal/monitoring"
)

// statusWriter captures the response status for logging and metrics
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// JSON sets the JSON content type before the handler writes anything
func JSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// Logging logs every request and records its metrics under the handler name
func Logging(name string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r)

		latency := time.Since(start)
		log.Info().
			Str("handler", name).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Str("latency", latency.String()).
			Msg("request handled")

		monitoring.HTTPRequestsTotal.WithLabelValues(name, http.StatusText(sw.status)).Inc()
		monitoring.HTTPRequestDuration.WithLabelValues(name).Observe(latency.Seconds())
	})
}

// Recovery maps a handler panic to a generic 500 so one request cannot take
// the process down
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("handler panicked")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Une erreur est survenue"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Chain wraps a handler with the standard middleware stack of the API routes
func Chain(name string, next http.Handler) http.Handler {
	return Recovery(Logging(name, JSON(next)))
}
