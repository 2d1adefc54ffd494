package utils

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aromabeans/coffee-feedback/logger"
)

// RespondJSON sends a JSON response with the given status code and payload.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.New().WithError(err).Error("failed to encode JSON response")
	}
}

// RespondError sends a JSON error response shaped as {"error": message}.
// All handlers use this shape so the kiosk can surface the server's message.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}

// CORSMiddleware allows the kiosk (and any browser frontend) to call the API
// from another origin.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs every request with latency.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.New().WithRequest(r).
			WithField("duration_ms", time.Since(start).Milliseconds()).
			Info("request handled")
	})
}
