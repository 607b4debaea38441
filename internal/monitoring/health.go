package monitoring

import (
	"encoding/json"
	"net/http"
	"time"
)

// Version reported by the health endpoint
const Version = "1.0.0"

type healthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// HealthHandler returns a handler reporting process liveness and uptime
func HealthHandler() http.Handler {
	start := time.Now()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthStatus{
			Status:  "ok",
			Version: Version,
			Uptime:  time.Since(start).Round(time.Second).String(),
		})
	})
}
