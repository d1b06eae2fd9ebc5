package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/benvon/smart-trip/internal/cache"
)

// CacheManager exposes the cache maintenance operations of the
// external data client.
type CacheManager interface {
	CacheStats(ctx context.Context) cache.Stats
	CacheCleanup(ctx context.Context) int
	CacheClear(ctx context.Context)
}

// CacheHandler handles cache maintenance requests
type CacheHandler struct {
	manager CacheManager
	logger  *zap.Logger
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(manager CacheManager, logger *zap.Logger) *CacheHandler {
	return &CacheHandler{manager: manager, logger: logger}
}

// RegisterRoutes registers cache routes on the given router.
// The router should already have the /cache prefix.
func (h *CacheHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/stats", h.Stats).Methods("GET")
	r.HandleFunc("/cleanup", h.Cleanup).Methods("POST")
	r.HandleFunc("", h.Clear).Methods("DELETE")
}

// Stats handles GET /api/v1/cache/stats
func (h *CacheHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.manager.CacheStats(r.Context()))
}

// CleanupResponse reports how many expired entries were evicted
type CleanupResponse struct {
	Removed int `json:"removed"`
}

// Cleanup handles POST /api/v1/cache/cleanup
func (h *CacheHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	removed := h.manager.CacheCleanup(r.Context())
	h.logger.Info("cache_cleanup", zap.Int("removed", removed))
	respondJSON(w, http.StatusOK, CleanupResponse{Removed: removed})
}

// Clear handles DELETE /api/v1/cache
func (h *CacheHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.manager.CacheClear(r.Context())
	h.logger.Info("cache_cleared")
	respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
