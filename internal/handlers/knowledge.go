package handlers

import (
	"net/http"
	"sort"

	"github.com/gorilla/mux"

	"github.com/benvon/smart-trip/internal/knowledge"
	"github.com/benvon/smart-trip/internal/validation"
)

// KnowledgeHandler serves the static city knowledge tables
type KnowledgeHandler struct {
	library *knowledge.Library
}

// NewKnowledgeHandler creates a new knowledge handler
func NewKnowledgeHandler(library *knowledge.Library) *KnowledgeHandler {
	return &KnowledgeHandler{library: library}
}

// RegisterRoutes registers knowledge routes on the given router.
// The router should already have the /knowledge prefix.
func (h *KnowledgeHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.ListCities).Methods("GET")
	r.HandleFunc("/{city}", h.GetCity).Methods("GET")
}

// ListCitiesResponse lists the covered cities
type ListCitiesResponse struct {
	Cities []string `json:"cities"`
}

// ListCities handles GET /api/v1/knowledge
func (h *KnowledgeHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities := h.library.Cities()
	sort.Strings(cities)
	respondJSON(w, http.StatusOK, ListCitiesResponse{Cities: cities})
}

// GetCity handles GET /api/v1/knowledge/{city}
func (h *KnowledgeHandler) GetCity(w http.ResponseWriter, r *http.Request) {
	city := validation.SanitizeText(mux.Vars(r)["city"])

	ck := h.library.City(city)
	if ck == nil {
		respondJSONError(w, http.StatusNotFound, "Not Found", "No knowledge table for this city")
		return
	}

	respondJSON(w, http.StatusOK, ck)
}
