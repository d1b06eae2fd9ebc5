package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/benvon/smart-trip/internal/models"
	"github.com/benvon/smart-trip/internal/request"
	"github.com/benvon/smart-trip/internal/validation"
)

const (
	// MaxFamilyMembers bounds the traveler lists in one profile.
	MaxFamilyMembers = 20
	// MaxDietaryPreferences bounds the dietary preference list.
	MaxDietaryPreferences = 10

	dateLayout = "2006-01-02"
)

// TaskGenerator produces the prioritized task list for a trip profile.
type TaskGenerator interface {
	Generate(ctx context.Context, profile *models.TripProfile, daysUntilTrip int) []models.SmartTask
}

// TaskHandler handles task generation requests
type TaskHandler struct {
	generator TaskGenerator
	logger    *zap.Logger
	now       func() time.Time
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(generator TaskGenerator, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		generator: generator,
		logger:    logger,
		now:       time.Now,
	}
}

// RegisterRoutes registers task routes on the given router.
// The router should already have the /tasks prefix.
func (h *TaskHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/generate", h.GenerateTasks).Methods("POST")
}

// GenerateTasksRequest represents a task generation request.
// days_until_trip overrides the value derived from start_date.
type GenerateTasksRequest struct {
	Profile       *models.TripProfile `json:"profile" validate:"required"`
	DaysUntilTrip *int                `json:"days_until_trip,omitempty"`
}

// GenerateTasksResponse represents the task generation result
type GenerateTasksResponse struct {
	Tasks         []models.SmartTask `json:"tasks"`
	DaysUntilTrip int                `json:"days_until_trip"`
	RequestID     string             `json:"request_id,omitempty"`
}

// GenerateTasks handles POST /api/v1/tasks/generate
func (h *TaskHandler) GenerateTasks(w http.ResponseWriter, r *http.Request) {
	var req GenerateTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON in request body")
		return
	}
	if req.Profile == nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "profile is required")
		return
	}

	if err := validateProfile(req.Profile); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Validation Error", err.Error())
		return
	}
	sanitizeProfile(req.Profile)

	days, err := h.resolveDaysUntilTrip(&req)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Validation Error", err.Error())
		return
	}

	tasks := h.generator.Generate(r.Context(), req.Profile, days)

	h.logger.Info("tasks_generated",
		zap.String("request_id", request.RequestIDFromContext(r.Context())),
		zap.String("destination_city", req.Profile.DestinationCity),
		zap.Int("days_until_trip", days),
		zap.Int("task_count", len(tasks)),
	)

	respondJSON(w, http.StatusOK, GenerateTasksResponse{
		Tasks:         tasks,
		DaysUntilTrip: days,
		RequestID:     request.RequestIDFromContext(r.Context()),
	})
}

// resolveDaysUntilTrip prefers the explicit override and otherwise
// derives the value from start_date. Past start dates clamp to zero.
func (h *TaskHandler) resolveDaysUntilTrip(req *GenerateTasksRequest) (int, error) {
	if req.DaysUntilTrip != nil {
		if *req.DaysUntilTrip < 0 {
			return 0, nil
		}
		return *req.DaysUntilTrip, nil
	}

	if req.Profile.StartDate == "" {
		return 0, fmt.Errorf("either days_until_trip or profile.start_date is required")
	}
	start, err := time.Parse(dateLayout, req.Profile.StartDate)
	if err != nil {
		return 0, fmt.Errorf("profile.start_date must be formatted as YYYY-MM-DD")
	}

	days := daysBetween(h.now(), start)
	if days < 0 {
		days = 0
	}
	return days, nil
}

// daysBetween counts whole calendar days from now to the start date.
// Both sides are evaluated in UTC; start dates parse as UTC midnight,
// so "today" must come from the UTC calendar too.
func daysBetween(now, start time.Time) int {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(start.Sub(today) / (24 * time.Hour))
}

// validateProfile checks enum fields, date formats, and list bounds.
func validateProfile(profile *models.TripProfile) error {
	if err := validation.Validate.Var(string(profile.TripPurpose), "trip_purpose"); err != nil {
		return fmt.Errorf("invalid trip_purpose: %q", profile.TripPurpose)
	}
	if err := validation.Validate.Var(string(profile.TravelStyle), "travel_style"); err != nil {
		return fmt.Errorf("invalid travel_style: %q", profile.TravelStyle)
	}
	if err := validation.Validate.Var(string(profile.BudgetLevel), "budget_level"); err != nil {
		return fmt.Errorf("invalid budget_level: %q", profile.BudgetLevel)
	}

	if len(profile.Adults)+len(profile.Children) > MaxFamilyMembers {
		return fmt.Errorf("too many family members (max %d)", MaxFamilyMembers)
	}
	if len(profile.DietaryPreferences) > MaxDietaryPreferences {
		return fmt.Errorf("too many dietary preferences (max %d)", MaxDietaryPreferences)
	}

	for _, date := range []string{profile.StartDate, profile.EndDate} {
		if date == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, date); err != nil {
			return fmt.Errorf("dates must be formatted as YYYY-MM-DD: %q", date)
		}
	}

	return nil
}

// sanitizeProfile strips control characters from free-text fields.
func sanitizeProfile(profile *models.TripProfile) {
	profile.DestinationCity = validation.SanitizeText(profile.DestinationCity)
	profile.DestinationCountry = validation.SanitizeText(profile.DestinationCountry)
	for i := range profile.Adults {
		profile.Adults[i].Name = validation.SanitizeText(profile.Adults[i].Name)
		profile.Adults[i].Age = validation.SanitizeText(profile.Adults[i].Age)
	}
	for i := range profile.Children {
		profile.Children[i].Name = validation.SanitizeText(profile.Children[i].Name)
		profile.Children[i].Age = validation.SanitizeText(profile.Children[i].Age)
	}
	for i := range profile.DietaryPreferences {
		profile.DietaryPreferences[i] = validation.SanitizeText(profile.DietaryPreferences[i])
	}
}
