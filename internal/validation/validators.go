package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/benvon/smart-trip/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Register custom validators for enums
	// These should never fail in normal operation, but log if they do
	if err := Validate.RegisterValidation("trip_purpose", validateTripPurpose); err != nil {
		panic(fmt.Sprintf("failed to register trip_purpose validator: %v", err))
	}
	if err := Validate.RegisterValidation("travel_style", validateTravelStyle); err != nil {
		panic(fmt.Sprintf("failed to register travel_style validator: %v", err))
	}
	if err := Validate.RegisterValidation("budget_level", validateBudgetLevel); err != nil {
		panic(fmt.Sprintf("failed to register budget_level validator: %v", err))
	}
}

// validateTripPurpose validates that a string is a valid TripPurpose enum value.
// Empty values pass; the field is optional on the profile.
func validateTripPurpose(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return ValidateTripPurpose(value) == nil
}

// validateTravelStyle validates that a string is a valid TravelStyle enum value
func validateTravelStyle(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return ValidateTravelStyle(value) == nil
}

// validateBudgetLevel validates that a string is a valid BudgetLevel enum value
func validateBudgetLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return ValidateBudgetLevel(value) == nil
}

// SanitizeText sanitizes text input by trimming whitespace and removing control characters
func SanitizeText(text string) string {
	// Trim whitespace
	text = strings.TrimSpace(text)

	// Remove control characters except newline and tab
	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}

// ValidateTripPurpose validates a TripPurpose string value
func ValidateTripPurpose(value string) error {
	purpose := models.TripPurpose(value)
	switch purpose {
	case models.TripPurposeVacation, models.TripPurposeThemeParks, models.TripPurposeCulture,
		models.TripPurposeAdventure, models.TripPurposeRelaxation, models.TripPurposeVisitingKin,
		models.TripPurposeBusinessPlus:
		return nil
	default:
		return fmt.Errorf("invalid trip_purpose: %s", value)
	}
}

// ValidateTravelStyle validates a TravelStyle string value
func ValidateTravelStyle(value string) error {
	style := models.TravelStyle(value)
	switch style {
	case models.TravelStyleBudget, models.TravelStyleComfort, models.TravelStyleLuxury,
		models.TravelStyleBackpacker:
		return nil
	default:
		return fmt.Errorf("invalid travel_style: %s (must be 'budget', 'comfort', 'luxury', or 'backpacker')", value)
	}
}

// ValidateBudgetLevel validates a BudgetLevel string value
func ValidateBudgetLevel(value string) error {
	level := models.BudgetLevel(value)
	switch level {
	case models.BudgetLevelLow, models.BudgetLevelMid, models.BudgetLevelHigh:
		return nil
	default:
		return fmt.Errorf("invalid budget_level: %s (must be 'low', 'mid', or 'high')", value)
	}
}
