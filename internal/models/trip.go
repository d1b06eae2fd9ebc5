package models

// TripPurpose represents the primary reason for a trip
type TripPurpose string

const (
	TripPurposeVacation     TripPurpose = "vacation"
	TripPurposeThemeParks   TripPurpose = "theme-parks"
	TripPurposeCulture      TripPurpose = "culture"
	TripPurposeAdventure    TripPurpose = "adventure"
	TripPurposeRelaxation   TripPurpose = "relaxation"
	TripPurposeVisitingKin  TripPurpose = "visiting-family"
	TripPurposeBusinessPlus TripPurpose = "business-plus"
)

// TravelStyle represents how a family prefers to travel
type TravelStyle string

const (
	TravelStyleBudget     TravelStyle = "budget"
	TravelStyleComfort    TravelStyle = "comfort"
	TravelStyleLuxury     TravelStyle = "luxury"
	TravelStyleBackpacker TravelStyle = "backpacker"
)

// BudgetLevel represents the overall spending level for a trip
type BudgetLevel string

const (
	BudgetLevelLow  BudgetLevel = "low"
	BudgetLevelMid  BudgetLevel = "mid"
	BudgetLevelHigh BudgetLevel = "high"
)

// FamilyMember represents one traveler in a trip profile.
// Age is free text from the intake form; consumers must parse defensively.
type FamilyMember struct {
	Name        string `json:"name"`
	Age         string `json:"age"`
	Email       string `json:"email,omitempty"`
	IsOrganizer bool   `json:"is_organizer,omitempty"`
}

// TripProfile is the input to task generation. It is treated as
// immutable for the duration of one generation call.
type TripProfile struct {
	DestinationCity     string         `json:"destination_city,omitempty"`
	DestinationCountry  string         `json:"destination_country,omitempty"`
	StartDate           string         `json:"start_date,omitempty"`
	EndDate             string         `json:"end_date,omitempty"`
	Adults              []FamilyMember `json:"adults,omitempty"`
	Children            []FamilyMember `json:"children,omitempty"`
	TripPurpose         TripPurpose    `json:"trip_purpose,omitempty"`
	TravelStyle         TravelStyle    `json:"travel_style,omitempty"`
	BudgetLevel         BudgetLevel    `json:"budget_level,omitempty"`
	DietaryPreferences  []string       `json:"dietary_preferences,omitempty"`
	FlightsBooked       bool           `json:"flights_booked"`
	AccommodationBooked bool           `json:"accommodation_booked"`
	InsuranceArranged   bool           `json:"insurance_arranged"`
}
