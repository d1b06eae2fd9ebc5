package engine

import (
	"github.com/benvon/smart-trip/internal/geo"
	"github.com/benvon/smart-trip/internal/models"
)

const sourceCoreLogistics = "core-logistics"

// homeCountry is the assumed country of residence; destination
// countries other than this one trigger international-travel tasks.
var homeCountryNames = map[string]bool{
	"united states":            true,
	"usa":                      true,
	"united states of america": true,
}

// isInternational reports whether the destination country is set and
// differs from the home country.
func isInternational(profile *models.TripProfile) bool {
	country := geo.Normalize(profile.DestinationCountry)
	return country != "" && !homeCountryNames[country]
}

// coreLogisticsTasks emits the flight/accommodation/passport/insurance
// baseline tasks, gated on booking-status flags and day thresholds.
func coreLogisticsTasks(profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	var tasks []models.SmartTask
	city := profile.DestinationCity

	if !profile.FlightsBooked {
		tasks = append(tasks, taskTemplate{
			id:           "book-flights",
			title:        "Book your flights",
			subtitle:     "Flights to {city} are not booked yet",
			category:     "Logistics",
			priority:     models.TaskPriorityHigh,
			daysBefore:   60,
			urgentWithin: 30,
			reasoning:    "Fares climb steeply inside 30 days; booking early locks seats together for the family.",
			source:       sourceCoreLogistics,
		}.build(city, daysUntilTrip))
	}

	if !profile.AccommodationBooked {
		tasks = append(tasks, taskTemplate{
			id:           "book-accommodation",
			title:        "Book your accommodation",
			subtitle:     "No place to stay is arranged yet",
			category:     "Logistics",
			priority:     models.TaskPriorityHigh,
			daysBefore:   45,
			urgentWithin: 21,
			reasoning:    "Family rooms and connecting rooms sell out well before standard inventory.",
			source:       sourceCoreLogistics,
		}.build(city, daysUntilTrip))
	}

	if !profile.InsuranceArranged {
		tasks = append(tasks, taskTemplate{
			id:           "arrange-travel-insurance",
			title:        "Arrange travel insurance",
			subtitle:     "Cover the whole family before departure",
			category:     "Logistics",
			priority:     models.TaskPriorityMedium,
			daysBefore:   30,
			urgentWithin: 14,
			reasoning:    "Policies bought close to departure often exclude pre-departure cancellations.",
			source:       sourceCoreLogistics,
		}.build(city, daysUntilTrip))
	}

	if isInternational(profile) {
		tasks = append(tasks, taskTemplate{
			id:           "check-passport-validity",
			title:        "Check passport validity for everyone",
			subtitle:     "Many countries require six months of validity past your return",
			category:     "Documents",
			priority:     models.TaskPriorityHigh,
			daysBefore:   90,
			urgentWithin: 30,
			reasoning:    "Passport renewals for children require both guardians and can take two months.",
			source:       sourceCoreLogistics,
		}.build(city, daysUntilTrip))

		tasks = append(tasks, taskTemplate{
			id:         "notify-bank-travel",
			title:      "Notify your bank of international travel",
			subtitle:   "Avoid card freezes abroad",
			category:   "Documents",
			priority:   models.TaskPriorityLow,
			daysBefore: 7,
			reasoning:  "Foreign transactions without a travel notice are a common fraud-flag trigger.",
			source:     sourceCoreLogistics,
		}.build(city, daysUntilTrip))
	}

	if daysUntilTrip <= 7 {
		tasks = append(tasks, taskTemplate{
			id:           "final-confirmations",
			title:        "Reconfirm bookings and check in online",
			subtitle:     "Departure is less than a week away",
			category:     "Logistics",
			priority:     models.TaskPriorityHigh,
			daysBefore:   7,
			urgentWithin: 7,
			reasoning:    "Flight schedule changes and hotel overbookings surface in the final week.",
			source:       sourceCoreLogistics,
		}.build(city, daysUntilTrip))
	}

	return tasks
}
