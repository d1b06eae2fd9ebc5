package engine

import "github.com/benvon/smart-trip/internal/models"

const sourceTravelStyle = "travel-style"

// styleTemplates maps each travel style to its literal task list.
var styleTemplates = map[models.TravelStyle][]taskTemplate{
	models.TravelStyleBudget: {
		{
			id:         "set-daily-budget",
			title:      "Set a daily spending cap",
			subtitle:   "Agree the number before the trip, not during",
			category:   "Budget",
			priority:   models.TaskPriorityMedium,
			daysBefore: 14,
			reasoning:  "A cap agreed at home removes the daily negotiation on the road.",
			source:     sourceTravelStyle,
		},
		{
			id:         "research-free-activities",
			title:      "List the free things to do in {city}",
			subtitle:   "Parks, markets, and free museum days",
			category:   "Budget",
			priority:   models.TaskPriorityLow,
			daysBefore: 14,
			reasoning:  "Most cities hide excellent free days; finding them beforehand protects the budget.",
			source:     sourceTravelStyle,
		},
	},
	models.TravelStyleComfort: {
		{
			id:         "book-airport-transfers",
			title:      "Book airport transfers ahead",
			subtitle:   "Skip the arrivals-hall taxi scramble",
			category:   "Logistics",
			priority:   models.TaskPriorityMedium,
			daysBefore: 14,
			reasoning:  "A pre-booked transfer with car seats beats negotiating one jet-lagged with luggage.",
			source:     sourceTravelStyle,
		},
	},
	models.TravelStyleLuxury: {
		{
			id:         "arrange-concierge-services",
			title:      "Brief the hotel concierge before arrival",
			subtitle:   "Dinner bookings and sitters take lead time",
			category:   "Logistics",
			priority:   models.TaskPriorityLow,
			daysBefore: 21,
			reasoning:  "The concierge can hold tables and vetted sitters only with advance notice.",
			source:     sourceTravelStyle,
		},
	},
	models.TravelStyleBackpacker: {
		{
			id:         "pack-light-checklist",
			title:      "Build the one-bag packing list",
			subtitle:   "Every family member carries their own",
			category:   "Packing",
			priority:   models.TaskPriorityMedium,
			daysBefore: 10,
			reasoning:  "One bag per person is the difference between moving freely and dragging the trip.",
			source:     sourceTravelStyle,
		},
	},
}

// styleTasks returns the literal task list for the profile's travel
// style. Unknown or missing styles contribute nothing.
func styleTasks(profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	templates, ok := styleTemplates[profile.TravelStyle]
	if !ok {
		return nil
	}
	return buildAll(templates, profile.DestinationCity, daysUntilTrip)
}
