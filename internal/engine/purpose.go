package engine

import "github.com/benvon/smart-trip/internal/models"

const sourceTripPurpose = "trip-purpose"

// purposeTemplates maps each trip purpose to its literal task list.
// Selection is wholesale; only the city name is interpolated.
var purposeTemplates = map[models.TripPurpose][]taskTemplate{
	models.TripPurposeThemeParks: {
		{
			id:           "research-park-tickets",
			title:        "Buy park tickets in advance",
			subtitle:     "Gate prices are the worst prices",
			category:     "Activities",
			priority:     models.TaskPriorityHigh,
			daysBefore:   60,
			urgentWithin: 30,
			reasoning:    "Theme-park trips hinge on advance tickets; many parks also require a dated reservation.",
			source:       sourceTripPurpose,
		},
		{
			id:         "plan-rest-days",
			title:      "Plan a rest day between park days",
			subtitle:   "Back-to-back park days break families",
			category:   "Activities",
			priority:   models.TaskPriorityLow,
			daysBefore: 14,
			reasoning:  "Pool or downtime days between parks keep younger kids functional for the full trip.",
			source:     sourceTripPurpose,
		},
	},
	models.TripPurposeVacation: {
		{
			id:         "build-day-itinerary",
			title:      "Sketch a loose day-by-day plan for {city}",
			subtitle:   "One anchor activity per day is plenty",
			category:   "Activities",
			priority:   models.TaskPriorityMedium,
			daysBefore: 21,
			reasoning:  "A single anchor per day leaves room for naps, weather, and the unplanned find.",
			source:     sourceTripPurpose,
		},
		{
			id:           "book-key-activities",
			title:        "Book the must-do activities",
			subtitle:     "Popular bookings in {city} go early",
			category:     "Activities",
			priority:     models.TaskPriorityMedium,
			daysBefore:   30,
			urgentWithin: 14,
			reasoning:    "The two or three things the family most wants to do are the ones that sell out.",
			source:       sourceTripPurpose,
		},
	},
	models.TripPurposeCulture: {
		{
			id:           "reserve-museum-tickets",
			title:        "Reserve timed museum entries",
			subtitle:     "Major sights in {city} use timed tickets",
			category:     "Activities",
			priority:     models.TaskPriorityMedium,
			daysBefore:   30,
			urgentWithin: 14,
			reasoning:    "Timed entry lines are short; same-day lines with kids are not.",
			source:       sourceTripPurpose,
		},
		{
			id:         "learn-basic-phrases",
			title:      "Learn ten phrases as a family",
			subtitle:   "Kids love ordering in the local language",
			category:   "Preparation",
			priority:   models.TaskPriorityLow,
			daysBefore: 14,
			reasoning:  "A few phrases turn kids from passengers into participants.",
			source:     sourceTripPurpose,
		},
	},
	models.TripPurposeAdventure: {
		{
			id:           "check-gear-requirements",
			title:        "Check gear and rental requirements",
			subtitle:     "Know what to bring versus rent",
			category:     "Preparation",
			priority:     models.TaskPriorityMedium,
			daysBefore:   21,
			urgentWithin: 10,
			reasoning:    "Child-size gear is the first thing rental shops run out of.",
			source:       sourceTripPurpose,
		},
		{
			id:         "verify-activity-ages",
			title:      "Verify age and height minimums for activities",
			subtitle:   "Avoid a turned-away kid at the trailhead",
			category:   "Preparation",
			priority:   models.TaskPriorityHigh,
			daysBefore: 30,
			reasoning:  "Operators enforce age, height, and weight limits with no refund at the counter.",
			source:     sourceTripPurpose,
		},
	},
	models.TripPurposeRelaxation: {
		{
			id:         "book-spa-pool-time",
			title:      "Book spa slots and check pool hours",
			subtitle:   "Relaxation needs childcare logistics",
			category:   "Activities",
			priority:   models.TaskPriorityLow,
			daysBefore: 14,
			reasoning:  "Adults relax when kids-club and pool hours are mapped to nap windows in advance.",
			source:     sourceTripPurpose,
		},
	},
	models.TripPurposeVisitingKin: {
		{
			id:         "plan-host-gifts",
			title:      "Plan gifts for your hosts",
			subtitle:   "Pick something packable before you fly",
			category:   "Preparation",
			priority:   models.TaskPriorityLow,
			daysBefore: 7,
			reasoning:  "Gifts bought at the destination cost more and say less.",
			source:     sourceTripPurpose,
		},
	},
	models.TripPurposeBusinessPlus: {
		{
			id:         "split-work-family-schedule",
			title:      "Block the work days on a shared calendar",
			subtitle:   "Separate meeting days from family days",
			category:   "Preparation",
			priority:   models.TaskPriorityMedium,
			daysBefore: 14,
			reasoning:  "Mixing work and family days halves both; the family plans around a visible calendar.",
			source:     sourceTripPurpose,
		},
	},
}

// purposeTasks returns the literal task list for the profile's trip
// purpose. Unknown or missing purposes contribute nothing.
func purposeTasks(profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	templates, ok := purposeTemplates[profile.TripPurpose]
	if !ok {
		return nil
	}
	return buildAll(templates, profile.DestinationCity, daysUntilTrip)
}
