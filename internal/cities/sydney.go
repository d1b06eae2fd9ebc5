package cities

import "github.com/benvon/smart-trip/internal/models"

const sydneySource = "sydney-intelligence"

type sydneyProvider struct{}

func (sydneyProvider) City() string { return "sydney" }

func (sydneyProvider) Tasks(profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	signals := models.ComputeFamilySignals(profile)

	tasks := []models.SmartTask{
		cityTask{
			id:         "sydney-ferry-itinerary",
			title:      "Build days around the ferry network",
			subtitle:   "Manly and Taronga by boat beat any tour",
			category:   "City Intelligence",
			priority:   models.TaskPriorityMedium,
			daysBefore: 14,
			reasoning:  "Public ferries double as harbour cruises at transit prices; the Manly and zoo runs are the family staples.",
		}.build(sydneySource, daysUntilTrip),
	}

	if signals.HasChildren() {
		tasks = append(tasks, cityTask{
			id:         "sydney-rockpool-swims",
			title:      "Choose patrolled beaches and rock pools",
			subtitle:   "Swim between the flags, always",
			category:   "City Intelligence",
			priority:   models.TaskPriorityMedium,
			daysBefore: 7,
			reasoning:  "Ocean pools give kids safe saltwater swimming; surf beaches need the patrolled-flag rule explained before arrival.",
		}.build(sydneySource, daysUntilTrip))
	}

	if profile.TripPurpose == models.TripPurposeCulture || signals.HasTeen {
		tasks = append(tasks, cityTask{
			id:         "sydney-opera-house-tour",
			title:      "Book an Opera House backstage tour",
			subtitle:   "Tours sell further ahead than performances",
			category:   "City Intelligence",
			priority:   models.TaskPriorityLow,
			daysBefore: 21,
			reasoning:  "The building tour is the family-friendly way in and its small groups cap out early.",
		}.build(sydneySource, daysUntilTrip))
	}

	return tasks
}
