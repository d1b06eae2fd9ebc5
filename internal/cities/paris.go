package cities

import "github.com/benvon/smart-trip/internal/models"

const parisSource = "paris-intelligence"

type parisProvider struct{}

func (parisProvider) City() string { return "paris" }

func (parisProvider) Tasks(profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	signals := models.ComputeFamilySignals(profile)

	tasks := []models.SmartTask{
		cityTask{
			id:           "paris-museum-timed-entry",
			title:        "Book timed entries for the Louvre and Eiffel Tower",
			subtitle:     "Same-day lines run hours in season",
			category:     "City Intelligence",
			priority:     models.TaskPriorityHigh,
			daysBefore:   30,
			urgentWithin: 21,
			reasoning:    "Paris's headline sights sell timed slots weeks ahead; walk-up lines with kids are a trip-day loss.",
		}.build(parisSource, daysUntilTrip),
	}

	if signals.HasChildren() {
		tasks = append(tasks, cityTask{
			id:         "paris-picnic-playgrounds",
			title:      "Map the playground-and-picnic circuit",
			subtitle:   "Luxembourg, Tuileries, and canal-side bakeries",
			category:   "City Intelligence",
			priority:   models.TaskPriorityLow,
			daysBefore: 14,
			reasoning:  "Paris with kids works as alternating sights and playgrounds; bakery picnics keep food costs and meltdowns down.",
		}.build(parisSource, daysUntilTrip))
	}

	if profile.TripPurpose == models.TripPurposeThemeParks || signals.HasYoungChildren() {
		tasks = append(tasks, cityTask{
			id:         "paris-disneyland-day",
			title:      "Decide on a Disneyland Paris day trip",
			subtitle:   "40 minutes by RER, tickets cheaper online",
			category:   "City Intelligence",
			priority:   models.TaskPriorityMedium,
			daysBefore: 21,
			reasoning:  "Disneyland Paris is an easy RER ride; deciding early avoids paying gate prices or losing a city day to indecision.",
		}.build(parisSource, daysUntilTrip))
	}

	return tasks
}
