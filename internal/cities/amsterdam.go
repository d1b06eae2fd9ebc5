package cities

import "github.com/benvon/smart-trip/internal/models"

const amsterdamSource = "amsterdam-intelligence"

type amsterdamProvider struct{}

func (amsterdamProvider) City() string { return "amsterdam" }

func (amsterdamProvider) Tasks(profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	signals := models.ComputeFamilySignals(profile)

	tasks := []models.SmartTask{
		cityTask{
			id:           "amsterdam-anne-frank-tickets",
			title:        "Book Anne Frank House the moment tickets release",
			subtitle:     "Online-only, six weeks ahead, gone in minutes",
			category:     "City Intelligence",
			priority:     models.TaskPriorityHigh,
			daysBefore:   42,
			urgentWithin: 42,
			reasoning:    "All Anne Frank House entry is online and releases six weeks out; there is no door queue to fall back on.",
		}.build(amsterdamSource, daysUntilTrip),
	}

	if signals.HasChildren() {
		tasks = append(tasks, cityTask{
			id:         "amsterdam-canal-and-nemo",
			title:      "Pair a canal cruise with the NEMO science museum",
			subtitle:   "Both sit on the same waterfront walk",
			category:   "City Intelligence",
			priority:   models.TaskPriorityMedium,
			daysBefore: 14,
			reasoning:  "NEMO and the canal boats anchor the best kid day in the city and combine into one outing.",
		}.build(amsterdamSource, daysUntilTrip))
	}

	tasks = append(tasks, cityTask{
		id:         "amsterdam-cargo-bike-rental",
		title:      "Reserve a family cargo bike",
		subtitle:   "The local way to move kids around town",
		category:   "City Intelligence",
		priority:   models.TaskPriorityLow,
		daysBefore: 10,
		reasoning:  "Bakfiets rentals with child seats book out on fair-weather weekends and beat trams for park-hopping.",
	}.build(amsterdamSource, daysUntilTrip))

	return tasks
}
