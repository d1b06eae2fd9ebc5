package cities

import "github.com/benvon/smart-trip/internal/models"

const tokyoSource = "tokyo-intelligence"

type tokyoProvider struct{}

func (tokyoProvider) City() string { return "tokyo" }

func (tokyoProvider) Tasks(profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	signals := models.ComputeFamilySignals(profile)

	tasks := []models.SmartTask{
		cityTask{
			id:           "tokyo-rail-passes",
			title:        "Price a rail pass against single tickets",
			subtitle:     "Passes only pay off with long-distance days",
			category:     "City Intelligence",
			priority:     models.TaskPriorityMedium,
			daysBefore:   21,
			urgentWithin: 10,
			reasoning:    "Rail passes must be weighed against your actual itinerary; inside Tokyo an IC card usually wins.",
		}.build(tokyoSource, daysUntilTrip),
		cityTask{
			id:         "tokyo-teamlab-tickets",
			title:      "Book teamLab tickets early",
			subtitle:   "Weekend slots go weeks ahead",
			category:   "City Intelligence",
			priority:   models.TaskPriorityMedium,
			daysBefore: 30,
			reasoning:  "The teamLab museums are the most-requested kid activity in Tokyo and sell out earliest.",
		}.build(tokyoSource, daysUntilTrip),
	}

	if signals.HasChildren() {
		tasks = append(tasks, cityTask{
			id:         "tokyo-luggage-forwarding",
			title:      "Arrange luggage forwarding between hotels",
			subtitle:   "Trains plus suitcases plus kids do not mix",
			category:   "City Intelligence",
			priority:   models.TaskPriorityLow,
			daysBefore: 7,
			reasoning:  "Takkyubin forwards bags overnight for a few dollars; families ride trains carrying only day packs.",
		}.build(tokyoSource, daysUntilTrip))
	}

	return tasks
}
