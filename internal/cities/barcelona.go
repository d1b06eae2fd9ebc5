package cities

import "github.com/benvon/smart-trip/internal/models"

const barcelonaSource = "barcelona-intelligence"

type barcelonaProvider struct{}

func (barcelonaProvider) City() string { return "barcelona" }

func (barcelonaProvider) Tasks(profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	signals := models.ComputeFamilySignals(profile)

	tasks := []models.SmartTask{
		cityTask{
			id:           "barcelona-sagrada-tickets",
			title:        "Book Sagrada Familia timed tickets",
			subtitle:     "Gate sales are effectively gone in season",
			category:     "City Intelligence",
			priority:     models.TaskPriorityHigh,
			daysBefore:   30,
			urgentWithin: 14,
			reasoning:    "Sagrada Familia entry is timed-only and the family-friendly morning slots book out weeks ahead.",
		}.build(barcelonaSource, daysUntilTrip),
	}

	if signals.HasChildren() {
		tasks = append(tasks, cityTask{
			id:         "barcelona-beach-afternoons",
			title:      "Keep afternoons free for the beach",
			subtitle:   "Sights in the morning, sand after lunch",
			category:   "City Intelligence",
			priority:   models.TaskPriorityLow,
			daysBefore: 7,
			reasoning:  "Barceloneta is a metro ride from everything; the beach afternoon is the release valve that keeps kids happy.",
		}.build(barcelonaSource, daysUntilTrip))
	}

	tasks = append(tasks, cityTask{
		id:         "barcelona-late-dinners",
		title:      "Plan around late Spanish dinner hours",
		subtitle:   "Kitchens open at 8pm; kids eat earlier",
		category:   "City Intelligence",
		priority:   models.TaskPriorityLow,
		daysBefore: 7,
		reasoning:  "Restaurants serving before 8pm are rare; tapas bars and market halls cover the early family dinner.",
	}.build(barcelonaSource, daysUntilTrip))

	return tasks
}
