package cities

import "github.com/benvon/smart-trip/internal/models"

const singaporeSource = "singapore-intelligence"

type singaporeProvider struct{}

func (singaporeProvider) City() string { return "singapore" }

func (singaporeProvider) Tasks(profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	signals := models.ComputeFamilySignals(profile)

	tasks := []models.SmartTask{
		cityTask{
			id:         "singapore-indoor-midday",
			title:      "Schedule indoor stops for midday heat",
			subtitle:   "Gardens at dawn, malls and museums at noon",
			category:   "City Intelligence",
			priority:   models.TaskPriorityMedium,
			daysBefore: 7,
			reasoning:  "Equatorial humidity peaks from 11am to 3pm; the city is built for air-conditioned midday refuges.",
		}.build(singaporeSource, daysUntilTrip),
	}

	if signals.HasChildren() {
		tasks = append(tasks, cityTask{
			id:         "singapore-zoo-river-safari",
			title:      "Book the zoo and night safari combo",
			subtitle:   "Tram seats and feeding sessions are timed",
			category:   "City Intelligence",
			priority:   models.TaskPriorityMedium,
			daysBefore: 14,
			reasoning:  "The Mandai parks sell timed entries and the night safari trams fill; combos price better online.",
		}.build(singaporeSource, daysUntilTrip))
	}

	tasks = append(tasks, cityTask{
		id:         "singapore-hawker-plan",
		title:      "Pick hawker centres near each day's sights",
		subtitle:   "The best meals are the cheapest ones",
		category:   "City Intelligence",
		priority:   models.TaskPriorityLow,
		daysBefore: 7,
		reasoning:  "Hawker centres solve family dining cost and pickiness at once; each district has a standout worth mapping.",
	}.build(singaporeSource, daysUntilTrip))

	return tasks
}
