package cities

import "github.com/benvon/smart-trip/internal/models"

const romeSource = "rome-intelligence"

type romeProvider struct{}

func (romeProvider) City() string { return "rome" }

func (romeProvider) Tasks(profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	signals := models.ComputeFamilySignals(profile)

	tasks := []models.SmartTask{
		cityTask{
			id:           "rome-colosseum-tickets",
			title:        "Book Colosseum and Vatican entries",
			subtitle:     "Official slots release 30 days out and vanish",
			category:     "City Intelligence",
			priority:     models.TaskPriorityHigh,
			daysBefore:   30,
			urgentWithin: 21,
			reasoning:    "Rome's two must-sees both run timed official tickets that resellers strip within hours of release.",
		}.build(romeSource, daysUntilTrip),
	}

	if signals.HasChildren() {
		tasks = append(tasks, cityTask{
			id:         "rome-gelato-breaks",
			title:      "Plan ruins in short blocks with gelato breaks",
			subtitle:   "Ancient sites have no shade and no seats",
			category:   "City Intelligence",
			priority:   models.TaskPriorityLow,
			daysBefore: 7,
			reasoning:  "The Forum and Palatine are exposed and unpaved; kids last about ninety minutes before a break is due.",
		}.build(romeSource, daysUntilTrip))
	}

	if profile.TripPurpose == models.TripPurposeCulture {
		tasks = append(tasks, cityTask{
			id:         "rome-early-entry-tours",
			title:      "Compare early-entry small-group tours",
			subtitle:   "Beating the tour buses is worth the premium",
			category:   "City Intelligence",
			priority:   models.TaskPriorityMedium,
			daysBefore: 21,
			reasoning:  "Before-hours Vatican and Colosseum access exists through licensed operators and transforms the experience.",
		}.build(romeSource, daysUntilTrip))
	}

	return tasks
}
