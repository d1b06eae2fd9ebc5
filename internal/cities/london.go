package cities

import "github.com/benvon/smart-trip/internal/models"

const londonSource = "london-intelligence"

type londonProvider struct{}

func (londonProvider) City() string { return "london" }

func (londonProvider) Tasks(profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	signals := models.ComputeFamilySignals(profile)

	tasks := []models.SmartTask{
		cityTask{
			id:         "london-free-museums",
			title:      "Book free timed entry at the big museums",
			subtitle:   "Free does not mean no ticket",
			category:   "City Intelligence",
			priority:   models.TaskPriorityMedium,
			daysBefore: 14,
			reasoning:  "London's major museums are free but use timed-entry bookings; the dinosaur gallery queue proves it.",
		}.build(londonSource, daysUntilTrip),
	}

	if signals.HasTeen || profile.TripPurpose == models.TripPurposeCulture {
		tasks = append(tasks, cityTask{
			id:           "london-theatre-tickets",
			title:        "Enter the theatre ticket lotteries",
			subtitle:     "Family-priced West End seats exist if you plan",
			category:     "City Intelligence",
			priority:     models.TaskPriorityMedium,
			daysBefore:   21,
			urgentWithin: 10,
			reasoning:    "West End lotteries and matinee pricing make theatre affordable for families, but only before the week of.",
		}.build(londonSource, daysUntilTrip))
	}

	if signals.HasYoungChildren() {
		tasks = append(tasks, cityTask{
			id:         "london-stepfree-planning",
			title:      "Plan Tube routes around step-free stations",
			subtitle:   "Buses beat stairs with a stroller",
			category:   "City Intelligence",
			priority:   models.TaskPriorityLow,
			daysBefore: 7,
			reasoning:  "TfL publishes a step-free map; with a stroller the bus network is often the better default.",
		}.build(londonSource, daysUntilTrip))
	}

	return tasks
}
