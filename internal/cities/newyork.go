package cities

import "github.com/benvon/smart-trip/internal/models"

const newYorkSource = "newyork-intelligence"

type newYorkProvider struct{}

func (newYorkProvider) City() string { return "new york" }

func (newYorkProvider) Tasks(profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	signals := models.ComputeFamilySignals(profile)

	tasks := []models.SmartTask{
		cityTask{
			id:         "newyork-observation-deck",
			title:      "Pick one observation deck and book it",
			subtitle:   "One skyline view is plenty; sunset slots go first",
			category:   "City Intelligence",
			priority:   models.TaskPriorityMedium,
			daysBefore: 14,
			reasoning:  "Decks are expensive per head for a family; choosing one in advance saves money and a second queue.",
		}.build(newYorkSource, daysUntilTrip),
	}

	if signals.HasTeen || profile.TripPurpose == models.TripPurposeCulture {
		tasks = append(tasks, cityTask{
			id:           "newyork-broadway-lottery",
			title:        "Enter Broadway digital lotteries",
			subtitle:     "Entries open days ahead of each show",
			category:     "City Intelligence",
			priority:     models.TaskPriorityMedium,
			daysBefore:   10,
			urgentWithin: 7,
			reasoning:    "Digital lotteries are the family-budget path to Broadway but require entering early in the week.",
		}.build(newYorkSource, daysUntilTrip))
	}

	if signals.HasChildren() {
		tasks = append(tasks, cityTask{
			id:         "newyork-walking-blocks",
			title:      "Group sights by neighborhood",
			subtitle:   "Cross-town hops burn the day",
			category:   "City Intelligence",
			priority:   models.TaskPriorityLow,
			daysBefore: 14,
			reasoning:  "Manhattan days with kids work as one neighborhood per day; the subway with a stroller is a last resort.",
		}.build(newYorkSource, daysUntilTrip))
	}

	return tasks
}
