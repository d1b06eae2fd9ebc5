package cities

import "github.com/benvon/smart-trip/internal/models"

const orlandoSource = "orlando-intelligence"

type orlandoProvider struct{}

func (orlandoProvider) City() string { return "orlando" }

func (orlandoProvider) Tasks(profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	signals := models.ComputeFamilySignals(profile)
	parksTrip := profile.TripPurpose == models.TripPurposeThemeParks ||
		profile.TripPurpose == models.TripPurposeVacation ||
		signals.HasChildren()

	var tasks []models.SmartTask

	if parksTrip {
		tasks = append(tasks, cityTask{
			id:           "orlando-lightning-lane",
			title:        "Decide your Lightning Lane strategy",
			subtitle:     "Ride-skip passes sell by park day and sell out",
			category:     "City Intelligence",
			priority:     models.TaskPriorityHigh,
			daysBefore:   30,
			urgentWithin: 60,
			reasoning:    "Lightning Lane and similar ride-skip products are bought per park day; the popular tiers are gone by mid-morning. Families with young kids gain the most from pre-planning them.",
		}.build(orlandoSource, daysUntilTrip))

		tasks = append(tasks, cityTask{
			id:           "orlando-park-reservations",
			title:        "Make park reservations for each ticket day",
			subtitle:     "Tickets alone do not guarantee entry",
			category:     "City Intelligence",
			priority:     models.TaskPriorityHigh,
			daysBefore:   45,
			urgentWithin: 30,
			reasoning:    "Orlando's major parks run reservation calendars on top of tickets; peak days close out weeks ahead.",
		}.build(orlandoSource, daysUntilTrip))
	}

	tasks = append(tasks, cityTask{
		id:         "orlando-dining-reservations",
		title:      "Book character dining 60 days out",
		subtitle:   "The popular breakfasts vanish at the window open",
		category:   "City Intelligence",
		priority:   models.TaskPriorityMedium,
		daysBefore: 60,
		reasoning:  "Character meals open their booking window 60 days ahead and the breakfast slots go in minutes.",
	}.build(orlandoSource, daysUntilTrip))

	return tasks
}
