package engine

import (
	"fmt"

	"github.com/benvon/smart-trip/internal/knowledge"
	"github.com/benvon/smart-trip/internal/models"
)

const sourceFamilyComposition = "family-composition"

// minSiblingAgeGap is the sibling age spread that triggers the
// split-activities advice.
const minSiblingAgeGap = 8

// familyRule pairs a signal predicate with the task it emits. The flat
// table replaces nested age-bucket conditionals so each rule can be
// read and tested on its own.
type familyRule struct {
	when     func(models.FamilySignals) bool
	template taskTemplate
}

var familyRules = []familyRule{
	{
		when: func(s models.FamilySignals) bool { return s.HasInfant },
		template: taskTemplate{
			id:         "pack-infant-gear",
			title:      "Pack the infant travel kit",
			subtitle:   "Formula, diapers, and a day of spares in carry-on",
			category:   "Packing",
			priority:   models.TaskPriorityHigh,
			daysBefore: 7,
			reasoning:  "Checked-bag delays with an infant are an emergency; the carry-on kit makes them an inconvenience.",
			source:     sourceFamilyComposition,
		},
	},
	{
		when: func(s models.FamilySignals) bool { return s.HasInfant || s.HasToddler },
		template: taskTemplate{
			id:         "check-stroller-policy",
			title:      "Check stroller and car-seat policies",
			subtitle:   "Airline, hotel, and venue rules differ",
			category:   "Logistics",
			priority:   models.TaskPriorityMedium,
			daysBefore: 14,
			reasoning:  "Gate-check rules and venue stroller bans vary; knowing them avoids surprises at the door.",
			source:     sourceFamilyComposition,
		},
	},
	{
		when: func(s models.FamilySignals) bool { return s.HasToddler },
		template: taskTemplate{
			id:         "plan-nap-schedule",
			title:      "Plan activities around nap windows",
			subtitle:   "A skipped nap costs the whole afternoon",
			category:   "Preparation",
			priority:   models.TaskPriorityMedium,
			daysBefore: 14,
			reasoning:  "Toddler trips work when the big activity lands before the nap, not across it.",
			source:     sourceFamilyComposition,
		},
	},
	{
		when: func(s models.FamilySignals) bool { return s.HasSchoolAge },
		template: taskTemplate{
			id:         "pack-travel-entertainment",
			title:      "Load up travel-day entertainment",
			subtitle:   "Downloads, games, and snacks for transit days",
			category:   "Packing",
			priority:   models.TaskPriorityLow,
			daysBefore: 3,
			reasoning:  "School-age kids handle long transit fine when the entertainment is planned, not improvised.",
			source:     sourceFamilyComposition,
		},
	},
	{
		when: func(s models.FamilySignals) bool { return s.HasTeen },
		template: taskTemplate{
			id:         "involve-teens-planning",
			title:      "Let each teen pick one activity",
			subtitle:   "Ownership beats reluctant attendance",
			category:   "Preparation",
			priority:   models.TaskPriorityLow,
			daysBefore: 21,
			reasoning:  "A teen who chose one day of the trip shows up differently for the other days.",
			source:     sourceFamilyComposition,
		},
	},
	{
		when: func(s models.FamilySignals) bool { return s.HasElder },
		template: taskTemplate{
			id:         "plan-accessible-pacing",
			title:      "Pace the itinerary for grandparents",
			subtitle:   "Shorter walking days and seated breaks",
			category:   "Preparation",
			priority:   models.TaskPriorityMedium,
			daysBefore: 14,
			reasoning:  "Multi-generation trips succeed on pacing; build in benches, taxis, and early evenings.",
			source:     sourceFamilyComposition,
		},
	},
	{
		when: func(s models.FamilySignals) bool { return s.MaxChildAgeGap >= minSiblingAgeGap },
		template: taskTemplate{
			id:         "split-activities-age-gap",
			title:      "Plan split activities for the age gap",
			subtitle:   "One parent per age group for part of each day",
			category:   "Preparation",
			priority:   models.TaskPriorityMedium,
			daysBefore: 14,
			reasoning:  "With a wide sibling age gap, a daily split-and-reunite plan keeps both kids engaged.",
			source:     sourceFamilyComposition,
		},
	},
}

// familyTasks evaluates the flat rule table against the profile's
// family signals, plus the dietary-preference rule which needs the
// profile and the destination's knowledge table.
func familyTasks(profile *models.TripProfile, signals models.FamilySignals, know *knowledge.CityKnowledge, daysUntilTrip int) []models.SmartTask {
	var tasks []models.SmartTask
	for _, rule := range familyRules {
		if rule.when(signals) {
			tasks = append(tasks, rule.template.build(profile.DestinationCity, daysUntilTrip))
		}
	}

	if len(profile.DietaryPreferences) > 0 {
		tasks = append(tasks, dietaryTask(know).build(profile.DestinationCity, daysUntilTrip))
	}

	return tasks
}

// dietaryTask builds the dietary-research template. When the
// destination has a knowledge table, the first listed restaurant is
// named as the starting point; the first entry keeps repeated
// generations identical.
func dietaryTask(know *knowledge.CityKnowledge) taskTemplate {
	template := taskTemplate{
		id:         "research-dietary-restaurants",
		title:      "Shortlist restaurants for your dietary needs",
		subtitle:   "Find the safe options in {city} before hunger does",
		category:   "Food",
		priority:   models.TaskPriorityMedium,
		daysBefore: 10,
		reasoning:  "Dietary restrictions narrow options sharply abroad; a researched shortlist prevents bad defaults.",
		source:     sourceFamilyComposition,
	}

	if know != nil && len(know.Restaurants) > 0 {
		first := know.Restaurants[0]
		template.subtitle = fmt.Sprintf("Start with %s in %s", first.Name, first.Area)
		template.reasoning = fmt.Sprintf(
			"Dietary restrictions narrow options sharply abroad; %s is a known family-friendly anchor for the shortlist.",
			first.Name,
		)
	}

	return template
}
