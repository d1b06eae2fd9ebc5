package engine

import (
	"github.com/benvon/smart-trip/internal/geo"
	"github.com/benvon/smart-trip/internal/models"
)

const sourceDestinationPainPoint = "destination-pain-point"

// painPointTask returns the single best-known pain-point warning for
// the destination city given the family's composition, or nil. At most
// one pain-point task ever enters the pipeline.
func painPointTask(profile *models.TripProfile, signals models.FamilySignals, daysUntilTrip int) *models.SmartTask {
	var tpl *taskTemplate

	switch geo.CanonicalCity(profile.DestinationCity) {
	case "orlando":
		if signals.HasYoungChildren() {
			tpl = &taskTemplate{
				id:         "orlando-stroller-heat",
				title:      "Prepare for heat with a stroller",
				subtitle:   "Shade clips, a fan, and water beat the Florida sun",
				category:   "Destination",
				priority:   models.TaskPriorityMedium,
				daysBefore: 7,
				reasoning:  "Orlando park days with small kids fail on heat before anything else; stroller shade and hydration are the fix.",
				source:     sourceDestinationPainPoint,
			}
		}
	case "paris":
		if signals.HasInfant || signals.HasToddler {
			tpl = &taskTemplate{
				id:         "paris-metro-stairs",
				title:      "Plan around metro staircases",
				subtitle:   "Most stations have no elevator",
				category:   "Destination",
				priority:   models.TaskPriorityMedium,
				daysBefore: 7,
				reasoning:  "Carrying a stroller up metro stairs gets old by day two; buses and line 14 are the workarounds.",
				source:     sourceDestinationPainPoint,
			}
		}
	case "tokyo":
		if signals.HasChildren() {
			tpl = &taskTemplate{
				id:         "tokyo-rush-hour",
				title:      "Avoid trains during rush hour",
				subtitle:   "7:30-9:00 is no place for a family group",
				category:   "Destination",
				priority:   models.TaskPriorityMedium,
				daysBefore: 7,
				reasoning:  "Tokyo rush-hour crowding separates families; shifting departures past 9:30 removes the problem.",
				source:     sourceDestinationPainPoint,
			}
		}
	case "london":
		if signals.HasInfant || signals.HasToddler {
			tpl = &taskTemplate{
				id:         "london-tube-access",
				title:      "Check step-free Tube stations",
				subtitle:   "Many stations are escalator-and-stairs only",
				category:   "Destination",
				priority:   models.TaskPriorityMedium,
				daysBefore: 7,
				reasoning:  "Step-free access maps exist for a reason; buses cover the gaps with a stroller.",
				source:     sourceDestinationPainPoint,
			}
		}
	case "rome":
		if signals.HasElder || signals.HasInfant || signals.HasToddler {
			tpl = &taskTemplate{
				id:         "rome-cobblestones",
				title:      "Plan for cobblestones",
				subtitle:   "Sturdy wheels and sturdy shoes required",
				category:   "Destination",
				priority:   models.TaskPriorityMedium,
				daysBefore: 7,
				reasoning:  "Rome's centro is cobbled throughout; cheap stroller wheels and dress shoes both fail on it.",
				source:     sourceDestinationPainPoint,
			}
		}
	case "barcelona":
		if signals.HasChildren() {
			tpl = &taskTemplate{
				id:         "barcelona-pickpockets",
				title:      "Brief the family on pickpockets",
				subtitle:   "Front pockets on the metro and Las Ramblas",
				category:   "Destination",
				priority:   models.TaskPriorityMedium,
				daysBefore: 7,
				reasoning:  "Petty theft is Barcelona's one real tourist hazard; a two-minute family briefing prevents most of it.",
				source:     sourceDestinationPainPoint,
			}
		}
	case "new york":
		if signals.HasInfant || signals.HasToddler {
			tpl = &taskTemplate{
				id:         "newyork-subway-access",
				title:      "Map elevator-equipped subway stations",
				subtitle:   "Most stations are stairs-only",
				category:   "Destination",
				priority:   models.TaskPriorityMedium,
				daysBefore: 7,
				reasoning:  "New York's subway predates accessibility; with a stroller, the bus network is often faster door to door.",
				source:     sourceDestinationPainPoint,
			}
		}
	case "amsterdam":
		if signals.HasChildren() {
			tpl = &taskTemplate{
				id:         "amsterdam-bike-lanes",
				title:      "Teach the kids about bike lanes",
				subtitle:   "They look like sidewalks and are not",
				category:   "Destination",
				priority:   models.TaskPriorityMedium,
				daysBefore: 7,
				reasoning:  "The most common tourist-family incident in Amsterdam is stepping into a bike lane.",
				source:     sourceDestinationPainPoint,
			}
		}
	case "sydney":
		if signals.HasChildren() {
			tpl = &taskTemplate{
				id:         "sydney-sun-safety",
				title:      "Pack serious sun protection",
				subtitle:   "The UV index is higher than it feels",
				category:   "Destination",
				priority:   models.TaskPriorityMedium,
				daysBefore: 7,
				reasoning:  "Australian UV burns fair-skinned kids through light cloud; hats and SPF 50 are baseline.",
				source:     sourceDestinationPainPoint,
			}
		}
	}

	if tpl == nil {
		return nil
	}
	task := tpl.build(profile.DestinationCity, daysUntilTrip)
	return &task
}
