package engine

import (
	"strings"

	"github.com/benvon/smart-trip/internal/models"
)

// taskTemplate is one literal task a rule can emit. Rules fill in the
// trip-specific parts (city interpolation, urgency) at build time.
type taskTemplate struct {
	id       string
	title    string
	subtitle string
	category string
	priority models.TaskPriority
	// daysBefore is the reminder threshold; zero means none.
	daysBefore int
	// urgentWithin marks the task urgent once daysUntilTrip falls to
	// this value or below; zero means the template is never urgent.
	urgentWithin int
	reasoning    string
	source       string
}

// build instantiates the template for a trip. The "{city}" placeholder
// in any text field is replaced with the destination city, or a
// neutral phrase when the profile has none.
func (t taskTemplate) build(city string, daysUntilTrip int) models.SmartTask {
	display := strings.TrimSpace(city)
	if display == "" {
		display = "your destination"
	}

	interpolate := func(s string) string {
		return strings.ReplaceAll(s, "{city}", display)
	}

	return models.SmartTask{
		ID:             t.id,
		Title:          interpolate(t.title),
		Subtitle:       interpolate(t.subtitle),
		Category:       t.category,
		Completed:      false,
		Urgent:         t.urgentWithin > 0 && daysUntilTrip <= t.urgentWithin,
		Priority:       t.priority,
		DaysBeforeTrip: t.daysBefore,
		Intelligence: models.TaskIntelligence{
			Reasoning: interpolate(t.reasoning),
			Source:    t.source,
		},
	}
}

// buildAll instantiates a template list in order.
func buildAll(templates []taskTemplate, city string, daysUntilTrip int) []models.SmartTask {
	tasks := make([]models.SmartTask, 0, len(templates))
	for _, tpl := range templates {
		tasks = append(tasks, tpl.build(city, daysUntilTrip))
	}
	return tasks
}
