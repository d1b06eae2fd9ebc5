package engine

import (
	"sort"

	"github.com/benvon/smart-trip/internal/models"
)

// Per-category contribution caps and the overall result cap. The
// values match the product's reference behavior; change them only with
// product sign-off.
const (
	maxTasks          = 8
	maxCityTasks      = 2
	maxHolidayTasks   = 1
	maxWeatherTasks   = 1
	maxCountryTasks   = 1
	maxPainPointTasks = 1
)

// Scoring constants: an urgency boost dominates, priority tier breaks
// the rest. Ties keep insertion order (stable sort).
const (
	urgencyBoost        = 1000
	highPriorityScore   = 100
	mediumPriorityScore = 50
	lowPriorityScore    = 10
)

// scoreTask computes the sort score for a task. A task is boosted when
// it is flagged urgent or its reminder threshold has been reached,
// i.e. it's time to act now.
func scoreTask(task models.SmartTask, daysUntilTrip int) int {
	score := 0
	if task.Urgent || (task.DaysBeforeTrip > 0 && task.DaysBeforeTrip >= daysUntilTrip) {
		score += urgencyBoost
	}
	switch task.Priority {
	case models.TaskPriorityHigh:
		score += highPriorityScore
	case models.TaskPriorityMedium:
		score += mediumPriorityScore
	case models.TaskPriorityLow:
		score += lowPriorityScore
	}
	return score
}

// prioritize sorts tasks by descending score (stable, so ties keep
// their rule-invocation order) and truncates to the result cap.
func prioritize(tasks []models.SmartTask, daysUntilTrip int) []models.SmartTask {
	sort.SliceStable(tasks, func(i, j int) bool {
		return scoreTask(tasks[i], daysUntilTrip) > scoreTask(tasks[j], daysUntilTrip)
	})
	if len(tasks) > maxTasks {
		tasks = tasks[:maxTasks]
	}
	return tasks
}

// capTasks limits a rule group's contribution, keeping emission order.
func capTasks(tasks []models.SmartTask, limit int) []models.SmartTask {
	if len(tasks) > limit {
		return tasks[:limit]
	}
	return tasks
}
