// Package engine is the rule-driven task generator: a library of
// independent rule functions over a trip profile, plus the pipeline
// that invokes them in a fixed order, caps each group's contribution,
// and sorts the merged result by urgency and priority.
//
// The pipeline never fails a request. Missing profile fields make the
// dependent rules emit nothing, external-data outages degrade to
// skipped rules, and a misbehaving city provider is isolated. The
// caller always gets a (possibly empty) task list.
package engine

import (
	"context"
	"sync"

	"github.com/benvon/smart-trip/internal/external"
	"github.com/benvon/smart-trip/internal/knowledge"
	"github.com/benvon/smart-trip/internal/models"
	"go.uber.org/zap"
)

// ExternalData is the slice of the external data client the engine
// consumes. All methods degrade to nil on failure.
type ExternalData interface {
	WeatherForecast(ctx context.Context, latitude, longitude float64) *external.ForecastData
	PublicHolidays(ctx context.Context, countryCode string, year int) []external.Holiday
	CountryMetadata(ctx context.Context, countryName string) *external.CountryInfo
}

// CityIntelligence produces per-city tasks for a destination. An
// unsupported city yields an empty result, never an error.
type CityIntelligence interface {
	TasksFor(city string, profile *models.TripProfile, daysUntilTrip int) []models.SmartTask
}

// KnowledgeTables is the static per-city knowledge the rules consult.
// An uncovered city yields nil.
type KnowledgeTables interface {
	City(name string) *knowledge.CityKnowledge
}

// Generator runs the rule library against a trip profile.
type Generator struct {
	external  ExternalData
	cities    CityIntelligence
	knowledge KnowledgeTables
	logger    *zap.Logger
}

// NewGenerator creates a task generator.
func NewGenerator(externalData ExternalData, cities CityIntelligence, tables KnowledgeTables, logger *zap.Logger) *Generator {
	return &Generator{
		external:  externalData,
		cities:    cities,
		knowledge: tables,
		logger:    logger,
	}
}

// Generate produces the prioritized pre-trip task list for a profile.
// The result holds at most 8 tasks. Identical inputs against unchanged
// cache state yield identical tasks in identical order.
func (g *Generator) Generate(ctx context.Context, profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	if profile == nil {
		return []models.SmartTask{}
	}
	if daysUntilTrip < 0 {
		daysUntilTrip = 0
	}

	signals := models.ComputeFamilySignals(profile)

	var know *knowledge.CityKnowledge
	if g.knowledge != nil {
		know = g.knowledge.City(profile.DestinationCity)
	}

	// The external-data rule groups fetch over HTTP; they run
	// concurrently with the synchronous rules and with each other, and
	// are awaited before sorting.
	var (
		wg           sync.WaitGroup
		weatherGroup []models.SmartTask
		holidayGroup []models.SmartTask
		countryGroup []models.SmartTask
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		weatherGroup = g.weatherTasks(ctx, profile, daysUntilTrip)
	}()
	go func() {
		defer wg.Done()
		holidayGroup = g.holidayTasks(ctx, profile, daysUntilTrip)
	}()
	go func() {
		defer wg.Done()
		countryGroup = g.countryTasks(ctx, profile, daysUntilTrip)
	}()

	tasks := make([]models.SmartTask, 0, 2*maxTasks)
	tasks = append(tasks, coreLogisticsTasks(profile, daysUntilTrip)...)
	tasks = append(tasks, purposeTasks(profile, daysUntilTrip)...)
	tasks = append(tasks, styleTasks(profile, daysUntilTrip)...)
	tasks = append(tasks, familyTasks(profile, signals, know, daysUntilTrip)...)

	if painPoint := painPointTask(profile, signals, daysUntilTrip); painPoint != nil {
		tasks = append(tasks, capTasks([]models.SmartTask{*painPoint}, maxPainPointTasks)...)
	}

	cityGroup := g.cities.TasksFor(profile.DestinationCity, profile, daysUntilTrip)
	tasks = append(tasks, capTasks(cityGroup, maxCityTasks)...)

	wg.Wait()
	tasks = append(tasks, capTasks(weatherGroup, maxWeatherTasks)...)
	tasks = append(tasks, capTasks(holidayGroup, maxHolidayTasks)...)
	tasks = append(tasks, capTasks(countryGroup, maxCountryTasks)...)

	result := prioritize(tasks, daysUntilTrip)

	g.logger.Debug("tasks_generated",
		zap.Int("days_until_trip", daysUntilTrip),
		zap.Int("task_count", len(result)),
		zap.String("destination_city", profile.DestinationCity),
	)

	return result
}
