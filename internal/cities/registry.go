// Package cities holds the per-city intelligence modules. Each module
// implements the same Provider signature and is registered in a
// name-keyed table; destinations we don't cover simply contribute no
// tasks.
package cities

import (
	"github.com/benvon/smart-trip/internal/geo"
	"github.com/benvon/smart-trip/internal/models"
	"go.uber.org/zap"
)

// Provider is one city's intelligence module.
type Provider interface {
	// City returns the canonical lowercase city key.
	City() string
	// Tasks emits the city's advice for this trip, in priority order.
	Tasks(profile *models.TripProfile, daysUntilTrip int) []models.SmartTask
}

// Registry dispatches a destination city to its Provider. Lookups go
// through the geo alias table, so "NYC" and "Disney World" resolve.
type Registry struct {
	providers map[string]Provider
	logger    *zap.Logger
}

// NewRegistry creates a registry with all built-in city modules.
func NewRegistry(logger *zap.Logger) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		logger:    logger,
	}
	for _, p := range []Provider{
		orlandoProvider{},
		parisProvider{},
		londonProvider{},
		tokyoProvider{},
		newYorkProvider{},
		romeProvider{},
		barcelonaProvider{},
		amsterdamProvider{},
		singaporeProvider{},
		sydneyProvider{},
	} {
		r.Register(p)
	}
	return r
}

// Register adds or replaces a city module.
func (r *Registry) Register(p Provider) {
	r.providers[p.City()] = p
}

// TasksFor returns the city module's tasks for a destination. Unknown
// cities return nothing. A module that panics is isolated: its tasks
// are dropped, the panic is logged, and generation continues.
func (r *Registry) TasksFor(city string, profile *models.TripProfile, daysUntilTrip int) (tasks []models.SmartTask) {
	key := geo.CanonicalCity(city)
	if key == "" {
		// Not in the geo table; a custom Register may still cover it.
		key = geo.Normalize(city)
	}
	provider, ok := r.providers[key]
	if !ok {
		return nil
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("city_provider_panicked",
				zap.String("city", key),
				zap.Any("panic", rec),
			)
			tasks = nil
		}
	}()

	return provider.Tasks(profile, daysUntilTrip)
}

// cityTask is the literal task form the city modules share.
type cityTask struct {
	id           string
	title        string
	subtitle     string
	category     string
	priority     models.TaskPriority
	daysBefore   int
	urgentWithin int
	reasoning    string
}

func (t cityTask) build(source string, daysUntilTrip int) models.SmartTask {
	return models.SmartTask{
		ID:             t.id,
		Title:          t.title,
		Subtitle:       t.subtitle,
		Category:       t.category,
		Urgent:         t.urgentWithin > 0 && daysUntilTrip <= t.urgentWithin,
		Priority:       t.priority,
		DaysBeforeTrip: t.daysBefore,
		Intelligence: models.TaskIntelligence{
			Reasoning: t.reasoning,
			Source:    source,
		},
	}
}
