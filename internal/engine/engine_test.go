package engine

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/benvon/smart-trip/internal/cities"
	"github.com/benvon/smart-trip/internal/external"
	"github.com/benvon/smart-trip/internal/knowledge"
	"github.com/benvon/smart-trip/internal/models"
)

// testLibrary is the real embedded knowledge data; loading it cannot
// fail unless the embedded YAML is broken.
var testLibrary = func() *knowledge.Library {
	lib, err := knowledge.Load()
	if err != nil {
		panic(err)
	}
	return lib
}()

// stubExternal returns canned external data regardless of arguments.
type stubExternal struct {
	forecast *external.ForecastData
	holidays []external.Holiday
	country  *external.CountryInfo
}

func (s stubExternal) WeatherForecast(context.Context, float64, float64) *external.ForecastData {
	return s.forecast
}

func (s stubExternal) PublicHolidays(context.Context, string, int) []external.Holiday {
	return s.holidays
}

func (s stubExternal) CountryMetadata(context.Context, string) *external.CountryInfo {
	return s.country
}

type stubCities struct {
	tasks []models.SmartTask
}

func (s stubCities) TasksFor(string, *models.TripProfile, int) []models.SmartTask {
	return s.tasks
}

func newTestGenerator(ext ExternalData) *Generator {
	return NewGenerator(ext, cities.NewRegistry(zap.NewNop()), testLibrary, zap.NewNop())
}

func taskIDs(tasks []models.SmartTask) []string {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

func findTask(tasks []models.SmartTask, id string) (models.SmartTask, bool) {
	for _, task := range tasks {
		if task.ID == id {
			return task, true
		}
	}
	return models.SmartTask{}, false
}

func TestGenerateNilProfile(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(stubExternal{})
	tasks := g.Generate(context.Background(), nil, 30)
	if tasks == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks for nil profile, got %v", taskIDs(tasks))
	}
}

func TestGenerateEmptyProfileYieldsCoreLogisticsOnly(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(stubExternal{})
	tasks := g.Generate(context.Background(), &models.TripProfile{}, 90)

	if len(tasks) == 0 {
		t.Fatal("expected core logistics tasks for an empty profile")
	}
	for _, task := range tasks {
		if task.Intelligence.Source != "core-logistics" {
			t.Errorf("unexpected task %q from source %q", task.ID, task.Intelligence.Source)
		}
	}
	for _, id := range []string{"book-flights", "book-accommodation", "arrange-travel-insurance"} {
		if _, ok := findTask(tasks, id); !ok {
			t.Errorf("missing expected task %q, got %v", id, taskIDs(tasks))
		}
	}
}

func TestGenerateOrlandoThemeParkFamily(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(stubExternal{})
	profile := &models.TripProfile{
		DestinationCity:    "Orlando",
		DestinationCountry: "United States",
		TripPurpose:        models.TripPurposeThemeParks,
		Children:           []models.FamilyMember{{Name: "Mia", Age: "2"}},
	}

	tasks := g.Generate(context.Background(), profile, 45)

	if len(tasks) > 8 {
		t.Fatalf("result exceeds cap: %d tasks", len(tasks))
	}

	lane, ok := findTask(tasks, "orlando-lightning-lane")
	if !ok {
		t.Fatalf("expected orlando-lightning-lane in %v", taskIDs(tasks))
	}
	if lane.Priority != models.TaskPriorityHigh {
		t.Errorf("lightning lane priority = %q, want high", lane.Priority)
	}
	if !lane.Urgent {
		t.Error("lightning lane should be urgent 45 days out")
	}

	cityCount := 0
	for _, task := range tasks {
		if task.Intelligence.Source == "orlando-intelligence" {
			cityCount++
		}
	}
	if cityCount > 2 {
		t.Errorf("city intelligence contributed %d tasks, cap is 2", cityCount)
	}
}

func TestGenerateInternationalGating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		country  string
		wantIntl bool
	}{
		{name: "france is international", country: "France", wantIntl: true},
		{name: "united states is domestic", country: "United States", wantIntl: false},
		{name: "usa spelling is domestic", country: "USA", wantIntl: false},
		{name: "empty country is domestic", country: "", wantIntl: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := newTestGenerator(stubExternal{})
			profile := &models.TripProfile{
				DestinationCountry:  tt.country,
				FlightsBooked:       true,
				AccommodationBooked: true,
				InsuranceArranged:   true,
			}
			tasks := g.Generate(context.Background(), profile, 90)

			_, hasPassport := findTask(tasks, "check-passport-validity")
			_, hasBank := findTask(tasks, "notify-bank-travel")
			if hasPassport != tt.wantIntl || hasBank != tt.wantIntl {
				t.Errorf("country %q: passport=%v bank=%v, want both %v",
					tt.country, hasPassport, hasBank, tt.wantIntl)
			}
		})
	}
}

func TestGenerateIdempotent(t *testing.T) {
	t.Parallel()

	ext := stubExternal{
		forecast: rainyForecast(5),
		holidays: []external.Holiday{{Date: "2026-07-14", Name: "Bastille Day", LocalName: "Fête nationale"}},
	}
	g := newTestGenerator(ext)
	profile := &models.TripProfile{
		DestinationCity:    "Paris",
		DestinationCountry: "France",
		StartDate:          "2026-07-10",
		EndDate:            "2026-07-20",
		TripPurpose:        models.TripPurposeCulture,
		TravelStyle:        models.TravelStyleBudget,
		Children:           []models.FamilyMember{{Age: "3"}, {Age: "14"}},
		DietaryPreferences: []string{"vegetarian"},
	}

	first := g.Generate(context.Background(), profile, 40)
	second := g.Generate(context.Background(), profile, 40)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ between runs:\n  %v\n  %v", taskIDs(first), taskIDs(second))
	}
}

func TestGenerateCapsResultAtEight(t *testing.T) {
	t.Parallel()

	ext := stubExternal{
		forecast: rainyForecast(5),
		holidays: []external.Holiday{{Date: "2026-07-14", Name: "Bastille Day"}},
	}
	g := newTestGenerator(ext)
	profile := &models.TripProfile{
		DestinationCity:    "Paris",
		DestinationCountry: "France",
		StartDate:          "2026-07-10",
		EndDate:            "2026-07-20",
		TripPurpose:        models.TripPurposeThemeParks,
		TravelStyle:        models.TravelStyleBudget,
		Children:           []models.FamilyMember{{Age: "1"}, {Age: "3"}, {Age: "9"}, {Age: "15"}},
		DietaryPreferences: []string{"halal"},
	}

	tasks := g.Generate(context.Background(), profile, 20)
	if len(tasks) != 8 {
		t.Errorf("expected a full result of 8 tasks, got %d: %v", len(tasks), taskIDs(tasks))
	}
}

func TestGenerateNegativeDaysClampedToZero(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(stubExternal{})
	profile := &models.TripProfile{DestinationCity: "London", DestinationCountry: "United Kingdom"}

	atZero := g.Generate(context.Background(), profile, 0)
	negative := g.Generate(context.Background(), profile, -5)

	if !reflect.DeepEqual(atZero, negative) {
		t.Errorf("negative days should match zero days:\n  %v\n  %v", taskIDs(atZero), taskIDs(negative))
	}
	if _, ok := findTask(atZero, "final-confirmations"); !ok {
		t.Errorf("expected final-confirmations at departure, got %v", taskIDs(atZero))
	}
}

func TestGenerateDegradesWithoutExternalData(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(stubExternal{})
	profile := &models.TripProfile{
		DestinationCity:    "Tokyo",
		DestinationCountry: "Japan",
		StartDate:          "2026-05-01",
		EndDate:            "2026-05-08",
		TripPurpose:        models.TripPurposeVacation,
	}

	tasks := g.Generate(context.Background(), profile, 30)
	if len(tasks) == 0 {
		t.Fatal("expected synchronous rule tasks despite missing external data")
	}
	for _, task := range tasks {
		switch task.Intelligence.Source {
		case "weather-api", "public-holidays-api", "country-metadata-api":
			t.Errorf("unexpected external-data task %q with no data available", task.ID)
		}
	}
}

func TestGenerateCityGroupCapped(t *testing.T) {
	t.Parallel()

	many := make([]models.SmartTask, 5)
	for i := range many {
		many[i] = models.SmartTask{
			ID:           "filler",
			Priority:     models.TaskPriorityLow,
			Intelligence: models.TaskIntelligence{Source: "city-stub"},
		}
	}
	g := NewGenerator(stubExternal{}, stubCities{tasks: many}, testLibrary, zap.NewNop())

	tasks := g.Generate(context.Background(), &models.TripProfile{DestinationCity: "Orlando"}, 90)

	cityCount := 0
	for _, task := range tasks {
		if task.Intelligence.Source == "city-stub" {
			cityCount++
		}
	}
	if cityCount != 2 {
		t.Errorf("city group contributed %d tasks, want 2", cityCount)
	}
}

func rainyForecast(rainyDays int) *external.ForecastData {
	days := make([]external.ForecastDay, 7)
	for i := range days {
		days[i] = external.ForecastDay{Date: "2026-07-10", Condition: "clear", MaxTempC: 24}
		if i < rainyDays {
			days[i].Condition = "rain"
		}
	}
	return &external.ForecastData{Days: days}
}

func hotForecast(hotDays int) *external.ForecastData {
	days := make([]external.ForecastDay, 7)
	for i := range days {
		days[i] = external.ForecastDay{Date: "2026-07-10", Condition: "clear", MaxTempC: 28}
		if i < hotDays {
			days[i].MaxTempC = 38
		}
	}
	return &external.ForecastData{Days: days}
}

func TestWeatherTasks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		forecast *external.ForecastData
		city     string
		wantID   string
	}{
		{name: "four rainy days pack rain gear", forecast: rainyForecast(4), city: "London", wantID: "pack-rain-gear"},
		{name: "three rainy days not enough", forecast: rainyForecast(3), city: "London", wantID: ""},
		{name: "three hot days plan heat", forecast: hotForecast(3), city: "Orlando", wantID: "plan-heat-strategy"},
		{name: "two hot days not enough", forecast: hotForecast(2), city: "Orlando", wantID: ""},
		{name: "nil forecast degrades", forecast: nil, city: "London", wantID: ""},
		{name: "unknown city skips fetch", forecast: rainyForecast(7), city: "Springfield", wantID: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := newTestGenerator(stubExternal{forecast: tt.forecast})
			profile := &models.TripProfile{DestinationCity: tt.city}
			tasks := g.weatherTasks(context.Background(), profile, 30)

			if tt.wantID == "" {
				if len(tasks) != 0 {
					t.Fatalf("expected no weather tasks, got %v", taskIDs(tasks))
				}
				return
			}
			if len(tasks) != 1 || tasks[0].ID != tt.wantID {
				t.Errorf("weather tasks = %v, want [%s]", taskIDs(tasks), tt.wantID)
			}
		})
	}
}

func TestWeatherRainOutranksHeat(t *testing.T) {
	t.Parallel()

	forecast := rainyForecast(4)
	for i := range forecast.Days {
		forecast.Days[i].MaxTempC = 40
	}
	g := newTestGenerator(stubExternal{forecast: forecast})
	tasks := g.weatherTasks(context.Background(), &models.TripProfile{DestinationCity: "Orlando"}, 30)

	if len(tasks) != 1 || tasks[0].ID != "pack-rain-gear" {
		t.Errorf("weather tasks = %v, want rain to win over heat", taskIDs(tasks))
	}
}

func TestHolidayTasks(t *testing.T) {
	t.Parallel()

	bastille := []external.Holiday{{Date: "2026-07-14", Name: "Bastille Day", LocalName: "Fête nationale"}}

	tests := []struct {
		name     string
		profile  *models.TripProfile
		holidays []external.Holiday
		want     bool
	}{
		{
			name: "holiday inside trip window",
			profile: &models.TripProfile{
				DestinationCity: "Paris", DestinationCountry: "France",
				StartDate: "2026-07-10", EndDate: "2026-07-20",
			},
			holidays: bastille,
			want:     true,
		},
		{
			name: "holiday outside trip window",
			profile: &models.TripProfile{
				DestinationCity: "Paris", DestinationCountry: "France",
				StartDate: "2026-08-01", EndDate: "2026-08-10",
			},
			holidays: bastille,
			want:     false,
		},
		{
			name: "country resolved from city",
			profile: &models.TripProfile{
				DestinationCity: "Paris",
				StartDate:       "2026-07-10", EndDate: "2026-07-20",
			},
			holidays: bastille,
			want:     true,
		},
		{
			name: "unparsable start date",
			profile: &models.TripProfile{
				DestinationCity: "Paris", DestinationCountry: "France",
				StartDate: "July 10",
			},
			holidays: bastille,
			want:     false,
		},
		{
			name:     "no resolvable country",
			profile:  &models.TripProfile{StartDate: "2026-07-10", EndDate: "2026-07-20"},
			holidays: bastille,
			want:     false,
		},
		{
			name: "degraded holiday fetch",
			profile: &models.TripProfile{
				DestinationCity: "Paris", DestinationCountry: "France",
				StartDate: "2026-07-10", EndDate: "2026-07-20",
			},
			holidays: nil,
			want:     false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := newTestGenerator(stubExternal{holidays: tt.holidays})
			tasks := g.holidayTasks(context.Background(), tt.profile, 30)

			if tt.want {
				if len(tasks) != 1 || tasks[0].ID != "expect-holiday-crowds" {
					t.Errorf("holiday tasks = %v, want [expect-holiday-crowds]", taskIDs(tasks))
				}
			} else if len(tasks) != 0 {
				t.Errorf("expected no holiday tasks, got %v", taskIDs(tasks))
			}
		})
	}
}

func TestCountryTasks(t *testing.T) {
	t.Parallel()

	euro := &external.CountryInfo{
		Name:       "France",
		Currencies: []external.Currency{{Code: "EUR", Name: "Euro", Symbol: "€"}},
		Languages:  []string{"French"},
	}

	tests := []struct {
		name    string
		country string
		info    *external.CountryInfo
		want    bool
	}{
		{name: "international with currency", country: "France", info: euro, want: true},
		{name: "domestic trip", country: "United States", info: euro, want: false},
		{name: "no destination country", country: "", info: euro, want: false},
		{name: "degraded metadata fetch", country: "France", info: nil, want: false},
		{name: "no currencies listed", country: "France", info: &external.CountryInfo{Name: "France"}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := newTestGenerator(stubExternal{country: tt.info})
			profile := &models.TripProfile{DestinationCity: "Paris", DestinationCountry: tt.country}
			tasks := g.countryTasks(context.Background(), profile, 30)

			if tt.want {
				if len(tasks) != 1 || tasks[0].ID != "arrange-local-currency" {
					t.Errorf("country tasks = %v, want [arrange-local-currency]", taskIDs(tasks))
				}
			} else if len(tasks) != 0 {
				t.Errorf("expected no country tasks, got %v", taskIDs(tasks))
			}
		})
	}
}

func TestDietaryTaskNamesKnownRestaurant(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(stubExternal{})

	// A covered city anchors the shortlist on its first listed
	// restaurant, and repeated generations name the same one.
	profile := &models.TripProfile{
		DestinationCity:    "Orlando",
		DietaryPreferences: []string{"vegetarian"},
	}
	tasks := g.Generate(context.Background(), profile, 60)
	task, ok := findTask(tasks, "research-dietary-restaurants")
	if !ok {
		t.Fatalf("expected research-dietary-restaurants in %v", taskIDs(tasks))
	}
	if !strings.Contains(task.Subtitle, "4 Rivers Smokehouse") {
		t.Errorf("subtitle = %q, want the first Orlando restaurant named", task.Subtitle)
	}
	again := g.Generate(context.Background(), profile, 60)
	repeat, _ := findTask(again, "research-dietary-restaurants")
	if repeat.Subtitle != task.Subtitle {
		t.Errorf("subtitle changed across generations: %q vs %q", task.Subtitle, repeat.Subtitle)
	}

	// An uncovered city falls back to the generic wording.
	profile = &models.TripProfile{
		DestinationCity:    "Springfield",
		DietaryPreferences: []string{"vegetarian"},
	}
	tasks = g.Generate(context.Background(), profile, 60)
	task, ok = findTask(tasks, "research-dietary-restaurants")
	if !ok {
		t.Fatalf("expected research-dietary-restaurants in %v", taskIDs(tasks))
	}
	if !strings.Contains(task.Subtitle, "Springfield") {
		t.Errorf("subtitle = %q, want the generic city wording", task.Subtitle)
	}
}

func TestFamilyRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ages    []string
		dietary []string
		wantIDs []string
	}{
		{name: "infant", ages: []string{"1"}, wantIDs: []string{"pack-infant-gear", "check-stroller-policy"}},
		{name: "toddler", ages: []string{"3"}, wantIDs: []string{"check-stroller-policy", "plan-nap-schedule"}},
		{name: "school age", ages: []string{"8"}, wantIDs: []string{"pack-travel-entertainment"}},
		{name: "teen", ages: []string{"15"}, wantIDs: []string{"involve-teens-planning"}},
		{name: "wide age gap", ages: []string{"3", "14"}, wantIDs: []string{"split-activities-age-gap"}},
		{name: "narrow age gap", ages: []string{"8", "11"}, wantIDs: []string{"pack-travel-entertainment"}},
		{name: "unparsable age ignored", ages: []string{"three"}, wantIDs: nil},
		{name: "dietary preferences", dietary: []string{"gluten-free"}, wantIDs: []string{"research-dietary-restaurants"}},
		{name: "no children", wantIDs: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			profile := &models.TripProfile{DietaryPreferences: tt.dietary}
			for _, age := range tt.ages {
				profile.Children = append(profile.Children, models.FamilyMember{Age: age})
			}
			signals := models.ComputeFamilySignals(profile)
			tasks := familyTasks(profile, signals, nil, 30)

			for _, id := range tt.wantIDs {
				if _, ok := findTask(tasks, id); !ok {
					t.Errorf("missing task %q, got %v", id, taskIDs(tasks))
				}
			}
			if len(tt.wantIDs) == 0 && len(tasks) != 0 {
				t.Errorf("expected no family tasks, got %v", taskIDs(tasks))
			}
		})
	}
}

func TestPainPointTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		city   string
		ages   []string
		wantID string
	}{
		{name: "orlando with toddler", city: "Orlando", ages: []string{"2"}, wantID: "orlando-stroller-heat"},
		{name: "orlando teens only", city: "Orlando", ages: []string{"16"}, wantID: ""},
		{name: "paris with infant", city: "Paris", ages: []string{"1"}, wantID: "paris-metro-stairs"},
		{name: "tokyo with school age", city: "Tokyo", ages: []string{"9"}, wantID: "tokyo-rush-hour"},
		{name: "barcelona alias with kids", city: "BCN", ages: []string{"7"}, wantID: "barcelona-pickpockets"},
		{name: "unknown city", city: "Springfield", ages: []string{"2"}, wantID: ""},
		{name: "no family signals", city: "Rome", wantID: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			profile := &models.TripProfile{DestinationCity: tt.city}
			for _, age := range tt.ages {
				profile.Children = append(profile.Children, models.FamilyMember{Age: age})
			}
			signals := models.ComputeFamilySignals(profile)
			task := painPointTask(profile, signals, 30)

			if tt.wantID == "" {
				if task != nil {
					t.Fatalf("expected no pain-point task, got %q", task.ID)
				}
				return
			}
			if task == nil || task.ID != tt.wantID {
				t.Errorf("pain-point task = %v, want %s", task, tt.wantID)
			}
		})
	}
}
