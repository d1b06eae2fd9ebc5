package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/benvon/smart-trip/internal/geo"
	"github.com/benvon/smart-trip/internal/models"
)

const (
	sourceWeatherAPI = "weather-api"
	sourceHolidayAPI = "public-holidays-api"
	sourceCountryAPI = "country-metadata-api"

	// minRainyDays is how many forecast days must be rainy before the
	// packing task fires.
	minRainyDays = 4
	// minHotDays and hotDayThresholdC gate the heat-strategy task.
	minHotDays       = 3
	hotDayThresholdC = 35.0

	tripDateLayout = "2006-01-02"
)

// weatherTasks consults the forecast for the destination city. A nil
// forecast (unknown city, fetch failure) contributes nothing.
func (g *Generator) weatherTasks(ctx context.Context, profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	location, ok := geo.CityLocation(profile.DestinationCity)
	if !ok {
		return nil
	}

	forecast := g.external.WeatherForecast(ctx, location.Latitude, location.Longitude)
	if forecast == nil {
		return nil
	}

	rainy, hot := 0, 0
	for _, day := range forecast.Days {
		if isRainyCondition(day.Condition) {
			rainy++
		}
		if day.MaxTempC >= hotDayThresholdC {
			hot++
		}
	}

	if rainy >= minRainyDays {
		task := taskTemplate{
			id:           "pack-rain-gear",
			title:        "Pack rain gear for everyone",
			subtitle:     fmt.Sprintf("%d rainy days in the {city} forecast", rainy),
			category:     "Packing",
			priority:     models.TaskPriorityMedium,
			daysBefore:   7,
			urgentWithin: 3,
			reasoning:    fmt.Sprintf("The forecast shows rain on %d of the next %d days; packable rain jackets beat disposable ponchos bought on site.", rainy, len(forecast.Days)),
			source:       sourceWeatherAPI,
		}.build(profile.DestinationCity, daysUntilTrip)
		return []models.SmartTask{task}
	}

	if hot >= minHotDays {
		task := taskTemplate{
			id:           "plan-heat-strategy",
			title:        "Plan for extreme heat",
			subtitle:     fmt.Sprintf("%d days above %.0f°C in the forecast", hot, hotDayThresholdC),
			category:     "Packing",
			priority:     models.TaskPriorityMedium,
			daysBefore:   7,
			urgentWithin: 3,
			reasoning:    fmt.Sprintf("%d forecast days exceed %.0f°C; plan indoor middays, refillable bottles, and sun protection.", hot, hotDayThresholdC),
			source:       sourceWeatherAPI,
		}.build(profile.DestinationCity, daysUntilTrip)
		return []models.SmartTask{task}
	}

	return nil
}

func isRainyCondition(condition string) bool {
	switch strings.ToLower(condition) {
	case "rain", "rain showers", "drizzle", "thunderstorm":
		return true
	default:
		return false
	}
}

// holidayTasks warns about public holidays falling inside the trip
// dates. Missing dates or an unresolvable country short-circuit to
// nothing; so does a degraded holiday fetch.
func (g *Generator) holidayTasks(ctx context.Context, profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	countryCode := resolveCountryCode(profile)
	if countryCode == "" {
		return nil
	}

	start, err := time.Parse(tripDateLayout, profile.StartDate)
	if err != nil {
		return nil
	}
	end := start
	if profile.EndDate != "" {
		if parsed, parseErr := time.Parse(tripDateLayout, profile.EndDate); parseErr == nil && !parsed.Before(start) {
			end = parsed
		}
	}

	years := []int{start.Year()}
	if end.Year() != start.Year() {
		years = append(years, end.Year())
	}

	for _, year := range years {
		holidays := g.external.PublicHolidays(ctx, countryCode, year)
		for _, holiday := range holidays {
			date, parseErr := time.Parse(tripDateLayout, holiday.Date)
			if parseErr != nil {
				continue
			}
			if date.Before(start) || date.After(end) {
				continue
			}

			name := holiday.Name
			if holiday.LocalName != "" && holiday.LocalName != holiday.Name {
				name = fmt.Sprintf("%s (%s)", holiday.Name, holiday.LocalName)
			}
			task := taskTemplate{
				id:           "expect-holiday-crowds",
				title:        "Expect holiday crowds and closures",
				subtitle:     fmt.Sprintf("%s falls on %s during your trip", name, holiday.Date),
				category:     "Destination",
				priority:     models.TaskPriorityMedium,
				daysBefore:   14,
				urgentWithin: 7,
				reasoning:    fmt.Sprintf("%s is a public holiday at your destination; expect closed shops, crowded sights, and booked-out restaurants that day.", name),
				source:       sourceHolidayAPI,
			}.build(profile.DestinationCity, daysUntilTrip)
			return []models.SmartTask{task}
		}
	}

	return nil
}

// countryTasks suggests arranging local currency for international
// trips, using the destination country's metadata. Domestic trips and
// degraded fetches contribute nothing.
func (g *Generator) countryTasks(ctx context.Context, profile *models.TripProfile, daysUntilTrip int) []models.SmartTask {
	if !isInternational(profile) {
		return nil
	}

	info := g.external.CountryMetadata(ctx, profile.DestinationCountry)
	if info == nil || len(info.Currencies) == 0 {
		return nil
	}
	currency := info.Currencies[0]
	if currency.Code == "" || currency.Code == "USD" {
		return nil
	}

	task := taskTemplate{
		id:         "arrange-local-currency",
		title:      fmt.Sprintf("Arrange some %s before you go", currency.Code),
		subtitle:   fmt.Sprintf("%s uses the %s", info.Name, currency.Name),
		category:   "Money",
		priority:   models.TaskPriorityLow,
		daysBefore: 7,
		reasoning:  fmt.Sprintf("Cards cover most spending abroad, but a little %s in hand covers transit, tips, and market stalls on arrival day.", currency.Name),
		source:     sourceCountryAPI,
	}.build(profile.DestinationCity, daysUntilTrip)
	return []models.SmartTask{task}
}

// resolveCountryCode prefers the profile's destination country and
// falls back to the known city's country.
func resolveCountryCode(profile *models.TripProfile) string {
	if code, ok := geo.CountryCode(profile.DestinationCountry); ok {
		return code
	}
	if location, ok := geo.CityLocation(profile.DestinationCity); ok {
		return location.CountryCode
	}
	return ""
}
