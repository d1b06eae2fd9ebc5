// Package geo holds the static destination lookup tables: city
// coordinates for weather fetches and country name to ISO code
// mappings for holiday fetches.
package geo

import "strings"

// Location is a city's coordinates and country.
type Location struct {
	City        string
	Country     string
	CountryCode string
	Latitude    float64
	Longitude   float64
}

var cityLocations = map[string]Location{
	"orlando":   {City: "Orlando", Country: "United States", CountryCode: "US", Latitude: 28.5384, Longitude: -81.3789},
	"paris":     {City: "Paris", Country: "France", CountryCode: "FR", Latitude: 48.8566, Longitude: 2.3522},
	"london":    {City: "London", Country: "United Kingdom", CountryCode: "GB", Latitude: 51.5072, Longitude: -0.1276},
	"tokyo":     {City: "Tokyo", Country: "Japan", CountryCode: "JP", Latitude: 35.6762, Longitude: 139.6503},
	"new york":  {City: "New York", Country: "United States", CountryCode: "US", Latitude: 40.7128, Longitude: -74.0060},
	"rome":      {City: "Rome", Country: "Italy", CountryCode: "IT", Latitude: 41.9028, Longitude: 12.4964},
	"barcelona": {City: "Barcelona", Country: "Spain", CountryCode: "ES", Latitude: 41.3874, Longitude: 2.1686},
	"amsterdam": {City: "Amsterdam", Country: "Netherlands", CountryCode: "NL", Latitude: 52.3676, Longitude: 4.9041},
	"singapore": {City: "Singapore", Country: "Singapore", CountryCode: "SG", Latitude: 1.3521, Longitude: 103.8198},
	"sydney":    {City: "Sydney", Country: "Australia", CountryCode: "AU", Latitude: -33.8688, Longitude: 151.2093},
}

// cityAliases maps common alternate spellings to canonical city keys.
var cityAliases = map[string]string{
	"nyc":               "new york",
	"new york city":     "new york",
	"disney world":      "orlando",
	"walt disney world": "orlando",
	"bcn":               "barcelona",
}

var countryCodes = map[string]string{
	"united states":            "US",
	"usa":                      "US",
	"united states of america": "US",
	"france":                   "FR",
	"united kingdom":           "GB",
	"uk":                       "GB",
	"england":                  "GB",
	"japan":                    "JP",
	"italy":                    "IT",
	"spain":                    "ES",
	"netherlands":              "NL",
	"singapore":                "SG",
	"australia":                "AU",
	"germany":                  "DE",
	"canada":                   "CA",
	"mexico":                   "MX",
	"portugal":                 "PT",
	"greece":                   "GR",
	"thailand":                 "TH",
	"ireland":                  "IE",
}

// Normalize lowercases and trims a destination name for table lookups.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CanonicalCity resolves a city name (including aliases) to its
// canonical lowercase key, or "" if the city is unknown.
func CanonicalCity(city string) string {
	key := Normalize(city)
	if alias, ok := cityAliases[key]; ok {
		key = alias
	}
	if _, ok := cityLocations[key]; !ok {
		return ""
	}
	return key
}

// CityLocation returns the coordinates for a known city.
func CityLocation(city string) (Location, bool) {
	key := CanonicalCity(city)
	if key == "" {
		return Location{}, false
	}
	return cityLocations[key], true
}

// CountryCode returns the ISO 3166-1 alpha-2 code for a country name.
func CountryCode(country string) (string, bool) {
	code, ok := countryCodes[Normalize(country)]
	return code, ok
}
