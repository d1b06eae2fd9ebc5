package external

// ForecastDay is one day of a weather forecast.
type ForecastDay struct {
	Date      string  `json:"date"`
	Condition string  `json:"condition"`
	MinTempC  float64 `json:"min_temp_c"`
	MaxTempC  float64 `json:"max_temp_c"`
}

// ForecastData is a multi-day weather forecast for one location.
type ForecastData struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Days      []ForecastDay `json:"days"`
}

// Holiday is one public holiday.
type Holiday struct {
	Date        string `json:"date"`
	Name        string `json:"name"`
	LocalName   string `json:"local_name"`
	CountryCode string `json:"country_code"`
}

// Currency is one currency used in a country.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// CountryInfo is country metadata relevant to trip preparation.
type CountryInfo struct {
	Name       string     `json:"name"`
	Currencies []Currency `json:"currencies"`
	Languages  []string   `json:"languages"`
	Timezones  []string   `json:"timezones"`
}
