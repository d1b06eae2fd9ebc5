package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	BaseURL         string
	FrontendURL     string
	EnableHSTS      bool
	RedisURL        string
	RateLimit       int
	ServerDebugMode bool
	OTELEnabled     bool
	OTELEndpoint    string

	// External API base URLs. Defaults point at the public providers;
	// tests override these to point at local fakes.
	WeatherAPIURL   string
	HolidaysAPIURL  string
	CountriesAPIURL string
}

// Load loads configuration from environment variables. Every setting
// has a usable default, so the server starts with no environment at all.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
		EnableHSTS:      getEnvBool("ENABLE_HSTS", false),
		RedisURL:        getEnv("REDIS_URL", ""),
		RateLimit:       getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
		ServerDebugMode: getEnvBool("SERVER_DEBUG_MODE", false),
		OTELEnabled:     getEnvBool("OTEL_ENABLED", false),
		OTELEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		WeatherAPIURL:   getEnv("WEATHER_API_URL", "https://api.open-meteo.com/v1/forecast"),
		HolidaysAPIURL:  getEnv("HOLIDAYS_API_URL", "https://date.nager.at/api/v3/PublicHolidays"),
		CountriesAPIURL: getEnv("COUNTRIES_API_URL", "https://restcountries.com/v3.1/name"),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
