package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

const forecastDays = 14

// openMeteoResponse mirrors the subset of the Open-Meteo daily
// forecast payload we consume.
type openMeteoResponse struct {
	Daily struct {
		Time        []string  `json:"time"`
		WeatherCode []int     `json:"weathercode"`
		TempMax     []float64 `json:"temperature_2m_max"`
		TempMin     []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

// WeatherForecast returns the multi-day forecast for the given
// coordinates, or nil if no data is available. The cache key uses
// coordinates rounded to two decimals so nearby lookups share entries.
func (c *Client) WeatherForecast(ctx context.Context, latitude, longitude float64) *ForecastData {
	key := fmt.Sprintf("weather:%.2f,%.2f", latitude, longitude)

	var cached ForecastData
	if c.cachedJSON(ctx, key, &cached) {
		return &cached
	}

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%.4f", latitude))
	query.Set("longitude", fmt.Sprintf("%.4f", longitude))
	query.Set("daily", "weathercode,temperature_2m_max,temperature_2m_min")
	query.Set("timezone", "UTC")
	query.Set("forecast_days", fmt.Sprintf("%d", forecastDays))

	body, notFound, err := c.fetchJSON(ctx, c.endpoints.Weather+"?"+query.Encode(), c.weatherTimeout)
	if err != nil || notFound {
		c.logger.Warn("weather_fetch_failed",
			zap.Float64("latitude", latitude),
			zap.Float64("longitude", longitude),
			zap.Bool("not_found", notFound),
			zap.Error(err),
		)
		return nil
	}

	var raw openMeteoResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		c.logger.Warn("weather_payload_invalid", zap.Error(err))
		return nil
	}

	forecast, ok := buildForecast(latitude, longitude, raw)
	if !ok {
		c.logger.Warn("weather_payload_shape_invalid",
			zap.Int("days", len(raw.Daily.Time)),
		)
		return nil
	}

	// Only validated data is cached.
	c.storeJSON(ctx, key, forecast, weatherTTL)
	return forecast
}

// buildForecast validates the payload shape (non-empty, parallel
// arrays of equal length) and converts it to the internal form.
func buildForecast(latitude, longitude float64, raw openMeteoResponse) (*ForecastData, bool) {
	d := raw.Daily
	n := len(d.Time)
	if n == 0 || len(d.WeatherCode) != n || len(d.TempMax) != n || len(d.TempMin) != n {
		return nil, false
	}

	forecast := &ForecastData{
		Latitude:  latitude,
		Longitude: longitude,
		Days:      make([]ForecastDay, 0, n),
	}
	for i := 0; i < n; i++ {
		forecast.Days = append(forecast.Days, ForecastDay{
			Date:      d.Time[i],
			Condition: conditionFromCode(d.WeatherCode[i]),
			MinTempC:  d.TempMin[i],
			MaxTempC:  d.TempMax[i],
		})
	}
	return forecast, true
}

// conditionFromCode maps WMO weather codes to coarse condition strings.
func conditionFromCode(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code >= 1 && code <= 3:
		return "cloudy"
	case code == 45 || code == 48:
		return "fog"
	case code >= 51 && code <= 57:
		return "drizzle"
	case code >= 61 && code <= 67:
		return "rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 82:
		return "rain showers"
	case code == 85 || code == 86:
		return "snow showers"
	case code >= 95:
		return "thunderstorm"
	default:
		return "unknown"
	}
}
