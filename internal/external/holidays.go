package external

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// nagerHoliday mirrors one entry of the Nager.Date public holidays payload.
type nagerHoliday struct {
	Date        string `json:"date"`
	LocalName   string `json:"localName"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
}

// PublicHolidays returns the public holidays for a country and year,
// or nil if no data is available. A 404 means the provider does not
// cover the country/year; that is a stable fact and is cached as an
// empty list. Transient failures return nil and are not cached, so the
// next call retries.
func (c *Client) PublicHolidays(ctx context.Context, countryCode string, year int) []Holiday {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	if countryCode == "" {
		return nil
	}

	key := fmt.Sprintf("holidays:%s:%d", countryCode, year)

	var cached []Holiday
	if c.cachedJSON(ctx, key, &cached) {
		if cached == nil {
			cached = []Holiday{}
		}
		return cached
	}

	url := fmt.Sprintf("%s/%d/%s", c.endpoints.Holidays, year, countryCode)
	body, notFound, err := c.fetchJSON(ctx, url, c.fetchTimeout)
	if err != nil {
		c.logger.Warn("holidays_fetch_failed",
			zap.String("country_code", countryCode),
			zap.Int("year", year),
			zap.Error(err),
		)
		return nil
	}
	if notFound {
		// Country/year not supported by the provider.
		empty := []Holiday{}
		c.storeJSON(ctx, key, empty, holidayTTL)
		return empty
	}

	var raw []nagerHoliday
	if err := json.Unmarshal(body, &raw); err != nil {
		c.logger.Warn("holidays_payload_invalid",
			zap.String("country_code", countryCode),
			zap.Error(err),
		)
		return nil
	}

	holidays := make([]Holiday, 0, len(raw))
	for _, h := range raw {
		holidays = append(holidays, Holiday{
			Date:        h.Date,
			Name:        h.Name,
			LocalName:   h.LocalName,
			CountryCode: h.CountryCode,
		})
	}

	c.storeJSON(ctx, key, holidays, holidayTTL)
	return holidays
}
