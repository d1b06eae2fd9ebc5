package external

import (
	"context"
	"encoding/json"
	"net/url"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// restCountry mirrors the subset of the REST Countries payload we consume.
type restCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
	Languages map[string]string `json:"languages"`
	Timezones []string          `json:"timezones"`
}

// CountryMetadata returns currency, language, and timezone metadata
// for a country, or nil if no data is available. A 404 (country not
// found) is a stable fact and is cached as nil; an empty list payload
// is a validation failure and is not cached.
func (c *Client) CountryMetadata(ctx context.Context, countryName string) *CountryInfo {
	countryName = strings.TrimSpace(countryName)
	if countryName == "" {
		return nil
	}

	key := "country:" + strings.ToLower(countryName)

	var cached *CountryInfo
	if c.cachedJSON(ctx, key, &cached) {
		// A cached JSON null is a remembered not-found.
		return cached
	}

	body, notFound, err := c.fetchJSON(ctx, c.endpoints.Countries+"/"+url.PathEscape(countryName), c.fetchTimeout)
	if err != nil {
		c.logger.Warn("country_fetch_failed",
			zap.String("country", countryName),
			zap.Error(err),
		)
		return nil
	}
	if notFound {
		c.storeJSON(ctx, key, nil, countryTTL)
		return nil
	}

	var raw []restCountry
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		c.logger.Warn("country_payload_invalid",
			zap.String("country", countryName),
			zap.Int("entries", len(raw)),
			zap.Error(err),
		)
		return nil
	}

	info := buildCountryInfo(raw[0])
	c.storeJSON(ctx, key, info, countryTTL)
	return info
}

// buildCountryInfo flattens the first matched country into the
// internal form. Map iteration order is not stable, so currency and
// language lists are sorted for deterministic output.
func buildCountryInfo(raw restCountry) *CountryInfo {
	info := &CountryInfo{Name: raw.Name.Common, Timezones: raw.Timezones}

	for code, cur := range raw.Currencies {
		info.Currencies = append(info.Currencies, Currency{
			Code:   code,
			Name:   cur.Name,
			Symbol: cur.Symbol,
		})
	}
	sort.Slice(info.Currencies, func(i, j int) bool {
		return info.Currencies[i].Code < info.Currencies[j].Code
	})

	for _, lang := range raw.Languages {
		info.Languages = append(info.Languages, lang)
	}
	sort.Strings(info.Languages)

	return info
}
