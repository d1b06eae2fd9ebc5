// Package knowledge holds the static, hand-authored per-city knowledge
// tables: restaurants, attractions, and practical tips. The tables are
// loaded once from embedded YAML at startup and never mutated.
package knowledge

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/benvon/smart-trip/internal/geo"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Restaurant is one family-friendly restaurant recommendation.
type Restaurant struct {
	Name string `yaml:"name" json:"name"`
	Area string `yaml:"area" json:"area"`
	Note string `yaml:"note" json:"note"`
}

// Attraction is one recommended attraction.
type Attraction struct {
	Name    string `yaml:"name" json:"name"`
	Note    string `yaml:"note" json:"note"`
	GoodFor string `yaml:"good_for" json:"good_for,omitempty"`
}

// CityKnowledge is the static knowledge table for one city.
type CityKnowledge struct {
	City        string       `yaml:"city" json:"city"`
	Country     string       `yaml:"country" json:"country"`
	Restaurants []Restaurant `yaml:"restaurants" json:"restaurants"`
	Attractions []Attraction `yaml:"attractions" json:"attractions"`
	Tips        []string     `yaml:"tips" json:"tips"`
}

// Library is the loaded set of city knowledge tables, keyed by
// lowercased city name.
type Library struct {
	cities map[string]*CityKnowledge
}

// Load parses the embedded YAML tables. It fails only on malformed
// embedded data, which is a build defect rather than a runtime
// condition.
func Load() (*Library, error) {
	lib := &Library{cities: make(map[string]*CityKnowledge)}

	entries, err := fs.Glob(dataFS, "data/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge tables: %w", err)
	}

	for _, path := range entries {
		raw, err := dataFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var ck CityKnowledge
		if err := yaml.Unmarshal(raw, &ck); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if ck.City == "" {
			return nil, fmt.Errorf("knowledge table %s has no city name", path)
		}

		lib.cities[geo.Normalize(ck.City)] = &ck
	}

	return lib, nil
}

// City returns the knowledge table for a city (aliases resolved), or
// nil if the city is not covered.
func (l *Library) City(name string) *CityKnowledge {
	key := geo.CanonicalCity(name)
	if key == "" {
		key = geo.Normalize(name)
	}
	return l.cities[key]
}

// Cities lists the covered city names (canonical lowercase keys).
func (l *Library) Cities() []string {
	names := make([]string, 0, len(l.cities))
	for name := range l.cities {
		names = append(names, name)
	}
	return names
}
