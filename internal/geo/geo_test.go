package geo

import "testing"

func TestCanonicalCity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Orlando", "orlando"},
		{"  ORLANDO ", "orlando"},
		{"NYC", "new york"},
		{"New York City", "new york"},
		{"Disney World", "orlando"},
		{"Springfield", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CanonicalCity(tt.in); got != tt.want {
			t.Errorf("CanonicalCity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCityLocation(t *testing.T) {
	t.Parallel()

	loc, ok := CityLocation("Paris")
	if !ok {
		t.Fatal("expected Paris to be a known city")
	}
	if loc.CountryCode != "FR" {
		t.Errorf("expected FR, got %s", loc.CountryCode)
	}
	if loc.Latitude == 0 || loc.Longitude == 0 {
		t.Error("expected non-zero coordinates")
	}

	if _, ok := CityLocation("Atlantis"); ok {
		t.Error("expected unknown city to miss")
	}
}

func TestCountryCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"France", "FR", true},
		{"united states", "US", true},
		{"USA", "US", true},
		{"UK", "GB", true},
		{"Narnia", "", false},
	}

	for _, tt := range tests {
		got, ok := CountryCode(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CountryCode(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
