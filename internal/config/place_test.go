package config

import (
	"errors"
	"slices"
	"testing"

	"github.com/nao1215/sunriset/internal/solar"
)

// TestFileLookupPlace tests named place resolution.
func TestFileLookupPlace(t *testing.T) {
	t.Parallel()

	cf := &File{
		Places: map[string]Place{
			"home":   {Latitude: 49.86, Longitude: 14.27, Label: "Home"},
			"Tromsø": {Latitude: 69.65, Longitude: 18.96},
			"Straße": {Latitude: 52.52, Longitude: 13.40},
		},
		Defaults: Defaults{Place: "home"},
	}

	tests := []struct {
		name      string
		query     string
		wantLabel string
		wantLat   float64
	}{
		{name: "exact key", query: "home", wantLabel: "Home", wantLat: 49.86},
		{name: "upper case", query: "HOME", wantLabel: "Home", wantLat: 49.86},
		{name: "non-ASCII case", query: "TROMSØ", wantLabel: "Tromsø", wantLat: 69.65},
		{name: "full case folding", query: "STRASSE", wantLabel: "Straße", wantLat: 52.52},
		{name: "empty uses default", query: "", wantLabel: "Home", wantLat: 49.86},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			label, p, err := cf.LookupPlace(tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if label != tt.wantLabel {
				t.Errorf("label = %q, want %q", label, tt.wantLabel)
			}
			if p.Latitude != tt.wantLat {
				t.Errorf("latitude = %v, want %v", p.Latitude, tt.wantLat)
			}
		})
	}

	t.Run("unknown place", func(t *testing.T) {
		t.Parallel()

		if _, _, err := cf.LookupPlace("atlantis"); !errors.Is(err, ErrUnknownPlace) {
			t.Errorf("expected ErrUnknownPlace, got %v", err)
		}
	})

	t.Run("no default configured", func(t *testing.T) {
		t.Parallel()

		empty := &File{}
		if _, _, err := empty.LookupPlace(""); !errors.Is(err, ErrUnknownPlace) {
			t.Errorf("expected ErrUnknownPlace, got %v", err)
		}
	})
}

// TestFilePlaceNames tests that names come back sorted.
func TestFilePlaceNames(t *testing.T) {
	t.Parallel()

	cf := &File{Places: map[string]Place{"b": {}, "a": {}, "c": {}}}
	if got := cf.PlaceNames(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("unexpected names %v", got)
	}
}

// TestPlaceCoordinate tests conversion to a solver coordinate.
func TestPlaceCoordinate(t *testing.T) {
	t.Parallel()

	p := Place{Latitude: -33.87, Longitude: 151.21}
	if got := p.Coordinate(); got != (solar.Coordinate{Latitude: -33.87, Longitude: 151.21}) {
		t.Errorf("unexpected coordinate %v", got)
	}
}
