package config

import (
	"fmt"
	"sort"

	"golang.org/x/text/cases"

	"github.com/nao1215/sunriset/internal/solar"
)

// Place is a named observer location.
type Place struct {
	// Latitude in degrees, positive north.
	Latitude float64 `yaml:"latitude"`

	// Longitude in degrees, positive east.
	Longitude float64 `yaml:"longitude"`

	// Label is shown in report headers instead of the key when set.
	Label string `yaml:"label,omitempty"`
}

// Coordinate returns the place as a solver coordinate.
func (p Place) Coordinate() solar.Coordinate {
	return solar.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

// Defaults holds values applied when the command line does not set them.
type Defaults struct {
	// Place names the entry of Places used when no location flag is given.
	Place string `yaml:"place,omitempty"`

	// Days overrides DefaultDays for the range command.
	Days int `yaml:"days,omitempty"`

	// BatchSize overrides DefaultBatchSize for the range command.
	BatchSize int `yaml:"batchSize,omitempty"`
}

// File represents the structure of the .sunriset configuration file.
type File struct {
	// Places maps a name to a location. Names match case-insensitively.
	Places map[string]Place `yaml:"places,omitempty"`

	// Defaults contains values used when flags are not given.
	Defaults Defaults `yaml:"defaults,omitempty"`
}

// LookupPlace returns the place called name. Matching uses Unicode case
// folding, so "praha", "PRAHA" and "Praha" name the same place. An empty
// name selects Defaults.Place.
func (cf *File) LookupPlace(name string) (string, Place, error) {
	if name == "" {
		name = cf.Defaults.Place
	}
	if name == "" {
		return "", Place{}, fmt.Errorf("%w: no place given and no default place configured", ErrUnknownPlace)
	}

	if p, ok := cf.Places[name]; ok {
		return placeLabel(name, p), p, nil
	}

	fold := cases.Fold()
	want := fold.String(name)
	for _, key := range cf.PlaceNames() {
		if fold.String(key) == want {
			p := cf.Places[key]
			return placeLabel(key, p), p, nil
		}
	}
	return "", Place{}, fmt.Errorf("%w: %q", ErrUnknownPlace, name)
}

// PlaceNames returns the configured place names in sorted order.
func (cf *File) PlaceNames() []string {
	names := make([]string, 0, len(cf.Places))
	for name := range cf.Places {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func placeLabel(key string, p Place) string {
	if p.Label != "" {
		return p.Label
	}
	return key
}
