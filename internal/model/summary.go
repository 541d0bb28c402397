package model

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/nao1215/sunriset/internal/solar"
)

// Summary holds day length statistics for an almanac.
// Day lengths are in hours; polar day counts as 24 and polar night as 0.
type Summary struct {
	Days        int `json:"days"`
	PolarDays   int `json:"polar_days"`
	PolarNights int `json:"polar_nights"`

	MinDayLength  float64 `json:"min_day_length"`
	MaxDayLength  float64 `json:"max_day_length"`
	MeanDayLength float64 `json:"mean_day_length"`

	// Shortest and Longest are the first dates reaching the minimum and
	// maximum day length.
	Shortest solar.Date `json:"shortest"`
	Longest  solar.Date `json:"longest"`
}

// Summary computes day length statistics over all entries.
// It returns the zero Summary for an empty almanac.
func (a *Almanac) Summary() Summary {
	if len(a.Entries) == 0 {
		return Summary{}
	}

	lengths := make([]float64, len(a.Entries))
	s := Summary{Days: len(a.Entries)}
	for i, e := range a.Entries {
		lengths[i] = e.Result.DayLength()
		switch e.Result.State {
		case solar.SunAlwaysAbove:
			s.PolarDays++
		case solar.SunAlwaysBelow:
			s.PolarNights++
		}
	}

	minIdx := floats.MinIdx(lengths)
	maxIdx := floats.MaxIdx(lengths)
	s.MinDayLength = lengths[minIdx]
	s.MaxDayLength = lengths[maxIdx]
	s.MeanDayLength = stat.Mean(lengths, nil)
	s.Shortest = a.Entries[minIdx].Date
	s.Longest = a.Entries[maxIdx].Date

	return s
}
