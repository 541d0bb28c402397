package model

import (
	"math"
	"testing"

	"github.com/nao1215/sunriset/internal/solar"
)

// TestAlmanac_Summary tests day length statistics.
func TestAlmanac_Summary(t *testing.T) {
	t.Parallel()

	t.Run("empty almanac", func(t *testing.T) {
		t.Parallel()

		got := NewAlmanac("", testCoordinate).Summary()
		if got != (Summary{}) {
			t.Errorf("Summary() = %+v, want zero", got)
		}
	})

	t.Run("mixed states", func(t *testing.T) {
		t.Parallel()

		a := NewAlmanac("", testCoordinate)
		a.Entries = []Entry{
			{Date: solar.Date{Year: 2025, Month: 1, Day: 1}, Result: solar.Result{State: solar.Normal, Sunrise: 6, Sunset: 18}},
			{Date: solar.Date{Year: 2025, Month: 1, Day: 2}, Result: solar.Result{State: solar.SunAlwaysAbove}},
			{Date: solar.Date{Year: 2025, Month: 1, Day: 3}, Result: solar.Result{State: solar.SunAlwaysBelow}},
			{Date: solar.Date{Year: 2025, Month: 1, Day: 4}, Result: solar.Result{State: solar.SunAlwaysBelow}},
		}

		got := a.Summary()
		if got.Days != 4 || got.PolarDays != 1 || got.PolarNights != 2 {
			t.Errorf("counts = %+v", got)
		}
		if got.MinDayLength != 0 || got.MaxDayLength != 24 {
			t.Errorf("min/max = %v/%v, want 0/24", got.MinDayLength, got.MaxDayLength)
		}
		if math.Abs(got.MeanDayLength-9) > 1e-12 {
			t.Errorf("mean = %v, want 9", got.MeanDayLength)
		}
		if want := (solar.Date{Year: 2025, Month: 1, Day: 3}); got.Shortest != want {
			t.Errorf("shortest = %v, want first minimum %v", got.Shortest, want)
		}
		if want := (solar.Date{Year: 2025, Month: 1, Day: 2}); got.Longest != want {
			t.Errorf("longest = %v, want %v", got.Longest, want)
		}
	})
}
