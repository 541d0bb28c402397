package almanac

import (
	"testing"

	"github.com/nao1215/sunriset/internal/solar"
)

// TestSeasonDates tests solstice and equinox dates against published values.
func TestSeasonDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want map[string]solar.Date
	}{
		{
			year: 2024,
			want: map[string]solar.Date{
				MarchEquinox:     {Year: 2024, Month: 3, Day: 20},
				JuneSolstice:     {Year: 2024, Month: 6, Day: 20},
				SeptemberEquinox: {Year: 2024, Month: 9, Day: 22},
				DecemberSolstice: {Year: 2024, Month: 12, Day: 21},
			},
		},
		{
			year: 2025,
			want: map[string]solar.Date{
				MarchEquinox:     {Year: 2025, Month: 3, Day: 20},
				JuneSolstice:     {Year: 2025, Month: 6, Day: 21},
				SeptemberEquinox: {Year: 2025, Month: 9, Day: 22},
				DecemberSolstice: {Year: 2025, Month: 12, Day: 21},
			},
		},
	}

	for _, tt := range tests {
		got := SeasonDates(tt.year)
		if len(got) != 4 {
			t.Errorf("%d: expected 4 dates, got %d", tt.year, len(got))
		}
		for name, date := range tt.want {
			if got[date] != name {
				t.Errorf("%d: %v = %q, want %q", tt.year, date, got[date], name)
			}
		}
	}
}

// TestSeasonMarker tests single-date lookups.
func TestSeasonMarker(t *testing.T) {
	t.Parallel()

	if got := SeasonMarker(solar.Date{Year: 2025, Month: 6, Day: 21}); got != JuneSolstice {
		t.Errorf("SeasonMarker(2025-06-21) = %q, want %q", got, JuneSolstice)
	}
	if got := SeasonMarker(solar.Date{Year: 2025, Month: 6, Day: 22}); got != "" {
		t.Errorf("SeasonMarker(2025-06-22) = %q, want empty", got)
	}
}
