package model

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/nao1215/sunriset/internal/solar"
)

var testCoordinate = solar.Coordinate{Latitude: 49.86396819090531, Longitude: 14.265802152828646}

// TestNewEntry tests entry construction and clock accessors.
func TestNewEntry(t *testing.T) {
	t.Parallel()

	t.Run("normal day", func(t *testing.T) {
		t.Parallel()

		e := NewEntry(solar.Date{Year: 2025, Month: 4, Day: 2}, testCoordinate)
		if e.Result.State != solar.Normal {
			t.Fatalf("state = %v, want normal", e.Result.State)
		}
		if got := e.SunriseClock(); got != "4:37" {
			t.Errorf("SunriseClock() = %q, want %q", got, "4:37")
		}
		if got := e.SunsetClock(); got != "17:36" {
			t.Errorf("SunsetClock() = %q, want %q", got, "17:36")
		}
	})

	t.Run("polar night has no clock times", func(t *testing.T) {
		t.Parallel()

		e := NewEntry(solar.Date{Year: 2025, Month: 12, Day: 21}, solar.Coordinate{Latitude: 80})
		if e.SunriseClock() != "" || e.SunsetClock() != "" {
			t.Errorf("expected empty clocks, got %q %q", e.SunriseClock(), e.SunsetClock())
		}
	})
}

// TestAlmanac_Title tests the title fallback.
func TestAlmanac_Title(t *testing.T) {
	t.Parallel()

	if got := NewAlmanac("Home", testCoordinate).Title(); got != "Home" {
		t.Errorf("Title() = %q, want %q", got, "Home")
	}
	if got := NewAlmanac("", testCoordinate).Title(); got != "49.863968,14.265802" {
		t.Errorf("Title() = %q, want coordinate", got)
	}
}

// TestAlmanac_JSON tests the JSON shape used by report writers.
func TestAlmanac_JSON(t *testing.T) {
	t.Parallel()

	a := NewAlmanac("Home", testCoordinate)
	a.Entries = append(a.Entries,
		NewEntry(solar.Date{Year: 2025, Month: 4, Day: 2}, testCoordinate),
		Entry{Date: solar.Date{Year: 2025, Month: 6, Day: 21}, Result: solar.Result{State: solar.SunAlwaysAbove}, Marker: "June solstice"},
	)

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		`"place":"Home"`,
		`"latitude":49.86396819090531`,
		`"date":"2025-04-02"`,
		`"state":"normal"`,
		`"state":"always_above"`,
		`"marker":"June solstice"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}

	var back Almanac
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Entries[1].Result.State != solar.SunAlwaysAbove {
		t.Errorf("state after round trip = %v", back.Entries[1].Result.State)
	}
	if math.Abs(back.Entries[0].Result.Sunrise-a.Entries[0].Result.Sunrise) > 1e-12 {
		t.Errorf("sunrise after round trip = %v", back.Entries[0].Result.Sunrise)
	}
}
