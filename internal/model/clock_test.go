package model

import (
	"fmt"
	"math"
	"testing"

	"github.com/nao1215/sunriset/internal/solar"
)

// TestFormatClock tests the H:MM rendering.
func TestFormatClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hours float64
		want  string
	}{
		{name: "midnight", hours: 0, want: "0:00"},
		{name: "single digit minutes are padded", hours: 4 + 5.0/60, want: "4:05"},
		{name: "minutes are truncated", hours: 4.999, want: "4:59"},
		{name: "default location sunrise", hours: 4.621391522809786, want: "4:37"},
		{name: "default location sunset", hours: 17.609958374836236, want: "17:36"},
		{name: "last minute of day", hours: 23.99, want: "23:59"},
		{name: "exact minute after sunset hour", hours: 17 + 36.0/60, want: "17:36"},
		{name: "exact minute on the hour", hours: 5 + 0.0/60, want: "5:00"},
		{name: "exact minutes across the day", hours: 13 + 59.0/60, want: "13:59"},
		{name: "just below midnight stays on the same day", hours: math.Nextafter(24, 0), want: "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatClock(tt.hours); got != tt.want {
				t.Errorf("FormatClock(%v) = %q, want %q", tt.hours, got, tt.want)
			}
		})
	}
}

// TestFormatClock_EveryMinute checks every whole minute of the day.
func TestFormatClock_EveryMinute(t *testing.T) {
	t.Parallel()

	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			want := fmt.Sprintf("%d:%02d", h, m)
			if got := FormatClock(float64(h) + float64(m)/60); got != want {
				t.Errorf("FormatClock(%d+%d/60) = %q, want %q", h, m, got, want)
			}
		}
	}
}

// TestFormatDuration tests the day length rendering.
func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hours float64
		want  string
	}{
		{hours: 0, want: "0h00m"},
		{hours: 24, want: "24h00m"},
		{hours: 12.9886, want: "12h59m"},
		{hours: 9.5, want: "9h30m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.hours); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

// TestDescribeState tests the state phrases.
func TestDescribeState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state solar.State
		want  string
	}{
		{state: solar.Normal, want: "sun rises and sets"},
		{state: solar.SunAlwaysAbove, want: "sun always above horizon"},
		{state: solar.SunAlwaysBelow, want: "sun always below horizon"},
		{state: solar.State(9), want: "unknown"},
	}

	for _, tt := range tests {
		if got := DescribeState(tt.state); got != tt.want {
			t.Errorf("DescribeState(%v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
