package model

import (
	"fmt"
	"math"

	"github.com/nao1215/sunriset/internal/solar"
)

// clockEpsilon absorbs the rounding error of hours built from whole minutes,
// e.g. 4+5.0/60, which would otherwise truncate to the previous minute.
const clockEpsilon = 1e-9

// FormatClock renders decimal hours as a 24-hour H:MM string.
// Whole minutes are truncated, so 4.999 becomes "4:59". Values in [0, 24)
// never render as 24:00.
func FormatClock(hours float64) string {
	total := int(hours*60 + clockEpsilon)
	if hours < 24 && total >= 24*60 {
		total = 24*60 - 1
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatDuration renders decimal hours as "HhMMm", rounded to the minute.
func FormatDuration(hours float64) string {
	total := int(math.Round(hours * 60))
	return fmt.Sprintf("%dh%02dm", total/60, total%60)
}

// DescribeState returns a short human readable phrase for a sun state.
func DescribeState(s solar.State) string {
	switch s {
	case solar.SunAlwaysAbove:
		return "sun always above horizon"
	case solar.SunAlwaysBelow:
		return "sun always below horizon"
	case solar.Normal:
		return "sun rises and sets"
	default:
		return "unknown"
	}
}
