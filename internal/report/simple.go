package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/sunriset/internal/model"
	"github.com/nao1215/sunriset/internal/solar"
)

// SimpleWriter outputs plain text.
//
// A single day prints as "H:MM H:MM" (sunrise, sunset in UTC) so the line
// can be consumed by other tools. A range prints one line per date followed
// by a summary.
type SimpleWriter struct {
	baseWriter

	// showDate prefixes single-day output with the date.
	showDate bool

	// showSummary appends the day length summary to range output.
	showSummary bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithDate prefixes single-day output with the date. Range output always
// shows dates.
func WithDate(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showDate = show
	}
}

// WithSummary controls the trailing summary of range output.
func WithSummary(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showSummary = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter:  newBaseWriter(output),
		showSummary: true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the almanac as plain text.
func (w *SimpleWriter) Write(almanac *model.Almanac) (int, error) {
	var sb strings.Builder

	if almanac.IsSingleDay() {
		e := almanac.Entries[0]
		if w.showDate {
			sb.WriteString(e.Date.String())
			sb.WriteString(" ")
		}
		sb.WriteString(riseSetText(e))
		sb.WriteString("\n")
		return w.output.Write([]byte(sb.String()))
	}

	fmt.Fprintf(&sb, "# %s (UTC)\n", almanac.Title())
	for _, e := range almanac.Entries {
		fmt.Fprintf(&sb, "%s %s %s", e.Date, riseSetText(e), model.FormatDuration(e.Result.DayLength()))
		if e.Marker != "" {
			fmt.Fprintf(&sb, " %s", e.Marker)
		}
		sb.WriteString("\n")
	}

	if w.showSummary && len(almanac.Entries) > 0 {
		w.writeSummary(&sb, almanac.Summary())
	}

	return w.output.Write([]byte(sb.String()))
}

// writeSummary writes day length statistics.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, s model.Summary) {
	fmt.Fprintf(sb, "# %d days, shortest %s on %s, longest %s on %s, mean %s\n",
		s.Days,
		model.FormatDuration(s.MinDayLength), s.Shortest,
		model.FormatDuration(s.MaxDayLength), s.Longest,
		model.FormatDuration(s.MeanDayLength),
	)
	if s.PolarDays > 0 || s.PolarNights > 0 {
		fmt.Fprintf(sb, "# polar days: %d, polar nights: %d\n", s.PolarDays, s.PolarNights)
	}
}

// riseSetText returns "H:MM H:MM", or the state description when the Sun
// does not cross the horizon.
func riseSetText(e model.Entry) string {
	if e.Result.State != solar.Normal {
		return model.DescribeState(e.Result.State)
	}
	return e.SunriseClock() + " " + e.SunsetClock()
}
