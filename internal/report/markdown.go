package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/sunriset/internal/model"
	"github.com/nao1215/sunriset/internal/solar"
)

// MarkdownWriter outputs almanacs as GitHub flavored Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the almanac in Markdown format.
func (w *MarkdownWriter) Write(almanac *model.Almanac) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, almanac)
	w.writeEntries(md, almanac)
	if !almanac.IsSingleDay() && len(almanac.Entries) > 0 {
		w.writeSummary(md, almanac.Summary())
	}
	w.writeAlert(md, almanac)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and location table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, almanac *model.Almanac) {
	md.H1("Sunrise and Sunset: " + almanac.Title())
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Latitude", strconv.FormatFloat(almanac.Coordinate.Latitude, 'f', 6, 64)},
			{"Longitude", strconv.FormatFloat(almanac.Coordinate.Longitude, 'f', 6, 64)},
			{"Days", strconv.Itoa(len(almanac.Entries))},
			{"Time Zone", "UTC"},
		},
	})
	md.PlainText("")
}

// writeEntries writes one table row per date.
func (w *MarkdownWriter) writeEntries(md *markdown.Markdown, almanac *model.Almanac) {
	md.H2("Times")
	md.PlainText("")

	rows := make([][]string, len(almanac.Entries))
	for i, e := range almanac.Entries {
		rise, set := e.SunriseClock(), e.SunsetClock()
		if e.Result.State != solar.Normal {
			rise, set = "-", "-"
		}
		note := e.Marker
		if e.Result.State != solar.Normal {
			note = joinNote(note, model.DescribeState(e.Result.State))
		}
		if note == "" {
			note = "-"
		}

		rows[i] = []string{
			e.Date.String(),
			rise,
			set,
			model.FormatDuration(e.Result.DayLength()),
			note,
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Date", "Sunrise", "Sunset", "Day Length", "Note"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSummary writes day length statistics and, when the range crosses
// into polar day or night, a state distribution chart.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, s model.Summary) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Statistic", "Value"},
		Rows: [][]string{
			{"Shortest Day", model.FormatDuration(s.MinDayLength) + " (" + s.Shortest.String() + ")"},
			{"Longest Day", model.FormatDuration(s.MaxDayLength) + " (" + s.Longest.String() + ")"},
			{"Mean Day Length", model.FormatDuration(s.MeanDayLength)},
			{"Polar Days", strconv.Itoa(s.PolarDays)},
			{"Polar Nights", strconv.Itoa(s.PolarNights)},
		},
	})
	md.PlainText("")

	if s.PolarDays == 0 && s.PolarNights == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Sun State Distribution"),
		piechart.WithShowData(true),
	)
	if normal := s.Days - s.PolarDays - s.PolarNights; normal > 0 {
		chart.LabelAndIntValue("Rises and sets", uint64(normal)) //nolint:gosec // non-negative
	}
	if s.PolarDays > 0 {
		chart.LabelAndIntValue("Always above", uint64(s.PolarDays)) //nolint:gosec // non-negative
	}
	if s.PolarNights > 0 {
		chart.LabelAndIntValue("Always below", uint64(s.PolarNights)) //nolint:gosec // non-negative
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert notes polar day or night when any entry has one.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, almanac *model.Almanac) {
	var above, below int
	for _, e := range almanac.Entries {
		switch e.Result.State {
		case solar.SunAlwaysAbove:
			above++
		case solar.SunAlwaysBelow:
			below++
		}
	}

	switch {
	case above > 0 && below > 0:
		md.Cautionf("Both polar day (%d) and polar night (%d) occur in this range.", above, below)
	case above > 0:
		md.Warningf("The Sun stays above the horizon on %d day(s).", above)
	case below > 0:
		md.Warningf("The Sun stays below the horizon on %d day(s).", below)
	default:
		md.Tip("Times are UTC and refer to the upper limb of the Sun with standard refraction.")
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated by [sunriset](https://github.com/nao1215/sunriset)*")
}

func joinNote(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + ", " + b
	}
}
