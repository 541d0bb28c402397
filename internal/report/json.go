package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/sunriset/internal/model"
)

// JSONWriter outputs almanacs in JSON format for tool integration.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version is recorded in the output when non-empty.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion records the producing sunriset version in the output.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport is the document written by JSONWriter. The almanac fields are
// inlined at the top level.
type JSONReport struct {
	// Version is the sunriset version that generated this report.
	Version string `json:"version,omitempty"`

	*model.Almanac

	// Summary is present for multi-day almanacs.
	Summary *model.Summary `json:"summary,omitempty"`
}

// NewJSONReport wraps almanac with version information and, for ranges,
// its summary.
func NewJSONReport(almanac *model.Almanac, version string) *JSONReport {
	r := &JSONReport{
		Version: version,
		Almanac: almanac,
	}
	if len(almanac.Entries) > 1 {
		s := almanac.Summary()
		r.Summary = &s
	}
	return r
}

// Write outputs the almanac in JSON format.
func (w *JSONWriter) Write(almanac *model.Almanac) (int, error) {
	return w.writeJSON(NewJSONReport(almanac, w.version))
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
