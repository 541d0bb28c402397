package report

import (
	"io"

	"github.com/nao1215/sunriset/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs the almanac to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(almanac *model.Almanac) (int, error)
}

// MultiWriter writes to multiple Writers in order.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the almanac to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(almanac *model.Almanac) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(almanac)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
