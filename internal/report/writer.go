package report

import (
	"io"

	"github.com/qa-radar/qaradar/internal/model"
)

// Writer defines the interface for brief output.
// Implementations render the brief in various formats.
//
// Design decision: an interface so the CLI can select the format at
// runtime and tests can render to a buffer with the same API.
type Writer interface {
	// Write renders the brief to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(brief *model.DiscoveryBrief) (int, error)
}

// MultiWriter writes a brief to multiple Writers in sequence.
// Useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the brief with every configured Writer.
// Returns the total bytes written; stops on the first error.
func (m *MultiWriter) Write(brief *model.DiscoveryBrief) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(brief)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
