package report

import (
	"encoding/json"
	"io"

	"github.com/qa-radar/qaradar/internal/model"
)

// JSONWriter outputs briefs in JSON format for tool integration.
//
// Design decision: standard encoding/json is enough here; the brief is
// a plain data tree with text-marshaling enums, and no third-party
// codec in use elsewhere in the project offers anything the output
// contract needs.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed output.
	indent bool

	// indentString is the per-level indentation when indent is set.
	indentString string

	// version stamps the generator version into the wrapper.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentString = "  "
	}
}

// WithVersion sets the generator version recorded in the output wrapper.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
		version:    "dev",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// jsonBrief wraps the brief with output metadata.
//
// Design decision: a wrapper rather than extra fields on DiscoveryBrief
// keeps output-specific metadata out of the core data structure.
type jsonBrief struct {
	// Version is the generator version that produced this output.
	Version string `json:"version"`

	// Brief is the full discovery brief.
	Brief *model.DiscoveryBrief `json:"brief"`
}

// Write renders the brief as JSON with a metadata wrapper.
func (w *JSONWriter) Write(brief *model.DiscoveryBrief) (int, error) {
	wrapped := jsonBrief{Version: w.version, Brief: brief}

	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(wrapped, "", w.indentString)
	} else {
		data, err = json.Marshal(wrapped)
	}
	if err != nil {
		return 0, err
	}

	// Trailing newline for terminal friendliness
	data = append(data, '\n')

	return w.output.Write(data)
}
