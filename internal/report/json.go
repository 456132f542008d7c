package report

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/nao1215/studentreport/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
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

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// JSONReport wraps a computed report together with its text rendering.
type JSONReport struct {
	// Report is the computed result.
	Report *model.Report `json:"report"`

	// Text is the narrative text of the report.
	Text string `json:"text"`
}

// NewJSONReport creates a JSONReport for r.
func NewJSONReport(r *model.Report) (*JSONReport, error) {
	var sb strings.Builder
	if _, err := NewTextWriter(&sb).Write(r); err != nil {
		return nil, err
	}
	return &JSONReport{Report: r, Text: sb.String()}, nil
}

// Write outputs the report in JSON format.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	wrapped, err := NewJSONReport(report)
	if err != nil {
		return 0, err
	}
	return w.writeJSON(wrapped)
}

// WriteAll outputs reports as a single JSON array, so several reports
// remain one valid document.
func (w *JSONWriter) WriteAll(reports []*model.Report) (int, error) {
	wrapped := make([]*JSONReport, 0, len(reports))
	for _, r := range reports {
		jr, err := NewJSONReport(r)
		if err != nil {
			return 0, err
		}
		wrapped = append(wrapped, jr)
	}
	return w.writeJSON(wrapped)
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

	// Trailing newline for terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
