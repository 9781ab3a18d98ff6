package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/processing"
)

// ResultWriter is the interface for writing replay results to output.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r *processing.Result, label string) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewResultWriter returns a writer for the configured output format.
func NewResultWriter(w io.Writer, oc *config.OutputConfig) ResultWriter {
	if oc.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, oc)
}

// TextWriter writes results as text reports.
type TextWriter struct {
	w  io.Writer
	oc *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, oc *config.OutputConfig) *TextWriter {
	return &TextWriter{
		w:  w,
		oc: oc,
	}
}

// WriteResult writes a result report.
func (tw *TextWriter) WriteResult(r *processing.Result, label string) error {
	return WriteResultText(tw.w, r, tw.oc, label)
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

type labelledResult struct {
	result *processing.Result
	label  string
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	results []labelledResult
	single  bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		results: make([]labelledResult, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteResult buffers a result for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteResult(r *processing.Result, label string) error {
	if jw.single {
		return WriteResultJSON(jw.w, r, label)
	}

	jw.results = append(jw.results, labelledResult{result: r, label: label})
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}

	output := &JSONOutput{
		Results: make([]*JSONResult, 0, len(jw.results)),
	}
	for _, lr := range jw.results {
		output.Results = append(output.Results, ResultToJSON(lr.result, lr.label))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(output)

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
