// Package serializer provides structured output of calculator data in JSON,
// YAML, or a flattened table format, to stdout or a file.
package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format identifies a structured output format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	}
	return true
}

// StdoutURI is the special path indicating output should go to stdout.
const StdoutURI = "-"

// Writer serializes values in a fixed format to an output stream.
type Writer struct {
	format Format
	out    io.Writer
	closer io.Closer
	err    error
}

// NewWriter returns a Writer for the given format and stream. Unknown formats
// fall back to JSON rather than erroring.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	return &Writer{format: format, out: out}
}

// NewStdoutWriter returns a Writer targeting stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout returns a Writer targeting the given file path,
// creating or truncating it. An empty path or "-" targets stdout. File open
// errors are deferred to the first Serialize call.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format)
	}
	f, err := os.Create(path)
	if err != nil {
		w := NewWriter(format, io.Discard)
		w.err = fmt.Errorf("failed to open output file %q: %w", path, err)
		return w
	}
	w := NewWriter(format, f)
	w.closer = f
	return w
}

// Serialize writes v to the output stream in the configured format.
func (w *Writer) Serialize(v any) error {
	if w.err != nil {
		return w.err
	}
	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return writeTable(w.out, v)
	default:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		return nil
	}
}

// Close releases the underlying file, if any. Closing a stdout-backed writer
// is a no-op.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
