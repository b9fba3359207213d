package output

import (
	"bufio"
	"io"

	"github.com/logust79/varnorm/internal/variant"
)

// PlainWriter writes one normalized variant identifier per line.
type PlainWriter struct {
	w *bufio.Writer
}

// NewPlainWriter creates a new plain identifier writer.
func NewPlainWriter(w io.Writer) *PlainWriter {
	return &PlainWriter{w: bufio.NewWriter(w)}
}

// WriteHeader is a no-op; the plain format carries no header.
func (pw *PlainWriter) WriteHeader() error {
	return nil
}

// Write writes the normalized identifier.
func (pw *PlainWriter) Write(_, norm variant.Variant) error {
	_, err := pw.w.WriteString(norm.ID() + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (pw *PlainWriter) Flush() error {
	return pw.w.Flush()
}
