// Package output provides normalization output formatters.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/logust79/varnorm/internal/variant"
)

// Writer is the interface shared by the output formatters.
type Writer interface {
	WriteHeader() error
	Write(orig, norm variant.Variant) error
	Flush() error
}

// TabWriter writes original/normalized variant pairs in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Uploaded_variation",
			"Location",
			"Ref",
			"Alt",
			"Normalized_variation",
			"Normalized_location",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single original/normalized pair.
func (tw *TabWriter) Write(orig, norm variant.Variant) error {
	values := []string{
		orig.ID(),
		fmt.Sprintf("%s:%d", orig.Chrom, orig.Pos),
		orig.Ref,
		orig.Alt,
		norm.ID(),
		fmt.Sprintf("%s:%d", norm.Chrom, norm.Pos),
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
