// Package output provides germline output formatters.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/vibe-germlines/internal/germline"
)

// Writer writes a stream of alleles.
type Writer interface {
	WriteHeader() error
	Write(e germline.Entry) error
	Flush() error
}

// TabWriter writes alleles in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
	fancy   bool
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Species",
			"Gene",
			"Allele",
			"Chain",
			"Segment",
			"Sequence",
			"Regions",
			"Annotations",
		},
	}
}

// SetFancy switches gene names to Greek chain and isotype letters.
func (tw *TabWriter) SetFancy(fancy bool) {
	tw.fancy = fancy
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single allele.
func (tw *TabWriter) Write(e germline.Entry) error {
	gene := e.Gene.String()
	if tw.fancy {
		gene = e.Gene.FancyString()
	}

	annotations := e.Seq.AnnotationString()
	if annotations == "" {
		annotations = "-"
	}

	fields := []string{
		e.Species.Ident(),
		gene,
		strconv.Itoa(e.Allele),
		e.Gene.Kind.String(),
		e.Gene.Segment.String(),
		e.Seq.Sequence,
		e.Seq.RegionString(),
		annotations,
	}
	_, err := tw.w.WriteString(strings.Join(fields, "\t") + "\n")
	return err
}

// Flush flushes any buffered data.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
