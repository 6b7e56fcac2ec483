package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/inodb/vibe-germlines/internal/germline"
)

// FASTALineWidth is the number of residues per sequence line.
const FASTALineWidth = 60

// FASTAWriter writes alleles as FASTA records headed ">IGHV1-2*02 Human".
type FASTAWriter struct {
	w *bufio.Writer
}

// NewFASTAWriter creates a new FASTA writer.
func NewFASTAWriter(w io.Writer) *FASTAWriter {
	return &FASTAWriter{w: bufio.NewWriter(w)}
}

// WriteHeader is a no-op; FASTA has no file header.
func (fw *FASTAWriter) WriteHeader() error {
	return nil
}

// Write writes a single allele.
func (fw *FASTAWriter) Write(e germline.Entry) error {
	if _, err := fmt.Fprintf(fw.w, ">%s %s\n", e.Name(), e.Species); err != nil {
		return err
	}
	seq := e.Seq.Sequence
	for len(seq) > 0 {
		n := min(FASTALineWidth, len(seq))
		if _, err := fw.w.WriteString(seq[:n] + "\n"); err != nil {
			return err
		}
		seq = seq[n:]
	}
	return nil
}

// Flush flushes any buffered data.
func (fw *FASTAWriter) Flush() error {
	return fw.w.Flush()
}
