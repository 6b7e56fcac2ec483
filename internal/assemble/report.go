package assemble

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/inodb/vibe-germlines/internal/imgt"
	"github.com/inodb/vibe-germlines/internal/species"
)

// Failure is one allele excluded from the database.
type Failure struct {
	Species species.Species
	Allele  string
	Key     string
	Record  string
	Reason  string
}

// Report collects everything a build left out.
type Report struct {
	Failures    []Failure
	ParseErrors []string   // records whose feature table could not be read
	JFallbacks  []string   // J alleles without the conserved motif
	Orphans     int        // structural features outside every gene
	Parser      imgt.Stats // filled in by Run
}

func (r *Report) addFailure(sp species.Species, err error) {
	f := Failure{Species: sp, Reason: err.Error()}
	var fe *FinishError
	if errors.As(err, &fe) {
		f.Allele, f.Key, f.Record, f.Reason = fe.Allele, fe.Key, fe.Record, fe.Err.Error()
	}
	r.Failures = append(r.Failures, f)
}

// Count returns the number of excluded alleles.
func (r *Report) Count() int {
	return len(r.Failures)
}

// BySpecies groups failure reasons per species and declared allele name.
func (r *Report) BySpecies() map[species.Species]map[string][]string {
	out := make(map[species.Species]map[string][]string)
	for _, f := range r.Failures {
		byAllele, ok := out[f.Species]
		if !ok {
			byAllele = make(map[string][]string)
			out[f.Species] = byAllele
		}
		byAllele[f.Allele] = append(byAllele[f.Allele], f.Reason)
	}
	return out
}

// WriteTo writes the report as indented text, species then allele.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	fmt.Fprintf(cw, "Records read: %d, retained: %d, unparseable: %d\n",
		r.Parser.Records, r.Parser.Retained, len(r.ParseErrors))
	fmt.Fprintf(cw, "Excluded alleles: %d\n", r.Count())
	fmt.Fprintf(cw, "J genes without conserved motif: %d\n", len(r.JFallbacks))
	fmt.Fprintf(cw, "Unassigned structural features: %d\n", r.Orphans)

	grouped := r.BySpecies()
	speciesList := make([]species.Species, 0, len(grouped))
	for sp := range grouped {
		speciesList = append(speciesList, sp)
	}
	slices.Sort(speciesList)

	for _, sp := range speciesList {
		fmt.Fprintf(cw, "\n%s (%s)\n", sp, sp.ScientificName())
		alleles := grouped[sp]
		names := make([]string, 0, len(alleles))
		for name := range alleles {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			fmt.Fprintf(cw, "  %s\n", name)
			for _, reason := range alleles[name] {
				fmt.Fprintf(cw, "    %s\n", reason)
			}
		}
	}

	if len(r.ParseErrors) > 0 {
		fmt.Fprintf(cw, "\nUnparseable records\n")
		for _, e := range r.ParseErrors {
			fmt.Fprintf(cw, "  %s\n", e)
		}
	}
	if len(r.JFallbacks) > 0 {
		fmt.Fprintf(cw, "\nJ genes labelled FR4 throughout\n")
		for _, name := range r.JFallbacks {
			fmt.Fprintf(cw, "  %s\n", name)
		}
	}

	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
