// Package imgttest builds synthetic IMGT flat-file records for tests.
package imgttest

import (
	"fmt"
	"strings"
)

// Feature is one feature-table entry.
type Feature struct {
	Key        string
	Location   string
	Qualifiers []string
}

// FT returns a feature with the given qualifier lines.
func FT(key, loc string, qualifiers ...string) Feature {
	return Feature{Key: key, Location: loc, Qualifiers: qualifiers}
}

// Entry describes one record. Empty Keywords and Organism fall back to a
// functional human immunoglobulin entry.
type Entry struct {
	ID         string
	Keywords   string
	Organism   string
	NoHeader   bool
	Features   []Feature
	Sequence   string
	Unfinished bool // omit the "//" terminator
}

// Text renders the entry in LIGM-DB layout with a 20 column key field.
func (e Entry) Text() string {
	kw := e.Keywords
	if kw == "" {
		kw = "immunoglobulin (IG); functional; germline."
	}
	organism := e.Organism
	if organism == "" {
		organism = "Homo sapiens (human)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ID   %s; standard; genomic DNA; IG; %d BP.\n", e.ID, len(e.Sequence))
	b.WriteString("XX\n")
	fmt.Fprintf(&b, "KW   %s\n", kw)
	b.WriteString("XX\n")
	fmt.Fprintf(&b, "OS   %s\n", organism)
	b.WriteString("OC   Eukaryota; Metazoa; Chordata.\n")
	b.WriteString("XX\n")
	if !e.NoHeader {
		b.WriteString("FH   Key                 Location/Qualifiers\n")
		b.WriteString("FH\n")
	}
	for _, f := range e.Features {
		fmt.Fprintf(&b, "FT   %-20s%s\n", f.Key, f.Location)
		for _, q := range f.Qualifiers {
			fmt.Fprintf(&b, "FT   %20s%s\n", "", q)
		}
	}
	b.WriteString("XX\n")
	fmt.Fprintf(&b, "SQ   Sequence %d BP;\n", len(e.Sequence))
	for i := 0; i < len(e.Sequence); i += 60 {
		end := min(i+60, len(e.Sequence))
		fmt.Fprintf(&b, "     %-60s %9d\n", e.Sequence[i:end], end)
	}
	if !e.Unfinished {
		b.WriteString("//\n")
	}
	return b.String()
}

// Join concatenates the text of several entries.
func Join(entries ...Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Text())
	}
	return b.String()
}

// VSequence is a V gene whose regions translate to
// QVQ GY WV IN YC AR (FR1 CDR1 FR2 CDR2 FR3 CDR3).
const VSequence = "caggtgcag" + "ggatac" + "tgggtc" + "attaac" + "tattgc" + "gcgaga"

// VGene returns a complete functional V gene record on the forward strand.
func VGene(id, allele string) Entry {
	return Entry{
		ID:       id,
		Sequence: VSequence,
		Features: []Feature{
			FT("V-GENE", "1..39", `/IMGT_allele="`+allele+`"`, "/functional"),
			FT("FR1-IMGT", "1..9", `/translation="QVQ"`),
			FT("CDR1-IMGT", "10..15", `/translation="GY"`),
			FT("FR2-IMGT", "16..21", `/translation="WV"`),
			FT("CONSERVED-TRP", "16..18"),
			FT("CDR2-IMGT", "22..27", `/translation="IN"`),
			FT("FR3-IMGT", "28..33", `/translation="YC"`),
			FT("2nd-CYS", "31..33"),
			FT("CDR3-IMGT", "34..39", `/translation="AR"`),
		},
	}
}

// JSequence is a J gene translating to YFDY WGQG TLVTVSS.
const JSequence = "tactttgactac" + "tggggccagggc" + "accctggtcaccgtctcctca"

// JGene returns a functional J gene record whose J-REGION carries the
// conserved WGQG motif at residue 4.
func JGene(id, allele string) Entry {
	return Entry{
		ID:       id,
		Sequence: JSequence,
		Features: []Feature{
			FT("J-GENE", "1..45", `/IMGT_allele="`+allele+`"`, "/functional"),
			FT("J-REGION", "1..45", "/codon_start=1"),
			FT("J-TRP", "13..15"),
		},
	}
}

// ReverseComplement reverses and complements a lowercase nucleotide string.
func ReverseComplement(seq string) string {
	pair := map[byte]byte{'a': 't', 't': 'a', 'c': 'g', 'g': 'c'}
	out := make([]byte, len(seq))
	for i := range len(seq) {
		out[len(seq)-1-i] = pair[seq[i]]
	}
	return string(out)
}

// Complement converts a 1-based forward span a..b on a sequence of length n
// to the complement(..) text of the same nucleotides on its reverse
// complement.
func Complement(a, b, n int) string {
	return fmt.Sprintf("complement(%d..%d)", n-b+1, n-a+1)
}

// Complemented moves the entry onto the reverse strand: the sequence is
// reverse complemented and every "a..b" feature becomes the matching
// complement(..) span, so each feature still reads the same nucleotides.
func (e Entry) Complemented() (Entry, error) {
	n := len(e.Sequence)
	out := e
	out.Sequence = ReverseComplement(e.Sequence)
	out.Features = make([]Feature, len(e.Features))
	for i, f := range e.Features {
		var a, b int
		if _, err := fmt.Sscanf(f.Location, "%d..%d", &a, &b); err != nil {
			return Entry{}, fmt.Errorf("feature %s: %w", f.Key, err)
		}
		f.Location = Complement(a, b, n)
		out.Features[i] = f
	}
	return out, nil
}
