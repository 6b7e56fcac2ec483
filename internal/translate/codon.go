// Package translate converts nucleotide sequences to amino acids.
package translate

import (
	"fmt"
	"strings"
)

// Standard genetic code: DNA codon to amino acid (single letter).
var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',

	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// CodonError reports a triplet that is not in the genetic code table.
type CodonError struct {
	Codon  string
	Offset int
}

func (e *CodonError) Error() string {
	return fmt.Sprintf("not a valid codon: %q at offset %d", e.Codon, e.Offset)
}

// TranslateCodon translates a DNA codon to its amino acid, ignoring case.
// Stop codons translate to '*'.
func TranslateCodon(codon string) (byte, bool) {
	aa, ok := codonTable[strings.ToUpper(codon)]
	return aa, ok
}

// Translate translates nucleotides to amino acids, reading codons from
// offset 0. A trailing partial codon is dropped. Any codon outside the
// genetic code, such as one holding an ambiguity code, fails the whole
// translation.
func Translate(seq string) (string, error) {
	n := (len(seq) / 3) * 3

	var result strings.Builder
	result.Grow(n / 3)

	for i := 0; i < n; i += 3 {
		aa, ok := TranslateCodon(seq[i : i+3])
		if !ok {
			return "", &CodonError{Codon: seq[i : i+3], Offset: i}
		}
		result.WriteByte(aa)
	}

	return result.String(), nil
}

// ReverseComplement returns the reverse complement of a DNA sequence,
// preserving case. Non-ACGT bases are rejected.
func ReverseComplement(seq string) (string, error) {
	n := len(seq)
	result := make([]byte, n)
	for i := 0; i < n; i++ {
		c, ok := complement(seq[n-1-i])
		if !ok {
			return "", fmt.Errorf("invalid base %q at offset %d", seq[n-1-i], n-1-i)
		}
		result[i] = c
	}
	return string(result), nil
}

func complement(base byte) (byte, bool) {
	switch base {
	case 'A':
		return 'T', true
	case 'T':
		return 'A', true
	case 'G':
		return 'C', true
	case 'C':
		return 'G', true
	case 'a':
		return 't', true
	case 't':
		return 'a', true
	case 'g':
		return 'c', true
	case 'c':
		return 'g', true
	default:
		return 0, false
	}
}

// IsNGlycanMotif reports whether an N-X-S/T motif, the consensus for
// N-linked glycosylation, starts at index i.
func IsNGlycanMotif(protein string, i int) bool {
	return i >= 0 && i+2 < len(protein) &&
		protein[i] == 'N' && (protein[i+2] == 'S' || protein[i+2] == 'T')
}

// NGlycanSites returns the start index of every N-X-S/T motif.
func NGlycanSites(protein string) []int {
	var sites []int
	for i := range len(protein) {
		if IsNGlycanMotif(protein, i) {
			sites = append(sites, i)
		}
	}
	return sites
}
