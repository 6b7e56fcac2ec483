// Package location implements the coordinate algebra for IMGT feature
// positions: forward and complement spans over a record's nucleotide
// sequence and their mapping to amino-acid indices.
package location

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the strand and shape of a Location.
type Kind uint8

const (
	Normal Kind = iota
	Complement
	SingleNormal
	SingleComplement
)

// Range is an inclusive index range.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Location is a 0-based inclusive span on a record's nucleotide sequence.
// Complement spans are stored with Start <= End, the same orientation as
// forward spans; reversal happens when the sequence is extracted.
// Single-point locations have Start == End.
type Location struct {
	Kind  Kind
	Start int
	End   int
}

// NewNormal returns a forward-strand span.
func NewNormal(start, end int) Location {
	return Location{Kind: Normal, Start: start, End: end}
}

// NewComplement returns a reverse-strand span.
func NewComplement(start, end int) Location {
	return Location{Kind: Complement, Start: start, End: end}
}

// Parse parses an IMGT feature position: "a..b", "complement(a..b)", a bare
// coordinate "n" or "complement(n)". Coordinates are 1-based in the text and
// 0-based in the result. Partial markers '<' and '>' are ignored.
func Parse(s string) (Location, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Location{}, &SyntaxError{Text: s, Reason: "empty location"}
	}

	complement := false
	body := text
	if tail, ok := strings.CutPrefix(text, "complement("); ok {
		inner, ok := strings.CutSuffix(tail, ")")
		if !ok {
			return Location{}, &SyntaxError{Text: s, Reason: "unbalanced complement("}
		}
		complement = true
		body = inner
	}
	if strings.ContainsAny(body, "()") {
		return Location{}, &SyntaxError{Text: s, Reason: "unexpected parenthesis"}
	}

	if from, to, ok := strings.Cut(body, ".."); ok {
		start, err := parseCoordinate(from)
		if err != nil {
			return Location{}, &SyntaxError{Text: s, Reason: err.Error()}
		}
		end, err := parseCoordinate(to)
		if err != nil {
			return Location{}, &SyntaxError{Text: s, Reason: err.Error()}
		}
		if start > end {
			return Location{}, &SyntaxError{Text: s, Reason: "start after end"}
		}
		if complement {
			return NewComplement(start, end), nil
		}
		return NewNormal(start, end), nil
	}

	pos, err := parseCoordinate(body)
	if err != nil {
		return Location{}, &SyntaxError{Text: s, Reason: err.Error()}
	}
	if complement {
		return Location{Kind: SingleComplement, Start: pos, End: pos}, nil
	}
	return Location{Kind: SingleNormal, Start: pos, End: pos}, nil
}

func parseCoordinate(s string) (int, error) {
	s = strings.TrimLeft(strings.TrimSpace(s), "<>")
	s = strings.TrimRight(s, "<>")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("coordinate %d out of range", n)
	}
	return n - 1, nil
}

// SyntaxError reports an unparseable position string.
type SyntaxError struct {
	Text   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid location %q: %s", e.Text, e.Reason)
}

// IsComplement reports whether the location is on the reverse strand.
func (l Location) IsComplement() bool {
	return l.Kind == Complement || l.Kind == SingleComplement
}

// IsSingle reports whether the location is a single coordinate.
func (l Location) IsSingle() bool {
	return l.Kind == SingleNormal || l.Kind == SingleComplement
}

// Len returns the number of nucleotides covered.
func (l Location) Len() int {
	return l.End - l.Start + 1
}

// Span returns the covered coordinates as a Range.
func (l Location) Span() Range {
	return Range{Start: l.Start, End: l.End}
}

// Contains returns true if inner lies within l on the same strand. A range
// contains another range or a single point of matching orientation;
// cross-strand containment is always false.
func (l Location) Contains(inner Location) bool {
	switch {
	case l.Kind == Normal && (inner.Kind == Normal || inner.Kind == SingleNormal),
		l.Kind == Complement && (inner.Kind == Complement || inner.Kind == SingleComplement):
		return l.Start <= inner.Start && inner.End <= l.End
	}
	return false
}

// AminoAcidRange maps inner onto 0-based codon indices counted from the
// reading start of l: the low coordinate on the forward strand, the high
// coordinate on the complement strand.
func (l Location) AminoAcidRange(inner Location) (Range, bool) {
	if !l.Contains(inner) {
		return Range{}, false
	}
	if l.Kind == Complement {
		return Range{Start: (l.End - inner.End) / 3, End: (l.End - inner.Start) / 3}, true
	}
	return Range{Start: (inner.Start - l.Start) / 3, End: (inner.End - l.Start) / 3}, true
}

// Splice splits a range at aa codons from its reading start. The first
// returned location is the one read first. It fails for single points, a
// non-positive position, or a split point at or beyond the far edge.
func (l Location) Splice(aa int) (Location, Location, bool) {
	if l.IsSingle() || aa <= 0 {
		return Location{}, Location{}, false
	}
	n := aa * 3
	if n >= l.Len() {
		return Location{}, Location{}, false
	}
	if l.Kind == Complement {
		split := l.End - n
		return NewComplement(split+1, l.End), NewComplement(l.Start, split), true
	}
	split := l.Start + n
	return NewNormal(l.Start, split-1), NewNormal(split, l.End), true
}

// Shift moves the reading start of a range by n nucleotides: a positive n
// trims, a negative n widens. It fails if the result would be empty or run
// below coordinate zero; the upper bound is the caller's concern.
func (l Location) Shift(n int) (Location, bool) {
	if l.IsSingle() {
		return l, n == 0
	}
	out := l
	if l.Kind == Complement {
		out.End -= n
	} else {
		out.Start += n
	}
	if out.Start < 0 || out.Start > out.End {
		return Location{}, false
	}
	return out, true
}

// String formats the location with 0-based coordinates, prefixing
// complement locations with 'c'.
func (l Location) String() string {
	prefix := ""
	if l.IsComplement() {
		prefix = "c"
	}
	if l.IsSingle() {
		return fmt.Sprintf("%s%d", prefix, l.Start)
	}
	return fmt.Sprintf("%s%d..%d", prefix, l.Start, l.End)
}
