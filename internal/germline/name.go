// Package germline holds immunoglobulin gene names, annotated allele
// sequences and the per-species germline database built from them.
package germline

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind is the chain an immunoglobulin gene belongs to.
type Kind uint8

const (
	Heavy Kind = iota
	LightKappa
	LightLambda
	Iota
)

// Kinds lists every chain kind in order.
var Kinds = []Kind{Heavy, LightKappa, LightLambda, Iota}

var kindCodes = [...]string{"H", "K", "L", "I"}

func (k Kind) String() string {
	if int(k) < len(kindCodes) {
		return kindCodes[k]
	}
	return "?"
}

// ParseKind parses a one letter chain code.
func ParseKind(s string) (Kind, bool) {
	for i, c := range kindCodes {
		if strings.EqualFold(c, s) {
			return Kind(i), true
		}
	}
	return 0, false
}

// SegmentType is the kind of gene segment.
type SegmentType uint8

const (
	V SegmentType = iota
	D
	J
	C
)

// SegmentTypes lists every segment type in order.
var SegmentTypes = []SegmentType{V, D, J, C}

func (t SegmentType) String() string {
	return [...]string{"V", "D", "J", "C"}[t]
}

// ParseSegmentType parses "V", "D", "J" or "C".
func ParseSegmentType(s string) (SegmentType, bool) {
	for _, t := range SegmentTypes {
		if strings.EqualFold(t.String(), s) {
			return t, true
		}
	}
	return 0, false
}

// Constant is the isotype of a constant segment.
type Constant uint8

const (
	NoIsotype Constant = iota
	IsotypeA
	IsotypeD
	IsotypeE
	IsotypeG
	IsotypeM
	IsotypeO
	IsotypeT
)

var isotypeCodes = [...]byte{0, 'A', 'D', 'E', 'G', 'M', 'O', 'T'}

// Segment is a segment type, with an isotype for constant segments.
type Segment struct {
	Type     SegmentType
	Constant Constant
}

func (s Segment) String() string {
	if s.Type == C && s.Constant != NoIsotype {
		return string(isotypeCodes[s.Constant])
	}
	return s.Type.String()
}

func (s Segment) compare(o Segment) int {
	return cmp.Or(cmp.Compare(s.Type, o.Type), cmp.Compare(s.Constant, o.Constant))
}

func parseSegment(c byte) (Segment, bool) {
	switch c {
	case 'V':
		return Segment{Type: V}, true
	case 'J':
		return Segment{Type: J}, true
	case 'C':
		return Segment{Type: C}, true
	}
	for i, code := range isotypeCodes {
		if i > 0 && code == c {
			return Segment{Type: C, Constant: Constant(i)}, true
		}
	}
	return Segment{}, false
}

// FamilyPart is one component of a gene's family path, e.g. "23" or "23D"
// in IGHV3-23D. Attached parts follow the previous part without a '-'.
type FamilyPart struct {
	Number    int
	HasNumber bool
	Suffix    string
	Attached  bool
}

func (p FamilyPart) compare(o FamilyPart) int {
	return cmp.Or(
		compareBool(p.HasNumber, o.HasNumber),
		cmp.Compare(p.Number, o.Number),
		strings.Compare(p.Suffix, o.Suffix),
		compareBool(p.Attached, o.Attached),
	)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

// Gene is a structured IMGT gene name such as IGHV3-23 or IGKV(IV)-novel-0.
type Gene struct {
	Kind    Kind
	Segment Segment
	Number  int // roman numeral group, 0 when absent
	Family  []FamilyPart
}

// Compare orders genes by kind, segment, group number and family path.
func (g Gene) Compare(o Gene) int {
	if c := cmp.Compare(g.Kind, o.Kind); c != 0 {
		return c
	}
	if c := g.Segment.compare(o.Segment); c != 0 {
		return c
	}
	if c := cmp.Compare(g.Number, o.Number); c != 0 {
		return c
	}
	return slices.CompareFunc(g.Family, o.Family, FamilyPart.compare)
}

// Equal reports whether two names are identical.
func (g Gene) Equal(o Gene) bool {
	return g.Compare(o) == 0
}

// AsDiversity reinterprets a delta constant name with a family, such as
// IGHD6-13, as the diversity gene IMGT means by it. The bare IGHD stays
// the constant gene.
func (g Gene) AsDiversity() (Gene, bool) {
	if g.Segment != (Segment{Type: C, Constant: IsotypeD}) || len(g.Family) == 0 {
		return g, false
	}
	g.Segment = Segment{Type: D}
	return g, true
}

var romanNumerals = [...]string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

func (g Gene) String() string {
	var b strings.Builder
	b.WriteString("IG")
	b.WriteString(g.Kind.String())
	b.WriteString(g.Segment.String())
	if g.Number > 0 && g.Number < len(romanNumerals) {
		b.WriteString("(" + romanNumerals[g.Number] + ")")
	}
	g.writeFamily(&b)
	return b.String()
}

func (g Gene) writeFamily(b *strings.Builder) {
	for _, part := range g.Family {
		if !part.Attached {
			b.WriteByte('-')
		}
		if part.HasNumber {
			b.WriteString(strconv.Itoa(part.Number))
		}
		b.WriteString(part.Suffix)
	}
}

var (
	fancyKinds    = [...]string{"H", "κ", "λ", "ι"}
	fancyIsotypes = [...]string{"", "α", "δ", "ε", "γ", "μ", "ο", "τ"}
)

// FancyString renders the name with Greek letters for light chain kinds and
// constant isotypes, e.g. IGκV1-5 or IGHγ.
func (g Gene) FancyString() string {
	var b strings.Builder
	b.WriteString("IG")
	if int(g.Kind) < len(fancyKinds) {
		b.WriteString(fancyKinds[g.Kind])
	}
	if g.Segment.Type == C && g.Segment.Constant != NoIsotype {
		b.WriteString(fancyIsotypes[g.Segment.Constant])
	} else {
		b.WriteString(g.Segment.Type.String())
	}
	if g.Number > 0 && g.Number < len(romanNumerals) {
		b.WriteString("(" + romanNumerals[g.Number] + ")")
	}
	g.writeFamily(&b)
	return b.String()
}

// FormatAllele returns the canonical IMGT allele name, e.g. IGHV3-23*03.
func FormatAllele(g Gene, allele int) string {
	return fmt.Sprintf("%s*%02d", g, allele)
}

// NameError reports a gene name that does not follow the IMGT grammar.
type NameError struct {
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("invalid gene name %q: %s", e.Name, e.Reason)
}

// ParseName parses a declared IMGT allele such as "IGHV3-23*03". A missing
// allele suffix means allele 1. Of a double name joined by " or " only the
// first alternative is used.
func ParseName(s string) (Gene, int, error) {
	g, allele, err := ParseQuery(s)
	if err != nil {
		return Gene{}, 0, err
	}
	if allele == 0 {
		allele = 1
	}
	return g, allele, nil
}

// ParseQuery is ParseName for lookups: a missing allele suffix yields 0.
func ParseQuery(s string) (Gene, int, error) {
	name, _, _ := strings.Cut(strings.TrimSpace(s), " or ")
	name = strings.TrimSpace(name)

	if !strings.HasPrefix(name, "IG") || len(name) < 4 {
		return Gene{}, 0, &NameError{Name: s, Reason: "does not start with IG<chain><segment>"}
	}

	var g Gene
	var ok bool
	if g.Kind, ok = ParseKind(name[2:3]); !ok {
		return Gene{}, 0, &NameError{Name: s, Reason: fmt.Sprintf("invalid chain %q", name[2:3])}
	}
	if g.Segment, ok = parseSegment(name[3]); !ok {
		return Gene{}, 0, &NameError{Name: s, Reason: fmt.Sprintf("invalid segment %q", name[3:4])}
	}

	rest := name[4:]
	if tail, found := strings.CutPrefix(rest, "("); found {
		numeral, after, closed := strings.Cut(tail, ")")
		if !closed {
			return Gene{}, 0, &NameError{Name: s, Reason: "unterminated group number"}
		}
		g.Number = slices.Index(romanNumerals[:], numeral)
		if g.Number <= 0 {
			return Gene{}, 0, &NameError{Name: s, Reason: fmt.Sprintf("invalid roman numeral %q", numeral)}
		}
		rest = after
	}

	attached := true
	for {
		tail, dash := strings.CutPrefix(rest, "-")
		if dash {
			rest, attached = tail, false
		}
		part, tail, ok := parseFamilyPart(rest)
		if !ok {
			if dash {
				return Gene{}, 0, &NameError{Name: s, Reason: "'-' not followed by a family part"}
			}
			break
		}
		part.Attached = attached
		g.Family = append(g.Family, part)
		rest, attached = tail, true
	}

	if rest == "" {
		return g, 0, nil
	}
	digits, ok := strings.CutPrefix(rest, "*")
	if !ok || digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return Gene{}, 0, &NameError{Name: s, Reason: fmt.Sprintf("invalid allele suffix %q", rest)}
	}
	allele, err := strconv.Atoi(digits)
	if err != nil {
		return Gene{}, 0, &NameError{Name: s, Reason: fmt.Sprintf("invalid allele suffix %q", rest)}
	}
	return g, allele, nil
}

// parseFamilyPart reads an optional integer followed by letters.
func parseFamilyPart(s string) (FamilyPart, string, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	j := i
	for j < len(s) && isLetter(s[j]) {
		j++
	}
	if j == 0 {
		return FamilyPart{}, s, false
	}

	var part FamilyPart
	if i > 0 {
		n, err := strconv.Atoi(s[:i])
		if err != nil {
			return FamilyPart{}, s, false
		}
		part.Number, part.HasNumber = n, true
	}
	part.Suffix = s[i:j]
	return part, s[j:], true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
