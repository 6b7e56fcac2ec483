package germline

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/inodb/vibe-germlines/internal/species"
)

// ErrNoSpecies is returned when a database holds nothing for a species.
var ErrNoSpecies = errors.New("species not in database")

// Allele is one numbered variant of a germline gene.
type Allele struct {
	Number int
	Seq    AnnotatedSequence
}

// Germline is a gene name with its alleles, sorted by number.
type Germline struct {
	Name    Gene
	Alleles []Allele
}

// Allele returns the allele with the given number.
func (g *Germline) Allele(n int) (*Allele, bool) {
	i, found := slices.BinarySearchFunc(g.Alleles, n, func(a Allele, n int) int {
		return cmp.Compare(a.Number, n)
	})
	if !found {
		return nil, false
	}
	return &g.Alleles[i], true
}

// Chain holds the sorted germlines of one chain kind, per segment.
type Chain struct {
	Variable  []*Germline
	Joining   []*Germline
	Constant  []*Germline
	Diversity []*Germline
}

// Segment returns the germlines of a segment type.
func (c *Chain) Segment(t SegmentType) []*Germline {
	if l := c.list(t); l != nil {
		return *l
	}
	return nil
}

func (c *Chain) list(t SegmentType) *[]*Germline {
	switch t {
	case V:
		return &c.Variable
	case J:
		return &c.Joining
	case C:
		return &c.Constant
	case D:
		return &c.Diversity
	}
	return nil
}

// Germlines is the database of one species.
type Germlines struct {
	Species species.Species
	H       Chain
	K       Chain
	L       Chain
	I       Chain
}

// New returns an empty database for a species.
func New(s species.Species) *Germlines {
	return &Germlines{Species: s}
}

// Chain returns the chain of the given kind.
func (g *Germlines) Chain(k Kind) *Chain {
	switch k {
	case Heavy:
		return &g.H
	case LightKappa:
		return &g.K
	case LightLambda:
		return &g.L
	case Iota:
		return &g.I
	}
	return nil
}

// Insert adds an allele. When the allele already exists the sequence with
// more annotations and regions is kept; on a tie the existing one stays.
// It reports whether the database changed.
func (g *Germlines) Insert(gene Gene, allele int, seq AnnotatedSequence) (bool, error) {
	if err := seq.Validate(); err != nil {
		return false, fmt.Errorf("insert %s: %w", FormatAllele(gene, allele), err)
	}
	chain := g.Chain(gene.Kind)
	if chain == nil {
		return false, fmt.Errorf("insert %s: unknown chain kind %d", FormatAllele(gene, allele), gene.Kind)
	}
	list := chain.list(gene.Segment.Type)
	if list == nil {
		return false, fmt.Errorf("insert %s: unknown segment %d", FormatAllele(gene, allele), gene.Segment.Type)
	}

	i, found := slices.BinarySearchFunc(*list, gene, func(gl *Germline, name Gene) int {
		return gl.Name.Compare(name)
	})
	if !found {
		*list = slices.Insert(*list, i, &Germline{
			Name:    gene,
			Alleles: []Allele{{Number: allele, Seq: seq}},
		})
		return true, nil
	}

	gl := (*list)[i]
	j, found := slices.BinarySearchFunc(gl.Alleles, allele, func(a Allele, n int) int {
		return cmp.Compare(a.Number, n)
	})
	if !found {
		gl.Alleles = slices.Insert(gl.Alleles, j, Allele{Number: allele, Seq: seq})
		return true, nil
	}
	if seq.Richness() > gl.Alleles[j].Seq.Richness() {
		gl.Alleles[j].Seq = seq
		return true, nil
	}
	return false, nil
}

// Find looks up a gene. Allele 0 selects the lowest numbered allele.
// Names like IGHD6-13 that parse as delta constants are also looked up
// among the diversity genes.
func (g *Germlines) Find(gene Gene, allele int) (Entry, bool) {
	if e, ok := g.find(gene, allele); ok {
		return e, true
	}
	if d, ok := gene.AsDiversity(); ok {
		return g.find(d, allele)
	}
	return Entry{}, false
}

func (g *Germlines) find(gene Gene, allele int) (Entry, bool) {
	chain := g.Chain(gene.Kind)
	if chain == nil {
		return Entry{}, false
	}
	list := chain.Segment(gene.Segment.Type)
	i, found := slices.BinarySearchFunc(list, gene, func(gl *Germline, name Gene) int {
		return gl.Name.Compare(name)
	})
	if !found || len(list[i].Alleles) == 0 {
		return Entry{}, false
	}
	gl := list[i]

	a := &gl.Alleles[0]
	if allele != 0 {
		var ok bool
		if a, ok = gl.Allele(allele); !ok {
			return Entry{}, false
		}
	}
	return Entry{Species: g.Species, Gene: gl.Name, Allele: a.Number, Seq: &a.Seq}, true
}

// Count is the number of genes and alleles of one chain and segment.
type Count struct {
	Kind    Kind
	Segment SegmentType
	Genes   int
	Alleles int
}

// Stats counts genes and alleles per chain and segment, skipping empty
// combinations.
func (g *Germlines) Stats() []Count {
	var out []Count
	for _, k := range Kinds {
		chain := g.Chain(k)
		for _, t := range SegmentTypes {
			list := chain.Segment(t)
			if len(list) == 0 {
				continue
			}
			c := Count{Kind: k, Segment: t, Genes: len(list)}
			for _, gl := range list {
				c.Alleles += len(gl.Alleles)
			}
			out = append(out, c)
		}
	}
	return out
}

// Totals returns the number of genes and alleles in the database.
func (g *Germlines) Totals() (genes, alleles int) {
	for _, c := range g.Stats() {
		genes += c.Genes
		alleles += c.Alleles
	}
	return genes, alleles
}

// Entry is a borrowed view of one allele.
type Entry struct {
	Species species.Species
	Gene    Gene
	Allele  int
	Seq     *AnnotatedSequence
}

// Name returns the canonical allele name, e.g. IGHV1-2*02.
func (e Entry) Name() string {
	return FormatAllele(e.Gene, e.Allele)
}

// FancyName returns the allele name with Greek chain and isotype letters.
func (e Entry) FancyName() string {
	return fmt.Sprintf("%s*%02d", e.Gene.FancyString(), e.Allele)
}
