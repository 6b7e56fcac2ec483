// Package selection queries germline databases: a Selection filters by
// species, chain and segment and picks the first or all alleles per gene.
package selection

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/inodb/vibe-germlines/internal/germline"
	"github.com/inodb/vibe-germlines/internal/species"
)

// Source provides per-species databases. germline.Set and store.Registry
// implement it.
type Source interface {
	Species() []species.Species
	Germlines(species.Species) (*germline.Germlines, error)
}

// AlleleSelection decides which alleles of a gene are returned.
type AlleleSelection uint8

const (
	// First returns only the lowest numbered allele of each gene.
	First AlleleSelection = iota
	// All returns every allele.
	All
)

func (a AlleleSelection) String() string {
	if a == All {
		return "all"
	}
	return "first"
}

// ErrNotFound is returned by Get when the gene or allele is absent.
var ErrNotFound = errors.New("germline not found")

// Selection is an immutable filter over germline databases. The zero value
// and New select everything, first allele only. A nil set means no
// restriction at that level.
type Selection struct {
	species  map[species.Species]bool
	chains   map[germline.Kind]bool
	segments map[germline.SegmentType]bool
	alleles  AlleleSelection
}

// New returns the default selection.
func New() Selection {
	return Selection{alleles: First}
}

func setOf[T comparable](values []T) map[T]bool {
	m := make(map[T]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// Species restricts the selection to the given species, replacing any
// earlier species restriction.
func (s Selection) Species(sp ...species.Species) Selection {
	s.species = setOf(sp)
	return s
}

// Chains restricts the selection to the given chain kinds.
func (s Selection) Chains(k ...germline.Kind) Selection {
	s.chains = setOf(k)
	return s
}

// Segments restricts the selection to the given segment types.
func (s Selection) Segments(t ...germline.SegmentType) Selection {
	s.segments = setOf(t)
	return s
}

// Alleles sets the allele policy.
func (s Selection) Alleles(a AlleleSelection) Selection {
	s.alleles = a
	return s
}

func (s Selection) wantSpecies(sp species.Species) bool {
	return s.species == nil || s.species[sp]
}

func (s Selection) wantChain(k germline.Kind) bool {
	return s.chains == nil || s.chains[k]
}

func (s Selection) wantSegment(t germline.SegmentType) bool {
	return s.segments == nil || s.segments[t]
}

// alleleLimit returns how many alleles of g are selected.
func (s Selection) alleleLimit(g *germline.Germline) int {
	if s.alleles == First {
		return min(1, len(g.Alleles))
	}
	return len(g.Alleles)
}

// speciesOf lists the selected species present in src.
func (s Selection) speciesOf(src Source) []species.Species {
	var out []species.Species
	for _, sp := range src.Species() {
		if s.wantSpecies(sp) {
			out = append(out, sp)
		}
	}
	return out
}

// All returns the selected alleles as a sequence. Each call walks the
// source afresh; a load error ends the sequence early, use Collect to see it.
func (s Selection) All(src Source) iter.Seq[germline.Entry] {
	return func(yield func(germline.Entry) bool) {
		c := s.Iter(src)
		for {
			e, ok := c.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// Collect returns every selected allele.
func (s Selection) Collect(src Source) ([]germline.Entry, error) {
	c := s.Iter(src)
	var out []germline.Entry
	for {
		e, ok := c.Next()
		if !ok {
			return out, c.Err()
		}
		out = append(out, e)
	}
}

// Equal reports whether two selections filter identically.
func (s Selection) Equal(o Selection) bool {
	return maps.Equal(s.species, o.species) &&
		maps.Equal(s.chains, o.chains) &&
		maps.Equal(s.segments, o.segments) &&
		s.alleles == o.alleles
}

// Get looks up one allele. Allele 0 selects the lowest numbered allele.
func Get(src Source, sp species.Species, gene germline.Gene, allele int) (germline.Entry, error) {
	db, err := src.Germlines(sp)
	if err != nil {
		return germline.Entry{}, err
	}
	e, ok := db.Find(gene, allele)
	if !ok {
		name := gene.String()
		if allele != 0 {
			name = germline.FormatAllele(gene, allele)
		}
		return germline.Entry{}, fmt.Errorf("%s in %s: %w", name, sp, ErrNotFound)
	}
	return e, nil
}
