package germline

import (
	"fmt"
	"slices"

	"github.com/inodb/vibe-germlines/internal/species"
)

// Set is an in-memory collection of per-species databases.
type Set map[species.Species]*Germlines

// Species returns the species present, in enumeration order.
func (s Set) Species() []species.Species {
	out := make([]species.Species, 0, len(s))
	for sp := range s {
		out = append(out, sp)
	}
	slices.Sort(out)
	return out
}

// Germlines returns the database of one species.
func (s Set) Germlines(sp species.Species) (*Germlines, error) {
	g, ok := s[sp]
	if !ok {
		return nil, fmt.Errorf("%s: %w", sp, ErrNoSpecies)
	}
	return g, nil
}

// Insert adds an allele to the species' database, creating it on first use.
func (s Set) Insert(sp species.Species, gene Gene, allele int, seq AnnotatedSequence) (bool, error) {
	g, ok := s[sp]
	if !ok {
		g = New(sp)
	}
	changed, err := g.Insert(gene, allele, seq)
	if err == nil && !ok {
		s[sp] = g
	}
	return changed, err
}
