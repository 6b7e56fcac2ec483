package selection

import (
	"errors"

	"github.com/inodb/vibe-germlines/internal/germline"
	"github.com/inodb/vibe-germlines/internal/species"
)

// level is a depth in the species, chain, segment, gene, allele hierarchy.
type level uint8

const (
	levelSpecies level = iota
	levelChain
	levelSegment
	levelGene
	levelAllele
	levelDone
)

// Cursor walks a selection one allele at a time. It keeps one position per
// hierarchy level; Next descends into a branch only after its filter passed
// and pops back up when a level is exhausted.
type Cursor struct {
	sel   Selection
	src   Source
	depth level
	pos   [levelDone]int
	err   error
	began bool

	species []species.Species
	sp      species.Species
	db      *germline.Germlines
	chain   *germline.Chain
	genes   []*germline.Germline
	gene    *germline.Germline
}

// Iter returns a cursor over the selected alleles of src.
func (s Selection) Iter(src Source) *Cursor {
	return &Cursor{sel: s, src: src}
}

// Err returns the error that stopped the cursor, if any.
func (c *Cursor) Err() error {
	return c.err
}

// descend enters the next level with its position reset.
func (c *Cursor) descend() {
	c.depth++
	c.pos[c.depth] = 0
}

// Next returns the next selected allele, or false when the walk is over.
func (c *Cursor) Next() (germline.Entry, bool) {
	if !c.began {
		c.began = true
		c.species = c.sel.speciesOf(c.src)
	}

	for c.depth < levelDone {
		i := c.pos[c.depth]
		switch c.depth {
		case levelSpecies:
			if i >= len(c.species) {
				c.depth = levelDone
				continue
			}
			c.pos[levelSpecies]++
			db, err := c.src.Germlines(c.species[i])
			if errors.Is(err, germline.ErrNoSpecies) {
				continue
			}
			if err != nil {
				c.err = err
				c.depth = levelDone
				continue
			}
			c.sp, c.db = c.species[i], db
			c.descend()

		case levelChain:
			if i >= len(germline.Kinds) {
				c.depth--
				continue
			}
			c.pos[levelChain]++
			if k := germline.Kinds[i]; c.sel.wantChain(k) {
				c.chain = c.db.Chain(k)
				c.descend()
			}

		case levelSegment:
			if i >= len(germline.SegmentTypes) {
				c.depth--
				continue
			}
			c.pos[levelSegment]++
			if t := germline.SegmentTypes[i]; c.sel.wantSegment(t) {
				c.genes = c.chain.Segment(t)
				c.descend()
			}

		case levelGene:
			if i >= len(c.genes) {
				c.depth--
				continue
			}
			c.pos[levelGene]++
			c.gene = c.genes[i]
			c.descend()

		case levelAllele:
			if i >= c.sel.alleleLimit(c.gene) {
				c.depth--
				continue
			}
			c.pos[levelAllele]++
			a := &c.gene.Alleles[i]
			return germline.Entry{Species: c.sp, Gene: c.gene.Name, Allele: a.Number, Seq: &a.Seq}, true
		}
	}
	return germline.Entry{}, false
}
