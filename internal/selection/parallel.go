package selection

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/inodb/vibe-germlines/internal/germline"
	"github.com/inodb/vibe-germlines/internal/species"
)

// geneTask is one gene of one species.
type geneTask struct {
	species species.Species
	gene    *germline.Germline
}

// walkGenes calls fn for every selected gene, stopping when fn returns false.
func (s Selection) walkGenes(src Source, fn func(geneTask) bool) error {
	for _, sp := range s.speciesOf(src) {
		db, err := src.Germlines(sp)
		if errors.Is(err, germline.ErrNoSpecies) {
			continue
		}
		if err != nil {
			return err
		}
		for _, k := range germline.Kinds {
			if !s.wantChain(k) {
				continue
			}
			chain := db.Chain(k)
			for _, t := range germline.SegmentTypes {
				if !s.wantSegment(t) {
					continue
				}
				for _, g := range chain.Segment(t) {
					if !fn(geneTask{species: sp, gene: g}) {
						return nil
					}
				}
			}
		}
	}
	return nil
}

// Parallel produces the selected alleles from a pool of workers, one task
// per gene. Every selected allele is sent exactly once, in no particular
// order. The channel is closed when the walk ends; wait then returns the
// first error. Cancel ctx to stop early. If workers is 0,
// runtime.NumCPU() is used.
func (s Selection) Parallel(ctx context.Context, src Source, workers int) (<-chan germline.Entry, func() error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := make(chan germline.Entry, 2*workers)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	done := make(chan error, 1)
	go func() {
		defer close(out)
		walkErr := s.walkGenes(src, func(task geneTask) bool {
			g.Go(func() error {
				gl := task.gene
				for i := range s.alleleLimit(gl) {
					a := &gl.Alleles[i]
					e := germline.Entry{Species: task.species, Gene: gl.Name, Allele: a.Number, Seq: &a.Seq}
					select {
					case out <- e:
					case <-ctx.Done():
						return ctx.Err()
					}
				}
				return nil
			})
			return ctx.Err() == nil
		})
		done <- errors.Join(walkErr, g.Wait())
	}()

	return out, func() error { return <-done }
}
