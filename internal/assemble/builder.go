package assemble

import (
	"context"
	"errors"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/inodb/vibe-germlines/internal/germline"
	"github.com/inodb/vibe-germlines/internal/imgt"
)

// RecordSource yields interpreted records; *imgt.Parser implements it.
// Next returns nil, nil at end of input.
type RecordSource interface {
	Next() (*imgt.DataItem, error)
}

// Builder accumulates finished alleles into per-species databases. All
// insertion happens on one goroutine, in input order.
type Builder struct {
	set    germline.Set
	report *Report
	logger *zap.Logger
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		set:    germline.Set{},
		report: &Report{},
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for excluded alleles and build totals.
func (b *Builder) SetLogger(l *zap.Logger) {
	b.logger = l
}

// Germlines returns the databases built so far.
func (b *Builder) Germlines() germline.Set {
	return b.set
}

// Report returns the diagnostics collected so far.
func (b *Builder) Report() *Report {
	return b.report
}

// Add finishes the genes of one record and inserts them.
func (b *Builder) Add(item *imgt.DataItem) {
	b.apply(finishItem(WorkItem{Item: item}))
}

// Run reads every record from src, finishes them on a pool of workers and
// inserts the results in input order. Record-level parse errors are
// reported and skipped; any other read error stops the build.
func (b *Builder) Run(ctx context.Context, src RecordSource, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	items := make(chan WorkItem, 64)

	g.Go(func() error {
		defer close(items)
		for seq := 0; ; seq++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			item, err := src.Next()
			var perr *imgt.ParseError
			if err != nil && !errors.As(err, &perr) {
				return err
			}
			if err == nil && item == nil {
				return nil
			}
			select {
			case items <- WorkItem{Seq: seq, Item: item, ParseErr: err}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	results := ParallelFinish(items, workers)
	g.Go(func() error {
		return OrderedCollect(results, func(r WorkResult) error {
			b.apply(r)
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		return err
	}

	if p, ok := src.(*imgt.Parser); ok {
		b.report.Parser = p.Stats()
	}
	b.logger.Info("germline build complete",
		zap.Int("species", len(b.set)),
		zap.Int("excluded", b.report.Count()),
		zap.Int("unparseable", len(b.report.ParseErrors)),
		zap.Int("j_fallbacks", len(b.report.JFallbacks)))
	return nil
}

func (b *Builder) apply(r WorkResult) {
	if r.ParseErr != nil {
		b.report.ParseErrors = append(b.report.ParseErrors, r.ParseErr.Error())
		b.logger.Warn("skipping unparseable record", zap.Error(r.ParseErr))
		return
	}
	if r.Item == nil {
		return
	}
	sp := r.Item.Species
	b.report.Orphans += len(r.Item.Orphans)

	for _, err := range r.Failures {
		b.report.addFailure(sp, err)
		b.logger.Debug("excluding allele",
			zap.String("species", sp.String()),
			zap.Error(err))
	}
	for _, f := range r.Finished {
		changed, err := b.set.Insert(sp, f.Gene, f.Allele, f.Seq)
		if err != nil {
			b.report.addFailure(sp, &FinishError{Allele: f.Name(), Record: f.Record, Err: err})
			continue
		}
		if changed && f.JFallback && !slices.Contains(b.report.JFallbacks, f.Name()) {
			b.report.JFallbacks = append(b.report.JFallbacks, f.Name())
		}
	}
}
