package store

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/inodb/vibe-germlines/internal/germline"
	"github.com/inodb/vibe-germlines/internal/species"
)

// Registry serves persisted databases. Each species is decoded on first
// access, exactly once, and kept for the lifetime of the registry. It is
// safe for concurrent use.
type Registry struct {
	dir     string
	species []species.Species
	loaders map[species.Species]func() (*germline.Germlines, error)
	loads   atomic.Int64
	logger  *zap.Logger
}

// Open reads the manifest of dir. Blobs are not touched until requested.
func Open(dir string) (*Registry, error) {
	m, err := ReadManifest(dir)
	if err != nil {
		return nil, err
	}

	r := &Registry{
		dir:     dir,
		loaders: make(map[species.Species]func() (*germline.Germlines, error), len(m.Entries)),
		logger:  zap.NewNop(),
	}
	for _, e := range m.Entries {
		sp, ok := species.FromIdent(e.Species)
		if !ok {
			return nil, fmt.Errorf("manifest: %w: %q", species.ErrUnknown, e.Species)
		}
		r.species = append(r.species, sp)
		r.loaders[sp] = sync.OnceValues(func() (*germline.Germlines, error) {
			return r.load(e)
		})
	}
	slices.Sort(r.species)
	return r, nil
}

// SetLogger sets the logger for load diagnostics.
func (r *Registry) SetLogger(l *zap.Logger) {
	r.logger = l
}

func (r *Registry) load(e Entry) (*germline.Germlines, error) {
	r.loads.Add(1)
	start := time.Now()
	db, err := readEntry(r.dir, e)
	if err != nil {
		r.logger.Error("load species failed", zap.String("species", e.Species), zap.Error(err))
		return nil, err
	}
	r.logger.Debug("loaded species",
		zap.String("species", e.Species),
		zap.Int("alleles", e.Alleles),
		zap.Duration("elapsed", time.Since(start)))
	return db, nil
}

// Dir returns the database directory.
func (r *Registry) Dir() string {
	return r.dir
}

// Species lists the persisted species.
func (r *Registry) Species() []species.Species {
	return slices.Clone(r.species)
}

// Germlines returns the database of a species, loading it on first use.
func (r *Registry) Germlines(sp species.Species) (*germline.Germlines, error) {
	load, ok := r.loaders[sp]
	if !ok {
		return nil, fmt.Errorf("%s: %w", sp.Ident(), germline.ErrNoSpecies)
	}
	return load()
}

// Close releases the registry. Loaded databases stay valid for callers
// still holding them.
func (r *Registry) Close() error {
	return nil
}
