package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/inodb/vibe-germlines/internal/duckdb"
	"github.com/inodb/vibe-germlines/internal/germline"
	"github.com/inodb/vibe-germlines/internal/output"
	"github.com/inodb/vibe-germlines/internal/store"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show gene and allele counts per species, chain and segment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSummary(cmd.OutOrStdout())
		},
	}
}

// loadAll loads every persisted species.
func loadAll(reg *store.Registry) ([]*germline.Germlines, error) {
	var dbs []*germline.Germlines
	for _, sp := range reg.Species() {
		db, err := reg.Germlines(sp)
		if err != nil {
			return nil, err
		}
		dbs = append(dbs, db)
	}
	return dbs, nil
}

func (a *app) runSummary(w io.Writer) error {
	reg, err := a.openRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	dbs, err := loadAll(reg)
	if err != nil {
		return err
	}
	return output.WriteSummary(w, dbs)
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "export <out.duckdb>",
		Short:   "Export the database to DuckDB",
		Example: `  vibe-germlines export germlines.duckdb`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport(cmd.OutOrStdout(), args[0])
		},
	}
}

func (a *app) runExport(w io.Writer, path string) error {
	reg, err := a.openRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	dbs, err := loadAll(reg)
	if err != nil {
		return err
	}

	s, err := duckdb.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	var alleles int
	for _, db := range dbs {
		if err := s.WriteGermlines(db); err != nil {
			return fmt.Errorf("export %s: %w", db.Species.Ident(), err)
		}
		_, n := db.Totals()
		alleles += n
	}
	fmt.Fprintf(w, "Exported %d alleles for %d species to %s\n", alleles, len(dbs), path)
	return nil
}
