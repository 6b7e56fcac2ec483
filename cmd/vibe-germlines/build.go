package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/vibe-germlines/internal/assemble"
	"github.com/inodb/vibe-germlines/internal/duckdb"
	"github.com/inodb/vibe-germlines/internal/germline"
	"github.com/inodb/vibe-germlines/internal/imgt"
	"github.com/inodb/vibe-germlines/internal/store"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		duckdbPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "build <imgt.dat[.gz|.xz]>",
		Short: "Build the germline database from an IMGT LIGM-DB flat file",
		Long: `Parse an IMGT LIGM-DB flat file, assemble the annotated amino-acid sequence
of every functional germline allele, and write one database per species to
the data directory. Alleles that cannot be assembled are listed in the
diagnostic report.`,
		Example: `  vibe-germlines build imgt.dat.gz
  vibe-germlines build --d-genes --report build.txt imgt.dat.xz
  vibe-germlines build --duckdb germlines.duckdb imgt.dat`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(cmd.Context(), cmd.OutOrStdout(), args[0], duckdbPath, force)
		},
	}

	flags := cmd.Flags()
	flags.Int("workers", 0, "finishing workers (0 = number of CPUs)")
	flags.Bool("d-genes", false, "also assemble D genes")
	flags.String("report", "", "write the diagnostic report to this file")
	flags.StringVar(&duckdbPath, "duckdb", "", "also export alleles and failures to this DuckDB file")
	flags.BoolVar(&force, "force", false, "rebuild even if the DuckDB file records the same input")
	_ = a.v.BindPFlag("build.workers", flags.Lookup("workers"))
	_ = a.v.BindPFlag("build.d_genes", flags.Lookup("d-genes"))
	_ = a.v.BindPFlag("build.report", flags.Lookup("report"))

	return cmd
}

func (a *app) runBuild(ctx context.Context, w io.Writer, input, duckdbPath string, force bool) error {
	dir := a.dataDir()
	if duckdbPath != "" && !force {
		skip, err := upToDate(duckdbPath, input, dir)
		if err != nil {
			return err
		}
		if skip {
			a.logger.Info("input unchanged since last build", zap.String("input", input))
			fmt.Fprintf(w, "%s is unchanged since the last build; use --force to rebuild\n", input)
			return nil
		}
	}

	parser, err := imgt.Open(input)
	if err != nil {
		return err
	}
	defer parser.Close()
	parser.SetOptions(imgt.Options{DGenes: a.v.GetBool("build.d_genes")})
	parser.SetLogger(a.logger)

	b := assemble.NewBuilder()
	b.SetLogger(a.logger)
	if err := b.Run(ctx, parser, a.v.GetInt("build.workers")); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	set, report := b.Germlines(), b.Report()

	if err := store.WriteSet(dir, set); err != nil {
		return fmt.Errorf("write database: %w", err)
	}

	if path := a.v.GetString("build.report"); path != "" {
		if err := writeReport(path, report); err != nil {
			return err
		}
	}

	var alleles int
	for _, db := range set {
		_, n := db.Totals()
		alleles += n
	}

	if duckdbPath != "" {
		if err := exportBuild(duckdbPath, input, set, report, alleles); err != nil {
			return err
		}
		a.logger.Info("exported to duckdb", zap.String("path", duckdbPath))
	}

	fmt.Fprintf(w, "Built %d alleles for %d species in %s (%d excluded, %d J genes without motif)\n",
		alleles, len(set), dir, report.Count(), len(report.JFallbacks))
	return nil
}

func writeReport(path string, r *assemble.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if _, err := r.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}

// upToDate reports whether the DuckDB file recorded a build of the same
// input and the data directory still holds a database.
func upToDate(duckdbPath, input, dir string) (bool, error) {
	if input == "-" {
		return false, nil
	}
	if _, err := os.Stat(duckdbPath); errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if _, err := store.ReadManifest(dir); err != nil {
		return false, nil
	}
	fp, err := duckdb.StatFile(input)
	if err != nil {
		return false, err
	}

	s, err := duckdb.Open(duckdbPath)
	if err != nil {
		return false, err
	}
	defer s.Close()
	return s.Unchanged(fp)
}

func exportBuild(path, input string, set germline.Set, r *assemble.Report, alleles int) error {
	s, err := duckdb.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, sp := range set.Species() {
		if err := s.WriteGermlines(set[sp]); err != nil {
			return fmt.Errorf("export %s: %w", sp.Ident(), err)
		}
	}
	if err := s.WriteReport(r); err != nil {
		return err
	}

	if input == "-" {
		return nil
	}
	fp, err := duckdb.StatFile(input)
	if err != nil {
		return err
	}
	return s.RecordBuild(fp, r, alleles)
}
