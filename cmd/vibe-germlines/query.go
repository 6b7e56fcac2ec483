package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/inodb/vibe-germlines/internal/germline"
	"github.com/inodb/vibe-germlines/internal/output"
	"github.com/inodb/vibe-germlines/internal/selection"
	"github.com/inodb/vibe-germlines/internal/species"
	"github.com/inodb/vibe-germlines/internal/store"
)

type queryOptions struct {
	species    []string
	chains     []string
	segments   []string
	allAlleles bool
	parallel   bool
	workers    int
	format     string
	fancy      bool
}

func newQueryCmd(a *app) *cobra.Command {
	var opts queryOptions

	cmd := &cobra.Command{
		Use:   "query",
		Short: "List germline alleles matching a selection",
		Example: `  vibe-germlines query --species human --chain H --segment V
  vibe-germlines query --species "Mus musculus" --all-alleles --format fasta
  vibe-germlines query --parallel --workers 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runQuery(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&opts.species, "species", nil, "species by identifier, common or scientific name (repeatable)")
	flags.StringSliceVar(&opts.chains, "chain", nil, "chain kinds: H, K, L, I (repeatable)")
	flags.StringSliceVar(&opts.segments, "segment", nil, "segment types: V, D, J, C (repeatable)")
	flags.BoolVar(&opts.allAlleles, "all-alleles", false, "return every allele instead of the lowest numbered")
	flags.BoolVar(&opts.parallel, "parallel", false, "load and walk genes concurrently (unordered output)")
	flags.IntVar(&opts.workers, "workers", 0, "parallel workers (0 = number of CPUs)")
	addFormatFlags(cmd, &opts.format, &opts.fancy)

	return cmd
}

func addFormatFlags(cmd *cobra.Command, format *string, fancy *bool) {
	cmd.Flags().StringVarP(format, "format", "f", "tab", "output format: tab, fasta")
	cmd.Flags().BoolVar(fancy, "fancy", false, "Greek chain and isotype letters in tab output")
}

func newWriter(w io.Writer, format string, fancy bool) (output.Writer, error) {
	switch format {
	case "tab":
		tw := output.NewTabWriter(w)
		tw.SetFancy(fancy)
		return tw, nil
	case "fasta":
		return output.NewFASTAWriter(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// buildSelection converts command-line filters into a Selection.
func buildSelection(opts queryOptions) (selection.Selection, error) {
	sel := selection.New()

	if len(opts.species) > 0 {
		var list []species.Species
		for _, name := range opts.species {
			sp, ok := species.FromName(name)
			if !ok {
				return sel, fmt.Errorf("%w: %q", species.ErrUnknown, name)
			}
			list = append(list, sp)
		}
		sel = sel.Species(list...)
	}
	if len(opts.chains) > 0 {
		var list []germline.Kind
		for _, s := range opts.chains {
			k, ok := germline.ParseKind(s)
			if !ok {
				return sel, fmt.Errorf("unknown chain %q (want H, K, L or I)", s)
			}
			list = append(list, k)
		}
		sel = sel.Chains(list...)
	}
	if len(opts.segments) > 0 {
		var list []germline.SegmentType
		for _, s := range opts.segments {
			t, ok := germline.ParseSegmentType(s)
			if !ok {
				return sel, fmt.Errorf("unknown segment %q (want V, D, J or C)", s)
			}
			list = append(list, t)
		}
		sel = sel.Segments(list...)
	}
	if opts.allAlleles {
		sel = sel.Alleles(selection.All)
	}
	return sel, nil
}

func (a *app) openRegistry() (*store.Registry, error) {
	dir := a.dataDir()
	reg, err := store.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open database %s (run 'vibe-germlines build' first): %w", dir, err)
	}
	reg.SetLogger(a.logger)
	return reg, nil
}

func (a *app) runQuery(ctx context.Context, w io.Writer, opts queryOptions) error {
	sel, err := buildSelection(opts)
	if err != nil {
		return err
	}
	writer, err := newWriter(w, opts.format, opts.fancy)
	if err != nil {
		return err
	}

	reg, err := a.openRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	if err := writer.WriteHeader(); err != nil {
		return err
	}

	if opts.parallel {
		out, wait := sel.Parallel(ctx, reg, opts.workers)
		var writeErr error
		for e := range out {
			if writeErr == nil {
				writeErr = writer.Write(e)
			}
		}
		if err := wait(); err != nil {
			return err
		}
		if writeErr != nil {
			return writeErr
		}
		return writer.Flush()
	}

	c := sel.Iter(reg)
	for e, ok := c.Next(); ok; e, ok = c.Next() {
		if err := writer.Write(e); err != nil {
			return err
		}
	}
	if err := c.Err(); err != nil {
		return err
	}
	return writer.Flush()
}

func newGetCmd(a *app) *cobra.Command {
	var format string
	var fancy bool

	cmd := &cobra.Command{
		Use:   "get <species> <gene>[*allele]",
		Short: "Look up one germline allele",
		Long:  "Look up one allele by name. Without an allele suffix the lowest numbered allele is returned.",
		Example: `  vibe-germlines get human IGHV3-23
  vibe-germlines get HomoSapiens 'IGKV1-5*03' --format fasta`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGet(cmd.OutOrStdout(), args[0], args[1], format, fancy)
		},
	}
	addFormatFlags(cmd, &format, &fancy)
	return cmd
}

func (a *app) runGet(w io.Writer, speciesName, name, format string, fancy bool) error {
	sp, ok := species.FromName(speciesName)
	if !ok {
		return fmt.Errorf("%w: %q", species.ErrUnknown, speciesName)
	}
	gene, allele, err := germline.ParseQuery(name)
	if err != nil {
		return err
	}
	writer, err := newWriter(w, format, fancy)
	if err != nil {
		return err
	}

	reg, err := a.openRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	e, err := selection.Get(reg, sp, gene, allele)
	if err != nil {
		return err
	}
	if err := writer.WriteHeader(); err != nil {
		return err
	}
	if err := writer.Write(e); err != nil {
		return err
	}
	return writer.Flush()
}
