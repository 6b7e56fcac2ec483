package duckdb

import (
	"context"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/vibe-germlines/internal/germline"
	"github.com/inodb/vibe-germlines/internal/species"
)

// AlleleRow is one row of the alleles table.
type AlleleRow struct {
	Species     species.Species
	Chain       string
	Segment     string
	Gene        string
	Allele      int
	Name        string
	Sequence    string
	Regions     string
	Annotations string
}

// appender runs fn with an Appender on table, flushing on success.
func (s *Store) appender(table string, fn func(*goduckdb.Appender) error) error {
	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", table)
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	if err := fn(appender); err != nil {
		return err
	}
	return appender.Flush()
}

// WriteGermlines replaces the rows of db's species with every allele of db.
func (s *Store) WriteGermlines(db *germline.Germlines) error {
	if _, err := s.db.Exec("DELETE FROM alleles WHERE species=?", db.Species.Ident()); err != nil {
		return fmt.Errorf("clear species: %w", err)
	}

	entries := allAlleles(db)
	if len(entries) == 0 {
		return nil
	}

	return s.appender("alleles", func(a *goduckdb.Appender) error {
		for _, e := range entries {
			if err := a.AppendRow(
				e.Species.Ident(), e.Gene.Kind.String(), e.Gene.Segment.String(),
				e.Gene.String(), int64(e.Allele), e.Name(),
				e.Seq.Sequence, e.Seq.RegionString(), e.Seq.AnnotationString(),
			); err != nil {
				return fmt.Errorf("append %s: %w", e.Name(), err)
			}
		}
		return nil
	})
}

// allAlleles lists every allele of db in database order.
func allAlleles(db *germline.Germlines) []germline.Entry {
	var out []germline.Entry
	for _, k := range germline.Kinds {
		chain := db.Chain(k)
		for _, t := range germline.SegmentTypes {
			for _, g := range chain.Segment(t) {
				for i := range g.Alleles {
					a := &g.Alleles[i]
					out = append(out, germline.Entry{Species: db.Species, Gene: g.Name, Allele: a.Number, Seq: &a.Seq})
				}
			}
		}
	}
	return out
}

// SearchByGene returns the exported alleles of a gene, e.g. "IGHV1-2",
// ordered by allele number.
func (s *Store) SearchByGene(sp species.Species, gene string) ([]AlleleRow, error) {
	rows, err := s.db.Query(`SELECT
		species, chain, segment, gene, allele, name, sequence, regions, annotations
		FROM alleles
		WHERE species=? AND gene=?
		ORDER BY allele`, sp.Ident(), gene)
	if err != nil {
		return nil, fmt.Errorf("query by gene: %w", err)
	}
	defer rows.Close()

	var out []AlleleRow
	for rows.Next() {
		var r AlleleRow
		var ident string
		var allele int64
		if err := rows.Scan(&ident, &r.Chain, &r.Segment, &r.Gene, &allele,
			&r.Name, &r.Sequence, &r.Regions, &r.Annotations); err != nil {
			return nil, fmt.Errorf("scan allele: %w", err)
		}
		if err := r.Species.UnmarshalText([]byte(ident)); err != nil {
			return nil, err
		}
		r.Allele = int(allele)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alleles: %w", err)
	}
	return out, nil
}

// CountAlleles returns the number of exported alleles of a species.
func (s *Store) CountAlleles(sp species.Species) (int, error) {
	var n int64
	err := s.db.QueryRow("SELECT count(*) FROM alleles WHERE species=?", sp.Ident()).Scan(&n)
	return int(n), err
}
