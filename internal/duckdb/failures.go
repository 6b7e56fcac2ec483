package duckdb

import (
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/vibe-germlines/internal/assemble"
	"github.com/inodb/vibe-germlines/internal/species"
)

// WriteReport replaces the finishing_errors table with the failures of r.
func (s *Store) WriteReport(r *assemble.Report) error {
	if _, err := s.db.Exec("DELETE FROM finishing_errors"); err != nil {
		return fmt.Errorf("clear finishing errors: %w", err)
	}
	if len(r.Failures) == 0 {
		return nil
	}
	return s.appender("finishing_errors", func(a *goduckdb.Appender) error {
		for _, f := range r.Failures {
			if err := a.AppendRow(f.Species.Ident(), f.Allele, f.Key, f.Record, f.Reason); err != nil {
				return fmt.Errorf("append failure: %w", err)
			}
		}
		return nil
	})
}

// ErrorsForSpecies returns the recorded failures of a species, ordered by
// allele name.
func (s *Store) ErrorsForSpecies(sp species.Species) ([]assemble.Failure, error) {
	rows, err := s.db.Query(`SELECT allele, feature_key, record, reason
		FROM finishing_errors
		WHERE species=?
		ORDER BY allele, record`, sp.Ident())
	if err != nil {
		return nil, fmt.Errorf("query failures: %w", err)
	}
	defer rows.Close()

	var out []assemble.Failure
	for rows.Next() {
		f := assemble.Failure{Species: sp}
		if err := rows.Scan(&f.Allele, &f.Key, &f.Record, &f.Reason); err != nil {
			return nil, fmt.Errorf("scan failure: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate failures: %w", err)
	}
	return out, nil
}
