// Package duckdb exports germline databases and build diagnostics to DuckDB
// for ad-hoc SQL analysis.
package duckdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection holding exported germlines.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create export directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS alleles (
			species VARCHAR,
			chain VARCHAR,
			segment VARCHAR,
			gene VARCHAR,
			allele BIGINT,
			name VARCHAR,
			sequence VARCHAR,
			regions VARCHAR,
			annotations VARCHAR,
			PRIMARY KEY (species, name)
		)`,
		`CREATE TABLE IF NOT EXISTS finishing_errors (
			species VARCHAR,
			allele VARCHAR,
			feature_key VARCHAR,
			record VARCHAR,
			reason VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS builds (
			source VARCHAR,
			source_size BIGINT,
			source_modtime TIMESTAMP,
			records BIGINT,
			retained BIGINT,
			alleles BIGINT,
			excluded BIGINT,
			created_at TIMESTAMP
		)`,
	} {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
