package duckdb

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/inodb/vibe-germlines/internal/assemble"
)

// FileFingerprint holds stat-based identity for a file.
type FileFingerprint struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// StatFile creates a FileFingerprint from an on-disk file.
func StatFile(path string) (FileFingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileFingerprint{}, err
	}
	return FileFingerprint{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// Build describes one recorded build.
type Build struct {
	Source    FileFingerprint
	Records   int
	Retained  int
	Alleles   int
	Excluded  int
	CreatedAt time.Time
}

// RecordBuild appends a row describing a build from source.
func (s *Store) RecordBuild(source FileFingerprint, r *assemble.Report, alleles int) error {
	_, err := s.db.Exec(`INSERT INTO builds VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		source.Path, source.Size, source.ModTime.UTC().Truncate(time.Microsecond),
		int64(r.Parser.Records), int64(r.Parser.Retained), int64(alleles), int64(r.Count()),
		time.Now().UTC())
	if err != nil {
		return fmt.Errorf("record build: %w", err)
	}
	return nil
}

// LastBuild returns the most recent build, or false if none was recorded.
func (s *Store) LastBuild() (Build, bool, error) {
	var b Build
	var records, retained, alleles, excluded int64
	err := s.db.QueryRow(`SELECT source, source_size, source_modtime,
		records, retained, alleles, excluded, created_at
		FROM builds ORDER BY created_at DESC LIMIT 1`).Scan(
		&b.Source.Path, &b.Source.Size, &b.Source.ModTime,
		&records, &retained, &alleles, &excluded, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Build{}, false, nil
	}
	if err != nil {
		return Build{}, false, fmt.Errorf("query last build: %w", err)
	}
	b.Records, b.Retained = int(records), int(retained)
	b.Alleles, b.Excluded = int(alleles), int(excluded)
	return b, true, nil
}

// Unchanged reports whether fp matches the source of the last build.
func (s *Store) Unchanged(fp FileFingerprint) (bool, error) {
	b, ok, err := s.LastBuild()
	if err != nil || !ok {
		return false, err
	}
	return b.Source.Path == fp.Path && b.Source.Size == fp.Size &&
		b.Source.ModTime.Equal(fp.ModTime.Truncate(time.Microsecond)), nil
}
