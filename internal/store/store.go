// Package store persists germline databases on disk, one xz-compressed gob
// blob per species plus a manifest:
//
//	{dir}/manifest.yaml        (one entry per species, with BLAKE3 checksums)
//	{dir}/{Ident}.gob.xz       (serialized germline.Germlines)
package store

import (
	"bytes"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"

	"github.com/inodb/vibe-germlines/internal/germline"
	"github.com/inodb/vibe-germlines/internal/species"
)

// ManifestFile is the name of the manifest inside a database directory.
const ManifestFile = "manifest.yaml"

// ErrChecksum is returned when a blob does not match its manifest entry.
var ErrChecksum = errors.New("checksum mismatch")

// Entry describes one persisted species.
type Entry struct {
	Species   string    `yaml:"species"`
	File      string    `yaml:"file"`
	BLAKE3    string    `yaml:"blake3"`
	Genes     int       `yaml:"genes"`
	Alleles   int       `yaml:"alleles"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Manifest lists the persisted species of a directory, sorted by identifier.
type Manifest struct {
	Entries []Entry `yaml:"entries"`
}

// Lookup returns the entry for a species.
func (m *Manifest) Lookup(sp species.Species) (Entry, bool) {
	for _, e := range m.Entries {
		if e.Species == sp.Ident() {
			return e, true
		}
	}
	return Entry{}, false
}

func (m *Manifest) put(e Entry) {
	i := slices.IndexFunc(m.Entries, func(x Entry) bool { return x.Species == e.Species })
	if i >= 0 {
		m.Entries[i] = e
		return
	}
	m.Entries = append(m.Entries, e)
	slices.SortFunc(m.Entries, func(a, b Entry) int { return strings.Compare(a.Species, b.Species) })
}

// ReadManifest loads the manifest of dir. A missing manifest yields an
// error wrapping fs.ErrNotExist.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

func writeManifest(dir string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return writeAtomic(filepath.Join(dir, ManifestFile), data)
}

// writeAtomic writes data next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// BlobName returns the file name of a species blob.
func BlobName(sp species.Species) string {
	return sp.Ident() + ".gob.xz"
}

// Write serializes db into dir and records it in the manifest, replacing
// any earlier entry for the same species.
func Write(dir string, db *germline.Germlines) (Entry, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Entry{}, fmt.Errorf("create database dir: %w", err)
	}

	blob, err := encode(db)
	if err != nil {
		return Entry{}, err
	}
	sum := blake3.Sum256(blob)

	name := BlobName(db.Species)
	if err := writeAtomic(filepath.Join(dir, name), blob); err != nil {
		return Entry{}, fmt.Errorf("write %s: %w", name, err)
	}

	m, err := ReadManifest(dir)
	if errors.Is(err, os.ErrNotExist) {
		m, err = &Manifest{}, nil
	}
	if err != nil {
		return Entry{}, err
	}

	genes, alleles := db.Totals()
	e := Entry{
		Species:   db.Species.Ident(),
		File:      name,
		BLAKE3:    hex.EncodeToString(sum[:]),
		Genes:     genes,
		Alleles:   alleles,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	m.put(e)
	return e, writeManifest(dir, m)
}

// WriteSet persists every species of a set.
func WriteSet(dir string, set germline.Set) error {
	for _, sp := range set.Species() {
		if _, err := Write(dir, set[sp]); err != nil {
			return fmt.Errorf("%s: %w", sp.Ident(), err)
		}
	}
	return nil
}

func encode(db *germline.Germlines) ([]byte, error) {
	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("create xz writer: %w", err)
	}
	if err := gob.NewEncoder(xw).Encode(db); err != nil {
		return nil, fmt.Errorf("encode %s: %w", db.Species.Ident(), err)
	}
	if err := xw.Close(); err != nil {
		return nil, fmt.Errorf("close xz writer: %w", err)
	}
	return buf.Bytes(), nil
}

// Read loads the database of one species, verifying its checksum.
func Read(dir string, sp species.Species) (*germline.Germlines, error) {
	m, err := ReadManifest(dir)
	if err != nil {
		return nil, err
	}
	e, ok := m.Lookup(sp)
	if !ok {
		return nil, fmt.Errorf("%s: %w", sp.Ident(), germline.ErrNoSpecies)
	}
	return readEntry(dir, e)
}

func readEntry(dir string, e Entry) (*germline.Germlines, error) {
	blob, err := os.ReadFile(filepath.Join(dir, e.File))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", e.File, err)
	}
	sum := blake3.Sum256(blob)
	if got := hex.EncodeToString(sum[:]); got != e.BLAKE3 {
		return nil, fmt.Errorf("%s: %w: manifest %s, file %s", e.File, ErrChecksum, e.BLAKE3, got)
	}
	return decode(bytes.NewReader(blob), e.File)
}

func decode(r io.Reader, name string) (*germline.Germlines, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	var db germline.Germlines
	if err := gob.NewDecoder(xr).Decode(&db); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return &db, nil
}
