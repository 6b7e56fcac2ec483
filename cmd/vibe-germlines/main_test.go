package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-germlines/internal/duckdb"
	"github.com/inodb/vibe-germlines/internal/imgt/imgttest"
	"github.com/inodb/vibe-germlines/internal/selection"
	"github.com/inodb/vibe-germlines/internal/species"
)

// execute runs the CLI with an isolated home directory and returns stdout.
func execute(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// buildFixture writes a small LIGM-DB file and builds it into home.
func buildFixture(t *testing.T, extra ...string) (home, dataDir string) {
	t.Helper()
	home = t.TempDir()
	dataDir = filepath.Join(home, "db")

	broken := imgttest.VGene("A3", "IGHV3-23*01")
	broken.Features = slices.Delete(slices.Clone(broken.Features), 5, 6) // CDR2-IMGT
	input := filepath.Join(home, "imgt.dat")
	require.NoError(t, os.WriteFile(input, []byte(imgttest.Join(
		imgttest.VGene("A1", "IGHV1-2*02"),
		imgttest.JGene("A2", "IGHJ4*02"),
		broken,
	)), 0644))

	args := append([]string{"build", "--data-dir", dataDir}, extra...)
	out, err := execute(t, home, append(args, input)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Built 2 alleles for 1 species")
	assert.Contains(t, out, "1 excluded")
	return home, dataDir
}

func TestBuildAndQuery(t *testing.T) {
	home, dataDir := buildFixture(t)
	assert.FileExists(t, filepath.Join(dataDir, "manifest.yaml"))
	assert.FileExists(t, filepath.Join(dataDir, "HomoSapiens.gob.xz"))

	out, err := execute(t, home, "query", "--data-dir", dataDir)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "#Species"))
	assert.True(t, strings.HasPrefix(lines[1], "HomoSapiens\tIGHV1-2\t2\tH\tV\tQVQGYWVINYCAR\t"))
	assert.True(t, strings.HasPrefix(lines[2], "HomoSapiens\tIGHJ4\t2\tH\tJ\tYFDYWGQGTLVTVSS\t"))

	out, err = execute(t, home, "query", "--data-dir", dataDir, "--segment", "J", "--format", "fasta")
	require.NoError(t, err)
	assert.Equal(t, ">IGHJ4*02 Human\nYFDYWGQGTLVTVSS\n", out)

	out, err = execute(t, home, "query", "--data-dir", dataDir, "--parallel", "--workers", "2", "--species", "human")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	// mouse resolves to the house mouse, which this database does not hold.
	out, err = execute(t, home, "query", "--data-dir", dataDir, "--species", "mouse")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "#Species"))

	_, err = execute(t, home, "query", "--data-dir", dataDir, "--species", "martian")
	assert.ErrorIs(t, err, species.ErrUnknown)
}

func TestQuery_BadFlags(t *testing.T) {
	home, dataDir := buildFixture(t)
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--chain", "X"}, "unknown chain"},
		{[]string{"--segment", "Q"}, "unknown segment"},
		{[]string{"--format", "json"}, "unknown output format"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			_, err := execute(t, home, append([]string{"query", "--data-dir", dataDir}, tt.args...)...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestQuery_NoDatabase(t *testing.T) {
	home := t.TempDir()
	_, err := execute(t, home, "query", "--data-dir", filepath.Join(home, "missing"))
	assert.ErrorContains(t, err, "run 'vibe-germlines build' first")
}

func TestGet(t *testing.T) {
	home, dataDir := buildFixture(t)

	out, err := execute(t, home, "get", "--data-dir", dataDir, "--format", "fasta", "Homo sapiens", "IGHV1-2")
	require.NoError(t, err)
	assert.Equal(t, ">IGHV1-2*02 Human\nQVQGYWVINYCAR\n", out)

	_, err = execute(t, home, "get", "--data-dir", dataDir, "human", "IGHV1-2*01")
	assert.ErrorIs(t, err, selection.ErrNotFound)

	_, err = execute(t, home, "get", "--data-dir", dataDir, "human", "TRBV1")
	assert.Error(t, err)
}

func TestBuild_ReportAndDuckDB(t *testing.T) {
	tmp := t.TempDir()
	report := filepath.Join(tmp, "report.txt")
	dbPath := filepath.Join(tmp, "export", "germlines.duckdb")
	home, dataDir := buildFixture(t, "--report", report, "--duckdb", dbPath, "--workers", "2")

	text, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(text), "Excluded alleles: 1")
	assert.Contains(t, string(text), "IGHV3-23*01")

	s, err := duckdb.Open(dbPath)
	require.NoError(t, err)
	rows, err := s.SearchByGene(species.HomoSapiens, "IGHJ4")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "YFDYWGQGTLVTVSS", rows[0].Sequence)
	failures, err := s.ErrorsForSpecies(species.HomoSapiens)
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "IGHV3-23*01", failures[0].Allele)
	b, ok, err := s.LastBuild()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, b.Alleles)
	require.NoError(t, s.Close())

	// A second build of the same input is skipped unless forced.
	input := filepath.Join(home, "imgt.dat")
	out, err := execute(t, home, "build", "--data-dir", dataDir, "--duckdb", dbPath, input)
	require.NoError(t, err)
	assert.Contains(t, out, "is unchanged since the last build")
	assert.NotContains(t, out, "Built")

	out, err = execute(t, home, "build", "--data-dir", dataDir, "--duckdb", dbPath, "--force", input)
	require.NoError(t, err)
	assert.Contains(t, out, "Built 2 alleles for 1 species")

	// Without the database directory the input is rebuilt.
	other := filepath.Join(tmp, "other-db")
	out, err = execute(t, home, "build", "--data-dir", other, "--duckdb", dbPath, input)
	require.NoError(t, err)
	assert.Contains(t, out, "Built 2 alleles for 1 species")

	// export rewrites the alleles from the persisted database.
	out, err = execute(t, home, "export", "--data-dir", dataDir, dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 alleles for 1 species")
}

func TestSummary(t *testing.T) {
	home, dataDir := buildFixture(t)
	out, err := execute(t, home, "summary", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Contains(t, out, "| Human | H | V | 1 | 1 |")
	assert.Contains(t, out, "| Human | H | J | 1 | 1 |")
	assert.Contains(t, out, "| **Total** | | | 2 | 2 |")
}

func TestConfig(t *testing.T) {
	home := t.TempDir()
	cfg := filepath.Join(home, "config.yaml")

	out, err := execute(t, home, "config", "set", "--config", cfg, "build.d_genes", "yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Set build.d_genes = yes")
	assert.FileExists(t, cfg)

	out, err = execute(t, home, "config", "get", "--config", cfg, "build.d_genes")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = execute(t, home, "config", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "d_genes: true")
}

func TestConfig_Env(t *testing.T) {
	home := t.TempDir()
	t.Setenv("VIBE_GERMLINES_DATA_DIR", "/srv/germlines")
	out, err := execute(t, home, "config", "get", "data_dir")
	require.NoError(t, err)
	assert.Equal(t, "/srv/germlines\n", out)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "vibe-germlines version dev (none) built unknown\n", out)
}
