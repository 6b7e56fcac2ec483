package imgt

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"github.com/inodb/vibe-germlines/internal/imgt/imgttest"
	"github.com/inodb/vibe-germlines/internal/species"
)

func newTestParser(t *testing.T, text string) *Parser {
	t.Helper()
	p, err := NewParser(strings.NewReader(text))
	require.NoError(t, err)
	return p
}

func TestNextRecord(t *testing.T) {
	p := newTestParser(t, imgttest.VGene("A00001", "IGHV1-2*02").Text())

	rec, err := p.NextRecord()
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "A00001", recordID(rec.ID))
	assert.Equal(t, []string{"immunoglobulin (IG)", "functional", "germline"}, rec.Keywords)
	assert.Equal(t, 20, rec.KeyWidth)
	assert.Len(t, rec.FT, 17)
	require.Len(t, rec.FTLines, 17)
	assert.Equal(t, 10, rec.FTLines[0])
	assert.Equal(t, 26, rec.FTLines[16])
	assert.NoError(t, rec.SpeciesErr)
	assert.Equal(t, species.HomoSapiens, rec.Species)
	assert.Equal(t, imgttest.VSequence, rec.Sequence)
	assert.Equal(t, 1, rec.Line)
	assert.True(t, rec.Retained())

	rec, err = p.NextRecord()
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.Equal(t, 1, p.Stats().Records)
}

func TestNextRecord_LongSequence(t *testing.T) {
	seq := strings.Repeat(imgttest.VSequence, 5)
	p := newTestParser(t, imgttest.Entry{ID: "A1", Sequence: seq}.Text())

	rec, err := p.NextRecord()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, seq, rec.Sequence)
}

func TestNextRecord_FirstOSWins(t *testing.T) {
	text := strings.Replace(imgttest.VGene("A1", "IGHV1-2*01").Text(),
		"OC   ", "OS   Mus musculus (house mouse)\nOC   ", 1)
	p := newTestParser(t, text)

	rec, err := p.NextRecord()
	require.NoError(t, err)
	assert.Equal(t, species.HomoSapiens, rec.Species)
}

func TestNextRecord_Unterminated(t *testing.T) {
	unfinished := imgttest.VGene("A2", "IGHV1-2*01")
	unfinished.Unfinished = true
	p := newTestParser(t, imgttest.Join(imgttest.VGene("A1", "IGHV1-2*02"), unfinished))

	rec, err := p.NextRecord()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "A1", recordID(rec.ID))

	rec, err = p.NextRecord()
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestNext_Filters(t *testing.T) {
	notIG := imgttest.VGene("B1", "IGHV1-2*01")
	notIG.Keywords = "T cell receptor (TR); functional."
	pseudo := imgttest.VGene("B2", "IGHV1-2*01")
	pseudo.Keywords = "immunoglobulin (IG); pseudogene."
	unknown := imgttest.VGene("B3", "IGHV1-2*01")
	unknown.Organism = "Homo erectus"
	vector := imgttest.VGene("B4", "IGHV1-2*01")
	vector.Organism = "synthetic construct (synthetic construct)"

	p := newTestParser(t, imgttest.Join(notIG, pseudo, unknown, vector, imgttest.VGene("B5", "IGHV1-2*02")))

	item, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "B5", item.ID)

	item, err = p.Next()
	require.NoError(t, err)
	assert.Nil(t, item)

	assert.Equal(t, Stats{
		Records:        5,
		Retained:       1,
		NotIG:          2,
		UnknownSpecies: 1,
		NotOrganism:    1,
	}, p.Stats())
}

func TestNext_ContinuesAfterParseError(t *testing.T) {
	broken := imgttest.VGene("C1", "IGHV1-2*01")
	broken.Features[1].Location = "complement(1..9"

	p := newTestParser(t, imgttest.Join(broken, imgttest.VGene("C2", "IGHV1-2*02")))

	item, err := p.Next()
	require.Error(t, err)
	assert.Nil(t, item)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "C1", perr.Record)
	assert.Contains(t, err.Error(), "complement(1..9")

	item, err = p.Next()
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "C2", item.ID)
	assert.Equal(t, 1, p.Stats().Failed)
}

func TestNewParser_Compressed(t *testing.T) {
	text := imgttest.VGene("D1", "IGHV1-2*02").Text()

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	var xzBuf bytes.Buffer
	xw, err := xz.NewWriter(&xzBuf)
	require.NoError(t, err)
	_, err = xw.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, xw.Close())

	for name, data := range map[string][]byte{"gzip": gz.Bytes(), "xz": xzBuf.Bytes()} {
		t.Run(name, func(t *testing.T) {
			p, err := NewParser(bytes.NewReader(data))
			require.NoError(t, err)
			defer p.Close()

			item, err := p.Next()
			require.NoError(t, err)
			require.NotNil(t, item)
			assert.Equal(t, "D1", item.ID)
			assert.Equal(t, imgttest.VSequence, item.Sequence)
		})
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imgt.dat")
	require.NoError(t, os.WriteFile(path, []byte(imgttest.VGene("E1", "IGHV1-2*02").Text()), 0o644))

	p, err := Open(path)
	require.NoError(t, err)
	defer p.Close()

	item, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "E1", item.ID)
	assert.Greater(t, p.LineNumber(), 0)

	_, err = Open(filepath.Join(t.TempDir(), "missing.dat"))
	assert.Error(t, err)
}
