package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateCodon(t *testing.T) {
	tests := []struct {
		name  string
		codon string
		want  byte
		ok    bool
	}{
		{"ATG -> Met", "ATG", 'M', true},
		{"GGT -> Gly", "GGT", 'G', true},
		{"TGT -> Cys", "TGT", 'C', true},
		{"TGG -> Trp", "TGG", 'W', true},
		{"TAA -> Stop", "TAA", '*', true},
		{"lowercase", "tgg", 'W', true},
		{"ambiguity code", "NGG", 0, false},
		{"too short", "AT", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TranslateCodon(tt.codon)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslate(t *testing.T) {
	got, err := Translate("atgggttgg")
	require.NoError(t, err)
	assert.Equal(t, "MGW", got)

	// trailing partial codon is dropped
	got, err = Translate("atgggttggca")
	require.NoError(t, err)
	assert.Equal(t, "MGW", got)

	got, err = Translate("at")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTranslate_InvalidCodon(t *testing.T) {
	_, err := Translate("atgnnntgg")
	require.Error(t, err)

	var codonErr *CodonError
	require.ErrorAs(t, err, &codonErr)
	assert.Equal(t, "nnn", codonErr.Codon)
	assert.Equal(t, 3, codonErr.Offset)
}

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{"ATGC", "GCAT"},
		{"atgc", "gcat"},
		{"AtGc", "gCaT"},
		{"", ""},
		{"ggt", "acc"},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			got, err := ReverseComplement(tt.seq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ReverseComplement("acnt")
	assert.Error(t, err)
}

func TestNGlycanSites(t *testing.T) {
	assert.Equal(t, []int{2}, NGlycanSites("QVNPSG"))
	assert.Empty(t, NGlycanSites("QVNPPG"))
	assert.Equal(t, []int{0, 4}, NGlycanSites("NATGNGS"))
	assert.Empty(t, NGlycanSites("NA"))
}

func TestIsNGlycanMotif(t *testing.T) {
	assert.True(t, IsNGlycanMotif("QVNPSG", 2))
	assert.False(t, IsNGlycanMotif("QVNPSG", 3))
	assert.False(t, IsNGlycanMotif("QVNPSG", -1))
	assert.False(t, IsNGlycanMotif("QVN", 2))
}
