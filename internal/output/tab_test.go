package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-germlines/internal/germline"
	"github.com/inodb/vibe-germlines/internal/species"
)

func entry(t *testing.T, sp species.Species, name, seq string, markers ...germline.Marker) germline.Entry {
	t.Helper()
	g, allele, err := germline.ParseName(name)
	require.NoError(t, err)
	return germline.Entry{
		Species: sp,
		Gene:    g,
		Allele:  allele,
		Seq: &germline.AnnotatedSequence{
			Sequence:    seq,
			Regions:     []germline.RegionLength{{Kind: germline.FR1, Length: len(seq)}},
			Annotations: markers,
		},
	}
}

func TestTabWriter_WriteHeader(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTabWriter(&buf)
	require.NoError(t, tw.WriteHeader())
	require.NoError(t, tw.Flush())

	assert.Equal(t, "#Species\tGene\tAllele\tChain\tSegment\tSequence\tRegions\tAnnotations\n", buf.String())
}

func TestTabWriter_Write(t *testing.T) {
	tests := []struct {
		name  string
		entry germline.Entry
		fancy bool
		want  string
	}{
		{
			name:  "heavy variable",
			entry: entry(t, species.HomoSapiens, "IGHV1-2*02", "QVQLC", germline.Marker{Kind: germline.Cysteine1, Index: 4}),
			want:  "HomoSapiens\tIGHV1-2\t2\tH\tV\tQVQLC\tFR1:5\tCys1@4\n",
		},
		{
			name:  "no annotations",
			entry: entry(t, species.MusMusculus, "IGKJ1*01", "WTFGGG"),
			want:  "MusMusculus\tIGKJ1\t1\tK\tJ\tWTFGGG\tFR1:6\t-\n",
		},
		{
			name:  "fancy constant",
			entry: entry(t, species.HomoSapiens, "IGHG2*03", "AST"),
			fancy: true,
			want:  "HomoSapiens\tIGHγ2\t3\tH\tG\tAST\tFR1:3\t-\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tw := NewTabWriter(&buf)
			tw.SetFancy(tt.fancy)
			require.NoError(t, tw.Write(tt.entry))
			require.NoError(t, tw.Flush())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFASTAWriter(t *testing.T) {
	var buf bytes.Buffer
	var w Writer = NewFASTAWriter(&buf)
	require.NoError(t, w.WriteHeader())

	long := strings.Repeat("A", 60) + strings.Repeat("C", 61)
	require.NoError(t, w.Write(entry(t, species.HomoSapiens, "IGHV1-2*02", long)))
	require.NoError(t, w.Write(entry(t, species.MusMusculus, "IGHJ4*01", "YAMDYW")))
	require.NoError(t, w.Flush())

	want := ">IGHV1-2*02 Human\n" +
		strings.Repeat("A", 60) + "\n" +
		strings.Repeat("C", 60) + "\n" +
		"C\n" +
		">IGHJ4*01 House mouse\n" +
		"YAMDYW\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSummary(t *testing.T) {
	human := germline.New(species.HomoSapiens)
	mouse := germline.New(species.MusMusculus)
	for _, e := range []germline.Entry{
		entry(t, species.HomoSapiens, "IGHV1-2*01", "Q"),
		entry(t, species.HomoSapiens, "IGHV1-2*02", "Q"),
		entry(t, species.HomoSapiens, "IGHV3-23*01", "Q"),
		entry(t, species.HomoSapiens, "IGKJ1*01", "W"),
	} {
		_, err := human.Insert(e.Gene, e.Allele, *e.Seq)
		require.NoError(t, err)
	}
	e := entry(t, species.MusMusculus, "IGHJ4*01", "Y")
	_, err := mouse.Insert(e.Gene, e.Allele, *e.Seq)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, []*germline.Germlines{mouse, human}))

	want := "| Species | Chain | Segment | Genes | Alleles |\n" +
		"|---|---|---|---:|---:|\n" +
		"| Human | H | V | 2 | 3 |\n" +
		"| Human | K | J | 1 | 1 |\n" +
		"| House mouse | H | J | 1 | 1 |\n" +
		"| **Total** | | | 4 | 5 |\n"
	assert.Equal(t, want, buf.String())
}
