package germline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-germlines/internal/species"
)

func mustGene(t *testing.T, s string) Gene {
	t.Helper()
	g, _, err := ParseName(s)
	require.NoError(t, err)
	return g
}

func plain(seq string, kind RegionKind) AnnotatedSequence {
	return AnnotatedSequence{
		Sequence: seq,
		Regions:  []RegionLength{{Kind: kind, Length: len(seq)}},
	}
}

func TestInsert_Sorted(t *testing.T) {
	db := New(species.HomoSapiens)
	for _, name := range []string{"IGHV3-23", "IGHV1-2", "IGHV1-18", "IGHJ4", "IGKV1-5"} {
		_, err := db.Insert(mustGene(t, name), 1, plain("QVQL", FR1))
		require.NoError(t, err)
	}

	var got []string
	for _, g := range db.H.Variable {
		got = append(got, g.Name.String())
	}
	assert.Equal(t, []string{"IGHV1-2", "IGHV1-18", "IGHV3-23"}, got)
	assert.Len(t, db.H.Joining, 1)
	assert.Len(t, db.K.Variable, 1)
	assert.Empty(t, db.L.Variable)
}

func TestInsert_AllelesSorted(t *testing.T) {
	db := New(species.HomoSapiens)
	gene := mustGene(t, "IGHV1-2")
	for _, n := range []int{4, 2, 5, 1} {
		_, err := db.Insert(gene, n, plain("QVQL", FR1))
		require.NoError(t, err)
	}
	require.Len(t, db.H.Variable, 1)
	var numbers []int
	for _, a := range db.H.Variable[0].Alleles {
		numbers = append(numbers, a.Number)
	}
	assert.Equal(t, []int{1, 2, 4, 5}, numbers)
}

func TestInsert_Idempotent(t *testing.T) {
	db := New(species.HomoSapiens)
	gene := mustGene(t, "IGHV1-2")
	seq := plain("QVQLVQ", FR1)

	changed, err := db.Insert(gene, 2, seq)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = db.Insert(gene, 2, seq)
	require.NoError(t, err)
	assert.False(t, changed)

	require.Len(t, db.H.Variable, 1)
	assert.Len(t, db.H.Variable[0].Alleles, 1)
}

func TestInsert_MergeKeepsRicher(t *testing.T) {
	gene := mustGene(t, "IGHV1-2")
	poor := plain("QVQLVQ", FR1)
	rich := AnnotatedSequence{
		Sequence:    "QVQLVC",
		Regions:     []RegionLength{{Kind: FR1, Length: 3}, {Kind: CDR1, Length: 3}},
		Annotations: []Marker{{Kind: Cysteine1, Index: 5}},
	}

	// The richer record wins whichever order they arrive in.
	for _, order := range [][]AnnotatedSequence{{poor, rich}, {rich, poor}} {
		db := New(species.HomoSapiens)
		for _, seq := range order {
			_, err := db.Insert(gene, 1, seq)
			require.NoError(t, err)
		}
		e, ok := db.Find(gene, 1)
		require.True(t, ok)
		assert.Equal(t, "QVQLVC", e.Seq.Sequence)
	}

	// On a tie the first one stays.
	db := New(species.HomoSapiens)
	_, err := db.Insert(gene, 1, plain("AAAA", FR1))
	require.NoError(t, err)
	changed, err := db.Insert(gene, 1, plain("CCCC", FR1))
	require.NoError(t, err)
	assert.False(t, changed)
	e, _ := db.Find(gene, 1)
	assert.Equal(t, "AAAA", e.Seq.Sequence)
}

func TestInsert_RejectsBrokenInvariant(t *testing.T) {
	db := New(species.HomoSapiens)
	_, err := db.Insert(mustGene(t, "IGHV1-2"), 1, AnnotatedSequence{
		Sequence: "QVQL",
		Regions:  []RegionLength{{Kind: FR1, Length: 3}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IGHV1-2*01")
	assert.Empty(t, db.H.Variable)
}

func TestFind(t *testing.T) {
	db := New(species.HomoSapiens)
	gene := mustGene(t, "IGHV3-23")
	for _, n := range []int{3, 1, 4} {
		_, err := db.Insert(gene, n, plain("EVQL", FR1))
		require.NoError(t, err)
	}

	e, ok := db.Find(gene, 0)
	require.True(t, ok)
	assert.Equal(t, 1, e.Allele)
	assert.Equal(t, "IGHV3-23*01", e.Name())
	assert.Equal(t, species.HomoSapiens, e.Species)

	e, ok = db.Find(gene, 4)
	require.True(t, ok)
	assert.Equal(t, 4, e.Allele)

	_, ok = db.Find(gene, 2)
	assert.False(t, ok)
	_, ok = db.Find(mustGene(t, "IGHV3-30"), 0)
	assert.False(t, ok)
}

func TestFind_Diversity(t *testing.T) {
	db := New(species.HomoSapiens)
	d, ok := mustGene(t, "IGHD6-13").AsDiversity()
	require.True(t, ok)
	_, err := db.Insert(d, 1, plain("GYSSSWY", FR1))
	require.NoError(t, err)
	_, err = db.Insert(mustGene(t, "IGHD"), 2, plain("APTKAP", FR1))
	require.NoError(t, err)

	gene, allele, err := ParseQuery("IGHD6-13*01")
	require.NoError(t, err)
	e, ok := db.Find(gene, allele)
	require.True(t, ok)
	assert.Equal(t, "IGHD6-13*01", e.Name())
	assert.Equal(t, Segment{Type: D}, e.Gene.Segment)
	assert.Equal(t, "GYSSSWY", e.Seq.Sequence)

	_, ok = db.Find(gene, 2)
	assert.False(t, ok)

	// The bare name is the delta constant.
	gene, _, err = ParseQuery("IGHD")
	require.NoError(t, err)
	e, ok = db.Find(gene, 0)
	require.True(t, ok)
	assert.Equal(t, C, e.Gene.Segment.Type)
	assert.Equal(t, "APTKAP", e.Seq.Sequence)
}

func TestStats(t *testing.T) {
	db := New(species.HomoSapiens)
	for _, name := range []string{"IGHV1-2*01", "IGHV1-2*02", "IGHV3-23*01", "IGKJ1*01"} {
		g, n, err := ParseName(name)
		require.NoError(t, err)
		_, err = db.Insert(g, n, plain("QV", FR1))
		require.NoError(t, err)
	}
	assert.Equal(t, []Count{
		{Kind: Heavy, Segment: V, Genes: 2, Alleles: 3},
		{Kind: LightKappa, Segment: J, Genes: 1, Alleles: 1},
	}, db.Stats())

	genes, alleles := db.Totals()
	assert.Equal(t, 3, genes)
	assert.Equal(t, 4, alleles)
}

func TestAnnotatedSequence(t *testing.T) {
	seq := AnnotatedSequence{
		Sequence:    "QVQLCAR",
		Regions:     []RegionLength{{Kind: FR3, Length: 5}, {Kind: CDR3, Length: 2}},
		Annotations: []Marker{{Kind: Cysteine2, Index: 4}, {Kind: NGlycan, Index: 4}},
	}
	require.NoError(t, seq.Validate())
	assert.Equal(t, 4, seq.Richness())

	kind, first, ok := seq.RegionAt(5)
	require.True(t, ok)
	assert.Equal(t, CDR3, kind)
	assert.True(t, first)

	_, _, ok = seq.RegionAt(7)
	assert.False(t, ok)

	assert.Equal(t, []Annotation{Cysteine2, NGlycan}, seq.AnnotationsAt(4))
	assert.Equal(t, "FR3:5,CDR3:2", seq.RegionString())
	assert.Equal(t, "Cys2@4,NGly@4", seq.AnnotationString())

	seq.Annotations = append(seq.Annotations, Marker{Kind: Glycine, Index: 9})
	assert.Error(t, seq.Validate())
}

func TestSet(t *testing.T) {
	set := Set{}
	gene := mustGene(t, "IGHV1-2")
	_, err := set.Insert(species.MusMusculus, gene, 1, plain("QV", FR1))
	require.NoError(t, err)
	_, err = set.Insert(species.HomoSapiens, gene, 1, plain("QV", FR1))
	require.NoError(t, err)

	assert.Equal(t, []species.Species{species.HomoSapiens, species.MusMusculus}, set.Species())

	db, err := set.Germlines(species.HomoSapiens)
	require.NoError(t, err)
	assert.Len(t, db.H.Variable, 1)

	_, err = set.Germlines(species.DanioRerio)
	assert.ErrorIs(t, err, ErrNoSpecies)
}
