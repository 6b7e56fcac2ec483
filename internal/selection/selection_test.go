package selection

import (
	"context"
	"errors"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-germlines/internal/germline"
	"github.com/inodb/vibe-germlines/internal/species"
)

func testSet(t *testing.T) germline.Set {
	t.Helper()
	set := germline.Set{}
	add := func(sp species.Species, name string) {
		g, allele, err := germline.ParseName(name)
		require.NoError(t, err)
		_, err = set.Insert(sp, g, allele, germline.AnnotatedSequence{
			Sequence: "QVQL",
			Regions:  []germline.RegionLength{{Kind: germline.FR1, Length: 4}},
		})
		require.NoError(t, err)
	}
	for _, name := range []string{
		"IGHV3-23*04", "IGHV1-2*03", "IGHV1-2*01", "IGHV3-23*02", "IGHV1-2*02",
		"IGHJ4*01", "IGKV1-5*01",
	} {
		add(species.HomoSapiens, name)
	}
	add(species.MusMusculus, "IGHV1-2*01")
	return set
}

func names(entries []germline.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Species.Ident() + " " + e.Name()
	}
	return out
}

func TestSelection_HeavyVariableFirstAllele(t *testing.T) {
	got, err := New().
		Species(species.HomoSapiens).
		Chains(germline.Heavy).
		Segments(germline.V).
		Collect(testSet(t))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"HomoSapiens IGHV1-2*01",
		"HomoSapiens IGHV3-23*02",
	}, names(got))
}

func TestSelection_AllAlleles(t *testing.T) {
	got, err := New().
		Species(species.HomoSapiens).
		Chains(germline.Heavy).
		Segments(germline.V).
		Alleles(All).
		Collect(testSet(t))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"HomoSapiens IGHV1-2*01",
		"HomoSapiens IGHV1-2*02",
		"HomoSapiens IGHV1-2*03",
		"HomoSapiens IGHV3-23*02",
		"HomoSapiens IGHV3-23*04",
	}, names(got))
}

func TestSelection_Default(t *testing.T) {
	got, err := New().Collect(testSet(t))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"HomoSapiens IGHV1-2*01",
		"HomoSapiens IGHV3-23*02",
		"HomoSapiens IGHJ4*01",
		"HomoSapiens IGKV1-5*01",
		"MusMusculus IGHV1-2*01",
	}, names(got))

	var zero Selection
	assert.True(t, zero.Equal(New()))
}

func TestSelection_Immutable(t *testing.T) {
	base := New()
	narrowed := base.Species(species.MusMusculus).Alleles(All)
	assert.True(t, base.Equal(New()))
	assert.False(t, narrowed.Equal(base))

	got, err := narrowed.Collect(testSet(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"MusMusculus IGHV1-2*01"}, names(got))
}

func TestSelection_AllRestartable(t *testing.T) {
	src := testSet(t)
	seq := New().Chains(germline.Heavy).All(src)

	var first, second []germline.Entry
	for e := range seq {
		first = append(first, e)
	}
	for e := range seq {
		second = append(second, e)
	}
	assert.Len(t, first, 4)
	assert.Equal(t, names(first), names(second))

	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

// countingSource records which species were loaded.
type countingSource struct {
	germline.Set
	loaded []species.Species
	fail   error
}

func (c *countingSource) Germlines(sp species.Species) (*germline.Germlines, error) {
	c.loaded = append(c.loaded, sp)
	if c.fail != nil {
		return nil, c.fail
	}
	return c.Set.Germlines(sp)
}

func TestSelection_ExcludedSpeciesNotLoaded(t *testing.T) {
	src := &countingSource{Set: testSet(t)}
	got, err := New().Species(species.MusMusculus).Collect(src)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, []species.Species{species.MusMusculus}, src.loaded)
}

func TestSelection_LoadError(t *testing.T) {
	src := &countingSource{Set: testSet(t), fail: errors.New("corrupt blob")}
	got, err := New().Collect(src)
	require.EqualError(t, err, "corrupt blob")
	assert.Empty(t, got)
}

func TestCursor_Transitions(t *testing.T) {
	set := germline.Set{}
	g, _, err := germline.ParseName("IGLV2-14")
	require.NoError(t, err)
	for _, n := range []int{1, 3} {
		_, err := set.Insert(species.HomoSapiens, g, n, germline.AnnotatedSequence{
			Sequence: "QS",
			Regions:  []germline.RegionLength{{Kind: germline.FR1, Length: 2}},
		})
		require.NoError(t, err)
	}

	c := New().Alleles(All).Iter(set)
	assert.Equal(t, levelSpecies, c.depth)

	e, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, 1, e.Allele)
	assert.Equal(t, levelAllele, c.depth)
	assert.Equal(t, 1, c.pos[levelAllele])
	assert.Equal(t, 1, c.pos[levelGene])
	// Heavy and kappa were skipped on the way to lambda.
	assert.Equal(t, int(germline.LightLambda)+1, c.pos[levelChain])

	e, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, 3, e.Allele)
	assert.Equal(t, levelAllele, c.depth)

	_, ok = c.Next()
	assert.False(t, ok)
	assert.Equal(t, levelDone, c.depth)
	assert.NoError(t, c.Err())

	_, ok = c.Next()
	assert.False(t, ok)
}

func TestCursor_EmptySelection(t *testing.T) {
	c := New().Chains(germline.Iota).Iter(testSet(t))
	_, ok := c.Next()
	assert.False(t, ok)
	assert.Equal(t, levelDone, c.depth)
}

func TestParallel_ExactlyOnce(t *testing.T) {
	src := testSet(t)
	sel := New().Alleles(All)

	want, err := sel.Collect(src)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 4} {
		out, wait := sel.Parallel(context.Background(), src, workers)
		var got []germline.Entry
		for e := range out {
			got = append(got, e)
		}
		require.NoError(t, wait())

		gotNames, wantNames := names(got), names(want)
		sort.Strings(gotNames)
		sort.Strings(wantNames)
		assert.Equal(t, wantNames, gotNames, "workers=%d", workers)
	}
}

func TestParallel_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	out, wait := New().Alleles(All).Parallel(ctx, testSet(t), 2)
	<-out
	cancel()
	for range out {
	}
	err := wait()
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestParallel_LoadError(t *testing.T) {
	src := &countingSource{Set: testSet(t), fail: errors.New("corrupt blob")}
	out, wait := New().Parallel(context.Background(), src, 2)
	for range out {
	}
	assert.ErrorContains(t, wait(), "corrupt blob")
}

func TestGet(t *testing.T) {
	src := testSet(t)
	gene, _, err := germline.ParseQuery("IGHV3-23")
	require.NoError(t, err)

	e, err := Get(src, species.HomoSapiens, gene, 0)
	require.NoError(t, err)
	assert.Equal(t, "IGHV3-23*02", e.Name())

	e, err = Get(src, species.HomoSapiens, gene, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, e.Allele)

	_, err = Get(src, species.HomoSapiens, gene, 3)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "IGHV3-23*03")

	_, err = Get(src, species.DanioRerio, gene, 0)
	assert.ErrorIs(t, err, germline.ErrNoSpecies)

	assert.True(t, slices.Contains(src.Species(), species.MusMusculus))
}

func TestGet_DiversityGene(t *testing.T) {
	src := testSet(t)
	g, _, err := germline.ParseName("IGHD6-13*01")
	require.NoError(t, err)
	d, ok := g.AsDiversity()
	require.True(t, ok)
	_, err = src.Insert(species.HomoSapiens, d, 1, germline.AnnotatedSequence{
		Sequence: "GYSSSWY",
		Regions:  []germline.RegionLength{{Kind: germline.FR1, Length: 7}},
	})
	require.NoError(t, err)

	gene, allele, err := germline.ParseQuery("IGHD6-13*01")
	require.NoError(t, err)
	e, err := Get(src, species.HomoSapiens, gene, allele)
	require.NoError(t, err)
	assert.Equal(t, "IGHD6-13*01", e.Name())
	assert.Equal(t, germline.D, e.Gene.Segment.Type)

	_, err = Get(src, species.HomoSapiens, gene, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}
