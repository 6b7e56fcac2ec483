// Package assemble finishes gene drafts into annotated germline alleles and
// accumulates them into per-species databases.
package assemble

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/inodb/vibe-germlines/internal/germline"
	"github.com/inodb/vibe-germlines/internal/imgt"
	"github.com/inodb/vibe-germlines/internal/location"
	"github.com/inodb/vibe-germlines/internal/translate"
)

// Reasons a draft cannot be finished.
var (
	ErrMissingRegion   = errors.New("missing region")
	ErrRegionSequence  = errors.New("region has no sequence")
	ErrEmptySequence   = errors.New("no sequence assembled")
	ErrMarkerNotFound  = errors.New("conserved residue outside every region")
	ErrSegmentMismatch = errors.New("gene name does not match feature key")
	ErrInvalidName     = errors.New("invalid allele name")
)

// FinishError reports a gene draft that was excluded from the database.
type FinishError struct {
	Allele string // declared IMGT allele
	Key    string // gene feature key
	Record string
	Err    error
}

func (e *FinishError) Error() string {
	return fmt.Sprintf("%s %s (record %s): %v", e.Key, e.Allele, e.Record, e.Err)
}

func (e *FinishError) Unwrap() error {
	return e.Err
}

// Finished is one assembled allele.
type Finished struct {
	Gene      germline.Gene
	Allele    int
	Seq       germline.AnnotatedSequence
	Spans     []location.Location // genomic span of each region, zero when unknown
	Record    string
	JFallback bool // J gene without the conserved motif, labelled FR4 throughout
}

// Name returns the canonical allele name.
func (f *Finished) Name() string {
	return germline.FormatAllele(f.Gene, f.Allele)
}

// source is a translated sub-feature that contributes residues.
type source struct {
	kind   germline.RegionKind
	region *imgt.Region
}

type part struct {
	key  string
	kind germline.RegionKind
}

var vParts = []part{
	{"FR1-IMGT", germline.FR1},
	{"CDR1-IMGT", germline.CDR1},
	{"FR2-IMGT", germline.FR2},
	{"CDR2-IMGT", germline.CDR2},
	{"FR3-IMGT", germline.FR3},
	{"CDR3-IMGT", germline.CDR3},
}

var cOptional = []part{
	{"CH4", germline.CH4},
	{"CH5", germline.CH5},
	{"CH6", germline.CH6},
	{"CH7", germline.CH7},
	{"CH8", germline.CH8},
	{"CH9", germline.CH9},
}

var hingeKeys = []string{"H", "H1", "H2", "H3", "H4"}

var markers = []struct {
	key  string
	kind germline.Annotation
}{
	{"1st-CYS", germline.Cysteine1},
	{"2nd-CYS", germline.Cysteine2},
	{"CONSERVED-TRP", germline.Tryptophan},
	{"J-PHE", germline.Phenylalanine},
	{"J-TRP", germline.Tryptophan},
}

type draftFinisher struct {
	draft   *imgt.GeneDraft
	sources []source
	seq     germline.AnnotatedSequence
	spans   []location.Location
}

func (f *draftFinisher) fail(err error) *FinishError {
	return &FinishError{Allele: f.draft.Allele, Key: f.draft.Key, Record: f.draft.Record, Err: err}
}

// require adds the sub-feature with the given key or fails.
func (f *draftFinisher) require(key string, kind germline.RegionKind) error {
	r, ok := f.draft.Region(key)
	if !ok {
		return fmt.Errorf("%w %s", ErrMissingRegion, key)
	}
	if r.Err != nil {
		return fmt.Errorf("%w %s: %w", ErrRegionSequence, key, r.Err)
	}
	f.sources = append(f.sources, source{kind: kind, region: r})
	return nil
}

// optional adds the sub-feature if the draft has it.
func (f *draftFinisher) optional(key string, kind germline.RegionKind) error {
	if _, ok := f.draft.Region(key); !ok {
		return nil
	}
	return f.require(key, kind)
}

// Finish assembles the annotated sequence of a gene draft. Any failure is
// returned as a *FinishError.
func Finish(d *imgt.GeneDraft) (*Finished, error) {
	f := &draftFinisher{draft: d}
	out := &Finished{Record: d.Record}

	var err error
	switch d.Key {
	case imgt.KeyVGene:
		err = f.collectV()
	case imgt.KeyCGene:
		err = f.collectC()
	case imgt.KeyJGene:
		err = f.require("J-REGION", germline.FR4)
	case imgt.KeyDGene:
		err = f.require("D-REGION", germline.CDR3)
	}
	if err != nil {
		return nil, f.fail(err)
	}

	if d.Key == imgt.KeyJGene {
		out.JFallback = !f.assembleJ()
	} else {
		f.assemble()
	}
	if len(f.seq.Sequence) == 0 {
		return nil, f.fail(ErrEmptySequence)
	}

	if err := f.mapMarkers(); err != nil {
		return nil, f.fail(err)
	}
	for _, i := range translate.NGlycanSites(f.seq.Sequence) {
		f.seq.Annotations = append(f.seq.Annotations, germline.Marker{Kind: germline.NGlycan, Index: i})
	}
	f.seq.Annotations = normalizeMarkers(f.seq.Annotations)

	if err := f.seq.Validate(); err != nil {
		return nil, f.fail(err)
	}

	gene, allele, err := germline.ParseName(d.Allele)
	if err != nil {
		return nil, f.fail(fmt.Errorf("%w: %w", ErrInvalidName, err))
	}
	if gene, err = matchSegment(d.Key, gene); err != nil {
		return nil, f.fail(err)
	}

	out.Gene, out.Allele = gene, allele
	out.Seq, out.Spans = f.seq, f.spans
	return out, nil
}

func (f *draftFinisher) collectV() error {
	for _, p := range vParts {
		if err := f.require(p.key, p.kind); err != nil {
			return err
		}
	}
	return nil
}

func (f *draftFinisher) collectC() error {
	if err := f.require("CH1", germline.CH1); err != nil {
		return err
	}
	for _, key := range hingeKeys {
		if err := f.optional(key, germline.Hinge); err != nil {
			return err
		}
	}
	for _, p := range []part{{"CH2", germline.CH2}, {"CH3", germline.CH3}} {
		if err := f.require(p.key, p.kind); err != nil {
			return err
		}
	}
	for _, p := range cOptional {
		if err := f.optional(p.key, p.kind); err != nil {
			return err
		}
	}
	return f.require("CHS", germline.CHS)
}

// appendRegion adds residues under a region label. Empty stretches are
// dropped so region lengths stay positive.
func (f *draftFinisher) appendRegion(kind germline.RegionKind, residues string, span location.Location) {
	if residues == "" {
		return
	}
	f.seq.Sequence += residues
	f.seq.Regions = append(f.seq.Regions, germline.RegionLength{Kind: kind, Length: len(residues)})
	f.spans = append(f.spans, span)
}

func (f *draftFinisher) assemble() {
	for _, s := range f.sources {
		f.appendRegion(s.kind, s.region.Translation, s.region.Location)
	}
}

// jMotif returns the start of the first W/F-G-x-G window.
func jMotif(aa string) int {
	for i := 0; i+3 < len(aa); i++ {
		if (aa[i] == 'W' || aa[i] == 'F') && aa[i+1] == 'G' && aa[i+3] == 'G' {
			return i
		}
	}
	return -1
}

// assembleJ splits the J-REGION into its CDR3 tail and FR4 at the conserved
// motif. Without a motif the whole region is FR4 and false is returned.
func (f *draftFinisher) assembleJ() bool {
	r := f.sources[0].region
	aa := r.Translation
	i := jMotif(aa)
	if i < 0 {
		f.appendRegion(germline.FR4, aa, r.Location)
		return false
	}

	var cdr3Span location.Location
	fr4Span := r.CodingLocation()
	if i > r.Prepended {
		if head, tail, ok := fr4Span.Splice(i - r.Prepended); ok {
			cdr3Span, fr4Span = head, tail
		}
	}
	f.appendRegion(germline.CDR3, aa[:i], cdr3Span)
	f.appendRegion(germline.FR4, aa[i:], fr4Span)

	anchor := germline.Tryptophan
	if aa[i] == 'F' {
		anchor = germline.Phenylalanine
	}
	f.seq.Annotations = append(f.seq.Annotations,
		germline.Marker{Kind: anchor, Index: i},
		germline.Marker{Kind: germline.Glycine, Index: i + 1},
		germline.Marker{Kind: germline.Glycine, Index: i + 3},
	)
	return true
}

// mapMarkers places every conserved-residue sub-feature of the draft on the
// assembled sequence by walking its source regions in order.
func (f *draftFinisher) mapMarkers() error {
	for _, m := range markers {
		r, ok := f.draft.Region(m.key)
		if !ok {
			continue
		}
		index, ok := f.locate(r.Location)
		if !ok {
			return fmt.Errorf("%w: %s %s", ErrMarkerNotFound, m.key, r.Location)
		}
		f.seq.Annotations = append(f.seq.Annotations, germline.Marker{Kind: m.kind, Index: index})
	}
	return nil
}

func (f *draftFinisher) locate(loc location.Location) (int, bool) {
	offset := 0
	for _, s := range f.sources {
		r := s.region
		n := len(r.Translation)
		if n > 0 && r.Location.Contains(loc) {
			i := r.Prepended + codonOffset(r.CodingLocation(), loc)
			return offset + min(max(i, 0), n-1), true
		}
		offset += n
	}
	return 0, false
}

// codonOffset is the codon index of loc relative to the reading start of
// coding, rounding down for positions before that start.
func codonOffset(coding, loc location.Location) int {
	if aa, ok := coding.AminoAcidRange(loc); ok {
		return aa.Start
	}
	d := loc.Start - coding.Start
	if coding.IsComplement() {
		d = coding.End - loc.End
	}
	if d < 0 {
		return (d - 2) / 3
	}
	return d / 3
}

// normalizeMarkers sorts annotations by index and drops duplicates.
func normalizeMarkers(ms []germline.Marker) []germline.Marker {
	slices.SortFunc(ms, func(a, b germline.Marker) int {
		return cmp.Or(cmp.Compare(a.Index, b.Index), cmp.Compare(a.Kind, b.Kind))
	})
	return slices.Compact(ms)
}

// matchSegment checks the parsed name against the feature key. IMGT names
// D genes IGHD, which reads as the delta constant isotype.
func matchSegment(key string, g germline.Gene) (germline.Gene, error) {
	want := map[string]germline.SegmentType{
		imgt.KeyVGene: germline.V,
		imgt.KeyJGene: germline.J,
		imgt.KeyCGene: germline.C,
		imgt.KeyDGene: germline.D,
	}[key]
	if key == imgt.KeyDGene {
		if d, ok := g.AsDiversity(); ok {
			g = d
		}
	}
	if g.Segment.Type != want {
		return g, fmt.Errorf("%w: %s is a %s segment", ErrSegmentMismatch, key, g.Segment.Type)
	}
	return g, nil
}
