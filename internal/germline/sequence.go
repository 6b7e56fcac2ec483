package germline

import (
	"fmt"
	"strings"
)

// RegionKind labels a stretch of an allele's amino-acid sequence.
type RegionKind uint8

const (
	FR1 RegionKind = iota
	CDR1
	FR2
	CDR2
	FR3
	CDR3
	FR4
	CH1
	Hinge
	CH2
	CH3
	CH4
	CH5
	CH6
	CH7
	CH8
	CH9
	CHS
)

var regionNames = [...]string{
	"FR1", "CDR1", "FR2", "CDR2", "FR3", "CDR3", "FR4",
	"CH1", "H", "CH2", "CH3", "CH4", "CH5", "CH6", "CH7", "CH8", "CH9", "CHS",
}

func (r RegionKind) String() string {
	if int(r) < len(regionNames) {
		return regionNames[r]
	}
	return fmt.Sprintf("RegionKind(%d)", r)
}

// Annotation marks a single residue of interest.
type Annotation uint8

const (
	Cysteine1 Annotation = iota
	Cysteine2
	Tryptophan
	Phenylalanine
	Glycine
	NGlycan
)

var annotationNames = [...]string{"Cys1", "Cys2", "Trp", "Phe", "Gly", "NGly"}

func (a Annotation) String() string {
	if int(a) < len(annotationNames) {
		return annotationNames[a]
	}
	return fmt.Sprintf("Annotation(%d)", a)
}

// RegionLength is one region of an allele and its length in residues.
type RegionLength struct {
	Kind   RegionKind
	Length int
}

// Marker is an annotation at a 0-based sequence index.
type Marker struct {
	Kind  Annotation
	Index int
}

// AnnotatedSequence is the payload of one allele. The region lengths always
// sum to the sequence length.
type AnnotatedSequence struct {
	Sequence    string
	Regions     []RegionLength
	Annotations []Marker
}

// Validate checks the region length invariant and that every annotation
// points into the sequence.
func (a *AnnotatedSequence) Validate() error {
	total := 0
	for _, r := range a.Regions {
		if r.Length <= 0 {
			return fmt.Errorf("region %s has length %d", r.Kind, r.Length)
		}
		total += r.Length
	}
	if total != len(a.Sequence) {
		return fmt.Errorf("region lengths sum to %d, sequence has %d residues", total, len(a.Sequence))
	}
	for _, m := range a.Annotations {
		if m.Index < 0 || m.Index >= len(a.Sequence) {
			return fmt.Errorf("annotation %s at %d outside sequence of length %d", m.Kind, m.Index, len(a.Sequence))
		}
	}
	return nil
}

// Richness is the number of annotations plus regions; duplicate alleles
// keep the richer record.
func (a *AnnotatedSequence) Richness() int {
	return len(a.Annotations) + len(a.Regions)
}

// RegionAt returns the region containing the residue at index and whether
// index is the first residue of that region.
func (a *AnnotatedSequence) RegionAt(index int) (RegionKind, bool, bool) {
	if index < 0 {
		return 0, false, false
	}
	offset := 0
	for _, r := range a.Regions {
		if index < offset+r.Length {
			return r.Kind, index == offset, true
		}
		offset += r.Length
	}
	return 0, false, false
}

// AnnotationsAt returns every annotation at index.
func (a *AnnotatedSequence) AnnotationsAt(index int) []Annotation {
	var out []Annotation
	for _, m := range a.Annotations {
		if m.Index == index {
			out = append(out, m.Kind)
		}
	}
	return out
}

// RegionString renders the region list as "FR1:25,CDR1:8,...".
func (a *AnnotatedSequence) RegionString() string {
	parts := make([]string, len(a.Regions))
	for i, r := range a.Regions {
		parts[i] = fmt.Sprintf("%s:%d", r.Kind, r.Length)
	}
	return strings.Join(parts, ",")
}

// AnnotationString renders the annotations as "Cys1@22,Trp@40,...".
func (a *AnnotatedSequence) AnnotationString() string {
	parts := make([]string, len(a.Annotations))
	for i, m := range a.Annotations {
		parts[i] = fmt.Sprintf("%s@%d", m.Kind, m.Index)
	}
	return strings.Join(parts, ",")
}
