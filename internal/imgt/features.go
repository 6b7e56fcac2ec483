package imgt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inodb/vibe-germlines/internal/location"
	"github.com/inodb/vibe-germlines/internal/species"
	"github.com/inodb/vibe-germlines/internal/translate"
)

// Options controls which features become gene drafts.
type Options struct {
	DGenes bool // also assemble D-GENE features
}

// Gene feature keys.
const (
	KeyVGene = "V-GENE"
	KeyJGene = "J-GENE"
	KeyCGene = "C-GENE"
	KeyDGene = "D-GENE"
)

// structuralKeys are sub-features attached to the gene that contains them.
var structuralKeys = map[string]bool{
	"FR1-IMGT": true, "FR2-IMGT": true, "FR3-IMGT": true,
	"CDR1-IMGT": true, "CDR2-IMGT": true, "CDR3-IMGT": true,
	"1st-CYS": true, "2nd-CYS": true, "CONSERVED-TRP": true,
	"J-PHE": true, "J-TRP": true, "J-REGION": true, "D-REGION": true,
	"CH1": true, "H": true, "H1": true, "H2": true, "H3": true, "H4": true,
	"CH2": true, "CH3": true, "CH4": true, "CH5": true, "CH6": true,
	"CH7": true, "CH8": true, "CH9": true, "CHS": true,
	"M": true, "M1": true, "M2": true,
}

func (o Options) isGeneKey(key string) bool {
	switch key {
	case KeyVGene, KeyJGene, KeyCGene:
		return true
	case KeyDGene:
		return o.DGenes
	}
	return false
}

// Region is one feature-table entry.
type Region struct {
	Key         string
	Location    location.Location
	ReportedSeq string // the /translation qualifier, informational only
	Allele      string // the /IMGT_allele qualifier
	Functional  bool
	Partial     bool
	Shift       int  // /codon_start minus one
	Spliced     byte // residue from /splice-expectedcodon, 0 if absent

	// Set when the region is finalized.
	Nucleotides string
	Translation string
	Prepended   int   // residues placed before the translated codons
	Err         error // extraction or translation failure

	coding location.Location
}

// CodingLocation returns the span whose first codon is the first translated
// codon, after the frame shift has been applied.
func (r *Region) CodingLocation() location.Location {
	return r.coding
}

// GeneDraft is a gene feature together with the sub-features inside it.
type GeneDraft struct {
	Key      string
	Location location.Location
	Allele   string
	Regions  map[string]*Region
	Record   string
}

// Region returns the sub-feature with the given key.
func (g *GeneDraft) Region(key string) (*Region, bool) {
	r, ok := g.Regions[key]
	return r, ok
}

// DataItem is one interpreted record.
type DataItem struct {
	ID       string
	Species  species.Species
	Sequence string
	Genes    []*GeneDraft
	Orphans  []*Region // structural features outside every gene draft
}

// recordID extracts the accession from an ID line.
func recordID(idLine string) string {
	id, _, _ := strings.Cut(field(idLine), ";")
	return strings.TrimSpace(id)
}

// Interpret walks the feature table of a record.
func Interpret(rec *Record, opts Options) (*DataItem, error) {
	item := &DataItem{
		ID:       recordID(rec.ID),
		Species:  rec.Species,
		Sequence: rec.Sequence,
	}
	if rec.KeyWidth < 0 {
		return nil, &ParseError{Line: rec.Line, Record: item.ID, Message: "missing FH Key/Location header"}
	}

	var current *Region
	skip := false
	inTranslation := false

	for i, raw := range rec.FT {
		line := field(raw)
		if line == "" {
			continue
		}

		if line[0] != ' ' || (current == nil && !skip) {
			if current != nil {
				item.addRegion(current, opts)
			}
			current, skip, inTranslation = nil, false, false

			key, position := line, ""
			if len(line) > rec.KeyWidth {
				key, position = line[:rec.KeyWidth], line[rec.KeyWidth:]
			}
			key = strings.TrimSpace(key)

			loc, err := location.Parse(position)
			if err != nil {
				if opts.isGeneKey(key) || structuralKeys[key] {
					return nil, &ParseError{
						Line:    rec.ftLine(i),
						Record:  item.ID,
						Message: fmt.Sprintf("feature %s: %v", key, err),
					}
				}
				// Irrelevant feature with a position outside the supported subset.
				skip = true
				continue
			}
			current = &Region{Key: key, Location: loc}
			continue
		}

		if current == nil {
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case inTranslation:
			current.ReportedSeq += strings.TrimSuffix(trimmed, `"`)
			inTranslation = !strings.HasSuffix(trimmed, `"`)
		case strings.HasPrefix(trimmed, `/translation="`):
			tail := strings.TrimPrefix(trimmed, `/translation="`)
			current.ReportedSeq = strings.TrimSuffix(tail, `"`)
			inTranslation = !strings.HasSuffix(tail, `"`)
		case strings.HasPrefix(trimmed, `/IMGT_allele="`):
			current.Allele = strings.TrimSuffix(strings.TrimPrefix(trimmed, `/IMGT_allele="`), `"`)
		case strings.HasPrefix(trimmed, "/functional"):
			current.Functional = true
		case strings.HasPrefix(trimmed, "/partial"):
			current.Partial = true
		case strings.HasPrefix(trimmed, "/codon_start="):
			n, err := strconv.Atoi(strings.TrimPrefix(trimmed, "/codon_start="))
			if err != nil || n < 1 || n > 3 {
				return nil, &ParseError{
					Line:    rec.ftLine(i),
					Record:  item.ID,
					Message: fmt.Sprintf("feature %s: invalid %s", current.Key, trimmed),
				}
			}
			current.Shift = n - 1
		case strings.HasPrefix(trimmed, "/splice-expectedcodon="):
			if end := strings.LastIndexByte(trimmed, ']'); end > 0 {
				current.Spliced = trimmed[end-1]
			}
		}
	}
	if current != nil {
		item.addRegion(current, opts)
	}

	return item, nil
}

// addRegion finalizes a region and files it as a new gene draft, a
// sub-feature of the first draft containing it, or an orphan.
func (item *DataItem) addRegion(r *Region, opts Options) {
	switch {
	case opts.isGeneKey(r.Key):
		if !r.Functional || r.Partial || !strings.HasPrefix(r.Allele, "IG") {
			return
		}
		item.Genes = append(item.Genes, &GeneDraft{
			Key:      r.Key,
			Location: r.Location,
			Allele:   r.Allele,
			Regions:  make(map[string]*Region),
			Record:   item.ID,
		})
	case structuralKeys[r.Key]:
		item.finalize(r)
		for _, g := range item.Genes {
			if g.Location.Contains(r.Location) {
				g.Regions[r.Key] = r
				return
			}
		}
		item.Orphans = append(item.Orphans, r)
	}
}

// finalize extracts the region's nucleotides, applies its frame shift and
// translates it. Failures are recorded on the region.
func (item *DataItem) finalize(r *Region) {
	coding := r.Location
	prepend := r.Shift != 0 && r.Spliced != 0

	if !coding.IsSingle() && r.Shift != 0 {
		ok := false
		if r.Shift == 2 {
			// The first full codon starts one nucleotide before the
			// annotated start; the widened codon carries the spliced residue.
			var widened location.Location
			if widened, ok = coding.Shift(-1); ok && widened.End < len(item.Sequence) {
				coding, prepend = widened, false
			} else {
				coding, ok = coding.Shift(2)
			}
		} else {
			coding, ok = coding.Shift(r.Shift)
		}
		if !ok {
			r.Err = fmt.Errorf("%s %s: frame shift %d leaves no sequence", r.Key, r.Location, r.Shift)
			return
		}
	}
	r.coding = coding

	if coding.End >= len(item.Sequence) {
		r.Err = fmt.Errorf("%s %s: beyond sequence of length %d", r.Key, coding, len(item.Sequence))
		return
	}
	nt := item.Sequence[coding.Start : coding.End+1]
	if coding.IsComplement() {
		rc, err := translate.ReverseComplement(nt)
		if err != nil {
			r.Err = fmt.Errorf("%s %s: %w", r.Key, coding, err)
			return
		}
		nt = rc
	}
	r.Nucleotides = nt

	aa, err := translate.Translate(nt)
	if err != nil {
		r.Err = fmt.Errorf("%s %s: %w", r.Key, coding, err)
		return
	}
	if prepend {
		aa = string(r.Spliced) + aa
		r.Prepended = 1
	}
	r.Translation = aa
}
