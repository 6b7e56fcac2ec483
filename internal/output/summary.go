package output

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/inodb/vibe-germlines/internal/germline"
)

// WriteSummary writes a markdown table of gene and allele counts per
// species, chain and segment, followed by a totals row.
func WriteSummary(w io.Writer, dbs []*germline.Germlines) error {
	var b strings.Builder
	b.WriteString("| Species | Chain | Segment | Genes | Alleles |\n")
	b.WriteString("|---|---|---|---:|---:|\n")

	sorted := slices.Clone(dbs)
	slices.SortFunc(sorted, func(a, b *germline.Germlines) int {
		return int(a.Species) - int(b.Species)
	})

	var genes, alleles int
	for _, db := range sorted {
		for _, c := range db.Stats() {
			fmt.Fprintf(&b, "| %s | %s | %s | %d | %d |\n",
				db.Species, c.Kind, c.Segment, c.Genes, c.Alleles)
			genes += c.Genes
			alleles += c.Alleles
		}
	}
	fmt.Fprintf(&b, "| **Total** | | | %d | %d |\n", genes, alleles)

	_, err := io.WriteString(w, b.String())
	return err
}
