// Package species maps IMGT organism names onto a closed enumeration.
package species

import (
	"errors"
	"fmt"
	"strings"
)

// Species is one organism known to IMGT.
type Species uint16

type entry struct {
	ident  string
	common string
	imgt   string
}

var (
	// ErrUnknown is returned for organism names not in the table.
	ErrUnknown = errors.New("unknown species")
	// ErrNotOrganism is returned for vectors, synthetic constructs and
	// unidentified sources.
	ErrNotOrganism = errors.New("not an organism")
)

var (
	byIMGT  = make(map[string]Species, len(table))
	byIdent = make(map[string]Species, len(table))
	byName  = make(map[string]Species, 3*len(table))

	notOrganisms = make(map[string]bool, len(notOrganismNames))

	// aliases map bare common names to the laboratory species rather than
	// the genus IMGT files under the same name.
	aliases = map[string]Species{
		"mouse": MusMusculus,
		"rat":   RattusNorvegicus,
	}
)

func init() {
	for i, e := range table {
		s := Species(i)
		byIMGT[e.imgt] = s
		byIdent[e.ident] = s
		for _, name := range []string{e.ident, e.common, s.ScientificName()} {
			key := strings.ToLower(name)
			if _, dup := byName[key]; !dup {
				byName[key] = s
			}
		}
	}
	for name, s := range aliases {
		byName[name] = s
	}
	for _, name := range notOrganismNames {
		notOrganisms[name] = true
	}
}

// Parse resolves the free text of an IMGT OS line.
func Parse(name string) (Species, error) {
	name = strings.TrimSpace(name)
	if s, ok := byIMGT[name]; ok {
		return s, nil
	}
	if notOrganisms[name] || strings.HasPrefix(name, "synthetic construct") {
		return 0, fmt.Errorf("%w: %q", ErrNotOrganism, name)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// FromIdent returns the species with the given identifier, e.g. "HomoSapiens".
func FromIdent(ident string) (Species, bool) {
	s, ok := byIdent[ident]
	return s, ok
}

// FromName accepts an identifier, common name or scientific name, ignoring case.
func FromName(name string) (Species, bool) {
	s, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// All returns every known species in table order.
func All() []Species {
	out := make([]Species, len(table))
	for i := range table {
		out[i] = Species(i)
	}
	return out
}

func (s Species) entry() entry {
	if int(s) < len(table) {
		return table[s]
	}
	return entry{ident: fmt.Sprintf("Species(%d)", s)}
}

// Ident returns the Go-style identifier, used for file names.
func (s Species) Ident() string { return s.entry().ident }

// CommonName returns the English name, e.g. "Human".
func (s Species) CommonName() string { return s.entry().common }

// IMGTName returns the organism text as written on IMGT OS lines.
func (s Species) IMGTName() string { return s.entry().imgt }

// ScientificName returns the binomial name without the parenthesized common name.
func (s Species) ScientificName() string {
	name := s.entry().imgt
	if i := strings.Index(name, " ("); i >= 0 {
		return name[:i]
	}
	return name
}

func (s Species) String() string {
	return s.CommonName()
}

// MarshalText encodes the species as its identifier.
func (s Species) MarshalText() ([]byte, error) {
	if int(s) >= len(table) {
		return nil, fmt.Errorf("species %d out of range", s)
	}
	return []byte(s.Ident()), nil
}

// UnmarshalText decodes an identifier written by MarshalText.
func (s *Species) UnmarshalText(text []byte) error {
	v, ok := FromIdent(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknown, text)
	}
	*s = v
	return nil
}
