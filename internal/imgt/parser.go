// Package imgt reads IMGT LIGM-DB flat files: it splits the line stream into
// records and interprets each record's feature table into gene drafts.
package imgt

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
	"go.uber.org/zap"

	"github.com/inodb/vibe-germlines/internal/species"
)

// Keywords a record must carry to be kept.
const (
	KeywordIG         = "immunoglobulin (IG)"
	KeywordFunctional = "functional"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}
)

// Record is one raw entry of the flat file, everything up to a "//" line.
type Record struct {
	ID         string   // full ID line
	Keywords   []string // KW entries, trimmed
	KeyWidth   int      // width of the FT key column, -1 without an "FH   Key" line
	FT         []string // feature table lines, verbatim
	FTLines    []int    // line number of each FT line
	Species    species.Species
	SpeciesErr error // nil once an OS line resolved
	Sequence   string
	Line       int // line number of the first line of the record
}

// ftLine returns the input line number of FT line i.
func (r *Record) ftLine(i int) int {
	if i < len(r.FTLines) {
		return r.FTLines[i]
	}
	return r.Line
}

// HasKeyword reports whether kw is among the record's keywords.
func (r *Record) HasKeyword(kw string) bool {
	for _, k := range r.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// Retained reports whether the record is a functional immunoglobulin entry
// from a known species.
func (r *Record) Retained() bool {
	return r.SpeciesErr == nil && r.HasKeyword(KeywordIG) && r.HasKeyword(KeywordFunctional)
}

// Stats counts what happened to the records read so far.
type Stats struct {
	Records        int
	Retained       int
	NotIG          int // missing the immunoglobulin or functional keyword
	UnknownSpecies int
	NotOrganism    int
	Failed         int // retained but the feature table could not be parsed
}

// Parser reads records from an IMGT flat file.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
	opts       Options
	logger     *zap.Logger
	stats      Stats
}

// Open creates a parser for the given file. Plain, gzip and xz compressed
// input is detected from the leading magic bytes; "-" reads stdin.
func Open(path string) (*Parser, error) {
	if path == "-" {
		return NewParser(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open imgt file: %w", err)
	}

	p, err := NewParser(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	p.file = file
	return p, nil
}

// NewParser creates a parser from an io.Reader.
func NewParser(r io.Reader) (*Parser, error) {
	p := &Parser{logger: zap.NewNop()}

	br := bufio.NewReader(r)
	magic, _ := br.Peek(len(xzMagic))

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.gzipReader = gz
		p.reader = bufio.NewReader(gz)
	case bytes.HasPrefix(magic, xzMagic):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("create xz reader: %w", err)
		}
		p.reader = bufio.NewReader(xr)
	default:
		p.reader = br
	}

	return p, nil
}

// SetOptions configures feature interpretation.
func (p *Parser) SetOptions(opts Options) {
	p.opts = opts
}

// SetLogger sets the logger used for dropped records.
func (p *Parser) SetLogger(l *zap.Logger) {
	p.logger = l
}

// Stats returns the record counters.
func (p *Parser) Stats() Stats {
	return p.stats
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// NextRecord reads the next raw record. Returns nil, nil when there are no
// more records. A trailing batch without its "//" terminator is discarded.
func (p *Parser) NextRecord() (*Record, error) {
	rec := &Record{KeyWidth: -1, SpeciesErr: errNoOS}
	var sq strings.Builder
	seenOS := false
	started := false

	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read line %d: %w", p.lineNumber+1, err)
		}
		if err == io.EOF && line == "" {
			if started {
				p.logger.Warn("discarding unterminated record",
					zap.String("record", rec.ID),
					zap.Int("line", rec.Line))
			}
			return nil, nil
		}
		p.lineNumber++
		line = strings.TrimRight(line, "\r\n")

		if !started {
			started = true
			rec.Line = p.lineNumber
		}

		switch {
		case line == "//":
			rec.Sequence = sq.String()
			p.stats.Records++
			return rec, nil
		case strings.HasPrefix(line, "ID"):
			rec.ID = line
		case strings.HasPrefix(line, "KW"):
			for _, kw := range strings.Split(field(line), ";") {
				if kw = strings.TrimSpace(kw); kw != "" {
					rec.Keywords = append(rec.Keywords, strings.TrimSuffix(kw, "."))
				}
			}
		case strings.HasPrefix(line, "FH   Key"):
			if i := strings.Index(line, "Location"); i >= 5 {
				rec.KeyWidth = i - 5
			}
		case strings.HasPrefix(line, "FT"):
			rec.FT = append(rec.FT, line)
			rec.FTLines = append(rec.FTLines, p.lineNumber)
		case strings.HasPrefix(line, "OS") && !seenOS:
			seenOS = true
			rec.Species, rec.SpeciesErr = species.Parse(field(line))
		case strings.HasPrefix(line, "  "):
			for i := 0; i < len(line); i++ {
				switch c := line[i]; c {
				case 'a', 'c', 't', 'g':
					sq.WriteByte(c)
				}
			}
		}

		if err == io.EOF {
			p.logger.Warn("discarding unterminated record",
				zap.String("record", rec.ID),
				zap.Int("line", rec.Line))
			return nil, nil
		}
	}
}

var errNoOS = errors.New("no OS line")

// field returns the value part of a flat-file line, after the 5-column tag.
func field(line string) string {
	if len(line) <= 5 {
		return ""
	}
	return line[5:]
}

// Next returns the next retained record with its feature table interpreted.
// Records that are not functional immunoglobulin entries, or whose species
// does not resolve, are skipped. A *ParseError concerns only the record it
// names; the caller may keep calling Next. Returns nil, nil at end of input.
func (p *Parser) Next() (*DataItem, error) {
	for {
		rec, err := p.NextRecord()
		if err != nil || rec == nil {
			return nil, err
		}

		if rec.SpeciesErr != nil {
			switch {
			case errors.Is(rec.SpeciesErr, species.ErrUnknown):
				p.stats.UnknownSpecies++
				p.logger.Warn("dropping record with unresolved species",
					zap.String("record", recordID(rec.ID)),
					zap.Int("line", rec.Line),
					zap.Error(rec.SpeciesErr))
			default:
				p.stats.NotOrganism++
				p.logger.Debug("dropping record without organism",
					zap.String("record", recordID(rec.ID)),
					zap.Error(rec.SpeciesErr))
			}
			continue
		}
		if !rec.Retained() {
			p.stats.NotIG++
			continue
		}

		item, err := Interpret(rec, p.opts)
		if err != nil {
			p.stats.Failed++
			return nil, err
		}
		p.stats.Retained++
		return item, nil
	}
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// ParseError reports a record whose feature table could not be tokenized.
type ParseError struct {
	Line    int
	Record  string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("imgt parse error in record %s at line %d: %s", e.Record, e.Line, e.Message)
}
