package host

import (
	"fmt"

	"github.com/joeblew999/plat-bionic/pkg/font"
)

// Run is a maximal range of characters sharing one font.
type Run struct {
	Start int           `json:"start"`
	End   int           `json:"end"`
	Font  font.FontName `json:"font"`
}

// Document is a text buffer with a font per character.
type Document struct {
	text  []rune
	fonts []font.FontName
}

// NewDocument creates a document styled entirely with f.
func NewDocument(text string, f font.FontName) *Document {
	runes := []rune(text)
	fonts := make([]font.FontName, len(runes))
	for i := range fonts {
		fonts[i] = f
	}
	return &Document{text: runes, fonts: fonts}
}

// FromRuns rebuilds a document from its text and runs. The runs must cover
// every character exactly once.
func FromRuns(text string, runs []Run) (*Document, error) {
	d := &Document{text: []rune(text)}
	d.fonts = make([]font.FontName, len(d.text))

	covered := 0
	for _, r := range runs {
		if r.Start != covered || r.End <= r.Start || r.End > len(d.text) {
			return nil, fmt.Errorf("run [%d,%d): %w", r.Start, r.End, ErrOutOfRange)
		}
		for i := r.Start; i < r.End; i++ {
			d.fonts[i] = r.Font
		}
		covered = r.End
	}
	if covered != len(d.text) {
		return nil, fmt.Errorf("runs cover %d of %d characters: %w", covered, len(d.text), ErrOutOfRange)
	}
	return d, nil
}

// Text returns the document text.
func (d *Document) Text() string {
	return string(d.text)
}

// Len returns the number of characters.
func (d *Document) Len() int {
	return len(d.text)
}

// FontAt returns the font of the character at i.
func (d *Document) FontAt(i int) font.FontName {
	return d.fonts[i]
}

// StyleAt reports the font over [start,end).
func (d *Document) StyleAt(start, end int) StyleResult {
	if err := d.checkRange(start, end); err != nil || start == end {
		if err == nil {
			err = fmt.Errorf("empty range [%d,%d): %w", start, end, ErrOutOfRange)
		}
		return Unavailable(err)
	}

	first := d.fonts[start]
	for i := start + 1; i < end; i++ {
		if d.fonts[i] != first {
			return Mixed()
		}
	}
	return Known(first)
}

// SetRange styles [start,end) with f.
func (d *Document) SetRange(start, end int, f font.FontName) error {
	if err := d.checkRange(start, end); err != nil {
		return err
	}
	for i := start; i < end; i++ {
		d.fonts[i] = f
	}
	return nil
}

// Runs returns the document as coalesced runs.
func (d *Document) Runs() []Run {
	var runs []Run
	for i, f := range d.fonts {
		if n := len(runs); n > 0 && runs[n-1].Font == f {
			runs[n-1].End = i + 1
			continue
		}
		runs = append(runs, Run{Start: i, End: i + 1, Font: f})
	}
	return runs
}

// Families returns each family used in the document once, in order of appearance.
func (d *Document) Families() []string {
	seen := make(map[string]struct{})
	var families []string
	for _, f := range d.fonts {
		if _, ok := seen[f.Family]; ok {
			continue
		}
		seen[f.Family] = struct{}{}
		families = append(families, f.Family)
	}
	return families
}

func (d *Document) checkRange(start, end int) error {
	if start < 0 || end < start || end > len(d.text) {
		return fmt.Errorf("[%d,%d) of %d characters: %w", start, end, len(d.text), ErrOutOfRange)
	}
	return nil
}
