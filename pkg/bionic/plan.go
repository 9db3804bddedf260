package bionic

import (
	"unicode/utf8"

	"github.com/joeblew999/plat-bionic/pkg/font"
)

// StyleOperation styles [Start,End) with a font.
type StyleOperation struct {
	Start int           `json:"start"`
	End   int           `json:"end"`
	Font  font.FontName `json:"font"`
}

// WordSpan is a word whose family could be resolved to a base and bold style.
type WordSpan struct {
	Start  int
	End    int
	Family string
	Base   string
	Bold   string
}

func (s WordSpan) base() font.FontName { return font.FontName{Family: s.Family, Style: s.Base} }
func (s WordSpan) bold() font.FontName { return font.FontName{Family: s.Family, Style: s.Bold} }

// PlanSingle plans a conversion of text set in one family: the whole buffer
// is reset to base, then the leading characters of every word are set to bold.
func PlanSingle(text, family, base, bold string, s Settings) []StyleOperation {
	length := utf8.RuneCountInString(text)
	if length == 0 {
		return nil
	}

	words := SplitWords(text)
	ops := make([]StyleOperation, 0, len(words)+1)
	ops = append(ops, StyleOperation{
		Start: 0,
		End:   length,
		Font:  font.FontName{Family: family, Style: base},
	})
	for _, w := range words {
		ops = append(ops, StyleOperation{
			Start: w.Start,
			End:   w.Start + BoldCount(w.Len, s.FixationStrength),
			Font:  font.FontName{Family: family, Style: bold},
		})
	}
	return ops
}

// PlanMixed plans a conversion of resolved word spans: every span is reset to
// its base style before any span receives its bold prefix.
func PlanMixed(spans []WordSpan, s Settings) []StyleOperation {
	ops := make([]StyleOperation, 0, 2*len(spans))
	for _, span := range spans {
		ops = append(ops, StyleOperation{Start: span.Start, End: span.End, Font: span.base()})
	}
	for _, span := range spans {
		n := BoldCount(span.End-span.Start, s.FixationStrength)
		ops = append(ops, StyleOperation{Start: span.Start, End: span.Start + n, Font: span.bold()})
	}
	return ops
}
