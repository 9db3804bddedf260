package host

import (
	"fmt"

	"github.com/joeblew999/plat-bionic/pkg/font"
)

// StyleKind tells which variant a StyleResult holds.
type StyleKind int

const (
	// StyleUnavailable means the query failed; Err says why.
	StyleUnavailable StyleKind = iota
	// StyleKnown means the whole range uses a single font.
	StyleKnown
	// StyleMixed means the range spans more than one font.
	StyleMixed
)

func (k StyleKind) String() string {
	switch k {
	case StyleKnown:
		return "known"
	case StyleMixed:
		return "mixed"
	default:
		return "unavailable"
	}
}

// StyleResult is the answer to a style query over a range.
type StyleResult struct {
	Kind StyleKind
	Font font.FontName
	Err  error
}

// Known reports a single font over the queried range.
func Known(f font.FontName) StyleResult {
	return StyleResult{Kind: StyleKnown, Font: f}
}

// Mixed reports a range spanning several fonts.
func Mixed() StyleResult {
	return StyleResult{Kind: StyleMixed}
}

// Unavailable reports a failed query.
func Unavailable(err error) StyleResult {
	return StyleResult{Kind: StyleUnavailable, Err: err}
}

func (r StyleResult) IsKnown() bool { return r.Kind == StyleKnown }
func (r StyleResult) IsMixed() bool { return r.Kind == StyleMixed }

func (r StyleResult) String() string {
	switch r.Kind {
	case StyleKnown:
		return r.Font.String()
	case StyleMixed:
		return "mixed"
	default:
		return fmt.Sprintf("unavailable: %v", r.Err)
	}
}
