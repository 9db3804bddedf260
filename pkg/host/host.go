// Package host defines the styled text surface a bionic conversion reads from
// and writes to, together with an in-memory implementation.
package host

import (
	"context"
	"errors"

	"github.com/joeblew999/plat-bionic/pkg/font"
)

var (
	// ErrUnknownNode is returned for node IDs the host does not hold.
	ErrUnknownNode = errors.New("unknown node")
	// ErrOutOfRange is returned for character ranges outside the node's text.
	ErrOutOfRange = errors.New("range out of bounds")
	// ErrFontNotLoaded is returned when styling with a font that was not loaded first.
	ErrFontNotLoaded = errors.New("font not loaded")
)

// NodeID identifies a text node held by a host.
type NodeID string

// Host is a styled text surface. Font enumeration and loading may block and
// take a context; styling a range is synchronous once the font is loaded.
// Ranges are half-open character offsets.
type Host interface {
	ListAvailableFonts(ctx context.Context) ([]font.FontName, error)
	StyleAt(ctx context.Context, node NodeID, start, end int) StyleResult
	LoadFont(ctx context.Context, name font.FontName) error
	SetStyleRange(node NodeID, start, end int, name font.FontName) error
	CharacterLength(node NodeID) int
	Text(node NodeID) string
}

// StylesFor lists the styles h offers for family, matching the family name
// exactly first and ignoring case when that finds nothing.
func StylesFor(ctx context.Context, h Host, family string) ([]string, error) {
	fonts, err := h.ListAvailableFonts(ctx)
	if err != nil {
		return nil, err
	}
	return font.StylesFor(fonts, family), nil
}
