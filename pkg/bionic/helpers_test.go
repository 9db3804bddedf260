package bionic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/host"
)

var (
	interRegular = font.FontName{Family: "Inter", Style: "Regular"}
	interMedium  = font.FontName{Family: "Inter", Style: "Medium"}
	interBold    = font.FontName{Family: "Inter", Style: "Bold"}
	interBlack   = font.FontName{Family: "Inter", Style: "Black"}
	monoRegular  = font.FontName{Family: "Mono", Style: "Regular"}
	slabLight    = font.FontName{Family: "Slab", Style: "Light"}
	slabRegular  = font.FontName{Family: "Slab", Style: "Regular"}
)

func newTestHost() *host.MemoryHost {
	catalog := font.NewCatalogFrom(
		interRegular, interMedium, interBold, interBlack,
		monoRegular,
		slabLight, slabRegular,
	)
	return host.NewMemoryHost(font.NewManagerWithCatalog(catalog))
}

// faultyHost wraps a MemoryHost and injects failures.
type faultyHost struct {
	*host.MemoryHost
	failSamples map[int]bool
	failLoads   map[font.FontName]bool
	mixedFirst  bool
	panicOn     host.NodeID
}

func (h *faultyHost) StyleAt(ctx context.Context, node host.NodeID, start, end int) host.StyleResult {
	if h.mixedFirst && start == 0 && end == 1 {
		return host.Mixed()
	}
	if h.failSamples[start] {
		return host.Unavailable(context.DeadlineExceeded)
	}
	return h.MemoryHost.StyleAt(ctx, node, start, end)
}

func (h *faultyHost) LoadFont(ctx context.Context, name font.FontName) error {
	if h.failLoads[name] {
		return font.ErrNotAvailable
	}
	return h.MemoryHost.LoadFont(ctx, name)
}

func (h *faultyHost) Text(node host.NodeID) string {
	if node == h.panicOn {
		panic("host exploded")
	}
	return h.MemoryHost.Text(node)
}

// fontsOf lists the font of every character of a document.
func fontsOf(t *testing.T, h *host.MemoryHost, node host.NodeID) []font.FontName {
	t.Helper()
	doc, ok := h.Document(node)
	require.True(t, ok)
	fonts := make([]font.FontName, doc.Len())
	for i := range fonts {
		fonts[i] = doc.FontAt(i)
	}
	return fonts
}

// styled builds an expected per-character font list from ranges.
func styled(length int, fill font.FontName, ranges ...rangeFont) []font.FontName {
	fonts := make([]font.FontName, length)
	for i := range fonts {
		fonts[i] = fill
	}
	for _, r := range ranges {
		for i := r.start; i < r.end; i++ {
			fonts[i] = r.font
		}
	}
	return fonts
}

type rangeFont struct {
	start, end int
	font       font.FontName
}
