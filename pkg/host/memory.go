package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/joeblew999/plat-bionic/pkg/font"
)

// MemoryHost holds documents in memory and loads fonts through a font.Manager.
type MemoryHost struct {
	fonts *font.Manager

	mu    sync.RWMutex
	docs  map[NodeID]*Document
	order []NodeID
}

var _ Host = (*MemoryHost)(nil)

// NewMemoryHost creates an empty host over fonts.
func NewMemoryHost(fonts *font.Manager) *MemoryHost {
	return &MemoryHost{
		fonts: fonts,
		docs:  make(map[NodeID]*Document),
	}
}

// Add stores doc under id, replacing any previous document.
func (h *MemoryHost) Add(id NodeID, doc *Document) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.docs[id]; !exists {
		h.order = append(h.order, id)
	}
	h.docs[id] = doc
}

// Document returns the document stored under id.
func (h *MemoryHost) Document(id NodeID) (*Document, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.docs[id]
	return doc, ok
}

// Nodes returns the node IDs in insertion order.
func (h *MemoryHost) Nodes() []NodeID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	nodes := make([]NodeID, len(h.order))
	copy(nodes, h.order)
	return nodes
}

func (h *MemoryHost) ListAvailableFonts(ctx context.Context) ([]font.FontName, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return h.fonts.List(), nil
}

func (h *MemoryHost) StyleAt(ctx context.Context, node NodeID, start, end int) StyleResult {
	if err := ctx.Err(); err != nil {
		return Unavailable(err)
	}
	doc, ok := h.Document(node)
	if !ok {
		return Unavailable(fmt.Errorf("node %q: %w", node, ErrUnknownNode))
	}
	return doc.StyleAt(start, end)
}

func (h *MemoryHost) LoadFont(ctx context.Context, name font.FontName) error {
	return h.fonts.Load(ctx, name)
}

func (h *MemoryHost) SetStyleRange(node NodeID, start, end int, name font.FontName) error {
	if !h.fonts.Loaded(name) {
		return fmt.Errorf("style %q: %w", name, ErrFontNotLoaded)
	}
	doc, ok := h.Document(node)
	if !ok {
		return fmt.Errorf("node %q: %w", node, ErrUnknownNode)
	}
	return doc.SetRange(start, end, name)
}

func (h *MemoryHost) CharacterLength(node NodeID) int {
	if doc, ok := h.Document(node); ok {
		return doc.Len()
	}
	return 0
}

func (h *MemoryHost) Text(node NodeID) string {
	if doc, ok := h.Document(node); ok {
		return doc.Text()
	}
	return ""
}
