package font

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Catalog is the ordered list of fonts a host can style text with.
// Order is kept because style selection breaks ties by listing order.
type Catalog struct {
	path string

	mu    sync.RWMutex
	fonts []FontName
	index map[FontName]struct{}
}

// NewCatalog creates a catalog backed by the default catalog file.
func NewCatalog() *Catalog {
	return NewCatalogAt(GetCatalogPath())
}

// NewCatalogAt creates a catalog backed by the file at path. An empty path
// keeps the catalog in memory only.
func NewCatalogAt(path string) *Catalog {
	c := &Catalog{
		path:  path,
		index: make(map[FontName]struct{}),
	}
	c.load()
	return c
}

// NewCatalogFrom creates an in-memory catalog holding fonts.
func NewCatalogFrom(fonts ...FontName) *Catalog {
	c := NewCatalogAt("")
	c.append(fonts)
	return c
}

// Path returns the backing file, empty for in-memory catalogs.
func (c *Catalog) Path() string {
	return c.path
}

// Add registers fonts, skipping ones already listed, and persists the catalog.
func (c *Catalog) Add(fonts ...FontName) error {
	c.mu.Lock()
	c.append(fonts)
	c.mu.Unlock()
	return c.save()
}

func (c *Catalog) append(fonts []FontName) {
	for _, f := range fonts {
		if _, exists := c.index[f]; exists {
			continue
		}
		c.index[f] = struct{}{}
		c.fonts = append(c.fonts, f)
	}
}

// Remove removes a font from the catalog
func (c *Catalog) Remove(font FontName) error {
	c.mu.Lock()
	if _, exists := c.index[font]; exists {
		delete(c.index, font)
		for i, f := range c.fonts {
			if f == font {
				c.fonts = append(c.fonts[:i], c.fonts[i+1:]...)
				break
			}
		}
	}
	c.mu.Unlock()
	return c.save()
}

// Has checks if a font is listed
func (c *Catalog) Has(font FontName) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, exists := c.index[font]
	return exists
}

// List returns all fonts in listing order
func (c *Catalog) List() []FontName {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fonts := make([]FontName, len(c.fonts))
	copy(fonts, c.fonts)
	return fonts
}

// Families returns each family once, in order of first appearance
func (c *Catalog) Families() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{})
	var families []string
	for _, f := range c.fonts {
		if _, ok := seen[f.Family]; ok {
			continue
		}
		seen[f.Family] = struct{}{}
		families = append(families, f.Family)
	}
	return families
}

// StylesFor returns the styles of a family in listing order.
func (c *Catalog) StylesFor(family string) []string {
	return StylesFor(c.List(), family)
}

// StylesFor filters fonts down to the styles of family. When no font matches
// the exact family name, a case-insensitive pass is made instead.
func StylesFor(fonts []FontName, family string) []string {
	var styles []string
	for _, f := range fonts {
		if f.Family == family {
			styles = append(styles, f.Style)
		}
	}

	if len(styles) == 0 {
		for _, f := range fonts {
			if strings.EqualFold(f.Family, family) {
				styles = append(styles, f.Style)
			}
		}
	}

	return styles
}

// load reads the catalog from disk
func (c *Catalog) load() {
	if c.path == "" {
		return
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return // Catalog doesn't exist yet
	}

	var fonts []FontName
	if err := json.Unmarshal(data, &fonts); err != nil {
		return // Failed to parse, start fresh
	}

	c.append(fonts)
}

// save writes the catalog to disk
func (c *Catalog) save() error {
	if c.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	data, err := json.MarshalIndent(c.List(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	return os.WriteFile(c.path, data, 0644)
}
