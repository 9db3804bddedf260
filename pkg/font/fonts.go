package font

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/joeblew999/plat-bionic/pkg/config"
	"github.com/joeblew999/plat-bionic/pkg/log"
)

// ErrNotAvailable is returned when a font is requested that the catalog does not list.
var ErrNotAvailable = errors.New("font not available")

// FontName identifies one style of a font family, e.g. {"Inter", "Semi Bold"}
type FontName struct {
	Family string `json:"family"`
	Style  string `json:"style"`
}

func (f FontName) String() string {
	return fmt.Sprintf("%s %s", f.Family, f.Style)
}

// Weight returns the canonical weight of the style
func (f FontName) Weight() int {
	return WeightToNumber(f.Style)
}

// Manager loads fonts from a catalog and remembers which ones are ready for use
type Manager struct {
	catalog *Catalog

	mu     sync.RWMutex
	loaded map[FontName]struct{}
}

// GetCatalogPath returns the catalog file path (environment-aware via config)
func GetCatalogPath() string {
	if path := config.GetFontCatalogPath(); path != "" {
		return path
	}
	return filepath.Join(config.GetFontPath(), CatalogFilename)
}

// NewManager creates a font manager over the default catalog file
func NewManager() *Manager {
	return NewManagerWithCatalog(NewCatalog())
}

// NewManagerWithCatalog creates a font manager over the given catalog
func NewManagerWithCatalog(c *Catalog) *Manager {
	return &Manager{
		catalog: c,
		loaded:  make(map[FontName]struct{}),
	}
}

// Catalog returns the catalog backing the manager
func (m *Manager) Catalog() *Catalog {
	return m.catalog
}

// List returns every font the catalog knows about
func (m *Manager) List() []FontName {
	return m.catalog.List()
}

// Styles returns the styles available for a family
func (m *Manager) Styles(family string) []string {
	return m.catalog.StylesFor(family)
}

// Load makes a font ready for styling. Fonts missing from the catalog fail
// with ErrNotAvailable.
func (m *Manager) Load(ctx context.Context, name FontName) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if m.Loaded(name) {
		return nil
	}

	if !m.catalog.Has(name) {
		return fmt.Errorf("load %q: %w", name, ErrNotAvailable)
	}

	m.mu.Lock()
	m.loaded[name] = struct{}{}
	m.mu.Unlock()

	log.Debug("Font loaded", "family", name.Family, "style", name.Style)
	return nil
}

// Loaded checks if a font has been loaded
func (m *Manager) Loaded(name FontName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.loaded[name]
	return ok
}
