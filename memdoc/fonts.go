package memdoc

import (
	"context"
	"fmt"
	"sync"

	mdfw "github.com/kocheck/MarkDown-For-What"
)

var _ mdfw.FontService = (*Fonts)(nil)

// Fonts is an in-memory font service. With no restrictions every load
// succeeds; Restrict narrows the catalog so tests can exercise the
// fallback chain. Load is idempotent and safe to call redundantly;
// LoadCount reports how often a pair was requested.
type Fonts struct {
	mu        sync.Mutex
	available map[string]bool // nil = everything available
	loaded    map[string]int
}

// NewFonts creates a font service with an unrestricted catalog.
func NewFonts() *Fonts {
	return &Fonts{loaded: map[string]int{}}
}

// Restrict limits the catalog to the given families. Loads for any other
// family fail with mdfw.ErrFontUnavailable.
func (f *Fonts) Restrict(families ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.available = map[string]bool{}
	for _, fam := range families {
		f.available[fam] = true
	}
}

// Load registers a family/variant pair as loaded.
func (f *Fonts) Load(_ context.Context, family string, variant mdfw.FontVariant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.available != nil && !f.available[family] {
		return fmt.Errorf("load %s %s: %w", family, variant, mdfw.ErrFontUnavailable)
	}
	f.loaded[family+"/"+string(variant)]++
	return nil
}

// LoadCount returns how many times a family/variant pair was loaded.
func (f *Fonts) LoadCount(family string, variant mdfw.FontVariant) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loaded[family+"/"+string(variant)]
}
