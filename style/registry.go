package style

import (
	"sync"

	mdfw "github.com/kocheck/MarkDown-For-What"
)

// Registry materializes named styles in a document's style store with
// create-or-reuse semantics: the first lookup of a name writes the sheet's
// default for it, every later lookup returns the stored entry — including
// entries a previous run left in the document. The mutex keeps
// materialization atomic per name if callers ever resolve concurrently.
type Registry struct {
	mu       sync.Mutex
	store    mdfw.StyleStore
	defaults Sheet
}

// NewRegistry wraps a document's style store. A nil sheet means the
// built-in defaults.
func NewRegistry(store mdfw.StyleStore, defaults Sheet) *Registry {
	if defaults == nil {
		defaults = DefaultSheet()
	}
	return &Registry{store: store, defaults: defaults}
}

// Ensure returns the named style, creating it from the sheet on first use.
func (r *Registry) Ensure(name mdfw.StyleName) mdfw.StyleConfig {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.store.Style(name); ok {
		return cfg
	}
	cfg, ok := r.defaults[name]
	if !ok {
		cfg = r.defaults[mdfw.StyleBody]
	}
	r.store.PutStyle(name, cfg)
	return cfg
}
