package mdfw

import "context"

// Position is an element's top-left corner in document coordinates.
type Position struct {
	X float64
	Y float64
}

// Element is any named node of the host document the reconciler can see.
// Index is the element's position among its siblings.
type Element interface {
	ID() string
	Name() string
	Position() Position
	Index() int
}

// TextElement is a host element whose text content and per-range font/size
// the engine can write. Host calls may suspend while the host does layout
// or font work, so they take a context.
type TextElement interface {
	Element
	SetText(ctx context.Context, text string) error
	ApplyRange(ctx context.Context, instr RangeInstruction) error
}

// Document is the injected host document API. The engine never reaches for
// the host as ambient global state; everything flows through this interface
// so an in-memory implementation can stand in during tests.
type Document interface {
	// Elements returns every named element in the document, in sibling order.
	Elements() []Element
	// Selection returns the text elements the user currently has selected.
	Selection() []TextElement
	// CreateText inserts a new empty text element at the given position and
	// sibling index.
	CreateText(ctx context.Context, name string, at Position, index int) (TextElement, error)
	// Remove deletes an element from the document.
	Remove(ctx context.Context, el Element) error
	// Styles is the document's named style registry. Styles persist inside
	// the document across runs and are found again by name.
	Styles() StyleStore
}

// StyleStore is name-keyed storage for StyleConfig entries inside the host
// document.
type StyleStore interface {
	Style(name StyleName) (StyleConfig, bool)
	PutStyle(name StyleName, cfg StyleConfig)
}

// FontService loads a font family/variant pair in the host. Load is
// idempotent and safe to call redundantly.
type FontService interface {
	Load(ctx context.Context, family string, variant FontVariant) error
}
