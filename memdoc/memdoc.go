// Package memdoc is an in-memory implementation of the host document
// interfaces. It backs the test suite and the CLI's dry-run mode, standing
// in for a real design-document host.
package memdoc

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	mdfw "github.com/kocheck/MarkDown-For-What"
)

// Interface compliance checks.
var (
	_ mdfw.Document    = (*Document)(nil)
	_ mdfw.TextElement = (*Text)(nil)
	_ mdfw.Element     = (*Shape)(nil)
	_ mdfw.StyleStore  = (*styleStore)(nil)
)

// Document is an in-memory host document: an ordered list of named
// elements, a user selection, and a persistent named style store.
type Document struct {
	mu        sync.Mutex
	elements  []mdfw.Element
	selection []mdfw.TextElement
	styles    *styleStore
}

// New creates an empty document.
func New() *Document {
	return &Document{styles: &styleStore{entries: map[mdfw.StyleName]mdfw.StyleConfig{}}}
}

// AddText appends a named text element and returns it.
func (d *Document) AddText(name string, at mdfw.Position) *Text {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := &Text{doc: d, id: uuid.NewString(), name: name, at: at}
	d.elements = append(d.elements, t)
	return t
}

// AddShape appends a named non-text element, standing in for frames,
// rectangles, and other host node types the reconciler cannot write text
// into.
func (d *Document) AddShape(name string, at mdfw.Position) *Shape {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := &Shape{doc: d, id: uuid.NewString(), name: name, at: at}
	d.elements = append(d.elements, s)
	return s
}

// Select replaces the current selection.
func (d *Document) Select(els ...mdfw.TextElement) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selection = append([]mdfw.TextElement(nil), els...)
}

// Elements returns the document's elements in sibling order.
func (d *Document) Elements() []mdfw.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]mdfw.Element(nil), d.elements...)
}

// Selection returns the currently selected text elements.
func (d *Document) Selection() []mdfw.TextElement {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]mdfw.TextElement(nil), d.selection...)
}

// CreateText inserts a new empty text element at the given sibling index.
func (d *Document) CreateText(_ context.Context, name string, at mdfw.Position, index int) (mdfw.TextElement, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := &Text{doc: d, id: uuid.NewString(), name: name, at: at}
	if index < 0 || index > len(d.elements) {
		index = len(d.elements)
	}
	d.elements = append(d.elements[:index], append([]mdfw.Element{t}, d.elements[index:]...)...)
	return t, nil
}

// Remove deletes an element by ID.
func (d *Document) Remove(_ context.Context, el mdfw.Element) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, e := range d.elements {
		if e.ID() == el.ID() {
			d.elements = append(d.elements[:i], d.elements[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove %q: %w", el.Name(), mdfw.ErrElementGone)
}

// Styles returns the document's style store.
func (d *Document) Styles() mdfw.StyleStore {
	return d.styles
}

func (d *Document) indexOf(id string) int {
	for i, e := range d.elements {
		if e.ID() == id {
			return i
		}
	}
	return -1
}

type styleStore struct {
	mu      sync.Mutex
	entries map[mdfw.StyleName]mdfw.StyleConfig
}

func (s *styleStore) Style(name mdfw.StyleName) (mdfw.StyleConfig, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.entries[name]
	return cfg, ok
}

func (s *styleStore) PutStyle(name mdfw.StyleName, cfg mdfw.StyleConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[name] = cfg
}
