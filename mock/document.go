// Package mock provides test doubles for mdfw interfaces using function fields.
package mock

import (
	"context"

	mdfw "github.com/kocheck/MarkDown-For-What"
)

// Interface compliance checks.
var (
	_ mdfw.Document    = (*Document)(nil)
	_ mdfw.TextElement = (*TextElement)(nil)
	_ mdfw.FontService = (*FontService)(nil)
	_ mdfw.StyleStore  = (*StyleStore)(nil)
)

// Document is a test double for mdfw.Document.
// Set the function fields for the methods you need.
type Document struct {
	ElementsFn   func() []mdfw.Element
	SelectionFn  func() []mdfw.TextElement
	CreateTextFn func(ctx context.Context, name string, at mdfw.Position, index int) (mdfw.TextElement, error)
	RemoveFn     func(ctx context.Context, el mdfw.Element) error
	StylesFn     func() mdfw.StyleStore
}

// Elements delegates to ElementsFn.
func (d *Document) Elements() []mdfw.Element {
	return d.ElementsFn()
}

// Selection delegates to SelectionFn.
func (d *Document) Selection() []mdfw.TextElement {
	return d.SelectionFn()
}

// CreateText delegates to CreateTextFn.
func (d *Document) CreateText(ctx context.Context, name string, at mdfw.Position, index int) (mdfw.TextElement, error) {
	return d.CreateTextFn(ctx, name, at, index)
}

// Remove delegates to RemoveFn.
func (d *Document) Remove(ctx context.Context, el mdfw.Element) error {
	return d.RemoveFn(ctx, el)
}

// Styles delegates to StylesFn.
func (d *Document) Styles() mdfw.StyleStore {
	return d.StylesFn()
}

// TextElement is a test double for mdfw.TextElement.
type TextElement struct {
	IDFn         func() string
	NameFn       func() string
	PositionFn   func() mdfw.Position
	IndexFn      func() int
	SetTextFn    func(ctx context.Context, text string) error
	ApplyRangeFn func(ctx context.Context, instr mdfw.RangeInstruction) error
}

// ID delegates to IDFn.
func (e *TextElement) ID() string {
	return e.IDFn()
}

// Name delegates to NameFn.
func (e *TextElement) Name() string {
	return e.NameFn()
}

// Position delegates to PositionFn.
func (e *TextElement) Position() mdfw.Position {
	return e.PositionFn()
}

// Index delegates to IndexFn.
func (e *TextElement) Index() int {
	return e.IndexFn()
}

// SetText delegates to SetTextFn.
func (e *TextElement) SetText(ctx context.Context, text string) error {
	return e.SetTextFn(ctx, text)
}

// ApplyRange delegates to ApplyRangeFn.
func (e *TextElement) ApplyRange(ctx context.Context, instr mdfw.RangeInstruction) error {
	return e.ApplyRangeFn(ctx, instr)
}

// FontService is a test double for mdfw.FontService.
type FontService struct {
	LoadFn func(ctx context.Context, family string, variant mdfw.FontVariant) error
}

// Load delegates to LoadFn.
func (f *FontService) Load(ctx context.Context, family string, variant mdfw.FontVariant) error {
	return f.LoadFn(ctx, family, variant)
}

// StyleStore is a test double for mdfw.StyleStore.
type StyleStore struct {
	StyleFn    func(name mdfw.StyleName) (mdfw.StyleConfig, bool)
	PutStyleFn func(name mdfw.StyleName, cfg mdfw.StyleConfig)
}

// Style delegates to StyleFn.
func (s *StyleStore) Style(name mdfw.StyleName) (mdfw.StyleConfig, bool) {
	return s.StyleFn(name)
}

// PutStyle delegates to PutStyleFn.
func (s *StyleStore) PutStyle(name mdfw.StyleName, cfg mdfw.StyleConfig) {
	s.PutStyleFn(name, cfg)
}
