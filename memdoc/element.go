package memdoc

import (
	"context"
	"fmt"
	"sync"

	mdfw "github.com/kocheck/MarkDown-For-What"
	"github.com/kocheck/MarkDown-For-What/style"
)

// Text is an in-memory text element. It records the text set on it and
// every range instruction applied, in order, so tests can assert on the
// exact write sequence a conversion produced.
type Text struct {
	doc  *Document
	id   string
	name string
	at   mdfw.Position

	mu      sync.Mutex
	text    string
	applied []mdfw.RangeInstruction
}

// ID returns the element's unique ID.
func (t *Text) ID() string { return t.id }

// Name returns the element's name.
func (t *Text) Name() string { return t.name }

// Position returns the element's position.
func (t *Text) Position() mdfw.Position { return t.at }

// Index returns the element's sibling index, -1 if it was removed.
func (t *Text) Index() int {
	t.doc.mu.Lock()
	defer t.doc.mu.Unlock()
	return t.doc.indexOf(t.id)
}

// SetText replaces the element's content and clears previously applied
// ranges, mirroring a host resetting per-range styling on a fresh write.
func (t *Text) SetText(_ context.Context, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.text = text
	t.applied = nil
	return nil
}

// ApplyRange records one range instruction after bounds-checking it
// against the current text.
func (t *Text) ApplyRange(_ context.Context, instr mdfw.RangeInstruction) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if instr.Start < 0 || instr.End < instr.Start || instr.End > style.UTF16Len(t.text) {
		return fmt.Errorf("range [%d,%d) out of bounds for %d code units", instr.Start, instr.End, style.UTF16Len(t.text))
	}
	t.applied = append(t.applied, instr)
	return nil
}

// Text returns the element's current content.
func (t *Text) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.text
}

// Applied returns the range instructions applied since the last SetText.
func (t *Text) Applied() []mdfw.RangeInstruction {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]mdfw.RangeInstruction(nil), t.applied...)
}

// Shape is an in-memory non-text element.
type Shape struct {
	doc  *Document
	id   string
	name string
	at   mdfw.Position
}

// ID returns the element's unique ID.
func (s *Shape) ID() string { return s.id }

// Name returns the element's name.
func (s *Shape) Name() string { return s.name }

// Position returns the element's position.
func (s *Shape) Position() mdfw.Position { return s.at }

// Index returns the element's sibling index, -1 if it was removed.
func (s *Shape) Index() int {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	return s.doc.indexOf(s.id)
}
