package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	mdfw "github.com/kocheck/MarkDown-For-What"
	"github.com/kocheck/MarkDown-For-What/memdoc"
	"github.com/kocheck/MarkDown-For-What/style"
)

func newResolver(t *testing.T) *style.Resolver {
	t.Helper()
	doc := memdoc.New()
	return style.NewResolver(style.NewRegistry(doc.Styles(), nil))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("plain context resolves to regular body", func(t *testing.T) {
		t.Parallel()
		r := newResolver(t)
		got := r.Resolve(mdfw.StyleContext{}, mdfw.StyleBody)
		assert.Equal(t, mdfw.VariantRegular, got.Variant)
		assert.Equal(t, style.DefaultFamily, got.Family)
		assert.Equal(t, 16.0, got.SizePt)
	})

	t.Run("bold context picks the bold variant", func(t *testing.T) {
		t.Parallel()
		r := newResolver(t)
		got := r.Resolve(mdfw.StyleContext{Bold: true}, mdfw.StyleBody)
		assert.Equal(t, mdfw.VariantBold, got.Variant)
	})

	t.Run("bold and italic pick the bold italic variant", func(t *testing.T) {
		t.Parallel()
		r := newResolver(t)
		got := r.Resolve(mdfw.StyleContext{Bold: true, Italic: true}, mdfw.StyleBody)
		assert.Equal(t, mdfw.VariantBoldItalic, got.Variant)
	})

	t.Run("code overrides bold and italic entirely", func(t *testing.T) {
		t.Parallel()
		r := newResolver(t)
		got := r.Resolve(mdfw.StyleContext{Bold: true, Italic: true, Code: true}, mdfw.StyleBody)
		assert.Equal(t, mdfw.VariantRegular, got.Variant)
		assert.Equal(t, "Roboto Mono", got.Family)
	})

	t.Run("heading level scales the base size", func(t *testing.T) {
		t.Parallel()
		r := newResolver(t)
		for level, want := range map[int]float64{1: 32, 2: 24, 3: 20} {
			got := r.Resolve(mdfw.StyleContext{HeaderLevel: level}, mdfw.StyleBody)
			assert.Equal(t, want, got.SizePt, "level %d", level)
		}
	})

	t.Run("heading inherits the heading style's inherent boldness", func(t *testing.T) {
		t.Parallel()
		r := newResolver(t)
		got := r.Resolve(mdfw.StyleContext{HeaderLevel: 1}, mdfw.StyleBody)
		assert.Equal(t, mdfw.VariantBold, got.Variant, "H1 is bold without emphasis markers")
	})

	t.Run("emphasis inside a bold heading adds italic on top", func(t *testing.T) {
		t.Parallel()
		r := newResolver(t)
		got := r.Resolve(mdfw.StyleContext{HeaderLevel: 2, Italic: true}, mdfw.StyleBody)
		assert.Equal(t, mdfw.VariantBoldItalic, got.Variant)
	})

	t.Run("quote base style contributes inherent italic", func(t *testing.T) {
		t.Parallel()
		r := newResolver(t)
		got := r.Resolve(mdfw.StyleContext{}, mdfw.StyleQuote)
		assert.Equal(t, mdfw.VariantItalic, got.Variant)
		assert.Equal(t, 16.0, got.SizePt)
	})

	t.Run("code span inside a heading keeps the heading size", func(t *testing.T) {
		t.Parallel()
		r := newResolver(t)
		got := r.Resolve(mdfw.StyleContext{HeaderLevel: 1, Code: true}, mdfw.StyleBody)
		assert.Equal(t, "Roboto Mono", got.Family)
		assert.Equal(t, 32.0, got.SizePt)
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("first lookup materializes the default entry", func(t *testing.T) {
		t.Parallel()
		doc := memdoc.New()
		reg := style.NewRegistry(doc.Styles(), nil)

		_, ok := doc.Styles().Style(mdfw.StyleBody)
		assert.False(t, ok)
		cfg := reg.Ensure(mdfw.StyleBody)
		stored, ok := doc.Styles().Style(mdfw.StyleBody)
		assert.True(t, ok)
		assert.Equal(t, cfg, stored)
	})

	t.Run("later lookups reuse the stored entry", func(t *testing.T) {
		t.Parallel()
		doc := memdoc.New()
		// A style left behind by a previous run wins over the sheet default.
		doc.Styles().PutStyle(mdfw.StyleBody, mdfw.StyleConfig{Family: "Futura", Variant: mdfw.VariantRegular, SizePt: 18})

		reg := style.NewRegistry(doc.Styles(), nil)
		cfg := reg.Ensure(mdfw.StyleBody)
		assert.Equal(t, "Futura", cfg.Family)
		assert.Equal(t, 18.0, cfg.SizePt)
	})

	t.Run("repeated ensures never create twice", func(t *testing.T) {
		t.Parallel()
		doc := memdoc.New()
		reg := style.NewRegistry(doc.Styles(), nil)
		first := reg.Ensure(mdfw.StyleQuote)
		second := reg.Ensure(mdfw.StyleQuote)
		assert.Equal(t, first, second)
	})
}
