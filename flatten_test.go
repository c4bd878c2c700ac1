package mdfw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdfw "github.com/kocheck/MarkDown-For-What"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	t.Run("plain text emits one leaf segment", func(t *testing.T) {
		t.Parallel()
		segs := mdfw.Flatten([]mdfw.InlineToken{
			{Kind: mdfw.InlineText, Text: "hello"},
		}, mdfw.StyleContext{})
		require.Len(t, segs, 1)
		assert.Equal(t, "hello", segs[0].Text)
		assert.Equal(t, mdfw.StyleContext{}, segs[0].Context)
	})

	t.Run("strong cascades bold to children", func(t *testing.T) {
		t.Parallel()
		segs := mdfw.Flatten([]mdfw.InlineToken{
			{Kind: mdfw.InlineStrong, Children: []mdfw.InlineToken{
				{Kind: mdfw.InlineText, Text: "loud"},
			}},
		}, mdfw.StyleContext{})
		require.Len(t, segs, 1)
		assert.True(t, segs[0].Context.Bold)
		assert.False(t, segs[0].Context.Italic)
	})

	t.Run("em nested in strong keeps both flags", func(t *testing.T) {
		t.Parallel()
		// **a *b* c**
		segs := mdfw.Flatten([]mdfw.InlineToken{
			{Kind: mdfw.InlineStrong, Children: []mdfw.InlineToken{
				{Kind: mdfw.InlineText, Text: "a "},
				{Kind: mdfw.InlineEmphasis, Children: []mdfw.InlineToken{
					{Kind: mdfw.InlineText, Text: "b"},
				}},
				{Kind: mdfw.InlineText, Text: " c"},
			}},
		}, mdfw.StyleContext{})
		require.Len(t, segs, 3)
		assert.Equal(t, "b", segs[1].Text)
		assert.True(t, segs[1].Context.Bold, "inner em inherits outer bold")
		assert.True(t, segs[1].Context.Italic)
		assert.False(t, segs[0].Context.Italic, "sibling of em stays non-italic")
		assert.False(t, segs[2].Context.Italic)
	})

	t.Run("code span is a leaf with code flag", func(t *testing.T) {
		t.Parallel()
		segs := mdfw.Flatten([]mdfw.InlineToken{
			{Kind: mdfw.InlineCodeSpan, Text: "x := 1"},
		}, mdfw.StyleContext{Bold: true})
		require.Len(t, segs, 1)
		assert.True(t, segs[0].Context.Code)
		assert.True(t, segs[0].Context.Bold, "outer context still cascades")
	})

	t.Run("link is downgraded to its label text", func(t *testing.T) {
		t.Parallel()
		segs := mdfw.Flatten([]mdfw.InlineToken{
			{Kind: mdfw.InlineLink, Text: "click here"},
		}, mdfw.StyleContext{})
		require.Len(t, segs, 1)
		assert.Equal(t, "click here", segs[0].Text)
	})

	t.Run("text with nested tokens recurses", func(t *testing.T) {
		t.Parallel()
		segs := mdfw.Flatten([]mdfw.InlineToken{
			{Kind: mdfw.InlineText, Children: []mdfw.InlineToken{
				{Kind: mdfw.InlineText, Text: "a"},
				{Kind: mdfw.InlineText, Text: "b"},
			}},
		}, mdfw.StyleContext{})
		require.Len(t, segs, 2)
		assert.Equal(t, "a", segs[0].Text)
		assert.Equal(t, "b", segs[1].Text)
	})

	t.Run("unknown kind with text degrades to a leaf", func(t *testing.T) {
		t.Parallel()
		segs := mdfw.Flatten([]mdfw.InlineToken{
			{Kind: "html", Text: "<br>"},
		}, mdfw.StyleContext{})
		require.Len(t, segs, 1)
		assert.Equal(t, "<br>", segs[0].Text)
	})

	t.Run("unknown kind without text is skipped", func(t *testing.T) {
		t.Parallel()
		segs := mdfw.Flatten([]mdfw.InlineToken{
			{Kind: "footnote"},
		}, mdfw.StyleContext{})
		assert.Empty(t, segs)
	})

	t.Run("empty leaves contribute no segments", func(t *testing.T) {
		t.Parallel()
		segs := mdfw.Flatten([]mdfw.InlineToken{
			{Kind: mdfw.InlineText, Text: ""},
			{Kind: mdfw.InlineText, Text: "x"},
		}, mdfw.StyleContext{})
		require.Len(t, segs, 1)
		assert.Equal(t, "x", segs[0].Text)
	})

	t.Run("emission order is document order", func(t *testing.T) {
		t.Parallel()
		segs := mdfw.Flatten([]mdfw.InlineToken{
			{Kind: mdfw.InlineText, Text: "one "},
			{Kind: mdfw.InlineStrong, Children: []mdfw.InlineToken{
				{Kind: mdfw.InlineText, Text: "two"},
			}},
			{Kind: mdfw.InlineText, Text: " three"},
		}, mdfw.StyleContext{})
		require.Len(t, segs, 3)
		assert.Equal(t, "one ", segs[0].Text)
		assert.Equal(t, "two", segs[1].Text)
		assert.Equal(t, " three", segs[2].Text)
	})

	t.Run("is pure: repeat calls yield equal output", func(t *testing.T) {
		t.Parallel()
		tokens := []mdfw.InlineToken{
			{Kind: mdfw.InlineStrong, Children: []mdfw.InlineToken{
				{Kind: mdfw.InlineEmphasis, Children: []mdfw.InlineToken{
					{Kind: mdfw.InlineText, Text: "deep"},
				}},
			}},
			{Kind: mdfw.InlineCodeSpan, Text: "code"},
		}
		ctx := mdfw.StyleContext{ListDepth: 2}
		first := mdfw.Flatten(tokens, ctx)
		second := mdfw.Flatten(tokens, ctx)
		assert.Equal(t, first, second)
	})
}

func TestStyleContext(t *testing.T) {
	t.Parallel()

	t.Run("With methods derive copies", func(t *testing.T) {
		t.Parallel()
		base := mdfw.StyleContext{HeaderLevel: 2}
		derived := base.WithBold().WithItalic().WithCode()
		assert.False(t, base.Bold, "original context untouched")
		assert.True(t, derived.Bold)
		assert.True(t, derived.Italic)
		assert.True(t, derived.Code)
		assert.Equal(t, 2, derived.HeaderLevel, "levels carry through")
	})
}
