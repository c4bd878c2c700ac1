package goldmark

import (
	"strings"

	"github.com/yuin/goldmark/ast"

	mdfw "github.com/kocheck/MarkDown-For-What"
)

// inlineTokens converts a node's inline children into the domain token
// tree. Soft line breaks become spaces and hard breaks newlines, folded
// into the preceding text token's content.
func (e *extractor) inlineTokens(node ast.Node) []mdfw.InlineToken {
	var tokens []mdfw.InlineToken
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		tokens = append(tokens, e.inlineToken(c)...)
	}
	return tokens
}

func (e *extractor) inlineToken(node ast.Node) []mdfw.InlineToken {
	switch n := node.(type) {
	case *ast.Text:
		t := string(n.Segment.Value(e.src))
		if n.SoftLineBreak() {
			t += " "
		}
		if n.HardLineBreak() {
			t += "\n"
		}
		if t == "" {
			return nil
		}
		return []mdfw.InlineToken{{Kind: mdfw.InlineText, Text: t}}

	case *ast.String:
		if len(n.Value) == 0 {
			return nil
		}
		return []mdfw.InlineToken{{Kind: mdfw.InlineText, Text: string(n.Value)}}

	case *ast.Emphasis:
		kind := mdfw.InlineEmphasis
		// Level 2 = strong. Goldmark represents ***bold italic*** as
		// nested Emphasis nodes, so level 3+ is not reachable.
		if n.Level >= 2 {
			kind = mdfw.InlineStrong
		}
		return []mdfw.InlineToken{{Kind: kind, Children: e.inlineTokens(n)}}

	case *ast.CodeSpan:
		return []mdfw.InlineToken{{
			Kind: mdfw.InlineCodeSpan,
			Text: plainText(e.inlineTokens(n)),
		}}

	case *ast.Link:
		// The visible label is all that survives; the destination is
		// intentionally dropped.
		return []mdfw.InlineToken{{
			Kind: mdfw.InlineLink,
			Text: plainText(e.inlineTokens(n)),
		}}

	case *ast.AutoLink:
		return []mdfw.InlineToken{{
			Kind: mdfw.InlineLink,
			Text: string(n.URL(e.src)),
		}}

	case *ast.Image:
		alt := plainText(e.inlineTokens(n))
		if alt == "" {
			return nil
		}
		return []mdfw.InlineToken{{Kind: mdfw.InlineLink, Text: alt}}

	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			sb.Write(seg.Value(e.src))
		}
		if sb.Len() == 0 {
			return nil
		}
		return []mdfw.InlineToken{{Kind: mdfw.InlineText, Text: sb.String()}}

	default:
		// Unrecognized inline: recurse so styled children still extract.
		return e.inlineTokens(node)
	}
}

// plainText concatenates a token tree's text content in document order.
func plainText(tokens []mdfw.InlineToken) string {
	var sb strings.Builder
	appendPlain(&sb, tokens)
	return sb.String()
}

func appendPlain(sb *strings.Builder, tokens []mdfw.InlineToken) {
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
		appendPlain(sb, tok.Children)
	}
}
