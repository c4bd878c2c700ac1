// Package goldmark adapts the goldmark Markdown lexer into the engine's
// block model. It is the only package that sees goldmark AST types; every
// block it emits carries a lexer-agnostic inline token tree that the root
// package's Flatten understands.
package goldmark

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	mdfw "github.com/kocheck/MarkDown-For-What"
)

// Extract parses Markdown source and classifies its top-level tokens into
// blocks: one block per heading, paragraph, code fence, quote, and
// separator, and one block per list item (a list of three items yields
// three sibling blocks). Blank tokens are dropped. Malformed input degrades
// to best-effort text extraction; Extract never fails.
//
// Heading depths are clamped to 1-3: the style registry only carries H1-H3,
// so depths 4-6 extract as level 3.
func Extract(source string) []mdfw.Block {
	if source == "" {
		return nil
	}
	src := []byte(source)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	e := &extractor{src: src}
	e.walk(doc)
	return e.blocks
}

// extractor is rebuilt per Extract call, so package-level state never leaks
// between documents.
type extractor struct {
	src    []byte
	blocks []mdfw.Block
}

func (e *extractor) walk(node ast.Node) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		e.extractBlock(c)
	}
}

func (e *extractor) extractBlock(node ast.Node) {
	switch n := node.(type) {
	case *ast.Heading:
		inline := e.inlineTokens(n)
		if len(inline) == 0 {
			return
		}
		e.blocks = append(e.blocks, mdfw.Block{
			Kind:         mdfw.KindHeading,
			HeadingLevel: clampHeading(n.Level),
			RawText:      plainText(inline),
			Inline:       inline,
		})

	case *ast.Paragraph:
		e.appendParagraph(e.inlineTokens(n))

	case *ast.TextBlock:
		e.appendParagraph(e.inlineTokens(n))

	case *ast.FencedCodeBlock:
		raw := e.lines(n)
		if strings.TrimSpace(raw) == "" {
			return
		}
		e.blocks = append(e.blocks, mdfw.Block{
			Kind:     mdfw.KindCode,
			RawText:  raw,
			Language: string(n.Language(e.src)),
		})

	case *ast.CodeBlock:
		raw := e.lines(n)
		if strings.TrimSpace(raw) == "" {
			return
		}
		e.blocks = append(e.blocks, mdfw.Block{Kind: mdfw.KindCode, RawText: raw})

	case *ast.Blockquote:
		// Quotes keep their flattened plain text only; inline styling
		// inside a blockquote is not resolved.
		raw := e.blockText(n)
		if raw == "" {
			return
		}
		e.blocks = append(e.blocks, mdfw.Block{Kind: mdfw.KindQuote, RawText: raw})

	case *ast.List:
		e.extractList(n, 1)

	case *ast.ThematicBreak:
		e.blocks = append(e.blocks, mdfw.Block{Kind: mdfw.KindSeparator})

	case *ast.HTMLBlock:
		raw := strings.TrimSpace(e.lines(n))
		if raw == "" {
			return
		}
		e.blocks = append(e.blocks, mdfw.Block{
			Kind:    mdfw.KindParagraph,
			RawText: raw,
			Inline:  []mdfw.InlineToken{{Kind: mdfw.InlineText, Text: raw}},
		})

	default:
		// Unrecognized containers: recurse so their children still extract.
		e.walk(node)
	}
}

func (e *extractor) appendParagraph(inline []mdfw.InlineToken) {
	if len(inline) == 0 {
		return
	}
	raw := plainText(inline)
	if strings.TrimSpace(raw) == "" {
		return
	}
	e.blocks = append(e.blocks, mdfw.Block{
		Kind:    mdfw.KindParagraph,
		RawText: raw,
		Inline:  inline,
	})
}

// extractList emits one block per list item. A nested list bumps the depth
// and its items become siblings of the enclosing item's block, preserving
// document order.
func (e *extractor) extractList(list *ast.List, depth int) {
	ordered := list.IsOrdered()
	num := list.Start
	if num == 0 {
		num = 1
	}

	for c := list.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}

		var inline []mdfw.InlineToken
		flush := func() {
			if len(inline) == 0 {
				return
			}
			e.blocks = append(e.blocks, mdfw.Block{
				Kind:      mdfw.KindListItem,
				RawText:   plainText(inline),
				ListDepth: depth,
				Ordered:   ordered,
				Ordinal:   num,
				Inline:    inline,
			})
			inline = nil
		}

		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				inline = append(inline, e.inlineTokens(in)...)
			case *ast.List:
				flush()
				e.extractList(in, depth+1)
			default:
				flush()
				e.extractBlock(ic)
			}
		}
		flush()

		if ordered {
			num++
		}
	}
}

func (e *extractor) lines(node ast.Node) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(e.src))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// blockText flattens a container block to plain text, one line per child
// block.
func (e *extractor) blockText(node ast.Node) string {
	var parts []string
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		var part string
		switch n := c.(type) {
		case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
			part = plainText(e.inlineTokens(n))
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			part = e.lines(n)
		default:
			part = e.blockText(c)
		}
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "\n")
}

func clampHeading(level int) int {
	if level > 3 {
		return 3
	}
	if level < 1 {
		return 1
	}
	return level
}
