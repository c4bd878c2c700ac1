// Package ansi renders extracted blocks to ANSI-styled terminal output
// using lipgloss. It backs the CLI's preview mode: the same blocks and
// flattened segments that drive range computation, drawn for a terminal
// instead of a host document.
package ansi

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mdfw "github.com/kocheck/MarkDown-For-What"
)

// Render draws blocks to ANSI-styled text. Paragraphs and list items are
// word-wrapped to width; code blocks are rendered at full width without
// reflow.
func Render(blocks []mdfw.Block, width int) string {
	if len(blocks) == 0 {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer()
	var buf bytes.Buffer
	for i, block := range blocks {
		r.renderBlock(&buf, block, width)
		if i+1 < len(blocks) && !(block.Kind == mdfw.KindListItem && blocks[i+1].Kind == mdfw.KindListItem) {
			buf.WriteString("\n")
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}

type renderer struct {
	heading lipgloss.Style
	bold    lipgloss.Style
	italic  lipgloss.Style
	code    lipgloss.Style
	muted   lipgloss.Style
}

func newRenderer() *renderer {
	return &renderer{
		heading: lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		bold:    lipgloss.NewStyle().Bold(true),
		italic:  lipgloss.NewStyle().Italic(true),
		code:    lipgloss.NewStyle().Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
	}
}

func (r *renderer) renderBlock(buf *bytes.Buffer, block mdfw.Block, width int) {
	switch block.Kind {
	case mdfw.KindHeading:
		ctx := mdfw.StyleContext{HeaderLevel: block.HeadingLevel}
		styled := r.heading.Render(r.inline(block.Inline, ctx))
		buf.WriteString(lipgloss.NewStyle().Width(width).Render(styled))
		buf.WriteString("\n")

	case mdfw.KindParagraph:
		inline := r.inline(block.Inline, mdfw.StyleContext{})
		buf.WriteString(lipgloss.NewStyle().Width(width).Render(inline))
		buf.WriteString("\n")

	case mdfw.KindListItem:
		ctx := mdfw.StyleContext{ListDepth: block.ListDepth}
		indent := strings.Repeat("  ", block.ListDepth-1)
		marker := "- "
		if block.Ordered {
			marker = fmt.Sprintf("%d. ", block.Ordinal)
		}
		prefix := indent + marker
		itemWidth := width - len(prefix)
		if itemWidth < 10 {
			itemWidth = 10
		}
		wrapped := lipgloss.NewStyle().Width(itemWidth).Render(r.inline(block.Inline, ctx))
		continuation := strings.Repeat(" ", len(prefix))
		for i, line := range strings.Split(wrapped, "\n") {
			if i == 0 {
				buf.WriteString(prefix + line + "\n")
			} else {
				buf.WriteString(continuation + line + "\n")
			}
		}

	case mdfw.KindCode:
		if block.Language != "" {
			buf.WriteString(r.muted.Render(block.Language))
			buf.WriteString("\n")
		}
		gutter := r.muted.Render("│") + " "
		for _, line := range strings.Split(block.RawText, "\n") {
			buf.WriteString(gutter + line)
			buf.WriteString("\n")
		}

	case mdfw.KindQuote:
		gutter := r.muted.Render("│") + " "
		wrapped := lipgloss.NewStyle().Width(width - 2).Render(r.italic.Render(block.RawText))
		for _, line := range strings.Split(wrapped, "\n") {
			buf.WriteString(gutter + line)
			buf.WriteString("\n")
		}

	case mdfw.KindSeparator:
		buf.WriteString(r.muted.Render("---"))
		buf.WriteString("\n")

	default:
		if block.RawText != "" {
			buf.WriteString(block.RawText)
			buf.WriteString("\n")
		}
	}
}

// inline flattens a block's inline tree and styles each segment by its
// context, reusing the exact cascade the range pipeline computes.
func (r *renderer) inline(tokens []mdfw.InlineToken, ctx mdfw.StyleContext) string {
	var sb strings.Builder
	for _, seg := range mdfw.Flatten(tokens, ctx) {
		switch {
		case seg.Context.Code:
			sb.WriteString(r.code.Render(seg.Text))
		case seg.Context.Bold && seg.Context.Italic:
			sb.WriteString(r.bold.Italic(true).Render(seg.Text))
		case seg.Context.Bold:
			sb.WriteString(r.bold.Render(seg.Text))
		case seg.Context.Italic:
			sb.WriteString(r.italic.Render(seg.Text))
		default:
			sb.WriteString(seg.Text)
		}
	}
	return sb.String()
}
