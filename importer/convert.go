package importer

import (
	"fmt"
	"strings"

	mdfw "github.com/kocheck/MarkDown-For-What"
	"github.com/kocheck/MarkDown-For-What/goldmark"
	"github.com/kocheck/MarkDown-For-What/style"
)

// Convert runs one source through the whole pipeline: front-matter strip,
// block extraction, inline flattening, and range computation. The returned
// instructions tile the returned text exactly and, applied in order to a
// freshly written element, reproduce the styled document deterministically.
func (im *Importer) Convert(source string) (string, []mdfw.RangeInstruction) {
	blocks := goldmark.Extract(StripFrontMatter(source))

	var full strings.Builder
	var instrs []mdfw.RangeInstruction

	offset := 0
	for i := range blocks {
		segs, base := im.blockSegments(blocks, i)
		text, blockInstrs := im.resolver.Apply(segs, base)
		for _, in := range blockInstrs {
			in.Start += offset
			in.End += offset
			instrs = append(instrs, in)
		}
		full.WriteString(text)
		offset += style.UTF16Len(text)
	}
	return full.String(), instrs
}

// blockSegments turns one block into its styled segments, including the
// literal prefix and separator characters the block contributes to the
// element's text. Separators ride in their own plain-context segments so
// emphasis ranges stay exactly over the emphasized text.
func (im *Importer) blockSegments(blocks []mdfw.Block, i int) ([]mdfw.StyledSegment, mdfw.StyleName) {
	block := blocks[i]
	switch block.Kind {
	case mdfw.KindHeading:
		ctx := mdfw.StyleContext{HeaderLevel: block.HeadingLevel}
		segs := mdfw.Flatten(block.Inline, ctx)
		segs = append(segs, mdfw.StyledSegment{Text: "\n", Context: ctx})
		return segs, mdfw.StyleBody

	case mdfw.KindParagraph:
		segs := mdfw.Flatten(block.Inline, mdfw.StyleContext{})
		segs = append(segs, mdfw.StyledSegment{Text: "\n\n"})
		return segs, mdfw.StyleBody

	case mdfw.KindListItem:
		ctx := mdfw.StyleContext{ListDepth: block.ListDepth}
		var segs []mdfw.StyledSegment
		segs = append(segs, mdfw.StyledSegment{Text: listPrefix(block), Context: ctx})
		if im.plainLists {
			segs = append(segs, mdfw.StyledSegment{Text: block.RawText, Context: ctx})
		} else {
			segs = append(segs, mdfw.Flatten(block.Inline, ctx)...)
		}
		// The list's trailing blank line lands after its final item.
		suffix := "\n"
		if i+1 >= len(blocks) || blocks[i+1].Kind != mdfw.KindListItem {
			suffix = "\n\n"
		}
		segs = append(segs, mdfw.StyledSegment{Text: suffix})
		return segs, mdfw.StyleBody

	case mdfw.KindCode:
		return []mdfw.StyledSegment{
			{Text: block.RawText, Context: mdfw.StyleContext{Code: true}},
			{Text: "\n\n"},
		}, mdfw.StyleBody

	case mdfw.KindQuote:
		return []mdfw.StyledSegment{
			{Text: block.RawText},
			{Text: "\n\n"},
		}, mdfw.StyleQuote

	case mdfw.KindSeparator:
		return []mdfw.StyledSegment{{Text: "---"}, {Text: "\n\n"}}, mdfw.StyleBody

	default:
		if block.RawText == "" {
			return nil, mdfw.StyleBody
		}
		return []mdfw.StyledSegment{
			{Text: block.RawText},
			{Text: "\n\n"},
		}, mdfw.StyleBody
	}
}

func listPrefix(block mdfw.Block) string {
	indent := strings.Repeat("  ", block.ListDepth-1)
	if block.Ordered {
		return fmt.Sprintf("%s%d. ", indent, block.Ordinal)
	}
	return indent + "• "
}
