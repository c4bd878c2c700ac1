package mdfw

// Flatten walks an inline token tree in document order and emits the styled
// segments it describes. The context cascades: strong and emphasis tokens
// flatten their children with the corresponding flag added, so `**a *b* c**`
// yields a segment "b" with both bold and italic set. Flatten is pure — it
// builds a fresh slice per call and never touches shared state.
func Flatten(tokens []InlineToken, ctx StyleContext) []StyledSegment {
	var segs []StyledSegment
	for _, tok := range tokens {
		segs = append(segs, flattenToken(tok, ctx)...)
	}
	return segs
}

func flattenToken(tok InlineToken, ctx StyleContext) []StyledSegment {
	switch tok.Kind {
	case InlineStrong:
		return Flatten(tok.Children, ctx.WithBold())

	case InlineEmphasis:
		return Flatten(tok.Children, ctx.WithItalic())

	case InlineCodeSpan:
		// Code spans are leaves: emphasis markers inside backticks are literal.
		return leaf(tok.Text, ctx.WithCode())

	case InlineText:
		if len(tok.Children) > 0 {
			return Flatten(tok.Children, ctx)
		}
		return leaf(tok.Text, ctx)

	case InlineLink:
		// Only the visible label survives; hyperlink semantics are out of scope.
		return leaf(tok.Text, ctx)

	default:
		// Unknown kinds degrade to their plain text, or are skipped entirely.
		if tok.Text != "" {
			return leaf(tok.Text, ctx)
		}
		return Flatten(tok.Children, ctx)
	}
}

func leaf(text string, ctx StyleContext) []StyledSegment {
	if text == "" {
		return nil
	}
	return []StyledSegment{{Text: text, Context: ctx}}
}
