package mdfw

// StyleContext carries the cascading emphasis and structure flags
// accumulated while descending an inline token tree. Values are immutable:
// the With* methods return derived copies, so a child's context never leaks
// back into its parent's.
type StyleContext struct {
	Bold        bool
	Italic      bool
	Code        bool
	HeaderLevel int // 0 = not inside a heading, else 1-3
	ListDepth   int // 0 = not inside a list item
}

// WithBold returns a copy of the context with the bold flag set.
func (c StyleContext) WithBold() StyleContext {
	c.Bold = true
	return c
}

// WithItalic returns a copy of the context with the italic flag set.
func (c StyleContext) WithItalic() StyleContext {
	c.Italic = true
	return c
}

// WithCode returns a copy of the context with the code flag set.
func (c StyleContext) WithCode() StyleContext {
	c.Code = true
	return c
}

// StyledSegment is a run of text sharing one style context. A segment's
// text is never split across a style boundary; adjacent segments with the
// same resolved style are not merged.
type StyledSegment struct {
	Text    string
	Context StyleContext
}
