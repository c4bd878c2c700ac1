package mdfw

// BlockKind classifies a paragraph-level unit of parsed Markdown.
type BlockKind string

const (
	KindHeading   BlockKind = "heading"
	KindParagraph BlockKind = "paragraph"
	KindListItem  BlockKind = "list_item"
	KindCode      BlockKind = "code"
	KindQuote     BlockKind = "quote"
	KindSeparator BlockKind = "separator"
)

// Block is one paragraph-level unit extracted from a Markdown document.
// Code and separator blocks never carry inline tokens; for them RawText is
// authoritative. For the other kinds Inline is authoritative and RawText is
// the plain-text fallback.
type Block struct {
	Kind         BlockKind
	RawText      string
	HeadingLevel int    // 1-3, heading only
	ListDepth    int    // >=1, list items only
	Ordered      bool   // list items: true for numbered lists
	Ordinal      int    // list items: 1-based number within an ordered list
	Language     string // code only, may be empty
	Inline       []InlineToken
}

// InlineKind classifies a node of a block's inline token tree.
type InlineKind string

const (
	InlineText     InlineKind = "text"
	InlineStrong   InlineKind = "strong"
	InlineEmphasis InlineKind = "em"
	InlineCodeSpan InlineKind = "codespan"
	InlineLink     InlineKind = "link"
)

// InlineToken is one node of a block's inline tree, decoupled from any
// particular Markdown lexer. Strong and emphasis tokens carry children;
// code spans and links are leaves (a link is already downgraded to its
// visible label text by the extractor).
type InlineToken struct {
	Kind     InlineKind
	Text     string
	Children []InlineToken
}
