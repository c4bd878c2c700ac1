package mdfw

// RangeInstruction applies one resolved style to a half-open offset span of
// a text element's content. Offsets are measured in UTF-16 code units, the
// unit host text APIs index by. A conversion's instructions tile
// [0, len(fullText)) exactly: no gaps, no overlaps, ascending order.
type RangeInstruction struct {
	Start int
	End   int
	Style ResolvedStyle
}

// Len returns the span's width in UTF-16 code units.
func (ri RangeInstruction) Len() int { return ri.End - ri.Start }
