package style

import (
	"strings"

	mdfw "github.com/kocheck/MarkDown-For-What"
)

// Apply concatenates the segments' texts and computes one range
// instruction per non-empty segment against the base style. Offsets are
// UTF-16 code units — the unit host text APIs index by — so the
// instructions tile [0, UTF16Len(fullText)) exactly, in ascending order.
// Apply is deterministic: equal inputs always produce equal output.
func (r *Resolver) Apply(segments []mdfw.StyledSegment, base mdfw.StyleName) (string, []mdfw.RangeInstruction) {
	var sb strings.Builder
	var instrs []mdfw.RangeInstruction

	cursor := 0
	for _, seg := range segments {
		if seg.Text == "" {
			// Zero-width ranges are never emitted.
			continue
		}
		n := UTF16Len(seg.Text)
		sb.WriteString(seg.Text)
		instrs = append(instrs, mdfw.RangeInstruction{
			Start: cursor,
			End:   cursor + n,
			Style: r.Resolve(seg.Context, base),
		})
		cursor += n
	}
	return sb.String(), instrs
}

// UTF16Len returns the length of s in UTF-16 code units. Runes outside the
// Basic Multilingual Plane occupy a surrogate pair.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r > 0xFFFF {
			n++
		}
	}
	return n
}
