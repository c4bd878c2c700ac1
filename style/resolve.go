package style

import (
	mdfw "github.com/kocheck/MarkDown-For-What"
)

// Heading levels scale the base style's point size; the effective size
// never comes from the heading style's own declared size.
var sizeMultipliers = [4]float64{1.0, 2.0, 1.5, 1.25}

// Resolver picks a concrete font family, variant, and size for a segment's
// style context against a base style name.
type Resolver struct {
	reg *Registry
}

// NewResolver creates a Resolver backed by the given registry.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Registry returns the backing registry so callers can materialize styles
// the resolver itself never consults.
func (r *Resolver) Registry() *Registry {
	return r.reg
}

// Resolve picks the concrete font for one segment. Precedence: code wins
// over everything; then bold+italic, bold, italic, regular — where bold
// can come from the segment's own context or the governing style's
// inherent variant. The size is the base style's size scaled by the
// segment's heading level.
func (r *Resolver) Resolve(ctx mdfw.StyleContext, base mdfw.StyleName) mdfw.ResolvedStyle {
	baseCfg := r.reg.Ensure(base)
	size := baseCfg.SizePt * sizeMultiplier(ctx.HeaderLevel)

	// Code wins outright: monospace regular, bold/italic ignored.
	if ctx.Code {
		code := r.reg.Ensure(mdfw.StyleCode)
		return mdfw.ResolvedStyle{Family: code.Family, Variant: mdfw.VariantRegular, SizePt: size}
	}

	// The governing style contributes family and inherent variant: heading
	// segments inherit H1-H3, list segments inherit List, everything else
	// the base. Emphasis markers only ever add on top of it.
	gov := baseCfg
	switch {
	case ctx.HeaderLevel > 0:
		gov = r.reg.Ensure(mdfw.HeadingStyle(ctx.HeaderLevel))
	case ctx.ListDepth > 0:
		gov = r.reg.Ensure(mdfw.StyleList)
	}

	bold := ctx.Bold || gov.Variant.Bold()
	italic := ctx.Italic || gov.Variant == mdfw.VariantItalic || gov.Variant == mdfw.VariantBoldItalic

	variant := mdfw.VariantRegular
	switch {
	case bold && italic:
		variant = mdfw.VariantBoldItalic
	case bold:
		variant = mdfw.VariantBold
	case italic:
		variant = mdfw.VariantItalic
	}

	return mdfw.ResolvedStyle{Family: gov.Family, Variant: variant, SizePt: size}
}

func sizeMultiplier(headerLevel int) float64 {
	if headerLevel < 0 || headerLevel >= len(sizeMultipliers) {
		return sizeMultipliers[3]
	}
	return sizeMultipliers[headerLevel]
}
