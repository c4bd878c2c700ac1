package mdfw

// StyleName identifies an entry in the document's named style registry.
// The set is closed: these seven names are the only registry keys.
type StyleName string

const (
	StyleH1    StyleName = "H1"
	StyleH2    StyleName = "H2"
	StyleH3    StyleName = "H3"
	StyleBody  StyleName = "Body"
	StyleCode  StyleName = "Code"
	StyleList  StyleName = "List"
	StyleQuote StyleName = "Quote"
)

// HeadingStyle returns the registry name for a clamped heading level (1-3).
func HeadingStyle(level int) StyleName {
	switch level {
	case 1:
		return StyleH1
	case 2:
		return StyleH2
	default:
		return StyleH3
	}
}

// FontVariant selects a weight/slant within a font family.
type FontVariant string

const (
	VariantRegular    FontVariant = "Regular"
	VariantBold       FontVariant = "Bold"
	VariantItalic     FontVariant = "Italic"
	VariantBoldItalic FontVariant = "Bold Italic"
)

// Bold reports whether the variant carries bold weight.
func (v FontVariant) Bold() bool {
	return v == VariantBold || v == VariantBoldItalic
}

// StyleConfig is one named style registry entry. Variant is the style's
// inherent variant: a heading style that is bold by default renders its
// segments bold even without emphasis markers.
type StyleConfig struct {
	Family        string      `yaml:"family"`
	Variant       FontVariant `yaml:"variant"`
	SizePt        float64     `yaml:"size"`
	LineHeightPct float64     `yaml:"lineHeight"`
}

// ResolvedStyle is the concrete font choice for one segment: a loadable
// family/variant pair and the effective point size.
type ResolvedStyle struct {
	Family  string
	Variant FontVariant
	SizePt  float64
}
