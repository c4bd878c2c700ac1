// Package style resolves concrete fonts for styled segments and computes
// the range instructions that reproduce a conversion inside a host text
// element.
package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	mdfw "github.com/kocheck/MarkDown-For-What"
)

// Sheet maps the closed set of registry names to their style configuration.
// It seeds the document's style registry on first use of each name.
type Sheet map[mdfw.StyleName]mdfw.StyleConfig

// DefaultFamily is the fallback font family used when a configured family
// cannot be loaded in the host.
const DefaultFamily = "Inter"

// DefaultSheet returns the built-in style table. Heading sizes follow the
// Body size multipliers (H1 2x, H2 1.5x, H3 1.25x) so the declared and
// effective sizes agree out of the box.
func DefaultSheet() Sheet {
	return Sheet{
		mdfw.StyleH1:    {Family: DefaultFamily, Variant: mdfw.VariantBold, SizePt: 32, LineHeightPct: 120},
		mdfw.StyleH2:    {Family: DefaultFamily, Variant: mdfw.VariantBold, SizePt: 24, LineHeightPct: 120},
		mdfw.StyleH3:    {Family: DefaultFamily, Variant: mdfw.VariantBold, SizePt: 20, LineHeightPct: 120},
		mdfw.StyleBody:  {Family: DefaultFamily, Variant: mdfw.VariantRegular, SizePt: 16, LineHeightPct: 150},
		mdfw.StyleCode:  {Family: "Roboto Mono", Variant: mdfw.VariantRegular, SizePt: 14, LineHeightPct: 140},
		mdfw.StyleList:  {Family: DefaultFamily, Variant: mdfw.VariantRegular, SizePt: 16, LineHeightPct: 150},
		mdfw.StyleQuote: {Family: DefaultFamily, Variant: mdfw.VariantItalic, SizePt: 16, LineHeightPct: 150},
	}
}

// LoadSheet reads a YAML style sheet and overlays it onto the defaults.
// Only the seven registry names are accepted as keys; entries omit fields
// they don't override.
//
//	Body:
//	  family: Futura
//	  size: 18
func LoadSheet(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style sheet: %w", err)
	}
	return ParseSheet(data)
}

// ParseSheet parses YAML style sheet bytes and overlays them onto the
// defaults.
func ParseSheet(data []byte) (Sheet, error) {
	var raw map[string]partialConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse style sheet: %w", err)
	}

	sheet := DefaultSheet()
	for name, p := range raw {
		key := mdfw.StyleName(name)
		base, ok := sheet[key]
		if !ok {
			return nil, fmt.Errorf("unknown style name %q", name)
		}
		sheet[key] = p.overlay(base)
	}
	return sheet, nil
}

// partialConfig mirrors StyleConfig with pointer fields so absent YAML keys
// keep the default value.
type partialConfig struct {
	Family        *string           `yaml:"family"`
	Variant       *mdfw.FontVariant `yaml:"variant"`
	SizePt        *float64          `yaml:"size"`
	LineHeightPct *float64          `yaml:"lineHeight"`
}

func (p partialConfig) overlay(base mdfw.StyleConfig) mdfw.StyleConfig {
	if p.Family != nil {
		base.Family = *p.Family
	}
	if p.Variant != nil {
		base.Variant = *p.Variant
	}
	if p.SizePt != nil {
		base.SizePt = *p.SizePt
	}
	if p.LineHeightPct != nil {
		base.LineHeightPct = *p.LineHeightPct
	}
	return base
}
