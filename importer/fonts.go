package importer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	mdfw "github.com/kocheck/MarkDown-For-What"
)

type fontKey struct {
	family  string
	variant mdfw.FontVariant
}

// loadFonts loads every distinct family/variant the instructions reference
// and rewrites instructions whose font had to fall back. The chain per
// font: the configured family, then the fallback family at the same
// variant, then the fallback family regular. Only a host that cannot load
// even the plain fallback fails the task.
func (im *Importer) loadFonts(ctx context.Context, instrs []mdfw.RangeInstruction) ([]mdfw.RangeInstruction, error) {
	loaded := map[fontKey]fontKey{}
	for i := range instrs {
		want := fontKey{instrs[i].Style.Family, instrs[i].Style.Variant}
		got, ok := loaded[want]
		if !ok {
			var err error
			got, err = im.loadWithFallback(ctx, want)
			if err != nil {
				return nil, err
			}
			loaded[want] = got
		}
		instrs[i].Style.Family = got.family
		instrs[i].Style.Variant = got.variant
	}
	return instrs, nil
}

func (im *Importer) loadWithFallback(ctx context.Context, want fontKey) (fontKey, error) {
	err := im.fonts.Load(ctx, want.family, want.variant)
	if err == nil {
		return want, nil
	}
	im.log.Debug("font unavailable, falling back",
		zap.String("family", want.family),
		zap.String("variant", string(want.variant)),
		zap.Error(err))

	if want.family != im.fallback {
		sub := fontKey{im.fallback, want.variant}
		if err := im.fonts.Load(ctx, sub.family, sub.variant); err == nil {
			return sub, nil
		}
	}

	plain := fontKey{im.fallback, mdfw.VariantRegular}
	if err := im.fonts.Load(ctx, plain.family, plain.variant); err != nil {
		return fontKey{}, fmt.Errorf("load fallback font %s: %w", plain.family, err)
	}
	return plain, nil
}
