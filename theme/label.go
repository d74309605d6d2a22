package theme

import (
	"image"

	"honnef.co/go/filterbar/layout"

	"gioui.org/font"
	"gioui.org/text"
	"gioui.org/unit"
	"golang.org/x/image/math/fixed"
)

// unboundedWidth is used as the maximum line width when measuring text on a
// single line.
const unboundedWidth = 1 << 24

// textDimensions computes the size of txt laid out on a single line, without
// drawing it.
func textDimensions(gtx layout.Context, lt *text.Shaper, f font.Font, size unit.Sp, txt string) layout.Dimensions {
	lt.LayoutString(text.Parameters{
		Font:     f,
		PxPerEm:  fixed.I(gtx.Sp(size)),
		MaxLines: 1,
		MaxWidth: unboundedWidth,
		Locale:   gtx.Locale,
	}, txt)

	var (
		bounds   image.Rectangle
		baseline int
		first    = true
	)
	for g, ok := lt.NextGlyph(); ok; g, ok = lt.NextGlyph() {
		logical := image.Rectangle{
			Min: image.Pt(g.X.Floor(), int(g.Y)-g.Ascent.Ceil()),
			Max: image.Pt((g.X + g.Advance).Ceil(), int(g.Y)+g.Descent.Ceil()),
		}
		if first {
			first = false
			baseline = int(g.Y)
			bounds = logical
			continue
		}
		bounds = bounds.Union(logical)
	}

	dims := layout.Dimensions{Size: bounds.Size()}
	dims.Baseline = dims.Size.Y - (baseline - bounds.Min.Y)
	return dims
}
