package theme

import (
	"context"
	"image"
	"image/color"
	rtrace "runtime/trace"

	myclip "honnef.co/go/filterbar/clip"
	"honnef.co/go/filterbar/f32color"
	"honnef.co/go/filterbar/layout"
	"honnef.co/go/filterbar/widget"

	"gioui.org/font"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type TitleCase uint8

const (
	// CaseAsIs displays titles unchanged.
	CaseAsIs TitleCase = iota
	CaseUpper
	CaseTitle
)

func (tc TitleCase) String() string {
	switch tc {
	case CaseAsIs:
		return "as-is"
	case CaseUpper:
		return "upper"
	case CaseTitle:
		return "title"
	default:
		return "unknown"
	}
}

// Apply transforms s according to tc.
func (tc TitleCase) Apply(s string) string {
	switch tc {
	case CaseUpper:
		return cases.Upper(language.Und).String(s)
	case CaseTitle:
		return cases.Title(language.Und).String(s)
	default:
		return s
	}
}

// FilterBarStyle draws a Filter as a row of round buttons joined by a bar,
// with each segment's title below its button.
type FilterBarStyle struct {
	State  *widget.Filter
	Shaper *text.Shaper

	BarBackgroundColor color.NRGBA
	// BarWidth is the thickness of the bar joining the buttons.
	BarWidth unit.Dp

	TitleColor         color.NRGBA
	SelectedTitleColor color.NRGBA
	TitleFont          font.Font
	TextSize           unit.Sp
	TitleCase          TitleCase

	// ButtonSize is the diameter of each button.
	ButtonSize unit.Dp
	// ButtonMargin is the space around each button and between a button and
	// its title.
	ButtonMargin          unit.Dp
	ButtonStrokeWidth     unit.Dp
	ButtonBackgroundColor color.NRGBA
	ButtonStrokeColor     color.NRGBA
}

func FilterBar(th *Theme, state *widget.Filter) FilterBarStyle {
	return FilterBarStyle{
		State:  state,
		Shaper: th.Shaper,

		BarBackgroundColor: th.Palette.FilterBar.Bar,
		BarWidth:           4,

		TitleColor:         th.Palette.Foreground,
		SelectedTitleColor: th.Palette.FilterBar.Selected,
		TextSize:           th.TextSize,

		ButtonSize:            20,
		ButtonMargin:          6,
		ButtonStrokeWidth:     2,
		ButtonBackgroundColor: th.Palette.FilterBar.Button,
		ButtonStrokeColor:     th.Palette.FilterBar.ButtonStroke,
	}
}

func (fb FilterBarStyle) Layout(gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.FilterBarStyle.Layout").End()

	n := fb.State.Len()
	buttonPx := gtx.Dp(fb.ButtonSize)
	marginPx := gtx.Dp(fb.ButtonMargin)

	labels := make([]string, n)
	labelWidths := make([]int, n)
	var widest, labelHeight int
	for i := range labels {
		labels[i] = fb.TitleCase.Apply(fb.State.Title(i))
		dims := textDimensions(gtx, fb.Shaper, fb.TitleFont, fb.TextSize, labels[i])
		labelWidths[i] = dims.Size.X
		widest = max(widest, dims.Size.X)
		labelHeight = max(labelHeight, dims.Size.Y)
	}

	width := max(gtx.Constraints.Min.X, layout.BarWidth(n, buttonPx, marginPx, widest))
	height := 3*marginPx + buttonPx + labelHeight
	size := gtx.Constraints.Constrain(image.Pt(width, height))
	regions := layout.SegmentRects(size.X, size.Y, n)

	return fb.State.Layout(gtx, regions, func(gtx layout.Context) layout.Dimensions {
		disabled := gtx.Queue == nil
		cy := marginPx + buttonPx/2

		if n > 1 {
			first := regions[0].Min.X + regions[0].Dx()/2
			last := regions[n-1].Min.X + regions[n-1].Dx()/2
			track := myclip.HTrack(float32(first), float32(last), float32(cy), float32(gtx.Dp(fb.BarWidth)))
			if !track.Empty() {
				paint.FillShape(gtx.Ops, fb.color(fb.BarBackgroundColor, disabled), track.Op(gtx.Ops))
			}
		}

		for i, r := range regions {
			cx := r.Min.X + r.Dx()/2
			button := image.Rect(cx-buttonPx/2, marginPx, cx-buttonPx/2+buttonPx, marginPx+buttonPx)
			fb.drawButton(gtx, i, button, disabled)

			c := fb.TitleColor
			if i == fb.State.Selected() {
				c = fb.SelectedTitleColor
			}
			x := max(r.Min.X, cx-labelWidths[i]/2)
			stack := op.Offset(image.Pt(x, 2*marginPx+buttonPx)).Push(gtx.Ops)
			lgtx := gtx
			lgtx.Constraints = layout.Constraints{Max: image.Pt(r.Max.X-x, labelHeight)}
			giowidget.Label{MaxLines: 1}.Layout(lgtx, fb.Shaper, fb.TitleFont, fb.TextSize, labels[i], widget.ColorTextMaterial(gtx, fb.color(c, disabled)))
			stack.Pop()
		}

		return layout.Dimensions{Size: size}
	})
}

func (fb FilterBarStyle) drawButton(gtx layout.Context, i int, r image.Rectangle, disabled bool) {
	fill := fb.ButtonBackgroundColor
	if fb.State.Pressed(i) {
		fill = f32color.Pressed(fill, fb.ButtonStrokeColor)
	}
	paint.FillShape(gtx.Ops, fb.color(fill, disabled), clip.Ellipse(r).Op(gtx.Ops))

	if sw := gtx.Dp(fb.ButtonStrokeWidth); sw > 0 {
		stroke := clip.Stroke{Path: clip.Ellipse(r).Path(gtx.Ops), Width: float32(sw)}.Op()
		paint.FillShape(gtx.Ops, fb.color(fb.ButtonStrokeColor, disabled), stroke)
	}

	if i == fb.State.Selected() {
		dot := r.Inset(r.Dx() / 4)
		if !dot.Empty() {
			paint.FillShape(gtx.Ops, fb.color(fb.SelectedTitleColor, disabled), clip.Ellipse(dot).Op(gtx.Ops))
		}
	}
}

func (fb FilterBarStyle) color(c color.NRGBA, disabled bool) color.NRGBA {
	if disabled {
		return f32color.Disabled(c)
	}
	return c
}
