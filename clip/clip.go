package clip

import (
	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// FRect is a rectangle with sub-pixel coordinates.
type FRect struct {
	Min f32.Point
	Max f32.Point
}

// HTrack returns a horizontal track running from x0 to x1, centered on y, of
// the given thickness.
func HTrack(x0, x1, y, thickness float32) FRect {
	return FRect{
		Min: f32.Pt(x0, y-thickness/2),
		Max: f32.Pt(x1, y+thickness/2),
	}
}

func (r FRect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

func (r FRect) Path(ops *op.Ops) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	r.IntoPath(&p)
	return p.End()
}

func (r FRect) IntoPath(p *clip.Path) {
	p.MoveTo(r.Min)
	p.LineTo(f32.Pt(r.Max.X, r.Min.Y))
	p.LineTo(r.Max)
	p.LineTo(f32.Pt(r.Min.X, r.Max.Y))
	p.LineTo(r.Min)
}

func (r FRect) Op(ops *op.Ops) clip.Op {
	return clip.Outline{Path: r.Path(ops)}.Op()
}
