package layout

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/x/outlay"
)

// SegmentRects divides a bar of the given size into n equally wide cells,
// left to right. The last cell absorbs the remainder of the division so that
// the cells cover the bar without gaps.
func SegmentRects(width, height, n int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	cell := width / n
	rects := make([]image.Rectangle, n)
	for i := range rects {
		x0 := i * cell
		x1 := x0 + cell
		if i == n-1 {
			x1 = width
		}
		rects[i] = image.Rect(x0, 0, x1, height)
	}
	return rects
}

// BarWidth returns the narrowest width at which n cells each fit a button of
// size button with margin on either side, as well as the widest label.
func BarWidth(n, button, margin, widestLabel int) int {
	cell := button + 2*margin
	if l := widestLabel + 2*margin; l > cell {
		cell = l
	}
	return n * cell
}

// StatusGrid lays out rows of label/value pairs in two columns. The label
// column is as wide as the widest label.
type StatusGrid struct {
	Grid          outlay.Grid
	RowPadding    int
	ColumnPadding int
}

// Layout lays out rows rows. cell is called once per cell to measure and
// again to draw; col is 0 for labels and 1 for values.
func (sg StatusGrid) Layout(gtx layout.Context, rows int, cell outlay.Cell) layout.Dimensions {
	if rows == 0 {
		return layout.Dimensions{}
	}

	var widths [2]int
	var rowHeight int
	measure := gtx
	// Measurement ops are discarded.
	measure.Ops = new(op.Ops)
	measure.Constraints.Min = image.Point{}
	for row := 0; row < rows; row++ {
		for col := 0; col < 2; col++ {
			dims := cell(measure, row, col)
			if dims.Size.X > widths[col] {
				widths[col] = dims.Size.X
			}
			if dims.Size.Y > rowHeight {
				rowHeight = dims.Size.Y
			}
		}
	}

	dimmer := func(axis layout.Axis, index, constraint int) int {
		switch axis {
		case layout.Vertical:
			return rowHeight + sg.RowPadding
		case layout.Horizontal:
			return widths[index] + sg.ColumnPadding
		default:
			panic("unreachable")
		}
	}

	height := rows*(rowHeight+sg.RowPadding) - sg.RowPadding
	width := widths[0] + widths[1] + 2*sg.ColumnPadding
	gtx.Constraints.Max = gtx.Constraints.Constrain(image.Pt(width, height))
	return sg.Grid.Layout(gtx, rows, 2, dimmer, cell)
}
