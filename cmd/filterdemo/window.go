package main

import (
	"context"
	"fmt"
	"image"
	rtrace "runtime/trace"

	mylayout "honnef.co/go/filterbar/layout"
	"honnef.co/go/filterbar/theme"
	"honnef.co/go/filterbar/widget"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	giowidget "gioui.org/widget"
)

type MainWindow struct {
	theme  *theme.Theme
	filter *widget.Filter
	style  theme.FilterBarStyle

	// taps counts calls of the selection handler.
	taps int
}

func NewMainWindow(th *theme.Theme, filter *widget.Filter, style theme.FilterBarStyle) *MainWindow {
	return &MainWindow{
		theme:  th,
		filter: filter,
		style:  style,
	}
}

func (mwin *MainWindow) Run(win *app.Window) error {
	var ops op.Ops
	for e := range win.Events() {
		switch ev := e.(type) {
		case system.DestroyEvent:
			return ev.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, ev)
			mwin.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
	return nil
}

// status returns the label and value of row i of the status grid.
func (mwin *MainWindow) status(row int) (string, string) {
	switch row {
	case 0:
		sel := mwin.filter.Selected()
		return "Selected", fmt.Sprintf("%d (%s)", sel, mwin.filter.Title(sel))
	case 1:
		if seg, ok := mwin.filter.Tracking(); ok {
			return "Pressing", mwin.filter.Title(seg)
		}
		return "Pressing", "nothing"
	case 2:
		return "Handler calls", fmt.Sprint(mwin.taps)
	default:
		panic("unreachable")
	}
}

const statusRows = 3

func (mwin *MainWindow) Layout(gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "main.MainWindow.Layout").End()

	th := mwin.theme
	return widget.Background{Color: th.Palette.Background}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min = gtx.Constraints.Max
		return layout.UniformInset(th.WindowPadding*4).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return widget.Bordered{Color: th.Palette.Border, Width: th.WindowBorder}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						gtx.Constraints.Min.Y = 0
						return mwin.style.Layout(gtx)
					})
				}),
				layout.Rigid(layout.Spacer{Height: th.WindowPadding * 4}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Min = image.Point{}
					grid := mylayout.StatusGrid{ColumnPadding: gtx.Dp(8)}
					return grid.Layout(gtx, statusRows, func(gtx layout.Context, row, col int) layout.Dimensions {
						label, value := mwin.status(row)
						txt := label
						if col == 1 {
							txt = value
						}
						material := widget.ColorTextMaterial(gtx, th.Palette.Foreground)
						return giowidget.Label{MaxLines: 1}.Layout(gtx, th.Shaper, mwin.style.TitleFont, th.TextSizeLarge, txt, material)
					})
				}),
			)
		})
	})
}
