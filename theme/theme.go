package theme

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/text"
	"gioui.org/unit"
)

type Theme struct {
	Shaper        *text.Shaper
	Palette       Palette
	TextSize      unit.Sp
	TextSizeLarge unit.Sp

	WindowPadding unit.Dp
	WindowBorder  unit.Dp
}

type Palette struct {
	Background         color.NRGBA
	Foreground         color.NRGBA
	ForegroundDisabled color.NRGBA
	PrimarySelection   color.NRGBA

	Border color.NRGBA

	FilterBar struct {
		Bar          color.NRGBA
		Button       color.NRGBA
		ButtonStroke color.NRGBA
		Selected     color.NRGBA
	}
}

var DefaultPalette = Palette{
	Background:         rgba(0xFFFFEAFF),
	Foreground:         rgba(0x000000FF),
	ForegroundDisabled: rgba(0x727272FF),
	PrimarySelection:   rgba(0xeeee9e99),
	Border:             rgba(0x000000FF),

	FilterBar: struct {
		Bar          color.NRGBA
		Button       color.NRGBA
		ButtonStroke color.NRGBA
		Selected     color.NRGBA
	}{
		Bar:          rgba(0xD0D0C0FF),
		Button:       rgba(0xFFFFFFFF),
		ButtonStroke: rgba(0x808080FF),
		Selected:     rgba(0x478847FF),
	},
}

func NewTheme(fontCollection []font.FontFace) *Theme {
	return &Theme{
		Palette:       DefaultPalette,
		Shaper:        text.NewShaper(text.WithCollection(fontCollection)),
		TextSize:      12,
		TextSizeLarge: 14,

		WindowPadding: 2,
		WindowBorder:  1,
	}
}

func rgba(c uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(c & 0xFF),
		B: uint8(c >> 8 & 0xFF),
		G: uint8(c >> 16 & 0xFF),
		R: uint8(c >> 24 & 0xFF),
	}
}
