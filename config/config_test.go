package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"honnef.co/go/filterbar/font"
	"honnef.co/go/filterbar/theme"
	"honnef.co/go/filterbar/widget"

	gfont "gioui.org/font"
	"gioui.org/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
titles: [All, New, Popular]
selected: 1
style:
  bar_background_color: "#102030"
  bar_width: 3
  title_color: "#000000"
  selected_title_color: "#FF000080"
  title_font: Go Mono bold
  text_size: 16
  title_case: upper
  button_size: 24
  button_margin: 0
  button_stroke_width: 1.5
  button_background_color: "#FFFFFF"
  button_stroke_color: "#808080"
`

const jsoncConfig = `{
	// Shown left to right.
	"titles": ["All", "New", "Popular"],
	"selected": 1,
	"style": {
		"bar_background_color": "#102030",
		"bar_width": 3,
		"title_color": "#000000",
		"selected_title_color": "#FF000080",
		"title_font": "Go Mono bold",
		"text_size": 16,
		"title_case": "upper",
		"button_size": 24,
		"button_margin": 0,
		"button_stroke_width": 1.5,
		"button_background_color": "#FFFFFF",
		"button_stroke_color": "#808080", /* trailing comma */
	},
}`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadYAMLAndJSONCAgree(t *testing.T) {
	y, err := Load(writeFile(t, "bar.yaml", yamlConfig))
	require.NoError(t, err)
	j, err := Load(writeFile(t, "bar.jsonc", jsoncConfig))
	require.NoError(t, err)

	assert.Equal(t, y, j)
	assert.Equal(t, []string{"All", "New", "Popular"}, y.Titles)
	assert.Equal(t, 1, y.Selected)
	require.NotNil(t, y.Style.ButtonMargin)
	assert.Zero(t, *y.Style.ButtonMargin)
}

func TestLoadUnknownExtension(t *testing.T) {
	_, err := Load(writeFile(t, "bar.toml", ""))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("titles: [unterminated"), FormatYAML)
	assert.Error(t, err)
	_, err = Parse([]byte(`{"titles": 3}`), FormatJSONC)
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want color.NRGBA
	}{
		{"#102030", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}},
		{"10203040", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{"#ffffff", color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
	} {
		got, err := ParseColor(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, in := range []string{"", "#123", "#GGGGGG", "#1020304050"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrInvalidColor, in)
	}
}

func newStyle(t *testing.T) theme.FilterBarStyle {
	t.Helper()
	f, err := widget.NewFilter([]string{"a"})
	require.NoError(t, err)
	return theme.FilterBar(theme.NewTheme(font.Collection()), f)
}

func TestApply(t *testing.T) {
	cfg, err := Parse([]byte(yamlConfig), FormatYAML)
	require.NoError(t, err)

	fb := newStyle(t)
	require.NoError(t, cfg.Style.Apply(&fb))

	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}, fb.BarBackgroundColor)
	assert.Equal(t, unit.Dp(3), fb.BarWidth)
	assert.Equal(t, color.NRGBA{R: 0xFF, A: 0x80}, fb.SelectedTitleColor)
	assert.Equal(t, gfont.Font{Typeface: "Go Mono", Weight: gfont.Bold}, fb.TitleFont)
	assert.Equal(t, unit.Sp(16), fb.TextSize)
	assert.Equal(t, theme.CaseUpper, fb.TitleCase)
	assert.Equal(t, unit.Dp(24), fb.ButtonSize)
	assert.Equal(t, unit.Dp(0), fb.ButtonMargin)
	assert.Equal(t, unit.Dp(1.5), fb.ButtonStrokeWidth)
}

func TestApplyKeepsDefaults(t *testing.T) {
	fb := newStyle(t)
	want := fb
	require.NoError(t, Style{}.Apply(&fb))
	assert.Equal(t, want, fb)
}

func TestApplyInvalidLeavesStyleUnchanged(t *testing.T) {
	negative := float32(-1)
	for _, s := range []Style{
		{BarBackgroundColor: "#10203", TitleColor: "#FFFFFF"},
		{ButtonSize: &negative},
		{TextSize: &negative},
		{TitleFont: "No Such Face"},
		{TitleCase: "sideways"},
	} {
		fb := newStyle(t)
		want := fb
		assert.Error(t, s.Apply(&fb))
		assert.Equal(t, want, fb)
	}
}
