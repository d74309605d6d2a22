// Package config loads filter bar styles and contents from YAML or JSONC
// files.
//
// A file looks like this:
//
//	titles: [All, New, Popular]
//	selected: 0
//	style:
//	  bar_background_color: "#D0D0C0"
//	  bar_width: 4
//	  title_font: Go Mono bold
//	  title_case: upper
//	  button_size: 24
//
// Every style field is optional. Omitted fields keep the theme's defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"honnef.co/go/filterbar/font"
	"honnef.co/go/filterbar/theme"

	"gioui.org/unit"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat = errors.New("unknown config format")
	ErrInvalidColor  = errors.New("invalid color")
	ErrNegativeSize  = errors.New("size must not be negative")
	ErrInvalidCase   = errors.New("invalid title case")
)

type Format uint8

const (
	FormatYAML Format = iota
	FormatJSONC
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSONC, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// File is the contents of a config file.
type File struct {
	Titles   []string `yaml:"titles" json:"titles"`
	Selected int      `yaml:"selected" json:"selected"`
	Style    Style    `yaml:"style" json:"style"`
}

// Style describes the appearance of a filter bar. Colors are written as
// #RRGGBB or #RRGGBBAA, sizes in device-independent pixels, text sizes in
// scaled pixels.
type Style struct {
	BarBackgroundColor string   `yaml:"bar_background_color" json:"bar_background_color"`
	BarWidth           *float32 `yaml:"bar_width" json:"bar_width"`

	TitleColor         string   `yaml:"title_color" json:"title_color"`
	SelectedTitleColor string   `yaml:"selected_title_color" json:"selected_title_color"`
	TitleFont          string   `yaml:"title_font" json:"title_font"`
	TextSize           *float32 `yaml:"text_size" json:"text_size"`
	TitleCase          string   `yaml:"title_case" json:"title_case"`

	ButtonSize            *float32 `yaml:"button_size" json:"button_size"`
	ButtonMargin          *float32 `yaml:"button_margin" json:"button_margin"`
	ButtonStrokeWidth     *float32 `yaml:"button_stroke_width" json:"button_stroke_width"`
	ButtonBackgroundColor string   `yaml:"button_background_color" json:"button_background_color"`
	ButtonStrokeColor     string   `yaml:"button_stroke_color" json:"button_stroke_color"`
}

// Parse decodes a config file. JSONC input may contain comments and trailing
// commas.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing YAML config: %w", err)
		}
	case FormatJSONC:
		if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
			return nil, fmt.Errorf("parsing JSONC config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	return &f, nil
}

// Load reads and parses the config file at path.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ParseColor parses #RRGGBB or #RRGGBBAA. The leading # is optional.
func ParseColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 6 {
		h += "FF"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ParseTitleCase parses "as-is", "upper" or "title". The empty string means
// as-is.
func ParseTitleCase(s string) (theme.TitleCase, error) {
	switch strings.ToLower(s) {
	case "", "as-is", "none":
		return theme.CaseAsIs, nil
	case "upper":
		return theme.CaseUpper, nil
	case "title":
		return theme.CaseTitle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCase, s)
	}
}

// Apply validates s and overrides the corresponding fields of fb. Nothing is
// changed if s is invalid.
func (s Style) Apply(fb *theme.FilterBarStyle) error {
	out := *fb

	colors := []struct {
		name string
		in   string
		out  *color.NRGBA
	}{
		{"bar_background_color", s.BarBackgroundColor, &out.BarBackgroundColor},
		{"title_color", s.TitleColor, &out.TitleColor},
		{"selected_title_color", s.SelectedTitleColor, &out.SelectedTitleColor},
		{"button_background_color", s.ButtonBackgroundColor, &out.ButtonBackgroundColor},
		{"button_stroke_color", s.ButtonStrokeColor, &out.ButtonStrokeColor},
	}
	for _, c := range colors {
		if c.in == "" {
			continue
		}
		v, err := ParseColor(c.in)
		if err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		*c.out = v
	}

	sizes := []struct {
		name string
		in   *float32
		out  *unit.Dp
	}{
		{"bar_width", s.BarWidth, &out.BarWidth},
		{"button_size", s.ButtonSize, &out.ButtonSize},
		{"button_margin", s.ButtonMargin, &out.ButtonMargin},
		{"button_stroke_width", s.ButtonStrokeWidth, &out.ButtonStrokeWidth},
	}
	for _, sz := range sizes {
		if sz.in == nil {
			continue
		}
		if *sz.in < 0 {
			return fmt.Errorf("%s: %w", sz.name, ErrNegativeSize)
		}
		*sz.out = unit.Dp(*sz.in)
	}

	if s.TextSize != nil {
		if *s.TextSize < 0 {
			return fmt.Errorf("text_size: %w", ErrNegativeSize)
		}
		out.TextSize = unit.Sp(*s.TextSize)
	}

	if s.TitleFont != "" {
		f, err := font.Parse(s.TitleFont)
		if err != nil {
			return fmt.Errorf("title_font: %w", err)
		}
		out.TitleFont = f
	}

	tc, err := ParseTitleCase(s.TitleCase)
	if err != nil {
		return fmt.Errorf("title_case: %w", err)
	}
	if s.TitleCase != "" {
		out.TitleCase = tc
	}

	*fb = out
	return nil
}
