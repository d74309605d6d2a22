package font

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"gioui.org/font"
	"gioui.org/font/gofont"
)

var ErrInvalidFont = errors.New("invalid font")

var (
	once       sync.Once
	collection []font.FontFace
)

func Collection() []font.FontFace {
	once.Do(func() {
		c := gofont.Collection()
		n := len(c)
		collection = c[:n:n]
	})
	return collection
}

var styles = map[string]font.Style{
	"regular": font.Regular,
	"italic":  font.Italic,
}

var weights = map[string]font.Weight{
	"thin":       font.Thin,
	"extralight": font.ExtraLight,
	"light":      font.Light,
	"normal":     font.Normal,
	"medium":     font.Medium,
	"semibold":   font.SemiBold,
	"bold":       font.Bold,
	"extrabold":  font.ExtraBold,
	"black":      font.Black,
}

// Parse parses a font description such as "Go Mono bold italic". Trailing
// words that name a weight or a style set those; the remaining words form the
// typeface. An empty typeface selects the default face.
func Parse(desc string) (font.Font, error) {
	var f font.Font
	words := strings.Fields(desc)
	for len(words) > 0 {
		w := strings.ToLower(words[len(words)-1])
		if s, ok := styles[w]; ok {
			f.Style = s
		} else if wt, ok := weights[w]; ok {
			f.Weight = wt
		} else {
			break
		}
		words = words[:len(words)-1]
	}
	if len(words) == 0 {
		return f, nil
	}

	name := strings.Join(words, " ")
	tf, ok := lookup(name)
	if !ok {
		return font.Font{}, fmt.Errorf("%w: unknown typeface %q", ErrInvalidFont, name)
	}
	f.Typeface = tf
	return f, nil
}

// lookup returns the typeface in the collection whose name matches name,
// ignoring case.
func lookup(name string) (font.Typeface, bool) {
	for _, face := range Collection() {
		if strings.EqualFold(string(face.Font.Typeface), name) {
			return face.Font.Typeface, true
		}
	}
	return "", false
}
