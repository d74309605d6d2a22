package theme

import (
	"image"
	"testing"

	"honnef.co/go/filterbar/font"
	"honnef.co/go/filterbar/layout"
	"honnef.co/go/filterbar/widget"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queue struct {
	events []event.Event
}

func (q *queue) Events(event.Tag) []event.Event {
	evs := q.events
	q.events = nil
	return evs
}

func newContext(q event.Queue, max image.Point) layout.Context {
	return layout.Context{
		Ops:         new(op.Ops),
		Queue:       q,
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Constraints{Max: max},
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "popular items", CaseAsIs.Apply("popular items"))
	assert.Equal(t, "POPULAR ITEMS", CaseUpper.Apply("popular items"))
	assert.Equal(t, "Popular Items", CaseTitle.Apply("popular items"))
}

func TestFilterBarDimensions(t *testing.T) {
	th := NewTheme(font.Collection())
	f, err := widget.NewFilter([]string{"All", "New", "Popular"})
	require.NoError(t, err)

	gtx := newContext(&queue{}, image.Pt(1000, 1000))
	fb := FilterBar(th, f)
	dims := fb.Layout(gtx)

	// Three cells, each at least as wide as a button plus its margins.
	assert.GreaterOrEqual(t, dims.Size.X, 3*(20+2*6))
	// Margins, a button, and a line of text.
	assert.Greater(t, dims.Size.Y, 3*6+20)
	assert.LessOrEqual(t, dims.Size.X, 1000)
}

func TestFilterBarFillsMinWidth(t *testing.T) {
	th := NewTheme(font.Collection())
	f, err := widget.NewFilter([]string{"All", "New"})
	require.NoError(t, err)

	gtx := newContext(&queue{}, image.Pt(800, 200))
	gtx.Constraints.Min.X = 800
	dims := FilterBar(th, f).Layout(gtx)
	assert.Equal(t, 800, dims.Size.X)
}

func TestFilterBarTapSelects(t *testing.T) {
	th := NewTheme(font.Collection())
	f, err := widget.NewFilter([]string{"All", "New", "Popular"})
	require.NoError(t, err)

	var got []int
	f.SetSelectionHandler(func(selected int, _ *widget.Filter) {
		got = append(got, selected)
	})

	q := &queue{}
	gtx := newContext(q, image.Pt(300, 200))
	gtx.Constraints.Min.X = 300
	dims := FilterBar(th, f).Layout(gtx)
	require.Equal(t, 300, dims.Size.X)

	// The middle third belongs to the second segment.
	q.events = []event.Event{
		pointer.Event{Kind: pointer.Press, Source: pointer.Touch, Position: f32.Pt(150, 5)},
		pointer.Event{Kind: pointer.Release, Source: pointer.Touch, Position: f32.Pt(160, 5)},
	}
	gtx.Ops.Reset()
	FilterBar(th, f).Layout(gtx)

	assert.Equal(t, []int{1}, got)
	assert.Equal(t, 1, f.Selected())
}

func TestFilterBarDisabled(t *testing.T) {
	th := NewTheme(font.Collection())
	f, err := widget.NewFilter([]string{"Only"})
	require.NoError(t, err)

	// A nil queue disables the widget; layout must still succeed.
	gtx := newContext(nil, image.Pt(200, 200))
	dims := FilterBar(th, f).Layout(gtx)
	assert.Positive(t, dims.Size.X)
}
