package widget

import (
	"context"
	"errors"
	"fmt"
	"image"
	rtrace "runtime/trace"

	"honnef.co/go/filterbar/gesture"
	"honnef.co/go/filterbar/layout"

	"gioui.org/io/pointer"
	"gioui.org/io/semantic"
	"gioui.org/op"
	"gioui.org/op/clip"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

var (
	ErrNoTitles        = errors.New("filter needs at least one title")
	ErrIndexOutOfRange = errors.New("selection index out of range")
)

// SelectionHandler is called when the selected segment of a Filter changes.
type SelectionHandler func(selected int, f *Filter)

// Filter is the state of a bar of mutually exclusive, titled segments. Exactly
// one segment is selected at any time; the first one initially.
//
// A tap on a segment selects it and calls the selection handler, even if the
// segment was already selected. Changing the selection with SetSelected calls
// the handler only if the selection actually changed. Selection changes made
// from within the handler are applied but do not call the handler again.
type Filter struct {
	titles   []string
	selected int
	handler  SelectionHandler

	// notifying is set while the handler runs.
	notifying bool
	changed   bool

	taps gesture.Segments
}

var _ gesture.Delegate = (*Filter)(nil)

// NewFilter returns a filter with one segment per title. The titles are
// copied.
func NewFilter(titles []string) (*Filter, error) {
	if len(titles) == 0 {
		return nil, ErrNoTitles
	}
	return &Filter{
		titles: slices.Clone(titles),
	}, nil
}

// Len returns the number of segments.
func (f *Filter) Len() int { return len(f.titles) }

// Title returns the title of segment i.
func (f *Filter) Title(i int) string { return f.titles[i] }

// Titles returns a copy of the titles.
func (f *Filter) Titles() []string { return slices.Clone(f.titles) }

// Selected returns the index of the selected segment.
func (f *Filter) Selected() int { return f.selected }

// SetSelected selects segment i. Indices outside [0, Len()) are rejected and
// leave the selection unchanged.
func (f *Filter) SetSelected(i int) error {
	if !inRange(i, 0, len(f.titles)) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(f.titles))
	}
	if i == f.selected {
		return nil
	}
	f.selected = i
	f.changed = true
	f.notify()
	return nil
}

// SetSelectionHandler registers fn as the selection handler, replacing any
// previous one. A nil fn removes the handler.
func (f *Filter) SetSelectionHandler(fn SelectionHandler) {
	f.handler = fn
}

// Tracking returns the segment currently being pressed, if any.
func (f *Filter) Tracking() (int, bool) {
	return f.taps.Tracking()
}

// Pressed reports whether segment i is being pressed with the pointer still
// over it.
func (f *Filter) Pressed(i int) bool {
	return f.taps.Pressed(i)
}

// ShouldRecognizeSimultaneously implements gesture.Delegate. A filter that
// is tracking a press claims the pointer. Otherwise it lets enclosing scroll
// and drag handlers see the same events, so that the bar can sit inside a
// scrollable container.
func (f *Filter) ShouldRecognizeSimultaneously(other gesture.Recognizer) bool {
	if _, ok := f.taps.Tracking(); ok {
		return false
	}
	switch other {
	case gesture.Scroll, gesture.Drag:
		return true
	default:
		return false
	}
}

func (f *Filter) notify() {
	if f.handler == nil || f.notifying {
		return
	}
	f.notifying = true
	defer func() { f.notifying = false }()
	f.handler(f.selected, f)
}

// tap selects segment i in response to user input.
func (f *Filter) tap(i int) {
	if !inRange(i, 0, len(f.titles)) {
		return
	}
	if i != f.selected {
		f.selected = i
		f.changed = true
	}
	f.notify()
}

// Update processes pending input and reports whether the selection changed
// since the last call to Update, by user input or by SetSelected.
func (f *Filter) Update(gtx layout.Context) bool {
	for _, ev := range f.taps.Update(gtx.Queue) {
		if ev.Kind == gesture.KindTap {
			f.tap(ev.Segment)
		}
	}
	changed := f.changed
	f.changed = false
	return changed
}

// Layout processes input, draws w, and registers regions as the hit areas of
// the segments, in order. regions must have one entry per title.
func (f *Filter) Layout(gtx layout.Context, regions []image.Rectangle, w layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "widget.Filter.Layout").End()

	if len(regions) != len(f.titles) {
		panic(fmt.Sprintf("got %d regions for %d titles", len(regions), len(f.titles)))
	}

	f.Update(gtx)
	f.taps.Regions = append(f.taps.Regions[:0], regions...)

	m := op.Record(gtx.Ops)
	dims := w(gtx)
	c := m.Stop()

	defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
	semantic.EnabledOp(gtx.Queue != nil).Add(gtx.Ops)
	for i, r := range regions {
		stack := clip.Rect(r).Push(gtx.Ops)
		semantic.RadioButton.Add(gtx.Ops)
		semantic.LabelOp(f.titles[i]).Add(gtx.Ops)
		semantic.SelectedOp(i == f.selected).Add(gtx.Ops)
		pointer.CursorPointer.Add(gtx.Ops)
		stack.Pop()
	}

	_, tracking := f.taps.Tracking()
	if f.ShouldRecognizeSimultaneously(gesture.Scroll) {
		pass := pointer.PassOp{}.Push(gtx.Ops)
		f.taps.Add(gtx.Ops, false)
		pass.Pop()
	} else {
		f.taps.Add(gtx.Ops, tracking)
	}

	c.Add(gtx.Ops)
	return dims
}

func inRange[T constraints.Integer](v, lo, hi T) bool {
	return v >= lo && v < hi
}
