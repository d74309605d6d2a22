// Package gesture recognizes taps on a row of segments.
package gesture

import (
	"image"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/op"
)

const (
	// KindPress is reported when a pointer goes down inside a segment.
	KindPress TapKind = iota
	// KindTap is reported when the pointer that pressed a segment is
	// released inside the same segment.
	KindTap
	// KindCancel is reported when a tracked press ends without a tap,
	// either because it was released elsewhere or because the system
	// cancelled the pointer.
	KindCancel
)

const (
	StateIdle State = iota
	StateTracking
)

type TapKind uint8

func (k TapKind) String() string {
	switch k {
	case KindPress:
		return "press"
	case KindTap:
		return "tap"
	case KindCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

type State uint8

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// TapEvent describes a change in the state of a segment tap.
type TapEvent struct {
	Kind TapKind
	// Segment is the index of the segment the tap started in.
	Segment   int
	Position  image.Point
	Source    pointer.Source
	Modifiers key.Modifiers
}

func (TapEvent) ImplementsEvent() {}

// Segments tracks taps on a set of hit regions. The regions are in the
// coordinate space of the clip area the input op was added in.
//
// A press inside a region starts tracking that region. Only the pointer that
// started tracking can end it. Releasing inside the tracked region completes a
// tap; releasing anywhere else, or having the pointer cancelled, abandons it.
type Segments struct {
	Regions []image.Rectangle

	state   State
	pid     pointer.ID
	segment int
	// inside tracks whether the tracking pointer is currently over the
	// tracked region.
	inside bool
}

// Add the handler to the operation list to receive pointer events. If grab is
// set, the handler requests exclusive ownership of the pointers it receives,
// cancelling other handlers.
func (s *Segments) Add(ops *op.Ops, grab bool) {
	pointer.InputOp{
		Tag:   s,
		Grab:  grab,
		Kinds: pointer.Press | pointer.Release | pointer.Drag | pointer.Cancel,
	}.Add(ops)
}

// State returns the current state of the recognizer.
func (s *Segments) State() State {
	return s.state
}

// Tracking returns the segment that is currently being pressed, if any.
func (s *Segments) Tracking() (int, bool) {
	if s.state != StateTracking {
		return -1, false
	}
	return s.segment, true
}

// Pressed reports whether segment i is being pressed and the pointer is still
// over it.
func (s *Segments) Pressed(i int) bool {
	return s.state == StateTracking && s.segment == i && s.inside
}

// HitTest returns the index of the region containing pt, or -1.
func (s *Segments) HitTest(pt image.Point) int {
	for i, r := range s.Regions {
		if pt.In(r) {
			return i
		}
	}
	return -1
}

// Reset abandons any gesture in progress without reporting an event.
func (s *Segments) Reset() {
	s.state = StateIdle
	s.segment = -1
	s.inside = false
}

// Update processes all pending events for the handler and returns the
// resulting tap events.
func (s *Segments) Update(q event.Queue) []TapEvent {
	if q == nil {
		return nil
	}
	var events []TapEvent
	for _, evt := range q.Events(s) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		if te, ok := s.Feed(e); ok {
			events = append(events, te)
		}
	}
	return events
}

// Feed advances the state machine by a single pointer event. It reports the
// resulting tap event, if any.
func (s *Segments) Feed(e pointer.Event) (TapEvent, bool) {
	pos := e.Position.Round()

	switch e.Kind {
	case pointer.Press:
		if s.state == StateTracking {
			// A second pointer or button while tracking doesn't start a new gesture.
			return TapEvent{}, false
		}
		if e.Source == pointer.Mouse && e.Buttons&pointer.ButtonPrimary == 0 {
			return TapEvent{}, false
		}
		hit := s.HitTest(pos)
		if hit < 0 {
			return TapEvent{}, false
		}
		s.state = StateTracking
		s.pid = e.PointerID
		s.segment = hit
		s.inside = true
		return TapEvent{Kind: KindPress, Segment: hit, Position: pos, Source: e.Source, Modifiers: e.Modifiers}, true

	case pointer.Drag:
		if s.state != StateTracking || e.PointerID != s.pid {
			return TapEvent{}, false
		}
		s.inside = s.HitTest(pos) == s.segment
		return TapEvent{}, false

	case pointer.Release:
		if s.state != StateTracking || e.PointerID != s.pid {
			return TapEvent{}, false
		}
		seg := s.segment
		s.Reset()
		if s.HitTest(pos) == seg {
			return TapEvent{Kind: KindTap, Segment: seg, Position: pos, Source: e.Source, Modifiers: e.Modifiers}, true
		}
		return TapEvent{Kind: KindCancel, Segment: seg, Position: pos, Source: e.Source, Modifiers: e.Modifiers}, true

	case pointer.Cancel:
		if s.state != StateTracking {
			return TapEvent{}, false
		}
		seg := s.segment
		s.Reset()
		return TapEvent{Kind: KindCancel, Segment: seg}, true
	}

	return TapEvent{}, false
}
