package gesture

// Recognizer identifies a kind of gesture handled by some other widget, such
// as an enclosing scrollable list.
type Recognizer uint8

const (
	Click Recognizer = iota
	Drag
	Scroll
)

func (r Recognizer) String() string {
	switch r {
	case Click:
		return "click"
	case Drag:
		return "drag"
	case Scroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Delegate is implemented by widgets that negotiate pointer ownership with
// the gesture handlers around them.
type Delegate interface {
	// ShouldRecognizeSimultaneously reports whether other may keep receiving
	// the same pointer events as the delegate.
	ShouldRecognizeSimultaneously(other Recognizer) bool
}
