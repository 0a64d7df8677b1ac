package dom

import "unicode/utf8"

// Event types the library dispatches.
const (
	EventClick       = "click"
	EventContextMenu = "contextmenu"
	EventMouseDown   = "mousedown"
	EventMouseUp     = "mouseup"
	EventMouseMove   = "mousemove"
	EventMouseEnter  = "mouseenter"
	EventMouseLeave  = "mouseleave"
	EventKeyDown     = "keydown"
	EventKeyUp       = "keyup"
	EventInput       = "input"
	EventChange      = "change"
	EventFocus       = "focus"
	EventBlur        = "blur"
	EventPaste       = "paste"
	EventScroll      = "scroll"
	EventDragOver    = "dragover"
	EventDragLeave   = "dragleave"
	EventDrop        = "drop"
)

var nonBubbling = map[string]bool{
	EventFocus:      true,
	EventBlur:       true,
	EventMouseEnter: true,
	EventMouseLeave: true,
	EventScroll:     true,
}

// Key is a keyboard key: either a named key or a single character.
type Key string

// Named keys.
const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyEnter      Key = "Enter"
	KeyEscape     Key = "Escape"
	KeyBackspace  Key = "Backspace"
	KeyTab        Key = "Tab"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
	KeySpace      Key = " "
)

// Char builds a character key.
func Char(s string) Key { return Key(s) }

// Char returns the character for a character key.
func (k Key) Char() (string, bool) {
	if utf8.RuneCountInString(string(k)) == 1 {
		return string(k), true
	}
	return "", false
}

// Modifiers are the modifier keys held during an event.
type Modifiers struct {
	Ctrl  bool
	Meta  bool
	Shift bool
	Alt   bool
}

// Point is a position in client coordinates.
type Point struct {
	X float64
	Y float64
}

// File describes a file picked or dropped by the user. Contents are never
// read by the library.
type File struct {
	Name string
	Size int64
	Type string
}

// Event is a dispatched UI event.
type Event struct {
	Type          string
	Target        *Element
	CurrentTarget *Element
	Bubbles       bool

	Key       Key
	Modifiers Modifiers
	Client    Point
	Button    int

	// Value is the target's live value at dispatch time for input events.
	Value string
	// Text carries clipboard data for paste events.
	Text  string
	Files []File

	defaultPrevented bool
	stopped          bool
}

// NewEvent creates an event with the standard bubbling behavior for its type.
func NewEvent(eventType string) *Event {
	return &Event{Type: eventType, Bubbles: !nonBubbling[eventType]}
}

// PreventDefault cancels the host's default action.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops the event from reaching further ancestors and the
// document and window listeners.
func (e *Event) StopPropagation() { e.stopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool { return e.stopped }
