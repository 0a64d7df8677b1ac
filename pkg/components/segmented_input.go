package components

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/hooks"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// SanitizeSegments keeps the letters and digits of s, uppercased, one per
// segment, up to limit segments.
func SanitizeSegments(s string, limit int) []string {
	out := make([]string, 0, min(len(s), max(limit, 0)))
	for _, r := range s {
		if len(out) >= limit {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out = append(out, string(unicode.ToUpper(r)))
		}
	}
	return out
}

// SegmentedInputProps configures a SegmentedInput. A non-nil Value makes the
// code caller-owned; the boxes then show its sanitized characters.
type SegmentedInputProps struct {
	Value        reactive.Accessor[string]
	DefaultValue string
	Length       int
	// SeparatorAfter inserts a separator after every n segments when positive.
	SeparatorAfter int
	Disabled       bool
	Mask           bool
	AriaLabel      string
	OnChange       func(string)
	OnComplete     func(string)
	TestID         string
}

// SegmentedInput is a one-character-per-box code entry, as used for one-time
// passcodes. Focus advances on entry, Backspace walks back, and pasting
// spreads characters across the boxes.
type SegmentedInput struct {
	base
	props SegmentedInputProps
	slots *reactive.Signal[[]string]
	refs  hooks.RefList
}

// segmentsOf spreads value over length boxes.
func segmentsOf(value string, length int) []string {
	out := make([]string, length)
	copy(out, SanitizeSegments(value, length))
	return out
}

// NewSegmentedInput creates a SegmentedInput.
func NewSegmentedInput(scope *reactive.Scope, props SegmentedInputProps) *SegmentedInput {
	s := &SegmentedInput{base: newBase(scope, "SegmentedInput"), props: props}
	if props.Length <= 0 {
		s.warn("length must be positive; rendering nothing")
		s.props.Length = 0
	}
	if props.Value == nil {
		s.slots = reactive.NewSignal(scope, segmentsOf(props.DefaultValue, s.props.Length))
	} else if props.OnChange == nil {
		s.warn("controlled value without a change handler is read-only")
	}
	s.refs = hooks.NewRefList(s.props.Length)
	return s
}

// current returns the authoritative segments, subscribing the caller.
func (s *SegmentedInput) current() []string {
	if s.props.Value != nil {
		return segmentsOf(s.props.Value.Get(), s.props.Length)
	}
	return s.slots.Get()
}

func (s *SegmentedInput) peek() []string {
	var out []string
	s.scope.Runtime().Untrack(func() { out = s.current() })
	return out
}

// Value returns the concatenated segments.
func (s *SegmentedInput) Value() string {
	return strings.Join(s.peek(), "")
}

// Slots returns a copy of the segments.
func (s *SegmentedInput) Slots() []string {
	return append([]string(nil), s.peek()...)
}

// commit proposes next. Uncontrolled segments are stored; a controlled value
// only changes when the caller writes it back.
func (s *SegmentedInput) commit(next []string) {
	prev := s.peek()
	if strings.Join(prev, "\x00") == strings.Join(next, "\x00") {
		return
	}
	if s.slots != nil {
		s.slots.Set(next)
	}
	value := strings.Join(next, "")
	s.emit("on_change", func() {
		if s.props.OnChange != nil {
			s.props.OnChange(value)
		}
	})
	for _, v := range next {
		if v == "" {
			return
		}
	}
	s.emit("on_complete", func() {
		if s.props.OnComplete != nil {
			s.props.OnComplete(value)
		}
	})
}

func (s *SegmentedInput) set(i int, v string) {
	next := s.Slots()
	next[i] = v
	s.commit(next)
}

// paste spreads text over the segments starting at i, or at 0 when the text
// fills every segment, and focuses the box after the last one written.
func (s *SegmentedInput) paste(i int, text string) {
	n := s.props.Length
	chars := SanitizeSegments(text, n)
	if len(chars) == 0 {
		return
	}
	start := i
	if len(chars) >= n {
		start = 0
	}
	next := s.Slots()
	for k, ch := range chars {
		if start+k >= n {
			break
		}
		next[start+k] = ch
	}
	s.commit(next)
	s.refs.Focus(min(start+len(chars), n-1))
}

func (s *SegmentedInput) input(i int) dom.Handler {
	return func(ev *dom.Event) {
		old := s.peek()[i]
		chars := SanitizeSegments(ev.Value, s.props.Length)
		switch {
		case len(chars) == 0:
			s.set(i, "")
		case len(chars) == 1:
			s.set(i, chars[0])
			s.refs.Focus(min(i+1, s.props.Length-1))
		case len(chars) == 2 && chars[0] == old:
			// Typed after an unselected character: keep the new one.
			s.set(i, chars[1])
			s.refs.Focus(min(i+1, s.props.Length-1))
		default:
			s.paste(i, ev.Value)
		}
		// Rejected characters leave the box showing the stored value.
		ev.Target.SetValue(s.peek()[i])
	}
}

func (s *SegmentedInput) keyDown(i int) dom.Handler {
	return func(ev *dom.Event) {
		switch ev.Key {
		case dom.KeyBackspace:
			ev.PreventDefault()
			if s.peek()[i] != "" {
				s.set(i, "")
			} else if i > 0 {
				s.set(i-1, "")
				s.refs.Focus(i - 1)
			}
		case dom.KeyArrowLeft:
			ev.PreventDefault()
			if i > 0 {
				s.refs.Focus(i - 1)
			}
		case dom.KeyArrowRight:
			ev.PreventDefault()
			if i < s.props.Length-1 {
				s.refs.Focus(i + 1)
			}
		}
	}
}

// Render renders the segments.
func (s *SegmentedInput) Render() *dom.Element {
	slots := s.current()
	label := s.props.AriaLabel
	if label == "" {
		label = "Verification code"
	}
	inputType := "text"
	if s.props.Mask {
		inputType = "password"
	}
	nodes := make([]dom.Node, 0, 2*len(slots))
	for i, v := range slots {
		if i > 0 && s.props.SeparatorAfter > 0 && i%s.props.SeparatorAfter == 0 {
			nodes = append(nodes, dom.Span(part("segmented-input", "separator"), dom.Aria("hidden", "true"), dom.Text("-")))
		}
		nodes = append(nodes, dom.Input(
			part("segmented-input", "segment", when(v != "", "filled")),
			dom.Type(inputType),
			dom.Attr("inputmode", "text"),
			dom.Attr("autocomplete", "one-time-code"),
			dom.Attr("maxlength", "1"),
			dom.Value(v),
			dom.Aria("label", "Character "+strconv.Itoa(i+1)+" of "+strconv.Itoa(len(slots))),
			dom.Disabled(s.props.Disabled),
			dom.WithRef(s.refs.At(i)),
			dom.OnInput(s.input(i)),
			dom.OnKeyDown(s.keyDown(i)),
			dom.On(dom.EventPaste, func(ev *dom.Event) {
				ev.PreventDefault()
				s.paste(i, ev.Text)
			}),
			dom.On(dom.EventFocus, func(*dom.Event) { s.refs.At(i).Select() }),
		))
	}
	return dom.Div(
		cls("segmented-input", when(s.props.Disabled, "disabled")),
		dom.Role("group"),
		dom.Aria("label", label),
		dom.TestID(s.props.TestID),
		dom.Group(nodes...),
	)
}
