package domtest

import (
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
)

func focusable(el *dom.Element) bool {
	switch el.Tag {
	case "button", "input", "textarea", "select":
		return !el.HasAttribute("disabled")
	}
	return el.HasAttribute("tabindex")
}

// Click performs mousedown, a focus change to the nearest focusable ancestor
// (or nothing), mouseup and click. When a step re-renders, the rest of the
// gesture follows el to its counterpart in the new tree; the test fails if
// there is none.
func (tt *Tester) Click(el *dom.Element) *dom.Event {
	tt.t.Helper()
	path := tt.doc.PathOf(el)
	follow := func() *dom.Element {
		tt.t.Helper()
		next := tt.doc.Relocate(el, path)
		require.NotNil(tt.t, next, "click target %q left the tree mid-gesture", el.Tag)
		path = tt.doc.PathOf(next)
		return next
	}

	down := tt.event(dom.EventMouseDown, el, nil)
	el = follow()
	if !down.DefaultPrevented() {
		target := dom.Closest(el, focusable)
		tt.rt.Do(func() { tt.doc.SetFocus(target) })
		el = follow()
	}
	tt.event(dom.EventMouseUp, el, nil)
	el = follow()
	return tt.event(dom.EventClick, el, nil)
}

// RightClick dispatches contextmenu at a client position.
func (tt *Tester) RightClick(el *dom.Element, at dom.Point) *dom.Event {
	tt.t.Helper()
	return tt.event(dom.EventContextMenu, el, func(e *dom.Event) {
		e.Client = at
		e.Button = 2
	})
}

// KeyDown dispatches keydown without any default action. A nil target means
// the focused element, or the body.
func (tt *Tester) KeyDown(el *dom.Element, key dom.Key, mods ...dom.Modifiers) *dom.Event {
	tt.t.Helper()
	if el == nil {
		el = tt.doc.ActiveElement()
	}
	return tt.event(dom.EventKeyDown, el, func(e *dom.Event) {
		e.Key = key
		if len(mods) > 0 {
			e.Modifiers = mods[0]
		}
	})
}

// Press dispatches keydown and, unless prevented, performs the default
// editing action on text controls: character keys insert, Backspace deletes.
// Inserting into a fully selected control replaces its content.
func (tt *Tester) Press(el *dom.Element, key dom.Key, mods ...dom.Modifiers) *dom.Event {
	tt.t.Helper()
	if el == nil {
		el = tt.doc.ActiveElement()
	}
	ev := tt.KeyDown(el, key, mods...)
	if ev.DefaultPrevented() || el == nil || !tt.doc.Contains(el) || !editable(el) {
		return ev
	}
	if len(mods) > 0 && (mods[0].Ctrl || mods[0].Meta) {
		return ev
	}

	current := el.Value()
	if el.SelectedAll() {
		current = ""
	}
	if ch, ok := key.Char(); ok {
		tt.Input(el, current+ch)
	} else if key == dom.KeyBackspace {
		if current != "" {
			_, size := utf8.DecodeLastRuneInString(current)
			current = current[:len(current)-size]
		}
		tt.Input(el, current)
	}
	return ev
}

// Type presses each character of text in turn.
func (tt *Tester) Type(el *dom.Element, text string) {
	tt.t.Helper()
	for _, r := range text {
		if el == nil || !tt.doc.Contains(el) {
			el = tt.doc.ActiveElement()
		}
		tt.Press(el, dom.Char(string(r)))
	}
}

// Input replaces a control's value and dispatches input.
func (tt *Tester) Input(el *dom.Element, value string) *dom.Event {
	tt.t.Helper()
	el.SetValue(value)
	return tt.event(dom.EventInput, el, nil)
}

// Paste dispatches paste with clipboard text. Unless prevented, the text is
// inserted and an input event follows.
func (tt *Tester) Paste(el *dom.Element, text string) *dom.Event {
	tt.t.Helper()
	ev := tt.event(dom.EventPaste, el, func(e *dom.Event) { e.Text = text })
	if ev.DefaultPrevented() || !tt.doc.Contains(el) || !editable(el) {
		return ev
	}
	current := el.Value()
	if el.SelectedAll() {
		current = ""
	}
	tt.Input(el, current+text)
	return ev
}

// Focus moves focus to el.
func (tt *Tester) Focus(el *dom.Element) {
	tt.t.Helper()
	tt.rt.Do(func() { tt.doc.SetFocus(el) })
}

// Blur removes focus from whatever holds it.
func (tt *Tester) Blur() {
	tt.t.Helper()
	tt.rt.Do(func() { tt.doc.SetFocus(nil) })
}

// MouseEnter dispatches mouseenter.
func (tt *Tester) MouseEnter(el *dom.Element) *dom.Event {
	tt.t.Helper()
	return tt.event(dom.EventMouseEnter, el, nil)
}

// MouseLeave dispatches mouseleave.
func (tt *Tester) MouseLeave(el *dom.Element) *dom.Event {
	tt.t.Helper()
	return tt.event(dom.EventMouseLeave, el, nil)
}

// MouseMove dispatches mousemove at a client position.
func (tt *Tester) MouseMove(el *dom.Element, at dom.Point) *dom.Event {
	tt.t.Helper()
	return tt.event(dom.EventMouseMove, el, func(e *dom.Event) { e.Client = at })
}

// MouseDown dispatches mousedown at a client position.
func (tt *Tester) MouseDown(el *dom.Element, at dom.Point) *dom.Event {
	tt.t.Helper()
	return tt.event(dom.EventMouseDown, el, func(e *dom.Event) { e.Client = at })
}

// MouseUp dispatches mouseup at a client position.
func (tt *Tester) MouseUp(el *dom.Element, at dom.Point) *dom.Event {
	tt.t.Helper()
	return tt.event(dom.EventMouseUp, el, func(e *dom.Event) { e.Client = at })
}

// Scroll dispatches scroll. Configure the metrics on the host first.
func (tt *Tester) Scroll(el *dom.Element) *dom.Event {
	tt.t.Helper()
	return tt.event(dom.EventScroll, el, nil)
}

// DragOver dispatches dragover.
func (tt *Tester) DragOver(el *dom.Element) *dom.Event {
	tt.t.Helper()
	return tt.event(dom.EventDragOver, el, nil)
}

// DragLeave dispatches dragleave.
func (tt *Tester) DragLeave(el *dom.Element) *dom.Event {
	tt.t.Helper()
	return tt.event(dom.EventDragLeave, el, nil)
}

// Drop dispatches drop carrying files.
func (tt *Tester) Drop(el *dom.Element, files ...dom.File) *dom.Event {
	tt.t.Helper()
	return tt.event(dom.EventDrop, el, func(e *dom.Event) { e.Files = files })
}

// ChangeFiles dispatches change on a file input carrying files.
func (tt *Tester) ChangeFiles(el *dom.Element, files ...dom.File) *dom.Event {
	tt.t.Helper()
	return tt.event(dom.EventChange, el, func(e *dom.Event) { e.Files = files })
}

func editable(el *dom.Element) bool {
	if el.HasAttribute("disabled") || el.HasAttribute("readonly") {
		return false
	}
	switch el.Tag {
	case "textarea":
		return true
	case "input":
		t := el.AttributeOr("type", "text")
		return t == "text" || t == "search" || t == "email" || t == "password" || t == "tel" || t == "url"
	}
	return false
}
