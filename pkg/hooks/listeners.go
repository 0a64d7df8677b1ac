package hooks

import (
	"strings"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// Boundary identifies a component's outer wrapper: the wrapper carries
// Attr=ID, and any element beneath it counts as inside.
type Boundary struct {
	Attr string
	ID   string
}

// NewBoundary allocates a document-unique boundary for a component kind,
// such as "data-glade-dropdown".
func NewBoundary(scope *reactive.Scope, attr string) Boundary {
	prefix := strings.TrimPrefix(attr, "data-")
	if doc, ok := dom.UseDocument(scope); ok {
		return Boundary{Attr: attr, ID: doc.NewID(prefix)}
	}
	return Boundary{Attr: attr, ID: prefix}
}

// Node marks the wrapper element.
func (b Boundary) Node() dom.Node {
	return dom.Attr(b.Attr, b.ID)
}

// Contains reports whether el sits inside the boundary.
func (b Boundary) Contains(el *dom.Element) bool {
	return dom.Closest(el, dom.AttrEquals(b.Attr, b.ID)) != nil
}

// UseClickOutside calls onOutside for window clicks that land outside the
// boundary while open holds. The listener lives as long as scope.
func UseClickOutside(scope *reactive.Scope, b Boundary, open reactive.Accessor[bool], onOutside func()) {
	doc, ok := dom.UseDocument(scope)
	if !ok {
		scope.Warn("UseClickOutside", "no document in scope; outside clicks are ignored")
		return
	}
	send := reactive.NewNamedSender(scope, "click_outside", func(struct{}) {
		if open.Get() {
			onOutside()
		}
	})
	remove := doc.AddWindowListener(dom.EventClick, func(ev *dom.Event) {
		if !open.Get() || b.Contains(ev.Target) {
			return
		}
		send.Send(struct{}{})
	})
	scope.OnCleanup(remove)
}

// Shortcut is a keyboard chord. Mod means the platform command key: ⌘ or
// Ctrl, either accepted.
type Shortcut struct {
	Key   dom.Key
	Mod   bool
	Shift bool
}

// Matches reports whether ev is the chord. Character keys compare
// case-insensitively.
func (s Shortcut) Matches(ev *dom.Event) bool {
	if s.Mod != (ev.Modifiers.Ctrl || ev.Modifiers.Meta) {
		return false
	}
	if s.Shift && !ev.Modifiers.Shift {
		return false
	}
	if want, ok := s.Key.Char(); ok {
		got, ok := ev.Key.Char()
		return ok && strings.EqualFold(want, got)
	}
	return ev.Key == s.Key
}

// String renders the chord for hints, e.g. "⌘K".
func (s Shortcut) String() string {
	var b strings.Builder
	if s.Mod {
		b.WriteString("⌘")
	}
	if s.Shift {
		b.WriteString("⇧")
	}
	if ch, ok := s.Key.Char(); ok {
		b.WriteString(strings.ToUpper(ch))
	} else {
		b.WriteString(string(s.Key))
	}
	return b.String()
}

// UseShortcut listens for the chord on the window while enabled holds. A
// match has its default prevented synchronously; fn runs through a Sender.
func UseShortcut(scope *reactive.Scope, sc Shortcut, enabled reactive.Accessor[bool], fn func()) {
	doc, ok := dom.UseDocument(scope)
	if !ok {
		scope.Warn("UseShortcut", "no document in scope; shortcut "+sc.String()+" is not registered")
		return
	}
	send := reactive.NewNamedSender(scope, "shortcut", func(struct{}) { fn() })
	remove := doc.AddWindowListener(dom.EventKeyDown, func(ev *dom.Event) {
		if enabled != nil && !enabled.Get() {
			return
		}
		if !sc.Matches(ev) {
			return
		}
		ev.PreventDefault()
		send.Send(struct{}{})
	})
	scope.OnCleanup(remove)
}

// UseEscape calls fn when Escape is pressed anywhere while active holds.
func UseEscape(scope *reactive.Scope, active reactive.Accessor[bool], fn func()) {
	doc, ok := dom.UseDocument(scope)
	if !ok {
		return
	}
	send := reactive.NewNamedSender(scope, "escape", func(struct{}) {
		if active.Get() {
			fn()
		}
	})
	remove := doc.AddWindowListener(dom.EventKeyDown, func(ev *dom.Event) {
		if ev.Key == dom.KeyEscape && active.Get() {
			send.Send(struct{}{})
		}
	})
	scope.OnCleanup(remove)
}
