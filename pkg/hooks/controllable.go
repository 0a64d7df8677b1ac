// Package hooks holds the interaction engines shared by the components:
// the controlled/uncontrolled value bridge, outside-click and shortcut
// listeners, cancellable delays, mount-while-open content and ref lists.
package hooks

import (
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// Controllable is a value that is either owned by the caller (controlled) or
// by the component (uncontrolled). The mode is decided at construction and
// never changes.
type Controllable[T any] struct {
	scope      *reactive.Scope
	name       string
	controlled bool
	external   reactive.Accessor[T]
	internal   *reactive.Signal[T]
	onChange   func(T)
}

// NewControllable creates the bridge. A non-nil value makes it controlled;
// otherwise it starts from defaultValue. onChange is called on every Set.
func NewControllable[T any](scope *reactive.Scope, name string, value reactive.Accessor[T], defaultValue T, onChange func(T)) *Controllable[T] {
	c := &Controllable[T]{scope: scope, name: name, external: value, onChange: onChange}
	if value != nil {
		c.controlled = true
		if onChange == nil {
			scope.Warn(name, "controlled value without a change handler is read-only")
		}
		return c
	}
	c.internal = reactive.NewSignal(scope, defaultValue)
	return c
}

// Controlled reports the mode.
func (c *Controllable[T]) Controlled() bool {
	return c.controlled
}

// Get returns the authoritative value, subscribing the caller.
func (c *Controllable[T]) Get() T {
	if c.controlled {
		return c.external.Get()
	}
	return c.internal.Get()
}

// Peek returns the authoritative value without subscribing.
func (c *Controllable[T]) Peek() T {
	var v T
	c.scope.Runtime().Untrack(func() { v = c.Get() })
	return v
}

// Set requests a new value. Uncontrolled values are stored; both modes
// notify the change handler, and a controlled value only changes when the
// caller writes it back.
func (c *Controllable[T]) Set(v T) {
	if !c.controlled {
		c.internal.Set(v)
	}
	if c.onChange != nil {
		c.scope.Guard(c.name+".on_change", func() { c.onChange(v) })
	}
}
