// Package components is the interactive widget set: floating surfaces,
// dialogs, disclosure widgets, navigation, pickers and inputs, each a small
// state machine over signals rendering into the dom tree.
//
// Every component is constructed with NewX(scope, XProps{...}) inside the
// scope that owns it and rendered by embedding it (dom.Embed) or mounting it.
// Disposing the scope unmounts it and releases its listeners and timers.
package components

import (
	"strconv"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

const classPrefix = "glade-"

// base carries what every stateful component needs.
type base struct {
	scope *reactive.Scope
	name  string
}

func newBase(scope *reactive.Scope, name string) base {
	return base{scope: scope, name: name}
}

// emit invokes a caller handler in isolation; a panicking handler cannot
// interrupt the component's own bookkeeping.
func (b base) emit(op string, fn func()) {
	b.scope.Guard(b.name+"."+op, fn)
}

func (b base) document() *dom.Document {
	doc, _ := dom.UseDocument(b.scope)
	return doc
}

func (b base) warn(message string) {
	b.scope.Warn(b.name, message)
}

// cls builds "glade-<block>" plus modifiers as "glade-<block>--<mod>".
func cls(block string, mods ...string) dom.Node {
	names := []string{classPrefix + block}
	for _, m := range mods {
		if m != "" {
			names = append(names, classPrefix+block+"--"+m)
		}
	}
	return dom.Class(names...)
}

// part builds the element class "glade-<block>__<element>".
func part(block, element string, mods ...string) dom.Node {
	return cls(block+"__"+element, mods...)
}

func when(cond bool, mod string) string {
	if cond {
		return mod
	}
	return ""
}

// untracked reads a from a handler without subscribing any running observer.
func untracked[T any](scope *reactive.Scope, a reactive.Accessor[T]) T {
	var v T
	scope.Runtime().Untrack(func() { v = a.Get() })
	return v
}

func boolAccessor(a reactive.Accessor[bool]) reactive.Accessor[bool] {
	if a == nil {
		return reactive.Static(false)
	}
	return a
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
