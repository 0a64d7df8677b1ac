// Package dom is a virtual document model: an element tree rebuilt on every
// render, event dispatch with bubbling, global listeners, element refs with
// an asynchronous imperative API, and HTML serialization.
package dom

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// Node is anything that can be placed inside an element: child elements,
// text, attributes, classes, styles, event handlers or refs.
type Node interface {
	Apply(parent *Element)
}

// Handler receives dispatched events.
type Handler func(*Event)

// Component renders a markup tree. Render runs inside the document's render
// effect, so every signal it reads re-renders the document when written.
type Component interface {
	Render() *Element
}

// ComponentFunc adapts a plain render function to Component.
type ComponentFunc func() *Element

// Render calls f.
func (f ComponentFunc) Render() *Element { return f() }

// Slot is named-slot content. It is built with the scope that should own
// whatever the content creates, so content can read the enclosing
// component's context.
type Slot func(scope *reactive.Scope) Node

// Build runs the slot; a nil slot builds nothing.
func (s Slot) Build(scope *reactive.Scope) Node {
	if s == nil {
		return nil
	}
	return s(scope)
}

// Static wraps pre-rendered markup as a Slot.
func Static(nodes ...Node) Slot {
	if len(nodes) == 0 {
		return nil
	}
	return func(*reactive.Scope) Node { return Group(nodes...) }
}

type attribute struct {
	name  string
	value string
}

type styleDecl struct {
	prop  string
	value string
}

// Element is one node of the virtual tree.
type Element struct {
	Tag string

	attrs    []attribute
	classes  []string
	styles   []styleDecl
	children []Node
	handlers map[string][]Handler
	ref      *Ref

	parent *Element
	doc    *Document

	value     string
	selectAll bool
}

// El builds an element from nodes. Nil nodes are skipped.
func El(tag string, nodes ...Node) *Element {
	el := &Element{Tag: tag}
	el.Append(nodes...)
	return el
}

// Append applies nodes to el.
func (e *Element) Append(nodes ...Node) *Element {
	for _, n := range nodes {
		if n != nil {
			n.Apply(e)
		}
	}
	return e
}

// Apply appends e as a child of parent.
func (e *Element) Apply(parent *Element) {
	if e == nil {
		return
	}
	e.parent = parent
	parent.children = append(parent.children, e)
}

// Parent returns the enclosing element.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the child elements, skipping text.
func (e *Element) Children() []*Element {
	out := make([]*Element, 0, len(e.children))
	for _, n := range e.children {
		if child, ok := n.(*Element); ok {
			out = append(out, child)
		}
	}
	return out
}

// Nodes returns all children, text included.
func (e *Element) Nodes() []Node { return e.children }

// Attribute returns the value of an attribute.
func (e *Element) Attribute(name string) (string, bool) {
	switch name {
	case "class":
		if len(e.classes) == 0 {
			return "", false
		}
		return strings.Join(e.classes, " "), true
	case "style":
		if len(e.styles) == 0 {
			return "", false
		}
		return e.styleString(), true
	}
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// AttributeOr returns the attribute value or fallback when absent.
func (e *Element) AttributeOr(name, fallback string) string {
	if v, ok := e.Attribute(name); ok {
		return v
	}
	return fallback
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.Attribute(name)
	return ok
}

// SetAttribute sets or replaces an attribute.
func (e *Element) SetAttribute(name, value string) {
	switch name {
	case "class":
		e.classes = strings.Fields(value)
		return
	case "value":
		e.value = value
	}
	for i, a := range e.attrs {
		if a.name == name {
			e.attrs[i].value = value
			return
		}
	}
	e.attrs = append(e.attrs, attribute{name: name, value: value})
}

// RemoveAttribute deletes an attribute.
func (e *Element) RemoveAttribute(name string) {
	for i, a := range e.attrs {
		if a.name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// Classes returns the class list.
func (e *Element) Classes() []string { return e.classes }

// HasClass reports whether class is on the element.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// StyleValue returns an inline style property.
func (e *Element) StyleValue(prop string) string {
	for _, s := range e.styles {
		if s.prop == prop {
			return s.value
		}
	}
	return ""
}

func (e *Element) styleString() string {
	parts := make([]string, 0, len(e.styles))
	for _, s := range e.styles {
		parts = append(parts, s.prop+": "+s.value)
	}
	return strings.Join(parts, "; ")
}

// Value returns the live value of a form control. It starts from the value
// attribute and changes as the user types.
func (e *Element) Value() string { return e.value }

// SetValue replaces the live value, as user input does.
func (e *Element) SetValue(v string) {
	e.value = v
	e.selectAll = false
}

// SelectedAll reports whether the control's whole content is selected.
func (e *Element) SelectedAll() bool { return e.selectAll }

// Ref returns the ref bound to the element, if any.
func (e *Element) Ref() *Ref { return e.ref }

// Handlers returns the handlers registered for an event type.
func (e *Element) Handlers(eventType string) []Handler { return e.handlers[eventType] }

// Document returns the document the element is mounted in, or nil.
func (e *Element) Document() *Document { return e.doc }

// TextContent concatenates all descendant text.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *Element) writeText(b *strings.Builder) {
	for _, n := range e.children {
		switch v := n.(type) {
		case Text:
			b.WriteString(string(v))
		case *Element:
			v.writeText(b)
		}
	}
}

// Text is a text node.
type Text string

// Apply appends the text as a child.
func (t Text) Apply(parent *Element) {
	parent.children = append(parent.children, t)
}

// Textf is a convenience for formatted integers and strings joined with spaces.
func Textf(parts ...any) Text {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			out = append(out, v)
		case int:
			out = append(out, strconv.Itoa(v))
		case float64:
			out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	return Text(strings.Join(out, " "))
}

type nodeFunc func(*Element)

func (f nodeFunc) Apply(parent *Element) { f(parent) }

// Group applies several nodes as one.
func Group(nodes ...Node) Node {
	return nodeFunc(func(parent *Element) { parent.Append(nodes...) })
}

// If applies nodes only when cond holds.
func If(cond bool, nodes ...Node) Node {
	if !cond {
		return nil
	}
	return Group(nodes...)
}

// Embed renders a component in place.
func Embed(c Component) Node {
	if c == nil {
		return nil
	}
	return nodeFunc(func(parent *Element) {
		if el := c.Render(); el != nil {
			el.Apply(parent)
		}
	})
}

// Map renders one node per item.
func Map[T any](items []T, fn func(i int, item T) Node) Node {
	nodes := make([]Node, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, fn(i, item))
	}
	return Group(nodes...)
}
