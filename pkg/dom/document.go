package dom

import (
	"slices"
	"strconv"

	"github.com/alexisbeaulieu97/glade/pkg/reactive"

	gladeerrors "github.com/alexisbeaulieu97/glade/pkg/errors"
)

var documentKey = reactive.NewContextKey[*Document]("dom.document")

type listener struct {
	fn      Handler
	removed bool
}

// Option configures a Document.
type Option func(*Document)

// WithHost replaces the default HeadlessHost.
func WithHost(h Host) Option {
	return func(d *Document) {
		if h != nil {
			d.host = h
		}
	}
}

// Document owns the mounted tree, the global listeners and focus.
type Document struct {
	rt    *reactive.Runtime
	scope *reactive.Scope
	host  Host

	body       *Element
	mountScope *reactive.Scope

	window   map[string][]*listener
	document map[string][]*listener

	focused *Element
	refs    map[*Ref]struct{}
	renders int
	ids     map[string]int
}

// NewDocument creates a document owned by scope and makes it available to
// every scope beneath it through UseDocument.
func NewDocument(scope *reactive.Scope, opts ...Option) *Document {
	d := &Document{
		rt:       scope.Runtime(),
		scope:    scope,
		host:     NewHeadlessHost(),
		body:     El("body"),
		window:   make(map[string][]*listener),
		document: make(map[string][]*listener),
		refs:     make(map[*Ref]struct{}),
		ids:      make(map[string]int),
	}
	d.body.doc = d
	for _, opt := range opts {
		opt(d)
	}
	reactive.Provide(scope, documentKey, d)
	scope.OnCleanup(d.Unmount)
	return d
}

// UseDocument finds the document that owns scope.
func UseDocument(scope *reactive.Scope) (*Document, bool) {
	return reactive.UseContext(scope, documentKey)
}

// Runtime returns the document's runtime.
func (d *Document) Runtime() *reactive.Runtime { return d.rt }

// Host returns the host.
func (d *Document) Host() Host { return d.host }

// Body returns the root element; the mounted component renders into it.
func (d *Document) Body() *Element { return d.body }

// NewID returns an id unique within the document, such as "dropdown-3".
func (d *Document) NewID(prefix string) string {
	d.ids[prefix]++
	return prefix + "-" + strconv.Itoa(d.ids[prefix])
}

// Renders counts completed renders.
func (d *Document) Renders() int { return d.renders }

// Mount builds a component in a fresh scope and renders it into the body,
// re-rendering whenever a signal read during render changes. A previously
// mounted component is unmounted first.
func (d *Document) Mount(build func(scope *reactive.Scope) Component) {
	d.Unmount()
	scope := d.scope.Child()
	d.mountScope = scope
	root := build(scope)
	if root == nil {
		return
	}
	reactive.NewEffect(scope, func() {
		d.render(root)
	})
}

// Unmount disposes the mounted component and clears the tree.
func (d *Document) Unmount() {
	if d.mountScope == nil {
		return
	}
	scope := d.mountScope
	d.mountScope = nil
	scope.Dispose()
	d.detachBody()
	d.adopt(nil)
}

func (d *Document) render(root Component) {
	tree := root.Render()
	focusPath := d.PathOf(d.focused)
	d.detachBody()
	if tree != nil {
		tree.Apply(d.body)
	}
	d.adopt(focusPath)
	d.renders++
}

// detachBody cuts the previous tree loose so stale elements no longer count
// as mounted.
func (d *Document) detachBody() {
	for _, n := range d.body.children {
		if child, ok := n.(*Element); ok {
			child.parent = nil
		}
	}
	d.body.children = nil
}

// adopt wires parent/document pointers and refs for the current tree, clears
// refs whose elements disappeared, and carries focus over to the new tree.
// focusPath is where the focused element sat in the previous tree.
func (d *Document) adopt(focusPath []PathStep) {
	seen := make(map[*Ref]struct{})
	byIdentity := make(map[string]*Element)
	var walk func(el *Element)
	walk = func(el *Element) {
		el.doc = d
		if el.ref != nil {
			el.ref.bind(d, el)
			seen[el.ref] = struct{}{}
		}
		if key := identity(el); key != "" {
			byIdentity[key] = el
		}
		for _, n := range el.children {
			if child, ok := n.(*Element); ok {
				child.parent = el
				walk(child)
			}
		}
	}
	walk(d.body)

	for ref := range d.refs {
		if _, ok := seen[ref]; !ok {
			ref.el = nil
		}
	}
	d.refs = seen

	if d.focused != nil && !d.Contains(d.focused) {
		switch {
		case d.focused.ref != nil:
			d.focused = d.focused.ref.el
		case identity(d.focused) != "":
			d.focused = byIdentity[identity(d.focused)]
		case focusPath != nil:
			d.focused = d.ElementAt(focusPath)
		default:
			d.focused = nil
		}
	}
}

// PathStep is one hop from a parent to a child element: the child's index
// among its parent's element children and its tag.
type PathStep struct {
	Index int
	Tag   string
}

// PathOf returns the structural path from the body to el, or nil when el is
// not mounted.
func (d *Document) PathOf(el *Element) []PathStep {
	if el == nil || !d.Contains(el) {
		return nil
	}
	var path []PathStep
	for cur := el; cur != d.body; cur = cur.parent {
		index := 0
		for _, n := range cur.parent.children {
			sibling, ok := n.(*Element)
			if !ok {
				continue
			}
			if sibling == cur {
				break
			}
			index++
		}
		path = append(path, PathStep{Index: index, Tag: cur.Tag})
	}
	slices.Reverse(path)
	return path
}

// ElementAt follows path from the body. It returns nil when a step is out of
// range or lands on a different tag.
func (d *Document) ElementAt(path []PathStep) *Element {
	cur := d.body
	for _, step := range path {
		var next *Element
		index := 0
		for _, n := range cur.children {
			child, ok := n.(*Element)
			if !ok {
				continue
			}
			if index == step.Index {
				next = child
				break
			}
			index++
		}
		if next == nil || next.Tag != step.Tag {
			return nil
		}
		cur = next
	}
	return cur
}

// Relocate finds the mounted counterpart of an element a re-render replaced:
// through its ref, then its id or test id, then the structural path it had.
func (d *Document) Relocate(old *Element, path []PathStep) *Element {
	if old == nil {
		return nil
	}
	if d.Contains(old) {
		return old
	}
	if old.ref != nil && old.ref.el != nil {
		return old.ref.el
	}
	if key := identity(old); key != "" {
		return Find(d.body, func(el *Element) bool { return identity(el) == key })
	}
	if path == nil {
		return nil
	}
	return d.ElementAt(path)
}

func identity(el *Element) string {
	if id, ok := el.Attribute("id"); ok && id != "" {
		return "id:" + id
	}
	if id, ok := el.Attribute("data-testid"); ok && id != "" {
		return "testid:" + id
	}
	return ""
}

// Contains reports whether el is part of the mounted tree.
func (d *Document) Contains(el *Element) bool {
	for cur := el; cur != nil; cur = cur.parent {
		if cur == d.body {
			return true
		}
	}
	return false
}

// HTML serializes the mounted tree.
func (d *Document) HTML() string {
	return InnerHTML(d.body)
}

// AddWindowListener registers a window-level listener. The returned function
// removes it and is safe to call more than once.
func (d *Document) AddWindowListener(eventType string, fn Handler) (remove func()) {
	return addListener(d.window, eventType, fn)
}

// AddDocumentListener registers a document-level listener.
func (d *Document) AddDocumentListener(eventType string, fn Handler) (remove func()) {
	return addListener(d.document, eventType, fn)
}

// ListenerCount reports live window plus document listeners for eventType.
func (d *Document) ListenerCount(eventType string) int {
	n := 0
	for _, l := range d.window[eventType] {
		if !l.removed {
			n++
		}
	}
	for _, l := range d.document[eventType] {
		if !l.removed {
			n++
		}
	}
	return n
}

func addListener(set map[string][]*listener, eventType string, fn Handler) func() {
	l := &listener{fn: fn}
	set[eventType] = append(set[eventType], l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		live := set[eventType][:0]
		for _, other := range set[eventType] {
			if other != l {
				live = append(live, other)
			}
		}
		set[eventType] = live
	}
}

// Dispatch delivers ev to target. Bubbling events then walk the ancestors,
// the document listeners and the window listeners until propagation stops.
// It reports whether the default action is still allowed.
func (d *Document) Dispatch(target *Element, ev *Event) bool {
	if target == nil {
		target = d.body
	}
	ev.Target = target
	if ev.Type == EventInput || ev.Type == EventChange {
		ev.Value = target.value
	}

	for cur := target; cur != nil; cur = cur.parent {
		d.invoke(cur, cur.handlers[ev.Type], ev)
		if ev.stopped || !ev.Bubbles {
			return !ev.defaultPrevented
		}
	}

	d.invokeListeners(d.document[ev.Type], ev)
	if ev.stopped {
		return !ev.defaultPrevented
	}
	d.invokeListeners(d.window[ev.Type], ev)
	return !ev.defaultPrevented
}

func (d *Document) invoke(current *Element, handlers []Handler, ev *Event) {
	ev.CurrentTarget = current
	for _, h := range handlers {
		d.scope.Guard("on"+ev.Type, func() { h(ev) })
	}
}

func (d *Document) invokeListeners(set []*listener, ev *Event) {
	ev.CurrentTarget = nil
	snapshot := append([]*listener(nil), set...)
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		d.scope.Guard("listener:"+ev.Type, func() { l.fn(ev) })
	}
}

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() *Element {
	return d.focused
}

// SetFocus moves focus to el, dispatching blur on the previous element and
// focus on the new one. A nil el clears focus.
func (d *Document) SetFocus(el *Element) {
	if el == d.focused {
		return
	}
	prev := d.focused
	d.focused = el
	if prev != nil && d.Contains(prev) {
		d.Dispatch(prev, NewEvent(EventBlur))
	}
	if el != nil {
		d.Dispatch(el, NewEvent(EventFocus))
	}
}

// WriteClipboard writes text to the clipboard in a later task; then runs
// only if the write succeeded.
func (d *Document) WriteClipboard(text string, then func()) {
	d.rt.Post(func() {
		if err := d.host.WriteClipboard(text); err != nil {
			d.hostFailure("clipboard.write", err)
			return
		}
		if then != nil {
			then()
		}
	})
}

func (d *Document) hostFailure(op string, err error) {
	log := d.rt.Logger()
	log.Debug().Str("op", op).Err(gladeerrors.NewHostError(op, err)).Msg("host call failed")
}
