package hooks

import (
	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// Presence mounts slot content only while open. Content is built in a child
// scope on the closed→open transition and that scope is disposed on close,
// so anything the content created starts fresh next time.
type Presence struct {
	scope *reactive.Scope
	slot  dom.Slot
	child *reactive.Scope
	node  dom.Node
}

// NewPresence creates a Presence for slot.
func NewPresence(scope *reactive.Scope, slot dom.Slot) *Presence {
	return &Presence{scope: scope, slot: slot}
}

// Render returns the content for the current open state, mounting or
// unmounting as needed. Call it from Render.
func (p *Presence) Render(open bool) dom.Node {
	switch {
	case open && p.child == nil:
		p.child = p.scope.Child()
		p.scope.Runtime().Untrack(func() {
			p.node = p.slot.Build(p.child)
		})
	case !open && p.child != nil:
		p.child.Dispose()
		p.child = nil
		p.node = nil
	}
	return p.node
}

// Mounted reports whether content is mounted.
func (p *Presence) Mounted() bool {
	return p.child != nil
}

// Scope returns the content scope while mounted.
func (p *Presence) Scope() *reactive.Scope {
	return p.child
}
