package hooks

import (
	"time"

	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// Delayed runs at most one pending task. Scheduling again replaces the
// pending task; the task is dropped if the scope is disposed first.
// Callbacks must re-check whatever condition made them worth scheduling.
type Delayed struct {
	scope *reactive.Scope
	timer *reactive.Timer
}

// NewDelayed creates a Delayed owned by scope.
func NewDelayed(scope *reactive.Scope) *Delayed {
	return &Delayed{scope: scope}
}

// Schedule runs fn after d, cancelling any pending task.
func (d *Delayed) Schedule(delay time.Duration, fn func()) {
	d.Cancel()
	d.timer = reactive.After(d.scope, delay, fn)
}

// Cancel drops the pending task.
func (d *Delayed) Cancel() {
	d.timer.Stop()
	d.timer = nil
}

// Pending reports whether a task is waiting.
func (d *Delayed) Pending() bool {
	return d.timer.Active()
}
