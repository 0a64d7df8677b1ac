// Package domtest drives mounted components the way a user would: pointer
// and keyboard gestures against a headless document on a fake clock.
package domtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// Option configures a Tester.
type Option func(*config)

type config struct {
	start time.Time
}

// WithStart sets the fake clock's starting time.
func WithStart(t time.Time) Option {
	return func(c *config) { c.start = t }
}

// Tester owns a runtime, a document and a headless host for one test.
type Tester struct {
	t     testing.TB
	rt    *reactive.Runtime
	clock *reactive.FakeClock
	root  *reactive.Scope
	doc   *dom.Document
	host  *dom.HeadlessHost
}

// New mounts the component returned by build and renders it.
func New(t testing.TB, build func(scope *reactive.Scope) dom.Component, opts ...Option) *Tester {
	t.Helper()
	cfg := config{start: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	for _, opt := range opts {
		opt(&cfg)
	}

	clock := reactive.NewFakeClockAt(cfg.start)
	rt := reactive.New(reactive.WithClock(clock))
	root := rt.NewScope()
	host := dom.NewHeadlessHost()
	doc := dom.NewDocument(root, dom.WithHost(host))

	tester := &Tester{t: t, rt: rt, clock: clock, root: root, doc: doc, host: host}
	rt.Do(func() { doc.Mount(build) })
	t.Cleanup(func() { rt.Do(root.Dispose) })
	return tester
}

// Runtime returns the runtime.
func (tt *Tester) Runtime() *reactive.Runtime { return tt.rt }

// Document returns the document.
func (tt *Tester) Document() *dom.Document { return tt.doc }

// Host returns the headless host.
func (tt *Tester) Host() *dom.HeadlessHost { return tt.host }

// Now returns the fake clock's time.
func (tt *Tester) Now() time.Time { return tt.clock.Now() }

// HTML returns the rendered markup.
func (tt *Tester) HTML() string { return tt.doc.HTML() }

// Do runs fn as a task, then lets the document settle.
func (tt *Tester) Do(fn func()) { tt.rt.Do(fn) }

// Advance moves the fake clock forward, firing due timers.
func (tt *Tester) Advance(d time.Duration) { tt.rt.Advance(d) }

// Unmount tears the mounted component down.
func (tt *Tester) Unmount() { tt.rt.Do(tt.doc.Unmount) }

// Dispatch sends ev to target and settles. It returns the event for inspection.
func (tt *Tester) Dispatch(target *dom.Element, ev *dom.Event) *dom.Event {
	tt.t.Helper()
	if target != nil {
		require.True(tt.t, tt.doc.Contains(target), "dispatch target %q is not mounted", target.Tag)
	}
	tt.rt.Do(func() { tt.doc.Dispatch(target, ev) })
	return ev
}

func (tt *Tester) event(eventType string, target *dom.Element, mutate func(*dom.Event)) *dom.Event {
	ev := dom.NewEvent(eventType)
	if mutate != nil {
		mutate(ev)
	}
	return tt.Dispatch(target, ev)
}
