// Package reactive is the single-threaded reactive runtime components run on:
// a cooperative task loop with timers, an owner tree of scopes, and signals,
// memos and effects with automatic dependency tracking.
//
// Everything except Runtime.Post and Sender.Send must be called from the
// goroutine driving the loop.
package reactive

import (
	"container/heap"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	gladeerrors "github.com/alexisbeaulieu97/glade/pkg/errors"
)

// maxFlushRuns bounds observer re-runs inside one flush so a cycle of effects
// writing each other's signals cannot hang the loop.
const maxFlushRuns = 100000

// Option configures a Runtime.
type Option func(*Runtime)

// WithClock replaces the wall clock, typically with a FakeClock.
func WithClock(c Clock) Option {
	return func(r *Runtime) {
		if c != nil {
			r.clock = c
		}
	}
}

// WithLogger routes dev warnings, recovered panics and dropped host failures
// to the given zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Runtime) {
		r.log = l
	}
}

// Runtime is the cooperative event loop.
type Runtime struct {
	clock Clock
	log   zerolog.Logger

	mu    sync.Mutex
	tasks []func()
	wake  chan struct{}

	timers   timerQueue
	timerIDs map[TimerID]*timerEntry
	nextID   TimerID
	seq      uint64

	pending  []*computation
	tracking *computation
	nextComp uint64
	flushing bool

	warned map[string]struct{}
}

// New constructs a Runtime.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		clock:    SystemClock(),
		log:      zerolog.Nop(),
		wake:     make(chan struct{}, 1),
		timerIDs: make(map[TimerID]*timerEntry),
		warned:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Logger returns the runtime logger, zerolog.Nop() unless WithLogger was given.
func (r *Runtime) Logger() zerolog.Logger {
	return r.log
}

// Now reports the runtime clock's current time.
func (r *Runtime) Now() time.Time {
	return r.clock.Now()
}

// Post enqueues fn as a task. Safe to call from any goroutine; tasks run in
// the order they were posted.
func (r *Runtime) Post(fn func()) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.tasks = append(r.tasks, fn)
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Do runs fn as a task right away and then drains the queue.
func (r *Runtime) Do(fn func()) {
	r.runTask(fn)
	r.RunUntilIdle()
}

// RunUntilIdle runs queued tasks, and the observers they schedule, until the
// queue is empty. Timers that are not yet due stay queued.
func (r *Runtime) RunUntilIdle() {
	r.flush()
	for {
		task, ok := r.popTask()
		if !ok {
			return
		}
		r.runTask(task)
	}
}

// Pending reports the number of queued tasks.
func (r *Runtime) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

// Advance moves a settable clock forward by d, firing every timer that falls
// due along the way in due order. Tasks posted by fired timers run before the
// next timer is considered.
func (r *Runtime) Advance(d time.Duration) {
	clock, ok := r.clock.(SettableClock)
	if !ok {
		panic("reactive: Advance requires a SettableClock")
	}

	target := clock.Now().Add(d)
	r.RunUntilIdle()
	for {
		next := r.timers.peek()
		if next == nil || next.due.After(target) {
			break
		}
		if next.due.After(clock.Now()) {
			clock.Set(next.due)
		}
		r.fire(next)
		r.RunUntilIdle()
	}
	clock.Set(target)
	r.RunUntilIdle()
}

// Run drives the loop against the runtime clock until ctx is cancelled.
func (r *Runtime) Run(ctx context.Context) error {
	for {
		r.RunUntilIdle()
		r.fireDue()
		if r.Pending() > 0 {
			continue
		}

		var timeout <-chan time.Time
		var wait *time.Timer
		if next := r.timers.peek(); next != nil {
			wait = time.NewTimer(next.due.Sub(r.clock.Now()))
			timeout = wait.C
		}

		select {
		case <-ctx.Done():
			if wait != nil {
				wait.Stop()
			}
			return ctx.Err()
		case <-r.wake:
		case <-timeout:
		}
		if wait != nil {
			wait.Stop()
		}
	}
}

// WarnOnce logs a development warning the first time key is seen.
func (r *Runtime) WarnOnce(key, msg string) {
	if _, seen := r.warned[key]; seen {
		return
	}
	r.warned[key] = struct{}{}
	r.log.Warn().Str("warning", key).Msg(msg)
}

// Untrack runs fn without recording signal reads against the current observer.
func (r *Runtime) Untrack(fn func()) {
	prev := r.tracking
	r.tracking = nil
	defer func() { r.tracking = prev }()
	fn()
}

func (r *Runtime) popTask() (func(), bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.tasks) == 0 {
		return nil, false
	}
	task := r.tasks[0]
	r.tasks[0] = nil
	r.tasks = r.tasks[1:]
	return task, true
}

func (r *Runtime) runTask(fn func()) {
	r.recoverInto("task", fn)
	r.flush()
}

// recoverInto runs fn and converts a panic into a logged HandlerPanicError.
// It reports whether fn returned normally.
func (r *Runtime) recoverInto(op string, fn func()) (ok bool) {
	defer func() {
		if v := recover(); v != nil {
			err := gladeerrors.NewHandlerPanicError(op, v)
			r.log.Error().Err(err).Str("op", op).Msg("recovered panic")
			ok = false
		}
	}()
	fn()
	return true
}

func (r *Runtime) schedule(c *computation) {
	if c.scheduled || c.disposed {
		return
	}
	c.scheduled = true
	r.pending = append(r.pending, c)
}

func (r *Runtime) flush() {
	if r.flushing {
		return
	}
	r.flushing = true
	defer func() { r.flushing = false }()

	runs := 0
	for len(r.pending) > 0 {
		c := r.pending[0]
		r.pending[0] = nil
		r.pending = r.pending[1:]
		c.scheduled = false
		if c.disposed {
			continue
		}
		runs++
		if runs > maxFlushRuns {
			r.log.Error().Err(fmt.Errorf("%d observer runs without settling", runs)).Msg("reactive cycle aborted")
			for _, p := range r.pending {
				p.scheduled = false
			}
			r.pending = nil
			return
		}
		c.run()
	}
}

func (r *Runtime) fireDue() {
	now := r.clock.Now()
	for {
		next := r.timers.peek()
		if next == nil || next.due.After(now) {
			return
		}
		r.fire(next)
		r.RunUntilIdle()
	}
}

func (r *Runtime) fire(t *timerEntry) {
	if t.interval > 0 {
		t.due = t.due.Add(t.interval)
		r.seq++
		t.seq = r.seq
		heap.Fix(&r.timers, t.index)
	} else {
		heap.Remove(&r.timers, t.index)
		delete(r.timerIDs, t.id)
	}
	r.runTask(t.fn)
}
