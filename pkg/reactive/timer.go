package reactive

import (
	"container/heap"
	"time"
)

// TimerID identifies a pending timeout or interval.
type TimerID uint64

type timerEntry struct {
	id       TimerID
	due      time.Time
	seq      uint64
	interval time.Duration
	fn       func()
	index    int
}

type timerQueue []*timerEntry

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	entry := x.(*timerEntry)
	entry.index = len(*q)
	*q = append(*q, entry)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.index = -1
	*q = old[:n-1]
	return entry
}

func (q timerQueue) peek() *timerEntry {
	if len(q) == 0 {
		return nil
	}
	return q[0]
}

// SetTimeout schedules fn to run once after d.
func (r *Runtime) SetTimeout(d time.Duration, fn func()) TimerID {
	return r.addTimer(d, 0, fn)
}

// SetInterval schedules fn to run every d until cleared.
func (r *Runtime) SetInterval(d time.Duration, fn func()) TimerID {
	if d <= 0 {
		d = time.Millisecond
	}
	return r.addTimer(d, d, fn)
}

// ClearTimeout cancels a pending timeout or interval. It reports whether the
// timer was still pending.
func (r *Runtime) ClearTimeout(id TimerID) bool {
	entry, ok := r.timerIDs[id]
	if !ok {
		return false
	}
	delete(r.timerIDs, id)
	if entry.index >= 0 {
		heap.Remove(&r.timers, entry.index)
	}
	return true
}

// ActiveTimers reports how many timers are pending.
func (r *Runtime) ActiveTimers() int {
	return len(r.timerIDs)
}

func (r *Runtime) addTimer(d, interval time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	r.nextID++
	r.seq++
	entry := &timerEntry{
		id:       r.nextID,
		due:      r.clock.Now().Add(d),
		seq:      r.seq,
		interval: interval,
		fn:       fn,
	}
	heap.Push(&r.timers, entry)
	r.timerIDs[entry.id] = entry
	return entry.id
}

// Timer is a scope-bound handle to a timeout or interval. It is stopped
// automatically when its scope is disposed.
type Timer struct {
	rt      *Runtime
	id      TimerID
	active  bool
	cleanup *cleanupEntry
}

// After runs fn once after d unless the timer is stopped or s is disposed first.
func After(s *Scope, d time.Duration, fn func()) *Timer {
	t := &Timer{rt: s.rt}
	if s.Disposed() {
		return t
	}
	t.active = true
	t.id = s.rt.SetTimeout(d, func() {
		t.release()
		fn()
	})
	t.cleanup = s.addCleanup(func() { t.Stop() })
	return t
}

// Every runs fn every d until the timer is stopped or s is disposed.
func Every(s *Scope, d time.Duration, fn func()) *Timer {
	t := &Timer{rt: s.rt}
	if s.Disposed() {
		return t
	}
	t.active = true
	t.id = s.rt.SetInterval(d, fn)
	t.cleanup = s.addCleanup(func() { t.Stop() })
	return t
}

// Stop cancels the timer. It reports whether the timer was still pending.
func (t *Timer) Stop() bool {
	if t == nil || !t.active {
		return false
	}
	t.release()
	return t.rt.ClearTimeout(t.id)
}

// Active reports whether the timer has neither fired (for one-shot timers)
// nor been stopped.
func (t *Timer) Active() bool {
	return t != nil && t.active
}

func (t *Timer) release() {
	t.active = false
	if t.cleanup != nil {
		t.cleanup.fn = nil
		t.cleanup = nil
	}
}
