package reactive

import "sort"

// computation is an observer: something that re-runs (or marks itself dirty)
// when a signal it read changes.
type computation struct {
	rt      *Runtime
	id      uint64
	fn      func()
	sources map[*source]struct{}

	// invalidate replaces scheduling for memos, which only mark themselves dirty.
	invalidate func()

	scheduled bool
	disposed  bool
}

func (r *Runtime) newComputation(fn func()) *computation {
	r.nextComp++
	return &computation{rt: r, id: r.nextComp, fn: fn, sources: make(map[*source]struct{})}
}

func (c *computation) notify() {
	if c.disposed {
		return
	}
	if c.invalidate != nil {
		c.invalidate()
		return
	}
	c.rt.schedule(c)
}

func (c *computation) clearSources() {
	for src := range c.sources {
		delete(src.observers, c)
	}
	clear(c.sources)
}

func (c *computation) run() {
	c.clearSources()
	prev := c.rt.tracking
	c.rt.tracking = c
	defer func() { c.rt.tracking = prev }()
	c.rt.recoverInto("effect", c.fn)
}

func (c *computation) dispose() {
	c.disposed = true
	c.clearSources()
}

// source is the subscriber set behind every readable cell.
type source struct {
	observers map[*computation]struct{}
}

func (s *source) track(r *Runtime) {
	c := r.tracking
	if c == nil || c.disposed {
		return
	}
	if s.observers == nil {
		s.observers = make(map[*computation]struct{})
	}
	s.observers[c] = struct{}{}
	c.sources[s] = struct{}{}
}

func (s *source) notify() {
	if len(s.observers) == 0 {
		return
	}
	observers := make([]*computation, 0, len(s.observers))
	for c := range s.observers {
		observers = append(observers, c)
	}
	// Creation order keeps outer renders ahead of the effects they create.
	sort.Slice(observers, func(i, j int) bool { return observers[i].id < observers[j].id })
	for _, c := range observers {
		c.notify()
	}
}

// Accessor is a read-only reactive value. Signal, Memo and Static satisfy it.
type Accessor[T any] interface {
	Get() T
}

type staticAccessor[T any] struct{ v T }

func (s staticAccessor[T]) Get() T { return s.v }

// Static wraps a constant as an Accessor.
func Static[T any](v T) Accessor[T] {
	return staticAccessor[T]{v: v}
}

// AccessorFunc adapts a function to Accessor. Signals read inside fn are
// tracked by whoever calls Get.
type AccessorFunc[T any] func() T

// Get calls f.
func (f AccessorFunc[T]) Get() T { return f() }

// Signal is a reactive cell. Reads inside an observer subscribe it; writes
// schedule every subscriber.
type Signal[T any] struct {
	rt    *Runtime
	src   source
	value T
}

// NewSignal creates a signal owned by s.
func NewSignal[T any](s *Scope, initial T) *Signal[T] {
	sig := &Signal[T]{rt: s.rt, value: initial}
	s.OnCleanup(func() { sig.src.observers = nil })
	return sig
}

// Get returns the value and subscribes the running observer.
func (s *Signal[T]) Get() T {
	s.src.track(s.rt)
	return s.value
}

// Peek returns the value without subscribing.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set stores v and schedules subscribers.
func (s *Signal[T]) Set(v T) {
	s.value = v
	s.src.notify()
}

// Update applies fn to the current value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Memo is a derived value. Upstream changes mark it dirty; it recomputes the
// next time it is read.
type Memo[T any] struct {
	rt    *Runtime
	src   source
	comp  *computation
	fn    func() T
	value T
	dirty bool
}

// NewMemo creates a memo owned by s.
func NewMemo[T any](s *Scope, fn func() T) *Memo[T] {
	m := &Memo[T]{rt: s.rt, fn: fn, dirty: true}
	m.comp = s.rt.newComputation(nil)
	m.comp.invalidate = func() {
		if m.dirty {
			return
		}
		m.dirty = true
		m.src.notify()
	}
	s.OnCleanup(m.comp.dispose)
	return m
}

// Get returns the current derived value, recomputing it if needed.
func (m *Memo[T]) Get() T {
	m.src.track(m.rt)
	if m.dirty {
		m.recompute()
	}
	return m.value
}

func (m *Memo[T]) recompute() {
	m.comp.clearSources()
	prev := m.rt.tracking
	if !m.comp.disposed {
		m.rt.tracking = m.comp
	} else {
		m.rt.tracking = nil
	}
	defer func() { m.rt.tracking = prev }()
	m.value = m.fn()
	m.dirty = m.comp.disposed
}

// Effect re-runs fn whenever a signal it read changes. The first run happens
// at the end of the current task.
type Effect struct {
	comp *computation
}

// NewEffect creates an effect owned by s.
func NewEffect(s *Scope, fn func()) *Effect {
	e := &Effect{comp: s.rt.newComputation(fn)}
	if s.Disposed() {
		e.comp.disposed = true
		return e
	}
	s.OnCleanup(e.comp.dispose)
	s.rt.schedule(e.comp)
	return e
}

// Dispose stops the effect.
func (e *Effect) Dispose() {
	e.comp.dispose()
}
