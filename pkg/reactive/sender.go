package reactive

import "sync/atomic"

// Sender carries values from code running outside the loop (raw listeners,
// goroutines) into a callback that runs inside it. Send never blocks and is
// safe from any goroutine. Values are delivered in submission order while the
// owning scope is live; anything still queued when the scope is disposed is
// dropped.
type Sender[T any] struct {
	rt   *Runtime
	op   string
	fn   func(T)
	live atomic.Bool
}

// NewSender creates a sender owned by s that delivers to fn.
func NewSender[T any](s *Scope, fn func(T)) *Sender[T] {
	return NewNamedSender(s, "sender", fn)
}

// NewNamedSender is NewSender with an operation name used when logging a
// panicking callback.
func NewNamedSender[T any](s *Scope, op string, fn func(T)) *Sender[T] {
	snd := &Sender[T]{rt: s.rt, op: op, fn: fn}
	if s.Disposed() {
		return snd
	}
	snd.live.Store(true)
	s.OnCleanup(snd.Close)
	return snd
}

// Send queues v for delivery.
func (s *Sender[T]) Send(v T) {
	if !s.live.Load() {
		return
	}
	s.rt.Post(func() {
		if !s.live.Load() {
			return
		}
		s.rt.recoverInto(s.op, func() { s.fn(v) })
	})
}

// Close stops delivery. Pending values are dropped.
func (s *Sender[T]) Close() {
	s.live.Store(false)
}

// Live reports whether the sender still delivers.
func (s *Sender[T]) Live() bool {
	return s.live.Load()
}
