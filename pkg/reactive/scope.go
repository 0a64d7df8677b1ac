package reactive

import (
	gladeerrors "github.com/alexisbeaulieu97/glade/pkg/errors"
)

type cleanupEntry struct {
	fn func()
}

// Scope owns reactive resources: signals, effects, timers, listeners and child
// scopes. Disposing a scope disposes its children first, then runs its
// cleanups in reverse registration order.
type Scope struct {
	rt       *Runtime
	parent   *Scope
	children []*Scope
	cleanups []*cleanupEntry
	values   map[any]any
	disposed bool
}

// NewScope creates a root scope.
func (r *Runtime) NewScope() *Scope {
	return &Scope{rt: r}
}

// Runtime returns the runtime the scope belongs to.
func (s *Scope) Runtime() *Runtime {
	return s.rt
}

// Parent returns the enclosing scope, or nil for a root.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Child creates a scope owned by s.
func (s *Scope) Child() *Scope {
	child := &Scope{rt: s.rt, parent: s}
	if s.disposed {
		child.disposed = true
		return child
	}
	s.children = append(s.children, child)
	return child
}

// OnCleanup registers fn to run when the scope is disposed. On an already
// disposed scope fn runs immediately.
func (s *Scope) OnCleanup(fn func()) {
	if fn == nil {
		return
	}
	if s.disposed {
		s.rt.recoverInto("cleanup", fn)
		return
	}
	s.addCleanup(fn)
}

func (s *Scope) addCleanup(fn func()) *cleanupEntry {
	entry := &cleanupEntry{fn: fn}
	// Drop entries released early (fired timers) so long-lived scopes stay small.
	if len(s.cleanups) >= 64 {
		live := s.cleanups[:0]
		for _, c := range s.cleanups {
			if c.fn != nil {
				live = append(live, c)
			}
		}
		s.cleanups = live
	}
	s.cleanups = append(s.cleanups, entry)
	return entry
}

// Disposed reports whether Dispose has run.
func (s *Scope) Disposed() bool {
	return s.disposed
}

// Dispose tears the scope down. It is idempotent.
func (s *Scope) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	for i := len(s.children) - 1; i >= 0; i-- {
		child := s.children[i]
		child.parent = nil
		child.Dispose()
	}
	s.children = nil

	for i := len(s.cleanups) - 1; i >= 0; i-- {
		if fn := s.cleanups[i].fn; fn != nil {
			s.cleanups[i].fn = nil
			s.rt.recoverInto("cleanup", fn)
		}
	}
	s.cleanups = nil

	if s.parent != nil {
		siblings := s.parent.children
		for i, c := range siblings {
			if c == s {
				s.parent.children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
		s.parent = nil
	}
}

// Guard invokes a caller-supplied handler, recovering a panic so the calling
// component's own state stays consistent. It reports whether fn completed.
func (s *Scope) Guard(op string, fn func()) bool {
	if fn == nil {
		return true
	}
	return s.rt.recoverInto(op, fn)
}

// Warn emits a one-time contract warning for component.
func (s *Scope) Warn(component, message string) {
	err := gladeerrors.NewContractError(component, message)
	s.rt.WarnOnce(err.Error(), err.Error())
}

// ContextKey identifies a context value of type T.
type ContextKey[T any] struct {
	name string
}

// NewContextKey creates a distinct context key. The name is only used for
// debugging.
func NewContextKey[T any](name string) *ContextKey[T] {
	return &ContextKey[T]{name: name}
}

// String returns the key name.
func (k *ContextKey[T]) String() string {
	return k.name
}

// Provide makes v available to s and every scope beneath it.
func Provide[T any](s *Scope, key *ContextKey[T], v T) {
	if s.values == nil {
		s.values = make(map[any]any)
	}
	s.values[key] = v
}

// UseContext looks key up in s and its ancestors.
func UseContext[T any](s *Scope, key *ContextKey[T]) (T, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.values[key]; ok {
			return v.(T), true
		}
	}
	var zero T
	return zero, false
}
