package reactive

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSenderDeliversInOrderExactlyOnce(t *testing.T) {
	t.Parallel()

	rt, _ := newTestRuntime()
	scope := rt.NewScope()
	var got []int
	snd := NewSender(scope, func(v int) { got = append(got, v) })

	for i := 0; i < 10; i++ {
		snd.Send(i)
	}
	rt.RunUntilIdle()
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestSenderFromGoroutineDeliversEverything(t *testing.T) {
	t.Parallel()

	rt, _ := newTestRuntime()
	scope := rt.NewScope()
	sum := 0
	snd := NewSender(scope, func(v int) { sum += v })

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snd.Send(i)
		}()
	}
	wg.Wait()
	rt.RunUntilIdle()
	require.Equal(t, 5050, sum)
}

func TestSenderDropsAfterDispose(t *testing.T) {
	t.Parallel()

	rt, _ := newTestRuntime()
	scope := rt.NewScope()
	var got []string
	snd := NewSender(scope, func(v string) { got = append(got, v) })

	snd.Send("queued-before-unmount")
	scope.Dispose()
	snd.Send("after-unmount")
	rt.RunUntilIdle()

	require.Empty(t, got)
	require.False(t, snd.Live())
}

func TestSenderCallbackWritesSignals(t *testing.T) {
	t.Parallel()

	rt, _ := newTestRuntime()
	scope := rt.NewScope()
	open := NewSignal(scope, false)
	var seen []bool
	rt.Do(func() {
		NewEffect(scope, func() { seen = append(seen, open.Get()) })
	})

	snd := NewNamedSender(scope, "shortcut", func(struct{}) { open.Set(true) })
	snd.Send(struct{}{})
	rt.RunUntilIdle()
	require.Equal(t, []bool{false, true}, seen)
}

func TestSenderOnDisposedScopeNeverDelivers(t *testing.T) {
	t.Parallel()

	rt, _ := newTestRuntime()
	scope := rt.NewScope()
	scope.Dispose()
	called := false
	snd := NewSender(scope, func(int) { called = true })
	snd.Send(1)
	rt.RunUntilIdle()
	require.False(t, called)
}
