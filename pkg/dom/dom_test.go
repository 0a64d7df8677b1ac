package dom

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

func newDoc(t *testing.T) (*reactive.Runtime, *Document, *HeadlessHost) {
	t.Helper()
	rt := reactive.New(reactive.WithClock(reactive.NewFakeClock()))
	host := NewHeadlessHost()
	doc := NewDocument(rt.NewScope(), WithHost(host))
	return rt, doc, host
}

func TestBuildersAndAccessors(t *testing.T) {
	t.Parallel()

	el := Div(
		ID("root"),
		Class("a", "b", ""),
		ClassIf(false, "hidden"),
		ClassIf(true, "c"),
		Style("width", "10px"),
		Style("width", "20px"),
		Data("glade-dropdown", ""),
		AriaBool("expanded", true),
		Role("menu"),
		TestID("menu"),
		Disabled(false),
		Span(Text("hello ")),
		Text("world"),
		If(false, Span(Text("never"))),
		nil,
	)

	require.Equal(t, "div", el.Tag)
	require.Equal(t, []string{"a", "b", "c"}, el.Classes())
	require.Equal(t, "20px", el.StyleValue("width"))
	require.True(t, el.HasAttribute("data-glade-dropdown"))
	require.Equal(t, "true", el.AttributeOr("aria-expanded", ""))
	require.False(t, el.HasAttribute("disabled"))
	require.Equal(t, "hello world", el.TextContent())
	require.Len(t, el.Children(), 1)
	require.Len(t, el.Nodes(), 2)
}

func TestValueAttributeSeedsLiveValue(t *testing.T) {
	t.Parallel()

	el := Input(Value("abc"))
	require.Equal(t, "abc", el.Value())
	el.SetValue("abcd")
	require.Equal(t, "abcd", el.Value())
	require.Equal(t, "abc", el.AttributeOr("value", ""))
}

func TestKeyChar(t *testing.T) {
	t.Parallel()

	c, ok := Char("k").Char()
	require.True(t, ok)
	require.Equal(t, "k", c)

	_, ok = KeyEnter.Char()
	require.False(t, ok)
}

func TestHTMLSerialization(t *testing.T) {
	t.Parallel()

	el := Div(Class("x"), Style("left", "4px"), Attr("title", `a"b`), Span(Text("<b>")), Input(Type("text")))
	out := OuterHTML(el)
	require.Equal(t, `<div class="x" style="left: 4px" title="a&#34;b"><span>&lt;b&gt;</span><input type="text"/></div>`, out)

	area := Textarea(Value("hi"), Attr("rows", "3"))
	require.Equal(t, `<textarea rows="3">hi</textarea>`, OuterHTML(area))
}

func TestIndentedHTML(t *testing.T) {
	t.Parallel()

	el := Div(Class("x"), Span(Text("<b>")), Text("tail"), Input(Type("text")), Ul(Li(Text("one"))), Div())
	var b strings.Builder
	require.NoError(t, RenderIndentedHTML(&b, el))
	require.Equal(t, `<div class="x">
  <span>&lt;b&gt;</span>
  tail
  <input type="text"/>
  <ul>
    <li>one</li>
  </ul>
  <div></div>
</div>
`, b.String())
}

func TestMountRendersAndRerendersOnSignalWrites(t *testing.T) {
	t.Parallel()

	rt, doc, _ := newDoc(t)
	var count *reactive.Signal[int]
	rt.Do(func() {
		doc.Mount(func(s *reactive.Scope) Component {
			count = reactive.NewSignal(s, 0)
			return ComponentFunc(func() *Element {
				return Div(TestID("counter"), Textf("count", count.Get()))
			})
		})
	})
	require.Equal(t, `<div data-testid="counter">count 0</div>`, doc.HTML())

	rt.Do(func() { count.Set(3) })
	require.Equal(t, "count 3", Find(doc.Body(), ByTestID("counter")).TextContent())
	require.Equal(t, 2, doc.Renders())

	rt.Do(doc.Unmount)
	require.Empty(t, doc.HTML())
	rt.Do(func() { count.Set(4) })
	require.Equal(t, 2, doc.Renders())
}

func TestDispatchBubblesToDocumentAndWindow(t *testing.T) {
	t.Parallel()

	rt, doc, _ := newDoc(t)
	var order []string
	rt.Do(func() {
		doc.Mount(func(s *reactive.Scope) Component {
			return ComponentFunc(func() *Element {
				return Div(TestID("outer"),
					OnClick(func(*Event) { order = append(order, "outer") }),
					Button(TestID("inner"), OnClick(func(e *Event) {
						order = append(order, "inner")
						require.Equal(t, "inner", e.CurrentTarget.AttributeOr("data-testid", ""))
					})),
				)
			})
		})
		doc.AddDocumentListener(EventClick, func(*Event) { order = append(order, "document") })
		doc.AddWindowListener(EventClick, func(*Event) { order = append(order, "window") })
	})

	inner := Find(doc.Body(), ByTestID("inner"))
	rt.Do(func() { doc.Dispatch(inner, NewEvent(EventClick)) })
	require.Equal(t, []string{"inner", "outer", "document", "window"}, order)
}

func TestStopPropagationAndNonBubbling(t *testing.T) {
	t.Parallel()

	rt, doc, _ := newDoc(t)
	windowHits := 0
	outerHits := 0
	rt.Do(func() {
		doc.Mount(func(s *reactive.Scope) Component {
			return ComponentFunc(func() *Element {
				return Div(
					On(EventMouseEnter, func(*Event) { outerHits++ }),
					OnClick(func(*Event) { outerHits++ }),
					Button(TestID("stop"), StopClick(), On(EventMouseEnter, func(*Event) {})),
				)
			})
		})
		doc.AddWindowListener(EventClick, func(*Event) { windowHits++ })
	})

	btn := Find(doc.Body(), ByTestID("stop"))
	rt.Do(func() {
		doc.Dispatch(btn, NewEvent(EventClick))
		doc.Dispatch(btn, NewEvent(EventMouseEnter))
	})
	require.Zero(t, windowHits)
	require.Zero(t, outerHits)
}

func TestListenerRemovalIsIdempotent(t *testing.T) {
	t.Parallel()

	_, doc, _ := newDoc(t)
	remove := doc.AddWindowListener(EventKeyDown, func(*Event) {})
	doc.AddWindowListener(EventKeyDown, func(*Event) {})
	require.Equal(t, 2, doc.ListenerCount(EventKeyDown))

	remove()
	remove()
	require.Equal(t, 1, doc.ListenerCount(EventKeyDown))
}

func TestPanickingHandlerDoesNotStopDispatch(t *testing.T) {
	t.Parallel()

	rt, doc, _ := newDoc(t)
	reached := false
	rt.Do(func() {
		doc.Mount(func(s *reactive.Scope) Component {
			return ComponentFunc(func() *Element {
				return Div(OnClick(func(*Event) { reached = true }),
					Button(TestID("bad"), OnClick(func(*Event) { panic("caller bug") })))
			})
		})
	})

	require.NotPanics(t, func() {
		rt.Do(func() { doc.Dispatch(Find(doc.Body(), ByTestID("bad")), NewEvent(EventClick)) })
	})
	require.True(t, reached)
}

func TestRefsBindClearAndFocusAcrossRenders(t *testing.T) {
	t.Parallel()

	rt, doc, _ := newDoc(t)
	ref := NewRef()
	var show, tick *reactive.Signal[bool]
	var focusEvents []string

	rt.Do(func() {
		doc.Mount(func(s *reactive.Scope) Component {
			show = reactive.NewSignal(s, true)
			tick = reactive.NewSignal(s, false)
			return ComponentFunc(func() *Element {
				_ = tick.Get()
				return Div(If(show.Get(), Input(WithRef(ref),
					On(EventFocus, func(*Event) { focusEvents = append(focusEvents, "focus") }),
					On(EventBlur, func(*Event) { focusEvents = append(focusEvents, "blur") }),
				)))
			})
		})
	})
	require.True(t, ref.Bound())

	rt.Do(func() { ref.SetFocus(true) })
	require.Same(t, ref.Element(), doc.ActiveElement())

	rt.Do(func() { tick.Set(true) })
	require.Same(t, ref.Element(), doc.ActiveElement(), "focus follows the ref into the new tree")

	rt.Do(func() { ref.SetFocus(false) })
	require.Nil(t, doc.ActiveElement())
	require.Equal(t, []string{"focus", "blur"}, focusEvents)

	rt.Do(func() { show.Set(false) })
	require.False(t, ref.Bound())
	require.NotPanics(t, func() { rt.Do(func() { ref.SetFocus(true) }) })
}

func TestFocusFollowsStructuralPathAcrossRenders(t *testing.T) {
	t.Parallel()

	rt, doc, _ := newDoc(t)
	var text *reactive.Signal[string]
	rt.Do(func() {
		doc.Mount(func(s *reactive.Scope) Component {
			text = reactive.NewSignal(s, "")
			return ComponentFunc(func() *Element {
				return Div(Span(Text(text.Get())), Textarea(Value(text.Get())), Button(Text("send")))
			})
		})
	})
	area := Find(doc.Body(), ByTag("textarea"))
	rt.Do(func() { doc.SetFocus(area) })

	rt.Do(func() { text.Set("hi") })
	next := Find(doc.Body(), ByTag("textarea"))
	require.NotSame(t, area, next)
	require.Same(t, next, doc.ActiveElement())

	path := doc.PathOf(next)
	require.Equal(t, []PathStep{{Index: 0, Tag: "div"}, {Index: 1, Tag: "textarea"}}, path)
	require.Same(t, next, doc.ElementAt(path))
	require.Nil(t, doc.ElementAt([]PathStep{{Index: 0, Tag: "div"}, {Index: 1, Tag: "button"}}))
	require.Same(t, Find(doc.Body(), ByTag("button")), doc.Relocate(Find(doc.Body(), ByTag("button")), nil))
}

func TestRefCallsBeforeBindWaitForMount(t *testing.T) {
	t.Parallel()

	rt, doc, _ := newDoc(t)
	ref := NewRef()
	var show *reactive.Signal[bool]
	rt.Do(func() {
		doc.Mount(func(s *reactive.Scope) Component {
			show = reactive.NewSignal(s, false)
			return ComponentFunc(func() *Element {
				return Div(If(show.Get(), Input(WithRef(ref))))
			})
		})
	})
	require.False(t, ref.Bound())

	rt.Do(func() { ref.SetFocus(true) })
	require.Nil(t, doc.ActiveElement())

	rt.Do(func() { show.Set(true) })
	require.True(t, ref.Bound())
	require.Same(t, ref.Element(), doc.ActiveElement())
}

func TestAsyncGeometryContinuations(t *testing.T) {
	t.Parallel()

	rt, doc, host := newDoc(t)
	ref := NewRef()
	rt.Do(func() {
		doc.Mount(func(s *reactive.Scope) Component {
			return ComponentFunc(func() *Element { return Div(WithRef(ref), TestID("box")) })
		})
	})

	var got Rect
	called := false
	rt.Do(func() {
		ref.BoundingRect(func(r Rect) { got, called = r, true })
	})
	require.False(t, called, "no layout configured means the continuation never runs")

	host.SetRect(ref, Rect{X: 10, Y: 20, Width: 100, Height: 50})
	host.SetScrollByTestID("box", ScrollMetrics{ScrollTop: 5, ClientHeight: 100, ScrollHeight: 400})

	var metrics ScrollMetrics
	rt.Do(func() {
		ref.BoundingRect(func(r Rect) { got, called = r, true })
		require.False(t, called, "continuations run in a later task")
		ref.ScrollMetrics(func(m ScrollMetrics) { metrics = m })
	})
	require.True(t, called)
	require.Equal(t, 110.0, got.Right())
	require.True(t, got.Contains(Point{X: 50, Y: 30}))
	require.True(t, metrics.AtTop(10))
	require.False(t, metrics.AtBottom(10))
}

func TestClipboardFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	rt, doc, host := newDoc(t)
	done := 0
	rt.Do(func() { doc.WriteClipboard("one", func() { done++ }) })
	require.Equal(t, "one", host.Clipboard())

	host.FailClipboard(errors.New("denied"))
	rt.Do(func() { doc.WriteClipboard("two", func() { done++ }) })
	require.Equal(t, "one", host.Clipboard())
	require.Equal(t, 1, done)
	require.Equal(t, 1, host.ClipboardWrites())
}

func TestQueries(t *testing.T) {
	t.Parallel()

	tree := Div(Data("glade-popover", ""),
		Ul(Role("listbox"),
			Li(Role("option"), Text("One")),
			Li(Role("option"), Class("selected"), Text("Two")),
		),
	)
	// Parent pointers are wired by Apply.
	options := FindAll(tree, ByRole("option"))
	require.Len(t, options, 2)
	require.Equal(t, options[1], Find(tree, ByClass("selected")))
	require.Equal(t, options[0], Find(tree, ByText("One")))
	require.True(t, HasAncestorAttr(options[0], "data-glade-popover"))
	require.False(t, HasAncestorAttr(options[0], "data-glade-dropdown"))
	require.Equal(t, "ul", Closest(options[0], ByTag("ul")).Tag)
	require.Nil(t, Find(tree, And(ByRole("option"), ByText("Three"))))
	require.True(t, strings.HasPrefix(OuterHTML(tree), "<div data-glade-popover"))
}

func TestUseDocumentFromDescendantScope(t *testing.T) {
	t.Parallel()

	rt := reactive.New()
	root := rt.NewScope()
	doc := NewDocument(root)
	found, ok := UseDocument(root.Child().Child())
	require.True(t, ok)
	require.Same(t, doc, found)

	_, ok = UseDocument(rt.NewScope())
	require.False(t, ok)
}

func TestSlots(t *testing.T) {
	t.Parallel()

	var nilSlot Slot
	require.Nil(t, nilSlot.Build(nil))
	require.Nil(t, Static())

	el := Div(Static(Text("a"), Text("b")).Build(nil))
	require.Equal(t, "ab", el.TextContent())
}
