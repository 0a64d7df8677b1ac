package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/dom/domtest"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

type menuFixture struct {
	tt         *domtest.Tester
	dropdown   *Dropdown
	openEvents []bool
	clicks     map[string]int
}

func mountDropdown(t *testing.T, disabled bool) *menuFixture {
	t.Helper()
	f := &menuFixture{clicks: map[string]int{}}
	f.tt = domtest.New(t, func(s *reactive.Scope) dom.Component {
		f.dropdown = NewDropdown(s, DropdownProps{
			Trigger:      dom.Static(dom.Span(dom.Text("Actions"))),
			Disabled:     disabled,
			TestID:       "dropdown",
			OnOpenChange: func(open bool) { f.openEvents = append(f.openEvents, open) },
			Content: func(s *reactive.Scope) dom.Node {
				return dom.Group(
					dom.Embed(NewDropdownItem(s, MenuItemProps{Label: "Edit", TestID: "edit", OnClick: func() { f.clicks["edit"]++ }})),
					dom.Embed(NewDropdownItem(s, MenuItemProps{Label: "Pin", TestID: "pin", KeepOpen: true, OnClick: func() { f.clicks["pin"]++ }})),
					DropdownDivider(),
					dom.Embed(NewDropdownItem(s, MenuItemProps{Label: "Delete", TestID: "delete", Disabled: true, Danger: true, OnClick: func() { f.clicks["delete"]++ }})),
				)
			},
		})
		return dom.ComponentFunc(func() *dom.Element {
			return dom.Div(
				dom.Embed(f.dropdown),
				dom.P(dom.TestID("outside"), dom.Text("elsewhere")),
			)
		})
	})
	return f
}

func (f *menuFixture) trigger() *dom.Element {
	return f.tt.ByClass("glade-dropdown__trigger")
}

func TestDropdownOutsideClick(t *testing.T) {
	t.Parallel()

	f := mountDropdown(t, false)
	tt := f.tt
	require.False(t, tt.Exists(dom.ByRole("menu")))

	tt.Click(f.trigger())
	require.True(t, f.dropdown.IsOpen().Get())
	require.Equal(t, "true", f.trigger().AttributeOr("aria-expanded", ""))

	tt.Click(tt.ByRole("menu"))
	require.True(t, f.dropdown.IsOpen().Get(), "clicks inside the menu keep it open")

	tt.Click(tt.ByTestID("outside"))
	require.False(t, f.dropdown.IsOpen().Get())
	require.Equal(t, []bool{true, false}, f.openEvents)
	require.Empty(t, f.clicks)

	tt.Click(tt.ByTestID("outside"))
	require.Equal(t, []bool{true, false}, f.openEvents, "closes exactly once")
}

func TestDropdownItemClosesUnlessKeepOpen(t *testing.T) {
	t.Parallel()

	f := mountDropdown(t, false)
	tt := f.tt

	tt.Click(f.trigger())
	tt.Click(tt.ByTestID("pin"))
	require.Equal(t, 1, f.clicks["pin"])
	require.True(t, f.dropdown.IsOpen().Get())

	tt.Click(tt.ByTestID("delete"))
	require.Zero(t, f.clicks["delete"])
	require.True(t, f.dropdown.IsOpen().Get())
	require.Equal(t, "true", tt.ByTestID("delete").AttributeOr("aria-disabled", ""))

	tt.Click(tt.ByTestID("edit"))
	require.Equal(t, 1, f.clicks["edit"])
	require.False(t, f.dropdown.IsOpen().Get())
	require.False(t, tt.Exists(dom.ByTestID("edit")), "content unmounts on close")
}

func TestDropdownEscapeAndToggle(t *testing.T) {
	t.Parallel()

	f := mountDropdown(t, false)
	tt := f.tt

	tt.Click(f.trigger())
	tt.KeyDown(nil, dom.KeyEscape)
	require.False(t, f.dropdown.IsOpen().Get())

	tt.Click(f.trigger())
	tt.Click(f.trigger())
	require.False(t, f.dropdown.IsOpen().Get())

	tt.Click(f.trigger())
	tt.KeyDown(tt.ByTestID("edit"), dom.KeyEnter)
	require.Equal(t, 1, f.clicks["edit"])
	require.False(t, f.dropdown.IsOpen().Get())
}

func TestDropdownDisabled(t *testing.T) {
	t.Parallel()

	f := mountDropdown(t, true)
	f.tt.Click(f.trigger())
	require.False(t, f.dropdown.IsOpen().Get())
}

func TestDropdownReleasesListenersOnUnmount(t *testing.T) {
	t.Parallel()

	f := mountDropdown(t, false)
	tt := f.tt
	require.Positive(t, tt.Document().ListenerCount(dom.EventClick))
	tt.Click(f.trigger())

	tt.Unmount()
	require.Zero(t, tt.Document().ListenerCount(dom.EventClick))
	require.Zero(t, tt.Document().ListenerCount(dom.EventKeyDown))
	require.NotPanics(t, func() { tt.KeyDown(nil, dom.KeyEscape) })
	require.Equal(t, []bool{true}, f.openEvents)
}

func TestMenuItemOutsideMenuStillFires(t *testing.T) {
	t.Parallel()

	clicked := 0
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		return NewDropdownItem(s, MenuItemProps{Label: "Loose", TestID: "loose", OnClick: func() { clicked++ }})
	})
	tt.Click(tt.ByTestID("loose"))
	require.Equal(t, 1, clicked)
}

func TestContextMenu(t *testing.T) {
	t.Parallel()

	var menu *ContextMenu
	copied := 0
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		menu = NewContextMenu(s, ContextMenuProps{
			Area: dom.Static(dom.Div(dom.TestID("area"), dom.Text("Right-click me"))),
			Content: func(s *reactive.Scope) dom.Node {
				return dom.Embed(NewContextMenuItem(s, MenuItemProps{Label: "Copy", TestID: "copy", OnClick: func() { copied++ }}))
			},
		})
		return dom.ComponentFunc(func() *dom.Element {
			return dom.Div(dom.Embed(menu), dom.P(dom.TestID("outside")))
		})
	})

	ev := tt.RightClick(tt.ByTestID("area"), dom.Point{X: 120, Y: 48})
	require.True(t, ev.DefaultPrevented())
	require.True(t, menu.IsOpen().Get())
	require.Equal(t, dom.Point{X: 120, Y: 48}, menu.Position().Get())
	content := tt.ByClass("glade-context-menu__content")
	require.Equal(t, "120px", content.StyleValue("left"))
	require.Equal(t, "48px", content.StyleValue("top"))

	tt.Click(tt.ByTestID("copy"))
	require.Equal(t, 1, copied)
	require.False(t, menu.IsOpen().Get())

	tt.RightClick(tt.ByTestID("area"), dom.Point{X: 5, Y: 6})
	tt.Click(tt.ByTestID("area"))
	require.False(t, menu.IsOpen().Get(), "the area itself is outside the menu")

	tt.RightClick(tt.ByTestID("area"), dom.Point{X: 5, Y: 6})
	tt.KeyDown(nil, dom.KeyEscape)
	require.False(t, menu.IsOpen().Get())
}
