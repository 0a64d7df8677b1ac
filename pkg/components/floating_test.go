package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/dom/domtest"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

func TestPopoverToggleOutsideAndClose(t *testing.T) {
	t.Parallel()

	var pop *Popover
	var changes []bool
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		pop = NewPopover(s, PopoverProps{
			Trigger:      dom.Static(dom.Button(dom.TestID("trigger"), dom.Text("Info"))),
			Position:     PositionTopEnd,
			OnOpenChange: func(open bool) { changes = append(changes, open) },
			Content: func(s *reactive.Scope) dom.Node {
				return dom.Group(
					dom.P(dom.TestID("body"), dom.Text("Details")),
					dom.Embed(NewPopoverClose(s, "")),
				)
			},
		})
		return dom.ComponentFunc(func() *dom.Element {
			return dom.Div(dom.Embed(pop), dom.P(dom.TestID("outside")))
		})
	})

	tt.Click(tt.ByTestID("trigger"))
	require.True(t, pop.IsOpen().Get())
	content := tt.ByRole("dialog")
	require.True(t, content.HasClass("glade-popover__content--top-end"))

	tt.Click(tt.ByTestID("body"))
	require.True(t, pop.IsOpen().Get())

	tt.Click(tt.ByClass("glade-popover__close"))
	require.False(t, pop.IsOpen().Get())

	tt.Click(tt.ByTestID("trigger"))
	tt.Click(tt.ByTestID("outside"))
	require.False(t, pop.IsOpen().Get())
	require.Equal(t, []bool{true, false, true, false}, changes)
}

func TestPopoverControlled(t *testing.T) {
	t.Parallel()

	var open *reactive.Signal[bool]
	var requested []bool
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		open = reactive.NewSignal(s, false)
		return NewPopover(s, PopoverProps{
			Open:         open,
			OnOpenChange: func(v bool) { requested = append(requested, v) },
			Trigger:      dom.Static(dom.Button(dom.TestID("trigger"))),
			Content:      dom.Static(dom.P(dom.Text("body"))),
		})
	})

	tt.Click(tt.ByTestID("trigger"))
	require.Equal(t, []bool{true}, requested)
	require.False(t, tt.Exists(dom.ByRole("dialog")), "the caller has not opened it")

	tt.Do(func() { open.Set(true) })
	require.True(t, tt.Exists(dom.ByRole("dialog")))
}

func TestPopoverCloseOutsidePopoverWarnsOnly(t *testing.T) {
	t.Parallel()

	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		return NewPopoverClose(s, "Dismiss")
	})
	require.NotPanics(t, func() { tt.Click(tt.ByClass("glade-popover__close")) })
	require.Equal(t, "Dismiss", tt.ByClass("glade-popover__close").AttributeOr("aria-label", ""))
}

func mountHoverCard(t *testing.T) (*domtest.Tester, *HoverCard) {
	t.Helper()
	var card *HoverCard
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		card = NewHoverCard(s, HoverCardProps{
			Trigger: dom.Static(dom.Span(dom.Text("@glade"))),
			Content: dom.Static(dom.P(dom.Text("Profile"))),
		})
		return card
	})
	return tt, card
}

func TestHoverCardDelays(t *testing.T) {
	t.Parallel()

	tt, card := mountHoverCard(t)
	trigger := func() *dom.Element { return tt.ByClass("glade-hover-card__trigger") }

	tt.MouseEnter(trigger())
	tt.Advance(DefaultHoverOpenDelay - time.Millisecond)
	require.False(t, card.IsOpen().Get())
	tt.Advance(time.Millisecond)
	require.True(t, card.IsOpen().Get())

	tt.MouseLeave(trigger())
	tt.Advance(DefaultHoverCloseDelay / 2)
	tt.MouseEnter(tt.ByClass("glade-hover-card__content"))
	tt.Advance(time.Second)
	require.True(t, card.IsOpen().Get(), "entering the card cancels the close")

	tt.MouseLeave(tt.ByClass("glade-hover-card__content"))
	tt.Advance(DefaultHoverCloseDelay)
	require.False(t, card.IsOpen().Get())
}

func TestHoverCardCustomDelays(t *testing.T) {
	t.Parallel()

	var card *HoverCard
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		card = NewHoverCard(s, HoverCardProps{
			Trigger:    dom.Static(dom.Span(dom.Text("@glade"))),
			Content:    dom.Static(dom.P(dom.Text("Profile"))),
			OpenDelay:  50 * time.Millisecond,
			CloseDelay: -time.Second,
		})
		return card
	})
	trigger := tt.ByClass("glade-hover-card__trigger")

	tt.MouseEnter(trigger)
	tt.Advance(50 * time.Millisecond)
	require.True(t, card.IsOpen().Get())

	tt.MouseLeave(tt.ByClass("glade-hover-card__trigger"))
	tt.Advance(DefaultHoverCloseDelay - time.Millisecond)
	require.True(t, card.IsOpen().Get(), "a negative close delay means the default")
	tt.Advance(time.Millisecond)
	require.False(t, card.IsOpen().Get())
}

func TestHoverCardLeaveCancelsPendingOpen(t *testing.T) {
	t.Parallel()

	tt, card := mountHoverCard(t)
	trigger := tt.ByClass("glade-hover-card__trigger")

	tt.MouseEnter(trigger)
	tt.Advance(DefaultHoverOpenDelay / 2)
	tt.MouseLeave(trigger)
	tt.Advance(time.Second)
	require.False(t, card.IsOpen().Get())
	require.Zero(t, tt.Runtime().ActiveTimers())
}

func TestHoverCardUnmountCancelsTimers(t *testing.T) {
	t.Parallel()

	tt, card := mountHoverCard(t)
	tt.MouseEnter(tt.ByClass("glade-hover-card__trigger"))
	tt.Unmount()
	require.Zero(t, tt.Runtime().ActiveTimers())
	tt.Advance(time.Second)
	require.False(t, card.IsOpen().Get())
}

func TestTooltip(t *testing.T) {
	t.Parallel()

	var tip *Tooltip
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		tip = NewTooltip(s, TooltipProps{
			Content:  "Copy link",
			Position: PositionBottom,
			Trigger:  dom.Static(dom.Button(dom.TestID("trigger"))),
		})
		return tip
	})
	trigger := func() *dom.Element { return tt.ByClass("glade-tooltip__trigger") }

	tt.MouseEnter(trigger())
	require.False(t, tt.Exists(dom.ByRole("tooltip")))
	tt.Advance(DefaultTooltipShowDelay)
	tooltip := tt.ByRole("tooltip")
	require.Equal(t, "Copy link", tooltip.TextContent())
	require.True(t, tooltip.HasClass("glade-tooltip__content--bottom"))
	id, _ := tooltip.Attribute("id")
	require.Equal(t, id, trigger().AttributeOr("aria-describedby", ""))

	tt.MouseLeave(trigger())
	require.False(t, tip.IsVisible().Get())

	tt.Focus(trigger())
	require.True(t, tip.IsVisible().Get(), "keyboard focus shows it at once")
	tt.Blur()
	require.False(t, tip.IsVisible().Get())
}
