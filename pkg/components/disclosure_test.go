package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/dom/domtest"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

func TestAccordionItemsAreIndependent(t *testing.T) {
	t.Parallel()

	var acc *Accordion
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		acc = NewAccordion(s, AccordionProps{
			Bordered: true,
			Items: []AccordionItemProps{
				{Title: "Shipping", TestID: "shipping", Content: dom.Static(dom.Text("3-5 days"))},
				{Title: "Returns", TestID: "returns", DefaultOpen: true, Content: dom.Static(dom.Text("30 days"))},
				{Title: "Warranty", TestID: "warranty", Disabled: true, Content: dom.Static(dom.Text("1 year"))},
			},
		})
		return acc
	})
	require.True(t, tt.ByClass("glade-accordion").HasClass("glade-accordion--bordered"))
	require.True(t, acc.Item(1).IsOpen().Get())
	require.Nil(t, acc.Item(3))

	trigger := func(id string) *dom.Element {
		return dom.Find(tt.ByTestID(id), dom.ByClass("glade-accordion-item__trigger"))
	}
	tt.Click(trigger("shipping"))
	require.True(t, acc.Item(0).IsOpen().Get())
	require.True(t, acc.Item(1).IsOpen().Get(), "opening one leaves the others alone")
	require.Equal(t, "true", trigger("shipping").AttributeOr("aria-expanded", ""))
	region := dom.Find(tt.ByTestID("shipping"), dom.ByRole("region"))
	require.Equal(t, "3-5 days", region.TextContent())
	controls, _ := trigger("shipping").Attribute("aria-controls")
	require.Equal(t, controls, region.AttributeOr("id", ""))

	tt.Click(trigger("returns"))
	require.False(t, acc.Item(1).IsOpen().Get())
	require.Nil(t, dom.Find(tt.ByTestID("returns"), dom.ByRole("region")))

	tt.Click(trigger("warranty"))
	require.False(t, acc.Item(2).IsOpen().Get())
}

func TestCollapsibleUncontrolled(t *testing.T) {
	t.Parallel()

	var c *Collapsible
	var changes []bool
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		c = NewCollapsible(s, CollapsibleProps{
			Trigger:      dom.Static(dom.Text("More")),
			Content:      dom.Static(dom.P(dom.TestID("more"))),
			OnOpenChange: func(v bool) { changes = append(changes, v) },
		})
		return c
	})
	trigger := func() *dom.Element { return tt.ByClass("glade-collapsible__trigger") }

	tt.Click(trigger())
	require.True(t, c.IsOpen().Get())
	require.True(t, tt.Exists(dom.ByTestID("more")))

	ev := tt.KeyDown(trigger(), dom.KeyEnter)
	require.True(t, ev.DefaultPrevented())
	require.False(t, c.IsOpen().Get())

	ev = tt.KeyDown(trigger(), dom.KeySpace)
	require.True(t, ev.DefaultPrevented())
	require.True(t, c.IsOpen().Get())
	require.Equal(t, []bool{true, false, true}, changes)

	tt.KeyDown(trigger(), dom.Char("x"))
	require.True(t, c.IsOpen().Get())
}

func TestCollapsibleControlledAndDisabled(t *testing.T) {
	t.Parallel()

	var open *reactive.Signal[bool]
	var requested []bool
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		open = reactive.NewSignal(s, true)
		return NewCollapsible(s, CollapsibleProps{
			Open:         open,
			DefaultOpen:  false,
			Trigger:      dom.Static(dom.Text("More")),
			Content:      dom.Static(dom.P(dom.TestID("more"))),
			OnOpenChange: func(v bool) { requested = append(requested, v) },
		})
	})
	require.True(t, tt.Exists(dom.ByTestID("more")), "the controlled value wins over the default")

	renders := tt.Document().Renders()
	tt.Click(tt.ByClass("glade-collapsible__trigger"))
	require.Equal(t, []bool{false}, requested)
	require.True(t, tt.Exists(dom.ByTestID("more")), "unchanged until the caller writes")
	require.Equal(t, renders, tt.Document().Renders())

	tt.Do(func() { open.Set(false) })
	require.False(t, tt.Exists(dom.ByTestID("more")))

	var disabled *Collapsible
	tt2 := domtest.New(t, func(s *reactive.Scope) dom.Component {
		disabled = NewCollapsible(s, CollapsibleProps{Disabled: true, Trigger: dom.Static(dom.Text("x"))})
		return disabled
	})
	trigger := tt2.ByClass("glade-collapsible__trigger")
	tt2.Click(trigger)
	tt2.KeyDown(tt2.ByClass("glade-collapsible__trigger"), dom.KeyEnter)
	tt2.KeyDown(tt2.ByClass("glade-collapsible__trigger"), dom.KeySpace)
	require.False(t, disabled.IsOpen().Get())
	require.Equal(t, "true", trigger.AttributeOr("aria-disabled", ""))
}

func mountTabs(t *testing.T) (*domtest.Tester, *reactive.Signal[int]) {
	t.Helper()
	var selected *reactive.Signal[int]
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		selected = reactive.NewSignal(s, 0)
		return NewTabs(s, TabsProps{
			Selected: selected,
			OnChange: selected.Set,
			Variant:  TabsPills,
			Tabs: []Tab{
				{Label: "Overview", Content: dom.Static(dom.Text("overview"))},
				{Label: "Billing", Disabled: true, Content: dom.Static(dom.Text("billing"))},
				{Label: "Members", Content: dom.Static(dom.Text("members"))},
				{Label: "Settings", Content: dom.Static(dom.Text("settings"))},
			},
		})
	})
	return tt, selected
}

func TestTabsSelection(t *testing.T) {
	t.Parallel()

	tt, selected := mountTabs(t)
	tabs := tt.FindAll(dom.ByRole("tab"))
	require.Len(t, tabs, 4)
	require.Equal(t, "true", tabs[0].AttributeOr("aria-selected", ""))
	require.Equal(t, "false", tabs[2].AttributeOr("aria-selected", ""))

	panels := tt.FindAll(dom.ByRole("tabpanel"))
	require.Len(t, panels, 4)
	require.False(t, panels[0].HasAttribute("hidden"))
	require.True(t, panels[2].HasAttribute("hidden"))

	tt.Click(tt.ByText("Members"))
	require.Equal(t, 2, selected.Peek())
	panels = tt.FindAll(dom.ByRole("tabpanel"))
	require.False(t, panels[2].HasAttribute("hidden"))
	require.True(t, panels[0].HasAttribute("hidden"))

	tt.Click(tt.ByText("Billing"))
	require.Equal(t, 2, selected.Peek(), "disabled tabs cannot be chosen")
}

func TestTabsArrowKeysSkipDisabled(t *testing.T) {
	t.Parallel()

	tt, selected := mountTabs(t)
	tab := func(i int) *dom.Element { return tt.FindAll(dom.ByRole("tab"))[i] }

	tt.KeyDown(tab(0), dom.KeyArrowRight)
	require.Equal(t, 2, selected.Peek())
	require.Same(t, tab(2), tt.Document().ActiveElement())

	tt.KeyDown(tab(2), dom.KeyArrowLeft)
	require.Zero(t, selected.Peek())

	tt.KeyDown(tab(0), dom.KeyArrowLeft)
	require.Equal(t, 3, selected.Peek(), "wraps to the end")

	tt.KeyDown(tab(3), dom.KeyArrowRight)
	require.Zero(t, selected.Peek())

	tt.KeyDown(tab(0), dom.KeyEnd)
	require.Equal(t, 3, selected.Peek())
	tt.KeyDown(tab(3), dom.KeyHome)
	require.Zero(t, selected.Peek())
}
