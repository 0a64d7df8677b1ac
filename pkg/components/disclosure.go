package components

import (
	"strconv"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/hooks"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// AccordionProps configures an Accordion.
type AccordionProps struct {
	Items    []AccordionItemProps
	Bordered bool
	TestID   string
}

// Accordion stacks independent collapsible sections.
type Accordion struct {
	base
	props AccordionProps
	items []*AccordionItem
}

// NewAccordion creates an Accordion and its items.
func NewAccordion(scope *reactive.Scope, props AccordionProps) *Accordion {
	a := &Accordion{base: newBase(scope, "Accordion"), props: props}
	for _, item := range props.Items {
		a.items = append(a.items, NewAccordionItem(scope, item))
	}
	return a
}

// Item returns item i.
func (a *Accordion) Item(i int) *AccordionItem {
	if i < 0 || i >= len(a.items) {
		return nil
	}
	return a.items[i]
}

// Render renders the accordion.
func (a *Accordion) Render() *dom.Element {
	return dom.Div(
		cls("accordion", when(a.props.Bordered, "bordered")),
		dom.TestID(a.props.TestID),
		dom.Map(a.items, func(_ int, item *AccordionItem) dom.Node { return dom.Embed(item) }),
	)
}

// AccordionItemProps configures one accordion section.
type AccordionItemProps struct {
	Title        string
	Content      dom.Slot
	DefaultOpen  bool
	Disabled     bool
	OnOpenChange func(bool)
	TestID       string
}

// AccordionItem is a section that owns its own open flag.
type AccordionItem struct {
	base
	props   AccordionItemProps
	open    *reactive.Signal[bool]
	content *hooks.Presence
	panelID string
}

// NewAccordionItem creates an AccordionItem.
func NewAccordionItem(scope *reactive.Scope, props AccordionItemProps) *AccordionItem {
	item := &AccordionItem{
		base:    newBase(scope, "AccordionItem"),
		props:   props,
		open:    reactive.NewSignal(scope, props.DefaultOpen),
		content: hooks.NewPresence(scope, props.Content),
	}
	if doc := item.document(); doc != nil {
		item.panelID = doc.NewID("glade-accordion-panel")
	}
	return item
}

// IsOpen returns the open state.
func (a *AccordionItem) IsOpen() reactive.Accessor[bool] { return a.open }

// Toggle flips the open state unless disabled.
func (a *AccordionItem) Toggle() {
	if a.props.Disabled {
		return
	}
	next := !a.open.Peek()
	a.open.Set(next)
	a.emit("on_open_change", func() {
		if a.props.OnOpenChange != nil {
			a.props.OnOpenChange(next)
		}
	})
}

// Render renders the section.
func (a *AccordionItem) Render() *dom.Element {
	open := a.open.Get()
	content := a.content.Render(open)
	return dom.Div(
		cls("accordion-item", when(open, "open"), when(a.props.Disabled, "disabled")),
		dom.TestID(a.props.TestID),
		dom.Button(
			part("accordion-item", "trigger"),
			dom.Type("button"),
			dom.AriaBool("expanded", open),
			dom.If(a.panelID != "", dom.Aria("controls", a.panelID)),
			dom.Disabled(a.props.Disabled),
			dom.OnClick(func(*dom.Event) { a.Toggle() }),
			dom.Span(part("accordion-item", "title"), dom.Text(a.props.Title)),
			dom.Span(part("accordion-item", "chevron", when(open, "open")), Icon(IconChevronDown)),
		),
		dom.If(open, dom.Div(
			part("accordion-item", "content"),
			dom.ID(a.panelID),
			dom.Role("region"),
			content,
		)),
	)
}

// CollapsibleProps configures a Collapsible. A non-nil Open makes the
// collapsible controlled; DefaultOpen only seeds the uncontrolled state.
type CollapsibleProps struct {
	Trigger      dom.Slot
	Content      dom.Slot
	Open         reactive.Accessor[bool]
	DefaultOpen  bool
	Disabled     bool
	OnOpenChange func(bool)
	TestID       string
}

// Collapsible shows or hides its content from a trigger that responds to
// click, Enter and Space.
type Collapsible struct {
	base
	props   CollapsibleProps
	open    *hooks.Controllable[bool]
	trigger dom.Node
	content *hooks.Presence
}

// NewCollapsible creates a Collapsible.
func NewCollapsible(scope *reactive.Scope, props CollapsibleProps) *Collapsible {
	c := &Collapsible{base: newBase(scope, "Collapsible"), props: props}
	c.open = hooks.NewControllable(scope, "Collapsible.open", props.Open, props.DefaultOpen, props.OnOpenChange)
	c.trigger = props.Trigger.Build(scope)
	c.content = hooks.NewPresence(scope, props.Content)
	return c
}

// IsOpen returns the authoritative open state.
func (c *Collapsible) IsOpen() reactive.Accessor[bool] { return c.open }

func (c *Collapsible) toggle() {
	if c.props.Disabled {
		return
	}
	c.open.Set(!c.open.Peek())
}

// Render renders the collapsible.
func (c *Collapsible) Render() *dom.Element {
	open := c.open.Get()
	content := c.content.Render(open)
	return dom.Div(
		cls("collapsible", when(open, "open"), when(c.props.Disabled, "disabled")),
		dom.TestID(c.props.TestID),
		dom.Div(
			part("collapsible", "trigger"),
			dom.Role("button"),
			dom.TabIndex(0),
			dom.AriaBool("expanded", open),
			dom.If(c.props.Disabled, dom.Aria("disabled", "true")),
			dom.OnClick(func(*dom.Event) { c.toggle() }),
			dom.OnKeyDown(func(ev *dom.Event) {
				if ev.Key == dom.KeyEnter || ev.Key == dom.KeySpace {
					ev.PreventDefault()
					c.toggle()
				}
			}),
			c.trigger,
		),
		dom.If(open, dom.Div(part("collapsible", "content"), content)),
	)
}

// Tab describes one tab and its panel.
type Tab struct {
	Label    string
	Icon     IconName
	Disabled bool
	Content  dom.Slot
}

// TabsProps configures Tabs. The selected index is owned by the caller.
type TabsProps struct {
	Tabs     []Tab
	Selected reactive.Accessor[int]
	OnChange func(int)
	Variant  TabsVariant
	TestID   string
}

// Tabs is a tab list with one panel per tab. Inactive panels stay mounted
// but hidden. Arrow keys, Home and End move between enabled tabs.
type Tabs struct {
	base
	props    TabsProps
	selected *hooks.Controllable[int]
	refs     hooks.RefList
	panels   []dom.Node
	ids      []string
}

// NewTabs creates Tabs.
func NewTabs(scope *reactive.Scope, props TabsProps) *Tabs {
	props.Variant = props.Variant.orDefault()
	t := &Tabs{base: newBase(scope, "Tabs"), props: props, refs: hooks.NewRefList(len(props.Tabs))}
	if props.Selected == nil {
		t.warn("no selected index supplied; tabs keep their own selection")
	}
	t.selected = hooks.NewControllable(scope, "Tabs.selected", props.Selected, t.firstEnabled(), props.OnChange)
	prefix := "glade-tabs"
	if doc := t.document(); doc != nil {
		prefix = doc.NewID("glade-tabs")
	}
	for i, tab := range props.Tabs {
		t.panels = append(t.panels, tab.Content.Build(scope))
		t.ids = append(t.ids, prefix+"-"+strconv.Itoa(i))
	}
	return t
}

// Selected returns the selected index.
func (t *Tabs) Selected() reactive.Accessor[int] { return t.selected }

func (t *Tabs) firstEnabled() int {
	for i, tab := range t.props.Tabs {
		if !tab.Disabled {
			return i
		}
	}
	return 0
}

// step returns the next enabled tab from i in direction dir, wrapping.
func (t *Tabs) step(i, dir int) int {
	n := len(t.props.Tabs)
	for k := 1; k <= n; k++ {
		j := ((i+dir*k)%n + n) % n
		if !t.props.Tabs[j].Disabled {
			return j
		}
	}
	return i
}

func (t *Tabs) choose(i int) {
	if i < 0 || i >= len(t.props.Tabs) || t.props.Tabs[i].Disabled {
		return
	}
	if i != t.selected.Peek() {
		t.selected.Set(i)
	}
	t.refs.Focus(i)
}

func (t *Tabs) keyDown(i int) dom.Handler {
	return func(ev *dom.Event) {
		n := len(t.props.Tabs)
		switch ev.Key {
		case dom.KeyArrowRight:
			t.choose(t.step(i, 1))
		case dom.KeyArrowLeft:
			t.choose(t.step(i, -1))
		case dom.KeyHome:
			t.choose(t.step(n-1, 1))
		case dom.KeyEnd:
			t.choose(t.step(0, -1))
		default:
			return
		}
		ev.PreventDefault()
	}
}

// Render renders the tab list and panels.
func (t *Tabs) Render() *dom.Element {
	selected := t.selected.Get()
	return dom.Div(
		cls("tabs", string(t.props.Variant)),
		dom.TestID(t.props.TestID),
		dom.Div(
			part("tabs", "list"),
			dom.Role("tablist"),
			dom.Aria("orientation", "horizontal"),
			dom.Map(t.props.Tabs, func(i int, tab Tab) dom.Node {
				active := i == selected
				tabIndex := -1
				if active {
					tabIndex = 0
				}
				return dom.Button(
					part("tabs", "tab", when(active, "active"), when(tab.Disabled, "disabled")),
					dom.Type("button"),
					dom.Role("tab"),
					dom.ID(t.ids[i]+"-tab"),
					dom.AriaBool("selected", active),
					dom.Aria("controls", t.ids[i]+"-panel"),
					dom.TabIndex(tabIndex),
					dom.Disabled(tab.Disabled),
					dom.WithRef(t.refs.At(i)),
					dom.OnClick(func(*dom.Event) { t.choose(i) }),
					dom.OnKeyDown(t.keyDown(i)),
					dom.If(tab.Icon != "", Icon(tab.Icon)),
					dom.Text(tab.Label),
				)
			}),
		),
		dom.Map(t.panels, func(i int, panel dom.Node) dom.Node {
			return TabPanel(t.ids[i], i == selected, panel)
		}),
	)
}

// TabPanel renders a panel; inactive panels are hidden.
func TabPanel(id string, active bool, nodes ...dom.Node) *dom.Element {
	return dom.Div(
		part("tabs", "panel"),
		dom.Role("tabpanel"),
		dom.ID(id+"-panel"),
		dom.Aria("labelledby", id+"-tab"),
		dom.Hidden(!active),
		dom.Group(nodes...),
	)
}
