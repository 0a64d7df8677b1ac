package components

import (
	"time"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/hooks"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// Hover timing defaults.
const (
	DefaultHoverOpenDelay   = 200 * time.Millisecond
	DefaultHoverCloseDelay  = 100 * time.Millisecond
	DefaultTooltipShowDelay = 200 * time.Millisecond
)

// PopoverContext lets popover content close its popover.
type PopoverContext struct {
	IsOpen reactive.Accessor[bool]
	Close  func()
}

var popoverKey = reactive.NewContextKey[PopoverContext]("components.popover")

// PopoverProps configures a Popover.
type PopoverProps struct {
	Trigger      dom.Slot
	Content      dom.Slot
	Position     Position
	Open         reactive.Accessor[bool]
	DefaultOpen  bool
	OnOpenChange func(bool)
	TestID       string
}

// Popover toggles floating content on trigger click and closes on clicks
// outside it.
type Popover struct {
	base
	props    PopoverProps
	open     *hooks.Controllable[bool]
	boundary hooks.Boundary
	trigger  dom.Node
	content  *hooks.Presence
}

// NewPopover creates a Popover.
func NewPopover(scope *reactive.Scope, props PopoverProps) *Popover {
	props.Position = props.Position.orDefault()
	p := &Popover{
		base:     newBase(scope, "Popover"),
		props:    props,
		boundary: hooks.NewBoundary(scope, "data-glade-popover"),
	}
	p.open = hooks.NewControllable(scope, "Popover.open", props.Open, props.DefaultOpen, props.OnOpenChange)
	reactive.Provide(scope, popoverKey, PopoverContext{IsOpen: p.open, Close: func() { p.setOpen(false) }})
	p.trigger = props.Trigger.Build(scope)
	p.content = hooks.NewPresence(scope, props.Content)
	hooks.UseClickOutside(scope, p.boundary, p.open, func() { p.setOpen(false) })
	return p
}

// IsOpen returns the open state.
func (p *Popover) IsOpen() reactive.Accessor[bool] { return p.open }

func (p *Popover) setOpen(open bool) {
	if p.open.Peek() != open {
		p.open.Set(open)
	}
}

// Render renders the popover.
func (p *Popover) Render() *dom.Element {
	open := p.open.Get()
	content := p.content.Render(open)
	return dom.Div(
		cls("popover"),
		p.boundary.Node(),
		dom.TestID(p.props.TestID),
		dom.Div(
			part("popover", "trigger"),
			dom.Aria("haspopup", "dialog"),
			dom.AriaBool("expanded", open),
			dom.OnClick(func(*dom.Event) { p.setOpen(!p.open.Peek()) }),
			p.trigger,
		),
		dom.If(open, dom.Div(
			part("popover", "content", string(p.props.Position)),
			dom.Role("dialog"),
			content,
		)),
	)
}

// PopoverClose is a button that closes the enclosing popover.
type PopoverClose struct {
	base
	label string
	ctx   PopoverContext
	ok    bool
}

// NewPopoverClose creates a close button for popover content.
func NewPopoverClose(scope *reactive.Scope, label string) *PopoverClose {
	c := &PopoverClose{base: newBase(scope, "PopoverClose"), label: label}
	c.ctx, c.ok = reactive.UseContext(scope, popoverKey)
	if !c.ok {
		c.warn("used outside a popover")
	}
	return c
}

// Render renders the button.
func (c *PopoverClose) Render() *dom.Element {
	label := c.label
	if label == "" {
		label = "Close"
	}
	return dom.Button(
		part("popover", "close"),
		dom.Type("button"),
		dom.Aria("label", label),
		dom.OnClick(func(*dom.Event) {
			if c.ok {
				c.ctx.Close()
			}
		}),
		Icon(IconClose),
	)
}

// HoverCardProps configures a HoverCard.
type HoverCardProps struct {
	Trigger  dom.Slot
	Content  dom.Slot
	Position Position
	// OpenDelay and CloseDelay of zero or less mean DefaultHoverOpenDelay and
	// DefaultHoverCloseDelay; there is no way to ask for an instant card.
	OpenDelay  time.Duration
	CloseDelay time.Duration
	TestID     string
}

// HoverCard shows rich content after the pointer rests on its trigger and
// hides it shortly after the pointer leaves both trigger and card.
type HoverCard struct {
	base
	props HoverCardProps

	open          *reactive.Signal[bool]
	intentToOpen  *reactive.Signal[bool]
	intentToClose *reactive.Signal[bool]
	openTask      *hooks.Delayed
	closeTask     *hooks.Delayed

	trigger dom.Node
	content *hooks.Presence
}

// NewHoverCard creates a HoverCard.
func NewHoverCard(scope *reactive.Scope, props HoverCardProps) *HoverCard {
	props.Position = props.Position.orDefault()
	if props.OpenDelay <= 0 {
		props.OpenDelay = DefaultHoverOpenDelay
	}
	if props.CloseDelay <= 0 {
		props.CloseDelay = DefaultHoverCloseDelay
	}
	h := &HoverCard{
		base:          newBase(scope, "HoverCard"),
		props:         props,
		open:          reactive.NewSignal(scope, false),
		intentToOpen:  reactive.NewSignal(scope, false),
		intentToClose: reactive.NewSignal(scope, false),
		openTask:      hooks.NewDelayed(scope),
		closeTask:     hooks.NewDelayed(scope),
	}
	h.trigger = props.Trigger.Build(scope)
	h.content = hooks.NewPresence(scope, props.Content)
	return h
}

// IsOpen returns the open state.
func (h *HoverCard) IsOpen() reactive.Accessor[bool] { return h.open }

func (h *HoverCard) pointerEnterTrigger(*dom.Event) {
	h.intentToClose.Set(false)
	h.closeTask.Cancel()
	h.intentToOpen.Set(true)
	h.openTask.Schedule(h.props.OpenDelay, func() {
		if h.intentToOpen.Peek() {
			h.open.Set(true)
		}
	})
}

func (h *HoverCard) pointerEnterCard(*dom.Event) {
	h.intentToClose.Set(false)
	h.closeTask.Cancel()
}

func (h *HoverCard) pointerLeave(*dom.Event) {
	h.intentToOpen.Set(false)
	h.openTask.Cancel()
	h.intentToClose.Set(true)
	h.closeTask.Schedule(h.props.CloseDelay, func() {
		if h.intentToClose.Peek() {
			h.open.Set(false)
		}
	})
}

// Render renders the hover card.
func (h *HoverCard) Render() *dom.Element {
	open := h.open.Get()
	content := h.content.Render(open)
	return dom.Div(
		cls("hover-card"),
		dom.TestID(h.props.TestID),
		dom.Div(
			part("hover-card", "trigger"),
			dom.On(dom.EventMouseEnter, h.pointerEnterTrigger),
			dom.On(dom.EventMouseLeave, h.pointerLeave),
			h.trigger,
		),
		dom.If(open, dom.Div(
			part("hover-card", "content", string(h.props.Position)),
			dom.On(dom.EventMouseEnter, h.pointerEnterCard),
			dom.On(dom.EventMouseLeave, h.pointerLeave),
			content,
		)),
	)
}

// TooltipProps configures a Tooltip.
type TooltipProps struct {
	Content  string
	Trigger  dom.Slot
	Position Position
	Delay    time.Duration
	TestID   string
}

// Tooltip shows a short description after a hover delay, or immediately on
// keyboard focus.
type Tooltip struct {
	base
	props   TooltipProps
	visible *reactive.Signal[bool]
	hovered *reactive.Signal[bool]
	show    *hooks.Delayed
	trigger dom.Node
	id      string
}

// NewTooltip creates a Tooltip.
func NewTooltip(scope *reactive.Scope, props TooltipProps) *Tooltip {
	props.Position = props.Position.orDefault()
	if props.Delay <= 0 {
		props.Delay = DefaultTooltipShowDelay
	}
	t := &Tooltip{
		base:    newBase(scope, "Tooltip"),
		props:   props,
		visible: reactive.NewSignal(scope, false),
		hovered: reactive.NewSignal(scope, false),
		show:    hooks.NewDelayed(scope),
		id:      hooks.NewBoundary(scope, "data-glade-tooltip").ID,
	}
	t.trigger = props.Trigger.Build(scope)
	return t
}

// IsVisible returns the visibility state.
func (t *Tooltip) IsVisible() reactive.Accessor[bool] { return t.visible }

func (t *Tooltip) hide() {
	t.hovered.Set(false)
	t.show.Cancel()
	t.visible.Set(false)
}

// Render renders the tooltip.
func (t *Tooltip) Render() *dom.Element {
	visible := t.visible.Get()
	return dom.Span(
		cls("tooltip"),
		dom.TestID(t.props.TestID),
		dom.Span(
			part("tooltip", "trigger"),
			dom.ID(t.id+"-trigger"),
			dom.If(visible, dom.Aria("describedby", t.id)),
			dom.On(dom.EventMouseEnter, func(*dom.Event) {
				t.hovered.Set(true)
				t.show.Schedule(t.props.Delay, func() {
					if t.hovered.Peek() {
						t.visible.Set(true)
					}
				})
			}),
			dom.On(dom.EventMouseLeave, func(*dom.Event) { t.hide() }),
			dom.On(dom.EventFocus, func(*dom.Event) { t.visible.Set(true) }),
			dom.On(dom.EventBlur, func(*dom.Event) { t.hide() }),
			t.trigger,
		),
		dom.If(visible, dom.Span(
			part("tooltip", "content", string(t.props.Position)),
			dom.ID(t.id),
			dom.Role("tooltip"),
			dom.Text(t.props.Content),
		)),
	)
}
