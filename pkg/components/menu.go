package components

import (
	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/hooks"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// MenuContext is the open state a menu shares with its items.
type MenuContext struct {
	IsOpen reactive.Accessor[bool]
	Close  func()
}

var menuKey = reactive.NewContextKey[MenuContext]("components.menu")

// UseMenu returns the nearest enclosing menu's context.
func UseMenu(scope *reactive.Scope) (MenuContext, bool) {
	return reactive.UseContext(scope, menuKey)
}

// MenuItemProps configures a menu item.
type MenuItemProps struct {
	Label    string
	Icon     IconName
	Shortcut string
	Disabled bool
	Danger   bool
	// KeepOpen leaves the menu open after the item fires.
	KeepOpen bool
	TestID   string
	OnClick  func()
}

// MenuItem is an entry in a dropdown or context menu. After firing it closes
// the enclosing menu unless KeepOpen is set.
type MenuItem struct {
	base
	props  MenuItemProps
	block  string
	menu   MenuContext
	inMenu bool
}

// NewDropdownItem creates an item for a Dropdown's content.
func NewDropdownItem(scope *reactive.Scope, props MenuItemProps) *MenuItem {
	return newMenuItem(scope, "dropdown", props)
}

// NewContextMenuItem creates an item for a ContextMenu's content.
func NewContextMenuItem(scope *reactive.Scope, props MenuItemProps) *MenuItem {
	return newMenuItem(scope, "context-menu", props)
}

func newMenuItem(scope *reactive.Scope, block string, props MenuItemProps) *MenuItem {
	item := &MenuItem{base: newBase(scope, "MenuItem"), props: props, block: block}
	item.menu, item.inMenu = UseMenu(scope)
	if !item.inMenu {
		item.warn("item rendered outside a menu; it will not close anything")
	}
	return item
}

func (m *MenuItem) activate() {
	if m.props.Disabled {
		return
	}
	m.emit("on_click", m.props.OnClick)
	if !m.props.KeepOpen && m.inMenu {
		m.menu.Close()
	}
}

// Render renders the item.
func (m *MenuItem) Render() *dom.Element {
	return dom.Div(
		part(m.block, "item", when(m.props.Disabled, "disabled"), when(m.props.Danger, "danger")),
		dom.Role("menuitem"),
		dom.TabIndex(-1),
		dom.If(m.props.Disabled, dom.Aria("disabled", "true")),
		dom.TestID(m.props.TestID),
		dom.OnClick(func(*dom.Event) { m.activate() }),
		dom.OnKeyDown(func(ev *dom.Event) {
			if ev.Key == dom.KeyEnter || ev.Key == dom.KeySpace {
				ev.PreventDefault()
				m.activate()
			}
		}),
		dom.If(m.props.Icon != "", Icon(m.props.Icon)),
		dom.Span(part(m.block, "item-label"), dom.Text(m.props.Label)),
		dom.If(m.props.Shortcut != "", dom.Kbd(part(m.block, "item-shortcut"), dom.Text(m.props.Shortcut))),
	)
}

// DropdownDivider separates groups of dropdown items.
func DropdownDivider() *dom.Element {
	return dom.Div(part("dropdown", "divider"), dom.Role("separator"))
}

// DropdownProps configures a Dropdown.
type DropdownProps struct {
	Trigger      dom.Slot
	Content      dom.Slot
	Align        Align
	Disabled     bool
	OnOpenChange func(bool)
	TestID       string
}

// Dropdown is a trigger that toggles a menu. The menu closes on outside
// click, on Escape and after an item fires.
type Dropdown struct {
	base
	props    DropdownProps
	open     *reactive.Signal[bool]
	boundary hooks.Boundary
	trigger  dom.Node
	content  *hooks.Presence
}

// NewDropdown creates a Dropdown.
func NewDropdown(scope *reactive.Scope, props DropdownProps) *Dropdown {
	props.Align = props.Align.orDefault()
	d := &Dropdown{
		base:     newBase(scope, "Dropdown"),
		props:    props,
		open:     reactive.NewSignal(scope, false),
		boundary: hooks.NewBoundary(scope, "data-glade-dropdown"),
	}
	reactive.Provide(scope, menuKey, MenuContext{IsOpen: d.open, Close: func() { d.setOpen(false) }})
	d.trigger = props.Trigger.Build(scope)
	d.content = hooks.NewPresence(scope, props.Content)

	hooks.UseClickOutside(scope, d.boundary, d.open, func() { d.setOpen(false) })
	hooks.UseEscape(scope, d.open, func() { d.setOpen(false) })
	return d
}

// IsOpen returns the open state.
func (d *Dropdown) IsOpen() reactive.Accessor[bool] { return d.open }

func (d *Dropdown) setOpen(open bool) {
	if d.open.Peek() == open {
		return
	}
	d.open.Set(open)
	d.emit("on_open_change", func() {
		if d.props.OnOpenChange != nil {
			d.props.OnOpenChange(open)
		}
	})
}

// Render renders the dropdown.
func (d *Dropdown) Render() *dom.Element {
	open := d.open.Get()
	content := d.content.Render(open)
	return dom.Div(
		cls("dropdown", when(open, "open")),
		d.boundary.Node(),
		dom.TestID(d.props.TestID),
		dom.Div(
			part("dropdown", "trigger"),
			dom.Role("button"),
			dom.TabIndex(0),
			dom.Aria("haspopup", "menu"),
			dom.AriaBool("expanded", open),
			dom.If(d.props.Disabled, dom.Aria("disabled", "true")),
			dom.OnClick(func(*dom.Event) {
				if d.props.Disabled {
					return
				}
				d.setOpen(!d.open.Peek())
			}),
			d.trigger,
		),
		dom.If(open, dom.Div(
			part("dropdown", "menu", string(d.props.Align)),
			dom.Role("menu"),
			content,
		)),
	)
}

// ContextMenuProps configures a ContextMenu.
type ContextMenuProps struct {
	Area         dom.Slot
	Content      dom.Slot
	Disabled     bool
	OnOpenChange func(bool)
	TestID       string
}

// ContextMenu opens a menu at the pointer on right-click inside its area.
type ContextMenu struct {
	base
	props    ContextMenuProps
	open     *reactive.Signal[bool]
	position *reactive.Signal[dom.Point]
	boundary hooks.Boundary
	area     dom.Node
	content  *hooks.Presence
}

// NewContextMenu creates a ContextMenu.
func NewContextMenu(scope *reactive.Scope, props ContextMenuProps) *ContextMenu {
	c := &ContextMenu{
		base:     newBase(scope, "ContextMenu"),
		props:    props,
		open:     reactive.NewSignal(scope, false),
		position: reactive.NewSignal(scope, dom.Point{}),
		boundary: hooks.NewBoundary(scope, "data-glade-context-menu"),
	}
	reactive.Provide(scope, menuKey, MenuContext{IsOpen: c.open, Close: func() { c.setOpen(false) }})
	c.area = props.Area.Build(scope)
	c.content = hooks.NewPresence(scope, props.Content)

	hooks.UseClickOutside(scope, c.boundary, c.open, func() { c.setOpen(false) })
	hooks.UseEscape(scope, c.open, func() { c.setOpen(false) })
	return c
}

// IsOpen returns the open state.
func (c *ContextMenu) IsOpen() reactive.Accessor[bool] { return c.open }

// Position returns where the menu was opened.
func (c *ContextMenu) Position() reactive.Accessor[dom.Point] { return c.position }

func (c *ContextMenu) setOpen(open bool) {
	if c.open.Peek() == open {
		return
	}
	c.open.Set(open)
	c.emit("on_open_change", func() {
		if c.props.OnOpenChange != nil {
			c.props.OnOpenChange(open)
		}
	})
}

// Render renders the area and, while open, the menu.
func (c *ContextMenu) Render() *dom.Element {
	open := c.open.Get()
	pos := c.position.Get()
	content := c.content.Render(open)
	return dom.Div(
		cls("context-menu"),
		dom.TestID(c.props.TestID),
		dom.Div(
			part("context-menu", "area"),
			dom.On(dom.EventContextMenu, func(ev *dom.Event) {
				if c.props.Disabled {
					return
				}
				ev.PreventDefault()
				ev.StopPropagation()
				c.position.Set(ev.Client)
				c.setOpen(true)
			}),
			c.area,
		),
		dom.If(open, dom.Div(
			part("context-menu", "content"),
			c.boundary.Node(),
			dom.Role("menu"),
			dom.Style("position", "fixed"),
			dom.Style("left", px(pos.X)),
			dom.Style("top", px(pos.Y)),
			content,
		)),
	)
}
