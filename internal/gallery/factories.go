package gallery

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/glade/internal/config"
	"github.com/alexisbeaulieu97/glade/pkg/components"
	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// Factory builds one component from its config props inside scope.
type Factory func(scope *reactive.Scope, props config.Props) dom.Component

var factories = map[string]Factory{
	"accordion":         accordion,
	"alert-dialog":      alertDialog,
	"button":            button,
	"calendar":          calendar,
	"carousel":          carousel,
	"checkbox":          checkbox,
	"collapsible":       collapsible,
	"command-palette":   commandPalette,
	"context-menu":      contextMenu,
	"copy-input":        copyInput,
	"drawer":            drawer,
	"dropdown":          dropdown,
	"file-input":        fileInput,
	"file-input-button": fileInputButton,
	"hover-card":        hoverCard,
	"message-composer":  messageComposer,
	"message-list":      messageList,
	"modal":             modal,
	"pagination":        pagination,
	"popover":           popover,
	"progress":          progress,
	"rating":            rating,
	"rating-display":    ratingDisplay,
	"segmented-input":   segmentedInput,
	"simple-pagination": simplePagination,
	"slider":            slider,
	"spinner":           spinner,
	"split-pane":        splitPane,
	"tabs":              tabs,
	"tag-input":         tagInput,
	"toast":             toast,
	"toggle":            toggle,
	"tooltip":           tooltip,
}

// FactoryFor returns the factory registered for kind.
func FactoryFor(kind string) (Factory, bool) {
	f, ok := factories[kind]
	return f, ok
}

// Build creates the component for inst.
func Build(scope *reactive.Scope, inst config.Instance) (dom.Component, error) {
	f, ok := factories[inst.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown component kind %q", inst.Kind)
	}
	return f(scope, inst.Props), nil
}

func text(s string) dom.Slot {
	if s == "" {
		return nil
	}
	return dom.Static(dom.Text(s))
}

func paragraph(s string) dom.Slot {
	if s == "" {
		return nil
	}
	return dom.Static(dom.El("p", dom.Text(s)))
}

func duration(p config.Props, key string, fallback time.Duration) time.Duration {
	s := p.String(key, "")
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func date(p config.Props, key string) components.Date {
	s := p.String(key, "")
	if s == "" {
		return components.Date{}
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return components.Date{}
	}
	return components.DateOf(t)
}

func testID(p config.Props) string { return p.String("test_id", "") }

// optionalInt returns nil when key is absent so the component default applies.
func optionalInt(p config.Props, key string) *int {
	if _, ok := p[key]; !ok {
		return nil
	}
	v := p.Int(key, 0)
	return &v
}

func button(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewButton(scope, components.ButtonProps{
		Label:     p.String("label", "Button"),
		Variant:   components.Variant(p.String("variant", "")),
		Size:      components.Size(p.String("size", "")),
		Disabled:  p.Bool("disabled", false),
		Loading:   reactive.Static(p.Bool("loading", false)),
		AriaLabel: p.String("aria_label", ""),
		TestID:    testID(p),
	})
}

func spinner(_ *reactive.Scope, p config.Props) dom.Component {
	size := components.Size(p.String("size", ""))
	return dom.ComponentFunc(func() *dom.Element { return components.Spinner(size) })
}

func commandPalette(scope *reactive.Scope, p config.Props) dom.Component {
	var items []components.Command
	for i, it := range p.Items("items") {
		items = append(items, components.Command{
			ID:          it.String("id", fmt.Sprintf("command-%d", i+1)),
			Name:        it.String("name", ""),
			Description: it.String("description", ""),
			Group:       it.String("group", ""),
		})
	}
	return components.NewCommandPalette(scope, components.CommandPaletteProps{
		Placeholder:      p.String("placeholder", ""),
		Items:            reactive.Static(items),
		ShowShortcutHint: p.Bool("show_shortcut_hint", true),
		GlobalShortcut:   p.Bool("global_shortcut", false),
		TestID:           testID(p),
	})
}

func menuContent(p config.Props, item func(*reactive.Scope, components.MenuItemProps) *components.MenuItem) dom.Slot {
	entries := p.Items("items")
	return func(scope *reactive.Scope) dom.Node {
		nodes := make([]dom.Node, 0, len(entries))
		for _, it := range entries {
			if it.Bool("divider", false) {
				nodes = append(nodes, components.DropdownDivider())
				continue
			}
			nodes = append(nodes, dom.Embed(item(scope, components.MenuItemProps{
				Label:    it.String("label", ""),
				Icon:     components.IconName(it.String("icon", "")),
				Shortcut: it.String("shortcut", ""),
				Disabled: it.Bool("disabled", false),
				Danger:   it.Bool("danger", false),
				KeepOpen: it.Bool("keep_open", false),
			})))
		}
		return dom.Group(nodes...)
	}
}

func dropdown(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewDropdown(scope, components.DropdownProps{
		Trigger:  text(p.String("trigger", "Options")),
		Content:  menuContent(p, components.NewDropdownItem),
		Align:    components.Align(p.String("align", "")),
		Disabled: p.Bool("disabled", false),
		TestID:   testID(p),
	})
}

func contextMenu(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewContextMenu(scope, components.ContextMenuProps{
		Area:     paragraph(p.String("area", "Right-click here")),
		Content:  menuContent(p, components.NewContextMenuItem),
		Disabled: p.Bool("disabled", false),
		TestID:   testID(p),
	})
}

func popover(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewPopover(scope, components.PopoverProps{
		Trigger:     text(p.String("trigger", "Open")),
		Content:     paragraph(p.String("content", "")),
		Position:    components.Position(p.String("position", "")),
		DefaultOpen: p.Bool("default_open", false),
		TestID:      testID(p),
	})
}

func hoverCard(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewHoverCard(scope, components.HoverCardProps{
		Trigger:    text(p.String("trigger", "Hover me")),
		Content:    paragraph(p.String("content", "")),
		Position:   components.Position(p.String("position", "")),
		OpenDelay:  duration(p, "open_delay", 0),
		CloseDelay: duration(p, "close_delay", 0),
		TestID:     testID(p),
	})
}

func tooltip(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewTooltip(scope, components.TooltipProps{
		Content:  p.String("content", ""),
		Trigger:  text(p.String("trigger", "Hover me")),
		Position: components.Position(p.String("position", "")),
		Delay:    duration(p, "delay", 0),
		TestID:   testID(p),
	})
}

// openState backs overlays that only take a controlled open flag. The
// returned opener is a button that sets it.
func openState(scope *reactive.Scope, p config.Props) (*reactive.Signal[bool], dom.Component) {
	open := reactive.NewSignal(scope, p.Bool("open", false))
	opener := components.NewButton(scope, components.ButtonProps{
		Label:   p.String("trigger", "Open"),
		Variant: components.VariantOutline,
		OnClick: func() { open.Set(true) },
	})
	return open, opener
}

func withOpener(opener, overlay dom.Component) dom.Component {
	return dom.ComponentFunc(func() *dom.Element {
		return dom.El("div", dom.Embed(opener), dom.Embed(overlay))
	})
}

func modal(scope *reactive.Scope, p config.Props) dom.Component {
	open, opener := openState(scope, p)
	m := components.NewModal(scope, components.ModalProps{
		Open:                open,
		OnClose:             func() { open.Set(false) },
		Title:               p.String("title", ""),
		Size:                components.Size(p.String("size", "")),
		Content:             paragraph(p.String("content", "")),
		DisableOverlayClose: p.Bool("disable_overlay_close", false),
		HideCloseButton:     p.Bool("hide_close_button", false),
		TestID:              testID(p),
	})
	return withOpener(opener, m)
}

func alertDialog(scope *reactive.Scope, p config.Props) dom.Component {
	open, opener := openState(scope, p)
	d := components.NewAlertDialog(scope, components.AlertDialogProps{
		Open:         open,
		Title:        p.String("title", "Are you sure?"),
		Description:  p.String("description", ""),
		Variant:      components.AlertVariant(p.String("variant", "")),
		ConfirmLabel: p.String("confirm_label", ""),
		CancelLabel:  p.String("cancel_label", ""),
		Loading:      reactive.Static(p.Bool("loading", false)),
		OnConfirm:    func() { open.Set(false) },
		OnCancel:     func() { open.Set(false) },
		TestID:       testID(p),
	})
	return withOpener(opener, d)
}

func drawer(scope *reactive.Scope, p config.Props) dom.Component {
	open, opener := openState(scope, p)
	d := components.NewDrawer(scope, components.DrawerProps{
		Open:    open,
		Side:    components.DrawerSide(p.String("side", "")),
		Size:    components.DrawerSize(p.String("size", "")),
		Title:   p.String("title", ""),
		Content: paragraph(p.String("content", "")),
		Footer:  paragraph(p.String("footer", "")),
		TestID:  testID(p),
	})
	return withOpener(opener, d)
}

func accordion(scope *reactive.Scope, p config.Props) dom.Component {
	var items []components.AccordionItemProps
	for _, it := range p.Items("items") {
		items = append(items, components.AccordionItemProps{
			Title:       it.String("title", ""),
			Content:     paragraph(it.String("content", "")),
			DefaultOpen: it.Bool("default_open", false),
			Disabled:    it.Bool("disabled", false),
		})
	}
	return components.NewAccordion(scope, components.AccordionProps{
		Items:    items,
		Bordered: p.Bool("bordered", false),
		TestID:   testID(p),
	})
}

func collapsible(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewCollapsible(scope, components.CollapsibleProps{
		Trigger:     text(p.String("trigger", "Toggle")),
		Content:     paragraph(p.String("content", "")),
		DefaultOpen: p.Bool("default_open", false),
		Disabled:    p.Bool("disabled", false),
		TestID:      testID(p),
	})
}

func tabs(scope *reactive.Scope, p config.Props) dom.Component {
	var list []components.Tab
	for _, it := range p.Items("tabs") {
		list = append(list, components.Tab{
			Label:    it.String("label", ""),
			Icon:     components.IconName(it.String("icon", "")),
			Disabled: it.Bool("disabled", false),
			Content:  paragraph(it.String("content", "")),
		})
	}
	selected := reactive.NewSignal(scope, p.Int("selected", 0))
	return components.NewTabs(scope, components.TabsProps{
		Tabs:     list,
		Selected: selected,
		OnChange: selected.Set,
		Variant:  components.TabsVariant(p.String("variant", "")),
		TestID:   testID(p),
	})
}

func carousel(scope *reactive.Scope, p config.Props) dom.Component {
	var slides []dom.Slot
	for _, s := range p.Strings("slides") {
		slides = append(slides, dom.Static(dom.El("div", dom.Text(s))))
	}
	return components.NewCarousel(scope, components.CarouselProps{
		Slides:       slides,
		InitialIndex: p.Int("initial_index", 0),
		Autoplay:     duration(p, "autoplay", 0),
		Infinite:     p.Bool("infinite", true),
		Navigation:   components.CarouselNav(p.String("navigation", "")),
		AriaLabel:    p.String("aria_label", ""),
		TestID:       testID(p),
	})
}

func splitPane(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewSplitPane(scope, components.SplitPaneProps{
		First:       paragraph(p.String("first", "")),
		Second:      paragraph(p.String("second", "")),
		Direction:   components.Direction(p.String("direction", "")),
		DefaultSize: p.String("default_size", ""),
		TestID:      testID(p),
	})
}

func pagination(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewPagination(scope, components.PaginationProps{
		DefaultCurrent: p.Int("current", 1),
		Total:          p.Int("total", 1),
		Siblings:       optionalInt(p, "siblings"),
		Boundaries:     optionalInt(p, "boundaries"),
		ShowEdges:      p.Bool("show_edges", false),
		TestID:         testID(p),
	})
}

func simplePagination(scope *reactive.Scope, p config.Props) dom.Component {
	current := reactive.NewSignal(scope, p.Int("current", 1))
	return components.NewSimplePagination(scope, components.SimplePaginationProps{
		Current:  current,
		Total:    p.Int("total", 1),
		OnChange: current.Set,
		TestID:   testID(p),
	})
}

func calendar(scope *reactive.Scope, p config.Props) dom.Component {
	selected := reactive.NewSignal(scope, date(p, "selected"))
	return components.NewCalendar(scope, components.CalendarProps{
		Selected:    selected,
		InitialDate: date(p, "initial_date"),
		MinDate:     date(p, "min_date"),
		MaxDate:     date(p, "max_date"),
		Disabled:    p.Bool("disabled", false),
		OnSelect:    selected.Set,
		TestID:      testID(p),
	})
}

func segmentedInput(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewSegmentedInput(scope, components.SegmentedInputProps{
		DefaultValue:   p.String("value", ""),
		Length:         p.Int("length", 6),
		SeparatorAfter: p.Int("separator_after", 0),
		Disabled:       p.Bool("disabled", false),
		Mask:           p.Bool("mask", false),
		AriaLabel:      p.String("aria_label", ""),
		TestID:         testID(p),
	})
}

func tagInput(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewTagInput(scope, components.TagInputProps{
		DefaultTags: p.Strings("tags"),
		Placeholder: p.String("placeholder", ""),
		MaxTags:     p.Int("max_tags", 0),
		Disabled:    p.Bool("disabled", false),
		TestID:      testID(p),
	})
}

func rating(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewRating(scope, components.RatingProps{
		DefaultValue: p.Float("value", 0),
		Max:          p.Int("max", 0),
		AllowHalf:    p.Bool("allow_half", false),
		ReadOnly:     p.Bool("read_only", false),
		Disabled:     p.Bool("disabled", false),
		Size:         components.Size(p.String("size", "")),
		TestID:       testID(p),
	})
}

func ratingDisplay(_ *reactive.Scope, p config.Props) dom.Component {
	value, outOf := p.Float("value", 0), p.Int("max", 5)
	size := components.Size(p.String("size", ""))
	return dom.ComponentFunc(func() *dom.Element { return components.RatingDisplay(value, outOf, size) })
}

func fileInput(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewFileInput(scope, components.FileInputProps{
		Accept:      p.String("accept", ""),
		Multiple:    p.Bool("multiple", false),
		Disabled:    p.Bool("disabled", false),
		Label:       p.String("label", ""),
		Description: p.String("description", ""),
		TestID:      testID(p),
	})
}

func fileInputButton(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewFileInputButton(scope, components.FileInputButtonProps{
		Label:    p.String("label", "Choose file"),
		Accept:   p.String("accept", ""),
		Multiple: p.Bool("multiple", false),
		Disabled: p.Bool("disabled", false),
		Variant:  components.Variant(p.String("variant", "")),
		TestID:   testID(p),
	})
}

func copyInput(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewCopyInput(scope, components.CopyInputProps{
		Value:  p.String("value", ""),
		Label:  p.String("label", ""),
		TestID: testID(p),
	})
}

func toggle(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewToggle(scope, components.ToggleProps{
		DefaultChecked: p.Bool("checked", false),
		Label:          p.String("label", ""),
		Disabled:       p.Bool("disabled", false),
		Size:           components.Size(p.String("size", "")),
		TestID:         testID(p),
	})
}

func checkbox(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewCheckbox(scope, components.CheckboxProps{
		DefaultChecked: p.Bool("checked", false),
		Indeterminate:  p.Bool("indeterminate", false),
		Label:          p.String("label", ""),
		Disabled:       p.Bool("disabled", false),
		TestID:         testID(p),
	})
}

func slider(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewSlider(scope, components.SliderProps{
		DefaultValue: p.Float("value", 0),
		Min:          p.Float("min", 0),
		Max:          p.Float("max", 100),
		Step:         p.Float("step", 1),
		Disabled:     p.Bool("disabled", false),
		Label:        p.String("label", ""),
		TestID:       testID(p),
	})
}

func messageList(scope *reactive.Scope, p config.Props) dom.Component {
	msgs := p.Items("messages")
	return components.NewMessageList(scope, components.MessageListProps{
		Messages: func(*reactive.Scope) dom.Node {
			nodes := make([]dom.Node, 0, len(msgs))
			for _, m := range msgs {
				nodes = append(nodes, components.MessageBubble(components.MessageBubbleProps{
					Role:    components.MessageRole(m.String("role", string(components.MessageUser))),
					Author:  m.String("author", ""),
					Content: m.String("content", ""),
					Pending: m.Bool("pending", false),
				}))
			}
			return dom.Group(nodes...)
		},
		TestID: testID(p),
	})
}

func messageComposer(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewMessageComposer(scope, components.MessageComposerProps{
		Placeholder: p.String("placeholder", ""),
		IsSending:   reactive.Static(p.Bool("sending", false)),
		Disabled:    p.Bool("disabled", false),
		TestID:      testID(p),
	})
}

func progress(_ *reactive.Scope, p config.Props) dom.Component {
	return components.Progress(components.ProgressProps{
		Value:     reactive.Static(p.Float("value", 0)),
		Max:       p.Float("max", 0),
		Size:      components.Size(p.String("size", "")),
		Variant:   components.Variant(p.String("variant", "")),
		ShowLabel: p.Bool("show_label", false),
		Label:     p.String("label", ""),
		TestID:    testID(p),
	})
}

func toast(scope *reactive.Scope, p config.Props) dom.Component {
	return components.NewToast(scope, components.ToastProps{
		Title:       p.String("title", ""),
		Description: p.String("description", ""),
		Variant:     components.ToastVariant(p.String("variant", "")),
		// Gallery toasts stay put unless a duration is given.
		Duration: duration(p, "duration", -1),
		TestID:   testID(p),
	})
}
