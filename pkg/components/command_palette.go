package components

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/hooks"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

const (
	commandMinQuery  = 2
	commandBlurGrace = 200 * time.Millisecond
)

// Command is one selectable command palette entry.
type Command struct {
	ID          string
	Name        string
	Description string
	Group       string
}

// FilterCommands returns the items matching query. Queries shorter than two
// characters match nothing; otherwise matching is a case-insensitive
// substring test against name, description or id.
func FilterCommands(items []Command, query string) []Command {
	if utf8.RuneCountInString(query) < commandMinQuery {
		return nil
	}
	q := strings.ToLower(query)
	var out []Command
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Description), q) ||
			strings.Contains(strings.ToLower(item.ID), q) {
			out = append(out, item)
		}
	}
	return out
}

// CommandPaletteProps configures a CommandPalette.
type CommandPaletteProps struct {
	Placeholder      string
	Items            reactive.Accessor[[]Command]
	OnSelect         func(Command)
	ShowShortcutHint bool
	GlobalShortcut   bool
	// Shortcut defaults to ⌘K / Ctrl+K.
	Shortcut hooks.Shortcut
	TestID   string
}

// CommandPalette is a searchable command list driven from a text input.
type CommandPalette struct {
	base
	props CommandPaletteProps

	query    *reactive.Signal[string]
	open     *reactive.Signal[bool]
	focused  *reactive.Signal[bool]
	selected *reactive.Signal[int]
	results  *reactive.Memo[[]Command]

	input     *dom.Ref
	blurClose *hooks.Delayed
	listboxID string
}

// NewCommandPalette creates a CommandPalette.
func NewCommandPalette(scope *reactive.Scope, props CommandPaletteProps) *CommandPalette {
	if props.Items == nil {
		props.Items = reactive.Static[[]Command](nil)
	}
	if props.Placeholder == "" {
		props.Placeholder = "Search commands..."
	}
	if props.Shortcut.Key == "" {
		props.Shortcut = hooks.Shortcut{Key: dom.Char("k"), Mod: true}
	}

	p := &CommandPalette{
		base:      newBase(scope, "CommandPalette"),
		props:     props,
		query:     reactive.NewSignal(scope, ""),
		open:      reactive.NewSignal(scope, false),
		focused:   reactive.NewSignal(scope, false),
		selected:  reactive.NewSignal(scope, 0),
		input:     dom.NewRef(),
		blurClose: hooks.NewDelayed(scope),
	}
	p.listboxID = hooks.NewBoundary(scope, "data-glade-command-palette").ID + "-results"
	p.results = reactive.NewMemo(scope, func() []Command {
		return FilterCommands(p.props.Items.Get(), p.query.Get())
	})

	if props.GlobalShortcut {
		hooks.UseShortcut(scope, props.Shortcut, nil, func() {
			p.open.Set(true)
			p.input.SetFocus(true)
		})
	}
	return p
}

// Query returns the current query.
func (p *CommandPalette) Query() reactive.Accessor[string] { return p.query }

// IsOpen returns the open state.
func (p *CommandPalette) IsOpen() reactive.Accessor[bool] { return p.open }

// Results returns the filtered commands.
func (p *CommandPalette) Results() reactive.Accessor[[]Command] { return p.results }

// SelectedIndex returns the highlighted result index.
func (p *CommandPalette) SelectedIndex() reactive.Accessor[int] { return p.selected }

func (p *CommandPalette) setQuery(q string) {
	p.query.Set(q)
	p.selected.Set(0)
}

func (p *CommandPalette) choose(i int) {
	results := p.results.Get()
	if i < 0 || i >= len(results) {
		return
	}
	item := results[i]
	p.setQuery("")
	p.open.Set(false)
	p.emit("on_select", func() {
		if p.props.OnSelect != nil {
			p.props.OnSelect(item)
		}
	})
}

func (p *CommandPalette) onKeyDown(ev *dom.Event) {
	switch ev.Key {
	case dom.KeyArrowDown:
		ev.PreventDefault()
		last := len(p.results.Get()) - 1
		p.selected.Set(max(min(p.selected.Peek()+1, last), 0))
	case dom.KeyArrowUp:
		ev.PreventDefault()
		p.selected.Set(max(p.selected.Peek()-1, 0))
	case dom.KeyEnter:
		ev.PreventDefault()
		p.choose(p.selected.Peek())
	case dom.KeyEscape:
		p.setQuery("")
		p.open.Set(false)
	}
}

func (p *CommandPalette) onBlur(*dom.Event) {
	p.focused.Set(false)
	p.blurClose.Schedule(commandBlurGrace, func() {
		if !p.focused.Peek() {
			p.open.Set(false)
		}
	})
}

// Render renders the palette.
func (p *CommandPalette) Render() *dom.Element {
	query := p.query.Get()
	open := p.open.Get()
	showResults := open && utf8.RuneCountInString(query) >= commandMinQuery

	var trailing dom.Node
	switch {
	case query != "":
		trailing = dom.Button(
			part("command-palette", "clear"),
			dom.Type("button"),
			dom.Aria("label", "Clear search"),
			dom.OnClick(func(*dom.Event) {
				p.setQuery("")
				p.input.SetFocus(true)
			}),
			Icon(IconClose),
		)
	case p.props.ShowShortcutHint:
		trailing = dom.Kbd(part("command-palette", "hint"), dom.Text(p.props.Shortcut.String()))
	}

	return dom.Div(
		cls("command-palette", when(open, "open")),
		dom.TestID(p.props.TestID),
		dom.Div(
			part("command-palette", "input-wrapper"),
			Icon(IconSearch),
			dom.Input(
				part("command-palette", "input"),
				dom.WithRef(p.input),
				dom.Type("text"),
				dom.Role("combobox"),
				dom.AriaBool("expanded", showResults),
				dom.Aria("controls", p.listboxID),
				dom.Aria("autocomplete", "list"),
				dom.Aria("label", p.props.Placeholder),
				dom.Placeholder(p.props.Placeholder),
				dom.Value(query),
				dom.On(dom.EventFocus, func(*dom.Event) {
					p.focused.Set(true)
					p.blurClose.Cancel()
					p.open.Set(true)
				}),
				dom.On(dom.EventBlur, p.onBlur),
				dom.OnInput(func(ev *dom.Event) {
					p.setQuery(ev.Value)
					p.open.Set(true)
				}),
				dom.OnKeyDown(p.onKeyDown),
			),
			trailing,
		),
		dom.If(showResults, p.renderResults()),
	)
}

func (p *CommandPalette) renderResults() *dom.Element {
	results := p.results.Get()
	selected := p.selected.Get()

	list := dom.Div(
		part("command-palette", "results"),
		dom.ID(p.listboxID),
		dom.Role("listbox"),
	)
	if len(results) == 0 {
		list.Append(dom.Div(part("command-palette", "empty"), dom.Text("No results found")))
		return list
	}
	for i, item := range results {
		list.Append(dom.Div(
			part("command-palette", "item", when(i == selected, "selected")),
			dom.Role("option"),
			dom.AriaBool("selected", i == selected),
			dom.Data("command-id", item.ID),
			dom.On(dom.EventMouseEnter, func(*dom.Event) { p.selected.Set(i) }),
			dom.OnClick(func(*dom.Event) { p.choose(i) }),
			dom.Span(part("command-palette", "item-name"), dom.Text(item.Name)),
			dom.If(item.Description != "", dom.Span(part("command-palette", "item-description"), dom.Text(item.Description))),
			dom.If(item.Group != "", dom.Span(part("command-palette", "item-group"), dom.Text(item.Group))),
		))
	}
	return list
}
