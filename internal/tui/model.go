// Package tui is the interactive terminal browser for a gallery: a list of
// component instances beside a preview of their rendered markup.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/glade/internal/config"
	"github.com/alexisbeaulieu97/glade/internal/gallery"
)

// Pane is the part of the screen that receives navigation keys.
type Pane int

const (
	PaneList Pane = iota
	PanePreview
)

// item is one browsable instance.
type item struct {
	page     string
	instance config.Instance
	entry    gallery.Entry
}

func (i item) key() string { return i.page + "/" + i.instance.ID }

// Title implements list.DefaultItem.
func (i item) Title() string {
	if i.page == "" {
		return i.entry.Title
	}
	return fmt.Sprintf("%s · %s", i.entry.Title, i.instance.ID)
}

// Description implements list.DefaultItem.
func (i item) Description() string {
	if i.page == "" {
		return string(i.entry.Category)
	}
	return i.page
}

// FilterValue implements list.Item.
func (i item) FilterValue() string { return i.entry.Kind + " " + i.instance.ID + " " + i.page }

// previewMsg carries a finished render.
type previewMsg struct {
	key  string
	html string
	err  error
}

// Model is the Bubbletea state of the browser.
type Model struct {
	renderer *gallery.Renderer
	title    string

	list    list.Model
	preview viewport.Model
	help    help.Model
	spinner spinner.Model
	keys    keyMap

	focus    Pane
	rendered map[string]previewMsg
	loading  string
	current  string

	width  int
	height int
}

// NewModel builds a browser over cfg. Without pages, every catalog kind is
// listed with default props.
func NewModel(cfg *config.Config, r *gallery.Renderer) Model {
	items := itemsFor(cfg)
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	l := list.New(listItems, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Components"
	l.SetShowHelp(false)
	l.Styles.Title = titleStyle

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	title := "Glade"
	if cfg != nil && cfg.Title != "" {
		title = cfg.Title
	}

	return Model{
		renderer: r,
		title:    title,
		list:     l,
		preview:  viewport.New(0, 0),
		help:     help.New(),
		spinner:  s,
		keys:     defaultKeyMap(),
		rendered: make(map[string]previewMsg),
		width:    80,
		height:   24,
	}
}

func itemsFor(cfg *config.Config) []item {
	var items []item
	if cfg != nil {
		for _, page := range cfg.Pages {
			for _, inst := range page.Components {
				entry, ok := gallery.Lookup(inst.Kind)
				if !ok {
					continue
				}
				items = append(items, item{page: page.ID, instance: inst, entry: entry})
			}
		}
	}
	if len(items) > 0 {
		return items
	}
	for _, entry := range gallery.Catalog() {
		items = append(items, item{instance: config.Instance{Kind: entry.Kind, ID: entry.Kind}, entry: entry})
	}
	return items
}

// Init starts the spinner and renders the first selection.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.renderSelected())
}

// Focus returns the focused pane.
func (m Model) Focus() Pane { return m.focus }

// Selected returns the kind and id of the highlighted instance.
func (m Model) Selected() (kind, id string, ok bool) {
	it, ok := m.list.SelectedItem().(item)
	if !ok {
		return "", "", false
	}
	return it.instance.Kind, it.instance.ID, true
}

// Loading reports whether a preview render is in flight.
func (m Model) Loading() bool { return m.loading != "" }

// renderSelected returns a command rendering the highlighted instance, or nil
// when it is already rendered or in flight.
func (m *Model) renderSelected() tea.Cmd {
	it, ok := m.list.SelectedItem().(item)
	if !ok || m.renderer == nil {
		return nil
	}
	k := it.key()
	if _, done := m.rendered[k]; done || m.loading == k {
		return nil
	}
	m.loading = k
	r := m.renderer
	return func() tea.Msg {
		out, err := r.RenderInstance(it.instance)
		return previewMsg{key: k, html: out, err: err}
	}
}

// syncPreview loads the highlighted instance's render into the viewport.
func (m *Model) syncPreview() {
	it, ok := m.list.SelectedItem().(item)
	if !ok {
		m.preview.SetContent("")
		m.current = ""
		return
	}
	k := it.key()
	if k == m.current {
		return
	}
	res, done := m.rendered[k]
	if !done {
		return
	}
	m.current = k
	m.preview.SetContent(previewContent(it, res))
	m.preview.GotoTop()
}
