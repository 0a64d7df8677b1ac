package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minListWidth = 28
	footerHeight = 2
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case previewMsg:
		m.rendered[msg.key] = msg
		if m.loading == msg.key {
			m.loading = ""
		}
		if msg.key == m.current {
			m.current = ""
		}
		m.syncPreview()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Keys belong to the filter prompt while it is open.
	if m.list.FilterState() == list.Filtering {
		return m.updateList(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Switch):
		if m.focus == PaneList {
			m.focus = PanePreview
		} else {
			m.focus = PaneList
		}
		return m, nil
	case key.Matches(msg, m.keys.Rerender):
		if it, ok := m.list.SelectedItem().(item); ok {
			delete(m.rendered, it.key())
		}
		cmd := m.renderSelected()
		return m, cmd
	}

	if m.focus == PanePreview {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
	return m.updateList(msg)
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.syncPreview()
	render := m.renderSelected()
	return m, tea.Batch(cmd, render)
}

// layout sizes the panes for the current window.
func (m *Model) layout() {
	m.help.Width = m.width
	helpHeight := 1
	if m.help.ShowAll {
		helpHeight = len(m.keys.FullHelp()[0])
	}
	bodyHeight := max(m.height-footerHeight-helpHeight, 1)

	listWidth := max(m.width/3, minListWidth)
	m.list.SetSize(listWidth, bodyHeight)

	// The preview frame takes a border on each side plus padding.
	m.preview.Width = max(m.width-listWidth-previewStyle.GetHorizontalFrameSize(), 1)
	m.preview.Height = max(bodyHeight-previewStyle.GetVerticalFrameSize()-1, 1)
}
