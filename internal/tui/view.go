package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// View renders the current state of the model.
func (m Model) View() string {
	frame := previewStyle
	if m.focus == PanePreview {
		frame = focusedPreviewStyle
	}

	header := headingStyle.Render(m.title)
	if m.Loading() {
		header += " " + m.spinner.View() + mutedStyle.Render(" rendering")
	}
	right := frame.Render(lipgloss.JoinVertical(lipgloss.Left, header, m.preview.View()))
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), right)

	return lipgloss.JoinVertical(lipgloss.Left, body, footerStyle.Render(m.help.View(m.keys)))
}

// previewContent is the viewport text for a rendered instance.
func previewContent(it item, res previewMsg) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(it.entry.Title))
	b.WriteString(" " + CategoryBadge(it.entry.Category) + "\n")
	b.WriteString(mutedStyle.Render(it.entry.Description) + "\n\n")

	if len(it.instance.Props) > 0 {
		if props, err := yaml.Marshal(it.instance.Props); err == nil {
			b.WriteString(headingStyle.Render("props") + "\n")
			b.WriteString(string(props) + "\n")
		}
	}

	if res.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("render failed: %v", res.err)))
		return b.String()
	}
	b.WriteString(headingStyle.Render("markup") + "\n")
	b.WriteString(res.html)
	return b.String()
}
