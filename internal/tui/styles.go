package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glade/internal/gallery"
)

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("245")
	errorColor   = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(primaryColor).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(primaryColor)

	previewStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	focusedPreviewStyle = previewStyle.BorderForeground(primaryColor)

	footerStyle = lipgloss.NewStyle().Foreground(mutedColor).PaddingLeft(1)

	badgeStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

var categoryColors = map[gallery.Category]lipgloss.Color{
	gallery.CategoryActions:    lipgloss.Color("33"),
	gallery.CategoryOverlays:   lipgloss.Color("99"),
	gallery.CategoryDisclosure: lipgloss.Color("36"),
	gallery.CategoryNavigation: lipgloss.Color("172"),
	gallery.CategoryInputs:     lipgloss.Color("42"),
	gallery.CategoryMessaging:  lipgloss.Color("205"),
	gallery.CategoryFeedback:   lipgloss.Color("226"),
}

// CategoryBadge renders a category label on its color.
func CategoryBadge(c gallery.Category) string {
	color, ok := categoryColors[c]
	if !ok {
		color = mutedColor
	}
	return badgeStyle.Foreground(lipgloss.Color("16")).Background(color).Render(string(c))
}
