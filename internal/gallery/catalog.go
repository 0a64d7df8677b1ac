// Package gallery turns a gallery config into rendered pages: it knows every
// component kind, builds instances from their props, and renders pages,
// snapshots and single-instance previews.
package gallery

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category groups catalog entries.
type Category string

const (
	CategoryActions    Category = "actions"
	CategoryOverlays   Category = "overlays"
	CategoryDisclosure Category = "disclosure"
	CategoryNavigation Category = "navigation"
	CategoryInputs     Category = "inputs"
	CategoryMessaging  Category = "messaging"
	CategoryFeedback   Category = "feedback"
)

var categoryOrder = []Category{
	CategoryActions, CategoryOverlays, CategoryDisclosure, CategoryNavigation,
	CategoryInputs, CategoryMessaging, CategoryFeedback,
}

// Entry describes one component kind.
type Entry struct {
	Kind        string
	Title       string
	Category    Category
	Description string
}

var entries = []Entry{
	{Kind: "button", Category: CategoryActions, Description: "Action with variants, sizes and a loading state."},
	{Kind: "spinner", Category: CategoryFeedback, Description: "Indeterminate loading indicator."},
	{Kind: "command-palette", Category: CategoryNavigation, Description: "Searchable command list with keyboard selection."},
	{Kind: "dropdown", Category: CategoryOverlays, Description: "Trigger that toggles a menu of actions."},
	{Kind: "context-menu", Category: CategoryOverlays, Description: "Menu opened at the pointer on right-click."},
	{Kind: "popover", Category: CategoryOverlays, Description: "Click-toggled floating panel that closes on outside click."},
	{Kind: "hover-card", Category: CategoryOverlays, Description: "Preview card shown after hovering with intent delays."},
	{Kind: "tooltip", Category: CategoryOverlays, Description: "Short hint shown on hover or focus."},
	{Kind: "modal", Category: CategoryOverlays, Description: "Dialog over an overlay that takes focus when opened."},
	{Kind: "alert-dialog", Category: CategoryOverlays, Description: "Confirmation dialog with cancel and confirm actions."},
	{Kind: "drawer", Category: CategoryOverlays, Description: "Panel that slides in from a screen edge."},
	{Kind: "accordion", Category: CategoryDisclosure, Description: "Stack of independently expandable sections."},
	{Kind: "collapsible", Category: CategoryDisclosure, Description: "Single expandable section."},
	{Kind: "tabs", Category: CategoryDisclosure, Description: "Tab list with arrow-key navigation and panels."},
	{Kind: "carousel", Category: CategoryNavigation, Description: "Slide viewer with arrows, dots and autoplay."},
	{Kind: "split-pane", Category: CategoryNavigation, Description: "Two panes with a draggable divider."},
	{Kind: "pagination", Category: CategoryNavigation, Description: "Page navigator with ellipses for long ranges."},
	{Kind: "simple-pagination", Category: CategoryNavigation, Description: "Previous and next around a page counter."},
	{Kind: "calendar", Category: CategoryInputs, Description: "Month grid for picking a date."},
	{Kind: "segmented-input", Category: CategoryInputs, Description: "One-character boxes for codes, with paste spreading."},
	{Kind: "tag-input", Category: CategoryInputs, Description: "Text entry that collects removable tags."},
	{Kind: "rating", Category: CategoryInputs, Description: "Star rating with hover preview and half stars."},
	{Kind: "rating-display", Category: CategoryFeedback, Description: "Read-only star rating."},
	{Kind: "file-input", Category: CategoryInputs, Description: "Drop zone around a native file picker."},
	{Kind: "file-input-button", Category: CategoryInputs, Description: "Button-styled file picker."},
	{Kind: "copy-input", Category: CategoryInputs, Description: "Read-only value with a copy-to-clipboard button."},
	{Kind: "toggle", Category: CategoryInputs, Description: "On/off switch."},
	{Kind: "checkbox", Category: CategoryInputs, Description: "Check box with an indeterminate state."},
	{Kind: "slider", Category: CategoryInputs, Description: "Range picker stepped by keyboard."},
	{Kind: "message-list", Category: CategoryMessaging, Description: "Scrolling message column that reports its edges."},
	{Kind: "message-composer", Category: CategoryMessaging, Description: "Message textarea sent with Ctrl or Cmd+Enter."},
	{Kind: "progress", Category: CategoryFeedback, Description: "Determinate progress bar."},
	{Kind: "toast", Category: CategoryFeedback, Description: "Transient notice that dismisses itself."},
}

var titleCaser = cases.Title(language.English)

// TitleOf turns a kind such as "alert-dialog" into "Alert Dialog".
func TitleOf(kind string) string {
	return titleCaser.String(strings.ReplaceAll(kind, "-", " "))
}

// Catalog returns every entry ordered by category, then kind.
func Catalog() []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		e.Title = TitleOf(e.Kind)
		out[i] = e
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(slices.Index(categoryOrder, a.Category), slices.Index(categoryOrder, b.Category)); c != 0 {
			return c
		}
		return strings.Compare(a.Kind, b.Kind)
	})
	return out
}

// Lookup returns the entry for kind.
func Lookup(kind string) (Entry, bool) {
	for _, e := range entries {
		if e.Kind == kind {
			e.Title = TitleOf(e.Kind)
			return e, true
		}
	}
	return Entry{}, false
}

// Categories returns the categories in display order.
func Categories() []Category {
	return slices.Clone(categoryOrder)
}
