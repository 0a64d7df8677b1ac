package components

import "github.com/alexisbeaulieu97/glade/pkg/dom"

// IconName names one of the built-in icons.
type IconName string

const (
	IconChevronLeft   IconName = "chevron-left"
	IconChevronRight  IconName = "chevron-right"
	IconChevronDown   IconName = "chevron-down"
	IconClose         IconName = "x"
	IconCheck         IconName = "check"
	IconCopy          IconName = "copy"
	IconSearch        IconName = "search"
	IconInfo          IconName = "info"
	IconAlertTriangle IconName = "alert-triangle"
	IconAlertCircle   IconName = "alert-circle"
	IconStar          IconName = "star"
	IconUpload        IconName = "upload"
	IconSend          IconName = "send"
)

var iconPaths = map[IconName]string{
	IconChevronLeft:   "M15 18l-6-6 6-6",
	IconChevronRight:  "M9 18l6-6-6-6",
	IconChevronDown:   "M6 9l6 6 6-6",
	IconClose:         "M18 6L6 18M6 6l12 12",
	IconCheck:         "M20 6L9 17l-5-5",
	IconCopy:          "M8 8h12v12H8zM4 16V4h12",
	IconSearch:        "M11 19a8 8 0 100-16 8 8 0 000 16zM21 21l-4.35-4.35",
	IconInfo:          "M12 22a10 10 0 100-20 10 10 0 000 20zM12 16v-4M12 8h.01",
	IconAlertTriangle: "M10.29 3.86L1.82 18a2 2 0 001.71 3h16.94a2 2 0 001.71-3L13.71 3.86a2 2 0 00-3.42 0zM12 9v4M12 17h.01",
	IconAlertCircle:   "M12 22a10 10 0 100-20 10 10 0 000 20zM12 8v4M12 16h.01",
	IconStar:          "M12 2l3.09 6.26L22 9.27l-5 4.87 1.18 6.88L12 17.77l-6.18 3.25L7 14.14 2 9.27l6.91-1.01L12 2z",
	IconUpload:        "M21 15v4a2 2 0 01-2 2H5a2 2 0 01-2-2v-4M17 8l-5-5-5 5M12 3v12",
	IconSend:          "M22 2L11 13M22 2l-7 20-4-9-9-4 20-7z",
}

// Icon renders a decorative stroke icon.
func Icon(name IconName) *dom.Element {
	return dom.Svg(
		cls("icon", string(name)),
		dom.Attr("viewBox", "0 0 24 24"),
		dom.Attr("fill", "none"),
		dom.Attr("stroke", "currentColor"),
		dom.Attr("stroke-width", "2"),
		dom.Aria("hidden", "true"),
		dom.Path(dom.Attr("d", iconPaths[name])),
	)
}
