package config

import "slices"

// componentKinds are the kind names a gallery instance may use.
var componentKinds = []string{
	"accordion",
	"alert-dialog",
	"button",
	"calendar",
	"carousel",
	"checkbox",
	"collapsible",
	"command-palette",
	"context-menu",
	"copy-input",
	"drawer",
	"dropdown",
	"file-input",
	"file-input-button",
	"hover-card",
	"message-composer",
	"message-list",
	"modal",
	"pagination",
	"popover",
	"progress",
	"rating",
	"rating-display",
	"segmented-input",
	"simple-pagination",
	"slider",
	"spinner",
	"split-pane",
	"tabs",
	"tag-input",
	"toast",
	"toggle",
	"tooltip",
}

// ComponentKinds returns the known kind names in sorted order.
func ComponentKinds() []string {
	return slices.Clone(componentKinds)
}

// IsComponentKind reports whether kind names a known component.
func IsComponentKind(kind string) bool {
	_, found := slices.BinarySearch(componentKinds, kind)
	return found
}
