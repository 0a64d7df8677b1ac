package components

import (
	"strconv"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
)

// StackProps configures a Stack or Row.
type StackProps struct {
	Gap     Gap
	Align   string
	Justify string
	Wrap    bool
}

func flex(block string, props StackProps, children []dom.Node) *dom.Element {
	return dom.Div(
		cls(block, "gap-"+string(props.Gap.orDefault()), when(props.Wrap, "wrap")),
		dom.If(props.Align != "", dom.Style("align-items", props.Align)),
		dom.If(props.Justify != "", dom.Style("justify-content", props.Justify)),
		dom.Group(children...),
	)
}

// Stack lays children out vertically.
func Stack(props StackProps, children ...dom.Node) *dom.Element {
	return flex("stack", props, children)
}

// Row lays children out horizontally.
func Row(props StackProps, children ...dom.Node) *dom.Element {
	return flex("row", props, children)
}

// Grid lays children out in equal columns.
func Grid(columns int, gap Gap, children ...dom.Node) *dom.Element {
	columns = max(columns, 1)
	return dom.Div(
		cls("grid", "gap-"+string(gap.orDefault())),
		dom.Style("grid-template-columns", "repeat("+strconv.Itoa(columns)+", minmax(0, 1fr))"),
		dom.Group(children...),
	)
}

// Container centers content with a maximum width.
func Container(size Size, children ...dom.Node) *dom.Element {
	return dom.Div(cls("container", string(size.orDefault())), dom.Group(children...))
}

// SidebarLayout places a sidebar beside the main content.
func SidebarLayout(sidebar dom.Node, main dom.Node) *dom.Element {
	return dom.Div(
		cls("sidebar-layout"),
		dom.Aside(part("sidebar-layout", "sidebar"), sidebar),
		main,
	)
}

// MainContent is the main region of a page.
func MainContent(children ...dom.Node) *dom.Element {
	return dom.Main(cls("main-content"), dom.Group(children...))
}
