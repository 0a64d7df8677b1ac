package components

import (
	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// ButtonProps configures a Button.
type ButtonProps struct {
	Label     string
	Children  dom.Slot
	Variant   Variant
	Size      Size
	Type      string
	Disabled  bool
	Loading   reactive.Accessor[bool]
	AriaLabel string
	TestID    string
	OnClick   func()
}

// Button is a clickable action with variants and a loading state.
type Button struct {
	base
	props    ButtonProps
	children dom.Node
}

// NewButton creates a Button.
func NewButton(scope *reactive.Scope, props ButtonProps) *Button {
	props.Variant = props.Variant.orDefault()
	props.Size = props.Size.orDefault()
	props.Loading = boolAccessor(props.Loading)
	if props.Type == "" {
		props.Type = "button"
	}
	return &Button{base: newBase(scope, "Button"), props: props, children: props.Children.Build(scope)}
}

// Render renders the button.
func (b *Button) Render() *dom.Element {
	loading := b.props.Loading.Get()
	disabled := b.props.Disabled || loading
	var label dom.Node
	if b.props.Label != "" {
		label = dom.Span(part("button", "label"), dom.Text(b.props.Label))
	}
	return dom.Button(
		cls("button", string(b.props.Variant), string(b.props.Size), when(loading, "loading")),
		dom.Type(b.props.Type),
		dom.Disabled(disabled),
		dom.If(disabled, dom.Aria("disabled", "true")),
		dom.If(loading, dom.Aria("busy", "true")),
		dom.If(b.props.AriaLabel != "", dom.Aria("label", b.props.AriaLabel)),
		dom.TestID(b.props.TestID),
		dom.OnClick(func(*dom.Event) {
			if disabled {
				return
			}
			b.emit("on_click", b.props.OnClick)
		}),
		dom.If(loading, Spinner(SizeSmall)),
		label,
		b.children,
	)
}

// Spinner renders an indeterminate loading indicator.
func Spinner(size Size) *dom.Element {
	return dom.Span(
		cls("spinner", string(size.orDefault())),
		dom.Role("status"),
		dom.Aria("label", "Loading"),
	)
}
