package components

import (
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/hooks"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// TagInputProps configures a TagInput. A non-nil Tags makes it controlled.
type TagInputProps struct {
	Tags        reactive.Accessor[[]string]
	DefaultTags []string
	OnChange    func([]string)
	Placeholder string
	// MaxTags limits the number of tags when positive.
	MaxTags  int
	Disabled bool
	TestID   string
}

// TagInput collects short strings as removable tags. Enter or a comma
// commits the typed text; Backspace on empty text removes the last tag.
type TagInput struct {
	base
	props   TagInputProps
	tags    *hooks.Controllable[[]string]
	buffer  *reactive.Signal[string]
	focused *reactive.Signal[bool]
	input   *dom.Ref
}

// NewTagInput creates a TagInput.
func NewTagInput(scope *reactive.Scope, props TagInputProps) *TagInput {
	t := &TagInput{
		base:    newBase(scope, "TagInput"),
		props:   props,
		buffer:  reactive.NewSignal(scope, ""),
		focused: reactive.NewSignal(scope, false),
		input:   dom.NewRef(),
	}
	t.tags = hooks.NewControllable(scope, "TagInput.tags", props.Tags, slices.Clone(props.DefaultTags), props.OnChange)
	return t
}

// Tags returns the authoritative tag list.
func (t *TagInput) Tags() reactive.Accessor[[]string] { return t.tags }

// Buffer returns the uncommitted text.
func (t *TagInput) Buffer() reactive.Accessor[string] { return t.buffer }

func (t *TagInput) atLimit(tags []string) bool {
	return t.props.MaxTags > 0 && len(tags) >= t.props.MaxTags
}

// commit turns the buffer into a tag. Empty, duplicate and over-limit text
// is dropped; the buffer clears either way.
func (t *TagInput) commit() {
	text := strings.TrimSpace(t.buffer.Peek())
	t.buffer.Set("")
	if text == "" {
		return
	}
	tags := t.tags.Peek()
	if slices.Contains(tags, text) || t.atLimit(tags) {
		return
	}
	t.tags.Set(append(slices.Clone(tags), text))
}

func (t *TagInput) remove(i int) {
	if t.props.Disabled {
		return
	}
	tags := t.tags.Peek()
	if i < 0 || i >= len(tags) {
		return
	}
	t.tags.Set(slices.Delete(slices.Clone(tags), i, i+1))
}

func (t *TagInput) keyDown(ev *dom.Event) {
	switch ev.Key {
	case dom.KeyEnter, dom.Char(","):
		ev.PreventDefault()
		t.commit()
		ev.Target.SetValue("")
	case dom.KeyBackspace:
		if t.buffer.Peek() == "" {
			t.remove(len(t.tags.Peek()) - 1)
		}
	}
}

// Render renders the input.
func (t *TagInput) Render() *dom.Element {
	tags := t.tags.Get()
	buffer := t.buffer.Get()
	focused := t.focused.Get()
	full := t.atLimit(tags)
	return dom.Div(
		cls("tag-input", when(focused, "focused"), when(t.props.Disabled, "disabled")),
		dom.TestID(t.props.TestID),
		dom.OnClick(func(*dom.Event) { t.input.SetFocus(true) }),
		dom.Map(tags, func(i int, label string) dom.Node {
			return Tag(TagProps{
				Label:    label,
				Disabled: t.props.Disabled,
				OnRemove: func() { t.remove(i) },
			})
		}),
		dom.Input(
			part("tag-input", "input"),
			dom.Type("text"),
			dom.Value(buffer),
			dom.Placeholder(t.props.Placeholder),
			dom.Disabled(t.props.Disabled || full),
			dom.WithRef(t.input),
			dom.OnInput(func(ev *dom.Event) { t.buffer.Set(ev.Value) }),
			dom.OnKeyDown(t.keyDown),
			dom.On(dom.EventFocus, func(*dom.Event) { t.focused.Set(true) }),
			dom.On(dom.EventBlur, func(*dom.Event) {
				t.focused.Set(false)
				if strings.TrimSpace(t.buffer.Peek()) != "" {
					t.commit()
				}
			}),
		),
	)
}

// TagProps configures a Tag.
type TagProps struct {
	Label    string
	Variant  Variant
	Disabled bool
	// OnRemove adds a remove button when set.
	OnRemove func()
}

// Tag renders a label chip with an optional remove button.
func Tag(props TagProps) *dom.Element {
	return dom.Span(
		cls("tag", string(props.Variant)),
		dom.Span(part("tag", "label"), dom.Text(props.Label)),
		dom.If(props.OnRemove != nil, dom.Button(
			part("tag", "remove"),
			dom.Type("button"),
			dom.Aria("label", "Remove "+props.Label),
			dom.Disabled(props.Disabled),
			dom.OnClick(func(ev *dom.Event) {
				ev.StopPropagation()
				props.OnRemove()
			}),
			Icon(IconClose),
		)),
	)
}
