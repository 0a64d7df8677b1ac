package components

import (
	"time"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/hooks"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

func fileNames(files []dom.File) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}

// FileInputProps configures a FileInput.
type FileInputProps struct {
	Accept      string
	Multiple    bool
	Disabled    bool
	Label       string
	Description string
	// OnChange receives the chosen file names. File contents are left to
	// the caller.
	OnChange func([]string)
	TestID   string
}

// FileInput is a drop zone wrapping a hidden native file input.
type FileInput struct {
	base
	props    FileInputProps
	dragging *reactive.Signal[bool]
}

// NewFileInput creates a FileInput.
func NewFileInput(scope *reactive.Scope, props FileInputProps) *FileInput {
	if props.Label == "" {
		props.Label = "Drop files here or click to browse"
	}
	return &FileInput{
		base:     newBase(scope, "FileInput"),
		props:    props,
		dragging: reactive.NewSignal(scope, false),
	}
}

// Dragging reports whether files are being dragged over the zone.
func (f *FileInput) Dragging() reactive.Accessor[bool] { return f.dragging }

func (f *FileInput) setDragging(v bool) {
	if f.dragging.Peek() != v {
		f.dragging.Set(v)
	}
}

func (f *FileInput) deliver(files []dom.File) {
	if f.props.Disabled || len(files) == 0 {
		return
	}
	if !f.props.Multiple {
		files = files[:1]
	}
	names := fileNames(files)
	f.emit("on_change", func() {
		if f.props.OnChange != nil {
			f.props.OnChange(names)
		}
	})
}

// Render renders the drop zone.
func (f *FileInput) Render() *dom.Element {
	dragging := f.dragging.Get()
	return dom.Label(
		cls("file-input", when(dragging, "dragging"), when(f.props.Disabled, "disabled")),
		dom.TestID(f.props.TestID),
		dom.On(dom.EventDragOver, func(ev *dom.Event) {
			ev.PreventDefault()
			if !f.props.Disabled {
				f.setDragging(true)
			}
		}),
		dom.On(dom.EventDragLeave, func(*dom.Event) { f.setDragging(false) }),
		dom.On(dom.EventDrop, func(ev *dom.Event) {
			ev.PreventDefault()
			f.setDragging(false)
			f.deliver(ev.Files)
		}),
		dom.Input(
			part("file-input", "native"),
			dom.Type("file"),
			dom.If(f.props.Accept != "", dom.Attr("accept", f.props.Accept)),
			dom.BoolAttr("multiple", f.props.Multiple),
			dom.Disabled(f.props.Disabled),
			dom.Hidden(true),
			dom.On(dom.EventChange, func(ev *dom.Event) { f.deliver(ev.Files) }),
		),
		dom.Span(part("file-input", "icon"), Icon(IconUpload)),
		dom.Span(part("file-input", "label"), dom.Text(f.props.Label)),
		dom.If(f.props.Description != "", dom.Small(part("file-input", "description"), dom.Text(f.props.Description))),
	)
}

// FileInputButtonProps configures a FileInputButton.
type FileInputButtonProps struct {
	Label    string
	Accept   string
	Multiple bool
	Disabled bool
	Variant  Variant
	OnChange func([]string)
	TestID   string
}

// FileInputButton is a button-styled file picker.
type FileInputButton struct {
	base
	props FileInputButtonProps
}

// NewFileInputButton creates a FileInputButton.
func NewFileInputButton(scope *reactive.Scope, props FileInputButtonProps) *FileInputButton {
	if props.Label == "" {
		props.Label = "Choose file"
	}
	props.Variant = props.Variant.orDefault()
	return &FileInputButton{base: newBase(scope, "FileInputButton"), props: props}
}

// Render renders the picker.
func (b *FileInputButton) Render() *dom.Element {
	return dom.Label(
		cls("button", string(b.props.Variant), string(SizeMedium), when(b.props.Disabled, "disabled")),
		cls("file-input-button"),
		dom.TestID(b.props.TestID),
		dom.Input(
			part("file-input", "native"),
			dom.Type("file"),
			dom.If(b.props.Accept != "", dom.Attr("accept", b.props.Accept)),
			dom.BoolAttr("multiple", b.props.Multiple),
			dom.Disabled(b.props.Disabled),
			dom.Hidden(true),
			dom.On(dom.EventChange, func(ev *dom.Event) {
				if b.props.Disabled || len(ev.Files) == 0 {
					return
				}
				names := fileNames(ev.Files)
				b.emit("on_change", func() {
					if b.props.OnChange != nil {
						b.props.OnChange(names)
					}
				})
			}),
		),
		Icon(IconUpload),
		dom.Span(dom.Text(b.props.Label)),
	)
}

// CopiedResetDelay is how long CopyInput shows its copied state.
const CopiedResetDelay = 2 * time.Second

// CopyInputProps configures a CopyInput.
type CopyInputProps struct {
	Value  string
	Label  string
	OnCopy func()
	TestID string
}

// CopyInput shows a read-only value with a button that copies it to the
// clipboard and briefly confirms.
type CopyInput struct {
	base
	props  CopyInputProps
	copied *reactive.Signal[bool]
	reset  *hooks.Delayed
}

// NewCopyInput creates a CopyInput.
func NewCopyInput(scope *reactive.Scope, props CopyInputProps) *CopyInput {
	return &CopyInput{
		base:   newBase(scope, "CopyInput"),
		props:  props,
		copied: reactive.NewSignal(scope, false),
		reset:  hooks.NewDelayed(scope),
	}
}

// Copied reports whether the copied confirmation is showing.
func (c *CopyInput) Copied() reactive.Accessor[bool] { return c.copied }

func (c *CopyInput) copy() {
	doc := c.document()
	if doc == nil {
		return
	}
	doc.WriteClipboard(c.props.Value, func() {
		if c.scope.Disposed() {
			return
		}
		c.copied.Set(true)
		c.emit("on_copy", c.props.OnCopy)
		c.reset.Schedule(CopiedResetDelay, func() {
			if c.copied.Peek() {
				c.copied.Set(false)
			}
		})
	})
}

// Render renders the input.
func (c *CopyInput) Render() *dom.Element {
	copied := c.copied.Get()
	label := "Copy to clipboard"
	icon := IconCopy
	if copied {
		label = "Copied"
		icon = IconCheck
	}
	return dom.Div(
		cls("copy-input", when(copied, "copied")),
		dom.TestID(c.props.TestID),
		dom.If(c.props.Label != "", dom.Label(part("copy-input", "label"), dom.Text(c.props.Label))),
		dom.Div(
			part("copy-input", "field"),
			dom.Input(
				part("copy-input", "value"),
				dom.Type("text"),
				dom.BoolAttr("readonly", true),
				dom.Value(c.props.Value),
			),
			dom.Button(
				part("copy-input", "button"),
				dom.Type("button"),
				dom.Aria("label", label),
				dom.OnClick(func(*dom.Event) { c.copy() }),
				Icon(icon),
			),
		),
	)
}
