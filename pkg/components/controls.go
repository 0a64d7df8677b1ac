package components

import (
	"math"
	"strconv"
	"time"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/hooks"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// ToggleProps configures a Toggle. A non-nil Checked makes it controlled.
type ToggleProps struct {
	Checked        reactive.Accessor[bool]
	DefaultChecked bool
	Label          string
	Disabled       bool
	Size           Size
	OnChange       func(bool)
	TestID         string
}

// Toggle is an on/off switch.
type Toggle struct {
	base
	props   ToggleProps
	checked *hooks.Controllable[bool]
}

// NewToggle creates a Toggle.
func NewToggle(scope *reactive.Scope, props ToggleProps) *Toggle {
	props.Size = props.Size.orDefault()
	t := &Toggle{base: newBase(scope, "Toggle"), props: props}
	t.checked = hooks.NewControllable(scope, "Toggle.checked", props.Checked, props.DefaultChecked, props.OnChange)
	return t
}

// Checked returns the authoritative state.
func (t *Toggle) Checked() reactive.Accessor[bool] { return t.checked }

func (t *Toggle) flip() {
	if !t.props.Disabled {
		t.checked.Set(!t.checked.Peek())
	}
}

// Render renders the switch.
func (t *Toggle) Render() *dom.Element {
	on := t.checked.Get()
	return dom.Label(
		cls("toggle", string(t.props.Size), when(on, "checked"), when(t.props.Disabled, "disabled")),
		dom.TestID(t.props.TestID),
		dom.Button(
			part("toggle", "track"),
			dom.Type("button"),
			dom.Role("switch"),
			dom.AriaBool("checked", on),
			dom.If(t.props.Disabled, dom.Aria("disabled", "true")),
			dom.If(t.props.Label != "", dom.Aria("label", t.props.Label)),
			dom.Disabled(t.props.Disabled),
			dom.OnClick(func(ev *dom.Event) {
				ev.StopPropagation()
				t.flip()
			}),
			dom.Span(part("toggle", "thumb")),
		),
		dom.If(t.props.Label != "", dom.Span(part("toggle", "label"), dom.Text(t.props.Label))),
	)
}

// CheckboxProps configures a Checkbox. A non-nil Checked makes it controlled.
type CheckboxProps struct {
	Checked        reactive.Accessor[bool]
	DefaultChecked bool
	Indeterminate  bool
	Label          string
	Disabled       bool
	OnChange       func(bool)
	TestID         string
}

// Checkbox is a labelled check box.
type Checkbox struct {
	base
	props   CheckboxProps
	checked *hooks.Controllable[bool]
}

// NewCheckbox creates a Checkbox.
func NewCheckbox(scope *reactive.Scope, props CheckboxProps) *Checkbox {
	c := &Checkbox{base: newBase(scope, "Checkbox"), props: props}
	c.checked = hooks.NewControllable(scope, "Checkbox.checked", props.Checked, props.DefaultChecked, props.OnChange)
	return c
}

// Checked returns the authoritative state.
func (c *Checkbox) Checked() reactive.Accessor[bool] { return c.checked }

func (c *Checkbox) flip() {
	if !c.props.Disabled {
		c.checked.Set(!c.checked.Peek())
	}
}

// Render renders the checkbox.
func (c *Checkbox) Render() *dom.Element {
	on := c.checked.Get()
	state := strconv.FormatBool(on)
	if c.props.Indeterminate && !on {
		state = "mixed"
	}
	return dom.Div(
		cls("checkbox", when(on, "checked"), when(c.props.Indeterminate, "indeterminate"), when(c.props.Disabled, "disabled")),
		dom.TestID(c.props.TestID),
		dom.Div(
			part("checkbox", "box"),
			dom.Role("checkbox"),
			dom.Aria("checked", state),
			dom.If(c.props.Disabled, dom.Aria("disabled", "true")),
			dom.If(c.props.Label != "", dom.Aria("label", c.props.Label)),
			dom.If(!c.props.Disabled, dom.TabIndex(0)),
			dom.OnClick(func(*dom.Event) { c.flip() }),
			dom.OnKeyDown(func(ev *dom.Event) {
				if ev.Key == dom.KeySpace {
					ev.PreventDefault()
					c.flip()
				}
			}),
			dom.If(on, Icon(IconCheck)),
		),
		dom.If(c.props.Label != "", dom.Span(
			part("checkbox", "label"),
			dom.OnClick(func(*dom.Event) { c.flip() }),
			dom.Text(c.props.Label),
		)),
	)
}

// SliderProps configures a Slider. A non-nil Value makes it controlled.
// Min and Max default to 0 and 100, Step to 1.
type SliderProps struct {
	Value        reactive.Accessor[float64]
	DefaultValue float64
	Min          float64
	Max          float64
	Step         float64
	Disabled     bool
	Label        string
	OnChange     func(float64)
	TestID       string
}

// Slider picks a number from a range with arrow keys or by typing into its
// native range input.
type Slider struct {
	base
	props SliderProps
	value *hooks.Controllable[float64]
}

// NewSlider creates a Slider.
func NewSlider(scope *reactive.Scope, props SliderProps) *Slider {
	if props.Max <= props.Min {
		if props.Max != 0 || props.Min != 0 {
			scope.Warn("Slider", "max must exceed min; using 0..100")
		}
		props.Min, props.Max = 0, 100
	}
	if props.Step <= 0 {
		props.Step = 1
	}
	s := &Slider{base: newBase(scope, "Slider"), props: props}
	s.value = hooks.NewControllable(scope, "Slider.value", props.Value, s.clamp(props.DefaultValue), props.OnChange)
	return s
}

// Value returns the authoritative value.
func (s *Slider) Value() reactive.Accessor[float64] { return s.value }

// clamp bounds v to the range and snaps it to the step grid.
func (s *Slider) clamp(v float64) float64 {
	steps := math.Round((v - s.props.Min) / s.props.Step)
	v = s.props.Min + steps*s.props.Step
	return min(max(v, s.props.Min), s.props.Max)
}

func (s *Slider) set(v float64) {
	v = s.clamp(v)
	if s.props.Disabled || v == s.value.Peek() {
		return
	}
	s.value.Set(v)
}

func (s *Slider) keyDown(ev *dom.Event) {
	v := s.value.Peek()
	switch ev.Key {
	case dom.KeyArrowRight, dom.KeyArrowUp:
		s.set(v + s.props.Step)
	case dom.KeyArrowLeft, dom.KeyArrowDown:
		s.set(v - s.props.Step)
	case dom.KeyHome:
		s.set(s.props.Min)
	case dom.KeyEnd:
		s.set(s.props.Max)
	default:
		return
	}
	ev.PreventDefault()
}

// Render renders the slider.
func (s *Slider) Render() *dom.Element {
	v := s.clamp(s.value.Get())
	fraction := (v - s.props.Min) / (s.props.Max - s.props.Min) * 100
	format := func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
	return dom.Div(
		cls("slider", when(s.props.Disabled, "disabled")),
		dom.TestID(s.props.TestID),
		dom.Div(
			part("slider", "track"),
			dom.Role("slider"),
			dom.Aria("valuenow", format(v)),
			dom.Aria("valuemin", format(s.props.Min)),
			dom.Aria("valuemax", format(s.props.Max)),
			dom.Aria("orientation", "horizontal"),
			dom.If(s.props.Label != "", dom.Aria("label", s.props.Label)),
			dom.If(s.props.Disabled, dom.Aria("disabled", "true")),
			dom.If(!s.props.Disabled, dom.TabIndex(0)),
			dom.OnKeyDown(s.keyDown),
			dom.Div(part("slider", "range"), dom.Style("width", pct(fraction))),
			dom.Div(part("slider", "thumb"), dom.Style("left", pct(fraction))),
		),
		dom.Input(
			part("slider", "native"),
			dom.Type("range"),
			dom.Attr("min", format(s.props.Min)),
			dom.Attr("max", format(s.props.Max)),
			dom.Attr("step", format(s.props.Step)),
			dom.Value(format(v)),
			dom.Disabled(s.props.Disabled),
			dom.Aria("hidden", "true"),
			dom.TabIndex(-1),
			dom.OnInput(func(ev *dom.Event) {
				if f, err := strconv.ParseFloat(ev.Value, 64); err == nil {
					s.set(f)
				}
				ev.Target.SetValue(format(s.clamp(s.value.Peek())))
			}),
		),
	)
}

// ProgressProps configures a Progress bar.
type ProgressProps struct {
	Value reactive.Accessor[float64]
	// Max defaults to 100.
	Max       float64
	Size      Size
	Variant   Variant
	ShowLabel bool
	Label     string
	TestID    string
}

// Progress renders a determinate progress bar, clamping its value to
// [0, Max].
func Progress(props ProgressProps) dom.Component {
	if props.Max <= 0 {
		props.Max = 100
	}
	if props.Value == nil {
		props.Value = reactive.Static(0.0)
	}
	return dom.ComponentFunc(func() *dom.Element {
		v := min(max(props.Value.Get(), 0), props.Max)
		percent := v / props.Max * 100
		format := strconv.FormatFloat(v, 'f', -1, 64)
		return dom.Div(
			cls("progress", string(props.Size.orDefault()), string(props.Variant.orDefault())),
			dom.Role("progressbar"),
			dom.Aria("valuenow", format),
			dom.Aria("valuemin", "0"),
			dom.Aria("valuemax", strconv.FormatFloat(props.Max, 'f', -1, 64)),
			dom.If(props.Label != "", dom.Aria("label", props.Label)),
			dom.TestID(props.TestID),
			dom.Div(part("progress", "bar"), dom.Style("width", pct(math.Round(percent*100)/100))),
			dom.If(props.ShowLabel, dom.Span(part("progress", "label"), dom.Text(strconv.Itoa(int(math.Round(percent)))+"%"))),
		)
	})
}

// DefaultToastDuration is how long a toast stays up unless told otherwise.
const DefaultToastDuration = 5 * time.Second

// ToastProps configures a Toast. A negative Duration disables auto-dismiss.
type ToastProps struct {
	Title       string
	Description string
	Variant     ToastVariant
	Duration    time.Duration
	OnDismiss   func()
	TestID      string
}

// Toast is a transient notice that dismisses itself after Duration or when
// its close button is clicked.
type Toast struct {
	base
	props   ToastProps
	visible *reactive.Signal[bool]
	timer   *reactive.Timer
}

// NewToast creates a Toast and starts its dismiss timer.
func NewToast(scope *reactive.Scope, props ToastProps) *Toast {
	props.Variant = props.Variant.orDefault()
	if props.Duration == 0 {
		props.Duration = DefaultToastDuration
	}
	t := &Toast{base: newBase(scope, "Toast"), props: props, visible: reactive.NewSignal(scope, true)}
	if props.Duration > 0 {
		t.timer = reactive.After(scope, props.Duration, t.Dismiss)
	}
	return t
}

// Visible reports whether the toast is showing.
func (t *Toast) Visible() reactive.Accessor[bool] { return t.visible }

// Dismiss hides the toast once and cancels its timer.
func (t *Toast) Dismiss() {
	t.timer.Stop()
	if !t.visible.Peek() {
		return
	}
	t.visible.Set(false)
	t.emit("on_dismiss", t.props.OnDismiss)
}

func (t *Toast) icon() IconName {
	switch t.props.Variant {
	case ToastSuccess:
		return IconCheck
	case ToastWarning:
		return IconAlertTriangle
	case ToastError:
		return IconAlertCircle
	default:
		return IconInfo
	}
}

// Render renders the toast, or an empty region once dismissed.
func (t *Toast) Render() *dom.Element {
	if !t.visible.Get() {
		return dom.Div(cls("toast-region"), dom.TestID(t.props.TestID))
	}
	role := "status"
	if t.props.Variant == ToastError {
		role = "alert"
	}
	return dom.Div(
		cls("toast-region"),
		dom.TestID(t.props.TestID),
		dom.Div(
			cls("toast", string(t.props.Variant)),
			dom.Role(role),
			dom.Span(part("toast", "icon"), Icon(t.icon())),
			dom.Div(
				part("toast", "content"),
				dom.Strong(part("toast", "title"), dom.Text(t.props.Title)),
				dom.If(t.props.Description != "", dom.P(part("toast", "description"), dom.Text(t.props.Description))),
			),
			dom.Button(
				part("toast", "close"),
				dom.Type("button"),
				dom.Aria("label", "Dismiss"),
				dom.OnClick(func(*dom.Event) { t.Dismiss() }),
				Icon(IconClose),
			),
		),
	)
}
