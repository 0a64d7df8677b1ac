package components

import (
	"strconv"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/hooks"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// StarFillKind is how much of a star is filled.
type StarFillKind string

const (
	StarEmpty StarFillKind = "empty"
	StarHalf  StarFillKind = "half"
	StarFull  StarFillKind = "full"
)

// StarFill returns the fill of the star at index i (0-based) for value.
func StarFill(i int, value float64, allowHalf bool) StarFillKind {
	switch {
	case value >= float64(i+1):
		return StarFull
	case allowHalf && value >= float64(i)+0.5:
		return StarHalf
	}
	return StarEmpty
}

const defaultRatingMax = 5

// RatingProps configures a Rating. A non-nil Value makes it controlled.
type RatingProps struct {
	Value        reactive.Accessor[float64]
	DefaultValue float64
	// Max is the number of stars; it defaults to 5.
	Max       int
	AllowHalf bool
	ReadOnly  bool
	Disabled  bool
	Size      Size
	OnChange  func(float64)
	TestID    string
}

// Rating is a row of stars. Hovering previews a value, clicking commits it,
// and arrow keys step it.
type Rating struct {
	base
	props RatingProps
	value *hooks.Controllable[float64]
	hover *reactive.Signal[float64]
	stars hooks.RefList
}

// NewRating creates a Rating.
func NewRating(scope *reactive.Scope, props RatingProps) *Rating {
	if props.Max <= 0 {
		props.Max = defaultRatingMax
	}
	props.Size = props.Size.orDefault()
	r := &Rating{
		base:  newBase(scope, "Rating"),
		props: props,
		hover: reactive.NewSignal(scope, 0.0),
		stars: hooks.NewRefList(props.Max),
	}
	r.value = hooks.NewControllable(scope, "Rating.value", props.Value, props.DefaultValue, props.OnChange)
	return r
}

// Value returns the committed value.
func (r *Rating) Value() reactive.Accessor[float64] { return r.value }

// Hover returns the previewed value, or 0 when not hovering.
func (r *Rating) Hover() reactive.Accessor[float64] { return r.hover }

func (r *Rating) interactive() bool {
	return !r.props.ReadOnly && !r.props.Disabled
}

func (r *Rating) step() float64 {
	if r.props.AllowHalf {
		return 0.5
	}
	return 1
}

func (r *Rating) commit(v float64) {
	v = min(max(v, 0), float64(r.props.Max))
	if v == r.value.Peek() {
		return
	}
	r.value.Set(v)
}

func (r *Rating) setHover(v float64) {
	if r.hover.Peek() != v {
		r.hover.Set(v)
	}
}

// pointAt previews star i, or its left half when the pointer is there.
func (r *Rating) pointAt(i int, ev *dom.Event) {
	if !r.interactive() {
		return
	}
	full := float64(i + 1)
	if !r.props.AllowHalf {
		r.setHover(full)
		return
	}
	pointer := ev.Client
	r.stars.At(i).BoundingRect(func(rect dom.Rect) {
		if !r.stars.At(i).Bound() {
			return
		}
		v := full
		if pointer.X < rect.Left()+rect.Width/2 {
			v = full - 0.5
		}
		r.setHover(v)
	})
}

func (r *Rating) keyDown(ev *dom.Event) {
	if !r.interactive() {
		return
	}
	current := r.value.Peek()
	switch ev.Key {
	case dom.KeyArrowRight, dom.KeyArrowUp:
		r.commit(current + r.step())
	case dom.KeyArrowLeft, dom.KeyArrowDown:
		r.commit(current - r.step())
	case dom.KeyHome:
		r.commit(0)
	case dom.KeyEnd:
		r.commit(float64(r.props.Max))
	default:
		return
	}
	ev.PreventDefault()
}

// Render renders the stars.
func (r *Rating) Render() *dom.Element {
	value := r.value.Get()
	hover := r.hover.Get()
	effective := value
	if hover > 0 {
		effective = hover
	}
	interactive := r.interactive()
	return dom.Div(
		cls("rating", string(r.props.Size), when(!interactive, "readonly"), when(r.props.Disabled, "disabled")),
		dom.Role("slider"),
		dom.Aria("valuemin", "0"),
		dom.Aria("valuemax", strconv.Itoa(r.props.Max)),
		dom.Aria("valuenow", strconv.FormatFloat(value, 'f', -1, 64)),
		dom.Aria("label", "Rating"),
		dom.If(r.props.Disabled, dom.Aria("disabled", "true")),
		dom.If(r.props.ReadOnly, dom.Aria("readonly", "true")),
		dom.If(interactive, dom.TabIndex(0)),
		dom.TestID(r.props.TestID),
		dom.OnKeyDown(r.keyDown),
		dom.On(dom.EventMouseLeave, func(*dom.Event) { r.setHover(0) }),
		dom.Map(r.stars, func(i int, ref *dom.Ref) dom.Node {
			return dom.Button(
				part("rating", "star", string(StarFill(i, effective, r.props.AllowHalf))),
				dom.Type("button"),
				dom.TabIndex(-1),
				dom.Aria("label", strconv.Itoa(i+1)+" star"),
				dom.Disabled(!interactive),
				dom.WithRef(ref),
				dom.On(dom.EventMouseEnter, func(ev *dom.Event) { r.pointAt(i, ev) }),
				dom.On(dom.EventMouseMove, func(ev *dom.Event) { r.pointAt(i, ev) }),
				dom.OnClick(func(*dom.Event) {
					if !interactive {
						return
					}
					v := r.hover.Peek()
					if v == 0 {
						v = float64(i + 1)
					}
					r.commit(v)
				}),
				Icon(IconStar),
			)
		}),
	)
}

// RatingDisplay renders a read-only star row for value out of outOf stars.
func RatingDisplay(value float64, outOf int, size Size) *dom.Element {
	if outOf <= 0 {
		outOf = defaultRatingMax
	}
	stars := make([]dom.Node, outOf)
	for i := range stars {
		stars[i] = dom.Span(part("rating", "star", string(StarFill(i, value, true))), Icon(IconStar))
	}
	return dom.Div(
		cls("rating", string(size.orDefault()), "readonly"),
		dom.Role("img"),
		dom.Aria("label", strconv.FormatFloat(value, 'f', -1, 64)+" out of "+strconv.Itoa(outOf)),
		dom.Group(stars...),
	)
}
