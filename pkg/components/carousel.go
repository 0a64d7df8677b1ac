package components

import (
	"strconv"
	"time"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// CarouselProps configures a Carousel.
type CarouselProps struct {
	Slides       []dom.Slot
	InitialIndex int
	// Autoplay advances one slide per interval when positive.
	Autoplay time.Duration
	// Infinite wraps past either end. The zero value is a bounded carousel
	// whose arrows disable at the ends.
	Infinite   bool
	Navigation CarouselNav
	OnChange   func(int)
	AriaLabel  string
	TestID     string
}

// Carousel shows one slide at a time with arrow and dot navigation and
// optional autoplay.
type Carousel struct {
	base
	props   CarouselProps
	current *reactive.Signal[int]
	slides  []dom.Node
	timer   *reactive.Timer
}

// NewCarousel creates a Carousel. Autoplay starts immediately and stops when
// the scope is disposed.
func NewCarousel(scope *reactive.Scope, props CarouselProps) *Carousel {
	props.Navigation = props.Navigation.orDefault()
	c := &Carousel{base: newBase(scope, "Carousel"), props: props}
	for _, slide := range props.Slides {
		c.slides = append(c.slides, slide.Build(scope))
	}
	c.current = reactive.NewSignal(scope, c.normalize(props.InitialIndex))
	if props.Autoplay > 0 && len(c.slides) > 1 {
		c.timer = reactive.Every(scope, props.Autoplay, c.GoNext)
	}
	return c
}

// Current returns the current slide index.
func (c *Carousel) Current() reactive.Accessor[int] { return c.current }

// Autoplaying reports whether the autoplay timer is running.
func (c *Carousel) Autoplaying() bool { return c.timer.Active() }

// normalize applies the wrap or clamp rule to i.
func (c *Carousel) normalize(i int) int {
	n := len(c.slides)
	if n == 0 {
		return 0
	}
	if c.props.Infinite {
		return (i%n + n) % n
	}
	return min(max(i, 0), n-1)
}

// GoTo moves to slide i, wrapping when infinite and clamping otherwise.
// OnChange fires only when the index actually changes.
func (c *Carousel) GoTo(i int) {
	next := c.normalize(i)
	if next == c.current.Peek() {
		return
	}
	c.current.Set(next)
	c.emit("on_change", func() {
		if c.props.OnChange != nil {
			c.props.OnChange(next)
		}
	})
}

// GoPrev moves one slide back.
func (c *Carousel) GoPrev() { c.GoTo(c.current.Peek() - 1) }

// GoNext moves one slide forward.
func (c *Carousel) GoNext() { c.GoTo(c.current.Peek() + 1) }

func (c *Carousel) canPrev(current int) bool {
	return c.props.Infinite || current > 0
}

func (c *Carousel) canNext(current int) bool {
	return c.props.Infinite || current < len(c.slides)-1
}

// Render renders the carousel.
func (c *Carousel) Render() *dom.Element {
	current := c.current.Get()
	n := len(c.slides)
	label := c.props.AriaLabel
	if label == "" {
		label = "Carousel"
	}
	return dom.Section(
		cls("carousel"),
		dom.Aria("roledescription", "carousel"),
		dom.Aria("label", label),
		dom.TestID(c.props.TestID),
		dom.TabIndex(0),
		dom.OnKeyDown(func(ev *dom.Event) {
			switch ev.Key {
			case dom.KeyArrowLeft:
				c.GoPrev()
			case dom.KeyArrowRight:
				c.GoNext()
			default:
				return
			}
			ev.PreventDefault()
		}),
		dom.Div(
			part("carousel", "viewport"),
			dom.Div(
				part("carousel", "track"),
				dom.Style("transform", "translateX("+pct(float64(-current*100))+")"),
				dom.Map(c.slides, func(i int, slide dom.Node) dom.Node {
					return dom.Div(
						part("carousel", "slide", when(i == current, "active")),
						dom.Role("group"),
						dom.Aria("roledescription", "slide"),
						dom.Aria("label", strconv.Itoa(i+1)+" of "+strconv.Itoa(n)),
						dom.AriaBool("hidden", i != current),
						slide,
					)
				}),
			),
		),
		dom.If(c.props.Navigation.arrows() && n > 1,
			dom.Button(
				part("carousel", "arrow", "prev"),
				dom.Type("button"),
				dom.Aria("label", "Previous slide"),
				dom.Disabled(!c.canPrev(current)),
				dom.OnClick(func(*dom.Event) { c.GoPrev() }),
				Icon(IconChevronLeft),
			),
			dom.Button(
				part("carousel", "arrow", "next"),
				dom.Type("button"),
				dom.Aria("label", "Next slide"),
				dom.Disabled(!c.canNext(current)),
				dom.OnClick(func(*dom.Event) { c.GoNext() }),
				Icon(IconChevronRight),
			),
		),
		dom.If(c.props.Navigation.dots() && n > 1, dom.Div(
			part("carousel", "dots"),
			dom.Role("tablist"),
			dom.Map(c.slides, func(i int, _ dom.Node) dom.Node {
				return dom.Button(
					part("carousel", "dot", when(i == current, "active")),
					dom.Type("button"),
					dom.Role("tab"),
					dom.AriaBool("selected", i == current),
					dom.Aria("label", "Go to slide "+strconv.Itoa(i+1)),
					dom.OnClick(func(*dom.Event) { c.GoTo(i) }),
				)
			}),
		)),
	)
}
