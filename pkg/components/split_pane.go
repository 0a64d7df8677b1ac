package components

import (
	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// Split bounds, in percent of the container.
const (
	MinSplitPercent = 10
	MaxSplitPercent = 90
)

// ClampSplit converts a pointer coordinate into a first-pane percentage of a
// container starting at origin with the given extent, clamped to
// [MinSplitPercent, MaxSplitPercent]. It reports false for an empty extent.
func ClampSplit(pointer, origin, extent float64) (float64, bool) {
	if extent <= 0 {
		return 0, false
	}
	p := (pointer - origin) / extent * 100
	return min(max(p, MinSplitPercent), MaxSplitPercent), true
}

// SplitPaneProps configures a SplitPane.
type SplitPaneProps struct {
	First     dom.Slot
	Second    dom.Slot
	Direction Direction
	// DefaultSize is a CSS length for the first pane; it defaults to 50%.
	DefaultSize string
	OnResize    func(size string)
	TestID      string
}

// SplitPane shows two panes with a draggable divider between them.
type SplitPane struct {
	base
	props     SplitPaneProps
	size      *reactive.Signal[string]
	dragging  *reactive.Signal[bool]
	container *dom.Ref
	first     dom.Node
	second    dom.Node
}

// NewSplitPane creates a SplitPane.
func NewSplitPane(scope *reactive.Scope, props SplitPaneProps) *SplitPane {
	props.Direction = props.Direction.orDefault()
	if props.DefaultSize == "" {
		props.DefaultSize = "50%"
	}
	return &SplitPane{
		base:      newBase(scope, "SplitPane"),
		props:     props,
		size:      reactive.NewSignal(scope, props.DefaultSize),
		dragging:  reactive.NewSignal(scope, false),
		container: dom.NewRef(),
		first:     props.First.Build(scope),
		second:    props.Second.Build(scope),
	}
}

// Size returns the first pane's CSS size.
func (s *SplitPane) Size() reactive.Accessor[string] { return s.size }

// Dragging reports whether a resize is in progress.
func (s *SplitPane) Dragging() reactive.Accessor[bool] { return s.dragging }

func (s *SplitPane) horizontal() bool {
	return s.props.Direction == DirectionHorizontal
}

func (s *SplitPane) startDrag(ev *dom.Event) {
	ev.PreventDefault()
	s.dragging.Set(true)
}

func (s *SplitPane) stopDrag(*dom.Event) {
	if s.dragging.Peek() {
		s.dragging.Set(false)
	}
}

func (s *SplitPane) move(ev *dom.Event) {
	if !s.dragging.Peek() {
		return
	}
	pointer := ev.Client
	s.container.BoundingRect(func(r dom.Rect) {
		// The drag may have ended while the rect was in flight.
		if !s.dragging.Peek() {
			return
		}
		var p float64
		var ok bool
		if s.horizontal() {
			p, ok = ClampSplit(pointer.X, r.Left(), r.Width)
		} else {
			p, ok = ClampSplit(pointer.Y, r.Top(), r.Height)
		}
		if !ok {
			return
		}
		size := pct(p)
		if size == s.size.Peek() {
			return
		}
		s.size.Set(size)
		s.emit("on_resize", func() {
			if s.props.OnResize != nil {
				s.props.OnResize(size)
			}
		})
	})
}

// Render renders the split pane.
func (s *SplitPane) Render() *dom.Element {
	dragging := s.dragging.Get()
	size := s.size.Get()
	dimension := "width"
	if !s.horizontal() {
		dimension = "height"
	}
	return dom.Div(
		cls("split-pane", string(s.props.Direction), when(dragging, "dragging")),
		dom.TestID(s.props.TestID),
		dom.WithRef(s.container),
		dom.On(dom.EventMouseMove, s.move),
		dom.On(dom.EventMouseUp, s.stopDrag),
		dom.On(dom.EventMouseLeave, s.stopDrag),
		dom.Div(
			part("split-pane", "pane", "first"),
			dom.Style(dimension, size),
			dom.Style("flex-shrink", "0"),
			s.first,
		),
		dom.Div(
			part("split-pane", "divider", when(dragging, "active")),
			dom.Role("separator"),
			dom.Aria("orientation", separatorOrientation(s.props.Direction)),
			dom.On(dom.EventMouseDown, s.startDrag),
		),
		dom.Div(part("split-pane", "pane", "second"), s.second),
	)
}

// separatorOrientation is the divider's own axis, across the split.
func separatorOrientation(d Direction) string {
	if d == DirectionHorizontal {
		return string(DirectionVertical)
	}
	return string(DirectionHorizontal)
}
