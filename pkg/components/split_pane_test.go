package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/dom/domtest"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

func TestClampSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                    string
		pointer, origin, extent float64
		want                    float64
		ok                      bool
	}{
		{"middle", 300, 100, 400, 50, true},
		{"quarter", 200, 100, 400, 25, true},
		{"below min", 105, 100, 400, MinSplitPercent, true},
		{"above max", 499, 100, 400, MaxSplitPercent, true},
		{"left of container", 0, 100, 400, MinSplitPercent, true},
		{"empty extent", 10, 0, 0, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ClampSplit(tc.pointer, tc.origin, tc.extent)
			require.Equal(t, tc.ok, ok)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func mountSplit(t *testing.T, dir Direction) (*domtest.Tester, *SplitPane, *[]string) {
	t.Helper()
	var sp *SplitPane
	var resized []string
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		sp = NewSplitPane(s, SplitPaneProps{
			Direction: dir,
			TestID:    "split",
			First:     dom.Static(dom.Text("left")),
			Second:    dom.Static(dom.Text("right")),
			OnResize:  func(size string) { resized = append(resized, size) },
		})
		return sp
	})
	tt.Host().SetRectByTestID("split", dom.Rect{X: 100, Y: 50, Width: 400, Height: 200})
	return tt, sp, &resized
}

func TestSplitPaneHorizontalDrag(t *testing.T) {
	t.Parallel()

	tt, sp, resized := mountSplit(t, DirectionHorizontal)
	first := func() *dom.Element { return tt.ByClass("glade-split-pane__pane--first") }
	require.Equal(t, "50%", first().StyleValue("width"))
	require.Equal(t, "vertical", tt.ByRole("separator").AttributeOr("aria-orientation", ""))

	tt.MouseMove(tt.ByTestID("split"), dom.Point{X: 200, Y: 60})
	require.Equal(t, "50%", sp.Size().Get(), "moves without a drag do nothing")

	tt.MouseDown(tt.ByRole("separator"), dom.Point{X: 300, Y: 60})
	require.True(t, sp.Dragging().Get())

	tt.MouseMove(tt.ByTestID("split"), dom.Point{X: 200, Y: 60})
	require.Equal(t, "25%", sp.Size().Get())
	require.Equal(t, "25%", first().StyleValue("width"))

	tt.MouseMove(tt.ByTestID("split"), dom.Point{X: 110, Y: 60})
	require.Equal(t, "10%", sp.Size().Get())

	tt.MouseUp(tt.ByTestID("split"), dom.Point{X: 110, Y: 60})
	require.False(t, sp.Dragging().Get())
	tt.MouseMove(tt.ByTestID("split"), dom.Point{X: 400, Y: 60})
	require.Equal(t, "10%", sp.Size().Get())
	require.Equal(t, []string{"25%", "10%"}, *resized)
}

func TestSplitPaneVerticalAndMouseLeave(t *testing.T) {
	t.Parallel()

	tt, sp, _ := mountSplit(t, DirectionVertical)
	tt.MouseDown(tt.ByRole("separator"), dom.Point{})
	tt.MouseMove(tt.ByTestID("split"), dom.Point{X: 0, Y: 240})
	require.Equal(t, "90%", sp.Size().Get())
	require.Equal(t, "90%", tt.ByClass("glade-split-pane__pane--first").StyleValue("height"))

	tt.MouseLeave(tt.ByTestID("split"))
	require.False(t, sp.Dragging().Get())
}

func TestSplitPaneWithoutLayoutIgnoresMoves(t *testing.T) {
	t.Parallel()

	var sp *SplitPane
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		sp = NewSplitPane(s, SplitPaneProps{DefaultSize: "30%", TestID: "split"})
		return sp
	})
	tt.MouseDown(tt.ByRole("separator"), dom.Point{})
	require.NotPanics(t, func() { tt.MouseMove(tt.ByTestID("split"), dom.Point{X: 10}) })
	require.Equal(t, "30%", sp.Size().Get())
}
