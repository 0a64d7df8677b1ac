package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/dom/domtest"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

func TestStarFill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		i         int
		value     float64
		allowHalf bool
		want      StarFillKind
	}{
		{0, 0, true, StarEmpty},
		{0, 1, false, StarFull},
		{2, 2.5, true, StarHalf},
		{2, 2.5, false, StarEmpty},
		{2, 2.9, true, StarHalf},
		{3, 2.5, true, StarEmpty},
		{4, 5, true, StarFull},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, StarFill(tc.i, tc.value, tc.allowHalf), "star %d at %v", tc.i, tc.value)
	}
}

func starFills(tt *domtest.Tester) []string {
	var out []string
	for _, el := range tt.FindAll(dom.ByClass("glade-rating__star")) {
		for _, kind := range []StarFillKind{StarEmpty, StarHalf, StarFull} {
			if el.HasClass("glade-rating__star--" + string(kind)) {
				out = append(out, string(kind))
			}
		}
	}
	return out
}

func TestRatingHoverAndClick(t *testing.T) {
	t.Parallel()

	var changes []float64
	var r *Rating
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		r = NewRating(s, RatingProps{Max: 4, OnChange: func(v float64) { changes = append(changes, v) }})
		return r
	})
	stars := func() []*dom.Element { return tt.FindAll(dom.ByClass("glade-rating__star")) }
	require.Len(t, stars(), 4)
	require.Equal(t, "4", tt.ByRole("slider").AttributeOr("aria-valuemax", ""))

	tt.MouseEnter(stars()[2])
	require.Equal(t, 3.0, r.Hover().Get())
	require.Equal(t, []string{"full", "full", "full", "empty"}, starFills(tt))

	tt.MouseLeave(tt.ByRole("slider"))
	require.Equal(t, []string{"empty", "empty", "empty", "empty"}, starFills(tt))

	tt.Click(stars()[1])
	require.Equal(t, 2.0, r.Value().Get())
	tt.Click(stars()[1])
	require.Equal(t, []float64{2}, changes)
}

func TestRatingHalfStars(t *testing.T) {
	t.Parallel()

	var r *Rating
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		r = NewRating(s, RatingProps{AllowHalf: true})
		return r
	})
	tt.Host().SetRect(r.stars.At(3), dom.Rect{X: 60, Y: 0, Width: 20, Height: 20})
	star := func() *dom.Element { return tt.FindAll(dom.ByClass("glade-rating__star"))[3] }

	tt.MouseMove(star(), dom.Point{X: 64, Y: 10})
	require.Equal(t, 3.5, r.Hover().Get())
	require.Equal(t, []string{"full", "full", "full", "half", "empty"}, starFills(tt))

	tt.MouseMove(star(), dom.Point{X: 75, Y: 10})
	require.Equal(t, 4.0, r.Hover().Get())

	tt.MouseMove(star(), dom.Point{X: 61, Y: 10})
	tt.Click(star())
	require.Equal(t, 3.5, r.Value().Get())
	require.Equal(t, "3.5", tt.ByRole("slider").AttributeOr("aria-valuenow", ""))
}

func TestRatingKeyboard(t *testing.T) {
	t.Parallel()

	var r *Rating
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		r = NewRating(s, RatingProps{AllowHalf: true, DefaultValue: 2})
		return r
	})
	slider := func() *dom.Element { return tt.ByRole("slider") }

	require.True(t, tt.KeyDown(slider(), dom.KeyArrowRight).DefaultPrevented())
	require.Equal(t, 2.5, r.Value().Get())
	tt.KeyDown(slider(), dom.KeyArrowDown)
	tt.KeyDown(slider(), dom.KeyArrowDown)
	require.Equal(t, 1.5, r.Value().Get())
	tt.KeyDown(slider(), dom.KeyEnd)
	require.Equal(t, 5.0, r.Value().Get())
	tt.KeyDown(slider(), dom.KeyArrowUp)
	require.Equal(t, 5.0, r.Value().Get())
	tt.KeyDown(slider(), dom.KeyHome)
	require.Equal(t, 0.0, r.Value().Get())
	require.False(t, tt.KeyDown(slider(), dom.KeyEnter).DefaultPrevented())
}

func TestRatingReadOnly(t *testing.T) {
	t.Parallel()

	changed := false
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		return NewRating(s, RatingProps{ReadOnly: true, DefaultValue: 3, OnChange: func(float64) { changed = true }})
	})
	star := tt.FindAll(dom.ByClass("glade-rating__star"))[4]
	tt.MouseEnter(star)
	tt.Click(star)
	tt.KeyDown(tt.ByRole("slider"), dom.KeyArrowRight)
	require.False(t, changed)
	require.True(t, tt.ByRole("slider").HasClass("glade-rating--readonly"))
	require.False(t, tt.ByRole("slider").HasAttribute("tabindex"))
}

func TestRatingDisplay(t *testing.T) {
	t.Parallel()

	el := RatingDisplay(2.5, 0, "")
	require.Equal(t, "2.5 out of 5", el.AttributeOr("aria-label", ""))
	fills := dom.FindAll(el, dom.ByClass("glade-rating__star--half"))
	require.Len(t, fills, 1)
}
