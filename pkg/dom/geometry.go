package dom

// Rect is an element's bounding box in client coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Left returns the left edge.
func (r Rect) Left() float64 { return min(r.X, r.X+r.Width) }

// Top returns the top edge.
func (r Rect) Top() float64 { return min(r.Y, r.Y+r.Height) }

// Right returns the right edge.
func (r Rect) Right() float64 { return max(r.X, r.X+r.Width) }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return max(r.Y, r.Y+r.Height) }

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// ScrollMetrics is the scroll state of a scrollable element.
type ScrollMetrics struct {
	ScrollTop    float64
	ClientHeight float64
	ScrollHeight float64
}

// AtTop reports whether the viewport is within threshold of the top.
func (m ScrollMetrics) AtTop(threshold float64) bool {
	return m.ScrollTop <= threshold
}

// AtBottom reports whether the viewport is within threshold of the bottom.
func (m ScrollMetrics) AtBottom(threshold float64) bool {
	return m.ScrollTop+m.ClientHeight >= m.ScrollHeight-threshold
}
