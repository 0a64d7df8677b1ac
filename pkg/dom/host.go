package dom

import (
	"errors"
	"sync"
)

var (
	// ErrDetached is returned when a ref has no mounted element.
	ErrDetached = errors.New("element is not mounted")
	// ErrNoLayout is returned when the host has no geometry for an element.
	ErrNoLayout = errors.New("element has no layout")
)

// Host performs the imperative operations a real document exposes. The
// document calls it from asynchronous continuations only.
type Host interface {
	Focus(el *Element, focused bool) error
	Select(el *Element) error
	BoundingRect(el *Element) (Rect, error)
	ScrollMetrics(el *Element) (ScrollMetrics, error)
	WriteClipboard(text string) error
}

// HeadlessHost is an in-memory Host. Geometry is whatever was configured for
// an element's ref or test id; focus moves the document's active element.
type HeadlessHost struct {
	mu sync.Mutex

	rects        map[*Ref]Rect
	rectsByID    map[string]Rect
	scroll       map[*Ref]ScrollMetrics
	scrollByID   map[string]ScrollMetrics
	clipboard    string
	clipboardErr error
	focusErr     error
	writes       int
}

// NewHeadlessHost creates an empty HeadlessHost.
func NewHeadlessHost() *HeadlessHost {
	return &HeadlessHost{
		rects:      make(map[*Ref]Rect),
		rectsByID:  make(map[string]Rect),
		scroll:     make(map[*Ref]ScrollMetrics),
		scrollByID: make(map[string]ScrollMetrics),
	}
}

// SetRect configures the bounding rect reported for the element bound to ref.
func (h *HeadlessHost) SetRect(ref *Ref, r Rect) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rects[ref] = r
}

// SetRectByTestID configures the bounding rect for elements with a data-testid.
func (h *HeadlessHost) SetRectByTestID(id string, r Rect) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rectsByID[id] = r
}

// SetScroll configures scroll metrics for the element bound to ref.
func (h *HeadlessHost) SetScroll(ref *Ref, m ScrollMetrics) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.scroll[ref] = m
}

// SetScrollByTestID configures scroll metrics for elements with a data-testid.
func (h *HeadlessHost) SetScrollByTestID(id string, m ScrollMetrics) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.scrollByID[id] = m
}

// FailClipboard makes subsequent clipboard writes fail with err; nil restores them.
func (h *HeadlessHost) FailClipboard(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clipboardErr = err
}

// FailFocus makes subsequent focus calls fail with err; nil restores them.
func (h *HeadlessHost) FailFocus(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.focusErr = err
}

// Clipboard returns the last text written to the clipboard.
func (h *HeadlessHost) Clipboard() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clipboard
}

// ClipboardWrites counts successful clipboard writes.
func (h *HeadlessHost) ClipboardWrites() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.writes
}

// Focus moves document focus to el, or away from it.
func (h *HeadlessHost) Focus(el *Element, focused bool) error {
	h.mu.Lock()
	err := h.focusErr
	h.mu.Unlock()
	if err != nil {
		return err
	}
	doc := el.doc
	if doc == nil || !doc.Contains(el) {
		return ErrDetached
	}
	if focused {
		doc.SetFocus(el)
	} else if doc.ActiveElement() == el {
		doc.SetFocus(nil)
	}
	return nil
}

// Select selects the whole content of a control.
func (h *HeadlessHost) Select(el *Element) error {
	if el.doc == nil || !el.doc.Contains(el) {
		return ErrDetached
	}
	el.selectAll = true
	return nil
}

// BoundingRect reports the configured rect.
func (h *HeadlessHost) BoundingRect(el *Element) (Rect, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if el.ref != nil {
		if r, ok := h.rects[el.ref]; ok {
			return r, nil
		}
	}
	if id, ok := el.Attribute("data-testid"); ok {
		if r, ok := h.rectsByID[id]; ok {
			return r, nil
		}
	}
	return Rect{}, ErrNoLayout
}

// ScrollMetrics reports the configured scroll state.
func (h *HeadlessHost) ScrollMetrics(el *Element) (ScrollMetrics, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if el.ref != nil {
		if m, ok := h.scroll[el.ref]; ok {
			return m, nil
		}
	}
	if id, ok := el.Attribute("data-testid"); ok {
		if m, ok := h.scrollByID[id]; ok {
			return m, nil
		}
	}
	return ScrollMetrics{}, ErrNoLayout
}

// WriteClipboard stores text unless a failure is configured.
func (h *HeadlessHost) WriteClipboard(text string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clipboardErr != nil {
		return h.clipboardErr
	}
	h.clipboard = text
	h.writes++
	return nil
}
