package dom

// Ref is a handle to a mounted element. It is bound when a render includes
// WithRef(ref) and cleared when the element leaves the tree.
//
// The imperative methods are asynchronous: they run in a later task, re-read
// the bound element at that point, and drop host failures after logging them.
// Continuations run only on success. Calls made before the ref is first
// bound wait for that bind.
type Ref struct {
	el      *Element
	doc     *Document
	pending []func(d *Document)
}

// NewRef creates an unbound ref.
func NewRef() *Ref {
	return &Ref{}
}

// Element returns the bound element, or nil.
func (r *Ref) Element() *Element {
	if r == nil {
		return nil
	}
	return r.el
}

// Bound reports whether an element is mounted for the ref.
func (r *Ref) Bound() bool {
	return r != nil && r.el != nil
}

// SetFocus focuses or blurs the element.
func (r *Ref) SetFocus(focused bool) {
	r.hostCall("focus", func(d *Document, el *Element) error {
		return d.host.Focus(el, focused)
	})
}

// Select selects the element's content.
func (r *Ref) Select() {
	r.hostCall("select", func(d *Document, el *Element) error {
		return d.host.Select(el)
	})
}

// BoundingRect fetches the element's bounding rect and passes it to then.
func (r *Ref) BoundingRect(then func(Rect)) {
	r.hostCall("bounding_rect", func(d *Document, el *Element) error {
		rect, err := d.host.BoundingRect(el)
		if err != nil {
			return err
		}
		if then != nil {
			then(rect)
		}
		return nil
	})
}

// ScrollMetrics fetches the element's scroll state and passes it to then.
func (r *Ref) ScrollMetrics(then func(ScrollMetrics)) {
	r.hostCall("scroll_metrics", func(d *Document, el *Element) error {
		m, err := d.host.ScrollMetrics(el)
		if err != nil {
			return err
		}
		if then != nil {
			then(m)
		}
		return nil
	})
}

func (r *Ref) hostCall(op string, call func(d *Document, el *Element) error) {
	if r == nil {
		return
	}
	post := func(d *Document) {
		d.rt.Post(func() {
			el := r.el
			if el == nil {
				d.hostFailure(op, ErrDetached)
				return
			}
			if err := call(d, el); err != nil {
				d.hostFailure(op, err)
			}
		})
	}
	if r.doc == nil {
		r.pending = append(r.pending, post)
		return
	}
	post(r.doc)
}

// bind attaches the ref to el and releases calls queued before the first bind.
func (r *Ref) bind(d *Document, el *Element) {
	r.el = el
	r.doc = d
	pending := r.pending
	r.pending = nil
	for _, post := range pending {
		post(d)
	}
}
