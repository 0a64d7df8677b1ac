package components

import (
	"strconv"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/hooks"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// PageItem is one entry of a pagination sequence: a page number or an
// ellipsis.
type PageItem struct {
	Page     int
	Ellipsis bool
}

// ComputePages returns the page items to show for current of total, with
// siblings pages on either side of current and boundaries pages at each end.
// Gaps too small for an ellipsis are filled with their pages. Inputs are
// clamped: boundaries to at least 1, siblings to at least 0 and current to
// [1, total]. A total below 1 yields nothing.
func ComputePages(current, total, siblings, boundaries int) []PageItem {
	if total < 1 {
		return nil
	}
	current = min(max(current, 1), total)
	siblings = max(siblings, 0)
	boundaries = max(boundaries, 1)

	left := max(1, current-siblings)
	right := min(total, current+siblings)
	showLeftEllipsis := left > boundaries+2
	showRightEllipsis := right < total-boundaries-1

	var items []PageItem
	page := func(p int) { items = append(items, PageItem{Page: p}) }

	for p := 1; p <= min(boundaries, left-1); p++ {
		page(p)
	}
	if showLeftEllipsis {
		items = append(items, PageItem{Ellipsis: true})
	} else {
		for p := boundaries + 1; p < left; p++ {
			page(p)
		}
	}
	for p := left; p <= right; p++ {
		page(p)
	}
	if showRightEllipsis {
		items = append(items, PageItem{Ellipsis: true})
	} else {
		for p := right + 1; p <= total-boundaries; p++ {
			page(p)
		}
	}
	for p := max(total-boundaries+1, right+1); p <= total; p++ {
		page(p)
	}
	return items
}

// PaginationProps configures a Pagination. A non-nil Current makes the page
// caller-owned.
type PaginationProps struct {
	Current        reactive.Accessor[int]
	DefaultCurrent int
	Total          int
	// Siblings and Boundaries default to 1 when nil; zero siblings shows
	// only the current page between the ellipses.
	Siblings   *int
	Boundaries *int
	OnChange   func(int)
	ShowEdges  bool
	TestID     string
}

// Pagination is a page navigator with previous and next controls and
// ellipses for long ranges.
type Pagination struct {
	base
	props      PaginationProps
	siblings   int
	boundaries int
	current    *hooks.Controllable[int]
}

func countOr(n *int, fallback int) int {
	if n == nil {
		return fallback
	}
	return *n
}

// NewPagination creates a Pagination.
func NewPagination(scope *reactive.Scope, props PaginationProps) *Pagination {
	if props.DefaultCurrent < 1 {
		props.DefaultCurrent = 1
	}
	p := &Pagination{
		base:       newBase(scope, "Pagination"),
		props:      props,
		siblings:   countOr(props.Siblings, 1),
		boundaries: countOr(props.Boundaries, 1),
	}
	if props.Total < 1 {
		p.warn("total must be at least 1; rendering nothing")
	}
	p.current = hooks.NewControllable(scope, "Pagination.current", props.Current, props.DefaultCurrent, props.OnChange)
	return p
}

// Current returns the current page.
func (p *Pagination) Current() reactive.Accessor[int] { return p.current }

func (p *Pagination) goTo(page int) {
	page = min(max(page, 1), p.props.Total)
	if page == p.current.Peek() {
		return
	}
	p.current.Set(page)
}

// Render renders the pagination.
func (p *Pagination) Render() *dom.Element {
	total := p.props.Total
	root := dom.Nav(cls("pagination"), dom.Aria("label", "Pagination"), dom.TestID(p.props.TestID))
	if total < 1 {
		return root
	}
	current := min(max(p.current.Get(), 1), total)
	items := ComputePages(current, total, p.siblings, p.boundaries)
	return root.Append(
		dom.If(p.props.ShowEdges, pageButton("first", "First page", current == 1, func() { p.goTo(1) }, Icon(IconChevronLeft), Icon(IconChevronLeft))),
		pageButton("prev", "Previous page", current == 1, func() { p.goTo(current - 1) }, Icon(IconChevronLeft)),
		dom.Map(items, func(_ int, item PageItem) dom.Node {
			if item.Ellipsis {
				return dom.Span(part("pagination", "ellipsis"), dom.Aria("hidden", "true"), dom.Text("…"))
			}
			active := item.Page == current
			return dom.Button(
				part("pagination", "page", when(active, "active")),
				dom.Type("button"),
				dom.Data("page", strconv.Itoa(item.Page)),
				dom.Aria("label", "Page "+strconv.Itoa(item.Page)),
				dom.If(active, dom.Aria("current", "page")),
				dom.OnClick(func(*dom.Event) { p.goTo(item.Page) }),
				dom.Text(strconv.Itoa(item.Page)),
			)
		}),
		pageButton("next", "Next page", current == total, func() { p.goTo(current + 1) }, Icon(IconChevronRight)),
		dom.If(p.props.ShowEdges, pageButton("last", "Last page", current == total, func() { p.goTo(total) }, Icon(IconChevronRight), Icon(IconChevronRight))),
	)
}

func pageButton(mod, label string, disabled bool, onClick func(), icon ...dom.Node) *dom.Element {
	return dom.Button(
		part("pagination", "nav", mod),
		dom.Type("button"),
		dom.Aria("label", label),
		dom.Disabled(disabled),
		dom.OnClick(func(*dom.Event) {
			if !disabled {
				onClick()
			}
		}),
		dom.Group(icon...),
	)
}

// SimplePaginationProps configures a SimplePagination.
type SimplePaginationProps struct {
	Current  reactive.Accessor[int]
	Total    int
	OnChange func(int)
	TestID   string
}

// SimplePagination shows previous and next controls around "Page x of y".
type SimplePagination struct {
	base
	props   SimplePaginationProps
	current *hooks.Controllable[int]
}

// NewSimplePagination creates a SimplePagination.
func NewSimplePagination(scope *reactive.Scope, props SimplePaginationProps) *SimplePagination {
	s := &SimplePagination{base: newBase(scope, "SimplePagination"), props: props}
	if props.Total < 1 {
		s.warn("total must be at least 1; rendering nothing")
	}
	s.current = hooks.NewControllable(scope, "SimplePagination.current", props.Current, 1, props.OnChange)
	return s
}

// Render renders the pagination.
func (s *SimplePagination) Render() *dom.Element {
	total := s.props.Total
	root := dom.Nav(cls("pagination", "simple"), dom.Aria("label", "Pagination"), dom.TestID(s.props.TestID))
	if total < 1 {
		return root
	}
	current := min(max(s.current.Get(), 1), total)
	move := func(page int) func() {
		return func() {
			if page != current {
				s.current.Set(page)
			}
		}
	}
	return root.Append(
		pageButton("prev", "Previous page", current == 1, move(current-1), Icon(IconChevronLeft)),
		dom.Span(part("pagination", "status"), dom.Text("Page "+strconv.Itoa(current)+" of "+strconv.Itoa(total))),
		pageButton("next", "Next page", current == total, move(current+1), Icon(IconChevronRight)),
	)
}
