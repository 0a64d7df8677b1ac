package dom

import "strings"

// Predicate selects elements.
type Predicate func(*Element) bool

// Find returns the first element under root (root included) matching pred,
// in document order.
func Find(root *Element, pred Predicate) *Element {
	if root == nil {
		return nil
	}
	if pred(root) {
		return root
	}
	for _, child := range root.Children() {
		if found := Find(child, pred); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every element under root matching pred, in document order.
func FindAll(root *Element, pred Predicate) []*Element {
	var out []*Element
	var walk func(el *Element)
	walk = func(el *Element) {
		if pred(el) {
			out = append(out, el)
		}
		for _, child := range el.Children() {
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// Closest walks from el up through its ancestors and returns the first match.
func Closest(el *Element, pred Predicate) *Element {
	for cur := el; cur != nil; cur = cur.parent {
		if pred(cur) {
			return cur
		}
	}
	return nil
}

// HasAncestorAttr reports whether el or any ancestor carries the attribute.
func HasAncestorAttr(el *Element, name string) bool {
	return Closest(el, HasAttr(name)) != nil
}

// ByTestID matches data-testid.
func ByTestID(id string) Predicate {
	return AttrEquals("data-testid", id)
}

// ByRole matches the role attribute.
func ByRole(role string) Predicate {
	return AttrEquals("role", role)
}

// ByClass matches a class.
func ByClass(class string) Predicate {
	return func(el *Element) bool { return el.HasClass(class) }
}

// ByTag matches the tag name.
func ByTag(tag string) Predicate {
	return func(el *Element) bool { return el.Tag == tag }
}

// ByText matches elements whose trimmed text content equals text.
func ByText(text string) Predicate {
	return func(el *Element) bool { return strings.TrimSpace(el.TextContent()) == text }
}

// HasAttr matches elements carrying the attribute.
func HasAttr(name string) Predicate {
	return func(el *Element) bool { return el.HasAttribute(name) }
}

// AttrEquals matches an attribute value.
func AttrEquals(name, value string) Predicate {
	return func(el *Element) bool {
		v, ok := el.Attribute(name)
		return ok && v == value
	}
}

// And combines predicates.
func And(preds ...Predicate) Predicate {
	return func(el *Element) bool {
		for _, p := range preds {
			if !p(el) {
				return false
			}
		}
		return true
	}
}
