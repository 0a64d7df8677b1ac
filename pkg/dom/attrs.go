package dom

import "strconv"

// Attr sets an attribute.
func Attr(name, value string) Node {
	return nodeFunc(func(el *Element) { el.SetAttribute(name, value) })
}

// BoolAttr sets an empty attribute when on holds.
func BoolAttr(name string, on bool) Node {
	if !on {
		return nil
	}
	return Attr(name, "")
}

// ID sets the id attribute. An empty id is skipped.
func ID(id string) Node {
	if id == "" {
		return nil
	}
	return Attr("id", id)
}

// Class appends classes. Empty names are ignored.
func Class(names ...string) Node {
	return nodeFunc(func(el *Element) {
		for _, n := range names {
			if n != "" && !el.HasClass(n) {
				el.classes = append(el.classes, n)
			}
		}
	})
}

// ClassIf appends name when cond holds.
func ClassIf(cond bool, name string) Node {
	if !cond {
		return nil
	}
	return Class(name)
}

// Style sets an inline style property.
func Style(prop, value string) Node {
	return nodeFunc(func(el *Element) {
		for i, s := range el.styles {
			if s.prop == prop {
				el.styles[i].value = value
				return
			}
		}
		el.styles = append(el.styles, styleDecl{prop: prop, value: value})
	})
}

// Data sets a data-* attribute.
func Data(name, value string) Node { return Attr("data-"+name, value) }

// Aria sets an aria-* attribute.
func Aria(name, value string) Node { return Attr("aria-"+name, value) }

// AriaBool sets an aria-* attribute to "true" or "false".
func AriaBool(name string, v bool) Node { return Aria(name, strconv.FormatBool(v)) }

// Role sets the role attribute.
func Role(role string) Node { return Attr("role", role) }

// TestID sets data-testid.
func TestID(id string) Node {
	if id == "" {
		return nil
	}
	return Attr("data-testid", id)
}

// Type sets the type attribute.
func Type(t string) Node { return Attr("type", t) }

// Value sets the value attribute, which also resets the live value.
func Value(v string) Node { return Attr("value", v) }

// Placeholder sets the placeholder attribute.
func Placeholder(p string) Node {
	if p == "" {
		return nil
	}
	return Attr("placeholder", p)
}

// Title sets the title attribute.
func Title(t string) Node {
	if t == "" {
		return nil
	}
	return Attr("title", t)
}

// Disabled marks a control disabled.
func Disabled(on bool) Node { return BoolAttr("disabled", on) }

// Hidden hides an element.
func Hidden(on bool) Node { return BoolAttr("hidden", on) }

// TabIndex sets tabindex.
func TabIndex(i int) Node { return Attr("tabindex", strconv.Itoa(i)) }

// On registers an event handler.
func On(eventType string, h Handler) Node {
	if h == nil {
		return nil
	}
	return nodeFunc(func(el *Element) {
		if el.handlers == nil {
			el.handlers = make(map[string][]Handler)
		}
		el.handlers[eventType] = append(el.handlers[eventType], h)
	})
}

// OnClick registers a click handler.
func OnClick(h Handler) Node { return On(EventClick, h) }

// OnKeyDown registers a keydown handler.
func OnKeyDown(h Handler) Node { return On(EventKeyDown, h) }

// OnInput registers an input handler.
func OnInput(h Handler) Node { return On(EventInput, h) }

// StopClick stops click propagation at the element.
func StopClick() Node {
	return OnClick(func(e *Event) { e.StopPropagation() })
}

// WithRef binds ref to the element when it is mounted.
func WithRef(ref *Ref) Node {
	if ref == nil {
		return nil
	}
	return nodeFunc(func(el *Element) { el.ref = ref })
}

func tag(name string) func(nodes ...Node) *Element {
	return func(nodes ...Node) *Element { return El(name, nodes...) }
}

// Element constructors.
var (
	Div      = tag("div")
	Span     = tag("span")
	P        = tag("p")
	H2       = tag("h2")
	H3       = tag("h3")
	Button   = tag("button")
	Input    = tag("input")
	Textarea = tag("textarea")
	Label    = tag("label")
	Nav      = tag("nav")
	Ul       = tag("ul")
	Li       = tag("li")
	Kbd      = tag("kbd")
	Small    = tag("small")
	Strong   = tag("strong")
	Header   = tag("header")
	Footer   = tag("footer")
	Section  = tag("section")
	Aside    = tag("aside")
	Main     = tag("main")
	Svg      = tag("svg")
	Path     = tag("path")
)
