package dom

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// RenderHTML writes el and its subtree as HTML.
func RenderHTML(w io.Writer, el *Element) error {
	return html.Render(w, toHTML(el))
}

// OuterHTML returns el serialized as HTML. Serialization errors yield an
// empty string.
func OuterHTML(el *Element) string {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, el); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML serializes el's children.
func InnerHTML(el *Element) string {
	var buf bytes.Buffer
	for _, n := range el.children {
		switch v := n.(type) {
		case *Element:
			if err := RenderHTML(&buf, v); err != nil {
				return ""
			}
		case Text:
			if err := html.Render(&buf, &html.Node{Type: html.TextNode, Data: string(v)}); err != nil {
				return ""
			}
		}
	}
	return buf.String()
}

func attrsOf(el *Element) []html.Attribute {
	var attrs []html.Attribute
	if len(el.classes) > 0 {
		v, _ := el.Attribute("class")
		attrs = append(attrs, html.Attribute{Key: "class", Val: v})
	}
	if len(el.styles) > 0 {
		attrs = append(attrs, html.Attribute{Key: "style", Val: el.styleString()})
	}
	for _, a := range el.attrs {
		if el.Tag == "textarea" && a.name == "value" {
			continue
		}
		attrs = append(attrs, html.Attribute{Key: a.name, Val: a.value})
	}
	return attrs
}

func toHTML(el *Element) *html.Node {
	node := &html.Node{Type: html.ElementNode, Data: el.Tag, Attr: attrsOf(el)}
	if el.Tag == "textarea" {
		if el.value != "" {
			node.AppendChild(&html.Node{Type: html.TextNode, Data: el.value})
		}
		return node
	}
	for _, n := range el.children {
		switch v := n.(type) {
		case *Element:
			node.AppendChild(toHTML(v))
		case Text:
			node.AppendChild(&html.Node{Type: html.TextNode, Data: string(v)})
		}
	}
	return node
}

var voidElements = map[string]bool{
	"area": true, "br": true, "col": true, "embed": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true, "track": true, "wbr": true,
}

// RenderIndentedHTML writes el with one element per line, indented by depth.
// Elements whose children are all text stay on one line. The output is
// meant for reading and line diffs; whitespace inside it is not significant.
func RenderIndentedHTML(w io.Writer, el *Element) error {
	var buf bytes.Buffer
	if err := writeIndented(&buf, el, 0); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func writeIndented(buf *bytes.Buffer, el *Element, depth int) error {
	indent := strings.Repeat("  ", depth)
	var tag bytes.Buffer
	if err := html.Render(&tag, &html.Node{Type: html.ElementNode, Data: el.Tag, Attr: attrsOf(el)}); err != nil {
		return err
	}
	if voidElements[el.Tag] {
		buf.WriteString(indent + tag.String() + "\n")
		return nil
	}
	open := strings.TrimSuffix(tag.String(), "</"+el.Tag+">")
	closing := "</" + el.Tag + ">"

	if el.Tag == "textarea" || len(el.Children()) == 0 {
		text := el.value
		if el.Tag != "textarea" {
			text = el.TextContent()
		}
		buf.WriteString(indent + open + html.EscapeString(text) + closing + "\n")
		return nil
	}

	buf.WriteString(indent + open + "\n")
	for _, n := range el.children {
		switch v := n.(type) {
		case *Element:
			if err := writeIndented(buf, v, depth+1); err != nil {
				return err
			}
		case Text:
			if t := strings.TrimSpace(string(v)); t != "" {
				buf.WriteString(indent + "  " + html.EscapeString(t) + "\n")
			}
		}
	}
	buf.WriteString(indent + closing + "\n")
	return nil
}
