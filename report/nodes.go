package report

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func class(val string) html.Attribute {
	return attr("class", val)
}

func id(val string) html.Attribute {
	return attr("id", val)
}

func newElement(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

// appendElement appends a new element to parent and returns it.
func appendElement(parent *html.Node, tag string, attrs ...html.Attribute) *html.Node {
	n := newElement(tag, attrs...)
	parent.AppendChild(n)
	return n
}

// appendTextElement appends a new element holding text to parent and returns it.
func appendTextElement(parent *html.Node, tag, text string, attrs ...html.Attribute) *html.Node {
	n := appendElement(parent, tag, attrs...)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
