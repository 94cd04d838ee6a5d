package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// OuterHTML renders the node and its subtree as HTML text. Attribute
// values and text data are escaped; a void element without children
// renders self-closed, every other element gets an explicit end tag.
func (n *Node) OuterHTML() string {
	var sb strings.Builder
	n.serialize(&sb)
	return sb.String()
}

// InnerHTML renders the node's children as HTML text.
func (n *Node) InnerHTML() string {
	var sb strings.Builder
	for c := n.firstChild; c != nil; c = c.nextSibling {
		c.serialize(&sb)
	}
	return sb.String()
}

// String renders the node as HTML.
func (n *Node) String() string {
	return n.OuterHTML()
}

func (n *Node) serialize(sb *strings.Builder) {
	if n.nodeType == TextNode {
		sb.WriteString(html.EscapeString(*n.textData))
		return
	}

	el := (*Element)(n)
	sb.WriteByte('<')
	sb.WriteString(el.TagName())
	for _, attr := range el.elementData.attributes {
		sb.WriteByte(' ')
		sb.WriteString(attr.Name)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(attr.Value))
		sb.WriteByte('"')
	}

	if n.firstChild == nil && isVoid(el.TagName()) {
		sb.WriteString("/>")
		return
	}

	sb.WriteByte('>')
	for c := n.firstChild; c != nil; c = c.nextSibling {
		c.serialize(sb)
	}
	sb.WriteString("</")
	sb.WriteString(el.TagName())
	sb.WriteByte('>')
}
