package dom

import (
	"strings"
)

// Attribute is a name-value pair on an element. Names are stored lower
// case; the order of first appearance is preserved.
type Attribute struct {
	Name  string
	Value string
}

// Node is the concrete storage behind every tree node. The nodeType
// field selects the variant: elements carry elementData, text nodes
// carry textData. Use AsElement or AsText for the typed views.
type Node struct {
	nodeType NodeType

	parentNode *Node

	// First/last child and sibling pointers for efficient traversal
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node

	// Type-specific data (only one is non-nil based on nodeType)
	elementData *elementData
	textData    *string
}

// elementData holds data specific to Element nodes.
type elementData struct {
	tagName    string // lower-case
	attributes []Attribute
}

// NewElement creates a detached element with the given tag name. The
// name is normalized to lower case.
func NewElement(tag string) *Element {
	n := &Node{
		nodeType:    ElementNode,
		elementData: &elementData{tagName: strings.ToLower(tag)},
	}
	return (*Element)(n)
}

// NewText creates a detached text node carrying data.
func NewText(data string) *Text {
	n := &Node{
		nodeType: TextNode,
		textData: &data,
	}
	return (*Text)(n)
}

// NodeType returns the type of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// AsElement returns the Element view of this node, or nil if it is not
// an element.
func (n *Node) AsElement() *Element {
	if n == nil || n.nodeType != ElementNode {
		return nil
	}
	return (*Element)(n)
}

// AsText returns the Text view of this node, or nil if it is not a text
// node.
func (n *Node) AsText() *Text {
	if n == nil || n.nodeType != TextNode {
		return nil
	}
	return (*Text)(n)
}

// ParentNode returns the parent of this node, or nil for a root.
func (n *Node) ParentNode() *Node {
	return n.parentNode
}

// ParentElement returns the parent as an Element. Parents are always
// elements in this model, so this differs from ParentNode only in type.
func (n *Node) ParentElement() *Element {
	if n.parentNode == nil {
		return nil
	}
	return (*Element)(n.parentNode)
}

// FirstChild returns the first child node, or nil if there are no children.
func (n *Node) FirstChild() *Node {
	return n.firstChild
}

// LastChild returns the last child node, or nil if there are no children.
func (n *Node) LastChild() *Node {
	return n.lastChild
}

// PreviousSibling returns the previous sibling node, or nil if this is
// the first child.
func (n *Node) PreviousSibling() *Node {
	return n.prevSibling
}

// NextSibling returns the next sibling node, or nil if this is the last
// child.
func (n *Node) NextSibling() *Node {
	return n.nextSibling
}

// HasChildNodes returns true if this node has any child nodes.
func (n *Node) HasChildNodes() bool {
	return n.firstChild != nil
}

// ChildNodes returns the child nodes as a slice, in document order.
func (n *Node) ChildNodes() []*Node {
	var children []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		children = append(children, c)
	}
	return children
}

// AppendChild adds c as the last child of n.
//
// It will panic if c already has a parent or siblings.
func (n *Node) AppendChild(c *Node) {
	if c.parentNode != nil || c.prevSibling != nil || c.nextSibling != nil {
		panic("dom: AppendChild called for an attached child Node")
	}
	if n.nodeType == TextNode {
		panic("dom: AppendChild called on a text node")
	}
	last := n.lastChild
	if last != nil {
		last.nextSibling = c
	} else {
		n.firstChild = c
	}
	n.lastChild = c
	c.parentNode = n
	c.prevSibling = last
}

// RemoveChild removes c, a child of n, from the tree and detaches it.
//
// It will panic if c's parent is not n.
func (n *Node) RemoveChild(c *Node) {
	if c.parentNode != n {
		panic("dom: RemoveChild called for a non-child Node")
	}
	if n.firstChild == c {
		n.firstChild = c.nextSibling
	}
	if c.nextSibling != nil {
		c.nextSibling.prevSibling = c.prevSibling
	}
	if n.lastChild == c {
		n.lastChild = c.prevSibling
	}
	if c.prevSibling != nil {
		c.prevSibling.nextSibling = c.nextSibling
	}
	c.parentNode = nil
	c.prevSibling = nil
	c.nextSibling = nil
}

// InsertBefore inserts newChild as a child of n, immediately before
// oldChild. If oldChild is nil, it appends newChild instead.
//
// It will panic if newChild already has a parent or siblings, or if
// oldChild is non-nil and not a child of n.
func (n *Node) InsertBefore(newChild, oldChild *Node) {
	if newChild.parentNode != nil || newChild.prevSibling != nil || newChild.nextSibling != nil {
		panic("dom: InsertBefore called for an attached child Node")
	}
	if n.nodeType == TextNode {
		panic("dom: InsertBefore called on a text node")
	}
	var prev, next *Node
	if oldChild != nil {
		if oldChild.parentNode != n {
			panic("dom: InsertBefore called for a non-child Node")
		}
		prev, next = oldChild.prevSibling, oldChild
	} else {
		prev = n.lastChild
	}
	if prev != nil {
		prev.nextSibling = newChild
	} else {
		n.firstChild = newChild
	}
	if next != nil {
		next.prevSibling = newChild
	} else {
		n.lastChild = newChild
	}
	newChild.parentNode = n
	newChild.prevSibling = prev
	newChild.nextSibling = next
}

// TextContent returns the concatenated data of the node's text
// descendants in document order. For a text node it is the data itself.
func (n *Node) TextContent() string {
	if n.nodeType == TextNode {
		return *n.textData
	}
	var sb strings.Builder
	n.collectTextContent(&sb)
	return sb.String()
}

func (n *Node) collectTextContent(sb *strings.Builder) {
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == TextNode {
			sb.WriteString(*child.textData)
			continue
		}
		child.collectTextContent(sb)
	}
}

// Normalize merges runs of adjacent text node children into single
// nodes and removes empty ones, throughout the subtree. Trees produced
// by the builder are already in this form.
func (n *Node) Normalize() {
	child := n.firstChild
	for child != nil {
		if child.nodeType != TextNode {
			child.Normalize()
			child = child.nextSibling
			continue
		}
		if *child.textData == "" {
			empty := child
			child = child.nextSibling
			n.RemoveChild(empty)
			continue
		}
		for child.nextSibling != nil && child.nextSibling.nodeType == TextNode {
			run := child.nextSibling
			*child.textData += *run.textData
			n.RemoveChild(run)
		}
		child = child.nextSibling
	}
}

// Ancestors returns the chain of ancestor elements, nearest first.
func (n *Node) Ancestors() []*Element {
	var ancestors []*Element
	for p := n.parentNode; p != nil; p = p.parentNode {
		ancestors = append(ancestors, (*Element)(p))
	}
	return ancestors
}

// Descendants returns every node beneath this one in document order,
// excluding the node itself.
func (n *Node) Descendants() []*Node {
	var nodes []*Node
	n.collectDescendants(&nodes)
	return nodes
}

func (n *Node) collectDescendants(nodes *[]*Node) {
	for child := n.firstChild; child != nil; child = child.nextSibling {
		*nodes = append(*nodes, child)
		child.collectDescendants(nodes)
	}
}

// Contains reports whether other is n itself or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parentNode {
		if cur == n {
			return true
		}
	}
	return false
}
