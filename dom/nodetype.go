// Package dom provides a minimal document object model for parsed HTML:
// a tree of element and text nodes, a stack-based builder over tokenizer
// events, and CSS selector queries against the result.
//
// Trees are plain data structures without synchronization. A fully built
// tree is safe for concurrent readers, including parallel queries;
// mutation requires external coordination.
package dom

// NodeType represents the type of a Node, numbered as in the DOM
// specification. Only elements and text exist in this model; comments
// and doctypes are discarded during parsing.
type NodeType uint16

const (
	// ElementNode represents an Element node.
	ElementNode NodeType = 1
	// TextNode represents a Text node.
	TextNode NodeType = 3
)

// String returns the string representation of the NodeType.
func (nt NodeType) String() string {
	switch nt {
	case ElementNode:
		return "ELEMENT_NODE"
	case TextNode:
		return "TEXT_NODE"
	default:
		return "UNKNOWN_NODE"
	}
}
