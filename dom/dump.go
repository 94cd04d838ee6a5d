package dom

import (
	"strconv"
	"strings"

	"github.com/xlab/treeprint"
)

// Dump renders the subtree as an indented tree for debugging. Elements
// appear as their start tags, text nodes as quoted strings.
func (n *Node) Dump() string {
	tree := treeprint.NewWithRoot(dumpLabel(n))
	for c := n.firstChild; c != nil; c = c.nextSibling {
		dumpInto(tree, c)
	}
	return tree.String()
}

func dumpInto(branch treeprint.Tree, n *Node) {
	if n.firstChild == nil {
		branch.AddNode(dumpLabel(n))
		return
	}
	sub := branch.AddBranch(dumpLabel(n))
	for c := n.firstChild; c != nil; c = c.nextSibling {
		dumpInto(sub, c)
	}
}

func dumpLabel(n *Node) string {
	if t := n.AsText(); t != nil {
		return strconv.Quote(t.Data())
	}
	el := (*Element)(n)
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(el.TagName())
	for _, attr := range el.elementData.attributes {
		sb.WriteByte(' ')
		sb.WriteString(attr.Name)
		sb.WriteString(`="`)
		sb.WriteString(attr.Value)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	return sb.String()
}
