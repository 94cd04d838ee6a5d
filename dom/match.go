package dom

import (
	"strings"

	"github.com/chrisuehlinger/microdom/css"
)

// matchGroup reports whether n matches any selector in the group.
func matchGroup(n *Node, group css.SelectorGroup) bool {
	for _, sel := range group {
		if matchSelector(n, sel) {
			return true
		}
	}
	return false
}

// matchSelector evaluates a complex selector right to left: the last
// compound applies to n itself, earlier compounds to related nodes as
// dictated by the combinators between them.
func matchSelector(n *Node, sel *css.Selector) bool {
	if len(sel.Compounds) == 0 {
		return false
	}
	return matchFrom(n, sel, len(sel.Compounds)-1)
}

// matchFrom checks compound i against n, then recurses over the
// candidates for compound i-1. Candidate sets are searched
// exhaustively, so a chain like "a > b c" succeeds if any ancestor
// pairing works, not just the nearest one.
func matchFrom(n *Node, sel *css.Selector, i int) bool {
	if !matchCompound(n, sel.Compounds[i]) {
		return false
	}
	if i == 0 {
		return true
	}

	// The combinator between compounds i-1 and i is stored on the
	// left-hand compound.
	switch sel.Compounds[i-1].Combinator {
	case css.CombinatorChild:
		if parent := n.parentNode; parent != nil {
			return matchFrom(parent, sel, i-1)
		}
		return false

	case css.CombinatorDescendant:
		for p := n.parentNode; p != nil; p = p.parentNode {
			if matchFrom(p, sel, i-1) {
				return true
			}
		}
		return false

	case css.CombinatorNextSibling:
		if prev := previousElementSibling(n); prev != nil {
			return matchFrom(prev, sel, i-1)
		}
		return false

	case css.CombinatorSubsequentSibling:
		for s := previousElementSibling(n); s != nil; s = previousElementSibling(s) {
			if matchFrom(s, sel, i-1) {
				return true
			}
		}
		return false

	default:
		return false
	}
}

// previousElementSibling returns the nearest preceding sibling element,
// skipping text nodes.
func previousElementSibling(n *Node) *Node {
	for s := n.prevSibling; s != nil; s = s.prevSibling {
		if s.nodeType == ElementNode {
			return s
		}
	}
	return nil
}

// matchCompound reports whether every constraint of the compound holds
// on n. Text nodes never match.
func matchCompound(n *Node, compound *css.Compound) bool {
	el := n.AsElement()
	if el == nil {
		return false
	}
	if compound.Tag != "" && compound.Tag != "*" && compound.Tag != el.TagName() {
		return false
	}
	if compound.ID != "" && compound.ID != el.Id() {
		return false
	}
	for _, class := range compound.Classes {
		if !el.HasClass(class) {
			return false
		}
	}
	for _, attr := range compound.Attributes {
		if !matchAttribute(el, attr) {
			return false
		}
	}
	return true
}

// matchAttribute evaluates one attribute selector against el. Every
// operator requires the attribute to be present; the substring
// operators additionally never match an empty pattern.
func matchAttribute(el *Element, sel *css.AttributeSelector) bool {
	value, ok := el.GetAttribute(sel.Name)
	if !ok {
		return false
	}
	switch sel.Operator {
	case css.AttrExists:
		return true
	case css.AttrEquals:
		return value == sel.Value
	case css.AttrIncludes:
		for _, word := range strings.Fields(value) {
			if word == sel.Value {
				return true
			}
		}
		return false
	case css.AttrDashMatch:
		return value == sel.Value || strings.HasPrefix(value, sel.Value+"-")
	case css.AttrPrefix:
		return sel.Value != "" && strings.HasPrefix(value, sel.Value)
	case css.AttrSuffix:
		return sel.Value != "" && strings.HasSuffix(value, sel.Value)
	case css.AttrSubstring:
		return sel.Value != "" && strings.Contains(value, sel.Value)
	default:
		return false
	}
}
