package dom

import (
	"fmt"

	"github.com/chrisuehlinger/microdom/css"
)

// normalizeSelector accepts the selector forms the query methods take:
// a selector string, a parsed *css.Selector, or a css.SelectorGroup.
// Passing a pre-parsed value skips reparsing on repeated queries.
func normalizeSelector(selector interface{}) (css.SelectorGroup, error) {
	switch s := selector.(type) {
	case string:
		return css.ParseGroup(s)
	case *css.Selector:
		return css.SelectorGroup{s}, nil
	case css.SelectorGroup:
		return s, nil
	default:
		return nil, fmt.Errorf("not a selector or group of selectors: %v", selector)
	}
}

// Matches reports whether this node itself matches the selector. Text
// nodes match nothing.
func (n *Node) Matches(selector interface{}) (bool, error) {
	group, err := normalizeSelector(selector)
	if err != nil {
		return false, err
	}
	return matchGroup(n, group), nil
}

// QuerySelector returns the first node in document order, starting with
// n itself, that matches the selector. It returns nil when nothing in
// the subtree matches.
func (n *Node) QuerySelector(selector interface{}) (*Node, error) {
	group, err := normalizeSelector(selector)
	if err != nil {
		return nil, err
	}
	return queryFirst(n, group), nil
}

// QuerySelectorAll returns every node in the subtree, starting with n
// itself, that matches the selector, in document order.
func (n *Node) QuerySelectorAll(selector interface{}) ([]*Node, error) {
	group, err := normalizeSelector(selector)
	if err != nil {
		return nil, err
	}
	var results []*Node
	queryAll(n, group, &results)
	return results, nil
}

// Closest returns the nearest node matching the selector, examining n
// first and then each ancestor in turn. It returns nil when neither n
// nor any ancestor matches.
func (n *Node) Closest(selector interface{}) (*Node, error) {
	group, err := normalizeSelector(selector)
	if err != nil {
		return nil, err
	}
	for cur := n; cur != nil; cur = cur.parentNode {
		if matchGroup(cur, group) {
			return cur, nil
		}
	}
	return nil, nil
}

// queryFirst walks the subtree rooted at n in document order and stops
// at the first match.
func queryFirst(n *Node, group css.SelectorGroup) *Node {
	if matchGroup(n, group) {
		return n
	}
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if found := queryFirst(c, group); found != nil {
			return found
		}
	}
	return nil
}

// queryAll collects every match in the subtree rooted at n, in document
// order.
func queryAll(n *Node, group css.SelectorGroup, results *[]*Node) {
	if matchGroup(n, group) {
		*results = append(*results, n)
	}
	for c := n.firstChild; c != nil; c = c.nextSibling {
		queryAll(c, group, results)
	}
}
