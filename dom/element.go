package dom

import (
	"strings"
)

// Element represents an element in the DOM tree. It is a typed view of
// a Node and provides element-specific properties and methods.
type Element Node

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// TagName returns the tag name in lower case.
func (e *Element) TagName() string {
	return e.elementData.tagName
}

// Id returns the id attribute value, or "" if the attribute is absent.
func (e *Element) Id() string {
	value, _ := e.GetAttribute("id")
	return value
}

// GetAttribute returns the value of the attribute with the given name
// and whether it is present. A present attribute with an empty value
// reports ("", true). The name is lowercased before lookup.
func (e *Element) GetAttribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, attr := range e.elementData.attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// HasAttribute returns true if the element has an attribute with the
// given name.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.GetAttribute(name)
	return ok
}

// SetAttribute sets the value of the attribute with the given name,
// replacing any existing value. The name is lowercased.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	for i, attr := range e.elementData.attributes {
		if attr.Name == name {
			e.elementData.attributes[i].Value = value
			return
		}
	}
	e.elementData.attributes = append(e.elementData.attributes, Attribute{Name: name, Value: value})
}

// RemoveAttribute removes the attribute with the given name, if present.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i, attr := range e.elementData.attributes {
		if attr.Name == name {
			e.elementData.attributes = append(e.elementData.attributes[:i], e.elementData.attributes[i+1:]...)
			return
		}
	}
}

// Attributes returns the element's attributes in order of first
// appearance. The returned slice is the element's own storage and must
// not be modified.
func (e *Element) Attributes() []Attribute {
	return e.elementData.attributes
}

// Classes returns the whitespace-separated tokens of the class
// attribute.
func (e *Element) Classes() []string {
	value, _ := e.GetAttribute("class")
	return strings.Fields(value)
}

// HasClass returns true if the class attribute contains the given
// token.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// FirstElementChild returns the first child that is an element, or nil.
func (e *Element) FirstElementChild() *Element {
	for c := e.firstChild; c != nil; c = c.nextSibling {
		if c.nodeType == ElementNode {
			return (*Element)(c)
		}
	}
	return nil
}

// LastElementChild returns the last child that is an element, or nil.
func (e *Element) LastElementChild() *Element {
	for c := e.lastChild; c != nil; c = c.prevSibling {
		if c.nodeType == ElementNode {
			return (*Element)(c)
		}
	}
	return nil
}

// NextElementSibling returns the nearest following sibling that is an
// element, skipping text nodes, or nil.
func (e *Element) NextElementSibling() *Element {
	for s := e.nextSibling; s != nil; s = s.nextSibling {
		if s.nodeType == ElementNode {
			return (*Element)(s)
		}
	}
	return nil
}

// PreviousElementSibling returns the nearest preceding sibling that is
// an element, skipping text nodes, or nil.
func (e *Element) PreviousElementSibling() *Element {
	for s := e.prevSibling; s != nil; s = s.prevSibling {
		if s.nodeType == ElementNode {
			return (*Element)(s)
		}
	}
	return nil
}

// String renders the element and its subtree as HTML.
func (e *Element) String() string {
	return e.AsNode().OuterHTML()
}
