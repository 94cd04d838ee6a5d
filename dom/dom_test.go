package dom

import (
	"testing"
)

func TestNewElement(t *testing.T) {
	el := NewElement("DIV")
	if el == nil {
		t.Fatal("NewElement returned nil")
	}
	if el.TagName() != "div" {
		t.Errorf("Expected tag name 'div', got %q", el.TagName())
	}
	n := el.AsNode()
	if n.NodeType() != ElementNode {
		t.Errorf("Expected ElementNode, got %v", n.NodeType())
	}
	if n.ParentNode() != nil || n.FirstChild() != nil || n.NextSibling() != nil {
		t.Error("Expected a detached element with no links")
	}
}

func TestNewText(t *testing.T) {
	text := NewText("Hello, World!")
	if text == nil {
		t.Fatal("NewText returned nil")
	}
	if text.Data() != "Hello, World!" {
		t.Errorf("Expected 'Hello, World!', got %q", text.Data())
	}
	if text.AsNode().NodeType() != TextNode {
		t.Errorf("Expected TextNode, got %v", text.AsNode().NodeType())
	}
}

func TestNodeTypeString(t *testing.T) {
	if got := ElementNode.String(); got != "ELEMENT_NODE" {
		t.Errorf("Expected 'ELEMENT_NODE', got %q", got)
	}
	if got := TextNode.String(); got != "TEXT_NODE" {
		t.Errorf("Expected 'TEXT_NODE', got %q", got)
	}
	if got := NodeType(9).String(); got != "UNKNOWN_NODE" {
		t.Errorf("Expected 'UNKNOWN_NODE', got %q", got)
	}
}

func TestNodeViews(t *testing.T) {
	el := NewElement("p").AsNode()
	text := NewText("x").AsNode()

	if el.AsElement() == nil {
		t.Error("Expected AsElement to return the element view")
	}
	if el.AsText() != nil {
		t.Error("Expected AsText to return nil for an element")
	}
	if text.AsText() == nil {
		t.Error("Expected AsText to return the text view")
	}
	if text.AsElement() != nil {
		t.Error("Expected AsElement to return nil for a text node")
	}

	var nothing *Node
	if nothing.AsElement() != nil || nothing.AsText() != nil {
		t.Error("Expected nil views from a nil node")
	}

	// Round trip through the view preserves identity.
	if el.AsElement().AsNode() != el {
		t.Error("Expected AsNode to return the original node")
	}
}

func TestAppendChild(t *testing.T) {
	parent := NewElement("ul").AsNode()
	first := NewElement("li").AsNode()
	second := NewElement("li").AsNode()

	parent.AppendChild(first)
	parent.AppendChild(second)

	if parent.FirstChild() != first {
		t.Error("Expected first child to be the first appended node")
	}
	if parent.LastChild() != second {
		t.Error("Expected last child to be the second appended node")
	}
	if first.NextSibling() != second || second.PreviousSibling() != first {
		t.Error("Expected the two children to be linked as siblings")
	}
	if first.ParentNode() != parent || second.ParentNode() != parent {
		t.Error("Expected both children to have the parent set")
	}
	if !parent.HasChildNodes() {
		t.Error("Expected HasChildNodes to be true")
	}
}

func TestAppendChildAttachedPanics(t *testing.T) {
	parent := NewElement("div").AsNode()
	child := NewElement("span").AsNode()
	parent.AppendChild(child)

	other := NewElement("div").AsNode()
	defer func() {
		if recover() == nil {
			t.Error("Expected AppendChild to panic for an attached child")
		}
	}()
	other.AppendChild(child)
}

func TestAppendChildToTextPanics(t *testing.T) {
	text := NewText("leaf").AsNode()
	defer func() {
		if recover() == nil {
			t.Error("Expected AppendChild to panic on a text node")
		}
	}()
	text.AppendChild(NewElement("div").AsNode())
}

func TestRemoveChild(t *testing.T) {
	parent := NewElement("div").AsNode()
	a := NewElement("a").AsNode()
	b := NewElement("b").AsNode()
	c := NewElement("c").AsNode()
	parent.AppendChild(a)
	parent.AppendChild(b)
	parent.AppendChild(c)

	parent.RemoveChild(b)

	if a.NextSibling() != c || c.PreviousSibling() != a {
		t.Error("Expected siblings to be relinked around the removed node")
	}
	if b.ParentNode() != nil || b.PreviousSibling() != nil || b.NextSibling() != nil {
		t.Error("Expected the removed node to be fully detached")
	}

	parent.RemoveChild(a)
	if parent.FirstChild() != c || parent.LastChild() != c {
		t.Error("Expected c to be the only remaining child")
	}

	parent.RemoveChild(c)
	if parent.HasChildNodes() {
		t.Error("Expected no children after removing all of them")
	}
}

func TestRemoveChildNonChildPanics(t *testing.T) {
	parent := NewElement("div").AsNode()
	stranger := NewElement("span").AsNode()
	defer func() {
		if recover() == nil {
			t.Error("Expected RemoveChild to panic for a non-child")
		}
	}()
	parent.RemoveChild(stranger)
}

func TestInsertBefore(t *testing.T) {
	parent := NewElement("div").AsNode()
	a := NewElement("a").AsNode()
	c := NewElement("c").AsNode()
	parent.AppendChild(a)
	parent.AppendChild(c)

	b := NewElement("b").AsNode()
	parent.InsertBefore(b, c)

	if a.NextSibling() != b || b.NextSibling() != c {
		t.Error("Expected insertion between a and c")
	}
	if b.PreviousSibling() != a || c.PreviousSibling() != b {
		t.Error("Expected backward links through the inserted node")
	}

	// Inserting before the first child updates firstChild.
	zero := NewElement("zero").AsNode()
	parent.InsertBefore(zero, a)
	if parent.FirstChild() != zero {
		t.Error("Expected the new node to become the first child")
	}

	// A nil reference appends.
	last := NewElement("last").AsNode()
	parent.InsertBefore(last, nil)
	if parent.LastChild() != last {
		t.Error("Expected the new node to become the last child")
	}
}

func TestChildNodes(t *testing.T) {
	parent := NewElement("div").AsNode()
	if children := parent.ChildNodes(); len(children) != 0 {
		t.Errorf("Expected no children, got %d", len(children))
	}

	a := NewElement("a").AsNode()
	text := NewText("x").AsNode()
	b := NewElement("b").AsNode()
	parent.AppendChild(a)
	parent.AppendChild(text)
	parent.AppendChild(b)

	children := parent.ChildNodes()
	if len(children) != 3 {
		t.Fatalf("Expected 3 children, got %d", len(children))
	}
	if children[0] != a || children[1] != text || children[2] != b {
		t.Error("Expected children in insertion order")
	}
}

func TestTextContent(t *testing.T) {
	// <div>Hello <b>brave</b> new <i><u>world</u></i></div>
	div := NewElement("div").AsNode()
	div.AppendChild(NewText("Hello ").AsNode())
	b := NewElement("b").AsNode()
	b.AppendChild(NewText("brave").AsNode())
	div.AppendChild(b)
	div.AppendChild(NewText(" new ").AsNode())
	i := NewElement("i").AsNode()
	u := NewElement("u").AsNode()
	u.AppendChild(NewText("world").AsNode())
	i.AppendChild(u)
	div.AppendChild(i)

	if got := div.TextContent(); got != "Hello brave new world" {
		t.Errorf("Expected 'Hello brave new world', got %q", got)
	}
	if got := b.TextContent(); got != "brave" {
		t.Errorf("Expected 'brave', got %q", got)
	}
	if got := u.FirstChild().TextContent(); got != "world" {
		t.Errorf("Expected 'world', got %q", got)
	}
	if got := NewElement("empty").AsNode().TextContent(); got != "" {
		t.Errorf("Expected empty text content, got %q", got)
	}
}

func TestNormalize(t *testing.T) {
	div := NewElement("div").AsNode()
	div.AppendChild(NewText("a").AsNode())
	div.AppendChild(NewText("").AsNode())
	div.AppendChild(NewText("b").AsNode())
	span := NewElement("span").AsNode()
	span.AppendChild(NewText("c").AsNode())
	span.AppendChild(NewText("d").AsNode())
	div.AppendChild(span)
	div.AppendChild(NewText("e").AsNode())

	div.Normalize()

	children := div.ChildNodes()
	if len(children) != 3 {
		t.Fatalf("Expected 3 children after normalize, got %d", len(children))
	}
	if got := children[0].AsText().Data(); got != "ab" {
		t.Errorf("Expected merged run 'ab', got %q", got)
	}
	if children[1] != span {
		t.Error("Expected the span to stay in place")
	}
	if got := children[2].AsText().Data(); got != "e" {
		t.Errorf("Expected trailing 'e', got %q", got)
	}

	spanChildren := span.ChildNodes()
	if len(spanChildren) != 1 || spanChildren[0].AsText().Data() != "cd" {
		t.Error("Expected the nested run to be merged too")
	}
}

func TestNormalizeDropsEmptyOnly(t *testing.T) {
	div := NewElement("div").AsNode()
	div.AppendChild(NewText("").AsNode())
	div.AppendChild(NewText("").AsNode())
	div.Normalize()
	if div.HasChildNodes() {
		t.Error("Expected empty text nodes to be removed")
	}
}

func TestAncestors(t *testing.T) {
	// <html><body><div><p>text</p></div></body></html>
	html := NewElement("html").AsNode()
	body := NewElement("body").AsNode()
	div := NewElement("div").AsNode()
	p := NewElement("p").AsNode()
	text := NewText("text").AsNode()
	html.AppendChild(body)
	body.AppendChild(div)
	div.AppendChild(p)
	p.AppendChild(text)

	ancestors := text.Ancestors()
	want := []string{"p", "div", "body", "html"}
	if len(ancestors) != len(want) {
		t.Fatalf("Expected %d ancestors, got %d", len(want), len(ancestors))
	}
	for i, tag := range want {
		if ancestors[i].TagName() != tag {
			t.Errorf("ancestor %d: Expected %q, got %q", i, tag, ancestors[i].TagName())
		}
	}

	if got := html.Ancestors(); len(got) != 0 {
		t.Errorf("Expected no ancestors for the root, got %d", len(got))
	}
}

func TestDescendants(t *testing.T) {
	// <div><a/>x<b><c/></b></div>
	div := NewElement("div").AsNode()
	a := NewElement("a").AsNode()
	x := NewText("x").AsNode()
	b := NewElement("b").AsNode()
	c := NewElement("c").AsNode()
	div.AppendChild(a)
	div.AppendChild(x)
	div.AppendChild(b)
	b.AppendChild(c)

	want := []*Node{a, x, b, c}
	got := div.Descendants()
	if len(got) != len(want) {
		t.Fatalf("Expected %d descendants, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("descendant %d: wrong node in document order", i)
		}
	}

	if leafs := c.Descendants(); len(leafs) != 0 {
		t.Errorf("Expected no descendants for a leaf, got %d", len(leafs))
	}
}

func TestContains(t *testing.T) {
	div := NewElement("div").AsNode()
	span := NewElement("span").AsNode()
	text := NewText("x").AsNode()
	div.AppendChild(span)
	span.AppendChild(text)

	if !div.Contains(div) {
		t.Error("Expected a node to contain itself")
	}
	if !div.Contains(text) {
		t.Error("Expected the root to contain a grandchild")
	}
	if span.Contains(div) {
		t.Error("Expected a child not to contain its parent")
	}
	if div.Contains(NewElement("p").AsNode()) {
		t.Error("Expected an unrelated node not to be contained")
	}
}

func TestParentElement(t *testing.T) {
	div := NewElement("div").AsNode()
	text := NewText("x").AsNode()
	div.AppendChild(text)

	parent := text.ParentElement()
	if parent == nil || parent.TagName() != "div" {
		t.Error("Expected the parent element view")
	}
	if div.ParentElement() != nil {
		t.Error("Expected nil parent element for a root")
	}
}

func TestElementAttributes(t *testing.T) {
	el := NewElement("input")

	if el.HasAttribute("type") {
		t.Error("Expected no attributes on a fresh element")
	}
	if _, ok := el.GetAttribute("type"); ok {
		t.Error("Expected GetAttribute to report absence")
	}

	el.SetAttribute("TYPE", "text")
	el.SetAttribute("value", "")

	if got, ok := el.GetAttribute("type"); !ok || got != "text" {
		t.Errorf("Expected ('text', true), got (%q, %v)", got, ok)
	}
	// Present with an empty value is still present.
	if got, ok := el.GetAttribute("value"); !ok || got != "" {
		t.Errorf("Expected ('', true), got (%q, %v)", got, ok)
	}
	if !el.HasAttribute("Value") {
		t.Error("Expected attribute lookup to be case-insensitive")
	}

	el.SetAttribute("type", "password")
	if got, _ := el.GetAttribute("type"); got != "password" {
		t.Errorf("Expected replaced value 'password', got %q", got)
	}

	attrs := el.Attributes()
	if len(attrs) != 2 {
		t.Fatalf("Expected 2 attributes, got %d", len(attrs))
	}
	if attrs[0].Name != "type" || attrs[1].Name != "value" {
		t.Error("Expected attributes in order of first appearance")
	}

	el.RemoveAttribute("type")
	if el.HasAttribute("type") {
		t.Error("Expected the attribute to be removed")
	}
	el.RemoveAttribute("missing")
	if len(el.Attributes()) != 1 {
		t.Errorf("Expected 1 attribute left, got %d", len(el.Attributes()))
	}
}

func TestElementId(t *testing.T) {
	el := NewElement("div")
	if el.Id() != "" {
		t.Errorf("Expected empty id, got %q", el.Id())
	}
	el.SetAttribute("id", "main")
	if el.Id() != "main" {
		t.Errorf("Expected 'main', got %q", el.Id())
	}
}

func TestElementClasses(t *testing.T) {
	el := NewElement("div")
	if got := el.Classes(); len(got) != 0 {
		t.Errorf("Expected no classes, got %v", got)
	}

	el.SetAttribute("class", "  btn   btn-primary\tactive ")
	classes := el.Classes()
	want := []string{"btn", "btn-primary", "active"}
	if len(classes) != len(want) {
		t.Fatalf("Expected %d classes, got %v", len(want), classes)
	}
	for i := range want {
		if classes[i] != want[i] {
			t.Errorf("class %d: Expected %q, got %q", i, want[i], classes[i])
		}
	}

	if !el.HasClass("btn-primary") {
		t.Error("Expected HasClass to find 'btn-primary'")
	}
	if el.HasClass("btn-primary-x") || el.HasClass("BTN") {
		t.Error("Expected HasClass to match whole tokens case-sensitively")
	}
}

func TestElementNavigation(t *testing.T) {
	// <div>text<a/>more<b/>tail</div>
	div := NewElement("div")
	a := NewElement("a")
	b := NewElement("b")
	div.AsNode().AppendChild(NewText("text").AsNode())
	div.AsNode().AppendChild(a.AsNode())
	div.AsNode().AppendChild(NewText("more").AsNode())
	div.AsNode().AppendChild(b.AsNode())
	div.AsNode().AppendChild(NewText("tail").AsNode())

	if div.FirstElementChild() != a {
		t.Error("Expected FirstElementChild to skip leading text")
	}
	if div.LastElementChild() != b {
		t.Error("Expected LastElementChild to skip trailing text")
	}
	if a.NextElementSibling() != b {
		t.Error("Expected NextElementSibling to skip the text between")
	}
	if b.PreviousElementSibling() != a {
		t.Error("Expected PreviousElementSibling to skip the text between")
	}
	if a.PreviousElementSibling() != nil || b.NextElementSibling() != nil {
		t.Error("Expected nil at the ends of the element siblings")
	}

	empty := NewElement("span")
	if empty.FirstElementChild() != nil || empty.LastElementChild() != nil {
		t.Error("Expected nil element children on an empty element")
	}
}

func TestTextData(t *testing.T) {
	text := NewText("hello")
	if text.Length() != 5 {
		t.Errorf("Expected length 5, got %d", text.Length())
	}
	text.AppendData(", world")
	if text.Data() != "hello, world" {
		t.Errorf("Expected 'hello, world', got %q", text.Data())
	}
	text.SetData("reset")
	if text.Data() != "reset" {
		t.Errorf("Expected 'reset', got %q", text.Data())
	}
	if text.String() != "reset" {
		t.Errorf("Expected String to return the data, got %q", text.String())
	}
}

func TestTextEqual(t *testing.T) {
	a := NewText("same")
	b := NewText("same")
	c := NewText("different")

	if !a.Equal(b) {
		t.Error("Expected distinct nodes with the same data to be equal")
	}
	if a.Equal(c) {
		t.Error("Expected nodes with different data not to be equal")
	}
	if !a.Equal(a) {
		t.Error("Expected a node to equal itself")
	}
	if a.Equal(nil) {
		t.Error("Expected a node not to equal nil")
	}
	var nothing *Text
	if !nothing.Equal(nil) {
		t.Error("Expected nil to equal nil")
	}

	// Position in a tree does not matter.
	parent := NewElement("p").AsNode()
	parent.AppendChild(a.AsNode())
	if !a.Equal(b) {
		t.Error("Expected equality to ignore attachment")
	}
}

func TestTextIsWhitespace(t *testing.T) {
	tests := []struct {
		data string
		want bool
	}{
		{"", true},
		{" \t\n\r\f", true},
		{"\n  ", true},
		{" x ", false},
		{"x", false},
	}
	for _, tt := range tests {
		if got := NewText(tt.data).IsWhitespace(); got != tt.want {
			t.Errorf("IsWhitespace(%q): Expected %v, got %v", tt.data, tt.want, got)
		}
	}
}
