package dom

import (
	"strings"

	"github.com/chrisuehlinger/microdom/html"
)

// ParseOptions configures DOM construction. The zero value is the
// tolerant default, which repairs malformed markup silently.
type ParseOptions struct {
	// Strict turns the recoverable anomalies into errors: an end tag
	// with no matching open element, an end tag that would implicitly
	// close elements above it, and elements left open at end of input.
	Strict bool
}

// voidElements never take children and are closed immediately on their
// start tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

func isVoid(tag string) bool {
	return voidElements[tag]
}

// Builder assembles a DOM tree from a stream of tokenizer events.
// Events arrive through the typed methods or AddToken; Finish ends the
// stream. Input need not have a single root: the builder accumulates a
// top-level forest, exposed via Roots and Root.
type Builder struct {
	opts     ParseOptions
	stack    []*Element // open elements, innermost last
	roots    []*Node    // top-level forest in document order
	finished bool
}

// NewBuilder returns a builder with the given options.
func NewBuilder(opts ParseOptions) *Builder {
	return &Builder{opts: opts}
}

// top returns the innermost open element, or nil when none is open.
func (b *Builder) top() *Element {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

// attach places a node at the current attach point: the innermost open
// element, or the top-level forest when the stack is empty.
func (b *Builder) attach(n *Node) {
	if top := b.top(); top != nil {
		top.AsNode().AppendChild(n)
		return
	}
	b.roots = append(b.roots, n)
}

// lastAttached returns the most recently attached node at the current
// attach point, or nil.
func (b *Builder) lastAttached() *Node {
	if top := b.top(); top != nil {
		return top.lastChild
	}
	if len(b.roots) == 0 {
		return nil
	}
	return b.roots[len(b.roots)-1]
}

// StartTag opens an element with the given name and attributes. Void
// elements are attached but never pushed onto the stack, so they cannot
// take children. Duplicate attribute names keep the first occurrence.
func (b *Builder) StartTag(name string, attrs []Attribute) error {
	if b.finished {
		return &BuildError{Message: "builder already finished"}
	}
	el := NewElement(name)
	for _, attr := range attrs {
		if !el.HasAttribute(attr.Name) {
			el.SetAttribute(attr.Name, attr.Value)
		}
	}
	b.attach(el.AsNode())
	if !isVoid(el.TagName()) {
		b.stack = append(b.stack, el)
	}
	return nil
}

// EndTag closes the named element. A tag matching nothing on the stack
// is ignored; a tag matching an outer element implicitly closes every
// element above it. In strict mode both anomalies are errors and the
// stack is left untouched.
func (b *Builder) EndTag(name string) error {
	if b.finished {
		return &BuildError{Message: "builder already finished"}
	}
	name = strings.ToLower(name)
	idx := -1
	for i := len(b.stack) - 1; i >= 0; i-- {
		if b.stack[i].TagName() == name {
			idx = i
			break
		}
	}
	if idx == -1 {
		if b.opts.Strict {
			return buildErrorf("extra end tag: %q", name)
		}
		return nil
	}
	if idx != len(b.stack)-1 && b.opts.Strict {
		return buildErrorf("expecting end tag %q, got %q", b.top().TagName(), name)
	}
	b.stack = b.stack[:idx]
	return nil
}

// Text attaches character data at the current attach point, coalescing
// with a trailing text node so adjacent runs form a single node. Empty
// data is ignored.
func (b *Builder) Text(data string) error {
	if b.finished {
		return &BuildError{Message: "builder already finished"}
	}
	if data == "" {
		return nil
	}
	if last := b.lastAttached(); last != nil && last.nodeType == TextNode {
		last.AsText().AppendData(data)
		return nil
	}
	b.attach(NewText(data).AsNode())
	return nil
}

// Comment discards a comment event. Comments are not represented in the
// tree.
func (b *Builder) Comment(data string) error {
	if b.finished {
		return &BuildError{Message: "builder already finished"}
	}
	return nil
}

// AddToken dispatches one tokenizer token to the builder. Comment and
// doctype tokens are discarded. A self-closing tag is treated as a
// plain start tag: the trailing slash only matters for void elements,
// which close themselves regardless.
func (b *Builder) AddToken(tok html.Token) error {
	switch tok.Type {
	case html.StartTagToken, html.SelfClosingTagToken:
		return b.StartTag(tok.Data, convertTokenAttributes(tok.Attributes))
	case html.EndTagToken:
		return b.EndTag(tok.Data)
	case html.TextToken:
		return b.Text(tok.Data)
	case html.CommentToken:
		return b.Comment(tok.Data)
	default:
		return nil
	}
}

func convertTokenAttributes(attrs []html.Attribute) []Attribute {
	if len(attrs) == 0 {
		return nil
	}
	converted := make([]Attribute, len(attrs))
	for i, attr := range attrs {
		converted[i] = Attribute{Name: attr.Key, Value: attr.Value}
	}
	return converted
}

// Finish ends the event stream, implicitly closing any elements still
// open. In strict mode an open element at end of input is an error.
// The builder accepts no further events either way.
func (b *Builder) Finish() error {
	if b.finished {
		return &BuildError{Message: "builder already finished"}
	}
	b.finished = true
	var err error
	if len(b.stack) > 0 && b.opts.Strict {
		err = buildErrorf("unclosed tag: %q", b.top().TagName())
	}
	b.stack = nil
	return err
}

// Roots returns the top-level forest in document order. The slice is a
// copy; the nodes are not.
func (b *Builder) Roots() []*Node {
	roots := make([]*Node, len(b.roots))
	copy(roots, b.roots)
	return roots
}

// Root returns the first top-level element, or nil when the input had
// none. Top-level text does not count.
func (b *Builder) Root() *Element {
	for _, n := range b.roots {
		if el := n.AsElement(); el != nil {
			return el
		}
	}
	return nil
}
