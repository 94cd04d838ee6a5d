package dom

// Text represents a text node in the DOM tree. It is a typed view of a
// Node.
type Text Node

// AsNode returns the underlying Node.
func (t *Text) AsNode() *Node {
	return (*Node)(t)
}

// Data returns the text content.
func (t *Text) Data() string {
	return *t.textData
}

// SetData replaces the text content.
func (t *Text) SetData(data string) {
	*t.textData = data
}

// AppendData appends a string to the text content. The builder uses
// this to coalesce adjacent character runs into a single node.
func (t *Text) AppendData(data string) {
	*t.textData += data
}

// Length returns the length of the text content in bytes.
func (t *Text) Length() int {
	return len(*t.textData)
}

// Equal reports whether two text nodes carry the same content. Identity
// and position in the tree do not matter, only the data.
func (t *Text) Equal(other *Text) bool {
	if t == nil || other == nil {
		return t == other
	}
	return *t.textData == *other.textData
}

// IsWhitespace reports whether the text content consists entirely of
// HTML whitespace, which is how inter-element formatting runs appear in
// parsed trees.
func (t *Text) IsWhitespace() bool {
	for _, r := range *t.textData {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' && r != '\f' {
			return false
		}
	}
	return true
}

// String returns the text content.
func (t *Text) String() string {
	return *t.textData
}
