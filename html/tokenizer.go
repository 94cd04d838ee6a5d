// Package html adapts the golang.org/x/net/html tokenizer into the
// event stream the dom builder consumes: start tags, end tags, text,
// comments, and doctypes, in document order.
package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TokenType represents the type of an HTML token.
type TokenType int

const (
	// ErrorToken is returned at end of input or on a read error;
	// Tokenizer.Err distinguishes the two.
	ErrorToken TokenType = iota
	// TextToken is a run of character data.
	TextToken
	// StartTagToken looks like <a>.
	StartTagToken
	// EndTagToken looks like </a>.
	EndTagToken
	// SelfClosingTagToken looks like <br/>.
	SelfClosingTagToken
	// CommentToken looks like <!--x-->.
	CommentToken
	// DoctypeToken looks like <!DOCTYPE html>.
	DoctypeToken
)

func (t TokenType) String() string {
	switch t {
	case ErrorToken:
		return "Error"
	case TextToken:
		return "Text"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case SelfClosingTagToken:
		return "SelfClosingTag"
	case CommentToken:
		return "Comment"
	case DoctypeToken:
		return "Doctype"
	default:
		return "Invalid"
	}
}

// Attribute is a name-value pair on a tag token. The tokenizer delivers
// keys already lower-cased.
type Attribute struct {
	Key   string
	Value string
}

// Token is a single tokenizer event. Data holds the tag name for tag
// tokens and the content for text, comment, and doctype tokens.
type Token struct {
	Type       TokenType
	Data       string
	DataAtom   atom.Atom
	Attributes []Attribute
}

// Tokenizer produces a stream of HTML tokens from a reader.
type Tokenizer struct {
	z *html.Tokenizer
}

// NewTokenizer returns a tokenizer reading from r.
func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{z: html.NewTokenizer(r)}
}

// NewTokenizerString returns a tokenizer reading from s.
func NewTokenizerString(s string) *Tokenizer {
	return NewTokenizer(strings.NewReader(s))
}

// Next scans the next token and returns its type.
func (t *Tokenizer) Next() TokenType {
	return convertTokenType(t.z.Next())
}

// Token returns the current token.
func (t *Tokenizer) Token() Token {
	tok := t.z.Token()
	return Token{
		Type:       convertTokenType(tok.Type),
		Data:       tok.Data,
		DataAtom:   tok.DataAtom,
		Attributes: convertAttributes(tok.Attr),
	}
}

// Text returns the unescaped text of the current text or comment token.
func (t *Tokenizer) Text() string {
	return string(t.z.Text())
}

// TagName returns the lower-cased name of the current tag token.
func (t *Tokenizer) TagName() (name []byte, hasAttr bool) {
	return t.z.TagName()
}

// TagAttr returns the next attribute of the current tag token.
func (t *Tokenizer) TagAttr() (key, val []byte, moreAttr bool) {
	return t.z.TagAttr()
}

// Err returns the error that caused the most recent ErrorToken.
// io.EOF means the input ended normally.
func (t *Tokenizer) Err() error {
	return t.z.Err()
}

// Raw returns the unparsed source text of the current token.
func (t *Tokenizer) Raw() []byte {
	return t.z.Raw()
}

func convertTokenType(tt html.TokenType) TokenType {
	switch tt {
	case html.TextToken:
		return TextToken
	case html.StartTagToken:
		return StartTagToken
	case html.EndTagToken:
		return EndTagToken
	case html.SelfClosingTagToken:
		return SelfClosingTagToken
	case html.CommentToken:
		return CommentToken
	case html.DoctypeToken:
		return DoctypeToken
	default:
		return ErrorToken
	}
}

func convertAttributes(attrs []html.Attribute) []Attribute {
	if len(attrs) == 0 {
		return nil
	}
	result := make([]Attribute, len(attrs))
	for i, a := range attrs {
		result[i] = Attribute{Key: a.Key, Value: a.Val}
	}
	return result
}
