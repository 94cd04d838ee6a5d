// Package css parses CSS selectors into an AST.
//
// The tokenizer follows CSS Syntax Module Level 3 restricted to the token
// set selector grammar needs. The parser covers type, id, class, and
// attribute selectors, the four combinators, and comma-separated selector
// groups. Reference: https://www.w3.org/TR/css-syntax-3/ and
// https://www.w3.org/TR/selectors-3/
package css

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenType represents the type of a selector token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenHash
	TokenString
	TokenBadString
	TokenNumber
	TokenDelim
	TokenWhitespace
	TokenColon
	TokenComma
	TokenOpenSquare  // [
	TokenCloseSquare // ]
)

// HashType indicates whether a hash token is an ID or unrestricted.
type HashType int

const (
	HashUnrestricted HashType = iota
	HashID
)

// Token represents a selector token.
type Token struct {
	Type     TokenType
	Value    string   // String value for ident/hash/string/number tokens
	HashType HashType // Type flag for hash tokens
	Delim    rune     // The delimiter character for delim tokens
	Pos      int      // Rune offset of the token in the input
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "<EOF>"
	case TokenIdent:
		return fmt.Sprintf("<IDENT %q>", t.Value)
	case TokenHash:
		if t.HashType == HashID {
			return fmt.Sprintf("<HASH id %q>", t.Value)
		}
		return fmt.Sprintf("<HASH %q>", t.Value)
	case TokenString:
		return fmt.Sprintf("<STRING %q>", t.Value)
	case TokenBadString:
		return "<BAD-STRING>"
	case TokenNumber:
		return fmt.Sprintf("<NUMBER %s>", t.Value)
	case TokenDelim:
		return fmt.Sprintf("<DELIM %q>", string(t.Delim))
	case TokenWhitespace:
		return "<WHITESPACE>"
	case TokenColon:
		return "<COLON>"
	case TokenComma:
		return "<COMMA>"
	case TokenOpenSquare:
		return "<[>"
	case TokenCloseSquare:
		return "<]>"
	default:
		return fmt.Sprintf("<UNKNOWN %d>", t.Type)
	}
}

// Tokenizer tokenizes selector input.
type Tokenizer struct {
	input []rune
	pos   int
}

// NewTokenizer creates a new selector tokenizer.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: []rune(preprocessInput(input))}
}

// preprocessInput performs preprocessing per CSS Syntax §3.3.
// - Replace CR LF and CR with LF
// - Replace U+0000 with U+FFFD
// - Replace formfeed with LF
func preprocessInput(input string) string {
	var sb strings.Builder
	sb.Grow(len(input))

	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			sb.WriteRune('\n')
		case '\f':
			sb.WriteRune('\n')
		case 0:
			sb.WriteRune('�')
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// peek returns the current code point without consuming it.
func (t *Tokenizer) peek() rune {
	if t.pos >= len(t.input) {
		return -1 // EOF
	}
	return t.input[t.pos]
}

// peekN returns the code point at offset n from current position.
func (t *Tokenizer) peekN(n int) rune {
	pos := t.pos + n
	if pos >= len(t.input) || pos < 0 {
		return -1
	}
	return t.input[pos]
}

// consume consumes and returns the current code point.
func (t *Tokenizer) consume() rune {
	if t.pos >= len(t.input) {
		return -1
	}
	r := t.input[t.pos]
	t.pos++
	return r
}

// reconsume backs up one code point.
func (t *Tokenizer) reconsume() {
	if t.pos > 0 {
		t.pos--
	}
}

// isWhitespace returns true if r is a CSS whitespace character.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

// isDigit returns true if r is a digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isHexDigit returns true if r is a hex digit.
func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// isLetter returns true if r is a letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isNonASCII returns true if r is a non-ASCII code point.
func isNonASCII(r rune) bool {
	return r >= 0x80
}

// isNameStartCodePoint returns true if r can start an identifier.
func isNameStartCodePoint(r rune) bool {
	return isLetter(r) || isNonASCII(r) || r == '_'
}

// isNameCodePoint returns true if r can be part of an identifier.
func isNameCodePoint(r rune) bool {
	return isNameStartCodePoint(r) || isDigit(r) || r == '-'
}

// startsWithValidEscape checks if the next two code points are a valid escape.
func (t *Tokenizer) startsWithValidEscape() bool {
	return t.peek() == '\\' && t.peekN(1) != '\n'
}

// startsWithValidEscapeAt checks if code points at offset are a valid escape.
func (t *Tokenizer) startsWithValidEscapeAt(offset int) bool {
	return t.peekN(offset) == '\\' && t.peekN(offset+1) != '\n'
}

// startsIdentifier checks if the next code points would start an identifier.
func (t *Tokenizer) startsIdentifier() bool {
	return t.startsIdentifierAt(0)
}

// startsIdentifierAt checks if code points at offset would start an identifier.
func (t *Tokenizer) startsIdentifierAt(offset int) bool {
	first := t.peekN(offset)
	if isNameStartCodePoint(first) {
		return true
	}
	if first == '-' {
		second := t.peekN(offset + 1)
		if isNameStartCodePoint(second) || second == '-' || t.startsWithValidEscapeAt(offset+1) {
			return true
		}
		return false
	}
	if first == '\\' {
		return t.startsWithValidEscapeAt(offset)
	}
	return false
}

// startsNumber checks if the next code points would start a number.
func (t *Tokenizer) startsNumber() bool {
	first := t.peek()
	if isDigit(first) {
		return true
	}
	if first == '+' || first == '-' {
		second := t.peekN(1)
		if isDigit(second) {
			return true
		}
		if second == '.' && isDigit(t.peekN(2)) {
			return true
		}
		return false
	}
	if first == '.' {
		return isDigit(t.peekN(1))
	}
	return false
}

// consumeEscape consumes an escape sequence and returns the code point.
// Assumes the backslash has already been consumed.
func (t *Tokenizer) consumeEscape() rune {
	r := t.consume()
	if r == -1 {
		return '�'
	}
	if isHexDigit(r) {
		hex := string(r)
		for i := 0; i < 5 && isHexDigit(t.peek()); i++ {
			hex += string(t.consume())
		}
		// One whitespace character after a hex escape is part of the escape.
		if isWhitespace(t.peek()) {
			t.consume()
		}
		val, _ := strconv.ParseInt(hex, 16, 32)
		if val == 0 || val > 0x10FFFF || (val >= 0xD800 && val <= 0xDFFF) {
			return '�'
		}
		return rune(val)
	}
	return r
}

// consumeName consumes an identifier and returns the string.
func (t *Tokenizer) consumeName() string {
	var result strings.Builder
	for {
		r := t.consume()
		if isNameCodePoint(r) {
			result.WriteRune(r)
		} else if r == '\\' && t.peek() != '\n' {
			result.WriteRune(t.consumeEscape())
		} else {
			if r != -1 {
				t.reconsume()
			}
			return result.String()
		}
	}
}

// consumeNumber consumes a number and returns its literal representation.
// Selector grammar has no use for the numeric value; the literal is kept
// so the parser can report what it saw.
func (t *Tokenizer) consumeNumber() string {
	var repr strings.Builder

	if t.peek() == '+' || t.peek() == '-' {
		repr.WriteRune(t.consume())
	}
	for isDigit(t.peek()) {
		repr.WriteRune(t.consume())
	}
	if t.peek() == '.' && isDigit(t.peekN(1)) {
		repr.WriteRune(t.consume())
		for isDigit(t.peek()) {
			repr.WriteRune(t.consume())
		}
	}
	if t.peek() == 'e' || t.peek() == 'E' {
		next := t.peekN(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(t.peekN(2))) {
			repr.WriteRune(t.consume())
			if t.peek() == '+' || t.peek() == '-' {
				repr.WriteRune(t.consume())
			}
			for isDigit(t.peek()) {
				repr.WriteRune(t.consume())
			}
		}
	}

	return repr.String()
}

// consumeString consumes a string token. The opening quote has already
// been consumed; start is its offset.
func (t *Tokenizer) consumeString(endChar rune, start int) Token {
	var result strings.Builder

	for {
		r := t.consume()
		switch {
		case r == endChar:
			return Token{Type: TokenString, Value: result.String(), Pos: start}
		case r == -1:
			// EOF inside a string is a parse error. The grammar parser
			// rejects bad strings, so surface it as one.
			return Token{Type: TokenBadString, Pos: start}
		case r == '\n':
			t.reconsume()
			return Token{Type: TokenBadString, Pos: start}
		case r == '\\':
			next := t.peek()
			if next == -1 {
				continue
			}
			if next == '\n' {
				t.consume()
			} else {
				result.WriteRune(t.consumeEscape())
			}
		default:
			result.WriteRune(r)
		}
	}
}

// consumeHashToken consumes a hash token. The '#' has not been consumed;
// start is its offset.
func (t *Tokenizer) consumeHashToken(start int) Token {
	t.consume() // #

	if isNameCodePoint(t.peek()) || t.startsWithValidEscape() {
		hashType := HashUnrestricted
		if t.startsIdentifier() {
			hashType = HashID
		}
		return Token{Type: TokenHash, Value: t.consumeName(), HashType: hashType, Pos: start}
	}

	return Token{Type: TokenDelim, Delim: '#', Pos: start}
}

// skipComment consumes a /* */ comment. Comments produce no token.
func (t *Tokenizer) skipComment() {
	t.consume() // /
	t.consume() // *
	for {
		r := t.consume()
		if r == -1 {
			return
		}
		if r == '*' && t.peek() == '/' {
			t.consume()
			return
		}
	}
}

// NextToken returns the next token from the input.
func (t *Tokenizer) NextToken() Token {
	for t.peek() == '/' && t.peekN(1) == '*' {
		t.skipComment()
	}

	start := t.pos
	r := t.consume()

	switch {
	case r == -1:
		return Token{Type: TokenEOF, Pos: start}

	case isWhitespace(r):
		for isWhitespace(t.peek()) {
			t.consume()
		}
		return Token{Type: TokenWhitespace, Pos: start}

	case r == '"' || r == '\'':
		return t.consumeString(r, start)

	case r == '#':
		t.reconsume()
		return t.consumeHashToken(start)

	case r == '+':
		if t.startsNumber() {
			t.reconsume()
			return Token{Type: TokenNumber, Value: t.consumeNumber(), Pos: start}
		}
		return Token{Type: TokenDelim, Delim: r, Pos: start}

	case r == ',':
		return Token{Type: TokenComma, Pos: start}

	case r == '-':
		if t.startsNumber() {
			t.reconsume()
			return Token{Type: TokenNumber, Value: t.consumeNumber(), Pos: start}
		}
		if t.startsIdentifier() {
			t.reconsume()
			return Token{Type: TokenIdent, Value: t.consumeName(), Pos: start}
		}
		return Token{Type: TokenDelim, Delim: r, Pos: start}

	case r == '.':
		if t.startsNumber() {
			t.reconsume()
			return Token{Type: TokenNumber, Value: t.consumeNumber(), Pos: start}
		}
		return Token{Type: TokenDelim, Delim: r, Pos: start}

	case r == ':':
		return Token{Type: TokenColon, Pos: start}

	case r == '[':
		return Token{Type: TokenOpenSquare, Pos: start}

	case r == ']':
		return Token{Type: TokenCloseSquare, Pos: start}

	case r == '\\':
		if t.peek() != '\n' {
			t.reconsume()
			return Token{Type: TokenIdent, Value: t.consumeName(), Pos: start}
		}
		return Token{Type: TokenDelim, Delim: r, Pos: start}

	case isDigit(r):
		t.reconsume()
		return Token{Type: TokenNumber, Value: t.consumeNumber(), Pos: start}

	case isNameStartCodePoint(r):
		t.reconsume()
		return Token{Type: TokenIdent, Value: t.consumeName(), Pos: start}

	default:
		return Token{Type: TokenDelim, Delim: r, Pos: start}
	}
}

// TokenizeAll tokenizes the entire input and returns all tokens.
// The final token is always TokenEOF.
func (t *Tokenizer) TokenizeAll() []Token {
	var tokens []Token
	for {
		tok := t.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			break
		}
	}
	return tokens
}
