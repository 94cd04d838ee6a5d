package css

import (
	"fmt"
	"strings"
)

// SelectorGroup is a list of alternative selectors separated by commas.
// A node matches the group when it matches at least one member.
type SelectorGroup []*Selector

// Selector is a chain of compound selectors separated by combinators.
// Matching proceeds right to left: the last compound applies to the
// candidate node itself.
type Selector struct {
	Compounds []*Compound
}

// Compound is a sequence of simple selectors that all apply to one node.
type Compound struct {
	Tag        string               // "" for unconstrained, "*" for an explicit universal selector
	ID         string               // "" for none
	Classes    []string
	Attributes []*AttributeSelector
	Combinator CombinatorType // Combinator following this compound selector
}

// CombinatorType represents the type of combinator.
type CombinatorType int

const (
	CombinatorNone              CombinatorType = iota
	CombinatorDescendant                       // (whitespace)
	CombinatorChild                            // >
	CombinatorNextSibling                      // +
	CombinatorSubsequentSibling                // ~
)

// String returns the canonical rendering of the combinator, including the
// spacing used when joining compounds.
func (c CombinatorType) String() string {
	switch c {
	case CombinatorDescendant:
		return " "
	case CombinatorChild:
		return " > "
	case CombinatorNextSibling:
		return " + "
	case CombinatorSubsequentSibling:
		return " ~ "
	default:
		return ""
	}
}

// AttributeSelector represents an attribute selector.
type AttributeSelector struct {
	Name     string // stored lower-case
	Operator AttributeOperator
	Value    string
}

// AttributeOperator represents the operator in an attribute selector.
type AttributeOperator int

const (
	AttrExists    AttributeOperator = iota // [attr]
	AttrEquals                             // [attr=value]
	AttrIncludes                           // [attr~=value]
	AttrDashMatch                          // [attr|=value]
	AttrPrefix                             // [attr^=value]
	AttrSuffix                             // [attr$=value]
	AttrSubstring                          // [attr*=value]
)

// ParseError reports a selector that could not be parsed. Pos is the
// rune offset of the token the parser stopped at.
type ParseError struct {
	Message string
	Pos     int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("selector parser aborted at character %d: %s", e.Pos, e.Message)
}

// ParseGroup parses a comma-separated selector group.
func ParseGroup(input string) (SelectorGroup, error) {
	p := newSelectorParser(input)
	return p.parseGroup()
}

// ParseSelector parses a single selector. Input containing a
// comma-separated group is rejected.
func ParseSelector(input string) (*Selector, error) {
	p := newSelectorParser(input)
	sel, err := p.parseSelector()
	if err != nil {
		return nil, err
	}
	if p.current().Type == TokenComma {
		return nil, p.parseError("expecting a single selector, found a group")
	}
	return sel, nil
}

// MustParseGroup is like ParseGroup but panics on error. It is intended
// for selectors compiled once at package level.
func MustParseGroup(input string) SelectorGroup {
	group, err := ParseGroup(input)
	if err != nil {
		panic(err)
	}
	return group
}

// selectorParser parses a selector token stream.
type selectorParser struct {
	tokens []Token
	pos    int
}

func newSelectorParser(input string) *selectorParser {
	return &selectorParser{tokens: NewTokenizer(input).TokenizeAll()}
}

func (p *selectorParser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *selectorParser) peek(offset int) Token {
	pos := p.pos + offset
	if pos >= len(p.tokens) || pos < 0 {
		return Token{Type: TokenEOF}
	}
	return p.tokens[pos]
}

func (p *selectorParser) consume() Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *selectorParser) skipWhitespace() bool {
	skipped := false
	for p.current().Type == TokenWhitespace {
		p.consume()
		skipped = true
	}
	return skipped
}

func (p *selectorParser) parseError(message string) error {
	return &ParseError{Message: message, Pos: p.current().Pos}
}

// parseGroup parses a selector list.
func (p *selectorParser) parseGroup() (SelectorGroup, error) {
	if p.current().Type == TokenEOF {
		return nil, p.parseError("selector group is empty")
	}

	var group SelectorGroup
	for {
		sel, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		group = append(group, sel)

		// parseSelector stops only at a comma or the end of input.
		if p.current().Type == TokenEOF {
			return group, nil
		}
		p.consume() // ,
	}
}

// parseSelector parses one complex selector, leaving a trailing comma
// unconsumed for the group loop.
func (p *selectorParser) parseSelector() (*Selector, error) {
	sel := &Selector{}

	p.skipWhitespace()
	if p.current().Type == TokenEOF {
		return nil, p.parseError("selector is empty")
	}

	for {
		compound, err := p.parseCompound()
		if err != nil {
			return nil, err
		}
		if compound == nil {
			return nil, p.parseError("expecting simple selector, found none")
		}
		sel.Compounds = append(sel.Compounds, compound)

		hadWhitespace := p.skipWhitespace()

		tok := p.current()
		if tok.Type == TokenEOF || tok.Type == TokenComma {
			return sel, nil
		}

		if tok.Type == TokenDelim {
			var c CombinatorType
			switch tok.Delim {
			case '>':
				c = CombinatorChild
			case '+':
				c = CombinatorNextSibling
			case '~':
				c = CombinatorSubsequentSibling
			}
			if c != CombinatorNone {
				p.consume()
				p.skipWhitespace()
				if p.current().Type == TokenEOF {
					return nil, p.parseError("unexpected end at combinator")
				}
				compound.Combinator = c
				continue
			}
		}

		if hadWhitespace {
			compound.Combinator = CombinatorDescendant
			continue
		}

		return nil, p.parseError("expecting simple selector, found none")
	}
}

// parseCompound parses a compound selector. Simple selectors may appear
// in any order; at most one type selector and one id selector are
// allowed. Returns nil without error when the current token cannot start
// a compound.
func (p *selectorParser) parseCompound() (*Compound, error) {
	compound := &Compound{}
	hasContent := false

	for {
		tok := p.current()
		switch tok.Type {
		case TokenIdent:
			if compound.Tag != "" {
				return nil, p.parseError("multiple type selectors found")
			}
			p.consume()
			compound.Tag = strings.ToLower(tok.Value)
			hasContent = true

		case TokenHash:
			if tok.HashType != HashID {
				return nil, p.parseError("expecting identifier after '#'")
			}
			if compound.ID != "" {
				return nil, p.parseError("multiple id selectors found")
			}
			p.consume()
			compound.ID = tok.Value
			hasContent = true

		case TokenDelim:
			switch tok.Delim {
			case '.':
				p.consume()
				if p.current().Type != TokenIdent {
					return nil, p.parseError("expecting identifier after '.'")
				}
				compound.Classes = append(compound.Classes, p.consume().Value)
				hasContent = true
			case '*':
				if compound.Tag != "" {
					return nil, p.parseError("multiple type selectors found")
				}
				p.consume()
				compound.Tag = "*"
				hasContent = true
			case '#':
				return nil, p.parseError("expecting identifier after '#'")
			case '|':
				return nil, p.parseError("namespaces not supported")
			default:
				goto done
			}

		case TokenColon:
			if p.peek(1).Type == TokenColon {
				return nil, p.parseError("pseudo-elements not supported")
			}
			return nil, p.parseError("pseudo-classes not supported")

		case TokenOpenSquare:
			attr, err := p.parseAttributeSelector()
			if err != nil {
				return nil, err
			}
			compound.Attributes = append(compound.Attributes, attr)
			hasContent = true

		default:
			goto done
		}
	}

done:
	if !hasContent {
		return nil, nil
	}
	return compound, nil
}

// parseAttributeSelector parses one [name], [name=value], [name~=value],
// [name|=value], [name^=value], [name$=value], or [name*=value] selector.
func (p *selectorParser) parseAttributeSelector() (*AttributeSelector, error) {
	p.consume() // [
	attr := &AttributeSelector{}

	p.skipWhitespace()
	if p.current().Type != TokenIdent {
		return nil, p.parseError("expecting attribute name")
	}
	attr.Name = strings.ToLower(p.consume().Value)

	p.skipWhitespace()
	tok := p.current()
	if tok.Type == TokenCloseSquare {
		p.consume()
		attr.Operator = AttrExists
		return attr, nil
	}

	if tok.Type != TokenDelim {
		return nil, p.parseError("expecting attribute operator")
	}
	switch tok.Delim {
	case '=':
		p.consume()
		attr.Operator = AttrEquals
	case '~', '|', '^', '$', '*':
		switch tok.Delim {
		case '~':
			attr.Operator = AttrIncludes
		case '|':
			attr.Operator = AttrDashMatch
		case '^':
			attr.Operator = AttrPrefix
		case '$':
			attr.Operator = AttrSuffix
		case '*':
			attr.Operator = AttrSubstring
		}
		p.consume()
		if p.current().Type != TokenDelim || p.current().Delim != '=' {
			return nil, p.parseError("expecting '=' in attribute operator")
		}
		p.consume()
	default:
		return nil, p.parseError("expecting attribute operator")
	}

	p.skipWhitespace()
	tok = p.current()
	if tok.Type != TokenString && tok.Type != TokenIdent {
		return nil, p.parseError("expecting attribute value")
	}
	attr.Value = p.consume().Value

	p.skipWhitespace()
	if p.current().Type != TokenCloseSquare {
		return nil, p.parseError("unterminated attribute selector")
	}
	p.consume()
	return attr, nil
}

// String renders the group in canonical form, alternatives joined by ", ".
func (g SelectorGroup) String() string {
	parts := make([]string, len(g))
	for i, sel := range g {
		parts[i] = sel.String()
	}
	return strings.Join(parts, ", ")
}

// String renders the selector in canonical form: compounds joined by
// their combinators, explicit combinators padded with single spaces.
func (s *Selector) String() string {
	var sb strings.Builder
	for _, compound := range s.Compounds {
		sb.WriteString(compound.String())
		sb.WriteString(compound.Combinator.String())
	}
	return sb.String()
}

// String renders the compound as tag, id, classes, then attribute
// selectors. A compound with no constraints renders as "*".
func (c *Compound) String() string {
	var sb strings.Builder
	if c.Tag != "" {
		sb.WriteString(c.Tag)
	}
	if c.ID != "" {
		sb.WriteByte('#')
		sb.WriteString(c.ID)
	}
	for _, class := range c.Classes {
		sb.WriteByte('.')
		sb.WriteString(class)
	}
	for _, attr := range c.Attributes {
		sb.WriteString(attr.String())
	}
	if sb.Len() == 0 {
		return "*"
	}
	return sb.String()
}

// String renders the attribute selector with a double-quoted value.
func (a *AttributeSelector) String() string {
	if a.Operator == AttrExists {
		return "[" + a.Name + "]"
	}
	var op string
	switch a.Operator {
	case AttrEquals:
		op = "="
	case AttrIncludes:
		op = "~="
	case AttrDashMatch:
		op = "|="
	case AttrPrefix:
		op = "^="
	case AttrSuffix:
		op = "$="
	case AttrSubstring:
		op = "*="
	}
	value := strings.ReplaceAll(a.Value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	return "[" + a.Name + op + `"` + value + `"]`
}
