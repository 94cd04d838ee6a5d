package dom

import (
	"io"
	"strings"

	"github.com/chrisuehlinger/microdom/html"
)

// Parse builds a DOM tree from HTML text and returns the first
// top-level element as the root. Text and sibling elements around the
// root are parsed but not reachable from it; use ParseFragment when the
// whole top level matters. An input with no element at all is an error.
func Parse(htmlContent string) (*Node, error) {
	return ParseWithOptions(htmlContent, ParseOptions{})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(htmlContent string, opts ParseOptions) (*Node, error) {
	return ParseReaderWithOptions(strings.NewReader(htmlContent), opts)
}

// ParseReader is Parse reading from r.
func ParseReader(r io.Reader) (*Node, error) {
	return ParseReaderWithOptions(r, ParseOptions{})
}

// ParseReaderWithOptions is ParseReader with explicit options.
func ParseReaderWithOptions(r io.Reader, opts ParseOptions) (*Node, error) {
	builder, err := runTokenizer(r, opts)
	if err != nil {
		return nil, err
	}
	root := builder.Root()
	if root == nil {
		return nil, &BuildError{Message: "no root tag"}
	}
	return root.AsNode(), nil
}

// ParseFragment builds the top-level forest of the input, preserving
// leading and trailing text and sibling elements. An empty input yields
// an empty forest, not an error.
func ParseFragment(htmlContent string) ([]*Node, error) {
	return ParseFragmentWithOptions(htmlContent, ParseOptions{})
}

// ParseFragmentWithOptions is ParseFragment with explicit options.
func ParseFragmentWithOptions(htmlContent string, opts ParseOptions) ([]*Node, error) {
	builder, err := runTokenizer(strings.NewReader(htmlContent), opts)
	if err != nil {
		return nil, err
	}
	return builder.Roots(), nil
}

// runTokenizer drives the tokenizer over r to end of input, feeding
// every token to a fresh builder.
func runTokenizer(r io.Reader, opts ParseOptions) (*Builder, error) {
	builder := NewBuilder(opts)
	z := html.NewTokenizer(r)
	for {
		if z.Next() == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			break
		}
		if err := builder.AddToken(z.Token()); err != nil {
			return nil, err
		}
	}
	if err := builder.Finish(); err != nil {
		return nil, err
	}
	return builder, nil
}
