// Package parse builds a syntax tree from a token stream.
//
// Unlike the tokenizer, the parser has no recovery: a close tag that does
// not match its open tag, a stray close tag, or a stream that ends inside an
// element aborts the whole parse.
package parse

import (
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/htmldown/core/ast"
	"github.com/gaurav-prasanna/htmldown/core/tokenize"
)

// ErrUnexpectedEOF is returned when the token stream ends before an element
// is closed, or when the stream is empty.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// ErrUnexpectedToken is returned for a structurally invalid token: a
// mismatched or stray close tag.
var ErrUnexpectedToken = errors.New("unexpected token")

// Parser consumes a token slice front to back.
type Parser struct {
	tokens []tokenize.Token
	pos    int
}

// New returns a Parser over tokens.
func New(tokens []tokenize.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds the tree. A stream with a single top-level element yields
// that element as the root; several top-level nodes are wrapped in a
// synthetic fragment root; an empty stream is an error.
func (p *Parser) Parse() (ast.Node, error) {
	nodes, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		// parseNodes only stops early on a close tag, which has no
		// matching open tag here.
		return nil, fmt.Errorf("%w: stray </%s>", ErrUnexpectedToken, p.tokens[p.pos].Data)
	}
	if len(nodes) == 0 {
		return nil, ErrUnexpectedEOF
	}
	if len(nodes) == 1 {
		if el, ok := nodes[0].(*ast.Element); ok {
			return el, nil
		}
	}
	return ast.NewElement(ast.FragmentTag, nil, nodes...), nil
}

// parseNodes collects element and text nodes until it peeks a close tag or
// runs out of tokens. The caller decides whether stopping there is legal.
func (p *Parser) parseNodes() ([]ast.Node, error) {
	var nodes []ast.Node

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		switch tok.Type {
		case tokenize.TextToken:
			p.pos++
			nodes = append(nodes, ast.Text(tok.Data))
		case tokenize.OpenTagToken, tokenize.VoidTagToken:
			el, err := p.parseElement()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, el)
		case tokenize.CloseTagToken:
			return nodes, nil
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedToken, tok.Type)
		}
	}
	return nodes, nil
}

// parseElement is called with an open or void tag at the cursor.
func (p *Parser) parseElement() (*ast.Element, error) {
	tok := p.tokens[p.pos]
	p.pos++

	if tok.Type == tokenize.VoidTagToken {
		return ast.NewElement(tok.Data, tok.Attrs), nil
	}

	children, err := p.parseNodes()
	if err != nil {
		return nil, err
	}

	if p.pos >= len(p.tokens) {
		return nil, fmt.Errorf("%w: missing </%s>", ErrUnexpectedEOF, tok.Data)
	}
	closeTok := p.tokens[p.pos]
	if closeTok.Type != tokenize.CloseTagToken || closeTok.Data != tok.Data {
		return nil, fmt.Errorf("%w: expected </%s>, got </%s>", ErrUnexpectedToken, tok.Data, closeTok.Data)
	}
	p.pos++

	return ast.NewElement(tok.Data, tok.Attrs, children...), nil
}
