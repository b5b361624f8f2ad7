// Package tokenize turns raw markup into a flat token stream.
//
// The lexer is deliberately stricter than a browser's: running out of input
// inside a tag is fatal, while an individually malformed tag (empty name, a
// close slash on a void element, a self-closing slash on a non-void element,
// junk where an attribute belongs) is skipped and scanning continues after
// its closing '>'.
package tokenize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/htmldown/core/ast"
)

// ErrUnexpectedEOF is returned when the input ends inside a tag, declaration
// or quoted attribute value. There is no recovery.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// errMalformed marks a locally recoverable bad tag. It never escapes
// Tokenize: the offending tag is dropped and scanning resumes.
var errMalformed = errors.New("malformed tag")

// TokenType discriminates the Token variants.
type TokenType int

const (
	// TextToken is a run of character data.
	TextToken TokenType = iota
	// OpenTagToken is <name ...>.
	OpenTagToken
	// CloseTagToken is </name>.
	CloseTagToken
	// VoidTagToken is a tag whose name is in the void-element set,
	// with or without a trailing slash.
	VoidTagToken
)

func (t TokenType) String() string {
	switch t {
	case TextToken:
		return "text"
	case OpenTagToken:
		return "open tag"
	case CloseTagToken:
		return "close tag"
	case VoidTagToken:
		return "void tag"
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is one lexical unit. For tag tokens Data holds the lowercased tag
// name and Attrs the attribute map; for text tokens Data holds the content
// and Attrs is nil.
type Token struct {
	Type  TokenType
	Data  string
	Attrs ast.AttributeMap
}

// IsTag reports whether the token is any of the tag variants.
func (t Token) IsTag() bool {
	return t.Type != TextToken
}

// Tokenizer scans a source string left to right.
type Tokenizer struct {
	src []rune
	pos int
}

// New returns a Tokenizer over source.
func New(source string) *Tokenizer {
	return &Tokenizer{src: []rune(source)}
}

// Tokenize consumes the whole input and returns its tokens in document
// order. Declarations (<!...>) are discarded, malformed tags are skipped,
// and whitespace between tokens is not significant.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		t.skipWhitespace()
		if t.eof() {
			return tokens, nil
		}

		if t.consume('<') {
			if t.consume('!') {
				// Doctype or comment-like declaration: discard.
				if err := t.skipPastGT(); err != nil {
					return nil, err
				}
				continue
			}
			tok, err := t.readTag()
			if errors.Is(err, errMalformed) {
				continue
			}
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			continue
		}

		if text := t.readText(); text != "" {
			tokens = append(tokens, Token{Type: TextToken, Data: text})
		}
	}
}

// readTag is called with the leading '<' already consumed.
func (t *Tokenizer) readTag() (Token, error) {
	closing := t.consume('/')

	name := t.readTagName()
	if name == "" {
		// No tag name. Drop everything through the closing bracket.
		if err := t.skipPastGT(); err != nil {
			return Token{}, err
		}
		return Token{}, errMalformed
	}

	attrs, selfClosing, err := t.readAttributes()
	if err != nil {
		return Token{}, err
	}

	switch {
	case ast.IsVoid(name):
		// Void names are void no matter how the tag was written, but a
		// close tag for a void element is nonsense.
		if closing {
			return Token{}, errMalformed
		}
		return Token{Type: VoidTagToken, Data: name, Attrs: attrs}, nil
	case closing && selfClosing:
		return Token{}, errMalformed
	case closing:
		return Token{Type: CloseTagToken, Data: name, Attrs: attrs}, nil
	case selfClosing:
		// A self-closing slash on a non-void name.
		return Token{}, errMalformed
	default:
		return Token{Type: OpenTagToken, Data: name, Attrs: attrs}, nil
	}
}

func (t *Tokenizer) readTagName() string {
	start := t.pos
	for !t.eof() && isAlnum(t.src[t.pos]) {
		t.pos++
	}
	return strings.ToLower(string(t.src[start:t.pos]))
}

// readAttributes consumes up to and including the closing '>' and reports
// whether the tag ended with '/>'.
func (t *Tokenizer) readAttributes() (ast.AttributeMap, bool, error) {
	attrs := ast.AttributeMap{}

	for {
		t.skipWhitespace()
		if t.eof() {
			return nil, false, ErrUnexpectedEOF
		}

		if t.consume('/') {
			t.skipWhitespace()
			if t.eof() {
				return nil, false, ErrUnexpectedEOF
			}
			if !t.consume('>') {
				if err := t.skipPastGT(); err != nil {
					return nil, false, err
				}
				return nil, false, errMalformed
			}
			return attrs, true, nil
		}
		if t.consume('>') {
			return attrs, false, nil
		}

		name := t.readAttributeName()
		if name == "" {
			// Something that is neither an attribute name nor a
			// tag terminator.
			if err := t.skipPastGT(); err != nil {
				return nil, false, err
			}
			return nil, false, errMalformed
		}

		// A boolean attribute defaults its value to the attribute name.
		value := name
		if t.consume('=') {
			v, err := t.readAttributeValue()
			if err != nil {
				return nil, false, err
			}
			value = v
		}
		attrs[name] = value
	}
}

func (t *Tokenizer) readAttributeName() string {
	start := t.pos
	for !t.eof() {
		c := t.src[t.pos]
		if isAlnum(c) || c == '-' || c == '_' {
			t.pos++
			continue
		}
		break
	}
	return strings.ToLower(string(t.src[start:t.pos]))
}

// readAttributeValue reads a double-quoted value. An unquoted value makes
// the whole tag malformed.
func (t *Tokenizer) readAttributeValue() (string, error) {
	if t.eof() {
		return "", ErrUnexpectedEOF
	}
	if !t.consume('"') {
		if err := t.skipPastGT(); err != nil {
			return "", err
		}
		return "", errMalformed
	}
	start := t.pos
	for !t.eof() {
		if t.src[t.pos] == '"' {
			value := strings.ToLower(string(t.src[start:t.pos]))
			t.pos++
			return value, nil
		}
		t.pos++
	}
	return "", ErrUnexpectedEOF
}

// readText consumes a maximal run of characters up to the next '<'.
func (t *Tokenizer) readText() string {
	start := t.pos
	for !t.eof() && t.src[t.pos] != '<' {
		t.pos++
	}
	return string(t.src[start:t.pos])
}

// skipPastGT discards input through the next '>'.
func (t *Tokenizer) skipPastGT() error {
	for !t.eof() {
		if t.src[t.pos] == '>' {
			t.pos++
			return nil
		}
		t.pos++
	}
	return ErrUnexpectedEOF
}

func (t *Tokenizer) skipWhitespace() {
	for !t.eof() && isSpace(t.src[t.pos]) {
		t.pos++
	}
}

func (t *Tokenizer) eof() bool {
	return t.pos >= len(t.src)
}

func (t *Tokenizer) consume(expected rune) bool {
	if t.eof() || t.src[t.pos] != expected {
		return false
	}
	t.pos++
	return true
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isAlnum(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

