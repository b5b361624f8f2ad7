package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/htmldown/core/ast"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only doctype",
			input: "<!DOCTYPE html>",
			want:  nil,
		},
		{
			name:  "doctype then open element",
			input: "<!DOCTYPE html>\n<html>",
			want: []Token{
				{Type: OpenTagToken, Data: "html", Attrs: ast.AttributeMap{}},
			},
		},
		{
			name:  "doctype then close element",
			input: "<!DOCTYPE html>\n</html>",
			want: []Token{
				{Type: CloseTagToken, Data: "html", Attrs: ast.AttributeMap{}},
			},
		},
		{
			name:  "open and close tag",
			input: "<html></html>",
			want: []Token{
				{Type: OpenTagToken, Data: "html", Attrs: ast.AttributeMap{}},
				{Type: CloseTagToken, Data: "html", Attrs: ast.AttributeMap{}},
			},
		},
		{
			name:  "self-closed void tag",
			input: "<hr/>",
			want: []Token{
				{Type: VoidTagToken, Data: "hr", Attrs: ast.AttributeMap{}},
			},
		},
		{
			name:  "uppercase element is case-folded",
			input: "<HTML>",
			want: []Token{
				{Type: OpenTagToken, Data: "html", Attrs: ast.AttributeMap{}},
			},
		},
		{
			name:  "trailing space inside tag",
			input: "<P >",
			want: []Token{
				{Type: OpenTagToken, Data: "p", Attrs: ast.AttributeMap{}},
			},
		},
		{
			name:  "text",
			input: "abcde",
			want: []Token{
				{Type: TextToken, Data: "abcde"},
			},
		},
		{
			name:  "element with text between tags",
			input: "<p>hello world</p>",
			want: []Token{
				{Type: OpenTagToken, Data: "p", Attrs: ast.AttributeMap{}},
				{Type: TextToken, Data: "hello world"},
				{Type: CloseTagToken, Data: "p", Attrs: ast.AttributeMap{}},
			},
		},
		{
			name:  "one attribute",
			input: `<img src="hello.png">`,
			want: []Token{
				{Type: VoidTagToken, Data: "img", Attrs: ast.AttributeMap{"src": "hello.png"}},
			},
		},
		{
			name:  "multiple attributes",
			input: `<img src="hello.png" width="300">`,
			want: []Token{
				{Type: VoidTagToken, Data: "img", Attrs: ast.AttributeMap{
					"src":   "hello.png",
					"width": "300",
				}},
			},
		},
		{
			name:  "boolean attribute defaults to its own name",
			input: "<input disabled>",
			want: []Token{
				{Type: VoidTagToken, Data: "input", Attrs: ast.AttributeMap{"disabled": "disabled"}},
			},
		},
		{
			name:  "attribute names and values are case-folded",
			input: `<img SRC="Hello.PNG">`,
			want: []Token{
				{Type: VoidTagToken, Data: "img", Attrs: ast.AttributeMap{"src": "hello.png"}},
			},
		},
		{
			name:  "declaration is discarded between text runs",
			input: "hello<!-- note -->world",
			want: []Token{
				{Type: TextToken, Data: "hello"},
				{Type: TextToken, Data: "world"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := New(tt.input).Tokenize()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizeMalformedTagsAreSkipped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty tag name",
			input: "<>",
			want:  nil,
		},
		{
			name:  "close tag with self-closing slash",
			input: "</foobar/>",
			want:  nil,
		},
		{
			name:  "self-closing slash on a non-void name",
			input: "<div/>",
			want:  nil,
		},
		{
			name:  "close tag for a void name",
			input: "</br>",
			want:  nil,
		},
		{
			name:  "unquoted attribute value",
			input: `<p a=b>`,
			want:  nil,
		},
		{
			name:  "scanning continues after a skipped tag",
			input: "<div/>hello<p>",
			want: []Token{
				{Type: TextToken, Data: "hello"},
				{Type: OpenTagToken, Data: "p", Attrs: ast.AttributeMap{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := New(tt.input).Tokenize()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizeUnexpectedEndOfInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "lone opening bracket", input: "<"},
		{name: "tag never closed", input: "<a"},
		{name: "attribute never finished", input: `<img src="x`},
		{name: "declaration never closed", input: "<!DOCTYPE html"},
		{name: "malformed tag with no closing bracket", input: "<div/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.input).Tokenize()
			require.ErrorIs(t, err, ErrUnexpectedEOF)
		})
	}
}

func TestTokenizeVoidElements(t *testing.T) {
	t.Parallel()

	voids := []string{
		"area", "base", "br", "col", "embed", "hr", "img", "input", "link",
		"meta", "param", "source", "track", "wbr",
	}

	for _, tag := range voids {
		t.Run(tag, func(t *testing.T) {
			t.Parallel()

			// Plain and self-closed spellings both produce a void token.
			for _, input := range []string{"<" + tag + ">", "<" + tag + "/>"} {
				got, err := New(input).Tokenize()
				require.NoError(t, err)
				require.Len(t, got, 1, "input %q", input)
				assert.Equal(t, VoidTagToken, got[0].Type, "input %q", input)
				assert.Equal(t, tag, got[0].Data)
			}

			// A close tag for a void name is malformed and skipped.
			got, err := New("</" + tag + ">").Tokenize()
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}
