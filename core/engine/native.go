// Package engine implements the Engine interface.
//
// The native engine is the in-house pipeline: tokenize, parse, restruct,
// render. Structurally broken markup fails the conversion instead of being
// repaired. The commonmark engine (commonmark.go) trades that strictness
// for leniency.
package engine

import (
	"fmt"

	"github.com/gaurav-prasanna/htmldown/core/parse"
	"github.com/gaurav-prasanna/htmldown/core/render"
	"github.com/gaurav-prasanna/htmldown/core/restruct"
	"github.com/gaurav-prasanna/htmldown/core/tokenize"
)

// Native runs the built-in conversion pipeline.
type Native struct{}

// NewNative creates a Native engine.
func NewNative() *Native {
	return &Native{}
}

// Convert runs the source through the full pipeline and returns Markdown
// ending in exactly one newline. Conversion either fully succeeds or fails
// as a whole; there is no partial output.
func (e *Native) Convert(source string) (string, error) {
	tokens, err := tokenize.New(source).Tokenize()
	if err != nil {
		return "", fmt.Errorf("tokenize: %w", err)
	}

	root, err := parse.New(tokens).Parse()
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}

	canonical := restruct.Restruct(root)

	markdown, err := render.New().Render(canonical)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return markdown, nil
}

// Name identifies the engine.
func (e *Native) Name() string {
	return "native"
}
