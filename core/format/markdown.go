// Package format provides output formatters for converted documents.
// This file implements the Markdown formatter, which is a passthrough.
package format

import (
	"github.com/gaurav-prasanna/htmldown/core"
)

// Markdown writes the converted Markdown as-is. It's the simplest formatter
// since Markdown is already the canonical pipeline format.
type Markdown struct{}

// NewMarkdown creates a Markdown formatter.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// Format returns the Markdown as bytes (passthrough).
func (f *Markdown) Format(markdown string, meta core.DocMetadata) ([]byte, error) {
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (f *Markdown) Extension() string {
	return ".md"
}
