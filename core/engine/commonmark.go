package engine

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Commonmark converts through the html-to-markdown library. It accepts the
// tag soup real pages are made of, at the cost of the native engine's
// structural guarantees; the CLI exposes it for inputs the strict pipeline
// rejects.
type Commonmark struct{}

// NewCommonmark creates a Commonmark engine.
func NewCommonmark() *Commonmark {
	return &Commonmark{}
}

// Convert converts HTML into Markdown, normalized to end in exactly one
// newline so both engines honor the same output contract.
func (e *Commonmark) Convert(source string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(source)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimRight(markdown, "\n") + "\n", nil
}

// Name identifies the engine.
func (e *Commonmark) Name() string {
	return "commonmark"
}
