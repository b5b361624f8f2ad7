// Package extract implements the Extractor interface.
// It isolates the main content from a full HTML page by:
//  1. Removing noise elements (nav, footer, scripts, forms, …)
//  2. Dropping spacer blocks that hold nothing but <br> tags
//  3. Serializing the best content container (<main>, <article>, or <body>)
//
// Extraction is an optional pre-pass: the converter's own pipeline sees raw
// input unless the caller asks for it.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// noiseSelectors are HTML elements removed before extraction. These
// contribute no content the converter can render. Images stay: the renderer
// emits them as literal tags.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// HTMLExtractor strips noise from HTML and returns the main content fragment.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract takes raw HTML and returns a cleaned markup fragment containing
// only the main content.
func (e *HTMLExtractor) Extract(source string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	removeSpacerBlocks(doc.Selection)

	// Find the best content container in priority order.
	// <main> is the most semantically correct, then <article>, then <body>.
	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return result, nil
}

// spacerSelector covers the block elements authors abuse for vertical
// spacing, e.g. <p><br></p>.
const spacerSelector = "p, div, section, blockquote"

// removeSpacerBlocks drops block elements whose children are only <br>
// elements and whitespace.
func removeSpacerBlocks(sel *goquery.Selection) {
	sel.Find(spacerSelector).Each(func(_ int, el *goquery.Selection) {
		if isSpacerBlock(el) {
			el.Remove()
		}
	})
}

// isSpacerBlock walks the underlying nodes: true when every child is a <br>
// or whitespace text, with at least one <br> present.
func isSpacerBlock(sel *goquery.Selection) bool {
	node := sel.Get(0)
	if node == nil {
		return false
	}
	sawBR := false
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			if strings.TrimSpace(child.Data) != "" {
				return false
			}
		case html.ElementNode:
			if child.Data != "br" {
				return false
			}
			sawBR = true
		default:
			return false
		}
	}
	return sawBR
}
