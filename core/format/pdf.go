// This file implements the PDF formatter. It converts Markdown into a
// styled PDF using gofpdf, handling headings, paragraphs, blockquotes,
// lists and table rows line by line.
package format

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/htmldown/core"
	"github.com/jung-kurt/gofpdf"
)

// PDF renders converted Markdown as a PDF document.
type PDF struct{}

// NewPDF creates a PDF formatter.
func NewPDF() *PDF {
	return &PDF{}
}

// Format converts Markdown into PDF bytes.
func (f *PDF) Format(markdown string, meta core.DocMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title from metadata.
	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, meta.Title, "", "L", false)
		pdf.Ln(4)
	}

	// Source path.
	if meta.Source != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, "Source: "+meta.Source, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	for _, line := range strings.Split(markdown, "\n") {
		// Empty lines become spacing.
		if strings.TrimSpace(line) == "" {
			pdf.Ln(3)
			continue
		}

		// Headings.
		if strings.HasPrefix(line, "#") {
			level := 0
			for _, ch := range line {
				if ch != '#' {
					break
				}
				level++
			}
			text := strings.TrimSpace(strings.TrimLeft(line, "# "))
			writeHeading(pdf, text, level)
			continue
		}

		trimmed := strings.TrimSpace(line)

		// Blockquote lines.
		if strings.HasPrefix(trimmed, "> ") || trimmed == ">" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(90, 90, 90)
			pdf.MultiCell(0, 5, stripInlineMarks(strings.TrimPrefix(trimmed, "> ")), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
			continue
		}

		// List items, bulleted and numbered.
		if strings.HasPrefix(trimmed, "- ") {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, "• "+stripInlineMarks(trimmed[2:]), "", "L", false)
			continue
		}
		if numberedItem.MatchString(trimmed) {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, stripInlineMarks(trimmed), "", "L", false)
			continue
		}

		// Table rows keep a monospace font so the pipes line up.
		if strings.HasPrefix(trimmed, "|") {
			pdf.SetFont("Courier", "", 9)
			pdf.MultiCell(0, 4.5, trimmed, "", "L", false)
			continue
		}

		// Regular paragraph text.
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, stripInlineMarks(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (f *PDF) Extension() string {
	return ".pdf"
}

var numberedItem = regexp.MustCompile(`^\d+\.\s`)

// writeHeading sets the font size based on heading level and writes text.
func writeHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, stripInlineMarks(text), "", "L", false)
	pdf.Ln(2)
}

// stripInlineMarks removes the inline Markdown this converter emits
// (strong, emphasis, strikethrough, code, links) for plain PDF text.
func stripInlineMarks(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = regexp.MustCompile(`_([^_]+)_`).ReplaceAllString(text, "$1")
	text = regexp.MustCompile(`~([^~]+)~`).ReplaceAllString(text, "$1")
	text = regexp.MustCompile("`([^`]+)`").ReplaceAllString(text, "$1")
	text = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`).ReplaceAllString(text, "$1")
	return strings.TrimRight(text, " ")
}
