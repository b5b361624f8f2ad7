// This file implements the JSON formatter. It builds structured JSON from
// Markdown and document metadata, parsing the Markdown for structural
// information: headings, links, code blocks, tables and lists.
package format

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/htmldown/core"
)

// JSON produces structured JSON output from Markdown.
type JSON struct{}

// NewJSON creates a JSON formatter.
func NewJSON() *JSON {
	return &JSON{}
}

// Format converts Markdown and metadata into the document JSON structure.
func (f *JSON) Format(markdown string, meta core.DocMetadata) ([]byte, error) {
	headings := extractHeadings(markdown)
	links := extractLinks(markdown)

	doc := core.DocJSON{
		Metadata: meta,
		Content: core.DocContent{
			Text:     stripMarkdown(markdown),
			Markdown: markdown,
			Sections: buildSections(markdown, headings),
		},
		Structure: core.DocStructure{
			Headings:   headings,
			Links:      links,
			CodeBlocks: countCodeBlocks(markdown),
			Tables:     countTables(markdown),
			Lists:      countLists(markdown),
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (f *JSON) Extension() string {
	return ".json"
}

// --- Markdown parsing helpers ---

var headingRegex = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

func extractHeadings(md string) []core.Heading {
	matches := headingRegex.FindAllStringSubmatch(md, -1)
	headings := make([]core.Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, core.Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}

// linkRegex matches Markdown links [text](url).
var linkRegex = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

func extractLinks(md string) []core.Link {
	matches := linkRegex.FindAllStringSubmatch(md, -1)
	links := make([]core.Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, core.Link{
			Text: m[1],
			Href: m[2],
		})
	}
	return links
}

func buildSections(md string, headings []core.Heading) []core.Section {
	if len(headings) == 0 {
		return nil
	}

	lines := strings.Split(md, "\n")
	sections := make([]core.Section, 0, len(headings))
	headingIdx := 0

	var currentSection *core.Section
	var sectionLines []string

	for _, line := range lines {
		if headingRegex.MatchString(line) && headingIdx < len(headings) {
			// Flush previous section.
			if currentSection != nil {
				currentSection.Text = strings.TrimSpace(strings.Join(sectionLines, "\n"))
				sections = append(sections, *currentSection)
			}
			currentSection = &core.Section{
				Heading: headings[headingIdx].Text,
				Level:   headings[headingIdx].Level,
			}
			sectionLines = nil
			headingIdx++
		} else if currentSection != nil {
			sectionLines = append(sectionLines, line)
		}
	}
	// Flush last section.
	if currentSection != nil {
		currentSection.Text = strings.TrimSpace(strings.Join(sectionLines, "\n"))
		sections = append(sections, *currentSection)
	}

	return sections
}

// countCodeBlocks counts fenced code blocks (``` delimited).
func countCodeBlocks(md string) int {
	return strings.Count(md, "```") / 2
}

// countTables counts Markdown tables by looking for separator rows (|---|).
var tableRowRegex = regexp.MustCompile(`(?m)^\|[-:| ]+\|$`)

func countTables(md string) int {
	return len(tableRowRegex.FindAllString(md, -1))
}

// countLists counts list items (lines starting with -, * or 1.).
var listItemRegex = regexp.MustCompile(`(?m)^[\s]*[-*]\s|^[\s]*\d+\.\s`)

func countLists(md string) int {
	return len(listItemRegex.FindAllString(md, -1))
}

// stripMarkdown removes the Markdown formatting this converter emits,
// producing plain text.
func stripMarkdown(md string) string {
	text := md
	// Remove heading markers.
	text = headingRegex.ReplaceAllString(text, "$2")
	// Remove strong/emphasis/strikethrough markers.
	text = regexp.MustCompile(`\*\*([^*]+)\*\*`).ReplaceAllString(text, "$1")
	text = regexp.MustCompile(`_([^_]+)_`).ReplaceAllString(text, "$1")
	text = regexp.MustCompile(`~([^~]+)~`).ReplaceAllString(text, "$1")
	// Remove links, keep text.
	text = linkRegex.ReplaceAllString(text, "$1")
	// Remove inline code markers.
	text = regexp.MustCompile("`([^`]+)`").ReplaceAllString(text, "$1")
	// Collapse whitespace.
	text = regexp.MustCompile(`\n{3,}`).ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
