// Package core defines the pipeline interfaces for htmldown.
// Each stage of the pipeline is a clean, testable interface.
package core

// DocMetadata holds metadata about the converted document.
type DocMetadata struct {
	Source      string `json:"source"`
	Title       string `json:"title"`
	Engine      string `json:"engine"`
	ConvertedAt string `json:"converted_at"` // ISO8601
}

// Section represents a heading-delimited section of content.
type Section struct {
	Heading string `json:"heading"`
	Level   int    `json:"level"`
	Text    string `json:"text"`
}

// Heading represents a single heading found in the content.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in the content.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// DocContent holds the text and structured content of a document.
type DocContent struct {
	Text     string    `json:"text"`
	Markdown string    `json:"markdown"`
	Sections []Section `json:"sections"`
}

// DocStructure holds structural metadata parsed from the content.
type DocStructure struct {
	Headings   []Heading `json:"headings"`
	Links      []Link    `json:"links"`
	CodeBlocks int       `json:"code_blocks"`
	Tables     int       `json:"tables"`
	Lists      int       `json:"lists"`
}

// DocJSON is the complete JSON output for a single document.
type DocJSON struct {
	Metadata  DocMetadata  `json:"metadata"`
	Content   DocContent   `json:"content"`
	Structure DocStructure `json:"structure"`
}

// Engine converts markup into Markdown (the canonical format).
type Engine interface {
	Convert(source string) (string, error)
	// Name identifies the engine in metadata and diagnostics.
	Name() string
}

// Extractor isolates the main content from a full HTML page, stripping
// noise, before the markup reaches an engine.
type Extractor interface {
	Extract(html string) (string, error)
}

// Formatter converts Markdown (and metadata) into a final output format.
type Formatter interface {
	Format(markdown string, meta DocMetadata) ([]byte, error)
	// Extension returns the file extension for this formatter (e.g. ".md", ".pdf").
	Extension() string
}
