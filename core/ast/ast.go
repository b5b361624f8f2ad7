// Package ast defines the syntax tree shared by the parsing, restructuring
// and rendering stages. The tree is owned top-down: each Element exclusively
// holds its children, there are no parent or sibling links, and a phase never
// mutates the tree it received.
package ast

import "sort"

// AttributeMap maps lowercased attribute names to their values. Boolean
// attributes carry their own name as the value.
type AttributeMap map[string]string

// Node is either an *Element or a Text leaf.
type Node interface {
	isNode()
}

// Element is a named node with attributes and ordered children.
// A void element never has children.
type Element struct {
	Tag        string
	Attributes AttributeMap
	Children   []Node
}

// Text is a raw text run. Character references are decoded at render time,
// not here.
type Text string

func (*Element) isNode() {}
func (Text) isNode()     {}

// NewElement builds an element node. A nil attribute map is replaced with an
// empty one so callers can always index into Attributes.
func NewElement(tag string, attrs AttributeMap, children ...Node) *Element {
	if attrs == nil {
		attrs = AttributeMap{}
	}
	return &Element{Tag: tag, Attributes: attrs, Children: children}
}

// SortedAttributeNames returns the element's attribute names in lexicographic
// order, for deterministic literal-tag output.
func (e *Element) SortedAttributeNames() []string {
	names := make([]string, 0, len(e.Attributes))
	for name := range e.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FragmentTag names the synthetic root wrapped around inputs with more than
// one top-level node. The leading '#' keeps it out of the space of real tag
// names.
const FragmentTag = "#fragment"

// ListGroupTag names the synthetic wrapper the restructurer places around a
// maximal run of sibling lists.
const ListGroupTag = "successive-lists-wrapper"

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// IsVoid reports whether the tag names a void element, one that can never
// have children or a matching close tag.
func IsVoid(tag string) bool {
	return voidElements[tag]
}

var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"canvas": true, "dd": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "header": true, "hr": true, "li": true, "main": true,
	"nav": true, "noscript": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "tfoot": true, "ul": true, "video": true,
	ListGroupTag: true,
}

// IsBlock reports whether a child with this tag forces a paragraph boundary
// when grouping mixed block and inline content.
func IsBlock(tag string) bool {
	return blockElements[tag]
}

// IsList reports whether the tag is a list container.
func IsList(tag string) bool {
	return tag == "ul" || tag == "ol"
}
