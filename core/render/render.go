// Package render walks a canonical tree and emits Markdown.
//
// Rendering is context sensitive: a stack of ancestor frames is pushed and
// popped around every node so handlers can ask about their surroundings
// (most importantly, the nearest enclosing list and its nesting depth).
// Dispatch is a static tag→handler table; anything outside the table
// renders to nothing with a diagnostic, not an error.
package render

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gaurav-prasanna/htmldown/core/ast"
)

// ErrOutsideOfList is returned when a list item is rendered with no
// enclosing ul/ol on the context stack.
var ErrOutsideOfList = errors.New("list item outside of a list")

// Renderer renders one tree per instance. Construct a fresh one per Render
// call; the context stack is not reusable across trees.
type Renderer struct {
	stack  contextStack
	logger *slog.Logger
}

// New returns a Renderer that reports diagnostics through the default slog
// logger.
func New() *Renderer {
	return &Renderer{logger: slog.Default()}
}

// Render converts a canonical tree into Markdown. The result always ends
// with exactly one trailing newline.
func (r *Renderer) Render(node ast.Node) (string, error) {
	out, err := r.render(node)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}

func (r *Renderer) render(node ast.Node) (string, error) {
	switch n := node.(type) {
	case ast.Text:
		return decodeCharacterReferences(string(n)), nil
	case *ast.Element:
		return r.renderElement(n)
	}
	return "", nil
}

func (r *Renderer) renderElement(el *ast.Element) (string, error) {
	r.stack.push(newFrame(el))
	defer r.stack.pop()

	h, ok := handlers[el.Tag]
	if !ok {
		r.logger.Warn("unsupported element, rendering nothing", slog.String("tag", el.Tag))
		return "", nil
	}
	return h(r, el)
}

// handler renders one element. The element's own frame is already on the
// stack when a handler runs.
type handler func(r *Renderer, el *ast.Element) (string, error)

var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"html":            renderHTML,
		"body":            renderGrouped,
		"div":             renderGrouped,
		ast.FragmentTag:   renderGrouped,
		"blockquote":      renderBlockquote,
		"ul":              renderList,
		"ol":              renderList,
		ast.ListGroupTag:  renderList,
		"li":              renderListItem,
		"table":           renderTable,
		"a":               renderAnchor,
		"img":             renderLiteralTag,
		"br":              literal("\n"),
		"hr":              literal("---"),
		"em":              affix("_"),
		"i":               affix("_"),
		"strong":          affix("**"),
		"b":               affix("**"),
		"code":            affix("`"),
		"del":             affix("~"),
		"s":               affix("~"),
	}

	for level := 1; level <= 6; level++ {
		handlers[fmt.Sprintf("h%d", level)] = heading(level)
	}

	// Structural inline and flow tags whose content passes through with no
	// Markdown of its own.
	for _, tag := range []string{
		"abbr", "address", "article", "aside", "bdi", "bdo", "caption",
		"cite", "col", "colgroup", "data", "dd", "details", "dfn", "dl",
		"dt", "ins", "kbd", "main", "mark", "menu", "nav", "p", "pre", "q",
		"ruby", "samp", "section", "small", "span", "sub", "summary",
		"sup", "time", "u", "var", "wbr",
	} {
		handlers[tag] = renderChildrenOnly
	}

	// Form controls, scripting, media, metadata, ruby annotations, and the
	// table structure tags the table handler consumes itself.
	for _, tag := range []string{
		"area", "audio", "base", "button", "canvas", "datalist", "dialog",
		"embed", "fieldset", "figcaption", "figure", "footer", "form",
		"head", "header", "hgroup", "iframe", "input", "label", "legend",
		"link", "map", "meta", "meter", "noscript", "object", "optgroup",
		"option", "output", "picture", "progress", "rp", "rt", "script",
		"search", "select", "slot", "source", "style", "tbody", "td",
		"template", "textarea", "tfoot", "th", "thead", "title", "tr",
		"track", "video",
	} {
		handlers[tag] = renderNothing
	}
}

func renderNothing(*Renderer, *ast.Element) (string, error) {
	return "", nil
}

func literal(s string) handler {
	return func(*Renderer, *ast.Element) (string, error) {
		return s, nil
	}
}

func affix(mark string) handler {
	return func(r *Renderer, el *ast.Element) (string, error) {
		content, err := r.renderChildren(el)
		if err != nil {
			return "", err
		}
		return mark + content + mark, nil
	}
}

func heading(level int) handler {
	prefix := strings.Repeat("#", level) + " "
	return func(r *Renderer, el *ast.Element) (string, error) {
		content, err := r.renderChildren(el)
		if err != nil {
			return "", err
		}
		return prefix + content, nil
	}
}

func renderChildrenOnly(r *Renderer, el *ast.Element) (string, error) {
	return r.renderChildren(el)
}

func (r *Renderer) renderChildren(el *ast.Element) (string, error) {
	var b strings.Builder
	for _, child := range el.Children {
		content, err := r.render(child)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
	}
	return b.String(), nil
}

// renderHTML renders the body child only; head content is metadata. A
// bodyless html element falls back to paragraph grouping of its children.
func renderHTML(r *Renderer, el *ast.Element) (string, error) {
	for _, child := range el.Children {
		if body, ok := child.(*ast.Element); ok && body.Tag == "body" {
			return r.render(body)
		}
	}
	return renderGrouped(r, el)
}

// renderGrouped renders children and joins them into paragraphs separated by
// blank lines. A new paragraph opens whenever a block-level child follows
// non-empty accumulated content.
func renderGrouped(r *Renderer, el *ast.Element) (string, error) {
	paragraphs, err := r.renderParagraphs(el.Children)
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, "\n\n"), nil
}

func (r *Renderer) renderParagraphs(children []ast.Node) ([]string, error) {
	var paragraphs []string
	var acc string

	flush := func() {
		if p := strings.TrimRight(acc, " \t\n"); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	for _, child := range children {
		content, err := r.render(child)
		if err != nil {
			return nil, err
		}
		if isBlockNode(child) && acc != "" {
			flush()
			acc = content
			continue
		}
		acc += content
	}
	flush()

	return paragraphs, nil
}

func isBlockNode(node ast.Node) bool {
	el, ok := node.(*ast.Element)
	return ok && ast.IsBlock(el.Tag)
}

func renderBlockquote(r *Renderer, el *ast.Element) (string, error) {
	content, err := renderGrouped(r, el)
	if err != nil {
		return "", err
	}
	return prefixLines(content, "> "), nil
}

// prefixLines prepends prefix to every line, the empty ones included.
func prefixLines(content, prefix string) string {
	lines := strings.Split(content, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

// renderAnchor emits a Markdown link for href anchors. An anchor carrying a
// name attribute has no Markdown equivalent and is emitted as a literal
// HTML tag instead; an anchor with neither attribute is just its text.
func renderAnchor(r *Renderer, el *ast.Element) (string, error) {
	content, err := r.renderChildren(el)
	if err != nil {
		return "", err
	}
	if _, ok := el.Attributes["name"]; ok {
		return openTagLiteral(el) + content + "</a>", nil
	}
	if href, ok := el.Attributes["href"]; ok {
		return "[" + content + "](" + href + ")", nil
	}
	return content, nil
}

// renderLiteralTag emits a void element as a literal HTML open tag,
// attributes sorted by name.
func renderLiteralTag(_ *Renderer, el *ast.Element) (string, error) {
	return openTagLiteral(el), nil
}

func openTagLiteral(el *ast.Element) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(el.Tag)
	for _, name := range el.SortedAttributeNames() {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(el.Attributes[name])
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}
