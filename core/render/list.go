package render

import (
	"strings"

	"github.com/gaurav-prasanna/htmldown/core/ast"
)

// renderList joins rendered children with single newlines. It serves ul, ol
// and the successive-lists wrapper alike: within a list run there are no
// paragraph breaks.
func renderList(r *Renderer, el *ast.Element) (string, error) {
	var parts []string
	for _, child := range el.Children {
		content, err := r.render(child)
		if err != nil {
			return "", err
		}
		if content != "" {
			parts = append(parts, content)
		}
	}
	return strings.Join(parts, "\n"), nil
}

// renderListItem renders the item's content with paragraph grouping, puts
// the list marker on the first line with continuation lines aligned under
// it, and indents the whole block by four spaces per class-derived nesting
// depth of the enclosing list.
func renderListItem(r *Renderer, el *ast.Element) (string, error) {
	list, ok := r.stack.nearestList()
	if !ok {
		return "", ErrOutsideOfList
	}

	marker := "- "
	if list.tag == "ol" {
		marker = "1. "
	}

	content, err := renderGrouped(r, el)
	if err != nil {
		return "", err
	}

	indent := strings.Repeat(" ", 4*list.listDepth)
	continuation := strings.Repeat(" ", len(marker))

	lines := strings.Split(content, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = indent + marker + lines[i]
		} else {
			lines[i] = indent + continuation + lines[i]
		}
	}
	return strings.Join(lines, "\n"), nil
}
