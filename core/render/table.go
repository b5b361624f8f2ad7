package render

import (
	"strings"

	"github.com/gaurav-prasanna/htmldown/core/ast"
)

// renderTable renders the canonical THEAD + TBODY pair the restructurer
// guarantees. The generic dispatch suppresses stray table-structure tags;
// inside a table they are walked directly here.
func renderTable(r *Renderer, el *ast.Element) (string, error) {
	var sections []string
	for _, child := range el.Children {
		section, ok := child.(*ast.Element)
		if !ok {
			continue
		}
		var (
			content string
			err     error
		)
		switch section.Tag {
		case "thead":
			content, err = r.renderTableHead(section)
		case "tbody":
			content, err = r.renderTableBody(section)
		}
		if err != nil {
			return "", err
		}
		if content != "" {
			sections = append(sections, content)
		}
	}
	return strings.Join(sections, "\n"), nil
}

// renderTableHead renders the single header row followed by the separator
// line, one `|---` per column.
func (r *Renderer) renderTableHead(thead *ast.Element) (string, error) {
	r.stack.push(newFrame(thead))
	defer r.stack.pop()

	for _, child := range thead.Children {
		row, ok := child.(*ast.Element)
		if !ok || row.Tag != "tr" {
			continue
		}
		content, err := r.renderTableRow(row)
		if err != nil {
			return "", err
		}
		separator := strings.Repeat("|---", countCells(row)) + "|"
		return content + "\n" + separator, nil
	}
	return "", nil
}

func (r *Renderer) renderTableBody(tbody *ast.Element) (string, error) {
	r.stack.push(newFrame(tbody))
	defer r.stack.pop()

	var rows []string
	for _, child := range tbody.Children {
		row, ok := child.(*ast.Element)
		if !ok || row.Tag != "tr" {
			continue
		}
		content, err := r.renderTableRow(row)
		if err != nil {
			return "", err
		}
		rows = append(rows, content)
	}
	return strings.Join(rows, "\n"), nil
}

// renderTableRow renders each cell independently, then aligns them as a
// matrix: a cell whose content spans multiple lines contributes one matrix
// row per line, and shorter cells pad out with empty entries.
func (r *Renderer) renderTableRow(tr *ast.Element) (string, error) {
	r.stack.push(newFrame(tr))
	defer r.stack.pop()

	var cells [][]string
	height := 0
	for _, child := range tr.Children {
		cell, ok := child.(*ast.Element)
		if !ok {
			continue
		}
		r.stack.push(newFrame(cell))
		content, err := renderGrouped(r, cell)
		r.stack.pop()
		if err != nil {
			return "", err
		}
		lines := strings.Split(content, "\n")
		if len(lines) > height {
			height = len(lines)
		}
		cells = append(cells, lines)
	}
	if len(cells) == 0 {
		return "", nil
	}

	rows := make([]string, 0, height)
	for i := 0; i < height; i++ {
		entries := make([]string, len(cells))
		for j, lines := range cells {
			if i < len(lines) {
				entries[j] = lines[i]
			}
		}
		rows = append(rows, "| "+strings.Join(entries, " | ")+" |")
	}
	return strings.Join(rows, "\n"), nil
}

func countCells(tr *ast.Element) int {
	n := 0
	for _, child := range tr.Children {
		if _, ok := child.(*ast.Element); ok {
			n++
		}
	}
	return n
}
