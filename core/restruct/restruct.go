// Package restruct rewrites a parsed tree into the canonical shape the
// renderer expects. It is a total function: every valid tree has a valid
// canonical form.
//
// Two rules apply at every level:
//
//   - every table becomes exactly THEAD (first row) + TBODY (remaining
//     rows), discarding captions, existing section wrappers and stray text;
//   - every maximal run of sibling ul/ol elements is grouped under one
//     synthetic wrapper so the renderer can join adjacent lists with single
//     newlines instead of paragraph breaks.
package restruct

import "github.com/gaurav-prasanna/htmldown/core/ast"

// Restruct returns the canonical form of node. The input tree is not
// mutated.
func Restruct(node ast.Node) ast.Node {
	switch n := node.(type) {
	case ast.Text:
		return n
	case *ast.Element:
		if n.Tag == "table" {
			return restructTable(n)
		}
		return restructElement(n)
	}
	return node
}

func restructElement(el *ast.Element) *ast.Element {
	children := groupSuccessiveLists(el.Children)
	return ast.NewElement(el.Tag, el.Attributes, children...)
}

// groupSuccessiveLists restructures every child and replaces each maximal
// run of list elements with a single wrapper element. A run of length one is
// still wrapped so downstream rendering stays uniform.
func groupSuccessiveLists(nodes []ast.Node) []ast.Node {
	var children []ast.Node
	var run []ast.Node

	flush := func() {
		if len(run) == 0 {
			return
		}
		children = append(children, ast.NewElement(ast.ListGroupTag, nil, run...))
		run = nil
	}

	for _, child := range nodes {
		if el, ok := child.(*ast.Element); ok && ast.IsList(el.Tag) {
			run = append(run, Restruct(el))
			continue
		}
		flush()
		children = append(children, Restruct(child))
	}
	flush()

	return children
}

// restructTable normalizes a table to THEAD(first tr) + TBODY(rest). Rows
// are collected from all descendants in document order without crossing
// into nested tables; a table with no rows at all loses its children.
func restructTable(el *ast.Element) *ast.Element {
	var rows []ast.Node
	for _, child := range el.Children {
		rows = append(rows, collectRows(child)...)
	}

	table := ast.NewElement("table", el.Attributes)
	if len(rows) == 0 {
		return table
	}

	thead := ast.NewElement("thead", nil, rows[0])
	tbody := ast.NewElement("tbody", nil)
	if len(rows) > 1 {
		tbody.Children = rows[1:]
	}
	table.Children = []ast.Node{thead, tbody}
	return table
}

// collectRows gathers tr elements in pre-order. Each collected row is itself
// restructured so lists and nested tables inside cells come out canonical.
func collectRows(node ast.Node) []ast.Node {
	el, ok := node.(*ast.Element)
	if !ok {
		return nil
	}
	switch el.Tag {
	case "tr":
		return []ast.Node{restructElement(el)}
	case "table":
		// Rows of a nested table belong to that table.
		return nil
	}
	var rows []ast.Node
	for _, child := range el.Children {
		rows = append(rows, collectRows(child)...)
	}
	return rows
}
