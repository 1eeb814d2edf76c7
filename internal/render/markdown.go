// Package render turns an annotated documentation tree into Markdown: a
// numbered, anchor-linked table of contents followed by the full
// documentation body.
package render

import (
	"fmt"
	"strings"

	"github.com/waynegramlich/docstrex/internal/docmodel"
)

// Document is one directory's renderable tree: the ordered modules plus the
// package docstring lines when the directory is a package.
type Document struct {
	Package *docmodel.Node   // nil unless the directory holds an __init__.py
	Modules []*docmodel.Node // lexicographic by source path
}

// Annotate numbers the modules as chapters and assigns every anchor.
func (d *Document) Annotate() {
	if d.Package != nil {
		docmodel.Annotate(d.Package, "", "")
	}
	for i, mod := range d.Modules {
		docmodel.Annotate(mod, "", fmt.Sprintf("%d", i+1))
	}
}

// Markdown renders the whole document: package description first, then
// every module's table of contents, then every module's documentation
// body, in discovery order throughout.
func (d *Document) Markdown() string {
	var b strings.Builder
	if d.Package != nil && len(d.Package.Lines) > 0 {
		writeLines(&b, packageLines(d.Package))
		b.WriteString("\n")
	}
	for _, mod := range d.Modules {
		writeLines(&b, SummaryLines(mod, ""))
	}
	for _, mod := range d.Modules {
		writeLines(&b, DocumentationLines(mod, "#"))
	}
	b.WriteString("\n")
	return b.String()
}

func packageLines(pkg *docmodel.Node) []string {
	lines := []string{fmt.Sprintf("# %s: %s", pkg.Name, pkg.FirstLine())}
	lines = append(lines, pkg.Lines[1:]...)
	lines = append(lines, "")
	return lines
}

// SummaryLines produces the table of contents block for one node. Modules
// emit their title and TOC header; classes and functions emit one bullet
// each, children indented two spaces deeper.
func SummaryLines(n *docmodel.Node, indent string) []string {
	switch n.Kind {
	case docmodel.KindModule:
		return moduleSummary(n)
	case docmodel.KindClass:
		lines := []string{fmt.Sprintf("%s* %s Class: [%s](#%s):", indent, n.Number, n.Name, n.Anchor)}
		for _, child := range n.Children {
			lines = append(lines, SummaryLines(child, indent+"  ")...)
		}
		return lines
	case docmodel.KindFunction:
		line := fmt.Sprintf("%s* %s [%s()](#%s)", indent, n.Number, n.Name, n.Anchor)
		if first := n.FirstLine(); first != "" {
			line += ": " + first
		}
		return []string{line}
	}
	return nil
}

func moduleSummary(n *docmodel.Node) []string {
	var lines []string
	title := fmt.Sprintf("# %s %s", n.Number, n.Name)
	if first := n.FirstLine(); first != "" {
		title = fmt.Sprintf("# %s %s: %s", n.Number, n.Name, first)
	}
	lines = append(lines, title)
	if len(n.Lines) > 1 {
		lines = append(lines, n.Lines[1:]...)
	}
	lines = append(lines, "")
	if len(n.Children) > 0 {
		lines = append(lines, "## Table of Contents:", "")
		for _, child := range n.Children {
			lines = append(lines, SummaryLines(child, "")...)
		}
	}
	lines = append(lines, "")
	return lines
}

// DocumentationLines produces the full documentation section for one node:
// a heading carrying the anchor target and number, the normalized docstring
// lines, then each child one heading level deeper.
func DocumentationLines(n *docmodel.Node, prefix string) []string {
	var lines []string
	switch n.Kind {
	case docmodel.KindModule:
		// The module's own docstring already opened the document; its
		// sections hold the classes and functions.
		for _, child := range n.Children {
			lines = append(lines, DocumentationLines(child, prefix+"#")...)
		}
		lines = append(lines, "")
		return lines
	case docmodel.KindClass:
		lines = append(lines,
			fmt.Sprintf("%s <a name=\"%s\"></a>%s Class %s:", prefix, n.Anchor, n.Number, n.Name),
			"")
		lines = append(lines, n.Lines...)
		lines = append(lines, "")
		for _, child := range n.Children {
			lines = append(lines, DocumentationLines(child, prefix+"#")...)
		}
		lines = append(lines, "")
		return lines
	case docmodel.KindFunction:
		lines = append(lines,
			fmt.Sprintf("%s <a name=\"%s\"></a>%s %s():", prefix, n.Anchor, n.Number, n.Name),
			"")
		if n.Signature != "" {
			lines = append(lines, fmt.Sprintf("`%s`:", n.Signature), "")
		}
		lines = append(lines, n.Lines...)
		lines = append(lines, "")
		return lines
	}
	return lines
}

func writeLines(b *strings.Builder, lines []string) {
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
}
