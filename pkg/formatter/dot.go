package formatter

import (
	"fmt"
	"strings"

	"smash/pkg/ast"
)

// Dot renders the unit as a Graphviz digraph. Each node becomes a box
// labelled with its kind and payload; edges run from parent to child.
func (f *Formatter) Dot(unit *ast.Unit) string {
	var result strings.Builder
	result.WriteString("digraph {\n")

	id := 0
	var visit func(n ast.Node, parent int)
	visit = func(n ast.Node, parent int) {
		nodeID := id
		id++

		label := n.Kind().String()
		if extra := nodeLabel(n); extra != "" {
			label += " " + extra
		}
		result.WriteString(fmt.Sprintf("%d [shape=box, label=%q];\n", nodeID, label))
		if parent >= 0 {
			result.WriteString(fmt.Sprintf("%d -> %d;\n", parent, nodeID))
		}
		for _, c := range ast.Children(n) {
			visit(c, nodeID)
		}
	}

	root := -1
	if len(unit.Body) > 1 {
		root = id
		id++
		result.WriteString(fmt.Sprintf("%d [shape=box, label=%q];\n", root, "unit "+unit.Filename))
	}
	for _, n := range unit.Body {
		visit(n, root)
	}

	result.WriteString("}\n")
	return result.String()
}
