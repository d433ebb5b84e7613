package formatter

import (
	"fmt"
	"strings"

	"smash/pkg/ast"
)

// Tree renders the unit as an indented outline, one node per line
func (f *Formatter) Tree(unit *ast.Unit) string {
	var result strings.Builder
	result.WriteString(fmt.Sprintf("unit %s\n", unit.Filename))
	for _, n := range unit.Body {
		f.writeTree(&result, n, 1)
	}
	return result.String()
}

func (f *Formatter) writeTree(result *strings.Builder, n ast.Node, depth int) {
	result.WriteString(f.getIndent(depth))
	result.WriteString(n.Kind().String())
	if label := nodeLabel(n); label != "" {
		result.WriteString(" " + label)
	}
	if t := n.Type(); t != nil {
		result.WriteString(" <" + t.String() + ">")
	}
	result.WriteByte('\n')

	for _, c := range ast.Children(n) {
		f.writeTree(result, c, depth+1)
	}
}

// nodeLabel returns the payload that identifies n beyond its kind
func nodeLabel(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Ident:
		return n.Name
	case *ast.NumberLit:
		return n.Text
	case *ast.StringLit:
		return n.Value
	case *ast.CharLit:
		return n.Value
	case *ast.VarDecl:
		return n.Name
	case *ast.Label:
		return n.Name
	case *ast.Goto:
		return n.Label
	case *ast.Binary:
		return n.Op.String()
	case *ast.Unary:
		return n.Op.String()
	case *ast.Member:
		return n.Name
	}
	return ""
}
