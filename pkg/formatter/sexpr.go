package formatter

import (
	"strings"

	"smash/pkg/ast"
)

// SExpr renders a node as a parenthesized prefix expression, e.g.
// (+ a (* b c)).
func SExpr(n ast.Node) string {
	var sb strings.Builder
	writeSExpr(&sb, n)
	return sb.String()
}

// SExprUnit renders every top-level node of unit on its own line
func (f *Formatter) SExprUnit(unit *ast.Unit) string {
	var sb strings.Builder
	for _, n := range unit.Body {
		writeSExpr(&sb, n)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeSExpr(sb *strings.Builder, n ast.Node) {
	list := func(head string, items ...ast.Node) {
		sb.WriteByte('(')
		sb.WriteString(head)
		for _, item := range items {
			sb.WriteByte(' ')
			writeSExpr(sb, item)
		}
		sb.WriteByte(')')
	}

	switch n := n.(type) {
	case nil:
		sb.WriteString("nil")
	case *ast.Ident:
		sb.WriteString(n.Name)
	case *ast.NumberLit:
		sb.WriteString(n.Text)
	case *ast.StringLit:
		sb.WriteString(n.Value)
	case *ast.CharLit:
		sb.WriteString(n.Value)
	case *ast.VarDecl:
		head := "decl " + n.Type().String() + " " + n.Name
		if n.Init == nil {
			list(head)
		} else {
			list(head, n.Init)
		}
	case *ast.Compound:
		list("block", n.Stmts...)
	case *ast.Label:
		if n.Stmt == nil {
			list("label " + n.Name)
		} else {
			list("label "+n.Name, n.Stmt)
		}
	case *ast.Goto:
		list("goto " + n.Label)
	case *ast.Return:
		if n.X == nil {
			list("return")
		} else {
			list("return", n.X)
		}
	case *ast.If:
		if n.Else == nil {
			list("if", n.Cond, n.Then)
		} else {
			list("if", n.Cond, n.Then, n.Else)
		}
	case *ast.Binary:
		list(n.Op.String(), n.Left, n.Right)
	case *ast.Unary:
		list(n.Op.String(), n.X)
	case *ast.Cast:
		list("cast "+n.Type().String(), n.X)
	case *ast.Ternary:
		list("?:", n.Cond, n.Then, n.Else)
	case *ast.Call:
		list("call", append([]ast.Node{n.Func}, n.Args...)...)
	case *ast.Member:
		sb.WriteString("(. ")
		writeSExpr(sb, n.X)
		sb.WriteString(" " + n.Name + ")")
	}
}
