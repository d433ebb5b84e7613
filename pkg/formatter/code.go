package formatter

import (
	"strings"

	"smash/pkg/ast"
	"smash/pkg/lexer"
)

// ReconstructCode renders the unit back to C-like source. Generated labels
// are printed as they are, so lowered loops show their goto form.
func (f *Formatter) ReconstructCode(unit *ast.Unit) string {
	var result strings.Builder
	for _, n := range unit.Body {
		f.writeStmt(&result, n, 0)
	}
	return result.String()
}

// ReconstructNode renders a single statement or expression
func (f *Formatter) ReconstructNode(n ast.Node) string {
	var result strings.Builder
	f.writeStmt(&result, n, 0)
	return result.String()
}

func (f *Formatter) writeStmt(result *strings.Builder, n ast.Node, depth int) {
	indent := f.getIndent(depth)

	switch n := n.(type) {
	case nil:
		result.WriteString(indent + ";\n")
	case *ast.Compound:
		result.WriteString(indent + "{\n")
		for _, s := range n.Stmts {
			f.writeStmt(result, s, depth+1)
		}
		result.WriteString(indent + "}\n")
	case *ast.Label:
		result.WriteString(f.getIndent(max(depth-1, 0)) + n.Name + ":\n")
		f.writeStmt(result, n.Stmt, depth)
	case *ast.Goto:
		result.WriteString(indent + "goto " + n.Label + ";\n")
	case *ast.Return:
		if n.X == nil {
			result.WriteString(indent + "return;\n")
		} else {
			result.WriteString(indent + "return " + expr(n.X) + ";\n")
		}
	case *ast.VarDecl:
		result.WriteString(indent + n.Type().String() + " " + n.Name)
		if n.Init != nil {
			result.WriteString(" = " + operand(n.Init, lexer.TokenEquals))
		}
		result.WriteString(";\n")
	case *ast.If:
		result.WriteString(indent + "if (" + expr(n.Cond) + ")\n")
		f.writeBranch(result, n.Then, depth)
		if n.Else != nil {
			result.WriteString(indent + "else\n")
			f.writeBranch(result, n.Else, depth)
		}
	default:
		result.WriteString(indent + expr(n) + ";\n")
	}
}

// writeBranch writes an if branch; blocks stay at the if's depth
func (f *Formatter) writeBranch(result *strings.Builder, n ast.Node, depth int) {
	if _, ok := n.(*ast.Compound); ok {
		f.writeStmt(result, n, depth)
		return
	}
	f.writeStmt(result, n, depth+1)
}

// expr renders an expression; nested compound operands are parenthesized.
func expr(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Ident:
		return n.Name
	case *ast.NumberLit:
		return n.Text
	case *ast.StringLit:
		return n.Value
	case *ast.CharLit:
		return n.Value
	case *ast.Binary:
		if n.Op == lexer.TokenComma {
			return expr(n.Left) + ", " + expr(n.Right)
		}
		parent := n.Op
		if isAssign(n.Op) {
			parent = lexer.TokenEquals
		}
		return operand(n.Left, parent) + " " + n.Op.String() + " " + operand(n.Right, parent)
	case *ast.Unary:
		if n.Op.IsPostfix() {
			return operand(n.X, 0) + n.Op.Symbol()
		}
		return n.Op.Symbol() + operand(n.X, 0)
	case *ast.Cast:
		return "(" + n.Type().String() + ")" + operand(n.X, 0)
	case *ast.Ternary:
		return operand(n.Cond, 0) + " ? " + expr(n.Then) + " : " + operand(n.Else, 0)
	case *ast.Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = operand(a, lexer.TokenEquals)
		}
		return operand(n.Func, 0) + "(" + strings.Join(args, ", ") + ")"
	case *ast.Member:
		if u, ok := n.X.(*ast.Unary); ok && u.Op == ast.OpDeref {
			return operand(u.X, 0) + "->" + n.Name
		}
		return operand(n.X, 0) + "." + n.Name
	}
	return "/* " + n.Kind().String() + " */"
}

// operand renders n as an operand of parent, adding parentheses around
// anything but a primary or postfix expression. Assignment right-hand
// sides and call arguments only need them for the comma operator.
func operand(n ast.Node, parent lexer.TokenType) string {
	switch n := n.(type) {
	case *ast.Binary:
		if parent == lexer.TokenEquals && n.Op != lexer.TokenComma {
			return expr(n)
		}
		return "(" + expr(n) + ")"
	case *ast.Ternary:
		if parent == lexer.TokenEquals {
			return expr(n)
		}
		return "(" + expr(n) + ")"
	case *ast.Unary:
		if n.Op.IsPostfix() {
			return expr(n)
		}
		return "(" + expr(n) + ")"
	case *ast.Cast:
		return "(" + expr(n) + ")"
	}
	return expr(n)
}

func isAssign(op lexer.TokenType) bool {
	switch op {
	case lexer.TokenEquals, lexer.TokenPlusEquals, lexer.TokenMinusEquals,
		lexer.TokenStarEquals, lexer.TokenSlashEquals, lexer.TokenPercentEquals,
		lexer.TokenAmpEquals, lexer.TokenPipeEquals, lexer.TokenCaretEquals,
		lexer.TokenLeftShiftEquals, lexer.TokenRightShiftEquals:
		return true
	}
	return false
}
