// Package ast defines the syntax tree produced by the parser.
package ast

import (
	"smash/pkg/lexer"
)

// NodeKind identifies the concrete type of a node
type NodeKind int

const (
	KindIdent NodeKind = iota
	KindString
	KindChar
	KindNumber
	KindVarDecl
	KindCompound
	KindLabel
	KindGoto
	KindBinary
	KindUnary
	KindReturn
	KindCast
	KindTernary
	KindIf
	KindCall
	KindMember
)

var nodeKindNames = [...]string{
	KindIdent:    "ident",
	KindString:   "string",
	KindChar:     "char",
	KindNumber:   "number",
	KindVarDecl:  "vardecl",
	KindCompound: "compound",
	KindLabel:    "label",
	KindGoto:     "goto",
	KindBinary:   "binary",
	KindUnary:    "unary",
	KindReturn:   "return",
	KindCast:     "cast",
	KindTernary:  "ternary",
	KindIf:       "if",
	KindCall:     "call",
	KindMember:   "member",
}

func (k NodeKind) String() string {
	if k >= 0 && int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "unknown"
}

// Node is implemented by every syntax tree node. Each concrete type carries
// only the fields that make sense for it.
type Node interface {
	Kind() NodeKind
	// Type is the node's C type, or nil until semantic analysis sets it.
	Type() *Type
	node()
}

// Typed holds the type reference shared by all nodes
type Typed struct {
	Ty *Type
}

// Type returns the attached type
func (t *Typed) Type() *Type { return t.Ty }

// Literals and names

type Ident struct {
	Typed
	Name string
}

// StringLit holds a string literal exactly as written, quotes included.
type StringLit struct {
	Typed
	Value string
}

// CharLit holds a character literal exactly as written, quotes included.
type CharLit struct {
	Typed
	Value string
}

type NumberLit struct {
	Typed
	Text   string
	Number *lexer.Number
}

// Declarations

// VarDecl declares one variable. Init may be nil.
type VarDecl struct {
	Typed
	Name string
	Init Node
}

// Statements

type Compound struct {
	Typed
	Stmts []Node
}

// Label names a statement. Stmt is nil for a bare label closing a block.
type Label struct {
	Typed
	Name string
	Stmt Node
}

type Goto struct {
	Typed
	Label string
}

// Return may have a nil X.
type Return struct {
	Typed
	X Node
}

// If is a conditional statement. Else may be nil.
type If struct {
	Typed
	Cond Node
	Then Node
	Else Node
}

// Expressions

// Binary is a binary operation. Op is the token that produced it, which
// covers arithmetic, comparison, logical, comma and (compound) assignment.
type Binary struct {
	Typed
	Op    lexer.TokenType
	Left  Node
	Right Node
}

type Unary struct {
	Typed
	Op UnaryOp
	X  Node
}

// Cast converts X to the type held in Ty.
type Cast struct {
	Typed
	X Node
}

type Ternary struct {
	Typed
	Cond Node
	Then Node
	Else Node
}

type Call struct {
	Typed
	Func Node
	Args []Node
}

// Member is X.Name. The arrow form is Member on a dereference of X.
type Member struct {
	Typed
	X    Node
	Name string
}

func (*Ident) Kind() NodeKind     { return KindIdent }
func (*StringLit) Kind() NodeKind { return KindString }
func (*CharLit) Kind() NodeKind   { return KindChar }
func (*NumberLit) Kind() NodeKind { return KindNumber }
func (*VarDecl) Kind() NodeKind   { return KindVarDecl }
func (*Compound) Kind() NodeKind  { return KindCompound }
func (*Label) Kind() NodeKind     { return KindLabel }
func (*Goto) Kind() NodeKind      { return KindGoto }
func (*Return) Kind() NodeKind    { return KindReturn }
func (*If) Kind() NodeKind        { return KindIf }
func (*Binary) Kind() NodeKind    { return KindBinary }
func (*Unary) Kind() NodeKind     { return KindUnary }
func (*Cast) Kind() NodeKind      { return KindCast }
func (*Ternary) Kind() NodeKind   { return KindTernary }
func (*Call) Kind() NodeKind      { return KindCall }
func (*Member) Kind() NodeKind    { return KindMember }

func (*Ident) node()     {}
func (*StringLit) node() {}
func (*CharLit) node()   {}
func (*NumberLit) node() {}
func (*VarDecl) node()   {}
func (*Compound) node()  {}
func (*Label) node()     {}
func (*Goto) node()      {}
func (*Return) node()    {}
func (*If) node()        {}
func (*Binary) node()    {}
func (*Unary) node()     {}
func (*Cast) node()      {}
func (*Ternary) node()   {}
func (*Call) node()      {}
func (*Member) node()    {}

// UnaryOp is the operator of a Unary node
type UnaryOp int

const (
	OpAddr UnaryOp = iota
	OpDeref
	OpPlus
	OpMinus
	OpBitNot
	OpNot
	OpPreInc
	OpPreDec
	OpPostInc
	OpPostDec
)

var unaryOpNames = [...]string{
	OpAddr:    "&",
	OpDeref:   "*",
	OpPlus:    "+",
	OpMinus:   "-",
	OpBitNot:  "~",
	OpNot:     "!",
	OpPreInc:  "pre++",
	OpPreDec:  "pre--",
	OpPostInc: "post++",
	OpPostDec: "post--",
}

func (op UnaryOp) String() string {
	if op >= 0 && int(op) < len(unaryOpNames) {
		return unaryOpNames[op]
	}
	return "unknown"
}

// Symbol returns the operator as written in C
func (op UnaryOp) Symbol() string {
	switch op {
	case OpPreInc, OpPostInc:
		return "++"
	case OpPreDec, OpPostDec:
		return "--"
	}
	return op.String()
}

// IsPostfix reports whether the operator follows its operand
func (op UnaryOp) IsPostfix() bool {
	return op == OpPostInc || op == OpPostDec
}

// Constructors. Literals get their type here.

func NewIdent(name string) *Ident {
	return &Ident{Name: name}
}

func NewString(value string) *StringLit {
	return &StringLit{Typed: Typed{Ty: PointerTo(NewType(TypeChar))}, Value: value}
}

func NewChar(value string) *CharLit {
	return &CharLit{Typed: Typed{Ty: NewType(TypeInt)}, Value: value}
}

func NewNumber(text string, n *lexer.Number) *NumberLit {
	return &NumberLit{Typed: Typed{Ty: TypeOfNumber(n.Type)}, Text: text, Number: n}
}

func NewVarDecl(name string, t *Type, init Node) *VarDecl {
	return &VarDecl{Typed: Typed{Ty: t}, Name: name, Init: init}
}

func NewCompound(stmts []Node) *Compound {
	if stmts == nil {
		stmts = []Node{}
	}
	return &Compound{Stmts: stmts}
}

func NewLabel(name string, stmt Node) *Label {
	return &Label{Name: name, Stmt: stmt}
}

func NewGoto(label string) *Goto {
	return &Goto{Label: label}
}

func NewReturn(x Node) *Return {
	return &Return{X: x}
}

func NewIf(cond, then, els Node) *If {
	return &If{Cond: cond, Then: then, Else: els}
}

func NewBinary(op lexer.TokenType, left, right Node) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

func NewUnary(op UnaryOp, x Node) *Unary {
	return &Unary{Op: op, X: x}
}

func NewCast(to *Type, x Node) *Cast {
	return &Cast{Typed: Typed{Ty: to}, X: x}
}

func NewTernary(cond, then, els Node) *Ternary {
	return &Ternary{Cond: cond, Then: then, Else: els}
}

func NewCall(fn Node, args []Node) *Call {
	if args == nil {
		args = []Node{}
	}
	return &Call{Func: fn, Args: args}
}

func NewMember(x Node, name string) *Member {
	return &Member{X: x, Name: name}
}
