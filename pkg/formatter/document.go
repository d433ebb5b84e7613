package formatter

import (
	"encoding/json"

	"gopkg.in/yaml.v2"

	"smash/pkg/ast"
)

// DocUnit is the serializable form of a unit
type DocUnit struct {
	Filename string     `json:"filename" yaml:"filename"`
	Body     []*DocNode `json:"body" yaml:"body"`
}

// DocNode is the serializable form of a node. Role names the child's place
// in its parent (cond, then, left, arg...).
type DocNode struct {
	Kind       string     `json:"kind" yaml:"kind"`
	Role       string     `json:"role,omitempty" yaml:"role,omitempty"`
	Op         string     `json:"op,omitempty" yaml:"op,omitempty"`
	Name       string     `json:"name,omitempty" yaml:"name,omitempty"`
	Value      string     `json:"value,omitempty" yaml:"value,omitempty"`
	Type       string     `json:"type,omitempty" yaml:"type,omitempty"`
	NumberType string     `json:"numberType,omitempty" yaml:"numberType,omitempty"`
	Base       int        `json:"base,omitempty" yaml:"base,omitempty"`
	Children   []*DocNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Document converts unit to its serializable form
func (f *Formatter) Document(unit *ast.Unit) *DocUnit {
	doc := &DocUnit{Filename: unit.Filename, Body: []*DocNode{}}
	for _, n := range unit.Body {
		doc.Body = append(doc.Body, toDoc(n, ""))
	}
	return doc
}

// JSON renders the unit document as indented JSON
func (f *Formatter) JSON(unit *ast.Unit) ([]byte, error) {
	out, err := json.MarshalIndent(f.Document(unit), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// YAML renders the unit document as YAML
func (f *Formatter) YAML(unit *ast.Unit) ([]byte, error) {
	return yaml.Marshal(f.Document(unit))
}

func toDoc(n ast.Node, role string) *DocNode {
	d := &DocNode{Kind: n.Kind().String(), Role: role}
	if t := n.Type(); t != nil {
		d.Type = t.String()
	}
	add := func(role string, c ast.Node) {
		if c != nil {
			d.Children = append(d.Children, toDoc(c, role))
		}
	}

	switch n := n.(type) {
	case *ast.Ident:
		d.Name = n.Name
	case *ast.NumberLit:
		d.Value = n.Text
		d.NumberType = n.Number.Type.String()
		d.Base = n.Number.Base
	case *ast.StringLit:
		d.Value = n.Value
	case *ast.CharLit:
		d.Value = n.Value
	case *ast.VarDecl:
		d.Name = n.Name
		add("init", n.Init)
	case *ast.Compound:
		for _, s := range n.Stmts {
			add("stmt", s)
		}
	case *ast.Label:
		d.Name = n.Name
		add("stmt", n.Stmt)
	case *ast.Goto:
		d.Name = n.Label
	case *ast.Return:
		add("value", n.X)
	case *ast.If:
		add("cond", n.Cond)
		add("then", n.Then)
		add("else", n.Else)
	case *ast.Binary:
		d.Op = n.Op.String()
		add("left", n.Left)
		add("right", n.Right)
	case *ast.Unary:
		d.Op = n.Op.String()
		add("operand", n.X)
	case *ast.Cast:
		add("operand", n.X)
	case *ast.Ternary:
		add("cond", n.Cond)
		add("then", n.Then)
		add("else", n.Else)
	case *ast.Call:
		add("func", n.Func)
		for _, a := range n.Args {
			add("arg", a)
		}
	case *ast.Member:
		d.Name = n.Name
		add("object", n.X)
	}
	return d
}
