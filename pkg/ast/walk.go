package ast

// Unit is a parsed source file
type Unit struct {
	Filename string
	Body     []Node
}

// NewUnit creates an empty unit for filename
func NewUnit(filename string) *Unit {
	return &Unit{Filename: filename, Body: []Node{}}
}

// Add appends top-level nodes to the unit
func (u *Unit) Add(nodes ...Node) {
	u.Body = append(u.Body, nodes...)
}

// Children returns the non-nil direct children of n in source order
func Children(n Node) []Node {
	var kids []Node
	add := func(nodes ...Node) {
		for _, c := range nodes {
			if c != nil {
				kids = append(kids, c)
			}
		}
	}

	switch n := n.(type) {
	case *VarDecl:
		add(n.Init)
	case *Compound:
		add(n.Stmts...)
	case *Label:
		add(n.Stmt)
	case *Return:
		add(n.X)
	case *If:
		add(n.Cond, n.Then, n.Else)
	case *Binary:
		add(n.Left, n.Right)
	case *Unary:
		add(n.X)
	case *Cast:
		add(n.X)
	case *Ternary:
		add(n.Cond, n.Then, n.Else)
	case *Call:
		add(n.Func)
		add(n.Args...)
	case *Member:
		add(n.X)
	}
	return kids
}

// Inspect traverses the tree rooted at n depth-first, calling f for each
// node. Children are skipped when f returns false.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// Inspect walks every top-level node of the unit
func (u *Unit) Inspect(f func(Node) bool) {
	for _, n := range u.Body {
		Inspect(n, f)
	}
}

// CountByKind returns how many nodes of each kind the unit contains
func (u *Unit) CountByKind() map[NodeKind]int {
	counts := make(map[NodeKind]int)
	u.Inspect(func(n Node) bool {
		counts[n.Kind()]++
		return true
	})
	return counts
}

// Labels returns every label in the unit, depth-first
func (u *Unit) Labels() []*Label {
	var labels []*Label
	u.Inspect(func(n Node) bool {
		if l, ok := n.(*Label); ok {
			labels = append(labels, l)
		}
		return true
	})
	return labels
}

// FindLabel finds a label by name
func (u *Unit) FindLabel(name string) *Label {
	for _, l := range u.Labels() {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// UnresolvedGotos returns the gotos whose target label does not exist in
// the unit.
func (u *Unit) UnresolvedGotos() []*Goto {
	defined := make(map[string]bool)
	for _, l := range u.Labels() {
		defined[l.Name] = true
	}

	var missing []*Goto
	u.Inspect(func(n Node) bool {
		if g, ok := n.(*Goto); ok && !defined[g.Label] {
			missing = append(missing, g)
		}
		return true
	})
	return missing
}
