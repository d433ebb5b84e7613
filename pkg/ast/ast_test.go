package ast

import (
	"testing"

	"smash/pkg/lexer"
)

func TestLiteralConstructorsSetType(t *testing.T) {
	num := NewNumber("42ul", lexer.NewInteger("42", 10, lexer.NumberULong))
	if num.Type() == nil || num.Type().Kind != TypeULong {
		t.Errorf("number type = %v, want unsigned long", num.Type())
	}

	str := NewString(`"hi"`)
	if got := str.Type().String(); got != "char*" {
		t.Errorf("string type = %q, want char*", got)
	}

	if NewIdent("x").Type() != nil {
		t.Error("identifiers should be untyped until semantic analysis")
	}

	decl := NewVarDecl("a", NewType(TypeInt), nil)
	if decl.Type().Kind != TypeInt {
		t.Errorf("declarator type = %v, want int", decl.Type())
	}
}

func TestCompoundAndCallNeverNil(t *testing.T) {
	if c := NewCompound(nil); c.Stmts == nil || len(c.Stmts) != 0 {
		t.Errorf("NewCompound(nil).Stmts = %#v, want empty slice", c.Stmts)
	}
	if c := NewCall(NewIdent("f"), nil); c.Args == nil {
		t.Error("NewCall(f, nil).Args should be an empty slice")
	}
}

func TestUnaryOpSymbols(t *testing.T) {
	tests := []struct {
		op      UnaryOp
		name    string
		symbol  string
		postfix bool
	}{
		{OpAddr, "&", "&", false},
		{OpNot, "!", "!", false},
		{OpPreInc, "pre++", "++", false},
		{OpPostDec, "post--", "--", true},
	}
	for _, tt := range tests {
		if tt.op.String() != tt.name || tt.op.Symbol() != tt.symbol || tt.op.IsPostfix() != tt.postfix {
			t.Errorf("%d: got (%s, %s, %v), want (%s, %s, %v)", tt.op,
				tt.op.String(), tt.op.Symbol(), tt.op.IsPostfix(), tt.name, tt.symbol, tt.postfix)
		}
	}
}

func TestTypeString(t *testing.T) {
	ty := &Type{Kind: TypeInt, IsStatic: true, IsConst: true}
	if got := ty.String(); got != "static const int" {
		t.Errorf("got %q", got)
	}
	p := PointerTo(NewType(TypeChar))
	p.IsRestrict = true
	if got := p.String(); got != "char* restrict" {
		t.Errorf("got %q", got)
	}
}

// TestUnitHelpers builds the desugared form of a while loop by hand and
// checks the traversal helpers against it.
func TestUnitHelpers(t *testing.T) {
	loop := NewCompound([]Node{
		NewLabel(".TEMP0", NewIf(NewIdent("x"), NewIdent("y"), NewGoto(".TEMP1"))),
		NewGoto(".TEMP0"),
		NewLabel(".TEMP1", nil),
	})
	u := NewUnit("loop.c")
	u.Add(loop, NewGoto("nowhere"))

	counts := u.CountByKind()
	if counts[KindLabel] != 2 || counts[KindGoto] != 3 || counts[KindIdent] != 2 || counts[KindCompound] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}

	if l := u.FindLabel(".TEMP1"); l == nil || l.Stmt != nil {
		t.Errorf("FindLabel(.TEMP1) = %v, want bare label", l)
	}
	if u.FindLabel("missing") != nil {
		t.Error("FindLabel should return nil for unknown labels")
	}

	unresolved := u.UnresolvedGotos()
	if len(unresolved) != 1 || unresolved[0].Label != "nowhere" {
		t.Errorf("UnresolvedGotos() = %v, want [nowhere]", unresolved)
	}
}

func TestInspectSkipsChildren(t *testing.T) {
	tree := NewBinary(lexer.TokenPlus, NewIdent("a"), NewUnary(OpMinus, NewIdent("b")))
	var seen []NodeKind
	Inspect(tree, func(n Node) bool {
		seen = append(seen, n.Kind())
		return n.Kind() != KindUnary
	})
	want := []NodeKind{KindBinary, KindIdent, KindUnary}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %s, want %s", i, seen[i], want[i])
		}
	}
}
