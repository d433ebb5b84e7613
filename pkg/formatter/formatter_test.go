package formatter

import (
	"encoding/json"
	"os/exec"
	"strings"
	"testing"

	"gopkg.in/yaml.v2"

	"smash/pkg/ast"
	"smash/pkg/lexer"
)

func num(text string) *ast.NumberLit {
	return ast.NewNumber(text, lexer.NewInteger(text, 10, lexer.NumberInt))
}

// createTestUnit builds the tree for
//
//	int i = 0;
//	while (i < 10) i += 1;
//	f(p->x, "s");
func createTestUnit() *ast.Unit {
	unit := ast.NewUnit("test.c")
	unit.Add(
		ast.NewVarDecl("i", ast.NewType(ast.TypeInt), num("0")),
		ast.NewCompound([]ast.Node{
			ast.NewLabel(".TEMP0", ast.NewIf(
				ast.NewBinary(lexer.TokenLess, ast.NewIdent("i"), num("10")),
				ast.NewBinary(lexer.TokenPlusEquals, ast.NewIdent("i"), num("1")),
				ast.NewGoto(".TEMP1"),
			)),
			ast.NewGoto(".TEMP0"),
			ast.NewLabel(".TEMP1", nil),
		}),
		ast.NewCall(ast.NewIdent("f"), []ast.Node{
			ast.NewMember(ast.NewUnary(ast.OpDeref, ast.NewIdent("p")), "x"),
			ast.NewString(`"s"`),
		}),
	)
	return unit
}

func TestSExpr(t *testing.T) {
	f := New()
	got := f.SExprUnit(createTestUnit())
	want := `(decl int i 0)
(block (label .TEMP0 (if (< i 10) (+= i 1) (goto .TEMP1))) (goto .TEMP0) (label .TEMP1))
(call f (. (* p) x) "s")
`
	if got != want {
		t.Errorf("SExprUnit() =\n%s\nwant\n%s", got, want)
	}
}

func TestSExprExpressions(t *testing.T) {
	tests := []struct {
		node ast.Node
		want string
	}{
		{ast.NewBinary(lexer.TokenPlus, ast.NewIdent("a"),
			ast.NewBinary(lexer.TokenStar, ast.NewIdent("b"), ast.NewIdent("c"))), "(+ a (* b c))"},
		{ast.NewUnary(ast.OpPostInc, ast.NewIdent("x")), "(post++ x)"},
		{ast.NewTernary(ast.NewIdent("c"), ast.NewIdent("a"), ast.NewIdent("b")), "(?: c a b)"},
		{ast.NewCast(ast.NewType(ast.TypeInt), ast.NewIdent("x")), "(cast int x)"},
		{ast.NewReturn(nil), "(return)"},
		{ast.NewCompound(nil), "(block)"},
		{ast.NewCall(ast.NewIdent("g"), nil), "(call g)"},
	}
	for _, tt := range tests {
		if got := SExpr(tt.node); got != tt.want {
			t.Errorf("SExpr() = %s, want %s", got, tt.want)
		}
	}
}

func TestReconstructCode(t *testing.T) {
	f := New()
	got := f.ReconstructCode(createTestUnit())

	expectedParts := []string{
		"int i = 0;\n",
		"{\n",
		".TEMP0:\n",
		"    if (i < 10)\n",
		"        i += 1;\n",
		"    else\n",
		"        goto .TEMP1;\n",
		"    goto .TEMP0;\n",
		".TEMP1:\n",
		"    ;\n",
		"}\n",
		"f(p->x, \"s\");\n",
	}
	if want := strings.Join(expectedParts, ""); got != want {
		t.Errorf("ReconstructCode() =\n%s\nwant\n%s", got, want)
	}
}

func TestReconstructExpressions(t *testing.T) {
	f := New()
	tests := []struct {
		node ast.Node
		want string
	}{
		{ast.NewBinary(lexer.TokenStar,
			ast.NewBinary(lexer.TokenPlus, ast.NewIdent("a"), ast.NewIdent("b")), ast.NewIdent("c")),
			"(a + b) * c;\n"},
		{ast.NewBinary(lexer.TokenEquals, ast.NewIdent("a"),
			ast.NewBinary(lexer.TokenEquals, ast.NewIdent("b"), ast.NewIdent("c"))),
			"a = b = c;\n"},
		{ast.NewUnary(ast.OpMinus, ast.NewUnary(ast.OpMinus, ast.NewIdent("x"))), "-(-x);\n"},
		{ast.NewUnary(ast.OpPreInc, ast.NewIdent("x")), "++x;\n"},
		{ast.NewUnary(ast.OpDeref, ast.NewBinary(lexer.TokenPlus, ast.NewIdent("a"), ast.NewIdent("i"))), "*(a + i);\n"},
		{ast.NewCast(ast.NewType(ast.TypeInt), ast.NewIdent("x")), "(int)x;\n"},
		{ast.NewReturn(nil), "return;\n"},
		{nil, ";\n"},
	}
	for _, tt := range tests {
		if got := f.ReconstructNode(tt.node); got != tt.want {
			t.Errorf("ReconstructNode() = %q, want %q", got, tt.want)
		}
	}
}

func TestTree(t *testing.T) {
	f := New()
	unit := ast.NewUnit("x.c")
	unit.Add(ast.NewReturn(ast.NewBinary(lexer.TokenPlus, ast.NewIdent("a"), num("1"))))

	want := "unit x.c\n" +
		"    return\n" +
		"        binary +\n" +
		"            ident a\n" +
		"            number 1 <int>\n"
	if got := f.Tree(unit); got != want {
		t.Errorf("Tree() =\n%s\nwant\n%s", got, want)
	}

	tabs := New().WithTabs()
	if got := tabs.Tree(unit); !strings.Contains(got, "\t\tbinary +\n") {
		t.Errorf("Tree() with tabs =\n%s", got)
	}
}

func TestDot(t *testing.T) {
	f := New()
	unit := ast.NewUnit("x.c")
	unit.Add(ast.NewBinary(lexer.TokenPlus, ast.NewIdent("a"), ast.NewString(`"q"`)))

	got := f.Dot(unit)
	expectedParts := []string{
		"digraph {\n",
		"0 [shape=box, label=\"binary +\"];\n",
		"1 [shape=box, label=\"ident a\"];\n",
		"0 -> 1;\n",
		"2 [shape=box, label=\"string \\\"q\\\"\"];\n",
		"0 -> 2;\n",
		"}\n",
	}
	if want := strings.Join(expectedParts, ""); got != want {
		t.Errorf("Dot() =\n%s\nwant\n%s", got, want)
	}

	if got := f.Dot(createTestUnit()); !strings.Contains(got, "label=\"unit test.c\"") {
		t.Error("multi-statement units should get a root node")
	}
}

func TestDocumentJSONAndYAML(t *testing.T) {
	f := New()
	unit := createTestUnit()

	out, err := f.JSON(unit)
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	var fromJSON DocUnit
	if err := json.Unmarshal(out, &fromJSON); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	out, err = f.YAML(unit)
	if err != nil {
		t.Fatalf("YAML() error: %v", err)
	}
	var fromYAML DocUnit
	if err := yaml.Unmarshal(out, &fromYAML); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}

	for name, doc := range map[string]DocUnit{"json": fromJSON, "yaml": fromYAML} {
		if doc.Filename != "test.c" || len(doc.Body) != 3 {
			t.Fatalf("%s: unexpected document %+v", name, doc)
		}
		decl := doc.Body[0]
		if decl.Kind != "vardecl" || decl.Name != "i" || decl.Type != "int" {
			t.Errorf("%s: decl = %+v", name, decl)
		}
		if len(decl.Children) != 1 || decl.Children[0].Role != "init" || decl.Children[0].NumberType != "int" {
			t.Errorf("%s: decl init = %+v", name, decl.Children)
		}
		call := doc.Body[2]
		if call.Kind != "call" || len(call.Children) != 3 || call.Children[1].Role != "arg" {
			t.Errorf("%s: call = %+v", name, call)
		}
	}
}

func TestGetSummary(t *testing.T) {
	f := New()
	unit := createTestUnit()
	unit.Add(ast.NewGoto("nowhere"))
	summary := f.GetSummary(unit)

	expectedParts := []string{
		"File: test.c",
		"Top-level nodes: 4",
		"Labels: 2 (.TEMP0, .TEMP1)",
		"Unresolved gotos: nowhere",
		"goto:     3",
	}
	for _, part := range expectedParts {
		if !strings.Contains(summary, part) {
			t.Errorf("summary missing %q:\n%s", part, summary)
		}
	}
}

func TestRender(t *testing.T) {
	f := New()
	unit := createTestUnit()
	for _, format := range Formats {
		out, err := f.Render(unit, format)
		if err != nil {
			t.Errorf("Render(%s) error: %v", format, err)
		}
		if out == "" {
			t.Errorf("Render(%s) produced no output", format)
		}
	}
	if _, err := f.Render(unit, "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFormatWithClang(t *testing.T) {
	if _, err := exec.LookPath("clang-format"); err != nil {
		t.Skip("clang-format not installed")
	}
	f := New()
	out, err := f.FormatWithClang("int x=1;")
	if err != nil {
		t.Fatalf("FormatWithClang() error: %v", err)
	}
	if !strings.Contains(out, "int x = 1;") {
		t.Errorf("unexpected output %q", out)
	}
}
