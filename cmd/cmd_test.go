package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"smash/pkg/formatter"
	"smash/pkg/parser"
)

// resetFlags restores every flag of c and its subcommands to its default,
// since cobra keeps flag state between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("SMASH_FORMAT", "")
	t.Setenv("SMASH_LABEL_PREFIX", "")
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestRootParsesFile(t *testing.T) {
	file := writeSource(t, t.TempDir(), "loop.c", "while (x) y;\n")

	out, _, err := execute(t, file, "--format", "sexpr")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	want := "(block (label .TEMP0 (if x y (goto .TEMP1))) (goto .TEMP0) (label .TEMP1))\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestParseCommandFormats(t *testing.T) {
	file := writeSource(t, t.TempDir(), "sum.c", "int s = 0;\nfor (int i = 0; i < 3; i++) s += i;\n")

	for _, format := range formatter.Formats {
		t.Run(format, func(t *testing.T) {
			out, _, err := execute(t, "parse", file, "-f", format)
			if err != nil {
				t.Fatalf("parse -f %s error: %v", format, err)
			}
			if out == "" {
				t.Errorf("parse -f %s produced no output", format)
			}
		})
	}

	out, _, err := execute(t, "parse", file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "File: "+file) || !strings.Contains(out, "Labels: 2") {
		t.Errorf("default output should be the summary:\n%s", out)
	}

	if _, _, err := execute(t, "parse", file, "-f", "xml"); err == nil {
		t.Error("expected error for an unknown format")
	}
}

func TestParseErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := execute(t); err == nil {
		t.Error("expected error without a file argument")
	}
	if _, _, err := execute(t, "a.c", "b.c"); err == nil {
		t.Error("expected error with two file arguments")
	}
	if _, _, err := execute(t, filepath.Join(dir, "missing.c")); err == nil {
		t.Error("expected error for a missing file")
	}

	file := writeSource(t, dir, "bad.c", "break;\n")
	_, _, err := execute(t, file)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !errors.Is(err, parser.ErrLoopControl) {
		t.Errorf("error %v does not wrap ErrLoopControl", err)
	}
	if !strings.Contains(err.Error(), "failed to parse file") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestConfigAndFlags(t *testing.T) {
	dir := t.TempDir()
	file := writeSource(t, dir, "loop.c", "do x--; while (x);\n")
	writeSource(t, dir, ".smash.yaml", "format: sexpr\nlabel_prefix: L\n")

	out, _, err := execute(t, file)
	if err != nil {
		t.Fatal(err)
	}
	if want := "(block (label L0 (post-- x)) (if x (goto L0)) (label L1))\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}

	out, _, err = execute(t, file, "--label-prefix", ".B", "-f", "c")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, ".B0:\n") || !strings.Contains(out, "goto .B0;") {
		t.Errorf("flags should override the config file:\n%s", out)
	}

	other := writeSource(t, t.TempDir(), "other.yaml", "format: tree\n")
	out, _, err = execute(t, file, "--config", other)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "unit "+file) {
		t.Errorf("--config should select the file:\n%s", out)
	}
}

func TestVerboseLogging(t *testing.T) {
	file := writeSource(t, t.TempDir(), "loop.c", "while (1) break;\n")

	_, stderr, err := execute(t, file, "-v", "-f", "sexpr")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "smash: while loop lowered to .TEMP0/.TEMP1") {
		t.Errorf("missing parser log:\n%s", stderr)
	}

	_, stderr, err = execute(t, file, "-f", "sexpr")
	if err != nil {
		t.Fatal(err)
	}
	if stderr != "" {
		t.Errorf("expected no log output, got %q", stderr)
	}
}

func TestFormatCommand(t *testing.T) {
	file := writeSource(t, t.TempDir(), "loop.c", "while (i < 3) i++;\n")

	out, _, err := execute(t, "format", file)
	if err != nil {
		t.Fatal(err)
	}
	expectedParts := []string{"{\n", ".TEMP0:\n", "if (i < 3)", "i++;", "goto .TEMP1;", "goto .TEMP0;", ".TEMP1:\n"}
	for _, part := range expectedParts {
		if !strings.Contains(out, part) {
			t.Errorf("output missing %q:\n%s", part, out)
		}
	}
}

func TestExtractCommand(t *testing.T) {
	file := writeSource(t, t.TempDir(), "labels.c", "start: x = 1;\nwhile (x) x--;\n")

	out, _, err := execute(t, "extract", file, "start")
	if err != nil {
		t.Fatal(err)
	}
	if out != "start:\nx = 1;\n" {
		t.Errorf("got %q", out)
	}

	out, _, err = execute(t, "extract", file, ".TEMP0", "--sexpr", "--scope")
	if err != nil {
		t.Fatal(err)
	}
	if out != "(if x (post-- x) (goto .TEMP1))\n" {
		t.Errorf("got %q", out)
	}

	if _, _, err := execute(t, "extract", file, "nowhere"); err == nil {
		t.Error("expected error for a missing label")
	}
}

func TestTokensCommand(t *testing.T) {
	dir := t.TempDir()
	file := writeSource(t, dir, "tokens.c", "x += 0x1Au;\n")

	out, _, err := execute(t, "tokens", file)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 tokens, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "IDENTIFIER:x" || lines[4] != "EOF" {
		t.Errorf("unexpected tokens:\n%s", out)
	}

	out, _, err = execute(t, "tokens", file, "--json")
	if err != nil {
		t.Fatal(err)
	}
	var tokens []map[string]any
	if err := json.Unmarshal([]byte(out), &tokens); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(tokens) != 5 || tokens[2]["numberType"] != "unsigned int" || tokens[2]["value"] != "26" {
		t.Errorf("unexpected number token: %v", tokens)
	}

	bad := writeSource(t, dir, "bad.c", "x = `;\n")
	out, _, err = execute(t, "tokens", bad)
	if err == nil {
		t.Fatal("expected error for an invalid token")
	}
	if !strings.Contains(out, "INVALID:") {
		t.Errorf("the invalid token should still be printed:\n%s", out)
	}
}

func TestGrammarCommand(t *testing.T) {
	out, _, err := execute(t, "grammar")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "TranslationUnit = { Declaration | Statement } .") {
		t.Errorf("unexpected grammar output:\n%s", out)
	}

	out, _, err = execute(t, "grammar", "--tokens")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "while\n") || !strings.Contains(out, "<<=\n") {
		t.Errorf("unexpected token list:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "smash "+getVersionString()) || !strings.Contains(out, "Commit:") {
		t.Errorf("unexpected version output:\n%s", out)
	}
}

func TestReplSession(t *testing.T) {
	session := newReplSession(&options{format: formatter.FormatSExpr})

	incomplete := []string{"while (x) {", "x = (1 +", "int a,", "/* open", "do x++;"}
	for _, src := range incomplete {
		if !session.incomplete(src) {
			t.Errorf("%q should need more input", src)
		}
	}
	complete := []string{"", "x;", "while (x) { y; }", "break;", "x = @;"}
	for _, src := range complete {
		if session.incomplete(src) {
			t.Errorf("%q should be complete", src)
		}
	}

	out, err := session.eval("while (a) ;")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, ".TEMP0") {
		t.Errorf("unexpected output %q", out)
	}
	if _, err := session.eval("break;"); !errors.Is(err, parser.ErrLoopControl) {
		t.Errorf("expected ErrLoopControl, got %v", err)
	}
	out, err = session.eval("for (;;) ;")
	if err != nil {
		t.Fatal(err)
	}
	if want := "(block (label .TEMP2) (block) (goto .TEMP2) (label .TEMP3))\n"; out != want {
		t.Errorf("labels should continue across inputs: got %q, want %q", out, want)
	}
}

func TestReplCommands(t *testing.T) {
	session := newReplSession(&options{format: formatter.FormatSExpr})
	var out bytes.Buffer

	if session.command(":format tree", &out) || session.format != formatter.FormatTree {
		t.Errorf("format = %s, want tree", session.format)
	}
	if session.command(":format xml", &out) || session.format != formatter.FormatTree {
		t.Error("unknown formats should be rejected")
	}
	if !strings.Contains(out.String(), `unknown format "xml"`) {
		t.Errorf("unexpected output %q", out.String())
	}
	if session.command(":bogus", &out) {
		t.Error(":bogus should not end the session")
	}
	if !session.command(":quit", &out) {
		t.Error(":quit should end the session")
	}
}
