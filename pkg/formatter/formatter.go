// Package formatter renders syntax trees as text
package formatter

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"smash/pkg/ast"
)

// Output formats understood by Render
const (
	FormatSummary = "summary"
	FormatTree    = "tree"
	FormatSExpr   = "sexpr"
	FormatC       = "c"
	FormatDot     = "dot"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
)

// Formats lists every supported output format
var Formats = []string{FormatSummary, FormatTree, FormatSExpr, FormatC, FormatDot, FormatJSON, FormatYAML}

// Formatter handles tree rendering
type Formatter struct {
	indentSize int
	useSpaces  bool
}

// New creates a new formatter
func New() *Formatter {
	return &Formatter{
		indentSize: 4,
		useSpaces:  true,
	}
}

// WithTabs makes indentation use tabs instead of spaces
func (f *Formatter) WithTabs() *Formatter {
	f.useSpaces = false
	return f
}

// Render renders unit in the named format
func (f *Formatter) Render(unit *ast.Unit, format string) (string, error) {
	switch format {
	case FormatSummary:
		return f.GetSummary(unit), nil
	case FormatTree:
		return f.Tree(unit), nil
	case FormatSExpr:
		return f.SExprUnit(unit), nil
	case FormatC:
		return f.ReconstructCode(unit), nil
	case FormatDot:
		return f.Dot(unit), nil
	case FormatJSON:
		out, err := f.JSON(unit)
		return string(out), err
	case FormatYAML:
		out, err := f.YAML(unit)
		return string(out), err
	}
	return "", fmt.Errorf("unknown format %q (supported: %s)", format, strings.Join(Formats, ", "))
}

// getIndent returns the indentation string for the given depth
func (f *Formatter) getIndent(depth int) string {
	if f.useSpaces {
		return strings.Repeat(" ", depth*f.indentSize)
	}
	return strings.Repeat("\t", depth)
}

// FormatWithClang formats C source using clang-format
func (f *Formatter) FormatWithClang(code string) (string, error) {
	tmpFile, err := os.CreateTemp("", "smash-*.c")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())
	defer tmpFile.Close()

	if _, err := tmpFile.WriteString(code); err != nil {
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}
	tmpFile.Close()

	cmd := exec.Command("clang-format", tmpFile.Name())
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("clang-format failed: %w", err)
	}

	return string(output), nil
}

// GetSummary returns node statistics for a unit
func (f *Formatter) GetSummary(unit *ast.Unit) string {
	var result strings.Builder

	counts := unit.CountByKind()
	total := 0
	kinds := make([]ast.NodeKind, 0, len(counts))
	for kind, n := range counts {
		kinds = append(kinds, kind)
		total += n
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	result.WriteString(fmt.Sprintf("File: %s\n", unit.Filename))
	result.WriteString(fmt.Sprintf("Top-level nodes: %d\n", len(unit.Body)))
	result.WriteString(fmt.Sprintf("Total nodes: %d\n", total))
	for _, kind := range kinds {
		result.WriteString(fmt.Sprintf("  %-9s %d\n", kind.String()+":", counts[kind]))
	}

	labels := unit.Labels()
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.Name
	}
	if len(names) > 0 {
		result.WriteString(fmt.Sprintf("Labels: %d (%s)\n", len(names), strings.Join(names, ", ")))
	} else {
		result.WriteString("Labels: 0\n")
	}

	if missing := unit.UnresolvedGotos(); len(missing) > 0 {
		targets := make([]string, len(missing))
		for i, g := range missing {
			targets[i] = g.Label
		}
		result.WriteString(fmt.Sprintf("Unresolved gotos: %s\n", strings.Join(targets, ", ")))
	}

	return result.String()
}
