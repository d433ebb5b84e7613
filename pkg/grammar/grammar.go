// Package grammar holds the reference grammar of the accepted language in
// EBNF and checks it with golang.org/x/exp/ebnf.
package grammar

import (
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Start is the production a translation unit is parsed from
const Start = "TranslationUnit"

const filename = "smash.ebnf"

//go:embed smash.ebnf
var source string

// Source returns the grammar text as written
func Source() string {
	return source
}

// Parse parses the embedded grammar without verifying it
func Parse() (ebnf.Grammar, error) {
	return ebnf.Parse(filename, strings.NewReader(source))
}

// Load parses the embedded grammar and verifies that every production is
// defined and reachable from Start.
func Load() (ebnf.Grammar, error) {
	g, err := Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, fmt.Errorf("invalid grammar: %w", err)
	}
	return g, nil
}

// Productions returns production names in source order
func Productions(g ebnf.Grammar) []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return g[names[i]].Pos().Offset < g[names[j]].Pos().Offset
	})
	return names
}

// IsLexical reports whether name denotes a lexical production
func IsLexical(name string) bool {
	return name != "" && name[0] >= 'a' && name[0] <= 'z'
}

// Tokens returns the distinct literal tokens used by the syntactic
// productions, sorted.
func Tokens(g ebnf.Grammar) []string {
	seen := map[string]bool{}
	var visit func(e ebnf.Expression)
	visit = func(e ebnf.Expression) {
		switch x := e.(type) {
		case ebnf.Sequence:
			for _, v := range x {
				visit(v)
			}
		case ebnf.Alternative:
			for _, v := range x {
				visit(v)
			}
		case *ebnf.Token:
			seen[x.String] = true
		case *ebnf.Option:
			visit(x.Body)
		case *ebnf.Group:
			visit(x.Body)
		case *ebnf.Repetition:
			visit(x.Body)
		}
	}
	for name, p := range g {
		if !IsLexical(name) {
			visit(p.Expr)
		}
	}

	tokens := make([]string, 0, len(seen))
	for tok := range seen {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	return tokens
}

// Print writes g in normalized form, one production per line in source
// order. The output parses back to an equivalent grammar.
func Print(w io.Writer, g ebnf.Grammar) {
	for _, name := range Productions(g) {
		p := g[name]
		fmt.Fprintf(w, "%s = ", p.Name.String)
		if p.Expr != nil {
			printExpression(w, p.Expr)
		}
		fmt.Fprintf(w, " .\n")
	}
}

func printExpression(w io.Writer, e ebnf.Expression) {
	switch x := e.(type) {
	case ebnf.Sequence:
		for i, v := range x {
			if i != 0 {
				fmt.Fprintf(w, " ")
			}
			printExpression(w, v)
		}
	case *ebnf.Name:
		fmt.Fprintf(w, "%s", x.String)
	case *ebnf.Token:
		fmt.Fprintf(w, "%q", x.String)
	case *ebnf.Option:
		fmt.Fprintf(w, "[ ")
		printExpression(w, x.Body)
		fmt.Fprintf(w, " ]")
	case *ebnf.Group:
		fmt.Fprintf(w, "( ")
		printExpression(w, x.Body)
		fmt.Fprintf(w, " )")
	case ebnf.Alternative:
		for i, v := range x {
			if i != 0 {
				fmt.Fprintf(w, " | ")
			}
			printExpression(w, v)
		}
	case *ebnf.Repetition:
		fmt.Fprintf(w, "{ ")
		printExpression(w, x.Body)
		fmt.Fprintf(w, " }")
	case *ebnf.Range:
		printExpression(w, x.Begin)
		fmt.Fprintf(w, " … ")
		printExpression(w, x.End)
	case nil:
		// empty production
	}
}
