package parser

import (
	"errors"
	"strings"
	"testing"

	"smash/pkg/lexer"
)

func TestGrammarErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		cause error
		msg   string
	}{
		{"break outside loop", "break;", ErrLoopControl, "grammar error: break statement not within a loop"},
		{"continue outside loop", "{ continue; }", ErrLoopControl, "continue statement not within a loop"},
		{"switch", "switch (x) {}", ErrUnimplemented, "'switch' statement is not supported"},
		{"case", "case 1: ;", ErrUnimplemented, "'case' statement is not supported"},
		{"sizeof", "sizeof x;", ErrUnimplemented, "sizeof is not supported"},
		{"compound literal", "(int){1};", ErrUnimplemented, "compound literal is not supported"},
		{"missing paren", "while x) y;", ErrMissing, `missing '(' before identifier "x"`},
		{"unclosed call", "f(a;", ErrMissing, "missing ')' before ';'"},
		{"missing colon", "a ? b c;", ErrMissing, `missing ':' before identifier "c"`},
		{"missing while", "do x; until (y);", ErrMissing, `missing 'while' before identifier "until"`},
		{"goto number", "goto 3;", ErrMissing, "missing identifier before number 3"},
		{"member without name", "s.;", ErrMissing, "missing identifier before ';'"},
		{"stray paren", ");", ErrUnexpected, "unexpected ')', expected expression"},
		{"keyword in expression", "x = while;", ErrUnexpected, "unexpected 'while', expected expression"},
		{"missing semicolon", "x", ErrUnexpectedEOF, "unexpected end of input, expected ';'"},
		{"loop without body", "while (x)", ErrUnexpectedEOF, "expected statement"},
		{"open block", "{ a;", ErrUnexpectedEOF, "expected statement"},
		{"empty input", "", ErrUnexpectedEOF, "expected statement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStmt(tt.input)
			if err == nil {
				t.Fatalf("ParseStmt(%q) succeeded, expected error", tt.input)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("error %v does not wrap %v", err, tt.cause)
			}
			var perr *Error
			if !errors.As(err, &perr) || perr.Kind != KindGrammar {
				t.Errorf("expected grammar error, got %#v", err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestDeclarationErrors(t *testing.T) {
	tests := []struct {
		input string
		cause error
		msg   string
	}{
		{"int *p;", ErrUnimplemented, "pointer declarator is not supported"},
		{"int (p);", ErrUnimplemented, "parenthesized declarator is not supported"},
		{"int a[3];", ErrUnimplemented, "array declarator is not supported"},
		{"int f(void);", ErrUnimplemented, "function declarator is not supported"},
		{"int a = {1};", ErrUnimplemented, "braced initializer is not supported"},
		{"char c;", ErrUnimplemented, "declaration specifier 'char' is not supported"},
		{"static int x;", ErrUnimplemented, "declaration specifier 'static' is not supported"},
		{"int 3;", ErrMissing, "missing identifier before number 3"},
		{"int a b;", ErrMissing, `missing ';' before identifier "b"`},
		{"int a,", ErrUnexpectedEOF, "expected identifier"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := New().Parse("decl.c", strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, expected error", tt.input)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("error %v does not wrap %v", err, tt.cause)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestTrailingInput(t *testing.T) {
	_, err := ParseExpr("a b")
	if !errors.Is(err, ErrUnexpected) {
		t.Fatalf("expected ErrUnexpected, got %v", err)
	}
	if want := `unexpected identifier "b", expected end of input`; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not contain %q", err.Error(), want)
	}

	if _, err := ParseStmt("a; b;"); !errors.Is(err, ErrUnexpected) {
		t.Errorf("expected ErrUnexpected for a second statement, got %v", err)
	}
	if _, err := ParseExpr("a +"); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestLexicalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
		cause error
	}{
		{"stray character", "a @ b;", KindTokenStream, lexer.ErrUnexpectedChar},
		{"unterminated string", `x = "abc;`, KindLexical, lexer.ErrUnterminatedLiteral},
		{"unterminated char", "x = 'a", KindLexical, lexer.ErrUnterminatedLiteral},
		{"unterminated comment", "x; /* never closed", KindLexical, lexer.ErrUnterminatedComment},
		{"empty hex", "x = 0x;", KindLexical, lexer.ErrMalformedNumber},
		{"bad octal", "x = 019;", KindLexical, lexer.ErrMalformedNumber},
		{"empty exponent", "x = 1e+;", KindLexical, lexer.ErrMalformedNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Parse("lex.c", strings.NewReader(tt.input))
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("expected *Error, got %#v", err)
			}
			if perr.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", perr.Kind, tt.kind)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("error %v does not wrap %v", err, tt.cause)
			}
			if !strings.HasPrefix(err.Error(), tt.kind.String()+" error: ") {
				t.Errorf("unexpected message %q", err.Error())
			}
		})
	}
}

func TestReadError(t *testing.T) {
	_, err := New().Parse("broken.c", failingReader{})
	var perr *Error
	if !errors.As(err, &perr) || perr.Kind != KindIO {
		t.Fatalf("expected I/O error, got %#v", err)
	}
	if !errors.Is(err, lexer.ErrRead) {
		t.Errorf("error %v does not wrap lexer.ErrRead", err)
	}
}

func TestErrorKindString(t *testing.T) {
	kinds := map[ErrorKind]string{
		KindLexical:     "lexical",
		KindGrammar:     "grammar",
		KindTokenStream: "token stream",
		KindIO:          "I/O",
		ErrorKind(42):   "unknown",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
