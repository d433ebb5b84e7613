package parser

import (
	"errors"
	"fmt"

	"smash/pkg/lexer"
)

// ErrorKind classifies parse failures
type ErrorKind int

const (
	KindLexical     ErrorKind = iota // malformed literal or comment
	KindGrammar                      // token sequence not allowed by the grammar
	KindTokenStream                  // character that starts no token
	KindIO                           // failure reading the input
)

func (k ErrorKind) String() string {
	switch k {
	case KindLexical:
		return "lexical"
	case KindGrammar:
		return "grammar"
	case KindTokenStream:
		return "token stream"
	case KindIO:
		return "I/O"
	default:
		return "unknown"
	}
}

// Causes reported through Error.Unwrap.
var (
	ErrMissing       = errors.New("missing expected token")
	ErrUnexpected    = errors.New("unexpected token")
	ErrLoopControl   = errors.New("loop control outside of a loop")
	ErrUnimplemented = errors.New("not implemented")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// Error is returned by every parsing operation. Parsing stops at the first
// one.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func lexError(tok lexer.Token) *Error {
	kind := KindLexical
	switch {
	case errors.Is(tok.Err, lexer.ErrUnexpectedChar):
		kind = KindTokenStream
	case errors.Is(tok.Err, lexer.ErrRead):
		kind = KindIO
	}
	return &Error{Kind: kind, Msg: tok.Value, Err: tok.Err}
}

func grammarError(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindGrammar, Msg: fmt.Sprintf(format, args...), Err: cause}
}
