package lexer

import "errors"

// Lexical error classes carried by invalid tokens.
var (
	ErrUnexpectedChar      = errors.New("unexpected character")
	ErrUnterminatedLiteral = errors.New("unterminated literal")
	ErrUnterminatedComment = errors.New("unterminated block comment")
	ErrMalformedNumber     = errors.New("malformed numeric literal")
	ErrRead                = errors.New("read error")
)
