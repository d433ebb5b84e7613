package parser

import (
	"fmt"

	"smash/pkg/lexer"
)

// require consumes a token of type tt or fails with a missing-token error
// naming what.
func (p *Parser) require(tt lexer.TokenType, what string) error {
	ok, err := p.tokens.expect(tt)
	if err != nil {
		return err
	}
	if !ok {
		return p.missing(what)
	}
	return nil
}

// match consumes the next token if its type is one of types and reports
// which one matched.
func (p *Parser) match(types ...lexer.TokenType) (lexer.TokenType, bool, error) {
	tok, err := p.tokens.next()
	if err != nil {
		return 0, false, err
	}
	for _, tt := range types {
		if tok.Type == tt {
			return tt, true, nil
		}
	}
	p.tokens.pushback(tok)
	return 0, false, nil
}

// identifier consumes an identifier and returns its name
func (p *Parser) identifier() (string, error) {
	tok, err := p.tokens.next()
	if err != nil {
		return "", err
	}
	if tok.Type != lexer.TokenIdentifier {
		p.tokens.pushback(tok)
		return "", p.missing("identifier")
	}
	return tok.Value, nil
}

// missing reports that what was expected next. Running out of input is
// reported as ErrUnexpectedEOF so interactive callers can ask for more.
func (p *Parser) missing(what string) error {
	tok, err := p.tokens.peek()
	if err != nil {
		return err
	}
	if tok.Type == lexer.TokenEOF {
		return p.unexpectedEOF(what)
	}
	return grammarError(ErrMissing, "missing %s before %s", what, describe(tok))
}

func (p *Parser) unexpected(tok lexer.Token, what string) error {
	if tok.Type == lexer.TokenEOF {
		return p.unexpectedEOF(what)
	}
	return grammarError(ErrUnexpected, "unexpected %s, expected %s", describe(tok), what)
}

func (p *Parser) unexpectedEOF(what string) error {
	return grammarError(ErrUnexpectedEOF, "unexpected end of input, expected %s", what)
}

func (p *Parser) unimplemented(what string) error {
	return grammarError(ErrUnimplemented, "%s is not supported", what)
}

// describe renders a token for diagnostics
func describe(tok lexer.Token) string {
	switch tok.Type {
	case lexer.TokenEOF:
		return "end of input"
	case lexer.TokenIdentifier:
		return fmt.Sprintf("identifier %q", tok.Value)
	case lexer.TokenNumber:
		return fmt.Sprintf("number %s", tok.Value)
	case lexer.TokenString:
		return fmt.Sprintf("string %s", tok.Value)
	case lexer.TokenCharLiteral:
		return fmt.Sprintf("character %s", tok.Value)
	}
	return fmt.Sprintf("'%s'", tok.Type)
}
