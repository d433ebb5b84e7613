package parser

import (
	"io"

	"smash/pkg/lexer"
)

// tokenCache gives the parser unlimited token lookahead. Tokens pushed back
// are returned before any new token is read, last pushed first.
type tokenCache struct {
	tokenizer *lexer.Tokenizer
	pending   []lexer.Token
}

func newTokenCache(r io.Reader) *tokenCache {
	return &tokenCache{
		tokenizer: lexer.NewTokenizer(lexer.NewSource(r)),
	}
}

// next returns the next token. Invalid tokens come back as errors.
func (tc *tokenCache) next() (lexer.Token, error) {
	if n := len(tc.pending); n > 0 {
		tok := tc.pending[n-1]
		tc.pending = tc.pending[:n-1]
		return tok, nil
	}

	tok := tc.tokenizer.Next()
	if tok.Type == lexer.TokenInvalid {
		return tok, lexError(tok)
	}
	return tok, nil
}

func (tc *tokenCache) pushback(tok lexer.Token) {
	tc.pending = append(tc.pending, tok)
}

func (tc *tokenCache) peek() (lexer.Token, error) {
	tok, err := tc.next()
	if err != nil {
		return tok, err
	}
	tc.pushback(tok)
	return tok, nil
}

// expect consumes the next token if it has type tt
func (tc *tokenCache) expect(tt lexer.TokenType) (bool, error) {
	tok, err := tc.next()
	if err != nil {
		return false, err
	}
	if tok.Type == tt {
		return true, nil
	}
	tc.pushback(tok)
	return false, nil
}

// buffered returns how many tokens are waiting to be re-delivered
func (tc *tokenCache) buffered() int {
	return len(tc.pending)
}
