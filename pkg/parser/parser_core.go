// Package parser implements a recursive descent parser for C statements and
// expressions. Structured loops are lowered to labels, gotos and ifs while
// parsing.
package parser

import (
	"io"
	"log"
	"strings"

	"smash/pkg/ast"
	"smash/pkg/lexer"
)

// DefaultLabelPrefix starts every generated loop label
const DefaultLabelPrefix = ".TEMP"

type parseFunc func() (ast.Node, error)

// Parser holds the state of one parse session. Parsers are not safe for
// concurrent use; separate parsers share nothing.
type Parser struct {
	tokens      *tokenCache
	loops       []loopScope
	labelSeq    int
	labelPrefix string
	logger      *log.Logger

	expr  parseFunc // comma level
	logOr parseFunc
}

// Option configures a Parser
type Option func(*Parser)

// WithLabelPrefix sets the prefix of generated loop labels
func WithLabelPrefix(prefix string) Option {
	return func(p *Parser) {
		if prefix != "" {
			p.labelPrefix = prefix
		}
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a new parser
func New(opts ...Option) *Parser {
	p := &Parser{
		labelPrefix: DefaultLabelPrefix,
		logger:      log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.buildCascade()
	p.Reset(strings.NewReader(""))
	return p
}

// Reset starts a new session reading from r. Pending tokens and loop scopes
// are dropped; the label counter keeps running so labels stay unique across
// sessions of the same parser.
func (p *Parser) Reset(r io.Reader) {
	p.tokens = newTokenCache(r)
	p.loops = nil
}

// Parse parses a whole translation unit: declarations and statements up to
// end of input.
func (p *Parser) Parse(filename string, r io.Reader) (*ast.Unit, error) {
	p.Reset(r)
	unit := ast.NewUnit(filename)

	for {
		tok, err := p.tokens.peek()
		if err != nil {
			return nil, err
		}
		if tok.Type == lexer.TokenEOF {
			break
		}

		nodes, err := p.topLevel()
		if err != nil {
			return nil, err
		}
		unit.Add(nodes...)
	}

	p.logger.Printf("parsed %s: %d top-level nodes, %d labels generated", filename, len(unit.Body), p.labelSeq)
	return unit, nil
}

// ParseStatement parses exactly one statement from r. It returns nil for
// the empty statement.
func (p *Parser) ParseStatement(r io.Reader) (ast.Node, error) {
	p.Reset(r)
	n, err := p.statement()
	if err != nil {
		return nil, err
	}
	if err := p.atEnd(); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseExpression parses exactly one expression, commas included, from r.
func (p *Parser) ParseExpression(r io.Reader) (ast.Node, error) {
	p.Reset(r)
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.atEnd(); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseExpr parses src as a single expression with a fresh parser
func ParseExpr(src string) (ast.Node, error) {
	return New().ParseExpression(strings.NewReader(src))
}

// ParseStmt parses src as a single statement with a fresh parser
func ParseStmt(src string) (ast.Node, error) {
	return New().ParseStatement(strings.NewReader(src))
}

// topLevel parses one declaration or statement
func (p *Parser) topLevel() ([]ast.Node, error) {
	decl, err := p.isDecl()
	if err != nil {
		return nil, err
	}
	if decl {
		return p.declaration()
	}

	n, err := p.statement()
	if err != nil || n == nil {
		return nil, err
	}
	return []ast.Node{n}, nil
}

func (p *Parser) atEnd() error {
	tok, err := p.tokens.next()
	if err != nil {
		return err
	}
	if tok.Type != lexer.TokenEOF {
		return p.unexpected(tok, "end of input")
	}
	return nil
}
