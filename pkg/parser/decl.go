package parser

import (
	"smash/pkg/ast"
	"smash/pkg/lexer"
)

// declStart lists the keywords that can begin a declaration
var declStart = map[lexer.TokenType]bool{
	// storage class
	lexer.TokenTypedef:  true,
	lexer.TokenExtern:   true,
	lexer.TokenStatic:   true,
	lexer.TokenAuto:     true,
	lexer.TokenRegister: true,
	// type specifiers
	lexer.TokenVoid:     true,
	lexer.TokenChar:     true,
	lexer.TokenShort:    true,
	lexer.TokenInt:      true,
	lexer.TokenLong:     true,
	lexer.TokenFloat:    true,
	lexer.TokenDouble:   true,
	lexer.TokenSigned:   true,
	lexer.TokenUnsigned: true,
	lexer.TokenBool:     true,
	lexer.TokenComplex:  true,
	lexer.TokenStruct:   true,
	lexer.TokenUnion:    true,
	lexer.TokenEnum:     true,
	// qualifiers
	lexer.TokenConst:    true,
	lexer.TokenRestrict: true,
	lexer.TokenVolatile: true,
	// function specifier
	lexer.TokenInline: true,
}

// isDecl reports whether the next token starts a declaration
func (p *Parser) isDecl() (bool, error) {
	tok, err := p.tokens.peek()
	if err != nil {
		return false, err
	}
	return declStart[tok.Type], nil
}

// declSpec parses declaration specifiers. Only a lone int is supported.
func (p *Parser) declSpec() (*ast.Type, error) {
	tok, err := p.tokens.next()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.Type == lexer.TokenInt:
		return ast.NewType(ast.TypeInt), nil
	case declStart[tok.Type]:
		return nil, p.unimplemented("declaration specifier '" + tok.Type.String() + "'")
	}
	p.tokens.pushback(tok)
	return nil, p.missing("'int'")
}

// declaration parses a declaration through its ';' and returns one VarDecl
// per declarator.
func (p *Parser) declaration() ([]ast.Node, error) {
	t, err := p.declSpec()
	if err != nil {
		return nil, err
	}
	if ok, err := p.tokens.expect(lexer.TokenSemicolon); err != nil || ok {
		return nil, err
	}

	var decls []ast.Node
	for {
		d, err := p.initDeclarator(t)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)

		ok, err := p.tokens.expect(lexer.TokenComma)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	if err := p.require(lexer.TokenSemicolon, "';'"); err != nil {
		return nil, err
	}
	return decls, nil
}

func (p *Parser) initDeclarator(t *ast.Type) (ast.Node, error) {
	name, err := p.declarator()
	if err != nil {
		return nil, err
	}

	ty := *t
	var init ast.Node
	ok, err := p.tokens.expect(lexer.TokenEquals)
	if err != nil {
		return nil, err
	}
	if ok {
		if init, err = p.initializer(); err != nil {
			return nil, err
		}
	}
	return ast.NewVarDecl(name, &ty, init), nil
}

// declarator accepts a plain identifier. Pointer, array and function
// declarators are rejected.
func (p *Parser) declarator() (string, error) {
	tok, err := p.tokens.next()
	if err != nil {
		return "", err
	}
	switch tok.Type {
	case lexer.TokenStar:
		return "", p.unimplemented("pointer declarator")
	case lexer.TokenLeftParen:
		return "", p.unimplemented("parenthesized declarator")
	case lexer.TokenIdentifier:
	default:
		p.tokens.pushback(tok)
		return "", p.missing("identifier")
	}

	next, err := p.tokens.peek()
	if err != nil {
		return "", err
	}
	switch next.Type {
	case lexer.TokenLeftBracket:
		return "", p.unimplemented("array declarator")
	case lexer.TokenLeftParen:
		return "", p.unimplemented("function declarator")
	}
	return tok.Value, nil
}

func (p *Parser) initializer() (ast.Node, error) {
	ok, err := p.tokens.expect(lexer.TokenLeftBrace)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, p.unimplemented("braced initializer")
	}
	return p.assignExpr()
}
