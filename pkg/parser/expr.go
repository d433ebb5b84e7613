package parser

import (
	"smash/pkg/ast"
	"smash/pkg/lexer"
)

var assignOps = []lexer.TokenType{
	lexer.TokenEquals,
	lexer.TokenStarEquals, lexer.TokenSlashEquals, lexer.TokenPercentEquals,
	lexer.TokenPlusEquals, lexer.TokenMinusEquals,
	lexer.TokenLeftShiftEquals, lexer.TokenRightShiftEquals,
	lexer.TokenAmpEquals, lexer.TokenCaretEquals, lexer.TokenPipeEquals,
}

// prefixOps are the unary operators taking a cast-expression operand
var prefixOps = map[lexer.TokenType]ast.UnaryOp{
	lexer.TokenAmpersand:   ast.OpAddr,
	lexer.TokenStar:        ast.OpDeref,
	lexer.TokenPlus:        ast.OpPlus,
	lexer.TokenMinus:       ast.OpMinus,
	lexer.TokenTilde:       ast.OpBitNot,
	lexer.TokenExclamation: ast.OpNot,
}

// buildCascade wires the binary precedence levels, tightest first.
func (p *Parser) buildCascade() {
	mul := p.binaryLevel(p.castExpr, lexer.TokenStar, lexer.TokenSlash, lexer.TokenPercent)
	add := p.binaryLevel(mul, lexer.TokenPlus, lexer.TokenMinus)
	shift := p.binaryLevel(add, lexer.TokenLeftShift, lexer.TokenRightShift)
	rel := p.binaryLevel(shift, lexer.TokenLess, lexer.TokenGreater, lexer.TokenLessEqual, lexer.TokenGreaterEqual)
	eq := p.binaryLevel(rel, lexer.TokenDoubleEquals, lexer.TokenNotEquals)
	and := p.binaryLevel(eq, lexer.TokenAmpersand)
	xor := p.binaryLevel(and, lexer.TokenCaret)
	or := p.binaryLevel(xor, lexer.TokenPipe)
	logAnd := p.binaryLevel(or, lexer.TokenDoubleAmp)
	p.logOr = p.binaryLevel(logAnd, lexer.TokenDoublePipe)
	p.expr = p.binaryLevel(p.assignExpr, lexer.TokenComma)
}

// binaryLevel returns a left-associative parser for ops whose operands are
// parsed by next.
func (p *Parser) binaryLevel(next parseFunc, ops ...lexer.TokenType) parseFunc {
	return func() (ast.Node, error) {
		left, err := next()
		if err != nil {
			return nil, err
		}
		for {
			op, ok, err := p.match(ops...)
			if err != nil {
				return nil, err
			}
			if !ok {
				return left, nil
			}
			right, err := next()
			if err != nil {
				return nil, err
			}
			left = ast.NewBinary(op, left, right)
		}
	}
}

// assignExpr parses assignments, which group right to left.
func (p *Parser) assignExpr() (ast.Node, error) {
	left, err := p.condExpr()
	if err != nil {
		return nil, err
	}

	op, ok, err := p.match(assignOps...)
	if err != nil || !ok {
		return left, err
	}
	right, err := p.assignExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(op, left, right), nil
}

func (p *Parser) condExpr() (ast.Node, error) {
	cond, err := p.logOr()
	if err != nil {
		return nil, err
	}

	ok, err := p.tokens.expect(lexer.TokenQuestion)
	if err != nil || !ok {
		return cond, err
	}
	then, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.require(lexer.TokenColon, "':'"); err != nil {
		return nil, err
	}
	els, err := p.condExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewTernary(cond, then, els), nil
}

// castExpr parses (type-name) cast-expression. Only type names the
// declaration specifier parser accepts are recognized.
func (p *Parser) castExpr() (ast.Node, error) {
	tok, err := p.tokens.next()
	if err != nil {
		return nil, err
	}
	if tok.Type == lexer.TokenLeftParen {
		decl, err := p.isDecl()
		if err != nil {
			return nil, err
		}
		if decl {
			to, err := p.declSpec()
			if err != nil {
				return nil, err
			}
			if err := p.require(lexer.TokenRightParen, "')'"); err != nil {
				return nil, err
			}
			if ok, err := p.tokens.expect(lexer.TokenLeftBrace); err != nil {
				return nil, err
			} else if ok {
				return nil, p.unimplemented("compound literal")
			}
			x, err := p.castExpr()
			if err != nil {
				return nil, err
			}
			return ast.NewCast(to, x), nil
		}
	}
	p.tokens.pushback(tok)
	return p.unaryExpr()
}

func (p *Parser) unaryExpr() (ast.Node, error) {
	tok, err := p.tokens.next()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case lexer.TokenPlusPlus, lexer.TokenMinusMinus:
		x, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}
		op := ast.OpPreInc
		if tok.Type == lexer.TokenMinusMinus {
			op = ast.OpPreDec
		}
		return ast.NewUnary(op, x), nil
	case lexer.TokenSizeof:
		return nil, p.unimplemented("sizeof")
	}

	if op, ok := prefixOps[tok.Type]; ok {
		x, err := p.castExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(op, x), nil
	}

	p.tokens.pushback(tok)
	return p.postfixExpr()
}

func (p *Parser) postfixExpr() (ast.Node, error) {
	x, err := p.primaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.tokens.next()
		if err != nil {
			return nil, err
		}

		switch tok.Type {
		case lexer.TokenLeftBracket:
			// a[b] is *(a + b)
			index, err := p.expr()
			if err != nil {
				return nil, err
			}
			if err := p.require(lexer.TokenRightBracket, "']'"); err != nil {
				return nil, err
			}
			x = ast.NewUnary(ast.OpDeref, ast.NewBinary(lexer.TokenPlus, x, index))
		case lexer.TokenLeftParen:
			args, err := p.arguments()
			if err != nil {
				return nil, err
			}
			x = ast.NewCall(x, args)
		case lexer.TokenDot:
			name, err := p.identifier()
			if err != nil {
				return nil, err
			}
			x = ast.NewMember(x, name)
		case lexer.TokenArrow:
			// a->b is (*a).b
			name, err := p.identifier()
			if err != nil {
				return nil, err
			}
			x = ast.NewMember(ast.NewUnary(ast.OpDeref, x), name)
		case lexer.TokenPlusPlus:
			x = ast.NewUnary(ast.OpPostInc, x)
		case lexer.TokenMinusMinus:
			x = ast.NewUnary(ast.OpPostDec, x)
		default:
			p.tokens.pushback(tok)
			return x, nil
		}
	}
}

// arguments parses a call's argument list after the opening parenthesis
func (p *Parser) arguments() ([]ast.Node, error) {
	args := []ast.Node{}
	if ok, err := p.tokens.expect(lexer.TokenRightParen); err != nil || ok {
		return args, err
	}

	for {
		arg, err := p.assignExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		ok, err := p.tokens.expect(lexer.TokenComma)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	if err := p.require(lexer.TokenRightParen, "')'"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) primaryExpr() (ast.Node, error) {
	tok, err := p.tokens.next()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case lexer.TokenIdentifier:
		return ast.NewIdent(tok.Value), nil
	case lexer.TokenNumber:
		return ast.NewNumber(tok.Value, tok.Number), nil
	case lexer.TokenCharLiteral:
		return ast.NewChar(tok.Value), nil
	case lexer.TokenString:
		return ast.NewString(tok.Value), nil
	case lexer.TokenLeftParen:
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.require(lexer.TokenRightParen, "')'"); err != nil {
			return nil, err
		}
		return x, nil
	}
	return nil, p.unexpected(tok, "expression")
}
