package parser

import (
	"smash/pkg/ast"
	"smash/pkg/lexer"
)

// statement parses one statement. The empty statement yields a nil node.
func (p *Parser) statement() (ast.Node, error) {
	tok, err := p.tokens.next()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case lexer.TokenCase, lexer.TokenDefault, lexer.TokenSwitch:
		return nil, p.unimplemented("'" + tok.Type.String() + "' statement")
	case lexer.TokenLeftBrace:
		return p.compoundStmt()
	case lexer.TokenIf:
		return p.ifStmt()
	case lexer.TokenWhile:
		return p.whileStmt()
	case lexer.TokenDo:
		return p.doStmt()
	case lexer.TokenFor:
		return p.forStmt()
	case lexer.TokenGoto:
		return p.gotoStmt()
	case lexer.TokenContinue:
		return p.jumpStmt("continue", func(l loopScope) string { return l.continueLabel })
	case lexer.TokenBreak:
		return p.jumpStmt("break", func(l loopScope) string { return l.breakLabel })
	case lexer.TokenReturn:
		return p.returnStmt()
	case lexer.TokenSemicolon:
		return nil, nil
	case lexer.TokenEOF:
		return nil, p.unexpectedEOF("statement")
	case lexer.TokenIdentifier:
		// name: statement
		next, err := p.tokens.peek()
		if err != nil {
			return nil, err
		}
		if next.Type == lexer.TokenColon {
			p.tokens.next()
			stmt, err := p.statement()
			if err != nil {
				return nil, err
			}
			return ast.NewLabel(tok.Value, stmt), nil
		}
	}

	p.tokens.pushback(tok)
	return p.exprStmt()
}

func (p *Parser) exprStmt() (ast.Node, error) {
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.require(lexer.TokenSemicolon, "';'"); err != nil {
		return nil, err
	}
	return x, nil
}

// compoundStmt parses the rest of a block after '{'. Declarations expand in
// place; empty statements are dropped.
func (p *Parser) compoundStmt() (ast.Node, error) {
	stmts := []ast.Node{}
	for {
		ok, err := p.tokens.expect(lexer.TokenRightBrace)
		if err != nil {
			return nil, err
		}
		if ok {
			return ast.NewCompound(stmts), nil
		}

		nodes, err := p.topLevel()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, nodes...)
	}
}

// condition parses '(' expression ')'
func (p *Parser) condition() (ast.Node, error) {
	if err := p.require(lexer.TokenLeftParen, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.require(lexer.TokenRightParen, "')'"); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *Parser) ifStmt() (ast.Node, error) {
	cond, err := p.condition()
	if err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	var els ast.Node
	ok, err := p.tokens.expect(lexer.TokenElse)
	if err != nil {
		return nil, err
	}
	if ok {
		if els, err = p.statement(); err != nil {
			return nil, err
		}
	}
	return ast.NewIf(cond, orEmpty(then), els), nil
}

// whileStmt lowers
//
//	while (cond) body
//
// to
//
//	{ start: if (cond) body; else goto end; goto start; end: }
func (p *Parser) whileStmt() (ast.Node, error) {
	start, end := p.newLabel(), p.newLabel()

	cond, err := p.condition()
	if err != nil {
		return nil, err
	}
	body, err := p.loopBody(start, end)
	if err != nil {
		return nil, err
	}

	p.logger.Printf("while loop lowered to %s/%s", start, end)
	return ast.NewCompound([]ast.Node{
		ast.NewLabel(start, ast.NewIf(cond, body, ast.NewGoto(end))),
		ast.NewGoto(start),
		ast.NewLabel(end, nil),
	}), nil
}

// doStmt lowers
//
//	do body while (cond);
//
// to
//
//	{ start: body; if (cond) goto start; end: }
func (p *Parser) doStmt() (ast.Node, error) {
	start, end := p.newLabel(), p.newLabel()

	body, err := p.loopBody(start, end)
	if err != nil {
		return nil, err
	}
	if err := p.require(lexer.TokenWhile, "'while'"); err != nil {
		return nil, err
	}
	cond, err := p.condition()
	if err != nil {
		return nil, err
	}
	if err := p.require(lexer.TokenSemicolon, "';'"); err != nil {
		return nil, err
	}

	p.logger.Printf("do loop lowered to %s/%s", start, end)
	return ast.NewCompound([]ast.Node{
		ast.NewLabel(start, body),
		ast.NewIf(cond, ast.NewGoto(start), nil),
		ast.NewLabel(end, nil),
	}), nil
}

// forStmt lowers
//
//	for (init; cond; step) body
//
// to
//
//	{ init; start: ; if (cond) body; else goto end; step; goto start; end: }
//
// Missing clauses are left out; without a condition the body runs
// unconditionally. The init clause may also be a declaration.
func (p *Parser) forStmt() (ast.Node, error) {
	start, end := p.newLabel(), p.newLabel()

	if err := p.require(lexer.TokenLeftParen, "'('"); err != nil {
		return nil, err
	}
	init, err := p.forInit()
	if err != nil {
		return nil, err
	}
	cond, err := p.optionalExpr(lexer.TokenSemicolon, "';'")
	if err != nil {
		return nil, err
	}
	step, err := p.optionalExpr(lexer.TokenRightParen, "')'")
	if err != nil {
		return nil, err
	}
	body, err := p.loopBody(start, end)
	if err != nil {
		return nil, err
	}

	stmts := append([]ast.Node{}, init...)
	stmts = append(stmts, ast.NewLabel(start, nil))
	if cond != nil {
		stmts = append(stmts, ast.NewIf(cond, body, ast.NewGoto(end)))
	} else {
		stmts = append(stmts, body)
	}
	if step != nil {
		stmts = append(stmts, step)
	}
	stmts = append(stmts, ast.NewGoto(start), ast.NewLabel(end, nil))

	p.logger.Printf("for loop lowered to %s/%s", start, end)
	return ast.NewCompound(stmts), nil
}

func (p *Parser) forInit() ([]ast.Node, error) {
	decl, err := p.isDecl()
	if err != nil {
		return nil, err
	}
	if decl {
		return p.declaration()
	}

	x, err := p.optionalExpr(lexer.TokenSemicolon, "';'")
	if err != nil || x == nil {
		return nil, err
	}
	return []ast.Node{x}, nil
}

// optionalExpr parses an optional expression terminated by term
func (p *Parser) optionalExpr(term lexer.TokenType, what string) (ast.Node, error) {
	ok, err := p.tokens.expect(term)
	if err != nil || ok {
		return nil, err
	}
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.require(term, what); err != nil {
		return nil, err
	}
	return x, nil
}

func (p *Parser) gotoStmt() (ast.Node, error) {
	label, err := p.identifier()
	if err != nil {
		return nil, err
	}
	if err := p.require(lexer.TokenSemicolon, "';'"); err != nil {
		return nil, err
	}
	return ast.NewGoto(label), nil
}

// jumpStmt turns continue or break into a goto to the innermost loop's
// label chosen by target.
func (p *Parser) jumpStmt(keyword string, target func(loopScope) string) (ast.Node, error) {
	if err := p.require(lexer.TokenSemicolon, "';'"); err != nil {
		return nil, err
	}
	loop, ok := p.currentLoop()
	if !ok {
		return nil, grammarError(ErrLoopControl, "%s statement not within a loop", keyword)
	}
	return ast.NewGoto(target(loop)), nil
}

func (p *Parser) returnStmt() (ast.Node, error) {
	x, err := p.optionalExpr(lexer.TokenSemicolon, "';'")
	if err != nil {
		return nil, err
	}
	return ast.NewReturn(x), nil
}
