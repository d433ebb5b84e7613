package parser

import (
	"fmt"

	"smash/pkg/ast"
)

// loopScope holds the jump targets of one enclosing loop
type loopScope struct {
	continueLabel string
	breakLabel    string
}

// newLabel generates a label name unique within this parser
func (p *Parser) newLabel() string {
	label := fmt.Sprintf("%s%d", p.labelPrefix, p.labelSeq)
	p.labelSeq++
	return label
}

// enterLoop makes start and end the targets of continue and break
func (p *Parser) enterLoop(start, end string) {
	p.loops = append(p.loops, loopScope{continueLabel: start, breakLabel: end})
}

// exitLoop restores the targets of the enclosing loop
func (p *Parser) exitLoop() {
	if len(p.loops) > 0 {
		p.loops = p.loops[:len(p.loops)-1]
	}
}

// currentLoop returns the innermost loop, if any
func (p *Parser) currentLoop() (loopScope, bool) {
	if len(p.loops) == 0 {
		return loopScope{}, false
	}
	return p.loops[len(p.loops)-1], true
}

// loopBody parses a loop body with start and end as its jump targets. An
// empty body becomes an empty compound.
func (p *Parser) loopBody(start, end string) (ast.Node, error) {
	p.enterLoop(start, end)
	defer p.exitLoop()

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return orEmpty(body), nil
}

func orEmpty(n ast.Node) ast.Node {
	if n == nil {
		return ast.NewCompound(nil)
	}
	return n
}
