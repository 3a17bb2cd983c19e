package parser

import (
	"adaleph/internal/source"
	"adaleph/internal/token"
	"adaleph/internal/tree"
)

// parseIf: if C then S {elsif C then S} [else S] end if ;
// Ветки elsif становятся вложенными If в Else.
func (p *Parser) parseIf() (tree.Node, bool) {
	start := p.advance().Span // if
	defer p.enter("if statement", start)()

	cond, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwThen); !ok {
		return nil, false
	}
	then, ok := p.parseSequence(token.KwElsif, token.KwElse, token.KwEnd)
	if !ok {
		return nil, false
	}

	type branch struct {
		start source.Span
		cond  tree.Node
		stmts []tree.Node
	}
	var elsifs []branch
	for p.at(token.KwElsif) {
		bstart := p.advance().Span
		c, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.KwThen); !ok {
			return nil, false
		}
		stmts, ok := p.parseSequence(token.KwElsif, token.KwElse, token.KwEnd)
		if !ok {
			return nil, false
		}
		elsifs = append(elsifs, branch{start: bstart, cond: c, stmts: stmts})
	}

	var tail []tree.Node
	if p.eat(token.KwElse) {
		stmts, ok := p.parseSequence(token.KwEnd)
		if !ok {
			return nil, false
		}
		tail = stmts
	}
	lastBranch := p.lastSpan

	if !p.expectEnd(token.KwIf) || !p.expectSemicolon() {
		return nil, false
	}
	for i := len(elsifs) - 1; i >= 0; i-- {
		b := elsifs[i]
		tail = []tree.Node{&tree.If{
			Base: tree.Base{Span: b.start.Cover(lastBranch)},
			Cond: b.cond, Then: b.stmts, Else: tail,
		}}
	}
	return &tree.If{Base: tree.Base{Span: p.spanFrom(start)}, Cond: cond, Then: then, Else: tail}, true
}

// parseCase: case E is when choices => S {when choices => S} end case ;
func (p *Parser) parseCase() (tree.Node, bool) {
	start := p.advance().Span // case
	defer p.enter("case statement", start)()

	expr, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwIs); !ok {
		return nil, false
	}
	node := &tree.Case{Expr: expr}
	for {
		astart := p.peek().Span
		if _, ok := p.expect(token.KwWhen); !ok {
			return nil, false
		}
		choices, ok := p.parseChoices()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Arrow); !ok {
			return nil, false
		}
		stmts, ok := p.parseSequence(token.KwWhen, token.KwEnd)
		if !ok {
			return nil, false
		}
		node.Alts = append(node.Alts, &tree.CaseAlt{
			Base:    tree.Base{Span: p.spanFrom(astart)},
			Choices: choices, Stmts: stmts,
		})
		if !p.at(token.KwWhen) {
			break
		}
	}
	if !p.expectEnd(token.KwCase) || !p.expectSemicolon() {
		return nil, false
	}
	node.Span = p.spanFrom(start)
	return node, true
}

// parseLoop: [L :] [while C | for I in [reverse] R] loop S end loop [L] ;
func (p *Parser) parseLoop(label *tree.Ident, start source.Span) (tree.Node, bool) {
	what := "loop statement"
	if label != nil {
		what = "loop " + quoteName(label)
	}
	defer p.enter(what, start)()

	loop := &tree.Loop{Label: label}
	sstart := p.peek().Span
	switch {
	case p.at(token.KwWhile):
		p.advance()
		cond, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		loop.Scheme = &tree.WhileScheme{Base: tree.Base{Span: p.spanFrom(sstart)}, Cond: cond}
	case p.at(token.KwFor):
		p.advance()
		param, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.KwIn); !ok {
			return nil, false
		}
		reverse := p.eat(token.KwReverse)
		rng, ok := p.parseDiscreteRange()
		if !ok {
			return nil, false
		}
		loop.Scheme = &tree.ForScheme{
			Base:  tree.Base{Span: p.spanFrom(sstart)},
			Param: param, Reverse: reverse, Range: rng,
		}
	}
	if _, ok := p.expect(token.KwLoop); !ok {
		return nil, false
	}
	body, ok := p.parseSequence(token.KwEnd)
	if !ok {
		return nil, false
	}
	loop.Body = body
	if !p.expectEnd(token.KwLoop) || !p.parseEndLabel("loop", label) || !p.expectSemicolon() {
		return nil, false
	}
	loop.Span = p.spanFrom(start)
	return loop, true
}

// parseBlock: [L :] [declare D] begin S [exception H] end [L] ;
func (p *Parser) parseBlock(label *tree.Ident, start source.Span) (tree.Node, bool) {
	what := "block statement"
	if label != nil {
		what = "block " + quoteName(label)
	}
	defer p.enter(what, start)()

	block := &tree.Block{Label: label}
	if p.eat(token.KwDeclare) {
		decls, ok := p.parseDeclarativePart(token.KwBegin)
		if !ok {
			return nil, false
		}
		block.Decls = decls
	}
	if _, ok := p.expect(token.KwBegin); !ok {
		return nil, false
	}
	stmts, ok := p.parseSequence(token.KwEnd, token.KwException)
	if !ok {
		return nil, false
	}
	block.Stmts = stmts
	if p.at(token.KwException) {
		handlers, ok := p.parseHandlers()
		if !ok {
			return nil, false
		}
		block.Handlers = handlers
	}
	if _, ok := p.expect(token.KwEnd); !ok {
		return nil, false
	}
	if !p.parseEndLabel("block", label) || !p.expectSemicolon() {
		return nil, false
	}
	block.Span = p.spanFrom(start)
	return block, true
}

// expectEnd: end <kw>
func (p *Parser) expectEnd(kw token.Kind) bool {
	if _, ok := p.expect(token.KwEnd); !ok {
		return false
	}
	_, ok := p.expect(kw)
	return ok
}
