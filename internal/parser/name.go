package parser

import (
	"adaleph/internal/diag"
	"adaleph/internal/lexer"
	"adaleph/internal/source"
	"adaleph/internal/token"
	"adaleph/internal/tree"
)

// parseName: direct_name {. selector | .all | (assocs) | 'attribute [(args)] | '(expr)}
func (p *Parser) parseName() (tree.Node, bool) {
	start := p.peek().Span
	id, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	var name tree.Node = id
	for {
		switch {
		case p.at(token.Dot):
			p.advance()
			if name, ok = p.parseSelector(start, name); !ok {
				return nil, false
			}
		case p.at(token.LParen):
			args, ok := p.parseActuals()
			if !ok {
				return nil, false
			}
			name = &tree.Call{Base: tree.Base{Span: p.spanFrom(start)}, Name: name, Args: args}
		case p.at(token.Tick):
			p.advance()
			if name, ok = p.parseTickSuffix(start, name); !ok {
				return nil, false
			}
		default:
			return name, true
		}
	}
}

// parseSelector разбирает то, что идёт после точки.
func (p *Parser) parseSelector(start source.Span, prefix tree.Node) (tree.Node, bool) {
	tok := p.peek()
	switch {
	case p.at(token.KwAll):
		p.advance()
		return &tree.Deref{Base: tree.Base{Span: p.spanFrom(start)}, Prefix: prefix}, true
	case p.at(token.Ident):
		p.advance()
		return &tree.Selected{Base: tree.Base{Span: p.spanFrom(start)}, Prefix: prefix, Selector: identFrom(tok)}, true
	case p.at(token.StringLit), p.at(token.CharLit):
		// Pkg."+" или Enum_Type.'A'
		p.advance()
		return &tree.Selected{Base: tree.Base{Span: p.spanFrom(start)}, Prefix: prefix, Selector: literalFrom(tok)}, true
	}
	return nil, p.unexpected(diag.SynExpectIdentifier)
}

// parseTickSuffix: '(expr): квалифицированное выражение, иначе атрибут.
// Обозначением атрибута может быть зарезервированное слово: 'Range, 'Access,
// 'Digits, 'Delta, 'Mod.
func (p *Parser) parseTickSuffix(start source.Span, prefix tree.Node) (tree.Node, bool) {
	if p.at(token.LParen) {
		operand, ok := p.parseParenthesized()
		if !ok {
			return nil, false
		}
		return &tree.Qualified{Base: tree.Base{Span: p.spanFrom(start)}, Mark: prefix, Operand: operand}, true
	}
	tok := p.peek()
	switch {
	case p.at(token.Ident), p.at(token.KwRange), p.at(token.KwAccess), p.at(token.KwDigits),
		p.at(token.KwDelta), p.at(token.KwMod):
		p.advance()
	default:
		p.want("attribute designator")
		return nil, p.unexpected(diag.SynExpectIdentifier)
	}
	attr := &tree.Attribute{Prefix: prefix, Designator: identFrom(tok)}
	if p.peek().Kind == token.LParen {
		args, ok := p.parseExpressionList()
		if !ok {
			return nil, false
		}
		attr.Args = args
	}
	attr.Span = p.spanFrom(start)
	return attr, true
}

// parseExpressionList: ( expression {, expression} )
func (p *Parser) parseExpressionList() ([]tree.Node, bool) {
	if _, ok := p.expect(token.LParen); !ok {
		return nil, false
	}
	var out []tree.Node
	for {
		e, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		out = append(out, e)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen); !ok {
		return nil, false
	}
	return out, true
}

// parseActuals: ( actual {, actual} ), где actual: выражение, X => выражение
// или диапазон L .. H (срез).
func (p *Parser) parseActuals() ([]tree.Node, bool) {
	if _, ok := p.expect(token.LParen); !ok {
		return nil, false
	}
	var out []tree.Node
	for {
		a, ok := p.parseActual()
		if !ok {
			return nil, false
		}
		out = append(out, a)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen); !ok {
		return nil, false
	}
	return out, true
}

func (p *Parser) parseActual() (tree.Node, bool) {
	start := p.peek().Span
	if p.peek().Kind == token.Ident && p.peekN(1).Kind == token.Arrow {
		formal := identFrom(p.advance())
		p.advance() // =>
		value, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		return &tree.Assoc{Base: tree.Base{Span: p.spanFrom(start)}, Choices: []tree.Node{formal}, Value: value}, true
	}
	return p.parseDiscreteRangeOrExpr()
}

// parseDiscreteRangeOrExpr: expression, L .. H или T range L .. H.
func (p *Parser) parseDiscreteRangeOrExpr() (tree.Node, bool) {
	start := p.peek().Span
	e, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	switch {
	case p.at(token.DotDot):
		return p.finishRange(start, e)
	case isName(e) && p.at(token.KwRange):
		p.advance()
		constraint, ok := p.parseRangeConstraint()
		if !ok {
			return nil, false
		}
		return &tree.SubtypeIndication{Base: tree.Base{Span: p.spanFrom(start)}, Mark: e, Constraint: constraint}, true
	}
	return e, true
}

// parseParenthesized различает (expression) и агрегат:
//
//	(E)                -> выражение в скобках, возвращается само E
//	(E1, E2), (X => E), (others => E), (L .. H => E), (null record) -> агрегат
func (p *Parser) parseParenthesized() (tree.Node, bool) {
	open, ok := p.expect(token.LParen)
	if !ok {
		return nil, false
	}
	defer p.enter("parenthesized expression", open.Span)()

	agg := &tree.Aggregate{}
	if p.peek().Kind == token.KwNull && p.peekN(1).Kind == token.KwRecord {
		p.advance()
		p.advance()
		if _, ok := p.expect(token.RParen); !ok {
			return nil, false
		}
		agg.Span = p.spanFrom(open.Span)
		return agg, true
	}

	for {
		item, ok := p.parseAggregateItem()
		if !ok {
			return nil, false
		}
		agg.Items = append(agg.Items, item)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen); !ok {
		return nil, false
	}
	if len(agg.Items) == 1 {
		switch agg.Items[0].(type) {
		case *tree.Assoc, *tree.Range, *tree.Others:
		default:
			return agg.Items[0], true
		}
	}
	agg.Span = p.spanFrom(open.Span)
	return agg, true
}

// parseAggregateItem: [choice {| choice} =>] expression
func (p *Parser) parseAggregateItem() (tree.Node, bool) {
	start := p.peek().Span
	choices, ok := p.parseChoices()
	if !ok {
		return nil, false
	}
	if len(choices) == 1 && !p.at(token.Arrow) {
		if _, isOthers := choices[0].(*tree.Others); !isOthers {
			return choices[0], true
		}
	}
	if _, ok := p.expect(token.Arrow); !ok {
		return nil, false
	}
	value, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	return &tree.Assoc{Base: tree.Base{Span: p.spanFrom(start)}, Choices: choices, Value: value}, true
}

// parseChoices: choice {| choice}, где choice: others, выражение или диапазон.
func (p *Parser) parseChoices() ([]tree.Node, bool) {
	var out []tree.Node
	for {
		var (
			c  tree.Node
			ok bool
		)
		if tok := p.peek(); p.at(token.KwOthers) {
			p.advance()
			c, ok = &tree.Others{Base: tree.Base{Span: tok.Span}}, true
		} else {
			c, ok = p.parseDiscreteRangeOrExpr()
		}
		if !ok {
			return nil, false
		}
		out = append(out, c)
		if !p.eat(token.Bar) {
			return out, true
		}
	}
}

// parseSubtypeMark: identifier {. identifier} без вызовов и атрибутов.
func (p *Parser) parseSubtypeMark() (tree.Node, bool) {
	start := p.peek().Span
	id, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	var name tree.Node = id
	for p.peek().Kind == token.Dot && p.peekN(1).Kind == token.Ident {
		p.advance()
		sel := identFrom(p.advance())
		name = &tree.Selected{Base: tree.Base{Span: p.spanFrom(start)}, Prefix: name, Selector: sel}
	}
	// T'Class, T'Base
	if p.peek().Kind == token.Tick && p.peekN(1).Kind == token.Ident {
		p.advance()
		des := identFrom(p.advance())
		name = &tree.Attribute{Base: tree.Base{Span: p.spanFrom(start)}, Prefix: name, Designator: des}
	}
	return name, true
}

// parseDesignator: имя подпрограммы или пакета: expanded name или символ операции ("+").
func (p *Parser) parseDesignator() (tree.Node, bool) {
	if tok := p.peek(); tok.Kind == token.StringLit {
		p.advance()
		return literalFrom(tok), true
	}
	return p.parseSubtypeMark()
}

func literalFrom(tok token.Token) *tree.Literal {
	lit := &tree.Literal{Base: tree.Base{Span: tok.Span}, Raw: tok.Text}
	switch tok.Kind {
	case token.IntLit:
		lit.LitKind = tree.LitInt
		if v, ok := lexer.IntValue(tok.Text); ok {
			lit.Value = v
		} else {
			lit.Value = tok.Text
		}
	case token.RealLit:
		lit.LitKind = tree.LitReal
		lit.Value = lexer.RealValue(tok.Text)
	case token.StringLit:
		lit.LitKind = tree.LitString
		lit.Value = lexer.StringValue(tok.Text)
	case token.CharLit:
		lit.LitKind = tree.LitChar
		lit.Value = lexer.CharValue(tok.Text)
	}
	return lit
}
