package parser

import (
	"slices"

	"adaleph/internal/diag"
	"adaleph/internal/token"
	"adaleph/internal/tree"
)

// parseSequence: statement {statement} до одного из stop. Пустая
// последовательность в Ada недопустима (нужен хотя бы null;).
func (p *Parser) parseSequence(stop ...token.Kind) ([]tree.Node, bool) {
	var out []tree.Node
	for {
		if len(out) == 0 {
			if slices.Contains(stop, p.peek().Kind) {
				return nil, p.fail(diag.SynEmptySequence,
					"sequence of statements must contain at least one statement, use \"null;\"")
			}
		} else if p.atAny(stop...) {
			return out, true
		}
		s, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
}

// parseStatement выбирает распознаватель по первому токену (и второму для меток L :).
// При промахе в множество ожидаемого попадает только "statement".
func (p *Parser) parseStatement() (tree.Node, bool) {
	done, ok := p.nest()
	defer done()
	if !ok {
		return nil, false
	}
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		if p.peekN(1).Kind == token.Colon {
			return p.parseNamedStatement()
		}
		return p.parseNameStatement()
	case token.KwNull:
		p.advance()
		if !p.expectSemicolon() {
			return nil, false
		}
		return &tree.Null{Base: tree.Base{Span: p.spanFrom(tok.Span)}}, true
	case token.KwIf:
		return p.parseIf()
	case token.KwCase:
		return p.parseCase()
	case token.KwLoop, token.KwWhile, token.KwFor:
		return p.parseLoop(nil, tok.Span)
	case token.KwDeclare, token.KwBegin:
		return p.parseBlock(nil, tok.Span)
	case token.KwExit:
		return p.parseExit()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwGoto:
		return p.parseGoto()
	case token.KwRaise:
		return p.parseRaise()
	case token.KwPragma:
		return p.parsePragma()
	case token.LabelOpen:
		return p.parseLabel()
	}
	p.want("statement")
	return nil, p.unexpected(diag.SynExpectStatement)
}

// parseNameStatement: name := expression ; | name ; (вызов процедуры)
func (p *Parser) parseNameStatement() (tree.Node, bool) {
	start := p.peek().Span
	defer p.enter("statement", start)()
	name, ok := p.parseName()
	if !ok {
		return nil, false
	}
	if p.at(token.Assign) {
		p.relabel("assignment to " + quoteName(name))
		p.advance()
		value, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		if !p.expectSemicolon() {
			return nil, false
		}
		return &tree.Assign{Base: tree.Base{Span: p.spanFrom(start)}, Target: name, Value: value}, true
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	call := &tree.CallStmt{Base: tree.Base{Span: p.spanFrom(start)}, Name: name}
	if c, ok := name.(*tree.Call); ok {
		call.Name, call.Args = c.Name, c.Args
	}
	return call, true
}

// parseNamedStatement: L : loop ... | L : declare/begin ...
func (p *Parser) parseNamedStatement() (tree.Node, bool) {
	start := p.peek().Span
	label := identFrom(p.advance())
	p.advance() // :
	switch {
	case p.at(token.KwLoop), p.at(token.KwWhile), p.at(token.KwFor):
		return p.parseLoop(label, start)
	case p.at(token.KwDeclare), p.at(token.KwBegin):
		return p.parseBlock(label, start)
	}
	return nil, p.unexpected(diag.SynUnexpectedToken)
}

func (p *Parser) parseExit() (tree.Node, bool) {
	start := p.advance().Span // exit
	ex := &tree.Exit{}
	if p.at(token.Ident) {
		name, ok := p.parseSubtypeMark()
		if !ok {
			return nil, false
		}
		ex.Label = name
	}
	if p.eat(token.KwWhen) {
		cond, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		ex.When = cond
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	ex.Span = p.spanFrom(start)
	return ex, true
}

func (p *Parser) parseReturn() (tree.Node, bool) {
	start := p.advance().Span // return
	ret := &tree.Return{}
	if !p.at(token.Semicolon) {
		v, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		ret.Value = v
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	ret.Span = p.spanFrom(start)
	return ret, true
}

func (p *Parser) parseGoto() (tree.Node, bool) {
	start := p.advance().Span // goto
	target, ok := p.parseSubtypeMark()
	if !ok {
		return nil, false
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	return &tree.Goto{Base: tree.Base{Span: p.spanFrom(start)}, Label: target}, true
}

// parseRaise: raise ; | raise name [with expression] ;
func (p *Parser) parseRaise() (tree.Node, bool) {
	start := p.advance().Span // raise
	r := &tree.Raise{}
	if p.at(token.Ident) {
		name, ok := p.parseSubtypeMark()
		if !ok {
			return nil, false
		}
		r.Exception = name
		if p.eat(token.KwWith) {
			msg, ok := p.parseExpression()
			if !ok {
				return nil, false
			}
			r.Message = msg
		}
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	r.Span = p.spanFrom(start)
	return r, true
}

// parseLabel: << identifier >>
func (p *Parser) parseLabel() (tree.Node, bool) {
	start := p.advance().Span // <<
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LabelClose); !ok {
		return nil, false
	}
	return &tree.LabelStmt{Base: tree.Base{Span: p.spanFrom(start)}, Name: name}, true
}

// parseEndLabel проверяет имя после "end loop" / "end" для помеченных конструкций:
// метка обязана повториться, у непомеченных имени быть не должно.
func (p *Parser) parseEndLabel(what string, label *tree.Ident) bool {
	tok := p.peek()
	if tok.Kind != token.Ident {
		if label != nil {
			return p.failAt(diag.SynEndNameMismatch, tok.Span,
				what+" "+quoteName(label)+" must be closed with its label "+quoteName(label))
		}
		return true
	}
	if label == nil {
		return p.failAt(diag.SynEndNameMismatch, tok.Span,
			"unlabelled "+what+" cannot be closed with name "+quoteName(identFrom(tok)))
	}
	p.advance()
	return p.checkEndName(what, label, identFrom(tok), tok.Span)
}

func quoteName(n tree.Node) string {
	return "\"" + tree.NameString(n) + "\""
}
