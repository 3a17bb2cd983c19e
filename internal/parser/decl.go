package parser

import (
	"fmt"

	"adaleph/internal/diag"
	"adaleph/internal/source"
	"adaleph/internal/token"
	"adaleph/internal/tree"
)

// parseDeclarativeItem выбирает распознаватель по первому токену.
func (p *Parser) parseDeclarativeItem() (tree.Node, bool) {
	done, ok := p.nest()
	defer done()
	if !ok {
		return nil, false
	}
	switch {
	case p.at(token.Ident):
		return p.parseObjectDecl()
	case p.at(token.KwType):
		return p.parseTypeDecl()
	case p.at(token.KwSubtype):
		return p.parseSubtypeDecl()
	case p.at(token.KwProcedure), p.at(token.KwFunction):
		return p.parseSubprogram()
	case p.at(token.KwPackage):
		return p.parsePackage()
	case p.at(token.KwUse):
		return p.parseUseClause()
	case p.at(token.KwPragma):
		return p.parsePragma()
	}
	p.want("declaration")
	return nil, p.unexpected(diag.SynExpectDeclaration)
}

// parseDeclarativePart читает объявления, пока не встретится один из stop.
func (p *Parser) parseDeclarativePart(stop ...token.Kind) ([]tree.Node, bool) {
	var out []tree.Node
	for !p.atAny(stop...) {
		d, ok := p.parseDeclarativeItem()
		if !ok {
			return nil, false
		}
		out = append(out, d)
	}
	return out, true
}

// parseObjectDecl:
//
//	ids : exception ;
//	ids : constant := expr ;                                   (number)
//	ids : [aliased] [constant] subtype_indication|array_def [:= expr] ;
func (p *Parser) parseObjectDecl() (tree.Node, bool) {
	start := p.peek().Span
	defer p.enter(fmt.Sprintf("object declaration %q", p.peek().Text), start)()

	names, ok := p.parseIdentList()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon); !ok {
		return nil, false
	}

	if p.eat(token.KwException) {
		if !p.expectSemicolon() {
			return nil, false
		}
		p.relabel("exception declaration")
		return &tree.ExceptionDecl{Base: tree.Base{Span: p.spanFrom(start)}, Names: names}, true
	}

	decl := &tree.ObjectDecl{Names: names}
	decl.Aliased = p.eat(token.KwAliased)
	decl.Constant = p.eat(token.KwConstant)

	// number declaration: N : constant := 10;
	if !(decl.Constant && !decl.Aliased && p.peek().Kind == token.Assign) {
		var typ tree.Node
		if p.peek().Kind == token.KwArray {
			typ, ok = p.parseArrayTypeDef()
		} else {
			typ, ok = p.parseSubtypeIndication()
		}
		if !ok {
			return nil, false
		}
		decl.Type = typ
	}

	if p.eat(token.Assign) {
		init, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		decl.Init = init
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	decl.Span = p.spanFrom(start)
	return decl, true
}

// parseSubtypeIndication: [not null] subtype_mark [constraint]
func (p *Parser) parseSubtypeIndication() (*tree.SubtypeIndication, bool) {
	start := p.peek().Span
	si := &tree.SubtypeIndication{}
	if p.peek().Kind == token.KwNot {
		if !p.parseNotNull() {
			return nil, false
		}
		si.NotNull = true
	}
	mark, ok := p.parseSubtypeMark()
	if !ok {
		return nil, false
	}
	si.Mark = mark

	switch {
	case p.at(token.KwRange):
		p.advance()
		c, ok := p.parseRangeConstraint()
		if !ok {
			return nil, false
		}
		si.Constraint = c
	case p.at(token.LParen):
		c, ok := p.parseIndexConstraint()
		if !ok {
			return nil, false
		}
		si.Constraint = c
	}
	si.Span = p.spanFrom(start)
	return si, true
}

// parseIndexConstraint: ( discrete_range {, discrete_range} ); дискриминантные
// ограничения (D => V) разбираются тем же правилом.
func (p *Parser) parseIndexConstraint() (*tree.IndexConstraint, bool) {
	start := p.peek().Span
	ranges, ok := p.parseActuals()
	if !ok {
		return nil, false
	}
	return &tree.IndexConstraint{Base: tree.Base{Span: p.spanFrom(start)}, Ranges: ranges}, true
}

func (p *Parser) parseNotNull() bool {
	if _, ok := p.expect(token.KwNot); !ok {
		return false
	}
	_, ok := p.expect(token.KwNull)
	return ok
}

// parseSubtypeDecl: subtype S is subtype_indication ;
func (p *Parser) parseSubtypeDecl() (tree.Node, bool) {
	start := p.advance().Span // subtype
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	defer p.enter(fmt.Sprintf("subtype declaration %q", name.Name), start)()
	if _, ok := p.expect(token.KwIs); !ok {
		return nil, false
	}
	ind, ok := p.parseSubtypeIndication()
	if !ok {
		return nil, false
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	return &tree.SubtypeDecl{Base: tree.Base{Span: p.spanFrom(start)}, Name: name, Indication: ind}, true
}

// parseWithClause: with name {, name} ;
func (p *Parser) parseWithClause() (tree.Node, bool) {
	start := p.advance().Span // with
	defer p.enter("with clause", start)()
	names, ok := p.parseNameList()
	if !ok {
		return nil, false
	}
	return &tree.WithClause{Base: tree.Base{Span: p.spanFrom(start)}, Names: names}, true
}

// parseUseClause: use [type] name {, name} ;
func (p *Parser) parseUseClause() (tree.Node, bool) {
	start := p.advance().Span // use
	defer p.enter("use clause", start)()
	isType := p.eat(token.KwType)
	names, ok := p.parseNameList()
	if !ok {
		return nil, false
	}
	return &tree.UseClause{Base: tree.Base{Span: p.spanFrom(start)}, Type: isType, Names: names}, true
}

// parseNameList: subtype_mark {, subtype_mark} ;
func (p *Parser) parseNameList() ([]tree.Node, bool) {
	var names []tree.Node
	for {
		n, ok := p.parseSubtypeMark()
		if !ok {
			return nil, false
		}
		names = append(names, n)
		if !p.eat(token.Comma) {
			break
		}
	}
	return names, p.expectSemicolon()
}

// parsePragma: pragma identifier [(argument {, argument})] ;
func (p *Parser) parsePragma() (tree.Node, bool) {
	start := p.advance().Span // pragma
	defer p.enter("pragma", start)()
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	pr := &tree.Pragma{Name: name}
	if p.at(token.LParen) {
		args, ok := p.parseActuals()
		if !ok {
			return nil, false
		}
		pr.Args = args
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	pr.Span = p.spanFrom(start)
	return pr, true
}

// checkEndName сверяет имя после end с именем конструкции (без учёта регистра).
func (p *Parser) checkEndName(what string, want tree.Node, got tree.Node, sp source.Span) bool {
	if got == nil || tree.SameName(want, got) {
		return true
	}
	return p.failAt(diag.SynEndNameMismatch, sp,
		fmt.Sprintf("end name %q does not match %s %q", tree.NameString(got), what, tree.NameString(want)))
}

// parseEndDesignator: необязательное имя после end, до ';'.
func (p *Parser) parseEndDesignator() (tree.Node, source.Span, bool) {
	tok := p.peek()
	if tok.Kind != token.Ident && tok.Kind != token.StringLit {
		return nil, tok.Span, true
	}
	name, ok := p.parseDesignator()
	if !ok {
		return nil, tok.Span, false
	}
	return name, p.spanFrom(tok.Span), true
}
