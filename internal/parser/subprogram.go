package parser

import (
	"fmt"

	"adaleph/internal/diag"
	"adaleph/internal/source"
	"adaleph/internal/token"
	"adaleph/internal/tree"
)

// parseSubprogram:
//
//	spec ;                                  -> объявление
//	spec is null ;  |  spec is abstract ;
//	spec is decls begin stmts [exception handlers] end [designator] ;
func (p *Parser) parseSubprogram() (tree.Node, bool) {
	start := p.peek().Span
	leave := p.enter("subprogram specification", start)
	defer leave()

	spec, ok := p.parseSubprogramSpec()
	if !ok {
		return nil, false
	}
	label := fmt.Sprintf("%s %q", spec.Form, tree.NameString(spec.Name))
	p.relabel(label)

	decl := &tree.SubprogramDecl{Spec: spec}
	if p.at(token.Semicolon) {
		p.advance()
		decl.Span = p.spanFrom(start)
		return decl, true
	}
	if _, ok := p.expect(token.KwIs); !ok {
		return nil, false
	}

	switch {
	case p.at(token.KwNull):
		if spec.Form != tree.Procedure {
			return nil, p.fail(diag.SynUnexpectedToken, "only procedures can be declared 'is null'")
		}
		p.advance()
		decl.IsNull = true
	case p.at(token.KwAbstract):
		p.advance()
		decl.IsAbstract = true
	default:
		p.relabel(fmt.Sprintf("%s body %q", spec.Form, tree.NameString(spec.Name)))
		body, ok := p.parseBody(token.KwBegin)
		if !ok {
			return nil, false
		}
		decl.Body = body
		endName, sp, ok := p.parseEndDesignator()
		if !ok || !p.checkEndName(spec.Form.String(), spec.Name, endName, sp) {
			return nil, false
		}
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	decl.Span = p.spanFrom(start)
	return decl, true
}

// parseSubprogramSpec: procedure designator [params] | function designator [params] return subtype_mark
func (p *Parser) parseSubprogramSpec() (*tree.SubprogramSpec, bool) {
	start := p.peek().Span
	spec := &tree.SubprogramSpec{Form: tree.Procedure}
	if p.advance().Kind == token.KwFunction {
		spec.Form = tree.Function
	}
	name, ok := p.parseDesignator()
	if !ok {
		return nil, false
	}
	spec.Name = name
	if ok := p.parseSpecProfile(spec); !ok {
		return nil, false
	}
	spec.Span = p.spanFrom(start)
	return spec, true
}

// parseSpecProfile: [params] [return [not null] subtype_mark]: общий хвост
// для спецификаций и access-to-subprogram.
func (p *Parser) parseSpecProfile(spec *tree.SubprogramSpec) bool {
	if p.at(token.LParen) {
		params, ok := p.parseFormalPart()
		if !ok {
			return false
		}
		spec.Params = params
	}
	if spec.Form == tree.Function {
		if _, ok := p.expect(token.KwReturn); !ok {
			return false
		}
		ret, ok := p.parseSubtypeIndication()
		if !ok {
			return false
		}
		spec.Returns = ret
	}
	return true
}

// parseFormalPart: ( param {; param} )
func (p *Parser) parseFormalPart() ([]*tree.Param, bool) {
	open, ok := p.expect(token.LParen)
	if !ok {
		return nil, false
	}
	defer p.enter("formal part", open.Span)()
	var params []*tree.Param
	for {
		prm, ok := p.parseParam()
		if !ok {
			return nil, false
		}
		params = append(params, prm)
		if !p.eat(token.Semicolon) {
			break
		}
	}
	if _, ok := p.expect(token.RParen); !ok {
		return nil, false
	}
	return params, true
}

// parseParam: ids : [in | out | in out | access] [not null] subtype_mark [:= default]
func (p *Parser) parseParam() (*tree.Param, bool) {
	start := p.peek().Span
	names, ok := p.parseIdentList()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon); !ok {
		return nil, false
	}
	prm := &tree.Param{Names: names}
	switch {
	case p.at(token.KwIn):
		p.advance()
		prm.Mode = tree.ModeIn
		if p.eat(token.KwOut) {
			prm.Mode = tree.ModeInOut
		}
	case p.at(token.KwOut):
		p.advance()
		prm.Mode = tree.ModeOut
	}
	if p.peek().Kind == token.KwNot {
		if !p.parseNotNull() {
			return nil, false
		}
		prm.NotNull = true
	}
	if prm.Mode == tree.ModeDefault && p.eat(token.KwAccess) {
		prm.Mode = tree.ModeAccess
	}
	typ, ok := p.parseSubtypeMark()
	if !ok {
		return nil, false
	}
	prm.Type = typ
	if p.eat(token.Assign) {
		def, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		prm.Default = def
	}
	prm.Span = p.spanFrom(start)
	return prm, true
}

// parseBody: decls stmtStart stmts [exception handlers] end: без имени и ';'.
// Для тела пакета раздел операторов необязателен.
func (p *Parser) parseBody(stop ...token.Kind) (*tree.Body, bool) {
	start := p.peek().Span
	body := &tree.Body{}
	decls, ok := p.parseDeclarativePart(append(stop, token.KwEnd)...)
	if !ok {
		return nil, false
	}
	body.Decls = decls

	optional := len(stop) > 1
	if p.at(token.KwBegin) {
		p.advance()
		stmts, ok := p.parseSequence(token.KwEnd, token.KwException)
		if !ok {
			return nil, false
		}
		body.Stmts = stmts
		if p.at(token.KwException) {
			handlers, ok := p.parseHandlers()
			if !ok {
				return nil, false
			}
			body.Handlers = handlers
		}
	} else if !optional {
		_, ok := p.expect(token.KwBegin)
		return nil, ok
	}
	if _, ok := p.expect(token.KwEnd); !ok {
		return nil, false
	}
	body.Span = p.spanFrom(start)
	return body, true
}

// parseHandlers: exception handler {handler}
func (p *Parser) parseHandlers() ([]*tree.Handler, bool) {
	if _, ok := p.expect(token.KwException); !ok {
		return nil, false
	}
	var out []*tree.Handler
	for {
		h, ok := p.parseHandler()
		if !ok {
			return nil, false
		}
		out = append(out, h)
		if p.peek().Kind != token.KwWhen {
			return out, true
		}
	}
}

// parseHandler: when [X :] choice {| choice} => stmts
func (p *Parser) parseHandler() (*tree.Handler, bool) {
	start := p.peek().Span
	if _, ok := p.expect(token.KwWhen); !ok {
		return nil, false
	}
	defer p.enter("exception handler", start)()
	h := &tree.Handler{}
	if p.peek().Kind == token.Ident && p.peekN(1).Kind == token.Colon {
		h.Param = identFrom(p.advance())
		p.advance()
	}
	for {
		var (
			c  tree.Node
			ok bool
		)
		if tok := p.peek(); p.at(token.KwOthers) {
			p.advance()
			c, ok = &tree.Others{Base: tree.Base{Span: tok.Span}}, true
		} else {
			c, ok = p.parseSubtypeMark()
		}
		if !ok {
			return nil, false
		}
		h.Choices = append(h.Choices, c)
		if !p.eat(token.Bar) {
			break
		}
	}
	if _, ok := p.expect(token.Arrow); !ok {
		return nil, false
	}
	stmts, ok := p.parseSequence(token.KwWhen, token.KwEnd)
	if !ok {
		return nil, false
	}
	h.Stmts = stmts
	h.Span = p.spanFrom(start)
	return h, true
}

// parsePackage: package specification или package body.
func (p *Parser) parsePackage() (tree.Node, bool) {
	start := p.advance().Span // package
	if p.eat(token.KwBody) {
		return p.parsePackageBody(start)
	}
	name, ok := p.parseSubtypeMark()
	if !ok {
		return nil, false
	}
	defer p.enter(fmt.Sprintf("package %q", tree.NameString(name)), start)()
	if _, ok := p.expect(token.KwIs); !ok {
		return nil, false
	}
	pkg := &tree.PackageDecl{Name: name}
	visible, ok := p.parseDeclarativePart(token.KwPrivate, token.KwEnd)
	if !ok {
		return nil, false
	}
	pkg.Visible = visible
	if p.eat(token.KwPrivate) {
		private, ok := p.parseDeclarativePart(token.KwEnd)
		if !ok {
			return nil, false
		}
		pkg.Private = private
	}
	if !p.finishUnit(name, "package") {
		return nil, false
	}
	pkg.Span = p.spanFrom(start)
	return pkg, true
}

func (p *Parser) parsePackageBody(start source.Span) (tree.Node, bool) {
	name, ok := p.parseSubtypeMark()
	if !ok {
		return nil, false
	}
	defer p.enter(fmt.Sprintf("package body %q", tree.NameString(name)), start)()
	if _, ok := p.expect(token.KwIs); !ok {
		return nil, false
	}
	body, ok := p.parseBody(token.KwBegin, token.KwEnd)
	if !ok {
		return nil, false
	}
	endName, sp, ok := p.parseEndDesignator()
	if !ok || !p.checkEndName("package", name, endName, sp) {
		return nil, false
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	return &tree.PackageBody{Base: tree.Base{Span: p.spanFrom(start)}, Name: name, Body: body}, true
}

// finishUnit: end [name] ;
func (p *Parser) finishUnit(name tree.Node, what string) bool {
	if _, ok := p.expect(token.KwEnd); !ok {
		return false
	}
	endName, sp, ok := p.parseEndDesignator()
	if !ok || !p.checkEndName(what, name, endName, sp) {
		return false
	}
	return p.expectSemicolon()
}
