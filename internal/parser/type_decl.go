package parser

import (
	"fmt"

	"adaleph/internal/diag"
	"adaleph/internal/token"
	"adaleph/internal/tree"
)

// parseTypeDecl: type T [discriminant_part] [is type_definition] ;
func (p *Parser) parseTypeDecl() (tree.Node, bool) {
	start := p.advance().Span // type
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	defer p.enter(fmt.Sprintf("type declaration %q", name.Name), start)()

	decl := &tree.TypeDecl{Name: name}
	if p.at(token.LParen) {
		discs, ok := p.parseFormalPart()
		if !ok {
			return nil, false
		}
		decl.Discriminants = discs
	}
	// неполное объявление: type T;
	if p.at(token.Semicolon) {
		p.advance()
		decl.Span = p.spanFrom(start)
		return decl, true
	}
	if _, ok := p.expect(token.KwIs); !ok {
		return nil, false
	}
	def, ok := p.parseTypeDefinition()
	if !ok {
		return nil, false
	}
	decl.Def = def
	if !p.expectSemicolon() {
		return nil, false
	}
	decl.Span = p.spanFrom(start)
	return decl, true
}

func (p *Parser) parseTypeDefinition() (tree.Node, bool) {
	start := p.peek().Span
	switch {
	case p.at(token.KwRange):
		p.advance()
		r, ok := p.parseRange()
		if !ok {
			return nil, false
		}
		return &tree.RangeTypeDef{Base: tree.Base{Span: p.spanFrom(start)}, Range: r}, true
	case p.at(token.KwMod):
		p.advance()
		m, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		return &tree.ModularTypeDef{Base: tree.Base{Span: p.spanFrom(start)}, Modulus: m}, true
	case p.at(token.KwDigits), p.at(token.KwDelta):
		return p.parseRealTypeDef()
	case p.at(token.LParen):
		return p.parseEnumTypeDef()
	case p.at(token.KwArray):
		return p.parseArrayTypeDef()
	case p.at(token.KwAccess), p.at(token.KwNot):
		return p.parseAccessTypeDef()
	}

	// [abstract] [tagged] [limited] record|null record|private|new
	var abstract, tagged, limited bool
	abstract = p.eat(token.KwAbstract)
	tagged = p.eat(token.KwTagged)
	limited = p.eat(token.KwLimited)
	switch {
	case p.at(token.KwRecord), p.at(token.KwNull):
		rec, ok := p.parseRecordDefinition()
		if !ok {
			return nil, false
		}
		rec.Abstract, rec.Tagged, rec.Limited = abstract, tagged, limited
		rec.Span = p.spanFrom(start)
		return rec, true
	case p.at(token.KwPrivate):
		p.advance()
		return &tree.PrivateTypeDef{
			Base:     tree.Base{Span: p.spanFrom(start)},
			Abstract: abstract, Tagged: tagged, Limited: limited,
		}, true
	case !tagged && p.at(token.KwNew):
		p.advance()
		def := &tree.DerivedTypeDef{Abstract: abstract, Limited: limited}
		parent, ok := p.parseSubtypeIndication()
		if !ok {
			return nil, false
		}
		def.Parent = parent
		if p.eat(token.KwWith) {
			if p.eat(token.KwPrivate) {
				def.WithPrivate = true
			} else {
				ext, ok := p.parseRecordDefinition()
				if !ok {
					return nil, false
				}
				def.Extension = ext
			}
		}
		def.Span = p.spanFrom(start)
		return def, true
	}
	p.want("type definition")
	return nil, p.unexpected(diag.SynExpectType)
}

// parseRealTypeDef: digits D [range L .. H] | delta D [digits N] [range L .. H]
func (p *Parser) parseRealTypeDef() (tree.Node, bool) {
	start := p.peek().Span
	def := &tree.RealTypeDef{}
	if p.eat(token.KwDelta) {
		d, ok := p.parseSimpleExpression()
		if !ok {
			return nil, false
		}
		def.Delta = d
	}
	if p.eat(token.KwDigits) {
		d, ok := p.parseSimpleExpression()
		if !ok {
			return nil, false
		}
		def.Digits = d
	}
	if p.eat(token.KwRange) {
		r, ok := p.parseRange()
		if !ok {
			return nil, false
		}
		def.Range = r
	}
	def.Span = p.spanFrom(start)
	return def, true
}

// parseEnumTypeDef: ( literal {, literal} ), literal: идентификатор или символ.
func (p *Parser) parseEnumTypeDef() (tree.Node, bool) {
	start := p.advance().Span // (
	def := &tree.EnumTypeDef{}
	for {
		switch {
		case p.at(token.Ident):
			def.Literals = append(def.Literals, identFrom(p.advance()))
		case p.at(token.CharLit):
			def.Literals = append(def.Literals, literalFrom(p.advance()))
		default:
			return nil, p.unexpected(diag.SynExpectIdentifier)
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen); !ok {
		return nil, false
	}
	def.Span = p.spanFrom(start)
	return def, true
}

// parseArrayTypeDef: array ( index {, index} ) of [aliased] subtype_indication
// index: subtype_mark range <> | discrete_range
func (p *Parser) parseArrayTypeDef() (*tree.ArrayTypeDef, bool) {
	start := p.advance().Span // array
	if _, ok := p.expect(token.LParen); !ok {
		return nil, false
	}
	def := &tree.ArrayTypeDef{}
	for {
		idx, ok := p.parseArrayIndex()
		if !ok {
			return nil, false
		}
		def.Indexes = append(def.Indexes, idx)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwOf); !ok {
		return nil, false
	}
	def.Aliased = p.eat(token.KwAliased)
	comp, ok := p.parseSubtypeIndication()
	if !ok {
		return nil, false
	}
	def.Component = comp
	def.Span = p.spanFrom(start)
	return def, true
}

func (p *Parser) parseArrayIndex() (tree.Node, bool) {
	return p.parseDiscreteRangeBox(true)
}

// parseRecordDefinition: record component_list end record | null record
func (p *Parser) parseRecordDefinition() (*tree.RecordTypeDef, bool) {
	start := p.peek().Span
	rec := &tree.RecordTypeDef{}
	if p.eat(token.KwNull) {
		if _, ok := p.expect(token.KwRecord); !ok {
			return nil, false
		}
		rec.NullRecord = true
		rec.Span = p.spanFrom(start)
		return rec, true
	}
	if _, ok := p.expect(token.KwRecord); !ok {
		return nil, false
	}
	defer p.enter("record definition", start)()
	comps, ok := p.parseComponentList(token.KwEnd)
	if !ok {
		return nil, false
	}
	rec.Components = comps
	if _, ok := p.expect(token.KwEnd); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwRecord); !ok {
		return nil, false
	}
	rec.Span = p.spanFrom(start)
	return rec, true
}

// parseComponentList: {component_item} [variant_part] | null ;
// Хотя бы один элемент обязателен.
func (p *Parser) parseComponentList(stop ...token.Kind) ([]tree.Node, bool) {
	var out []tree.Node
	for {
		if len(out) > 0 && p.atAny(stop...) {
			return out, true
		}
		tok := p.peek()
		switch {
		case p.at(token.Ident):
			c, ok := p.parseComponentDecl()
			if !ok {
				return nil, false
			}
			out = append(out, c)
		case p.at(token.KwNull):
			p.advance()
			if !p.expectSemicolon() {
				return nil, false
			}
			out = append(out, &tree.Null{Base: tree.Base{Span: p.spanFrom(tok.Span)}})
		case p.at(token.KwCase):
			v, ok := p.parseVariantPart()
			if !ok {
				return nil, false
			}
			out = append(out, v)
		case p.at(token.KwPragma):
			pr, ok := p.parsePragma()
			if !ok {
				return nil, false
			}
			out = append(out, pr)
		default:
			p.want("component declaration")
			return nil, p.unexpected(diag.SynExpectDeclaration)
		}
	}
}

// parseComponentDecl: ids : [aliased] subtype_indication [:= default] ;
func (p *Parser) parseComponentDecl() (tree.Node, bool) {
	start := p.peek().Span
	names, ok := p.parseIdentList()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon); !ok {
		return nil, false
	}
	c := &tree.ComponentDecl{Names: names}
	c.Aliased = p.eat(token.KwAliased)
	typ, ok := p.parseSubtypeIndication()
	if !ok {
		return nil, false
	}
	c.Type = typ
	if p.eat(token.Assign) {
		def, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		c.Default = def
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	c.Span = p.spanFrom(start)
	return c, true
}

// parseVariantPart: case D is variant {variant} end case ;
func (p *Parser) parseVariantPart() (tree.Node, bool) {
	done, ok := p.nest()
	defer done()
	if !ok {
		return nil, false
	}
	start := p.advance().Span // case
	defer p.enter("variant part", start)()
	disc, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwIs); !ok {
		return nil, false
	}
	vp := &tree.VariantPart{Discriminant: disc}
	for {
		vstart := p.peek().Span
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
		comps, ok := p.parseComponentList(token.KwWhen, token.KwEnd)
		if !ok {
			return nil, false
		}
		vp.Variants = append(vp.Variants, &tree.Variant{
			Base:    tree.Base{Span: p.spanFrom(vstart)},
			Choices: choices, Components: comps,
		})
		if !p.at(token.KwWhen) {
			break
		}
	}
	if _, ok := p.expect(token.KwEnd); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwCase); !ok {
		return nil, false
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	vp.Span = p.spanFrom(start)
	return vp, true
}

// parseAccessTypeDef:
//
//	[not null] access [all | constant] subtype_indication
//	[not null] access [protected] procedure|function profile
func (p *Parser) parseAccessTypeDef() (tree.Node, bool) {
	start := p.peek().Span
	def := &tree.AccessTypeDef{}
	if p.peek().Kind == token.KwNot {
		if !p.parseNotNull() {
			return nil, false
		}
		def.NotNull = true
	}
	if _, ok := p.expect(token.KwAccess); !ok {
		return nil, false
	}
	p.eat(token.KwProtected)
	if p.at(token.KwProcedure) || p.at(token.KwFunction) {
		sstart := p.peek().Span
		spec := &tree.SubprogramSpec{Form: tree.Procedure}
		if p.advance().Kind == token.KwFunction {
			spec.Form = tree.Function
		}
		if !p.parseSpecProfile(spec) {
			return nil, false
		}
		spec.Span = p.spanFrom(sstart)
		def.Subprogram = spec
		def.Span = p.spanFrom(start)
		return def, true
	}
	switch {
	case p.at(token.KwAll):
		p.advance()
		def.All = true
	case p.at(token.KwConstant):
		p.advance()
		def.Constant = true
	}
	target, ok := p.parseSubtypeIndication()
	if !ok {
		return nil, false
	}
	def.Target = target
	def.Span = p.spanFrom(start)
	return def, true
}
