package parser

import (
	"fmt"

	"adaleph/internal/diag"
	"adaleph/internal/source"
	"adaleph/internal/token"
	"adaleph/internal/tree"
)

// parseExpression: relation {logical_op relation}, один и тот же оператор по всей цепочке.
func (p *Parser) parseExpression() (tree.Node, bool) {
	done, ok := p.nest()
	defer done()
	if !ok {
		return nil, false
	}
	left, ok := p.parseRelation()
	if !ok {
		return nil, false
	}
	first, ok := p.atLogical()
	if !ok {
		return left, true
	}
	for {
		op, ok := p.atLogical()
		if !ok {
			return left, true
		}
		if op != first {
			return nil, p.fail(diag.SynMixedLogical,
				fmt.Sprintf("operators %q and %q cannot be mixed without parentheses", first, op))
		}
		p.advance()
		if op == tree.OpAndThen || op == tree.OpOrElse {
			p.advance()
		}
		right, ok := p.parseRelation()
		if !ok {
			return nil, false
		}
		left = binary(op, left, right)
	}
}

// parseRelation: simple_expression [relational_op simple_expression]
//
//	| simple_expression [not] in membership_choice
//
// Сравнения неассоциативны: A < B < C: ошибка.
func (p *Parser) parseRelation() (tree.Node, bool) {
	left, ok := p.parseSimpleExpression()
	if !ok {
		return nil, false
	}
	op, ok := p.atRelational()
	if !ok {
		return left, true
	}
	p.advance()
	if op == tree.OpNotIn {
		p.advance()
	}

	var right tree.Node
	if op == tree.OpIn || op == tree.OpNotIn {
		right, ok = p.parseMembershipChoice()
	} else {
		right, ok = p.parseSimpleExpression()
	}
	if !ok {
		return nil, false
	}
	rel := binary(op, left, right)

	if next, ok := p.atRelational(); ok {
		return nil, p.fail(diag.SynNonAssociative,
			fmt.Sprintf("relational operator %q cannot follow %q without parentheses", next, op))
	}
	return rel, true
}

// membership_choice: range (L .. H), атрибут диапазона или subtype_mark.
func (p *Parser) parseMembershipChoice() (tree.Node, bool) {
	return p.parseDiscreteRange()
}

// parseSimpleExpression: [unary_adding_op] term {binary_adding_op term}
// Унарный знак относится ко всему первому терму: -A * B == -(A * B).
func (p *Parser) parseSimpleExpression() (tree.Node, bool) {
	start := p.peek().Span
	var (
		left tree.Node
		ok   bool
	)
	switch {
	case p.at(token.Plus), p.at(token.Minus):
		op := tree.OpPlus
		if p.advance().Kind == token.Minus {
			op = tree.OpMinus
		}
		term, ok := p.parseTerm()
		if !ok {
			return nil, false
		}
		left = &tree.Unary{Base: tree.Base{Span: p.spanFrom(start)}, Op: op, Operand: term}
	default:
		left, ok = p.parseTerm()
		if !ok {
			return nil, false
		}
	}
	for {
		op, ok := p.matchOp(addingOps)
		if !ok {
			return left, true
		}
		p.advance()
		right, ok := p.parseTerm()
		if !ok {
			return nil, false
		}
		left = binary(op, left, right)
	}
}

// parseTerm: factor {multiplying_op factor}
func (p *Parser) parseTerm() (tree.Node, bool) {
	left, ok := p.parseFactor()
	if !ok {
		return nil, false
	}
	for {
		op, ok := p.matchOp(multiplyingOps)
		if !ok {
			return left, true
		}
		p.advance()
		right, ok := p.parseFactor()
		if !ok {
			return nil, false
		}
		left = binary(op, left, right)
	}
}

// parseFactor: primary [** primary] | abs primary | not primary
func (p *Parser) parseFactor() (tree.Node, bool) {
	start := p.peek().Span
	switch {
	case p.at(token.KwAbs), p.at(token.KwNot):
		op := tree.OpAbs
		if p.advance().Kind == token.KwNot {
			op = tree.OpNot
		}
		operand, ok := p.parsePrimary()
		if !ok {
			return nil, false
		}
		return &tree.Unary{Base: tree.Base{Span: p.spanFrom(start)}, Op: op, Operand: operand}, true
	}

	base, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	if !p.at(token.StarStar) {
		return base, true
	}
	p.advance()
	exp, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	if p.peek().Kind == token.StarStar {
		return nil, p.fail(diag.SynNonAssociative, "operator \"**\" is not associative; use parentheses")
	}
	return binary(tree.OpPow, base, exp), true
}

// parsePrimary: literal | null | name | aggregate | (expression) | allocator
func (p *Parser) parsePrimary() (tree.Node, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit, token.RealLit, token.StringLit, token.CharLit:
		p.advance()
		return literalFrom(tok), true
	case token.KwNull:
		p.advance()
		return &tree.Literal{Base: tree.Base{Span: tok.Span}, LitKind: tree.LitNull, Raw: tok.Text, Value: "null"}, true
	case token.LParen:
		return p.parseParenthesized()
	case token.KwNew:
		return p.parseAllocator()
	case token.Ident:
		return p.parseName()
	}
	p.want("expression")
	return nil, p.unexpected(diag.SynExpectExpression)
}

func (p *Parser) parseAllocator() (tree.Node, bool) {
	start := p.advance().Span // new
	sub, ok := p.parseName()
	if !ok {
		return nil, false
	}
	return &tree.Allocator{Base: tree.Base{Span: p.spanFrom(start)}, Subtype: sub}, true
}

// parseDiscreteRange: simple_expression .. simple_expression
//
//	| subtype_mark range L .. H
//	| name (subtype_mark или X'Range)
func (p *Parser) parseDiscreteRange() (tree.Node, bool) {
	return p.parseDiscreteRangeBox(false)
}

// parseDiscreteRangeBox: то же, что parseDiscreteRange; с allowBox ещё
// принимает "T range <>" (индекс неограниченного массива).
func (p *Parser) parseDiscreteRangeBox(allowBox bool) (tree.Node, bool) {
	start := p.peek().Span
	low, ok := p.parseSimpleExpression()
	if !ok {
		return nil, false
	}
	if p.at(token.DotDot) {
		return p.finishRange(start, low)
	}
	if isName(low) && p.at(token.KwRange) {
		p.advance()
		if allowBox && p.at(token.Box) {
			p.advance()
			return &tree.BoxRange{Base: tree.Base{Span: p.spanFrom(start)}, Mark: low}, true
		}
		constraint, ok := p.parseRangeConstraint()
		if !ok {
			return nil, false
		}
		return &tree.SubtypeIndication{Base: tree.Base{Span: p.spanFrom(start)}, Mark: low, Constraint: constraint}, true
	}
	return low, true
}

// finishRange дочитывает ".. high" после уже разобранной нижней границы.
func (p *Parser) finishRange(start source.Span, low tree.Node) (*tree.Range, bool) {
	if _, ok := p.expect(token.DotDot); !ok {
		return nil, false
	}
	high, ok := p.parseSimpleExpression()
	if !ok {
		return nil, false
	}
	return &tree.Range{Base: tree.Base{Span: p.spanFrom(start)}, Low: low, High: high}, true
}

// parseRangeConstraint: L .. H | X'Range (после ключевого слова range).
func (p *Parser) parseRangeConstraint() (tree.Node, bool) {
	start := p.peek().Span
	low, ok := p.parseSimpleExpression()
	if !ok {
		return nil, false
	}
	if _, isAttr := low.(*tree.Attribute); isAttr && !p.at(token.DotDot) {
		return low, true
	}
	return p.finishRange(start, low)
}

// parseRange: L .. H, обязательно с "..".
func (p *Parser) parseRange() (*tree.Range, bool) {
	start := p.peek().Span
	low, ok := p.parseSimpleExpression()
	if !ok {
		return nil, false
	}
	return p.finishRange(start, low)
}

func binary(op tree.BinaryOp, left, right tree.Node) *tree.Binary {
	sp := left.Pos().Cover(right.Pos())
	return &tree.Binary{Base: tree.Base{Span: sp}, Op: op, Left: left, Right: right}
}

func isName(n tree.Node) bool {
	switch n.(type) {
	case *tree.Ident, *tree.Selected, *tree.Attribute, *tree.Call, *tree.Deref:
		return true
	}
	return false
}
