package parser

import (
	"adaleph/internal/token"
	"adaleph/internal/tree"
)

// Уровни приоритета Ada (RM 4.5), от низшего к высшему:
//
//	logical         and or xor, and then, or else
//	relational      = /= < <= > >=, in, not in
//	binary adding   + - &
//	unary adding    + -
//	multiplying     * / mod rem
//	highest         ** abs not

var relationalOps = []struct {
	kind token.Kind
	op   tree.BinaryOp
}{
	{token.Eq, tree.OpEq},
	{token.NotEq, tree.OpNotEq},
	{token.Lt, tree.OpLt},
	{token.LtEq, tree.OpLtEq},
	{token.Gt, tree.OpGt},
	{token.GtEq, tree.OpGtEq},
}

var addingOps = []struct {
	kind token.Kind
	op   tree.BinaryOp
}{
	{token.Plus, tree.OpAdd},
	{token.Minus, tree.OpSub},
	{token.Amp, tree.OpConcat},
}

var multiplyingOps = []struct {
	kind token.Kind
	op   tree.BinaryOp
}{
	{token.Star, tree.OpMul},
	{token.Slash, tree.OpDiv},
	{token.KwMod, tree.OpMod},
	{token.KwRem, tree.OpRem},
}

// matchOp проверяет операторы из таблицы по порядку; каждый промах попадает в ожидаемое.
func (p *Parser) matchOp(table []struct {
	kind token.Kind
	op   tree.BinaryOp
}) (tree.BinaryOp, bool) {
	for _, e := range table {
		if p.at(e.kind) {
			return e.op, true
		}
	}
	return 0, false
}

// atLogical распознаёт логический оператор, не съедая его.
// "and then" и "or else" требуют просмотра на два токена.
func (p *Parser) atLogical() (tree.BinaryOp, bool) {
	switch {
	case p.at(token.KwAnd):
		if p.peekN(1).Kind == token.KwThen {
			return tree.OpAndThen, true
		}
		return tree.OpAnd, true
	case p.at(token.KwOr):
		if p.peekN(1).Kind == token.KwElse {
			return tree.OpOrElse, true
		}
		return tree.OpOr, true
	case p.at(token.KwXor):
		return tree.OpXor, true
	}
	return 0, false
}

// atRelational распознаёт оператор сравнения или проверку принадлежности.
func (p *Parser) atRelational() (tree.BinaryOp, bool) {
	if op, ok := p.matchOp(relationalOps); ok {
		return op, true
	}
	if p.at(token.KwIn) {
		return tree.OpIn, true
	}
	if p.at(token.KwNot) && p.peekN(1).Kind == token.KwIn {
		return tree.OpNotIn, true
	}
	return 0, false
}
