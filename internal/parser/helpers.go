package parser

import (
	"fmt"
	"slices"

	"adaleph/internal/diag"
	"adaleph/internal/source"
	"adaleph/internal/token"
	"adaleph/internal/tree"
)

// peek возвращает текущий токен; за концом потока: EOF.
func (p *Parser) peek() token.Token {
	return p.peekN(0)
}

// peekN смотрит на n токенов вперёд. Грамматике хватает n <= 1.
func (p *Parser) peekN(n int) token.Token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	return token.Token{Kind: token.EOF, Span: p.eof}
}

// at проверяет вид текущего токена. Промах запоминается в множестве ожидаемого.
func (p *Parser) at(k token.Kind) bool {
	if p.peek().Kind == k {
		return true
	}
	p.want(k.Describe())
	return false
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.ContainsFunc(kinds, p.at)
}

// want добавляет описание в множество ожидаемого без проверки.
func (p *Parser) want(what string) {
	if !slices.Contains(p.expected, what) {
		p.expected = append(p.expected, what)
	}
}

// advance: съедает текущий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
		p.lastSpan = tok.Span
	}
	p.expected = p.expected[:0]
	return tok
}

// eat съедает токен, если он подходит.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expect: ожидаем конкретный токен. Если нет: фиксируем SyntaxError.
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, p.unexpected(codeForMissing(k))
}

func (p *Parser) expectSemicolon() bool {
	_, ok := p.expect(token.Semicolon)
	return ok
}

func (p *Parser) parseIdent() (*tree.Ident, bool) {
	tok, ok := p.expect(token.Ident)
	if !ok {
		return nil, false
	}
	return identFrom(tok), true
}

// parseIdentList: defining_identifier {, defining_identifier}
func (p *Parser) parseIdentList() ([]*tree.Ident, bool) {
	var ids []*tree.Ident
	for {
		id, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		ids = append(ids, id)
		if !p.eat(token.Comma) {
			return ids, true
		}
	}
}

func identFrom(tok token.Token) *tree.Ident {
	return &tree.Ident{Base: tree.Base{Span: tok.Span}, Name: tok.Text}
}

// spanFrom покрывает всё от start до последнего съеденного токена.
func (p *Parser) spanFrom(start source.Span) source.Span {
	if p.lastSpan.End < start.Start {
		return start
	}
	return source.Span{File: start.File, Start: start.Start, End: p.lastSpan.End}
}

// enter кладёт конструкцию на стек; вызывать как defer p.enter(...)().
// nest увеличивает глубину вложенности; при превышении maxNesting фиксирует SynTooDeep.
// Вызывающий обязан вызвать возвращённую функцию, даже если ok == false.
func (p *Parser) nest() (done func(), ok bool) {
	p.depth++
	if p.depth > maxNesting {
		return p.unnest, p.fail(diag.SynTooDeep,
			fmt.Sprintf("nesting deeper than %d levels", maxNesting))
	}
	return p.unnest, true
}

func (p *Parser) unnest() { p.depth-- }

func (p *Parser) enter(what string, sp source.Span) func() {
	p.constructs = append(p.constructs, &construct{what: what, span: sp})
	return p.leave
}

func (p *Parser) leave() {
	// после ошибки стек уже не нужен, но и не мешает
	p.constructs = p.constructs[:len(p.constructs)-1]
}

// relabel уточняет описание текущей конструкции, когда оно стало известно
// (например, объявление процедуры оказалось телом).
func (p *Parser) relabel(what string) {
	if n := len(p.constructs); n > 0 {
		p.constructs[n-1].what = what
	}
}
