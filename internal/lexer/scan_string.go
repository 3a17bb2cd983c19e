package lexer

import (
	"fmt"
	"unicode/utf8"

	"adaleph/internal/diag"
	"adaleph/internal/token"
)

// scanString: "..." где "" внутри означает одну кавычку. Перевод строки
// или EOF до закрывающей кавычки: LexUnterminatedString.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			if lx.cursor.Peek() == '"' {
				lx.cursor.Bump()
				continue
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			return lx.errLex(diag.LexUnterminatedString, sp, 0, "newline in string literal")
		}
		if b >= utf8.RuneSelf {
			if r, sz := lx.peekRune(); r == utf8.RuneError && sz == 1 {
				return lx.invalidByte("string literal")
			}
			lx.bumpRune()
			continue
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return lx.errLex(diag.LexUnterminatedString, sp, 0, "unterminated string literal")
}

// invalidByte сообщает о байте, не образующем руну UTF-8; span: ровно этот байт.
func (lx *Lexer) invalidByte(where string) token.Token {
	at := lx.cursor.Mark()
	b := lx.cursor.Peek()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(at)
	return lx.errLex(diag.LexUnknownChar, sp, utf8.RuneError, fmt.Sprintf("invalid UTF-8 byte 0x%02X in %s", b, where))
}

// tickAfter: после этих токенов апостроф всегда разделитель (атрибут или
// квалифицированное выражение), а не начало символьного литерала.
func tickAfter(k token.Kind) bool {
	switch k {
	case token.Ident, token.RParen, token.KwAll, token.StringLit, token.CharLit:
		return true
	}
	return false
}

// scanApostrophe выбирает между Tick и CharLit по предыдущему токену.
func (lx *Lexer) scanApostrophe() token.Token {
	start := lx.cursor.Mark()
	if tickAfter(lx.prev) {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Tick, Span: sp, Text: "'"}
	}

	lx.cursor.Bump() // opening '\''
	r, sz := lx.peekRune()
	if sz == 0 || r == '\n' || r == '\t' {
		sp := lx.cursor.SpanFrom(start)
		return lx.errLex(diag.LexBadCharLiteral, sp, 0, "expected graphic character after apostrophe")
	}
	if r == utf8.RuneError && sz == 1 {
		return lx.invalidByte("character literal")
	}
	lx.bumpRune()
	if !lx.cursor.Eat('\'') {
		sp := lx.cursor.SpanFrom(start)
		return lx.errLex(diag.LexBadCharLiteral, sp, 0, fmt.Sprintf("unterminated character literal %q", lx.text(sp)))
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.CharLit, Span: sp, Text: lx.text(sp)}
}
