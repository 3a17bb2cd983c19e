package lexer

import (
	"fmt"

	"adaleph/internal/diag"
	"adaleph/internal/token"
)

// Жадность: сначала составные разделители, затем односимвольные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	switch {
	case lx.try2('=', '>'):
		return emit(token.Arrow)
	case lx.try2('.', '.'):
		return emit(token.DotDot)
	case lx.try2('*', '*'):
		return emit(token.StarStar)
	case lx.try2(':', '='):
		return emit(token.Assign)
	case lx.try2('/', '='):
		return emit(token.NotEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('<', '<'):
		return emit(token.LabelOpen)
	case lx.try2('>', '>'):
		return emit(token.LabelClose)
	case lx.try2('<', '>'):
		return emit(token.Box)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '&':
		return emit(token.Amp)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '*':
		return emit(token.Star)
	case '+':
		return emit(token.Plus)
	case ',':
		return emit(token.Comma)
	case '-':
		return emit(token.Minus)
	case '.':
		return emit(token.Dot)
	case '/':
		return emit(token.Slash)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case '<':
		return emit(token.Lt)
	case '=':
		return emit(token.Eq)
	case '>':
		return emit(token.Gt)
	case '|':
		return emit(token.Bar)
	default:
		// неизвестный символ
		sp := lx.cursor.SpanFrom(start)
		return lx.errLex(diag.LexUnknownChar, sp, rune(ch), fmt.Sprintf("unexpected character %q", rune(ch)))
	}
}
