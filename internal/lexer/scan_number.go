package lexer

import (
	"fmt"

	"adaleph/internal/diag"
	"adaleph/internal/source"
	"adaleph/internal/token"
)

// scanNumber разбирает decimal_literal и based_literal:
//
//	numeral [. numeral] [exponent]
//	base # based_numeral [. based_numeral] # [exponent]
//
// '_' допускается только между цифрами. Литерал с точкой: RealLit, иначе IntLit.
// Отрицательная экспонента у целого литерала: ошибка.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	base, ok := lx.scanDigits(10)
	if !ok {
		return lx.badNumber(start)
	}

	if lx.cursor.Peek() == '#' {
		if base < 2 || base > 16 {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return lx.errLex(diag.LexBadNumber, sp, 0, fmt.Sprintf("base %d is out of range 2..16", base))
		}
		lx.cursor.Bump() // '#'
		if _, ok := lx.scanDigits(base); !ok {
			return lx.badNumber(start)
		}
		if lx.cursor.Peek() == '.' {
			lx.cursor.Bump()
			kind = token.RealLit
			if _, ok := lx.scanDigits(base); !ok {
				return lx.badNumber(start)
			}
		}
		if !lx.cursor.Eat('#') {
			sp := lx.cursor.SpanFrom(start)
			return lx.errLex(diag.LexBadNumber, sp, 0, "missing closing '#' in based literal")
		}
	} else if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		// "1..10": это диапазон, точка не часть числа
		lx.cursor.Bump()
		kind = token.RealLit
		if _, ok := lx.scanDigits(10); !ok {
			return lx.badNumber(start)
		}
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		negative := false
		switch lx.cursor.Peek() {
		case '+':
			lx.cursor.Bump()
		case '-':
			lx.cursor.Bump()
			negative = true
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			return lx.errLex(diag.LexBadNumber, sp, 0, "expected digit after exponent")
		}
		if _, ok := lx.scanDigits(10); !ok {
			return lx.badNumber(start)
		}
		if negative && kind == token.IntLit {
			sp := lx.cursor.SpanFrom(start)
			return lx.errLex(diag.LexBadNumber, sp, 0, "integer literal cannot have a negative exponent")
		}
	}

	// "12abc": буква вплотную к числу
	if r, sz := lx.peekRune(); sz > 0 && isLetterOrDigitRune(r) {
		lx.bumpRune()
		return lx.badNumber(start)
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanDigits читает digit {[_] digit} в заданной системе счисления.
// Возвращает значение (насыщается, используется только для base) и признак корректности.
func (lx *Lexer) scanDigits(base int) (int, bool) {
	val := 0
	d := extDigit(lx.cursor.Peek())
	if d < 0 || d >= base {
		if d >= base {
			lx.cursor.Bump()
		}
		return 0, false
	}
	for {
		b := lx.cursor.Peek()
		if b == '_' {
			lx.cursor.Bump()
			nd := extDigit(lx.cursor.Peek())
			if nd < 0 || nd >= base {
				return 0, false
			}
			continue
		}
		d = extDigit(b)
		if d < 0 {
			break
		}
		if d >= base {
			// в десятичной части 'e': экспонента, не цифра
			if base == 10 {
				break
			}
			lx.cursor.Bump()
			return 0, false
		}
		lx.cursor.Bump()
		if val < 1<<16 {
			val = val*base + d
		}
	}
	return val, true
}

func (lx *Lexer) badNumber(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return lx.errLex(diag.LexBadNumber, sp, 0, fmt.Sprintf("malformed numeric literal %q", lx.text(sp)))
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
