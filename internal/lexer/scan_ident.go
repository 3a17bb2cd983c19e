package lexer

import (
	"fmt"

	"adaleph/internal/diag"
	"adaleph/internal/token"

	"golang.org/x/text/unicode/norm"
)

// scanIdentOrKeyword сканирует letter {[_] letter_or_digit} и проверяет через LookupKeyword.
// Ключевые слова регистронезависимые; Token.Text сохраняет исходное написание (в NFC).
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 || !isLetterRune(r) {
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		return lx.errLex(diag.LexUnknownChar, sp, r, fmt.Sprintf("unexpected character %q", r))
	}
	lx.bumpRune()
	ascii := r < utf8RuneSelf

	for {
		r, sz = lx.peekRune()
		if sz == 0 {
			break
		}
		if r == '_' {
			lx.cursor.Bump()
			next, nsz := lx.peekRune()
			if nsz == 0 || !isLetterOrDigitRune(next) {
				sp := lx.cursor.SpanFrom(start)
				if next == '_' {
					return lx.errLex(diag.LexBadIdentifier, sp, 0, "consecutive underscores in identifier")
				}
				return lx.errLex(diag.LexBadIdentifier, sp, 0, "identifier cannot end with an underscore")
			}
			continue
		}
		if !isLetterOrDigitRune(r) {
			break
		}
		if r >= utf8RuneSelf {
			ascii = false
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if !ascii {
		text = norm.NFC.String(text)
	}

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
