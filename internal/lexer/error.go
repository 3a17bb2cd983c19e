package lexer

import (
	"fmt"

	"adaleph/internal/diag"
	"adaleph/internal/source"
	"adaleph/internal/token"
)

// Error describes the lexical failure that aborted tokenization.
type Error struct {
	Code diag.Code
	Span source.Span
	// Char is the offending character for LexUnknownChar, zero otherwise.
	Char rune
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code.ID(), e.Span, e.Msg)
}

// errLex фиксирует первую лексическую ошибку, репортит её и переводит курсор в конец:
// после ошибки лексер выдаёт только EOF.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, ch rune, msg string) token.Token {
	if lx.err == nil {
		lx.err = &Error{Code: code, Span: sp, Char: ch, Msg: msg}
		if lx.opts.Reporter != nil {
			diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
		}
	}
	lx.cursor.Exhaust()
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
