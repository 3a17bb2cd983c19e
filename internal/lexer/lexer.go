package lexer

import (
	"adaleph/internal/diag"
	"adaleph/internal/source"
	"adaleph/internal/token"
)

// maxTokenLength caps a single lexeme; longer input is rejected instead of
// producing megabyte-sized identifiers or literals.
const maxTokenLength = 1 << 16

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
	prev   token.Kind     // предыдущий значимый токен, нужен для разбора апострофа
	err    *Error
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		prev:   token.Invalid,
	}
}

// Err returns the lexical error that stopped the lexer, if any.
func (lx *Lexer) Err() *Error {
	return lx.err
}

// Next возвращает следующий **значимый** токен с уже собранным Leading.
// После EOF или ошибки всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	// Leading из hold к EOF не приклеиваем
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isLetterByte(ch):
		tok = lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		// возможный Unicode идентификатор, scanIdentOrKeyword разберётся
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '"':
		tok = lx.scanString()
	case ch == '\'':
		tok = lx.scanApostrophe()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	if tok.Kind != token.Invalid && tok.Span.Len() > maxTokenLength {
		tok = lx.errLex(diag.LexTokenTooLong, tok.Span, 0, "token exceeds maximum length")
	}

	tok.Leading = lx.hold
	lx.hold = nil
	if tok.Kind == token.Invalid {
		return tok
	}
	lx.prev = tok.Kind
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// Tokenize materialises the whole token stream, terminated by EOF.
// The first lexical error aborts the call.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		if lx.err != nil {
			return nil, lx.err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}
