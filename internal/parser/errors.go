package parser

import (
	"fmt"
	"strings"

	"adaleph/internal/diag"
	"adaleph/internal/source"
	"adaleph/internal/token"
)

// SyntaxError описывает первую синтаксическую ошибку; разбор на ней останавливается.
type SyntaxError struct {
	Code  diag.Code
	Found token.Token
	Span  source.Span
	// Expected: описания токенов (и категорий вроде "expression"), которые
	// были бы приняты в этой позиции, в порядке проверки.
	Expected []string
	// Construct: самая внутренняя разбираемая конструкция, например `if statement`.
	Construct     string
	ConstructSpan source.Span
	Msg           string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code.ID(), e.Span, e.Msg)
}

// FoundText описывает найденный токен так же, как сообщение об ошибке.
func (e *SyntaxError) FoundText() string { return describeFound(e.Found) }

// unexpected фиксирует ошибку "нашли X, ожидали одно из ...". Всегда возвращает false.
func (p *Parser) unexpected(code diag.Code) bool {
	found := p.peek()
	var b strings.Builder
	b.WriteString("unexpected ")
	b.WriteString(describeFound(found))
	if c := p.innermost(); c != nil {
		b.WriteString(" while parsing ")
		b.WriteString(c.what)
	}
	if len(p.expected) > 0 {
		b.WriteString(": expected ")
		b.WriteString(joinAlternatives(p.expected))
	}
	return p.failAt(code, found.Span, b.String())
}

// fail фиксирует ошибку с готовым сообщением на текущем токене.
func (p *Parser) fail(code diag.Code, msg string) bool {
	return p.failAt(code, p.peek().Span, msg)
}

func (p *Parser) failAt(code diag.Code, sp source.Span, msg string) bool {
	if p.err != nil {
		return false
	}
	e := &SyntaxError{
		Code:     code,
		Found:    p.peek(),
		Span:     sp,
		Expected: append([]string(nil), p.expected...),
		Msg:      msg,
	}
	rb := diag.ReportError(p.opts.Reporter, code, sp, msg)
	if c := p.innermost(); c != nil {
		e.Construct = c.what
		e.ConstructSpan = c.span
		if c.span != sp {
			rb.WithNote(c.span, c.what+" starts here")
		}
	}
	rb.Emit()
	p.err = e
	return false
}

func (p *Parser) innermost() *construct {
	if n := len(p.constructs); n > 0 {
		return p.constructs[n-1]
	}
	return nil
}

func describeFound(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of input"
	case token.Ident:
		return fmt.Sprintf("identifier %q", tok.Text)
	case token.IntLit, token.RealLit:
		return "numeric literal " + tok.Text
	case token.StringLit:
		return "string literal " + tok.Text
	case token.CharLit:
		return "character literal " + tok.Text
	}
	return tok.Kind.Describe()
}

// joinAlternatives: "a", "a or b", "a, b or c"
func joinAlternatives(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}

func codeForMissing(k token.Kind) diag.Code {
	switch k {
	case token.Semicolon:
		return diag.SynExpectSemicolon
	case token.Ident:
		return diag.SynExpectIdentifier
	case token.KwEnd:
		return diag.SynExpectEnd
	case token.RParen:
		return diag.SynUnclosedParen
	}
	return diag.SynUnexpectedToken
}
