package driver

import (
	"errors"
	"fmt"

	"adaleph/internal/diag"
	"adaleph/internal/lexer"
	"adaleph/internal/parser"
	"adaleph/internal/source"
)

// ErrorKind classifies parse failures.
type ErrorKind uint8

const (
	ErrLex ErrorKind = iota + 1
	ErrSyntax
	ErrInternal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrLex:
		return "lexical"
	case ErrSyntax:
		return "syntax"
	case ErrInternal:
		return "internal"
	}
	return "unknown"
}

// Error is the structured failure returned by Parse. Exactly one is produced
// per failed call: the first error stops lexing and parsing.
type Error struct {
	Kind ErrorKind
	Code diag.Code
	Path string
	Span source.Span
	Pos  source.LineCol
	// Found describes the offending token or character.
	Found string
	// Expected lists what would have been accepted; empty for lexical and internal errors.
	Expected []string
	// Construct is the innermost construct being parsed, e.g. `if statement`.
	Construct string
	Message   string

	cause error
}

func (e *Error) Error() string {
	if e.Pos.Line == 0 {
		return fmt.Sprintf("%s: %s %s: %s", e.Path, e.Kind, e.Code.ID(), e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s %s: %s", e.Path, e.Pos.Line, e.Pos.Col, e.Kind, e.Code.ID(), e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// IsKind reports whether err is a *Error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == k
}

// newError переводит ошибку лексера или парсера в *Error с позицией.
func newError(fs *source.FileSet, file *source.File, err error) *Error {
	out := &Error{Path: file.Path, cause: err}
	var (
		lexErr *lexer.Error
		synErr *parser.SyntaxError
	)
	switch {
	case errors.As(err, &lexErr):
		out.Kind = ErrLex
		out.Code = lexErr.Code
		out.Span = lexErr.Span
		out.Message = lexErr.Msg
		if lexErr.Char != 0 {
			out.Found = fmt.Sprintf("%q", lexErr.Char)
		} else if lexErr.Span.End <= sourceLen(file) {
			out.Found = string(file.Content[lexErr.Span.Start:lexErr.Span.End])
		}
	case errors.As(err, &synErr):
		out.Kind = ErrSyntax
		out.Code = synErr.Code
		out.Span = synErr.Span
		out.Message = synErr.Msg
		out.Found = synErr.FoundText()
		out.Expected = append([]string(nil), synErr.Expected...)
		out.Construct = synErr.Construct
	default:
		out.Kind = ErrInternal
		out.Code = diag.InternalError
		out.Span = source.Span{File: file.ID}
		out.Message = err.Error()
		return out
	}
	out.Pos, _ = fs.Resolve(out.Span)
	return out
}

// internalError оборачивает панику лексера или парсера.
func internalError(file *source.File, recovered any) *Error {
	return &Error{
		Kind:    ErrInternal,
		Code:    diag.InternalError,
		Path:    file.Path,
		Span:    source.Span{File: file.ID},
		Message: fmt.Sprintf("internal parser failure: %v", recovered),
		cause:   fmt.Errorf("panic: %v", recovered),
	}
}
