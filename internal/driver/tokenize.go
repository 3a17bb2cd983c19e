package driver

import (
	"context"
	"fmt"

	"adaleph/internal/diag"
	"adaleph/internal/lexer"
	"adaleph/internal/source"
	"adaleph/internal/token"
	"adaleph/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize загружает файл и возвращает поток токенов до EOF включительно.
// При лексической ошибке Tokens пуст, Bag содержит диагностику, ошибка: *Error.
func Tokenize(ctx context.Context, path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return tokenizeFile(ctx, fs, fs.Get(fileID), maxDiagnostics)
}

// TokenizeSource is Tokenize for in-memory input.
func TokenizeSource(ctx context.Context, name, src string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(src))
	return tokenizeFile(ctx, fs, fs.Get(fileID), maxDiagnostics)
}

func tokenizeFile(ctx context.Context, fs *source.FileSet, file *source.File, maxDiagnostics int) (res *TokenizeResult, err error) {
	span, _ := trace.StartSpan(ctx, trace.ScopeDriver, "driver.tokenize")
	span.WithExtra("file", file.Path)

	res = &TokenizeResult{FileSet: fs, File: file, Bag: diag.NewBag(maxDiagnostics)}
	defer func() {
		if r := recover(); r != nil {
			e := internalError(file, r)
			res.Bag.Add(diag.New(diag.SevError, e.Code, e.Span, e.Message))
			res.Tokens = nil
			err = e
		}
		span.End(fmt.Sprintf("%d tokens", len(res.Tokens)))
	}()

	toks, lexErr := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: res.Bag}})
	if lexErr != nil {
		return res, newError(fs, file, lexErr)
	}
	res.Tokens = toks
	return res, nil
}
