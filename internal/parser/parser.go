package parser

import (
	"adaleph/internal/diag"
	"adaleph/internal/lexer"
	"adaleph/internal/source"
	"adaleph/internal/token"
	"adaleph/internal/tree"
)

type Options struct {
	// Reporter получает диагностику первой ошибки (лексической или синтаксической). May be nil.
	Reporter diag.Reporter
}

// Parser: состояние парсера на один вызов. Не переиспользуется.
type Parser struct {
	toks     []token.Token
	pos      int
	opts     Options
	lastSpan source.Span // span последнего съеденного токена
	eof      source.Span

	expected   []string     // что подошло бы в текущей позиции; сбрасывается в advance
	constructs []*construct // стек разбираемых конструкций для диагностики
	depth      int          // текущая глубина вложенности выражений/операторов/объявлений
	err        *SyntaxError
}

// maxNesting ограничивает рекурсию спуска: глубже стек горутины может переполниться,
// а это фатальная ошибка рантайма, которую recover не ловит.
const maxNesting = 1000

type construct struct {
	what string
	span source.Span
}

func newParser(toks []token.Token, opts Options) *Parser {
	p := &Parser{toks: toks, opts: opts}
	if n := len(toks); n > 0 {
		p.eof = toks[n-1].Span
		p.lastSpan = source.Span{File: p.eof.File}
	}
	return p
}

func tokenize(file *source.File, opts Options) ([]token.Token, error) {
	return lexer.Tokenize(file, lexer.Options{Reporter: opts.Reporter})
}

// ParseProgram разбирает компилируемую единицу: {context_clause} library_item EOF.
// Ошибка: *lexer.Error или *SyntaxError.
func ParseProgram(file *source.File, opts Options) (*tree.Program, error) {
	toks, err := tokenize(file, opts)
	if err != nil {
		return nil, err
	}
	return ParseProgramTokens(toks, opts)
}

// ParseDeclarations разбирает {declarative_item} EOF. Пустой ввод: пустой результат.
func ParseDeclarations(file *source.File, opts Options) ([]tree.Node, error) {
	toks, err := tokenize(file, opts)
	if err != nil {
		return nil, err
	}
	return ParseDeclarationTokens(toks, opts)
}

// ParseStatements разбирает {statement} EOF. Пустой ввод: пустой результат.
func ParseStatements(file *source.File, opts Options) ([]tree.Node, error) {
	toks, err := tokenize(file, opts)
	if err != nil {
		return nil, err
	}
	return ParseStatementTokens(toks, opts)
}

// ParseProgramTokens разбирает уже полученный поток токенов; последний токен должен быть EOF.
// Драйвер использует эти варианты, чтобы мерить лексер и парсер по отдельности.
func ParseProgramTokens(toks []token.Token, opts Options) (*tree.Program, error) {
	p := newParser(toks, opts)
	prog, ok := p.parseProgram()
	if !ok {
		return nil, p.err
	}
	return prog, nil
}

func ParseDeclarationTokens(toks []token.Token, opts Options) ([]tree.Node, error) {
	p := newParser(toks, opts)
	decls, ok := p.parseDeclarationList()
	if !ok {
		return nil, p.err
	}
	return decls, nil
}

func ParseStatementTokens(toks []token.Token, opts Options) ([]tree.Node, error) {
	p := newParser(toks, opts)
	stmts, ok := p.parseStatementList()
	if !ok {
		return nil, p.err
	}
	return stmts, nil
}

func (p *Parser) parseProgram() (*tree.Program, bool) {
	start := p.peek().Span
	defer p.enter("compilation unit", start)()

	prog := &tree.Program{}
	for {
		var (
			item tree.Node
			ok   bool
		)
		switch {
		case p.at(token.KwWith):
			item, ok = p.parseWithClause()
		case p.at(token.KwUse):
			item, ok = p.parseUseClause()
		case p.at(token.KwPragma):
			item, ok = p.parsePragma()
		default:
			ok = true
		}
		if !ok {
			return nil, false
		}
		if item == nil {
			break
		}
		prog.Context = append(prog.Context, item)
	}

	unit, ok := p.parseLibraryItem()
	if !ok {
		return nil, false
	}
	prog.Unit = unit
	if !p.at(token.EOF) {
		return nil, p.unexpected(diag.SynTrailingInput)
	}
	prog.Span = p.spanFrom(start)
	return prog, true
}

// parseLibraryItem: subprogram declaration/body or package specification/body.
func (p *Parser) parseLibraryItem() (tree.Node, bool) {
	switch {
	case p.at(token.KwProcedure), p.at(token.KwFunction):
		return p.parseSubprogram()
	case p.at(token.KwPackage):
		return p.parsePackage()
	}
	return nil, p.unexpected(diag.SynExpectLibraryItem)
}

func (p *Parser) parseDeclarationList() ([]tree.Node, bool) {
	out := make([]tree.Node, 0, 4)
	for !p.at(token.EOF) {
		d, ok := p.parseDeclarativeItem()
		if !ok {
			return nil, false
		}
		out = append(out, d)
	}
	return out, true
}

func (p *Parser) parseStatementList() ([]tree.Node, bool) {
	out := make([]tree.Node, 0, 4)
	for !p.at(token.EOF) {
		s, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
