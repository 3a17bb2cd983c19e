package driver

import (
	"context"
	"fmt"

	"fortio.org/safecast"

	"adaleph/internal/diag"
	"adaleph/internal/diagfmt"
	"adaleph/internal/lexer"
	"adaleph/internal/observ"
	"adaleph/internal/parser"
	"adaleph/internal/source"
	"adaleph/internal/token"
	"adaleph/internal/trace"
	"adaleph/internal/tree"
)

// DefaultMaxDiagnostics bounds the diagnostic bag when Options leaves it unset.
const DefaultMaxDiagnostics = 100

type Options struct {
	MaxDiagnostics int
	// Cache, when set, is consulted before parsing and updated afterwards.
	Cache *Cache
	// Observer receives phase boundaries. May be nil.
	Observer PhaseObserver
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// Result is the outcome of one Parse call. On failure it is still returned
// alongside the error so callers can render the diagnostics in Bag.
type Result struct {
	Root    Root
	FileSet *source.FileSet
	File    *source.File
	// Program is set for RootProgram, Nodes for the list roots.
	Program *tree.Program
	Nodes   []tree.Node
	Bag     *diag.Bag
	Timings observ.Report
	// Cached означает, что результат взят из кэша: дерево есть только в
	// сериализованном виде (Value), Program и Nodes пусты.
	// Value разделяется между всеми попаданиями в кэш: только для чтения.
	Cached bool
	Value  any
}

// Node returns the root node for RootProgram, nil otherwise.
func (r *Result) Node() tree.Node {
	if r == nil || r.Program == nil {
		return nil
	}
	return r.Program
}

// List returns the top-level nodes: the program alone, or the parsed sequence.
func (r *Result) List() []tree.Node {
	if r == nil {
		return nil
	}
	if r.Program != nil {
		return []tree.Node{r.Program}
	}
	return r.Nodes
}

// Output builds the serialisable tree form, also for cached results.
func (r *Result) Output() diagfmt.TreeOutput {
	out := diagfmt.BuildTreeOutput(r.File.Path, r.Root.String(), r.Node(), r.Nodes)
	if r.Cached {
		out.Node, out.Nodes = nil, nil
		if r.Root == RootProgram {
			out.Node = r.Value
		} else if v, ok := r.Value.([]any); ok {
			out.Nodes = v
		}
	}
	return out
}

// Parse разбирает src как вход для root. Ошибка разбора: *Error,
// отмена контекста возвращается как есть.
func Parse(ctx context.Context, root Root, name, src string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(src))
	return parseFile(ctx, root, fs, fs.Get(id), opts)
}

// ParseFile загружает файл с диска (CRLF и BOM нормализуются) и разбирает его.
// Ошибка чтения возвращается как есть, ошибки разбора: как *Error.
func ParseFile(ctx context.Context, root Root, path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return parseFile(ctx, root, fs, fs.Get(id), opts)
}

func parseFile(ctx context.Context, root Root, fs *source.FileSet, file *source.File, opts Options) (res *Result, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "driver.parse")
	span.WithExtra("root", root.String()).WithExtra("file", file.Path)

	bag := diag.NewBag(opts.maxDiagnostics())
	res = &Result{Root: root, FileSet: fs, File: file, Bag: bag}
	timer := observ.NewTimer()

	defer func() {
		if r := recover(); r != nil {
			e := internalError(file, r)
			bag.Add(diag.New(diag.SevError, e.Code, e.Span, e.Message))
			res.Program, res.Nodes = nil, nil
			err = e
		}
		res.Timings = timer.Report()
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		span.End(outcome)
	}()

	if err := ctx.Err(); err != nil {
		return res, err
	}

	rec := newPhaseRecorder(ctx, file.Path, timer, opts.Observer)
	if opts.Cache != nil {
		var hit bool
		rec.run("cache", func() string {
			hit, err = opts.Cache.restore(res)
			if hit {
				return "hit"
			}
			return "miss"
		})
		if hit {
			return res, err
		}
	}

	reporter := diag.BagReporter{Bag: bag}
	var (
		toks     []token.Token
		parseErr error
	)
	rec.run("lex", func() string {
		toks, parseErr = lexer.Tokenize(file, lexer.Options{Reporter: reporter})
		if parseErr != nil {
			return "failed"
		}
		return fmt.Sprintf("%d tokens", len(toks))
	})
	if parseErr == nil {
		rec.run("parse", func() string {
			popts := parser.Options{Reporter: reporter}
			switch root {
			case RootDeclarations:
				res.Nodes, parseErr = parser.ParseDeclarationTokens(toks, popts)
			case RootStatements:
				res.Nodes, parseErr = parser.ParseStatementTokens(toks, popts)
			default:
				res.Program, parseErr = parser.ParseProgramTokens(toks, popts)
			}
			if parseErr != nil {
				return "failed"
			}
			return fmt.Sprintf("%d nodes", countNodes(res.List()))
		})
	}

	if parseErr != nil {
		res.Program, res.Nodes = nil, nil
		err = newError(fs, file, parseErr)
	}
	if opts.Cache != nil {
		if cerr := opts.Cache.store(res, err); cerr != nil {
			// результат разбора корректен, кэш только предупреждает
			bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: file.ID}, "cache: "+cerr.Error()))
			trace.Point(trace.FromContext(ctx), trace.ScopeDriver, "cache.store", cerr.Error(), span.ID())
		}
	}
	return res, err
}

func countNodes(ns []tree.Node) int {
	total := 0
	for _, n := range ns {
		total += tree.Count(n)
	}
	return total
}

// sourceLen returns len(file.Content) as a span offset.
func sourceLen(file *source.File) uint32 {
	n, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return ^uint32(0)
	}
	return n
}
