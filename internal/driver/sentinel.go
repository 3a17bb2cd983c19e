package driver

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"

	"adaleph/internal/diagfmt"
	"adaleph/internal/tree"
)

// Sentinel implements the legacy contract: failures yield *tree.Unit (Program
// root) or an empty sequence (list roots), and the diagnostic is written to Out.
type Sentinel struct {
	// Out receives rendered diagnostics; nil means os.Stderr.
	Out   io.Writer
	Color bool
	// Name is the file name used in diagnostics; empty means "<input>".
	Name string

	mu sync.Mutex
}

var defaultSentinel = &Sentinel{}

// ParseProgram parses a compilation unit, returning *tree.Program or *tree.Unit.
func ParseProgram(src string) tree.Node { return defaultSentinel.ParseProgram(src) }

// ParseDeclarations parses a declaration list; an empty non-nil slice on failure.
func ParseDeclarations(src string) []tree.Node { return defaultSentinel.ParseDeclarations(src) }

// ParseStatements parses a statement list; an empty non-nil slice on failure.
func ParseStatements(src string) []tree.Node { return defaultSentinel.ParseStatements(src) }

func (s *Sentinel) ParseProgram(src string) tree.Node {
	res, ok := s.run(RootProgram, src)
	if !ok {
		return &tree.Unit{}
	}
	return res.Program
}

func (s *Sentinel) ParseDeclarations(src string) []tree.Node {
	res, ok := s.run(RootDeclarations, src)
	if !ok {
		return []tree.Node{}
	}
	return nonNil(res.Nodes)
}

func (s *Sentinel) ParseStatements(src string) []tree.Node {
	res, ok := s.run(RootStatements, src)
	if !ok {
		return []tree.Node{}
	}
	return nonNil(res.Nodes)
}

func (s *Sentinel) run(root Root, src string) (*Result, bool) {
	name := s.Name
	if name == "" {
		name = "<input>"
	}
	res, err := Parse(context.Background(), root, name, src, Options{})
	if err == nil {
		return res, true
	}
	s.report(res)
	return res, false
}

// report рендерит диагностику целиком в буфер и пишет одним вызовом,
// чтобы параллельные вызовы не перемешивали строки.
func (s *Sentinel) report(res *Result) {
	if res == nil {
		return
	}
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, res.Bag, res.FileSet, diagfmt.PrettyOpts{
		Color:     s.Color,
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: true,
	})
	out := s.Out
	if out == nil {
		out = os.Stderr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = out.Write(buf.Bytes())
}

func nonNil(ns []tree.Node) []tree.Node {
	if ns == nil {
		return []tree.Node{}
	}
	return ns
}
