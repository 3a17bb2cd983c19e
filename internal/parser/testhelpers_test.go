package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"adaleph/internal/diag"
	"adaleph/internal/source"
	"adaleph/internal/tree"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func testFile(input string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.adb", []byte(input)))
}

func testOptions() (Options, *diag.Bag) {
	bag := diag.NewBag(100)
	return Options{Reporter: diag.BagReporter{Bag: bag}}, bag
}

func parseProgramSource(t *testing.T, input string) (*tree.Program, *diag.Bag, error) {
	t.Helper()
	opts, bag := testOptions()
	prog, err := ParseProgram(testFile(input), opts)
	return prog, bag, err
}

func parseStatementsSource(t *testing.T, input string) ([]tree.Node, *diag.Bag, error) {
	t.Helper()
	opts, bag := testOptions()
	stmts, err := ParseStatements(testFile(input), opts)
	return stmts, bag, err
}

func parseDeclarationsSource(t *testing.T, input string) ([]tree.Node, *diag.Bag, error) {
	t.Helper()
	opts, bag := testOptions()
	decls, err := ParseDeclarations(testFile(input), opts)
	return decls, bag, err
}

func mustStatements(t *testing.T, input string) []tree.Node {
	t.Helper()
	stmts, bag, err := parseStatementsSource(t, input)
	if err != nil {
		t.Fatalf("parse %q: %v (diagnostics: %s)", input, err, diagnosticsSummary(bag))
	}
	return stmts
}

func mustDeclarations(t *testing.T, input string) []tree.Node {
	t.Helper()
	decls, bag, err := parseDeclarationsSource(t, input)
	if err != nil {
		t.Fatalf("parse %q: %v (diagnostics: %s)", input, err, diagnosticsSummary(bag))
	}
	return decls
}

// parseExpr разбирает выражение как правую часть присваивания.
func parseExpr(t *testing.T, input string) tree.Node {
	t.Helper()
	stmts := mustStatements(t, "X := "+input+";")
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	assign, ok := stmts[0].(*tree.Assign)
	if !ok {
		t.Fatalf("expected assignment, got %s", stmts[0].Kind())
	}
	return assign.Value
}

// syntaxError достаёт *SyntaxError и проверяет, что в диагностику попало ровно одно сообщение.
func syntaxError(t *testing.T, err error, bag *diag.Bag) *SyntaxError {
	t.Helper()
	if err == nil {
		t.Fatal("expected a syntax error, got none")
	}
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
	}
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %s", diagnosticsSummary(bag))
	}
	return se
}

// sexpr печатает выражение в скобочной записи: (op left right).
func sexpr(n tree.Node) string {
	switch n := n.(type) {
	case nil:
		return "<nil>"
	case *tree.Ident:
		return n.Name
	case *tree.Literal:
		return n.Raw
	case *tree.Binary:
		return "(" + n.Op.String() + " " + sexpr(n.Left) + " " + sexpr(n.Right) + ")"
	case *tree.Unary:
		return "(" + n.Op.String() + " " + sexpr(n.Operand) + ")"
	case *tree.Selected:
		return sexpr(n.Prefix) + "." + sexpr(n.Selector)
	case *tree.Deref:
		return sexpr(n.Prefix) + ".all"
	case *tree.Attribute:
		s := sexpr(n.Prefix) + "'" + n.Designator.Name
		if len(n.Args) > 0 {
			s += "(" + sexprList(n.Args) + ")"
		}
		return s
	case *tree.Call:
		return "(call " + sexpr(n.Name) + " " + sexprList(n.Args) + ")"
	case *tree.Range:
		return "(.. " + sexpr(n.Low) + " " + sexpr(n.High) + ")"
	case *tree.Aggregate:
		if len(n.Items) == 0 {
			return "(agg)"
		}
		return "(agg " + sexprList(n.Items) + ")"
	case *tree.Assoc:
		return "(=> " + sexprList(n.Choices) + " " + sexpr(n.Value) + ")"
	case *tree.Others:
		return "others"
	case *tree.Qualified:
		return "(qual " + sexpr(n.Mark) + " " + sexpr(n.Operand) + ")"
	case *tree.Allocator:
		return "(new " + sexpr(n.Subtype) + ")"
	case *tree.SubtypeIndication:
		if n.Constraint == nil {
			return sexpr(n.Mark)
		}
		return "(sub " + sexpr(n.Mark) + " " + sexpr(n.Constraint) + ")"
	}
	return n.Kind().String()
}

func sexprList(ns []tree.Node) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = sexpr(n)
	}
	return strings.Join(parts, " ")
}

func kindsOf(ns []tree.Node) []tree.Kind {
	out := make([]tree.Kind, len(ns))
	for i, n := range ns {
		out[i] = n.Kind()
	}
	return out
}
