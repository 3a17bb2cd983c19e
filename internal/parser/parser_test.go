package parser

import (
	"strings"
	"testing"

	"adaleph/internal/diag"
	"adaleph/internal/tree"
)

func TestProgramProcedureBody(t *testing.T) {
	prog, bag, err := parseProgramSource(t, "procedure P is begin null; end P;")
	if err != nil {
		t.Fatalf("unexpected error: %v (%s)", err, diagnosticsSummary(bag))
	}
	sub, ok := prog.Unit.(*tree.SubprogramDecl)
	if !ok {
		t.Fatalf("unit = %s, want SubprogramDecl", prog.Unit.Kind())
	}
	if tree.NameString(sub.Spec.Name) != "P" || sub.Body == nil {
		t.Fatalf("name %s body %v", tree.NameString(sub.Spec.Name), sub.Body)
	}
	if len(sub.Body.Stmts) != 1 || sub.Body.Stmts[0].Kind() != tree.KindNull {
		t.Fatalf("body statements = %v", kindsOf(sub.Body.Stmts))
	}
}

func TestProgramMissingEnd(t *testing.T) {
	prog, bag, err := parseProgramSource(t, "procedure P is begin")
	se := syntaxError(t, err, bag)
	if prog != nil {
		t.Fatal("expected no program on failure")
	}
	if se.Code != diag.SynExpectStatement || se.Construct != `procedure body "P"` {
		t.Fatalf("got %s in %q: %s", se.Code.ID(), se.Construct, se.Msg)
	}
	d := bag.Items()[0]
	if d.Message == "" || len(d.Notes) != 1 || !strings.Contains(d.Notes[0].Msg, "starts here") {
		t.Fatalf("diagnostic = %+v", d)
	}
}

func TestProgramEmptyInput(t *testing.T) {
	_, bag, err := parseProgramSource(t, "")
	if se := syntaxError(t, err, bag); se.Code != diag.SynExpectLibraryItem {
		t.Fatalf("got %s", se.Code.ID())
	}
}

func TestProgramContextClauses(t *testing.T) {
	src := `with Ada.Text_IO, Ada.Strings;
use Ada.Text_IO;
pragma Ada_2012;

package body Greeter is
   Count : Natural := 0;

   procedure Hello (Name : String) is
   begin
      Put_Line ("Hello, " & Name);
      Count := Count + 1;
   end Hello;
end Greeter;
`
	prog, bag, err := parseProgramSource(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v (%s)", err, diagnosticsSummary(bag))
	}
	want := []tree.Kind{tree.KindWithClause, tree.KindUseClause, tree.KindPragma}
	got := kindsOf(prog.Context)
	if len(got) != len(want) {
		t.Fatalf("context = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("context[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	with := prog.Context[0].(*tree.WithClause)
	if len(with.Names) != 2 || tree.NameString(with.Names[0]) != "Ada.Text_IO" {
		t.Fatalf("with names = %v", with.Names)
	}
	body := prog.Unit.(*tree.PackageBody)
	if len(body.Body.Decls) != 2 || body.Body.Stmts != nil {
		t.Fatalf("package body decls %v stmts %v", kindsOf(body.Body.Decls), body.Body.Stmts)
	}
	if prog.Pos().Start != 0 || int(prog.Pos().End) != strings.LastIndex(src, ";")+1 {
		t.Fatalf("program span = %s", prog.Pos())
	}
}

func TestProgramTrailingInput(t *testing.T) {
	_, bag, err := parseProgramSource(t, "procedure P; procedure Q;")
	if se := syntaxError(t, err, bag); se.Code != diag.SynTrailingInput {
		t.Fatalf("got %s", se.Code.ID())
	}
}

func TestProgramLexicalError(t *testing.T) {
	_, bag, err := parseProgramSource(t, "procedure P is begin X := 1 $ 2; end P;")
	if err == nil {
		t.Fatal("expected lexical error")
	}
	if _, ok := err.(*SyntaxError); ok {
		t.Fatal("lexical error reported as syntax error")
	}
	if bag.Len() != 1 || !bag.Items()[0].Code.IsLexical() {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
}

func TestDeclarationsInOrder(t *testing.T) {
	decls := mustDeclarations(t, "X : Integer; Y : Boolean;")
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(decls))
	}
	for i, want := range []struct{ name, typ string }{{"X", "Integer"}, {"Y", "Boolean"}} {
		obj := decls[i].(*tree.ObjectDecl)
		if obj.Names[0].Name != want.name || sexpr(obj.Type) != want.typ {
			t.Fatalf("decl %d: %s : %s", i, obj.Names[0].Name, sexpr(obj.Type))
		}
	}
}

func TestStatementsInOrder(t *testing.T) {
	stmts := mustStatements(t, "A := 1; B := 2;")
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}
	for i, want := range []string{"A 1", "B 2"} {
		a := stmts[i].(*tree.Assign)
		if got := sexpr(a.Target) + " " + sexpr(a.Value); got != want {
			t.Fatalf("stmt %d: %s, want %s", i, got, want)
		}
	}
}

func TestParseIsDeterministic(t *testing.T) {
	src := `
		for I in 1 .. 10 loop
			if A (I) > Max then Max := A (I); end if;
		end loop;
		case K is when 1 | 2 => null; when others => raise Program_Error; end case;`
	first := mustStatements(t, src)
	for range 5 {
		again := mustStatements(t, src)
		if !tree.EqualList(first, again) {
			t.Fatal("repeated parse produced a different tree")
		}
	}
}

func TestSpansNestWithinParents(t *testing.T) {
	prog, bag, err := parseProgramSource(t, `
procedure Main is
   type Vec is array (1 .. 3) of Integer;
   V : Vec := (others => 0);
begin
   for I in V'Range loop
      V (I) := V (I) + I * 2;
   end loop;
exception
   when others => null;
end Main;`)
	if err != nil {
		t.Fatalf("unexpected error: %v (%s)", err, diagnosticsSummary(bag))
	}
	var check func(n tree.Node)
	check = func(n tree.Node) {
		for _, c := range tree.Children(n) {
			if !n.Pos().Contains(c.Pos()) {
				t.Errorf("%s %s does not contain child %s %s", n.Kind(), n.Pos(), c.Kind(), c.Pos())
			}
			check(c)
		}
	}
	check(prog)
}

func TestNestingLimit(t *testing.T) {
	deep := maxNesting + 500
	tests := []struct {
		name  string
		parse func(*testing.T, string) ([]tree.Node, *diag.Bag, error)
		input string
	}{
		{
			name:  "parentheses",
			parse: parseStatementsSource,
			input: "X := " + strings.Repeat("(", 5*deep) + "1" + strings.Repeat(")", 5*deep) + ";",
		},
		{
			name:  "if statements",
			parse: parseStatementsSource,
			input: strings.Repeat("if C then ", deep) + "null;" + strings.Repeat(" end if;", deep),
		},
		{
			name:  "nested subprograms",
			parse: parseDeclarationsSource,
			input: strings.Repeat("procedure P is ", deep) + strings.Repeat("begin null; end P; ", deep),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, bag, err := tt.parse(t, tt.input)
			se := syntaxError(t, err, bag)
			if se.Code != diag.SynTooDeep {
				t.Fatalf("got %s: %v", se.Code.ID(), se)
			}
			if nodes != nil {
				t.Fatalf("expected no nodes, got %d", len(nodes))
			}
		})
	}
}

func TestModerateNestingParses(t *testing.T) {
	const depth = 100
	stmts := mustStatements(t, "X := "+strings.Repeat("(", depth)+"1"+strings.Repeat(")", depth)+";")
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	nested := strings.Repeat("if C then ", depth) + "null;" + strings.Repeat(" end if;", depth)
	if stmts := mustStatements(t, nested); len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
}
