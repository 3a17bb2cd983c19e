package driver

import (
	"bytes"
	"strings"
	"testing"

	"adaleph/internal/tree"
)

func TestSentinelProgram(t *testing.T) {
	var out bytes.Buffer
	s := &Sentinel{Out: &out, Name: "main.adb"}

	if n := s.ParseProgram(helloProgram); n.Kind() != tree.KindProgram {
		t.Fatalf("expected Program, got %s", n.Kind())
	}
	if out.Len() != 0 {
		t.Fatalf("success must not write diagnostics, got %q", out.String())
	}

	n := s.ParseProgram("procedure P is\nbegin\nend P;\n")
	if _, ok := n.(*tree.Unit); !ok {
		t.Fatalf("expected Unit on failure, got %T", n)
	}
	text := out.String()
	for _, want := range []string{"main.adb:3:1", "SYN", "procedure body \"P\""} {
		if !strings.Contains(text, want) {
			t.Errorf("diagnostic missing %q:\n%s", want, text)
		}
	}
}

func TestSentinelEmptyProgramIsFailure(t *testing.T) {
	var out bytes.Buffer
	s := &Sentinel{Out: &out}
	if _, ok := s.ParseProgram("  -- nothing\n").(*tree.Unit); !ok {
		t.Fatal("empty compilation is not a program")
	}
	if !strings.Contains(out.String(), "<input>:") {
		t.Fatalf("expected default name in diagnostic, got %q", out.String())
	}
}

func TestSentinelLists(t *testing.T) {
	var out bytes.Buffer
	s := &Sentinel{Out: &out}

	if got := s.ParseDeclarations("X : Integer;\nY : Integer;"); len(got) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(got))
	}
	if got := s.ParseStatements(""); got == nil || len(got) != 0 {
		t.Fatalf("empty input must give an empty, non-nil sequence, got %#v", got)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %q", out.String())
	}

	if got := s.ParseStatements("X := ;"); len(got) != 0 {
		t.Fatalf("failure must give an empty sequence, got %d nodes", len(got))
	}
	if got := s.ParseDeclarations("X : ;"); len(got) != 0 {
		t.Fatalf("failure must give an empty sequence, got %d nodes", len(got))
	}
	if c := strings.Count(out.String(), "ERROR"); c != 2 {
		t.Fatalf("expected two diagnostics, got %d:\n%s", c, out.String())
	}
}

func TestSentinelUnitNeverNested(t *testing.T) {
	s := &Sentinel{Out: &bytes.Buffer{}}
	prog := s.ParseProgram(helloProgram)
	tree.Walk(prog, func(n tree.Node) bool {
		if n.Kind() == tree.KindUnit {
			t.Fatalf("Unit inside a successful tree at %v", n.Pos())
		}
		return true
	})
}

func TestSentinelListFailureIsEmptyNonNil(t *testing.T) {
	deep := "X := " + strings.Repeat("(", 50000) + "1" + strings.Repeat(")", 50000) + ";"
	tests := []struct {
		name  string
		parse func(*Sentinel, string) []tree.Node
		input string
		code  string
	}{
		{"statements", (*Sentinel).ParseStatements, "X := ;", "SYN"},
		{"declarations", (*Sentinel).ParseDeclarations, "X : ;", "SYN"},
		{"lexical", (*Sentinel).ParseStatements, "X := 1 $ 2;", "LEX"},
		{"too deep", (*Sentinel).ParseStatements, deep, "SYN2016"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := tt.parse(&Sentinel{Out: &out}, tt.input)
			if got == nil || len(got) != 0 {
				t.Fatalf("failure must give an empty, non-nil sequence, got %#v", got)
			}
			if !strings.Contains(out.String(), tt.code) {
				t.Fatalf("diagnostic missing %q:\n%s", tt.code, out.String())
			}
		})
	}
}
