package testkit

import (
	"context"
	"strings"
	"testing"

	"adaleph/internal/driver"
	"adaleph/internal/source"
	"adaleph/internal/tree"
)

func parseOK(t *testing.T, root driver.Root, src string) *driver.Result {
	t.Helper()
	res, err := driver.Parse(context.Background(), root, "t.adb", src, driver.Options{})
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return res
}

func TestParsedTreesSatisfyInvariants(t *testing.T) {
	tests := []struct {
		root driver.Root
		src  string
	}{
		{driver.RootProgram, "with Ada.Text_IO; use Ada.Text_IO;\nprocedure Hello is\nbegin\n   Put_Line (\"Hello\");\nend Hello;\n"},
		{driver.RootProgram, "package P is\n   type Color is (Red, Green, Blue);\nprivate\n   X : constant Integer := 16#FF#;\nend P;\n"},
		{driver.RootDeclarations, "X : Integer := 1;\nY, Z : aliased Float;\nE : exception;\n"},
		{driver.RootDeclarations, "type A is array (Positive range <>) of Character;\ntype Ptr is access all Integer;\n"},
		{driver.RootStatements, "X := A + B * C ** 2;\nif X < 0 then Y := -X; else Y := X; end if;\n"},
		{driver.RootStatements, "Outer : for I in reverse 1 .. 10 loop\n   exit Outer when I mod 2 = 0;\nend loop Outer;\n"},
		{driver.RootStatements, "declare\n   T : Integer := Integer'Last;\nbegin\n   P.all := T;\nexception\n   when E : others => null;\nend;\n"},
	}
	for _, tt := range tests {
		res := parseOK(t, tt.root, tt.src)
		if err := CheckFile(res.File, res.List()); err != nil {
			t.Errorf("%s %q: %v", tt.root, tt.src, err)
		}
	}
}

func TestCheckTreeRejects(t *testing.T) {
	res := parseOK(t, driver.RootStatements, "X := A + 1;")
	assign := res.Nodes[0].(*tree.Assign)

	tests := []struct {
		name  string
		roots []tree.Node
		want  string
	}{
		{
			name:  "unit at top",
			roots: []tree.Node{&tree.Unit{}},
			want:  "unit at top level",
		},
		{
			name:  "shared node",
			roots: []tree.Node{assign, assign},
			want:  "shared",
		},
		{
			name: "span past end",
			roots: []tree.Node{&tree.Ident{
				Base: tree.Base{Span: source.Span{Start: 0, End: 100}},
				Name: "X",
			}},
			want: "outside source",
		},
		{
			name: "child escapes parent",
			roots: []tree.Node{&tree.Assign{
				Base:   tree.Base{Span: source.Span{Start: 0, End: 3}},
				Target: &tree.Ident{Base: tree.Base{Span: source.Span{Start: 0, End: 1}}, Name: "X"},
				Value:  &tree.Ident{Base: tree.Base{Span: source.Span{Start: 5, End: 6}}, Name: "Y"},
			}},
			want: "escapes parent",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTree(11, tt.roots)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}
