package tree

import (
	"encoding/json"
	"testing"

	"adaleph/internal/source"
)

func id(name string, start uint32) *Ident {
	return &Ident{Base: Base{Span: source.Span{Start: start, End: start + uint32(len(name))}}, Name: name}
}

func intLit(raw string) *Literal {
	return &Literal{LitKind: LitInt, Raw: raw, Value: raw}
}

func sampleIf(offset uint32) *If {
	return &If{
		Base: Base{Span: source.Span{Start: offset, End: offset + 30}},
		Cond: &Binary{Op: OpGt, Left: id("X", offset+3), Right: intLit("0")},
		Then: []Node{&Assign{Target: id("Y", offset+10), Value: intLit("1")}},
		Else: []Node{&If{
			Cond: id("Flag", offset+20),
			Then: []Node{&Null{}},
		}},
	}
}

func TestEqualIgnoresSpans(t *testing.T) {
	a := sampleIf(0)
	b := sampleIf(100)
	if !Equal(a, b) {
		t.Fatalf("trees differing only in spans should be equal")
	}
	b.Then[0].(*Assign).Value = intLit("2")
	if Equal(a, b) {
		t.Fatalf("trees with different literals should differ")
	}
}

func TestEqualNilAndEmpty(t *testing.T) {
	a := &Return{}
	b := &Return{Value: intLit("1")}
	if Equal(a, b) {
		t.Fatalf("nil child vs literal should differ")
	}
	if !Equal(&Block{Stmts: nil}, &Block{Stmts: []Node{}}) {
		t.Fatalf("nil and empty slices should compare equal")
	}
	if Equal(&Null{}, &Unit{}) {
		t.Fatalf("different variants should differ")
	}
	if !EqualList([]Node{&Null{}, id("A", 0)}, []Node{&Null{}, id("A", 9)}) {
		t.Fatalf("EqualList mismatch")
	}
}

func TestWalkPreOrder(t *testing.T) {
	var kinds []Kind
	Walk(sampleIf(0), func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	want := []Kind{
		KindIf, KindBinary, KindIdent, KindLiteral,
		KindAssign, KindIdent, KindLiteral,
		KindIf, KindIdent, KindNull,
	}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("visit %d = %v, want %v", i, kinds[i], want[i])
		}
	}
	if Count(sampleIf(0)) != len(want) {
		t.Fatalf("Count disagrees with Walk")
	}
}

func TestWalkSkipsSubtree(t *testing.T) {
	visited := 0
	Walk(sampleIf(0), func(n Node) bool {
		visited++
		return n.Kind() != KindBinary
	})
	if visited != 8 {
		t.Fatalf("visited %d nodes, want 8", visited)
	}
}

func TestChildrenSkipTypedNil(t *testing.T) {
	loop := &Loop{Body: []Node{&Null{}}}
	if got := Children(loop); len(got) != 1 {
		t.Fatalf("children of unlabelled loop = %d, want 1", len(got))
	}
	decl := &SubprogramDecl{Spec: &SubprogramSpec{Name: id("P", 0)}}
	if got := Children(decl); len(got) != 1 {
		t.Fatalf("children of declaration without body = %d, want 1", len(got))
	}
}

func TestSameName(t *testing.T) {
	cases := []struct {
		a, b Node
		want bool
	}{
		{id("Foo", 0), id("FOO", 0), true},
		{id("Foo", 0), id("Bar", 0), false},
		{&Selected{Prefix: id("Ada", 0), Selector: id("Text_IO", 0)},
			&Selected{Prefix: id("ada", 0), Selector: id("text_io", 0)}, true},
		{&Selected{Prefix: id("Ada", 0), Selector: id("Text_IO", 0)}, id("Text_IO", 0), false},
		{&Literal{LitKind: LitString, Raw: `"AND"`, Value: "AND"},
			&Literal{LitKind: LitString, Raw: `"and"`, Value: "and"}, true},
	}
	for i, tc := range cases {
		if got := SameName(tc.a, tc.b); got != tc.want {
			t.Errorf("case %d: SameName = %v, want %v", i, got, tc.want)
		}
	}
	if got := NameString(&Selected{Prefix: id("Ada", 0), Selector: id("Text_IO", 0)}); got != "Ada.Text_IO" {
		t.Errorf("NameString = %q", got)
	}
}

func TestToValueJSON(t *testing.T) {
	n := &Assign{
		Base:   Base{Span: source.Span{Start: 0, End: 7}},
		Target: id("A", 0),
		Value:  intLit("1"),
	}
	data, err := json.Marshal(ToValue(n))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"kind":"Assign","span":[0,7],"target":{"kind":"Ident","name":"A","span":[0,1]},` +
		`"value":{"kind":"Literal","litKind":"int","raw":"1","span":[0,0],"value":"1"}}`
	if string(data) != want {
		t.Fatalf("json mismatch\n got: %s\nwant: %s", data, want)
	}
	if ToValue(nil) != nil {
		t.Fatalf("ToValue(nil) should be nil")
	}
}

func TestKindPredicates(t *testing.T) {
	if !KindAssign.IsStatement() || KindCaseAlt.IsStatement() || !KindPragma.IsStatement() {
		t.Errorf("IsStatement misclassifies")
	}
	if !KindObjectDecl.IsDeclaration() || KindAssign.IsDeclaration() {
		t.Errorf("IsDeclaration misclassifies")
	}
	if KindDeref.String() != "Deref" || Kind(250).String() != "Kind(?)" {
		t.Errorf("Kind.String wrong")
	}
	if !OpOrElse.IsLogical() || OpEq.IsLogical() || !OpNotIn.IsRelational() || OpAdd.IsRelational() {
		t.Errorf("operator classes wrong")
	}
}
