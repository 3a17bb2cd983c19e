package parser

import (
	"testing"

	"adaleph/internal/diag"
	"adaleph/internal/tree"
)

func TestDeclarationKinds(t *testing.T) {
	tests := []struct {
		input string
		want  tree.Kind
		def   tree.Kind // вид определения типа, если есть
	}{
		{"X : Integer;", tree.KindObjectDecl, 0},
		{"X, Y : aliased Integer := 0;", tree.KindObjectDecl, 0},
		{"Max : constant := 10;", tree.KindObjectDecl, 0},
		{"Buf : array (1 .. 10) of Character;", tree.KindObjectDecl, 0},
		{"Oops : exception;", tree.KindExceptionDecl, 0},
		{"type Small is range 0 .. 100;", tree.KindTypeDecl, tree.KindRangeTypeDef},
		{"type Byte is mod 256;", tree.KindTypeDecl, tree.KindModularTypeDef},
		{"type Real is digits 8 range -1.0 .. 1.0;", tree.KindTypeDecl, tree.KindRealTypeDef},
		{"type Money is delta 0.01 digits 12;", tree.KindTypeDecl, tree.KindRealTypeDef},
		{"type Color is (Red, Green, Blue);", tree.KindTypeDecl, tree.KindEnumTypeDef},
		{"type Hex is ('0', '1', 'A');", tree.KindTypeDecl, tree.KindEnumTypeDef},
		{"type Vec is array (Positive range <>) of Float;", tree.KindTypeDecl, tree.KindArrayTypeDef},
		{"type Grid is array (1 .. 3, Color) of aliased Integer;", tree.KindTypeDecl, tree.KindArrayTypeDef},
		{"type Point is record X, Y : Integer := 0; end record;", tree.KindTypeDecl, tree.KindRecordTypeDef},
		{"type Empty is null record;", tree.KindTypeDecl, tree.KindRecordTypeDef},
		{"type Shape is abstract tagged null record;", tree.KindTypeDecl, tree.KindRecordTypeDef},
		{"type Ptr is access all Node;", tree.KindTypeDecl, tree.KindAccessTypeDef},
		{"type Ref is not null access constant Node;", tree.KindTypeDecl, tree.KindAccessTypeDef},
		{"type Handler is access procedure (X : Integer);", tree.KindTypeDecl, tree.KindAccessTypeDef},
		{"type Fn is access function (X : Float) return Float;", tree.KindTypeDecl, tree.KindAccessTypeDef},
		{"type Count is new Natural;", tree.KindTypeDecl, tree.KindDerivedTypeDef},
		{"type Circle is new Shape with record R : Float; end record;", tree.KindTypeDecl, tree.KindDerivedTypeDef},
		{"type Hidden is new Shape with private;", tree.KindTypeDecl, tree.KindDerivedTypeDef},
		{"type Stack is limited private;", tree.KindTypeDecl, tree.KindPrivateTypeDef},
		{"type Node;", tree.KindTypeDecl, 0},
		{"subtype Digit is Integer range 0 .. 9;", tree.KindSubtypeDecl, 0},
		{"subtype Line is String (1 .. 80);", tree.KindSubtypeDecl, 0},
		{"procedure Reset;", tree.KindSubprogramDecl, 0},
		{"function Length (S : String) return Natural;", tree.KindSubprogramDecl, 0},
		{"procedure Skip is null;", tree.KindSubprogramDecl, 0},
		{"function Area (S : Shape) return Float is abstract;", tree.KindSubprogramDecl, 0},
		{"function \"+\" (L, R : Vec) return Vec;", tree.KindSubprogramDecl, 0},
		{"package Inner is X : Integer; private Y : Integer; end Inner;", tree.KindPackageDecl, 0},
		{"package body Inner is begin null; end Inner;", tree.KindPackageBody, 0},
		{"use type Vec;", tree.KindUseClause, 0},
		{"pragma Inline (Length);", tree.KindPragma, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			decls := mustDeclarations(t, tt.input)
			if len(decls) != 1 {
				t.Fatalf("expected 1 declaration, got %v", kindsOf(decls))
			}
			if got := decls[0].Kind(); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
			if !decls[0].Kind().IsDeclaration() {
				t.Fatalf("%s is not classified as a declaration", decls[0].Kind())
			}
			if tt.def == 0 {
				return
			}
			td := decls[0].(*tree.TypeDecl)
			if td.Def == nil || td.Def.Kind() != tt.def {
				t.Fatalf("type definition = %v, want %s", td.Def, tt.def)
			}
		})
	}
}

func TestObjectDeclarationFields(t *testing.T) {
	decls := mustDeclarations(t, `
		X, Y : aliased constant Integer range 1 .. 10 := 5;
		Max : constant := 10;
		P : not null access_T;`)

	x := decls[0].(*tree.ObjectDecl)
	if len(x.Names) != 2 || x.Names[1].Name != "Y" || !x.Aliased || !x.Constant {
		t.Fatalf("X, Y: names %d aliased=%v constant=%v", len(x.Names), x.Aliased, x.Constant)
	}
	if sexpr(x.Type) != "(sub Integer (.. 1 10))" || sexpr(x.Init) != "5" {
		t.Fatalf("X, Y: type %s init %s", sexpr(x.Type), sexpr(x.Init))
	}

	maxDecl := decls[1].(*tree.ObjectDecl)
	if maxDecl.Type != nil || !maxDecl.Constant || sexpr(maxDecl.Init) != "10" {
		t.Fatalf("Max: type %v constant=%v init %s", maxDecl.Type, maxDecl.Constant, sexpr(maxDecl.Init))
	}

	p := decls[2].(*tree.ObjectDecl)
	if si := p.Type.(*tree.SubtypeIndication); !si.NotNull || sexpr(si.Mark) != "access_T" {
		t.Fatalf("P: not null=%v mark %s", si.NotNull, sexpr(si.Mark))
	}
}

func TestRecordWithVariantPart(t *testing.T) {
	decls := mustDeclarations(t, `
		type Shape (Kind : Shape_Kind := Circle) is record
			Name : String (1 .. 10);
			case Kind is
				when Circle =>
					Radius : Float;
				when Square | Rect =>
					Side : Float;
				when others =>
					null;
			end case;
		end record;`)
	td := decls[0].(*tree.TypeDecl)
	if len(td.Discriminants) != 1 || td.Discriminants[0].Names[0].Name != "Kind" {
		t.Fatalf("discriminants = %v", td.Discriminants)
	}
	rec := td.Def.(*tree.RecordTypeDef)
	if len(rec.Components) != 2 {
		t.Fatalf("components = %v", kindsOf(rec.Components))
	}
	vp := rec.Components[1].(*tree.VariantPart)
	if vp.Discriminant.Name != "Kind" || len(vp.Variants) != 3 {
		t.Fatalf("variant part: %s with %d variants", vp.Discriminant.Name, len(vp.Variants))
	}
	if sexprList(vp.Variants[1].Choices) != "Square Rect" {
		t.Fatalf("choices = %s", sexprList(vp.Variants[1].Choices))
	}
}

func TestSubprogramSpecification(t *testing.T) {
	decls := mustDeclarations(t, `
		procedure Swap (A, B : in out Integer; Log : access Logger; Flag : Boolean := False);
		function Find (S : not null String_Ptr) return Natural;`)

	swap := decls[0].(*tree.SubprogramDecl)
	if swap.Spec.Form != tree.Procedure || len(swap.Spec.Params) != 3 || swap.Body != nil {
		t.Fatalf("Swap: form %s params %d", swap.Spec.Form, len(swap.Spec.Params))
	}
	modes := []tree.ParamMode{tree.ModeInOut, tree.ModeAccess, tree.ModeDefault}
	for i, prm := range swap.Spec.Params {
		if prm.Mode != modes[i] {
			t.Errorf("param %d mode %s, want %s", i, prm.Mode, modes[i])
		}
	}
	if sexpr(swap.Spec.Params[2].Default) != "False" {
		t.Fatalf("default = %s", sexpr(swap.Spec.Params[2].Default))
	}

	find := decls[1].(*tree.SubprogramDecl)
	if find.Spec.Form != tree.Function || find.Spec.Returns == nil || !find.Spec.Params[0].NotNull {
		t.Fatalf("Find: form %s returns %v", find.Spec.Form, find.Spec.Returns)
	}
}

func TestDeclarationErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"X : Integer", diag.SynExpectSemicolon},
		{"X Integer;", diag.SynUnexpectedToken},
		{"begin null; end;", diag.SynExpectDeclaration},
		{"type T is record end record;", diag.SynExpectDeclaration},
		{"type T is 5;", diag.SynExpectType},
		{"type E is ();", diag.SynExpectIdentifier},
		{"procedure P is begin null; end Q;", diag.SynEndNameMismatch},
		{"package Pkg is end Other;", diag.SynEndNameMismatch},
		{"function F return T is null;", diag.SynUnexpectedToken},
		{"procedure P (X : Integer;", diag.SynExpectIdentifier},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, bag, err := parseDeclarationsSource(t, tt.input)
			se := syntaxError(t, err, bag)
			if se.Code != tt.code {
				t.Fatalf("got %s (%s), want %s", se.Code.ID(), se.Msg, tt.code.ID())
			}
		})
	}
}

func TestDeclarationsEmptyInput(t *testing.T) {
	for _, input := range []string{"", " \r\n ", "-- nothing here"} {
		decls, bag, err := parseDeclarationsSource(t, input)
		if err != nil || len(decls) != 0 || bag.Len() != 0 {
			t.Fatalf("%q: decls %d err %v diags %s", input, len(decls), err, diagnosticsSummary(bag))
		}
	}
}
