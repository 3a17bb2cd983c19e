package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
)

// builtinSeeds покрывают основные конструкции всех трёх корней разбора.
var builtinSeeds = []string{
	"",
	"-- only a comment\n",
	"procedure Main is begin null; end Main;",
	"with Ada.Text_IO; use Ada.Text_IO;\nprocedure Hello is\nbegin\n   Put_Line (\"Hello\");\nend Hello;\n",
	"package P is\n   type Color is (Red, Green, Blue);\n   subtype Small is Integer range 0 .. 10;\nprivate\n   X : constant Integer := 16#FF#;\nend P;\n",
	"package body P is\n   function F (A : in out Integer; B : Float := 1.0E-3) return Boolean is\n   begin\n      return A > 0 and then B /= 0.0;\n   end F;\nend P;\n",
	"X : Integer := 1;\nY, Z : aliased Float;\nE : exception;\n",
	"type R (D : Boolean) is record\n   case D is\n      when True => A : Integer;\n      when others => null;\n   end case;\nend record;\n",
	"type A is array (Positive range <>) of Character;\ntype Ptr is access all Integer;\n",
	"X := A + B * C ** 2;\nif X < 0 then Y := -X; elsif X = 0 then null; else Y := X; end if;\n",
	"Outer : for I in reverse 1 .. 10 loop\n   exit Outer when I mod 2 = 0;\nend loop Outer;\n",
	"case C is when 'a' | 'b' => null; when others => raise Constraint_Error with \"bad\"; end case;\n",
	"declare\n   T : Integer := Integer'Last;\nbegin\n   P.all := new Node'(Next => null, Value => T);\nexception\n   when E : others => null;\nend;\n",
	"<<Retry>> goto Retry;\n",
	// некорректные входы
	"X := A < B < C;",
	"X := A and B or C;",
	"procedure P is begin null; end Q;",
	"Name__Bad : Integer;",
	"X := \"unterminated",
	"X := 16#FG#;",
	"if X then",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все исходники Ada
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ads", ".adb", ".ada":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
