package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"adaleph/internal/diag"
	"adaleph/internal/lexer"
	"adaleph/internal/source"
	"adaleph/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.adb", []byte(input))
	bag := diag.NewBag(8)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

// collectAllTokens собирает все токены до EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			return tokens
		}
	}
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...token.Kind) []token.Token {
	t.Helper()
	lx, bag := makeTestLexer(input)
	toks := collectAllTokens(lx)
	if bag.HasErrors() {
		t.Fatalf("%q: unexpected diagnostics: %s", input, diag.FormatShort(bag.Items(), nil, false))
	}
	got := kindsOf(toks)
	want = append(want, token.EOF)
	if len(got) != len(want) {
		t.Fatalf("%q: got %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d is %v, want %v (all: %v)", input, i, got[i], want[i], got)
		}
	}
	return toks
}

func expectLexError(t *testing.T, input string, code diag.Code) *lexer.Error {
	t.Helper()
	lx, bag := makeTestLexer(input)
	collectAllTokens(lx)
	if lx.Err() == nil {
		t.Fatalf("%q: expected lexical error %s", input, code.ID())
	}
	if lx.Err().Code != code {
		t.Fatalf("%q: got %s (%s), want %s", input, lx.Err().Code.ID(), lx.Err().Msg, code.ID())
	}
	if bag.Len() != 1 {
		t.Fatalf("%q: expected exactly one diagnostic, got %d", input, bag.Len())
	}
	return lx.Err()
}

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	toks := expectKinds(t, "PROCEDURE Proc Is BEGIN null; End Proc;",
		token.KwProcedure, token.Ident, token.KwIs, token.KwBegin, token.KwNull, token.Semicolon,
		token.KwEnd, token.Ident, token.Semicolon)
	if toks[0].Text != "PROCEDURE" {
		t.Errorf("keyword text should keep original spelling, got %q", toks[0].Text)
	}
}

func TestIdentifiers(t *testing.T) {
	toks := expectKinds(t, "Max_Size X1 Überlänge", token.Ident, token.Ident, token.Ident)
	if toks[2].Text != "Überlänge" {
		t.Errorf("unicode identifier text = %q", toks[2].Text)
	}

	expectLexError(t, "Bad__Name", diag.LexBadIdentifier)
	expectLexError(t, "Trailing_ ", diag.LexBadIdentifier)
}

func TestIdentifierNFC(t *testing.T) {
	// "e" + combining acute → "é"
	toks := expectKinds(t, "Cafe\u0301", token.Ident)
	if toks[0].Text != "Caf\u00e9" {
		t.Errorf("identifier not NFC-normalised: %q", toks[0].Text)
	}
}

func TestNumericLiterals(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"0", token.IntLit},
		{"1_000_000", token.IntLit},
		{"1E6", token.IntLit},
		{"1e+3", token.IntLit},
		{"3.14159", token.RealLit},
		{"1.0E-3", token.RealLit},
		{"16#FF#", token.IntLit},
		{"2#1010_1010#", token.IntLit},
		{"16#F.8#E1", token.RealLit},
		{"8#777#e2", token.IntLit},
	}
	for _, tc := range cases {
		toks := expectKinds(t, tc.src, tc.kind)
		if toks[0].Text != tc.src {
			t.Errorf("%q: text = %q", tc.src, toks[0].Text)
		}
	}
}

func TestMalformedNumbers(t *testing.T) {
	for _, src := range []string{
		"1__0",
		"1_",
		"1E-3",
		"17#1#",
		"2#102#",
		"16#FF",
		"12abc",
		"1E",
	} {
		expectLexError(t, src, diag.LexBadNumber)
	}
}

func TestRangeIsNotRealLiteral(t *testing.T) {
	expectKinds(t, "1..10", token.IntLit, token.DotDot, token.IntLit)
	expectKinds(t, "A(1 .. 2)", token.Ident, token.LParen, token.IntLit, token.DotDot, token.IntLit, token.RParen)
}

func TestStringLiterals(t *testing.T) {
	toks := expectKinds(t, `"Say ""hi""" & ""`, token.StringLit, token.Amp, token.StringLit)
	if got := lexer.StringValue(toks[0].Text); got != `Say "hi"` {
		t.Errorf("StringValue = %q", got)
	}
	if got := lexer.StringValue(toks[2].Text); got != "" {
		t.Errorf("empty StringValue = %q", got)
	}

	expectLexError(t, `"open`, diag.LexUnterminatedString)
	expectLexError(t, "\"line\nbreak\"", diag.LexUnterminatedString)
}

func TestTickVersusCharLiteral(t *testing.T) {
	cases := []struct {
		src  string
		want []token.Kind
	}{
		{"C := 'A';", []token.Kind{token.Ident, token.Assign, token.CharLit, token.Semicolon}},
		{"X'First", []token.Kind{token.Ident, token.Tick, token.Ident}},
		{"A'Range", []token.Kind{token.Ident, token.Tick, token.KwRange}},
		{"Character'('x')", []token.Kind{token.Ident, token.Tick, token.LParen, token.CharLit, token.RParen}},
		{"F(X)'Length", []token.Kind{token.Ident, token.LParen, token.Ident, token.RParen, token.Tick, token.Ident}},
		{"P.all'Size", []token.Kind{token.Ident, token.Dot, token.KwAll, token.Tick, token.Ident}},
		{"(''', ' ')", []token.Kind{token.LParen, token.CharLit, token.Comma, token.CharLit, token.RParen}},
	}
	for _, tc := range cases {
		expectKinds(t, tc.src, tc.want...)
	}
	expectLexError(t, "X := 'ab';", diag.LexBadCharLiteral)
}

func TestDelimiters(t *testing.T) {
	expectKinds(t, "=> .. ** := /= >= <= << >> <>",
		token.Arrow, token.DotDot, token.StarStar, token.Assign, token.NotEq,
		token.GtEq, token.LtEq, token.LabelOpen, token.LabelClose, token.Box)
	expectKinds(t, "& ( ) * + , - . / : ; < = > |",
		token.Amp, token.LParen, token.RParen, token.Star, token.Plus, token.Comma,
		token.Minus, token.Dot, token.Slash, token.Colon, token.Semicolon,
		token.Lt, token.Eq, token.Gt, token.Bar)
}

func TestCommentsBecomeTrivia(t *testing.T) {
	toks := expectKinds(t, "-- header\nX := 1; -- trailing\n-- only comment",
		token.Ident, token.Assign, token.IntLit, token.Semicolon)
	lead := toks[0].Leading
	if len(lead) != 2 || lead[0].Kind != token.TriviaComment || lead[0].Text != "-- header" {
		t.Fatalf("unexpected leading trivia: %+v", lead)
	}
	if lead[1].Kind != token.TriviaNewline {
		t.Fatalf("expected newline trivia, got %v", lead[1].Kind)
	}
	expectKinds(t, "  -- nothing here\n\t\n")
	expectKinds(t, "A - -B", token.Ident, token.Minus, token.Minus, token.Ident)
}

func TestUnknownCharacterPosition(t *testing.T) {
	err := expectLexError(t, "X := 1;\nY := @;", diag.LexUnknownChar)
	if err.Char != '@' {
		t.Errorf("Char = %q, want '@'", err.Char)
	}
	if err.Span.Start != 13 || err.Span.End != 14 {
		t.Errorf("span = %v, want 13..14", err.Span)
	}
	expectLexError(t, "€", diag.LexUnknownChar)
	expectLexError(t, "_X", diag.LexUnknownChar)
}

func TestErrorStopsLexing(t *testing.T) {
	lx, _ := makeTestLexer("A # B C")
	toks := collectAllTokens(lx)
	if toks[len(toks)-1].Kind != token.Invalid {
		t.Fatalf("expected stream to end with Invalid, got %v", kindsOf(toks))
	}
	for i := 0; i < 3; i++ {
		if k := lx.Next().Kind; k != token.EOF {
			t.Fatalf("after error Next() = %v, want EOF", k)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("A B")
	if p := lx.Peek(); p.Text != "A" {
		t.Fatalf("Peek = %q", p.Text)
	}
	if n := lx.Next(); n.Text != "A" {
		t.Fatalf("Next after Peek = %q", n.Text)
	}
	if n := lx.Next(); n.Text != "B" {
		t.Fatalf("second Next = %q", n.Text)
	}
}

func TestTokenize(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.adb", []byte("X : Integer := 16#10#;"))
	toks, err := lexer.Tokenize(fs.Get(id), lexer.Options{})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 7 || toks[6].Kind != token.EOF {
		t.Fatalf("unexpected tokens %v", kindsOf(toks))
	}

	id = fs.AddVirtual("bad.adb", []byte("X := 1 ! 2;"))
	_, err = lexer.Tokenize(fs.Get(id), lexer.Options{})
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *lexer.Error, got %v", err)
	}
	if !strings.Contains(lexErr.Error(), "LEX1001") {
		t.Errorf("error text %q lacks code", lexErr.Error())
	}
}

func TestSpansCoverText(t *testing.T) {
	src := "package Body_Of_Work is\n  Max : constant := 10; -- limit\nend Body_Of_Work;\n"
	lx, _ := makeTestLexer(src)
	for _, tok := range collectAllTokens(lx) {
		if tok.Kind == token.EOF {
			if int(tok.Span.Start) != len(src) {
				t.Errorf("EOF span %v, want at %d", tok.Span, len(src))
			}
			continue
		}
		if got := src[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("span text %q != token text %q", got, tok.Text)
		}
	}
}

func TestInvalidUTF8InLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start uint32
	}{
		{"string", "X := \"a\xffb\";", 7},
		{"string truncated sequence", "X := \"\xe2\x82\";", 6},
		{"character", "X := '\xff';", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := expectLexError(t, tt.input, diag.LexUnknownChar)
			if err.Span.Start != tt.start || err.Span.End != tt.start+1 {
				t.Errorf("span = %v, want %d..%d", err.Span, tt.start, tt.start+1)
			}
		})
	}
	expectKinds(t, "X := \"π€\";", token.Ident, token.Assign, token.StringLit, token.Semicolon)
}
