package diag

import (
	"strings"
	"testing"

	"adaleph/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	sp := source.Span{Start: 0, End: 1}
	if !b.Add(NewError(SynUnexpectedToken, sp, "a")) {
		t.Fatalf("first add rejected")
	}
	if !b.Add(NewError(SynUnexpectedToken, sp, "b")) {
		t.Fatalf("second add rejected")
	}
	if b.Add(NewError(SynUnexpectedToken, sp, "c")) {
		t.Fatalf("third add accepted past limit")
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2", b.Len())
	}
}

func TestBagUnlimited(t *testing.T) {
	b := NewBag(0)
	for i := 0; i < 100; i++ {
		b.Add(NewError(LexUnknownChar, source.Span{}, "x"))
	}
	if b.Len() != 100 {
		t.Fatalf("len = %d, want 100", b.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	b.Add(NewError(SynExpectSemicolon, source.Span{Start: 10, End: 11}, "late"))
	b.Add(New(SevWarning, SynInfo, source.Span{Start: 2, End: 3}, "warn"))
	b.Add(NewError(SynUnexpectedToken, source.Span{Start: 2, End: 3}, "early"))
	b.Add(NewError(SynUnexpectedToken, source.Span{Start: 2, End: 3}, "early"))
	b.Sort()
	b.Dedup()
	items := b.Items()
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	if items[0].Message != "early" || items[1].Message != "warn" || items[2].Message != "late" {
		t.Fatalf("unexpected order: %q %q %q", items[0].Message, items[1].Message, items[2].Message)
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatalf("severity flags not set")
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	b := NewBag(0)
	rb := ReportError(BagReporter{Bag: b}, SynExpectEnd, source.Span{Start: 4, End: 4}, "expected 'end'").
		WithNote(source.Span{Start: 0, End: 9}, "procedure starts here")
	rb.Emit()
	rb.Emit()
	if b.Len() != 1 {
		t.Fatalf("len = %d, want 1", b.Len())
	}
	if got := b.Items()[0].Notes; len(got) != 1 || got[0].Msg != "procedure starts here" {
		t.Fatalf("notes = %+v", got)
	}
}

func TestCodeIDs(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{IOLoadFileError, "IO4001"},
		{InternalError, "INT9001"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Errorf("%d.ID() = %q, want %q", tc.code, got, tc.want)
		}
	}
	if !LexBadNumber.IsLexical() || LexBadNumber.IsSyntax() {
		t.Errorf("LexBadNumber range checks wrong")
	}
	if Code(2999).Title() != "Unknown error" {
		t.Errorf("unregistered code should fall back to unknown title")
	}
}

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.adb", []byte("procedure P is\nbegin\n"))
	d := NewError(SynExpectEnd, source.Span{File: id, Start: 21, End: 21}, "unexpected end of input\nexpected 'end'").
		WithNote(source.Span{File: id, Start: 0, End: 9}, "procedure starts here")
	got := FormatShort([]Diagnostic{d}, fs, true)
	want := "main.adb:3:1: error SYN2007: unexpected end of input expected 'end'\n" +
		"main.adb:1:1: note SYN2007: procedure starts here\n"
	if got != want {
		t.Fatalf("FormatShort mismatch\n got: %q\nwant: %q", got, want)
	}
	if out := FormatShort([]Diagnostic{d}, nil, false); !strings.HasPrefix(out, "<input>:1:1: error SYN2007") {
		t.Fatalf("nil fileset output = %q", out)
	}
}
