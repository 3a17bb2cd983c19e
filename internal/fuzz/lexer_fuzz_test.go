package fuzztests

import (
	"testing"

	"adaleph/internal/diag"
	"adaleph/internal/lexer"
	"adaleph/internal/source"
	"adaleph/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.adb", input))

		toks, err := lexer.Tokenize(file, lexer.Options{Reporter: diag.NopReporter{}})
		if err != nil {
			if toks != nil {
				t.Fatalf("tokens returned together with error %v", err)
			}
			return
		}
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("token stream not terminated by EOF")
		}
		size := uint32(len(file.Content))
		var prevEnd uint32
		for i, tok := range toks {
			if tok.Span.Start < prevEnd || tok.Span.Start > tok.Span.End || tok.Span.End > size {
				t.Fatalf("token %d (%s) span %s out of order (prev end %d, size %d)", i, tok.Kind, tok.Span, prevEnd, size)
			}
			if tok.Kind == token.EOF && i != len(toks)-1 {
				t.Fatalf("EOF at %d before the end of the stream", i)
			}
			prevEnd = tok.Span.End
		}
	})
}
