package fuzztests

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"adaleph/internal/driver"
	"adaleph/internal/testkit"
	"adaleph/internal/tree"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

var roots = []driver.Root{driver.RootProgram, driver.RootDeclarations, driver.RootStatements}

// FuzzParseRoots прогоняет вход через все три корня структурного API:
// либо дерево с выполненными инвариантами, либо *driver.Error и диагностика.
func FuzzParseRoots(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		for _, root := range roots {
			res, err := driver.Parse(context.Background(), root, "fuzz.adb", string(input), driver.Options{})
			if res == nil {
				t.Fatalf("%s: nil result (err %v)", root, err)
			}
			if err != nil {
				var perr *driver.Error
				if !errors.As(err, &perr) {
					t.Fatalf("%s: error %T is not *driver.Error", root, err)
				}
				if perr.Kind == driver.ErrInternal {
					t.Fatalf("%s: internal error on %q: %v", root, truncateForLog(input, 200), err)
				}
				if !res.Bag.HasErrors() {
					t.Fatalf("%s: failure without a diagnostic", root)
				}
				if res.Program != nil || res.Nodes != nil {
					t.Fatalf("%s: tree returned together with an error", root)
				}
				continue
			}
			if res.Bag.HasErrors() {
				t.Fatalf("%s: success with error diagnostics", root)
			}
			if err := testkit.CheckFile(res.File, res.List()); err != nil {
				t.Fatalf("%s: %v\ninput: %q", root, err, truncateForLog(input, 200))
			}
		}
	})
}

// FuzzSentinelContract checks the legacy API: Unit or an empty sequence on
// failure, always with a message on the diagnostic writer.
func FuzzSentinelContract(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		src := string(input)

		var out bytes.Buffer
		s := &driver.Sentinel{Out: &out, Name: "fuzz.adb"}

		prog := s.ParseProgram(src)
		if prog == nil {
			t.Fatal("ParseProgram returned nil")
		}
		if _, isUnit := prog.(*tree.Unit); isUnit {
			if out.Len() == 0 {
				t.Fatal("Unit without a diagnostic")
			}
		} else if _, ok := prog.(*tree.Program); !ok {
			t.Fatalf("ParseProgram returned %T", prog)
		}

		for name, parse := range map[string]func(string) []tree.Node{
			"declarations": s.ParseDeclarations,
			"statements":   s.ParseStatements,
		} {
			out.Reset()
			nodes := parse(src)
			if nodes == nil {
				t.Fatalf("%s: nil sequence", name)
			}
			if len(nodes) != 0 && out.Len() != 0 {
				t.Fatalf("%s: nodes alongside a diagnostic: %s", name, out.String())
			}
			for _, n := range nodes {
				if _, isUnit := n.(*tree.Unit); isUnit {
					t.Fatalf("%s: Unit inside a successful sequence", name)
				}
			}
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// глубокая вложенность и незакрытые конструкции
	f.Add([]byte("X := ((((((((((((((((1))))))))))))))));"))
	f.Add([]byte("if A then if B then if C then null; end if; end if;"))
	f.Add([]byte("procedure P is procedure Q is procedure R is"))
	f.Add([]byte("X := A'B'C'D'E;"))
	f.Add([]byte("loop loop loop loop"))
	f.Add([]byte("X := " + strings.Repeat("(", 20000) + "1" + strings.Repeat(")", 20000) + ";"))
	f.Add([]byte(strings.Repeat("begin ", 10000)))
	f.Add([]byte(strings.Repeat("not (", 8000)))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			for _, root := range roots {
				_, _ = driver.Parse(context.Background(), root, "fuzz.adb", string(input), driver.Options{})
			}
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(append([]byte(nil), input[:maxLen]...), "..."...)
}
