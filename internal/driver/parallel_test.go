package driver

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestParseDirOrderAndErrors(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.adb":         helloProgram,
		"a.ads":         "package A is\n   X : Integer;\nend A;\n",
		"nested/c.adb":  "procedure C is\nbegin\nend C;\n",
		"notes.txt":     "not ada",
		".hidden/d.adb": "garbage",
		"nested/e.ADA":  "procedure E is begin null; end E;",
	})

	var (
		mu     sync.Mutex
		events []ProgressEvent
	)
	opts := DirOptions{Jobs: 3, Progress: func(ev ProgressEvent) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	}}
	fs, results, err := ParseDir(context.Background(), dir, RootProgram, opts)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if fs == nil {
		t.Fatal("expected fileset")
	}

	want := []string{"a.ads", "b.adb", "nested/c.adb", "nested/e.ADA"}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, w := range want {
		rel, _ := filepath.Rel(dir, results[i].Path)
		if filepath.ToSlash(rel) != w {
			t.Fatalf("result %d = %s, want %s", i, rel, w)
		}
	}
	for i, r := range results {
		failed := r.Err != nil
		if failed != (i == 2) {
			t.Errorf("%s: err = %v", r.Path, r.Err)
		}
		if r.Result == nil || r.Result.FileSet != fs {
			t.Errorf("%s: result must share the directory FileSet", r.Path)
		}
	}

	if len(events) != len(want) {
		t.Fatalf("got %d progress events", len(events))
	}
	done := make([]int, 0, len(events))
	for _, ev := range events {
		done = append(done, ev.Done)
		if ev.Total != len(want) {
			t.Fatalf("total = %d", ev.Total)
		}
	}
	sort.Ints(done)
	for i, d := range done {
		if d != i+1 {
			t.Fatalf("done counters = %v", done)
		}
	}

	bag := MergeDiagnostics(results, 0)
	if bag.Len() != 1 {
		t.Fatalf("expected one merged diagnostic, got %d", bag.Len())
	}
}

func TestParseDirDeterministic(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{}
	for _, name := range []string{"p1.adb", "p2.adb", "p3.adb", "p4.adb", "p5.adb", "p6.adb"} {
		files[name] = helloProgram
	}
	writeFiles(t, dir, files)

	_, seq, err := ParseDir(context.Background(), dir, RootProgram, DirOptions{Jobs: 1})
	if err != nil {
		t.Fatal(err)
	}
	_, par, err := ParseDir(context.Background(), dir, RootProgram, DirOptions{Jobs: 6})
	if err != nil {
		t.Fatal(err)
	}
	for i := range seq {
		if seq[i].Path != par[i].Path {
			t.Fatalf("order differs at %d", i)
		}
		if seq[i].Result.Program == nil || par[i].Result.Program == nil {
			t.Fatalf("%s: missing program", seq[i].Path)
		}
	}
}

func TestParseDirEmpty(t *testing.T) {
	fs, results, err := ParseDir(context.Background(), t.TempDir(), RootProgram, DirOptions{})
	if err != nil || fs == nil || len(results) != 0 {
		t.Fatalf("fs=%v results=%d err=%v", fs, len(results), err)
	}
}

func TestIsAdaSource(t *testing.T) {
	for path, want := range map[string]bool{
		"a.ads": true, "b.ADB": true, "c.ada": true, "d.adc": false, "e": false,
	} {
		if got := IsAdaSource(path); got != want {
			t.Errorf("IsAdaSource(%q) = %v", path, got)
		}
	}
}
