package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(files ...string) *progressModel {
	events := make(chan Event)
	close(events)
	return NewProgressModel("checking", files, events).(*progressModel)
}

func TestApplyEventUpdatesStatus(t *testing.T) {
	m := newTestModel("a.adb", "b.adb")

	m.Update(eventMsg{File: "a.adb", Status: StatusParsing})
	if m.items[0].status != StatusParsing {
		t.Fatalf("status = %s", m.items[0].status)
	}
	m.Update(eventMsg{File: "a.adb", Status: StatusError})
	m.Update(eventMsg{File: "a.adb", Status: StatusLexing})
	if m.items[0].status != StatusError {
		t.Fatalf("finished file must keep its final status, got %s", m.items[0].status)
	}
	m.Update(eventMsg{File: "missing.adb", Status: StatusDone})

	finished, failed := m.counts()
	if finished != 1 || failed != 1 {
		t.Fatalf("counts = %d finished, %d failed", finished, failed)
	}
}

func TestViewListsFiles(t *testing.T) {
	m := newTestModel("src/a.adb", "src/b.ads")
	m.Update(eventMsg{File: "src/b.ads", Status: StatusDone})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	view := m.View()
	for _, want := range []string{"checking (1/2)", "src/a.adb", "src/b.ads", "queued", "done"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestDoneMsgQuits(t *testing.T) {
	m := newTestModel("a.adb")
	_, cmd := m.Update(doneMsg{})
	if !m.done || cmd == nil {
		t.Fatal("done message must stop the program")
	}
	if !strings.Contains(m.View(), "done: checking") {
		t.Fatalf("view = %q", m.View())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abcdefghij", 6, "abc..."},
		{"abcdefghij", 10, "abcdefghij"},
		{"short", 10, "short"},
		{"abcdef", 3, "abc"},
		{"abcdef", 0, "abcdef"},
		{"日本語テキスト", 7, "日本..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		quit bool
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, true},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, true},
		{"other rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel("a.adb")
			_, cmd := m.Update(tt.key)
			quit := false
			if cmd != nil {
				_, quit = cmd().(tea.QuitMsg)
			}
			if quit != tt.quit {
				t.Fatalf("quit = %v, want %v", quit, tt.quit)
			}
			if Interrupted(m) != tt.quit {
				t.Fatalf("Interrupted = %v, want %v", Interrupted(m), tt.quit)
			}
		})
	}
}

func TestFinishedRunIsNotInterrupted(t *testing.T) {
	m := newTestModel("a.adb")
	m.Update(doneMsg{})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if Interrupted(m) {
		t.Fatal("quitting after completion must not count as an interrupt")
	}
}
