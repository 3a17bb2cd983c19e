package main

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"adaleph/internal/driver"
	"adaleph/internal/source"
	"adaleph/internal/ui"
)

type dirOutcome struct {
	fileSet *source.FileSet
	results []driver.FileResult
	err     error
}

// runParseDirWithUI запускает ParseDir в горутине и показывает прогресс в TUI.
// Фазы превращаются в статусы файлов, завершение файла: в done/error.
func runParseDirWithUI(ctx context.Context, title, dir string, files []string, root driver.Root, opts driver.DirOptions) (*source.FileSet, []driver.FileResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan ui.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	keys := make([]string, len(files))
	for i, f := range files {
		keys[i] = uiKey(f)
	}

	go func() {
		o := opts
		o.Observer = func(ev driver.PhaseEvent) {
			if status, ok := phaseStatus(ev); ok {
				events <- ui.Event{File: uiKey(ev.Path), Status: status}
			}
		}
		o.Progress = func(ev driver.ProgressEvent) {
			status := ui.StatusDone
			if ev.Failed {
				status = ui.StatusError
			}
			events <- ui.Event{File: uiKey(ev.Path), Status: status}
		}
		fs, results, err := driver.ParseDir(ctx, dir, root, o)
		outcomeCh <- dirOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, keys, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	final, uiErr := program.Run()
	// модель больше не читает канал; воркеры не должны блокироваться на отправке
	go drainEvents(events)
	if uiErr != nil || ui.Interrupted(final) {
		cancel()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}

func drainEvents(events <-chan ui.Event) {
	for range events {
	}
}

func phaseStatus(ev driver.PhaseEvent) (ui.Status, bool) {
	switch {
	case ev.Name == "cache" && ev.Status == driver.PhaseEnd && ev.Note == "hit":
		return ui.StatusCached, true
	case ev.Name == "lex" && ev.Status == driver.PhaseStart:
		return ui.StatusLexing, true
	case ev.Name == "parse" && ev.Status == driver.PhaseStart:
		return ui.StatusParsing, true
	}
	return 0, false
}

// uiKey приводит путь к виду, в котором его хранит FileSet.
func uiKey(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}
