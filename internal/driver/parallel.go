package driver

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"adaleph/internal/diag"
	"adaleph/internal/source"
	"adaleph/internal/trace"
)

// adaExtensions: спецификации, тела и однофайловые единицы.
var adaExtensions = []string{".ads", ".adb", ".ada"}

// FileResult содержит результат разбора одного файла каталога.
type FileResult struct {
	Path   string
	Result *Result // nil, если файл не загрузился
	Err    error   // *Error, ошибка загрузки или nil
}

// ProgressEvent is emitted after each file of ParseDir completes.
type ProgressEvent struct {
	Path   string
	Done   int
	Total  int
	Failed bool
}

// ProgressFunc is called concurrently from ParseDir workers.
type ProgressFunc func(ProgressEvent)

type DirOptions struct {
	Options
	// Jobs bounds concurrent parses; <= 0 means GOMAXPROCS.
	Jobs     int
	Progress ProgressFunc
}

// IsAdaSource reports whether path has an Ada source extension.
func IsAdaSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range adaExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ListSources возвращает отсортированный список всех исходников Ada в директории.
// Скрытые каталоги пропускаются.
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsAdaSource(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ParseDir разбирает все исходники Ada в директории параллельно.
// Порядок результатов совпадает с отсортированным списком путей и не зависит
// от планирования. Ошибки отдельных файлов лежат в FileResult.Err; возвращаемая
// ошибка: только обход каталога или отмена контекста.
func ParseDir(ctx context.Context, dir string, root Root, opts DirOptions) (*source.FileSet, []FileResult, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "driver.parse_dir")
	defer span.End(dir)

	files, err := ListSources(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet наполняется до запуска воркеров: дальше он только читается
	results := make([]FileResult, len(files))
	loaded := make([]*source.File, len(files))
	for i, path := range files {
		results[i].Path = path
		id, err := fileSet.Load(path)
		if err != nil {
			results[i].Err = err
			continue
		}
		loaded[i] = fileSet.Get(id)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if file := loaded[i]; file != nil {
				fspan, fctx := trace.StartSpan(gctx, trace.ScopeFile, "file:"+file.FormatPath("relative", dir))
				res, perr := parseFile(fctx, root, fileSet, file, opts.Options)
				fspan.End("")
				results[i].Result = res
				results[i].Err = perr
				// отмена посреди разбора: не ошибка файла
				if errors.Is(perr, context.Canceled) || errors.Is(perr, context.DeadlineExceeded) {
					return perr
				}
			}
			if opts.Progress != nil {
				opts.Progress(ProgressEvent{
					Path:   results[i].Path,
					Done:   int(done.Add(1)),
					Total:  len(files),
					Failed: results[i].Err != nil,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// MergeDiagnostics собирает диагностики всех файлов в один Bag, отсортированный по позиции, без дублей.
func MergeDiagnostics(results []FileResult, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	for _, r := range results {
		if r.Result != nil {
			bag.Merge(r.Result.Bag)
		}
	}
	bag.Sort()
	bag.Dedup()
	return bag
}
