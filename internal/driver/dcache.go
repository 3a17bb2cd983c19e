package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"adaleph/internal/diag"
	"adaleph/internal/source"
	"adaleph/internal/tree"
)

// Current schema version - increment when CachedParse format changes
const cacheSchemaVersion uint16 = 1

// CachedParse is the persisted outcome of one parse: the serialisable tree
// (tree.ToValue form), the diagnostics and the structured error, if any.
// Spans are stored as byte offsets and rebound to the file on restore.
type CachedParse struct {
	Schema      uint16             `msgpack:"schema"`
	Root        uint8              `msgpack:"root"`
	Tree        any                `msgpack:"tree,omitempty"`
	Diagnostics []CachedDiagnostic `msgpack:"diagnostics,omitempty"`
	Error       *CachedError       `msgpack:"error,omitempty"`
}

type CachedDiagnostic struct {
	Severity uint8        `msgpack:"sev"`
	Code     uint16       `msgpack:"code"`
	Message  string       `msgpack:"msg"`
	Start    uint32       `msgpack:"start"`
	End      uint32       `msgpack:"end"`
	Notes    []CachedNote `msgpack:"notes,omitempty"`
}

type CachedNote struct {
	Start uint32 `msgpack:"start"`
	End   uint32 `msgpack:"end"`
	Msg   string `msgpack:"msg"`
}

type CachedError struct {
	Kind      uint8    `msgpack:"kind"`
	Code      uint16   `msgpack:"code"`
	Start     uint32   `msgpack:"start"`
	End       uint32   `msgpack:"end"`
	Found     string   `msgpack:"found,omitempty"`
	Expected  []string `msgpack:"expected,omitempty"`
	Construct string   `msgpack:"construct,omitempty"`
	Message   string   `msgpack:"msg"`
}

// DiskCache хранит CachedParse по CacheKey на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DefaultCacheDir returns $XDG_CACHE_HOME/<app> or ~/.cache/<app>.
func DefaultCacheDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// OpenDiskCache creates dir if needed and returns a cache rooted there.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key CacheKey) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первому байту, чтобы не держать всё в одной директории
	return filepath.Join(c.dir, "parse", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key CacheKey, payload *CachedParse) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	enc := msgpack.NewEncoder(f)
	enc.SetSortMapKeys(true)
	if err = enc.Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key CacheKey, out *CachedParse) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	// #nosec G304 -- path is derived from the cache key
	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == cacheSchemaVersion, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// Cache is the two-level parse cache: process memory in front of an optional
// DiskCache. Safe for concurrent use by ParseDir workers.
type Cache struct {
	mem    *memCache
	disk   *DiskCache
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache returns a cache; disk may be nil for a memory-only cache.
func NewCache(disk *DiskCache) *Cache {
	return &Cache{mem: newMemCache(64), disk: disk}
}

// Stats reports cache hits and misses since creation.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Len reports how many entries are held in memory.
func (c *Cache) Len() int { return c.mem.len() }

func (c *Cache) lookup(key CacheKey) (*CachedParse, bool, error) {
	if rec, ok := c.mem.get(key); ok {
		return rec, true, nil
	}
	var rec CachedParse
	ok, err := c.disk.Get(key, &rec)
	if err != nil || !ok {
		return nil, false, err
	}
	c.mem.put(key, &rec)
	return &rec, true, nil
}

// restore заполняет res из кэша. Возвращает (true, *Error) для закэшированной ошибки.
func (c *Cache) restore(res *Result) (bool, error) {
	rec, ok, err := c.lookup(cacheKey(res.File, res.Root))
	if err != nil || !ok || rec.Root != uint8(res.Root) {
		c.misses.Add(1)
		// битая запись на диске: не ошибка разбора, просто промах
		return false, nil
	}
	c.hits.Add(1)

	fileID := res.File.ID
	sp := func(start, end uint32) source.Span { return source.Span{File: fileID, Start: start, End: end} }
	for _, d := range rec.Diagnostics {
		out := diag.New(diag.Severity(d.Severity), diag.Code(d.Code), sp(d.Start, d.End), d.Message)
		for _, n := range d.Notes {
			out = out.WithNote(sp(n.Start, n.End), n.Msg)
		}
		res.Bag.Add(out)
	}
	res.Cached = true
	res.Value = rec.Tree
	if rec.Error == nil {
		return true, nil
	}
	e := &Error{
		Kind:      ErrorKind(rec.Error.Kind),
		Code:      diag.Code(rec.Error.Code),
		Path:      res.File.Path,
		Span:      sp(rec.Error.Start, rec.Error.End),
		Found:     rec.Error.Found,
		Expected:  append([]string(nil), rec.Error.Expected...),
		Construct: rec.Error.Construct,
		Message:   rec.Error.Message,
	}
	e.Pos, _ = res.FileSet.Resolve(e.Span)
	return true, e
}

// store записывает исход разбора; внутренние ошибки не кэшируются.
func (c *Cache) store(res *Result, parseErr error) error {
	rec := &CachedParse{Schema: cacheSchemaVersion, Root: uint8(res.Root)}
	switch {
	case parseErr != nil:
		var e *Error
		if !errors.As(parseErr, &e) || e.Kind == ErrInternal {
			return nil
		}
		rec.Error = &CachedError{
			Kind:      uint8(e.Kind),
			Code:      uint16(e.Code),
			Start:     e.Span.Start,
			End:       e.Span.End,
			Found:     e.Found,
			Expected:  append([]string(nil), e.Expected...),
			Construct: e.Construct,
			Message:   e.Message,
		}
	case res.Program != nil:
		rec.Tree = tree.ToValue(res.Program)
	default:
		rec.Tree = tree.ListValue(res.Nodes)
	}
	for _, d := range res.Bag.Items() {
		cd := CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		rec.Diagnostics = append(rec.Diagnostics, cd)
	}

	key := cacheKey(res.File, res.Root)
	c.mem.put(key, rec)
	if err := c.disk.Put(key, rec); err != nil {
		return fmt.Errorf("parse cache: %w", err)
	}
	return nil
}
