package driver

import "sync"

// memCache: кэш результатов в памяти процесса по CacheKey.
type memCache struct {
	mu    sync.RWMutex
	byKey map[CacheKey]*CachedParse
}

func newMemCache(capHint int) *memCache {
	return &memCache{byKey: make(map[CacheKey]*CachedParse, capHint)}
}

func (c *memCache) get(key CacheKey) (*CachedParse, bool) {
	c.mu.RLock()
	rec, ok := c.byKey[key]
	c.mu.RUnlock()
	return rec, ok
}

func (c *memCache) put(key CacheKey, rec *CachedParse) {
	c.mu.Lock()
	c.byKey[key] = rec
	c.mu.Unlock()
}

func (c *memCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byKey)
}
