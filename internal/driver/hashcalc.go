package driver

import (
	"crypto/sha256"

	"adaleph/internal/source"
)

// CacheKey identifies a parse outcome: content hash, root and cache schema.
type CacheKey [sha256.Size]byte

// cacheKey: H(content || root || schema). Путь в ключ не входит: одинаковые
// файлы в разных местах разбираются одинаково.
func cacheKey(file *source.File, root Root) CacheKey {
	h := sha256.New()
	_, _ = h.Write(file.Hash[:])
	_, _ = h.Write([]byte{byte(root), byte(cacheSchemaVersion >> 8), byte(cacheSchemaVersion)})
	var out CacheKey
	copy(out[:], h.Sum(nil))
	return out
}
