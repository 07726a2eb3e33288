package ports

import (
	"github.com/pokebingo/pokebingo/internal/core/domain/image"
)

// ImageCache is a bounded in-memory store of fetched card artwork. Entries
// expire after the configured TTL; expiry is checked lazily on read, and a
// full cleanup pass runs probabilistically from the write path. All
// operations are safe for concurrent use.
type ImageCache interface {
	// Get returns the entry for key if present and not expired. A stale
	// entry is evicted and reported as a miss.
	Get(key string) (*image.CachedImage, bool)
	// Put inserts or replaces the entry for key with a fresh expiry.
	Put(key string, payload []byte, contentType string)
	// Cleanup drops expired entries, then evicts oldest-inserted entries
	// until the count is within capacity.
	Cleanup()
	// Stats returns a diagnostic snapshot without mutating the cache.
	Stats() image.CacheStats
	// Len returns the current entry count.
	Len() int
}
