package memcache

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/pokebingo/pokebingo/internal/core/domain/image"
	"github.com/sirupsen/logrus"
)

// Config bounds one ImageCache instance.
type Config struct {
	MaxEntries         int
	TTL                time.Duration
	CleanupProbability float64
}

// ImageCache is a mutex-guarded in-memory store of fetched card artwork,
// implementing ports.ImageCache. It is explicitly constructed and owned by
// the process wiring; there is no package-level singleton. There is no
// background sweeper: stale entries are dropped lazily on read, and writes
// trigger a full cleanup pass with the configured probability.
type ImageCache struct {
	mu      sync.Mutex
	entries map[string]*image.CachedImage
	config  Config
	logger  *logrus.Logger
}

// New creates an empty cache with the given bounds.
func New(config Config, logger *logrus.Logger) *ImageCache {
	return &ImageCache{
		entries: make(map[string]*image.CachedImage),
		config:  config,
		logger:  logger,
	}
}

// Get returns the entry for key if present and fresh. A stale entry is
// evicted on the spot and reported as a miss.
func (c *ImageCache) Get(key string) (*image.CachedImage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if entry.Expired(time.Now()) {
		delete(c.entries, key)
		return nil, false
	}
	return entry, true
}

// Put inserts or replaces the entry for key with expiry now+TTL. With the
// configured probability the write also runs a full cleanup pass, amortizing
// maintenance cost across writes instead of scheduling a timer.
func (c *ImageCache) Put(key string, payload []byte, contentType string) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &image.CachedImage{
		Payload:     payload,
		ContentType: contentType,
		CreatedAt:   now,
		ExpiresAt:   now.Add(c.config.TTL),
	}

	if rand.Float64() < c.config.CleanupProbability {
		c.cleanupLocked()
	}
}

// Cleanup drops expired entries, then evicts oldest-inserted entries until
// the count is within MaxEntries.
func (c *ImageCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleanupLocked()
}

func (c *ImageCache) cleanupLocked() {
	now := time.Now()
	expired := 0
	for key, entry := range c.entries {
		if entry.Expired(now) {
			delete(c.entries, key)
			expired++
		}
	}

	evicted := 0
	if len(c.entries) > c.config.MaxEntries {
		type keyed struct {
			key       string
			createdAt time.Time
		}
		ordered := make([]keyed, 0, len(c.entries))
		for key, entry := range c.entries {
			ordered = append(ordered, keyed{key: key, createdAt: entry.CreatedAt})
		}
		sort.Slice(ordered, func(i, j int) bool {
			return ordered[i].createdAt.Before(ordered[j].createdAt)
		})
		for _, k := range ordered[:len(c.entries)-c.config.MaxEntries] {
			delete(c.entries, k.key)
			evicted++
		}
	}

	if (expired > 0 || evicted > 0) && c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"expired":   expired,
			"evicted":   evicted,
			"remaining": len(c.entries),
		}).Debug("image cache cleanup completed")
	}
}

// Stats returns a read-only diagnostic snapshot. Entries already expired
// but not yet swept are counted, matching what a later cleanup would drop.
func (c *ImageCache) Stats() image.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	expired := 0
	totalSize := 0
	for _, entry := range c.entries {
		if entry.Expired(now) {
			expired++
		}
		totalSize += len(entry.Payload)
	}

	return image.CacheStats{
		TotalEntries:   len(c.entries),
		ExpiredEntries: expired,
		TotalSizeBytes: totalSize,
		TotalSizeMB:    fmt.Sprintf("%.2f", float64(totalSize)/(1024*1024)),
		MaxEntries:     c.config.MaxEntries,
		TTLHours:       c.config.TTL.Hours(),
	}
}

// Len returns the current entry count.
func (c *ImageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
