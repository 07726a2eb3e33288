package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pokebingo/pokebingo/internal/infrastructure/memcache"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newCache(maxEntries int, ttl time.Duration, cleanupProbability float64) *memcache.ImageCache {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return memcache.New(memcache.Config{
		MaxEntries:         maxEntries,
		TTL:                ttl,
		CleanupProbability: cleanupProbability,
	}, logger)
}

func TestCache_PutThenGet(t *testing.T) {
	c := newCache(10, time.Hour, 0)

	c.Put("BLK-67", []byte("png-bytes"), "image/png")

	entry, ok := c.Get("BLK-67")
	require.True(t, ok)
	require.Equal(t, []byte("png-bytes"), entry.Payload)
	require.Equal(t, "image/png", entry.ContentType)
	require.Equal(t, 1, c.Len())
}

func TestCache_MissForUnknownKey(t *testing.T) {
	c := newCache(10, time.Hour, 0)
	_, ok := c.Get("WHT-9")
	require.False(t, ok)
}

func TestCache_ReplaceIsWholesale(t *testing.T) {
	c := newCache(10, time.Hour, 0)
	c.Put("BLK-67", []byte("old"), "image/png")
	c.Put("BLK-67", []byte("new"), "image/jpeg")

	entry, ok := c.Get("BLK-67")
	require.True(t, ok)
	require.Equal(t, []byte("new"), entry.Payload)
	require.Equal(t, "image/jpeg", entry.ContentType)
	require.Equal(t, 1, c.Len())
}

func TestCache_LazyExpiryOnGet(t *testing.T) {
	c := newCache(10, 20*time.Millisecond, 0)
	c.Put("BLK-67", []byte("png"), "image/png")

	time.Sleep(40 * time.Millisecond)

	_, ok := c.Get("BLK-67")
	require.False(t, ok)
	// The stale entry was evicted by the read, not just hidden.
	require.Equal(t, 0, c.Len())
	require.Equal(t, 0, c.Stats().TotalEntries)
}

func TestCache_StatsCountsExpiredNotYetSwept(t *testing.T) {
	c := newCache(10, 20*time.Millisecond, 0)
	c.Put("BLK-1", []byte("aa"), "image/png")
	c.Put("BLK-2", []byte("bbbb"), "image/png")

	stats := c.Stats()
	require.Equal(t, 2, stats.TotalEntries)
	require.Equal(t, 0, stats.ExpiredEntries)
	require.Equal(t, 6, stats.TotalSizeBytes)
	require.Equal(t, 10, stats.MaxEntries)

	time.Sleep(40 * time.Millisecond)

	stats = c.Stats()
	require.Equal(t, 2, stats.TotalEntries, "stats must not mutate the cache")
	require.Equal(t, 2, stats.ExpiredEntries)
}

func TestCache_CleanupDropsExpiredEntries(t *testing.T) {
	c := newCache(10, 20*time.Millisecond, 0)
	c.Put("BLK-1", []byte("a"), "image/png")
	c.Put("BLK-2", []byte("b"), "image/png")

	time.Sleep(40 * time.Millisecond)
	c.Cleanup()

	require.Equal(t, 0, c.Len())
}

func TestCache_CapacityEvictionKeepsNewest(t *testing.T) {
	c := newCache(3, time.Hour, 0)
	for i := 1; i <= 5; i++ {
		c.Put(fmt.Sprintf("BLK-%d", i), []byte("x"), "image/png")
		// Distinct insertion timestamps so eviction order is well defined.
		time.Sleep(time.Millisecond)
	}

	require.Equal(t, 5, c.Len())
	c.Cleanup()
	require.Equal(t, 3, c.Len())

	for _, evicted := range []string{"BLK-1", "BLK-2"} {
		_, ok := c.Get(evicted)
		require.False(t, ok, "%s should have been evicted", evicted)
	}
	for _, kept := range []string{"BLK-3", "BLK-4", "BLK-5"} {
		_, ok := c.Get(kept)
		require.True(t, ok, "%s should have survived", kept)
	}
}

func TestCache_ProbabilisticCleanupOnPut(t *testing.T) {
	// Probability 1 means every write sweeps, so the cache never stays over
	// capacity.
	c := newCache(3, time.Hour, 1.0)
	for i := 1; i <= 10; i++ {
		c.Put(fmt.Sprintf("BLK-%d", i), []byte("x"), "image/png")
		time.Sleep(time.Millisecond)
	}
	require.LessOrEqual(t, c.Len(), 3)

	// Probability 0 means writes never sweep.
	c = newCache(3, time.Hour, 0)
	for i := 1; i <= 10; i++ {
		c.Put(fmt.Sprintf("WHT-%d", i), []byte("x"), "image/png")
	}
	require.Equal(t, 10, c.Len())
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := newCache(50, time.Hour, 0.5)

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("BLK-%d", (worker*200+i)%60)
				c.Put(key, []byte("payload"), "image/png")
				c.Get(key)
				if i%50 == 0 {
					c.Cleanup()
					c.Stats()
				}
			}
		}(worker)
	}
	wg.Wait()

	require.LessOrEqual(t, c.Stats().TotalEntries, 60)
}
