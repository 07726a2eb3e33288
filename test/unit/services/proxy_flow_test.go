package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	impl "github.com/pokebingo/pokebingo/internal/application/services"
	"github.com/pokebingo/pokebingo/internal/core/domain/image"
	"github.com/pokebingo/pokebingo/internal/infrastructure/memcache"
	"github.com/pokebingo/pokebingo/internal/infrastructure/upstream"
	"github.com/stretchr/testify/require"
)

// Full proxy flow against a live test upstream: first request fetches and
// caches, second request is served from memory.
func TestProxyFlow_MissThenHit(t *testing.T) {
	upstreamCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
		require.Equal(t, "/tpci/BLK/BLK_067.png", r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("real-artwork"))
	}))
	defer srv.Close()

	cache := memcache.New(memcache.Config{MaxEntries: 150, TTL: 7 * 24 * time.Hour}, quietLogger())
	fetcher := upstream.NewHTTPFetcher(upstream.Config{
		BaseURL:      srv.URL + "/tpci/{set}/{set}_{number}.png",
		FetchTimeout: time.Second,
	}, quietLogger())
	svc := impl.NewImageService(cache, fetcher, quietLogger())

	first, err := svc.GetCardImage(context.Background(), "BLK-67")
	require.NoError(t, err)
	require.Equal(t, image.StatusMiss, first.Status)
	require.Equal(t, []byte("real-artwork"), first.Payload)

	second, err := svc.GetCardImage(context.Background(), "BLK-67")
	require.NoError(t, err)
	require.Equal(t, image.StatusHit, second.Status)
	require.Equal(t, []byte("real-artwork"), second.Payload)

	require.Equal(t, 1, upstreamCalls, "the second request must not re-fetch")
}

func TestProxyFlow_Upstream404FallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	cache := memcache.New(memcache.Config{MaxEntries: 150, TTL: 7 * 24 * time.Hour}, quietLogger())
	fetcher := upstream.NewHTTPFetcher(upstream.Config{
		BaseURL:      srv.URL + "/tpci/{set}/{set}_{number}.png",
		FetchTimeout: time.Second,
	}, quietLogger())
	svc := impl.NewImageService(cache, fetcher, quietLogger())

	result, err := svc.GetCardImage(context.Background(), "BLK-67")
	require.NoError(t, err)
	require.Equal(t, image.StatusFallback, result.Status)
	require.Equal(t, image.FallbackContentType, result.ContentType)
	require.Equal(t, 0, cache.Len(), "fallbacks are not cached")
}
