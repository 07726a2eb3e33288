package ports

import (
	"context"

	"github.com/pokebingo/pokebingo/internal/core/domain/image"
)

// ImageResult is a resolved card artwork response. Status discloses whether
// the bytes came from cache, a fresh upstream fetch, or the synthesized
// placeholder. CacheSize is the cache entry count at resolution time.
type ImageResult struct {
	Payload     []byte
	ContentType string
	Status      image.CacheStatus
	CacheSize   int
}

// ImageService resolves card codes to artwork. It never fails on upstream
// unavailability: a placeholder is served instead. The code must already be
// validated by the caller.
type ImageService interface {
	GetCardImage(ctx context.Context, code string) (*ImageResult, error)
	CacheStats() image.CacheStats
}

// FetchedImage is the raw result of one upstream fetch.
type FetchedImage struct {
	Payload     []byte
	ContentType string
}

// ImageFetcher retrieves card artwork from the upstream image host. Fetches
// are bounded by the configured timeout; failures are returned as errors and
// never retried.
type ImageFetcher interface {
	Fetch(ctx context.Context, set, number string) (*FetchedImage, error)
}
