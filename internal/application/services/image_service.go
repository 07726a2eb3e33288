package services

import (
	"context"
	"fmt"

	"github.com/pokebingo/pokebingo/internal/core/domain/image"
	"github.com/pokebingo/pokebingo/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// ImageService resolves card codes to artwork through the cache, falling
// back to a synthesized placeholder when the upstream host is unavailable.
// Concurrent misses for the same code may both fetch and both write; the
// duplicate upstream call is cheaper than per-key serialization.
type ImageService struct {
	cache   ports.ImageCache
	fetcher ports.ImageFetcher
	logger  *logrus.Logger
}

func NewImageService(cache ports.ImageCache, fetcher ports.ImageFetcher, logger *logrus.Logger) ports.ImageService {
	return &ImageService{
		cache:   cache,
		fetcher: fetcher,
		logger:  logger,
	}
}

// GetCardImage resolves one validated card code. Upstream unavailability is
// not an error: the result is a placeholder with FALLBACK status. An error
// return means an internal fault (e.g. an unparseable code slipped past
// validation).
func (s *ImageService) GetCardImage(ctx context.Context, code string) (*ports.ImageResult, error) {
	if cached, ok := s.cache.Get(code); ok {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"code": code}).Debug("image served from cache")
		}
		return &ports.ImageResult{
			Payload:     cached.Payload,
			ContentType: cached.ContentType,
			Status:      image.StatusHit,
			CacheSize:   s.cache.Len(),
		}, nil
	}

	set, number, err := image.ParseCode(code)
	if err != nil {
		return nil, fmt.Errorf("unvalidated code reached image service: %w", err)
	}

	fetched, err := s.fetcher.Fetch(ctx, set, number)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"code": code}).WithError(err).Warn("upstream fetch failed; serving fallback image")
		}
		return &ports.ImageResult{
			Payload:     image.FallbackSVG(code),
			ContentType: image.FallbackContentType,
			Status:      image.StatusFallback,
			CacheSize:   s.cache.Len(),
		}, nil
	}

	s.cache.Put(code, fetched.Payload, fetched.ContentType)
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"code": code, "bytes": len(fetched.Payload)}).Info("image fetched from upstream and cached")
	}

	return &ports.ImageResult{
		Payload:     fetched.Payload,
		ContentType: fetched.ContentType,
		Status:      image.StatusMiss,
		CacheSize:   s.cache.Len(),
	}, nil
}

// CacheStats exposes the cache diagnostics for the stats endpoint.
func (s *ImageService) CacheStats() image.CacheStats {
	return s.cache.Stats()
}
