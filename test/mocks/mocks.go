package mocks

import (
	"context"
	"fmt"

	"github.com/pokebingo/pokebingo/internal/core/domain/card"
	"github.com/pokebingo/pokebingo/internal/core/domain/event"
	"github.com/pokebingo/pokebingo/internal/core/domain/image"
	"github.com/pokebingo/pokebingo/internal/core/ports"
)

// ImageCacheMock is a lightweight mock for ports.ImageCache
type ImageCacheMock struct {
	GetFn     func(key string) (*image.CachedImage, bool)
	PutFn     func(key string, payload []byte, contentType string)
	CleanupFn func()
	StatsFn   func() image.CacheStats
	LenFn     func() int

	PutCalls []string
}

func (m *ImageCacheMock) Get(key string) (*image.CachedImage, bool) {
	if m.GetFn != nil {
		return m.GetFn(key)
	}
	return nil, false
}
func (m *ImageCacheMock) Put(key string, payload []byte, contentType string) {
	m.PutCalls = append(m.PutCalls, key)
	if m.PutFn != nil {
		m.PutFn(key, payload, contentType)
	}
}
func (m *ImageCacheMock) Cleanup() {
	if m.CleanupFn != nil {
		m.CleanupFn()
	}
}
func (m *ImageCacheMock) Stats() image.CacheStats {
	if m.StatsFn != nil {
		return m.StatsFn()
	}
	return image.CacheStats{}
}
func (m *ImageCacheMock) Len() int {
	if m.LenFn != nil {
		return m.LenFn()
	}
	return 0
}

// ImageFetcherMock is a lightweight mock for ports.ImageFetcher
type ImageFetcherMock struct {
	FetchFn    func(ctx context.Context, set, number string) (*ports.FetchedImage, error)
	FetchCalls int
}

func (m *ImageFetcherMock) Fetch(ctx context.Context, set, number string) (*ports.FetchedImage, error) {
	m.FetchCalls++
	if m.FetchFn != nil {
		return m.FetchFn(ctx, set, number)
	}
	return nil, fmt.Errorf("upstream unavailable")
}

// EventNotifierMock is a lightweight mock for ports.EventNotifier
type EventNotifierMock struct {
	NotifyFn func(ctx context.Context, embeds []ports.Embed) error
	Sent     [][]ports.Embed
}

func (m *EventNotifierMock) Notify(ctx context.Context, embeds []ports.Embed) error {
	m.Sent = append(m.Sent, embeds)
	if m.NotifyFn != nil {
		return m.NotifyFn(ctx, embeds)
	}
	return nil
}

// ImageServiceMock is a lightweight mock for ports.ImageService
type ImageServiceMock struct {
	GetCardImageFn func(ctx context.Context, code string) (*ports.ImageResult, error)
	CacheStatsFn   func() image.CacheStats
}

func (m *ImageServiceMock) GetCardImage(ctx context.Context, code string) (*ports.ImageResult, error) {
	if m.GetCardImageFn != nil {
		return m.GetCardImageFn(ctx, code)
	}
	return &ports.ImageResult{
		Payload:     image.FallbackSVG(code),
		ContentType: image.FallbackContentType,
		Status:      image.StatusFallback,
	}, nil
}
func (m *ImageServiceMock) CacheStats() image.CacheStats {
	if m.CacheStatsFn != nil {
		return m.CacheStatsFn()
	}
	return image.CacheStats{}
}

// CardServiceMock is a lightweight mock for ports.CardService
type CardServiceMock struct {
	GenerateCardFn   func(seed int64) *card.Card
	GenerateByNameFn func(name string) *card.Card
	GenerateTodayFn  func() *card.Card
	GenerateBulkFn   func(ctx context.Context, count int, baseSeed int64) ([]*card.Card, error)
}

func (m *CardServiceMock) GenerateCard(seed int64) *card.Card {
	if m.GenerateCardFn != nil {
		return m.GenerateCardFn(seed)
	}
	return &card.Card{Seed: seed, Slots: card.NewSeedGenerator(seed).Generate()}
}
func (m *CardServiceMock) GenerateByName(name string) *card.Card {
	if m.GenerateByNameFn != nil {
		return m.GenerateByNameFn(name)
	}
	seed := card.SeedFromString(name)
	return &card.Card{Name: name, Seed: seed, Slots: card.NewSeedGenerator(seed).Generate()}
}
func (m *CardServiceMock) GenerateToday() *card.Card {
	if m.GenerateTodayFn != nil {
		return m.GenerateTodayFn()
	}
	return &card.Card{Slots: card.NewSeedGenerator(1).Generate()}
}
func (m *CardServiceMock) GenerateBulk(ctx context.Context, count int, baseSeed int64) ([]*card.Card, error) {
	if m.GenerateBulkFn != nil {
		return m.GenerateBulkFn(ctx, count, baseSeed)
	}
	return nil, fmt.Errorf("not implemented")
}

// AnalyticsServiceMock is a lightweight mock for ports.AnalyticsService
type AnalyticsServiceMock struct {
	TrackCardCreatedFn func(ctx context.Context, ev *event.CardCreated) error
	TrackCellMarkedFn  func(ctx context.Context, ev *event.CellMarked) error
}

func (m *AnalyticsServiceMock) TrackCardCreated(ctx context.Context, ev *event.CardCreated) error {
	if m.TrackCardCreatedFn != nil {
		return m.TrackCardCreatedFn(ctx, ev)
	}
	return nil
}
func (m *AnalyticsServiceMock) TrackCellMarked(ctx context.Context, ev *event.CellMarked) error {
	if m.TrackCellMarkedFn != nil {
		return m.TrackCellMarkedFn(ctx, ev)
	}
	return nil
}
