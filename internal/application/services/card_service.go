package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pokebingo/pokebingo/internal/core/domain/card"
	"github.com/pokebingo/pokebingo/internal/core/ports"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// maxBulkCards caps one bulk request; each card is cheap but the response
// payload grows linearly.
const maxBulkCards = 100

type CardService struct {
	logger *logrus.Logger
}

func NewCardService(logger *logrus.Logger) ports.CardService {
	return &CardService{logger: logger}
}

func (s *CardService) buildCard(seed int64, name string) *card.Card {
	generator := card.NewSeedGenerator(seed)
	return &card.Card{
		ID:        uuid.New(),
		Name:      name,
		Seed:      seed,
		Slots:     generator.Generate(),
		CreatedAt: time.Now(),
	}
}

// GenerateCard builds one card from an explicit seed.
func (s *CardService) GenerateCard(seed int64) *card.Card {
	return s.buildCard(seed, "")
}

// GenerateByName derives the seed from the card name, so the same name
// always produces the same layout.
func (s *CardService) GenerateByName(name string) *card.Card {
	seed := card.SeedFromString(name)
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"name": name, "seed": seed}).Debug("generating card by name")
	}
	return s.buildCard(seed, name)
}

// GenerateToday builds the shared daily card.
func (s *CardService) GenerateToday() *card.Card {
	now := time.Now()
	return s.buildCard(card.DateSeed(now), now.Format("2006-01-02"))
}

// GenerateBulk builds count cards seeded baseSeed+i. With a zero baseSeed
// the wall clock is used, so the batch is reproducible only when an explicit
// base seed is supplied.
func (s *CardService) GenerateBulk(ctx context.Context, count int, baseSeed int64) ([]*card.Card, error) {
	if count <= 0 {
		return nil, fmt.Errorf("card count must be positive, got %d", count)
	}
	if count > maxBulkCards {
		return nil, fmt.Errorf("card count %d exceeds maximum of %d", count, maxBulkCards)
	}
	if baseSeed == 0 {
		baseSeed = card.TimeSeed()
	}

	cards := make([]*card.Card, count)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cards[i] = s.buildCard(baseSeed+int64(i), "")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"count": count, "base_seed": baseSeed}).Info("bulk cards generated")
	}
	return cards, nil
}
