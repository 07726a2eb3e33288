package ports

import (
	"context"

	"github.com/pokebingo/pokebingo/internal/core/domain/card"
)

// CardService generates bingo cards from the various seed strategies.
// Generation is pure: the same seed always yields the same slot layout.
type CardService interface {
	// GenerateCard builds one card from an explicit seed.
	GenerateCard(seed int64) *card.Card
	// GenerateByName derives the seed from the card name.
	GenerateByName(name string) *card.Card
	// GenerateToday builds the shared daily card (same for everyone on the
	// same calendar day).
	GenerateToday() *card.Card
	// GenerateBulk builds count cards seeded baseSeed+i. A zero baseSeed
	// falls back to the wall clock, making the batch non-reproducible.
	GenerateBulk(ctx context.Context, count int, baseSeed int64) ([]*card.Card, error)
}
