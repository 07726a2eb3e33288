package domain_test

import (
	"testing"
	"time"

	"github.com/pokebingo/pokebingo/internal/core/domain/card"
	"github.com/stretchr/testify/require"
)

func TestGenerate_CardShape(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, 12345, 233279, 1700000000000} {
		slots := card.NewSeedGenerator(seed).Generate()

		require.Len(t, slots, card.GridSize)
		require.Equal(t, card.FreeSentinel, slots[card.FreeSlot])

		seen := make(map[int]bool)
		for pos, value := range slots {
			if pos == card.FreeSlot {
				continue
			}
			if card.IsCorner(pos) {
				require.GreaterOrEqual(t, value, card.EnergyMin, "seed %d corner %d", seed, pos)
				require.LessOrEqual(t, value, card.EnergyMax, "seed %d corner %d", seed, pos)
			} else {
				require.GreaterOrEqual(t, value, card.PokemonMin, "seed %d slot %d", seed, pos)
				require.LessOrEqual(t, value, card.PokemonMax, "seed %d slot %d", seed, pos)
			}
			require.False(t, seen[value], "seed %d: duplicate value %d at slot %d", seed, value, pos)
			seen[value] = true
		}
		require.Len(t, seen, 24)
	}
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	first := card.NewSeedGenerator(9876).Generate()
	second := card.NewSeedGenerator(9876).Generate()
	require.Equal(t, first, second)

	other := card.NewSeedGenerator(9877).Generate()
	require.NotEqual(t, first, other)
}

func TestRandomInt_InclusiveBounds(t *testing.T) {
	gen := card.NewSeedGenerator(7)
	for i := 0; i < 1000; i++ {
		v := gen.RandomInt(1, 8)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 8)
	}

	gen = card.NewSeedGenerator(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, 3, gen.RandomInt(3, 3))
	}
}

func TestShuffle_PermutesWithoutMutating(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	original := append([]int(nil), input...)

	shuffled := card.NewSeedGenerator(123).Shuffle(input)

	require.Equal(t, original, input, "input must not be mutated")
	require.ElementsMatch(t, original, shuffled)

	again := card.NewSeedGenerator(123).Shuffle(input)
	require.Equal(t, shuffled, again, "shuffle must be deterministic for a seed")
}

func TestSeedFromString(t *testing.T) {
	require.Equal(t, card.SeedFromString("Pikachu"), card.SeedFromString("Pikachu"))
	require.NotEqual(t, card.SeedFromString("Pikachu"), card.SeedFromString("Charmander"))
	require.GreaterOrEqual(t, card.SeedFromString("some very long card name that wraps the hash"), int64(0))
	require.Equal(t, int64(0), card.SeedFromString(""))
}

func TestDateSeed_SameDaySameSeed(t *testing.T) {
	morning := time.Date(2025, time.August, 9, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.August, 9, 22, 30, 0, 0, time.UTC)
	nextDay := time.Date(2025, time.August, 10, 8, 0, 0, 0, time.UTC)

	require.Equal(t, card.DateSeed(morning), card.DateSeed(evening))
	require.NotEqual(t, card.DateSeed(morning), card.DateSeed(nextDay))
}

func TestHasBingo(t *testing.T) {
	// Top row
	require.True(t, card.HasBingo([]int{0, 1, 2, 3, 4}))
	// Column through the free center
	require.True(t, card.HasBingo([]int{2, 7, 17, 22}))
	// Diagonal through the free center
	require.True(t, card.HasBingo([]int{0, 6, 18, 24}))
	// Four marks, no line
	require.False(t, card.HasBingo([]int{0, 1, 2, 3}))
	// Nothing marked: the free center alone is not a bingo
	require.False(t, card.HasBingo(nil))
}
