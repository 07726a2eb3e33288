package card

// SeedGenerator is a linear congruential generator. The same seed always
// produces the same draw sequence, so card layouts are reproducible across
// processes. The seed is consumed destructively; never share a generator
// between cards.
type SeedGenerator struct {
	seed int64
}

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// NewSeedGenerator creates a generator starting from seed. Negative seeds
// are normalized so the modulus arithmetic stays in range.
func NewSeedGenerator(seed int64) *SeedGenerator {
	if seed < 0 {
		seed = -seed
	}
	return &SeedGenerator{seed: seed}
}

// random advances the state and returns a value in [0, 1).
func (g *SeedGenerator) random() float64 {
	g.seed = (g.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(g.seed) / lcgModulus
}

// RandomInt returns a value in [min, max], inclusive on both bounds.
func (g *SeedGenerator) RandomInt(min, max int) int {
	return int(g.random()*float64(max-min+1)) + min
}

// Shuffle returns a Fisher-Yates permutation of values driven by the
// generator's current state. The input slice is not mutated.
func (g *SeedGenerator) Shuffle(values []int) []int {
	shuffled := make([]int, len(values))
	copy(shuffled, values)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := g.RandomInt(0, i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Generate fills a 25-slot card. The center is the free sentinel, the four
// corners take unique energy numbers (1-8) and the remaining twenty slots
// take unique pokemon numbers (1-125). A single used-number set spans both
// pools: an energy number claimed by a corner is never handed out again,
// even though 1-8 is numerically valid for pokemon slots.
func (g *SeedGenerator) Generate() []int {
	slots := make([]int, GridSize)
	slots[FreeSlot] = FreeSentinel

	used := make(map[int]bool)

	for _, pos := range CornerSlots {
		n := g.RandomInt(EnergyMin, EnergyMax)
		for used[n] {
			n = g.RandomInt(EnergyMin, EnergyMax)
		}
		slots[pos] = n
		used[n] = true
	}

	for pos := 0; pos < GridSize; pos++ {
		if pos == FreeSlot || IsCorner(pos) {
			continue
		}
		n := g.RandomInt(PokemonMin, PokemonMax)
		for used[n] {
			n = g.RandomInt(PokemonMin, PokemonMax)
		}
		slots[pos] = n
		used[n] = true
	}

	return slots
}
