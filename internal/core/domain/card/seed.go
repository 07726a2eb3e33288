package card

import (
	"fmt"
	"time"
)

// SeedFromString derives a seed from an arbitrary string with a rolling
// 32-bit hash (hash*31 + char, with wraparound). Collisions are possible and
// acceptable: seeding is cosmetic, not cryptographic.
func SeedFromString(s string) int64 {
	var hash int32
	for _, r := range s {
		hash = hash*31 + int32(r)
	}
	seed := int64(hash)
	if seed < 0 {
		seed = -seed
	}
	return seed
}

// TimeSeed returns a fresh wall-clock seed (epoch milliseconds).
func TimeSeed() int64 {
	return time.Now().UnixMilli()
}

// DateSeed returns the same seed for every call within one calendar day,
// so everyone shares a single "daily card". The date string is built
// without zero padding ("2026-8-29").
func DateSeed(now time.Time) int64 {
	return SeedFromString(fmt.Sprintf("%d-%d-%d", now.Year(), int(now.Month()), now.Day()))
}
