package image

import (
	"fmt"
	"regexp"
	"time"
)

// CachedImage is one fetched card artwork. Entries are immutable after
// creation; a re-fetch replaces the entry wholesale.
type CachedImage struct {
	Payload     []byte
	ContentType string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Expired reports whether the entry is stale at the given instant.
func (ci *CachedImage) Expired(now time.Time) bool {
	return now.After(ci.ExpiresAt)
}

// CacheStats is a read-only diagnostic snapshot of the image cache.
type CacheStats struct {
	TotalEntries   int     `json:"totalEntries"`
	ExpiredEntries int     `json:"expiredEntries"`
	TotalSizeBytes int     `json:"totalSizeBytes"`
	TotalSizeMB    string  `json:"totalSizeMB"`
	MaxEntries     int     `json:"maxSize"`
	TTLHours       float64 `json:"ttlHours"`
}

// CacheStatus discloses how a proxied image was resolved.
type CacheStatus string

const (
	StatusHit      CacheStatus = "HIT"
	StatusMiss     CacheStatus = "MISS"
	StatusFallback CacheStatus = "FALLBACK"
)

// StatsCode is the reserved code value that returns cache diagnostics
// instead of an image.
const StatsCode = "stats"

// codePattern matches card codes like "BLK-67": three uppercase letters,
// a hyphen, then digits.
var codePattern = regexp.MustCompile(`^([A-Z]{3})-(\d+)$`)

// ValidCode reports whether code matches the card code format.
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// ParseCode splits a card code into its set prefix and zero-padded number
// ("BLK-67" -> "BLK", "067").
func ParseCode(code string) (set, number string, err error) {
	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return "", "", fmt.Errorf("invalid card code format: %q", code)
	}
	number = m[2]
	for len(number) < 3 {
		number = "0" + number
	}
	return m[1], number, nil
}
