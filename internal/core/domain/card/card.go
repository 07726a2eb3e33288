package card

import (
	"time"

	"github.com/google/uuid"
)

const (
	// GridSize is the total number of slots on a 5x5 card.
	GridSize = 25
	// FreeSlot is the center position, always the free sentinel.
	FreeSlot = 12
	// FreeSentinel marks the free center slot in the slot sequence.
	FreeSentinel = 0

	EnergyMin  = 1
	EnergyMax  = 8
	PokemonMin = 1
	PokemonMax = 125
)

// CornerSlots hold energy numbers, visited in this order during generation.
var CornerSlots = [4]int{0, 4, 20, 24}

// Card is one generated bingo card. Slots is row-major 5x5; the value
// FreeSentinel appears only at FreeSlot. Cards are owned by the caller once
// generated; the server never persists them.
type Card struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name,omitempty"`
	Seed      int64     `json:"seed"`
	Slots     []int     `json:"slots"`
	CreatedAt time.Time `json:"created_at"`
}

// IsCorner reports whether pos is one of the four energy corner slots.
func IsCorner(pos int) bool {
	for _, c := range CornerSlots {
		if pos == c {
			return true
		}
	}
	return false
}

// IsEnergy reports whether a slot value falls in the energy range.
func IsEnergy(value int) bool {
	return value >= EnergyMin && value <= EnergyMax
}
