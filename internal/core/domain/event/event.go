package event

// CardCreated is reported when a player generates a new card.
type CardCreated struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
}

// CellMarked is reported when a player marks or unmarks a card slot.
// LastMarkedPosition is nil when the client reports the card state without
// a specific action.
type CellMarked struct {
	Type               string `json:"type"`
	CardID             string `json:"cardId"`
	CardName           string `json:"cardName"`
	Slots              []int  `json:"slots"`
	MarkedPositions    []int  `json:"markedPositions"`
	LastMarkedPosition *int   `json:"lastMarkedPosition"`
	Timestamp          string `json:"timestamp"`
}
