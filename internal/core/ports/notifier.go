package ports

import "context"

// Embed is one rich-content block in a notification message, shaped after
// the Discord webhook embed object.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}

// EventNotifier relays gameplay events to an external notification channel.
// Implementations should treat a missing/unconfigured channel as a no-op so
// the game keeps working without one.
type EventNotifier interface {
	Notify(ctx context.Context, embeds []Embed) error
}
