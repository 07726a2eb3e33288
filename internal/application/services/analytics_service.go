package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pokebingo/pokebingo/internal/core/domain/card"
	"github.com/pokebingo/pokebingo/internal/core/domain/event"
	"github.com/pokebingo/pokebingo/internal/core/ports"
	"github.com/sirupsen/logrus"
)

const (
	colorBlue  = 0x1E90FF
	colorGreen = 0x00FF00
)

// AnalyticsService formats gameplay events into notification embeds and
// dispatches them through the injected notifier.
type AnalyticsService struct {
	notifier ports.EventNotifier
	logger   *logrus.Logger
}

func NewAnalyticsService(notifier ports.EventNotifier, logger *logrus.Logger) ports.AnalyticsService {
	return &AnalyticsService{
		notifier: notifier,
		logger:   logger,
	}
}

func (s *AnalyticsService) TrackCardCreated(ctx context.Context, ev *event.CardCreated) error {
	embed := ports.Embed{
		Title:       "\U0001f3ae New Card Created",
		Description: "A new card was generated in Bingo Pokemon!",
		Fields: []ports.EmbedField{
			{Name: "Card Name", Value: ev.Name, Inline: true},
			{Name: "ID", Value: ev.ID, Inline: true},
			{Name: "Time", Value: ev.Timestamp, Inline: true},
		},
		Color:     colorBlue,
		Timestamp: ev.Timestamp,
	}

	if err := s.notifier.Notify(ctx, []ports.Embed{embed}); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"card_id": ev.ID}).WithError(err).Error("failed to relay card-created event")
		}
		return err
	}
	return nil
}

func (s *AnalyticsService) TrackCellMarked(ctx context.Context, ev *event.CellMarked) error {
	lastAction := "Current card state"
	if ev.LastMarkedPosition != nil {
		pos := *ev.LastMarkedPosition
		action := "Unmarked"
		for _, p := range ev.MarkedPositions {
			if p == pos {
				action = "Marked"
				break
			}
		}
		description := ""
		if pos >= 0 && pos < len(ev.Slots) {
			description = fmt.Sprintf(" (%s)", slotDescription(ev.Slots[pos]))
		}
		lastAction = fmt.Sprintf("Last action: %s position %d%s", action, pos+1, description)
	}

	markedCount := len(ev.MarkedPositions)
	color := colorBlue
	if markedCount > 12 {
		color = colorGreen
	}

	footer := "Bingo Pokemon"
	if card.HasBingo(ev.MarkedPositions) {
		footer += " | \U0001f389 BINGO!"
	}

	embed := ports.Embed{
		Title:       "\U0001f4cb Card Updated",
		Description: fmt.Sprintf("**%s** - %s", ev.CardName, lastAction),
		Fields: []ports.EmbedField{
			{Name: "Full Card", Value: formatGrid(ev.Slots, ev.MarkedPositions)},
			{Name: "Stats", Value: fmt.Sprintf("\U0001f3af Marked: %d/25\n\U0001f4ca Progress: %d%%", markedCount, markedCount*100/card.GridSize), Inline: true},
			{Name: "Details", Value: fmt.Sprintf("\U0001f194 ID: %s\n⏰ %s", ev.CardID, ev.Timestamp), Inline: true},
		},
		Color:     color,
		Timestamp: ev.Timestamp,
		Footer:    &ports.EmbedFooter{Text: footer},
	}

	if err := s.notifier.Notify(ctx, []ports.Embed{embed}); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"card_id": ev.CardID}).WithError(err).Error("failed to relay cell-marked event")
		}
		return err
	}
	return nil
}

const (
	emojiMarked   = "✅"
	emojiUnmarked = "⬜"
	emojiFree     = "\U0001f193"
)

// formatGrid renders the card as a monospace 5x5 grid followed by an emoji
// view of the marked state.
func formatGrid(slots []int, markedPositions []int) string {
	marked := make(map[int]bool, len(markedPositions))
	for _, pos := range markedPositions {
		marked[pos] = true
	}

	var b strings.Builder
	b.WriteString("```\n")
	b.WriteString("  B     I     N     G     O\n")
	b.WriteString("-----------------------------\n")
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			index := row*5 + col
			if index == card.FreeSlot {
				b.WriteString("FREE  ")
				continue
			}
			value := 0
			if index < len(slots) {
				value = slots[index]
			}
			status := " "
			if marked[index] {
				status = "*"
			}
			fmt.Fprintf(&b, "%-4d%s ", value, status)
		}
		b.WriteString("\n")
	}
	b.WriteString("```\n\n")

	b.WriteString("**Marked state:**\n")
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			index := row*5 + col
			switch {
			case index == card.FreeSlot:
				b.WriteString(emojiFree)
			case marked[index]:
				b.WriteString(emojiMarked)
			default:
				b.WriteString(emojiUnmarked)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// slotDescription names a slot value using the energy/pokemon split.
func slotDescription(value int) string {
	if value == card.FreeSentinel {
		return "FREE"
	}
	if card.IsEnergy(value) {
		return fmt.Sprintf("Energy %d", value)
	}
	return fmt.Sprintf("Pokemon %d", value)
}
