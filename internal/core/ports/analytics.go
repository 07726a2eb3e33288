package ports

import (
	"context"

	"github.com/pokebingo/pokebingo/internal/core/domain/event"
)

// AnalyticsService turns gameplay events into notification messages and
// dispatches them through the configured EventNotifier.
type AnalyticsService interface {
	TrackCardCreated(ctx context.Context, ev *event.CardCreated) error
	TrackCellMarked(ctx context.Context, ev *event.CellMarked) error
}
