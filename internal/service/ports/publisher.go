package ports

import (
	"context"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

// CalendarPublisher pushes game-changed events to the shared events channel
// consumed by calendar subscribers. Delivery is fire-and-forget.
type CalendarPublisher interface {
	PublishGameEvent(ctx context.Context, event domain.GameEvent)
}
