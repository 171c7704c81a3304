package ports

import (
	"context"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type GameNotifier interface {
	NotifyInvitation(ctx context.Context, user *domain.User, game *domain.Game)
	NotifyTravelAlert(ctx context.Context, user *domain.User, game *domain.Game, travelMin, availableMin float64)
	NotifyCancelled(ctx context.Context, user *domain.User, game *domain.Game)
}
