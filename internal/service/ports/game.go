package ports

import (
	"context"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type GameRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Game, error)
	// ListForUserOn returns the games the user creates or participates in on
	// one calendar day, ordered ascending by start time.
	ListForUserOn(ctx context.Context, userID string, day time.Time) ([]*domain.Game, error)
	ListByVenueFrom(ctx context.Context, venueID string, from time.Time) ([]*domain.Game, error)
	Participants(ctx context.Context, gameID string) ([]*domain.Participant, error)

	// Mutations commit the game rows, participant rows (verdicts embedded)
	// and any neighbor verdict updates in a single transaction.
	Create(ctx context.Context, game *domain.Game, parts []*domain.Participant, neighbors []domain.VerdictUpdate) error
	CreateSeries(ctx context.Context, series *domain.Series, games []*domain.Game, parts [][]*domain.Participant, neighbors []domain.VerdictUpdate) error
	Update(ctx context.Context, game *domain.Game, upsert []*domain.Participant, removedUserIDs []string, neighbors []domain.VerdictUpdate) error
	// Delete removes the listed games, drops the series when it is emptied,
	// and applies the neighbor updates, all in one transaction.
	Delete(ctx context.Context, gameIDs []string, seriesID *string, neighbors []domain.VerdictUpdate) error

	// ListSeriesGamesFrom returns the series occurrences starting at or
	// after from, ordered ascending by start time.
	ListSeriesGamesFrom(ctx context.Context, seriesID string, from time.Time) ([]*domain.Game, error)

	SaveVerdicts(ctx context.Context, updates []domain.VerdictUpdate) error
	// ListPendingTravelChecks returns participant rows whose travel check
	// was skipped by an estimator outage, for games starting at or after
	// from.
	ListPendingTravelChecks(ctx context.Context, from time.Time, limit int) ([]*domain.PendingCheck, error)
}
