package conflict

import (
	"context"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TravelEstimator supplies a best-effort driving-time estimate in minutes.
// ok=false means no estimate could be obtained; that is an expected outcome,
// not an error.
type TravelEstimator interface {
	Estimate(ctx context.Context, origin, dest domain.Coordinates) (float64, bool)
}

// Evaluator decides whether a participant can travel between two adjacent
// games in the gap between them. Every adjacency check in the system funnels
// through Evaluate.
type Evaluator struct {
	estimator TravelEstimator
	logger    logger.Logger
}

func NewEvaluator(estimator TravelEstimator, logger logger.Logger) *Evaluator {
	return &Evaluator{
		estimator: estimator,
		logger:    logger,
	}
}

// Evaluate checks the pair (earlier game ending at endOfEarlier, later game
// starting at startOfLater) held at the two given venues.
//
//   - Same venue: no travel needed, neutral verdict, no estimator call.
//   - Either venue not geocoded: check skipped, neutral verdict.
//   - No estimate available: no alert can be asserted; the verdict keeps the
//     gap and is marked pending so the scheduler can retry later.
//   - Otherwise alert iff travel time exceeds the gap. The gap is not
//     clamped; a negative gap propagates as-is.
func (e *Evaluator) Evaluate(ctx context.Context, endOfEarlier, startOfLater time.Time, earlier, later *domain.Venue) domain.ConflictVerdict {
	if earlier == nil || later == nil || earlier.ID == later.ID {
		return domain.ConflictVerdict{}
	}

	origin, originOK := earlier.Coordinates()
	dest, destOK := later.Coordinates()
	if !originOK || !destOK {
		e.logger.Debug("travel check skipped, venue not geocoded",
			logger.String("earlier_venue", earlier.ID),
			logger.String("later_venue", later.ID),
		)
		return domain.ConflictVerdict{}
	}

	timeAvailable := startOfLater.Sub(endOfEarlier).Minutes()

	travelTime, ok := e.estimator.Estimate(ctx, origin, dest)
	if !ok {
		// Availability over correctness: the booking proceeds, but the
		// skipped check stays visible as a pending verdict.
		e.logger.Warn("travel estimate unavailable, conflict check degraded",
			logger.String("earlier_venue", earlier.ID),
			logger.String("later_venue", later.ID),
		)
		return domain.ConflictVerdict{
			TimeAvailableMin: &timeAvailable,
			Pending:          true,
		}
	}

	return domain.ConflictVerdict{
		Alert:            travelTime > timeAvailable,
		TravelTimeMin:    &travelTime,
		TimeAvailableMin: &timeAvailable,
	}
}
