package conflict

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type stubEstimator struct {
	minutes float64
	ok      bool
	calls   int
}

func (s *stubEstimator) Estimate(ctx context.Context, origin, dest domain.Coordinates) (float64, bool) {
	s.calls++
	return s.minutes, s.ok
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func coord(lat, lon float64) (*float64, *float64) {
	return &lat, &lon
}

func venueAt(id string, lat, lon float64) *domain.Venue {
	latP, lonP := coord(lat, lon)
	return &domain.Venue{ID: id, Latitude: latP, Longitude: lonP}
}

func TestEvaluate_SameVenueShortCircuit(t *testing.T) {
	est := &stubEstimator{minutes: 999, ok: true}
	e := NewEvaluator(est, newTestLogger(t))

	v := venueAt("v1", 52.23, 21.01)
	end := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	// Mis-ordered timestamps do not matter for the same venue.
	start := end.Add(-30 * time.Minute)

	verdict := e.Evaluate(context.Background(), end, start, v, v)

	assert.False(t, verdict.Alert)
	assert.Nil(t, verdict.TravelTimeMin)
	assert.Nil(t, verdict.TimeAvailableMin)
	assert.False(t, verdict.Pending)
	assert.Zero(t, est.calls)
}

func TestEvaluate_AlertWhenTravelExceedsGap(t *testing.T) {
	est := &stubEstimator{minutes: 20, ok: true}
	e := NewEvaluator(est, newTestLogger(t))

	end := time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC)
	start := end.Add(10 * time.Minute)

	verdict := e.Evaluate(context.Background(), end, start, venueAt("v1", 52.23, 21.01), venueAt("v2", 51.50, -0.12))

	assert.True(t, verdict.Alert)
	require.NotNil(t, verdict.TravelTimeMin)
	assert.Equal(t, 20.0, *verdict.TravelTimeMin)
	require.NotNil(t, verdict.TimeAvailableMin)
	assert.Equal(t, 10.0, *verdict.TimeAvailableMin)
}

func TestEvaluate_NoAlertWhenGapSufficient(t *testing.T) {
	est := &stubEstimator{minutes: 15, ok: true}
	e := NewEvaluator(est, newTestLogger(t))

	end := time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC)
	start := end.Add(30 * time.Minute)

	verdict := e.Evaluate(context.Background(), end, start, venueAt("v1", 52.23, 21.01), venueAt("v2", 51.50, -0.12))

	assert.False(t, verdict.Alert)
	assert.Equal(t, 15.0, *verdict.TravelTimeMin)
	assert.Equal(t, 30.0, *verdict.TimeAvailableMin)
}

// Alert is monotonic in the gap once travel time is fixed: growing the gap
// never turns a feasible pair infeasible.
func TestEvaluate_AlertMonotonicInGap(t *testing.T) {
	est := &stubEstimator{minutes: 25, ok: true}
	e := NewEvaluator(est, newTestLogger(t))

	end := time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC)
	v1 := venueAt("v1", 52.23, 21.01)
	v2 := venueAt("v2", 51.50, -0.12)

	prevAlert := true
	for gap := 0; gap <= 60; gap += 5 {
		verdict := e.Evaluate(context.Background(), end, end.Add(time.Duration(gap)*time.Minute), v1, v2)
		if !prevAlert {
			assert.False(t, verdict.Alert, "alert flipped back on at gap %d", gap)
		}
		prevAlert = verdict.Alert
	}
	assert.False(t, prevAlert)
}

func TestEvaluate_NegativeGapPropagated(t *testing.T) {
	est := &stubEstimator{minutes: 5, ok: true}
	e := NewEvaluator(est, newTestLogger(t))

	end := time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC)
	start := end.Add(-20 * time.Minute)

	verdict := e.Evaluate(context.Background(), end, start, venueAt("v1", 52.23, 21.01), venueAt("v2", 51.50, -0.12))

	assert.True(t, verdict.Alert)
	assert.Equal(t, -20.0, *verdict.TimeAvailableMin)
}

func TestEvaluate_NoEstimateMarksPending(t *testing.T) {
	est := &stubEstimator{ok: false}
	e := NewEvaluator(est, newTestLogger(t))

	end := time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC)
	start := end.Add(10 * time.Minute)

	verdict := e.Evaluate(context.Background(), end, start, venueAt("v1", 52.23, 21.01), venueAt("v2", 51.50, -0.12))

	assert.False(t, verdict.Alert)
	assert.Nil(t, verdict.TravelTimeMin)
	require.NotNil(t, verdict.TimeAvailableMin)
	assert.Equal(t, 10.0, *verdict.TimeAvailableMin)
	assert.True(t, verdict.Pending)
}

func TestEvaluate_MissingCoordinatesSkipsCheck(t *testing.T) {
	est := &stubEstimator{minutes: 20, ok: true}
	e := NewEvaluator(est, newTestLogger(t))

	end := time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC)
	start := end.Add(10 * time.Minute)
	ungeocode := &domain.Venue{ID: "v2"}

	verdict := e.Evaluate(context.Background(), end, start, venueAt("v1", 52.23, 21.01), ungeocode)

	assert.False(t, verdict.Alert)
	assert.Nil(t, verdict.TravelTimeMin)
	assert.False(t, verdict.Pending)
	assert.Zero(t, est.calls)
}
