package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/CourtBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_RefreshesPending(t *testing.T) {
	refresher := mocks.NewMockVerdictRefresher(t)
	log := newTestLogger(t)

	s := New(refresher, 50*time.Millisecond, log)

	refresher.EXPECT().RefreshPendingVerdicts(mock.Anything).Return(2, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(refresher.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	refresher := mocks.NewMockVerdictRefresher(t)
	log := newTestLogger(t)

	s := New(refresher, 50*time.Millisecond, log)

	refresher.EXPECT().RefreshPendingVerdicts(mock.Anything).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(refresher.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	refresher := mocks.NewMockVerdictRefresher(t)
	log := newTestLogger(t)

	s := New(refresher, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	refresher := mocks.NewMockVerdictRefresher(t)
	log := newTestLogger(t)

	s := New(refresher, 30*time.Millisecond, log)

	refresher.EXPECT().RefreshPendingVerdicts(mock.Anything).Return(0, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(refresher.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
