package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_PurgesAndPrunes(t *testing.T) {
	purger := mocks.NewMockSessionPurger(t)
	pruner := mocks.NewMockCheckerPruner(t)
	log := newTestLogger(t)

	s := New(purger, pruner, 50*time.Millisecond, 30*time.Minute, log)

	purger.EXPECT().DeleteExpired(mock.Anything).Return(int64(2), nil)
	pruner.EXPECT().PruneIdle(30 * time.Minute).Return(1)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(purger.Calls), 1)
	assert.GreaterOrEqual(t, len(pruner.Calls), 1)
}

// A failed purge must not stop the pruning half of the tick.
func TestScheduler_Tick_PurgeErrorStillPrunes(t *testing.T) {
	purger := mocks.NewMockSessionPurger(t)
	pruner := mocks.NewMockCheckerPruner(t)
	log := newTestLogger(t)

	s := New(purger, pruner, 50*time.Millisecond, 30*time.Minute, log)

	purger.EXPECT().DeleteExpired(mock.Anything).Return(int64(0), errors.New("db error"))
	pruner.EXPECT().PruneIdle(30 * time.Minute).Return(0)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(pruner.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	purger := mocks.NewMockSessionPurger(t)
	pruner := mocks.NewMockCheckerPruner(t)
	log := newTestLogger(t)

	s := New(purger, pruner, time.Second, 30*time.Minute, log) // interval longer than test

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
	purger := mocks.NewMockSessionPurger(t)
	pruner := mocks.NewMockCheckerPruner(t)
	log := newTestLogger(t)

	s := New(purger, pruner, 30*time.Millisecond, 30*time.Minute, log)

	purger.EXPECT().DeleteExpired(mock.Anything).Return(int64(0), nil)
	pruner.EXPECT().PruneIdle(30 * time.Minute).Return(0)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(purger.Calls), 3)
}
