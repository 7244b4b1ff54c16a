package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
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

type countingSweeper struct {
	calls   atomic.Int64
	removed int
}

func (c *countingSweeper) Sweep() int {
	c.calls.Add(1)
	return c.removed
}

func TestScheduler_TickSweeps(t *testing.T) {
	sweeper := &countingSweeper{removed: 2}
	s := New(sweeper, 30*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, sweeper.calls.Load(), int64(3))
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sweeper := &countingSweeper{}
	s := New(sweeper, time.Second, newTestLogger(t)) // interval longer than test

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
