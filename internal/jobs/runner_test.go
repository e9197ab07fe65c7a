package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gatherle/gatherle-backend/internal/logger"
)

func TestRunnerRunsEnqueuedTasks(t *testing.T) {
	r := NewRunner(logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	var ran atomic.Int32
	done := make(chan struct{})
	ok := r.Enqueue("test.task", func(ctx context.Context) {
		ran.Add(1)
		close(done)
	})
	if !ok {
		t.Fatalf("Enqueue returned false")
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("task never ran")
	}
	if got := ran.Load(); got != 1 {
		t.Fatalf("runs: want=1 got=%d", got)
	}
}

func TestRunnerRecoversFromPanics(t *testing.T) {
	r := NewRunner(logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	r.Enqueue("test.panics", func(ctx context.Context) {
		panic("boom")
	})

	// The pool must survive a panicking task and keep serving.
	done := make(chan struct{})
	r.Enqueue("test.after", func(ctx context.Context) {
		close(done)
	})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("worker pool did not survive the panic")
	}
}

func TestRunnerRejectsNilTasks(t *testing.T) {
	r := NewRunner(logger.NewNop())
	if r.Enqueue("test.nil", nil) {
		t.Fatalf("nil task should be rejected")
	}
}
