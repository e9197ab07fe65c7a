package services

import "context"

// TaskScheduler enqueues fire-and-forget background work. Satisfied by
// *jobs.Runner; tests substitute a synchronous fake.
type TaskScheduler interface {
  Enqueue(name string, run func(ctx context.Context)) bool
}
