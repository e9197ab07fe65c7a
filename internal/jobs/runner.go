package jobs

import (
	"context"
	"sync"

	"github.com/gatherle/gatherle-backend/internal/logger"
	"github.com/gatherle/gatherle-backend/internal/utils"
)

// Task is a unit of background work. Run receives the runner's lifecycle context;
// it has no way to report an error back to whoever enqueued it.
type Task struct {
	Name string
	Run  func(ctx context.Context)
}

// Runner is an in-process background task queue with a fixed worker pool.
// Fire-and-forget triggers (feed recomputes after follows and RSVPs) go through
// it so request handlers never wait on, or see failures from, a recompute.
type Runner struct {
	log   *logger.Logger
	queue chan Task

	mu      sync.Mutex
	started bool
}

func NewRunner(baseLog *logger.Logger) *Runner {
	queueSize := utils.GetEnvAsInt("WORKER_QUEUE_SIZE", 256, baseLog)
	if queueSize < 1 {
		queueSize = 1
	}
	return &Runner{
		log:   baseLog.With("component", "JobRunner"),
		queue: make(chan Task, queueSize),
	}
}

func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return
	}
	r.started = true
	r.mu.Unlock()

	concurrency := utils.GetEnvAsInt("WORKER_CONCURRENCY", 4, r.log)
	if concurrency < 1 {
		concurrency = 1
	}
	r.log.Info("Starting job runner pool", "concurrency", concurrency)

	for i := 0; i < concurrency; i++ {
		workerID := i + 1
		go r.runLoop(ctx, workerID)
	}
}

// Enqueue schedules a task without blocking. Returns false when the queue is
// full or the task is nil; the caller is not expected to care either way.
func (r *Runner) Enqueue(name string, run func(ctx context.Context)) bool {
	if run == nil {
		return false
	}
	select {
	case r.queue <- Task{Name: name, Run: run}:
		return true
	default:
		r.log.Warn("Job queue full, dropping task", "task", name)
		return false
	}
}

func (r *Runner) runLoop(ctx context.Context, workerID int) {
	for {
		select {
		case <-ctx.Done():
			r.log.Info("Worker loop stopped", "worker_id", workerID)
			return
		case task := <-r.queue:
			r.runOne(ctx, workerID, task)
		}
	}
}

func (r *Runner) runOne(ctx context.Context, workerID int, task Task) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("Background task panic",
				"worker_id", workerID,
				"task", task.Name,
				"panic", rec,
			)
		}
	}()
	task.Run(ctx)
}
