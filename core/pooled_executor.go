package core

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/xh3b4sd/tracer"
)

// PooledExecutor runs tasks on a fixed set of worker goroutines behind
// the same Executor interface as SyncExecutor. Submit returns before
// the task executes; tasks are dispatched to workers in FIFO order.
//
// Shutdown is graceful: intake closes immediately, tasks already in
// the queue drain, then the workers exit and the executor becomes
// Terminated. Use AwaitTermination to bound how long to wait for the
// drain. There is no cancellation of an individual in-flight task.
type PooledExecutor struct {
	name    string
	workers int

	queue  *taskQueue
	signal chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	state        atomic.Int32
	shutdownChan chan struct{} // closed when shutdown is requested
	doneChan     chan struct{} // closed when all workers have exited
	shutdownOnce sync.Once

	active   atomic.Int32
	rejected atomic.Int64

	panicHandler        PanicHandler
	metrics             Metrics
	rejectedTaskHandler RejectedTaskHandler
	logger              Logger
}

// NewPooledExecutor creates a PooledExecutor with default collaborators
// and starts its workers immediately. The executor is born Running.
func NewPooledExecutor(name string, workers int) *PooledExecutor {
	return NewPooledExecutorWithConfig(name, workers, DefaultConfig())
}

// NewPooledExecutorWithConfig creates a PooledExecutor with the given
// config. Nil config fields fall back to defaults.
func NewPooledExecutorWithConfig(name string, workers int, config *Config) *PooledExecutor {
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &PooledExecutor{
		name:         name,
		workers:      workers,
		queue:        newTaskQueue(),
		signal:       make(chan struct{}, workers*2),
		ctx:          ctx,
		cancel:       cancel,
		shutdownChan: make(chan struct{}),
		doneChan:     make(chan struct{}),
	}
	e.state.Store(int32(StateRunning))

	if config != nil {
		e.panicHandler = config.PanicHandler
		e.metrics = config.Metrics
		e.rejectedTaskHandler = config.RejectedTaskHandler
		e.logger = config.Logger
	}
	if e.panicHandler == nil {
		e.panicHandler = &DefaultPanicHandler{}
	}
	if e.metrics == nil {
		e.metrics = &NilMetrics{}
	}
	if e.rejectedTaskHandler == nil {
		e.rejectedTaskHandler = &DefaultRejectedTaskHandler{}
	}
	if e.logger == nil {
		e.logger = NewDefaultLogger()
	}

	for i := 0; i < workers; i++ {
		e.wg.Add(1)
		go e.workerLoop(i)
	}

	return e
}

var _ Executor = (*PooledExecutor)(nil)

// Name returns the executor's name.
func (e *PooledExecutor) Name() string {
	return e.name
}

// WorkerCount returns the number of workers.
func (e *PooledExecutor) WorkerCount() int {
	return e.workers
}

// Submit queues task for asynchronous execution and returns before it
// runs. After Shutdown it returns RejectedExecution and the task never
// executes.
func (e *PooledExecutor) Submit(task Task) error {
	if e.IsShutdown() {
		e.rejected.Add(1)
		e.rejectedTaskHandler.HandleRejectedTask(e.name, "shutdown")
		e.metrics.RecordTaskRejected(e.name, "shutdown")
		return tracer.Mask(RejectedExecution)
	}

	e.queue.Push(task)
	e.metrics.RecordQueueDepth(e.name, e.queue.Len())

	select {
	case e.signal <- struct{}{}:
	default:
		// Signal channel full; a worker is already awake and will
		// find the queued task.
	}
	return nil
}

// Shutdown closes intake and begins the drain. It returns without
// waiting; pair it with AwaitTermination to observe completion.
// Idempotent.
func (e *PooledExecutor) Shutdown() {
	e.shutdownOnce.Do(func() {
		e.state.Store(int32(StateShuttingDown))
		e.logger.Info("executor shutting down", F("executor", e.name), F("queued", e.queue.Len()))
		close(e.shutdownChan)

		go func() {
			e.wg.Wait()
			e.state.Store(int32(StateTerminated))
			// Drop anything a racing Submit slipped past the state
			// check, and release its closure state.
			e.queue.Clear()
			e.cancel()
			close(e.doneChan)
			e.logger.Info("executor terminated", F("executor", e.name))
		}()
	})
}

// IsShutdown reports whether Shutdown has been requested.
func (e *PooledExecutor) IsShutdown() bool {
	return ExecutorState(e.state.Load()) != StateRunning
}

// IsTerminated reports whether the drain finished and all workers
// exited.
func (e *PooledExecutor) IsTerminated() bool {
	return ExecutorState(e.state.Load()) == StateTerminated
}

// AwaitTermination blocks until the executor is terminated or the
// timeout expires, reporting expiry as false. Calling it before
// Shutdown simply waits out the timeout.
func (e *PooledExecutor) AwaitTermination(timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-e.doneChan:
		return true
	case <-timer.C:
		return false
	}
}

// State returns the current lifecycle state.
func (e *PooledExecutor) State() ExecutorState {
	return ExecutorState(e.state.Load())
}

// Flush blocks until every task submitted before the call has finished
// executing. It works by submitting a barrier task and waiting for it:
// FIFO dispatch guarantees the barrier runs after everything queued
// ahead of it.
//
// With more than one worker the barrier may start while an earlier
// long-running task is still on another worker; Flush waits for queue
// order, not for worker idleness.
//
// Tasks submitted after Flush is called are not waited for.
func (e *PooledExecutor) Flush(ctx context.Context) error {
	done := make(chan struct{})

	err := e.Submit(func(taskCtx context.Context) {
		close(done)
	})
	if err != nil {
		return tracer.Mask(err)
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return tracer.Mask(FlushInterrupted)
	}
}

// Stats returns a point-in-time snapshot of the executor.
func (e *PooledExecutor) Stats() ExecutorStats {
	return ExecutorStats{
		Name:     e.name,
		State:    e.State(),
		Workers:  e.workers,
		Queued:   e.queue.Len(),
		Active:   int(e.active.Load()),
		Rejected: e.rejected.Load(),
	}
}

// workerLoop pulls tasks until shutdown has been requested and the
// queue is drained.
func (e *PooledExecutor) workerLoop(id int) {
	defer e.wg.Done()

	runCtx := context.WithValue(e.ctx, executorKey, Executor(e))

	for {
		task, ok := e.getWork()
		if !ok {
			return
		}
		e.runTask(runCtx, id, task)
	}
}

// getWork pops the next task, sleeping on the signal channel while the
// queue is empty. After shutdown it keeps popping until the queue is
// drained, then reports false.
func (e *PooledExecutor) getWork() (Task, bool) {
	for {
		if task, ok := e.queue.Pop(); ok {
			return task, true
		}

		select {
		case <-e.signal:
		case <-e.shutdownChan:
			if task, ok := e.queue.Pop(); ok {
				return task, true
			}
			return nil, false
		}
	}
}

func (e *PooledExecutor) runTask(ctx context.Context, workerID int, task Task) {
	e.active.Add(1)
	start := time.Now()

	func() {
		defer func() {
			e.active.Add(-1)
			if r := recover(); r != nil {
				e.metrics.RecordTaskPanic(e.name, r)
				e.panicHandler.HandlePanic(ctx, e.name, workerID, r, debug.Stack())
			}
		}()
		task(ctx)
	}()

	e.metrics.RecordTaskDuration(e.name, time.Since(start))
}
