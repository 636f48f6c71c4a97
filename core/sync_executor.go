package core

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/xh3b4sd/tracer"
)

// SyncExecutor runs every submitted task inline, on the caller's
// goroutine, before Submit returns. It is the deterministic stand-in
// for PooledExecutor in tests: because a task's side effects are
// visible the moment Submit returns, tests never need sleeps or
// polling to observe completion.
//
// There is no queue and no worker. Shutdown therefore collapses
// ShuttingDown into Terminated in a single step, nothing can be
// outstanding when it is called.
//
// A task panic is NOT recovered; it propagates to the caller of
// Submit. That mirrors how a pooled executor's PanicHandler would see
// the failure, except the submitter is the one observing it.
type SyncExecutor struct {
	state        atomic.Int32
	shutdownChan chan struct{}
	shutdownOnce sync.Once

	name string
	mu   sync.Mutex
}

// NewSyncExecutor creates a SyncExecutor in state Running.
func NewSyncExecutor() *SyncExecutor {
	e := &SyncExecutor{
		shutdownChan: make(chan struct{}),
		name:         "sync",
	}
	e.state.Store(int32(StateRunning))
	return e
}

var _ Executor = (*SyncExecutor)(nil)

// Name returns the executor's name.
func (e *SyncExecutor) Name() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.name
}

// SetName sets the executor's name.
func (e *SyncExecutor) SetName(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.name = name
}

// Submit runs task to completion on the calling goroutine, then
// returns. After Shutdown it returns RejectedExecution and the task
// does not run.
func (e *SyncExecutor) Submit(task Task) error {
	if e.IsShutdown() {
		return tracer.Mask(RejectedExecution)
	}

	ctx := context.WithValue(context.Background(), executorKey, Executor(e))
	task(ctx)
	return nil
}

// Shutdown transitions straight to Terminated. Idempotent.
func (e *SyncExecutor) Shutdown() {
	e.shutdownOnce.Do(func() {
		e.state.Store(int32(StateTerminated))
		close(e.shutdownChan)
	})
}

// IsShutdown reports whether Shutdown has been called.
func (e *SyncExecutor) IsShutdown() bool {
	return ExecutorState(e.state.Load()) != StateRunning
}

// IsTerminated reports whether Shutdown has been called. For this
// executor the two queries coincide: there is never outstanding work,
// so shutdown completes the instant it is requested.
func (e *SyncExecutor) IsTerminated() bool {
	return ExecutorState(e.state.Load()) == StateTerminated
}

// AwaitTermination returns true immediately once Shutdown has been
// called; otherwise it blocks until Shutdown or the timeout, reporting
// expiry as false.
func (e *SyncExecutor) AwaitTermination(timeout time.Duration) bool {
	select {
	case <-e.shutdownChan:
		return true
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-e.shutdownChan:
		return true
	case <-timer.C:
		return false
	}
}

// State returns the current lifecycle state.
func (e *SyncExecutor) State() ExecutorState {
	return ExecutorState(e.state.Load())
}

// Stats returns a point-in-time snapshot. Queued and Active are always
// zero: anything submitted has already finished.
func (e *SyncExecutor) Stats() ExecutorStats {
	return ExecutorStats{
		Name:  e.Name(),
		State: e.State(),
	}
}
