package core

import "time"

// ExecutorState is the lifecycle state of an Executor.
//
// State only ever moves forward: Running -> ShuttingDown -> Terminated.
// Once Terminated an executor never returns to Running.
type ExecutorState int32

const (
	// StateRunning: the executor accepts and runs tasks.
	StateRunning ExecutorState = iota

	// StateShuttingDown: shutdown has been requested but queued or
	// in-flight tasks are still draining. The synchronous executor
	// never rests in this state because it has no queue to drain.
	StateShuttingDown

	// StateTerminated: shutdown is complete and no task is running.
	StateTerminated
)

func (s ExecutorState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting_down"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// =============================================================================
// Executor: Define task submission interface
// =============================================================================

// Executor decouples requesting work from how and when the work runs.
//
// Components that need asynchronous execution accept an Executor as a
// constructor parameter instead of building one internally. That single
// seam lets production code inject PooledExecutor while tests inject
// SyncExecutor, with no change to the component's logic.
type Executor interface {
	// Submit hands a task to the executor. The executor's policy
	// decides where the task runs: inline on the calling goroutine for
	// SyncExecutor, on a worker for PooledExecutor.
	//
	// Submit after Shutdown returns a RejectedExecution error and the
	// task never runs.
	Submit(task Task) error

	// Shutdown requests termination. Idempotent; the second and later
	// calls are no-ops. It does not cancel in-flight tasks.
	Shutdown()

	// IsShutdown reports whether Shutdown has been requested. Once
	// true it stays true.
	IsShutdown() bool

	// IsTerminated reports whether shutdown is complete and no task is
	// running.
	IsTerminated() bool

	// AwaitTermination blocks until the executor is terminated or the
	// timeout expires. Expiry is reported as false, not as an error.
	AwaitTermination(timeout time.Duration) bool

	// State returns the current lifecycle state.
	State() ExecutorState

	// Name returns the executor's name, used in logs and metric labels.
	Name() string
}
