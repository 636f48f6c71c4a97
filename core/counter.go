package core

import (
	"context"
	"sync/atomic"

	"github.com/xh3b4sd/tracer"
)

// Counter holds a single integer mutated exclusively through tasks
// submitted to an injected Executor. It is the minimal shape of a
// component whose asynchronous work becomes deterministic in tests:
// inject SyncExecutor and every Increment has completed by the time it
// returns, so Value can be read immediately with no waiting.
//
// The Counter never constructs an executor itself. Whoever injected
// the executor owns its lifecycle; that injection seam is what makes
// the substitution possible.
//
// The value is atomic, so Value is safe to call while increments are
// still in flight on a pooled executor. Without external
// synchronization (Flush, a Latch, AwaitTermination) a caller must not
// assume a submitted increment is visible to a subsequent Value call
// under the pooled model.
type Counter struct {
	exec  Executor
	value atomic.Int64
}

// NewCounter creates a Counter that submits its mutations to exec.
func NewCounter(exec Executor) *Counter {
	return &Counter{exec: exec}
}

// Increment submits a task that adds one to the counter. If the
// executor has been shut down the task is rejected, the value is left
// untouched and the RejectedExecution error is returned.
func (c *Counter) Increment() error {
	return c.Add(1)
}

// Add submits a task that adds delta to the counter.
func (c *Counter) Add(delta int64) error {
	err := c.exec.Submit(func(ctx context.Context) {
		c.value.Add(delta)
	})
	if err != nil {
		return tracer.Mask(err)
	}
	return nil
}

// Value reads the current counter value directly, without going
// through the executor.
func (c *Counter) Value() int64 {
	return c.value.Load()
}

// Start is a no-op. The Counter owns no resources of its own; the
// injected executor's lifecycle belongs to whoever constructed it.
func (c *Counter) Start() {}

// Stop is a no-op, for the same reason as Start.
func (c *Counter) Stop() {}
