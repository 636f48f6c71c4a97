// Package taskexecutor provides a swappable task-execution abstraction
// that makes asynchronous code deterministically testable.
//
// The core idea is a single seam: components that need asynchronous
// execution accept an Executor as a constructor parameter instead of
// building a pool internally. Production code injects PooledExecutor,
// which runs tasks on worker goroutines; tests inject SyncExecutor,
// which runs every task inline before Submit returns. Same interface,
// different temporal behavior, no change to the component under test.
//
// # Quick Start
//
// Production wiring:
//
//	exec := taskexecutor.NewPooledExecutor("app", 4)
//	counter := taskexecutor.NewCounter(exec)
//
//	counter.Increment() // runs asynchronously on a worker
//
//	exec.Shutdown()
//	exec.AwaitTermination(5 * time.Second)
//
// Test wiring:
//
//	exec := taskexecutor.NewSyncExecutor()
//	counter := taskexecutor.NewCounter(exec)
//
//	counter.Increment()
//	// The increment has already completed, no sleeps, no polling.
//	if counter.Value() != 1 { ... }
//
// # Key Concepts
//
// Executor: the capability that accepts tasks and governs when and
// where they run. Lifecycle moves Running -> ShuttingDown ->
// Terminated and never backwards. Submit after Shutdown returns a
// RejectedExecution error instead of running the task silently.
//
// SyncExecutor: the test-only reference implementation. Submit runs
// the task to completion on the calling goroutine, so side effects are
// visible the moment it returns and Shutdown collapses straight to
// Terminated.
//
// PooledExecutor: the production implementation. FIFO intake queue,
// fixed worker set, graceful drain on Shutdown, panic capture per
// worker, pluggable logging and metrics (see the observability
// subpackage for Prometheus adapters).
//
// Counter: a minimal component built on the seam, useful both as an
// example and as a building block.
//
// # Waiting for asynchronous completion
//
// Against a pooled executor, Submit returns before the work happens.
// Three bounded mechanisms observe completion: Flush (a barrier that
// returns once everything submitted before it has run),
// AwaitTermination (after Shutdown), and Latch (a counting completion
// signal the tasks themselves count down). None of them waits
// unboundedly.
package taskexecutor
