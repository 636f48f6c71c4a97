package taskexecutor

import "github.com/nyshte/go-task-executor/core"

// NewSyncExecutor creates the inline, test-oriented executor. Every
// submitted task has completed by the time Submit returns.
func NewSyncExecutor() *SyncExecutor {
	return core.NewSyncExecutor()
}

// NewPooledExecutor creates a worker-pool executor with default
// collaborators and starts its workers immediately.
func NewPooledExecutor(name string, workers int) *PooledExecutor {
	return core.NewPooledExecutor(name, workers)
}

// NewPooledExecutorWithConfig creates a worker-pool executor with
// custom collaborators (panic handler, metrics, rejection handler,
// logger). Nil config fields fall back to defaults.
func NewPooledExecutorWithConfig(name string, workers int, config *Config) *PooledExecutor {
	return core.NewPooledExecutorWithConfig(name, workers, config)
}

// NewCounter creates a Counter backed by the given executor. The
// executor's lifecycle stays with the caller.
func NewCounter(exec Executor) *Counter {
	return core.NewCounter(exec)
}

// NewLatch creates a Latch that releases after count CountDown calls.
func NewLatch(count int) *Latch {
	return core.NewLatch(count)
}
