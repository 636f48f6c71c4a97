package taskexecutor

import "github.com/nyshte/go-task-executor/core"

// Re-export commonly used types from core package for convenience.
// This allows users to import only the taskexecutor package for most
// use cases.

// Task is the unit of work (Closure)
type Task = core.Task

// Executor is the interface for submitting tasks
type Executor = core.Executor

// ExecutorState is the lifecycle state of an Executor
type ExecutorState = core.ExecutorState

// SyncExecutor runs every task inline before Submit returns
type SyncExecutor = core.SyncExecutor

// PooledExecutor runs tasks on a fixed set of worker goroutines
type PooledExecutor = core.PooledExecutor

// Counter is the minimal executor-backed component
type Counter = core.Counter

// Latch is a counting completion signal with bounded waits
type Latch = core.Latch

// Config holds the optional collaborators of a PooledExecutor
type Config = core.Config

// Logger is the structured logging seam
type Logger = core.Logger

// ExecutorStats is a point-in-time executor snapshot
type ExecutorStats = core.ExecutorStats

// StatsSource is implemented by executors that expose stats snapshots
type StatsSource = core.StatsSource

// Lifecycle state constants
const (
	StateRunning      ExecutorState = core.StateRunning
	StateShuttingDown ExecutorState = core.StateShuttingDown
	StateTerminated   ExecutorState = core.StateTerminated
)

// RejectedExecution is the error returned by Submit after Shutdown
var RejectedExecution = core.RejectedExecution

// IsRejectedExecution reports whether err is a RejectedExecution error
var IsRejectedExecution = core.IsRejectedExecution

// GetCurrentExecutor retrieves the running Executor from a task context
var GetCurrentExecutor = core.GetCurrentExecutor

// DefaultConfig returns a Config with default collaborators
var DefaultConfig = core.DefaultConfig

// NewDefaultLogger creates the standard-log-backed Logger
var NewDefaultLogger = core.NewDefaultLogger

// NewNoOpLogger creates a Logger that discards everything
var NewNoOpLogger = core.NewNoOpLogger
