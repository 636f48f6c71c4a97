package core

import (
	"context"
	"fmt"
	"time"
)

// =============================================================================
// PanicHandler: Interface for handling task panics
// =============================================================================

// PanicHandler is called when a task panics on a pooled executor worker.
// The worker recovers the panic so it can keep serving the queue; the
// handler decides what to do with the failure (log it, count it, abort).
//
// Implementations must be safe for concurrent use, workers may call
// them in parallel.
type PanicHandler interface {
	// HandlePanic is called with the context of the panicked task, the
	// executor name, the worker ID (-1 when the executor has no worker
	// identity), the recovered panic value and the stack trace captured
	// at recovery time.
	HandlePanic(ctx context.Context, executorName string, workerID int, panicInfo any, stackTrace []byte)
}

// DefaultPanicHandler logs panic information through a Logger.
type DefaultPanicHandler struct {
	Logger Logger
}

// HandlePanic logs the panic and its stack trace.
func (h *DefaultPanicHandler) HandlePanic(ctx context.Context, executorName string, workerID int, panicInfo any, stackTrace []byte) {
	logger := h.Logger
	if logger == nil {
		logger = NewDefaultLogger()
	}
	logger.Error("task panicked",
		F("executor", executorName),
		F("worker", workerID),
		F("panic", fmt.Sprintf("%v", panicInfo)),
		F("stack", string(stackTrace)),
	)
}

// =============================================================================
// Metrics: Interface for observability and monitoring
// =============================================================================

// Metrics collects task execution metrics. Implementations can forward
// to monitoring systems (Prometheus, StatsD, etc.).
//
// Methods must be non-blocking and fast; they run on the worker
// goroutines between tasks.
type Metrics interface {
	// RecordTaskDuration records how long a task took to execute.
	RecordTaskDuration(executorName string, duration time.Duration)

	// RecordTaskPanic records that a task panicked during execution.
	RecordTaskPanic(executorName string, panicInfo any)

	// RecordQueueDepth records the current intake queue depth.
	RecordQueueDepth(executorName string, depth int)

	// RecordTaskRejected records that a submission was rejected, with
	// the rejection reason (e.g. "shutdown").
	RecordTaskRejected(executorName string, reason string)
}

// NilMetrics is the no-op default when no metrics sink is configured.
type NilMetrics struct{}

func (m *NilMetrics) RecordTaskDuration(executorName string, duration time.Duration) {}
func (m *NilMetrics) RecordTaskPanic(executorName string, panicInfo any)             {}
func (m *NilMetrics) RecordQueueDepth(executorName string, depth int)                {}
func (m *NilMetrics) RecordTaskRejected(executorName string, reason string)          {}

// =============================================================================
// RejectedTaskHandler: Interface for handling rejected submissions
// =============================================================================

// RejectedTaskHandler is called when Submit rejects a task, in addition
// to the RejectedExecution error the submitter receives. Useful for
// central accounting of work lost during shutdown.
//
// Implementations must be safe for concurrent use.
type RejectedTaskHandler interface {
	HandleRejectedTask(executorName string, reason string)
}

// DefaultRejectedTaskHandler logs rejected submissions.
type DefaultRejectedTaskHandler struct {
	Logger Logger
}

// HandleRejectedTask logs the rejection.
func (h *DefaultRejectedTaskHandler) HandleRejectedTask(executorName string, reason string) {
	logger := h.Logger
	if logger == nil {
		logger = NewDefaultLogger()
	}
	logger.Warn("task rejected", F("executor", executorName), F("reason", reason))
}

// =============================================================================
// Config: Configuration for executors
// =============================================================================

// Config holds the optional collaborators of a PooledExecutor. Nil
// fields fall back to defaults inside the constructor.
type Config struct {
	// PanicHandler is called when a task panics. Defaults to DefaultPanicHandler.
	PanicHandler PanicHandler

	// Metrics receives task execution metrics. Defaults to NilMetrics.
	Metrics Metrics

	// RejectedTaskHandler is called when a submission is rejected.
	// Defaults to DefaultRejectedTaskHandler.
	RejectedTaskHandler RejectedTaskHandler

	// Logger receives lifecycle logs. Defaults to DefaultLogger.
	Logger Logger
}

// DefaultConfig returns a config with default collaborators.
func DefaultConfig() *Config {
	logger := NewDefaultLogger()
	return &Config{
		PanicHandler:        &DefaultPanicHandler{Logger: logger},
		Metrics:             &NilMetrics{},
		RejectedTaskHandler: &DefaultRejectedTaskHandler{Logger: logger},
		Logger:              logger,
	}
}
