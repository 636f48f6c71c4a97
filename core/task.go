package core

import "context"

// Task is the unit of work (Closure)
type Task func(ctx context.Context)

// =============================================================================
// Context Helper
// =============================================================================
type executorKeyType struct{}

var executorKey executorKeyType

// GetCurrentExecutor returns the Executor a task is running on, or nil
// if the context did not come from an executor.
func GetCurrentExecutor(ctx context.Context) Executor {
	if v := ctx.Value(executorKey); v != nil {
		return v.(Executor)
	}
	return nil
}
