package taskexecutor_test

import (
	"context"
	"testing"
	"time"

	taskexecutor "github.com/nyshte/go-task-executor"
)

// TestRootAPI_SyncCounterScenario tests the package-level wiring from
// the consumer's point of view
// Main test items:
// 1. Construct a Counter with a SyncExecutor through the root package
// 2. Increment then read, twice, with no waiting
func TestRootAPI_SyncCounterScenario(t *testing.T) {
	exec := taskexecutor.NewSyncExecutor()
	counter := taskexecutor.NewCounter(exec)

	if err := counter.Increment(); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if got := counter.Value(); got != 1 {
		t.Errorf("Value = %d, want 1", got)
	}

	if err := counter.Increment(); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if got := counter.Value(); got != 2 {
		t.Errorf("Value = %d, want 2", got)
	}
}

// TestRootAPI_ShutdownRejection tests the shutdown scenario end to end
// Main test items:
// 1. Shutdown the injected executor, then Increment
// 2. The error is matchable via the re-exported helper
// 3. The counter keeps its pre-shutdown value
func TestRootAPI_ShutdownRejection(t *testing.T) {
	exec := taskexecutor.NewSyncExecutor()
	counter := taskexecutor.NewCounter(exec)

	if err := counter.Increment(); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	exec.Shutdown()

	err := counter.Increment()
	if !taskexecutor.IsRejectedExecution(err) {
		t.Fatalf("Increment returned %v, want RejectedExecution", err)
	}
	if got := counter.Value(); got != 1 {
		t.Errorf("Value = %d, want pre-shutdown value 1", got)
	}
}

// TestRootAPI_PooledCounter tests the production wiring end to end
// Main test items:
// 1. A pooled executor drives the same Counter
// 2. Flush makes the submitted increments observable
// 3. Graceful shutdown terminates within the bound
func TestRootAPI_PooledCounter(t *testing.T) {
	exec := taskexecutor.NewPooledExecutorWithConfig("root-test", 2, &taskexecutor.Config{
		Logger: taskexecutor.NewNoOpLogger(),
	})
	counter := taskexecutor.NewCounter(exec)

	for i := 0; i < 25; i++ {
		if err := counter.Increment(); err != nil {
			t.Fatalf("Increment failed: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := exec.Flush(ctx); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	exec.Shutdown()
	if !exec.AwaitTermination(time.Second) {
		t.Fatal("AwaitTermination expired")
	}
	if got := counter.Value(); got != 25 {
		t.Errorf("Value = %d, want 25", got)
	}
	if got := exec.State(); got != taskexecutor.StateTerminated {
		t.Errorf("State = %v, want %v", got, taskexecutor.StateTerminated)
	}
}
