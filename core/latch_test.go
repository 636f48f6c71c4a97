package core

import (
	"testing"
	"time"
)

// TestLatch_ReleaseAfterCountDowns tests basic latch behavior
// Main test items:
// 1. Wait blocks until CountDown has been called count times
// 2. Wait reports true once released
func TestLatch_ReleaseAfterCountDowns(t *testing.T) {
	latch := NewLatch(3)

	if latch.Wait(10 * time.Millisecond) {
		t.Error("Wait should report false before the count reaches zero")
	}

	latch.CountDown()
	latch.CountDown()
	if latch.Wait(10 * time.Millisecond) {
		t.Error("Wait should report false with one count remaining")
	}

	latch.CountDown()
	if !latch.Wait(time.Second) {
		t.Error("Wait should report true after the final CountDown")
	}
	if got := latch.Count(); got != 0 {
		t.Errorf("Count = %d, want 0", got)
	}
}

// TestLatch_ZeroCount tests the degenerate latch
// Main test items:
// 1. A latch created with count <= 0 is already released
func TestLatch_ZeroCount(t *testing.T) {
	if !NewLatch(0).Wait(0) {
		t.Error("A zero-count latch should be released immediately")
	}
	if !NewLatch(-1).Wait(0) {
		t.Error("A negative-count latch should be released immediately")
	}
}

// TestLatch_ExtraCountDowns tests over-release
// Main test items:
// 1. CountDown past zero is a no-op, not a panic
func TestLatch_ExtraCountDowns(t *testing.T) {
	latch := NewLatch(1)
	latch.CountDown()
	latch.CountDown()
	latch.CountDown()

	if !latch.Wait(0) {
		t.Error("Latch should stay released after extra CountDown calls")
	}
}

// TestLatch_ConcurrentCountDown tests release under contention
// Main test items:
// 1. Concurrent CountDown calls release the latch exactly once
func TestLatch_ConcurrentCountDown(t *testing.T) {
	const n = 100
	latch := NewLatch(n)

	for i := 0; i < n; i++ {
		go latch.CountDown()
	}

	if !latch.Wait(time.Second) {
		t.Fatal("Latch was not released by concurrent CountDown calls")
	}
}

// TestLatch_DoneChannel tests the select integration point
// Main test items:
// 1. Done is closed exactly when the latch releases
func TestLatch_DoneChannel(t *testing.T) {
	latch := NewLatch(1)

	select {
	case <-latch.Done():
		t.Fatal("Done should not be closed before release")
	default:
	}

	latch.CountDown()

	select {
	case <-latch.Done():
	case <-time.After(time.Second):
		t.Fatal("Done was not closed after release")
	}
}
