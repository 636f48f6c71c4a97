package core

import (
	"context"
	"sync"
	"testing"
)

// TestTaskQueue_FIFO tests basic FIFO behavior
// Main test items:
// 1. Tasks pop in the order they were pushed
// 2. Pop on an empty queue reports false
func TestTaskQueue_FIFO(t *testing.T) {
	q := newTaskQueue()

	var order []int
	for i := 0; i < 5; i++ {
		id := i
		q.Push(func(ctx context.Context) {
			order = append(order, id)
		})
	}

	if got := q.Len(); got != 5 {
		t.Fatalf("Len = %d, want 5", got)
	}

	for i := 0; i < 5; i++ {
		task, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop %d reported empty", i)
		}
		task(context.Background())
	}

	if _, ok := q.Pop(); ok {
		t.Error("Pop on empty queue should report false")
	}
	for i := 0; i < 5; i++ {
		if order[i] != i {
			t.Errorf("FIFO order broken: expected %d at position %d, got %d", i, i, order[i])
		}
	}
}

// TestTaskQueue_Clear tests queue clearing
// Main test items:
// 1. Clear drops all queued tasks
// 2. The queue is usable afterwards
func TestTaskQueue_Clear(t *testing.T) {
	q := newTaskQueue()
	for i := 0; i < 10; i++ {
		q.Push(func(ctx context.Context) {})
	}

	q.Clear()
	if !q.IsEmpty() {
		t.Error("Queue should be empty after Clear")
	}

	q.Push(func(ctx context.Context) {})
	if got := q.Len(); got != 1 {
		t.Errorf("Len = %d after push on cleared queue, want 1", got)
	}
}

// TestTaskQueue_ConcurrentAccess tests thread safety
// Main test items:
// 1. Concurrent pushers and poppers neither lose nor duplicate tasks
func TestTaskQueue_ConcurrentAccess(t *testing.T) {
	q := newTaskQueue()

	const pushers = 4
	const perPusher = 250

	var wg sync.WaitGroup
	for i := 0; i < pushers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perPusher; j++ {
				q.Push(func(ctx context.Context) {})
			}
		}()
	}
	wg.Wait()

	popped := 0
	for {
		if _, ok := q.Pop(); !ok {
			break
		}
		popped++
	}
	if popped != pushers*perPusher {
		t.Errorf("Popped %d tasks, want %d", popped, pushers*perPusher)
	}
}
