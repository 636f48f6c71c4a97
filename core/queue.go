package core

import (
	"sync"

	"github.com/eapache/queue"
)

// taskQueue is the FIFO intake queue of PooledExecutor: a mutex-guarded
// ring buffer. The ring grows and shrinks on its own, so no manual
// compaction is needed.
type taskQueue struct {
	mu    sync.Mutex
	tasks *queue.Queue
}

func newTaskQueue() *taskQueue {
	return &taskQueue{tasks: queue.New()}
}

func (q *taskQueue) Push(t Task) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks.Add(t)
}

func (q *taskQueue) Pop() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.tasks.Length() == 0 {
		return nil, false
	}
	return q.tasks.Remove().(Task), true
}

func (q *taskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.tasks.Length()
}

func (q *taskQueue) IsEmpty() bool {
	return q.Len() == 0
}

// Clear drops all queued tasks and releases their closure state.
func (q *taskQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = queue.New()
}
