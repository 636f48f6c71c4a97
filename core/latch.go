package core

import (
	"sync"
	"time"
)

// Latch is a counting completion signal: it starts at a count and
// releases every waiter once CountDown has been called that many
// times. It is the explicit wait-for-completion mechanism for code
// that runs against a pooled executor, where Submit returns before the
// work happens.
//
// Waits are always bounded; Wait takes a timeout and reports expiry as
// false rather than blocking forever.
type Latch struct {
	mu    sync.Mutex
	count int
	done  chan struct{}
}

// NewLatch creates a Latch that releases after count calls to
// CountDown. A count of zero or less is already released.
func NewLatch(count int) *Latch {
	l := &Latch{
		count: count,
		done:  make(chan struct{}),
	}
	if count <= 0 {
		close(l.done)
	}
	return l
}

// CountDown decrements the count. The call that reaches zero releases
// all current and future waiters. Calls after zero are no-ops.
func (l *Latch) CountDown() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.count <= 0 {
		return
	}
	l.count--
	if l.count == 0 {
		close(l.done)
	}
}

// Count returns the remaining count.
func (l *Latch) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Wait blocks until the latch is released or the timeout expires,
// reporting expiry as false.
func (l *Latch) Wait(timeout time.Duration) bool {
	select {
	case <-l.done:
		return true
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-l.done:
		return true
	case <-timer.C:
		return false
	}
}

// Done exposes the release signal for use in select statements.
func (l *Latch) Done() <-chan struct{} {
	return l.done
}
