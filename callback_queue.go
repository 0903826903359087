package easel

import (
	"container/heap"
	"fmt"
	"sync"
	"time"
)

// QueuedCallback is one unit of deferred work: the function to run, a
// debug label for logs, an integer priority, and the enqueue timestamp
// used for age-based expiry and tie-breaking.
type QueuedCallback struct {
	fn         func()
	label      string
	priority   int
	enqueuedAt time.Time
	seq        uint64
}

// Label returns the callback's debug label.
func (c *QueuedCallback) Label() string { return c.label }

// Priority returns the callback's priority.
func (c *QueuedCallback) Priority() int { return c.priority }

// callbackHeap orders callbacks by priority descending, then enqueue
// time ascending, then enqueue sequence so drain order is deterministic
// even under a coarse clock.
type callbackHeap []*QueuedCallback

func (h callbackHeap) Len() int { return len(h) }

func (h callbackHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	if !h[i].enqueuedAt.Equal(h[j].enqueuedAt) {
		return h[i].enqueuedAt.Before(h[j].enqueuedAt)
	}
	return h[i].seq < h[j].seq
}

func (h callbackHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *callbackHeap) Push(x any) { *h = append(*h, x.(*QueuedCallback)) }

func (h *callbackHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// QueueStats is a consistent snapshot of the queue's counters.
type QueueStats struct {
	TotalEnqueued uint64
	TotalDrained  uint64
	CurrentSize   int
}

// AsyncCallbackQueue hands work from background threads to the thread
// that drains it. Any number of goroutines may enqueue; drains execute
// entries in priority-descending, then oldest-first order, exactly
// once each.
//
// This queue is the only thread-safe boundary in the runtime: one mutex
// guards the ordered entries and the counters. The lock is held for
// structural push/pop only, never while a callback runs, so a slow
// callback cannot block producers. There is no per-callback timeout; a
// callback that never returns stalls the draining thread.
type AsyncCallbackQueue struct {
	mu            sync.Mutex
	entries       callbackHeap
	seq           uint64
	totalEnqueued uint64
	totalDrained  uint64
}

// NewAsyncCallbackQueue creates an empty queue.
func NewAsyncCallbackQueue() *AsyncCallbackQueue {
	return &AsyncCallbackQueue{}
}

// Enqueue adds work to the queue with a debug label and priority,
// stamping the enqueue time. Nil work is dropped with a diagnostic
// instead of being queued. Safe to call from any goroutine.
func (q *AsyncCallbackQueue) Enqueue(work func(), label string, priority int) {
	if work == nil {
		logger().Debug("easel: dropping nil callback", "label", label)
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seq++
	heap.Push(&q.entries, &QueuedCallback{
		fn:         work,
		label:      label,
		priority:   priority,
		enqueuedAt: time.Now(),
		seq:        q.seq,
	})
	q.totalEnqueued++
}

// Drain pops up to maxCount entries (all of them when maxCount is 0) in
// priority order under the lock, releases the lock, then executes them
// one at a time. A panic inside one entry is recovered and logged with
// the entry's label; the rest of the batch still runs. Returns the
// number of entries executed.
func (q *AsyncCallbackQueue) Drain(maxCount int) int {
	q.mu.Lock()
	n := len(q.entries)
	if maxCount > 0 && maxCount < n {
		n = maxCount
	}
	batch := make([]*QueuedCallback, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, heap.Pop(&q.entries).(*QueuedCallback))
	}
	q.totalDrained += uint64(len(batch))
	q.mu.Unlock()

	for _, cb := range batch {
		runQueuedCallback(cb)
	}
	return len(batch)
}

// runQueuedCallback executes one callback, containing any panic so a
// misbehaving callback cannot take down the draining thread or the rest
// of its batch.
func runQueuedCallback(cb *QueuedCallback) {
	defer func() {
		if r := recover(); r != nil {
			logger().Error("easel: queued callback panicked",
				"label", cb.label, "kind", fmt.Sprintf("%T", r), "value", r)
		}
	}()
	cb.fn()
}

// Expire removes, without executing, every entry older than maxAge and
// returns how many were removed. Stale work often references resources
// that no longer exist; it must be dropped, not run late.
func (q *AsyncCallbackQueue) Expire(maxAge time.Duration) int {
	now := time.Now()
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.entries[:0]
	removed := 0
	for _, cb := range q.entries {
		if now.Sub(cb.enqueuedAt) > maxAge {
			removed++
			logger().Debug("easel: expired stale callback",
				"label", cb.label, "age", now.Sub(cb.enqueuedAt))
			continue
		}
		kept = append(kept, cb)
	}
	for i := len(kept); i < len(q.entries); i++ {
		q.entries[i] = nil
	}
	q.entries = kept
	if removed > 0 {
		heap.Init(&q.entries)
	}
	return removed
}

// Clear discards every pending entry without executing it and returns
// how many were discarded.
func (q *AsyncCallbackQueue) Clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(q.entries)
	q.entries = nil
	return n
}

// Len returns the number of pending entries.
func (q *AsyncCallbackQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Stats returns a snapshot of the queue's counters, read under the same
// lock that guards the entries.
func (q *AsyncCallbackQueue) Stats() QueueStats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return QueueStats{
		TotalEnqueued: q.totalEnqueued,
		TotalDrained:  q.totalDrained,
		CurrentSize:   len(q.entries),
	}
}
