package event

import "sync"

// Dispatcher schedules work on the UI goroutine.
type Dispatcher interface {
	Post(fn func())
}

// Queue is the UI queue. Any goroutine may Post; only the UI goroutine
// calls Drain (from ebiten's Update).
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Post appends fn to the queue.
func (q *Queue) Post(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Drain runs everything posted so far, in order, and returns how many
// funcs ran. Funcs posted while draining run on the next Drain.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Len returns the number of pending funcs.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Immediate runs posted funcs synchronously on the caller's goroutine.
// Used where the producer already runs on the UI goroutine.
type Immediate struct{}

// Post runs fn.
func (Immediate) Post(fn func()) {
	if fn != nil {
		fn()
	}
}
