// Package event provides typed callback feeds and the UI queue that
// delivers them. Producers on other goroutines never call subscribers
// directly; they post to a Queue which the UI goroutine drains once per
// frame.
package event

import (
	"slices"
	"sync"
)

// Subscription is the unregister token returned by Feed.Subscribe.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Cancel removes the subscription. Calling it more than once is a no-op,
// as is calling it on a nil Subscription.
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}

// NewSubscription wraps an arbitrary cancel func, used by producers that
// manage their own resources (tickers, goroutines).
func NewSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Feed is a list of typed subscribers.
type Feed[T any] struct {
	mu   sync.Mutex
	next uint64
	subs map[uint64]func(T)
}

// Subscribe registers fn and returns its unregister token.
func (f *Feed[T]) Subscribe(fn func(T)) *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subs == nil {
		f.subs = make(map[uint64]func(T))
	}
	id := f.next
	f.next++
	f.subs[id] = fn
	return &Subscription{cancel: func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}}
}

// Emit calls every subscriber in registration order. Subscribers may
// cancel themselves or others while being called.
func (f *Feed[T]) Emit(v T) {
	f.mu.Lock()
	ids := make([]uint64, 0, len(f.subs))
	for id := range f.subs {
		ids = append(ids, id)
	}
	f.mu.Unlock()

	slices.Sort(ids)
	for _, id := range ids {
		f.mu.Lock()
		fn, ok := f.subs[id]
		f.mu.Unlock()
		if ok {
			fn(v)
		}
	}
}

// Len returns the number of live subscribers.
func (f *Feed[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
