// Package statefeed holds a single always-current value observable by any
// number of subscribers.
//
// A subscriber receives the current value as soon as it subscribes and then
// the latest published value; intermediate values are dropped for subscribers
// that fall behind, so a slow reader never blocks Publish.
package statefeed

import "sync"

// Feed is the current value of type T plus its subscribers.
type Feed[T any] struct {
	mu     sync.Mutex
	value  T
	nextID int
	subs   map[int]chan T
}

// New returns a feed holding initial.
func New[T any](initial T) *Feed[T] {
	return &Feed[T]{value: initial, subs: make(map[int]chan T)}
}

// Value returns the current value.
func (f *Feed[T]) Value() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// Publish replaces the current value and notifies subscribers.
func (f *Feed[T]) Publish(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = v
	for _, ch := range f.subs {
		offer(ch, v)
	}
}

// Subscribe returns a channel receiving the current and subsequent values and
// a cancel func that closes it. cancel is idempotent.
func (f *Feed[T]) Subscribe() (<-chan T, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	ch := make(chan T, 1)
	ch <- f.value
	f.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.subs, id)
			close(ch)
		})
	}
}

// offer replaces any unread value in ch with v. Callers hold f.mu, so ch has a
// single sender.
func offer[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
