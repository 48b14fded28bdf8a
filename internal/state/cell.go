// Package state provides an observable latest-value cell for publishing
// immutable view snapshots to zero-or-more subscribers.
package state

import (
	"context"
	"sync"
)

// Cell holds the latest complete snapshot of type T and broadcasts every
// replacement to subscribers. Updates are full-replacement, never in-place
// field mutation, so readers always observe an atomic, consistent snapshot.
//
// Delivery is conflated: a slow subscriber skips intermediate snapshots
// and always receives the most recent one; the writer never blocks.
type Cell[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   map[int]chan T
	nextID int
}

// NewCell creates a cell holding the initial snapshot.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		value: initial,
		subs:  make(map[int]chan T),
	}
}

// Get returns the current snapshot.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the snapshot wholesale and notifies all subscribers.
func (c *Cell[T]) Set(value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = value
	for _, ch := range c.subs {
		send(ch, value)
	}
}

// Update derives the next snapshot from the current one under the write
// lock, so concurrent Updates never lose a change in between read and
// publish.
func (c *Cell[T]) Update(fn func(T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = fn(c.value)
	for _, ch := range c.subs {
		send(ch, c.value)
	}
	return c.value
}

// Watch subscribes to snapshot replacements. The current snapshot is
// delivered immediately; the channel closes when ctx is done.
func (c *Cell[T]) Watch(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = ch
	ch <- c.value
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
		close(ch)
	}()

	return ch
}

// send delivers conflated: if the subscriber has not consumed the previous
// snapshot, it is replaced by the new one.
func send[T any](ch chan T, value T) {
	for {
		select {
		case ch <- value:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
