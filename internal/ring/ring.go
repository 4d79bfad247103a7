// Package ring implements a fixed-capacity FIFO queue backed by a circular
// buffer. It is the ordered backing store for the additive layer store.
package ring

import "errors"

var (
	// ErrInvalidCapacity is returned when capacity is non-positive.
	ErrInvalidCapacity = errors.New("ring: capacity must be positive")

	// ErrFull is returned by Append when the buffer is at capacity.
	ErrFull = errors.New("ring: buffer full")

	// ErrEmpty is returned by PopFront when the buffer holds no items.
	ErrEmpty = errors.New("ring: buffer empty")
)

// Buffer is a bounded FIFO queue. Append adds at the back, PopFront removes
// from the front, and both are O(1). The zero value is not usable; create
// buffers with New.
//
// Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	items []T
	head  int
	size  int
}

// New creates an empty buffer with the given fixed capacity.
func New[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Buffer[T]{items: make([]T, capacity)}, nil
}

// Append adds v at the back of the buffer.
// Returns ErrFull if the buffer is at capacity.
func (b *Buffer[T]) Append(v T) error {
	if b.size == len(b.items) {
		return ErrFull
	}
	b.items[(b.head+b.size)%len(b.items)] = v
	b.size++
	return nil
}

// PopFront removes and returns the oldest item.
// Returns ErrEmpty if the buffer holds no items.
func (b *Buffer[T]) PopFront() (T, error) {
	var zero T
	if b.size == 0 {
		return zero, ErrEmpty
	}
	v := b.items[b.head]
	b.items[b.head] = zero
	b.head = (b.head + 1) % len(b.items)
	b.size--
	return v, nil
}

// Len returns the number of items currently held.
func (b *Buffer[T]) Len() int { return b.size }

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int { return len(b.items) }

// Full reports whether Append would fail.
func (b *Buffer[T]) Full() bool { return b.size == len(b.items) }

// Empty reports whether PopFront would fail.
func (b *Buffer[T]) Empty() bool { return b.size == 0 }

// Items returns the held items in insertion order, oldest first.
// The returned slice is a snapshot; mutating it does not affect the buffer.
func (b *Buffer[T]) Items() []T {
	out := make([]T, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.items[(b.head+i)%len(b.items)]
	}
	return out
}
