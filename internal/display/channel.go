package display

import (
	"errors"
	"sync"
)

var (
	// ErrFull is returned by TryPush when the channel is at capacity. The record is dropped.
	ErrFull = errors.New("channel full")
	// ErrEmpty is returned by TryPop when nothing is buffered. It is a normal poll miss.
	ErrEmpty = errors.New("channel empty")
)

// Channel is a fixed-capacity FIFO ring of value records. Both ends are non-blocking.
type Channel[T any] struct {
	name string

	mu      sync.Mutex
	buf     []T
	head    int // next slot to pop
	tail    int // next slot to push
	count   int
	dropped uint64
}

// NewChannel allocates a ring with room for capacity records (minimum 1).
func NewChannel[T any](name string, capacity int) *Channel[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Channel[T]{name: name, buf: make([]T, capacity)}
}

// TryPush copies v into the next free slot or returns ErrFull.
func (c *Channel[T]) TryPush(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.count == len(c.buf) {
		c.dropped++
		return ErrFull
	}
	c.buf[c.tail] = v
	c.tail = (c.tail + 1) % len(c.buf)
	c.count++
	return nil
}

// TryPop copies out the oldest record or returns ErrEmpty.
func (c *Channel[T]) TryPop() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if c.count == 0 {
		return zero, ErrEmpty
	}
	v := c.buf[c.head]
	c.buf[c.head] = zero
	c.head = (c.head + 1) % len(c.buf)
	c.count--
	return v, nil
}

// Reset discards everything buffered.
func (c *Channel[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.buf)
	c.head, c.tail, c.count = 0, 0, 0
}

func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func (c *Channel[T]) Cap() int { return len(c.buf) }

func (c *Channel[T]) Name() string { return c.name }

// Dropped counts pushes rejected with ErrFull since construction.
func (c *Channel[T]) Dropped() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped
}

// drain pops at most limit records and hands each to fn. It returns how many were delivered.
func (c *Channel[T]) drain(limit int, fn func(T)) int {
	n := 0
	for n < limit {
		v, err := c.TryPop()
		if err != nil {
			break
		}
		fn(v)
		n++
	}
	return n
}
