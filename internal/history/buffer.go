// Package history keeps a bounded record of retired generations.
package history

import "stalagmite/internal/core"

// Buffer is a fixed-capacity FIFO of grids. Pushing onto a full buffer evicts
// the oldest grid. The buffer takes ownership of pushed grids; callers must not
// mutate a grid after pushing it.
type Buffer struct {
	ring []*core.Grid
	head int // index of the oldest element
	n    int
}

// New returns an empty buffer holding at most capacity grids. A capacity of
// zero keeps nothing.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{ring: make([]*core.Grid, capacity)}
}

// Capacity reports the maximum number of retained grids.
func (b *Buffer) Capacity() int { return len(b.ring) }

// Len reports the number of retained grids.
func (b *Buffer) Len() int { return b.n }

// Push appends g as the most recent entry. When the buffer overflows the
// oldest entry is dropped and returned; otherwise Push returns nil.
func (b *Buffer) Push(g *core.Grid) *core.Grid {
	capacity := len(b.ring)
	if capacity == 0 {
		return g
	}
	if b.n < capacity {
		b.ring[(b.head+b.n)%capacity] = g
		b.n++
		return nil
	}
	evicted := b.ring[b.head]
	b.ring[b.head] = g
	b.head = (b.head + 1) % capacity
	return evicted
}

// At returns the grid at history depth d, where depth 1 is the most recent
// entry and depth Len() the oldest.
func (b *Buffer) At(d int) *core.Grid {
	if d < 1 || d > b.n {
		return nil
	}
	return b.ring[(b.head+b.n-d)%len(b.ring)]
}

// Newest returns the most recently pushed grid, or nil when empty.
func (b *Buffer) Newest() *core.Grid { return b.At(1) }

// Oldest returns the oldest retained grid, or nil when empty.
func (b *Buffer) Oldest() *core.Grid { return b.At(b.n) }

// Snapshot lists the retained grids from most recent to oldest. The slice is
// freshly allocated; the grids themselves are shared and must be treated as
// read-only.
func (b *Buffer) Snapshot() []*core.Grid {
	out := make([]*core.Grid, b.n)
	for d := 1; d <= b.n; d++ {
		out[d-1] = b.At(d)
	}
	return out
}

// Reset drops every retained grid.
func (b *Buffer) Reset() {
	for i := range b.ring {
		b.ring[i] = nil
	}
	b.head = 0
	b.n = 0
}
