package tree

import (
	"errors"
	"fmt"
	"sync"
)

// ErrArenaExhausted is returned when an allocator cannot satisfy a request.
var ErrArenaExhausted = errors.New("accumulator arena exhausted")

// Allocator provides the accumulator buffers of an arena. It is passed in
// BuildOptions so tests can bound or observe memory use.
type Allocator interface {
	Alloc(n int) ([]float32, error)
}

// HeapAllocator allocates from the Go heap.
type HeapAllocator struct{}

// Alloc returns a zeroed slice of n slots.
func (HeapAllocator) Alloc(n int) ([]float32, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrArenaExhausted, n)
	}
	return make([]float32, n), nil
}

// BoundedAllocator fails once the total number of slots handed out would
// exceed Limit.
type BoundedAllocator struct {
	Limit int
	Next  Allocator

	mu   sync.Mutex
	used int
}

// NewBoundedAllocator caps heap allocation at limit slots.
func NewBoundedAllocator(limit int) *BoundedAllocator {
	return &BoundedAllocator{Limit: limit, Next: HeapAllocator{}}
}

// Alloc reserves n slots from the budget before delegating.
func (b *BoundedAllocator) Alloc(n int) ([]float32, error) {
	b.mu.Lock()
	if b.used+n > b.Limit {
		used := b.used
		b.mu.Unlock()
		return nil, fmt.Errorf("%w: need %d slots, %d of %d in use", ErrArenaExhausted, n, used, b.Limit)
	}
	b.used += n
	b.mu.Unlock()

	next := b.Next
	if next == nil {
		next = HeapAllocator{}
	}
	buf, err := next.Alloc(n)
	if err != nil {
		b.mu.Lock()
		b.used -= n
		b.mu.Unlock()
		return nil, err
	}
	return buf, nil
}

// Used returns the number of slots handed out.
func (b *BoundedAllocator) Used() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used
}

// TrackingAllocator counts allocations made through it.
type TrackingAllocator struct {
	Next Allocator

	mu     sync.Mutex
	bytes  int64
	allocs int
}

// Alloc delegates and records the request.
func (t *TrackingAllocator) Alloc(n int) ([]float32, error) {
	next := t.Next
	if next == nil {
		next = HeapAllocator{}
	}
	buf, err := next.Alloc(n)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	t.bytes += int64(n) * 4
	t.allocs++
	t.mu.Unlock()
	return buf, nil
}

// Bytes returns the total bytes allocated.
func (t *TrackingAllocator) Bytes() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bytes
}

// Allocs returns the number of successful allocations.
func (t *TrackingAllocator) Allocs() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allocs
}
