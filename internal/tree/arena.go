package tree

import "fmt"

// Arena holds every decision node's regret and strategy-sum accumulators in
// two flat buffers. A node's region is laid out [action][hand] at its Offset.
type Arena struct {
	Regret   []float32
	Strategy []float32
}

// NewArena allocates both buffers of slots entries from alloc.
func NewArena(alloc Allocator, slots int) (*Arena, error) {
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	regret, err := alloc.Alloc(slots)
	if err != nil {
		return nil, fmt.Errorf("regret buffer: %w", err)
	}
	strategy, err := alloc.Alloc(slots)
	if err != nil {
		return nil, fmt.Errorf("strategy buffer: %w", err)
	}
	return &Arena{Regret: regret, Strategy: strategy}, nil
}

// Slots returns the number of entries in each buffer.
func (a *Arena) Slots() int {
	return len(a.Regret)
}

// Bytes returns the memory held by both buffers.
func (a *Arena) Bytes() int64 {
	return int64(len(a.Regret)+len(a.Strategy)) * 4
}

// Slice returns the regret and strategy regions [off, off+n).
func (a *Arena) Slice(off uint64, n int) (regret, strategy []float32) {
	end := off + uint64(n)
	return a.Regret[off:end:end], a.Strategy[off:end:end]
}

// Reset zeroes every accumulator.
func (a *Arena) Reset() {
	clear(a.Regret)
	clear(a.Strategy)
}
