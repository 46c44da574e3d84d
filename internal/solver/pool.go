package solver

import (
	"sync"

	"golang.org/x/sync/semaphore"
)

// pool bounds the goroutines spawned by nested fan-outs. The calling
// goroutine always does work itself, so a fan-out that finds no free slot
// runs inline and nesting cannot deadlock.
type pool struct {
	sem *semaphore.Weighted
}

func newPool(threads int) *pool {
	if threads <= 1 {
		return &pool{}
	}
	return &pool{sem: semaphore.NewWeighted(int64(threads - 1))}
}

// run calls fn for 0..n-1 and returns once every call has finished.
func (p *pool) run(n int, fn func(i int)) {
	if p.sem == nil || n < 2 {
		for i := range n {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	for i := range n {
		// keep the last child for the caller
		if i < n-1 && p.sem.TryAcquire(1) {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer p.sem.Release(1)
				fn(i)
			}()
			continue
		}
		fn(i)
	}
	wg.Wait()
}
