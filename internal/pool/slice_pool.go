package pool

import "sync"

// SlicePool pools slices of T for reuse across compress and expand calls.
//
// Slices are cleared when returned, so a slice obtained from Get always holds
// zero values. Slices with a capacity above maxCap are not retained.
type SlicePool[T any] struct {
	pool   sync.Pool
	maxCap int
}

// NewSlicePool creates a SlicePool. A maxCap of zero keeps slices of any capacity.
func NewSlicePool[T any](maxCap int) *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any { return new([]T) },
		},
		maxCap: maxCap,
	}
}

// Get returns a zeroed slice with length size.
//
// If the pooled slice has insufficient capacity, a new slice is allocated.
//
// Example:
//
//	slots := slotPool.Get(4096)
//	defer slotPool.Put(slots)
func (p *SlicePool[T]) Get(size int) []T {
	ptr, _ := p.pool.Get().(*[]T)
	if ptr == nil || cap(*ptr) < size {
		return make([]T, size)
	}

	return (*ptr)[:size]
}

// Put clears s and returns it to the pool. Callers must not use s afterwards.
func (p *SlicePool[T]) Put(s []T) {
	if s == nil || (p.maxCap > 0 && cap(s) > p.maxCap) {
		return
	}

	s = s[:cap(s)]
	clear(s)
	s = s[:0]
	p.pool.Put(&s)
}
