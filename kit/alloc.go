// Package kit collects the ambient collaborators jitson's core package
// deliberately stays independent of: allocation accounting, pooled
// string buffers, legacy text encoding, identifiers, base encodings,
// timestamps and seeded randomness. Nothing in package jitson imports
// kit; callers wire the two together.
package kit

import (
	"sync"
	"sync/atomic"
)

// Allocator tracks logical allocation events by kind (cells, strings,
// index buckets) without owning the memory itself — Go's GC does that.
// It exists so tests and capacity-planning tooling can assert "no
// unexpected allocation happened" during a hot path, the same role a
// counting arena plays over a pool that already does the real
// allocating.
type Allocator interface {
	Alloc(kind string, n int)
	Counts() map[string]int64
}

// CountingAllocator is a concurrency-safe Allocator backed by per-kind
// atomic counters, new kinds registering themselves on first use via
// sync.Map.LoadOrStore.
type CountingAllocator struct {
	counts sync.Map // string -> *int64
}

// NewCountingAllocator returns an empty Allocator; counters for a kind
// are created lazily the first time Alloc observes it.
func NewCountingAllocator() *CountingAllocator {
	return &CountingAllocator{}
}

// Alloc records n units of allocation under kind.
func (c *CountingAllocator) Alloc(kind string, n int) {
	ptr, _ := c.counts.LoadOrStore(kind, new(int64))
	atomic.AddInt64(ptr.(*int64), int64(n))
}

// Counts returns a snapshot of every kind's running total.
func (c *CountingAllocator) Counts() map[string]int64 {
	out := make(map[string]int64)
	c.counts.Range(func(k, v any) bool {
		out[k.(string)] = atomic.LoadInt64(v.(*int64))
		return true
	})
	return out
}
