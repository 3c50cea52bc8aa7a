package buddy

import "sync/atomic"

// StatsAllocUser returns the sum of layout.Size across all outstanding
// allocations — the bytes the caller actually asked for, not rounded up.
func (h *Heap) StatsAllocUser() uint64 {
	return atomic.LoadUint64(&h.userBytes)
}

// StatsAllocActual returns the sum of rounded-up block sizes backing all
// outstanding allocations.
func (h *Heap) StatsAllocActual() uint64 {
	return atomic.LoadUint64(&h.allocBytes)
}

// StatsTotalBytes returns the total capacity ever registered with AddToHeap.
func (h *Heap) StatsTotalBytes() uint64 {
	return atomic.LoadUint64(&h.totalBytes)
}
