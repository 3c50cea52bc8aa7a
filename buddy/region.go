package buddy

import (
	"sync/atomic"
	"unsafe"

	"github.com/AsyncModules/pilf-buddy-alloc/pip"
)

// AddToHeap carves [start, end) into maximal aligned power-of-two blocks and
// pushes each onto the matching free list, growing the heap's total
// capacity. It may be called more than once, including after Alloc/Dealloc
// traffic has begun against regions added by earlier calls: each call only
// ever adds disjoint capacity and never touches existing free-list entries.
// The caller is responsible for start and end describing memory this Heap
// does not already own, and for that memory outliving the Heap.
//
// Panics if start > end (a precondition violation, not a runtime failure).
func (h *Heap) AddToHeap(start, end pip.Word) {
	if start > end {
		h.logPanic("add_to_heap: start > end")
	}

	word := pip.Word(unsafe.Sizeof(uintptr(0)))
	start = alignUp(uintptr(start), uintptr(word))
	end = alignDown(uintptr(end), uintptr(word))

	maxBlock := pip.Word(1) << uint(h.order-1)
	minBlock := pip.Word(1) << uint(h.minOrder)

	var added uint64
	cur := start
	for cur < end {
		var alignSize pip.Word
		if cur == 0 {
			alignSize = maxBlock
		} else {
			alignSize = pip.Word(lowbit(uintptr(cur)))
		}
		size := minOf(alignSize, pip.Word(prevPow2(uintptr(end-cur))))
		size = minOf(size, maxBlock)
		if size < minBlock {
			// the span at cur is too small or too poorly aligned to host a
			// node header; skip it rather than carve an unusable fragment.
			cur += size
			continue
		}

		class := log2Floor(uintptr(size))
		h.freeList[class].Push(cur)

		cur += size
		added += uint64(size)
	}

	atomic.AddUint64(&h.totalBytes, added)

	if h.logger != nil {
		h.logger.Info().Uint64("bytes_added", added).Log("buddy: region added to heap")
	}
}

func (h *Heap) logPanic(msg string) {
	if h.logger != nil {
		h.logger.Err().Log("buddy: " + msg)
	}
	panic("buddy: " + msg)
}
