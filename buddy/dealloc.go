package buddy

import (
	"sync/atomic"

	"github.com/AsyncModules/pilf-buddy-alloc/pip"
)

// Dealloc returns a previously allocated block to the heap, merging with its
// buddy at each order as long as the buddy is free, starting from layout's
// size class. Deleting the buddy before pushing current back is deliberate:
// pushing first would race with a concurrent Dealloc of a distant buddy
// performing its own merge, and could lose a merge or double-insert a block.
//
// Dealloc of an address this Heap did not issue (or with a layout
// mismatched to the original Alloc) is undefined, as with any intrusive
// buddy system: the node header at addr is simply trusted.
func (h *Heap) Dealloc(addr pip.Word, layout Layout) {
	size := h.classSize(layout)
	class := log2Floor(uintptr(size))

	current := addr
	k := class
	for k < h.order-1 {
		buddy := current ^ (pip.Word(1) << uint(k))
		if !h.freeList[k].Delete(buddy) {
			break
		}
		current = minOf(current, buddy)
		k++
	}
	h.freeList[k].Push(current)

	subUint64(&h.userBytes, uint64(layout.Size))
	subUint64(&h.allocBytes, uint64(size))
}

func subUint64(p *uint64, v uint64) {
	if v == 0 {
		return
	}
	atomic.AddUint64(p, ^(v - 1))
}
