package buddy

import (
	"sync/atomic"

	"github.com/AsyncModules/pilf-buddy-alloc/pip"
)

// Alloc returns the address of a block satisfying layout, or ErrOOM if no
// free block exists at or above the required size class in any order.
//
// Starting at the required class, each order is tried in turn: a bare Pop
// already reports "nothing here" without a separate emptiness check, so a
// miss moves on to the next order immediately rather than retrying the
// current one — retrying in place is what the spurious-empty race would
// livelock on.
func (h *Heap) Alloc(layout Layout) (pip.Word, error) {
	size := h.classSize(layout)
	class := log2Floor(uintptr(size))

	for i := class; i < h.order; i++ {
		addr, ok := h.freeList[i].Pop()
		if !ok {
			continue
		}

		for j := i; j > class; j-- {
			half := pip.Word(1) << uint(j-1)
			h.freeList[j-1].Push(addr + half)
		}

		atomic.AddUint64(&h.userBytes, uint64(layout.Size))
		atomic.AddUint64(&h.allocBytes, uint64(size))
		return addr, nil
	}

	if h.logger != nil {
		h.logger.Warning().Uint64("size", uint64(size)).Log("buddy: alloc: out of memory")
	}
	return 0, ErrOOM
}
