package buddy

import (
	"github.com/AsyncModules/pilf-buddy-alloc/list"
	"github.com/AsyncModules/pilf-buddy-alloc/pip"
)

// Layout mirrors an allocation request: the caller's requested size and
// required alignment, both in bytes.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// Heap is a buddy-system allocator: an array of Order lock-free free lists,
// free_list[k] holding blocks of size 2^k for k in [0, Order). Every field
// is either atomic or set once at construction; Alloc, Dealloc, AddToHeap,
// and the Stats accessors may be called concurrently from any number of
// goroutines.
type Heap struct {
	order    int
	minOrder int
	freeList []*list.List

	userBytes  uint64
	allocBytes uint64
	totalBytes uint64

	arenas [][]byte
	logger *Logger
}

// New constructs an empty Heap with Order free lists, sized 2^0 .. 2^(order-1).
// Order must be large enough that 2^(order-1) can host a single list.Node;
// a process with no memory registered (via AddToHeap) is a valid, merely
// useless, Heap.
func New(order int, opts ...Option) *Heap {
	if order <= 0 {
		panic("buddy: New: order must be positive")
	}

	h := &Heap{
		order:    order,
		minOrder: log2Ceil(list.Size),
		freeList: make([]*list.List, order),
	}
	for i := range h.freeList {
		h.freeList[i] = list.New()
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.minOrder >= order {
		h.logPanic("New: order too small to host a single list node")
	}

	return h
}

// classSize rounds a Layout up to the block size the heap will actually
// carve: at least the next power of two >= layout.Size, at least the
// requested alignment, and at least large enough to host a list.Node
// header (so freed blocks can always be pushed back onto a free list).
func (h *Heap) classSize(layout Layout) pip.Word {
	size := layout.Size
	if size == 0 {
		size = 1
	}
	size = nextPow2(size)
	size = maxOf(size, layout.Align)
	size = maxOf(size, uintptr(1)<<uint(h.minOrder))
	return pip.Word(size)
}
