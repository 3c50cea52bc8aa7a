package buddy

import (
	"fmt"
	"unsafe"

	"github.com/pbnjay/memory"

	"github.com/AsyncModules/pilf-buddy-alloc/pip"
)

const (
	minArenaBytes     = 1 << 20  // 1MiB floor, regardless of host memory
	maxArenaBytes     = 1 << 30  // 1GiB ceiling for the convenience constructor
	defaultArenaShare = 64       // default arena is 1/64th of total system memory
	fallbackArenaBytes = 16 << 20 // used when the host can't report memory
)

// DefaultArenaBytes derives a conservative arena size from total system
// memory, for hosts that don't have a more specific sizing policy. It never
// returns less than 1MiB nor more than 1GiB.
func DefaultArenaBytes() uintptr {
	total := memory.TotalMemory()
	if total == 0 {
		return fallbackArenaBytes
	}
	arena := total / defaultArenaShare
	if arena < minArenaBytes {
		arena = minArenaBytes
	}
	if arena > maxArenaBytes {
		arena = maxArenaBytes
	}
	return uintptr(arena)
}

// NewWithSystemDefaults builds a Heap of the given order, allocates an
// arena sized by DefaultArenaBytes, registers it as the heap's only region,
// and configures the process-wide pip base to match.
//
// This is a convenience for a process that uses this Heap as its sole
// consumer of package pip; a process juggling multiple position-independent
// regions should call pip.SetBase and Heap.AddToHeap directly instead. The
// returned Heap retains a reference to the arena so it is never garbage
// collected out from under outstanding allocations.
func NewWithSystemDefaults(order int, opts ...Option) (*Heap, error) {
	arenaBytes := DefaultArenaBytes()
	h := New(order, opts...)

	arena := make([]byte, arenaBytes)
	if len(arena) == 0 {
		return nil, fmt.Errorf("buddy: NewWithSystemDefaults: zero-size arena")
	}
	h.arenas = append(h.arenas, arena)

	base := pip.Word(uintptr(unsafe.Pointer(&arena[0])))
	pip.SetBase(pip.Static(base))

	h.AddToHeap(base, base+pip.Word(len(arena)))
	return h, nil
}
