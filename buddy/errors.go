package buddy

import "errors"

// ErrOOM is returned by Alloc when no free block exists at or above the
// requested size class in any order the heap was constructed with.
var ErrOOM = errors.New("buddy: out of memory")
