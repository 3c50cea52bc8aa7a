package pip

import "sync/atomic"

// Word is the machine word used to store both absolute addresses (at the
// public boundary) and position-independent offsets (internally). It is a
// type alias, not a defined type, so it interoperates directly with
// sync/atomic's uintptr-based functions.
type Word = uintptr

// Provider returns the current absolute base address of the data segment
// the allocator lives in. Implementations must be stable for the lifetime
// of the heap within a single process/mapping; the allocator never mutates
// the value it receives, only re-reads it.
//
// Discovering the real base (reading the dynamic loader's maps, a linker
// symbol, etc.) is a host concern and out of scope here.
type Provider func() Word

var base atomic.Value // stores Provider

func init() {
	base.Store(Provider(func() Word { return 0 }))
}

// SetBase installs the Provider used by Encode/Decode. It must be called
// once, before any concurrent allocator traffic begins; the base is assumed
// stable thereafter.
func SetBase(p Provider) {
	if p == nil {
		panic("pip: SetBase: nil Provider")
	}
	base.Store(p)
}

func currentBase() Word {
	return base.Load().(Provider)()
}
