// Package buddy implements a lock-free buddy-system heap allocator on top
// of package list's non-blocking linked list: free_list[k] holds blocks of
// size 2^k, split on demand by Alloc and merged on release by Dealloc.
//
// Addresses flowing through Heap are absolute words at the public boundary
// (Alloc/Dealloc/AddToHeap); package list and package pip translate them to
// and from position-independent form internally, via the single base
// chokepoint configured with pip.SetBase.
package buddy
