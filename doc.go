// Package pilfalloc is a lock-free, position-independent buddy-system heap
// allocator, intended to back a vDSO-style shared library whose data
// segment may be mapped at a different address in every process that loads
// it.
//
// The package re-exports buddy.Heap as its single public entry point;
// package pip and package list hold the position-independent pointer layer
// and the non-blocking linked list it's built from, and are usable
// independently by anything else needing the same primitives.
package pilfalloc
