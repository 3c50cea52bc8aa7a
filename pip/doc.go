// Package pip implements position-independent pointers for code whose data
// segment may be mapped at a different virtual address in every process
// that loads it (the vDSO case). A stored pointer never holds an absolute
// address directly; it holds an offset from a base supplied by the host,
// translated at one chokepoint (Decode/Encode), plus a MarkedPointer type
// that layers Harris-style lazy-deletion marking on top.
package pip
