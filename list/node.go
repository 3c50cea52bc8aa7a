package list

import (
	"sync/atomic"
	"unsafe"

	"github.com/AsyncModules/pilf-buddy-alloc/pip"
)

// Node is the intrusive header placed at the start of every memory block
// managed by a List. next is the marked, position-independent pointer to
// the node's successor; rc is the number of live transient handles
// currently referencing this node (see handle in this package).
type Node struct {
	next pip.MarkedPointer
	rc   int32
}

// Size is the number of bytes a Node header occupies. The buddy allocator
// uses this to enforce a minimum block size.
const Size = unsafe.Sizeof(Node{})

// nodeAt reinterprets an absolute address as a *Node. The caller is
// responsible for addr referring to a live, node-sized block.
func nodeAt(addr pip.Word) *Node {
	return (*Node)(unsafe.Pointer(addr))
}

// refCount returns the node's current reference count, for diagnostics and
// tests. It is not part of the list's public contract.
func (n *Node) refCount() int32 {
	return atomic.LoadInt32(&n.rc)
}

// handle is a transient reference to a node, held for as long as some
// traversal or caller needs to guarantee the node will not have its memory
// reused out from under it. Constructing a handle increments the node's rc;
// releasing it decrements. The zero handle is safe to release (no-op),
// which lets call sites thread it through retry loops without a separate
// "do I have one" check.
type handle struct {
	n *Node
}

func acquire(n *Node) handle {
	atomic.AddInt32(&n.rc, 1)
	return handle{n: n}
}

func (h handle) release() {
	if h.n != nil {
		atomic.AddInt32(&h.n.rc, -1)
	}
}
