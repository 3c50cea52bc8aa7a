package list

import (
	"runtime"
	"sync/atomic"

	"github.com/AsyncModules/pilf-buddy-alloc/pip"
)

// List is a non-blocking, unordered, intrusive singly-linked list. Its zero
// value is not usable: the sentinel head's next is then 0, which is NOT
// pip.NullPtr. Use New to get a correctly initialized list.
type List struct {
	head Node
}

// New returns an empty List.
func New() *List {
	l := &List{}
	l.head.next.Store(pip.NullPtr)
	return l
}

// IsEmpty performs a search for the head-adjacent right node and reports
// whether it is null. Linearizes at the load of head's next.
func (l *List) IsEmpty() bool {
	_, right, _, _, h := l.search(0, false)
	h.release()
	return right == nil
}

// Push installs addr as the new first element of the list. addr must point
// to a node-sized block whose header has a zero reference count; pushing a
// node with a nonzero rc is a programming error.
func (l *List) Push(addr pip.Word) {
	n := nodeAt(addr)
	if n.refCount() != 0 {
		panic("list: push: node has a nonzero reference count")
	}
	stored := pip.Encode(addr)
	for {
		succ := l.head.next.Load()
		n.next.Store(succ)
		if l.head.next.CompareAndSwap(succ, stored) {
			return
		}
	}
}

// Pop removes and returns the address of some element of the list, with no
// ordering guarantee. It reports false if the list was empty.
func (l *List) Pop() (pip.Word, bool) {
	for {
		left, right, leftNext, rightStored, rh := l.search(0, false)
		if right == nil {
			return 0, false
		}
		if addr, ok := l.unlink(left, right, leftNext, rightStored, rh); ok {
			return addr, true
		}
	}
}

// Delete removes the node whose translated address equals addr, if it is
// still present and not already being removed by a concurrent caller.
// Exactly one caller among any racing to delete the same address observes
// the mark CAS succeed and returns true; the rest return false.
func (l *List) Delete(addr pip.Word) bool {
	for {
		left, right, leftNext, rightStored, rh := l.search(addr, true)
		if right == nil || pip.Decode(rightStored) != addr {
			rh.release()
			return false
		}
		if _, ok := l.unlink(left, right, leftNext, rightStored, rh); ok {
			return true
		}
	}
}

// unlink performs the mark-then-splice half of Pop/Delete against a node
// already located by search: it marks right's next field, splices it out of
// left, and waits for right's reference count to fall to 1 (the handle rh
// this call itself holds) before releasing that handle and returning
// right's address. ok is false when the mark CAS on right does not succeed
// (another thread marked right first, or right's next changed under it), in
// which case the caller should retry its own search.
func (l *List) unlink(left, right *Node, leftNext, rightStored pip.Word, rh handle) (addr pip.Word, ok bool) {
	rNext := right.next.Load()
	if pip.IsMarked(rNext) {
		rh.release()
		return 0, false
	}
	if !right.next.CompareAndSwap(rNext, pip.Mark(rNext)) {
		rh.release()
		return 0, false
	}

	// Physical unlink. If the CAS loses (another push/splice touched left
	// in the meantime), a fresh search will finish the splice cooperatively;
	// either way right is now unreachable from the head.
	if !left.next.CompareAndSwap(leftNext, rNext) {
		_, _, _, _, helper := l.search(0, false)
		helper.release()
	}

	for atomic.LoadInt32(&right.rc) != 1 {
		runtime.Gosched()
	}

	addr = pip.Decode(rightStored)
	rh.release()
	return addr, true
}

// search locates the pair (left, right) of adjacent, unmarked nodes such
// that, if matchKey is true, right is the node whose translated address
// equals key (or nil if absent); if matchKey is false, right is simply the
// first unmarked node reachable from head (or nil if the list is empty).
// Along the way it splices out any run of marked nodes between left and
// right, cooperatively completing deletions started by other threads.
//
// left is always either the sentinel head (no rc protection needed) or a
// node search itself is still holding a handle on; that handle is released
// only once the splice CAS touching left has completed, so left's memory
// can never be reused out from under the CAS. The returned rightHandle
// guards right for as long as the caller needs it; it must be released
// exactly once (the zero handle is a safe no-op release).
func (l *List) search(key pip.Word, matchKey bool) (left, right *Node, leftNext, rightStored pip.Word, rightHandle handle) {
retry:
	left = &l.head
	leftNext = left.next.Load()
	var leftHandle handle // zero handle: head is never reclaimed, needs no rc
	cur := leftNext

	for cur != pip.NullPtr {
		curNode := nodeAt(pip.Decode(cur))
		h := acquire(curNode)
		curNextRaw := curNode.next.Load()

		if pip.IsMarked(curNextRaw) {
			// curNode is logically deleted: skip over it without advancing
			// left, so the eventual splice CAS removes the whole run.
			h.release()
			cur = pip.Unmark(curNextRaw)
			continue
		}

		if !matchKey || pip.Decode(cur) == key {
			right, rightStored, rightHandle = curNode, cur, h
			goto splice
		}

		leftHandle.release()
		leftHandle = h
		left = curNode
		leftNext = curNextRaw
		cur = curNextRaw
	}
	right, rightStored = nil, pip.NullPtr

splice:
	if leftNext != rightStored {
		if !left.next.CompareAndSwap(leftNext, rightStored) {
			leftHandle.release()
			rightHandle.release()
			goto retry
		}
	}
	if right != nil && pip.IsMarked(right.next.Load()) {
		leftHandle.release()
		rightHandle.release()
		goto retry
	}
	leftHandle.release()
	return left, right, leftNext, rightStored, rightHandle
}
