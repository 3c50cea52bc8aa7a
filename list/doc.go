// Package list implements a non-blocking intrusive singly-linked list,
// following Harris's (2001) lazy-deletion algorithm: a node is logically
// deleted by marking the low bit of its own next pointer, then physically
// unlinked by a CAS on its predecessor. Next pointers are stored in
// position-independent form (package pip); nodes live at the head of the
// caller's own memory blocks rather than being heap-allocated by this
// package, since the intended caller is a buddy allocator reusing the
// memory it manages.
//
// Safe reuse of an unlinked node's memory is arbitrated by a per-node
// reference count rather than epoch-based reclamation or hazard pointers:
// every transient dereference during a traversal holds the node's rc above
// zero for the duration, and Pop/Delete spin until rc drops to 1 (the sole
// reference they hold) before handing the address back to the caller.
package list
