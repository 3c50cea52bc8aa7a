package list

import (
	"context"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/AsyncModules/pilf-buddy-alloc/pip"
)

// arena hands out Size-aligned, zeroed blocks backed by a plain Go slice, and
// translates between slice index and the Word addresses the list package
// works with. Tests use it instead of a real buddy heap so list behavior can
// be exercised in isolation.
type arena struct {
	mem  []byte
	base pip.Word
}

func newArena(t *testing.T, blocks int) *arena {
	t.Helper()
	blockSize := int(Size)
	mem := make([]byte, blocks*blockSize)
	base := pip.Word(uintptr(unsafe.Pointer(&mem[0])))
	pip.SetBase(pip.Static(base))
	return &arena{mem: mem, base: base}
}

func (a *arena) addr(i int) pip.Word {
	return a.base + pip.Word(i*int(Size))
}

func TestList_PushPop_SingleElement(t *testing.T) {
	a := newArena(t, 1)
	l := New()
	assert.True(t, l.IsEmpty())

	l.Push(a.addr(0))
	assert.False(t, l.IsEmpty())

	got, ok := l.Pop()
	require.True(t, ok)
	assert.Equal(t, a.addr(0), got)
	assert.True(t, l.IsEmpty())
}

func TestList_Pop_EmptyReturnsFalse(t *testing.T) {
	l := New()
	_, ok := l.Pop()
	assert.False(t, ok)
}

func TestList_PushMany_PopAll(t *testing.T) {
	const n = 64
	a := newArena(t, n)
	l := New()

	want := make(map[pip.Word]bool, n)
	for i := 0; i < n; i++ {
		want[a.addr(i)] = true
		l.Push(a.addr(i))
	}

	got := make(map[pip.Word]bool, n)
	for i := 0; i < n; i++ {
		addr, ok := l.Pop()
		require.True(t, ok)
		got[addr] = true
	}
	assert.Equal(t, want, got)
	assert.True(t, l.IsEmpty())
}

func TestList_Delete_PresentNode(t *testing.T) {
	a := newArena(t, 3)
	l := New()
	l.Push(a.addr(0))
	l.Push(a.addr(1))
	l.Push(a.addr(2))

	assert.True(t, l.Delete(a.addr(1)))
	assert.False(t, l.Delete(a.addr(1))) // already gone

	remaining := map[pip.Word]bool{}
	for {
		addr, ok := l.Pop()
		if !ok {
			break
		}
		remaining[addr] = true
	}
	assert.Equal(t, map[pip.Word]bool{a.addr(0): true, a.addr(2): true}, remaining)
}

func TestList_Delete_AbsentAddress(t *testing.T) {
	a := newArena(t, 2)
	l := New()
	l.Push(a.addr(0))
	assert.False(t, l.Delete(a.addr(1)))
}

func TestList_Push_NonzeroRefCountPanics(t *testing.T) {
	a := newArena(t, 1)
	n := nodeAt(a.addr(0))
	n.rc = 1
	assert.Panics(t, func() {
		New().Push(a.addr(0))
	})
}

// TestList_Concurrent_PushersDeletersPoppers drives 20 pushers each
// contributing 500 distinct nodes, racing against 10 deleters (targeting
// specific addresses, falling back to Pop on a miss since the deleted
// address may not have been pushed yet) and 10 poppers, and asserts every
// pushed address is observed removed exactly once and the list ends empty.
func TestList_Concurrent_PushersDeletersPoppers(t *testing.T) {
	const (
		pushers     = 20
		perPusher   = 500
		deleters    = 10
		poppers     = 10
		total       = pushers * perPusher
	)
	a := newArena(t, total)
	l := New()

	addrs := make([]pip.Word, total)
	for i := range addrs {
		addrs[i] = a.addr(i)
	}

	var mu sync.Mutex
	seen := make(map[pip.Word]int, total)
	record := func(addr pip.Word) {
		mu.Lock()
		seen[addr]++
		mu.Unlock()
	}

	g, _ := errgroup.WithContext(context.Background())

	for p := 0; p < pushers; p++ {
		p := p
		g.Go(func() error {
			for i := 0; i < perPusher; i++ {
				l.Push(addrs[p*perPusher+i])
			}
			return nil
		})
	}

	// Deleters target addresses spread across the whole range; many calls
	// race ahead of the owning pusher's Push and legitimately observe "not
	// present yet", which Delete reports as false — that's not the same as
	// "never removed", so a miss falls back to an unconditional Pop to make
	// forward progress and keep every node accounted for exactly once.
	for d := 0; d < deleters; d++ {
		d := d
		g.Go(func() error {
			for i := d; i < total; i += deleters {
				if l.Delete(addrs[i]) {
					record(addrs[i])
					continue
				}
				if addr, ok := l.Pop(); ok {
					record(addr)
				}
			}
			return nil
		})
	}

	for p := 0; p < poppers; p++ {
		g.Go(func() error {
			for {
				addr, ok := l.Pop()
				if !ok {
					return nil
				}
				record(addr)
			}
		})
	}

	require.NoError(t, g.Wait())

	// Drain any stragglers left by the race between poppers exiting on a
	// transient "empty" read and deleters/pushers still finishing up.
	for {
		addr, ok := l.Pop()
		if !ok {
			break
		}
		record(addr)
	}

	assert.True(t, l.IsEmpty())
	assert.Len(t, seen, total)
	for _, addr := range addrs {
		assert.Equal(t, 1, seen[addr], "address %x removed %d times", addr, seen[addr])
	}
}

// reachableAddrs walks raw (undecoded-mark-bit-stripped) next pointers from
// head, without going through search, so it observes exactly what marking
// and splicing left behind.
func reachableAddrs(l *List) []pip.Word {
	var out []pip.Word
	cur := l.head.next.Load()
	for cur != pip.NullPtr {
		out = append(out, pip.Decode(cur))
		cur = pip.Unmark(nodeAt(pip.Decode(cur)).next.Load())
	}
	return out
}

// TestList_Search_MarkedCombinations deterministically walks all eight
// combinations of the mark bit across three chained nodes, single-threaded,
// and checks that a keyless search returns the first unmarked node as right
// and splices out the run of marked nodes between head and it, leaving any
// node after that first unmarked one (marked or not) in place.
func TestList_Search_MarkedCombinations(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		mask := mask
		t.Run("", func(t *testing.T) {
			a := newArena(t, 3)
			l := New()
			// Build head -> n2 -> n1 -> n0 -> Null: the last node pushed sits first.
			l.Push(a.addr(0))
			l.Push(a.addr(1))
			l.Push(a.addr(2))
			order := []pip.Word{a.addr(2), a.addr(1), a.addr(0)}
			isMarked := func(addr pip.Word) bool {
				for j := 0; j < 3; j++ {
					if addr == a.addr(j) && mask&(1<<j) != 0 {
						return true
					}
				}
				return false
			}

			for i := 0; i < 3; i++ {
				if mask&(1<<i) != 0 {
					n := nodeAt(a.addr(i))
					n.next.Store(pip.Mark(n.next.Load()))
				}
			}

			var want []pip.Word
			for _, addr := range order {
				if len(want) == 0 && isMarked(addr) {
					continue // head-adjacent marked run: spliced out by search
				}
				want = append(want, addr)
			}

			left, right, _, _, h := l.search(0, false)
			h.release()
			require.NotNil(t, left)

			got := reachableAddrs(l)
			assert.Equal(t, want, got)

			if len(want) == 0 {
				assert.Nil(t, right)
			} else {
				require.NotNil(t, right)
				rightAddr := pip.Word(uintptr(unsafe.Pointer(right)))
				assert.Equal(t, want[0], rightAddr)
			}
		})
	}
}
