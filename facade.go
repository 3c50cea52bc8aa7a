package pilfalloc

import (
	"github.com/AsyncModules/pilf-buddy-alloc/buddy"
	"github.com/AsyncModules/pilf-buddy-alloc/pip"
)

type (
	// Heap is the buddy-system allocator. See buddy.Heap for the full API.
	Heap = buddy.Heap

	// Layout mirrors an allocation request: size and alignment in bytes.
	Layout = buddy.Layout

	// Option configures a Heap at construction time.
	Option = buddy.Option

	// Logger is the structured logger type accepted by WithLogger.
	Logger = buddy.Logger

	// Word is the machine word used for absolute addresses at the public
	// boundary (see package pip for the position-independent form used
	// internally).
	Word = pip.Word
)

var (
	// New constructs an empty Heap with the given order.
	New = buddy.New

	// NewWithSystemDefaults constructs a Heap and registers an arena sized
	// from total system memory.
	NewWithSystemDefaults = buddy.NewWithSystemDefaults

	// WithLogger attaches a structured logger to a Heap.
	WithLogger = buddy.WithLogger

	// DefaultArenaBytes derives a conservative arena size from total
	// system memory.
	DefaultArenaBytes = buddy.DefaultArenaBytes

	// SetBase installs the Provider used to translate between absolute and
	// position-independent addresses. Must be called once, before any
	// concurrent allocator traffic begins.
	SetBase = pip.SetBase

	// Static returns a Provider that always reports the given base.
	Static = pip.Static

	// ErrOOM is returned by Heap.Alloc when no free block is available.
	ErrOOM = buddy.ErrOOM
)
