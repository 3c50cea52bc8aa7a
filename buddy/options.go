package buddy

import (
	"github.com/joeycumines/logiface"
	ilogrus "github.com/joeycumines/logiface-logrus"
)

// Logger is the concrete logger type accepted by WithLogger: a logiface
// logger backed by logrus, via the logiface-logrus adapter.
type Logger = logiface.Logger[*ilogrus.Event]

// Option configures a Heap at construction time.
type Option func(*Heap)

// WithLogger attaches a structured logger used for boundary events: region
// registration (AddToHeap), out-of-memory, and the precondition violations
// Heap checks once options are applied (an inverted AddToHeap range, an
// order too small to host a list node) immediately before they panic. It is
// never consulted on the Alloc/Dealloc retry paths.
func WithLogger(l *Logger) Option {
	return func(h *Heap) { h.logger = l }
}
