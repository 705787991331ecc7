package forward

import (
	"fmt"

	"github.com/brynbellomy/go-forward/opt"
)

// Cursor is a single-pass pull handle over a sequence. Each Pull advances the
// cursor and returns the next element, or None once the elements are
// exhausted. After the first None every further Pull also returns None.
type Cursor[T any] interface {
	Pull() opt.Opt[T]
}

// Sequence manufactures independent cursors, each starting at the beginning
// of the sequence.
type Sequence[T any] interface {
	Cursor() Cursor[T]
}

// CursorFunc adapts a plain function to Cursor. The function is responsible
// for returning None on every call after its first None.
type CursorFunc[T any] func() opt.Opt[T]

func (f CursorFunc[T]) Pull() opt.Opt[T] { return f() }

// SequenceFunc adapts a cursor factory to Sequence.
type SequenceFunc[T any] func() Cursor[T]

func (f SequenceFunc[T]) Cursor() Cursor[T] { return f() }

// lenHinter is implemented by sequences that know their length without
// being drained.
type lenHinter interface {
	Len() int
}

func lenHint[T any](seq Sequence[T]) int {
	if h, ok := seq.(lenHinter); ok {
		return max(0, h.Len())
	}
	return 0
}

func invariant(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Sprintf("invariant violation: "+format, args...))
	}
}
