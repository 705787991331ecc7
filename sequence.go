package forward

// WhereSequence is upstream restricted to the elements satisfying a predicate.
type WhereSequence[T any] struct {
	upstream Sequence[T]
	pred     func(T) bool
}

// NewWhere returns the elements of upstream for which pred returns true, in
// upstream order. pred must be free of side effects: cursors may call it at
// any time after they are first pulled.
func NewWhere[T any](upstream Sequence[T], pred func(T) bool) WhereSequence[T] {
	invariant(upstream != nil, "nil sequence passed to NewWhere")
	invariant(pred != nil, "nil predicate passed to NewWhere")
	return WhereSequence[T]{upstream: upstream, pred: pred}
}

func (s WhereSequence[T]) Cursor() Cursor[T] {
	return &FilterCursor[T]{upstream: s.upstream.Cursor(), pred: s.pred}
}

// SelectSequence is upstream with a transform applied to every element.
type SelectSequence[T, U any] struct {
	upstream Sequence[T]
	fn       func(T) U
}

// NewSelect returns fn applied to each element of upstream, in upstream order.
func NewSelect[T, U any](upstream Sequence[T], fn func(T) U) SelectSequence[T, U] {
	invariant(upstream != nil, "nil sequence passed to NewSelect")
	invariant(fn != nil, "nil transform passed to NewSelect")
	return SelectSequence[T, U]{upstream: upstream, fn: fn}
}

func (s SelectSequence[T, U]) Cursor() Cursor[U] {
	return &MapCursor[T, U]{upstream: s.upstream.Cursor(), fn: s.fn}
}

// Len forwards the upstream length hint; a transform does not change length.
func (s SelectSequence[T, U]) Len() int {
	return lenHint(s.upstream)
}

// TakeSequence is the first n elements of upstream.
type TakeSequence[T any] struct {
	upstream Sequence[T]
	n        int
}

// NewTake returns at most the first n elements of upstream. n <= 0 yields an
// empty sequence.
func NewTake[T any](upstream Sequence[T], n int) TakeSequence[T] {
	invariant(upstream != nil, "nil sequence passed to NewTake")
	return TakeSequence[T]{upstream: upstream, n: max(0, n)}
}

func (s TakeSequence[T]) Cursor() Cursor[T] {
	return &TakeCursor[T]{upstream: s.upstream.Cursor(), remaining: s.n}
}

// SkipSequence is upstream without its first n elements.
type SkipSequence[T any] struct {
	upstream Sequence[T]
	n        int
}

// NewSkip returns upstream with its first n elements dropped. n <= 0 drops
// nothing.
func NewSkip[T any](upstream Sequence[T], n int) SkipSequence[T] {
	invariant(upstream != nil, "nil sequence passed to NewSkip")
	return SkipSequence[T]{upstream: upstream, n: max(0, n)}
}

func (s SkipSequence[T]) Cursor() Cursor[T] {
	return &SkipCursor[T]{upstream: s.upstream.Cursor(), skip: s.n}
}

// ZipSequence pairs up the elements of two sequences by position.
type ZipSequence[A, B any] struct {
	left  Sequence[A]
	right Sequence[B]
}

// Zip pairs the i-th element of left with the i-th element of right. The
// result is as long as the shorter of the two.
func Zip[A, B any](left Sequence[A], right Sequence[B]) ZipSequence[A, B] {
	invariant(left != nil && right != nil, "nil sequence passed to Zip")
	return ZipSequence[A, B]{left: left, right: right}
}

func (s ZipSequence[A, B]) Cursor() Cursor[Pair[A, B]] {
	return &ZipCursor[A, B]{left: s.left.Cursor(), right: s.right.Cursor()}
}
